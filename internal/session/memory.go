package session

import (
	"context"
	"sync"
	"time"

	"independent-director/pkg/utils"
)

// MemoryBlobs is an in-process Blobs implementation. It backs tests and
// serves as the fallback when Redis is unreachable at startup; sessions then
// survive only for the life of the process.
type MemoryBlobs struct {
	mu    sync.RWMutex
	items map[string]string
}

// NewMemoryBlobs creates an empty in-memory blob store
func NewMemoryBlobs() *MemoryBlobs {
	return &MemoryBlobs{items: make(map[string]string)}
}

func (m *MemoryBlobs) Get(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	val, ok := m.items[key]
	if !ok {
		return "", utils.ErrNotFound
	}
	return val, nil
}

func (m *MemoryBlobs) Set(_ context.Context, key, value string, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = value
	return nil
}

func (m *MemoryBlobs) Del(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, key)
	return nil
}
