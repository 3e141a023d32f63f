package directory

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"independent-director/pkg/models"
)

// fakeLister serves a swappable director list and can be made to fail
type fakeLister struct {
	mu        sync.Mutex
	directors []models.Director
	err       error
	calls     int
}

func (f *fakeLister) ListDirectors(context.Context) ([]models.Director, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.directors, nil
}

func (f *fakeLister) set(directors []models.Director, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.directors = directors
	f.err = err
}

// memorySnapshot is an in-process Snapshot implementation
type memorySnapshot struct {
	mu        sync.Mutex
	directors []models.Director
}

func (m *memorySnapshot) Save(_ context.Context, directors []models.Director) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.directors = directors
	return nil
}

func (m *memorySnapshot) Load(context.Context) ([]models.Director, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.directors, nil
}

func sampleDirectors() []models.Director {
	return []models.Director{
		{ID: "1", Name: "Asha Menon", Industry: "Healthcare", Description: "Hospital governance veteran"},
		{ID: "2", Name: "Ravi Iyer", Industry: "Banking", Description: "Risk and audit committees"},
		{ID: "3", Name: "Meera Shah", Industry: "Technology", Description: "Fintech and healthcare boards"},
	}
}

func TestSearch(t *testing.T) {
	lister := &fakeLister{directors: sampleDirectors()}
	cache := NewCache(lister, nil)
	require.NoError(t, cache.LoadAll(context.Background()))

	tests := []struct {
		name    string
		query   string
		wantIDs []string
	}{
		{name: "name match", query: "asha", wantIDs: []string{"1"}},
		{name: "industry match", query: "BANK", wantIDs: []string{"2"}},
		{name: "description match", query: "healthcare", wantIDs: []string{"1", "3"}},
		{name: "no match", query: "mining", wantIDs: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := cache.Search(tt.query)
			ids := make([]string, 0, len(results))
			for _, d := range results {
				ids = append(ids, d.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestSearchEmptyQueryResetsFilteredView(t *testing.T) {
	lister := &fakeLister{directors: sampleDirectors()}
	cache := NewCache(lister, nil)
	require.NoError(t, cache.LoadAll(context.Background()))

	assert.Len(t, cache.Search("asha"), 1)
	assert.Len(t, cache.Filtered(), 1)

	assert.Len(t, cache.Search(""), 3, "empty query restores the master list")
	assert.Len(t, cache.Filtered(), 3)
}

func TestLoadAllFailureKeepsPreviousData(t *testing.T) {
	lister := &fakeLister{directors: sampleDirectors()}
	cache := NewCache(lister, nil)
	require.NoError(t, cache.LoadAll(context.Background()))

	lister.set(nil, fmt.Errorf("backend down"))
	err := cache.LoadAll(context.Background())
	require.Error(t, err)

	assert.Len(t, cache.All(), 3, "failed reload must not clear the cache")
	assert.True(t, cache.Loaded())
}

func TestSnapshotRoundTrip(t *testing.T) {
	snap := &memorySnapshot{}
	lister := &fakeLister{directors: sampleDirectors()}

	first := NewCache(lister, snap)
	require.NoError(t, first.LoadAll(context.Background()))

	// A fresh cache with a failing backend serves the snapshot
	failing := &fakeLister{err: fmt.Errorf("backend down")}
	second := NewCache(failing, snap)
	second.RestoreSnapshot(context.Background())
	require.Error(t, second.LoadAll(context.Background()))

	assert.Len(t, second.All(), 3)
	assert.False(t, second.Loaded(), "snapshot data does not count as a live load")
}

func TestByIDAndByEmail(t *testing.T) {
	lister := &fakeLister{directors: []models.Director{
		{ID: "1", Name: "Asha Menon", Email: "Asha@Example.com"},
	}}
	cache := NewCache(lister, nil)
	require.NoError(t, cache.LoadAll(context.Background()))

	d, ok := cache.ByID("1")
	require.True(t, ok)
	assert.Equal(t, "Asha Menon", d.Name)

	_, ok = cache.ByID("missing")
	assert.False(t, ok)

	d, ok = cache.ByEmail("asha@example.com")
	require.True(t, ok, "email lookup is case-insensitive")
	assert.Equal(t, "1", d.ID)

	_, ok = cache.ByEmail("")
	assert.False(t, ok)
}
