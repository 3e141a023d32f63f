package viewstate

import (
	"sync"
	"time"
)

// defaultMaxMachines bounds the registry so anonymous-token churn cannot
// grow memory without limit
const defaultMaxMachines = 10000

type registryEntry struct {
	machine *Machine
	touched time.Time
}

// Registry holds one view machine per interactive session. Anonymous
// visitors share machines keyed by their client-generated UI token. The
// registry is bounded: when full, the least recently used machine is
// evicted, which that visitor experiences as a page reload back to home.
type Registry struct {
	mu       sync.Mutex
	machines map[string]*registryEntry
	max      int
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		machines: make(map[string]*registryEntry),
		max:      defaultMaxMachines,
	}
}

// Machine returns the machine for a token, creating it in the home state on
// first use
func (r *Registry) Machine(token string) *Machine {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e, ok := r.machines[token]; ok {
		e.touched = time.Now()
		return e.machine
	}

	if len(r.machines) >= r.max {
		r.evictOldestLocked()
	}

	m := NewMachine()
	r.machines[token] = &registryEntry{machine: m, touched: time.Now()}
	return m
}

// Drop discards the machine for a token
func (r *Registry) Drop(token string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.machines, token)
}

// evictOldestLocked removes the least recently touched entry. Caller holds
// the lock.
func (r *Registry) evictOldestLocked() {
	var oldestToken string
	var oldest time.Time

	for token, e := range r.machines {
		if oldestToken == "" || e.touched.Before(oldest) {
			oldestToken = token
			oldest = e.touched
		}
	}
	if oldestToken != "" {
		delete(r.machines, oldestToken)
	}
}
