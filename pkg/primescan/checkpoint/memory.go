package checkpoint

import "sync"

// MemoryStore is an in-memory checkpoint store for testing. Data is
// lost when the process exits.
type MemoryStore struct {
	mu     sync.RWMutex
	p      *Progress
	saves  int
	closed bool
}

// NewMemoryStore creates a new in-memory checkpoint store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Save implements Store.
func (m *MemoryStore) Save(p Progress) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStoreClosed
	}

	stored := p
	m.p = &stored
	m.saves++
	return nil
}

// Load implements Store.
func (m *MemoryStore) Load() (*Progress, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, ErrStoreClosed
	}
	if m.p == nil {
		return nil, nil
	}
	if err := m.p.Validate(); err != nil {
		return nil, nil
	}

	// Return a copy to prevent modification.
	p := *m.p
	return &p, nil
}

// Clear implements Store.
func (m *MemoryStore) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStoreClosed
	}
	m.p = nil
	return nil
}

// Close implements Store.
func (m *MemoryStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true
	m.p = nil
	return nil
}

// Saves returns how many times Save has been called. Useful for
// asserting checkpoint-per-batch behavior in tests.
func (m *MemoryStore) Saves() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.saves
}
