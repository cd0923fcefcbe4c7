package cache

import "sync"

// Memory is the default process-lifetime in-memory cache. Entries are never
// deleted, only superseded.
type Memory struct {
	clock Clock

	mu      sync.RWMutex
	entries map[string]Entry
}

// NewMemory creates an in-memory cache stamping entries with the given clock.
func NewMemory(clock Clock) *Memory {
	return &Memory{
		clock:   clock,
		entries: make(map[string]Entry),
	}
}

// Get returns the stored entry for the key, if any.
func (m *Memory) Get(key Key) (Entry, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.entries[key.String()]
	return e, ok
}

// Put stores an entry, stamping StoredAt when the caller left it zero.
func (m *Memory) Put(key Key, entry Entry) {
	if entry.StoredAt.IsZero() {
		entry.StoredAt = m.clock()
	}
	m.mu.Lock()
	m.entries[key.String()] = entry
	m.mu.Unlock()
}

// Len returns the number of stored entries.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
