package session

import "sync"

// Store is the key-value capability the codec persists sessions into.
// It mirrors the browser localStorage surface: string keys, string
// values, and a lookup that distinguishes "absent" from "empty".
type Store interface {
	GetItem(key string) (string, bool)
	SetItem(key, value string)
	RemoveItem(key string)
}

// MemoryStore is an in-process Store. It backs tests and the default
// single-instance development setup.
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string]string
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: make(map[string]string)}
}

// GetItem returns the value stored under key, if any.
func (s *MemoryStore) GetItem(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.items[key]
	return v, ok
}

// SetItem stores value under key, replacing any previous value.
func (s *MemoryStore) SetItem(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[key] = value
}

// RemoveItem deletes the entry under key. Removing an absent key is a
// no-op.
func (s *MemoryStore) RemoveItem(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, key)
}
