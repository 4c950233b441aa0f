package kvstore

import (
	"sync"
)

// MemoryStore keeps all pairs in process memory. It is the default
// backend and the fallback when a persistent backend fails to open;
// pair it with a snapshot file to survive restarts.
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string][]byte
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		items: make(map[string][]byte),
	}
}

// Set stores a value for a key. The value is copied so later mutation
// of the caller's slice cannot corrupt the store.
func (s *MemoryStore) Set(key string, value []byte) error {
	v := make([]byte, len(value))
	copy(v, value)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[key] = v
	return nil
}

// Get retrieves a value by key
func (s *MemoryStore) Get(key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, exists := s.items[key]
	if !exists {
		return nil, false, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, true, nil
}

// Delete removes a key from the store
func (s *MemoryStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.items, key)
	return nil
}

// Close is a no-op; there is nothing to release
func (s *MemoryStore) Close() error {
	return nil
}

// ForEach iterates over all key-value pairs in the store. The lock is
// held for the whole iteration so fn must not call back into the store.
func (s *MemoryStore) ForEach(fn func(key string, value []byte) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for k, v := range s.items {
		if err := fn(k, v); err != nil {
			return err
		}
	}
	return nil
}
