package kvstore

import (
	"github.com/schoolkv/schoolkv/internal/cache"
	"github.com/schoolkv/schoolkv/internal/metrics"
)

// CachedStore layers an eviction cache in front of another Store.
// Reads check the cache first and fill it on a miss; writes go through
// to the backing store and update the cache so subsequent reads hit.
type CachedStore struct {
	backing Store
	cache   cache.Cache
}

// NewCachedStore wraps backing with the given cache
func NewCachedStore(backing Store, c cache.Cache) *CachedStore {
	return &CachedStore{backing: backing, cache: c}
}

// Set writes through to the backing store and refreshes the cache
func (s *CachedStore) Set(key string, value []byte) error {
	if err := s.backing.Set(key, value); err != nil {
		return err
	}
	s.cache.Put(key, value)
	metrics.CacheItems.Set(float64(s.cache.Len()))
	return nil
}

// Get returns the cached value when present and falls back to the
// backing store on a miss, filling the cache for the next read
func (s *CachedStore) Get(key string) ([]byte, bool, error) {
	if val, ok := s.cache.Get(key); ok {
		metrics.CacheHits.Inc()
		return val, true, nil
	}
	metrics.CacheMisses.Inc()

	val, exists, err := s.backing.Get(key)
	if err != nil || !exists {
		return val, exists, err
	}

	s.cache.Put(key, val)
	metrics.CacheItems.Set(float64(s.cache.Len()))
	return val, true, nil
}

// Delete removes the key from the backing store and invalidates the
// cached copy
func (s *CachedStore) Delete(key string) error {
	if err := s.backing.Delete(key); err != nil {
		return err
	}
	s.cache.Remove(key)
	metrics.CacheItems.Set(float64(s.cache.Len()))
	return nil
}

// Close closes the backing store
func (s *CachedStore) Close() error {
	return s.backing.Close()
}

// ForEach iterates the backing store. The cache holds only a subset of
// the data so iteration never consults it.
func (s *CachedStore) ForEach(fn func(key string, value []byte) error) error {
	return s.backing.ForEach(fn)
}
