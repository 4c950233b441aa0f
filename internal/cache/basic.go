package cache

import "sync"

// BasicCache stores key-value pairs without any eviction policy.
type BasicCache struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewBasic creates an unbounded cache.
func NewBasic() *BasicCache {
	return &BasicCache{
		data: make(map[string][]byte),
	}
}

// Put stores a value for a key.
func (c *BasicCache) Put(key string, value []byte) {
	if key == "" || value == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.data[key] = value
}

// Get retrieves a value by key.
func (c *BasicCache) Get(key string) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	val, ok := c.data[key]
	return val, ok
}

// Remove deletes a key from the cache.
func (c *BasicCache) Remove(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.data, key)
}

// Len returns the number of cached entries.
func (c *BasicCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.data)
}

// Policy returns the policy name.
func (c *BasicCache) Policy() string {
	return PolicyBasic
}
