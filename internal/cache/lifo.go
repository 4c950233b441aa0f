package cache

import (
	"container/list"
	"sync"
)

// LIFOCache evicts the most recently inserted entry when full. Updating an
// existing key refreshes its insertion position.
type LIFOCache struct {
	base
	mu    sync.Mutex
	items map[string]*list.Element
	order *list.List // back = newest insertion
}

// NewLIFO creates a last-in-first-out cache holding up to maxItems entries.
func NewLIFO(maxItems int) *LIFOCache {
	return &LIFOCache{
		base:  newBase(PolicyLIFO, maxItems),
		items: make(map[string]*list.Element),
		order: list.New(),
	}
}

// Put stores a value, evicting the newest entry if the cache is full.
func (c *LIFOCache) Put(key string, value []byte) {
	if key == "" || value == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[key]; ok {
		el.Value.(*entry).value = value
		c.order.MoveToBack(el)
		return
	}

	if c.order.Len() >= c.maxItems {
		newest := c.order.Back()
		e := newest.Value.(*entry)
		c.order.Remove(newest)
		delete(c.items, e.key)
		c.discard(e.key)
	}

	c.items[key] = c.order.PushBack(&entry{key: key, value: value})
}

// Get retrieves a value by key.
func (c *LIFOCache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[key]
	if !ok {
		return nil, false
	}
	return el.Value.(*entry).value, true
}

// Remove deletes a key from the cache.
func (c *LIFOCache) Remove(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[key]; ok {
		c.order.Remove(el)
		delete(c.items, key)
	}
}

// Len returns the number of cached entries.
func (c *LIFOCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.items)
}
