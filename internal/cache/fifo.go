package cache

import (
	"container/list"
	"sync"
)

// FIFOCache evicts the oldest inserted entry when full. Updating an existing
// key refreshes its insertion position.
type FIFOCache struct {
	base
	mu    sync.Mutex
	items map[string]*list.Element
	order *list.List // front = oldest insertion
}

// NewFIFO creates a first-in-first-out cache holding up to maxItems entries.
func NewFIFO(maxItems int) *FIFOCache {
	return &FIFOCache{
		base:  newBase(PolicyFIFO, maxItems),
		items: make(map[string]*list.Element),
		order: list.New(),
	}
}

// Put stores a value, evicting the oldest entry if the cache is full.
func (c *FIFOCache) Put(key string, value []byte) {
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
		oldest := c.order.Front()
		e := oldest.Value.(*entry)
		c.order.Remove(oldest)
		delete(c.items, e.key)
		c.discard(e.key)
	}

	c.items[key] = c.order.PushBack(&entry{key: key, value: value})
}

// Get retrieves a value by key.
func (c *FIFOCache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[key]
	if !ok {
		return nil, false
	}
	return el.Value.(*entry).value, true
}

// Remove deletes a key from the cache.
func (c *FIFOCache) Remove(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[key]; ok {
		c.order.Remove(el)
		delete(c.items, key)
	}
}

// Len returns the number of cached entries.
func (c *FIFOCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.items)
}
