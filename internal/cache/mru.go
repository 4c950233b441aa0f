package cache

import (
	"container/list"
	"sync"
)

// MRUCache evicts the most recently used entry when full. Both Get and Put
// count as a use.
type MRUCache struct {
	base
	mu    sync.Mutex
	items map[string]*list.Element
	order *list.List // back = most recently used
}

// NewMRU creates a most-recently-used cache holding up to maxItems entries.
func NewMRU(maxItems int) *MRUCache {
	return &MRUCache{
		base:  newBase(PolicyMRU, maxItems),
		items: make(map[string]*list.Element),
		order: list.New(),
	}
}

// Put stores a value, evicting the most recently used entry if the cache is
// full.
func (c *MRUCache) Put(key string, value []byte) {
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
		mru := c.order.Back()
		e := mru.Value.(*entry)
		c.order.Remove(mru)
		delete(c.items, e.key)
		c.discard(e.key)
	}

	c.items[key] = c.order.PushBack(&entry{key: key, value: value})
}

// Get retrieves a value by key and marks it as recently used.
func (c *MRUCache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[key]
	if !ok {
		return nil, false
	}
	c.order.MoveToBack(el)
	return el.Value.(*entry).value, true
}

// Remove deletes a key from the cache.
func (c *MRUCache) Remove(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[key]; ok {
		c.order.Remove(el)
		delete(c.items, key)
	}
}

// Len returns the number of cached entries.
func (c *MRUCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.items)
}
