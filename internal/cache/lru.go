package cache

import (
	"container/list"
	"sync"
)

// LRUCache evicts the least recently used entry when full. Both Get and Put
// count as a use.
type LRUCache struct {
	base
	mu    sync.Mutex
	items map[string]*list.Element
	order *list.List // front = least recently used
}

// NewLRU creates a least-recently-used cache holding up to maxItems entries.
func NewLRU(maxItems int) *LRUCache {
	return &LRUCache{
		base:  newBase(PolicyLRU, maxItems),
		items: make(map[string]*list.Element),
		order: list.New(),
	}
}

// Put stores a value, evicting the least recently used entry if the cache is
// full.
func (c *LRUCache) Put(key string, value []byte) {
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
		lru := c.order.Front()
		e := lru.Value.(*entry)
		c.order.Remove(lru)
		delete(c.items, e.key)
		c.discard(e.key)
	}

	c.items[key] = c.order.PushBack(&entry{key: key, value: value})
}

// Get retrieves a value by key and marks it as recently used.
func (c *LRUCache) Get(key string) ([]byte, bool) {
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
func (c *LRUCache) Remove(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[key]; ok {
		c.order.Remove(el)
		delete(c.items, key)
	}
}

// Len returns the number of cached entries.
func (c *LRUCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.items)
}
