package cache

import (
	"container/list"
	"sync"
)

// LFUCache evicts the least frequently used entry when full, breaking ties by
// least recent use within the lowest frequency. Both Get and Put count as a
// use; a new entry starts at frequency 1.
type LFUCache struct {
	base
	mu      sync.Mutex
	items   map[string]*list.Element
	byFreq  map[int]*list.List // per-frequency access order, front = least recent
	minFreq int
}

type lfuEntry struct {
	key   string
	value []byte
	freq  int
}

// NewLFU creates a least-frequently-used cache holding up to maxItems entries.
func NewLFU(maxItems int) *LFUCache {
	return &LFUCache{
		base:   newBase(PolicyLFU, maxItems),
		items:  make(map[string]*list.Element),
		byFreq: make(map[int]*list.List),
	}
}

// Put stores a value, evicting the least frequently used entry if the cache
// is full.
func (c *LFUCache) Put(key string, value []byte) {
	if key == "" || value == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[key]; ok {
		el.Value.(*lfuEntry).value = value
		c.bump(el)
		return
	}

	if len(c.items) >= c.maxItems {
		victims := c.byFreq[c.minFreq]
		lfu := victims.Front()
		e := lfu.Value.(*lfuEntry)
		victims.Remove(lfu)
		if victims.Len() == 0 {
			delete(c.byFreq, c.minFreq)
		}
		delete(c.items, e.key)
		c.discard(e.key)
	}

	c.minFreq = 1
	c.items[key] = c.push(&lfuEntry{key: key, value: value, freq: 1})
}

// Get retrieves a value by key and increments its use frequency.
func (c *LFUCache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[key]
	if !ok {
		return nil, false
	}
	e := el.Value.(*lfuEntry)
	c.bump(el)
	return e.value, true
}

// Remove deletes a key from the cache.
func (c *LFUCache) Remove(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[key]
	if !ok {
		return
	}
	e := el.Value.(*lfuEntry)
	l := c.byFreq[e.freq]
	l.Remove(el)
	if l.Len() == 0 {
		delete(c.byFreq, e.freq)
		if c.minFreq == e.freq {
			c.minFreq = 0
			for f := range c.byFreq {
				if c.minFreq == 0 || f < c.minFreq {
					c.minFreq = f
				}
			}
		}
	}
	delete(c.items, key)
}

// Len returns the number of cached entries.
func (c *LFUCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.items)
}

// bump moves an entry to the next frequency bucket, keeping access order
// within each bucket.
func (c *LFUCache) bump(el *list.Element) {
	e := el.Value.(*lfuEntry)
	old := c.byFreq[e.freq]
	old.Remove(el)
	if old.Len() == 0 {
		delete(c.byFreq, e.freq)
		if c.minFreq == e.freq {
			c.minFreq = e.freq + 1
		}
	}
	e.freq++
	c.items[e.key] = c.push(e)
}

func (c *LFUCache) push(e *lfuEntry) *list.Element {
	l, ok := c.byFreq[e.freq]
	if !ok {
		l = list.New()
		c.byFreq[e.freq] = l
	}
	return l.PushBack(e)
}
