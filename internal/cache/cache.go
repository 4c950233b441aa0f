package cache

import (
	"fmt"
	"strings"

	"github.com/schoolkv/schoolkv/internal/logging"
	"github.com/schoolkv/schoolkv/internal/metrics"
)

// DefaultMaxItems is the capacity used when none is configured.
const DefaultMaxItems = 4

// Supported eviction policies.
const (
	PolicyBasic = "basic"
	PolicyFIFO  = "fifo"
	PolicyLIFO  = "lifo"
	PolicyLRU   = "lru"
	PolicyMRU   = "mru"
	PolicyLFU   = "lfu"
)

// Cache is a bounded in-memory key-value cache with a fixed eviction policy.
// Put with an empty key or nil value is a no-op. Eviction happens only when
// inserting a new key at capacity, and evicts exactly one entry.
type Cache interface {
	Put(key string, value []byte)
	Get(key string) ([]byte, bool)
	Remove(key string)
	Len() int
	Policy() string
}

// New creates a cache for the given policy name. maxItems <= 0 selects
// DefaultMaxItems; the basic policy is unbounded and ignores it.
func New(policy string, maxItems int) (Cache, error) {
	switch strings.ToLower(policy) {
	case PolicyBasic:
		return NewBasic(), nil
	case PolicyFIFO:
		return NewFIFO(maxItems), nil
	case PolicyLIFO:
		return NewLIFO(maxItems), nil
	case PolicyLRU:
		return NewLRU(maxItems), nil
	case PolicyMRU:
		return NewMRU(maxItems), nil
	case PolicyLFU:
		return NewLFU(maxItems), nil
	default:
		return nil, fmt.Errorf("unknown cache policy: %s", policy)
	}
}

// entry is the element payload shared by the list-backed policies.
type entry struct {
	key   string
	value []byte
}

// base holds the capacity shared by the bounded policies and reports
// evictions.
type base struct {
	policy   string
	maxItems int
}

func newBase(policy string, maxItems int) base {
	if maxItems <= 0 {
		maxItems = DefaultMaxItems
	}
	return base{policy: policy, maxItems: maxItems}
}

func (b *base) Policy() string {
	return b.policy
}

// discard reports the eviction of key.
func (b *base) discard(key string) {
	logging.DefaultLogger.Info("DISCARD: %s", key)
	metrics.CacheEvictions.WithLabelValues(b.policy).Inc()
}
