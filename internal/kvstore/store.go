package kvstore

// Store defines the interface for key-value storage.
//
// Get reports a missing key as (nil, false, nil); the error return is
// reserved for storage failures. Implementations must treat an empty
// value as present, not missing.
type Store interface {
	Set(key string, value []byte) error
	Get(key string) ([]byte, bool, error)
	Delete(key string) error
	Close() error
	// ForEach iterates over all key-value pairs in the store
	ForEach(fn func(key string, value []byte) error) error
}

var (
	_ Store = (*MemoryStore)(nil)
	_ Store = (*BadgerStore)(nil)
	_ Store = (*RedisStore)(nil)
	_ Store = (*CachedStore)(nil)
	_ Store = (*InstrumentedStore)(nil)
)
