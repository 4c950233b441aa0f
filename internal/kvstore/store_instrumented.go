package kvstore

import (
	"time"

	"github.com/schoolkv/schoolkv/internal/metrics"
)

// InstrumentedStore records operation counts and latencies for another
// Store. Wrap the outermost store so decorator overhead is measured too.
type InstrumentedStore struct {
	next Store
}

// NewInstrumentedStore wraps next with Prometheus instrumentation
func NewInstrumentedStore(next Store) *InstrumentedStore {
	return &InstrumentedStore{next: next}
}

func (s *InstrumentedStore) observe(op string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	metrics.KVOperations.WithLabelValues(op, status).Inc()
	metrics.KVOperationDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

// Set stores a value for a key
func (s *InstrumentedStore) Set(key string, value []byte) error {
	start := time.Now()
	err := s.next.Set(key, value)
	s.observe("set", start, err)
	return err
}

// Get retrieves a value by key
func (s *InstrumentedStore) Get(key string) ([]byte, bool, error) {
	start := time.Now()
	val, exists, err := s.next.Get(key)
	s.observe("get", start, err)
	return val, exists, err
}

// Delete removes a key from the store
func (s *InstrumentedStore) Delete(key string) error {
	start := time.Now()
	err := s.next.Delete(key)
	s.observe("delete", start, err)
	return err
}

// Close closes the underlying store
func (s *InstrumentedStore) Close() error {
	return s.next.Close()
}

// ForEach iterates over all key-value pairs in the underlying store
func (s *InstrumentedStore) ForEach(fn func(key string, value []byte) error) error {
	return s.next.ForEach(fn)
}
