package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// KVStore metrics
	KVOperations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "kvstore_operations_total",
		Help: "The total number of KV store operations",
	}, []string{"operation", "status"})

	KVOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "kvstore_operation_duration_seconds",
		Help:    "Duration of KV store operations",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})

	// Cache metrics
	CacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cache_hits_total",
		Help: "The total number of cache hits",
	})

	CacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cache_misses_total",
		Help: "The total number of cache misses",
	})

	CacheEvictions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cache_evictions_total",
		Help: "The total number of cache evictions",
	}, []string{"policy"})

	CacheItems = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "cache_items",
		Help: "The current number of items in the cache",
	})

	// Pagination metrics
	PageRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "page_requests_total",
		Help: "The total number of dataset page requests",
	}, []string{"status"})

	PageRequestDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "page_request_duration_seconds",
		Help:    "Duration of dataset page requests",
		Buckets: prometheus.DefBuckets,
	})

	// Client command metrics
	ClientCommands = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "client_commands_total",
		Help: "The total number of client commands dispatched",
	}, []string{"operation", "status"})

	// Snapshot / restore metrics for KV store
	SnapshotOperations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "kvstore_snapshot_operations_total",
		Help: "The total number of snapshot operations",
	}, []string{"phase", "status"})

	SnapshotDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "kvstore_snapshot_duration_seconds",
		Help:    "Duration of snapshot creation (seconds)",
		Buckets: prometheus.DefBuckets,
	})

	SnapshotSizeBytes = promauto.NewHistogram(prometheus.HistogramOpts{
		Name: "kvstore_snapshot_size_bytes",
		Help: "Size of snapshots in bytes",
		// reasonable exponential buckets for snapshot sizes
		Buckets: prometheus.ExponentialBuckets(256, 2, 10),
	})

	SnapshotRestoreDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "kvstore_snapshot_restore_duration_seconds",
		Help:    "Duration to restore a snapshot (seconds)",
		Buckets: prometheus.DefBuckets,
	})

	SnapshotErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "kvstore_snapshot_errors_total",
		Help: "The total number of errors encountered during snapshot or restore",
	}, []string{"phase"})
)
