package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/schoolkv/schoolkv/internal/api"
	"github.com/schoolkv/schoolkv/internal/cache"
	"github.com/schoolkv/schoolkv/internal/kvstore"
	"github.com/schoolkv/schoolkv/internal/pagination"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the store and the name dataset over HTTP",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

// buildStore assembles the storage stack from the configuration: the
// configured backend, the eviction cache when enabled, and Prometheus
// instrumentation on the outside. The returned snapshot path is empty
// unless the backend needs snapshotting to survive restarts.
func buildStore() (kvstore.Store, string) {
	var store kvstore.Store

	switch config.Storage.Type {
	case "badger":
		dataDir := filepath.Join(config.Storage.DataDir, "kvstore")
		if err := os.MkdirAll(dataDir, 0o755); err != nil {
			logger.Error("Failed to create data directory: %v, falling back to MemoryStore", err)
			store = kvstore.NewMemoryStore()
			break
		}
		s, err := kvstore.NewBadgerStore(dataDir)
		if err != nil {
			logger.Error("Failed to initialize BadgerStore: %v, falling back to MemoryStore", err)
			store = kvstore.NewMemoryStore()
			break
		}
		store = s
	case "redis":
		s, err := kvstore.NewRedisStore(config.Redis.Addr, config.Redis.DialTimeout)
		if err != nil {
			logger.Error("Failed to connect to Redis: %v, falling back to MemoryStore", err)
			store = kvstore.NewMemoryStore()
			break
		}
		store = s
	default:
		store = kvstore.NewMemoryStore()
	}

	// Badger and Redis persist on their own; only the in-memory store
	// needs its contents carried across restarts.
	snapshotFile := ""
	if _, isMemory := store.(*kvstore.MemoryStore); isMemory && config.Storage.SnapshotFile != "" {
		snapshotFile = config.Storage.SnapshotFile
		if err := os.MkdirAll(filepath.Dir(snapshotFile), 0o755); err != nil {
			logger.Error("Failed to create snapshot directory: %v", err)
			snapshotFile = ""
		} else if err := kvstore.LoadSnapshotFile(store, snapshotFile); err != nil {
			logger.Warn("Failed to restore snapshot: %v", err)
		}
	}

	if config.Cache.Enabled {
		c, err := cache.New(config.Cache.Policy, config.Cache.MaxItems)
		if err != nil {
			logger.Warn("Invalid cache policy %q, serving without cache: %v", config.Cache.Policy, err)
		} else {
			store = kvstore.NewCachedStore(store, c)
		}
	}
	store = kvstore.NewInstrumentedStore(store)

	return store, snapshotFile
}

func runServe(cmd *cobra.Command, args []string) error {
	store, snapshotFile := buildStore()
	server := api.NewServer(store, pagination.NewPager(config.Dataset.File))

	// Create router
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.AllowContentType("application/json"))

	var tracer *api.Tracer
	if config.Tracing.Enabled {
		t, err := api.NewTracer(config.Tracing.ServiceName, config.Tracing.Endpoint)
		if err != nil {
			return err
		}
		tracer = t
		r.Use(tracer.TracingMiddleware)
	}

	// KV Store routes
	r.Route("/kv", func(r chi.Router) {
		r.Post("/{key}", server.SetValue)
		r.Get("/{key}", server.GetValue)
		r.Delete("/{key}", server.DeleteValue)
	})

	// Dataset routes
	r.Get("/names", server.ListNames)

	// Health check endpoints
	r.Get("/health", server.HealthCheck)
	r.Get("/ready", server.ReadinessCheck)

	// Metrics endpoint
	r.Handle("/metrics", promhttp.Handler())

	// Start the server with graceful shutdown
	srv := &http.Server{
		Addr:    config.Server.Port,
		Handler: r,
	}

	// Mark server as ready
	server.SetReady(true)

	go func() {
		logger.Info("Starting server on %s...", config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error: %v", err)
			os.Exit(1)
		}
	}()

	// Wait for termination signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Received shutdown signal, starting graceful shutdown...")

	// Stop advertising readiness before tearing anything down
	server.SetReady(false)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("HTTP server shutdown error: %v", err)
	} else {
		logger.Info("HTTP server shut down successfully")
	}

	if tracer != nil {
		if err := tracer.Shutdown(ctx); err != nil {
			logger.Error("Tracer shutdown error: %v", err)
		}
	}

	if snapshotFile != "" {
		if err := kvstore.SaveSnapshotFile(store, snapshotFile); err != nil {
			logger.Error("Failed to write snapshot: %v", err)
		} else {
			logger.Info("Snapshot written to %s", snapshotFile)
		}
	}

	if err := store.Close(); err != nil {
		logger.Error("Error closing store: %v", err)
	}

	logger.Info("Graceful shutdown completed")
	return nil
}
