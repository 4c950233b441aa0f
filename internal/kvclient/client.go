package kvclient

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/schoolkv/schoolkv/internal/logging"
)

// State is the connection state of a Client
type State int

const (
	StateDisconnected State = iota
	StateConnecting
	StateConnected
	StateError
)

// String returns the lowercase name of the state
func (s State) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

const (
	// DefaultAddr is the Redis server address used when none is configured
	DefaultAddr = "127.0.0.1:6379"
	// DefaultQueueSize bounds the number of commands waiting for dispatch
	DefaultQueueSize = 100

	defaultDialTimeout = 5 * time.Second
)

var (
	// ErrNotConnected is reported when a command is submitted before
	// Connect has succeeded
	ErrNotConnected = errors.New("client is not connected")
	// ErrClientClosed is reported when a command is submitted after Close
	ErrClientClosed = errors.New("client is closed")
	// ErrQueueFull is reported when the command queue has no room left
	ErrQueueFull = errors.New("command queue is full")
)

// Config holds the client settings
type Config struct {
	// Addr is the host:port of the Redis server
	Addr string
	// DialTimeout bounds connection establishment, ping included
	DialTimeout time.Duration
	// QueueSize bounds the number of commands waiting for dispatch
	QueueSize int
	// Logger receives connection and command events
	Logger *logging.Logger
}

func (c Config) withDefaults() Config {
	if c.Addr == "" {
		c.Addr = DefaultAddr
	}
	if c.DialTimeout <= 0 {
		c.DialTimeout = defaultDialTimeout
	}
	if c.QueueSize <= 0 {
		c.QueueSize = DefaultQueueSize
	}
	if c.Logger == nil {
		c.Logger = logging.DefaultLogger
	}
	return c
}

// Client is an asynchronous Redis key-value client. Commands are
// submitted from any goroutine and executed one at a time, in
// submission order, by a single dispatcher; each submission returns a
// channel that delivers the command's Result exactly once.
//
// The client never reconnects on its own. A failed Connect leaves it
// in StateError and a later Connect call may try again; errors on
// individual commands are delivered through their Result and do not
// change the connection state.
type Client struct {
	id  string
	cfg Config

	mu     sync.Mutex
	state  State
	closed bool
	rdb    *redis.Client

	commands chan command
	wg       sync.WaitGroup

	logger *logging.Logger
}

// New creates a client for the server named in cfg. No connection is
// made until Connect is called.
func New(cfg Config) *Client {
	cfg = cfg.withDefaults()
	return &Client{
		id:       uuid.NewString(),
		cfg:      cfg,
		commands: make(chan command, cfg.QueueSize),
		logger:   cfg.Logger,
	}
}

// ID returns the client's unique identifier
func (c *Client) ID() string {
	return c.id
}

// State returns the current connection state
func (c *Client) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Connect establishes the connection to the Redis server and starts
// the command dispatcher. It is a no-op when already connected. On
// failure the client is left in StateError; calling Connect again
// makes a fresh attempt.
func (c *Client) Connect(ctx context.Context) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClientClosed
	}
	if c.state == StateConnected || c.state == StateConnecting {
		c.mu.Unlock()
		return nil
	}
	c.state = StateConnecting
	c.mu.Unlock()

	// Automatic retries stay off so every failure surfaces exactly once.
	rdb := redis.NewClient(&redis.Options{
		Addr:        c.cfg.Addr,
		DialTimeout: c.cfg.DialTimeout,
		MaxRetries:  -1,
	})

	ctx, cancel := context.WithTimeout(ctx, c.cfg.DialTimeout)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		c.mu.Lock()
		c.state = StateError
		c.mu.Unlock()
		c.logger.Error("Redis client not connected to the server: %v", err)
		return err
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		_ = rdb.Close()
		return ErrClientClosed
	}
	c.rdb = rdb
	c.state = StateConnected
	c.mu.Unlock()
	c.logger.Info("Redis client connected to the server")

	c.wg.Add(1)
	go c.dispatch()

	return nil
}

// Close drains the commands already submitted, stops the dispatcher
// and closes the connection. Commands submitted after Close fail with
// ErrClientClosed. Close is idempotent.
func (c *Client) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	c.state = StateDisconnected
	close(c.commands)
	c.mu.Unlock()

	c.wg.Wait()

	if c.rdb != nil {
		return c.rdb.Close()
	}
	return nil
}

// Print logs a completed command the way the interactive tools expect:
// "Reply: <value>" on success, the error otherwise.
func (c *Client) Print(res Result) {
	if res.Err != nil {
		c.logger.Error("%v", res.Err)
		return
	}
	c.logger.Info("Reply: %s", res.Value)
}
