package kvclient

import (
	"context"
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/schoolkv/schoolkv/internal/metrics"
)

// Command operation names
const (
	OpSet    = "set"
	OpGet    = "get"
	OpDelete = "delete"
)

// Result is the outcome of one submitted command
type Result struct {
	// ID correlates the result with its submission
	ID string
	// Op is the operation that produced the result
	Op string
	// Key is the key the operation was applied to
	Key string
	// Value is the server's reply: the stored value for a get, "OK"
	// for a set, the number of removed keys for a delete
	Value string
	// Err is nil on success. A get of a missing key carries the
	// client library's nil-reply error, wrapped in a CommandError.
	Err error
}

// CommandError reports the failure of a single command together with
// the operation and key that produced it
type CommandError struct {
	Op  string
	Key string
	Err error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Op, e.Key, e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

type command struct {
	id     string
	op     string
	key    string
	value  string
	result chan Result
}

// fail delivers an immediate failure without going through the dispatcher
func (cmd command) fail(err error) {
	metrics.ClientCommands.WithLabelValues(cmd.op, "rejected").Inc()
	cmd.result <- Result{
		ID:  cmd.id,
		Op:  cmd.op,
		Key: cmd.key,
		Err: &CommandError{Op: cmd.op, Key: cmd.key, Err: err},
	}
}

// SetValue stores value under key. The returned channel delivers the
// command's Result exactly once; the reply value for a successful set
// is the server's confirmation string.
func (c *Client) SetValue(key, value string) <-chan Result {
	return c.submit(OpSet, key, value)
}

// GetValue reads the value stored under key
func (c *Client) GetValue(key string) <-chan Result {
	return c.submit(OpGet, key, "")
}

// DeleteValue removes key from the store. The reply value is the
// number of keys removed, "0" when the key did not exist.
func (c *Client) DeleteValue(key string) <-chan Result {
	return c.submit(OpDelete, key, "")
}

// submit queues a command for the dispatcher. The result channel is
// buffered so the dispatcher never blocks on a caller that has not
// collected its result yet.
func (c *Client) submit(op, key, value string) <-chan Result {
	cmd := command{
		id:     uuid.NewString(),
		op:     op,
		key:    key,
		value:  value,
		result: make(chan Result, 1),
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	switch {
	case c.closed:
		cmd.fail(ErrClientClosed)
	case c.state != StateConnected:
		cmd.fail(ErrNotConnected)
	default:
		select {
		case c.commands <- cmd:
		default:
			cmd.fail(ErrQueueFull)
		}
	}
	return cmd.result
}

// dispatch executes queued commands one at a time, in submission
// order, until Close drains the queue. A single dispatcher over a
// single connection means a get submitted after a set on the same key
// always observes it.
func (c *Client) dispatch() {
	defer c.wg.Done()
	for cmd := range c.commands {
		c.execute(cmd)
	}
}

func (c *Client) execute(cmd command) {
	ctx := context.Background()
	res := Result{ID: cmd.id, Op: cmd.op, Key: cmd.key}

	var err error
	switch cmd.op {
	case OpSet:
		res.Value, err = c.rdb.Set(ctx, cmd.key, cmd.value, 0).Result()
	case OpGet:
		res.Value, err = c.rdb.Get(ctx, cmd.key).Result()
	case OpDelete:
		var removed int64
		removed, err = c.rdb.Del(ctx, cmd.key).Result()
		res.Value = strconv.FormatInt(removed, 10)
	default:
		err = fmt.Errorf("unknown operation %q", cmd.op)
	}

	status := "success"
	if err != nil {
		status = "error"
		res.Err = &CommandError{Op: cmd.op, Key: cmd.key, Err: err}
	}
	metrics.ClientCommands.WithLabelValues(cmd.op, status).Inc()

	cmd.result <- res
}
