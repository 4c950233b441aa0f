package kvstore

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore implements key-value storage backed by a Redis server
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to the Redis server at addr and verifies the
// connection with a ping before returning
func NewRedisStore(addr string, dialTimeout time.Duration) (*RedisStore, error) {
	if dialTimeout <= 0 {
		dialTimeout = 5 * time.Second
	}

	client := redis.NewClient(&redis.Options{
		Addr:        addr,
		DialTimeout: dialTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), dialTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	return &RedisStore{client: client}, nil
}

// Set stores a value for a key
func (s *RedisStore) Set(key string, value []byte) error {
	return s.client.Set(context.Background(), key, value, 0).Err()
}

// Get retrieves a value by key
func (s *RedisStore) Get(key string) ([]byte, bool, error) {
	val, err := s.client.Get(context.Background(), key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return val, true, nil
}

// Delete removes a key from the store
func (s *RedisStore) Delete(key string) error {
	return s.client.Del(context.Background(), key).Err()
}

// Close closes the connection to the Redis server
func (s *RedisStore) Close() error {
	return s.client.Close()
}

// ForEach iterates over all key-value pairs in the store
func (s *RedisStore) ForEach(fn func(key string, value []byte) error) error {
	ctx := context.Background()
	iter := s.client.Scan(ctx, 0, "*", 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		val, err := s.client.Get(ctx, key).Bytes()
		if errors.Is(err, redis.Nil) {
			// Key removed between scan and read
			continue
		}
		if err != nil {
			return err
		}
		if err := fn(key, val); err != nil {
			return err
		}
	}
	return iter.Err()
}
