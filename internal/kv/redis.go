package kv

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Redis stores entries as plain string keys under a prefix.
type Redis struct {
	client *redis.Client
	prefix string
}

// NewRedis wraps an existing client.
func NewRedis(client *redis.Client, prefix string) *Redis {
	return &Redis{client: client, prefix: prefix}
}

// OpenRedis connects to addr and verifies the connection with PING.
func OpenRedis(ctx context.Context, addr, prefix string) (*Redis, error) {
	if addr == "" {
		return nil, fmt.Errorf("redis store requires an address")
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("%w: redis ping %s: %w", ErrUnavailable, addr, err)
	}
	return NewRedis(client, prefix), nil
}

func (r *Redis) key(k string) string {
	return r.prefix + k
}

func (r *Redis) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := r.client.Get(ctx, r.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("redis get %s: %w", key, err)
	}
	return v, true, nil
}

func (r *Redis) Set(ctx context.Context, key, value string) error {
	if err := r.client.Set(ctx, r.key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// Close closes the client connection pool.
func (r *Redis) Close() error {
	return r.client.Close()
}
