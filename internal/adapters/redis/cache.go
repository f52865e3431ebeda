package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/rafaelleal24/glowin/internal/core/port"
)

// Cache stores JSON encoded values of T under <namespace>:<prefix>:<id>.
type Cache[T any] struct {
	client *Client
	prefix string
}

func NewCache[T any](client *Client, prefix string) port.CachePort[T] {
	return &Cache[T]{client: client, prefix: prefix}
}

func (c *Cache[T]) key(id string) string {
	return c.client.Key(c.prefix, id)
}

func (c *Cache[T]) Get(ctx context.Context, id string) (*T, error) {
	key := c.key(id)
	data, err := c.client.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cache get %s: %w", key, err)
	}

	value := new(T)
	if err := json.Unmarshal(data, value); err != nil {
		return nil, fmt.Errorf("cache decode %s: %w", key, err)
	}
	return value, nil
}

func (c *Cache[T]) Set(ctx context.Context, id string, value *T, ttl time.Duration) error {
	key := c.key(id)
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache encode %s: %w", key, err)
	}
	if err := c.client.rdb.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("cache set %s: %w", key, err)
	}
	return nil
}

// SetNX writes only when the key is absent. It backs the idempotency claim.
func (c *Cache[T]) SetNX(ctx context.Context, id string, value *T, ttl time.Duration) (bool, error) {
	key := c.key(id)
	data, err := json.Marshal(value)
	if err != nil {
		return false, fmt.Errorf("cache encode %s: %w", key, err)
	}
	created, err := c.client.rdb.SetNX(ctx, key, data, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("cache setnx %s: %w", key, err)
	}
	return created, nil
}

func (c *Cache[T]) Del(ctx context.Context, id string) error {
	if err := c.client.rdb.Del(ctx, c.key(id)).Err(); err != nil {
		return fmt.Errorf("cache del %s: %w", c.key(id), err)
	}
	return nil
}

func (c *Cache[T]) Expire(ctx context.Context, id string, ttl time.Duration) (bool, error) {
	key := c.key(id)
	ok, err := c.client.rdb.Expire(ctx, key, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("cache expire %s: %w", key, err)
	}
	return ok, nil
}
