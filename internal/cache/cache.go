package cache

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// Cache is a thin redis wrapper for short-lived lookups. A nil *Cache
// is valid and disables caching entirely.
type Cache struct {
	client *redis.Client
}

// New returns nil when url is empty, so callers can wire the cache
// conditionally without branching at every call site.
func New(url string) (*Cache, error) {
	if url == "" {
		return nil, nil
	}

	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}

	return &Cache{client: redis.NewClient(opts)}, nil
}

func (c *Cache) GetBool(ctx context.Context, key string) (bool, bool) {
	if c == nil {
		return false, false
	}

	val, err := c.client.Get(ctx, key).Result()
	if err != nil {
		return false, false
	}
	return val == "1", true
}

func (c *Cache) SetBool(ctx context.Context, key string, value bool, ttl time.Duration) {
	if c == nil {
		return
	}

	v := "0"
	if value {
		v = "1"
	}
	c.client.Set(ctx, key, v, ttl)
}

func (c *Cache) Delete(ctx context.Context, keys ...string) {
	if c == nil || len(keys) == 0 {
		return
	}
	c.client.Del(ctx, keys...)
}

func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}
