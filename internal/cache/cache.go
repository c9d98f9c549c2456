package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"ratehub/internal/config"

	"github.com/redis/go-redis/v9"
)

// Cache is a thin TTL cache over Redis. Only cheap, non-authoritative data
// belongs here (dashboard counters); rating aggregates are always recomputed
// from the database and must never be cached.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// New returns nil (no error) when no Redis URL is configured; callers treat a
// nil cache as a miss on every lookup.
func New(ctx context.Context, cfg *config.Config) (*Cache, error) {
	if cfg.RedisURL == "" {
		return nil, nil
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, err
	}
	if cfg.RedisPassword != "" {
		opts.Password = cfg.RedisPassword
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Cache{client: client, ttl: cfg.CacheTTL}, nil
}

// GetJSON reports whether the key was present and unmarshals it into dest.
func (c *Cache) GetJSON(ctx context.Context, key string, dest interface{}) (bool, error) {
	if c == nil {
		return false, nil
	}
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, err
	}
	return true, nil
}

// SetJSON stores value under key for the configured TTL.
func (c *Cache) SetJSON(ctx context.Context, key string, value interface{}) error {
	if c == nil {
		return nil
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, data, c.ttl).Err()
}

// Close releases the underlying connection pool.
func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}
