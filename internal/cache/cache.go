// Package cache provides a small read-through Redis cache for the
// trending lists. Misses and marshal failures are never fatal; callers
// fall back to the database.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/linkhive/server/internal/logger"
)

type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// connects to Redis and verifies the connection
func New(redisURL string, ttl time.Duration) (*Cache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	logger.Info("connected to redis")

	return &Cache{client: client, ttl: ttl}, nil
}

// closes the Redis connection
func (c *Cache) Close() error {
	return c.client.Close()
}

// exposes the underlying client for shared consumers (rate limiter)
func (c *Cache) Client() *redis.Client {
	return c.client
}

// fetches and unmarshals a cached value; the bool reports a hit
func (c *Cache) GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	payload, err := c.client.Get(ctx, key).Bytes()

	if errors.Is(err, redis.Nil) {
		return false, nil
	}

	if err != nil {
		return false, fmt.Errorf("failed to get %s from redis: %w", key, err)
	}

	if err := json.Unmarshal(payload, dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal cached %s: %w", key, err)
	}

	return true, nil
}

// marshals and stores a value with the cache TTL
func (c *Cache) SetJSON(ctx context.Context, key string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal %s for cache: %w", key, err)
	}

	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set %s in redis: %w", key, err)
	}

	return nil
}
