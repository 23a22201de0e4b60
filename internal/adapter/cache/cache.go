// Package cache keeps JSON snapshots of approved collections in Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/heartmarshall/creatorhub-backend/internal/config"
	"github.com/heartmarshall/creatorhub-backend/internal/domain"
)

// Redis stores one snapshot per resource type under <prefix>:snapshot:<resource>.
type Redis struct {
	client redis.Cmdable
	closer func() error
	prefix string
	ttl    time.Duration
}

// NewRedis connects to Redis and pings it.
func NewRedis(ctx context.Context, cfg config.CacheConfig) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	c := NewRedisFromClient(client, cfg.KeyPrefix, cfg.TTL)
	c.closer = client.Close
	return c, nil
}

// NewRedisFromClient wraps an existing client. The caller owns the client.
func NewRedisFromClient(client redis.Cmdable, prefix string, ttl time.Duration) *Redis {
	return &Redis{client: client, prefix: prefix, ttl: ttl}
}

// Key returns the Redis key of a resource snapshot.
func (c *Redis) Key(resource domain.ResourceType) string {
	if c.prefix == "" {
		return "snapshot:" + string(resource)
	}
	return c.prefix + ":snapshot:" + string(resource)
}

// Load decodes the stored snapshot into dst. found is false when no
// snapshot is stored.
func (c *Redis) Load(ctx context.Context, resource domain.ResourceType, dst any) (found bool, err error) {
	data, err := c.client.Get(ctx, c.Key(resource)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("get %s snapshot: %w", resource, err)
	}

	if err := json.Unmarshal(data, dst); err != nil {
		return false, fmt.Errorf("unmarshal %s snapshot: %w", resource, err)
	}
	return true, nil
}

// Store replaces the snapshot for resource with v, expiring after the TTL.
func (c *Redis) Store(ctx context.Context, resource domain.ResourceType, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s snapshot: %w", resource, err)
	}

	if err := c.client.Set(ctx, c.Key(resource), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("set %s snapshot: %w", resource, err)
	}
	return nil
}

// Invalidate drops the snapshot for resource.
func (c *Redis) Invalidate(ctx context.Context, resource domain.ResourceType) error {
	if err := c.client.Del(ctx, c.Key(resource)).Err(); err != nil {
		return fmt.Errorf("del %s snapshot: %w", resource, err)
	}
	return nil
}

// Ping reports whether Redis answers. Used by the readiness probe.
func (c *Redis) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close releases the connection when NewRedis created it.
func (c *Redis) Close() error {
	if c.closer == nil {
		return nil
	}
	return c.closer()
}

// Nop is used when caching is disabled. Every Load misses.
type Nop struct{}

func (Nop) Load(context.Context, domain.ResourceType, any) (bool, error) { return false, nil }
func (Nop) Store(context.Context, domain.ResourceType, any) error { return nil }
func (Nop) Invalidate(context.Context, domain.ResourceType) error { return nil }
func (Nop) Ping(context.Context) error { return nil }
func (Nop) Close() error { return nil }
