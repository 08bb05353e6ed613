package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/flowise/cycle-tracker/internal/logger"
)

const keyPrefix = "cycle-tracker:"

type redisCache struct {
	log *logger.Logger
	rdb *goredis.Client
}

// NewRedis connects to addr and verifies the connection with a ping.
func NewRedis(ctx context.Context, addr string, log *logger.Logger) (Cache, error) {
	if addr == "" {
		return nil, fmt.Errorf("missing redis address")
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return newRedisCache(rdb, log), nil
}

func newRedisCache(rdb *goredis.Client, log *logger.Logger) *redisCache {
	return &redisCache{log: log.With("component", "RedisCache"), rdb: rdb}
}

func (c *redisCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	raw, err := c.rdb.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("redis get: %w", err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		// A stale encoding is a miss, the caller recomputes and overwrites it.
		c.log.Warn("discarding undecodable cache entry", "key", key, "error", err)
		return false, nil
	}
	return true, nil
}

func (c *redisCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode cache value: %w", err)
	}
	if ttl < 0 {
		ttl = 0
	}
	return c.rdb.Set(ctx, keyPrefix+key, raw, ttl).Err()
}

func (c *redisCache) Close() error {
	return c.rdb.Close()
}
