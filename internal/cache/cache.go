// Package cache memoizes derived prediction results. Values are stored as
// JSON so the Redis and in-memory implementations are interchangeable.
package cache

import (
	"context"
	"time"
)

// Cache is a JSON value store with per-entry expiry.
type Cache interface {
	// Get decodes the value stored under key into dst. It reports false
	// when the key is absent or expired.
	Get(ctx context.Context, key string, dst any) (bool, error)
	// Set stores value under key for ttl. A non-positive ttl never expires.
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Close() error
}
