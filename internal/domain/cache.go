package domain

import (
	"context"
	"time"
)

// Cache is a byte cache with per-entry TTL. It backs the review feed cache
// and the public form-token store; entries expire, they are never partially
// updated.
type Cache interface {
	// Get returns the value and true when key exists and has not expired.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
