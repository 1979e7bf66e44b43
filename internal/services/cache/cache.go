package cache

import (
	"context"
	"time"
)

// Cache stores opaque byte values under string keys for a bounded time
type Cache interface {
	// Get returns the value for key if it is present and not expired
	Get(ctx context.Context, key string) ([]byte, bool)

	// Set stores value under key. A non-positive ttl uses the cache default.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}

// Stats is a point-in-time view of cache usage
type Stats struct {
	Hits      int64 `json:"hits"`
	Misses    int64 `json:"misses"`
	Evictions int64 `json:"evictions"`
	Entries   int   `json:"entries"`
	SizeBytes int64 `json:"sizeBytes"`
	MaxBytes  int64 `json:"maxBytes"`
}
