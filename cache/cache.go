package cache

import (
	"context"
	"time"
)

// Cache is the key-value accelerator consumed by the catalog service.
// Entries are disposable copies of authoritative data: implementations may
// evict or drop them at any time, and callers must treat every failure as
// recoverable. A cache outage costs latency, never correctness.
type Cache interface {
	// Get returns the entry stored under key, reporting a miss when the key
	// is absent or expired.
	Get(ctx context.Context, key string) (any, bool, error)

	// Set stores value under key for at most ttl. A non-positive ttl lets
	// the implementation fall back to its default.
	Set(ctx context.Context, key string, value any, ttl time.Duration) error

	// Remove drops a single entry.
	Remove(ctx context.Context, key string) error

	// RemoveByPrefix drops every entry whose key starts with prefix, used to
	// clear a logical namespace in one call.
	RemoveByPrefix(ctx context.Context, prefix string) error
}

// GetTyped is a type-safe wrapper around Cache.Get. Entries of the wrong type
// are reported as misses so callers fall through to the source of truth.
func GetTyped[T any](ctx context.Context, c Cache, key string) (T, bool, error) {
	var zero T
	v, ok, err := c.Get(ctx, key)
	if err != nil || !ok {
		return zero, false, err
	}
	typed, ok := v.(T)
	if !ok {
		return zero, false, nil
	}
	return typed, true, nil
}
