package cacheinfra

import (
	"context"
	"strings"
	"time"

	"github.com/puzpuzpuz/xsync/v3"
	"github.com/viccon/sturdyc"
)

// Config holds the configuration for the sturdyc cache adapter.
type Config struct {
	// Capacity defines the maximum number of entries each TTL bucket can
	// store. Must be greater than 0.
	Capacity int

	// NumShards determines the number of cache shards for concurrent access.
	// Higher values improve concurrency but increase memory overhead.
	// Must be greater than 0. Default: 256
	NumShards int

	// DefaultTTL is applied when Set is called with a non-positive TTL.
	// Must be greater than 0.
	DefaultTTL time.Duration

	// EvictionPercentage specifies what percentage of entries to evict
	// when a bucket reaches its capacity. Must be between 1-100.
	// Default: 10 (evict 10% of entries)
	EvictionPercentage int

	// EvictionInterval sets how often the cache checks for expired entries.
	// Zero value uses the sturdyc default.
	EvictionInterval time.Duration
}

// DefaultConfig returns a Config with sensible defaults for most use cases.
func DefaultConfig() Config {
	return Config{
		Capacity:           10000,
		NumShards:          256,
		DefaultTTL:         5 * time.Minute,
		EvictionPercentage: 10,
	}
}

// Validate checks if the configuration values are valid.
// Returns an error if any configuration parameter is invalid.
func (c Config) Validate() error {
	if c.Capacity <= 0 {
		return &ConfigError{Field: "Capacity", Message: "must be greater than 0"}
	}
	if c.NumShards <= 0 {
		return &ConfigError{Field: "NumShards", Message: "must be greater than 0"}
	}
	if c.DefaultTTL <= 0 {
		return &ConfigError{Field: "DefaultTTL", Message: "must be greater than 0"}
	}
	if c.EvictionPercentage < 1 || c.EvictionPercentage > 100 {
		return &ConfigError{Field: "EvictionPercentage", Message: "must be between 1 and 100"}
	}
	return nil
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "config error in field " + e.Field + ": " + e.Message
}

// sturdycCache implements cache.Cache on top of sturdyc. sturdyc fixes the
// TTL per client rather than per entry, so the adapter keeps one lazily
// created client per distinct TTL and fans reads out across the buckets.
// Callers use a small, fixed set of TTLs (item and listing), so the fan-out
// stays cheap.
type sturdycCache struct {
	cfg     Config
	clients *xsync.MapOf[time.Duration, *sturdyc.Client[any]]
}

// NewSturdycCache creates a new sturdyc cache adapter after validating the
// configuration.
//
// Version compatibility note: this implementation assumes sturdyc v1.x API.
// Monitor sturdyc version upgrades for potential option mapping changes.
func NewSturdycCache(cfg Config) (*sturdycCache, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &sturdycCache{
		cfg:     cfg,
		clients: xsync.NewMapOf[time.Duration, *sturdyc.Client[any]](),
	}, nil
}

func (s *sturdycCache) client(ttl time.Duration) *sturdyc.Client[any] {
	if ttl <= 0 {
		ttl = s.cfg.DefaultTTL
	}
	c, _ := s.clients.LoadOrCompute(ttl, func() *sturdyc.Client[any] {
		var opts []sturdyc.Option
		if s.cfg.EvictionInterval > 0 {
			opts = append(opts, sturdyc.WithEvictionInterval(s.cfg.EvictionInterval))
		}
		return sturdyc.New[any](
			s.cfg.Capacity,
			s.cfg.NumShards,
			ttl,
			s.cfg.EvictionPercentage,
			opts...,
		)
	})
	return c
}

// Get implements cache.Cache.Get by scanning the TTL buckets for key.
func (s *sturdycCache) Get(ctx context.Context, key string) (any, bool, error) {
	var value any
	var found bool
	s.clients.Range(func(_ time.Duration, c *sturdyc.Client[any]) bool {
		if v, ok := c.Get(key); ok {
			value, found = v, true
			return false
		}
		return true
	})
	return value, found, nil
}

// Set implements cache.Cache.Set, storing value in the bucket matching ttl.
// An entry for the same key in another bucket is dropped first so reads
// cannot observe a value that was superseded under a different TTL.
func (s *sturdycCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	target := s.client(ttl)
	s.clients.Range(func(_ time.Duration, c *sturdyc.Client[any]) bool {
		if c != target {
			c.Delete(key)
		}
		return true
	})
	target.Set(key, value)
	return nil
}

// Remove implements cache.Cache.Remove, dropping key from every bucket.
func (s *sturdycCache) Remove(ctx context.Context, key string) error {
	s.clients.Range(func(_ time.Duration, c *sturdyc.Client[any]) bool {
		c.Delete(key)
		return true
	})
	return nil
}

// RemoveByPrefix implements cache.Cache.RemoveByPrefix, dropping every key
// under the logical namespace across all buckets.
func (s *sturdycCache) RemoveByPrefix(ctx context.Context, prefix string) error {
	s.clients.Range(func(_ time.Duration, c *sturdyc.Client[any]) bool {
		for _, key := range c.ScanKeys() {
			if strings.HasPrefix(key, prefix) {
				c.Delete(key)
			}
		}
		return true
	})
	return nil
}
