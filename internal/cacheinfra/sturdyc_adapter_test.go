package cacheinfra

import (
	"context"
	"errors"
	"testing"
	"time"
)

func validConfig() Config {
	return Config{
		Capacity:           100,
		NumShards:          4,
		DefaultTTL:         time.Minute,
		EvictionPercentage: 10,
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantField string
	}{
		{name: "valid", mutate: func(c *Config) {}, wantField: ""},
		{name: "zero capacity", mutate: func(c *Config) { c.Capacity = 0 }, wantField: "Capacity"},
		{name: "zero shards", mutate: func(c *Config) { c.NumShards = 0 }, wantField: "NumShards"},
		{name: "zero ttl", mutate: func(c *Config) { c.DefaultTTL = 0 }, wantField: "DefaultTTL"},
		{name: "eviction percentage too low", mutate: func(c *Config) { c.EvictionPercentage = 0 }, wantField: "EvictionPercentage"},
		{name: "eviction percentage too high", mutate: func(c *Config) { c.EvictionPercentage = 101 }, wantField: "EvictionPercentage"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}

			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("Validate() error = %v, want *ConfigError", err)
			}
			if cfgErr.Field != tt.wantField {
				t.Errorf("ConfigError.Field = %q, want %q", cfgErr.Field, tt.wantField)
			}
		})
	}
}

func TestNewSturdycCacheRejectsInvalidConfig(t *testing.T) {
	cfg := validConfig()
	cfg.Capacity = -1
	if _, err := NewSturdycCache(cfg); err == nil {
		t.Error("NewSturdycCache() accepted invalid config")
	}
}

func TestSetGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	c, err := NewSturdycCache(validConfig())
	if err != nil {
		t.Fatalf("NewSturdycCache() error = %v", err)
	}

	if err := c.Set(ctx, "k1", "v1", time.Minute); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	got, ok, err := c.Get(ctx, "k1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !ok || got != "v1" {
		t.Errorf("Get() = (%v, %v), want (v1, true)", got, ok)
	}

	if _, ok, _ := c.Get(ctx, "absent"); ok {
		t.Error("Get() reported a hit for an absent key")
	}
}

func TestSetDefaultTTLFallback(t *testing.T) {
	ctx := context.Background()
	c, err := NewSturdycCache(validConfig())
	if err != nil {
		t.Fatalf("NewSturdycCache() error = %v", err)
	}

	if err := c.Set(ctx, "k", "v", 0); err != nil {
		t.Fatalf("Set() with zero ttl error = %v", err)
	}
	if _, ok, _ := c.Get(ctx, "k"); !ok {
		t.Error("entry stored under the default TTL bucket was not readable")
	}
}

func TestDistinctTTLBucketsCoexist(t *testing.T) {
	ctx := context.Background()
	c, err := NewSturdycCache(validConfig())
	if err != nil {
		t.Fatalf("NewSturdycCache() error = %v", err)
	}

	if err := c.Set(ctx, "item", "a", 5*time.Minute); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := c.Set(ctx, "listing", "b", time.Minute); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	if got, ok, _ := c.Get(ctx, "item"); !ok || got != "a" {
		t.Errorf("Get(item) = (%v, %v), want (a, true)", got, ok)
	}
	if got, ok, _ := c.Get(ctx, "listing"); !ok || got != "b" {
		t.Errorf("Get(listing) = (%v, %v), want (b, true)", got, ok)
	}
}

func TestSetSupersedesEntryInOtherBucket(t *testing.T) {
	ctx := context.Background()
	c, err := NewSturdycCache(validConfig())
	if err != nil {
		t.Fatalf("NewSturdycCache() error = %v", err)
	}

	if err := c.Set(ctx, "k", "old", 5*time.Minute); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := c.Set(ctx, "k", "new", time.Minute); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	got, ok, _ := c.Get(ctx, "k")
	if !ok || got != "new" {
		t.Errorf("Get() = (%v, %v), want (new, true) after TTL change", got, ok)
	}
}

func TestRemove(t *testing.T) {
	ctx := context.Background()
	c, err := NewSturdycCache(validConfig())
	if err != nil {
		t.Fatalf("NewSturdycCache() error = %v", err)
	}

	if err := c.Set(ctx, "k", "v", time.Minute); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := c.Remove(ctx, "k"); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if _, ok, _ := c.Get(ctx, "k"); ok {
		t.Error("entry survived Remove()")
	}
}

func TestRemoveByPrefixClearsNamespaceAcrossBuckets(t *testing.T) {
	ctx := context.Background()
	c, err := NewSturdycCache(validConfig())
	if err != nil {
		t.Fatalf("NewSturdycCache() error = %v", err)
	}

	entries := map[string]time.Duration{
		"product::list::a": time.Minute,
		"product::list::b": 2 * time.Minute,
		"product::42":      5 * time.Minute,
	}
	for key, ttl := range entries {
		if err := c.Set(ctx, key, "v", ttl); err != nil {
			t.Fatalf("Set(%s) error = %v", key, err)
		}
	}

	if err := c.RemoveByPrefix(ctx, "product::list::"); err != nil {
		t.Fatalf("RemoveByPrefix() error = %v", err)
	}

	if _, ok, _ := c.Get(ctx, "product::list::a"); ok {
		t.Error("listing entry in first bucket survived namespace clear")
	}
	if _, ok, _ := c.Get(ctx, "product::list::b"); ok {
		t.Error("listing entry in second bucket survived namespace clear")
	}
	if _, ok, _ := c.Get(ctx, "product::42"); !ok {
		t.Error("item entry outside the namespace was removed")
	}
}
