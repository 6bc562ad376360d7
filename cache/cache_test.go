package cache

import (
	"context"
	"errors"
	"testing"
	"time"
)

// staticCache returns the same value for every key.
type staticCache struct {
	value any
	err   error
}

func (c *staticCache) Get(ctx context.Context, key string) (any, bool, error) {
	if c.err != nil {
		return nil, false, c.err
	}
	return c.value, c.value != nil, nil
}

func (c *staticCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	return nil
}

func (c *staticCache) Remove(ctx context.Context, key string) error { return nil }

func (c *staticCache) RemoveByPrefix(ctx context.Context, prefix string) error { return nil }

func TestGetTypedHit(t *testing.T) {
	c := &staticCache{value: 42}

	got, ok, err := GetTyped[int](context.Background(), c, "answer")
	if err != nil {
		t.Fatalf("GetTyped() error = %v", err)
	}
	if !ok || got != 42 {
		t.Errorf("GetTyped() = (%d, %v), want (42, true)", got, ok)
	}
}

func TestGetTypedPropagatesErrors(t *testing.T) {
	wantErr := errors.New("cache down")
	c := &staticCache{err: wantErr}

	_, ok, err := GetTyped[int](context.Background(), c, "answer")
	if !errors.Is(err, wantErr) {
		t.Errorf("GetTyped() error = %v, want %v", err, wantErr)
	}
	if ok {
		t.Error("GetTyped() reported a hit alongside an error")
	}
}

func TestConfigRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() error = %v", err)
	}

	cfg.Capacity = 0
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() accepted zero capacity")
	}
}

func TestNewConstructsWorkingCache(t *testing.T) {
	c, err := New(DefaultConfig())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	ctx := context.Background()
	if err := c.Set(ctx, "k", "v", time.Minute); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	got, ok, err := c.Get(ctx, "k")
	if err != nil || !ok || got != "v" {
		t.Errorf("Get() = (%v, %v, %v), want (v, true, nil)", got, ok, err)
	}
}
