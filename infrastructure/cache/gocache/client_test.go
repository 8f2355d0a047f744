package gocache

import (
	"context"
	"testing"
	"time"
)

func TestGoCache_SetGet(t *testing.T) {
	cache := NewGoCache(time.Hour, time.Hour)
	ctx := context.Background()

	if err := cache.Set(ctx, "key1", []byte("value1"), time.Hour); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	value, err := cache.Get(ctx, "key1")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if string(value) != "value1" {
		t.Errorf("Get = %s, want value1", string(value))
	}
}

func TestGoCache_Miss(t *testing.T) {
	cache := NewGoCache(time.Hour, time.Hour)

	_, err := cache.Get(context.Background(), "missing")
	if err != ErrCacheMiss {
		t.Errorf("Get error = %v, want ErrCacheMiss", err)
	}
}

func TestGoCache_Expiration(t *testing.T) {
	cache := NewGoCache(time.Hour, time.Hour)
	ctx := context.Background()

	cache.Set(ctx, "ephemeral", []byte("v"), 10*time.Millisecond)
	time.Sleep(20 * time.Millisecond)

	if _, err := cache.Get(ctx, "ephemeral"); err == nil {
		t.Error("Get should return an error for expired keys")
	}
}

func TestGoCache_ZeroTTLNeverExpires(t *testing.T) {
	cache := NewGoCache(10*time.Millisecond, time.Hour)
	ctx := context.Background()

	cache.Set(ctx, "forever", []byte("v"), 0)
	time.Sleep(20 * time.Millisecond)

	if _, err := cache.Get(ctx, "forever"); err != nil {
		t.Errorf("Get returned error for zero-TTL key: %v", err)
	}
}

func TestGoCache_Delete(t *testing.T) {
	cache := NewGoCache(time.Hour, time.Hour)
	ctx := context.Background()

	cache.Set(ctx, "key1", []byte("v"), time.Hour)
	cache.Delete(ctx, "key1")

	if _, err := cache.Get(ctx, "key1"); err == nil {
		t.Error("Get should return an error after Delete")
	}
}
