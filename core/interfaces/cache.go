package interfaces

import (
	"context"
	"time"
)

// Cache defines the interface for cache operations.
// Implementations store opaque byte values under string keys with an
// optional TTL. The pipeline uses it for extraction results and accent
// colors so repeated refreshes do not re-hammer sites.
//
// Example usage:
//
//	cache := someCache // implements Cache interface
//	err := cache.Set(ctx, "extraction:https://example.mv", data, 6*time.Hour)
//	data, err := cache.Get(ctx, "extraction:https://example.mv")
type Cache interface {
	// Get retrieves a value from the cache by key.
	// Returns the cached data as []byte or an error if the key doesn't exist.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value in the cache with the given key and TTL.
	// If ttl is 0, the value should be stored indefinitely.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value from the cache by key.
	// Returns nil if the key doesn't exist.
	Delete(ctx context.Context, key string) error
}
