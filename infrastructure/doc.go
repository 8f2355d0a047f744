// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as caching, HTTP communication, logging and persistence.
//
// The infrastructure package is organized by technical concern:
//
// - cache/memory: In-memory cache implementation using sync.Map
// - cache/gocache: Cache implementation backed by patrickmn/go-cache
// - cache/sqlite: Durable cache implementation backed by SQLite
// - cache/redis: Redis-based cache implementation
// - http/standard: Standard library HTTP client with retry and rate limiting
// - logger/logrus: Structured logger implementation on logrus
// - catalog/file: Read-only JSON site catalog
// - store/file: JSON record store with atomic writes
//
// # Design Philosophy
//
// Infrastructure components are designed to be:
// - Pluggable: Easy to swap implementations
// - Configurable: Accept configuration objects
// - Testable: Include both unit and integration tests
// - Production-ready: Include retries, timeouts, and error handling
//
// # Cache Implementations
//
// Memory Cache Example:
//
//	cache := memory.NewMemoryCache()
//	err := cache.Set(ctx, "key", []byte("value"), 1*time.Hour)
//	value, err := cache.Get(ctx, "key")
//
// Redis Cache Example:
//
//	cache, err := redis.NewRedisCache(config.RedisConfig{
//	    Address: "localhost:6379",
//	})
//
// # HTTP Client
//
// The HTTP client includes automatic retry logic for transient failures:
//
//	client := standard.NewStandardHTTPClient(standard.Options{
//	    Timeout:    45 * time.Second,
//	    MaxRetries: 2,
//	    UserAgent:  "LogoGrid/1.0",
//	})
//	resp, err := client.Get(ctx, "https://example.mv")
//	if err != nil {
//	    // Handle error
//	}
//	defer resp.Body().Close()
//
// # Logger
//
// The logger supports structured logging with fields:
//
//	logger := logrus.NewLogger("info")
//	logger.Info("Refreshing site", map[string]interface{}{
//	    "url": "https://example.mv",
//	})
package infrastructure
