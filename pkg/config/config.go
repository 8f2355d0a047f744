// ABOUTME: Configuration management for the refresher with environment variable support
// ABOUTME: Defines configuration structures for scraping, image processing, caching and paths

package config

import (
	"errors"
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	// Scraper contains page fetching configuration
	Scraper ScraperConfig

	// Image contains image processing configuration
	Image ImageConfig

	// Refresh contains orchestration configuration
	Refresh RefreshConfig

	// Paths contains catalog, store and cache locations
	Paths PathsConfig

	// Cache contains cache backend configuration
	Cache CacheConfig
}

// ScraperConfig holds page fetching configuration
type ScraperConfig struct {
	// TimeoutSeconds is the per-request timeout for page fetches
	TimeoutSeconds int

	// MaxRetries is the number of additional attempts after a failure
	MaxRetries int

	// UserAgent identifies the scraper to remote sites
	UserAgent string

	// RateLimitRPS caps outbound requests per second (0 disables)
	RateLimitRPS float64
}

// ImageConfig holds image processing configuration
type ImageConfig struct {
	// MaxSizeMB caps the downloaded payload size
	MaxSizeMB int

	// OutputSize is the maximum edge length of cached images
	OutputSize int

	// DownloadTimeoutSeconds is the per-request timeout for image downloads
	DownloadTimeoutSeconds int
}

// RefreshConfig holds orchestration configuration
type RefreshConfig struct {
	// Concurrency is the number of sites processed in parallel.
	// 1 preserves strictly sequential processing.
	Concurrency int

	// ExtractionCacheTTLSeconds is how long extraction results are
	// reused across refreshes (0 disables the cache)
	ExtractionCacheTTLSeconds int
}

// PathsConfig holds filesystem locations and their public mounts
type PathsConfig struct {
	// SitesPath is the JSON site catalog
	SitesPath string

	// LogosPath is the persisted record set
	LogosPath string

	// LogoCacheDir is where processed images are written
	LogoCacheDir string

	// PlaceholderDir is where generated placeholders are written
	PlaceholderDir string

	// PublicCachePath is the renderer-relative mount of LogoCacheDir
	PublicCachePath string

	// PublicPlaceholderPath is the renderer-relative mount of PlaceholderDir
	PublicPlaceholderPath string
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (memory/gocache/sqlite/redis)
	Type string

	// Redis contains Redis-specific configuration
	Redis RedisConfig

	// SQLitePath is the database file for the sqlite backend
	SQLitePath string

	// DefaultExpirationSeconds is the default TTL for the gocache backend
	DefaultExpirationSeconds int
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Scraper: ScraperConfig{
			TimeoutSeconds: getEnvAsIntOrDefault("SCRAPER_TIMEOUT", 45),
			MaxRetries:     getEnvAsIntOrDefault("SCRAPER_MAX_RETRIES", 2),
			UserAgent:      getEnvOrDefault("SCRAPER_USER_AGENT", "LogoGrid/1.0 (+https://logogrid.example.com)"),
			RateLimitRPS:   getEnvAsFloatOrDefault("SCRAPER_RATE_LIMIT_RPS", 0),
		},
		Image: ImageConfig{
			MaxSizeMB:              getEnvAsIntOrDefault("IMAGE_MAX_SIZE_MB", 5),
			OutputSize:             getEnvAsIntOrDefault("IMAGE_OUTPUT_SIZE", 400),
			DownloadTimeoutSeconds: getEnvAsIntOrDefault("IMAGE_DOWNLOAD_TIMEOUT", 30),
		},
		Refresh: RefreshConfig{
			Concurrency:               getEnvAsIntOrDefault("REFRESH_CONCURRENCY", 1),
			ExtractionCacheTTLSeconds: getEnvAsIntOrDefault("EXTRACTION_CACHE_TTL", 0),
		},
		Paths: PathsConfig{
			SitesPath:             getEnvOrDefault("SITES_PATH", "config/sites.json"),
			LogosPath:             getEnvOrDefault("LOGOS_PATH", "data/logos.json"),
			LogoCacheDir:          getEnvOrDefault("LOGO_CACHE_DIR", "static/cached-logos"),
			PlaceholderDir:        getEnvOrDefault("PLACEHOLDER_DIR", "static/placeholders"),
			PublicCachePath:       getEnvOrDefault("PUBLIC_CACHE_PATH", "/static/cached-logos"),
			PublicPlaceholderPath: getEnvOrDefault("PUBLIC_PLACEHOLDER_PATH", "/static/placeholders"),
		},
		Cache: CacheConfig{
			Type: getEnvOrDefault("CACHE_TYPE", "memory"),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
			SQLitePath:               getEnvOrDefault("SQLITE_CACHE_PATH", "data/cache.db"),
			DefaultExpirationSeconds: getEnvAsIntOrDefault("CACHE_DEFAULT_EXPIRATION", 3600),
		},
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsFloatOrDefault returns the environment variable as float64 or a default
func getEnvAsFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Scraper.TimeoutSeconds < 1 {
		return errors.New("scraper timeout must be at least 1 second")
	}

	if c.Scraper.MaxRetries < 0 {
		return errors.New("scraper max retries cannot be negative")
	}

	if c.Scraper.UserAgent == "" {
		return errors.New("scraper user agent cannot be empty")
	}

	if c.Image.MaxSizeMB < 1 {
		return errors.New("image max size must be at least 1 MB")
	}

	if c.Image.OutputSize < 32 {
		return errors.New("image output size must be at least 32 pixels")
	}

	if c.Refresh.Concurrency < 1 {
		return errors.New("refresh concurrency must be at least 1")
	}

	if c.Paths.SitesPath == "" || c.Paths.LogosPath == "" {
		return errors.New("catalog and record store paths cannot be empty")
	}

	if c.Paths.LogoCacheDir == "" || c.Paths.PlaceholderDir == "" {
		return errors.New("cache directories cannot be empty")
	}

	switch c.Cache.Type {
	case "memory", "gocache", "sqlite", "redis":
	default:
		return errors.New("cache type must be 'memory', 'gocache', 'sqlite' or 'redis'")
	}

	if c.Cache.Type == "redis" && c.Cache.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis cache")
	}

	if c.Cache.Type == "sqlite" && c.Cache.SQLitePath == "" {
		return errors.New("sqlite cache path cannot be empty when using sqlite cache")
	}

	return nil
}
