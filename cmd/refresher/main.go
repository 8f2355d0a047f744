// ABOUTME: Main entry point for the logo refresher
// ABOUTME: Wires configuration, cache backend and pipeline services, then runs a refresh

package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"logogrid-app/core/colors"
	"logogrid-app/core/domain"
	"logogrid-app/core/extractor"
	"logogrid-app/core/imageproc"
	"logogrid-app/core/interfaces"
	"logogrid-app/core/placeholder"
	"logogrid-app/core/refresher"
	"logogrid-app/infrastructure/cache/gocache"
	"logogrid-app/infrastructure/cache/memory"
	"logogrid-app/infrastructure/cache/redis"
	"logogrid-app/infrastructure/cache/sqlite"
	catalogfile "logogrid-app/infrastructure/catalog/file"
	stdhttp "logogrid-app/infrastructure/http/standard"
	logruslogger "logogrid-app/infrastructure/logger/logrus"
	storefile "logogrid-app/infrastructure/store/file"
	"logogrid-app/pkg/config"
)

func main() {
	siteURL := flag.String("site", "", "refresh a single site by catalog URL instead of the full set")
	logLevel := flag.String("log-level", "info", "log level (debug, info, warn, error)")
	flag.Parse()

	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := logruslogger.NewLogger(*logLevel)
	logger.Info("Starting logo refresher", map[string]interface{}{
		"catalog":     cfg.Paths.SitesPath,
		"store":       cfg.Paths.LogosPath,
		"cache_type":  cfg.Cache.Type,
		"concurrency": cfg.Refresh.Concurrency,
	})

	cache := newCache(cfg, logger)

	httpClient := stdhttp.NewStandardHTTPClient(stdhttp.Options{
		Timeout:      time.Duration(cfg.Scraper.TimeoutSeconds) * time.Second,
		MaxRetries:   cfg.Scraper.MaxRetries,
		UserAgent:    cfg.Scraper.UserAgent,
		RateLimitRPS: cfg.Scraper.RateLimitRPS,
	})

	deps := interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: httpClient,
		Logger:     logger,
	}

	extractorService := extractor.NewService(deps, extractor.Options{
		UserAgent: cfg.Scraper.UserAgent,
		CacheTTL:  time.Duration(cfg.Refresh.ExtractionCacheTTLSeconds) * time.Second,
	})
	processorService := imageproc.NewService(imageproc.Options{
		CacheDir:        cfg.Paths.LogoCacheDir,
		PublicPath:      cfg.Paths.PublicCachePath,
		MaxSizeMB:       cfg.Image.MaxSizeMB,
		OutputSize:      cfg.Image.OutputSize,
		DownloadTimeout: time.Duration(cfg.Image.DownloadTimeoutSeconds) * time.Second,
		UserAgent:       cfg.Scraper.UserAgent,
	}, logger)
	placeholderService := placeholder.NewGenerator(cfg.Paths.PlaceholderDir, cfg.Paths.PublicPlaceholderPath)
	accentService := colors.NewService(deps)

	refreshService := refresher.NewService(
		deps,
		catalogfile.NewCatalog(cfg.Paths.SitesPath),
		storefile.NewStore(cfg.Paths.LogosPath),
		extractorService,
		processorService,
		placeholderService,
		accentService,
		refresher.Options{Concurrency: cfg.Refresh.Concurrency},
	)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if *siteURL != "" {
		record, err := refreshService.RefreshSingle(ctx, *siteURL)
		if err != nil {
			logger.Error("Single-site refresh failed", map[string]interface{}{
				"url":   *siteURL,
				"error": err.Error(),
			})
			os.Exit(1)
		}
		logger.Info("Site refreshed", map[string]interface{}{
			"url":    record.SiteURL,
			"status": string(record.Status),
			"method": string(record.ExtractionMethod),
			"logo":   record.LogoURL,
		})
		return
	}

	summary, err := refreshService.RefreshAll(ctx)
	if err != nil {
		logger.Error("Refresh failed", map[string]interface{}{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	for _, outcome := range summary.Outcomes {
		if outcome.Status == domain.StatusOK {
			continue
		}
		logger.Warn("Degraded site", map[string]interface{}{
			"url":     outcome.SiteURL,
			"status":  string(outcome.Status),
			"message": outcome.Message,
		})
	}

	if summary.Errored > 0 {
		os.Exit(1)
	}
}

// newCache selects the cache backend from configuration. A failed Redis
// connection degrades to the in-memory cache instead of aborting.
func newCache(cfg *config.Config, logger interfaces.Logger) interfaces.Cache {
	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := redis.NewRedisCache(cfg.Cache.Redis)
		if err != nil {
			logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			return memory.NewMemoryCache()
		}
		logger.Info("Using Redis cache", map[string]interface{}{
			"address": cfg.Cache.Redis.Address,
		})
		return redisCache
	case "sqlite":
		sqliteCache, err := sqlite.NewSQLiteCache(cfg.Cache.SQLitePath)
		if err != nil {
			logger.Error("Failed to create SQLite cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			return memory.NewMemoryCache()
		}
		logger.Info("Using SQLite cache", map[string]interface{}{
			"path": cfg.Cache.SQLitePath,
		})
		return sqliteCache
	case "gocache":
		expiration := time.Duration(cfg.Cache.DefaultExpirationSeconds) * time.Second
		logger.Info("Using go-cache", nil)
		return gocache.NewGoCache(expiration, 2*expiration)
	default:
		logger.Info("Using memory cache", nil)
		return memory.NewMemoryCache()
	}
}
