// ABOUTME: Refresh orchestrator resolving one LogoRecord per enabled site
// ABOUTME: Applies the override-scrape-fallback decision chain and persists the result set

package refresher

import (
	"context"
	"sync"
	"time"

	"logogrid-app/core/domain"
	coreerrors "logogrid-app/core/errors"
	"logogrid-app/core/interfaces"
	"logogrid-app/pkg/utils/slug"
)

// Options configures the refresh orchestrator
type Options struct {
	// Concurrency is the number of sites resolved in parallel.
	// 1 keeps the run strictly sequential.
	Concurrency int
}

// cacheInvalidator is implemented by extractors that cache their results.
// A single-site refresh always wants a fresh scrape.
type cacheInvalidator interface {
	Invalidate(ctx context.Context, siteURL string)
}

// Service orchestrates the logo resolution pipeline
type Service struct {
	deps        interfaces.Dependencies
	catalog     interfaces.SiteCatalog
	store       interfaces.RecordStore
	extractor   interfaces.LogoExtractor
	processor   interfaces.ImageProcessor
	placeholder interfaces.PlaceholderGenerator
	accent      interfaces.AccentColorService
	opts        Options
}

// NewService creates a refresh orchestrator. The accent service may be
// nil, in which case records carry no accent color.
func NewService(
	deps interfaces.Dependencies,
	catalog interfaces.SiteCatalog,
	store interfaces.RecordStore,
	extractor interfaces.LogoExtractor,
	processor interfaces.ImageProcessor,
	placeholder interfaces.PlaceholderGenerator,
	accent interfaces.AccentColorService,
	opts Options,
) *Service {
	if opts.Concurrency < 1 {
		opts.Concurrency = 1
	}
	return &Service{
		deps:        deps,
		catalog:     catalog,
		store:       store,
		extractor:   extractor,
		processor:   processor,
		placeholder: placeholder,
		accent:      accent,
		opts:        opts,
	}
}

// RefreshAll resolves every enabled site and replaces the persisted
// record set wholesale. Per-site failures degrade through the fallback
// chain; the only fatal condition is an unreadable catalog.
func (s *Service) RefreshAll(ctx context.Context) (*domain.RefreshSummary, error) {
	start := time.Now()

	sites, err := s.catalog.Sites(ctx)
	if err != nil {
		return nil, err
	}

	prior := s.loadPrior(ctx)

	summary := &domain.RefreshSummary{}
	var enabled []domain.SiteSpec
	for _, site := range sites {
		if !site.Enabled {
			summary.Skipped++
			s.deps.Logger.Debug("Skipping disabled site", map[string]interface{}{
				"url": site.URL,
			})
			continue
		}
		enabled = append(enabled, site)
	}

	records := make([]domain.LogoRecord, len(enabled))
	sem := make(chan struct{}, s.opts.Concurrency)
	var wg sync.WaitGroup

	for i, site := range enabled {
		if ctx.Err() != nil {
			break
		}
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, site domain.SiteSpec) {
			defer wg.Done()
			defer func() { <-sem }()
			records[i] = s.resolveSite(ctx, site, prior)
		}(i, site)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// One write after all workers are done; never incremental
	if err := s.store.ReplaceAll(ctx, records); err != nil {
		return nil, coreerrors.WrapError(err, "failed to persist record set")
	}

	for _, record := range records {
		summary.Add(record)
	}
	summary.Duration = time.Since(start)

	s.deps.Logger.Info("Refresh complete", map[string]interface{}{
		"total":    summary.Total,
		"ok":       summary.OK,
		"fallback": summary.Fallback,
		"errored":  summary.Errored,
		"skipped":  summary.Skipped,
		"duration": summary.Duration.String(),
	})

	return summary, nil
}

// RefreshSingle recomputes the record for one site and splices it into
// the persisted set, leaving all other records untouched.
func (s *Service) RefreshSingle(ctx context.Context, siteURL string) (*domain.LogoRecord, error) {
	site, err := s.catalog.Site(ctx, siteURL)
	if err != nil {
		return nil, err
	}

	if !site.Enabled {
		return nil, &coreerrors.ValidationError{URL: siteURL, Reason: "site is disabled"}
	}

	// A targeted refresh means the caller wants a fresh scrape, not a
	// replay of a cached extraction.
	if inv, ok := s.extractor.(cacheInvalidator); ok {
		inv.Invalidate(ctx, siteURL)
	}

	record := s.resolveSite(ctx, *site, s.loadPrior(ctx))

	if err := s.store.Splice(ctx, record); err != nil {
		return nil, coreerrors.WrapError(err, "failed to persist record")
	}

	return &record, nil
}

// resolveSite resolves exactly one record via the decision chain:
// manual override, then scrape+process, then the fallback chain.
func (s *Service) resolveSite(ctx context.Context, site domain.SiteSpec, prior map[string]domain.LogoRecord) domain.LogoRecord {
	now := time.Now().UTC()

	record := domain.LogoRecord{
		SiteURL:       site.URL,
		DisplayName:   site.DisplayName(),
		LastCheckedAt: now,
		Category:      site.Category,
		Country:       site.Country,
	}

	// Manual override wins unconditionally; scraping is skipped
	if site.FallbackLogoURL != "" {
		record.LogoURL = site.FallbackLogoURL
		record.Status = domain.StatusOK
		record.ExtractionMethod = domain.MethodManual
		s.deps.Logger.Info("Using manual override", map[string]interface{}{
			"url":  site.URL,
			"logo": site.FallbackLogoURL,
		})
		return record
	}

	extraction := s.extractor.Extract(ctx, site.URL)
	if extraction.Found() {
		processed, err := s.processor.Process(ctx, extraction.CandidateURL, slug.Domain(site.Domain()))
		if err == nil {
			record.LogoURL = processed.CachedPath
			record.Status = domain.StatusOK
			record.ExtractionMethod = extraction.Method
			if s.accent != nil {
				color := s.accent.ExtractFromImage(ctx, processed.Image, processed.ContentHash)
				record.AccentColor = color.Hex()
			}
			s.deps.Logger.Info("Resolved logo", map[string]interface{}{
				"url":    site.URL,
				"method": string(extraction.Method),
				"logo":   record.LogoURL,
			})
			return record
		}
		return s.fallback(site, record, prior, err.Error())
	}

	return s.fallback(site, record, prior, extraction.Error)
}

// fallback resolves a record after extraction or processing failed:
// retain a known-good prior record, else generate a placeholder.
func (s *Service) fallback(site domain.SiteSpec, record domain.LogoRecord, prior map[string]domain.LogoRecord, failure string) domain.LogoRecord {
	if previous, ok := prior[site.URL]; ok && previous.Retainable() {
		record.LogoURL = previous.LogoURL
		record.Status = previous.Status
		record.ExtractionMethod = previous.ExtractionMethod
		record.AccentColor = previous.AccentColor
		record.ErrorMessage = failure
		s.deps.Logger.Warn("Retaining previous logo after failure", map[string]interface{}{
			"url":   site.URL,
			"error": failure,
		})
		return record
	}

	placeholderPath, err := s.placeholder.Generate(site.DisplayName(), site.Domain())
	if err != nil {
		record.Status = domain.StatusError
		record.ErrorMessage = failure + "; placeholder generation failed: " + err.Error()
		record.ExtractionMethod = domain.MethodNone
		s.deps.Logger.Error("Failed to resolve any logo", map[string]interface{}{
			"url":   site.URL,
			"error": record.ErrorMessage,
		})
		return record
	}

	record.LogoURL = placeholderPath
	record.Status = domain.StatusFallback
	record.ExtractionMethod = domain.MethodNone
	record.ErrorMessage = failure
	s.deps.Logger.Warn("Using placeholder", map[string]interface{}{
		"url":   site.URL,
		"error": failure,
	})
	return record
}

// loadPrior reads the persisted set into a lookup map. A corrupt or
// missing store degrades to an empty history, never a fatal error.
func (s *Service) loadPrior(ctx context.Context) map[string]domain.LogoRecord {
	records, err := s.store.Load(ctx)
	if err != nil {
		s.deps.Logger.Warn("Failed to load prior records", map[string]interface{}{
			"error": err.Error(),
		})
		return map[string]domain.LogoRecord{}
	}

	prior := make(map[string]domain.LogoRecord, len(records))
	for _, record := range records {
		prior[record.SiteURL] = record
	}
	return prior
}
