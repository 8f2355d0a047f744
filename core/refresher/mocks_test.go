// ABOUTME: Hand-written mocks for refresher tests
// ABOUTME: Fake catalog, store, extractor, processor, placeholder and accent services

package refresher

import (
	"context"
	"errors"
	"image"
	"sync"

	"logogrid-app/core/domain"
	coreerrors "logogrid-app/core/errors"
)

type mockCatalog struct {
	sites    []domain.SiteSpec
	sitesErr error
}

func (m *mockCatalog) Sites(_ context.Context) ([]domain.SiteSpec, error) {
	if m.sitesErr != nil {
		return nil, m.sitesErr
	}
	return m.sites, nil
}

func (m *mockCatalog) Site(_ context.Context, siteURL string) (*domain.SiteSpec, error) {
	for _, site := range m.sites {
		if site.URL == siteURL {
			found := site
			return &found, nil
		}
	}
	return nil, &coreerrors.NotFoundError{Resource: "site", ID: siteURL}
}

type mockStore struct {
	mu       sync.Mutex
	records  []domain.LogoRecord
	replaced [][]domain.LogoRecord
	spliced  []domain.LogoRecord
	loadErr  error
	writeErr error
}

func (m *mockStore) Load(_ context.Context) ([]domain.LogoRecord, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.records, nil
}

func (m *mockStore) ReplaceAll(_ context.Context, records []domain.LogoRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.writeErr != nil {
		return m.writeErr
	}
	m.replaced = append(m.replaced, records)
	m.records = records
	return nil
}

func (m *mockStore) Splice(_ context.Context, record domain.LogoRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.writeErr != nil {
		return m.writeErr
	}
	m.spliced = append(m.spliced, record)
	kept := m.records[:0:0]
	for _, existing := range m.records {
		if existing.SiteURL != record.SiteURL {
			kept = append(kept, existing)
		}
	}
	m.records = append(kept, record)
	return nil
}

// mockExtractor serves canned extraction results keyed by site URL
type mockExtractor struct {
	mu          sync.Mutex
	results     map[string]domain.ExtractionResult
	calls       []string
	invalidated []string
}

func (m *mockExtractor) Extract(_ context.Context, siteURL string) domain.ExtractionResult {
	m.mu.Lock()
	m.calls = append(m.calls, siteURL)
	m.mu.Unlock()
	if result, ok := m.results[siteURL]; ok {
		return result
	}
	return domain.ExtractionResult{
		Method: domain.MethodNone,
		Status: domain.ExtractionError,
		Error:  "no logo found",
	}
}

func (m *mockExtractor) Invalidate(_ context.Context, siteURL string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.invalidated = append(m.invalidated, siteURL)
}

type mockProcessor struct {
	mu     sync.Mutex
	err    error
	calls  []string
	result *domain.ProcessedImage
}

func (m *mockProcessor) Process(_ context.Context, candidateURL, cacheKey string) (*domain.ProcessedImage, error) {
	m.mu.Lock()
	m.calls = append(m.calls, candidateURL)
	m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	if m.result != nil {
		return m.result, nil
	}
	return &domain.ProcessedImage{
		CachedPath:    "/static/cached-logos/" + cacheKey + ".png",
		CachedPathAlt: "/static/cached-logos/" + cacheKey + ".webp",
		ContentHash:   "abc123def456",
		Width:         180,
		Height:        180,
		Format:        "png",
	}, nil
}

type mockPlaceholder struct {
	mu    sync.Mutex
	err   error
	calls []string
}

func (m *mockPlaceholder) Generate(_ string, domainName string) (string, error) {
	m.mu.Lock()
	m.calls = append(m.calls, domainName)
	m.mu.Unlock()
	if m.err != nil {
		return "", m.err
	}
	return "/static/placeholders/" + domainName + ".svg", nil
}

type mockAccent struct {
	color domain.RGBColor
}

func (m *mockAccent) ExtractFromImage(_ context.Context, _ image.Image, _ string) domain.RGBColor {
	return m.color
}

type mockLogger struct{}

func (mockLogger) Debug(_ string, _ map[string]interface{}) {}
func (mockLogger) Info(_ string, _ map[string]interface{})  {}
func (mockLogger) Warn(_ string, _ map[string]interface{})  {}
func (mockLogger) Error(_ string, _ map[string]interface{}) {}

var errProcessing = errors.New("decode failed")
