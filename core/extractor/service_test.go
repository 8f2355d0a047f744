// ABOUTME: Tests for the extraction cascade service
// ABOUTME: Covers strategy order, relative URL resolution, caching, and failure modes

package extractor

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"logogrid-app/core/domain"
	"logogrid-app/core/interfaces"
)

func newTestService(client *mockHTTPClient, cache interfaces.Cache, opts Options) (*Service, *mockProber) {
	deps := interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: client,
		Logger:     &mockLogger{},
	}
	svc := NewService(deps, opts)
	prober := &mockProber{}
	svc.prober = prober
	return svc, prober
}

func page(body string) *mockResponse {
	return &mockResponse{
		body:     "<html><head>" + body + "</head><body></body></html>",
		finalURL: "https://example.mv/",
	}
}

func TestExtract_AppleTouchIconPicksLargest(t *testing.T) {
	client := &mockHTTPClient{responses: map[string]*mockResponse{
		"https://example.mv": page(
			`<link rel="apple-touch-icon" sizes="120x120" href="/icon-120.png">` +
				`<link rel="apple-touch-icon" sizes="180x180" href="/icon-180.png">`,
		),
	}}
	svc, _ := newTestService(client, nil, Options{})

	result := svc.Extract(context.Background(), "https://example.mv")

	if result.Status != domain.ExtractionOK {
		t.Fatalf("Status = %v, want %v", result.Status, domain.ExtractionOK)
	}
	if result.Method != domain.MethodAppleTouchIcon {
		t.Errorf("Method = %v, want %v", result.Method, domain.MethodAppleTouchIcon)
	}
	if result.CandidateURL != "https://example.mv/icon-180.png" {
		t.Errorf("CandidateURL = %v, want https://example.mv/icon-180.png", result.CandidateURL)
	}
}

func TestExtract_AppleTouchIconUnparsableSizes(t *testing.T) {
	client := &mockHTTPClient{responses: map[string]*mockResponse{
		"https://example.mv": page(
			`<link rel="apple-touch-icon" sizes="any" href="/icon-any.png">` +
				`<link rel="apple-touch-icon" sizes="57x57" href="/icon-57.png">`,
		),
	}}
	svc, _ := newTestService(client, nil, Options{})

	result := svc.Extract(context.Background(), "https://example.mv")

	if result.CandidateURL != "https://example.mv/icon-57.png" {
		t.Errorf("CandidateURL = %v, want https://example.mv/icon-57.png", result.CandidateURL)
	}
}

func TestExtract_FaviconPrefersSVG(t *testing.T) {
	client := &mockHTTPClient{responses: map[string]*mockResponse{
		"https://example.mv": page(
			`<link rel="icon" href="/favicon.png">` +
				`<link rel="icon" type="image/svg+xml" href="/favicon.svg">`,
		),
	}}
	svc, _ := newTestService(client, nil, Options{})

	result := svc.Extract(context.Background(), "https://example.mv")

	if result.Method != domain.MethodFavicon {
		t.Errorf("Method = %v, want %v", result.Method, domain.MethodFavicon)
	}
	if result.CandidateURL != "https://example.mv/favicon.svg" {
		t.Errorf("CandidateURL = %v, want https://example.mv/favicon.svg", result.CandidateURL)
	}
}

func TestExtract_FaviconSkipsICO(t *testing.T) {
	client := &mockHTTPClient{responses: map[string]*mockResponse{
		"https://example.mv": page(
			`<link rel="shortcut icon" href="/favicon.ico">` +
				`<link rel="icon" href="/favicon-32.png">`,
		),
	}}
	svc, _ := newTestService(client, nil, Options{})

	result := svc.Extract(context.Background(), "https://example.mv")

	if result.CandidateURL != "https://example.mv/favicon-32.png" {
		t.Errorf("CandidateURL = %v, want https://example.mv/favicon-32.png", result.CandidateURL)
	}
}

func TestExtract_OGImage(t *testing.T) {
	client := &mockHTTPClient{responses: map[string]*mockResponse{
		"https://example.mv": page(`<meta property="og:image" content="/images/share.png">`),
	}}
	svc, _ := newTestService(client, nil, Options{})

	result := svc.Extract(context.Background(), "https://example.mv")

	if result.Method != domain.MethodOGImage {
		t.Errorf("Method = %v, want %v", result.Method, domain.MethodOGImage)
	}
	if result.CandidateURL != "https://example.mv/images/share.png" {
		t.Errorf("CandidateURL = %v, want https://example.mv/images/share.png", result.CandidateURL)
	}
}

func TestExtract_TwitterImage(t *testing.T) {
	client := &mockHTTPClient{responses: map[string]*mockResponse{
		"https://example.mv": page(`<meta name="twitter:image" content="https://cdn.example.mv/card.png">`),
	}}
	svc, _ := newTestService(client, nil, Options{})

	result := svc.Extract(context.Background(), "https://example.mv")

	if result.Method != domain.MethodTwitterImage {
		t.Errorf("Method = %v, want %v", result.Method, domain.MethodTwitterImage)
	}
	if result.CandidateURL != "https://cdn.example.mv/card.png" {
		t.Errorf("CandidateURL = %v, want https://cdn.example.mv/card.png", result.CandidateURL)
	}
}

func TestExtract_HeaderLogoScoring(t *testing.T) {
	client := &mockHTTPClient{responses: map[string]*mockResponse{
		"https://example.mv": {
			body: `<html><body><header>` +
				`<img src="/spacer.gif" alt="">` +
				`<img src="/assets/logo.png" alt="Site logo" class="logo" width="200" height="80">` +
				`</header></body></html>`,
			finalURL: "https://example.mv/",
		},
	}}
	svc, _ := newTestService(client, nil, Options{})

	result := svc.Extract(context.Background(), "https://example.mv")

	if result.Method != domain.MethodHeaderLogo {
		t.Errorf("Method = %v, want %v", result.Method, domain.MethodHeaderLogo)
	}
	if result.CandidateURL != "https://example.mv/assets/logo.png" {
		t.Errorf("CandidateURL = %v, want https://example.mv/assets/logo.png", result.CandidateURL)
	}
}

func TestExtract_HeaderImageBelowThresholdIgnored(t *testing.T) {
	client := &mockHTTPClient{responses: map[string]*mockResponse{
		"https://example.mv": {
			body:     `<html><body><header><img src="/banner.jpg" alt="Daily headlines"></header></body></html>`,
			finalURL: "https://example.mv/",
		},
	}}
	svc, prober := newTestService(client, nil, Options{})
	prober.result = ""

	result := svc.Extract(context.Background(), "https://example.mv")

	if result.Status != domain.ExtractionError {
		t.Errorf("Status = %v, want %v", result.Status, domain.ExtractionError)
	}
	if prober.calls != 1 {
		t.Errorf("prober.calls = %v, want 1", prober.calls)
	}
}

func TestExtract_CommonPathProbe(t *testing.T) {
	client := &mockHTTPClient{responses: map[string]*mockResponse{
		"https://example.mv": page(""),
	}}
	svc, prober := newTestService(client, nil, Options{})
	prober.result = "https://example.mv/logo.svg"

	result := svc.Extract(context.Background(), "https://example.mv")

	if result.Method != domain.MethodCommonPath {
		t.Errorf("Method = %v, want %v", result.Method, domain.MethodCommonPath)
	}
	if result.CandidateURL != "https://example.mv/logo.svg" {
		t.Errorf("CandidateURL = %v, want https://example.mv/logo.svg", result.CandidateURL)
	}
}

func TestExtract_NoLogoFound(t *testing.T) {
	client := &mockHTTPClient{responses: map[string]*mockResponse{
		"https://example.mv": page(""),
	}}
	svc, _ := newTestService(client, nil, Options{})

	result := svc.Extract(context.Background(), "https://example.mv")

	if result.Status != domain.ExtractionError {
		t.Errorf("Status = %v, want %v", result.Status, domain.ExtractionError)
	}
	if result.Method != domain.MethodNone {
		t.Errorf("Method = %v, want %v", result.Method, domain.MethodNone)
	}
	if result.Error != "no logo found" {
		t.Errorf("Error = %q, want %q", result.Error, "no logo found")
	}
	if result.CandidateURL != "" {
		t.Errorf("CandidateURL = %q, want empty", result.CandidateURL)
	}
}

func TestExtract_FetchFailure(t *testing.T) {
	client := &mockHTTPClient{responses: map[string]*mockResponse{}}
	svc, _ := newTestService(client, nil, Options{})

	result := svc.Extract(context.Background(), "https://down.example.mv")

	if result.Status != domain.ExtractionError {
		t.Errorf("Status = %v, want %v", result.Status, domain.ExtractionError)
	}
	if result.Error == "" {
		t.Error("Error is empty, want fetch failure message")
	}
}

func TestExtract_ResolvesAgainstRedirectedURL(t *testing.T) {
	client := &mockHTTPClient{responses: map[string]*mockResponse{
		"http://example.mv": {
			body:     `<html><head><link rel="icon" href="/favicon.png"></head></html>`,
			finalURL: "https://www.example.mv/home/",
		},
	}}
	svc, _ := newTestService(client, nil, Options{})

	result := svc.Extract(context.Background(), "http://example.mv")

	if result.CandidateURL != "https://www.example.mv/favicon.png" {
		t.Errorf("CandidateURL = %v, want https://www.example.mv/favicon.png", result.CandidateURL)
	}
}

func TestExtract_CachesSuccessfulResult(t *testing.T) {
	client := &mockHTTPClient{responses: map[string]*mockResponse{
		"https://example.mv": page(`<meta property="og:image" content="/logo.png">`),
	}}
	cache := newMockCache()
	svc, _ := newTestService(client, cache, Options{CacheTTL: time.Hour})

	first := svc.Extract(context.Background(), "https://example.mv")
	second := svc.Extract(context.Background(), "https://example.mv")

	if len(client.getCalls) != 1 {
		t.Errorf("getCalls = %v, want 1 (second extraction should hit cache)", len(client.getCalls))
	}
	if first != second {
		t.Errorf("cached result = %+v, want %+v", second, first)
	}
}

func TestExtract_DoesNotCacheFailures(t *testing.T) {
	client := &mockHTTPClient{responses: map[string]*mockResponse{
		"https://example.mv": page(""),
	}}
	cache := newMockCache()
	svc, _ := newTestService(client, cache, Options{CacheTTL: time.Hour})

	svc.Extract(context.Background(), "https://example.mv")
	svc.Extract(context.Background(), "https://example.mv")

	if len(client.getCalls) != 2 {
		t.Errorf("getCalls = %v, want 2 (failures must not be cached)", len(client.getCalls))
	}
}

func TestInvalidate_ForcesRescrape(t *testing.T) {
	client := &mockHTTPClient{responses: map[string]*mockResponse{
		"https://example.mv": page(`<meta property="og:image" content="/logo.png">`),
	}}
	cache := newMockCache()
	svc, _ := newTestService(client, cache, Options{CacheTTL: time.Hour})

	svc.Extract(context.Background(), "https://example.mv")
	svc.Invalidate(context.Background(), "https://example.mv")
	svc.Extract(context.Background(), "https://example.mv")

	if len(client.getCalls) != 2 {
		t.Errorf("getCalls = %v, want 2 after invalidation", len(client.getCalls))
	}
}

func TestCollyProber_FindsImageAtCommonPath(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/logo.png" {
			w.Header().Set("Content-Type", "image/png")
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	prober := newCollyProber("test-agent", 2*time.Second)
	got := prober.Probe(server.URL)

	if got != server.URL+"/logo.png" {
		t.Errorf("Probe() = %v, want %v", got, server.URL+"/logo.png")
	}
}

func TestCollyProber_NothingFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	prober := newCollyProber("test-agent", 2*time.Second)
	if got := prober.Probe(server.URL); got != "" {
		t.Errorf("Probe() = %v, want empty", got)
	}
}

func TestCollyProber_RejectsNonImageContentType(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// A catch-all page that returns HTML for every path
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	prober := newCollyProber("test-agent", 2*time.Second)
	if got := prober.Probe(server.URL); got != "" {
		t.Errorf("Probe() = %v, want empty for non-image responses", got)
	}
}
