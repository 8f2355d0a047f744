// ABOUTME: Hand-written mocks for extraction service tests
// ABOUTME: Provides fake HTTP client, response, cache, and prober implementations

package extractor

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"logogrid-app/core/interfaces"
)

// mockResponse implements interfaces.Response around a static page
type mockResponse struct {
	statusCode int
	body       string
	headers    map[string]string
	finalURL   string
}

func (m *mockResponse) StatusCode() int {
	if m.statusCode == 0 {
		return 200
	}
	return m.statusCode
}

func (m *mockResponse) Body() io.ReadCloser {
	return io.NopCloser(strings.NewReader(m.body))
}

func (m *mockResponse) Header(key string) string {
	return m.headers[key]
}

func (m *mockResponse) FinalURL() string {
	return m.finalURL
}

// mockHTTPClient serves canned responses keyed by URL
type mockHTTPClient struct {
	responses map[string]*mockResponse
	getCalls  []string
}

func (m *mockHTTPClient) Get(_ context.Context, url string) (interfaces.Response, error) {
	m.getCalls = append(m.getCalls, url)
	resp, ok := m.responses[url]
	if !ok {
		return nil, errors.New("connection refused")
	}
	return resp, nil
}

func (m *mockHTTPClient) Head(_ context.Context, url string) (interfaces.Response, error) {
	resp, ok := m.responses[url]
	if !ok {
		return nil, errors.New("connection refused")
	}
	return resp, nil
}

// mockCache is a simple map-backed cache for tests
type mockCache struct {
	data map[string][]byte
}

func newMockCache() *mockCache {
	return &mockCache{data: make(map[string][]byte)}
}

func (m *mockCache) Get(_ context.Context, key string) ([]byte, error) {
	value, ok := m.data[key]
	if !ok {
		return nil, errors.New("cache miss")
	}
	return value, nil
}

func (m *mockCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	m.data[key] = value
	return nil
}

func (m *mockCache) Delete(_ context.Context, key string) error {
	delete(m.data, key)
	return nil
}

// mockLogger discards all log output
type mockLogger struct{}

func (m *mockLogger) Debug(_ string, _ map[string]interface{}) {}
func (m *mockLogger) Info(_ string, _ map[string]interface{})  {}
func (m *mockLogger) Warn(_ string, _ map[string]interface{})  {}
func (m *mockLogger) Error(_ string, _ map[string]interface{}) {}

// mockProber returns a fixed probe result
type mockProber struct {
	result string
	calls  int
}

func (m *mockProber) Probe(_ string) string {
	m.calls++
	return m.result
}
