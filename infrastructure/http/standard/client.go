// ABOUTME: Standard HTTP client implementation with retry logic and timeout support
// ABOUTME: Provides redirect-aware page fetching with exponential backoff for resilient scraping

package standard

import (
	"context"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	coreerrors "logogrid-app/core/errors"
	"logogrid-app/core/interfaces"
)

const defaultBackoffUnit = time.Second

// Options configures the client
type Options struct {
	// Timeout is the per-request timeout
	Timeout time.Duration

	// MaxRetries is the number of additional attempts after a failure
	MaxRetries int

	// UserAgent is sent on every request
	UserAgent string

	// RateLimitRPS caps outbound requests per second (0 disables)
	RateLimitRPS float64

	// BackoffUnit scales the exponential backoff (2^attempt * unit).
	// Defaults to one second. Tests shrink it.
	BackoffUnit time.Duration
}

// StandardHTTPClient implements the HTTPClient interface using the standard library
type StandardHTTPClient struct {
	client      *http.Client
	maxRetries  int
	userAgent   string
	backoffUnit time.Duration
	limiter     *rate.Limiter
}

// NewStandardHTTPClient creates a new HTTP client with retry and rate limiting
func NewStandardHTTPClient(opts Options) *StandardHTTPClient {
	backoff := opts.BackoffUnit
	if backoff <= 0 {
		backoff = defaultBackoffUnit
	}

	var limiter *rate.Limiter
	if opts.RateLimitRPS > 0 {
		limiter = rate.NewLimiter(rate.Limit(opts.RateLimitRPS), 1)
	}

	return &StandardHTTPClient{
		client: &http.Client{
			Timeout: opts.Timeout,
		},
		maxRetries:  opts.MaxRetries,
		userAgent:   opts.UserAgent,
		backoffUnit: backoff,
		limiter:     limiter,
	}
}

// Get performs an HTTP GET request, retrying failed attempts with
// exponential backoff. Redirects are followed and the final resolved URL
// is recorded on the response.
func (c *StandardHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	return c.do(ctx, http.MethodGet, url)
}

// Head performs a single HTTP HEAD request with no retries. It exists for
// lightweight existence probes where a failed path is simply skipped.
func (c *StandardHTTPClient) Head(ctx context.Context, url string) (interfaces.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return nil, err
	}
	c.setHeaders(req)

	if err := c.wait(ctx); err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}

	return newResponse(resp), nil
}

func (c *StandardHTTPClient) do(ctx context.Context, method, url string) (interfaces.Response, error) {
	var lastStatus int
	var lastErr error

	attempts := c.maxRetries + 1
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			// Exponential backoff: 1s, 2s, 4s, ...
			backoff := time.Duration(1<<(attempt-1)) * c.backoffUnit
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		req, err := http.NewRequestWithContext(ctx, method, url, nil)
		if err != nil {
			return nil, err
		}
		c.setHeaders(req)

		if err := c.wait(ctx); err != nil {
			return nil, err
		}

		resp, err := c.client.Do(req)
		if err != nil {
			lastErr = err
			lastStatus = 0
			continue
		}

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			return newResponse(resp), nil
		}

		// Non-success status counts as a failed attempt
		resp.Body.Close()
		lastStatus = resp.StatusCode
		lastErr = nil
	}

	fetchErr := &coreerrors.FetchError{
		URL:        url,
		StatusCode: lastStatus,
		Attempts:   attempts,
	}
	if lastErr != nil {
		fetchErr.Message = lastErr.Error()
	}

	return nil, fetchErr
}

func (c *StandardHTTPClient) setHeaders(req *http.Request) {
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
}

func (c *StandardHTTPClient) wait(ctx context.Context) error {
	if c.limiter == nil {
		return nil
	}
	return c.limiter.Wait(ctx)
}

// httpResponse implements the Response interface
type httpResponse struct {
	statusCode int
	body       io.ReadCloser
	headers    http.Header
	finalURL   string
}

func newResponse(resp *http.Response) *httpResponse {
	finalURL := ""
	if resp.Request != nil && resp.Request.URL != nil {
		finalURL = resp.Request.URL.String()
	}

	return &httpResponse{
		statusCode: resp.StatusCode,
		body:       resp.Body,
		headers:    resp.Header,
		finalURL:   finalURL,
	}
}

// StatusCode returns the HTTP status code
func (r *httpResponse) StatusCode() int {
	return r.statusCode
}

// Body returns the response body
func (r *httpResponse) Body() io.ReadCloser {
	return r.body
}

// Header returns the value of the specified header
func (r *httpResponse) Header(key string) string {
	return r.headers.Get(key)
}

// FinalURL returns the URL the request resolved to after redirects
func (r *httpResponse) FinalURL() string {
	return r.finalURL
}
