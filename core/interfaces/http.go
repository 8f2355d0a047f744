package interfaces

import (
	"context"
	"io"
)

// HTTPClient defines the interface for making outbound HTTP requests.
// Implementations are expected to retry transient failures and follow
// redirects; the final resolved URL is exposed on the response because
// relative references on a page must be resolved against it.
type HTTPClient interface {
	// Get performs an HTTP GET request to the specified URL.
	// Returns a Response interface or an error if the request fails.
	Get(ctx context.Context, url string) (Response, error)

	// Head performs an HTTP HEAD request to the specified URL.
	// Used for lightweight existence checks with no body download.
	Head(ctx context.Context, url string) (Response, error)
}

// Response defines the interface for HTTP responses.
type Response interface {
	// StatusCode returns the HTTP status code of the response
	StatusCode() int

	// Body returns the response body. The caller must close it.
	Body() io.ReadCloser

	// Header returns the value of the specified header
	Header(key string) string

	// FinalURL returns the URL the request resolved to after redirects
	FinalURL() string
}
