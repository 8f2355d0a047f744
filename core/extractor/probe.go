// ABOUTME: Common-path prober checks conventional logo locations on a site's origin
// ABOUTME: Uses lightweight HEAD requests via colly; failed paths are silently skipped

package extractor

import (
	"strings"
	"time"

	"github.com/gocolly/colly"
)

// commonLogoPaths are conventional icon locations, probed in order
var commonLogoPaths = []string{
	"/logo.svg",
	"/logo.png",
	"/assets/logo.svg",
	"/assets/logo.png",
	"/images/logo.svg",
	"/images/logo.png",
	"/static/logo.svg",
	"/static/logo.png",
}

// pathProber checks whether a conventional logo path exists on an origin
type pathProber interface {
	// Probe returns the first existing image URL on the origin, or ""
	Probe(origin string) string
}

// collyProber implements pathProber with HEAD requests
type collyProber struct {
	userAgent string
	timeout   time.Duration
}

func newCollyProber(userAgent string, timeout time.Duration) *collyProber {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &collyProber{
		userAgent: userAgent,
		timeout:   timeout,
	}
}

// Probe checks each common path and returns the first that responds with
// an image content type.
func (p *collyProber) Probe(origin string) string {
	for _, path := range commonLogoPaths {
		target := origin + path
		if p.exists(target) {
			return target
		}
	}
	return ""
}

func (p *collyProber) exists(target string) bool {
	c := colly.NewCollector(
		colly.UserAgent(p.userAgent),
		colly.AllowURLRevisit(),
		colly.IgnoreRobotsTxt(),
	)
	c.SetRequestTimeout(p.timeout)

	found := false
	c.OnResponse(func(r *colly.Response) {
		if r.StatusCode == 200 && strings.Contains(r.Headers.Get("Content-Type"), "image") {
			found = true
		}
	})
	c.OnError(func(_ *colly.Response, _ error) {
		// Probe errors are expected; the path is simply skipped
	})

	if err := c.Request("HEAD", target, nil, nil, nil); err != nil {
		return false
	}

	return found
}
