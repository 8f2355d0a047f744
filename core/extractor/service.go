// ABOUTME: Candidate extraction service running the priority cascade over a fetched page
// ABOUTME: Strategies are evaluated in fixed order and the first success wins

package extractor

import (
	"context"
	"encoding/json"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html/charset"

	"logogrid-app/core/domain"
	"logogrid-app/core/interfaces"
	"logogrid-app/pkg/utils/parse"
)

// Options configures the extraction service
type Options struct {
	// UserAgent identifies probe requests to remote sites
	UserAgent string

	// ProbeTimeout bounds each common-path existence check
	ProbeTimeout time.Duration

	// CacheTTL is how long successful extractions are reused (0 disables)
	CacheTTL time.Duration
}

// Service finds logo candidates on web pages
type Service struct {
	deps   interfaces.Dependencies
	opts   Options
	prober pathProber
}

// strategy is one cascade step: it inspects the parsed page and either
// proposes an absolute candidate URL or yields to the next strategy.
type strategy struct {
	method domain.ExtractionMethod
	apply  func(doc *goquery.Document, base *url.URL) string
}

// NewService creates a new extraction service
func NewService(deps interfaces.Dependencies, opts Options) *Service {
	return &Service{
		deps:   deps,
		opts:   opts,
		prober: newCollyProber(opts.UserAgent, opts.ProbeTimeout),
	}
}

// Extract fetches the page at siteURL and runs the cascade. Fetch
// failures and an exhausted cascade are reported in the result itself.
func (s *Service) Extract(ctx context.Context, siteURL string) domain.ExtractionResult {
	if cached, ok := s.cachedResult(ctx, siteURL); ok {
		return cached
	}

	resp, err := s.deps.HTTPClient.Get(ctx, siteURL)
	if err != nil {
		s.deps.Logger.Warn("Failed to fetch page", map[string]interface{}{
			"url":   siteURL,
			"error": err.Error(),
		})
		return domain.ExtractionResult{
			Method: domain.MethodNone,
			Status: domain.ExtractionError,
			Error:  "failed to fetch page: " + err.Error(),
		}
	}
	defer resp.Body().Close()

	// Pages are not always UTF-8; sniff the charset before parsing
	reader, err := charset.NewReader(resp.Body(), resp.Header("Content-Type"))
	if err != nil {
		return domain.ExtractionResult{
			Method: domain.MethodNone,
			Status: domain.ExtractionError,
			Error:  "failed to read page: " + err.Error(),
		}
	}

	doc, err := goquery.NewDocumentFromReader(reader)
	if err != nil {
		return domain.ExtractionResult{
			Method: domain.MethodNone,
			Status: domain.ExtractionError,
			Error:  "failed to parse page: " + err.Error(),
		}
	}

	// Relative references resolve against the final URL, which may
	// differ from siteURL after redirects.
	base, err := url.Parse(resp.FinalURL())
	if err != nil || base.Host == "" {
		base, _ = url.Parse(siteURL)
	}

	for _, st := range s.cascade() {
		if candidate := st.apply(doc, base); candidate != "" {
			result := domain.ExtractionResult{
				CandidateURL: candidate,
				Method:       st.method,
				Status:       domain.ExtractionOK,
			}
			s.cacheResult(ctx, siteURL, result)
			return result
		}
	}

	return domain.ExtractionResult{
		Method: domain.MethodNone,
		Status: domain.ExtractionError,
		Error:  "no logo found",
	}
}

// Invalidate drops the cached extraction for a site so the next Extract
// re-scrapes it.
func (s *Service) Invalidate(ctx context.Context, siteURL string) {
	if s.deps.Cache == nil {
		return
	}
	_ = s.deps.Cache.Delete(ctx, cacheKey(siteURL))
}

// cascade returns the fixed-priority strategy list
func (s *Service) cascade() []strategy {
	return []strategy{
		{domain.MethodAppleTouchIcon, s.extractAppleTouchIcon},
		{domain.MethodFavicon, s.extractFavicon},
		{domain.MethodOGImage, s.extractOGImage},
		{domain.MethodTwitterImage, s.extractTwitterImage},
		{domain.MethodHeaderLogo, s.extractHeaderLogo},
		{domain.MethodCommonPath, s.probeCommonPaths},
	}
}

// extractAppleTouchIcon picks the largest declared apple-touch-icon
func (s *Service) extractAppleTouchIcon(doc *goquery.Document, base *url.URL) string {
	type iconLink struct {
		href string
		size int
	}

	var links []iconLink
	doc.Find("link").Each(func(_ int, sel *goquery.Selection) {
		rel := strings.ToLower(sel.AttrOr("rel", ""))
		if !strings.Contains(rel, "apple-touch-icon") {
			return
		}
		links = append(links, iconLink{
			href: sel.AttrOr("href", ""),
			size: iconSize(sel.AttrOr("sizes", "")),
		})
	})

	sort.SliceStable(links, func(i, j int) bool {
		return links[i].size > links[j].size
	})

	for _, link := range links {
		if link.href != "" {
			return resolveURL(base, link.href)
		}
	}
	return ""
}

// extractFavicon prefers an SVG icon, then any non-.ico icon link
func (s *Service) extractFavicon(doc *goquery.Document, base *url.URL) string {
	svg := doc.Find("link[rel='icon'][type='image/svg+xml']").First()
	if href := svg.AttrOr("href", ""); href != "" {
		return resolveURL(base, href)
	}

	var found string
	doc.Find("link").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		rel := strings.ToLower(sel.AttrOr("rel", ""))
		if !strings.Contains(rel, "icon") {
			return true
		}
		href := sel.AttrOr("href", "")
		// Legacy .ico files are low quality; skip them
		if href == "" || strings.HasSuffix(href, ".ico") {
			return true
		}
		found = resolveURL(base, href)
		return false
	})

	return found
}

// extractOGImage reads the Open Graph image meta tag
func (s *Service) extractOGImage(doc *goquery.Document, base *url.URL) string {
	content := doc.Find("meta[property='og:image']").First().AttrOr("content", "")
	if content == "" {
		return ""
	}
	return resolveURL(base, content)
}

// extractTwitterImage reads the Twitter card image meta tag
func (s *Service) extractTwitterImage(doc *goquery.Document, base *url.URL) string {
	content := doc.Find("meta[name='twitter:image']").First().AttrOr("content", "")
	if content == "" {
		return ""
	}
	return resolveURL(base, content)
}

// extractHeaderLogo scores images inside header/nav/banner containers and
// accepts the first one past the threshold.
func (s *Service) extractHeaderLogo(doc *goquery.Document, base *url.URL) string {
	var found string

	doc.Find("header, nav, .header, .navbar, [role='banner']").EachWithBreak(func(_ int, container *goquery.Selection) bool {
		container.Find("img").EachWithBreak(func(_ int, img *goquery.Selection) bool {
			score := scoreLogoImage(imageSignals{
				Alt:    img.AttrOr("alt", ""),
				Src:    img.AttrOr("src", ""),
				Class:  img.AttrOr("class", ""),
				Width:  img.AttrOr("width", ""),
				Height: img.AttrOr("height", ""),
			})
			if score < acceptScore {
				return true
			}
			src := img.AttrOr("src", "")
			if src == "" {
				return true
			}
			found = resolveURL(base, src)
			return false
		})
		return found == ""
	})

	return found
}

// probeCommonPaths checks conventional logo locations on the page origin
func (s *Service) probeCommonPaths(_ *goquery.Document, base *url.URL) string {
	if base == nil || base.Host == "" {
		return ""
	}
	origin := base.Scheme + "://" + base.Host
	return s.prober.Probe(origin)
}

func (s *Service) cachedResult(ctx context.Context, siteURL string) (domain.ExtractionResult, bool) {
	if s.deps.Cache == nil || s.opts.CacheTTL <= 0 {
		return domain.ExtractionResult{}, false
	}

	data, err := s.deps.Cache.Get(ctx, cacheKey(siteURL))
	if err != nil || data == nil {
		return domain.ExtractionResult{}, false
	}

	var result domain.ExtractionResult
	if err := json.Unmarshal(data, &result); err != nil {
		return domain.ExtractionResult{}, false
	}

	return result, true
}

func (s *Service) cacheResult(ctx context.Context, siteURL string, result domain.ExtractionResult) {
	if s.deps.Cache == nil || s.opts.CacheTTL <= 0 {
		return
	}

	data, err := json.Marshal(result)
	if err != nil {
		return
	}
	_ = s.deps.Cache.Set(ctx, cacheKey(siteURL), data, s.opts.CacheTTL)
}

func cacheKey(siteURL string) string {
	return "extraction:" + siteURL
}

// iconSize parses the leading dimension of a sizes attribute ("180x180").
// Unparsable or absent sizes count as zero.
func iconSize(sizes string) int {
	sizes = strings.ToLower(strings.TrimSpace(sizes))
	before, _, ok := strings.Cut(sizes, "x")
	if !ok {
		return 0
	}
	return parse.IntOrZero(before)
}

// resolveURL resolves a possibly relative reference against the page base
func resolveURL(base *url.URL, ref string) string {
	parsed, err := url.Parse(strings.TrimSpace(ref))
	if err != nil {
		return ""
	}
	if base == nil {
		return parsed.String()
	}
	return base.ResolveReference(parsed).String()
}
