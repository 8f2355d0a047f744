// ABOUTME: Service interfaces for the core business logic
// ABOUTME: Defines contracts for the pipeline stages the refresher orchestrates

package interfaces

import (
	"context"
	"image"

	"logogrid-app/core/domain"
)

// LogoExtractor runs the priority cascade against a site's page
type LogoExtractor interface {
	// Extract fetches the page at siteURL and returns the first candidate
	// the cascade finds. Fetch failures and an exhausted cascade are both
	// reported in the result, not as an error.
	Extract(ctx context.Context, siteURL string) domain.ExtractionResult
}

// ImageProcessor downloads, validates and caches a candidate logo
type ImageProcessor interface {
	// Process downloads candidateURL and writes the two cache variants
	// under cacheKey. Any failure surfaces as an error; this stage never
	// substitutes a fallback itself.
	Process(ctx context.Context, candidateURL, cacheKey string) (*domain.ProcessedImage, error)
}

// PlaceholderGenerator synthesizes a deterministic monogram icon
type PlaceholderGenerator interface {
	// Generate writes (or overwrites) the placeholder for the given site
	// and returns its renderer-relative path. Identical inputs always
	// produce byte-identical output.
	Generate(displayName, domain string) (string, error)
}

// AccentColorService extracts the dominant color of a processed logo
type AccentColorService interface {
	// ExtractFromImage returns the most prominent color of img. The
	// contentHash keys the cached result.
	ExtractFromImage(ctx context.Context, img image.Image, contentHash string) domain.RGBColor
}
