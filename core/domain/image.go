// ABOUTME: ProcessedImage describes a validated, transcoded and cached logo
// ABOUTME: RGBColor is a simple color triple used for accent extraction

package domain

import (
	"fmt"
	"image"
)

// ProcessedImage is the result of downloading, validating and caching a
// candidate logo.
type ProcessedImage struct {
	// CachedPath is the renderer-relative path of the lossless primary file
	CachedPath string

	// CachedPathAlt is the renderer-relative path of the lossy secondary file
	CachedPathAlt string

	// ContentHash is a short fingerprint of the original downloaded bytes
	ContentHash string

	// Width and Height are the final (possibly downscaled) pixel dimensions
	Width  int
	Height int

	// Format is the primary cache format tag, e.g. "png"
	Format string

	// Image holds the final decoded pixels for downstream consumers
	// such as accent color extraction. Never serialized.
	Image image.Image
}

// Dimensions returns the final size as "WxH"
func (p *ProcessedImage) Dimensions() string {
	return fmt.Sprintf("%dx%d", p.Width, p.Height)
}

// RGBColor represents an RGB color value
type RGBColor struct {
	R uint8
	G uint8
	B uint8
}

// Hex returns the color as a "#rrggbb" string
func (c RGBColor) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
