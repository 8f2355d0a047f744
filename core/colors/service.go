// ABOUTME: Accent color extraction service using K-means clustering
// ABOUTME: Operates on already-decoded logos and caches by content fingerprint

package colors

import (
	"context"
	"fmt"
	"image"
	"image/draw"
	"time"

	"github.com/EdlinOrg/prominentcolor"

	"logogrid-app/core/domain"
	"logogrid-app/core/interfaces"
)

const (
	defaultColorValue = 128
	cacheTTL          = 24 * time.Hour
)

// Service extracts the dominant color of processed logos
type Service struct {
	deps interfaces.Dependencies
}

// NewService creates a new accent color service
func NewService(deps interfaces.Dependencies) *Service {
	return &Service{deps: deps}
}

// ExtractFromImage returns the most prominent color of img. Extraction
// failures fall back to a neutral gray so a bad logo never blocks the
// pipeline.
func (s *Service) ExtractFromImage(ctx context.Context, img image.Image, contentHash string) domain.RGBColor {
	if cached, ok := s.cachedColor(ctx, contentHash); ok {
		return cached
	}

	color, err := s.extract(img)
	if err != nil {
		s.deps.Logger.Debug("Failed to extract accent color", map[string]interface{}{
			"hash":  contentHash,
			"error": err.Error(),
		})
		color = defaultColor()
	}

	s.cacheColor(ctx, contentHash, color)
	return color
}

// extract runs K-means over the image, retrying without background masks
// when the masked pass yields nothing. prominentcolor can panic on
// degenerate inputs, so the recovery is required.
func (s *Service) extract(img image.Image) (color domain.RGBColor, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			color = defaultColor()
			err = fmt.Errorf("panic recovered: %v", rec)
		}
	}()

	if img == nil {
		return defaultColor(), fmt.Errorf("nil image")
	}

	bounds := img.Bounds()
	if bounds.Empty() {
		return defaultColor(), fmt.Errorf("image has empty bounds")
	}

	imgNRGBA := image.NewNRGBA(bounds)
	draw.Draw(imgNRGBA, bounds, img, bounds.Min, draw.Src)

	colors, err := prominentcolor.KmeansWithAll(
		prominentcolor.ArgumentDefault,
		imgNRGBA,
		prominentcolor.DefaultK,
		1,
		prominentcolor.GetDefaultMasks(),
	)

	if err != nil || len(colors) == 0 {
		colors, err = prominentcolor.KmeansWithAll(
			prominentcolor.ArgumentDefault,
			imgNRGBA,
			prominentcolor.DefaultK,
			1,
			nil,
		)
		if err != nil || len(colors) == 0 {
			return defaultColor(), fmt.Errorf("no colors extracted from image")
		}
	}

	return domain.RGBColor{
		R: uint8(colors[0].Color.R),
		G: uint8(colors[0].Color.G),
		B: uint8(colors[0].Color.B),
	}, nil
}

func (s *Service) cachedColor(ctx context.Context, contentHash string) (domain.RGBColor, bool) {
	if s.deps.Cache == nil || contentHash == "" {
		return domain.RGBColor{}, false
	}

	data, err := s.deps.Cache.Get(ctx, colorCacheKey(contentHash))
	if err != nil || data == nil {
		return domain.RGBColor{}, false
	}

	var color domain.RGBColor
	if _, err := fmt.Sscanf(string(data), "%d,%d,%d", &color.R, &color.G, &color.B); err != nil {
		return domain.RGBColor{}, false
	}

	return color, true
}

func (s *Service) cacheColor(ctx context.Context, contentHash string, color domain.RGBColor) {
	if s.deps.Cache == nil || contentHash == "" {
		return
	}

	data := fmt.Sprintf("%d,%d,%d", color.R, color.G, color.B)
	_ = s.deps.Cache.Set(ctx, colorCacheKey(contentHash), []byte(data), cacheTTL)
}

func colorCacheKey(contentHash string) string {
	return "accent:" + contentHash
}

// defaultColor returns the neutral gray fallback
func defaultColor() domain.RGBColor {
	return domain.RGBColor{
		R: defaultColorValue,
		G: defaultColorValue,
		B: defaultColorValue,
	}
}
