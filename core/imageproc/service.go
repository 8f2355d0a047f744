// ABOUTME: Image processing service downloads, validates and caches candidate logos
// ABOUTME: Writes a lossless PNG primary and a lossy WebP secondary per site

package imageproc

import (
	"bytes"
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	// Registered decoders for the formats logos commonly ship in
	_ "image/gif"
	_ "image/jpeg"

	"github.com/chai2010/webp"
	"github.com/nfnt/resize"
	_ "golang.org/x/image/webp"

	"logogrid-app/core/domain"
	coreerrors "logogrid-app/core/errors"
	"logogrid-app/core/interfaces"
)

const (
	// minDimension rejects tracking pixels and tiny favicons
	minDimension = 32

	// maxDimension rejects full-size photographs masquerading as logos
	maxDimension = 2000

	webpQuality = 85
)

// Options configures the image processing service
type Options struct {
	// CacheDir is where processed files are written
	CacheDir string

	// PublicPath is the renderer-relative mount of CacheDir
	PublicPath string

	// MaxSizeMB caps the downloaded payload
	MaxSizeMB int

	// OutputSize is the maximum edge length of the cached image
	OutputSize int

	// DownloadTimeout bounds each image download
	DownloadTimeout time.Duration

	// UserAgent identifies download requests to remote sites
	UserAgent string
}

// Service downloads and processes logo images
type Service struct {
	opts   Options
	logger interfaces.Logger
	client *http.Client
}

// NewService creates a new image processing service. The cache directory
// is created on first write, not here.
func NewService(opts Options, logger interfaces.Logger) *Service {
	if opts.MaxSizeMB <= 0 {
		opts.MaxSizeMB = 5
	}
	if opts.OutputSize <= 0 {
		opts.OutputSize = 400
	}
	if opts.DownloadTimeout <= 0 {
		opts.DownloadTimeout = 30 * time.Second
	}
	return &Service{
		opts:   opts,
		logger: logger,
		client: &http.Client{Timeout: opts.DownloadTimeout},
	}
}

// Process downloads candidateURL, validates it and writes the PNG and
// WebP cache variants under cacheKey.
func (s *Service) Process(ctx context.Context, candidateURL, cacheKey string) (*domain.ProcessedImage, error) {
	data, err := s.download(ctx, candidateURL)
	if err != nil {
		return nil, err
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &coreerrors.ProcessingError{Stage: "decode", Message: err.Error()}
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width < minDimension || height < minDimension {
		return nil, &coreerrors.ValidationError{
			URL:    candidateURL,
			Reason: fmt.Sprintf("image too small: %dx%d", width, height),
		}
	}
	if width > maxDimension || height > maxDimension {
		return nil, &coreerrors.ValidationError{
			URL:    candidateURL,
			Reason: fmt.Sprintf("image too large: %dx%d", width, height),
		}
	}

	flattened := compositeOnWhite(img)

	final := flattened
	if width > s.opts.OutputSize || height > s.opts.OutputSize {
		final = resize.Thumbnail(uint(s.opts.OutputSize), uint(s.opts.OutputSize), flattened, resize.Lanczos3)
	}

	hash := md5.Sum(data)
	contentHash := hex.EncodeToString(hash[:])[:12]

	pngName := cacheKey + ".png"
	webpName := cacheKey + ".webp"
	if err := s.writePNG(pngName, final); err != nil {
		return nil, err
	}
	if err := s.writeWebP(webpName, final); err != nil {
		return nil, err
	}

	finalBounds := final.Bounds()
	processed := &domain.ProcessedImage{
		CachedPath:    s.opts.PublicPath + "/" + pngName,
		CachedPathAlt: s.opts.PublicPath + "/" + webpName,
		ContentHash:   contentHash,
		Width:         finalBounds.Dx(),
		Height:        finalBounds.Dy(),
		Format:        "png",
		Image:         final,
	}

	s.logger.Info("Processed logo", map[string]interface{}{
		"url":        candidateURL,
		"cached":     pngName,
		"dimensions": processed.Dimensions(),
	})

	return processed, nil
}

// download fetches the candidate bytes, enforcing the size cap and an
// image content type.
func (s *Service) download(ctx context.Context, candidateURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, candidateURL, nil)
	if err != nil {
		return nil, &coreerrors.FetchError{URL: candidateURL, Attempts: 1, Message: err.Error()}
	}
	req.Header.Set("User-Agent", s.opts.UserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, &coreerrors.FetchError{URL: candidateURL, Attempts: 1, Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &coreerrors.FetchError{
			URL:        candidateURL,
			StatusCode: resp.StatusCode,
			Attempts:   1,
			Message:    "unexpected status",
		}
	}

	contentType := resp.Header.Get("Content-Type")
	if !strings.Contains(contentType, "image") {
		return nil, &coreerrors.ValidationError{
			URL:    candidateURL,
			Reason: "invalid content type: " + contentType,
		}
	}

	maxBytes := int64(s.opts.MaxSizeMB) * 1024 * 1024
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBytes+1))
	if err != nil {
		return nil, &coreerrors.FetchError{URL: candidateURL, Attempts: 1, Message: err.Error()}
	}
	if int64(len(data)) > maxBytes {
		return nil, &coreerrors.ValidationError{
			URL:    candidateURL,
			Reason: fmt.Sprintf("payload exceeds %d MB", s.opts.MaxSizeMB),
		}
	}

	return data, nil
}

// compositeOnWhite flattens any transparency onto a white background
func compositeOnWhite(img image.Image) image.Image {
	bounds := img.Bounds()
	flat := image.NewRGBA(bounds)
	draw.Draw(flat, bounds, image.White, image.Point{}, draw.Src)
	draw.Draw(flat, bounds, img, bounds.Min, draw.Over)
	return flat
}

func (s *Service) writePNG(filename string, img image.Image) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return &coreerrors.ProcessingError{Stage: "png encode", Message: err.Error()}
	}
	return s.writeFile(filename, buf.Bytes())
}

func (s *Service) writeWebP(filename string, img image.Image) error {
	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: webpQuality}); err != nil {
		return &coreerrors.ProcessingError{Stage: "webp encode", Message: err.Error()}
	}
	return s.writeFile(filename, buf.Bytes())
}

// writeFile writes atomically via a temp file so a crash mid-write never
// leaves a truncated cache entry.
func (s *Service) writeFile(filename string, data []byte) error {
	if err := os.MkdirAll(s.opts.CacheDir, 0o755); err != nil {
		return &coreerrors.ProcessingError{Stage: "cache write", Message: err.Error()}
	}

	tmp, err := os.CreateTemp(s.opts.CacheDir, filename+".tmp-*")
	if err != nil {
		return &coreerrors.ProcessingError{Stage: "cache write", Message: err.Error()}
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return &coreerrors.ProcessingError{Stage: "cache write", Message: err.Error()}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return &coreerrors.ProcessingError{Stage: "cache write", Message: err.Error()}
	}

	if err := os.Rename(tmp.Name(), filepath.Join(s.opts.CacheDir, filename)); err != nil {
		os.Remove(tmp.Name())
		return &coreerrors.ProcessingError{Stage: "cache write", Message: err.Error()}
	}

	return nil
}
