// ABOUTME: Deterministic SVG placeholder generation for sites without a usable logo
// ABOUTME: Same name and domain always produce byte-identical output

package placeholder

import (
	"crypto/md5"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	coreerrors "logogrid-app/core/errors"
	"logogrid-app/pkg/utils/slug"
)

const svgTemplate = `<?xml version="1.0" encoding="UTF-8"?>
<svg width="400" height="400" xmlns="http://www.w3.org/2000/svg">
  <rect width="400" height="400" fill="hsl(%d, 40%%, 85%%)"/>
  <text x="200" y="200" text-anchor="middle" dy=".35em"
        font-family="system-ui, -apple-system, sans-serif"
        font-size="140" font-weight="600" fill="hsl(%d, 40%%, 35%%)">
    %s
  </text>
</svg>`

// Generator writes monogram placeholder icons
type Generator struct {
	// Dir is where placeholder files are written
	Dir string

	// PublicPath is the renderer-relative mount of Dir
	PublicPath string
}

// NewGenerator creates a placeholder generator writing into dir
func NewGenerator(dir, publicPath string) *Generator {
	return &Generator{Dir: dir, PublicPath: publicPath}
}

// Generate writes the placeholder for the site and returns its
// renderer-relative path. Existing files are overwritten, never reused,
// so a renamed site gets fresh initials.
func (g *Generator) Generate(displayName, domain string) (string, error) {
	initials := extractInitials(displayName, domain)
	hue := domainHue(domain)
	svg := fmt.Sprintf(svgTemplate, hue, hue, initials)

	filename := slug.Placeholder(domain) + ".svg"
	if err := g.write(filename, []byte(svg)); err != nil {
		return "", err
	}

	return g.PublicPath + "/" + filename, nil
}

// extractInitials takes the first letters of up to two name words, or
// falls back to the first two characters of the bare domain.
func extractInitials(displayName, domain string) string {
	words := strings.Fields(displayName)
	if len(words) > 2 {
		words = words[:2]
	}

	var initials strings.Builder
	for _, word := range words {
		runes := []rune(word)
		initials.WriteRune(unicode.ToUpper(runes[0]))
	}
	if initials.Len() > 0 {
		return initials.String()
	}

	bare := strings.ReplaceAll(domain, "www.", "")
	bare, _, _ = strings.Cut(bare, ".")
	runes := []rune(bare)
	if len(runes) > 2 {
		runes = runes[:2]
	}
	return strings.ToUpper(string(runes))
}

// domainHue maps a domain onto 0..359 via its md5 digest
func domainHue(domain string) int {
	digest := md5.Sum([]byte(domain))
	hue := 0
	for _, b := range digest {
		hue = (hue*256 + int(b)) % 360
	}
	return hue
}

func (g *Generator) write(filename string, data []byte) error {
	if err := os.MkdirAll(g.Dir, 0o755); err != nil {
		return &coreerrors.ProcessingError{Stage: "placeholder write", Message: err.Error()}
	}

	tmp, err := os.CreateTemp(g.Dir, filename+".tmp-*")
	if err != nil {
		return &coreerrors.ProcessingError{Stage: "placeholder write", Message: err.Error()}
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return &coreerrors.ProcessingError{Stage: "placeholder write", Message: err.Error()}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return &coreerrors.ProcessingError{Stage: "placeholder write", Message: err.Error()}
	}

	if err := os.Rename(tmp.Name(), filepath.Join(g.Dir, filename)); err != nil {
		os.Remove(tmp.Name())
		return &coreerrors.ProcessingError{Stage: "placeholder write", Message: err.Error()}
	}

	return nil
}
