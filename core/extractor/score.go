// ABOUTME: Logo-likelihood scoring for images found in header/nav containers
// ABOUTME: A threshold score decides acceptance; strongest signal is the alt text

package extractor

import (
	"strings"

	"logogrid-app/pkg/utils/parse"
)

// acceptScore is the minimum score at which an image is accepted as the
// site logo. Acceptance is first-past-the-threshold, not best-of.
const acceptScore = 4

var (
	altKeywords   = []string{"logo", "brand", "site"}
	srcKeywords   = []string{"logo", "brand"}
	classKeywords = []string{"logo", "brand", "site-logo"}
)

// imageSignals carries the attributes considered by the scorer
type imageSignals struct {
	Alt    string
	Src    string
	Class  string
	Width  string
	Height string
}

// scoreLogoImage scores an image by how likely it is to be the site logo
func scoreLogoImage(sig imageSignals) int {
	score := 0

	alt := strings.ToLower(sig.Alt)
	if containsAny(alt, altKeywords) {
		score += 3
	}

	src := strings.ToLower(sig.Src)
	if containsAny(src, srcKeywords) {
		score += 2
	}

	class := strings.ToLower(sig.Class)
	if containsAny(class, classKeywords) {
		score += 2
	}

	width := parseDimension(sig.Width)
	height := parseDimension(sig.Height)

	if width > 0 && height > 0 {
		if width >= 60 && width <= 400 && height >= 40 && height <= 400 {
			score++
		}

		ratio := float64(width) / float64(height)
		if ratio >= 0.33 && ratio <= 3.0 {
			score++
		}
	}

	return score
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

// parseDimension reads a declared pixel dimension, tolerating a "px" suffix
func parseDimension(value string) int {
	value = strings.TrimSuffix(strings.TrimSpace(value), "px")
	return parse.IntOrZero(value)
}
