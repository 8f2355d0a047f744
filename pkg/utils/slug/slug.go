// ABOUTME: Slug helpers derive filesystem-safe cache keys from site domains
// ABOUTME: Cached assets are content-addressed by these slugs, so they must be stable

package slug

import "strings"

// Domain converts a host name into a cache key ("example.mv" -> "example-mv").
// Repeated runs for the same site overwrite the same cache files.
func Domain(domain string) string {
	return strings.ReplaceAll(domain, ".", "-")
}

// Placeholder converts a domain or URL into a placeholder filename stem.
// Scheme prefixes are stripped and path separators and dots replaced, so
// the result is safe as a flat filename.
func Placeholder(text string) string {
	text = strings.TrimPrefix(text, "https://")
	text = strings.TrimPrefix(text, "http://")
	text = strings.ReplaceAll(text, "/", "-")
	return strings.ReplaceAll(text, ".", "-")
}
