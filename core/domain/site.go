// ABOUTME: Site domain model represents a catalog entry for a tracked website
// ABOUTME: Provides validation logic and domain/slug derivation helpers

package domain

import (
	"encoding/json"
	"errors"
	"net/url"
	"strings"
)

// SiteSpec represents one entry of the external site catalog.
// The catalog is read-only to this module; records are keyed by URL.
type SiteSpec struct {
	// URL is the site's canonical address and the unique catalog key
	URL string `json:"url"`

	// Name is the human-readable display name
	Name string `json:"name"`

	// Category groups sites for the renderer (e.g. "government", "news")
	Category string `json:"category"`

	// Country is an ISO country code
	Country string `json:"country"`

	// Enabled controls whether the site participates in a refresh
	Enabled bool `json:"enabled"`

	// FallbackLogoURL, when set, is a manual override: it is used as the
	// logo verbatim and scraping is skipped entirely
	FallbackLogoURL string `json:"fallback_logo_url,omitempty"`
}

// UnmarshalJSON decodes a catalog entry. Enabled defaults to true when
// the field is absent, matching the catalog contract.
func (s *SiteSpec) UnmarshalJSON(data []byte) error {
	type alias SiteSpec
	aux := struct {
		Enabled *bool `json:"enabled"`
		*alias
	}{
		alias: (*alias)(s),
	}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	s.Enabled = aux.Enabled == nil || *aux.Enabled

	return nil
}

// Validate checks if the site has valid required fields
func (s *SiteSpec) Validate() error {
	if s.URL == "" {
		return errors.New("site URL cannot be empty")
	}

	parsed, err := url.Parse(s.URL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return errors.New("site URL is not a valid absolute URL")
	}

	return nil
}

// Domain returns the host portion of the site URL
func (s *SiteSpec) Domain() string {
	parsed, err := url.Parse(s.URL)
	if err != nil {
		return ""
	}
	return parsed.Host
}

// DisplayName returns the configured name, falling back to the domain
func (s *SiteSpec) DisplayName() string {
	if strings.TrimSpace(s.Name) != "" {
		return s.Name
	}
	return s.Domain()
}
