// ABOUTME: LogoRecord domain model is the persisted resolution result for one site
// ABOUTME: Defines the method/status enums and the record-set invariants

package domain

import (
	"errors"
	"time"
)

// ExtractionMethod identifies which cascade strategy produced a candidate
type ExtractionMethod string

const (
	MethodAppleTouchIcon ExtractionMethod = "apple-touch-icon"
	MethodFavicon        ExtractionMethod = "favicon"
	MethodOGImage        ExtractionMethod = "og-image"
	MethodTwitterImage   ExtractionMethod = "twitter-image"
	MethodHeaderLogo     ExtractionMethod = "header-logo"
	MethodCommonPath     ExtractionMethod = "common-path"
	MethodManual         ExtractionMethod = "manual"
	MethodNone           ExtractionMethod = "none"
)

// RecordStatus describes how a record's logo was resolved
type RecordStatus string

const (
	// StatusOK means a real logo was scraped and processed, or a manual
	// override is configured
	StatusOK RecordStatus = "ok"

	// StatusFallback means a synthetic placeholder stands in for the logo
	StatusFallback RecordStatus = "fallback"

	// StatusError means no logo could be resolved at all
	StatusError RecordStatus = "error"
)

// LogoRecord is the persisted resolution result for one site, keyed by
// SiteURL. At most one record per SiteURL exists in the persisted set.
type LogoRecord struct {
	// SiteURL is the catalog key this record belongs to
	SiteURL string `json:"site_url"`

	// DisplayName is the name shown alongside the logo
	DisplayName string `json:"display_name"`

	// LogoURL points at the resolved logo. Empty when Status is error.
	LogoURL string `json:"logo_url,omitempty"`

	// Status describes the resolution outcome
	Status RecordStatus `json:"status"`

	// LastCheckedAt is the UTC time of the last resolution attempt
	LastCheckedAt time.Time `json:"last_checked_at"`

	// ExtractionMethod records which strategy found the logo
	ExtractionMethod ExtractionMethod `json:"extraction_method"`

	// ErrorMessage carries the failure detail for degraded records
	ErrorMessage string `json:"error_message,omitempty"`

	// AccentColor is the dominant color of the cached logo as a hex
	// string (e.g. "#1a6b3c"), for the static renderer
	AccentColor string `json:"accent_color,omitempty"`

	// Category and Country are carried over from the site spec
	Category string `json:"category,omitempty"`
	Country  string `json:"country,omitempty"`
}

// Validate checks the record-level invariants
func (r *LogoRecord) Validate() error {
	if r.SiteURL == "" {
		return errors.New("record site URL cannot be empty")
	}

	switch r.Status {
	case StatusOK, StatusFallback, StatusError:
	default:
		return errors.New("record status must be ok, fallback or error")
	}

	if r.Status == StatusError && r.LogoURL != "" {
		return errors.New("error records cannot carry a logo URL")
	}

	if r.ExtractionMethod == MethodManual && r.Status != StatusOK {
		return errors.New("manual records must have status ok")
	}

	return nil
}

// Retainable reports whether this record may be carried forward when a
// rescrape fails. Only known-good records qualify.
func (r *LogoRecord) Retainable() bool {
	return (r.Status == StatusOK || r.Status == StatusFallback) && r.LogoURL != ""
}
