// ABOUTME: RefreshSummary aggregates the outcome of a full refresh run
// ABOUTME: Returned to the caller instead of being logged away inside the orchestrator

package domain

import "time"

// SiteOutcome reports how one site was resolved during a refresh
type SiteOutcome struct {
	// SiteURL is the catalog key of the site
	SiteURL string

	// Status is the resolution outcome of the site's record
	Status RecordStatus

	// Method is the extraction method recorded on the record
	Method ExtractionMethod

	// Message carries the failure detail for degraded outcomes
	Message string
}

// RefreshSummary describes a completed full refresh. The caller decides
// how to surface it.
type RefreshSummary struct {
	// Total is the number of enabled sites processed
	Total int

	// OK, Fallback and Errored count records per status
	OK       int
	Fallback int
	Errored  int

	// Skipped counts disabled catalog entries
	Skipped int

	// Duration is the wall-clock time of the run
	Duration time.Duration

	// Outcomes lists per-site results in catalog order
	Outcomes []SiteOutcome
}

// Add records one site outcome and bumps the matching counter
func (s *RefreshSummary) Add(record LogoRecord) {
	s.Total++
	switch record.Status {
	case StatusOK:
		s.OK++
	case StatusFallback:
		s.Fallback++
	case StatusError:
		s.Errored++
	}
	s.Outcomes = append(s.Outcomes, SiteOutcome{
		SiteURL: record.SiteURL,
		Status:  record.Status,
		Method:  record.ExtractionMethod,
		Message: record.ErrorMessage,
	})
}
