// ABOUTME: ExtractionResult is the ephemeral outcome of one cascade run
// ABOUTME: Produced by the extractor, consumed by the refresher

package domain

// ExtractionStatus is the outcome flag of a cascade run
type ExtractionStatus string

const (
	ExtractionOK    ExtractionStatus = "ok"
	ExtractionError ExtractionStatus = "error"
)

// ExtractionResult describes one attempt to find a logo candidate on a page
type ExtractionResult struct {
	// CandidateURL is the absolute URL proposed as a possible logo.
	// Empty when no strategy succeeded.
	CandidateURL string `json:"candidate_url,omitempty"`

	// Method is the strategy that produced the candidate, or "none"
	Method ExtractionMethod `json:"method"`

	// Status is ok when a candidate was found
	Status ExtractionStatus `json:"status"`

	// Error carries the failure detail when Status is error
	Error string `json:"error,omitempty"`
}

// Found reports whether the cascade produced a usable candidate
func (r *ExtractionResult) Found() bool {
	return r.Status == ExtractionOK && r.CandidateURL != ""
}
