// ABOUTME: Custom error types for the logo resolution pipeline
// ABOUTME: Provides structured errors so the refresher can classify per-site failures

package errors

import (
	"errors"
	"fmt"
)

// FetchError represents a page or image retrieval failure after all
// retries were exhausted.
type FetchError struct {
	URL        string
	StatusCode int
	Attempts   int
	Message    string
}

// Error implements the error interface
func (e *FetchError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("fetch failed for %s after %d attempts: status %d", e.URL, e.Attempts, e.StatusCode)
	}
	return fmt.Sprintf("fetch failed for %s after %d attempts: %s", e.URL, e.Attempts, e.Message)
}

// ValidationError represents a rejected candidate image (oversized
// payload, non-image content type, out-of-bound dimensions).
type ValidationError struct {
	URL    string
	Reason string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.URL, e.Reason)
}

// ProcessingError represents a decode or encode failure
type ProcessingError struct {
	Stage   string
	Message string
}

// Error implements the error interface
func (e *ProcessingError) Error() string {
	return fmt.Sprintf("image processing failed during %s: %s", e.Stage, e.Message)
}

// NotFoundError represents an exhausted cascade or a missing resource
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// CatalogError represents an unreadable site catalog. It is the only
// error the refresher does not absorb: it aborts the whole run.
type CatalogError struct {
	Path string
	Err  error
}

// Error implements the error interface
func (e *CatalogError) Error() string {
	return fmt.Sprintf("site catalog unreadable at %s: %v", e.Path, e.Err)
}

// Unwrap exposes the underlying cause
func (e *CatalogError) Unwrap() error {
	return e.Err
}

// IsFetch checks if an error is a FetchError
func IsFetch(err error) bool {
	var fetchErr *FetchError
	return errors.As(err, &fetchErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsProcessing checks if an error is a ProcessingError
func IsProcessing(err error) bool {
	var processingErr *ProcessingError
	return errors.As(err, &processingErr)
}

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsCatalog checks if an error is a CatalogError
func IsCatalog(err error) bool {
	var catalogErr *CatalogError
	return errors.As(err, &catalogErr)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
