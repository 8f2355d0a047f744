// ABOUTME: Storage interfaces for the site catalog and the persisted record set
// ABOUTME: Defines contracts for the external read-only catalog and read-write store

package interfaces

import (
	"context"

	"logogrid-app/core/domain"
)

// SiteCatalog provides read-only access to the external site catalog
type SiteCatalog interface {
	// Sites returns all catalog entries in catalog order.
	// A read failure is fatal to a refresh and must surface as a CatalogError.
	Sites(ctx context.Context) ([]domain.SiteSpec, error)

	// Site returns the entry keyed by the given URL
	Site(ctx context.Context, siteURL string) (*domain.SiteSpec, error)
}

// RecordStore persists the resolved logo record set
type RecordStore interface {
	// Load reads the current record set. A missing store yields an empty set.
	Load(ctx context.Context) ([]domain.LogoRecord, error)

	// ReplaceAll overwrites the whole record set atomically
	ReplaceAll(ctx context.Context, records []domain.LogoRecord) error

	// Splice replaces the record keyed by record.SiteURL, leaving all
	// other records untouched
	Splice(ctx context.Context, record domain.LogoRecord) error
}
