// ABOUTME: File-backed site catalog reading the external sites.json
// ABOUTME: Read-only to this module; an unreadable catalog is a fatal CatalogError

package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"logogrid-app/core/domain"
	coreerrors "logogrid-app/core/errors"
)

// Catalog implements interfaces.SiteCatalog over a JSON file
type Catalog struct {
	path string
}

// NewCatalog creates a catalog reader for the given JSON file
func NewCatalog(path string) *Catalog {
	return &Catalog{path: path}
}

// Sites returns all catalog entries in file order
func (c *Catalog) Sites(ctx context.Context) ([]domain.SiteSpec, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	data, err := os.ReadFile(c.path)
	if err != nil {
		return nil, &coreerrors.CatalogError{Path: c.path, Err: err}
	}

	var sites []domain.SiteSpec
	if err := json.Unmarshal(data, &sites); err != nil {
		return nil, &coreerrors.CatalogError{Path: c.path, Err: err}
	}

	seen := make(map[string]struct{}, len(sites))
	for i := range sites {
		if err := sites[i].Validate(); err != nil {
			return nil, &coreerrors.CatalogError{
				Path: c.path,
				Err:  fmt.Errorf("entry %d: %w", i, err),
			}
		}
		if _, dup := seen[sites[i].URL]; dup {
			return nil, &coreerrors.CatalogError{
				Path: c.path,
				Err:  fmt.Errorf("duplicate site URL: %s", sites[i].URL),
			}
		}
		seen[sites[i].URL] = struct{}{}
	}

	return sites, nil
}

// Site returns the entry keyed by the given URL
func (c *Catalog) Site(ctx context.Context, siteURL string) (*domain.SiteSpec, error) {
	sites, err := c.Sites(ctx)
	if err != nil {
		return nil, err
	}

	for i := range sites {
		if sites[i].URL == siteURL {
			return &sites[i], nil
		}
	}

	return nil, &coreerrors.NotFoundError{Resource: "site", ID: siteURL}
}
