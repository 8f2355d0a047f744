// ABOUTME: File-backed record store persisting the resolved logo record set
// ABOUTME: Writes go through a temp file plus atomic rename to avoid truncated reads

package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"logogrid-app/core/domain"
)

// Store implements interfaces.RecordStore over a JSON file
type Store struct {
	path string
}

// NewStore creates a record store backed by the given JSON file
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads the current record set. A missing file yields an empty set.
func (s *Store) Load(ctx context.Context) ([]domain.LogoRecord, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []domain.LogoRecord{}, nil
		}
		return nil, fmt.Errorf("failed to read record store %s: %w", s.path, err)
	}

	var records []domain.LogoRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse record store %s: %w", s.path, err)
	}

	return records, nil
}

// ReplaceAll overwrites the whole record set atomically
func (s *Store) ReplaceAll(ctx context.Context, records []domain.LogoRecord) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	return s.write(records)
}

// Splice replaces the record keyed by record.SiteURL, leaving all other
// records untouched. A new key is appended.
func (s *Store) Splice(ctx context.Context, record domain.LogoRecord) error {
	existing, err := s.Load(ctx)
	if err != nil {
		return err
	}

	updated := make([]domain.LogoRecord, 0, len(existing)+1)
	for _, rec := range existing {
		if rec.SiteURL != record.SiteURL {
			updated = append(updated, rec)
		}
	}
	updated = append(updated, record)

	return s.write(updated)
}

func (s *Store) write(records []domain.LogoRecord) error {
	if records == nil {
		records = []domain.LogoRecord{}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal records: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create store directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".logos-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write records: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace record store: %w", err)
	}

	return nil
}
