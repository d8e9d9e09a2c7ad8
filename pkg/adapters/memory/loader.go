// Package memory implements ports.DatasetLoader over a fixed record slice.
// It exists for tests and for library consumers that already hold their
// data in memory.
package memory

import (
	"context"

	"github.com/aretw0/gridview/pkg/domain"
)

// Loader serves a copy of the records it was created with.
type Loader struct {
	records []domain.Record
}

// NewLoader creates a loader from the given records.
func NewLoader(records ...domain.Record) *Loader {
	return &Loader{records: records}
}

// Load returns a fresh copy so callers cannot mutate the source slice.
func (l *Loader) Load(ctx context.Context) ([]domain.Record, error) {
	out := make([]domain.Record, len(l.records))
	copy(out, l.records)
	return out, nil
}
