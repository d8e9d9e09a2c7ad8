package ports

import (
	"context"

	"github.com/aretw0/gridview/pkg/domain"
)

// DatasetLoader reads the tabular source into typed records.
// It runs exactly once per process; the returned slice becomes the immutable
// input of the renewable filter. Any error is fatal to startup — the
// dashboard must never serve a partially loaded dataset.
type DatasetLoader interface {
	Load(ctx context.Context) ([]domain.Record, error)
}
