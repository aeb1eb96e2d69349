package search

import (
	"context"

	"github.com/kailas-cloud/sahayata/internal/domain/scheme"
)

// Repository defines the catalog read needed for ranking.
type Repository interface {
	// ListAll returns every record with text fields normalized to "".
	ListAll(ctx context.Context) ([]scheme.Scheme, error)
}
