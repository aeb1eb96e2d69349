package catalog

import (
	"context"

	"github.com/kailas-cloud/sahayata/internal/domain/scheme"
)

// Repository defines the catalog reads needed for browsing.
type Repository interface {
	ListAll(ctx context.Context) ([]scheme.Scheme, error)
	Get(ctx context.Context, id int64) (scheme.Scheme, error)
}
