package eligibility

import (
	"context"

	"github.com/kailas-cloud/sahayata/internal/domain/eligibility/predicate"
	"github.com/kailas-cloud/sahayata/internal/domain/scheme"
)

// Repository defines the catalog reads needed for eligibility filtering.
type Repository interface {
	// FindByPredicates returns at most limit records matching set, ordered by id.
	FindByPredicates(ctx context.Context, set predicate.Set, limit int) ([]scheme.Scheme, error)
}
