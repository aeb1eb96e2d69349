package sahayata

import "github.com/kailas-cloud/sahayata/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrSchemeNotFound   = domain.ErrSchemeNotFound
	ErrStoreUnavailable = domain.ErrStoreUnavailable
	ErrInvalidQuery     = domain.ErrInvalidQuery
	ErrInvalidProfile   = domain.ErrInvalidProfile
)
