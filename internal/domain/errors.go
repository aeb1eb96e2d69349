package domain

import "errors"

var (
	// ErrSchemeNotFound signals a missing scheme record.
	ErrSchemeNotFound = errors.New("scheme not found")
	// ErrStoreUnavailable signals that the catalog store could not be read.
	ErrStoreUnavailable = errors.New("catalog store unavailable")
	// ErrInvalidQuery signals a search or browse request that cannot be served.
	ErrInvalidQuery = errors.New("invalid query")
	// ErrInvalidProfile signals an eligibility profile with out-of-range values.
	ErrInvalidProfile = errors.New("invalid eligibility profile")
)
