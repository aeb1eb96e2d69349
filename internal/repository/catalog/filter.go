// Package catalog implements the scheme catalog over PostgreSQL, Redis/Valkey
// hashes and an embedded Badger database. Every backend returns records in
// ascending id order with absent text fields read as "".
package catalog

import (
	"slices"

	"github.com/kailas-cloud/sahayata/internal/domain/eligibility/predicate"
	"github.com/kailas-cloud/sahayata/internal/domain/scheme"
)

// sortByID orders records by ascending id in place.
func sortByID(all []scheme.Scheme) {
	slices.SortStableFunc(all, func(a, b scheme.Scheme) int {
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		}
		return 0
	})
}

// filterSet evaluates set in process over id-ordered records, keeping at most
// limit matches (limit<=0 keeps all).
func filterSet(all []scheme.Scheme, set predicate.Set, limit int) []scheme.Scheme {
	out := make([]scheme.Scheme, 0)
	for i := range all {
		if !set.Matches(&all[i]) {
			continue
		}
		out = append(out, all[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}
