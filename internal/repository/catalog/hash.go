package catalog

import (
	"context"
	"fmt"
	"strconv"

	"github.com/kailas-cloud/sahayata/internal/db"
	"github.com/kailas-cloud/sahayata/internal/domain"
	"github.com/kailas-cloud/sahayata/internal/domain/eligibility/predicate"
	"github.com/kailas-cloud/sahayata/internal/domain/scheme"
)

// DefaultKeyPrefix namespaces catalog keys in a shared Redis/Valkey.
const DefaultKeyPrefix = "sahayata:"

// hashStore is the consumer interface for hash-backed records (ISP).
type hashStore interface {
	ReplaceHashes(ctx context.Context, items []db.HashSetItem) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error)
	Scan(ctx context.Context, pattern string) ([]string, error)
}

// HashRepo stores one hash per scheme at <prefix>scheme:<id>.
type HashRepo struct {
	store  hashStore
	prefix string
}

// NewHash creates a hash-backed catalog. An empty prefix uses DefaultKeyPrefix.
func NewHash(s hashStore, prefix string) *HashRepo {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	return &HashRepo{store: s, prefix: prefix}
}

func (r *HashRepo) key(id int64) string {
	return r.prefix + "scheme:" + strconv.FormatInt(id, 10)
}

// ListAll returns every record ordered by id.
func (r *HashRepo) ListAll(ctx context.Context) ([]scheme.Scheme, error) {
	keys, err := r.store.Scan(ctx, r.prefix+"scheme:*")
	if err != nil {
		return nil, fmt.Errorf("%w: scan schemes: %w", domain.ErrStoreUnavailable, err)
	}
	maps, err := r.store.HGetAllMulti(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("%w: load schemes: %w", domain.ErrStoreUnavailable, err)
	}

	out := make([]scheme.Scheme, 0, len(maps))
	for i, m := range maps {
		if len(m) == 0 {
			continue // deleted between SCAN and HGETALL
		}
		s, err := scheme.FromFields(m)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", keys[i], err)
		}
		out = append(out, s)
	}
	sortByID(out)
	return out, nil
}

// FindByPredicates evaluates set over the full catalog.
func (r *HashRepo) FindByPredicates(
	ctx context.Context, set predicate.Set, limit int,
) ([]scheme.Scheme, error) {
	all, err := r.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return filterSet(all, set, limit), nil
}

// Get returns one record by id.
func (r *HashRepo) Get(ctx context.Context, id int64) (scheme.Scheme, error) {
	m, err := r.store.HGetAll(ctx, r.key(id))
	if err != nil {
		return scheme.Scheme{}, fmt.Errorf("%w: get scheme %d: %w", domain.ErrStoreUnavailable, id, err)
	}
	if len(m) == 0 {
		return scheme.Scheme{}, domain.ErrSchemeNotFound
	}
	s, err := scheme.FromFields(m)
	if err != nil {
		return scheme.Scheme{}, fmt.Errorf("decode scheme %d: %w", id, err)
	}
	return s, nil
}

// Upsert replaces each record's hash in one pipelined round-trip.
func (r *HashRepo) Upsert(ctx context.Context, schemes []scheme.Scheme) error {
	items := make([]db.HashSetItem, len(schemes))
	for i := range schemes {
		items[i] = db.HashSetItem{Key: r.key(schemes[i].ID), Fields: schemes[i].Fields()}
	}
	if err := r.store.ReplaceHashes(ctx, items); err != nil {
		return fmt.Errorf("%w: upsert schemes: %w", domain.ErrStoreUnavailable, err)
	}
	return nil
}
