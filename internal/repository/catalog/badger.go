package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/kailas-cloud/sahayata/internal/db"
	"github.com/kailas-cloud/sahayata/internal/db/badger"
	"github.com/kailas-cloud/sahayata/internal/domain"
	"github.com/kailas-cloud/sahayata/internal/domain/eligibility/predicate"
	"github.com/kailas-cloud/sahayata/internal/domain/scheme"
)

const badgerPrefix = "scheme/"

// kvStore is the consumer interface for the embedded store (ISP).
type kvStore interface {
	PutMulti(ctx context.Context, items []badger.KV) error
	Get(ctx context.Context, key []byte) ([]byte, error)
	ScanPrefix(ctx context.Context, prefix []byte, fn func(key, value []byte) error) error
}

// BadgerRepo stores one JSON object per scheme under a zero-padded id key,
// so prefix iteration yields id order.
type BadgerRepo struct {
	kv kvStore
}

// NewBadger creates an embedded catalog.
func NewBadger(kv kvStore) *BadgerRepo {
	return &BadgerRepo{kv: kv}
}

func badgerKey(id int64) []byte {
	return []byte(fmt.Sprintf("%s%020d", badgerPrefix, id))
}

// ListAll returns every record ordered by id.
func (r *BadgerRepo) ListAll(ctx context.Context) ([]scheme.Scheme, error) {
	out := make([]scheme.Scheme, 0)
	err := r.kv.ScanPrefix(ctx, []byte(badgerPrefix), func(key, value []byte) error {
		s, err := decodeRecord(value)
		if err != nil {
			return fmt.Errorf("decode %s: %w", key, err)
		}
		out = append(out, s)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: list schemes: %w", domain.ErrStoreUnavailable, err)
	}
	return out, nil
}

// FindByPredicates evaluates set over the full catalog.
func (r *BadgerRepo) FindByPredicates(
	ctx context.Context, set predicate.Set, limit int,
) ([]scheme.Scheme, error) {
	all, err := r.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return filterSet(all, set, limit), nil
}

// Get returns one record by id.
func (r *BadgerRepo) Get(ctx context.Context, id int64) (scheme.Scheme, error) {
	raw, err := r.kv.Get(ctx, badgerKey(id))
	if errors.Is(err, db.ErrKeyNotFound) {
		return scheme.Scheme{}, domain.ErrSchemeNotFound
	}
	if err != nil {
		return scheme.Scheme{}, fmt.Errorf("%w: get scheme %d: %w", domain.ErrStoreUnavailable, id, err)
	}
	return decodeRecord(raw)
}

// Upsert writes records in one batch. Negative ids are rejected since they
// would break key ordering.
func (r *BadgerRepo) Upsert(ctx context.Context, schemes []scheme.Scheme) error {
	items := make([]badger.KV, 0, len(schemes))
	for i := range schemes {
		if schemes[i].ID < 0 {
			return fmt.Errorf("scheme id %d must not be negative", schemes[i].ID)
		}
		raw, err := json.Marshal(schemes[i].Fields())
		if err != nil {
			return fmt.Errorf("encode scheme %d: %w", schemes[i].ID, err)
		}
		items = append(items, badger.KV{Key: badgerKey(schemes[i].ID), Value: raw})
	}
	if err := r.kv.PutMulti(ctx, items); err != nil {
		return fmt.Errorf("%w: upsert schemes: %w", domain.ErrStoreUnavailable, err)
	}
	return nil
}

func decodeRecord(raw []byte) (scheme.Scheme, error) {
	var m map[string]string
	if err := json.Unmarshal(raw, &m); err != nil {
		return scheme.Scheme{}, fmt.Errorf("unmarshal scheme: %w", err)
	}
	return scheme.FromFields(m)
}
