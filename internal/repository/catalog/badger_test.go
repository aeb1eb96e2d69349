package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kailas-cloud/sahayata/internal/db/badger"
	"github.com/kailas-cloud/sahayata/internal/domain"
	"github.com/kailas-cloud/sahayata/internal/domain/eligibility/predicate"
	"github.com/kailas-cloud/sahayata/internal/domain/scheme"
)

func newBadgerRepo(t *testing.T) *BadgerRepo {
	t.Helper()
	b, err := badger.Open(badger.Config{InMemory: true}, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = b.Close() })
	return NewBadger(b)
}

func TestBadgerRepo_ListAllInIDOrder(t *testing.T) {
	ctx := context.Background()
	repo := newBadgerRepo(t)
	require.NoError(t, repo.Upsert(ctx, fixtures()))

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	ids := make([]int64, len(all))
	for i, s := range all {
		ids[i] = s.ID
	}
	assert.Equal(t, []int64{1, 2, 3, 10}, ids)
}

func TestBadgerRepo_Get(t *testing.T) {
	ctx := context.Background()
	repo := newBadgerRepo(t)
	require.NoError(t, repo.Upsert(ctx, fixtures()))

	got, err := repo.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "PM Kisan", got.EN.Name)
	assert.Equal(t, scheme.CategoryAgriculture, got.Category)

	_, err = repo.Get(ctx, 99)
	assert.ErrorIs(t, err, domain.ErrSchemeNotFound)
}

func TestBadgerRepo_FindByPredicatesRelaxed(t *testing.T) {
	ctx := context.Background()
	repo := newBadgerRepo(t)
	require.NoError(t, repo.Upsert(ctx, fixtures()))

	set := predicate.NewSet(
		predicate.New("occupation", predicate.TagContains("farmer")),
		predicate.New("income", predicate.TagContains("BPL"), predicate.TagContains("Poor")),
	)

	strict, err := repo.FindByPredicates(ctx, set, 50)
	require.NoError(t, err)
	assert.Empty(t, strict)

	relaxed, err := repo.FindByPredicates(ctx, set.Relaxed(), 50)
	require.NoError(t, err)
	require.Len(t, relaxed, 2)
	assert.Equal(t, int64(1), relaxed[0].ID)
	assert.Equal(t, int64(3), relaxed[1].ID)
}

func TestBadgerRepo_RejectsNegativeID(t *testing.T) {
	repo := newBadgerRepo(t)
	err := repo.Upsert(context.Background(), []scheme.Scheme{{ID: -1}})
	assert.Error(t, err)
}

func TestBadgerRepo_ClosedStore(t *testing.T) {
	b, err := badger.Open(badger.Config{InMemory: true}, zap.NewNop())
	require.NoError(t, err)
	repo := NewBadger(b)
	require.NoError(t, b.Close())

	_, err = repo.ListAll(context.Background())
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}
