package catalog

import (
	"context"
	"testing"

	"github.com/kailas-cloud/sahayata/internal/db"
	"github.com/kailas-cloud/sahayata/internal/domain/scheme"
)

// mockStore implements hashStore for tests.
type mockStore struct {
	replaceFn      func(ctx context.Context, items []db.HashSetItem) error
	hgetAllFn      func(ctx context.Context, key string) (map[string]string, error)
	hgetAllMultiFn func(ctx context.Context, keys []string) ([]map[string]string, error)
	scanFn         func(ctx context.Context, pattern string) ([]string, error)
}

func (m *mockStore) ReplaceHashes(ctx context.Context, items []db.HashSetItem) error {
	if m.replaceFn != nil {
		return m.replaceFn(ctx, items)
	}
	return nil
}

func (m *mockStore) HGetAll(ctx context.Context, key string) (map[string]string, error) {
	if m.hgetAllFn != nil {
		return m.hgetAllFn(ctx, key)
	}
	return map[string]string{}, nil
}

func (m *mockStore) HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error) {
	if m.hgetAllMultiFn != nil {
		return m.hgetAllMultiFn(ctx, keys)
	}
	return make([]map[string]string, len(keys)), nil
}

func (m *mockStore) Scan(ctx context.Context, pattern string) ([]string, error) {
	if m.scanFn != nil {
		return m.scanFn(ctx, pattern)
	}
	return nil, nil
}

func newTestHashRepo(t *testing.T) (*HashRepo, *mockStore) {
	t.Helper()
	ms := &mockStore{}
	return NewHash(ms, ""), ms
}

// memHash is a tiny in-memory hash store for round-trip tests.
type memHash struct {
	data map[string]map[string]string
}

func newMemHash() *memHash { return &memHash{data: map[string]map[string]string{}} }

func (m *memHash) ReplaceHashes(_ context.Context, items []db.HashSetItem) error {
	for _, it := range items {
		cp := make(map[string]string, len(it.Fields))
		for k, v := range it.Fields {
			cp[k] = v
		}
		m.data[it.Key] = cp
	}
	return nil
}

func (m *memHash) HGetAll(_ context.Context, key string) (map[string]string, error) {
	if v, ok := m.data[key]; ok {
		return v, nil
	}
	return map[string]string{}, nil
}

func (m *memHash) HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error) {
	out := make([]map[string]string, len(keys))
	for i, k := range keys {
		out[i], _ = m.HGetAll(ctx, k)
	}
	return out, nil
}

func (m *memHash) Scan(_ context.Context, _ string) ([]string, error) {
	keys := make([]string, 0, len(m.data))
	for k := range m.data {
		keys = append(keys, k)
	}
	return keys, nil
}

func fixtures() []scheme.Scheme {
	return []scheme.Scheme{
		{ID: 3, EN: scheme.Text{Name: "Old Age Pension"}, BeneficiaryTags: "Senior Citizens, BPL"},
		{ID: 1, EN: scheme.Text{Name: "PM Kisan"}, BeneficiaryTags: "Farmer", Category: scheme.CategoryAgriculture},
		{ID: 2, EN: scheme.Text{Name: "Ayushman Bharat"}, BeneficiaryTags: "All"},
		{ID: 10, EN: scheme.Text{Name: "Elderly Care"}, BeneficiaryTags: "Elderly"},
	}
}
