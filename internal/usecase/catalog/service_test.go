package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/kailas-cloud/sahayata/internal/domain"
	"github.com/kailas-cloud/sahayata/internal/domain/scheme"
)

// --- Mocks ---

type mockRepo struct {
	schemes []scheme.Scheme
	err     error
}

func (m *mockRepo) ListAll(_ context.Context) ([]scheme.Scheme, error) {
	return m.schemes, m.err
}

func (m *mockRepo) Get(_ context.Context, id int64) (scheme.Scheme, error) {
	if m.err != nil {
		return scheme.Scheme{}, m.err
	}
	for _, s := range m.schemes {
		if s.ID == id {
			return s, nil
		}
	}
	return scheme.Scheme{}, domain.ErrSchemeNotFound
}

func fixtures() []scheme.Scheme {
	return []scheme.Scheme{
		{
			ID: 1, Category: scheme.CategoryAgriculture, SchemeType: "Central Sector Scheme",
			EN:              scheme.Text{Name: "PM Kisan", Description: "Income support to farmers"},
			TE:              scheme.Text{Name: "పీఎం కిసాన్", Description: "రైతులకు ఆదాయ మద్దతు"},
			BeneficiaryTags: "Farmer",
		},
		{
			ID: 2, Category: scheme.CategoryAgriculture, SchemeType: "AP State Scheme",
			EN: scheme.Text{Name: "Rythu Bharosa", Description: "Investment support"},
		},
		{
			ID: 3, Category: scheme.CategoryHealth,
			EN:              scheme.Text{Name: "YSR Aarogyasri (AP)", Description: "Health insurance"},
			BeneficiaryTags: "BPL families",
		},
		{
			ID: 4, Category: scheme.CategoryEducation,
			EN: scheme.Text{Name: "Apprenticeship Promotion", Description: "Stipend for apprentices"},
		},
		{ID: 5, EN: scheme.Text{Name: "Uncategorised"}},
	}
}

func schemeIDs(ss []scheme.Scheme) []int64 {
	out := make([]int64, len(ss))
	for i, s := range ss {
		out[i] = s.ID
	}
	return out
}

func equalIDs(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// --- Get ---

func TestGet(t *testing.T) {
	svc := New(&mockRepo{schemes: fixtures()})

	s, err := svc.Get(context.Background(), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.EN.Name != "YSR Aarogyasri (AP)" {
		t.Errorf("name = %q", s.EN.Name)
	}

	_, err = svc.Get(context.Background(), 99)
	if !errors.Is(err, domain.ErrSchemeNotFound) {
		t.Fatalf("expected ErrSchemeNotFound, got %v", err)
	}
}

// --- ByCategory ---

func TestByCategory(t *testing.T) {
	svc := New(&mockRepo{schemes: fixtures()})

	got, err := svc.ByCategory(context.Background(), "agriculture", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !equalIDs(schemeIDs(got), []int64{1, 2}) {
		t.Errorf("ids = %v", schemeIDs(got))
	}

	got, _ = svc.ByCategory(context.Background(), "AGRICULTURE", 1)
	if !equalIDs(schemeIDs(got), []int64{1}) {
		t.Errorf("ids = %v", schemeIDs(got))
	}
}

func TestByCategory_InvalidInput(t *testing.T) {
	svc := New(&mockRepo{schemes: fixtures()})
	tests := []struct {
		name  string
		cat   string
		limit int
	}{
		{"blank name", "  ", 0},
		{"limit too large", "health", MaxLimit + 1},
		{"negative limit", "health", -1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.ByCategory(context.Background(), tc.cat, tc.limit); !errors.Is(err, domain.ErrInvalidQuery) {
				t.Errorf("expected ErrInvalidQuery, got %v", err)
			}
		})
	}
}

// --- Search ---

func TestSearch(t *testing.T) {
	svc := New(&mockRepo{schemes: fixtures()})
	tests := []struct {
		name string
		text string
		lang string
		want []int64
	}{
		{"english name", "kisan", "en", []int64{1}},
		{"english description", "support", "en", []int64{1, 2}},
		{"english tags", "bpl", "en", []int64{3}},
		{"default language", "rythu", "", []int64{2}},
		{"telugu name", "కిసాన్", "te", []int64{1}},
		{"telugu ignores tags", "farmer", "te", []int64{}},
		{"hindi searches hindi columns only", "rythu", "hi", []int64{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := svc.Search(context.Background(), tc.text, tc.lang, 0)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !equalIDs(schemeIDs(got), tc.want) {
				t.Errorf("ids = %v, want %v", schemeIDs(got), tc.want)
			}
		})
	}
}

func TestSearch_InvalidInput(t *testing.T) {
	svc := New(&mockRepo{schemes: fixtures()})
	tests := []struct {
		name string
		text string
		lang string
	}{
		{"too short", " k ", "en"},
		{"unsupported language", "kisan", "fr"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Search(context.Background(), tc.text, tc.lang, 0); !errors.Is(err, domain.ErrInvalidQuery) {
				t.Errorf("expected ErrInvalidQuery, got %v", err)
			}
		})
	}
}

// --- Statistics ---

func TestStatistics(t *testing.T) {
	svc := New(&mockRepo{schemes: fixtures()})

	st, err := svc.Statistics(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 2 by type; 3 and 4 by the "ap" name marker.
	if st.Total != 5 || st.State != 3 || st.Central != 2 {
		t.Errorf("total/state/central = %d/%d/%d, want 5/3/2", st.Total, st.State, st.Central)
	}
	want := []CategoryCount{
		{scheme.CategoryAgriculture, 2},
		{scheme.CategoryEducation, 1},
		{scheme.CategoryHealth, 1},
	}
	if len(st.Categories) != len(want) {
		t.Fatalf("categories = %v", st.Categories)
	}
	for i := range want {
		if st.Categories[i] != want[i] {
			t.Errorf("categories[%d] = %v, want %v", i, st.Categories[i], want[i])
		}
	}
}

func TestStatistics_StoreError(t *testing.T) {
	svc := New(&mockRepo{err: domain.ErrStoreUnavailable})
	if _, err := svc.Statistics(context.Background()); !errors.Is(err, domain.ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
}

func TestIsStateScheme(t *testing.T) {
	tests := []struct {
		name string
		s    scheme.Scheme
		want bool
	}{
		{"state type", scheme.Scheme{SchemeType: "State-Implemented Scheme"}, true},
		{"name marker", scheme.Scheme{EN: scheme.Text{Name: "Andhra Pradesh Housing"}}, true},
		{"standalone AP", scheme.Scheme{EN: scheme.Text{Name: "AP Fibernet"}}, true},
		{"mixed case", scheme.Scheme{EN: scheme.Text{Name: "Ap Scheme for Weavers"}}, true},
		{"ap inside a word", scheme.Scheme{EN: scheme.Text{Name: "Kapas Farmers Support"}}, true},
		{"no marker", scheme.Scheme{EN: scheme.Text{Name: "Skill India Mission"}}, false},
		{"central", scheme.Scheme{SchemeType: "Central Sector Scheme"}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsStateScheme(&tc.s); got != tc.want {
				t.Errorf("IsStateScheme = %v, want %v", got, tc.want)
			}
		})
	}
}
