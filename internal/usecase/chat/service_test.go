package chat

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/kailas-cloud/sahayata/internal/domain"
	"github.com/kailas-cloud/sahayata/internal/domain/keyword"
	"github.com/kailas-cloud/sahayata/internal/domain/language"
	"github.com/kailas-cloud/sahayata/internal/domain/scheme"
	"github.com/kailas-cloud/sahayata/internal/domain/search/match"
	"github.com/kailas-cloud/sahayata/internal/domain/search/query"
	"github.com/kailas-cloud/sahayata/internal/logger"
	"github.com/kailas-cloud/sahayata/internal/metrics"
	"github.com/kailas-cloud/sahayata/internal/usecase/reply"
)

// --- Mocks ---

type mockSearcher struct {
	matches []match.Match
	err     error
	lastQ   *query.Query
}

func (m *mockSearcher) Search(_ context.Context, q *query.Query) ([]match.Match, error) {
	m.lastQ = q
	return m.matches, m.err
}

func newComposer(t *testing.T) *reply.Composer {
	t.Helper()
	c, err := reply.NewComposer(keyword.Default(), reply.DefaultTemplates())
	if err != nil {
		t.Fatalf("NewComposer: %v", err)
	}
	return c
}

func matches(n int) []match.Match {
	out := make([]match.Match, n)
	for i := range out {
		s := scheme.Scheme{ID: int64(i + 1), EN: scheme.Text{Name: "Scheme"}}
		out[i] = match.New(s, language.English, 100-i)
	}
	return out
}

func TestAnswer_CapsReturnedSchemes(t *testing.T) {
	svc := New(&mockSearcher{matches: matches(7)}, newComposer(t))

	got, err := svc.Answer(context.Background(), "pension", "en")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Schemes) != DefaultShown {
		t.Errorf("schemes = %d, want %d", len(got.Schemes), DefaultShown)
	}
	if !strings.HasPrefix(got.Message, "✅ Found 7 relevant scheme(s)!") {
		t.Errorf("message should count all matches: %q", got.Message)
	}
}

func TestAnswer_PassesSearchLimitAndLanguage(t *testing.T) {
	ms := &mockSearcher{}
	svc := New(ms, newComposer(t), WithSearchLimit(25), WithShown(5))

	got, err := svc.Answer(context.Background(), "ఆరోగ్యం", "TE")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ms.lastQ.Limit() != 25 {
		t.Errorf("limit = %d, want 25", ms.lastQ.Limit())
	}
	if got.Language != language.Telugu {
		t.Errorf("language = %s", got.Language)
	}
}

func TestAnswer_NoMatch(t *testing.T) {
	svc := New(&mockSearcher{matches: []match.Match{}}, newComposer(t))

	got, err := svc.Answer(context.Background(), "xyzzy", "en")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(got.Message, "❌ No schemes found") {
		t.Errorf("message = %q", got.Message)
	}
	if got.Schemes == nil || len(got.Schemes) != 0 {
		t.Errorf("expected empty non-nil schemes, got %v", got.Schemes)
	}
}

func TestAnswer_StoreFailureBecomesApology(t *testing.T) {
	metrics.RegisterDomainMetrics()
	before := testutil.ToFloat64(metrics.SearchRequestsTotal.WithLabelValues("hi", "error"))
	catalogBefore := testutil.ToFloat64(metrics.CatalogErrorsTotal.WithLabelValues("list_all"))

	core, logs := observer.New(zapcore.ErrorLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	svc := New(&mockSearcher{err: domain.ErrStoreUnavailable}, newComposer(t))
	got, err := svc.Answer(ctx, "pension", "hi")
	if err != nil {
		t.Fatalf("store failure must not surface, got %v", err)
	}
	if !strings.HasPrefix(got.Message, "⚠️") {
		t.Errorf("message = %q", got.Message)
	}
	if len(got.Schemes) != 0 {
		t.Errorf("expected no schemes, got %d", len(got.Schemes))
	}
	after := testutil.ToFloat64(metrics.SearchRequestsTotal.WithLabelValues("hi", "error"))
	if after-before != 1 {
		t.Errorf("error counter delta = %f", after-before)
	}
	if d := testutil.ToFloat64(metrics.CatalogErrorsTotal.WithLabelValues("list_all")) - catalogBefore; d != 1 {
		t.Errorf("catalog error counter delta = %f", d)
	}
	if logs.Len() != 1 {
		t.Fatalf("logged %d errors, want 1", logs.Len())
	}
	fields := logs.All()[0].ContextMap()
	if fields["language"] != "hi" || fields["store_unavailable"] != true {
		t.Errorf("log fields = %v", fields)
	}
}

func TestAnswer_OtherSearchErrorSkipsCatalogCounter(t *testing.T) {
	metrics.RegisterDomainMetrics()
	before := testutil.ToFloat64(metrics.CatalogErrorsTotal.WithLabelValues("list_all"))

	svc := New(&mockSearcher{err: errors.New("scoring failed")}, newComposer(t))
	got, err := svc.Answer(context.Background(), "pension", "en")
	if err != nil {
		t.Fatalf("search failure must not surface, got %v", err)
	}
	if len(got.Schemes) != 0 {
		t.Errorf("expected no schemes, got %d", len(got.Schemes))
	}
	if d := testutil.ToFloat64(metrics.CatalogErrorsTotal.WithLabelValues("list_all")) - before; d != 0 {
		t.Errorf("catalog error counter delta = %f, want 0", d)
	}
}

func TestAnswer_TooLong(t *testing.T) {
	svc := New(&mockSearcher{}, newComposer(t))
	_, err := svc.Answer(context.Background(), strings.Repeat("a", query.MaxLength+1), "en")
	if !errors.Is(err, domain.ErrInvalidQuery) {
		t.Fatalf("expected ErrInvalidQuery, got %v", err)
	}
}
