package search

import (
	"context"
	"fmt"
	"slices"

	"github.com/kailas-cloud/sahayata/internal/domain/keyword"
	"github.com/kailas-cloud/sahayata/internal/domain/search/match"
	"github.com/kailas-cloud/sahayata/internal/domain/search/query"
)

// Service ranks catalog records against free-text queries.
type Service struct {
	repo      Repository
	extractor *keyword.Extractor
	scorer    *Scorer
}

// New creates a search service.
func New(repo Repository, extractor *keyword.Extractor, scorer *Scorer) *Service {
	return &Service{repo: repo, extractor: extractor, scorer: scorer}
}

// Search extracts keywords, scores every catalog record, orders by score
// descending then id ascending, and truncates to the query limit.
func (s *Service) Search(ctx context.Context, q *query.Query) ([]match.Match, error) {
	all, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list catalog: %w", err)
	}

	lang := q.Language()
	tokens := s.extractor.Extract(q.Normalized(), lang)

	out := make([]match.Match, 0)
	for i := range all {
		score, ok := s.scorer.Score(&all[i], lang, q.Normalized(), tokens)
		if !ok {
			continue
		}
		out = append(out, match.New(all[i], lang, score))
	}

	slices.SortFunc(out, func(a, b match.Match) int {
		if a.Score() != b.Score() {
			return b.Score() - a.Score()
		}
		switch {
		case a.ID() < b.ID():
			return -1
		case a.ID() > b.ID():
			return 1
		}
		return 0
	})

	if len(out) > q.Limit() {
		out = out[:q.Limit()]
	}
	return out, nil
}
