// Package eligibility matches a citizen profile against catalog beneficiary
// tags, relaxing from all-of to any-of when nothing qualifies.
package eligibility

import (
	"context"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/kailas-cloud/sahayata/internal/domain/eligibility/predicate"
	"github.com/kailas-cloud/sahayata/internal/domain/eligibility/profile"
	"github.com/kailas-cloud/sahayata/internal/domain/scheme"
	"github.com/kailas-cloud/sahayata/internal/logger"
	"github.com/kailas-cloud/sahayata/internal/metrics"
)

// Result caps.
const (
	FetchLimit  = 50
	ReturnLimit = 20
)

// Phase names which predicate set produced the rows.
type Phase string

// Resolution phases.
const (
	PhaseUniversal Phase = "universal"
	PhaseStrict    Phase = "strict"
	PhaseRelaxed   Phase = "relaxed"
)

// Result is a ranked eligibility answer.
type Result struct {
	// Count is the number of qualifying rows before the return cap.
	Count   int
	Schemes []profile.Eligible
	Phase   Phase
}

// Service resolves and ranks eligible schemes.
type Service struct {
	repo   Repository
	rubric Rubric
}

// New creates an eligibility service.
func New(repo Repository, rubric Rubric) *Service {
	return &Service{repo: repo, rubric: rubric}
}

// Check validates p, resolves matching rows and ranks them by relevance.
// Equal relevance keeps the store order.
func (s *Service) Check(ctx context.Context, p profile.Profile) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	rows, phase, err := s.Resolve(ctx, predicate.FromProfile(p))
	if err != nil {
		logger.FromContext(ctx).Error("eligibility lookup failed",
			zap.String("operation", "find_by_predicates"),
			zap.String("phase", string(phase)),
			zap.Error(err),
		)
		metrics.EligibilityChecksTotal.WithLabelValues("error").Inc()
		metrics.CatalogErrorsTotal.WithLabelValues("find_by_predicates").Inc()
		return nil, err
	}
	metrics.EligibilityChecksTotal.WithLabelValues(string(phase)).Inc()

	ranked := make([]profile.Eligible, len(rows))
	for i := range rows {
		ranked[i] = profile.Eligible{Scheme: rows[i], Relevance: s.rubric.Relevance(rows[i].BeneficiaryTags, p)}
	}
	slices.SortStableFunc(ranked, func(a, b profile.Eligible) int {
		return b.Relevance - a.Relevance
	})

	logger.FromContext(ctx).Debug("eligibility resolved",
		zap.String("phase", string(phase)),
		zap.Int("rows", len(ranked)),
	)

	res := &Result{Count: len(ranked), Phase: phase}
	if len(ranked) > ReturnLimit {
		ranked = ranked[:ReturnLimit]
	}
	res.Schemes = ranked
	return res, nil
}

// Resolve runs the decision procedure: an empty set reads universal schemes;
// otherwise the strict set is evaluated and, when it yields nothing, the
// relaxed set is evaluated instead.
func (s *Service) Resolve(ctx context.Context, set predicate.Set) ([]scheme.Scheme, Phase, error) {
	if set.IsEmpty() {
		rows, err := s.repo.FindByPredicates(ctx, predicate.Universal(), FetchLimit)
		if err != nil {
			return nil, PhaseUniversal, fmt.Errorf("find universal schemes: %w", err)
		}
		return rows, PhaseUniversal, nil
	}

	rows, err := s.repo.FindByPredicates(ctx, set, FetchLimit)
	if err != nil {
		return nil, PhaseStrict, fmt.Errorf("find strict matches: %w", err)
	}
	if len(rows) > 0 {
		return rows, PhaseStrict, nil
	}

	rows, err = s.repo.FindByPredicates(ctx, set.Relaxed(), FetchLimit)
	if err != nil {
		return nil, PhaseRelaxed, fmt.Errorf("find relaxed matches: %w", err)
	}
	return rows, PhaseRelaxed, nil
}
