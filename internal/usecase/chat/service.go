// Package chat answers free-text chat messages with a localized reply and the
// top ranked schemes.
package chat

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/kailas-cloud/sahayata/internal/domain"
	"github.com/kailas-cloud/sahayata/internal/domain/language"
	"github.com/kailas-cloud/sahayata/internal/domain/search/match"
	"github.com/kailas-cloud/sahayata/internal/domain/search/query"
	"github.com/kailas-cloud/sahayata/internal/logger"
	"github.com/kailas-cloud/sahayata/internal/metrics"
)

// DefaultSearchLimit is how many matches feed the reply; DefaultShown is how
// many of them are returned to the caller.
const (
	DefaultSearchLimit = 10
	DefaultShown       = 3
)

// Reply is the chat answer.
type Reply struct {
	Message  string
	Schemes  []match.Match
	Language language.Language
}

// Service is the chat boundary: it never fails on catalog errors.
type Service struct {
	searcher    Searcher
	composer    Composer
	searchLimit int
	shown       int
}

// Option configures the service.
type Option func(*Service)

// WithSearchLimit sets how many matches are ranked per message.
func WithSearchLimit(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.searchLimit = n
		}
	}
}

// WithShown sets how many matches are returned with the reply.
func WithShown(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.shown = n
		}
	}
}

// New creates a chat service.
func New(searcher Searcher, composer Composer, opts ...Option) *Service {
	s := &Service{
		searcher:    searcher,
		composer:    composer,
		searchLimit: DefaultSearchLimit,
		shown:       DefaultShown,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Answer searches the catalog and composes the reply. A catalog failure is
// logged and answered with the localized apology and no schemes; only an
// invalid message is returned as an error.
func (s *Service) Answer(ctx context.Context, message, lang string) (Reply, error) {
	q, err := query.New(message, lang, s.searchLimit)
	if err != nil {
		return Reply{}, fmt.Errorf("%w: %w", domain.ErrInvalidQuery, err)
	}
	l := q.Language()
	ctx = logger.With(ctx, zap.String("language", l.String()))

	matches, err := s.searcher.Search(ctx, &q)
	if err != nil {
		unavailable := errors.Is(err, domain.ErrStoreUnavailable)
		logger.FromContext(ctx).Error("chat search failed",
			zap.Bool("store_unavailable", unavailable),
			zap.Error(err),
		)
		metrics.SearchRequestsTotal.WithLabelValues(l.String(), "error").Inc()
		if unavailable {
			metrics.CatalogErrorsTotal.WithLabelValues("list_all").Inc()
		}
		return Reply{Message: s.composer.Apology(l), Schemes: []match.Match{}, Language: l}, nil
	}

	outcome := "match"
	if len(matches) == 0 {
		outcome = "no_match"
	}
	metrics.SearchRequestsTotal.WithLabelValues(l.String(), outcome).Inc()
	metrics.SearchResults.WithLabelValues(l.String()).Observe(float64(len(matches)))

	reply := Reply{Message: s.composer.Compose(matches, l), Language: l}
	if len(matches) > s.shown {
		matches = matches[:s.shown]
	}
	reply.Schemes = matches
	return reply, nil
}
