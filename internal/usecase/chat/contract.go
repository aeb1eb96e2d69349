package chat

import (
	"context"

	"github.com/kailas-cloud/sahayata/internal/domain/language"
	"github.com/kailas-cloud/sahayata/internal/domain/search/match"
	"github.com/kailas-cloud/sahayata/internal/domain/search/query"
)

// Searcher ranks catalog records for a query.
type Searcher interface {
	Search(ctx context.Context, q *query.Query) ([]match.Match, error)
}

// Composer renders ranked matches into a localized message.
type Composer interface {
	Compose(matches []match.Match, lang language.Language) string
	Apology(lang language.Language) string
}
