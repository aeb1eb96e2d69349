package query

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/kailas-cloud/sahayata/internal/domain/language"
)

// Query limits.
const (
	// MaxLength is the maximum accepted query length in characters.
	MaxLength    = 500
	DefaultLimit = 10
	MaxLimit     = 100
)

// Query is a per-request free-text search context.
type Query struct {
	raw        string
	normalized string
	lang       language.Language
	limit      int
}

// New builds a query. Unknown languages become English; limit<=0 means the
// default and larger values are clamped to MaxLimit.
func New(text, lang string, limit int) (Query, error) {
	if utf8.RuneCountInString(text) > MaxLength {
		return Query{}, fmt.Errorf("query too long (max %d chars)", MaxLength)
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return Query{
		raw:        text,
		normalized: Normalize(text),
		lang:       language.Parse(lang),
		limit:      limit,
	}, nil
}

// Normalize trims and lower-cases text.
func Normalize(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

// Raw returns the text as the caller supplied it.
func (q *Query) Raw() string { return q.raw }

// Normalized returns the trimmed, lower-cased text.
func (q *Query) Normalized() string { return q.normalized }

// Language returns the effective language.
func (q *Query) Language() language.Language { return q.lang }

// Limit returns the maximum number of matches.
func (q *Query) Limit() int { return q.limit }
