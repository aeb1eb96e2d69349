package keyword

import (
	"sort"
	"strings"

	"github.com/kailas-cloud/sahayata/internal/domain/language"
)

// TokenSet is the set of keywords and category names found in a query.
type TokenSet map[string]struct{}

// Has reports whether tok is in the set.
func (s TokenSet) Has(tok string) bool {
	_, ok := s[tok]
	return ok
}

// Len returns the number of tokens.
func (s TokenSet) Len() int { return len(s) }

// Sorted returns the tokens in lexical order.
func (s TokenSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for tok := range s {
		out = append(out, tok)
	}
	sort.Strings(out)
	return out
}

// Extractor matches queries against a taxonomy. Safe for concurrent use.
type Extractor struct {
	taxonomy *Taxonomy
}

// NewExtractor creates an extractor over t.
func NewExtractor(t *Taxonomy) *Extractor {
	return &Extractor{taxonomy: t}
}

// Extract lower-cases query and collects every keyword of the language's
// taxonomy contained in it, together with the keyword's category name.
// Matching is plain substring containment. An empty set is a valid result.
func (e *Extractor) Extract(query string, lang language.Language) TokenSet {
	q := strings.ToLower(query)
	out := TokenSet{}
	if q == "" {
		return out
	}
	for _, cat := range e.taxonomy.Categories(lang) {
		for _, kw := range cat.Keywords {
			if strings.Contains(q, kw) {
				out[kw] = struct{}{}
				out[cat.Name] = struct{}{}
			}
		}
	}
	return out
}
