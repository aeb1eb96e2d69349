package match

import (
	"github.com/kailas-cloud/sahayata/internal/domain/language"
	"github.com/kailas-cloud/sahayata/internal/domain/scheme"
)

// Description clipping.
const (
	DescriptionLimit = 180
	Ellipsis         = "..."
)

// Match is a scored search hit with its localized description clipped.
type Match struct {
	scheme      scheme.Scheme
	lang        language.Language
	description string
	score       int
}

// New creates a match for s rendered in lang.
func New(s scheme.Scheme, lang language.Language, score int) Match {
	return Match{
		scheme:      s,
		lang:        lang,
		description: Clip(s.In(lang).Description, DescriptionLimit),
		score:       score,
	}
}

// Clip returns s unchanged when it has at most n characters, otherwise its
// first n characters followed by Ellipsis.
func Clip(s string, n int) string {
	count := 0
	for i := range s {
		if count == n {
			return s[:i] + Ellipsis
		}
		count++
	}
	return s
}

// ID returns the scheme identifier.
func (m *Match) ID() int64 { return m.scheme.ID }

// Scheme returns the matched record.
func (m *Match) Scheme() scheme.Scheme { return m.scheme }

// Text returns the record's text in the match language.
func (m *Match) Text() scheme.Text { return m.scheme.In(m.lang) }

// Description returns the clipped localized description.
func (m *Match) Description() string { return m.description }

// Score returns the relevance score.
func (m *Match) Score() int { return m.score }
