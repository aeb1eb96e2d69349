// Package reply renders ranked search results into a localized chat message.
package reply

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kailas-cloud/sahayata/internal/domain/keyword"
	"github.com/kailas-cloud/sahayata/internal/domain/language"
	"github.com/kailas-cloud/sahayata/internal/domain/search/match"
)

// Rendering limits.
const (
	PreviewLength = 160
	MaxListed     = 3
	MissingName   = "N/A"
)

// Composer turns a ranked match list into a message. Immutable after construction.
type Composer struct {
	templates map[language.Language]Templates
	order     []string
}

// NewComposer checks that English exists and that every language has a
// suggestion line for every taxonomy category.
func NewComposer(tax *keyword.Taxonomy, templates map[language.Language]Templates) (*Composer, error) {
	if _, ok := templates[language.English]; !ok {
		return nil, fmt.Errorf("reply: english templates are required")
	}
	order := tax.Names()
	for lang, t := range templates {
		if len(t.Suggestions) != len(order) {
			return nil, fmt.Errorf("reply: %s has %d suggestions, want %d", lang, len(t.Suggestions), len(order))
		}
		for _, name := range order {
			if t.Suggestions[name] == "" {
				return nil, fmt.Errorf("reply: %s is missing a suggestion for %q", lang, name)
			}
		}
	}
	return &Composer{templates: templates, order: order}, nil
}

func (c *Composer) in(l language.Language) Templates {
	if t, ok := c.templates[l]; ok {
		return t
	}
	return c.templates[language.English]
}

// Compose renders matches, or the suggestion block when there are none.
func (c *Composer) Compose(matches []match.Match, lang language.Language) string {
	if len(matches) == 0 {
		return c.NoMatch(lang)
	}
	t := c.in(lang)
	top := &matches[0]
	text := top.Text()
	s := top.Scheme()

	var b strings.Builder
	b.WriteString(fmt.Sprintf(t.Found, len(matches)))
	b.WriteString("\n\n**🎯 ")
	b.WriteString(nameOrMissing(text.Name))
	b.WriteString("**\n")
	if s.Category != "" {
		b.WriteString(t.CategoryLabel + ": " + s.Category + "\n")
	}
	if s.SchemeType != "" {
		b.WriteString(t.TypeLabel + ": " + s.SchemeType + "\n")
	}
	b.WriteString("\n" + head(text.Description, PreviewLength) + match.Ellipsis + "\n")

	if len(matches) > 1 {
		b.WriteString("\n" + t.More)
		for i := 1; i < len(matches) && i < MaxListed; i++ {
			b.WriteString("\n" + strconv.Itoa(i+1) + ". " + nameOrMissing(matches[i].Text().Name))
		}
	}
	b.WriteString("\n\n" + t.CallToAction)
	return b.String()
}

// NoMatch renders the header, one suggestion per taxonomy category in
// taxonomy order, and the footer.
func (c *Composer) NoMatch(lang language.Language) string {
	t := c.in(lang)
	lines := make([]string, 0, len(c.order))
	for _, name := range c.order {
		lines = append(lines, t.Suggestions[name])
	}
	return t.NoMatch + "\n\n" + strings.Join(lines, "\n") + "\n\n" + t.Footer
}

// Apology is the message shown when the catalog cannot be read.
func (c *Composer) Apology(lang language.Language) string {
	return c.in(lang).Apology
}

func nameOrMissing(name string) string {
	if name == "" {
		return MissingName
	}
	return name
}

// head returns the first n runes of s.
func head(s string, n int) string {
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
