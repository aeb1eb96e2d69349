package sahayata

import (
	"github.com/kailas-cloud/sahayata/internal/domain/language"
	"github.com/kailas-cloud/sahayata/internal/domain/scheme"
	"github.com/kailas-cloud/sahayata/internal/domain/search/match"
)

// Language is a supported interface language code.
type Language string

// Supported languages.
const (
	English Language = Language(language.English)
	Telugu  Language = Language(language.Telugu)
	Hindi   Language = Language(language.Hindi)
)

// Text is the localized content of a scheme.
type Text struct {
	Name               string
	Description        string
	Eligibility        string
	Benefits           string
	ApplicationProcess string
}

// Scheme is one catalog record.
type Scheme struct {
	ID              int64
	EN, TE, HI      Text
	OfficialLink    string
	BeneficiaryTags string
	SchemeType      string
	Category        string
}

// In returns the text in lang; unknown languages fall back to English.
func (s *Scheme) In(lang Language) Text {
	switch lang {
	case Telugu:
		return s.TE
	case Hindi:
		return s.HI
	}
	return s.EN
}

// Match is a ranked search hit.
type Match struct {
	Scheme Scheme
	// Text is the scheme text in the query language.
	Text Text
	// Description is the localized description clipped for display.
	Description string
	Score       int
}

// Reply is a composed chat answer.
type Reply struct {
	Message  string
	Matches  []Match
	Language Language
}

// Eligible is a scheme a profile qualifies for, with its relevance score.
type Eligible struct {
	Scheme    Scheme
	Relevance int
}

// EligibilityResult lists qualifying schemes by descending relevance.
type EligibilityResult struct {
	// Count is the number of qualifying schemes found before the result cap.
	Count   int
	Schemes []Eligible
	// Phase is "universal", "strict" or "relaxed".
	Phase string
}

// CategoryCount is one row of the category breakdown.
type CategoryCount struct {
	Name  string
	Count int
}

// Statistics summarizes the catalog.
type Statistics struct {
	Total      int
	State      int
	Central    int
	Categories []CategoryCount
}

func fromText(t scheme.Text) Text {
	return Text{
		Name:               t.Name,
		Description:        t.Description,
		Eligibility:        t.Eligibility,
		Benefits:           t.Benefits,
		ApplicationProcess: t.ApplicationProcess,
	}
}

func fromScheme(s *scheme.Scheme) Scheme {
	return Scheme{
		ID:              s.ID,
		EN:              fromText(s.EN),
		TE:              fromText(s.TE),
		HI:              fromText(s.HI),
		OfficialLink:    s.OfficialLink,
		BeneficiaryTags: s.BeneficiaryTags,
		SchemeType:      s.SchemeType,
		Category:        s.Category,
	}
}

func fromMatches(ms []match.Match) []Match {
	out := make([]Match, len(ms))
	for i := range ms {
		m := &ms[i]
		sch := m.Scheme()
		out[i] = Match{
			Scheme:      fromScheme(&sch),
			Text:        fromText(m.Text()),
			Description: m.Description(),
			Score:       m.Score(),
		}
	}
	return out
}

func fromSchemes(ss []scheme.Scheme) []Scheme {
	out := make([]Scheme, len(ss))
	for i := range ss {
		out[i] = fromScheme(&ss[i])
	}
	return out
}
