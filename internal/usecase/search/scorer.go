package search

import (
	"strings"

	"github.com/kailas-cloud/sahayata/internal/domain/keyword"
	"github.com/kailas-cloud/sahayata/internal/domain/language"
	"github.com/kailas-cloud/sahayata/internal/domain/scheme"
)

// Weights are the additive points per matching field.
type Weights struct {
	Name               int
	Category           int
	BeneficiaryTags    int
	SchemeType         int
	Description        int
	Eligibility        int
	Benefits           int
	ApplicationProcess int
	KeywordBonus       int
}

// DefaultWeights returns the production weight table.
func DefaultWeights() Weights {
	return Weights{
		Name:               100,
		Category:           90,
		BeneficiaryTags:    80,
		SchemeType:         70,
		Description:        60,
		Eligibility:        40,
		Benefits:           30,
		ApplicationProcess: 20,
		KeywordBonus:       50,
	}
}

// Scorer computes the additive multi-field relevance of one record.
// It holds no mutable state and is safe for concurrent use.
type Scorer struct {
	w Weights
}

// NewScorer creates a scorer with the given weights.
func NewScorer(w Weights) *Scorer {
	return &Scorer{w: w}
}

// Score tests the normalized query against each non-empty field independently
// and adds the weights of the fields that contain it, plus the keyword bonus
// when any token occurs in the tags or category. The bool reports whether at
// least one test held; records where it is false must be excluded, not ranked
// at zero.
func (sc *Scorer) Score(
	s *scheme.Scheme, lang language.Language, normalized string, tokens keyword.TokenSet,
) (int, bool) {
	text := s.In(lang)
	tags := strings.ToLower(s.BeneficiaryTags)
	category := strings.ToLower(s.Category)

	fields := [...]struct {
		value  string
		weight int
	}{
		{strings.ToLower(text.Name), sc.w.Name},
		{category, sc.w.Category},
		{tags, sc.w.BeneficiaryTags},
		{strings.ToLower(s.SchemeType), sc.w.SchemeType},
		{strings.ToLower(text.Description), sc.w.Description},
		{strings.ToLower(text.Eligibility), sc.w.Eligibility},
		{strings.ToLower(text.Benefits), sc.w.Benefits},
		{strings.ToLower(text.ApplicationProcess), sc.w.ApplicationProcess},
	}

	score, hit := 0, false
	for _, f := range fields {
		// Empty fields stand for missing values and never contain the query,
		// while a blank query is contained in every present field.
		if f.value != "" && strings.Contains(f.value, normalized) {
			score += f.weight
			hit = true
		}
	}
	if keywordHit(tokens, tags, category) {
		score += sc.w.KeywordBonus
		hit = true
	}
	return score, hit
}

func keywordHit(tokens keyword.TokenSet, tags, category string) bool {
	for tok := range tokens {
		if strings.Contains(tags, tok) || strings.Contains(category, tok) {
			return true
		}
	}
	return false
}
