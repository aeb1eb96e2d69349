package eligibility

import (
	"strings"

	"github.com/kailas-cloud/sahayata/internal/domain/eligibility/predicate"
	"github.com/kailas-cloud/sahayata/internal/domain/eligibility/profile"
)

// Rubric holds the points awarded per attribute whose value appears in a
// record's beneficiary tags.
type Rubric struct {
	Gender     int
	Age        int
	Occupation int
	Location   int
	Caste      int
	Disability int
	Minority   int
	Income     int
	Universal  int
}

// DefaultRubric returns the production rubric.
func DefaultRubric() Rubric {
	return Rubric{
		Gender:     20,
		Age:        25,
		Occupation: 30,
		Location:   15,
		Caste:      20,
		Disability: 30,
		Minority:   30,
		Income:     25,
		Universal:  5,
	}
}

// Relevance scores tags against p. Matching is case-insensitive containment.
func (r Rubric) Relevance(tags string, p profile.Profile) int {
	p = p.Normalized()
	tags = strings.ToLower(tags)
	has := func(v string) bool { return v != "" && strings.Contains(tags, strings.ToLower(v)) }

	score := 0
	if has(p.Gender) {
		score += r.Gender
	}
	if anyOf(has, predicate.AgeTags(p.AgeBracket())) {
		score += r.Age
	}
	if has(p.Occupation) {
		score += r.Occupation
	}
	if has(p.Location) {
		score += r.Location
	}
	if has(p.Caste) {
		score += r.Caste
	}
	if p.Disability && anyOf(has, predicate.DisabilityTags()) {
		score += r.Disability
	}
	if p.Minority && has(predicate.MinorityTag()) {
		score += r.Minority
	}
	if anyOf(has, predicate.IncomeTags(p.IncomeBracket())) {
		score += r.Income
	}
	if has(predicate.UniversalTag) {
		score += r.Universal
	}
	return score
}

func anyOf(has func(string) bool, values []string) bool {
	for _, v := range values {
		if has(v) {
			return true
		}
	}
	return false
}
