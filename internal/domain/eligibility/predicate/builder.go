package predicate

import (
	"strings"

	"github.com/kailas-cloud/sahayata/internal/domain/eligibility/profile"
)

// Profile attributes, used as predicate labels.
const (
	AttrGender     = "gender"
	AttrAge        = "age"
	AttrOccupation = "occupation"
	AttrLocation   = "location"
	AttrCaste      = "caste"
	AttrDisability = "disability"
	AttrMinority   = "minority"
	AttrIncome     = "annual_income"
	AttrUniversal  = "universal"
)

// UniversalTag marks schemes open to every citizen.
const UniversalTag = "All"

// Universal is the set used when a profile supplies nothing: schemes tagged "All".
func Universal() Set {
	return NewSet(New(AttrUniversal, TagContains(UniversalTag)))
}

// FromProfile builds one predicate per supplied attribute, in a fixed order.
// The result is strict; call Relaxed for the OR form.
func FromProfile(p profile.Profile) Set {
	p = p.Normalized()
	var preds []Predicate

	if p.Gender != "" {
		preds = append(preds, New(AttrGender,
			TagContains(strings.ToLower(p.Gender)), TagContains(UniversalTag)))
	}

	switch p.AgeBracket() {
	case profile.AgeMinor:
		preds = append(preds, New(AttrAge, tagsAny(minorTags)...))
	case profile.AgeYouth:
		preds = append(preds, New(AttrAge, tagsAny(youthTags)...))
	case profile.AgeSenior:
		preds = append(preds, New(AttrAge, tagsAny(seniorTags)...))
	case profile.AgeNone:
	}

	if p.HasOccupation() {
		preds = append(preds, New(AttrOccupation, TagContains(strings.ToLower(p.Occupation))))
	}
	if p.Location != "" {
		preds = append(preds, New(AttrLocation,
			TagContains(strings.ToLower(p.Location)), TagContains(UniversalTag)))
	}
	if p.HasCaste() {
		preds = append(preds, New(AttrCaste, TagContains(p.Caste), TagContains(backwardTag)))
	}
	if p.Disability {
		preds = append(preds, New(AttrDisability, tagsAny(disabilityTags)...))
	}
	if p.Minority {
		preds = append(preds, New(AttrMinority, TagContains(minorityTag)))
	}

	switch p.IncomeBracket() {
	case profile.IncomeBPL:
		preds = append(preds, New(AttrIncome, tagsAny(bplTags)...))
	case profile.IncomeEWS:
		preds = append(preds, New(AttrIncome, TagContains(ewsTag)))
	case profile.IncomeNone:
	}

	return NewSet(preds...)
}

// Tag vocabularies shared with relevance scoring.
var (
	minorTags      = []string{"Child", "Student", "Minor"}
	youthTags      = []string{"Youth", "Young"}
	seniorTags     = []string{"Senior", "Elderly"}
	disabilityTags = []string{"Disability", "Divyang"}
	bplTags        = []string{"BPL", "Poor"}
)

const (
	backwardTag = "Backward"
	minorityTag = "Minority"
	ewsTag      = "EWS"
)

// AgeTags returns the tag vocabulary of an age bracket.
func AgeTags(b profile.AgeBracket) []string {
	switch b {
	case profile.AgeMinor:
		return minorTags
	case profile.AgeYouth:
		return youthTags
	case profile.AgeSenior:
		return seniorTags
	default:
		return nil
	}
}

// IncomeTags returns the tag vocabulary of an income bracket.
func IncomeTags(b profile.IncomeBracket) []string {
	switch b {
	case profile.IncomeBPL:
		return bplTags
	case profile.IncomeEWS:
		return []string{ewsTag}
	default:
		return nil
	}
}

// DisabilityTags returns the tags that mark disability schemes.
func DisabilityTags() []string { return disabilityTags }

// MinorityTag returns the tag that marks minority schemes.
func MinorityTag() string { return minorityTag }

func tagsAny(values []string) []Clause {
	out := make([]Clause, len(values))
	for i, v := range values {
		out[i] = TagContains(v)
	}
	return out
}
