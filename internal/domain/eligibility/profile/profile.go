// Package profile describes the structured citizen profile used for
// eligibility filtering, and the ranked rows it produces.
package profile

import (
	"fmt"
	"strings"

	"github.com/kailas-cloud/sahayata/internal/domain"
	"github.com/kailas-cloud/sahayata/internal/domain/scheme"
)

// Profile limits and sentinel values.
const (
	MaxAge = 150

	// OccupationOther and CasteGeneral never produce a predicate.
	OccupationOther = "Other"
	CasteGeneral    = "General"
)

// Income thresholds in rupees per year.
const (
	BPLIncomeCeiling = 100_000
	EWSIncomeCeiling = 300_000
)

// AgeBracket is the life stage an age falls into.
type AgeBracket int

// Age brackets. Ages 36 to 59 fall into no bracket.
const (
	AgeNone AgeBracket = iota
	AgeMinor
	AgeYouth
	AgeSenior
)

// IncomeBracket is the economic category an income falls into.
type IncomeBracket int

// Income brackets.
const (
	IncomeNone IncomeBracket = iota
	IncomeBPL
	IncomeEWS
)

// Profile is an eligibility query. Every attribute is optional: empty strings,
// nil pointers and false flags are treated as not supplied.
type Profile struct {
	Gender       string
	Age          *int
	Occupation   string
	Location     string
	Caste        string
	Disability   bool
	Minority     bool
	AnnualIncome *int64
}

// Normalized returns a copy with surrounding whitespace removed from text attributes.
func (p Profile) Normalized() Profile {
	p.Gender = strings.TrimSpace(p.Gender)
	p.Occupation = strings.TrimSpace(p.Occupation)
	p.Location = strings.TrimSpace(p.Location)
	p.Caste = strings.TrimSpace(p.Caste)
	return p
}

// Validate checks numeric ranges.
func (p Profile) Validate() error {
	if p.Age != nil && (*p.Age < 0 || *p.Age > MaxAge) {
		return fmt.Errorf("%w: age must be between 0 and %d", domain.ErrInvalidProfile, MaxAge)
	}
	if p.AnnualIncome != nil && *p.AnnualIncome < 0 {
		return fmt.Errorf("%w: annual_income must not be negative", domain.ErrInvalidProfile)
	}
	return nil
}

// AgeBracket classifies the age. An absent age and an age of 0 both yield
// AgeNone; income, by contrast, counts as supplied even at 0.
func (p Profile) AgeBracket() AgeBracket {
	if p.Age == nil || *p.Age == 0 {
		return AgeNone
	}
	switch age := *p.Age; {
	case age < 18:
		return AgeMinor
	case age <= 35:
		return AgeYouth
	case age >= 60:
		return AgeSenior
	}
	return AgeNone
}

// IncomeBracket classifies the income, IncomeNone when income is absent.
func (p Profile) IncomeBracket() IncomeBracket {
	if p.AnnualIncome == nil {
		return IncomeNone
	}
	switch income := *p.AnnualIncome; {
	case income < BPLIncomeCeiling:
		return IncomeBPL
	case income < EWSIncomeCeiling:
		return IncomeEWS
	}
	return IncomeNone
}

// HasOccupation reports whether the occupation should be matched.
func (p Profile) HasOccupation() bool {
	return p.Occupation != "" && p.Occupation != OccupationOther
}

// HasCaste reports whether the caste should be matched.
func (p Profile) HasCaste() bool {
	return p.Caste != "" && p.Caste != CasteGeneral
}

// Eligible is a catalog row returned by an eligibility check.
type Eligible struct {
	Scheme    scheme.Scheme
	Relevance int
}
