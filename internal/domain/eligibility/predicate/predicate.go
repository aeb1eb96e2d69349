// Package predicate models eligibility filters as typed clauses so that every
// catalog backend evaluates or renders the same structure.
package predicate

import (
	"strings"

	"github.com/kailas-cloud/sahayata/internal/domain/scheme"
)

// Operator is a clause comparison.
type Operator string

// Contains is case-insensitive substring containment (SQL ILIKE '%v%').
const Contains Operator = "contains"

// Clause tests one scheme column: {field, operator, value}.
type Clause struct {
	Field string
	Op    Operator
	Value string
}

// TagContains is a Contains clause on beneficiary_tags.
func TagContains(value string) Clause {
	return Clause{Field: scheme.ColumnBeneficiaryTags, Op: Contains, Value: value}
}

// Matches evaluates the clause against s. Unknown columns and operators never match.
func (c Clause) Matches(s *scheme.Scheme) bool {
	v, ok := s.Field(c.Field)
	if !ok {
		return false
	}
	switch c.Op {
	case Contains:
		return strings.Contains(strings.ToLower(v), strings.ToLower(c.Value))
	default:
		return false
	}
}

// Predicate is a disjunction of clauses derived from one profile attribute.
type Predicate struct {
	attribute string
	anyOf     []Clause
}

// New creates a predicate that holds when any clause holds.
func New(attribute string, anyOf ...Clause) Predicate {
	return Predicate{attribute: attribute, anyOf: anyOf}
}

// Attribute returns the profile attribute the predicate was built from.
func (p Predicate) Attribute() string { return p.attribute }

// Clauses returns the alternatives.
func (p Predicate) Clauses() []Clause { return p.anyOf }

// Matches reports whether any clause matches s.
func (p Predicate) Matches(s *scheme.Scheme) bool {
	for _, c := range p.anyOf {
		if c.Matches(s) {
			return true
		}
	}
	return false
}

// Combinator joins the predicates of a Set.
type Combinator int

// Combinators.
const (
	All Combinator = iota // AND
	Any                   // OR
)

func (c Combinator) String() string {
	if c == Any {
		return "any"
	}
	return "all"
}

// Set is an ordered list of predicates joined by one combinator.
type Set struct {
	predicates []Predicate
	combinator Combinator
}

// NewSet creates a strict (All) set.
func NewSet(predicates ...Predicate) Set {
	return Set{predicates: predicates, combinator: All}
}

// Relaxed returns the same predicates joined with Any.
func (s Set) Relaxed() Set {
	return Set{predicates: s.predicates, combinator: Any}
}

// Predicates returns the predicates in build order.
func (s Set) Predicates() []Predicate { return s.predicates }

// Combinator returns how predicates are joined.
func (s Set) Combinator() Combinator { return s.combinator }

// IsEmpty reports whether the set has no predicates.
func (s Set) IsEmpty() bool { return len(s.predicates) == 0 }

// Len returns the number of predicates.
func (s Set) Len() int { return len(s.predicates) }

// Matches evaluates the set against s. An empty set matches nothing.
func (s Set) Matches(sch *scheme.Scheme) bool {
	if len(s.predicates) == 0 {
		return false
	}
	for _, p := range s.predicates {
		hit := p.Matches(sch)
		if s.combinator == Any && hit {
			return true
		}
		if s.combinator == All && !hit {
			return false
		}
	}
	return s.combinator == All
}
