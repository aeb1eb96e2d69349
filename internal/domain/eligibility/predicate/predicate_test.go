package predicate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kailas-cloud/sahayata/internal/domain/eligibility/profile"
	"github.com/kailas-cloud/sahayata/internal/domain/scheme"
)

func intp(v int) *int     { return &v }
func i64p(v int64) *int64 { return &v }

func tagged(tags string) *scheme.Scheme {
	return &scheme.Scheme{BeneficiaryTags: tags}
}

func values(p Predicate) []string {
	out := make([]string, 0, len(p.Clauses()))
	for _, c := range p.Clauses() {
		out = append(out, c.Value)
	}
	return out
}

func TestClause_Matches(t *testing.T) {
	c := TagContains("senior")
	assert.True(t, c.Matches(tagged("Senior Citizens, BPL")))
	assert.False(t, c.Matches(tagged("Youth")))

	unknown := Clause{Field: "password_hash", Op: Contains, Value: "x"}
	assert.False(t, unknown.Matches(tagged("x")))

	badOp := Clause{Field: scheme.ColumnBeneficiaryTags, Op: "equals", Value: "x"}
	assert.False(t, badOp.Matches(tagged("x")))
}

func TestSet_MatchesAllAndAny(t *testing.T) {
	s := NewSet(
		New("a", TagContains("Farmer")),
		New("b", TagContains("BPL"), TagContains("Poor")),
	)
	assert.Equal(t, All, s.Combinator())
	assert.True(t, s.Matches(tagged("Farmer, Poor")))
	assert.False(t, s.Matches(tagged("Farmer")))

	r := s.Relaxed()
	assert.Equal(t, Any, r.Combinator())
	assert.Equal(t, s.Predicates(), r.Predicates())
	assert.True(t, r.Matches(tagged("Farmer")))
	assert.False(t, r.Matches(tagged("Student")))
}

func TestSet_EmptyMatchesNothing(t *testing.T) {
	assert.False(t, NewSet().Matches(tagged("All")))
	assert.False(t, NewSet().Relaxed().Matches(tagged("All")))
}

func TestFromProfile_Empty(t *testing.T) {
	s := FromProfile(profile.Profile{})
	assert.True(t, s.IsEmpty())

	u := Universal()
	require.Equal(t, 1, u.Len())
	assert.Equal(t, []string{"All"}, values(u.Predicates()[0]))
	assert.True(t, u.Matches(tagged("All Citizens")))
	assert.False(t, u.Matches(tagged("Farmer")))
}

func TestFromProfile_Senior(t *testing.T) {
	s := FromProfile(profile.Profile{Age: intp(65)})
	require.Equal(t, 1, s.Len())
	p := s.Predicates()[0]
	assert.Equal(t, AttrAge, p.Attribute())
	assert.Equal(t, []string{"Senior", "Elderly"}, values(p))
	for _, c := range p.Clauses() {
		assert.Equal(t, scheme.ColumnBeneficiaryTags, c.Field)
		assert.Equal(t, Contains, c.Op)
	}
}

func TestFromProfile_AgeZeroIsUnset(t *testing.T) {
	assert.True(t, FromProfile(profile.Profile{Age: intp(0)}).IsEmpty())
	// Income 0 still counts as supplied.
	assert.False(t, FromProfile(profile.Profile{Age: intp(0), AnnualIncome: i64p(0)}).IsEmpty())
}

func TestFromProfile_MiddleAgeHasNoPredicate(t *testing.T) {
	assert.True(t, FromProfile(profile.Profile{Age: intp(45)}).IsEmpty())
}

func TestFromProfile_FullProfile(t *testing.T) {
	s := FromProfile(profile.Profile{
		Gender:       "Female",
		Age:          intp(10),
		Occupation:   "Farmer",
		Location:     "Andhra Pradesh",
		Caste:        "SC",
		Disability:   true,
		Minority:     true,
		AnnualIncome: i64p(50_000),
	})

	want := []struct {
		attr   string
		values []string
	}{
		{AttrGender, []string{"female", "All"}},
		{AttrAge, []string{"Child", "Student", "Minor"}},
		{AttrOccupation, []string{"farmer"}},
		{AttrLocation, []string{"andhra pradesh", "All"}},
		{AttrCaste, []string{"SC", "Backward"}},
		{AttrDisability, []string{"Disability", "Divyang"}},
		{AttrMinority, []string{"Minority"}},
		{AttrIncome, []string{"BPL", "Poor"}},
	}
	require.Equal(t, len(want), s.Len())
	for i, w := range want {
		p := s.Predicates()[i]
		assert.Equal(t, w.attr, p.Attribute())
		assert.Equal(t, w.values, values(p))
	}
}

func TestFromProfile_SkipsSentinels(t *testing.T) {
	s := FromProfile(profile.Profile{Occupation: "Other", Caste: "General", AnnualIncome: i64p(500_000)})
	assert.True(t, s.IsEmpty())
}

func TestFromProfile_EWS(t *testing.T) {
	s := FromProfile(profile.Profile{AnnualIncome: i64p(150_000)})
	require.Equal(t, 1, s.Len())
	assert.Equal(t, []string{"EWS"}, values(s.Predicates()[0]))
}

func TestFromProfile_BlankStringsIgnored(t *testing.T) {
	assert.True(t, FromProfile(profile.Profile{Gender: "  ", Location: "\t"}).IsEmpty())
}

func TestTagVocabularies(t *testing.T) {
	assert.Equal(t, []string{"Youth", "Young"}, AgeTags(profile.AgeYouth))
	assert.Nil(t, AgeTags(profile.AgeNone))
	assert.Equal(t, []string{"EWS"}, IncomeTags(profile.IncomeEWS))
	assert.Nil(t, IncomeTags(profile.IncomeNone))
	assert.Equal(t, []string{"Disability", "Divyang"}, DisabilityTags())
	assert.Equal(t, "Minority", MinorityTag())
}
