package sahayata

import (
	"context"
	"fmt"

	"github.com/kailas-cloud/sahayata/internal/domain/eligibility/profile"
)

// Profile is a citizen description for eligibility checks. Build one with
// NewProfile; attributes that are never set are treated as not supplied.
type Profile struct {
	p profile.Profile
}

// ProfileBuilder assembles a Profile.
type ProfileBuilder struct {
	p profile.Profile
}

// NewProfile starts an empty profile.
func NewProfile() *ProfileBuilder {
	return &ProfileBuilder{}
}

// Gender sets "Male", "Female" or "Other".
func (b *ProfileBuilder) Gender(g string) *ProfileBuilder {
	b.p.Gender = g
	return b
}

// Age sets the age in years.
func (b *ProfileBuilder) Age(years int) *ProfileBuilder {
	b.p.Age = &years
	return b
}

// Occupation sets e.g. "Farmer", "Student" or "Unemployed".
func (b *ProfileBuilder) Occupation(o string) *ProfileBuilder {
	b.p.Occupation = o
	return b
}

// Location sets "Rural" or "Urban".
func (b *ProfileBuilder) Location(l string) *ProfileBuilder {
	b.p.Location = l
	return b
}

// Caste sets e.g. "SC", "ST" or "OBC".
func (b *ProfileBuilder) Caste(c string) *ProfileBuilder {
	b.p.Caste = c
	return b
}

// Disability marks a person with disability.
func (b *ProfileBuilder) Disability() *ProfileBuilder {
	b.p.Disability = true
	return b
}

// Minority marks a minority community member.
func (b *ProfileBuilder) Minority() *ProfileBuilder {
	b.p.Minority = true
	return b
}

// AnnualIncome sets the household income in rupees per year.
func (b *ProfileBuilder) AnnualIncome(rupees int64) *ProfileBuilder {
	b.p.AnnualIncome = &rupees
	return b
}

// Build returns the profile. Range checks happen in CheckEligibility.
func (b *ProfileBuilder) Build() Profile {
	p := b.p
	if p.Age != nil {
		age := *p.Age
		p.Age = &age
	}
	if p.AnnualIncome != nil {
		inc := *p.AnnualIncome
		p.AnnualIncome = &inc
	}
	return Profile{p: p}
}

// CheckEligibility lists the schemes p qualifies for, most relevant first.
func (c *Client) CheckEligibility(ctx context.Context, p Profile) (*EligibilityResult, error) {
	done := c.obs.track("check_eligibility")
	res, err := c.svc.Eligibility.Check(ctx, p.p)
	done(err)
	if err != nil {
		return nil, fmt.Errorf("check eligibility: %w", err)
	}

	out := &EligibilityResult{
		Count:   res.Count,
		Phase:   string(res.Phase),
		Schemes: make([]Eligible, len(res.Schemes)),
	}
	for i := range res.Schemes {
		out.Schemes[i] = Eligible{
			Scheme:    fromScheme(&res.Schemes[i].Scheme),
			Relevance: res.Schemes[i].Relevance,
		}
	}
	return out, nil
}
