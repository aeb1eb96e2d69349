package scheme

import "strings"

// Catalog categories assigned at import time.
const (
	CategoryAgriculture   = "Agriculture, Rural & Environment"
	CategoryEducation     = "Education & Learning"
	CategoryWomenChild    = "Women and Child"
	CategoryHealth        = "Health & Wellness"
	CategorySkills        = "Skills & Employment"
	CategoryBusiness      = "Business & Entrepreneurship"
	CategoryHousing       = "Housing & Shelter"
	CategoryBanking       = "Banking, Financial Services and Insurance"
	CategoryTransport     = "Transport & Infrastructure"
	CategorySocialWelfare = "Social welfare & Empowerment"
)

// categoryRules are evaluated in order; the first rule with a matching marker wins.
var categoryRules = []struct {
	category string
	markers  []string
}{
	{CategoryAgriculture, []string{"farmer", "agriculture", "rural"}},
	{CategoryEducation, []string{"education", "student", "learning"}},
	{CategoryWomenChild, []string{"women", "child"}},
	{CategoryHealth, []string{"health", "medical"}},
	{CategorySkills, []string{"employment", "skill", "job"}},
	{CategoryBusiness, []string{"entrepreneur", "business"}},
	{CategoryHousing, []string{"housing", "shelter"}},
	{CategoryBanking, []string{"bank", "insurance", "financial"}},
	{CategoryTransport, []string{"transport"}},
}

// InferCategory derives a catalog category from a beneficiary tag string.
func InferCategory(tags string) string {
	lower := strings.ToLower(tags)
	for _, rule := range categoryRules {
		for _, m := range rule.markers {
			if strings.Contains(lower, m) {
				return rule.category
			}
		}
	}
	return CategorySocialWelfare
}
