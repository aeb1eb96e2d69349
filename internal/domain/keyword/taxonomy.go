// Package keyword holds the curated multilingual intent vocabulary and the
// substring extractor that maps free-text queries onto it.
package keyword

import (
	"fmt"
	"strings"

	"github.com/kailas-cloud/sahayata/internal/domain/language"
)

// Category names, in taxonomy order.
const (
	Education   = "education"
	Agriculture = "agriculture"
	Women       = "women"
	Health      = "health"
	Pension     = "pension"
	Employment  = "employment"
	Housing     = "housing"
	Financial   = "financial"
)

// Category is a named group of surface keywords.
type Category struct {
	Name     string
	Keywords []string
}

// Taxonomy is an immutable per-language list of categories.
// Construct with NewTaxonomy or Default; the zero value is empty.
type Taxonomy struct {
	byLang map[language.Language][]Category
	order  []string
}

// NewTaxonomy validates and freezes a per-language category table.
// Every language must list the same category names in the same order, and
// English is mandatory since it is the fallback.
func NewTaxonomy(table map[language.Language][]Category) (*Taxonomy, error) {
	en, ok := table[language.English]
	if !ok || len(en) == 0 {
		return nil, fmt.Errorf("taxonomy: english categories are required")
	}
	order := make([]string, len(en))
	for i, c := range en {
		order[i] = c.Name
	}

	frozen := make(map[language.Language][]Category, len(table))
	for lang, cats := range table {
		if !lang.IsValid() {
			return nil, fmt.Errorf("taxonomy: unsupported language %q", lang)
		}
		if len(cats) != len(order) {
			return nil, fmt.Errorf("taxonomy: %s has %d categories, want %d", lang, len(cats), len(order))
		}
		out := make([]Category, len(cats))
		for i, c := range cats {
			if c.Name != order[i] {
				return nil, fmt.Errorf("taxonomy: %s category %d is %q, want %q", lang, i, c.Name, order[i])
			}
			kws := make([]string, 0, len(c.Keywords))
			for _, kw := range c.Keywords {
				kw = strings.ToLower(strings.TrimSpace(kw))
				if kw == "" {
					return nil, fmt.Errorf("taxonomy: empty keyword in %s/%s", lang, c.Name)
				}
				kws = append(kws, kw)
			}
			out[i] = Category{Name: c.Name, Keywords: kws}
		}
		frozen[lang] = out
	}
	return &Taxonomy{byLang: frozen, order: order}, nil
}

// Categories returns the categories for l, falling back to English.
// Callers must not modify the returned slice.
func (t *Taxonomy) Categories(l language.Language) []Category {
	if cats, ok := t.byLang[l]; ok {
		return cats
	}
	return t.byLang[language.English]
}

// Names returns the category names in taxonomy order.
func (t *Taxonomy) Names() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// Len returns the number of categories.
func (t *Taxonomy) Len() int { return len(t.order) }

// Default returns the built-in welfare intent taxonomy.
func Default() *Taxonomy {
	t, err := NewTaxonomy(defaultTable)
	if err != nil {
		panic(err) // built-in table is static
	}
	return t
}

var defaultTable = map[language.Language][]Category{
	language.English: {
		{Education, []string{"education", "student", "school", "college", "scholarship", "study", "exam", "degree", "university", "learning", "academic"}},
		{Agriculture, []string{"agriculture", "farmer", "farming", "crop", "kisan", "agricultural", "harvest", "cultivation", "irrigation", "land"}},
		{Women, []string{"women", "woman", "girl", "mother", "pregnant", "maternity", "female", "mahila", "widow", "self help"}},
		{Health, []string{"health", "medical", "hospital", "doctor", "medicine", "treatment", "disease", "insurance", "ayushman", "clinic"}},
		{Pension, []string{"pension", "senior citizen", "old age", "elderly", "retirement", "aged"}},
		{Employment, []string{"employment", "job", "work", "skill", "training", "rozgar", "unemployment", "wage", "labor"}},
		{Housing, []string{"housing", "house", "home", "shelter", "awas", "construction", "flat", "apartment"}},
		{Financial, []string{"loan", "credit", "bank", "finance", "subsidy", "grant", "money", "fund"}},
	},
	language.Telugu: {
		{Education, []string{"విద్య", "విద్యార్థి", "స్కూలు", "కళాశాల", "స్కాలర్‌షిప్", "చదువు", "పరీక్ష", "డిగ్రీ"}},
		{Agriculture, []string{"వ్యవసాయం", "రైతు", "పంట", "సాగు", "భూమి", "నీటిపారుదల"}},
		{Women, []string{"మహిళ", "స్త్రీ", "అమ్మాయి", "తల్లి", "గర్భిణి", "విధవ"}},
		{Health, []string{"ఆరోగ్యం", "వైద్యం", "ఆసుపత్రి", "డాక్టర్", "మందులు", "చికిత్స", "బీమా"}},
		{Pension, []string{"పెన్షన్", "వృద్ధులు", "వృద్ధాప్యం"}},
		{Employment, []string{"ఉద్యోగం", "ఉపాధి", "పని", "నైపుణ్యం", "శిక్షణ"}},
		{Housing, []string{"గృహం", "ఇల్లు", "నివాసం", "ఆవాసం", "నిర్మాణం"}},
		{Financial, []string{"రుణం", "బ్యాంకు", "సబ్సిడీ", "డబ్బు", "నిధి"}},
	},
	language.Hindi: {
		{Education, []string{"शिक्षा", "छात्र", "स्कूल", "कॉलेज", "छात्रवृत्ति", "पढ़ाई", "परीक्षा"}},
		{Agriculture, []string{"कृषि", "किसान", "खेती", "फसल", "जमीन", "सिंचाई"}},
		{Women, []string{"महिला", "स्त्री", "लड़की", "मां", "गर्भवती", "विधवा"}},
		{Health, []string{"स्वास्थ्य", "चिकित्सा", "अस्पताल", "डॉक्टर", "दवा", "बीमा"}},
		{Pension, []string{"पेंशन", "वरिष्ठ नागरिक", "वृद्धावस्था"}},
		{Employment, []string{"रोजगार", "नौकरी", "काम", "कौशल", "प्रशिक्षण"}},
		{Housing, []string{"आवास", "घर", "मकान", "निर्माण"}},
		{Financial, []string{"ऋण", "बैंक", "सब्सिडी", "पैसा", "निधि"}},
	},
}
