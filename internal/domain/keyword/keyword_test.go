package keyword

import (
	"reflect"
	"testing"

	"github.com/kailas-cloud/sahayata/internal/domain/language"
)

func TestDefault_Shape(t *testing.T) {
	tx := Default()
	want := []string{Education, Agriculture, Women, Health, Pension, Employment, Housing, Financial}
	if got := tx.Names(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
	for _, l := range language.All() {
		if n := len(tx.Categories(l)); n != 8 {
			t.Errorf("%s: %d categories, want 8", l, n)
		}
	}
}

func TestCategories_UnknownLanguageFallsBack(t *testing.T) {
	tx := Default()
	got := tx.Categories(language.Language("ta"))
	if !reflect.DeepEqual(got, tx.Categories(language.English)) {
		t.Error("unknown language should use the english taxonomy")
	}
}

func TestExtract_FarmerLoan(t *testing.T) {
	ex := NewExtractor(Default())
	got := ex.Extract("farmer loan", language.English).Sorted()
	want := []string{"agriculture", "farmer", "financial", "loan"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Extract = %v, want %v", got, want)
	}
}

func TestExtract_CaseInsensitive(t *testing.T) {
	ex := NewExtractor(Default())
	got := ex.Extract("PENSION for Senior Citizen", language.English)
	for _, tok := range []string{"pension", "senior citizen"} {
		if !got.Has(tok) {
			t.Errorf("missing %q in %v", tok, got.Sorted())
		}
	}
}

func TestExtract_Substring(t *testing.T) {
	// "scholarships" contains "scholarship"; "farmers" contains "farmer".
	ex := NewExtractor(Default())
	got := ex.Extract("scholarships for farmers", language.English)
	for _, tok := range []string{"scholarship", "education", "farmer", "agriculture"} {
		if !got.Has(tok) {
			t.Errorf("missing %q in %v", tok, got.Sorted())
		}
	}
}

func TestExtract_NoMatch(t *testing.T) {
	ex := NewExtractor(Default())
	if got := ex.Extract("xyzzy", language.English); got.Len() != 0 {
		t.Errorf("Extract = %v, want empty", got.Sorted())
	}
	if got := ex.Extract("", language.Hindi); got.Len() != 0 {
		t.Errorf("Extract(empty) = %v, want empty", got.Sorted())
	}
}

func TestExtract_Telugu(t *testing.T) {
	ex := NewExtractor(Default())
	got := ex.Extract("రైతు రుణం", language.Telugu).Sorted()
	want := []string{"agriculture", "financial", "రుణం", "రైతు"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Extract = %v, want %v", got, want)
	}
}

func TestExtract_TokensComeFromLanguageTaxonomy(t *testing.T) {
	tx := Default()
	ex := NewExtractor(tx)
	queries := []string{
		"farmer loan", "student scholarship", "महिला किसान बैंक", "విద్యార్థి ఇల్లు",
		"health insurance for women", "pension पेंशन పెన్షన్",
	}
	for _, l := range append(language.All(), language.Language("xx")) {
		allowed := map[string]bool{}
		for _, c := range tx.Categories(l) {
			allowed[c.Name] = true
			for _, kw := range c.Keywords {
				allowed[kw] = true
			}
		}
		for _, q := range queries {
			for _, tok := range ex.Extract(q, l).Sorted() {
				if !allowed[tok] {
					t.Errorf("lang %s query %q: token %q not in taxonomy", l, q, tok)
				}
			}
		}
	}
}

func TestExtract_HindiQueryIgnoredInEnglish(t *testing.T) {
	ex := NewExtractor(Default())
	if got := ex.Extract("किसान", language.English); got.Len() != 0 {
		t.Errorf("Extract = %v, want empty", got.Sorted())
	}
}

func TestNewTaxonomy_Validation(t *testing.T) {
	tests := []struct {
		name  string
		table map[language.Language][]Category
	}{
		{"missing english", map[language.Language][]Category{
			language.Hindi: {{Name: "a", Keywords: []string{"x"}}},
		}},
		{"order mismatch", map[language.Language][]Category{
			language.English: {{Name: "a", Keywords: []string{"x"}}, {Name: "b", Keywords: []string{"y"}}},
			language.Telugu:  {{Name: "b", Keywords: []string{"y"}}, {Name: "a", Keywords: []string{"x"}}},
		}},
		{"empty keyword", map[language.Language][]Category{
			language.English: {{Name: "a", Keywords: []string{" "}}},
		}},
		{"unsupported language", map[language.Language][]Category{
			language.English:        {{Name: "a", Keywords: []string{"x"}}},
			language.Language("fr"): {{Name: "a", Keywords: []string{"x"}}},
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewTaxonomy(tc.table); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestNewTaxonomy_LowercasesKeywords(t *testing.T) {
	tx, err := NewTaxonomy(map[language.Language][]Category{
		language.English: {{Name: "loans", Keywords: []string{" Mudra "}}},
	})
	if err != nil {
		t.Fatalf("NewTaxonomy: %v", err)
	}
	if got := NewExtractor(tx).Extract("mudra loan", language.English); !got.Has("mudra") {
		t.Errorf("Extract = %v, want mudra", got.Sorted())
	}
}
