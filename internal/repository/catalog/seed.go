package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kailas-cloud/sahayata/internal/domain/scheme"
)

// localized is a per-language text value in a seed file.
type localized struct {
	EN string `yaml:"en"`
	TE string `yaml:"te"`
	HI string `yaml:"hi"`
}

type seedRecord struct {
	ID                 int64     `yaml:"id"`
	Name               localized `yaml:"name"`
	Description        localized `yaml:"description"`
	Eligibility        localized `yaml:"eligibility"`
	Benefits           localized `yaml:"benefits"`
	ApplicationProcess localized `yaml:"application_process"`
	OfficialLink       string    `yaml:"official_link"`
	BeneficiaryTags    string    `yaml:"beneficiary_tags"`
	SchemeType         string    `yaml:"scheme_type"`
	Category           string    `yaml:"category"`
}

type seedFile struct {
	Schemes []seedRecord `yaml:"schemes"`
}

// LoadFile reads a YAML catalog fixture. Records without a category get one
// inferred from their beneficiary tags.
func LoadFile(path string) ([]scheme.Scheme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return ParseSeed(data)
}

// ParseSeed decodes a YAML catalog fixture.
func ParseSeed(data []byte) ([]scheme.Scheme, error) {
	var f seedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse seed: %w", err)
	}

	seen := make(map[int64]struct{}, len(f.Schemes))
	out := make([]scheme.Scheme, 0, len(f.Schemes))
	for i, r := range f.Schemes {
		if r.ID <= 0 {
			return nil, fmt.Errorf("scheme #%d: id must be positive", i+1)
		}
		if _, dup := seen[r.ID]; dup {
			return nil, fmt.Errorf("scheme #%d: duplicate id %d", i+1, r.ID)
		}
		seen[r.ID] = struct{}{}

		s := scheme.Scheme{
			ID:              r.ID,
			EN:              textFor(&r, func(l localized) string { return l.EN }),
			TE:              textFor(&r, func(l localized) string { return l.TE }),
			HI:              textFor(&r, func(l localized) string { return l.HI }),
			OfficialLink:    r.OfficialLink,
			BeneficiaryTags: r.BeneficiaryTags,
			SchemeType:      r.SchemeType,
			Category:        r.Category,
		}
		if s.Category == "" {
			s.Category = scheme.InferCategory(s.BeneficiaryTags)
		}
		out = append(out, s)
	}
	return out, nil
}

func textFor(r *seedRecord, pick func(localized) string) scheme.Text {
	return scheme.Text{
		Name:               pick(r.Name),
		Description:        pick(r.Description),
		Eligibility:        pick(r.Eligibility),
		Benefits:           pick(r.Benefits),
		ApplicationProcess: pick(r.ApplicationProcess),
	}
}
