// Package scheme models a government welfare scheme record as the catalog stores it.
package scheme

import "github.com/kailas-cloud/sahayata/internal/domain/language"

// Text holds the localized textual fields of a scheme in one language.
type Text struct {
	Name               string
	Description        string
	Eligibility        string
	Benefits           string
	ApplicationProcess string
}

// Scheme is one catalog record. Text fields are never nil-valued: the read
// boundary of every catalog backend turns missing values into "".
type Scheme struct {
	ID              int64
	EN              Text
	TE              Text
	HI              Text
	OfficialLink    string
	BeneficiaryTags string
	SchemeType      string
	Category        string
}

// In returns the localized text for l, falling back to English.
func (s *Scheme) In(l language.Language) Text {
	switch l {
	case language.Telugu:
		return s.TE
	case language.Hindi:
		return s.HI
	default:
		return s.EN
	}
}

func (s *Scheme) text(l language.Language) *Text {
	switch l {
	case language.Telugu:
		return &s.TE
	case language.Hindi:
		return &s.HI
	default:
		return &s.EN
	}
}
