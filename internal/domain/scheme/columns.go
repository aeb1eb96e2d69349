package scheme

import (
	"strconv"

	"github.com/kailas-cloud/sahayata/internal/domain/language"
)

// Base names of the localized columns. The stored column is "<base>_<lang>".
const (
	BaseName               = "scheme_name"
	BaseDescription        = "description"
	BaseEligibility        = "eligibility"
	BaseBenefits           = "benefits"
	BaseApplicationProcess = "application_process"
)

// Names of the non-localized columns.
const (
	ColumnID              = "id"
	ColumnOfficialLink    = "official_link"
	ColumnBeneficiaryTags = "beneficiary_tags"
	ColumnSchemeType      = "scheme_type"
	ColumnCategory        = "category"
)

var localizedBases = []string{
	BaseName, BaseDescription, BaseEligibility, BaseBenefits, BaseApplicationProcess,
}

// Column returns the stored column name of a localized field.
func Column(base string, l language.Language) string {
	if !l.IsValid() {
		l = language.Default
	}
	return base + "_" + string(l)
}

// TextColumns lists every textual column in storage order (id excluded).
var TextColumns = buildTextColumns()

func buildTextColumns() []string {
	cols := make([]string, 0, len(localizedBases)*3+4)
	for _, base := range localizedBases {
		for _, l := range language.All() {
			cols = append(cols, Column(base, l))
		}
	}
	return append(cols, ColumnOfficialLink, ColumnBeneficiaryTags, ColumnSchemeType, ColumnCategory)
}

var textColumnSet = func() map[string]struct{} {
	m := make(map[string]struct{}, len(TextColumns))
	for _, c := range TextColumns {
		m[c] = struct{}{}
	}
	return m
}()

// IsTextColumn reports whether name is a known textual column.
func IsTextColumn(name string) bool {
	_, ok := textColumnSet[name]
	return ok
}

// Field returns the value of a textual column.
func (s *Scheme) Field(column string) (string, bool) {
	if p := s.fieldPtr(column); p != nil {
		return *p, true
	}
	return "", false
}

// SetField assigns a textual column. Unknown columns are ignored and reported false.
func (s *Scheme) SetField(column, value string) bool {
	p := s.fieldPtr(column)
	if p == nil {
		return false
	}
	*p = value
	return true
}

// Fields flattens the record into column/value pairs, id included.
func (s *Scheme) Fields() map[string]string {
	m := make(map[string]string, len(TextColumns)+1)
	m[ColumnID] = strconv.FormatInt(s.ID, 10)
	for _, c := range TextColumns {
		v, _ := s.Field(c)
		m[c] = v
	}
	return m
}

// FromFields rebuilds a record from column/value pairs. Absent columns become "".
func FromFields(m map[string]string) (Scheme, error) {
	id, err := strconv.ParseInt(m[ColumnID], 10, 64)
	if err != nil {
		return Scheme{}, err //nolint:wrapcheck // strconv error names the input
	}
	s := Scheme{ID: id}
	for _, c := range TextColumns {
		s.SetField(c, m[c])
	}
	return s, nil
}

func (s *Scheme) fieldPtr(column string) *string {
	switch column {
	case ColumnOfficialLink:
		return &s.OfficialLink
	case ColumnBeneficiaryTags:
		return &s.BeneficiaryTags
	case ColumnSchemeType:
		return &s.SchemeType
	case ColumnCategory:
		return &s.Category
	}
	for _, l := range language.All() {
		t := s.text(l)
		switch column {
		case Column(BaseName, l):
			return &t.Name
		case Column(BaseDescription, l):
			return &t.Description
		case Column(BaseEligibility, l):
			return &t.Eligibility
		case Column(BaseBenefits, l):
			return &t.Benefits
		case Column(BaseApplicationProcess, l):
			return &t.ApplicationProcess
		}
	}
	return nil
}
