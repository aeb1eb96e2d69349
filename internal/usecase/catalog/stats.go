package catalog

import (
	"slices"
	"strings"

	"github.com/kailas-cloud/sahayata/internal/domain/scheme"
)

// CategoryCount is the number of schemes in one category.
type CategoryCount struct {
	Name  string
	Count int
}

// Statistics summarizes the catalog.
type Statistics struct {
	Total      int
	State      int
	Central    int
	Categories []CategoryCount
}

var (
	stateTypeMarkers = []string{
		"andhra pradesh", "ap state", "state scheme", "state agency",
		"state policy", "state-implemented scheme",
	}
	stateNameMarkers = []string{"ap", "andhra pradesh", "state scheme", "state agency", "state policy"}
)

// IsStateScheme reports whether s is run by the Andhra Pradesh government,
// judged from its type and English name. Markers match case-insensitively
// anywhere in the text, so "ap" also fires inside words such as "Apprentice".
func IsStateScheme(s *scheme.Scheme) bool {
	typ := strings.ToLower(s.SchemeType)
	for _, m := range stateTypeMarkers {
		if strings.Contains(typ, m) {
			return true
		}
	}
	name := strings.ToLower(s.EN.Name)
	for _, m := range stateNameMarkers {
		if strings.Contains(name, m) {
			return true
		}
	}
	return false
}

func summarize(all []scheme.Scheme) Statistics {
	st := Statistics{Total: len(all)}
	counts := map[string]int{}
	for i := range all {
		if IsStateScheme(&all[i]) {
			st.State++
		}
		if c := all[i].Category; c != "" {
			counts[c]++
		}
	}
	st.Central = st.Total - st.State

	st.Categories = make([]CategoryCount, 0, len(counts))
	for name, n := range counts {
		st.Categories = append(st.Categories, CategoryCount{Name: name, Count: n})
	}
	slices.SortFunc(st.Categories, func(a, b CategoryCount) int {
		if a.Count != b.Count {
			return b.Count - a.Count
		}
		return strings.Compare(a.Name, b.Name)
	})
	return st
}
