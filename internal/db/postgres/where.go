package postgres

import (
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/kailas-cloud/sahayata/internal/domain/eligibility/predicate"
	"github.com/kailas-cloud/sahayata/internal/domain/scheme"
)

// Where renders a predicate set as a SQL boolean expression with positional
// parameters starting at $firstArg. Columns are checked against the scheme
// column list and quoted; values are always bound, never inlined.
func Where(set predicate.Set, firstArg int) (string, []any, error) {
	if set.IsEmpty() {
		return "", nil, fmt.Errorf("empty predicate set")
	}
	joiner := " AND "
	if set.Combinator() == predicate.Any {
		joiner = " OR "
	}

	var (
		args  []any
		parts = make([]string, 0, set.Len())
	)
	next := firstArg
	for _, p := range set.Predicates() {
		if len(p.Clauses()) == 0 {
			return "", nil, fmt.Errorf("predicate %q has no clauses", p.Attribute())
		}
		alts := make([]string, 0, len(p.Clauses()))
		for _, c := range p.Clauses() {
			frag, err := renderClause(c, next)
			if err != nil {
				return "", nil, err
			}
			alts = append(alts, frag)
			args = append(args, "%"+EscapeLike(c.Value)+"%")
			next++
		}
		parts = append(parts, "("+strings.Join(alts, " OR ")+")")
	}
	return strings.Join(parts, joiner), args, nil
}

func renderClause(c predicate.Clause, arg int) (string, error) {
	if !scheme.IsTextColumn(c.Field) {
		return "", fmt.Errorf("unknown column %q", c.Field)
	}
	col := pgx.Identifier{c.Field}.Sanitize()
	switch c.Op {
	case predicate.Contains:
		return fmt.Sprintf(`COALESCE(%s, '') ILIKE $%d ESCAPE '\'`, col, arg), nil
	default:
		return "", fmt.Errorf("unsupported operator %q", c.Op)
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// EscapeLike escapes LIKE wildcards so v matches literally.
func EscapeLike(v string) string {
	return likeEscaper.Replace(v)
}
