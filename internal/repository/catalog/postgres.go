package catalog

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/kailas-cloud/sahayata/internal/db/postgres"
	"github.com/kailas-cloud/sahayata/internal/domain"
	"github.com/kailas-cloud/sahayata/internal/domain/eligibility/predicate"
	"github.com/kailas-cloud/sahayata/internal/domain/scheme"
)

// DefaultTable is the catalog table name.
const DefaultTable = "schemes"

// querier is the consumer interface for SQL access (ISP).
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// PostgresRepo reads the catalog from a SQL table.
type PostgresRepo struct {
	db    querier
	table string
}

// NewPostgres creates a SQL-backed catalog. An empty table uses DefaultTable.
func NewPostgres(q querier, table string) *PostgresRepo {
	if table == "" {
		table = DefaultTable
	}
	return &PostgresRepo{db: q, table: table}
}

// ListAll returns every record ordered by id.
func (r *PostgresRepo) ListAll(ctx context.Context) ([]scheme.Scheme, error) {
	rows, err := r.db.Query(ctx, r.selectSQL("", ""))
	if err != nil {
		return nil, fmt.Errorf("%w: list schemes: %w", domain.ErrStoreUnavailable, err)
	}
	return collect(rows)
}

// FindByPredicates returns up to limit records matching set, ordered by id.
func (r *PostgresRepo) FindByPredicates(
	ctx context.Context, set predicate.Set, limit int,
) ([]scheme.Scheme, error) {
	where, args, err := postgres.Where(set, 1)
	if err != nil {
		return nil, fmt.Errorf("render predicates: %w", err)
	}
	limitClause := ""
	if limit > 0 {
		args = append(args, limit)
		limitClause = "LIMIT $" + strconv.Itoa(len(args))
	}
	rows, err := r.db.Query(ctx, r.selectSQL("WHERE "+where, limitClause), args...)
	if err != nil {
		return nil, fmt.Errorf("%w: find schemes: %w", domain.ErrStoreUnavailable, err)
	}
	return collect(rows)
}

// Get returns one record by id.
func (r *PostgresRepo) Get(ctx context.Context, id int64) (scheme.Scheme, error) {
	rows, err := r.db.Query(ctx, r.selectSQL("WHERE id = $1", ""), id)
	if err != nil {
		return scheme.Scheme{}, fmt.Errorf("%w: get scheme %d: %w", domain.ErrStoreUnavailable, id, err)
	}
	out, err := collect(rows)
	if err != nil {
		return scheme.Scheme{}, err
	}
	if len(out) == 0 {
		return scheme.Scheme{}, domain.ErrSchemeNotFound
	}
	return out[0], nil
}

// Upsert inserts or replaces records by id.
func (r *PostgresRepo) Upsert(ctx context.Context, schemes []scheme.Scheme) error {
	stmt := r.upsertSQL()
	for i := range schemes {
		s := &schemes[i]
		args := make([]any, 0, len(scheme.TextColumns)+1)
		args = append(args, s.ID)
		for _, c := range scheme.TextColumns {
			v, _ := s.Field(c)
			args = append(args, v)
		}
		if _, err := r.db.Exec(ctx, stmt, args...); err != nil {
			return fmt.Errorf("%w: upsert scheme %d: %w", domain.ErrStoreUnavailable, s.ID, err)
		}
	}
	return nil
}

func (r *PostgresRepo) selectSQL(where, limit string) string {
	var b strings.Builder
	b.WriteString("SELECT id")
	for _, c := range scheme.TextColumns {
		col := pgx.Identifier{c}.Sanitize()
		b.WriteString(", COALESCE(")
		b.WriteString(col)
		b.WriteString(", '')")
	}
	b.WriteString(" FROM ")
	b.WriteString(pgx.Identifier{r.table}.Sanitize())
	if where != "" {
		b.WriteString(" ")
		b.WriteString(where)
	}
	b.WriteString(" ORDER BY id")
	if limit != "" {
		b.WriteString(" ")
		b.WriteString(limit)
	}
	return b.String()
}

func (r *PostgresRepo) upsertSQL() string {
	cols := make([]string, 0, len(scheme.TextColumns)+1)
	params := make([]string, 0, len(scheme.TextColumns)+1)
	sets := make([]string, 0, len(scheme.TextColumns))
	cols = append(cols, "id")
	params = append(params, "$1")
	for i, c := range scheme.TextColumns {
		col := pgx.Identifier{c}.Sanitize()
		cols = append(cols, col)
		params = append(params, "$"+strconv.Itoa(i+2))
		sets = append(sets, col+" = EXCLUDED."+col)
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) ON CONFLICT (id) DO UPDATE SET %s",
		pgx.Identifier{r.table}.Sanitize(),
		strings.Join(cols, ", "), strings.Join(params, ", "), strings.Join(sets, ", "))
}

func collect(rows pgx.Rows) ([]scheme.Scheme, error) {
	defer rows.Close()

	out := make([]scheme.Scheme, 0)
	vals := make([]string, len(scheme.TextColumns))
	dest := make([]any, 0, len(vals)+1)
	for rows.Next() {
		var s scheme.Scheme
		dest = append(dest[:0], &s.ID)
		for i := range vals {
			dest = append(dest, &vals[i])
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("%w: scan scheme: %w", domain.ErrStoreUnavailable, err)
		}
		for i, c := range scheme.TextColumns {
			s.SetField(c, vals[i])
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: read schemes: %w", domain.ErrStoreUnavailable, err)
	}
	return out, nil
}
