// Package query implements the data access layer as immutable query plans.
// A Plan describes a SELECT over a source table with optional left joins,
// equality/LIKE predicates, ordering, and limit/offset. Plans render to SQL
// without a live database, which keeps them unit-testable; a Runner executes
// them against the connection pool and returns rows as column-name maps.
//
// All values are bound as parameters. LIKE patterns are built by the caller
// before binding (the layer never wraps search terms itself).
package query

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

// ErrNegativeRange is returned when a plan carries a negative limit or
// offset. Listing handlers validate page/limit before building plans, so
// hitting this from the HTTP surface indicates a programming error.
var ErrNegativeRange = errors.New("query: negative limit or offset")

// psql builds statements with PostgreSQL dollar placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Plan is an immutable description of a SELECT query. Every combinator
// returns a new Plan, so a base plan can be shared and extended per request
// (e.g. the same filter set rendered once as a listing and once as a count).
type Plan struct {
	builder  sq.SelectBuilder
	rangeErr error
}

// From starts a plan over the given source, e.g. "post p".
func From(source string) Plan {
	return Plan{builder: psql.Select().From(source)}
}

// Columns sets the projection. Expressions such as "COUNT(*) AS total" are
// allowed; these come from code, never from request input.
func (p Plan) Columns(cols ...string) Plan {
	p.builder = p.builder.Columns(cols...)
	return p
}

// LeftJoin adds a LEFT JOIN clause. Placeholders in the join condition are
// bound from args, so language filters can live in the join itself.
func (p Plan) LeftJoin(join string, args ...any) Plan {
	p.builder = p.builder.LeftJoin(join, args...)
	return p
}

// Where adds an equality predicate. Predicates combine as a conjunction.
func (p Plan) Where(column string, value any) Plan {
	p.builder = p.builder.Where(sq.Eq{column: value})
	return p
}

// WhereLike adds a LIKE predicate. The caller supplies the complete pattern
// (including any % wildcards); it is bound as a parameter like any value.
func (p Plan) WhereLike(column, pattern string) Plan {
	p.builder = p.builder.Where(sq.Like{column: pattern})
	return p
}

// OrderBy sets the result ordering, e.g. "p.publishdate DESC".
func (p Plan) OrderBy(exprs ...string) Plan {
	p.builder = p.builder.OrderBy(exprs...)
	return p
}

// Limit caps the number of returned rows. Negative values poison the plan
// and surface as ErrNegativeRange when it is rendered or executed.
func (p Plan) Limit(n int) Plan {
	if n < 0 {
		p.rangeErr = ErrNegativeRange
		return p
	}
	p.builder = p.builder.Limit(uint64(n))
	return p
}

// Offset skips the first n rows. Negative values poison the plan.
func (p Plan) Offset(n int) Plan {
	if n < 0 {
		p.rangeErr = ErrNegativeRange
		return p
	}
	p.builder = p.builder.Offset(uint64(n))
	return p
}

// SQL renders the plan to a parameterized statement and its arguments.
func (p Plan) SQL() (string, []any, error) {
	if p.rangeErr != nil {
		return "", nil, p.rangeErr
	}
	stmt, args, err := p.builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("render plan: %w", err)
	}
	return stmt, args, nil
}

// Runner executes plans against the database.
type Runner struct {
	db *sqlx.DB
}

// NewRunner returns a Runner bound to the given connection pool.
func NewRunner(db *sqlx.DB) *Runner {
	return &Runner{db: db}
}

// One executes the plan capped at a single row. It returns nil with no error
// when nothing matched, mirroring the store convention of nil-for-missing.
func (r *Runner) One(ctx context.Context, p Plan) (map[string]any, error) {
	stmt, args, err := p.Limit(1).SQL()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryxContext(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("query one: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("query one: %w", err)
		}
		return nil, nil
	}

	row := map[string]any{}
	if err := rows.MapScan(row); err != nil {
		return nil, fmt.Errorf("scan one: %w", err)
	}
	return row, nil
}

// All executes the plan and returns every matching row in order.
func (r *Runner) All(ctx context.Context, p Plan) ([]map[string]any, error) {
	stmt, args, err := p.SQL()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryxContext(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("query all: %w", err)
	}
	defer rows.Close()

	var out []map[string]any
	for rows.Next() {
		row := map[string]any{}
		if err := rows.MapScan(row); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	return out, nil
}
