package sqlpart

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"
)

// Querier is the subset of *sql.DB, *sql.Tx and *sql.Conn used to run
// rendered statements.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// SlowThreshold is the duration above which a statement is logged as slow.
var SlowThreshold = 100 * time.Millisecond

// Fetch runs a rendered SELECT and returns one map per row, keyed by the
// output field names collected while rendering. When the statement declares
// no fields, the driver's column names are used instead.
func Fetch(ctx context.Context, db Querier, res *Result) ([]map[string]any, error) {
	start := time.Now()
	rows, err := db.QueryContext(ctx, res.SQL, res.Values...)
	logStatement(ctx, res, start, err)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("read columns: %w", err)
	}
	names := res.Fields
	if len(names) == 0 {
		names = columns
	}
	if len(names) != len(columns) {
		return nil, fmt.Errorf("statement returned %d columns for %d fields", len(columns), len(names))
	}

	var out []map[string]any
	for rows.Next() {
		values := make([]any, len(columns))
		dest := make([]any, len(columns))
		for i := range values {
			dest[i] = &values[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		row := make(map[string]any, len(names))
		for i, name := range names {
			if b, ok := values[i].([]byte); ok {
				values[i] = append([]byte(nil), b...)
			}
			row[name] = values[i]
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	return out, nil
}

// Exec runs a rendered statement that returns no rows.
func Exec(ctx context.Context, db Querier, res *Result) (sql.Result, error) {
	start := time.Now()
	result, err := db.ExecContext(ctx, res.SQL, res.Values...)
	logStatement(ctx, res, start, err)
	return result, err
}

// Fetch renders the SELECT for the query's dialect and runs it with the
// package-level Fetch.
func (q *Query) Fetch(ctx context.Context, db Querier) ([]map[string]any, error) {
	res, err := q.Select()
	if err != nil {
		return nil, err
	}
	rows, err := Fetch(ctx, db, res)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", q.model, err)
	}
	return rows, nil
}

// Exec runs an INSERT of rows.
func (q *Query) Exec(ctx context.Context, db Querier, rows ...map[string]any) (sql.Result, error) {
	res, err := q.Insert(rows...)
	if err != nil {
		return nil, err
	}
	result, err := Exec(ctx, db, res)
	if err != nil {
		return nil, fmt.Errorf("insert %s: %w", q.model, err)
	}
	return result, nil
}

func logStatement(ctx context.Context, res *Result, start time.Time, err error) {
	duration := time.Since(start)
	if err != nil {
		slog.ErrorContext(ctx, "statement failed", "query", res.SQL, "args", res.Values, "error", err)
		return
	}
	if duration > SlowThreshold {
		slog.WarnContext(ctx, "slow query detected", "duration", duration, "query", res.SQL, "args", res.Values)
		return
	}
	slog.DebugContext(ctx, "statement executed", "duration", duration, "query", res.SQL)
}
