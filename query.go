package sqlpart

import (
	"errors"
	"fmt"
	"sort"
)

// Query provides a fluent API for assembling SELECT and INSERT statements
// for one model. The first invalid call is recorded and returned when the
// query is rendered; later calls are ignored.
//
// A Query is a SubSelect, so it can be used in any value position of
// another statement.
type Query struct {
	model     *Model
	dialect   Dialect
	err       error
	limit     any
	offset    any
	alias     string
	fields    []any
	where     []any
	groupBy   []any
	having    []any
	orderBy   []any
	returning []any
	distinct  bool
}

// NewQuery creates a query for model.
func NewQuery(model *Model) *Query {
	q := &Query{model: model, dialect: ANSI}
	if model == nil {
		q.err = errors.New("model cannot be nil")
	}
	return q
}

// Err returns the first error recorded by a builder call.
func (q *Query) Err() error {
	return q.err
}

// As sets the alias that qualifies the query's column references.
func (q *Query) As(alias string) *Query {
	if q.err != nil {
		return q
	}
	if alias == "" {
		q.err = errors.New("alias cannot be empty")
		return q
	}
	q.alias = alias
	return q
}

// Dialect sets the dialect used by Select, Insert, Fetch and Exec.
func (q *Query) Dialect(d Dialect) *Query {
	if q.err != nil {
		return q
	}
	if d == nil {
		q.err = errors.New("dialect cannot be nil")
		return q
	}
	q.dialect = d
	return q
}

// Fields adds members to the select list.
func (q *Query) Fields(fields ...any) *Query {
	if q.err != nil {
		return q
	}
	q.fields = append(q.fields, fields...)
	return q
}

// Distinct selects distinct rows only.
func (q *Query) Distinct() *Query {
	if q.err != nil {
		return q
	}
	q.distinct = true
	return q
}

// Where adds conditions, combined with AND.
func (q *Query) Where(conditions ...any) *Query {
	if q.err != nil {
		return q
	}
	q.where = append(q.where, conditions...)
	return q
}

// GroupBy adds grouping fields.
func (q *Query) GroupBy(fields ...any) *Query {
	if q.err != nil {
		return q
	}
	q.groupBy = append(q.groupBy, fields...)
	return q
}

// Having adds group conditions, combined with AND.
func (q *Query) Having(conditions ...any) *Query {
	if q.err != nil {
		return q
	}
	q.having = append(q.having, conditions...)
	return q
}

// OrderBy adds ordering members.
func (q *Query) OrderBy(fields ...any) *Query {
	if q.err != nil {
		return q
	}
	q.orderBy = append(q.orderBy, fields...)
	return q
}

// Limit sets the maximum number of rows returned.
func (q *Query) Limit(limit int) *Query {
	if q.err != nil {
		return q
	}
	if limit < 0 {
		q.err = fmt.Errorf("limit cannot be negative: %d", limit)
		return q
	}
	q.limit = limit
	return q
}

// Offset sets the number of rows skipped.
func (q *Query) Offset(offset int) *Query {
	if q.err != nil {
		return q
	}
	if offset < 0 {
		q.err = fmt.Errorf("offset cannot be negative: %d", offset)
		return q
	}
	q.offset = offset
	return q
}

// Returning sets the fields returned by an INSERT.
func (q *Query) Returning(fields ...any) *Query {
	if q.err != nil {
		return q
	}
	q.returning = append(q.returning, fields...)
	return q
}

// SelectPart assembles the query's SELECT tree.
func (q *Query) SelectPart() (Part, error) {
	if q.err != nil {
		return Part{}, q.err
	}
	parts := make([]Part, 0, 9)
	if q.distinct {
		parts = append(parts, Distinct())
	}
	if len(q.fields) > 0 {
		parts = append(parts, Fields(q.fields...))
	}
	parts = append(parts, From())
	if len(q.where) > 0 {
		parts = append(parts, Where(q.where))
	}
	if len(q.groupBy) > 0 {
		parts = append(parts, GroupBy(q.groupBy...))
	}
	if len(q.having) > 0 {
		parts = append(parts, Having(q.having))
	}
	if len(q.orderBy) > 0 {
		parts = append(parts, OrderBy(q.orderBy...))
	}
	if q.limit != nil {
		parts = append(parts, Limit(q.limit))
	}
	if q.offset != nil {
		parts = append(parts, Offset(q.offset))
	}
	return Select(parts...), nil
}

// InsertPart assembles an INSERT tree for rows keyed by field name. The
// column list is the sorted union of all keys; a row without a key binds
// Undefined for it, which fails at render time.
func (q *Query) InsertPart(rows ...map[string]any) (Part, error) {
	if q.err != nil {
		return Part{}, q.err
	}
	if len(rows) == 0 {
		return Part{}, errors.New("insert requires at least one row")
	}

	seen := make(map[string]bool)
	var columns []string
	for _, row := range rows {
		for field := range row {
			if !seen[field] {
				seen[field] = true
				columns = append(columns, field)
			}
		}
	}
	sort.Strings(columns)

	values := make([]any, len(rows))
	for i, row := range rows {
		cells := make([]any, len(columns))
		for j, field := range columns {
			value, ok := row[field]
			if !ok {
				value = Undefined
			}
			cells[j] = value
		}
		values[i] = cells
	}

	cols := make([]any, len(columns))
	for i, c := range columns {
		cols[i] = c
	}

	parts := []Part{Into(), Columns(cols...), Values(values...)}
	if len(q.returning) > 0 {
		parts = append(parts, Returning(q.returning...))
	}
	return Insert(parts...), nil
}

func (q *Query) renderer(d Dialect) *Renderer {
	opts := []Option{WithDialect(d)}
	if q.alias != "" {
		opts = append(opts, WithAlias(q.alias))
	}
	return New(q.model, opts...)
}

// RenderSelect renders the SELECT statement with neutral placeholders,
// quoting identifiers for d. It implements SubSelect.
func (q *Query) RenderSelect(d Dialect) (*Result, error) {
	if q == nil {
		return nil, errors.New("query is nil")
	}
	part, err := q.SelectPart()
	if err != nil {
		return nil, err
	}
	return q.renderer(d).Render(part)
}

// Select renders the SELECT statement for the query's dialect.
func (q *Query) Select() (*Result, error) {
	res, err := q.RenderSelect(q.dialect)
	if err != nil {
		return nil, err
	}
	return res.Rebind(q.dialect), nil
}

// Insert renders an INSERT statement for the query's dialect.
func (q *Query) Insert(rows ...map[string]any) (*Result, error) {
	part, err := q.InsertPart(rows...)
	if err != nil {
		return nil, err
	}
	res, err := q.renderer(q.dialect).Render(part)
	if err != nil {
		return nil, err
	}
	return res.Rebind(q.dialect), nil
}

// MustSelect is like Select but panics on error.
func (q *Query) MustSelect() *Result {
	res, err := q.Select()
	if err != nil {
		panic(err)
	}
	return res
}
