package sqlpart

import "github.com/zoobzio/sqlpart/internal/types"

// Renderer walks a Part tree for one model and accumulates the bound values
// and output field names in the order they appear in the SQL text.
//
// A Renderer is single-use: create one per statement. It is not safe for
// concurrent use, and after an error its accumulators must be discarded.
type Renderer struct {
	model      *Model
	dialect    Dialect
	formatters *Formatters
	alias      string
	values     []any
	fields     []string
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithAlias qualifies every column reference with alias instead of the
// table name, and renders the table as `table AS alias`.
func WithAlias(alias string) Option {
	return func(r *Renderer) {
		r.alias = alias
	}
}

// WithDialect sets the dialect used to quote identifiers.
func WithDialect(d Dialect) Option {
	return func(r *Renderer) {
		if d != nil {
			r.dialect = d
		}
	}
}

// WithFormatters sets the default value formatting overrides.
func WithFormatters(f *Formatters) Option {
	return func(r *Renderer) {
		r.formatters = f
	}
}

// New creates a Renderer for model.
func New(model *Model, opts ...Option) *Renderer {
	r := &Renderer{
		model:   model,
		dialect: ANSI,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Result is a rendered statement.
type Result struct {
	SQL    string
	Values []any
	Fields []string
}

// Rebind returns a copy of the result with placeholders rewritten for d.
func (res *Result) Rebind(d Dialect) *Result {
	return &Result{
		SQL:    Rebind(d, res.SQL),
		Values: res.Values,
		Fields: res.Fields,
	}
}

// Model returns the renderer's model.
func (r *Renderer) Model() *Model { return r.model }

// Alias returns the renderer's alias, or "".
func (r *Renderer) Alias() string { return r.alias }

// Dialect returns the renderer's dialect.
func (r *Renderer) Dialect() Dialect { return r.dialect }

// Values returns the bound values accumulated so far.
func (r *Renderer) Values() []any { return r.values }

// Fields returns the output field names accumulated so far.
func (r *Renderer) Fields() []string { return r.fields }

// AddValue appends a bound value.
func (r *Renderer) AddValue(value any) *Renderer {
	r.values = append(r.values, value)
	return r
}

// AddValues appends bound values in order.
func (r *Renderer) AddValues(values ...any) *Renderer {
	r.values = append(r.values, values...)
	return r
}

// AddField appends an output field name.
func (r *Renderer) AddField(field string) *Renderer {
	r.fields = append(r.fields, field)
	return r
}

// AddFields appends output field names in order.
func (r *Renderer) AddFields(fields ...string) *Renderer {
	r.fields = append(r.fields, fields...)
	return r
}

// Render formats part and returns the text together with copies of both
// accumulators.
func (r *Renderer) Render(part Part) (*Result, error) {
	sql, err := r.Format(part)
	if err != nil {
		return nil, err
	}
	res := &Result{SQL: sql}
	if len(r.values) > 0 {
		res.Values = append([]any(nil), r.values...)
	}
	if len(r.fields) > 0 {
		res.Fields = append([]string(nil), r.fields...)
	}
	return res, nil
}

// Format renders any part by dispatching on its tag.
func (r *Renderer) Format(p Part) (string, error) {
	switch p.Tag {
	case types.TagRaw:
		return r.FormatRaw(p)
	case types.TagSelect:
		return r.FormatSelect(p)
	case types.TagDistinct, types.TagAll, types.TagAsc, types.TagDesc:
		return r.formatKeyword(p)
	case types.TagNulls:
		return r.formatNulls(p)
	case types.TagFirst, types.TagLast:
		return keywords[p.Tag], nil
	case types.TagFields:
		return r.FormatFields(p)
	case types.TagFrom:
		return r.formatFrom()
	case types.TagWhere:
		return r.FormatWhere(p)
	case types.TagNot, types.TagAny, types.TagSome, types.TagExists:
		return r.formatPrefix(p)
	case types.TagEqualTo, types.TagNotEqualTo,
		types.TagGreaterThan, types.TagGreaterThanOrEqualTo,
		types.TagLessThan, types.TagLessThanOrEqualTo,
		types.TagLike:
		return r.formatComparison(p)
	case types.TagIsNull, types.TagIsNotNull:
		return r.formatNullCheck(p)
	case types.TagBetween:
		return r.FormatBetween(p)
	case types.TagIn:
		return r.FormatIn(p)
	case types.TagAnd, types.TagOr:
		return r.FormatAndOrOr(p)
	case types.TagGroupBy:
		return r.formatGroupBy(p)
	case types.TagHaving:
		return r.FormatHaving(p)
	case types.TagOrderBy:
		return r.FormatOrderBy(p)
	case types.TagLimit, types.TagOffset:
		return r.FormatLimitOrOffset(p)
	case types.TagInsert:
		return r.FormatInsert(p)
	case types.TagInto:
		return r.formatInto()
	case types.TagColumns:
		return r.formatColumns(p)
	case types.TagValues:
		return r.formatValues(p)
	case types.TagReturning:
		return r.formatReturning(p)
	}
	return "", r.errorf(ErrInvalidPart, "unknown part type `%s`", p.Tag)
}

// keywords holds the SQL keyword emitted for each keyword-like tag.
var keywords = map[types.Tag]string{
	types.TagDistinct:  "DISTINCT",
	types.TagAll:       "ALL",
	types.TagFrom:      "FROM",
	types.TagWhere:     "WHERE",
	types.TagNot:       "NOT",
	types.TagAny:       "ANY",
	types.TagSome:      "SOME",
	types.TagExists:    "EXISTS",
	types.TagAnd:       "AND",
	types.TagOr:        "OR",
	types.TagGroupBy:   "GROUP BY",
	types.TagHaving:    "HAVING",
	types.TagOrderBy:   "ORDER BY",
	types.TagAsc:       "ASC",
	types.TagDesc:      "DESC",
	types.TagNulls:     "NULLS",
	types.TagFirst:     "FIRST",
	types.TagLast:      "LAST",
	types.TagLimit:     "LIMIT",
	types.TagOffset:    "OFFSET",
	types.TagInsert:    "INSERT",
	types.TagInto:      "INTO",
	types.TagValues:    "VALUES",
	types.TagReturning: "RETURNING",
}

// formatKeyword renders a keyword optionally followed by its formatted value.
func (r *Renderer) formatKeyword(p Part) (string, error) {
	keyword := keywords[p.Tag]
	if !p.HasValue() {
		return keyword, nil
	}
	value, err := r.FormatValue(p.Value)
	if err != nil {
		return "", err
	}
	return keyword + " " + value, nil
}

func (r *Renderer) formatNulls(p Part) (string, error) {
	if !r.dialect.Capabilities().NullsOrdering {
		return "", r.unsupported("NULLS FIRST/LAST", "order NULLs with an explicit IS NULL sort key")
	}
	return r.formatKeyword(p)
}
