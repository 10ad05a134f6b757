// Package sqlpart renders declarative SQL statement trees to parameterized SQL.
//
// A statement is built as a tree of immutable Parts using the package-level
// factory functions, then rendered by a Renderer bound to one Model. The
// Renderer produces the SQL text plus two ordered side-channels: the bound
// values (one per placeholder, left to right) and the output field names
// collected from SELECT lists and raw fragments.
//
// # Basic Usage
//
//	user := sqlpart.NewModel("User", "user", "id", "name")
//
//	stmt := sqlpart.Select(
//		sqlpart.Fields("id", "name"),
//		sqlpart.From(),
//		sqlpart.Where(sqlpart.Object{"id": 1}),
//		sqlpart.OrderBy(sqlpart.Object{"name": "desc"}),
//		sqlpart.Limit(10),
//	)
//
//	result, err := sqlpart.New(user).Render(stmt)
//	// result.SQL:    SELECT "user"."id", "user"."name" FROM "user" WHERE "user"."id" = ? ORDER BY "user"."name" DESC LIMIT 10
//	// result.Values: []any{1}
//	// result.Fields: []string{"id", "name"}
//
// # Dialects
//
// The core always emits double-quoted identifiers and the positional "?"
// placeholder. Dialect packages (postgres, sqlite, mssql, mariadb) change the
// identifier quoting at render time and rewrite placeholders afterwards:
//
//	import "github.com/zoobzio/sqlpart/postgres"
//
//	result, err := sqlpart.New(user, sqlpart.WithDialect(postgres.New())).Render(stmt)
//	bound := result.Rebind(postgres.New())
//	// bound.SQL: ... WHERE "user"."id" = $1 ...
//
// # Sub-selects
//
// Any value position may hold a SubSelect (for example a *Query). Its SELECT
// text is inlined in parentheses and its values and fields are spliced into
// the parent's accumulators in order.
//
// # Concurrency
//
// Parts are immutable and may be shared freely. A Renderer is single-use:
// create one per statement and never share it between goroutines.
package sqlpart

import "github.com/zoobzio/sqlpart/internal/types"

// Part is one immutable node of a statement tree.
type Part = types.Part

// Tag identifies the kind of a Part.
type Tag = types.Tag

// RawSQL is a literal SQL fragment with optional values and output fields.
type RawSQL = types.RawSQL

// Object maps field names to values.
type Object = types.Object

// Undefined marks a value the caller failed to supply.
var Undefined = types.Undefined

// Re-export tag constants for public API.
const (
	TagRaw                  = types.TagRaw
	TagSelect               = types.TagSelect
	TagDistinct             = types.TagDistinct
	TagAll                  = types.TagAll
	TagFields               = types.TagFields
	TagFrom                 = types.TagFrom
	TagWhere                = types.TagWhere
	TagNot                  = types.TagNot
	TagAny                  = types.TagAny
	TagSome                 = types.TagSome
	TagExists               = types.TagExists
	TagEqualTo              = types.TagEqualTo
	TagNotEqualTo           = types.TagNotEqualTo
	TagGreaterThan          = types.TagGreaterThan
	TagGreaterThanOrEqualTo = types.TagGreaterThanOrEqualTo
	TagLessThan             = types.TagLessThan
	TagLessThanOrEqualTo    = types.TagLessThanOrEqualTo
	TagIsNull               = types.TagIsNull
	TagIsNotNull            = types.TagIsNotNull
	TagLike                 = types.TagLike
	TagBetween              = types.TagBetween
	TagIn                   = types.TagIn
	TagAnd                  = types.TagAnd
	TagOr                   = types.TagOr
	TagGroupBy              = types.TagGroupBy
	TagHaving               = types.TagHaving
	TagOrderBy              = types.TagOrderBy
	TagAsc                  = types.TagAsc
	TagDesc                 = types.TagDesc
	TagNulls                = types.TagNulls
	TagFirst                = types.TagFirst
	TagLast                 = types.TagLast
	TagLimit                = types.TagLimit
	TagOffset               = types.TagOffset
	TagInsert               = types.TagInsert
	TagInto                 = types.TagInto
	TagColumns              = types.TagColumns
	TagValues               = types.TagValues
	TagReturning            = types.TagReturning
)

// Tags returns every tag in declaration order.
func Tags() []Tag {
	return types.Tags()
}

// ParseTag looks a tag up by its camelCase name, as returned by Tag.String.
func ParseTag(name string) (Tag, bool) {
	return types.ParseTag(name)
}
