package sqlpart

import "github.com/zoobzio/sqlpart/internal/types"

// Factories only assign tag, field and value. Nothing is validated until
// the tree is rendered against a model.

func part(tag types.Tag, field, value any) Part {
	return Part{Tag: tag, Field: field, Value: value}
}

// optional returns the first of values, or nil.
func optional(values []any) any {
	if len(values) == 0 {
		return nil
	}
	return values[0]
}

// Raw creates a literal SQL part from a string or a RawSQL.
func Raw(sql any) Part {
	return part(types.TagRaw, nil, sql)
}

// Select creates a SELECT statement from its clause parts.
func Select(parts ...Part) Part {
	return part(types.TagSelect, nil, parts)
}

// Distinct creates a DISTINCT modifier, optionally wrapping the select list.
func Distinct(value ...any) Part {
	return part(types.TagDistinct, nil, optional(value))
}

// All creates an ALL modifier, optionally wrapping the select list.
func All(value ...any) Part {
	return part(types.TagAll, nil, optional(value))
}

// Fields creates a select list. Members are field names, Objects, Parts or
// sub-selects.
func Fields(fields ...any) Part {
	return part(types.TagFields, nil, fields)
}

// From creates a FROM clause for the renderer's model.
func From() Part {
	return part(types.TagFrom, nil, nil)
}

// Where creates a WHERE clause from a condition, a list of conditions, an
// Object or a sub-select.
func Where(value any) Part {
	return part(types.TagWhere, nil, value)
}

// Not creates a NOT prefix.
func Not(value any) Part {
	return part(types.TagNot, nil, value)
}

// Any creates an ANY prefix, usually around a sub-select.
func Any(value any) Part {
	return part(types.TagAny, nil, value)
}

// Some creates a SOME prefix, usually around a sub-select.
func Some(value any) Part {
	return part(types.TagSome, nil, value)
}

// Exists creates an EXISTS prefix, usually around a sub-select.
func Exists(value any) Part {
	return part(types.TagExists, nil, value)
}

// EqualTo creates a "field = value" condition.
func EqualTo(field, value any) Part {
	return part(types.TagEqualTo, field, value)
}

// NotEqualTo creates a "field <> value" condition.
func NotEqualTo(field, value any) Part {
	return part(types.TagNotEqualTo, field, value)
}

// GreaterThan creates a "field > value" condition.
func GreaterThan(field, value any) Part {
	return part(types.TagGreaterThan, field, value)
}

// GreaterThanOrEqualTo creates a "field >= value" condition.
func GreaterThanOrEqualTo(field, value any) Part {
	return part(types.TagGreaterThanOrEqualTo, field, value)
}

// LessThan creates a "field < value" condition.
func LessThan(field, value any) Part {
	return part(types.TagLessThan, field, value)
}

// LessThanOrEqualTo creates a "field <= value" condition.
func LessThanOrEqualTo(field, value any) Part {
	return part(types.TagLessThanOrEqualTo, field, value)
}

// IsNull creates a "field IS NULL" condition.
func IsNull(field any) Part {
	return part(types.TagIsNull, field, nil)
}

// IsNotNull creates a "field IS NOT NULL" condition.
func IsNotNull(field any) Part {
	return part(types.TagIsNotNull, field, nil)
}

// Like creates a "field LIKE value" condition.
func Like(field, value any) Part {
	return part(types.TagLike, field, value)
}

// Between creates a "field BETWEEN a AND b" condition. value must be a
// two-element list.
func Between(field, value any) Part {
	return part(types.TagBetween, field, value)
}

// In creates a "field IN (...)" condition from a list or a sub-select.
func In(field, value any) Part {
	return part(types.TagIn, field, value)
}

// And creates a conjunction. value is a list of conditions or a single one.
func And(value any) Part {
	return part(types.TagAnd, nil, value)
}

// Or creates a disjunction. value is a list of conditions or a single one.
func Or(value any) Part {
	return part(types.TagOr, nil, value)
}

// GroupBy creates a GROUP BY clause.
func GroupBy(fields ...any) Part {
	return part(types.TagGroupBy, nil, fields)
}

// Having creates a HAVING clause. It accepts the same values as Where.
func Having(value any) Part {
	return part(types.TagHaving, nil, value)
}

// OrderBy creates an ORDER BY clause. Members are field names, 1-based
// column positions, Parts or Objects mapping a field to a direction.
func OrderBy(fields ...any) Part {
	return part(types.TagOrderBy, nil, fields)
}

// Asc creates an ASC direction, optionally followed by a NULLS part.
func Asc(value ...any) Part {
	return part(types.TagAsc, nil, optional(value))
}

// Desc creates a DESC direction, optionally followed by a NULLS part.
func Desc(value ...any) Part {
	return part(types.TagDesc, nil, optional(value))
}

// Nulls creates a NULLS modifier, normally wrapping First or Last.
func Nulls(value ...any) Part {
	return part(types.TagNulls, nil, optional(value))
}

// First creates the FIRST keyword.
func First() Part {
	return part(types.TagFirst, nil, nil)
}

// Last creates the LAST keyword.
func Last() Part {
	return part(types.TagLast, nil, nil)
}

// Limit creates a LIMIT clause.
func Limit(value any) Part {
	return part(types.TagLimit, nil, value)
}

// Offset creates an OFFSET clause.
func Offset(value any) Part {
	return part(types.TagOffset, nil, value)
}

// Insert creates an INSERT statement from its clause parts.
func Insert(parts ...Part) Part {
	return part(types.TagInsert, nil, parts)
}

// Into creates an INTO clause for the renderer's model.
func Into() Part {
	return part(types.TagInto, nil, nil)
}

// Columns creates the column list of an INSERT.
func Columns(fields ...any) Part {
	return part(types.TagColumns, nil, fields)
}

// Values creates the VALUES clause of an INSERT. Each row is a list.
func Values(rows ...any) Part {
	return part(types.TagValues, nil, rows)
}

// Returning creates a RETURNING clause.
func Returning(fields ...any) Part {
	return part(types.TagReturning, nil, fields)
}
