package sqlpart

import (
	"strings"

	"github.com/zoobzio/sqlpart/internal/types"
)

// operators maps comparison tags to their SQL operator.
var operators = map[types.Tag]string{
	types.TagEqualTo:              "=",
	types.TagNotEqualTo:           "<>",
	types.TagGreaterThan:          ">",
	types.TagGreaterThanOrEqualTo: ">=",
	types.TagLessThan:             "<",
	types.TagLessThanOrEqualTo:    "<=",
	types.TagLike:                 "LIKE",
}

// lower rewrites an Object into an explicit condition: one key becomes an
// equality test, several keys become a conjunction of equality tests in
// key order. Other values are returned unchanged.
func lower(value any) any {
	obj, ok := types.AsObject(value)
	if !ok {
		return value
	}
	keys := obj.Keys()
	if len(keys) == 1 {
		return EqualTo(keys[0], obj[keys[0]])
	}
	conditions := make([]any, len(keys))
	for i, k := range keys {
		conditions[i] = EqualTo(k, obj[k])
	}
	return And(conditions)
}

func (r *Renderer) formatComparison(p Part) (string, error) {
	field, err := r.FormatField(p.Field)
	if err != nil {
		return "", err
	}
	value, err := r.FormatValue(p.Value)
	if err != nil {
		return "", err
	}
	return field + " " + operators[p.Tag] + " " + value, nil
}

func (r *Renderer) formatNullCheck(p Part) (string, error) {
	field, err := r.FormatField(p.Field)
	if err != nil {
		return "", err
	}
	if p.Tag == types.TagIsNotNull {
		return field + " IS NOT NULL", nil
	}
	return field + " IS NULL", nil
}

// FormatBetween renders "field BETWEEN ? AND ?". The value must be a list
// of exactly two members.
func (r *Renderer) FormatBetween(p Part) (string, error) {
	bounds, ok := types.AsList(p.Value)
	if !ok || len(bounds) != 2 {
		if types.IsUndefined(p.Value) {
			return "", r.undefined()
		}
		return "", r.errorf(ErrInvalidPart, "value for BETWEEN should be a list of two values")
	}
	field, err := r.FormatField(p.Field)
	if err != nil {
		return "", err
	}
	low, err := r.FormatValue(bounds[0])
	if err != nil {
		return "", err
	}
	high, err := r.FormatValue(bounds[1])
	if err != nil {
		return "", err
	}
	return field + " BETWEEN " + low + " AND " + high, nil
}

// FormatIn renders "field IN (...)". An empty list binds a single NULL so
// the condition matches nothing; a sub-select is inlined as-is.
func (r *Renderer) FormatIn(p Part) (string, error) {
	field, err := r.FormatField(p.Field)
	if err != nil {
		return "", err
	}

	if sub, ok := asSubSelect(p.Value); ok {
		query, err := r.FormatSubSelect(sub)
		if err != nil {
			return "", err
		}
		return field + " IN " + query, nil
	}

	members, ok := types.AsList(p.Value)
	if !ok {
		members = []any{p.Value}
	}
	if len(members) == 0 {
		members = []any{nil}
	}

	formatted := make([]string, len(members))
	for i, m := range members {
		formatted[i], err = r.FormatValue(m)
		if err != nil {
			return "", err
		}
	}
	return field + " IN (" + strings.Join(formatted, ", ") + ")", nil
}

// FormatAndOrOr joins a list of conditions with AND or OR, wrapping the
// result in parentheses when there is more than one. Object members are
// expanded into conjunctions of equality tests first.
func (r *Renderer) FormatAndOrOr(p Part) (string, error) {
	return r.join(keywords[p.Tag], p.Value)
}

func (r *Renderer) join(operator string, value any) (string, error) {
	members, ok := types.AsList(value)
	if !ok {
		return r.FormatValue(lower(value))
	}

	formatted := make([]string, 0, len(members))
	for _, m := range members {
		text, err := r.FormatValue(lower(m))
		if err != nil {
			return "", err
		}
		if text != "" {
			formatted = append(formatted, text)
		}
	}

	switch len(formatted) {
	case 0:
		return "", nil
	case 1:
		return formatted[0], nil
	}
	return "(" + strings.Join(formatted, " "+operator+" ") + ")", nil
}

// FormatWhere renders a WHERE clause, or "" when there are no conditions.
func (r *Renderer) FormatWhere(p Part) (string, error) {
	return r.formatFilter("WHERE", p)
}

// FormatHaving renders a HAVING clause, or "" when there are no conditions.
func (r *Renderer) FormatHaving(p Part) (string, error) {
	return r.formatFilter("HAVING", p)
}

func (r *Renderer) formatFilter(keyword string, p Part) (string, error) {
	conditions, err := r.join("AND", p.Value)
	if err != nil || conditions == "" {
		return "", err
	}
	return keyword + " " + conditions, nil
}

// formatPrefix renders NOT, ANY, SOME and EXISTS.
func (r *Renderer) formatPrefix(p Part) (string, error) {
	value, err := r.FormatValue(lower(p.Value))
	if err != nil {
		return "", err
	}
	return keywords[p.Tag] + " " + value, nil
}
