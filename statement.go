package sqlpart

import (
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/zoobzio/sqlpart/internal/types"
)

// Clause order for each statement. Absent and empty clauses are omitted.
var (
	selectClauses = []types.Tag{
		types.TagDistinct,
		types.TagAll,
		types.TagFields,
		types.TagFrom,
		types.TagWhere,
		types.TagGroupBy,
		types.TagHaving,
		types.TagOrderBy,
		types.TagLimit,
		types.TagOffset,
	}
	insertClauses = []types.Tag{
		types.TagInto,
		types.TagColumns,
		types.TagValues,
		types.TagReturning,
	}
)

// FormatSelect renders a SELECT statement from the clause parts in its
// value, in fixed clause order regardless of the order they were given.
func (r *Renderer) FormatSelect(p Part) (string, error) {
	return r.formatStatement("SELECT", p, selectClauses)
}

// FormatInsert renders an INSERT statement from the clause parts in its
// value.
func (r *Renderer) FormatInsert(p Part) (string, error) {
	return r.formatStatement("INSERT", p, insertClauses)
}

func (r *Renderer) formatStatement(keyword string, p Part, order []types.Tag) (string, error) {
	clauses, err := r.clauses(keyword, p, order)
	if err != nil {
		return "", err
	}
	if _, ok := clauses[types.TagDistinct]; ok {
		if _, ok := clauses[types.TagAll]; ok {
			return "", r.errorf(ErrInvalidPart, "DISTINCT and ALL cannot be combined")
		}
	}

	var b strings.Builder
	b.WriteString(keyword)
	for _, tag := range order {
		clause, ok := clauses[tag]
		if !ok {
			continue
		}
		text, err := r.Format(clause)
		if err != nil {
			return "", err
		}
		if text == "" {
			continue
		}
		b.WriteByte(' ')
		b.WriteString(text)
	}
	return b.String(), nil
}

// clauses indexes a statement's parts by tag, rejecting duplicates and
// tags that do not belong to the statement.
func (r *Renderer) clauses(keyword string, p Part, allowed []types.Tag) (map[types.Tag]Part, error) {
	var parts []Part
	switch v := p.Value.(type) {
	case nil:
	case []Part:
		parts = v
	default:
		list, ok := types.AsList(v)
		if !ok {
			return nil, r.errorf(ErrInvalidPart, "%s value should be a list of parts", keyword)
		}
		for _, item := range list {
			part, ok := types.AsPart(item)
			if !ok {
				return nil, r.errorf(ErrInvalidPart, "%s value should be a list of parts, got %T", keyword, item)
			}
			parts = append(parts, part)
		}
	}

	clauses := make(map[types.Tag]Part, len(parts))
	for _, part := range parts {
		if !allowedTag(part.Tag, allowed) {
			return nil, r.errorf(ErrInvalidPart, "`%s` part is not allowed in %s", part.Tag, keyword)
		}
		if _, ok := clauses[part.Tag]; ok {
			return nil, r.errorf(ErrInvalidPart, "duplicate `%s` part in %s", part.Tag, keyword)
		}
		clauses[part.Tag] = part
	}
	return clauses, nil
}

func allowedTag(tag types.Tag, allowed []types.Tag) bool {
	for _, t := range allowed {
		if t == tag {
			return true
		}
	}
	return false
}

// members returns a list value's members, or the value as the only member.
func members(value any) []any {
	if list, ok := types.AsList(value); ok {
		return list
	}
	if value == nil {
		return nil
	}
	return []any{value}
}

// FormatFields renders a select list. Field names and Object keys are
// appended to the fields accumulator; Object values name the field or
// expression selected for each key.
func (r *Renderer) FormatFields(p Part) (string, error) {
	return r.formatFieldList(p.Value)
}

func (r *Renderer) formatFieldList(value any) (string, error) {
	var formatted []string
	for _, m := range members(value) {
		switch field := m.(type) {
		case string:
			text, err := r.FormatField(field)
			if err != nil {
				return "", err
			}
			formatted = append(formatted, text)
			r.AddField(field)
			continue
		}

		if obj, ok := types.AsObject(m); ok {
			for _, key := range obj.Keys() {
				text, err := r.FormatField(obj[key])
				if err != nil {
					return "", err
				}
				formatted = append(formatted, text)
				r.AddField(key)
			}
			continue
		}

		text, err := r.FormatValue(m)
		if err != nil {
			return "", err
		}
		formatted = append(formatted, text)
	}
	return strings.Join(formatted, ", "), nil
}

func (r *Renderer) formatGroupBy(p Part) (string, error) {
	var formatted []string
	for _, m := range members(p.Value) {
		var text string
		var err error
		if _, ok := m.(string); ok || isExpression(m) {
			text, err = r.FormatField(m)
		} else {
			text, err = r.FormatValue(m)
		}
		if err != nil {
			return "", err
		}
		formatted = append(formatted, text)
	}
	if len(formatted) == 0 {
		return "", nil
	}
	return "GROUP BY " + strings.Join(formatted, ", "), nil
}

// FormatOrderBy renders an ORDER BY clause. Integer members are bound as
// column positions; Object members map a field to a direction.
func (r *Renderer) FormatOrderBy(p Part) (string, error) {
	var formatted []string
	for _, m := range members(p.Value) {
		if field, ok := m.(string); ok {
			text, err := r.FormatField(field)
			if err != nil {
				return "", err
			}
			formatted = append(formatted, text)
			continue
		}

		if obj, ok := types.AsObject(m); ok {
			for _, key := range obj.Keys() {
				field, err := r.FormatField(key)
				if err != nil {
					return "", err
				}
				direction, err := r.formatDirection(obj[key])
				if err != nil {
					return "", err
				}
				formatted = append(formatted, field+" "+direction)
			}
			continue
		}

		text, err := r.FormatValue(m)
		if err != nil {
			return "", err
		}
		formatted = append(formatted, text)
	}
	if len(formatted) == 0 {
		return "", nil
	}
	return "ORDER BY " + strings.Join(formatted, ", "), nil
}

// formatDirection accepts 1, -1, "asc", "desc" (any case) or a Part such as
// Asc(Nulls(Last())).
func (r *Renderer) formatDirection(direction any) (string, error) {
	if p, ok := types.AsPart(direction); ok {
		return r.Format(p)
	}
	if s, ok := direction.(string); ok {
		switch strings.ToLower(s) {
		case "asc":
			return "ASC", nil
		case "desc":
			return "DESC", nil
		}
	} else if n, ok := toInt(direction); ok {
		switch n {
		case 1:
			return "ASC", nil
		case -1:
			return "DESC", nil
		}
	}
	if types.IsUndefined(direction) {
		return "", r.undefined()
	}
	return "", r.errorf(ErrInvalidPart, "invalid ORDER BY direction `%v`", direction)
}

// FormatLimitOrOffset renders "LIMIT n" or "OFFSET n". The value is
// inlined, not bound, after coercion to an integer.
func (r *Renderer) FormatLimitOrOffset(p Part) (string, error) {
	keyword := keywords[p.Tag]
	if !r.dialect.Capabilities().LimitOffset {
		return "", r.unsupported(keyword, "use OFFSET ... FETCH through a raw fragment")
	}
	if isExpression(p.Value) {
		value, err := r.FormatValue(p.Value)
		if err != nil {
			return "", err
		}
		return keyword + " " + value, nil
	}
	n, ok := toInt(p.Value)
	if !ok {
		return "", r.errorf(ErrNotInteger, "value for %s should be an integer", keyword)
	}
	return keyword + " " + strconv.FormatInt(n, 10), nil
}

// toInt coerces integers, finite floats and numeric strings to an int64.
// Fractions are truncated.
func toInt(v any) (int64, bool) {
	if v == nil {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return 0, false
		}
		return int64(u), true
	case reflect.Float32, reflect.Float64:
		return floatToInt(rv.Float())
	case reflect.String:
		s := strings.TrimSpace(rv.String())
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return n, true
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return floatToInt(f)
	}
	return 0, false
}

func floatToInt(f float64) (int64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	t := math.Trunc(f)
	if t < math.MinInt64 || t >= math.MaxInt64 {
		return 0, false
	}
	return int64(t), true
}

func (r *Renderer) formatColumns(p Part) (string, error) {
	var formatted []string
	for _, m := range members(p.Value) {
		column, err := r.FormatColumn(m)
		if err != nil {
			return "", err
		}
		formatted = append(formatted, column)
	}
	if len(formatted) == 0 {
		return "", nil
	}
	return "(" + strings.Join(formatted, ", ") + ")", nil
}

func (r *Renderer) formatValues(p Part) (string, error) {
	if p.Value == nil {
		return "", nil
	}
	rows, ok := types.AsList(p.Value)
	if !ok {
		if types.IsUndefined(p.Value) {
			return "", r.undefined()
		}
		return "", r.errorf(ErrInvalidPart, "VALUES should be a list of rows")
	}
	if len(rows) == 0 {
		return "", nil
	}
	formatted := make([]string, len(rows))
	for i, row := range rows {
		cells, ok := types.AsList(row)
		if !ok {
			return "", r.errorf(ErrInvalidPart, "VALUES row %d should be a list", i)
		}
		texts := make([]string, len(cells))
		for j, cell := range cells {
			text, err := r.FormatValue(cell)
			if err != nil {
				return "", err
			}
			texts[j] = text
		}
		formatted[i] = "(" + strings.Join(texts, ", ") + ")"
	}
	return "VALUES " + strings.Join(formatted, ", "), nil
}

func (r *Renderer) formatReturning(p Part) (string, error) {
	if !r.dialect.Capabilities().Returning {
		return "", r.unsupported("RETURNING", "select the inserted rows in a follow-up query")
	}
	fields, err := r.formatFieldList(p.Value)
	if err != nil || fields == "" {
		return "", err
	}
	return "RETURNING " + fields, nil
}
