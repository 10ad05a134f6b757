package sqlpart

import (
	"github.com/zoobzio/sqlpart/internal/types"
)

// Quote quotes an identifier for the renderer's dialect.
func (r *Renderer) Quote(identifier string) string {
	return r.dialect.QuoteIdentifier(identifier)
}

// FormatAlias returns the quoted alias, or "" if none is set.
func (r *Renderer) FormatAlias() string {
	if r.alias == "" {
		return ""
	}
	return r.Quote(r.alias)
}

// qualifiedTable returns the quoted, schema-qualified table name without
// the alias.
func (r *Renderer) qualifiedTable() (string, error) {
	if r.model == nil || r.model.Table == "" {
		return "", r.errorf(ErrTableNotConfigured, "`%s.table` is not configured", r.model.String())
	}
	table := r.Quote(r.model.Table)
	if r.model.Schema != "" {
		table = r.Quote(r.model.Schema) + "." + table
	}
	return table, nil
}

// FormatTable returns the quoted table name, qualified by the schema and
// followed by `AS alias` when an alias is set.
func (r *Renderer) FormatTable() (string, error) {
	table, err := r.qualifiedTable()
	if err != nil {
		return "", err
	}
	if r.alias != "" {
		table += " AS " + r.FormatAlias()
	}
	return table, nil
}

// FormatColumn returns the quoted, unqualified column for a field name.
func (r *Renderer) FormatColumn(field any) (string, error) {
	name, ok := field.(string)
	if !ok {
		return "", r.errorf(ErrUnknownField, "unknown field `%v`", field)
	}
	column, ok := r.model.Column(name)
	if !ok {
		return "", r.errorf(ErrUnknownField, "unknown field `%s`", name)
	}
	return r.Quote(column), nil
}

// FormatField returns a column qualified by the alias or the table. Parts,
// sub-selects and raw fragments are formatted as values instead.
func (r *Renderer) FormatField(field any) (string, error) {
	if isExpression(field) {
		return r.FormatValue(field)
	}
	column, err := r.FormatColumn(field)
	if err != nil {
		return "", err
	}
	if r.alias != "" {
		return r.FormatAlias() + "." + column, nil
	}
	table, err := r.qualifiedTable()
	if err != nil {
		return "", err
	}
	return table + "." + column, nil
}

// isExpression reports whether v renders as SQL rather than binding a value.
func isExpression(v any) bool {
	if _, ok := types.AsPart(v); ok {
		return true
	}
	if _, ok := asSubSelect(v); ok {
		return true
	}
	_, ok := asRaw(v)
	return ok
}

func (r *Renderer) formatFrom() (string, error) {
	table, err := r.FormatTable()
	if err != nil {
		return "", err
	}
	return "FROM " + table, nil
}

func (r *Renderer) formatInto() (string, error) {
	table, err := r.FormatTable()
	if err != nil {
		return "", err
	}
	return "INTO " + table, nil
}
