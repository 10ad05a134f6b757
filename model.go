package sqlpart

import (
	"fmt"
	"sort"

	"github.com/zoobzio/dbml"
)

// Model describes the table a Renderer renders against.
// Name is used to prefix error messages; Columns maps field names to
// column names.
type Model struct {
	Columns map[string]string
	Name    string
	Table   string
	Schema  string
}

// NewModel creates a model whose fields map to identically named columns.
func NewModel(name, table string, fields ...string) *Model {
	m := &Model{
		Name:    name,
		Table:   table,
		Columns: make(map[string]string, len(fields)),
	}
	for _, f := range fields {
		m.Columns[f] = f
	}
	return m
}

// WithSchema sets the schema that qualifies the table name.
func (m *Model) WithSchema(schema string) *Model {
	m.Schema = schema
	return m
}

// WithColumn maps a field to a column with a different name.
func (m *Model) WithColumn(field, column string) *Model {
	if m.Columns == nil {
		m.Columns = make(map[string]string)
	}
	m.Columns[field] = column
	return m
}

// Column returns the column name for a field.
func (m *Model) Column(field string) (string, bool) {
	if m == nil {
		return "", false
	}
	column, ok := m.Columns[field]
	return column, ok
}

// FieldNames returns the model's field names in sorted order.
func (m *Model) FieldNames() []string {
	if m == nil {
		return nil
	}
	names := make([]string, 0, len(m.Columns))
	for name := range m.Columns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// String returns the model name.
func (m *Model) String() string {
	if m == nil {
		return "<nil>"
	}
	return m.Name
}

// ModelFromDBML creates a model from a DBML table. Every column becomes a
// field of the same name.
func ModelFromDBML(table *dbml.Table) (*Model, error) {
	if table == nil {
		return nil, fmt.Errorf("table cannot be nil")
	}
	m := &Model{
		Name:    table.Name,
		Table:   table.Name,
		Columns: make(map[string]string),
	}
	for _, col := range table.Columns {
		m.Columns[col.Name] = col.Name
	}
	return m, nil
}

// ModelsFromDBML creates one model per table of a DBML project, keyed by
// table name.
func ModelsFromDBML(project *dbml.Project) (map[string]*Model, error) {
	if project == nil {
		return nil, fmt.Errorf("project cannot be nil")
	}
	models := make(map[string]*Model)
	for _, table := range project.Tables {
		m, err := ModelFromDBML(table)
		if err != nil {
			return nil, err
		}
		models[m.Table] = m
	}
	return models, nil
}
