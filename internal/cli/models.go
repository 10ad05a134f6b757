package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/zoobzio/dbml"
	"github.com/zoobzio/sqlpart"
	"gopkg.in/yaml.v3"
)

// ModelsFile is the YAML schema file read by the CLI. Tables are built into
// a DBML project and converted to models; the optional model and field keys
// rename the model and map field names onto differently named columns.
//
//	project: shop
//	tables:
//	  - name: user
//	    model: User
//	    schema: public
//	    columns:
//	      - {name: id, type: bigint}
//	      - {name: full_name, type: text, field: name}
type ModelsFile struct {
	Project string       `yaml:"project"`
	Tables  []TableEntry `yaml:"tables"`
}

// TableEntry describes one table of a models file.
type TableEntry struct {
	Name    string        `yaml:"name"`
	Model   string        `yaml:"model"`
	Schema  string        `yaml:"schema"`
	Columns []ColumnEntry `yaml:"columns"`
}

// ColumnEntry describes one column of a table entry.
type ColumnEntry struct {
	Name  string `yaml:"name"`
	Type  string `yaml:"type"`
	Field string `yaml:"field"`
}

// Models indexes models by both model name and table name.
type Models struct {
	byName map[string]*sqlpart.Model
	list   []*sqlpart.Model
}

// Lookup finds a model by model name or table name.
func (m *Models) Lookup(name string) (*sqlpart.Model, bool) {
	model, ok := m.byName[name]
	return model, ok
}

// List returns the models in file order.
func (m *Models) List() []*sqlpart.Model {
	return m.list
}

// LoadModels reads a models file from path.
func LoadModels(path string) (*Models, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open models file: %w", err)
	}
	defer f.Close()
	return ReadModels(f)
}

// ReadModels decodes a models file.
func ReadModels(r io.Reader) (*Models, error) {
	var file ModelsFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("decode models file: %w", err)
	}

	project := dbml.NewProject(file.Project)
	for i, entry := range file.Tables {
		if entry.Name == "" {
			return nil, fmt.Errorf("table %d has no name", i)
		}
		table := dbml.NewTable(entry.Name)
		for _, col := range entry.Columns {
			table.AddColumn(dbml.NewColumn(col.Name, col.Type))
		}
		project.AddTable(table)
	}

	byTable, err := sqlpart.ModelsFromDBML(project)
	if err != nil {
		return nil, err
	}

	models := &Models{byName: make(map[string]*sqlpart.Model)}
	for _, entry := range file.Tables {
		model := byTable[entry.Name]
		if entry.Model != "" {
			model.Name = entry.Model
		}
		if entry.Schema != "" {
			model.WithSchema(entry.Schema)
		}
		for _, col := range entry.Columns {
			if col.Field != "" && col.Field != col.Name {
				delete(model.Columns, col.Name)
				model.WithColumn(col.Field, col.Name)
			}
		}
		if _, dup := models.byName[model.Name]; dup {
			return nil, fmt.Errorf("duplicate model %q", model.Name)
		}
		models.byName[model.Name] = model
		models.byName[model.Table] = model
		models.list = append(models.list, model)
	}
	return models, nil
}
