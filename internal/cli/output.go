package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/zoobzio/sqlpart"
)

type resultJSON struct {
	SQL    string   `json:"sql"`
	Values []any    `json:"values"`
	Fields []string `json:"fields"`
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// renderResult prints a rendered statement.
func renderResult(w io.Writer, res *sqlpart.Result, format string) error {
	if format == "json" {
		out := resultJSON{SQL: res.SQL, Values: res.Values, Fields: res.Fields}
		if out.Values == nil {
			out.Values = []any{}
		}
		if out.Fields == nil {
			out.Fields = []string{}
		}
		return writeJSON(w, out)
	}

	_, _ = fmt.Fprintln(w, res.SQL)
	if len(res.Values) > 0 {
		t := table.NewWriter()
		t.SetOutputMirror(w)
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"#", "Value", "Type"})
		for i, v := range res.Values {
			t.AppendRow(table.Row{i + 1, formatCell(v), fmt.Sprintf("%T", v)})
		}
		t.Render()
	}
	if len(res.Fields) > 0 {
		_, _ = fmt.Fprintf(w, "fields: %s\n", strings.Join(res.Fields, ", "))
	}
	return nil
}

// renderRows prints fetched rows. columns fixes the column order; when it
// is empty the keys of the first row are used in sorted order.
func renderRows(w io.Writer, columns []string, rows []map[string]any, format string) error {
	if format == "json" {
		if rows == nil {
			rows = []map[string]any{}
		}
		return writeJSON(w, rows)
	}

	if len(rows) == 0 {
		_, _ = fmt.Fprintln(w, "(0 rows)")
		return nil
	}
	if len(columns) == 0 {
		for k := range rows[0] {
			columns = append(columns, k)
		}
		sort.Strings(columns)
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	header := make(table.Row, len(columns))
	for i, c := range columns {
		header[i] = c
	}
	t.AppendHeader(header)
	for _, row := range rows {
		r := make(table.Row, len(columns))
		for i, c := range columns {
			r[i] = formatCell(row[c])
		}
		t.AppendRow(r)
	}
	t.Render()
	_, _ = fmt.Fprintf(w, "(%d rows)\n", len(rows))
	return nil
}

// renderModels prints the loaded models.
func renderModels(w io.Writer, models []*sqlpart.Model, format string) error {
	if format == "json" {
		type modelJSON struct {
			Name    string            `json:"name"`
			Table   string            `json:"table"`
			Schema  string            `json:"schema,omitempty"`
			Columns map[string]string `json:"columns"`
		}
		out := make([]modelJSON, len(models))
		for i, m := range models {
			out[i] = modelJSON{Name: m.Name, Table: m.Table, Schema: m.Schema, Columns: m.Columns}
		}
		return writeJSON(w, out)
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Model", "Table", "Schema", "Fields"})
	for _, m := range models {
		fields := m.FieldNames()
		for i, f := range fields {
			if column, _ := m.Column(f); column != f {
				fields[i] = f + " -> " + column
			}
		}
		t.AppendRow(table.Row{m.Name, m.Table, m.Schema, strings.Join(fields, ", ")})
	}
	t.Render()
	return nil
}

func formatCell(v any) string {
	switch val := v.(type) {
	case nil:
		return "NULL"
	case []byte:
		return string(val)
	}
	return fmt.Sprint(v)
}
