package sqlpart

import (
	"testing"
)

func TestQuote(t *testing.T) {
	r := New(userModel())
	assertSQL(t, `"order"`, r.Quote("order"))
	assertSQL(t, `"we""ird"`, r.Quote(`we"ird`))
}

func TestFormatAlias(t *testing.T) {
	if got := New(userModel()).FormatAlias(); got != "" {
		t.Errorf("FormatAlias() = %q, want empty", got)
	}
	if got := New(userModel(), WithAlias("foo")).FormatAlias(); got != `"foo"` {
		t.Errorf("FormatAlias() = %q, want %q", got, `"foo"`)
	}
}

func TestFormatTable(t *testing.T) {
	tests := []struct {
		name     string
		renderer *Renderer
		expected string
	}{
		{"plain", New(userModel()), `"user"`},
		{"schema", New(userWithSchema()), `"public"."user"`},
		{"alias", New(userModel(), WithAlias("foo")), `"user" AS "foo"`},
		{"schema and alias", New(userWithSchema(), WithAlias("foo")), `"public"."user" AS "foo"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.renderer.FormatTable()
			if err != nil {
				t.Fatalf("FormatTable() error = %v", err)
			}
			assertSQL(t, tt.expected, got)
		})
	}
}

func TestFormatTable_NotConfigured(t *testing.T) {
	r := New(NewModel("Foo", ""))
	_, err := r.FormatTable()
	assertRenderError(t, err, ErrTableNotConfigured, "`Foo.table` is not configured")
	if err.Error() != "Foo: `Foo.table` is not configured" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestFormatColumn(t *testing.T) {
	r := New(userModel())
	got, err := r.FormatColumn("id")
	if err != nil {
		t.Fatalf("FormatColumn() error = %v", err)
	}
	assertSQL(t, `"id"`, got)

	t.Run("custom column", func(t *testing.T) {
		r := New(NewModel("OtherUser", "user").WithColumn("id", "ID"))
		got, err := r.FormatColumn("id")
		if err != nil {
			t.Fatalf("FormatColumn() error = %v", err)
		}
		assertSQL(t, `"ID"`, got)
	})

	t.Run("unknown field", func(t *testing.T) {
		_, err := r.FormatColumn("nope")
		assertRenderError(t, err, ErrUnknownField, "unknown field `nope`")
	})

	t.Run("non-string field", func(t *testing.T) {
		_, err := r.FormatColumn(map[string]any{})
		assertRenderError(t, err, ErrUnknownField, "unknown field `map[]`")
	})
}

func TestFormatField(t *testing.T) {
	tests := []struct {
		name     string
		renderer *Renderer
		field    any
		expected string
	}{
		{"table qualified", New(userModel()), "id", `"user"."id"`},
		{"schema qualified", New(userWithSchema()), "id", `"public"."user"."id"`},
		{"alias qualified", New(userWithSchema(), WithAlias("u")), "name", `"u"."name"`},
		{"raw part", New(userModel()), Raw("COUNT(*)"), "COUNT(*)"},
		{"raw object", New(userModel()), RawSQL{SQL: "1"}, "1"},
		{"sub-select", New(userModel()), NewQuery(userModel()), `(SELECT FROM "user")`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.renderer.FormatField(tt.field)
			if err != nil {
				t.Fatalf("FormatField() error = %v", err)
			}
			assertSQL(t, tt.expected, got)
		})
	}
}

func TestFormatFrom(t *testing.T) {
	r := New(userModel())
	assertSQL(t, `FROM "user"`, mustFormat(t, r, From()))
}
