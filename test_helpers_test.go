package sqlpart

import (
	"reflect"
	"testing"
)

// userModel mirrors the user table used throughout the renderer tests.
func userModel() *Model {
	return NewModel("User", "user", "id", "name", "description", "confirmed")
}

// userWithSchema is userModel qualified by the public schema.
func userWithSchema() *Model {
	return userModel().WithSchema("public")
}

// mustFormat formats p with r and fails the test on error.
func mustFormat(t *testing.T, r *Renderer, p Part) string {
	t.Helper()
	sql, err := r.Format(p)
	if err != nil {
		t.Fatalf("Format(%s) error = %v", p.Tag, err)
	}
	return sql
}

func assertSQL(t *testing.T, expected, actual string) {
	t.Helper()
	if expected != actual {
		t.Errorf("SQL mismatch:\nExpected: %s\nActual:   %s", expected, actual)
	}
}

func assertValues(t *testing.T, r *Renderer, expected ...any) {
	t.Helper()
	if len(expected) == 0 && len(r.Values()) == 0 {
		return
	}
	if !reflect.DeepEqual(r.Values(), expected) {
		t.Errorf("Values = %#v, want %#v", r.Values(), expected)
	}
}

func assertFields(t *testing.T, r *Renderer, expected ...string) {
	t.Helper()
	if len(expected) == 0 && len(r.Fields()) == 0 {
		return
	}
	if !reflect.DeepEqual(r.Fields(), expected) {
		t.Errorf("Fields = %v, want %v", r.Fields(), expected)
	}
}

// assertRenderError checks that err is an *Error of the given kind with
// message "<model>: <message>".
func assertRenderError(t *testing.T, err, kind error, message string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error %q, got nil", message)
	}
	e, ok := err.(*Error)
	if !ok {
		t.Fatalf("error type = %T, want *Error", err)
	}
	if e.Kind != kind {
		t.Errorf("Kind = %v, want %v", e.Kind, kind)
	}
	if e.Message != message {
		t.Errorf("Message = %q, want %q", e.Message, message)
	}
	if e.Renderer == nil {
		t.Error("Renderer should be set")
	}
}
