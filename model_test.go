package sqlpart

import (
	"reflect"
	"testing"
)

func TestModel_FieldNames(t *testing.T) {
	m := NewModel("User", "user", "name", "id").WithColumn("createdAt", "created_at")

	want := []string{"createdAt", "id", "name"}
	if got := m.FieldNames(); !reflect.DeepEqual(got, want) {
		t.Errorf("FieldNames() = %v, want %v", got, want)
	}
}

func TestModel_NilReceiver(t *testing.T) {
	var m *Model

	if got := m.FieldNames(); got != nil {
		t.Errorf("FieldNames() = %v, want nil", got)
	}
	if _, ok := m.Column("id"); ok {
		t.Error("Column() on a nil model should not resolve")
	}
	if got := m.String(); got != "<nil>" {
		t.Errorf("String() = %q, want %q", got, "<nil>")
	}
}
