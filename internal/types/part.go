package types

import (
	"reflect"
	"sort"
)

// Part is one immutable node of a statement tree.
// This is exported from the internal package so dialect packages can use it,
// but external users cannot import this package.
//
// Field holds a field name (string), a 1-based column position (int) or a
// nested Part. Value holds nil (SQL NULL, or "absent" for modifier tags),
// a scalar, a list, an Object, a nested Part, a RawSQL or a sub-select.
type Part struct {
	Field any
	Value any
	Tag   Tag
}

// HasValue reports whether the part carries a value.
func (p Part) HasValue() bool {
	return p.Value != nil
}

// Equal reports whether two parts are structurally identical.
func (p Part) Equal(other Part) bool {
	return reflect.DeepEqual(p, other)
}

// RawSQL is a hand-written SQL fragment that still contributes to the
// value and field accumulators.
type RawSQL struct {
	SQL    string
	Values []any
	Fields []string
}

// Object maps field names to values. It is sugar for a conjunction of
// equality tests in conditions and for "key -> field" pairs in field lists.
type Object map[string]any

// Keys returns the object's keys in sorted order.
func (o Object) Keys() []string {
	keys := make([]string, 0, len(o))
	for k := range o {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

type undefined struct{}

func (undefined) String() string { return "undefined" }

// Undefined marks a value the caller failed to supply. It is always
// rejected at render time.
var Undefined any = undefined{}

// IsUndefined reports whether v is the Undefined marker.
func IsUndefined(v any) bool {
	_, ok := v.(undefined)
	return ok
}

// AsObject returns v as an Object if it is an Object or a map[string]any.
func AsObject(v any) (Object, bool) {
	switch o := v.(type) {
	case Object:
		return o, true
	case map[string]any:
		return Object(o), true
	}
	return nil, false
}

// AsPart returns v as a Part if it is a Part or a non-nil *Part.
func AsPart(v any) (Part, bool) {
	switch p := v.(type) {
	case Part:
		return p, true
	case *Part:
		if p != nil {
			return *p, true
		}
	}
	return Part{}, false
}

// AsList returns v as a list if it is a slice other than a byte slice.
// Typed slices such as []int are converted element by element. Arrays
// (uuid.UUID and friends) are scalars.
func AsList(v any) ([]any, bool) {
	switch l := v.(type) {
	case nil:
		return nil, false
	case []any:
		return l, true
	case []byte:
		return nil, false
	case []string:
		out := make([]any, len(l))
		for i := range l {
			out[i] = l[i]
		}
		return out, true
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice || rv.Type().Elem().Kind() == reflect.Uint8 {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}
