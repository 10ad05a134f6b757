package sqlpart

import (
	"github.com/zoobzio/sqlpart/internal/types"
)

// Formatters overrides how plain values are rendered. Each hook owns both
// the returned text and any accumulator update it needs. Sub-selects, Parts
// and raw fragments are never passed to a hook, and Undefined is rejected
// before any hook runs.
type Formatters struct {
	// Value, when set, renders every plain value.
	Value func(r *Renderer, value any) (string, error)

	// Array, when set, renders list values.
	Array func(r *Renderer, list []any) (string, error)

	// Object, when set, renders Object values.
	Object func(r *Renderer, object Object) (string, error)
}

// FormatValue renders a value position. Sub-selects are inlined in
// parentheses, Parts are dispatched by tag, raw fragments are spliced, and
// anything else is bound to a placeholder. formatters replaces the
// renderer's default overrides for this call.
func (r *Renderer) FormatValue(value any, formatters ...*Formatters) (string, error) {
	f := r.formatters
	if len(formatters) > 0 {
		f = formatters[0]
	}
	return r.formatValue(value, f)
}

func (r *Renderer) formatValue(value any, f *Formatters) (string, error) {
	if types.IsUndefined(value) {
		return "", r.undefined()
	}

	if sub, ok := asSubSelect(value); ok {
		return r.FormatSubSelect(sub)
	}
	if p, ok := types.AsPart(value); ok {
		return r.Format(p)
	}
	if raw, ok := asRaw(value); ok {
		return r.formatRawSQL(raw)
	}

	if f != nil {
		if f.Value != nil {
			return f.Value(r, value)
		}
		if list, ok := types.AsList(value); ok && f.Array != nil {
			return f.Array(r, list)
		}
		if obj, ok := types.AsObject(value); ok && f.Object != nil {
			return f.Object(r, obj)
		}
	}

	if err := r.checkDefined(value); err != nil {
		return "", err
	}
	r.AddValue(value)
	return Placeholder, nil
}

// checkDefined rejects lists and objects that carry Undefined members.
func (r *Renderer) checkDefined(value any) error {
	if list, ok := types.AsList(value); ok {
		for _, v := range list {
			if types.IsUndefined(v) {
				return r.undefined()
			}
		}
	}
	if obj, ok := types.AsObject(value); ok {
		for _, v := range obj {
			if types.IsUndefined(v) {
				return r.undefined()
			}
		}
	}
	return nil
}

func (r *Renderer) undefined() *Error {
	return r.errorf(ErrUndefinedValue, "value is `undefined`")
}

// asRaw returns v as a RawSQL if it is a RawSQL or a non-nil *RawSQL.
func asRaw(v any) (RawSQL, bool) {
	switch raw := v.(type) {
	case RawSQL:
		return raw, true
	case *RawSQL:
		if raw != nil {
			return *raw, true
		}
	}
	return RawSQL{}, false
}

// FormatRaw renders a raw part. Its value is either literal SQL or a RawSQL
// whose values and fields are appended to the accumulators.
func (r *Renderer) FormatRaw(p Part) (string, error) {
	if sql, ok := p.Value.(string); ok {
		return sql, nil
	}
	if raw, ok := asRaw(p.Value); ok {
		return r.formatRawSQL(raw)
	}
	if types.IsUndefined(p.Value) {
		return "", r.undefined()
	}
	return "", r.errorf(ErrInvalidPart, "raw value should be SQL text, got %T", p.Value)
}

func (r *Renderer) formatRawSQL(raw RawSQL) (string, error) {
	for _, v := range raw.Values {
		if types.IsUndefined(v) {
			return "", r.undefined()
		}
	}
	r.AddValues(raw.Values...)
	r.AddFields(raw.Fields...)
	return raw.SQL, nil
}
