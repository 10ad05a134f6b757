package sqlpart

import (
	"errors"
	"fmt"

	"github.com/zoobzio/sqlpart/internal/render"
)

// Sentinel errors matched by *Error via errors.Is.
var (
	// ErrTableNotConfigured is returned when the model has no table name.
	ErrTableNotConfigured = errors.New("sqlpart: table not configured")

	// ErrUnknownField is returned when a field name is not mapped by the model.
	ErrUnknownField = errors.New("sqlpart: unknown field")

	// ErrUndefinedValue is returned when a value position holds Undefined.
	ErrUndefinedValue = errors.New("sqlpart: undefined value")

	// ErrNotInteger is returned when a LIMIT or OFFSET value is not an integer.
	ErrNotInteger = errors.New("sqlpart: value is not an integer")

	// ErrInvalidPart is returned when a part has the wrong shape for its tag.
	ErrInvalidPart = errors.New("sqlpart: invalid part")

	// ErrUnsupported is returned when the dialect cannot render a clause.
	ErrUnsupported = render.ErrUnsupported
)

// Error is raised for any input the renderer cannot turn into SQL.
// It carries the model name, a message and the renderer that failed, whose
// accumulators must not be reused.
type Error struct {
	Renderer *Renderer
	Kind     error
	cause    error
	Model    string
	Message  string
}

// Error returns "<Model>: <message>".
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Model, e.Message)
}

// Is reports whether target is the error's kind.
func (e *Error) Is(target error) bool {
	return e.Kind != nil && target == e.Kind
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.cause
}

// IsRenderError reports whether err is, or wraps, an *Error.
func IsRenderError(err error) bool {
	var e *Error
	return errors.As(err, &e)
}

func (r *Renderer) errorf(kind error, format string, args ...any) *Error {
	return &Error{
		Renderer: r,
		Kind:     kind,
		Model:    r.model.String(),
		Message:  fmt.Sprintf(format, args...),
	}
}

func (r *Renderer) unsupported(feature string, hint ...string) *Error {
	cause := render.NewUnsupportedFeatureError(r.dialect.Name(), feature, hint...)
	return &Error{
		Renderer: r,
		Kind:     ErrUnsupported,
		cause:    cause,
		Model:    r.model.String(),
		Message:  cause.Error(),
	}
}
