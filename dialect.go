package sqlpart

import (
	"strings"

	"github.com/zoobzio/sqlpart/internal/render"
)

// Capabilities describes the optional clauses a dialect can render.
type Capabilities = render.Capabilities

// UnsupportedFeatureError is the cause of an ErrUnsupported render error.
type UnsupportedFeatureError = render.UnsupportedFeatureError

// Dialect adapts rendering to one SQL flavor. Identifiers are quoted at
// render time; placeholders are always rendered as the neutral "?" and
// rewritten afterwards with Rebind.
type Dialect interface {
	// Name identifies the dialect in error messages.
	Name() string

	// QuoteIdentifier quotes a table, schema, alias or column name.
	QuoteIdentifier(name string) string

	// Placeholder returns the bind marker for the n-th value, starting at 1.
	Placeholder(n int) string

	// Capabilities reports which optional clauses the dialect supports.
	Capabilities() Capabilities
}

// Placeholder is the neutral positional bind marker in rendered SQL.
const Placeholder = "?"

type ansi struct{}

// ANSI is the default dialect: double-quoted identifiers, "?" placeholders.
var ANSI Dialect = ansi{}

func (ansi) Name() string { return "ANSI" }

func (ansi) QuoteIdentifier(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func (ansi) Placeholder(int) string { return Placeholder }

func (ansi) Capabilities() Capabilities { return render.Full }

// IdentifierQuoter is implemented by dialects that quote identifiers with
// characters other than double quotes or backticks. Rebind and
// CountPlaceholders skip sections opened by them.
type IdentifierQuoter interface {
	IdentifierQuotes() (left, right byte)
}

func quotesOf(d Dialect) []render.Quote {
	q, ok := d.(IdentifierQuoter)
	if !ok {
		return nil
	}
	left, right := q.IdentifierQuotes()
	return []render.Quote{{Open: left, Close: right}}
}

// Rebind rewrites the neutral placeholders of query into d's form.
func Rebind(d Dialect, query string) string {
	if d == nil {
		return query
	}
	return render.Rebind(query, d.Placeholder, quotesOf(d)...)
}

// CountPlaceholders returns the number of neutral placeholders in query,
// ignoring quoted sections and comments. When a dialect is given, its
// identifier quotes are skipped as well.
func CountPlaceholders(query string, d ...Dialect) int {
	var quotes []render.Quote
	if len(d) > 0 && d[0] != nil {
		quotes = quotesOf(d[0])
	}
	return render.Count(query, quotes...)
}
