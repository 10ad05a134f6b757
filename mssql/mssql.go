// Package mssql provides the SQL Server dialect for sqlpart.
//
// SQL Server has no LIMIT/OFFSET, RETURNING or NULLS FIRST/LAST; statements
// using them fail with sqlpart.ErrUnsupported.
package mssql

import (
	"strconv"
	"strings"

	"github.com/zoobzio/sqlpart/internal/render"
)

// Dialect implements the SQL Server dialect.
type Dialect struct{}

// New creates a new SQL Server dialect.
func New() *Dialect {
	return &Dialect{}
}

// Name returns "mssql".
func (d *Dialect) Name() string {
	return "mssql"
}

// QuoteIdentifier quotes an identifier with square brackets.
func (d *Dialect) QuoteIdentifier(name string) string {
	escaped := strings.ReplaceAll(name, "]", "]]")
	return "[" + escaped + "]"
}

// IdentifierQuotes returns the square brackets used by QuoteIdentifier.
func (d *Dialect) IdentifierQuotes() (left, right byte) {
	return '[', ']'
}

// Placeholder returns the named ordinal placeholder @pN.
func (d *Dialect) Placeholder(n int) string {
	return "@p" + strconv.Itoa(n)
}

// Capabilities returns the SQL features supported by SQL Server.
func (d *Dialect) Capabilities() render.Capabilities {
	return render.Capabilities{
		Returning:     false,
		NullsOrdering: false,
		LimitOffset:   false,
	}
}
