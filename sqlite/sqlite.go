// Package sqlite provides the SQLite dialect for sqlpart.
package sqlite

import (
	"strings"

	"github.com/zoobzio/sqlpart/internal/render"
)

// Dialect implements the SQLite dialect.
type Dialect struct{}

// New creates a new SQLite dialect.
func New() *Dialect {
	return &Dialect{}
}

// Name returns "sqlite".
func (d *Dialect) Name() string {
	return "sqlite"
}

// QuoteIdentifier quotes a SQLite identifier with double quotes.
func (d *Dialect) QuoteIdentifier(name string) string {
	escaped := strings.ReplaceAll(name, `"`, `""`)
	return `"` + escaped + `"`
}

// Placeholder returns "?"; SQLite binds positionally.
func (d *Dialect) Placeholder(int) string {
	return "?"
}

// Capabilities returns the SQL features supported by SQLite.
// RETURNING and NULLS FIRST/LAST require SQLite 3.35 and 3.30.
func (d *Dialect) Capabilities() render.Capabilities {
	return render.Capabilities{
		Returning:     true,
		NullsOrdering: true,
		LimitOffset:   true,
	}
}
