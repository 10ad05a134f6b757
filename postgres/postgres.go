// Package postgres provides the PostgreSQL dialect for sqlpart.
package postgres

import (
	"strconv"
	"strings"

	"github.com/zoobzio/sqlpart/internal/render"
)

// Dialect implements the PostgreSQL dialect.
type Dialect struct{}

// New creates a new PostgreSQL dialect.
func New() *Dialect {
	return &Dialect{}
}

// Name returns "postgres".
func (d *Dialect) Name() string {
	return "postgres"
}

// QuoteIdentifier quotes a PostgreSQL identifier to handle reserved words and special characters.
func (d *Dialect) QuoteIdentifier(name string) string {
	// Embedded double quotes are escaped by doubling them
	escaped := strings.ReplaceAll(name, `"`, `""`)
	return `"` + escaped + `"`
}

// Placeholder returns the numbered placeholder $n.
func (d *Dialect) Placeholder(n int) string {
	return "$" + strconv.Itoa(n)
}

// Capabilities returns the SQL features supported by PostgreSQL.
func (d *Dialect) Capabilities() render.Capabilities {
	return render.Capabilities{
		Returning:     true,
		NullsOrdering: true,
		LimitOffset:   true,
	}
}
