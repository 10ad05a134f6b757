// Package mariadb provides the MariaDB/MySQL dialect for sqlpart.
package mariadb

import (
	"strings"

	"github.com/zoobzio/sqlpart/internal/render"
)

// Dialect implements the MariaDB dialect.
type Dialect struct{}

// New creates a new MariaDB dialect.
func New() *Dialect {
	return &Dialect{}
}

// Name returns "mariadb".
func (d *Dialect) Name() string {
	return "mariadb"
}

// QuoteIdentifier quotes an identifier with backticks.
func (d *Dialect) QuoteIdentifier(name string) string {
	escaped := strings.ReplaceAll(name, "`", "``")
	return "`" + escaped + "`"
}

// Placeholder returns "?".
func (d *Dialect) Placeholder(int) string {
	return "?"
}

// Capabilities returns the SQL features supported by MariaDB.
// RETURNING is available on INSERT since MariaDB 10.5.
func (d *Dialect) Capabilities() render.Capabilities {
	return render.Capabilities{
		Returning:     true,
		NullsOrdering: false,
		LimitOffset:   true,
	}
}
