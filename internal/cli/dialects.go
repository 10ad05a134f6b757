package cli

import (
	"sort"
	"strings"

	"github.com/zoobzio/sqlpart"
	"github.com/zoobzio/sqlpart/mariadb"
	"github.com/zoobzio/sqlpart/mssql"
	"github.com/zoobzio/sqlpart/postgres"
	"github.com/zoobzio/sqlpart/sqlite"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/microsoft/go-mssqldb"
	_ "modernc.org/sqlite"
)

// target pairs a dialect with the database/sql driver used to run it.
type target struct {
	dialect sqlpart.Dialect
	driver  string
}

var dialects = map[string]target{
	"ansi":     {sqlpart.ANSI, "sqlite"},
	"postgres": {postgres.New(), "pgx"},
	"sqlite":   {sqlite.New(), "sqlite"},
	"mssql":    {mssql.New(), "sqlserver"},
	"mariadb":  {mariadb.New(), "mysql"},
}

// DialectNames returns the supported dialect names in sorted order.
func DialectNames() []string {
	names := make([]string, 0, len(dialects))
	for name := range dialects {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func lookupTarget(name string) (target, bool) {
	t, ok := dialects[strings.ToLower(name)]
	return t, ok
}
