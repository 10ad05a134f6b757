package cli

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zoobzio/sqlpart"
)

// NewRunCommand creates the run command.
func NewRunCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "run [document.yaml]",
		Short: "Render a statement document and run it on a database",
		Long: `Render a YAML statement document and run it on the database named by
--database, using the driver of the configured dialect. SELECT statements
print the fetched rows keyed by their output fields; other statements print
the number of affected rows.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := configFrom(cmd)
			if err != nil {
				return err
			}
			if cfg.Database == "" {
				return fmt.Errorf("no database configured (set --database or SQLPART_DATABASE)")
			}
			st, err := prepare(cmd, cfg, args)
			if err != nil {
				return err
			}

			db, err := sql.Open(st.target.driver, cfg.Database)
			if err != nil {
				return fmt.Errorf("open %s database: %w", st.target.driver, err)
			}
			defer db.Close()

			ctx := cmd.Context()
			if st.doc.Statement.Tag == sqlpart.TagSelect {
				rows, err := sqlpart.Fetch(ctx, db, st.result)
				if err != nil {
					return fmt.Errorf("run %s: %w", st.doc.Model, err)
				}
				return renderRows(cmd.OutOrStdout(), st.result.Fields, rows, cfg.Output)
			}

			result, err := sqlpart.Exec(ctx, db, st.result)
			if err != nil {
				return fmt.Errorf("run %s: %w", st.doc.Model, err)
			}
			affected, err := result.RowsAffected()
			if err != nil {
				return fmt.Errorf("rows affected: %w", err)
			}
			if cfg.Output == "json" {
				return writeJSON(cmd.OutOrStdout(), map[string]int64{"rows_affected": affected})
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d rows affected\n", affected)
			return nil
		},
	}
}
