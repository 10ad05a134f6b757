package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/zoobzio/sqlpart"
)

// NewRenderCommand creates the render command.
func NewRenderCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "render [document.yaml]",
		Short: "Render a statement document to SQL",
		Long: `Render a YAML statement document against its model and print the SQL,
the bound values and the output fields. The document is read from stdin
when no file is given or the file is "-".`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := configFrom(cmd)
			if err != nil {
				return err
			}
			st, err := prepare(cmd, cfg, args)
			if err != nil {
				return err
			}
			return renderResult(cmd.OutOrStdout(), st.result, cfg.Output)
		},
	}
}

// statement is a rendered document ready to print or run.
type statement struct {
	doc    *Document
	target target
	result *sqlpart.Result
}

// prepare loads the models and the document named by args and renders it
// for the configured dialect.
func prepare(cmd *cobra.Command, cfg *Config, args []string) (*statement, error) {
	t, ok := lookupTarget(cfg.Dialect)
	if !ok {
		return nil, fmt.Errorf("unknown dialect %q", cfg.Dialect)
	}
	models, err := LoadModels(cfg.Models)
	if err != nil {
		return nil, err
	}

	doc, err := readDocumentArg(cmd.InOrStdin(), args)
	if err != nil {
		return nil, err
	}
	model, ok := models.Lookup(doc.Model)
	if !ok {
		return nil, fmt.Errorf("unknown model %q", doc.Model)
	}

	opts := []sqlpart.Option{sqlpart.WithDialect(t.dialect)}
	if doc.Alias != "" {
		opts = append(opts, sqlpart.WithAlias(doc.Alias))
	}
	res, err := sqlpart.New(model, opts...).Render(doc.Statement)
	if err != nil {
		return nil, err
	}
	return &statement{doc: doc, target: t, result: res.Rebind(t.dialect)}, nil
}

func readDocumentArg(stdin io.Reader, args []string) (*Document, error) {
	if len(args) == 0 || args[0] == "-" {
		return ReadDocument(stdin)
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, fmt.Errorf("open document: %w", err)
	}
	defer f.Close()
	return ReadDocument(f)
}
