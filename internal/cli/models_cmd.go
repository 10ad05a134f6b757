package cli

import "github.com/spf13/cobra"

// NewModelsCommand creates the models command.
func NewModelsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List the models of the models file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := configFrom(cmd)
			if err != nil {
				return err
			}
			models, err := LoadModels(cfg.Models)
			if err != nil {
				return err
			}
			return renderModels(cmd.OutOrStdout(), models.List(), cfg.Output)
		},
	}
}
