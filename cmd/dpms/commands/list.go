package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the packages in the mirror index",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, _ := cmd.Flags().GetString("output")
			if err := validateFormat(format); err != nil {
				return err
			}

			views, err := c.app.List(cmd.Context(), options(cmd))
			if err != nil {
				return err
			}

			if format == formatYAML {
				return writeYAML(cmd.OutOrStdout(), views)
			}
			return writePackageTable(cmd.OutOrStdout(), views)
		},
	}
	cmd.Flags().StringP("output", "o", formatText, "Output format: text or yaml")
	return cmd
}
