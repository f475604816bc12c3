package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <package>",
		Short: "Show a single package from the mirror index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("output")
			if err := validateFormat(format); err != nil {
				return err
			}

			view, err := c.app.Show(cmd.Context(), args[0], options(cmd))
			if err != nil {
				return err
			}

			if format == formatYAML {
				return writeYAML(cmd.OutOrStdout(), view)
			}
			return writePackage(cmd.OutOrStdout(), view)
		},
	}
	cmd.Flags().StringP("output", "o", formatText, "Output format: text or yaml")
	return cmd
}
