package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the mirror index and report skipped lines",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			report, err := c.app.Check(cmd.Context(), options(cmd))
			if report.IndexPath != "" {
				out := cmd.OutOrStdout()
				_, _ = fmt.Fprintf(out, "index:    %s\n", report.IndexPath)
				_, _ = fmt.Fprintf(out, "packages: %d\n", report.Packages)
				_, _ = fmt.Fprintf(out, "problems: %d\n", report.Problems)
				_, _ = fmt.Fprintf(out, "hash:     %s\n", report.IndexHash)
			}
			return err
		},
	}
}
