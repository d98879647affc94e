package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skelkit/skel/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show skel version information.

Displays:
  - skel version, commit, and build date
  - CUE SDK version (used to validate prune schemas)`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			fmt.Fprintln(c.OutOrStdout(), version.Get().String())
			return nil
		},
	}
}
