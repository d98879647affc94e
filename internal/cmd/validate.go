package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/skelkit/skel/internal/cmdutil"
	"github.com/skelkit/skel/internal/config"
	"github.com/skelkit/skel/internal/naming"
)

// NewValidateCmd creates the validate command.
func NewValidateCmd(_ *config.GlobalConfig) *cobra.Command {
	var grammarFlag string

	c := &cobra.Command{
		Use:   "validate <name>",
		Short: "Check a package name against a language grammar",
		Long: `Check a candidate package or crate name before generating a project.

Success is silent. On failure a single diagnostic is written to stderr and
the command exits with status 2.

Examples:
  # Check a Rust crate name
  skel validate my_crate --grammar rust

  # JavaScript package names may contain hyphens
  skel validate my-app --grammar javascript`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runValidate(c, grammarFlag, args[0])
		},
	}

	c.Flags().StringVarP(&grammarFlag, "grammar", "g", naming.Python.Name,
		fmt.Sprintf("Name grammar (%s)", strings.Join(naming.Names(), ", ")))

	return c
}

func runValidate(c *cobra.Command, grammar, candidate string) error {
	return cmdutil.Fail(c.ErrOrStderr(), naming.Validate(grammar, candidate))
}
