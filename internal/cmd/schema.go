package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/skelkit/skel/internal/cmdutil"
	"github.com/skelkit/skel/internal/config"
	oerrors "github.com/skelkit/skel/internal/errors"
	"github.com/skelkit/skel/internal/output"
	"github.com/skelkit/skel/internal/prune"
	"github.com/skelkit/skel/internal/templates"
)

// NewSchemaCmd creates the schema command group.
func NewSchemaCmd(cfg *config.GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "schema",
		Short: "Inspect and check prune schemas",
	}

	c.AddCommand(newSchemaShowCmd(cfg))
	c.AddCommand(newSchemaVetCmd())
	c.AddCommand(newSchemaDiffCmd())

	return c
}

func newSchemaShowCmd(cfg *config.GlobalConfig) *cobra.Command {
	var outputFlag string

	c := &cobra.Command{
		Use:   "show <variant>",
		Short: "Print a variant's prune schema",
		Long: `Print the prune schema embedded in a template variant. The output is a
valid schema file for skel prune.`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			format := outputFlag
			if !c.Flags().Changed("output") && cfg.Config != nil && cfg.Config.Output != "" {
				format = cfg.Config.Output
			}
			return runSchemaShow(c, args[0], format)
		},
	}

	c.Flags().StringVarP(&outputFlag, "output", "o", "yaml", "Output format: yaml, json")

	return c
}

func runSchemaShow(c *cobra.Command, name, format string) error {
	f, ok := output.ParseFormat(format)
	if !ok || f == output.FormatTable {
		return cmdutil.Fail(c.ErrOrStderr(), oerrors.NewValidationError(
			fmt.Sprintf("unsupported output format %q", format),
			"",
			"output",
			"Use yaml or json",
		))
	}

	variant, err := templates.Get(name)
	if err != nil {
		return cmdutil.Fail(c.ErrOrStderr(), err)
	}

	data, err := output.Marshal(variant.Schema.Document(), f)
	if err != nil {
		return cmdutil.Fail(c.ErrOrStderr(), err)
	}
	_, err = c.OutOrStdout().Write(data)
	return err
}

func newSchemaVetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vet <file>",
		Short: "Validate a prune schema file",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			schema, err := prune.LoadSchemaFile(args[0])
			if err != nil {
				return cmdutil.Fail(c.ErrOrStderr(), cmdutil.ConfigError(err, args[0], ""))
			}
			fmt.Fprintf(c.OutOrStdout(), "%s (%s)\n",
				output.FormatCheckmark("Schema is valid: "+args[0]),
				strings.Join(schema.Names(), ", "))
			return nil
		},
	}
}

func newSchemaDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff <variant> <file>",
		Short: "Compare a prune schema file with a variant's schema",
		Long: `Compare a prune schema file with the schema embedded in a template
variant. Both sides are normalized first, so ordering and formatting do not
count as differences.

Exits 0 when the schemas match and 1 when they differ.`,
		Args: cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			return runSchemaDiff(c, args[0], args[1])
		},
	}
}

func runSchemaDiff(c *cobra.Command, name, path string) error {
	stderr := c.ErrOrStderr()

	variant, err := templates.Get(name)
	if err != nil {
		return cmdutil.Fail(stderr, err)
	}

	schema, err := prune.LoadSchemaFile(path)
	if err != nil {
		return cmdutil.Fail(stderr, cmdutil.ConfigError(err, path, ""))
	}

	embedded, err := yaml.Marshal(variant.Schema.Document())
	if err != nil {
		return fmt.Errorf("marshaling %s schema: %w", name, err)
	}
	local, err := yaml.Marshal(schema.Document())
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", path, err)
	}

	diff, err := output.DiffYAML(name, embedded, path, local, output.IsTTY())
	if err != nil {
		return cmdutil.Fail(stderr, err)
	}

	w := c.OutOrStdout()
	if diff == "" {
		fmt.Fprintln(w, output.FormatCheckmark(fmt.Sprintf("%s matches the %s schema", path, name)))
		return nil
	}

	fmt.Fprintln(w, diff)
	exitErr := oerrors.NewExitError(fmt.Errorf("%s differs from the %s schema", path, name), oerrors.ExitGeneralError)
	exitErr.Printed = true
	return exitErr
}
