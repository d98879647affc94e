package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skelkit/skel/internal/cmdutil"
	"github.com/skelkit/skel/internal/config"
	"github.com/skelkit/skel/internal/output"
	"github.com/skelkit/skel/internal/prune"
)

// NewPruneCmd creates the prune command.
func NewPruneCmd(cfg *config.GlobalConfig) *cobra.Command {
	var (
		af         cmdutil.AnswerFlags
		schemaFlag string
		dirFlag    string
	)

	c := &cobra.Command{
		Use:   "prune",
		Short: "Remove paths of unselected options from a generated tree",
		Long: `Remove the files and directories that belong to options the user did
not select.

The schema file maps each option to the paths it owns:

  options:
    project_cli:              # removed unless the answer is yes
      - src/app/__main__.py
    project_githost:          # paths of every other label are removed
      github: [.github]
      gitlab: [.gitlab-ci.yml]

Every option in the schema needs an answer. A missing answer, a malformed
entry, or an unreadable yes/no answer aborts before anything is deleted.
Paths that are already gone are skipped.

Examples:
  skel prune --schema skel-prune.yaml --dir ./mock --set project_cli=no --set project_githost=gitlab
  skel prune --schema skel-prune.yaml --answers answers.yaml`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runPrune(c, cfg, &af, schemaFlag, dirFlag)
		},
	}

	c.Flags().StringVarP(&schemaFlag, "schema", "s", "", "Prune schema file (required)")
	c.Flags().StringVarP(&dirFlag, "dir", "d", ".", "Generated project root")
	af.AddTo(c)
	_ = c.MarkFlagRequired("schema")

	return c
}

func runPrune(c *cobra.Command, cfg *config.GlobalConfig, af *cmdutil.AnswerFlags, schemaPath, dir string) error {
	stderr := c.ErrOrStderr()

	schema, err := prune.LoadSchemaFile(schemaPath)
	if err != nil {
		return cmdutil.Fail(stderr, cmdutil.ConfigError(err, schemaPath, ""))
	}

	raw, err := af.Resolve(cfg.Config)
	if err != nil {
		return cmdutil.Fail(stderr, err)
	}

	ctx, err := prune.NewContext(raw)
	if err != nil {
		return cmdutil.Fail(stderr, cmdutil.ConfigError(err, "", ""))
	}

	removed, err := prune.Prune(dir, schema, ctx)
	if err != nil {
		var hint string
		if errors.Is(err, prune.ErrMissingKey) {
			hint = "Every option in the schema needs an answer. Pass it with --set or --answers."
		}
		return cmdutil.Fail(stderr, cmdutil.ConfigError(err, schemaPath, hint))
	}

	output.Debug("pruned project", "dir", dir, "removed", len(removed))
	if cfg.Verbose {
		for _, r := range removed {
			fmt.Fprintln(c.OutOrStdout(), output.FormatPathLine(r.Path, output.StatusRemoved))
		}
	}
	return nil
}
