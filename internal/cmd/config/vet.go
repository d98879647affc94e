package config

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skelkit/skel/internal/cmdutil"
	"github.com/skelkit/skel/internal/config"
	oerrors "github.com/skelkit/skel/internal/errors"
	"github.com/skelkit/skel/internal/output"
)

// NewConfigVetCmd creates the config vet command.
func NewConfigVetCmd(cfg *config.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "vet",
		Short: "Validate the skel configuration file",
		Long: `Validate the skel configuration file.

Checks that the file parses, that every default answer is a valid option
name, and that output is one of yaml or json. Environment overrides
(SKEL_GIT_INIT, SKEL_OUTPUT, SKEL_LOG_TIMESTAMPS) are applied first.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runVet(c, cfg)
		},
	}
}

func runVet(c *cobra.Command, cfg *config.GlobalConfig) error {
	path, err := config.ExpandPath(cfg.ConfigPath)
	if err != nil {
		return fmt.Errorf("expanding config path: %w", err)
	}

	exists, err := config.ConfigFileExists(path)
	if err != nil {
		return fmt.Errorf("checking config file: %w", err)
	}
	if !exists {
		return cmdutil.Fail(c.ErrOrStderr(), oerrors.NewNotFoundError(
			"config file not found",
			path,
			"Run 'skel config init' to create one",
		))
	}

	if _, err := config.NewLoader().LoadWithDefaults(path); err != nil {
		return cmdutil.Fail(c.ErrOrStderr(), cmdutil.ConfigError(err, path, ""))
	}

	fmt.Fprintln(c.OutOrStdout(), output.FormatCheckmark("Config file is valid: "+path))
	return nil
}
