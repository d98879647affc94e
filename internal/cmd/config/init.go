package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/skelkit/skel/internal/cmdutil"
	"github.com/skelkit/skel/internal/config"
	oerrors "github.com/skelkit/skel/internal/errors"
	"github.com/skelkit/skel/internal/output"
)

const configHeader = `# skel configuration
#
# defaults:   answers applied to every generate run, e.g.
#               project_repository: https://github.com/me/placeholder
# gitInit:    initialize a git repository after generate
# output:     default format for structured output (yaml, json)
# log:
#   timestamps: show timestamps in log output

`

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd(cfg *config.GlobalConfig) *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Create a new skel configuration file",
		Long: `Create a new skel configuration file with default values.

The configuration file is created at ~/.skel/config.yaml by default.
Use --config flag or SKEL_CONFIG to specify a different location.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runInit(c, cfg, force)
		},
	}

	c.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config file")

	return c
}

func runInit(c *cobra.Command, cfg *config.GlobalConfig, force bool) error {
	path, err := config.ExpandPath(cfg.ConfigPath)
	if err != nil {
		return fmt.Errorf("expanding config path: %w", err)
	}

	exists, err := config.ConfigFileExists(path)
	if err != nil {
		return fmt.Errorf("checking config file: %w", err)
	}
	if exists && !force {
		return cmdutil.Fail(c.ErrOrStderr(), oerrors.NewValidationError(
			"config file already exists",
			path,
			"",
			"Use --force to overwrite it",
		))
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(config.DefaultConfig())
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	data = append([]byte(configHeader), data...)

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	output.Debug("wrote config file", "path", path, "source", cfg.ConfigSource)
	fmt.Fprintln(c.OutOrStdout(), output.FormatCheckmark("Config file created: "+path))
	return nil
}
