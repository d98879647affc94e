// Package config provides the config command group: init and vet.
package config

import (
	"github.com/spf13/cobra"

	"github.com/skelkit/skel/internal/config"
)

// NewConfigCmd creates the config command group.
func NewConfigCmd(cfg *config.GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "config",
		Short: "Manage the skel configuration file",
		Long: `Manage the skel configuration file.

The file lives at ~/.skel/config.yaml unless --config or SKEL_CONFIG points
elsewhere. It holds default answers for every generate and prune run, the
git-init default, the structured output format, and logging settings.`,
	}

	c.AddCommand(NewConfigInitCmd(cfg), NewConfigVetCmd(cfg))
	return c
}
