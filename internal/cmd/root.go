// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	cmdconfig "github.com/skelkit/skel/internal/cmd/config"
	"github.com/skelkit/skel/internal/config"
	"github.com/skelkit/skel/internal/output"
)

// NewRootCmd creates the root command for the skel CLI.
func NewRootCmd() *cobra.Command {
	cfg := &config.GlobalConfig{Config: config.DefaultConfig()}

	var (
		configFlag     string
		verboseFlag    bool
		timestampsFlag bool
	)

	rootCmd := &cobra.Command{
		Use:   "skel",
		Short: "Project skeleton generator",
		Long: `skel generates project skeletons from embedded template variants and
prunes the files that belong to options you did not select.

It can also run its two hooks on their own: validate a package name before
generation, and prune an existing tree against a schema file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			var timestamps *bool
			if c.Flags().Changed("timestamps") {
				timestamps = output.BoolPtr(timestampsFlag)
			}
			return initializeGlobals(cfg, configFlag, verboseFlag, timestamps)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to config file (env: SKEL_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&timestampsFlag, "timestamps", true, "Show timestamps in log output")

	rootCmd.AddCommand(NewValidateCmd(cfg))
	rootCmd.AddCommand(NewPruneCmd(cfg))
	rootCmd.AddCommand(NewGenerateCmd(cfg))
	rootCmd.AddCommand(NewVariantsCmd(cfg))
	rootCmd.AddCommand(NewSchemaCmd(cfg))
	rootCmd.AddCommand(cmdconfig.NewConfigCmd(cfg))
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initializeGlobals loads configuration and sets up logging. A config file
// that cannot be loaded is logged and replaced by defaults so commands that
// do not need it still work; config vet reports the problem.
func initializeGlobals(cfg *config.GlobalConfig, configFlag string, verbose bool, timestampsFlag *bool) error {
	cfg.Verbose = verbose

	path, err := config.ResolveConfigPath(config.ResolveConfigPathOptions{FlagValue: configFlag})
	if err != nil {
		return err
	}
	cfg.ConfigPath = path.ConfigPath
	cfg.ConfigSource = path.Source

	loaded, loadErr := config.NewLoader().LoadWithDefaults(path.ConfigPath)
	if loadErr == nil {
		cfg.Config = loaded
	} else {
		cfg.Config = config.DefaultConfig()
	}

	timestamps := config.ResolveTimestamps(timestampsFlag, cfg.Config)
	output.SetupLogging(output.LogConfig{
		Verbose:    verbose,
		Timestamps: output.BoolPtr(timestamps.Value.(bool)),
	})

	if loadErr != nil {
		output.Debug("config load error", "path", path.ConfigPath, "error", loadErr)
	}

	if verbose {
		config.LogResolvedValues([]config.ResolvedValue{
			{Key: "config", Value: path.ConfigPath, Source: path.Source, Shadowed: path.Shadowed},
			timestamps,
		})
	}

	return nil
}
