package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skelkit/skel/internal/config"
)

func TestNewRootCmd(t *testing.T) {
	root := NewRootCmd()

	assert.Equal(t, "skel", root.Use)
	for _, flag := range []string{"config", "verbose", "timestamps"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(flag), flag)
	}

	names := []string{}
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"validate", "prune", "generate", "variants", "schema", "config", "version"} {
		assert.Contains(t, names, want)
	}
}

func TestInitializeGlobals(t *testing.T) {
	t.Run("flag wins over env", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv("SKEL_CONFIG", filepath.Join(dir, "env.yaml"))
		flagPath := writeConfig(t, dir, "output: json\ngitInit: true\n")

		cfg := &config.GlobalConfig{}
		require.NoError(t, initializeGlobals(cfg, flagPath, false, nil))

		assert.Equal(t, flagPath, cfg.ConfigPath)
		assert.Equal(t, config.SourceFlag, cfg.ConfigSource)
		assert.Equal(t, "json", cfg.Config.Output)
		assert.True(t, cfg.Config.GitInit)
	})

	t.Run("invalid config falls back to defaults", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), "output: table\n")

		cfg := &config.GlobalConfig{}
		require.NoError(t, initializeGlobals(cfg, path, true, nil))

		assert.Equal(t, "yaml", cfg.Config.Output)
		assert.True(t, cfg.Verbose)
	})

	t.Run("missing config uses defaults", func(t *testing.T) {
		cfg := &config.GlobalConfig{}
		require.NoError(t, initializeGlobals(cfg, filepath.Join(t.TempDir(), "none.yaml"), false, nil))

		assert.Equal(t, "yaml", cfg.Config.Output)
		assert.False(t, cfg.Config.GitInit)
	})
}

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
