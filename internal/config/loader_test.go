package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoader(t *testing.T) {
	loader := NewLoader()
	assert.NotNil(t, loader)
	assert.NotNil(t, loader.v)
}

func TestLoaderLoad(t *testing.T) {
	t.Run("loads config from file", func(t *testing.T) {
		tmpDir := t.TempDir()
		configFile := filepath.Join(tmpDir, "config.yaml")

		content := `
log:
  timestamps: false
gitInit: true
output: json
defaults:
  project_repository: https://gitlab.com/mock/mock
  project_cli: "no"
`
		require.NoError(t, os.WriteFile(configFile, []byte(content), 0o644))

		cfg, err := NewLoader().Load(configFile)

		require.NoError(t, err)
		require.NotNil(t, cfg.Log.Timestamps)
		assert.False(t, *cfg.Log.Timestamps)
		assert.True(t, cfg.GitInit)
		assert.Equal(t, "json", cfg.Output)
		assert.Equal(t, "https://gitlab.com/mock/mock", cfg.Defaults["project_repository"])
		assert.Equal(t, "no", cfg.Defaults["project_cli"])
	})

	t.Run("returns empty config for missing file", func(t *testing.T) {
		configFile := filepath.Join(t.TempDir(), "nonexistent.yaml")

		cfg, err := NewLoader().Load(configFile)

		require.NoError(t, err)
		assert.Nil(t, cfg.Log.Timestamps)
		assert.Empty(t, cfg.Defaults)
	})

	t.Run("loads from environment variables", func(t *testing.T) {
		t.Setenv("SKEL_GIT_INIT", "true")
		t.Setenv("SKEL_OUTPUT", "json")

		configFile := filepath.Join(t.TempDir(), "empty.yaml")
		require.NoError(t, os.WriteFile(configFile, []byte(""), 0o644))

		cfg, err := NewLoader().Load(configFile)

		require.NoError(t, err)
		assert.True(t, cfg.GitInit)
		assert.Equal(t, "json", cfg.Output)
	})

	t.Run("env vars override file values", func(t *testing.T) {
		t.Setenv("SKEL_OUTPUT", "yaml")

		configFile := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(configFile, []byte("output: json\n"), 0o644))

		cfg, err := NewLoader().Load(configFile)

		require.NoError(t, err)
		assert.Equal(t, "yaml", cfg.Output)
	})

	t.Run("malformed yaml is an error", func(t *testing.T) {
		configFile := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(configFile, []byte("defaults: [unclosed\n"), 0o644))

		_, err := NewLoader().Load(configFile)
		assert.Error(t, err)
	})
}

func TestLoaderLoadWithDefaults(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("gitInit: true\n"), 0o644))

	cfg, err := NewLoader().LoadWithDefaults(configFile)
	require.NoError(t, err)
	assert.Equal(t, "yaml", cfg.Output)
	assert.True(t, cfg.GitInit)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("output: xml\n"), 0o644))
	_, err = NewLoader().LoadWithDefaults(bad)
	assert.Error(t, err)
}

func TestConfigFileExists(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "config.yaml")

	exists, err := ConfigFileExists(configFile)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, os.WriteFile(configFile, []byte(""), 0o644))
	exists, err = ConfigFileExists(configFile)
	require.NoError(t, err)
	assert.True(t, exists)
}
