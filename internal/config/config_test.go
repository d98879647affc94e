package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/skelkit/skel/internal/errors"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "yaml", cfg.Output)
	assert.NotNil(t, cfg.Defaults)
	assert.Nil(t, cfg.Log.Timestamps)
	assert.False(t, cfg.GitInit)
}

func TestConfig_WithDefaults(t *testing.T) {
	cfg := (&Config{Output: "json"}).WithDefaults()
	assert.Equal(t, "json", cfg.Output, "set values are kept")
	assert.NotNil(t, cfg.Defaults)

	empty := (&Config{}).WithDefaults()
	assert.Equal(t, "yaml", empty.Output)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name: "valid",
			cfg: Config{
				Defaults: map[string]string{"project_repository": "https://github.com/mock/mock"},
				Output:   "json",
			},
		},
		{
			name: "empty",
			cfg:  Config{},
		},
		{
			name:    "bad option name",
			cfg:     Config{Defaults: map[string]string{"project-cli": "yes"}},
			wantErr: "'project-cli' must be a template option name",
		},
		{
			name:    "bad output",
			cfg:     Config{Output: "xml"},
			wantErr: "'xml' must be one of yaml json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(&tt.cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.True(t, errors.Is(err, oerrors.ErrConfig))
		})
	}
}
