// Package config provides configuration loading and management.
package config

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `mapstructure:"timestamps" json:"timestamps,omitempty"`
}

// Config represents the skel CLI configuration.
// Loaded from ~/.skel/config.yaml, validated with struct tags.
type Config struct {
	// Log contains logging-related settings.
	Log LogConfig `mapstructure:"log" json:"log,omitempty"`

	// Defaults are answers applied to every generation run before answers
	// files and --set flags, e.g. project_repository.
	Defaults map[string]string `mapstructure:"defaults" json:"defaults,omitempty" validate:"dive,keys,optionname,endkeys"`

	// GitInit initializes a git repository after generation.
	// Env: SKEL_GIT_INIT, Default: false
	GitInit bool `mapstructure:"gitInit" json:"gitInit,omitempty"`

	// Output is the default structured output format.
	// Env: SKEL_OUTPUT, Default: yaml
	Output string `mapstructure:"output" json:"output,omitempty" validate:"omitempty,oneof=yaml json"`
}

// DefaultConfig returns a Config with all default values populated.
func DefaultConfig() *Config {
	return &Config{
		Defaults: map[string]string{},
		Output:   "yaml",
	}
}

// WithDefaults fills unset fields from DefaultConfig.
func (c *Config) WithDefaults() *Config {
	d := DefaultConfig()
	if c.Defaults == nil {
		c.Defaults = d.Defaults
	}
	if c.Output == "" {
		c.Output = d.Output
	}
	return c
}
