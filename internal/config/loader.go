package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Environment variable prefix for skel configuration.
const envPrefix = "SKEL"

// envBindings maps config keys to the environment variables that override
// them. Unmarshal only sees env vars for keys viper already knows about, so
// every overridable key is bound explicitly.
var envBindings = map[string]string{
	"log.timestamps": "SKEL_LOG_TIMESTAMPS",
	"gitInit":        "SKEL_GIT_INIT",
	"output":         "SKEL_OUTPUT",
}

// Loader reads the config file and applies SKEL_* environment overrides.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	return &Loader{v: v}
}

// Load reads configFile, or the default config file when it is empty.
// A missing file is not an error: environment overrides still apply.
func (l *Loader) Load(configFile string) (*Config, error) {
	path, err := l.resolve(configFile)
	if err != nil {
		return nil, err
	}

	l.v.SetConfigFile(path)
	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	return &cfg, nil
}

// LoadWithDefaults loads configuration, fills unset fields, and validates
// the result.
func (l *Loader) LoadWithDefaults(configFile string) (*Config, error) {
	cfg, err := l.Load(configFile)
	if err != nil {
		return nil, err
	}

	cfg = cfg.WithDefaults()
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (l *Loader) resolve(configFile string) (string, error) {
	if configFile == "" {
		var err error
		if configFile, err = GetConfigFile(); err != nil {
			return "", fmt.Errorf("getting config file path: %w", err)
		}
	}

	path, err := ExpandPath(configFile)
	if err != nil {
		return "", fmt.Errorf("expanding config path: %w", err)
	}
	return path, nil
}

// ConfigFileExists reports whether the config file exists. An empty path
// checks the default location.
func ConfigFileExists(configFile string) (bool, error) {
	path, err := NewLoader().resolve(configFile)
	if err != nil {
		return false, err
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
