package config

import (
	"fmt"
	"os"

	"github.com/skelkit/skel/internal/output"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// ResolvedValue records one resolved setting for verbose logging.
type ResolvedValue struct {
	Key      string
	Value    any
	Source   ConfigSource
	Shadowed map[ConfigSource]string
}

// ResolveConfigPathOptions contains options for config path resolution.
type ResolveConfigPathOptions struct {
	// FlagValue is the --config flag value (empty if not set).
	FlagValue string
}

// ResolveConfigPathResult contains the resolved config path and its source.
type ResolveConfigPathResult struct {
	// ConfigPath is the resolved config file path.
	ConfigPath string
	// Source indicates where the config path came from.
	Source ConfigSource
	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[ConfigSource]string
}

// ResolveConfigPath resolves the config file path using precedence:
// (1) --config flag, (2) SKEL_CONFIG env, (3) ~/.skel/config.yaml default
func ResolveConfigPath(opts ResolveConfigPathOptions) (ResolveConfigPathResult, error) {
	result := ResolveConfigPathResult{
		Shadowed: make(map[ConfigSource]string),
	}

	envValue := os.Getenv("SKEL_CONFIG")

	paths, err := DefaultPaths()
	if err != nil {
		return result, err
	}
	defaultPath := paths.ConfigFile

	switch {
	case opts.FlagValue != "":
		result.ConfigPath = opts.FlagValue
		result.Source = SourceFlag
		if envValue != "" {
			result.Shadowed[SourceEnv] = envValue
		}
		result.Shadowed[SourceDefault] = defaultPath
	case envValue != "":
		result.ConfigPath = envValue
		result.Source = SourceEnv
		result.Shadowed[SourceDefault] = defaultPath
	default:
		result.ConfigPath = defaultPath
		result.Source = SourceDefault
	}

	return result, nil
}

// ResolveTimestamps resolves whether log lines carry timestamps using
// precedence: (1) --timestamps flag, (2) log.timestamps config/env,
// (3) default true.
func ResolveTimestamps(flagValue *bool, cfg *Config) ResolvedValue {
	rv := ResolvedValue{Key: "log.timestamps", Shadowed: make(map[ConfigSource]string)}

	var configValue *bool
	if cfg != nil {
		configValue = cfg.Log.Timestamps
	}

	switch {
	case flagValue != nil:
		rv.Value = *flagValue
		rv.Source = SourceFlag
		if configValue != nil {
			rv.Shadowed[SourceConfig] = fmt.Sprint(*configValue)
		}
	case configValue != nil:
		rv.Value = *configValue
		rv.Source = SourceConfig
	default:
		rv.Value = true
		rv.Source = SourceDefault
	}
	return rv
}

// LogResolvedValues logs configuration resolution at DEBUG level.
func LogResolvedValues(values []ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
		for source, shadowed := range v.Shadowed {
			output.Debug("  shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", shadowed,
			)
		}
	}
}
