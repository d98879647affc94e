package config

// GlobalConfig holds CLI-wide configuration resolved during PersistentPreRunE.
// It is populated once at startup and passed explicitly into every command
// constructor.
type GlobalConfig struct {
	// Config is the loaded configuration. Never nil after startup.
	Config *Config

	// ConfigPath is the resolved config file path.
	ConfigPath string

	// ConfigSource records where ConfigPath came from.
	ConfigSource ConfigSource

	// Verbose enables debug logging.
	Verbose bool
}
