// Package output provides terminal output utilities.
package output

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// logger is the global logger instance.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: false,
	ReportCaller:    false,
})

// LogConfig controls logger construction.
type LogConfig struct {
	// Verbose enables debug level, caller reporting, and forces timestamps.
	Verbose bool

	// Timestamps toggles timestamps. Nil means on.
	Timestamps *bool

	// Writer overrides the destination. Nil means stderr.
	Writer io.Writer
}

// BoolPtr returns a pointer to b.
func BoolPtr(b bool) *bool {
	return &b
}

// SetupLogging configures the global logger.
func SetupLogging(cfg LogConfig) {
	level := log.InfoLevel
	if cfg.Verbose {
		level = log.DebugLevel
	}

	timestamps := true
	if cfg.Timestamps != nil {
		timestamps = *cfg.Timestamps
	}
	if cfg.Verbose {
		timestamps = true
	}

	var w io.Writer = os.Stderr
	if cfg.Writer != nil {
		w = cfg.Writer
	}

	logger = log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: timestamps,
		ReportCaller:    cfg.Verbose,
		TimeFormat:      "15:04:05",
	})
}

// ScopedLogger returns a child logger whose lines carry scope as prefix,
// e.g. the template variant being generated.
func ScopedLogger(scope string) *log.Logger {
	return logger.WithPrefix(StyleDim.Render("v:") + StyleNoun.Render(scope))
}

// Debug logs a debug message.
func Debug(msg string, keyvals ...interface{}) {
	logger.Debug(msg, keyvals...)
}

// Warn logs a warning message.
func Warn(msg string, keyvals ...interface{}) {
	logger.Warn(msg, keyvals...)
}

