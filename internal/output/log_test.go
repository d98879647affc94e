package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

// captureLog sets up the logger to write to a buffer and returns the buffer.
func captureLog(cfg LogConfig) *bytes.Buffer {
	var buf bytes.Buffer
	cfg.Writer = &buf
	SetupLogging(cfg)
	return &buf
}

func TestSetupLogging_TimestampDefaultOn(t *testing.T) {
	buf := captureLog(LogConfig{})
	logger.Info("test")
	assert.Regexp(t, `^\d{2}:\d{2}:\d{2}`, strings.TrimSpace(buf.String()), "default output starts with a timestamp")
}

func TestSetupLogging_TimestampExplicitlyDisabled(t *testing.T) {
	buf := captureLog(LogConfig{Timestamps: BoolPtr(false)})
	logger.Info("hello")
	assert.NotRegexp(t, `^\d{1,2}:\d{2}:\d{2}`, strings.TrimSpace(buf.String()),
		"output should not start with a timestamp")
}

func TestSetupLogging_VerboseForcesTimestampsOn(t *testing.T) {
	buf := captureLog(LogConfig{Verbose: true, Timestamps: BoolPtr(false)})
	logger.Debug("verbose-msg")
	out := buf.String()
	assert.Contains(t, out, "verbose-msg", "debug message should appear in verbose mode")
	assert.Regexp(t, `^\d{2}:\d{2}:\d{2}`, strings.TrimSpace(out), "verbose should force timestamps on")
}

func TestSetupLogging_Levels(t *testing.T) {
	SetupLogging(LogConfig{Verbose: true})
	assert.Equal(t, log.DebugLevel, logger.GetLevel(), "verbose should set debug level")

	SetupLogging(LogConfig{})
	assert.Equal(t, log.InfoLevel, logger.GetLevel(), "default should be info level")
}

func TestDebugHiddenByDefault(t *testing.T) {
	buf := captureLog(LogConfig{Timestamps: BoolPtr(false)})
	Debug("removed file", "path", ".github")
	assert.Empty(t, buf.String())

	Warn("could not remove file", "path", ".github")
	assert.Contains(t, buf.String(), "could not remove file")
	assert.Contains(t, buf.String(), ".github")
}

func TestScopedLogger(t *testing.T) {
	SetupLogging(LogConfig{Verbose: true})
	scoped := ScopedLogger("python")
	assert.Contains(t, scoped.GetPrefix(), "python")
	assert.Equal(t, log.DebugLevel, scoped.GetLevel(), "scoped logger inherits level")
}

func TestBoolPtr(t *testing.T) {
	assert.True(t, *BoolPtr(true))
	assert.False(t, *BoolPtr(false))
}
