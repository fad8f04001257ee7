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
	SetupLogging(cfg)
	logger = log.NewWithOptions(&buf, log.Options{
		Level:           logger.GetLevel(),
		ReportTimestamp: cfg.Verbose || (cfg.Timestamps != nil && *cfg.Timestamps),
		TimeFormat:      "15:04:05",
	})
	return &buf
}

func TestSetupLogging_DefaultInfoLevel(t *testing.T) {
	SetupLogging(LogConfig{})
	assert.Equal(t, log.InfoLevel, logger.GetLevel())
}

func TestSetupLogging_VerboseEnablesDebugLevel(t *testing.T) {
	SetupLogging(LogConfig{Verbose: true})
	assert.Equal(t, log.DebugLevel, logger.GetLevel())
	SetupLogging(LogConfig{})
}

func TestDebugHiddenByDefault(t *testing.T) {
	buf := captureLog(LogConfig{})
	Debug("hidden-msg")
	Info("shown-msg")
	assert.NotContains(t, buf.String(), "hidden-msg")
	assert.Contains(t, buf.String(), "shown-msg")
}

func TestTimestampsDisabledByDefault(t *testing.T) {
	buf := captureLog(LogConfig{Timestamps: BoolPtr(false)})
	Info("hello")
	assert.NotRegexp(t, `^\d{1,2}:\d{2}:\d{2}`, strings.TrimSpace(buf.String()))
}

func TestPrintlnUsesSwappableStdout(t *testing.T) {
	var buf bytes.Buffer
	restore := SetStdout(&buf)
	defer restore()

	Println("Build successful")
	Print("no newline")

	assert.Equal(t, "Build successful\nno newline", buf.String())
}
