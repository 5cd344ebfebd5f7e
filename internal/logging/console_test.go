package logging

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  log.Level
	}{
		{input: "debug", want: log.DebugLevel},
		{input: "info", want: log.InfoLevel},
		{input: "warn", want: log.WarnLevel},
		{input: "warning", want: log.WarnLevel},
		{input: "error", want: log.ErrorLevel},
		{input: "fatal", want: log.FatalLevel},
		{input: "", want: log.InfoLevel},
		{input: "nonsense", want: log.InfoLevel},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLogLevel(tt.input), "level %q", tt.input)
	}
}

func TestNewTestLogger_WritesToGivenSink(t *testing.T) {
	var buf bytes.Buffer
	logger := NewTestLogger(&buf)

	logger.Info("snapshot saved", "path", "tasks.json")

	assert.Contains(t, buf.String(), "snapshot saved")
	assert.Contains(t, buf.String(), "tasks.json")
}

func TestNewConsoleLoggerFromConfig_RespectsLevel(t *testing.T) {
	logger := NewConsoleLoggerFromConfig("error", "text", false)

	assert.Equal(t, log.ErrorLevel, logger.GetLevel())
}
