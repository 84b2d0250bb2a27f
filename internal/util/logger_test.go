package util

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{input: "debug", want: LevelDebug},
		{input: "INFO", want: LevelInfo},
		{input: "", want: LevelInfo},
		{input: "warning", want: LevelWarn},
		{input: "warn", want: LevelWarn},
		{input: "error", want: LevelError},
		{input: "verbose", want: LevelInfo, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLogger_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, LevelWarn, false)

	logger.Debugf("debug %d", 1)
	logger.Infof("info %d", 2)
	logger.Warnf("warn %d", 3)
	logger.Errorf("error %d", 4)

	output := buf.String()
	assert.NotContains(t, output, "debug 1")
	assert.NotContains(t, output, "info 2")
	assert.Contains(t, output, "[WARN] warn 3")
	assert.Contains(t, output, "[ERROR] error 4")
	assert.Equal(t, 2, strings.Count(output, "\n"))

	assert.False(t, logger.Enabled(LevelInfo))
	assert.True(t, logger.Enabled(LevelError))
	assert.Equal(t, LevelWarn, logger.Level())
}

func TestLogger_Color(t *testing.T) {
	var plain, colored bytes.Buffer

	NewLogger(&plain, LevelInfo, false).Infof("Hello MCP Server running on stdio")
	NewLogger(&colored, LevelInfo, true).Infof("Hello MCP Server running on stdio")

	assert.NotContains(t, plain.String(), "\x1b[")
	assert.Contains(t, colored.String(), "\x1b[")
	assert.Contains(t, colored.String(), "Hello MCP Server running on stdio")
}

func TestLogger_Std(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, LevelError, false)

	std := logger.Std()
	require.NotNil(t, std)
	std.Printf("Error reading input: %v", "boom")

	assert.Contains(t, buf.String(), "[ERROR] ")
	assert.Contains(t, buf.String(), "Error reading input: boom")
}

func TestLevel_String(t *testing.T) {
	assert.Equal(t, "DEBUG", LevelDebug.String())
	assert.Equal(t, "ERROR", LevelError.String())
	assert.Equal(t, "LEVEL(9)", Level(9).String())
}
