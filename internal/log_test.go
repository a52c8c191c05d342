package internal

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    LogLevel
		wantErr bool
	}{
		{"ERROR", LogLevelError, false},
		{"warn", LogLevelWarn, false},
		{"", LogLevelInfo, false},
		{"Debug", LogLevelDebug, false},
		{"TRACE", LogLevelTrace, false},
		{"loud", LogLevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLogLevel(tt.in)
			assert.Equal(t, tt.want, got)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoggerFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerTo(&buf, LogLevelWarn)

	logger.Info("hidden %d", 1)
	logger.Warn("shown %d", 2)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 1)
	assert.Equal(t, "warn", gjson.Get(lines[0], "level").String())
	assert.Equal(t, "shown 2", gjson.Get(lines[0], "message").String())
}

func TestLoggerWithAddsField(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerTo(&buf, LogLevelDebug).With("render_id", "abc")

	logger.Debug("pass complete")

	assert.Equal(t, "abc", gjson.Get(buf.String(), "render_id").String())
}
