package log

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() {
		SetOutput(io.Discard)
		SetLevel(LevelError)
	})

	SetLevel(LevelWarn)
	Info("hidden %d", 1)
	Warn("shown %d", 2)
	Error("plain")
	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown 2")
	assert.Contains(t, out, "plain")
	assert.Contains(t, out, "log_test.go")

	buf.Reset()
	SetLevel(LevelTrace)
	Trace("deep")
	assert.Contains(t, buf.String(), "TRC")
	assert.Contains(t, buf.String(), "deep")
}

func TestParseLevel(t *testing.T) {
	tests := map[string]int{
		"":        LevelError,
		"error":   LevelError,
		"WARN":    LevelWarn,
		"warning": LevelWarn,
		"info":    LevelInfo,
		"debug":   LevelDebug,
		" trace ": LevelTrace,
	}
	for name, want := range tests {
		got, err := ParseLevel(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}
	_, err := ParseLevel("loud")
	assert.Error(t, err)
}
