package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    zapcore.Level
		wantErr bool
	}{
		{in: "debug", want: zapcore.DebugLevel},
		{in: "info", want: zapcore.InfoLevel},
		{in: "warn", want: zapcore.WarnLevel},
		{in: "error", want: zapcore.ErrorLevel},
		{in: "verbose", want: zapcore.InfoLevel, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseLevel(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantErr, err != nil)
		})
	}
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	l, err := New("info", "json", zapcore.AddSync(&buf))
	require.NoError(t, err)

	l.Debug("hidden")
	l.Warn("free exceeds total", zap.Uint64("free", 20), zap.Uint64("total", 10))
	require.NoError(t, l.Sync())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "free exceeds total", entry["msg"])
	assert.EqualValues(t, 20, entry["free"])
	assert.Contains(t, entry, "timestamp")
}

func TestNew_Text(t *testing.T) {
	var buf bytes.Buffer
	l, err := New("warn", "text", zapcore.AddSync(&buf))
	require.NoError(t, err)

	l.Info("hidden")
	l.Error("probe failed", zap.String("path", "."))

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "probe failed")
	assert.Contains(t, out, `{"path": "."}`)
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New("loud", "text", zapcore.AddSync(&bytes.Buffer{}))
	assert.Error(t, err)
}

func TestInit(t *testing.T) {
	prevLog, prevLogger := Log, logger
	t.Cleanup(func() { Log, logger = prevLog, prevLogger })

	require.NoError(t, Init("debug", "json"))
	assert.NotNil(t, Log)
	assert.True(t, GetZapLogger().Core().Enabled(zapcore.DebugLevel))

	assert.Error(t, Init("nope", "text"))
}

func TestDefaultsAreNop(t *testing.T) {
	assert.NotNil(t, Log)
	assert.NotNil(t, GetZapLogger())
}
