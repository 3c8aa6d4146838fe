package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	require.Equal(t, slog.LevelDebug, parseLevel("DEBUG").Level())
	require.Equal(t, slog.LevelWarn, parseLevel("warn").Level())
	require.Equal(t, slog.LevelError, parseLevel(" error ").Level())
	require.Equal(t, slog.LevelInfo, parseLevel("").Level())
	require.Equal(t, slog.LevelInfo, parseLevel("loud").Level())
}

func TestNewWithWriterJSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "warn", "")

	log.Info("dropped")
	require.Zero(t, buf.Len())

	log.Warn("kept", "destination", "bali")
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "kept", entry["msg"])
	require.Equal(t, "travel-planner", entry["service"])
	require.Equal(t, "bali", entry["destination"])
}

func TestNewWithWriterText(t *testing.T) {
	var buf bytes.Buffer
	NewWithWriter(&buf, "info", "Text").Info("hello")
	require.Contains(t, buf.String(), "msg=hello")
	require.Contains(t, buf.String(), "service=travel-planner")
}
