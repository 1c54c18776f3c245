package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/sparta-village/internal/uuid"
)

func TestJSONLogging(t *testing.T) {
	var buf bytes.Buffer

	log := New(Config{Level: "info", Format: "json", ServiceName: "test-village"}, &buf)
	log.Info("dungeon cleared", "tier", "easy", "reward", 1150)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "test-village", entry["service"])
	assert.Equal(t, "dungeon cleared", entry["msg"])
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "easy", entry["tier"])
	assert.EqualValues(t, 1150, entry["reward"])
}

func TestLogLevelFiltering(t *testing.T) {
	var buf bytes.Buffer

	log := New(Config{Level: "warn", Format: "text"}, &buf)
	log.Info("hidden")
	log.Warn("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
}

func TestConfigLogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"loud":    slog.LevelInfo,
		"":        slog.LevelInfo,
	}

	for level, want := range tests {
		assert.Equal(t, want, Config{Level: level}.LogLevel(), level)
	}
}

func TestFromContext_SessionID(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	Init(Config{Level: "info", Format: "json"}, &buf)

	ctx, id := NewSession(context.Background(), uuid.NewSequenceGenerator("play"))
	assert.Equal(t, "play-1", id)

	FromContext(ctx).Info("rested")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "play-1", entry[AttrKeySessionID])

	buf.Reset()
	FromContext(context.Background()).Info("no session")
	assert.False(t, strings.Contains(buf.String(), AttrKeySessionID))
}
