package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// decodeEntry parses the single JSON log entry in buf.
func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

// restoreGlobalLevel puts the global level back after a test changes it.
func restoreGlobalLevel(t *testing.T) {
	t.Helper()
	level := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(level) })
}

func TestNew_EntryShape(t *testing.T) {
	restoreGlobalLevel(t)
	var buf bytes.Buffer

	New(&buf, "item-reviews-server").Warn().Str("item_id", "42").Msg("item not found")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "item-reviews-server", entry["role"])
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "42", entry["item_id"])
	assert.Equal(t, "item not found", entry["message"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry["func"], "TestNew_EntryShape")
}

func TestNew_DefaultsToDebug(t *testing.T) {
	restoreGlobalLevel(t)

	New(&bytes.Buffer{}, "level")

	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
	assert.Equal(t, "func", zerolog.CallerFieldName)
}

func TestNewLogger_NotNil(t *testing.T) {
	restoreGlobalLevel(t)
	require.NotNil(t, NewLogger("stdout"))
}

func TestSetLevel(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		want    zerolog.Level
		wantErr bool
	}{
		{name: "debug", level: "debug", want: zerolog.DebugLevel},
		{name: "info", level: "info", want: zerolog.InfoLevel},
		{name: "warn", level: "warn", want: zerolog.WarnLevel},
		{name: "error", level: "error", want: zerolog.ErrorLevel},
		{name: "empty keeps current", level: "", want: zerolog.TraceLevel},
		{name: "unknown", level: "loud", want: zerolog.TraceLevel, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			restoreGlobalLevel(t)
			zerolog.SetGlobalLevel(zerolog.TraceLevel)

			err := SetLevel(tt.level)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, zerolog.GlobalLevel())
		})
	}
}

func TestSetLevel_FiltersLowerEntries(t *testing.T) {
	restoreGlobalLevel(t)
	var buf bytes.Buffer
	l := New(&buf, "filter")

	require.NoError(t, SetLevel("warn"))
	l.Info().Msg("dropped")
	assert.Empty(t, buf.String())

	l.Error().Msg("kept")
	assert.Equal(t, "kept", decodeEntry(t, &buf)["message"])
}

func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Error().Msg("discarded")

	assert.Empty(t, buf.String())
}

func TestGetChildLogger_InheritsFields(t *testing.T) {
	restoreGlobalLevel(t)
	var buf bytes.Buffer
	parent := New(&buf, "parent-role")

	child := parent.GetChildLogger()
	assert.NotSame(t, parent, child)

	child.Info().Msg("child")
	assert.Equal(t, "parent-role", decodeEntry(t, &buf)["role"])
}

func TestWithTraceID_AddsField(t *testing.T) {
	restoreGlobalLevel(t)
	var buf bytes.Buffer

	New(&buf, "trace-role").WithTraceID("abc-123").Info().Msg("traced")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "abc-123", entry[TraceIDField])
	assert.Equal(t, "trace-role", entry["role"])
}

func TestFromContext(t *testing.T) {
	t.Run("nothing attached", func(t *testing.T) {
		l := FromContext(context.Background())
		require.NotNil(t, l)
		assert.NotPanics(t, func() { l.Info().Msg("ignored") })
	})

	t.Run("round trip through WithContext", func(t *testing.T) {
		restoreGlobalLevel(t)
		var buf bytes.Buffer
		ctx := New(&buf, "ctx-role").WithTraceID("t-1").WithContext(t.Context())

		FromContext(ctx).Info().Msg("round trip")

		assert.Equal(t, "t-1", decodeEntry(t, &buf)[TraceIDField])
	})
}

func TestFromRequest(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("route", "/api/items").Logger()
	req := httptest.NewRequest(http.MethodGet, "/api/items", nil)
	req = req.WithContext(zl.WithContext(req.Context()))

	FromRequest(req).Info().Msg("from request")

	assert.Equal(t, "/api/items", decodeEntry(t, &buf)["route"])
}
