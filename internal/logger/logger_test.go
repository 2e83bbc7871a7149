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

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNewLogger_NotNil(t *testing.T) {
	require.NotNil(t, NewLogger("test"))
}

// TestNewLogger_RoleAndTimestamp verifies that every entry carries the role
// and a timestamp.
func TestNewLogger_RoleAndTimestamp(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "file-keeper")

	l.Info().Msg("hello")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "file-keeper", entry["role"])
	assert.Contains(t, entry, "time")
}

// TestNewLogger_CallerFieldName verifies that the caller field is named "func"
// and holds a function name rather than file:line.
func TestNewLogger_CallerFieldName(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "caller")

	l.Info().Msg("where am I")

	assert.Equal(t, "func", zerolog.CallerFieldName)
	entry := decodeEntry(t, &buf)
	fn, ok := entry["func"].(string)
	require.True(t, ok)
	assert.Contains(t, fn, "TestNewLogger_CallerFieldName")
}

func TestNewLogger_GlobalLevelIsDebug(t *testing.T) {
	NewLogger("level-role")
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Info().Msg("should be discarded")

	assert.Empty(t, buf.String())
}

func TestGetChildLogger_InheritsFields(t *testing.T) {
	var buf bytes.Buffer
	parent := newLogger(&buf, "inherited-role")

	child := parent.GetChildLogger()
	assert.NotSame(t, parent, child)

	child.Info().Msg("child message")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "inherited-role", entry["role"])
}

func TestWithComponent_AddsField(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "role").WithComponent("import-gc")

	l.Info().Msg("sweep")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "import-gc", entry["component"])
	assert.Equal(t, "role", entry["role"])
}

func TestFromContext_NotNil(t *testing.T) {
	require.NotNil(t, FromContext(context.Background()))
}

func TestFromContext_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("trace_id", "abc").Logger()
	ctx := zl.WithContext(context.Background())

	FromContext(ctx).Info().Msg("from context")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "abc", entry["trace_id"])
}

func TestFromRequest_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("req-key", "req-value").Logger()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(zl.WithContext(req.Context()))

	FromRequest(req).Info().Msg("from request")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "req-value", entry["req-key"])
}
