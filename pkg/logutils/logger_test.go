package logutils

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_InvalidLevel(t *testing.T) {
	_, closer, err := New("chatty", "")
	require.Error(t, err)
	assert.NotNil(t, closer)
}

func TestNew_WritesJSONToFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "logs", "gitquery.log")

	logger, closer, err := New("debug", file)
	require.NoError(t, err)

	logger.Debug().Str("args", "git config user.email").Msg("git query absorbed failure")
	closer()

	data, err := os.ReadFile(file)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(data), &entry))
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "git query absorbed failure", entry["message"])
	assert.Contains(t, entry, "time")
}

func TestNew_FiltersBelowLevel(t *testing.T) {
	file := filepath.Join(t.TempDir(), "gitquery.log")

	logger, closer, err := New("warn", file)
	require.NoError(t, err)

	logger.Info().Msg("hidden")
	logger.Warn().Msg("shown")
	closer()

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "shown")
}

func TestNewConsoleWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewConsoleWriter(&buf, true)

	_, err := w.Write([]byte(`{"level":"info","message":"hello","cmp":"git"}`))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "hello")
	assert.Contains(t, out, "cmp=git")
	assert.False(t, strings.Contains(out, "\x1b["), "no ANSI escapes when color is disabled")
}
