package observability_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/shiwano/drivererr/internal/config"
	"github.com/shiwano/drivererr/internal/observability"
)

func TestNewLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := observability.NewLogger(config.LoggerConfig{
		Level:       "warn",
		Format:      "json",
		ServiceName: "drivererr",
	}, zapcore.AddSync(&buf))

	logger.Info("dropped")
	logger.Warn("kept")
	require.NoError(t, observability.Sync(logger))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "kept", entry["msg"])
	assert.Equal(t, "drivererr", entry["logger"])
}

func TestNewLogger_Console(t *testing.T) {
	var buf bytes.Buffer
	logger := observability.NewLogger(config.LoggerConfig{
		Level:       "not-a-level",
		Format:      "console",
		ServiceName: "drivererr",
	}, zapcore.AddSync(&buf))

	logger.Debug("dropped")
	logger.Info("hello")

	out := buf.String()
	assert.Contains(t, out, "drivererr.")
	assert.Contains(t, out, "hello")
	assert.NotContains(t, out, "dropped")
}

func TestNewLogger_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drivererr.log")
	var console bytes.Buffer
	logger := observability.NewLogger(config.LoggerConfig{
		Level:       "info",
		Format:      "console",
		ServiceName: "drivererr",
		LogFile:     path,
		MaxSize:     1,
	}, zapcore.AddSync(&console))

	logger.Info("to file")
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(data), &entry))
	assert.Equal(t, "to file", entry["msg"])
	assert.Contains(t, console.String(), "to file")
}
