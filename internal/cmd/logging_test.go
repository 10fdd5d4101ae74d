package cmd

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gravitrone/classdesk/internal/config"
)

func TestInitLoggingWritesJSONAtEnvLevel(t *testing.T) {
	isolateHome(t)
	t.Setenv(config.EnvLogLevel, "warn")
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	InitLogging(&buf)
	slog.Info("hidden")
	slog.Warn("shown", "classroom_id", 4)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "shown", line["msg"])
	assert.EqualValues(t, 4, line["classroom_id"])
}

func TestInitLoggingPrefersConfigLevel(t *testing.T) {
	isolateHome(t)
	t.Setenv(config.EnvLogLevel, "")
	require.NoError(t, (&config.Config{APIKey: "k", LogLevel: "debug"}).Save())
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	InitLogging(&buf)
	slog.Debug("detail")
	assert.Contains(t, buf.String(), `"msg":"detail"`)
}
