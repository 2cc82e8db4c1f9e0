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
)

func restoreDefault(t *testing.T) {
	t.Helper()
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
}

func TestJSONLogging(t *testing.T) {
	restoreDefault(t)
	var buf bytes.Buffer

	InitLoggerWithWriter(Config{
		Level:       LogLevelInfo,
		Format:      LogFormatJSON,
		ServiceName: "test-service",
		Version:     "1.0.0",
		Environment: EnvironmentTest,
	}, &buf)

	slog.Info("test message", "key", "value", "number", 42)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "test-service", entry["service"])
	assert.Equal(t, "1.0.0", entry["version"])
	assert.Equal(t, "test", entry["environment"])
	assert.Equal(t, "test message", entry["msg"])
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "value", entry["key"])
	assert.Equal(t, float64(42), entry["number"])
}

func TestLevelFiltering(t *testing.T) {
	restoreDefault(t)
	var buf bytes.Buffer

	InitLoggerWithWriter(Config{Level: LogLevelWarn, Format: LogFormatText}, &buf)

	slog.Info("hidden")
	slog.Warn("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
}

func TestRequestIDContext(t *testing.T) {
	restoreDefault(t)
	var buf bytes.Buffer
	InitLoggerWithWriter(Config{Level: LogLevelDebug, Format: LogFormatJSON}, &buf)

	ctx := WithRequestID(context.Background(), "test-req-123")

	id, ok := RequestIDFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, "test-req-123", id)

	FromContext(ctx).Info("scoped")
	assert.Contains(t, buf.String(), `"request_id":"test-req-123"`)

	_, ok = RequestIDFromContext(context.Background())
	assert.False(t, ok)
}

func TestGenerateRequestID(t *testing.T) {
	a, b := GenerateRequestID(), GenerateRequestID()
	assert.NotEqual(t, a, b)
	assert.Len(t, a, 36)
	assert.Equal(t, 4, strings.Count(a, "-"))
}

func TestConfigLevels(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
	}
	for level, want := range cases {
		assert.Equal(t, want, Config{Level: level}.LogLevel(), level)
	}
}

func TestServerConfig_SourceInDevelopmentOnly(t *testing.T) {
	assert.True(t, ServerConfig(LogLevelInfo, LogFormatJSON, "arclab", "1.2.0", "development").AddSource)
	assert.True(t, ServerConfig(LogLevelInfo, LogFormatJSON, "arclab", "1.2.0", "DEV").AddSource)
	assert.False(t, ServerConfig(LogLevelInfo, LogFormatJSON, "arclab", "1.2.0", EnvironmentProduction).AddSource)
}

func TestCLIConfig(t *testing.T) {
	cfg := CLIConfig(false)
	assert.Equal(t, LogLevelInfo, cfg.Level)
	assert.False(t, cfg.IsJSON())
	assert.Equal(t, CLIServiceName, cfg.ServiceName)

	assert.Equal(t, LogLevelDebug, CLIConfig(true).Level)
}

func TestBaseAttributes_SkipsEmpty(t *testing.T) {
	restoreDefault(t)
	var buf bytes.Buffer

	InitLoggerWithWriter(CLIConfig(false), &buf)
	slog.Info("importing")

	out := buf.String()
	assert.Contains(t, out, "service="+CLIServiceName)
	assert.NotContains(t, out, "version=")
	assert.NotContains(t, out, "environment=")
}
