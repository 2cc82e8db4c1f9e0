package server

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ArcLab_Go/internal/logger"
)

// captureLogs routes the default logger into a buffer for the test
func captureLogs(t *testing.T, level slog.Level) *bytes.Buffer {
	t.Helper()
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: level})))
	return &buf
}

func TestLoggingMiddleware_RedactsSecrets(t *testing.T) {
	buf := captureLogs(t, slog.LevelDebug)

	h := loggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/items", nil)
	req.Header.Set(HeaderAPIKey, "secret-key-123")
	req.Header.Set(HeaderAuthorization, "Bearer mytoken")
	req.Header.Set("User-Agent", "TestAgent")
	h.ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	require.Contains(t, out, LogMsgRequestHeaders)
	assert.NotContains(t, out, "secret-key-123")
	assert.NotContains(t, out, "Bearer mytoken")
	assert.Contains(t, out, RedactedValue)
	assert.Contains(t, out, "TestAgent")
	assert.Contains(t, out, "status=202")
}

func TestLoggingMiddleware_RequestID(t *testing.T) {
	captureLogs(t, slog.LevelInfo)

	var seen string
	h := loggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = logger.RequestIDFromContext(r.Context())
	}))

	t.Run("generated", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/stash", nil))

		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, rec.Header().Get(HeaderRequestID))
	})

	t.Run("propagated from caller", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/stash", nil)
		req.Header.Set(HeaderRequestID, "upstream-42")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, "upstream-42", seen)
		assert.Equal(t, "upstream-42", rec.Header().Get(HeaderRequestID))
	})
}

func TestLoggingMiddleware_QuietPaths(t *testing.T) {
	buf := captureLogs(t, slog.LevelDebug)

	h := loggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	for _, p := range quietPaths {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, p, nil))
	}

	assert.Empty(t, buf.String())
}
