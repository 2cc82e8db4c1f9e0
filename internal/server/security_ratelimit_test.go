package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSecurityLoggingMiddleware_RateLimiting(t *testing.T) {
	detector := NewSuspiciousActivityDetectorWithConfig(DetectorConfig{RequestLimit: 10})
	h := SecurityLoggingMiddleware(nil, detector)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/items", nil)
	req.RemoteAddr = "192.168.1.100:1234"

	for i := 0; i < 10; i++ {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code, "request %d", i)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.JSONEq(t, `{"error":"`+ErrMsgTooManyRequests+`"}`, rec.Body.String())

	other := httptest.NewRequest(http.MethodGet, "/api/v1/items", nil)
	other.RemoteAddr = "192.168.1.101:1234"
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, other)
	assert.Equal(t, http.StatusOK, rec.Code, "limit is per IP")

	detector.mu.Lock()
	assert.Equal(t, 11, detector.requestCountByIP["192.168.1.100"])
	detector.mu.Unlock()
}

func TestSuspiciousActivityDetector_WindowResets(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	detector := NewSuspiciousActivityDetectorWithConfig(DetectorConfig{RequestLimit: 2, Window: time.Minute})
	detector.now = func() time.Time { return now }
	detector.windowStart = now

	assert.True(t, detector.RecordRequest("10.0.0.1"))
	assert.True(t, detector.RecordRequest("10.0.0.1"))
	assert.False(t, detector.RecordRequest("10.0.0.1"))

	now = now.Add(30 * time.Second)
	assert.False(t, detector.RecordRequest("10.0.0.1"), "still inside the window")

	now = now.Add(31 * time.Second)
	assert.True(t, detector.RecordRequest("10.0.0.1"), "new window")
}

func TestNewSuspiciousActivityDetectorWithConfig_Defaults(t *testing.T) {
	d := NewSuspiciousActivityDetectorWithConfig(DetectorConfig{})
	assert.Equal(t, DefaultDetectorConfig(), d.cfg)
}
