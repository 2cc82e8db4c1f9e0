package server

import (
	"crypto/subtle"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"net/netip"
	"strings"
	"sync"
	"time"

	"github.com/osse101/ArcLab_Go/internal/logger"
)

// TrustedProxies is the set of peers allowed to report the client address
// through X-Forwarded-For. Entries are single addresses or CIDR prefixes.
type TrustedProxies struct {
	prefixes []netip.Prefix
}

// ParseTrustedProxies parses addresses and CIDR prefixes. Invalid entries
// are logged and skipped.
func ParseTrustedProxies(entries []string) *TrustedProxies {
	tp := &TrustedProxies{}
	for _, raw := range entries {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		if strings.Contains(raw, "/") {
			prefix, err := netip.ParsePrefix(raw)
			if err != nil {
				slog.Warn(LogMsgBadTrustedProxy, "entry", raw, "error", err)
				continue
			}
			tp.prefixes = append(tp.prefixes, prefix.Masked())
			continue
		}
		addr, err := netip.ParseAddr(raw)
		if err != nil {
			slog.Warn(LogMsgBadTrustedProxy, "entry", raw, "error", err)
			continue
		}
		tp.prefixes = append(tp.prefixes, netip.PrefixFrom(addr.Unmap(), addr.Unmap().BitLen()))
	}
	return tp
}

// Contains reports whether ip belongs to a trusted proxy
func (tp *TrustedProxies) Contains(ip string) bool {
	if tp == nil {
		return false
	}
	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return false
	}
	addr = addr.Unmap()
	for _, p := range tp.prefixes {
		if p.Contains(addr) {
			return true
		}
	}
	return false
}

// ClientIP returns the caller's address. X-Forwarded-For is only honoured
// when the direct peer is trusted, and then only its last hop is used.
func (tp *TrustedProxies) ClientIP(r *http.Request) string {
	remoteIP, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		remoteIP = r.RemoteAddr
	}

	if !tp.Contains(remoteIP) {
		return remoteIP
	}
	forwarded := r.Header.Get(HeaderForwardedFor)
	if forwarded == "" {
		return remoteIP
	}
	hops := strings.Split(forwarded, ",")
	if last := strings.TrimSpace(hops[len(hops)-1]); last != "" {
		return last
	}
	return remoteIP
}

// writeError writes the same JSON error shape the API handlers use
func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// AuthMiddleware requires the X-API-Key header on every non-public path
func AuthMiddleware(apiKey string, proxies *TrustedProxies, detector *SuspiciousActivityDetector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			providedKey := r.Header.Get(HeaderAPIKey)
			if subtle.ConstantTimeCompare([]byte(providedKey), []byte(apiKey)) != 1 {
				ip := proxies.ClientIP(r)
				detector.RecordFailedAuth(ip)

				logger.FromContext(r.Context()).Warn(LogMsgAuthFailed,
					"path", r.URL.Path,
					"has_key", providedKey != "",
					"ip", ip)

				writeError(w, http.StatusUnauthorized, ErrMsgUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func isPublicPath(path string) bool {
	for _, p := range PublicPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// RequestSizeLimitMiddleware limits request body size
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// DetectorConfig sets the thresholds of a SuspiciousActivityDetector
type DetectorConfig struct {
	// FailedAuthAlert is the failed attempt count per IP that raises an alert
	FailedAuthAlert int
	// RequestLimit is the number of requests per IP allowed in one window
	RequestLimit int
	Window       time.Duration
}

// DefaultDetectorConfig alerts at 5 failed logins and allows 1000 requests
// per IP every 5 minutes
func DefaultDetectorConfig() DetectorConfig {
	return DetectorConfig{
		FailedAuthAlert: DefaultFailedAuthAlert,
		RequestLimit:    DefaultRequestLimit,
		Window:          DefaultDetectorWindow,
	}
}

// SuspiciousActivityDetector counts failed logins and requests per IP over
// a fixed window.
type SuspiciousActivityDetector struct {
	cfg DetectorConfig
	now func() time.Time

	mu               sync.Mutex
	failedAuthByIP   map[string]int
	requestCountByIP map[string]int
	windowStart      time.Time
}

// NewSuspiciousActivityDetector creates a detector with the default thresholds
func NewSuspiciousActivityDetector() *SuspiciousActivityDetector {
	return NewSuspiciousActivityDetectorWithConfig(DefaultDetectorConfig())
}

// NewSuspiciousActivityDetectorWithConfig creates a detector. Zero fields
// take their defaults.
func NewSuspiciousActivityDetectorWithConfig(cfg DetectorConfig) *SuspiciousActivityDetector {
	def := DefaultDetectorConfig()
	if cfg.FailedAuthAlert <= 0 {
		cfg.FailedAuthAlert = def.FailedAuthAlert
	}
	if cfg.RequestLimit <= 0 {
		cfg.RequestLimit = def.RequestLimit
	}
	if cfg.Window <= 0 {
		cfg.Window = def.Window
	}
	d := &SuspiciousActivityDetector{
		cfg:              cfg,
		now:              time.Now,
		failedAuthByIP:   make(map[string]int),
		requestCountByIP: make(map[string]int),
	}
	d.windowStart = d.now()
	return d
}

// RecordFailedAuth records a failed authentication attempt
func (s *SuspiciousActivityDetector) RecordFailedAuth(ip string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rollWindow()
	s.failedAuthByIP[ip]++

	if n := s.failedAuthByIP[ip]; n >= s.cfg.FailedAuthAlert {
		slog.Warn(SecurityAlertFailedAuth, "ip", ip, "count", n)
	}
}

// RecordRequest counts a request and reports whether it is within the limit
func (s *SuspiciousActivityDetector) RecordRequest(ip string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rollWindow()
	s.requestCountByIP[ip]++

	n := s.requestCountByIP[ip]
	if n <= s.cfg.RequestLimit {
		return true
	}
	if (n-s.cfg.RequestLimit)%highRateLogEvery == 1 {
		slog.Warn(SecurityAlertHighRate, "ip", ip, "count_in_window", n)
	}
	return false
}

// rollWindow clears the counters once the window has elapsed. Caller holds mu.
func (s *SuspiciousActivityDetector) rollWindow() {
	now := s.now()
	if now.Sub(s.windowStart) <= s.cfg.Window {
		return
	}
	clear(s.requestCountByIP)
	clear(s.failedAuthByIP)
	s.windowStart = now
}

// SecurityLoggingMiddleware enforces the per-IP request limit
func SecurityLoggingMiddleware(proxies *TrustedProxies, detector *SuspiciousActivityDetector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !detector.RecordRequest(proxies.ClientIP(r)) {
				writeError(w, http.StatusTooManyRequests, ErrMsgTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// SecurityHeadersMiddleware adds security headers to responses
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set(HeaderContentType, HeaderValueNoSniff)
			h.Set(HeaderFrameOptions, HeaderValueSameOrigin)
			h.Set(HeaderXSSProtection, HeaderValueXSSBlock)
			h.Set(HeaderReferrerPolicy, HeaderValueReferrerStrictOrigin)
			next.ServeHTTP(w, r)
		})
	}
}
