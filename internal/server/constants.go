package server

import "time"

// HTTP error messages for middleware responses
const (
	ErrMsgUnauthorized    = "Unauthorized"
	ErrMsgTooManyRequests = "Too Many Requests"
	ErrMsgNotFound        = "Not found"
)

// Security alert messages
const (
	SecurityAlertFailedAuth = "SECURITY ALERT: repeated failed authentication"
	SecurityAlertHighRate   = "SECURITY ALERT: blocking high request rate"
)

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Server starting"
	LogMsgServerStopping   = "Server stopping"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
	LogMsgRequestHeaders   = "Request headers"
	LogMsgAuthFailed       = "Authentication failed"
	LogMsgBadTrustedProxy  = "Ignoring invalid trusted proxy"
)

// HTTP header names
const (
	HeaderAPIKey         = "X-API-Key"
	HeaderAuthorization  = "Authorization"
	HeaderForwardedFor   = "X-Forwarded-For"
	HeaderRequestID      = "X-Request-ID"
	HeaderContentType    = "X-Content-Type-Options"
	HeaderFrameOptions   = "X-Frame-Options"
	HeaderXSSProtection  = "X-XSS-Protection"
	HeaderReferrerPolicy = "Referrer-Policy"
)

// Security header values
const (
	HeaderValueNoSniff              = "nosniff"
	HeaderValueSameOrigin           = "SAMEORIGIN"
	HeaderValueXSSBlock             = "1; mode=block"
	HeaderValueReferrerStrictOrigin = "strict-origin-when-cross-origin"
)

// PublicPaths are path prefixes served without an API key
var PublicPaths = []string{
	"/swagger/",
	"/healthz",
	"/readyz",
	"/version",
	"/metrics",
}

// quietPaths are not logged per request
var quietPaths = []string{
	"/healthz",
	"/readyz",
	"/metrics",
}

const RedactedValue = "[REDACTED]"

// Server defaults
const (
	DefaultMaxBodyBytes      int64 = 1 << 20
	DefaultReadHeaderTimeout       = 5 * time.Second
	DefaultWriteTimeout            = 30 * time.Second

	DefaultFailedAuthAlert = 5
	DefaultRequestLimit    = 1000
	DefaultDetectorWindow  = 5 * time.Minute
	highRateLogEvery       = 100
)
