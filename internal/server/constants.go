package server

import "time"

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Server starting"
	LogMsgServerStopping   = "Server stopping"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
	LogMsgRequestHeaders   = "Request headers"
)

// HTTP header names
const (
	HeaderRequestID      = "X-Request-ID"
	HeaderAuthorization  = "Authorization"
	HeaderCookie         = "Cookie"
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

// Operational endpoints, served outside the route table
const (
	PathHealthz = "/healthz"
	PathReadyz  = "/readyz"
	PathVersion = "/version"
	PathMetrics = "/metrics"
	PathEvents  = "/events"
)

// QuietPaths are not logged per request
var QuietPaths = []string{PathHealthz, PathReadyz, PathMetrics}

// Header redaction marker
const RedactedValue = "[REDACTED]"

// Server timeouts. There is no write timeout: the inventory view blocks on
// an upstream call that has none either.
const (
	ReadHeaderTimeout = 5 * time.Second
	IdleTimeout       = 60 * time.Second
	CORSMaxAge        = 300
	MaxRequestIDLen   = 128
)
