package config

// Environment variable names
const (
	EnvClientURL          = "CLIENT_URL"
	EnvCaseID             = "CASE_ID"
	EnvBasePath           = "BASE_PATH"
	EnvPort               = "PORT"
	EnvLogLevel           = "LOG_LEVEL"
	EnvLogFormat          = "LOG_FORMAT"
	EnvEnvironment        = "ENVIRONMENT"
	EnvServiceName        = "SERVICE_NAME"
	EnvVersion            = "VERSION"
	EnvDiscardStale       = "DISCARD_STALE"
	EnvCORSAllowedOrigins = "CORS_ALLOWED_ORIGINS"
)

// DefaultEnvFile is read by Load when no files are given
const DefaultEnvFile = ".env"

// Validation messages
const (
	MsgRequired    = "must be set"
	MsgInvalidURL  = "must be an absolute http(s) URL"
	MsgAtLeast     = "must be at least %s"
	MsgAtMost      = "must be at most %s"
	MsgOneOf       = "must be one of: %s"
	MsgStartsWith  = "must start with %q"
	MsgInvalidVal  = "invalid value"
	MsgLoadFailed  = "failed to load configuration"
	MsgInvalidConf = "invalid configuration"
)
