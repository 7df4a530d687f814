package handler

// Client-facing error messages.
// Upstream failure details stay in the loader state; these only cover the
// handlers' own rejections.
const (
	ErrMsgInvalidFilter       = "Invalid filter '%s'. Valid options: %s"
	ErrMsgUpstreamUnreachable = "inventory endpoint unreachable"
)

// Health status values
const (
	StatusOK          = "ok"
	StatusUnavailable = "unavailable"
)

// QueryParamFilter narrows the rendered items by type
const QueryParamFilter = "filter"

// Log messages
const (
	LogMsgReadinessFailed = "Readiness check failed"
	LogMsgEncodeFailed    = "Failed to encode JSON response"
	LogMsgWriteFailed     = "Failed to write response buffer"
	LogMsgInvalidFilter   = "Invalid inventory filter"
	LogMsgInventoryServed = "Inventory view rendered"
)
