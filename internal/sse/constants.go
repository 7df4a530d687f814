package sse

import "time"

// KeepaliveInterval is how often an idle stream sends a keepalive event
const KeepaliveInterval = 30 * time.Second

// Event types
const (
	EventTypeConnected = "connected"
	EventTypeState     = "inventory.state"
	EventTypeKeepalive = "keepalive"
)

// Log messages
const (
	LogMsgClientConnected    = "SSE client connected"
	LogMsgClientDisconnected = "SSE client disconnected"
	LogMsgWriteError         = "Failed to write SSE event"
	ErrMsgStreamUnsupported  = "SSE not supported"
)
