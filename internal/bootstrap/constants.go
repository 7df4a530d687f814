package bootstrap

import "time"

// ShutdownTimeout bounds the graceful shutdown sequence
const ShutdownTimeout = 10 * time.Second

// Log messages for startup
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStarting            = "Starting inventory viewer"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgCaseIDEmpty         = "CASE_ID is empty; the view will request an empty case"
)

// Log messages for shutdown
const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgClosingLoader        = "Closing inventory loader"
)

// Error messages for wiring failures
const (
	ErrMsgBuildClient = "failed to create inventory client"
	ErrMsgBuildRoutes = "failed to build route table"
)
