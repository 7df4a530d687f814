package bootstrap

import (
	"io"
	"log/slog"

	"github.com/osse101/InventoryViewer_Go/internal/config"
	"github.com/osse101/InventoryViewer_Go/internal/logger"
)

// SetupLogger initializes the default logger from the application config and
// writes the startup banner. Source locations are only added in dev.
func SetupLogger(cfg *config.Config, w io.Writer) {
	loggerConfig := logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		cfg.IsDevelopment(),
	)
	logger.InitLoggerWithWriter(loggerConfig, w)

	slog.Info(LogMsgLoggingInitialized, "log_level", loggerConfig.LogLevel().String(), "log_format", cfg.LogFormat)
	slog.Info(LogMsgStarting,
		"environment", cfg.Environment,
		"version", cfg.Version,
		"port", cfg.Port)

	slog.Debug(LogMsgConfigurationLoaded,
		"client_url", cfg.ClientURL,
		"case", cfg.CaseID,
		"base_path", cfg.BasePath,
		"discard_stale", cfg.DiscardStale,
		"cors_origins", cfg.CORSAllowedOrigins)

	if cfg.CaseID == "" {
		slog.Warn(LogMsgCaseIDEmpty)
	}
}
