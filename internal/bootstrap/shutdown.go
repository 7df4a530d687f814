package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/InventoryViewer_Go/internal/inventory"
	"github.com/osse101/InventoryViewer_Go/internal/server"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server *server.Server
	Loader *inventory.Loader
}

// GracefulShutdown stops the HTTP server first so no new loads start, then
// closes the loader's subscriptions. In-flight loads are not cancelled; the
// server's shutdown waits for the requests driving them.
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Loader != nil {
		slog.Info(LogMsgClosingLoader)
		components.Loader.Close()
	}

	slog.Info(LogMsgServerStopped)
}
