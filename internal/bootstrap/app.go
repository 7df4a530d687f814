package bootstrap

import (
	"fmt"

	"github.com/osse101/InventoryViewer_Go/internal/config"
	"github.com/osse101/InventoryViewer_Go/internal/handler"
	"github.com/osse101/InventoryViewer_Go/internal/inventory"
	"github.com/osse101/InventoryViewer_Go/internal/router"
	"github.com/osse101/InventoryViewer_Go/internal/server"
	"github.com/osse101/InventoryViewer_Go/internal/sse"
)

// App holds the wired application components
type App struct {
	Client *inventory.Client
	Loader *inventory.Loader
	Routes *router.Table
	Server *server.Server
}

// NewApp wires client, loader, view, route table and server from cfg
func NewApp(cfg *config.Config) (*App, error) {
	client, err := inventory.NewClient(cfg.ClientURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgBuildClient, err)
	}
	loader := inventory.NewLoaderWithFetcher(client, cfg.DiscardStale)

	view := handler.NewInventoryView(loader, cfg.CaseID)
	table, err := router.NewTable(cfg.BasePath, router.Routes(view))
	if err != nil {
		loader.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgBuildRoutes, err)
	}

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		AllowedOrigins: cfg.CORSAllowedOrigins,
		ServiceName:    cfg.ServiceName,
		Version:        cfg.Version,
		StateStream:    sse.NewStream(loader),
	}, table.Router(), client)

	return &App{
		Client: client,
		Loader: loader,
		Routes: table,
		Server: srv,
	}, nil
}
