package client

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-stock-keeper/internal/adapter"
	"github.com/MKhiriev/go-stock-keeper/internal/config"
	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/internal/service"
	"github.com/MKhiriev/go-stock-keeper/internal/store"
	"github.com/MKhiriev/go-stock-keeper/internal/tui"
	"github.com/MKhiriev/go-stock-keeper/models"
)

var _ Client = (*App)(nil)

type App struct {
	cfg      *config.ClientConfig
	storages *store.ClientStorages
	services *service.ClientServices
	screen   ProductScreen
	logger   *logger.Logger
}

// NewApp opens the local cache and wires the sync layer to the terminal UI.
func NewApp(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	productAdapter, err := adapter.NewHTTPProductAdapter(cfg.Adapter, log)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("create product adapter: %w", err)
	}

	dispatcher := tui.NewProgramDispatcher()
	services := service.NewClientServices(storages, productAdapter, dispatcher, log)

	return &App{
		cfg:      cfg,
		storages: storages,
		services: services,
		screen:   tui.New(services.Products, dispatcher, buildInfo, log),
		logger:   log,
	}, nil
}

// Run blocks until the user quits or the process receives a stop signal.
// Pending product operations finish before the local cache is closed.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runErr := a.screen.Run(ctx, func(refresh service.Callback[[]models.Product]) {
		a.services.RefreshJob.Start(ctx, a.cfg.Workers.SyncInterval, refresh)
	})

	a.services.Close()
	if err := a.storages.Close(); err != nil {
		a.logger.Err(err).Msg("error closing local storage")
	}
	a.logger.Info().Msg("client stopped")

	return runErr
}
