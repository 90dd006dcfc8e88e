package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-lms-offline/internal/adapter"
	"github.com/MKhiriev/go-lms-offline/internal/config"
	"github.com/MKhiriev/go-lms-offline/internal/filesystem"
	"github.com/MKhiriev/go-lms-offline/internal/logger"
	"github.com/MKhiriev/go-lms-offline/internal/service"
	"github.com/MKhiriev/go-lms-offline/internal/store"
	"github.com/MKhiriev/go-lms-offline/internal/workers"
)

// App owns the long-lived components of one client process.
type App struct {
	Manager *Manager
	FS      filesystem.Filesystem

	storages *store.ClientStorages
	startup  *workers.Workers
	cleaner  *workers.CacheCleaner
	logger   *logger.Logger
}

// NewApp opens the local store, creates the filesystem and the server
// adapter and wires them into a [Manager].
func NewApp(ctx context.Context, cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, cfg.App, cfg.Settings, log)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	fs := filesystem.NewOS(cfg.Storage.Files, serverAdapter, log)
	session := service.NewSession()

	manager := NewManager(
		service.NewConnections(storages.LocalStore, serverAdapter, session, log),
		service.NewExecutor(storages.LocalStore, fs, log),
		session,
		StaticNetwork(cfg.Connection.Network),
		cfg.Connection.Mode,
		log,
	)

	cleaner := workers.NewCacheCleaner(fs, cfg.Workers.CacheMaxAge, log)

	return &App{
		Manager:  manager,
		FS:       fs,
		storages: storages,
		startup:  workers.NewWorkers(cleaner),
		cleaner:  cleaner,
		logger:   log,
	}, nil
}

// RunStartupWorkers runs the workers due at process start. Their failures
// are logged and do not stop the client.
func (a *App) RunStartupWorkers(ctx context.Context) {
	if err := a.startup.Run(ctx); err != nil {
		a.logger.Warn().Err(err).Msg("startup workers failed")
	}
}

// CacheCleaner returns the worker clearing the temporary download root.
func (a *App) CacheCleaner() *workers.CacheCleaner {
	return a.cleaner
}

func (a *App) Close() error {
	return a.storages.Close()
}
