package app

import (
	"fmt"
	"io/fs"

	"github.com/hance08/tally/internal/config"
	"github.com/hance08/tally/internal/logger"
	"github.com/hance08/tally/internal/service"
	"github.com/hance08/tally/internal/store"
	"github.com/rs/zerolog"
)

type App struct {
	Service *service.Service
	Store   store.TxRepository
	Config  *config.Config
	Log     zerolog.Logger
}

// NewApp initialize logger, database and services from cfg, then return App entity
func NewApp(cfg *config.Config, migrationFS fs.FS) (*App, func(), error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, nil, err
	}

	dbPath, err := cfg.DatabasePath()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to resolve database path: %w", err)
	}

	dbStore, err := store.NewStore(dbPath, migrationFS)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	log.Debug().Str("path", dbPath).Msg("database ready")

	svc, err := service.NewService(dbStore, cfg, log)
	if err != nil {
		_ = dbStore.Close()
		return nil, nil, err
	}

	cleanup := func() {
		if err := dbStore.Close(); err != nil {
			log.Error().Err(err).Msg("error closing database")
		}
	}

	return &App{
		Service: svc,
		Store:   dbStore,
		Config:  cfg,
		Log:     log,
	}, cleanup, nil
}
