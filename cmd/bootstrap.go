package cmd

import (
	"fmt"

	"track-manager/core/assets"
	"track-manager/core/config"
	"track-manager/core/database"
	"track-manager/core/logger"
	"track-manager/core/metrics"
	"track-manager/core/reconcile"
	"track-manager/core/storage"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// services holds the components shared by the server and the CLI commands.
type services struct {
	cfg     *config.Config
	logger  *zap.Logger
	store   storage.ObjectStore
	storage *assets.StorageManager
	db      *gorm.DB
	manager *reconcile.Manager
}

// bootstrap loads configuration and wires storage and the sync engine.
// With persist_state the database is required; otherwise it is not opened.
func bootstrap(logCfg *logger.Config) (*services, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if logCfg == nil {
		logCfg = &cfg.Log
	}
	logg, err := logger.New(logCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	store, err := storage.Open(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	sm := assets.NewStorageManager(store, cfg.Library, cfg.Storage.Timeout(), logg)

	rt := &services{
		cfg:     cfg,
		logger:  logg,
		store:   store,
		storage: sm,
	}

	var state reconcile.StateStore = reconcile.NewMemoryStateStore()
	if cfg.Sync.PersistState {
		db, err := database.Connect(cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("database connection required for persisted sync state: %w", err)
		}
		gormState, err := reconcile.NewGormStateStore(db)
		if err != nil {
			return nil, err
		}
		rt.db = db
		state = gormState
	}

	rt.manager = reconcile.NewManager(sm, state, cfg.Sync, logg).WithMetrics(metrics.Init(nil))
	return rt, nil
}

// admin returns the bucket administration side of the store, if the provider has one.
func (rt *services) admin() storage.Admin {
	admin, _ := rt.store.(storage.Admin)
	return admin
}

// cliLogger is the console configuration used by the one-shot commands.
func cliLogger(verbose bool) *logger.Config {
	level := "warn"
	if verbose {
		level = "info"
	}
	return &logger.Config{Level: level, Format: "console"}
}
