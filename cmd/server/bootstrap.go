package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/iliyamo/gym-management/internal/config"
	"github.com/iliyamo/gym-management/internal/database"
	"github.com/iliyamo/gym-management/internal/logger"
)

// bootstrap loads config, installs the logger, opens MySQL and makes sure
// every table exists.
func bootstrap(ctx context.Context) (config.Config, *sql.DB, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, nil, nil, fmt.Errorf("load config: %w", err)
	}
	if err := logger.Init(cfg.Log); err != nil {
		return cfg, nil, nil, fmt.Errorf("init logger: %w", err)
	}
	log := logger.WithComponent("main")

	db, err := database.Open(cfg)
	if err != nil {
		return cfg, nil, nil, fmt.Errorf("open database: %w", err)
	}
	if err := database.EnsureSchema(ctx, db, logger.WithComponent("schema")); err != nil {
		_ = db.Close()
		return cfg, nil, nil, err
	}
	return cfg, db, log, nil
}
