package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"pricing/config"
	logs "pricing/internal/infra/log"
	"pricing/internal/infra/persistence/postgres"

	"gorm.io/gorm"
)

func openDatabase() (*gorm.DB, *slog.Logger, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, nil, err
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return nil, nil, err
	}

	db, err := postgres.Open(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	return db, logger, nil
}

func runMigrate(ctx context.Context, out io.Writer) error {
	db, _, err := openDatabase()
	if err != nil {
		return err
	}
	defer closeDatabase(db)

	if err := postgres.AutoMigrate(ctx, db); err != nil {
		return err
	}

	fmt.Fprintln(out, "pricing tables are up to date")

	return nil
}

func closeDatabase(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
