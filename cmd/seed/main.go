package main

import (
	"context"
	"log"

	"go.uber.org/zap"

	"marketplace/internal/config"
	"marketplace/internal/db"
	"marketplace/internal/logging"
	"marketplace/internal/seed"
)

func main() {
	cfg := config.Load()

	logger, err := logging.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger init: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("starting seed script", zap.String("driver", cfg.DBDriver))

	gormDB, err := db.Open(cfg.DBDriver, cfg.DBDSN, logger)
	if err != nil {
		logger.Fatal("database init", zap.Error(err))
	}

	// Run migrations to ensure schema is up to date
	if err := db.Migrate(gormDB); err != nil {
		logger.Fatal("migrate", zap.Error(err))
	}

	res, err := seed.Run(context.Background(), gormDB, cfg.SeedAdminEmail, cfg.SeedAdminPassword)
	if err != nil {
		logger.Fatal("seed", zap.Error(err))
	}

	logger.Info("seed completed",
		zap.Int("rows_created", res.Created),
		zap.String("admin_email", cfg.SeedAdminEmail),
	)
}
