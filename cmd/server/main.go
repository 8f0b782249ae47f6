package main

import (
	"log"

	"go.uber.org/zap"

	"github.com/stagebook/stagebook/internal/config"
	"github.com/stagebook/stagebook/internal/database"
	"github.com/stagebook/stagebook/internal/flash"
	"github.com/stagebook/stagebook/internal/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	zapLogger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("Failed to build logger:", err)
	}
	defer zapLogger.Sync()
	logger := zapLogger.Sugar()

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		logger.Fatalw("failed to connect to database", "error", err)
	}

	if cfg.SeedOnStart {
		if err := database.SeedData(db); err != nil {
			logger.Fatalw("failed to seed data", "error", err)
		}
	}

	flashStore := flash.NewStore(cfg, logger)
	defer flashStore.Close()

	r := router.New(db, flashStore, logger, nil)

	logger.Infow("server starting", "port", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		logger.Fatalw("server stopped", "error", err)
	}
}
