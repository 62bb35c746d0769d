package cmd

import (
	"fmt"

	"inventory-manager/core/config"
	"inventory-manager/core/database"
	"inventory-manager/core/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// runtime holds what every database-backed command needs.
type runtime struct {
	cfg *config.Config
	log *zap.Logger
	db  *gorm.DB
}

// setup loads configuration, builds the logger and connects to the database.
func setup() (*runtime, error) {
	cfg, err := config.LoadConfig(envDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("database connection required: %w", err)
	}

	return &runtime{cfg: cfg, log: logg, db: db}, nil
}
