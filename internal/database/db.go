package database

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"jobboard/internal/models"
)

func Connect(dsn string, log *zap.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	log.Info("database connection established")

	if err := db.AutoMigrate(&models.Job{}); err != nil {
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return db, nil
}
