package database

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"safeguardian-backend/pkg/config"
)

// NewPostgresConnection opens the pooled gorm connection used by every
// repository. The handle is injected into constructors; nothing reads it
// through a global.
func NewPostgresConnection(cfg *config.Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{TranslateError: true}
	if !cfg.IsDevelopment() {
		gormCfg.Logger = logger.Default.LogMode(logger.Error)
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), gormCfg)
	if err != nil {
		return nil, err
	}
	return db, nil
}
