package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/webforge-studio/studio-api/internal/config"
	"github.com/webforge-studio/studio-api/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.LeadRequest{},
		&models.SecurityAuditRequest{},
		&models.Client{},
		&models.ClientProject{},
		&models.ClientProjectFile{},
		&models.ClientMessage{},
		&models.BlogPost{},
		&models.WebProject{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	return db
}
