package database

import (
	"cafe-platform/internal/domain/analytics"
	"cafe-platform/internal/domain/billing"
	"cafe-platform/internal/domain/cafes"
	"cafe-platform/internal/domain/campaigns"
	"cafe-platform/internal/domain/hashtags"
	"cafe-platform/internal/domain/leads"
	"cafe-platform/internal/domain/plans"
	"cafe-platform/internal/domain/social"
	"cafe-platform/internal/domain/users"
	"cafe-platform/internal/logger"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB(dsn string) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		logger.L.Fatal("failed to connect to database", zap.Error(err))
	}

	DB = db

	if err := DB.AutoMigrate(
		&users.User{},
		&cafes.Cafe{},
		&plans.Plan{},
		&billing.Payment{},
		&social.Post{},
		&campaigns.Campaign{},
		&hashtags.Research{},
		&leads.ContactLead{},
		&analytics.Snapshot{},
	); err != nil {
		logger.L.Fatal("automigrate failed", zap.Error(err))
	}

	logger.L.Info("database connected and migrated")
}
