package infra

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"autoescuelas/internal/infra/config"
	"autoescuelas/internal/infra/logger"
	"autoescuelas/internal/models/db_models"
)

// OpenPostgres opens the connection pool used by every repository. The
// handle is injected through fx; nothing keeps a package-level copy.
func OpenPostgres(cfg *config.AppConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		logger.Log.WithError(err).Error("Error connecting to database")
		return nil, err
	}

	return db, nil
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&db_models.Province{},
		&db_models.City{},
		&db_models.DrivingSchool{},
		&db_models.Course{},
		&db_models.Review{},
		&db_models.BlogArticle{},
		&db_models.User{},
	)
}

func ClosePostgres(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		logger.Log.WithError(err).Error("Error getting database instance")
		return
	}

	if err := sqlDB.Close(); err != nil {
		logger.Log.WithError(err).Error("Error closing database connection")
	} else {
		logger.Log.Info("PostgreSQL database connection closed")
	}
}

// Ping verifies the database is reachable; used by the healthcheck.
func Ping(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
