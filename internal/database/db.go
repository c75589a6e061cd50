package database

import (
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"locallibrary/internal/config"
	"locallibrary/internal/models"
)

// ConnectDB opens the shared connection pool, verifies it, and brings
// the schema up to date. Called once at process start; the returned
// handle is reused by every request handler.
func ConnectDB(cfg *config.Config, logger *slog.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get generic DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := migrate(db, logger); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("Connected to the database successfully")
	return db, nil
}

func migrate(db *gorm.DB, logger *slog.Logger) error {
	if err := db.AutoMigrate(
		&models.Author{},
		&models.Genre{},
		&models.Book{},
		&models.BookInstance{},
	); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}

	// Genre names are unique ignoring case. A functional index does
	// what a schema-level unique tag cannot, and turns the duplicate
	// check-then-insert race into a conflict the insert reports.
	if err := db.Exec(
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_genres_name_lower ON genres (LOWER(name))",
	).Error; err != nil {
		return fmt.Errorf("create genre name index: %w", err)
	}

	logger.Info("Database migrations applied successfully")
	return nil
}
