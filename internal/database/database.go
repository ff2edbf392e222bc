package database

import (
	"fmt"

	"dzair/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// NewDatabase opens the embedded database file and migrates the schema.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := AutoMigrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// AutoMigrate creates or extends tables to match the current models.
// Migration is strictly additive: this is a bookkeeping database and must
// keep its rows across restarts.
func AutoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Client{},
		&models.Product{},
		&models.Sale{},
		&models.SponsoredFee{},
	)
	if err != nil {
		return fmt.Errorf("failed to auto-migrate database: %w", err)
	}
	return nil
}
