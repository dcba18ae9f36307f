package db

import (
	"fmt"

	"gamehub/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the database and migrates the schema. The returned handle is
// injected into the handlers; nothing holds it globally.
func Connect(dsn string) (*gorm.DB, error) {
	database, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err := database.AutoMigrate(
		&models.User{},
		&models.Review{},
		&models.Comment{},
		&models.TierListEntry{},
		&models.Follow{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate: %w", err)
	}

	return database, nil
}
