package db

import (
	"fmt"
	"strings"

	"github.com/ARQAP/quanti-backend/src/logging"
	"github.com/ARQAP/quanti-backend/src/models"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const sqlitePrefix = "sqlite://"

// Connect opens the database named by dsn. A "sqlite://" prefix selects a local
// SQLite file, anything else is handed to Postgres.
func Connect(dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	driver := "postgres"
	if path, ok := strings.CutPrefix(dsn, sqlitePrefix); ok {
		driver = "sqlite"
		dialector = sqlite.Open(path)
	} else {
		dialector = postgres.Open(dsn)
	}

	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		logging.Get().Error("Error connecting to the %s database: %v", driver, err)
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	logging.Get().Info("Quanti DB connected successfully (%s)", driver)
	return db, nil
}

// Migrate creates or updates every table
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.AllModels()...); err != nil {
		return fmt.Errorf("auto-migration failed: %w", err)
	}
	return nil
}
