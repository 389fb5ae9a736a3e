package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"recipe-share-backend/internal/utils"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// ConnectDB opens the configured database. The default is a SQLite file,
// which is what a small community deployment runs on; DB_DRIVER=postgres
// switches to a server database with the DB_* keys.
func ConnectDB() (*gorm.DB, error) {
	if utils.GetConfig("DB_DRIVER") == "postgres" {
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			utils.GetConfig("DB_HOST"),
			utils.GetConfig("DB_USER"),
			utils.GetConfig("DB_PASSWORD"),
			utils.GetConfig("DB_NAME"),
			utils.GetConfig("DB_PORT"),
		)

		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			log.Fatalf("Database connection failed: %v", err)
			return nil, err
		}
		return db, nil
	}

	path := utils.GetConfig("SQLITE_PATH")
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return nil, err
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
		return nil, err
	}

	// SQLite leaves foreign keys off unless asked.
	db.Exec("PRAGMA foreign_keys = ON")
	return db, nil
}
