package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"tours-backend/models"
)

func EnvOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

// DatabasePath returns the location of the single database file.
func DatabasePath() string {
	return EnvOrDefault("DATABASE_PATH", "./data/tours.db")
}

// UploadDir returns the root of the upload directory tree.
func UploadDir() string {
	return EnvOrDefault("UPLOAD_DIR", "./data/uploads")
}

// ConnectDatabase opens the sqlite file, applies the WAL single-writer
// discipline, and migrates the content schema. The handle is returned, not
// stored in a package global, so tests can open isolated stores.
func ConnectDatabase(path string) (*gorm.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database dir: %w", err)
		}
	}

	// WAL keeps readers off the writer's back; a busy timeout covers the
	// brief writer-vs-writer window.
	dsn := path + "?_journal_mode=WAL&_foreign_keys=on&_busy_timeout=5000"

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.TourRecord{},
		&models.BlogPost{},
		&models.GalleryImageRecord{},
		&models.TestimonialRecord{},
		&models.Session{},
		&models.ContactSubmission{},
		&models.InquirySubmission{},
	); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	return db, nil
}
