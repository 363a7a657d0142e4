package services

import (
	"path/filepath"
	"testing"

	"tours-backend/config"

	"gorm.io/gorm"
)

// openTestDB opens an isolated store in a throwaway file, using the same
// connect path production uses.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := config.ConnectDatabase(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	return db
}
