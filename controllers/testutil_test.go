package controllers

import (
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"tours-backend/config"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := config.ConnectDatabase(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	return db
}
