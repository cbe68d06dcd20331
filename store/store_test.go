package store

import (
	"testing"

	"restaurant-api/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// Every pooled connection to :memory: gets its own database; pin the
	// pool so the migrated schema is the one queries see.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Account{},
		&models.UserProfile{},
		&models.MenuItem{},
		&models.DailyMenu{},
		&models.Order{},
		&models.Reservation{},
		&models.Table{},
		&models.Feedback{},
	))
	return db
}
