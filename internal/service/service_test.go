package service

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/mbellini/foodly/backend/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.UserSettings{},
		&models.Food{},
		&models.PantryEntry{},
		&models.ConsumptionLog{},
	))
	return db
}

func seedSettings(t *testing.T, db *gorm.DB, settings models.UserSettings) {
	t.Helper()
	settings.ID = models.SettingsID
	require.NoError(t, db.Create(&settings).Error)
}

func createFood(t *testing.T, db *gorm.DB, food models.Food) models.Food {
	t.Helper()
	require.NoError(t, db.Create(&food).Error)
	return food
}

func createPantryEntry(t *testing.T, db *gorm.DB, entry models.PantryEntry) models.PantryEntry {
	t.Helper()
	if entry.CreatedAt == "" {
		entry.CreatedAt = nowISO()
	}
	require.NoError(t, db.Create(&entry).Error)
	return entry
}

func pantryQty(t *testing.T, db *gorm.DB, entryID uint) float64 {
	t.Helper()
	var entry models.PantryEntry
	require.NoError(t, db.First(&entry, "id = ?", entryID).Error)
	return entry.QtyG
}

func strptr(s string) *string { return &s }

func f64ptr(v float64) *float64 { return &v }
