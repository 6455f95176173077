package service

import (
	"context"

	"gorm.io/gorm"

	"github.com/mbellini/foodly/backend/internal/models"
	"github.com/mbellini/foodly/backend/internal/types"
)

// SettingsService reads and updates the settings singleton. The seed step
// guarantees the row exists, so Get never has to create it.
type SettingsService struct {
	db *gorm.DB
}

// NewSettingsService creates a new SettingsService instance
func NewSettingsService(db *gorm.DB) *SettingsService {
	return &SettingsService{db: db}
}

// Get returns the settings singleton.
func (s *SettingsService) Get(ctx context.Context) (*models.UserSettings, error) {
	var settings models.UserSettings
	if err := s.db.First(&settings, "id = ?", models.SettingsID).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}

// Update overwrites the settings singleton with the request values.
func (s *SettingsService) Update(ctx context.Context, req *types.UpdateSettingsRequest) (*models.UserSettings, error) {
	var settings models.UserSettings
	if err := s.db.First(&settings, "id = ?", models.SettingsID).Error; err != nil {
		return nil, err
	}

	settings.WeightKg = req.WeightKg
	settings.HeightCm = req.HeightCm
	settings.Age = req.Age
	settings.Sex = req.Sex
	settings.ActivityLevel = req.ActivityLevel
	settings.KcalTarget = req.KcalTarget
	settings.ProteinGPerKg = req.ProteinGPerKg
	settings.FatGPerKg = req.FatGPerKg

	if err := s.db.Save(&settings).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}
