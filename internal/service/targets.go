package service

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/mbellini/foodly/backend/internal/models"
	"github.com/mbellini/foodly/backend/internal/types"
)

const (
	defaultProteinGPerKg = 1.8
	defaultFatGPerKg     = 0.8
)

// TargetService derives daily calorie and macro targets from the settings
// singleton.
type TargetService struct {
	db *gorm.DB
}

// NewTargetService creates a new TargetService instance
func NewTargetService(db *gorm.DB) *TargetService {
	return &TargetService{db: db}
}

// ComputeTargets loads the settings singleton and derives its daily targets.
func (s *TargetService) ComputeTargets(ctx context.Context) (types.DailyTargets, error) {
	var settings models.UserSettings
	if err := s.db.First(&settings, "id = ?", models.SettingsID).Error; err != nil {
		return types.DailyTargets{}, err
	}
	return TargetsFromSettings(&settings), nil
}

// TargetsFromSettings computes the daily targets for one settings snapshot.
//
// The calorie target is the Mifflin-St Jeor BMR scaled by the activity
// level, unless an explicit kcal override is set. Protein and fat come from
// per-kg coefficients; carbs absorb whatever calories remain (4 kcal/g
// protein and carb, 9 kcal/g fat); fiber follows the 14 g per 1000 kcal
// heuristic. All outputs are rounded to one decimal.
func TargetsFromSettings(settings *models.UserSettings) types.DailyTargets {
	kcal := 0.0
	if settings.KcalTarget != nil {
		kcal = *settings.KcalTarget
	} else {
		kcal = bmrMifflin(settings.WeightKg, settings.HeightCm, settings.Age, settings.Sex) * settings.ActivityLevel
	}

	protPerKg := defaultProteinGPerKg
	if settings.ProteinGPerKg != nil {
		protPerKg = *settings.ProteinGPerKg
	}
	fatPerKg := defaultFatGPerKg
	if settings.FatGPerKg != nil {
		fatPerKg = *settings.FatGPerKg
	}

	protG := max(0, protPerKg*settings.WeightKg)
	fatG := max(0, fatPerKg*settings.WeightKg)
	carbG := max(0, (kcal-protG*4-fatG*9)/4)
	fiberG := (kcal / 1000) * 14

	return types.DailyTargets{
		Kcal:   round1(kcal),
		ProtG:  round1(protG),
		CarbG:  round1(carbG),
		FatG:   round1(fatG),
		FiberG: round1(fiberG),
	}
}

// bmrMifflin is the Mifflin-St Jeor basal metabolic rate. The sex offset is
// +5 for male ('M', case-insensitive) and -161 otherwise.
func bmrMifflin(weightKg, heightCm float64, age int, sex string) float64 {
	base := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if strings.EqualFold(sex, "M") {
		return base + 5
	}
	return base - 161
}
