package models

// UserSettings is the singleton biometric profile used to derive daily
// targets. Exactly one row exists (id=1); the seed step creates it and
// updates always address that row.
type UserSettings struct {
	ID            uint     `gorm:"primarykey" json:"id"`
	WeightKg      float64  `gorm:"column:weight_kg;default:75" json:"weight_kg"`
	HeightCm      float64  `gorm:"column:height_cm;default:175" json:"height_cm"`
	Age           int      `gorm:"default:30" json:"age"`
	Sex           string   `gorm:"default:M" json:"sex"` // 'M' or 'F'
	ActivityLevel float64  `gorm:"column:activity_level;default:1.5" json:"activity_level"`
	KcalTarget    *float64 `gorm:"column:kcal_target" json:"kcal_target,omitempty"` // nil means use TDEE
	ProteinGPerKg *float64 `gorm:"column:protein_g_per_kg" json:"protein_g_per_kg,omitempty"`
	FatGPerKg     *float64 `gorm:"column:fat_g_per_kg" json:"fat_g_per_kg,omitempty"`
}

// SettingsID is the fixed primary key of the singleton settings row.
const SettingsID uint = 1
