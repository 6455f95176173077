package models

// Food is an immutable nutrient profile. All nutrient values are per 100 g
// of the food; sodium is in milligrams, everything else in grams or kcal.
type Food struct {
	ID           uint     `gorm:"primarykey" json:"id"`
	Name         string   `gorm:"not null;index" json:"name"`
	Brand        *string  `json:"brand,omitempty"`
	Barcode      *string  `json:"barcode,omitempty"`
	Kcal100g     float64  `gorm:"column:kcal_100g;not null" json:"kcal_100g"`
	Prot100g     float64  `gorm:"column:prot_100g;not null" json:"prot_100g"`
	Carb100g     float64  `gorm:"column:carb_100g;not null" json:"carb_100g"`
	Fat100g      float64  `gorm:"column:fat_100g;not null" json:"fat_100g"`
	Fiber100g    float64  `gorm:"column:fiber_100g;default:0" json:"fiber_100g"`
	Sugar100g    float64  `gorm:"column:sugar_100g;default:0" json:"sugar_100g"`
	SatFat100g   float64  `gorm:"column:satfat_100g;default:0" json:"satfat_100g"`
	SodiumMg100g float64  `gorm:"column:sodium_mg_100g;default:0" json:"sodium_mg_100g"`
	Source       string   `json:"source,omitempty"`
	LastUpdated  string   `json:"last_updated,omitempty"`
}
