package models

// PantryEntry is a quantity-on-hand record for a food. Quantity only ever
// decreases through consumption depletion and never goes below zero; an
// entry that reaches zero stays in place and is simply skipped by the
// qty_g > 0 filters.
type PantryEntry struct {
	ID         uint     `gorm:"primarykey" json:"id"`
	FoodID     uint     `gorm:"not null;index" json:"food_id"`
	Food       Food     `gorm:"foreignKey:FoodID" json:"food,omitempty"`
	QtyG       float64  `gorm:"column:qty_g;not null" json:"qty_g"`
	PackageG   *float64 `gorm:"column:package_g" json:"package_g,omitempty"`
	Location   *string  `json:"location,omitempty"`
	BestBefore *string  `gorm:"column:best_before" json:"best_before,omitempty"` // YYYY-MM-DD
	CreatedAt  string   `gorm:"column:created_at" json:"created_at"`             // ISO-8601, assigned on insert
}
