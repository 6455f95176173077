package models

// MealType is the fixed meal enumeration for consumption logs.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

// Valid reports whether m is one of the four known meal categories.
func (m MealType) Valid() bool {
	switch m {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
		return true
	}
	return false
}

// ConsumptionLog is an append-only record of a single consumption event.
// Rows are never updated or deleted. TS is an ISO-8601 timestamp string so
// that day windows can be selected with plain lexicographic comparison.
type ConsumptionLog struct {
	ID     uint     `gorm:"primarykey" json:"id"`
	TS     string   `gorm:"column:ts;not null;index" json:"ts"`
	FoodID uint     `gorm:"not null;index" json:"food_id"`
	Food   Food     `gorm:"foreignKey:FoodID" json:"food,omitempty"`
	Grams  float64  `gorm:"not null" json:"grams"`
	Meal   MealType `json:"meal"`
	Note   *string  `json:"note,omitempty"`
}
