package types

// CreateFoodRequest represents the request body for adding a food to the catalog
type CreateFoodRequest struct {
	Name         string  `json:"name" binding:"required"`
	Brand        *string `json:"brand"`
	Barcode      *string `json:"barcode"`
	Kcal100g     float64 `json:"kcal_100g" binding:"min=0"`
	Prot100g     float64 `json:"prot_100g" binding:"min=0"`
	Carb100g     float64 `json:"carb_100g" binding:"min=0"`
	Fat100g      float64 `json:"fat_100g" binding:"min=0"`
	Fiber100g    float64 `json:"fiber_100g" binding:"min=0"`
	Sugar100g    float64 `json:"sugar_100g" binding:"min=0"`
	SatFat100g   float64 `json:"satfat_100g" binding:"min=0"`
	SodiumMg100g float64 `json:"sodium_mg_100g" binding:"min=0"`
}

// AddStockRequest represents the request body for adding pantry stock
type AddStockRequest struct {
	FoodID     uint     `json:"food_id" binding:"required"`
	QtyG       float64  `json:"qty_g" binding:"required"`
	PackageG   *float64 `json:"package_g"`
	Location   *string  `json:"location"`
	BestBefore *string  `json:"best_before"` // YYYY-MM-DD
}

// ConsumeRequest represents the request body for logging a consumption
type ConsumeRequest struct {
	FoodID uint    `json:"food_id" binding:"required"`
	Grams  float64 `json:"grams" binding:"required"`
	Meal   string  `json:"meal"` // defaults to snack
	Note   *string `json:"note"`
}

// UpdateSettingsRequest represents the request body for editing the settings singleton
type UpdateSettingsRequest struct {
	WeightKg      float64  `json:"weight_kg" binding:"required,gt=0"`
	HeightCm      float64  `json:"height_cm" binding:"required,gt=0"`
	Age           int      `json:"age" binding:"required,gt=0"`
	Sex           string   `json:"sex" binding:"required"`
	ActivityLevel float64  `json:"activity_level" binding:"required,gt=0"`
	KcalTarget    *float64 `json:"kcal_target"`
	ProteinGPerKg *float64 `json:"protein_g_per_kg"`
	FatGPerKg     *float64 `json:"fat_g_per_kg"`
}

// RegisterRequest represents the request body for user registration
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest represents the request body for user login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
