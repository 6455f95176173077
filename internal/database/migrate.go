package database

import (
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/mbellini/foodly/backend/internal/models"
)

// RunMigrations creates the schema via GORM auto-migration. The same model
// set works on sqlite and postgres.
func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.UserSettings{},
		&models.Food{},
		&models.PantryEntry{},
		&models.ConsumptionLog{},
	)
}

// Seed ensures the settings singleton exists and, on a fresh database,
// inserts a small starter catalog with matching pantry stock.
func Seed(db *gorm.DB) error {
	// Settings singleton: insert the defaults if the row is missing.
	settings := models.UserSettings{ID: models.SettingsID}
	if err := db.FirstOrCreate(&settings, "id = ?", models.SettingsID).Error; err != nil {
		return err
	}

	var foodCount int64
	if err := db.Model(&models.Food{}).Count(&foodCount).Error; err != nil {
		return err
	}
	if foodCount == 0 {
		now := time.Now().UTC().Format("2006-01-02T15:04:05")
		foods := []models.Food{
			{Name: "Tonno al naturale (scatoletta)", Kcal100g: 116, Prot100g: 25, Carb100g: 0, Fat100g: 1, SatFat100g: 0.2, SodiumMg100g: 300, Source: "seed", LastUpdated: now},
			{Name: "Gallette di mais", Kcal100g: 381, Prot100g: 8, Carb100g: 77, Fat100g: 3.6, Fiber100g: 3.0, Sugar100g: 0.6, SatFat100g: 0.5, SodiumMg100g: 5, Source: "seed", LastUpdated: now},
			{Name: "Prosciutto crudo", Kcal100g: 269, Prot100g: 26, Carb100g: 0, Fat100g: 18, SatFat100g: 6, SodiumMg100g: 2000, Source: "seed", LastUpdated: now},
		}
		if err := db.Create(&foods).Error; err != nil {
			return err
		}
		log.Printf("Seeded %d starter foods", len(foods))
	}

	var pantryCount int64
	if err := db.Model(&models.PantryEntry{}).Count(&pantryCount).Error; err != nil {
		return err
	}
	if pantryCount == 0 {
		var foods []models.Food
		if err := db.Order("id").Limit(3).Find(&foods).Error; err != nil {
			return err
		}
		if len(foods) == 3 {
			now := time.Now().UTC().Format("2006-01-02T15:04:05")
			pkg := 56.0
			dispensa := "dispensa"
			frigo := "frigo"
			entries := []models.PantryEntry{
				{FoodID: foods[0].ID, QtyG: 112, PackageG: &pkg, Location: &dispensa, CreatedAt: now},
				{FoodID: foods[1].ID, QtyG: 200, Location: &dispensa, CreatedAt: now},
				{FoodID: foods[2].ID, QtyG: 100, Location: &frigo, CreatedAt: now},
			}
			if err := db.Create(&entries).Error; err != nil {
				return err
			}
			log.Printf("Seeded %d starter pantry entries", len(entries))
		}
	}

	return nil
}
