package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"
	"time"

	"github.com/mbellini/foodly/backend/config"
	"github.com/mbellini/foodly/backend/internal/database"
	"github.com/mbellini/foodly/backend/internal/models"
)

// seedFood mirrors the food JSON shape accepted from a catalog file.
type seedFood struct {
	Name         string  `json:"name"`
	Brand        *string `json:"brand"`
	Barcode      *string `json:"barcode"`
	Kcal100g     float64 `json:"kcal_100g"`
	Prot100g     float64 `json:"prot_100g"`
	Carb100g     float64 `json:"carb_100g"`
	Fat100g      float64 `json:"fat_100g"`
	Fiber100g    float64 `json:"fiber_100g"`
	Sugar100g    float64 `json:"sugar_100g"`
	SatFat100g   float64 `json:"satfat_100g"`
	SodiumMg100g float64 `json:"sodium_mg_100g"`
}

func main() {
	file := flag.String("file", "", "optional JSON file with extra foods to import")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	if err := database.Seed(db); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	if *file == "" {
		log.Println("Seed complete")
		return
	}

	data, err := os.ReadFile(*file)
	if err != nil {
		log.Fatalf("Failed to read %s: %v", *file, err)
	}
	var extra []seedFood
	if err := json.Unmarshal(data, &extra); err != nil {
		log.Fatalf("Failed to parse %s: %v", *file, err)
	}

	now := time.Now().UTC().Format("2006-01-02T15:04:05")
	imported := 0
	for _, f := range extra {
		if f.Name == "" {
			continue
		}
		var count int64
		if err := db.Model(&models.Food{}).Where("name = ?", f.Name).Count(&count).Error; err != nil {
			log.Fatalf("Failed to check existing food %q: %v", f.Name, err)
		}
		if count > 0 {
			continue
		}
		food := models.Food{
			Name:         f.Name,
			Brand:        f.Brand,
			Barcode:      f.Barcode,
			Kcal100g:     f.Kcal100g,
			Prot100g:     f.Prot100g,
			Carb100g:     f.Carb100g,
			Fat100g:      f.Fat100g,
			Fiber100g:    f.Fiber100g,
			Sugar100g:    f.Sugar100g,
			SatFat100g:   f.SatFat100g,
			SodiumMg100g: f.SodiumMg100g,
			Source:       "import",
			LastUpdated:  now,
		}
		if err := db.Create(&food).Error; err != nil {
			log.Fatalf("Failed to import food %q: %v", f.Name, err)
		}
		imported++
	}
	log.Printf("Seed complete, imported %d foods from %s", imported, *file)
}
