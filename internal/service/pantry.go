package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/mbellini/foodly/backend/internal/models"
	"github.com/mbellini/foodly/backend/internal/types"
)

// PantryService holds quantity-on-hand records and depletes them FIFO on
// consumption.
type PantryService struct {
	db *gorm.DB
}

// NewPantryService creates a new PantryService instance
func NewPantryService(db *gorm.DB) *PantryService {
	return &PantryService{db: db}
}

// AddStock creates a new pantry entry for a food. Quantity must be positive
// and the food must exist; an optional best-before date is validated as
// YYYY-MM-DD.
func (s *PantryService) AddStock(ctx context.Context, req *types.AddStockRequest) (*models.PantryEntry, error) {
	if req.QtyG <= 0 {
		return nil, ErrInvalidQuantity
	}
	if req.BestBefore != nil {
		if _, err := time.Parse(dateLayout, *req.BestBefore); err != nil {
			return nil, ErrInvalidDate
		}
	}

	var food models.Food
	if err := s.db.First(&food, "id = ?", req.FoodID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFoodNotFound
		}
		return nil, err
	}

	entry := models.PantryEntry{
		FoodID:     req.FoodID,
		QtyG:       req.QtyG,
		PackageG:   req.PackageG,
		Location:   req.Location,
		BestBefore: req.BestBefore,
		CreatedAt:  nowISO(),
	}
	if err := s.db.Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// List returns all pantry entries with their foods, ordered by food name.
// Exhausted entries (qty 0) are included; they are part of the inventory
// history even though depletion skips them.
func (s *PantryService) List(ctx context.Context) ([]models.PantryEntry, error) {
	var entries []models.PantryEntry
	err := s.db.
		Joins("JOIN foods ON foods.id = pantry_entries.food_id").
		Order("foods.name").
		Preload("Food").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// Deplete subtracts grams from a food's pantry stock, oldest-expiring
// first, in its own transaction.
func (s *PantryService) Deplete(ctx context.Context, foodID uint, grams float64) error {
	if grams <= 0 {
		return ErrInvalidQuantity
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		return depleteFIFO(tx, foodID, grams)
	})
}

// depleteFIFO walks the food's open pantry entries in FIFO order and
// subtracts the owed grams. Order is best-before ascending with missing
// dates sorting last (sentinel max date), ties broken by creation time.
// If the pantry holds less than requested the shortfall is dropped: no
// entry goes negative and no error is raised.
func depleteFIFO(tx *gorm.DB, foodID uint, grams float64) error {
	var entries []models.PantryEntry
	err := tx.
		Where("food_id = ? AND qty_g > 0", foodID).
		Order("COALESCE(best_before, '9999-12-31'), created_at").
		Find(&entries).Error
	if err != nil {
		return err
	}

	remaining := grams
	for _, entry := range entries {
		if remaining <= 0 {
			break
		}
		take := min(entry.QtyG, remaining)
		if err := tx.Model(&models.PantryEntry{}).
			Where("id = ?", entry.ID).
			UpdateColumn("qty_g", gorm.Expr("qty_g - ?", take)).Error; err != nil {
			return err
		}
		remaining -= take
	}
	return nil
}
