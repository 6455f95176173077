package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/mbellini/foodly/backend/internal/models"
	"github.com/mbellini/foodly/backend/internal/types"
)

// LedgerService records consumption events and aggregates them into daily
// totals. Logging and the matching pantry depletion run in one transaction.
type LedgerService struct {
	db *gorm.DB
}

// NewLedgerService creates a new LedgerService instance
func NewLedgerService(db *gorm.DB) *LedgerService {
	return &LedgerService{db: db}
}

// LogConsumption appends an immutable consumption log and depletes the
// pantry FIFO for the same food and amount. Both writes commit or roll
// back together.
func (s *LedgerService) LogConsumption(ctx context.Context, req *types.ConsumeRequest) (*models.ConsumptionLog, error) {
	if req.Grams <= 0 {
		return nil, ErrInvalidQuantity
	}

	meal := models.MealType(req.Meal)
	if meal == "" {
		meal = models.MealSnack
	}
	if !meal.Valid() {
		return nil, ErrInvalidMeal
	}

	var entry models.ConsumptionLog
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var food models.Food
		if err := tx.First(&food, "id = ?", req.FoodID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrFoodNotFound
			}
			return err
		}

		entry = models.ConsumptionLog{
			TS:     nowISO(),
			FoodID: req.FoodID,
			Grams:  req.Grams,
			Meal:   meal,
			Note:   req.Note,
		}
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}
		return depleteFIFO(tx, req.FoodID, req.Grams)
	})
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// DayTotals sums the nutrient impact of every consumption log inside the
// day's window. Per-100g food values are scaled by grams/100; each field is
// rounded to one decimal. A day with no logs yields all-zero totals.
func (s *LedgerService) DayTotals(ctx context.Context, date string) (types.DailyTotals, error) {
	start, end, err := dayBounds(date)
	if err != nil {
		return types.DailyTotals{}, err
	}

	var logs []models.ConsumptionLog
	if err := s.db.Preload("Food").Where("ts BETWEEN ? AND ?", start, end).Find(&logs).Error; err != nil {
		return types.DailyTotals{}, err
	}

	var totals types.DailyTotals
	for _, l := range logs {
		factor := l.Grams / 100
		totals.Kcal += l.Food.Kcal100g * factor
		totals.ProtG += l.Food.Prot100g * factor
		totals.CarbG += l.Food.Carb100g * factor
		totals.FatG += l.Food.Fat100g * factor
		totals.FiberG += l.Food.Fiber100g * factor
		totals.SodiumMg += l.Food.SodiumMg100g * factor
	}

	totals.Kcal = round1(totals.Kcal)
	totals.ProtG = round1(totals.ProtG)
	totals.CarbG = round1(totals.CarbG)
	totals.FatG = round1(totals.FatG)
	totals.FiberG = round1(totals.FiberG)
	totals.SodiumMg = round1(totals.SodiumMg)
	return totals, nil
}
