package service

import (
	"context"
	"math"
	"sort"

	"gorm.io/gorm"

	"github.com/mbellini/foodly/backend/internal/models"
	"github.com/mbellini/foodly/backend/internal/types"
)

// kcalEpsilon guards the per-kcal density ratios against division by zero
// for zero-calorie foods.
const kcalEpsilon = 1e-6

// SuggestionService ranks pantry foods against the day's remaining targets
// and proposes quantities. It reads the pantry but never mutates it.
type SuggestionService struct {
	db      *gorm.DB
	targets *TargetService
	ledger  *LedgerService
}

// NewSuggestionService creates a new SuggestionService instance
func NewSuggestionService(db *gorm.DB, targets *TargetService, ledger *LedgerService) *SuggestionService {
	return &SuggestionService{db: db, targets: targets, ledger: ledger}
}

// Suggest computes the day's residual needs and proposes up to three pantry
// foods with quantities sized to cover about 80% of the main deficit.
// Every degenerate case (empty pantry, all targets met, zero-value foods)
// degrades to a partial or empty result, never an error.
func (s *SuggestionService) Suggest(ctx context.Context, date string) (*types.SuggestionResult, error) {
	totals, err := s.ledger.DayTotals(ctx, date)
	if err != nil {
		return nil, err
	}
	targets, err := s.targets.ComputeTargets(ctx)
	if err != nil {
		return nil, err
	}

	residuals := map[types.Nutrient]float64{
		types.NutrientKcal:    max(0, targets.Kcal-totals.Kcal),
		types.NutrientProtein: max(0, targets.ProtG-totals.ProtG),
		types.NutrientCarb:    max(0, targets.CarbG-totals.CarbG),
		types.NutrientFat:     max(0, targets.FatG-totals.FatG),
		types.NutrientFiber:   max(0, targets.FiberG-totals.FiberG),
	}

	var candidates []models.PantryEntry
	err = s.db.
		Joins("JOIN foods ON foods.id = pantry_entries.food_id").
		Where("pantry_entries.qty_g > 0").
		Order("foods.name").
		Preload("Food").
		Find(&candidates).Error
	if err != nil {
		return nil, err
	}

	if len(candidates) == 0 {
		return &types.SuggestionResult{
			Options:     []types.SuggestionOption{},
			Residuals:   residuals,
			MainDeficit: types.NutrientProtein,
			Note:        "pantry empty or depleted",
		}, nil
	}

	mainDeficit := mainDeficitOf(residuals)

	sort.SliceStable(candidates, func(i, j int) bool {
		return scoreCandidate(&candidates[i].Food, mainDeficit, residuals) >
			scoreCandidate(&candidates[j].Food, mainDeficit, residuals)
	})
	if len(candidates) > 5 {
		candidates = candidates[:5]
	}

	options := make([]types.SuggestionOption, 0, 3)
	for _, cand := range candidates {
		grams := proposedGrams(&cand, mainDeficit, residuals[mainDeficit])
		if grams <= 0 {
			continue
		}
		factor := grams / 100
		options = append(options, types.SuggestionOption{
			FoodID: cand.FoodID,
			Name:   cand.Food.Name,
			Grams:  grams,
			Delta: types.NutrientDelta{
				Kcal:   round1(cand.Food.Kcal100g * factor),
				ProtG:  round1(cand.Food.Prot100g * factor),
				CarbG:  round1(cand.Food.Carb100g * factor),
				FatG:   round1(cand.Food.Fat100g * factor),
				FiberG: round1(cand.Food.Fiber100g * factor),
			},
		})
		if len(options) == 3 {
			break
		}
	}

	return &types.SuggestionResult{
		Options:     options,
		Residuals:   residuals,
		MainDeficit: mainDeficit,
	}, nil
}

// mainDeficitOf picks the macro with the largest residual. Kcal is
// excluded; ties resolve in protein, carb, fat order and protein is the
// fallback when nothing is deficient.
func mainDeficitOf(residuals map[types.Nutrient]float64) types.Nutrient {
	main := types.NutrientProtein
	best := residuals[types.NutrientProtein]
	for _, k := range []types.Nutrient{types.NutrientCarb, types.NutrientFat} {
		if residuals[k] > best {
			main = k
			best = residuals[k]
		}
	}
	return main
}

// scoreCandidate rates a food's fit for the main deficit: nutrient density
// per kcal weighted x3, with small fiber bonuses and a fat penalty once the
// fat target is already met.
func scoreCandidate(food *models.Food, mainDeficit types.Nutrient, residuals map[types.Nutrient]float64) float64 {
	kcal := max(kcalEpsilon, food.Kcal100g)
	score := 0.0

	switch mainDeficit {
	case types.NutrientProtein:
		score += (food.Prot100g/kcal)*3 + food.Fiber100g*0.02
	case types.NutrientCarb:
		score += (food.Carb100g/kcal)*3 + food.Fiber100g*0.03
	case types.NutrientFat:
		score += (food.Fat100g / kcal) * 3
	}

	if residuals[types.NutrientFiber] > 5 {
		score += food.Fiber100g * 0.05
	}
	if residuals[types.NutrientFat] <= 0 {
		score -= food.Fat100g / kcal
	}
	return score
}

// proposedGrams sizes a portion to cover 80% of the main-deficit residual
// with this food alone, capped by the entry's available quantity and
// rounded to the nearest 5 g. Returns 0 when the food carries none of the
// deficient nutrient.
func proposedGrams(entry *models.PantryEntry, mainDeficit types.Nutrient, residual float64) float64 {
	var per100 float64
	switch mainDeficit {
	case types.NutrientProtein:
		per100 = entry.Food.Prot100g
	case types.NutrientCarb:
		per100 = entry.Food.Carb100g
	case types.NutrientFat:
		per100 = entry.Food.Fat100g
	}
	if per100 <= 0 {
		return 0
	}
	grams := min(entry.QtyG, max(0, 0.8*residual/per100*100))
	grams = 5 * math.Round(grams/5)
	if grams > entry.QtyG {
		// Rounding must not propose more than the entry holds.
		grams = 5 * math.Floor(entry.QtyG/5)
	}
	return grams
}
