package service

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mbellini/foodly/backend/internal/models"
	"github.com/mbellini/foodly/backend/internal/types"
)

func suggestionFixture(db *gorm.DB) *SuggestionService {
	return NewSuggestionService(db, NewTargetService(db), NewLedgerService(db))
}

func TestSuggestEmptyPantry(t *testing.T) {
	db := setupTestDB(t)
	seedSettings(t, db, models.UserSettings{WeightKg: 70, HeightCm: 175, Age: 30, Sex: "M", ActivityLevel: 1.6})

	result, err := suggestionFixture(db).Suggest(context.Background(), "")
	require.NoError(t, err)

	assert.Empty(t, result.Options)
	assert.Equal(t, "pantry empty or depleted", result.Note)
	assert.Equal(t, types.NutrientProtein, result.MainDeficit)
	assert.NotEmpty(t, result.Residuals)
}

func TestSuggestCarbDeficitScenario(t *testing.T) {
	db := setupTestDB(t)
	// kcal 2000, protein target 90 g, fat target 40 g, carb target 320 g.
	seedSettings(t, db, models.UserSettings{
		WeightKg: 50, HeightCm: 170, Age: 30, Sex: "M", ActivityLevel: 1.5,
		KcalTarget: f64ptr(2000),
	})

	// Cover protein and fat with an off-pantry food so only carbs remain.
	eaten := createFood(t, db, models.Food{Name: "Chicken mix", Kcal100g: 190, Prot100g: 25, Fat100g: 10})
	ledger := NewLedgerService(db)
	_, err := ledger.LogConsumption(context.Background(), &types.ConsumeRequest{FoodID: eaten.ID, Grams: 400})
	require.NoError(t, err)

	protRich := createFood(t, db, models.Food{Name: "A protein", Kcal100g: 100, Prot100g: 20})
	carbRich := createFood(t, db, models.Food{Name: "B carbs", Kcal100g: 350, Carb100g: 80})
	fatRich := createFood(t, db, models.Food{Name: "C fat", Kcal100g: 450, Fat100g: 50})
	for _, f := range []models.Food{protRich, carbRich, fatRich} {
		createPantryEntry(t, db, models.PantryEntry{FoodID: f.ID, QtyG: 500})
	}

	result, err := suggestionFixture(db).Suggest(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, types.NutrientCarb, result.MainDeficit)
	require.Len(t, result.Options, 1) // only the carb food carries the deficient nutrient
	opt := result.Options[0]
	assert.Equal(t, carbRich.ID, opt.FoodID)
	assert.Greater(t, opt.Grams, 0.0)
	assert.LessOrEqual(t, opt.Grams, 500.0)
	assert.Greater(t, opt.Delta.CarbG, 0.0)
}

func TestSuggestCapsOptionsAtThree(t *testing.T) {
	db := setupTestDB(t)
	seedSettings(t, db, models.UserSettings{WeightKg: 70, HeightCm: 175, Age: 30, Sex: "M", ActivityLevel: 1.6})

	names := []string{"Eggs", "Tuna", "Chicken", "Tofu", "Skyr"}
	for _, name := range names {
		f := createFood(t, db, models.Food{Name: name, Kcal100g: 150, Prot100g: 20})
		createPantryEntry(t, db, models.PantryEntry{FoodID: f.ID, QtyG: 500})
	}

	result, err := suggestionFixture(db).Suggest(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, result.Options, 3)
}

func TestSuggestNeverExceedsAvailableQuantity(t *testing.T) {
	db := setupTestDB(t)
	seedSettings(t, db, models.UserSettings{WeightKg: 70, HeightCm: 175, Age: 30, Sex: "M", ActivityLevel: 1.6})

	f := createFood(t, db, models.Food{Name: "Tuna", Kcal100g: 116, Prot100g: 25})
	createPantryEntry(t, db, models.PantryEntry{FoodID: f.ID, QtyG: 203})

	result, err := suggestionFixture(db).Suggest(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, result.Options, 1)

	opt := result.Options[0]
	assert.LessOrEqual(t, opt.Grams, 203.0)
	assert.Zero(t, math.Mod(opt.Grams, 5)) // portions are proposed in 5 g steps
}

func TestSuggestAllTargetsMet(t *testing.T) {
	db := setupTestDB(t)
	seedSettings(t, db, models.UserSettings{
		WeightKg: 0, HeightCm: 0, Age: 0, Sex: "F", ActivityLevel: 1,
		KcalTarget: f64ptr(0),
	})

	f := createFood(t, db, models.Food{Name: "Tuna", Kcal100g: 116, Prot100g: 25})
	createPantryEntry(t, db, models.PantryEntry{FoodID: f.ID, QtyG: 100})

	result, err := suggestionFixture(db).Suggest(context.Background(), "")
	require.NoError(t, err)

	// Nothing is deficient: all proposals size to zero grams and drop out.
	assert.Empty(t, result.Options)
	assert.Equal(t, types.NutrientProtein, result.MainDeficit)
	assert.Empty(t, result.Note)
}

func TestMainDeficitTieOrder(t *testing.T) {
	equal := map[types.Nutrient]float64{
		types.NutrientProtein: 50, types.NutrientCarb: 50, types.NutrientFat: 50,
	}
	assert.Equal(t, types.NutrientProtein, mainDeficitOf(equal))

	carbHeavy := map[types.Nutrient]float64{
		types.NutrientProtein: 10, types.NutrientCarb: 300, types.NutrientFat: 10,
	}
	assert.Equal(t, types.NutrientCarb, mainDeficitOf(carbHeavy))

	kcalIgnored := map[types.Nutrient]float64{
		types.NutrientKcal: 9999, types.NutrientProtein: 1, types.NutrientCarb: 0, types.NutrientFat: 0,
	}
	assert.Equal(t, types.NutrientProtein, mainDeficitOf(kcalIgnored))
}

func TestScoreFatPenaltyWhenFatCovered(t *testing.T) {
	fatty := &models.Food{Name: "Butter", Kcal100g: 717, Fat100g: 81, Prot100g: 0.9}

	needsFat := map[types.Nutrient]float64{types.NutrientFat: 20}
	fatCovered := map[types.Nutrient]float64{types.NutrientFat: 0}

	unpenalized := scoreCandidate(fatty, types.NutrientProtein, needsFat)
	penalized := scoreCandidate(fatty, types.NutrientProtein, fatCovered)
	assert.Less(t, penalized, unpenalized)
}

func TestScoreFiberBonus(t *testing.T) {
	fibrous := &models.Food{Name: "Bran", Kcal100g: 250, Carb100g: 50, Fiber100g: 15}

	lowFiberNeed := map[types.Nutrient]float64{types.NutrientFiber: 2, types.NutrientFat: 10}
	highFiberNeed := map[types.Nutrient]float64{types.NutrientFiber: 12, types.NutrientFat: 10}

	base := scoreCandidate(fibrous, types.NutrientCarb, lowFiberNeed)
	boosted := scoreCandidate(fibrous, types.NutrientCarb, highFiberNeed)
	assert.Greater(t, boosted, base)
}

func TestProposedGramsSkipsZeroNutrientFoods(t *testing.T) {
	entry := &models.PantryEntry{
		QtyG: 500,
		Food: models.Food{Name: "Oil", Kcal100g: 900, Fat100g: 100},
	}
	assert.Zero(t, proposedGrams(entry, types.NutrientCarb, 300))
}
