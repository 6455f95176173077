package types

// Nutrient identifies one of the tracked macros/targets. It is a closed
// enumeration: code that branches on a Nutrient uses an exhaustive switch.
type Nutrient string

const (
	NutrientKcal    Nutrient = "kcal"
	NutrientProtein Nutrient = "prot_g"
	NutrientCarb    Nutrient = "carb_g"
	NutrientFat     Nutrient = "fat_g"
	NutrientFiber   Nutrient = "fiber_g"
)

// DailyTargets is the derived set of daily targets for a settings snapshot.
// Values are rounded to one decimal.
type DailyTargets struct {
	Kcal   float64 `json:"kcal"`
	ProtG  float64 `json:"prot_g"`
	CarbG  float64 `json:"carb_g"`
	FatG   float64 `json:"fat_g"`
	FiberG float64 `json:"fiber_g"`
}

// DailyTotals is the nutrient sum over all consumption logs in one day's
// window. Values are rounded to one decimal; a day with no logs is all zero.
type DailyTotals struct {
	Kcal     float64 `json:"kcal"`
	ProtG    float64 `json:"prot_g"`
	CarbG    float64 `json:"carb_g"`
	FatG     float64 `json:"fat_g"`
	FiberG   float64 `json:"fiber_g"`
	SodiumMg float64 `json:"sodium_mg"`
}

// DayProgress holds per-nutrient completion percentages for a day.
type DayProgress struct {
	KcalPct  float64 `json:"kcal_pct"`
	ProtPct  float64 `json:"prot_pct"`
	CarbPct  float64 `json:"carb_pct"`
	FatPct   float64 `json:"fat_pct"`
	FiberPct float64 `json:"fiber_pct"`
}

// DaySummary combines totals, targets and progress for one date.
type DaySummary struct {
	Date     string       `json:"date"`
	Totals   DailyTotals  `json:"totals"`
	Targets  DailyTargets `json:"targets"`
	Progress DayProgress  `json:"progress"`
}

// NutrientDelta is the nutrient impact of eating a proposed amount of a food.
type NutrientDelta struct {
	Kcal   float64 `json:"kcal"`
	ProtG  float64 `json:"prot_g"`
	CarbG  float64 `json:"carb_g"`
	FatG   float64 `json:"fat_g"`
	FiberG float64 `json:"fiber_g"`
}

// SuggestionOption is one ranked pantry proposal.
type SuggestionOption struct {
	FoodID uint          `json:"food_id"`
	Name   string        `json:"name"`
	Grams  float64       `json:"grams"`
	Delta  NutrientDelta `json:"delta"`
}

// SuggestionResult is the output of the deficit suggestion engine. Options
// is at most three entries; Note is set when the pantry had no candidates.
type SuggestionResult struct {
	Options     []SuggestionOption   `json:"options"`
	Residuals   map[Nutrient]float64 `json:"residuals"`
	MainDeficit Nutrient             `json:"main_deficit"`
	Note        string               `json:"note,omitempty"`
}

// FoodSummary is the compact food shape returned by searches.
type FoodSummary struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	Brand    *string `json:"brand,omitempty"`
	Kcal100g float64 `json:"kcal_100g"`
	Prot100g float64 `json:"prot_100g"`
	Carb100g float64 `json:"carb_100g"`
	Fat100g  float64 `json:"fat_100g"`
}
