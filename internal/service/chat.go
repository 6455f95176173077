package service

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/mbellini/foodly/backend/internal/models"
	"github.com/mbellini/foodly/backend/internal/types"
)

// Rule patterns for the naive chat parser: add/consume intents, a grams
// amount, and a unit count ("2 cans") that falls back to 100 g per unit.
var (
	addPattern    = regexp.MustCompile(`(?i)\b(add|put|stock|restock|bought)\b`)
	eatPattern    = regexp.MustCompile(`(?i)\b(ate|eat|had|consume|consumed|used)\b`)
	gramsPattern  = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*g\b`)
	countPattern  = regexp.MustCompile(`(?i)(\d+)\s*(?:x|cans?|packs?|packages?|boxes?)\b`)
	tokenSplitter = regexp.MustCompile(`[^\p{L}\p{N}]+`)
)

// chatStopwords are tokens the food lookup skips when scanning a message.
var chatStopwords = map[string]struct{}{
	"add": {}, "put": {}, "stock": {}, "restock": {}, "bought": {},
	"ate": {}, "eat": {}, "had": {}, "consume": {}, "consumed": {}, "used": {},
	"the": {}, "some": {}, "and": {}, "for": {}, "pantry": {}, "grams": {},
	"today": {}, "breakfast": {}, "lunch": {}, "dinner": {}, "snack": {},
}

const idempotencyTTL = 24 * time.Hour

// ChatService maps free-text messages onto pantry and ledger operations
// through fixed parsing rules, then reports the day's state back.
type ChatService struct {
	db      *gorm.DB
	cache   *redis.Client
	pantry  *PantryService
	ledger  *LedgerService
	summary *SummaryService
	suggest *SuggestionService
}

// NewChatService creates a new ChatService instance
func NewChatService(db *gorm.DB, cache *redis.Client, pantry *PantryService, ledger *LedgerService, summary *SummaryService, suggest *SuggestionService) *ChatService {
	return &ChatService{db: db, cache: cache, pantry: pantry, ledger: ledger, summary: summary, suggest: suggest}
}

// Chat parses the message, executes the resulting actions (unless dry-run
// or a duplicate idempotency key), and returns actions, day summary,
// suggestion and a short synthesized message.
func (s *ChatService) Chat(ctx context.Context, req *types.ChatRequest) (*types.ChatResponse, error) {
	actions := s.parse(ctx, req.UserMessage)

	var results []types.ToolResult
	switch {
	case req.DryRun:
		for _, a := range actions {
			results = append(results, types.ToolResult{Name: a.Name, Status: "dry_run"})
		}
	case s.isDuplicate(ctx, req.IdempotencyKey):
		for _, a := range actions {
			results = append(results, types.ToolResult{Name: a.Name, Status: "duplicate"})
		}
	default:
		results = s.execute(ctx, actions)
	}

	sum, err := s.summary.Summary(ctx, req.Date)
	if err != nil {
		return nil, err
	}
	sugg, err := s.suggest.Suggest(ctx, req.Date)
	if err != nil {
		return nil, err
	}

	return &types.ChatResponse{
		Actions:    actions,
		Results:    results,
		Totals:     sum.Totals,
		Targets:    sum.Targets,
		Suggestion: *sugg,
		Message:    composeMessage(sum, sugg),
	}, nil
}

// parse applies the rule patterns to the message and produces tool calls.
// Unrecognized text yields no actions.
func (s *ChatService) parse(ctx context.Context, text string) []types.ToolCall {
	text = strings.TrimSpace(text)
	actions := []types.ToolCall{}

	grams := 0.0
	if m := gramsPattern.FindStringSubmatch(text); m != nil {
		grams, _ = strconv.ParseFloat(m[1], 64)
	}

	switch {
	case addPattern.MatchString(text):
		if grams == 0 {
			if m := countPattern.FindStringSubmatch(text); m != nil {
				count, _ := strconv.ParseFloat(m[1], 64)
				grams = count * 100
			}
		}
		food := s.resolveFood(ctx, text)
		if food != nil && grams > 0 {
			actions = append(actions, types.ToolCall{
				Name:      "add_to_pantry",
				Arguments: map[string]any{"food_id": food.ID, "qty_g": grams},
			})
		}
	case eatPattern.MatchString(text):
		food := s.resolveFood(ctx, text)
		if food != nil && grams > 0 {
			actions = append(actions, types.ToolCall{
				Name:      "consume",
				Arguments: map[string]any{"food_id": food.ID, "grams": grams},
			})
		}
	}
	return actions
}

// resolveFood scans the message tokens for a substring match against the
// food catalog and returns the first hit.
func (s *ChatService) resolveFood(ctx context.Context, text string) *models.Food {
	for _, token := range tokenSplitter.Split(strings.ToLower(text), -1) {
		if len(token) < 3 {
			continue
		}
		if _, skip := chatStopwords[token]; skip {
			continue
		}
		if _, err := strconv.Atoi(token); err == nil {
			continue
		}
		var food models.Food
		if err := s.db.Where("LOWER(name) LIKE ?", "%"+token+"%").Order("name").First(&food).Error; err == nil {
			return &food
		}
	}
	return nil
}

func (s *ChatService) execute(ctx context.Context, actions []types.ToolCall) []types.ToolResult {
	results := make([]types.ToolResult, 0, len(actions))
	for _, a := range actions {
		var err error
		switch a.Name {
		case "add_to_pantry":
			foodID, okID := foodIDArg(a.Arguments["food_id"])
			qty, okQty := floatArg(a.Arguments["qty_g"])
			if !okID || !okQty {
				results = append(results, types.ToolResult{Name: a.Name, Status: "error", Error: "invalid arguments"})
				continue
			}
			_, err = s.pantry.AddStock(ctx, &types.AddStockRequest{FoodID: foodID, QtyG: qty})
		case "consume":
			foodID, okID := foodIDArg(a.Arguments["food_id"])
			grams, okGrams := floatArg(a.Arguments["grams"])
			if !okID || !okGrams {
				results = append(results, types.ToolResult{Name: a.Name, Status: "error", Error: "invalid arguments"})
				continue
			}
			_, err = s.ledger.LogConsumption(ctx, &types.ConsumeRequest{FoodID: foodID, Grams: grams})
		default:
			results = append(results, types.ToolResult{Name: a.Name, Status: "unknown_tool"})
			continue
		}
		if err != nil {
			results = append(results, types.ToolResult{Name: a.Name, Status: "error", Error: err.Error()})
			continue
		}
		results = append(results, types.ToolResult{Name: a.Name, Status: "ok"})
	}
	return results
}

// foodIDArg reads a food id argument. JSON-decoded tool calls carry numbers
// as float64, so both forms are accepted.
func foodIDArg(v any) (uint, bool) {
	switch id := v.(type) {
	case uint:
		return id, true
	case float64:
		if id < 0 || id != math.Trunc(id) {
			return 0, false
		}
		return uint(id), true
	}
	return 0, false
}

func floatArg(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	}
	return 0, false
}

// isDuplicate marks the idempotency key as seen and reports whether it was
// already used. Without a cache, every request executes.
func (s *ChatService) isDuplicate(ctx context.Context, key string) bool {
	if key == "" || s.cache == nil {
		return false
	}
	fresh, err := s.cache.SetNX(ctx, "chat:idem:"+key, 1, idempotencyTTL).Result()
	if err != nil {
		return false
	}
	return !fresh
}

// composeMessage builds the one-line textual recap.
func composeMessage(sum *types.DaySummary, sugg *types.SuggestionResult) string {
	msg := fmt.Sprintf("Today: %.0f/%.0f kcal — P %.0f/%.0f g, C %.0f/%.0f g, F %.0f/%.0f g. ",
		sum.Totals.Kcal, sum.Targets.Kcal,
		sum.Totals.ProtG, sum.Targets.ProtG,
		sum.Totals.CarbG, sum.Targets.CarbG,
		sum.Totals.FatG, sum.Targets.FatG,
	)
	if len(sugg.Options) > 0 {
		o := sugg.Options[0]
		msg += fmt.Sprintf("Try: %.0f g of %s (+%.0f kcal, +%.0fP, +%.0fC, +%.0fF).",
			o.Grams, o.Name, o.Delta.Kcal, o.Delta.ProtG, o.Delta.CarbG, o.Delta.FatG)
	} else if sugg.Note != "" {
		msg += sugg.Note
	}
	return msg
}
