package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/mbellini/foodly/backend/internal/models"
	"github.com/mbellini/foodly/backend/internal/types"
)

const (
	searchCacheTTL    = 5 * time.Minute
	searchCacheGenKey = "foods:search:gen"
)

// FoodService manages the food catalog. Search results are cached in Redis
// when a client is configured; a nil client runs uncached.
type FoodService struct {
	db    *gorm.DB
	cache *redis.Client
}

// NewFoodService creates a new FoodService instance
func NewFoodService(db *gorm.DB, cache *redis.Client) *FoodService {
	return &FoodService{db: db, cache: cache}
}

// Create adds a food to the catalog. Foods are immutable once created;
// corrections are new records.
func (s *FoodService) Create(ctx context.Context, req *types.CreateFoodRequest) (*models.Food, error) {
	food := models.Food{
		Name:         strings.TrimSpace(req.Name),
		Brand:        req.Brand,
		Barcode:      req.Barcode,
		Kcal100g:     req.Kcal100g,
		Prot100g:     req.Prot100g,
		Carb100g:     req.Carb100g,
		Fat100g:      req.Fat100g,
		Fiber100g:    req.Fiber100g,
		Sugar100g:    req.Sugar100g,
		SatFat100g:   req.SatFat100g,
		SodiumMg100g: req.SodiumMg100g,
		Source:       "manual",
		LastUpdated:  nowISO(),
	}
	if food.Name == "" {
		return nil, ErrInvalidFoodName
	}
	if err := s.db.Create(&food).Error; err != nil {
		return nil, err
	}
	s.bumpSearchGeneration(ctx)
	return &food, nil
}

// Get retrieves a food by id.
func (s *FoodService) Get(ctx context.Context, id uint) (*models.Food, error) {
	var food models.Food
	if err := s.db.First(&food, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFoodNotFound
		}
		return nil, err
	}
	return &food, nil
}

// List returns the whole catalog ordered by name.
func (s *FoodService) List(ctx context.Context) ([]models.Food, error) {
	var foods []models.Food
	if err := s.db.Order("name").Find(&foods).Error; err != nil {
		return nil, err
	}
	return foods, nil
}

// Find performs a case-insensitive substring search on food names, ordered
// by name and capped at limit (default 10).
func (s *FoodService) Find(ctx context.Context, query string, limit int) ([]types.FoodSummary, error) {
	if limit <= 0 {
		limit = 10
	}
	query = strings.TrimSpace(query)

	cacheKey := s.searchCacheKey(ctx, query, limit)
	if cacheKey != "" {
		if cached, err := s.cache.Get(ctx, cacheKey).Result(); err == nil {
			var results []types.FoodSummary
			if err := json.Unmarshal([]byte(cached), &results); err == nil {
				return results, nil
			}
		}
	}

	var foods []models.Food
	like := "%" + strings.ToLower(query) + "%"
	err := s.db.
		Where("LOWER(name) LIKE ?", like).
		Order("name").
		Limit(limit).
		Find(&foods).Error
	if err != nil {
		return nil, err
	}

	results := make([]types.FoodSummary, 0, len(foods))
	for _, f := range foods {
		results = append(results, types.FoodSummary{
			ID:       f.ID,
			Name:     f.Name,
			Brand:    f.Brand,
			Kcal100g: f.Kcal100g,
			Prot100g: f.Prot100g,
			Carb100g: f.Carb100g,
			Fat100g:  f.Fat100g,
		})
	}

	if cacheKey != "" {
		if data, err := json.Marshal(results); err == nil {
			if err := s.cache.Set(ctx, cacheKey, data, searchCacheTTL).Err(); err != nil {
				log.Printf("food search cache set failed: %v", err)
			}
		}
	}
	return results, nil
}

// searchCacheKey builds a generation-stamped cache key so that creating a
// food invalidates every cached search at once. Empty string means caching
// is off or unavailable.
func (s *FoodService) searchCacheKey(ctx context.Context, query string, limit int) string {
	if s.cache == nil {
		return ""
	}
	gen, err := s.cache.Get(ctx, searchCacheGenKey).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return ""
	}
	return fmt.Sprintf("foods:search:%d:%s:%d", gen, strings.ToLower(query), limit)
}

func (s *FoodService) bumpSearchGeneration(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Incr(ctx, searchCacheGenKey).Err(); err != nil {
		log.Printf("food search cache invalidation failed: %v", err)
	}
}
