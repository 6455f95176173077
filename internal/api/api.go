package api

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/mbellini/foodly/backend/internal/middleware"
	"github.com/mbellini/foodly/backend/internal/service"
)

// SetupAPI wires services and handlers onto the /api/v1 group. Auth routes
// stay public; everything else requires a valid token.
func SetupAPI(router *gin.Engine, db *gorm.DB, cache *redis.Client, jwtSecret string) {
	v1 := router.Group("/api/v1")
	{
		// Initialize services
		authService := service.NewAuthService(db, jwtSecret)
		foodService := service.NewFoodService(db, cache)
		pantryService := service.NewPantryService(db)
		ledgerService := service.NewLedgerService(db)
		targetService := service.NewTargetService(db)
		settingsService := service.NewSettingsService(db)
		summaryService := service.NewSummaryService(targetService, ledgerService)
		suggestionService := service.NewSuggestionService(db, targetService, ledgerService)
		chatService := service.NewChatService(db, cache, pantryService, ledgerService, summaryService, suggestionService)

		// Initialize handlers
		authHandler := NewAuthHandler(authService)
		foodHandler := NewFoodHandler(foodService)
		pantryHandler := NewPantryHandler(pantryService)
		ledgerHandler := NewLedgerHandler(ledgerService)
		summaryHandler := NewSummaryHandler(summaryService, targetService)
		suggestHandler := NewSuggestHandler(suggestionService)
		settingsHandler := NewSettingsHandler(settingsService)
		chatHandler := NewChatHandler(chatService)

		// Register routes
		authHandler.RegisterRoutes(v1)

		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(authService))
		{
			foodHandler.RegisterRoutes(protected)
			pantryHandler.RegisterRoutes(protected)
			ledgerHandler.RegisterRoutes(protected)
			summaryHandler.RegisterRoutes(protected)
			suggestHandler.RegisterRoutes(protected)
			settingsHandler.RegisterRoutes(protected)
			chatHandler.RegisterRoutes(protected)
		}
	}
}
