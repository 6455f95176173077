package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mbellini/foodly/backend/internal/service"
	"github.com/mbellini/foodly/backend/internal/types"
)

// PantryHandler handles pantry stock requests
type PantryHandler struct {
	pantryService *service.PantryService
}

// NewPantryHandler creates a new PantryHandler
func NewPantryHandler(pantryService *service.PantryService) *PantryHandler {
	return &PantryHandler{pantryService: pantryService}
}

// RegisterRoutes registers the pantry routes
func (h *PantryHandler) RegisterRoutes(router *gin.RouterGroup) {
	pantry := router.Group("/pantry")
	{
		pantry.POST("", h.AddStock)
		pantry.GET("", h.ListPantry)
	}
}

func (h *PantryHandler) AddStock(c *gin.Context) {
	var req types.AddStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	entry, err := h.pantryService.AddStock(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidQuantity), errors.Is(err, service.ErrInvalidDate):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrFoodNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add stock"})
		}
		return
	}

	c.JSON(http.StatusCreated, entry)
}

func (h *PantryHandler) ListPantry(c *gin.Context) {
	entries, err := h.pantryService.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list pantry"})
		return
	}
	c.JSON(http.StatusOK, entries)
}
