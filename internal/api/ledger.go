package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mbellini/foodly/backend/internal/service"
	"github.com/mbellini/foodly/backend/internal/types"
)

// LedgerHandler handles consumption logging
type LedgerHandler struct {
	ledgerService *service.LedgerService
}

// NewLedgerHandler creates a new LedgerHandler
func NewLedgerHandler(ledgerService *service.LedgerService) *LedgerHandler {
	return &LedgerHandler{ledgerService: ledgerService}
}

// RegisterRoutes registers the consumption routes
func (h *LedgerHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/consume", h.Consume)
}

func (h *LedgerHandler) Consume(c *gin.Context) {
	var req types.ConsumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	entry, err := h.ledgerService.LogConsumption(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidQuantity), errors.Is(err, service.ErrInvalidMeal):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrFoodNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to log consumption"})
		}
		return
	}

	c.JSON(http.StatusCreated, entry)
}
