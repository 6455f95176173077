package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mbellini/foodly/backend/internal/service"
)

// SuggestHandler handles pantry suggestion requests
type SuggestHandler struct {
	suggestionService *service.SuggestionService
}

// NewSuggestHandler creates a new SuggestHandler
func NewSuggestHandler(suggestionService *service.SuggestionService) *SuggestHandler {
	return &SuggestHandler{suggestionService: suggestionService}
}

// RegisterRoutes registers the suggestion routes
func (h *SuggestHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/suggest", h.Suggest)
}

func (h *SuggestHandler) Suggest(c *gin.Context) {
	result, err := h.suggestionService.Suggest(c.Request.Context(), c.Query("date"))
	if err != nil {
		if errors.Is(err, service.ErrInvalidDate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute suggestion"})
		return
	}
	c.JSON(http.StatusOK, result)
}
