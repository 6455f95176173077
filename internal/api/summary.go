package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mbellini/foodly/backend/internal/service"
)

// SummaryHandler handles daily summary and target requests
type SummaryHandler struct {
	summaryService *service.SummaryService
	targetService  *service.TargetService
}

// NewSummaryHandler creates a new SummaryHandler
func NewSummaryHandler(summaryService *service.SummaryService, targetService *service.TargetService) *SummaryHandler {
	return &SummaryHandler{summaryService: summaryService, targetService: targetService}
}

// RegisterRoutes registers the summary routes
func (h *SummaryHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/summary", h.GetSummary)
	router.GET("/targets", h.GetTargets)
}

func (h *SummaryHandler) GetSummary(c *gin.Context) {
	summary, err := h.summaryService.Summary(c.Request.Context(), c.Query("date"))
	if err != nil {
		if errors.Is(err, service.ErrInvalidDate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute summary"})
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *SummaryHandler) GetTargets(c *gin.Context) {
	targets, err := h.targetService.ComputeTargets(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute targets"})
		return
	}
	c.JSON(http.StatusOK, targets)
}
