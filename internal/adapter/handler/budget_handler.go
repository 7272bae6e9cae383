package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/alizaidi-dev/tripbudget/internal/core/domain"
	"github.com/alizaidi-dev/tripbudget/internal/core/port"
	"github.com/alizaidi-dev/tripbudget/internal/core/service"
)

type BudgetHandler struct {
	estimator *service.Estimator
	history   port.HistoryStore
	logger    *zap.Logger
}

func NewBudgetHandler(estimator *service.Estimator, history port.HistoryStore, logger *zap.Logger) *BudgetHandler {
	return &BudgetHandler{
		estimator: estimator,
		history:   history,
		logger:    logger,
	}
}

type EstimateRequest struct {
	Destination string `json:"destination" binding:"required"`
	Style       string `json:"style" binding:"required,oneof=Budget Standard Luxury"`
	Travelers   int    `json:"travelers" binding:"required,min=1"`
	Days        int    `json:"days" binding:"required,min=1"`
	Currency    string `json:"currency" binding:"omitempty,len=3,uppercase"`
}

func (h *BudgetHandler) Estimate(c *gin.Context) {
	var req EstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}

	params := domain.TripParams{
		Destination: req.Destination,
		Style:       domain.TravelStyle(req.Style),
		Travelers:   req.Travelers,
		Days:        req.Days,
		Currency:    currency,
	}

	result, err := h.estimator.Estimate(c.Request.Context(), params)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownTravelStyle) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute estimate"})
		return
	}

	suggestions := service.Suggestions(result, params)

	h.persist(c, params, result)

	c.JSON(http.StatusOK, gin.H{
		"result":      result,
		"suggestions": suggestions,
	})
}

// persist appends a history record for identified callers. Failure here
// never affects the response.
func (h *BudgetHandler) persist(c *gin.Context, params domain.TripParams, result domain.BudgetResult) {
	val, ok := c.Get(userIDKey)
	if !ok {
		return
	}
	userID, ok := val.(uuid.UUID)
	if !ok {
		return
	}

	_, err := h.history.AppendEstimate(c.Request.Context(), domain.TripEstimate{
		UserID:      userID,
		Destination: params.Destination,
		Style:       params.Style,
		Travelers:   params.Travelers,
		Days:        params.Days,
		Currency:    result.Currency,
		TotalCost:   result.TotalCost,
		Tier:        result.Tier,
	})
	if err != nil {
		h.logger.Warn("failed to append trip estimate",
			zap.String("user_id", userID.String()),
			zap.Error(err),
		)
	}
}

func (h *BudgetHandler) History(c *gin.Context) {
	val, ok := c.Get(userIDKey)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	userID := val.(uuid.UUID)

	estimates, err := h.history.ListEstimatesByUser(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("failed to list trip estimates", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"estimates": estimates})
}
