package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/alizaidi-dev/tripbudget/internal/core/domain"
	"github.com/alizaidi-dev/tripbudget/internal/core/service"
)

type stubRateSource struct{}

func (stubRateSource) Rate(_ context.Context, _, _ string) (float64, bool) {
	return 0, false
}

type MockHistoryStore struct {
	mock.Mock
}

func (m *MockHistoryStore) AppendEstimate(ctx context.Context, estimate domain.TripEstimate) (domain.TripEstimate, error) {
	args := m.Called(ctx, estimate)
	return args.Get(0).(domain.TripEstimate), args.Error(1)
}

func (m *MockHistoryStore) ListEstimatesByUser(ctx context.Context, userID uuid.UUID) ([]domain.TripEstimate, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TripEstimate), args.Error(1)
}

func setupEstimateRouter(history *MockHistoryStore) *gin.Engine {
	gin.SetMode(gin.TestMode)

	estimator := service.NewEstimator(stubRateSource{})
	h := NewBudgetHandler(estimator, history, zap.NewNop())

	r := gin.New()
	r.POST("/budget/estimate", h.Estimate)
	return r
}

func doEstimate(t *testing.T, r *gin.Engine, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/budget/estimate", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestBudgetHandler_Estimate(t *testing.T) {
	history := new(MockHistoryStore)
	r := setupEstimateRouter(history)

	w := doEstimate(t, r, gin.H{
		"destination": "Pakistan",
		"style":       "Standard",
		"travelers":   2,
		"days":        7,
		"currency":    "USD",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Result      domain.BudgetResult `json:"result"`
		Suggestions []domain.Suggestion `json:"suggestions"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.InDelta(t, 1155.0, resp.Result.TotalCost, 1e-6)
	assert.Equal(t, domain.TierLow, resp.Result.Tier)
	assert.NotEmpty(t, resp.Suggestions)

	// Anonymous request: nothing persisted.
	history.AssertNotCalled(t, "AppendEstimate", mock.Anything, mock.Anything)
}

func TestBudgetHandler_Estimate_DefaultsToUSD(t *testing.T) {
	r := setupEstimateRouter(new(MockHistoryStore))

	w := doEstimate(t, r, gin.H{
		"destination": "Spain",
		"style":       "Budget",
		"travelers":   1,
		"days":        4,
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Result domain.BudgetResult `json:"result"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "USD", resp.Result.Currency)
	assert.False(t, resp.Result.RateIsEstimate)
}

func TestBudgetHandler_Estimate_RejectsBadInput(t *testing.T) {
	r := setupEstimateRouter(new(MockHistoryStore))

	tests := []struct {
		name string
		body gin.H
	}{
		{"missing destination", gin.H{"style": "Standard", "travelers": 2, "days": 7}},
		{"unknown style", gin.H{"destination": "France", "style": "Premium", "travelers": 2, "days": 7}},
		{"zero travelers", gin.H{"destination": "France", "style": "Standard", "travelers": 0, "days": 7}},
		{"zero days", gin.H{"destination": "France", "style": "Standard", "travelers": 2, "days": 0}},
		{"bad currency code", gin.H{"destination": "France", "style": "Standard", "travelers": 2, "days": 7, "currency": "usd"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doEstimate(t, r, tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestBudgetHandler_Estimate_PersistsForIdentifiedUser(t *testing.T) {
	gin.SetMode(gin.TestMode)

	userID := uuid.New()
	history := new(MockHistoryStore)
	history.On("AppendEstimate", mock.Anything, mock.MatchedBy(func(e domain.TripEstimate) bool {
		return e.UserID == userID && e.Destination == "Pakistan" && e.Tier == domain.TierLow
	})).Return(domain.TripEstimate{ID: uuid.New()}, nil)

	estimator := service.NewEstimator(stubRateSource{})
	h := NewBudgetHandler(estimator, history, zap.NewNop())

	r := gin.New()
	r.POST("/budget/estimate", func(c *gin.Context) {
		c.Set(userIDKey, userID)
	}, h.Estimate)

	w := doEstimate(t, r, gin.H{
		"destination": "Pakistan",
		"style":       "Standard",
		"travelers":   2,
		"days":        7,
		"currency":    "USD",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	history.AssertExpectations(t)
}

func TestBudgetHandler_Estimate_HistoryFailureDoesNotAffectResponse(t *testing.T) {
	gin.SetMode(gin.TestMode)

	userID := uuid.New()
	history := new(MockHistoryStore)
	history.On("AppendEstimate", mock.Anything, mock.Anything).
		Return(domain.TripEstimate{}, errors.New("connection refused"))

	estimator := service.NewEstimator(stubRateSource{})
	h := NewBudgetHandler(estimator, history, zap.NewNop())

	r := gin.New()
	r.POST("/budget/estimate", func(c *gin.Context) {
		c.Set(userIDKey, userID)
	}, h.Estimate)

	w := doEstimate(t, r, gin.H{
		"destination": "Pakistan",
		"style":       "Standard",
		"travelers":   2,
		"days":        7,
		"currency":    "USD",
	})

	// The write is best effort: the caller still gets the computed result.
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Result domain.BudgetResult `json:"result"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.InDelta(t, 1155.0, resp.Result.TotalCost, 1e-6)
	assert.Equal(t, domain.TierLow, resp.Result.Tier)
	history.AssertExpectations(t)
}

func TestBudgetHandler_History(t *testing.T) {
	gin.SetMode(gin.TestMode)

	userID := uuid.New()
	history := new(MockHistoryStore)
	history.On("ListEstimatesByUser", mock.Anything, userID).Return([]domain.TripEstimate{
		{ID: uuid.New(), UserID: userID, Destination: "Japan", TotalCost: 2640},
	}, nil)

	h := NewBudgetHandler(service.NewEstimator(stubRateSource{}), history, zap.NewNop())

	r := gin.New()
	r.GET("/history", func(c *gin.Context) {
		c.Set(userIDKey, userID)
	}, h.History)

	req := httptest.NewRequest(http.MethodGet, "/history", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Estimates []domain.TripEstimate `json:"estimates"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Estimates, 1)
	assert.Equal(t, "Japan", resp.Estimates[0].Destination)
}
