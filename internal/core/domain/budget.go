package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrUnknownTravelStyle = errors.New("unknown travel style")
	ErrUnknownCostTier    = errors.New("unknown cost tier")
)

type TravelStyle string

const (
	StyleBudget   TravelStyle = "Budget"
	StyleStandard TravelStyle = "Standard"
	StyleLuxury   TravelStyle = "Luxury"
)

type CostTier string

const (
	TierHigh   CostTier = "high"
	TierMedium CostTier = "medium"
	TierLow    CostTier = "low"
)

// DailyRates are per-day USD costs for one (style, tier) cell.
// Food is per traveler per day; the other three are per party per day.
type DailyRates struct {
	Hotel      float64
	Food       float64
	Transport  float64
	Activities float64
}

type TripParams struct {
	Destination string
	Style       TravelStyle
	Travelers   int
	Days        int
	Currency    string
}

// Breakdown category names, as rendered to clients.
const (
	CategoryAccommodation  = "Accommodation"
	CategoryFood           = "Food & Dining"
	CategoryTransportation = "Transportation"
	CategoryActivities     = "Activities"
	CategoryMiscellaneous  = "Miscellaneous"
)

type BudgetResult struct {
	TotalCost      float64            `json:"total_cost"`
	PerPersonCost  float64            `json:"per_person_cost"`
	DailyCost      float64            `json:"daily_cost"`
	Breakdown      map[string]float64 `json:"breakdown"`
	Tier           CostTier           `json:"country_category"`
	Currency       string             `json:"currency"`
	ExchangeRate   float64            `json:"exchange_rate"`
	RateIsEstimate bool               `json:"exchange_rate_is_estimate"`
}

// TripEstimate is a persisted history record of one computed estimate.
type TripEstimate struct {
	ID          uuid.UUID   `json:"id"`
	UserID      uuid.UUID   `json:"user_id"`
	Destination string      `json:"destination"`
	Style       TravelStyle `json:"style"`
	Travelers   int         `json:"travelers"`
	Days        int         `json:"days"`
	Currency    string      `json:"currency"`
	TotalCost   float64     `json:"total_cost"`
	Tier        CostTier    `json:"country_category"`
	CreatedAt   time.Time   `json:"created_at"`
}
