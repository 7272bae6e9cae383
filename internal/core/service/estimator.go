package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/alizaidi-dev/tripbudget/internal/core/domain"
	"github.com/alizaidi-dev/tripbudget/internal/core/port"
)

// Curated destination lists per cost tier. Matching is loose on purpose:
// the dashboard sends free-text destinations, so each entry matches by
// case-insensitive containment in either direction. Tiers are checked in
// high, medium, low order and the first match wins.
var (
	highCostCountries = []string{
		"Switzerland", "Norway", "Iceland", "Denmark", "Luxembourg",
		"Singapore", "Japan", "United States", "United Kingdom",
		"Australia", "New Zealand", "Ireland", "France", "Netherlands",
		"Sweden", "Finland", "Austria", "Israel", "Qatar",
		"United Arab Emirates", "Canada", "Germany",
	}
	mediumCostCountries = []string{
		"Spain", "Italy", "Portugal", "Greece", "South Korea", "China",
		"Brazil", "Mexico", "Turkey", "Poland", "Czech Republic",
		"Hungary", "Croatia", "Malaysia", "Chile", "Argentina",
		"South Africa", "Saudi Arabia", "Oman", "Russia",
	}
	lowCostCountries = []string{
		"Pakistan", "India", "Bangladesh", "Nepal", "Sri Lanka",
		"Vietnam", "Cambodia", "Laos", "Indonesia", "Philippines",
		"Thailand", "Egypt", "Morocco", "Tunisia", "Bolivia",
		"Colombia", "Peru", "Ethiopia", "Kenya", "Nigeria", "Ukraine",
	}
)

// dailyRates holds per-day USD costs keyed by style then tier. Hotel,
// transport and activities are per party; food is per traveler.
var dailyRates = map[domain.TravelStyle]map[domain.CostTier]domain.DailyRates{
	domain.StyleBudget: {
		domain.TierHigh:   {Hotel: 90, Food: 35, Transport: 20, Activities: 30},
		domain.TierMedium: {Hotel: 50, Food: 20, Transport: 12, Activities: 18},
		domain.TierLow:    {Hotel: 25, Food: 12, Transport: 8, Activities: 10},
	},
	domain.StyleStandard: {
		domain.TierHigh:   {Hotel: 200, Food: 70, Transport: 40, Activities: 60},
		domain.TierMedium: {Hotel: 110, Food: 45, Transport: 25, Activities: 40},
		domain.TierLow:    {Hotel: 60, Food: 25, Transport: 15, Activities: 25},
	},
	domain.StyleLuxury: {
		domain.TierHigh:   {Hotel: 450, Food: 120, Transport: 80, Activities: 150},
		domain.TierMedium: {Hotel: 300, Food: 90, Transport: 60, Activities: 100},
		domain.TierLow:    {Hotel: 180, Food: 60, Transport: 40, Activities: 70},
	},
}

// miscRate is the surcharge applied to the category subtotal.
const miscRate = 0.10

// ResolveTier classifies a free-text destination into a cost tier.
// Unknown destinations fall back to medium.
func ResolveTier(destination string) domain.CostTier {
	name := strings.ToLower(strings.TrimSpace(destination))
	if name == "" {
		return domain.TierMedium
	}

	tiers := []struct {
		tier  domain.CostTier
		names []string
	}{
		{domain.TierHigh, highCostCountries},
		{domain.TierMedium, mediumCostCountries},
		{domain.TierLow, lowCostCountries},
	}

	for _, t := range tiers {
		for _, country := range t.names {
			c := strings.ToLower(country)
			if strings.Contains(name, c) || strings.Contains(c, name) {
				return t.tier
			}
		}
	}

	return domain.TierMedium
}

// DailyRatesFor returns the USD daily rates for a style/tier cell. An
// unknown style or tier is a programmer error and is reported, not
// defaulted; ResolveTier only produces the three known tiers.
func DailyRatesFor(style domain.TravelStyle, tier domain.CostTier) (domain.DailyRates, error) {
	byTier, ok := dailyRates[style]
	if !ok {
		return domain.DailyRates{}, fmt.Errorf("%w: %q", domain.ErrUnknownTravelStyle, style)
	}
	rates, ok := byTier[tier]
	if !ok {
		return domain.DailyRates{}, fmt.Errorf("%w: %q", domain.ErrUnknownCostTier, tier)
	}
	return rates, nil
}

type Estimator struct {
	rates port.RateSource
}

func NewEstimator(rates port.RateSource) *Estimator {
	return &Estimator{rates: rates}
}

// Estimate computes the full trip budget for the given parameters.
//
// All arithmetic is float64 in USD, converted to the target currency at
// the end. When the rate source cannot supply a real rate the identity
// rate is used and RateIsEstimate is set, so callers can tell a converted
// total from a mislabeled USD one. Travelers/days are not validated here;
// divisions by zero yield zero.
func (e *Estimator) Estimate(ctx context.Context, params domain.TripParams) (domain.BudgetResult, error) {
	tier := ResolveTier(params.Destination)

	rates, err := DailyRatesFor(params.Style, tier)
	if err != nil {
		return domain.BudgetResult{}, err
	}

	days := float64(params.Days)
	travelers := float64(params.Travelers)

	hotel := rates.Hotel * days
	food := rates.Food * travelers * days
	transport := rates.Transport * days
	activities := rates.Activities * days

	subtotal := hotel + food + transport + activities
	misc := subtotal * miscRate
	total := subtotal + misc

	rate := 1.0
	estimated := false
	if params.Currency != "" && params.Currency != "USD" {
		r, ok := e.rates.Rate(ctx, "USD", params.Currency)
		if ok {
			rate = r
		} else {
			estimated = true
		}
	}

	perPerson := 0.0
	if params.Travelers > 0 {
		perPerson = total * rate / travelers
	}
	perDay := 0.0
	if params.Days > 0 {
		perDay = total * rate / days
	}

	return domain.BudgetResult{
		TotalCost:     total * rate,
		PerPersonCost: perPerson,
		DailyCost:     perDay,
		Breakdown: map[string]float64{
			domain.CategoryAccommodation:  hotel * rate,
			domain.CategoryFood:           food * rate,
			domain.CategoryTransportation: transport * rate,
			domain.CategoryActivities:     activities * rate,
			domain.CategoryMiscellaneous:  misc * rate,
		},
		Tier:           tier,
		Currency:       params.Currency,
		ExchangeRate:   rate,
		RateIsEstimate: estimated,
	}, nil
}
