package service

import (
	"fmt"

	"github.com/alizaidi-dev/tripbudget/internal/core/domain"
)

// suggestionRule is one advisory predicate. Rules are independent: every
// matching rule contributes its message, in table order.
type suggestionRule struct {
	applies func(r domain.BudgetResult, p domain.TripParams) bool
	build   func(r domain.BudgetResult, p domain.TripParams) domain.Suggestion
}

// usdTotal normalizes the result back to USD so thresholds do not shift
// with the target currency.
func usdTotal(r domain.BudgetResult) float64 {
	if r.ExchangeRate <= 0 {
		return r.TotalCost
	}
	return r.TotalCost / r.ExchangeRate
}

func share(r domain.BudgetResult, category string) float64 {
	if r.TotalCost <= 0 {
		return 0
	}
	return r.Breakdown[category] / r.TotalCost
}

var suggestionRules = []suggestionRule{
	{
		applies: func(r domain.BudgetResult, _ domain.TripParams) bool {
			return share(r, domain.CategoryAccommodation) > 0.40
		},
		build: func(_ domain.BudgetResult, _ domain.TripParams) domain.Suggestion {
			return domain.Suggestion{
				Severity: domain.SeverityWarning,
				Text:     "Accommodation is over 40% of your budget. Consider hostels, guesthouses or apartment rentals.",
			}
		},
	},
	{
		applies: func(r domain.BudgetResult, _ domain.TripParams) bool {
			return share(r, domain.CategoryFood) > 0.40
		},
		build: func(_ domain.BudgetResult, _ domain.TripParams) domain.Suggestion {
			return domain.Suggestion{
				Severity: domain.SeverityWarning,
				Text:     "Food is over 40% of your budget. Local markets and neighborhood restaurants cost far less than tourist spots.",
			}
		},
	},
	{
		applies: func(r domain.BudgetResult, p domain.TripParams) bool {
			return p.Days > 0 && usdTotal(r)/float64(p.Days) > 200
		},
		build: func(_ domain.BudgetResult, _ domain.TripParams) domain.Suggestion {
			return domain.Suggestion{
				Severity: domain.SeverityWarning,
				Text:     "Daily cost exceeds $200. Off-peak dates can cut 20-40% off flights and rooms.",
			}
		},
	},
	{
		applies: func(r domain.BudgetResult, _ domain.TripParams) bool {
			return usdTotal(r) > 5000
		},
		build: func(_ domain.BudgetResult, _ domain.TripParams) domain.Suggestion {
			return domain.Suggestion{
				Severity: domain.SeverityInfo,
				Text:     "This is a high-budget trip. Travel insurance and payment protection are worth the premium.",
			}
		},
	},
	{
		applies: func(r domain.BudgetResult, p domain.TripParams) bool {
			return p.Style == domain.StyleBudget && r.Tier == domain.TierLow
		},
		build: func(_ domain.BudgetResult, _ domain.TripParams) domain.Suggestion {
			return domain.Suggestion{
				Severity: domain.SeveritySuccess,
				Text:     "Budget travel in a low-cost destination: your money will stretch a long way here.",
			}
		},
	},
	{
		applies: func(r domain.BudgetResult, _ domain.TripParams) bool {
			return r.Tier == domain.TierHigh
		},
		build: func(_ domain.BudgetResult, _ domain.TripParams) domain.Suggestion {
			return domain.Suggestion{
				Severity: domain.SeverityInfo,
				Text:     "Expensive destination: book accommodation and intercity transport well in advance.",
			}
		},
	},
	{
		applies: func(_ domain.BudgetResult, p domain.TripParams) bool {
			return p.Travelers >= 4
		},
		build: func(_ domain.BudgetResult, p domain.TripParams) domain.Suggestion {
			return domain.Suggestion{
				Severity: domain.SeverityInfo,
				Text:     fmt.Sprintf("Traveling as a group of %d: ask about group rates for tours and shared apartments.", p.Travelers),
			}
		},
	},
	{
		applies: func(_ domain.BudgetResult, p domain.TripParams) bool {
			return p.Days >= 14
		},
		build: func(_ domain.BudgetResult, _ domain.TripParams) domain.Suggestion {
			return domain.Suggestion{
				Severity: domain.SeverityInfo,
				Text:     "Two weeks or longer: weekly or monthly accommodation rates usually beat nightly pricing.",
			}
		},
	},
	{
		// Always fires, last.
		applies: func(_ domain.BudgetResult, _ domain.TripParams) bool { return true },
		build: func(r domain.BudgetResult, _ domain.TripParams) domain.Suggestion {
			return domain.Suggestion{
				Severity: domain.SeverityInfo,
				Text:     fmt.Sprintf("Keep an emergency buffer of about 15%% (%.2f %s) on top of this estimate.", r.TotalCost*0.15, r.Currency),
			}
		},
	},
}

// Suggestions evaluates the advisory rule table against a computed result.
func Suggestions(result domain.BudgetResult, params domain.TripParams) []domain.Suggestion {
	out := make([]domain.Suggestion, 0, len(suggestionRules))
	for _, rule := range suggestionRules {
		if rule.applies(result, params) {
			out = append(out, rule.build(result, params))
		}
	}
	return out
}
