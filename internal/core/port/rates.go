package port

import (
	"context"

	"github.com/alizaidi-dev/tripbudget/internal/core/domain"
)

// RateProvider is the upstream exchange-rate collaborator. It returns an
// error on any failure (network, non-2xx, malformed payload).
type RateProvider interface {
	Convert(ctx context.Context, amount float64, from, to string) (*domain.Conversion, error)
}

// RateSource is the best-effort view the estimator consumes: a rate for
// 1 from -> to, or ok=false when no real rate could be obtained. It never
// returns an error.
type RateSource interface {
	Rate(ctx context.Context, from, to string) (float64, bool)
}

// RateCache stores fetched rates for a bounded time.
type RateCache interface {
	GetRate(ctx context.Context, from, to string) (float64, bool)
	SetRate(ctx context.Context, from, to string, rate float64) error
}
