package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/alizaidi-dev/tripbudget/internal/core/domain"
	"github.com/alizaidi-dev/tripbudget/internal/core/port"
)

// CurrencyService fronts the exchange-rate provider with a cache. It is
// the RateSource the estimator consumes: Rate never returns an error,
// only (rate, ok).
type CurrencyService struct {
	provider port.RateProvider
	cache    port.RateCache
	logger   *zap.Logger
}

func NewCurrencyService(provider port.RateProvider, cache port.RateCache, logger *zap.Logger) *CurrencyService {
	return &CurrencyService{
		provider: provider,
		cache:    cache,
		logger:   logger,
	}
}

// Convert performs a full conversion for the converter endpoint. Unlike
// Rate, provider failure here is reported to the caller.
func (s *CurrencyService) Convert(ctx context.Context, amount float64, from, to string) (*domain.Conversion, error) {
	conv, err := s.provider.Convert(ctx, amount, from, to)
	if err != nil {
		s.logger.Warn("currency conversion failed",
			zap.String("from", from),
			zap.String("to", to),
			zap.Error(err),
		)
		return nil, domain.ErrConversionUnavailable
	}

	if conv.Rate > 0 {
		if err := s.cache.SetRate(ctx, from, to, conv.Rate); err != nil {
			s.logger.Warn("failed to cache exchange rate", zap.Error(err))
		}
	}

	return conv, nil
}

// Rate returns the rate for 1 from -> to, best effort. Cache first, then
// the provider; any failure is a miss, never an error.
func (s *CurrencyService) Rate(ctx context.Context, from, to string) (float64, bool) {
	if from == to {
		return 1.0, true
	}

	if rate, ok := s.cache.GetRate(ctx, from, to); ok {
		return rate, true
	}

	conv, err := s.provider.Convert(ctx, 1, from, to)
	if err != nil || conv.Rate <= 0 {
		s.logger.Warn("exchange rate unavailable, falling back",
			zap.String("from", from),
			zap.String("to", to),
			zap.Error(err),
		)
		return 0, false
	}

	if err := s.cache.SetRate(ctx, from, to, conv.Rate); err != nil {
		s.logger.Warn("failed to cache exchange rate", zap.Error(err))
	}

	return conv.Rate, true
}
