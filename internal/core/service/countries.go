package service

import (
	"context"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/alizaidi-dev/tripbudget/internal/core/domain"
	"github.com/alizaidi-dev/tripbudget/internal/core/port"
)

// CountryService serves the dashboard country picker from the cache,
// refilling it from the upstream directory on a miss.
type CountryService struct {
	source port.CountrySource
	cache  port.CountryCache
	logger *zap.Logger
}

func NewCountryService(source port.CountrySource, cache port.CountryCache, logger *zap.Logger) *CountryService {
	return &CountryService{source: source, cache: cache, logger: logger}
}

func (s *CountryService) List(ctx context.Context) ([]domain.Country, error) {
	if countries, ok := s.cache.GetCountries(ctx); ok {
		return countries, nil
	}

	countries, err := s.source.ListCountries(ctx)
	if err != nil {
		s.logger.Warn("country directory fetch failed", zap.Error(err))
		return nil, domain.ErrCountryLookupFailed
	}

	sort.Slice(countries, func(i, j int) bool {
		return countries[i].Name < countries[j].Name
	})

	if err := s.cache.SetCountries(ctx, countries); err != nil {
		s.logger.Warn("failed to cache country list", zap.Error(err))
	}

	return countries, nil
}

// Search filters the directory by a case-insensitive name prefix or
// substring.
func (s *CountryService) Search(ctx context.Context, query string) ([]domain.Country, error) {
	countries, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return countries, nil
	}

	matched := make([]domain.Country, 0)
	for _, c := range countries {
		if strings.Contains(strings.ToLower(c.Name), q) {
			matched = append(matched, c)
		}
	}
	return matched, nil
}
