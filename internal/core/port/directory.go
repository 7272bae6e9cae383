package port

import (
	"context"

	"github.com/alizaidi-dev/tripbudget/internal/core/domain"
)

type CountrySource interface {
	ListCountries(ctx context.Context) ([]domain.Country, error)
}

type CountryCache interface {
	GetCountries(ctx context.Context) ([]domain.Country, bool)
	SetCountries(ctx context.Context, countries []domain.Country) error
}

type Geocoder interface {
	Geocode(ctx context.Context, query string) (domain.Coordinates, error)
}
