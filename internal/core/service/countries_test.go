package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/alizaidi-dev/tripbudget/internal/core/domain"
)

type MockCountrySource struct {
	mock.Mock
}

func (m *MockCountrySource) ListCountries(ctx context.Context) ([]domain.Country, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Country), args.Error(1)
}

type MockCountryCache struct {
	mock.Mock
}

func (m *MockCountryCache) GetCountries(ctx context.Context) ([]domain.Country, bool) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).([]domain.Country), args.Bool(1)
}

func (m *MockCountryCache) SetCountries(ctx context.Context, countries []domain.Country) error {
	args := m.Called(ctx, countries)
	return args.Error(0)
}

func TestCountryService_List_CacheHit(t *testing.T) {
	source := new(MockCountrySource)
	cache := new(MockCountryCache)
	cached := []domain.Country{{Name: "Portugal", Code: "PT"}}
	cache.On("GetCountries", mock.Anything).Return(cached, true)

	svc := NewCountryService(source, cache, zap.NewNop())

	countries, err := svc.List(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, cached, countries)
	source.AssertNotCalled(t, "ListCountries", mock.Anything)
}

func TestCountryService_List_MissFetchesSortsAndCaches(t *testing.T) {
	source := new(MockCountrySource)
	cache := new(MockCountryCache)

	cache.On("GetCountries", mock.Anything).Return(nil, false)
	source.On("ListCountries", mock.Anything).Return([]domain.Country{
		{Name: "Portugal", Code: "PT"},
		{Name: "Japan", Code: "JP"},
		{Name: "Argentina", Code: "AR"},
	}, nil)
	cache.On("SetCountries", mock.Anything, mock.Anything).Return(nil)

	svc := NewCountryService(source, cache, zap.NewNop())

	countries, err := svc.List(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, []string{"Argentina", "Japan", "Portugal"}, []string{
		countries[0].Name, countries[1].Name, countries[2].Name,
	})
	cache.AssertExpectations(t)
}

func TestCountryService_List_SourceFailure(t *testing.T) {
	source := new(MockCountrySource)
	cache := new(MockCountryCache)

	cache.On("GetCountries", mock.Anything).Return(nil, false)
	source.On("ListCountries", mock.Anything).Return(nil, errors.New("upstream down"))

	svc := NewCountryService(source, cache, zap.NewNop())

	_, err := svc.List(context.Background())

	assert.ErrorIs(t, err, domain.ErrCountryLookupFailed)
}

func TestCountryService_Search(t *testing.T) {
	source := new(MockCountrySource)
	cache := new(MockCountryCache)
	cache.On("GetCountries", mock.Anything).Return([]domain.Country{
		{Name: "Pakistan", Code: "PK"},
		{Name: "Palau", Code: "PW"},
		{Name: "Japan", Code: "JP"},
	}, true)

	svc := NewCountryService(source, cache, zap.NewNop())

	matched, err := svc.Search(context.Background(), "pa")

	assert.NoError(t, err)
	assert.Len(t, matched, 3) // Pakistan, Palau, and Japan all contain "pa"

	matched, err = svc.Search(context.Background(), "paki")
	assert.NoError(t, err)
	assert.Len(t, matched, 1)
	assert.Equal(t, "Pakistan", matched[0].Name)
}
