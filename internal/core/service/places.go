package service

import (
	"context"
	"sort"
	"strings"

	"github.com/alizaidi-dev/tripbudget/internal/core/domain"
	"github.com/alizaidi-dev/tripbudget/internal/core/port"
)

// curatedDestinations is the fixed set of popular cities the dashboard
// ships with attraction markers for.
var curatedDestinations = map[string]domain.Destination{
	"paris": {
		Name:   "Paris, France",
		Center: domain.Coordinates{Lat: 48.8566, Lon: 2.3522},
		Attractions: []domain.Attraction{
			{Name: "Eiffel Tower", Type: "Monument", Lat: 48.8584, Lon: 2.2945},
			{Name: "Louvre Museum", Type: "Museum", Lat: 48.8606, Lon: 2.3376},
			{Name: "Notre-Dame", Type: "Cathedral", Lat: 48.8530, Lon: 2.3499},
		},
	},
	"tokyo": {
		Name:   "Tokyo, Japan",
		Center: domain.Coordinates{Lat: 35.6762, Lon: 139.6503},
		Attractions: []domain.Attraction{
			{Name: "Tokyo Tower", Type: "Monument", Lat: 35.6586, Lon: 139.7454},
			{Name: "Senso-ji Temple", Type: "Temple", Lat: 35.7148, Lon: 139.7967},
			{Name: "Shibuya Crossing", Type: "Landmark", Lat: 35.6595, Lon: 139.7004},
		},
	},
	"new york": {
		Name:   "New York, USA",
		Center: domain.Coordinates{Lat: 40.7128, Lon: -74.0060},
		Attractions: []domain.Attraction{
			{Name: "Statue of Liberty", Type: "Monument", Lat: 40.6892, Lon: -74.0445},
			{Name: "Central Park", Type: "Park", Lat: 40.7829, Lon: -73.9654},
			{Name: "Empire State Building", Type: "Building", Lat: 40.7484, Lon: -73.9857},
		},
	},
	"london": {
		Name:   "London, UK",
		Center: domain.Coordinates{Lat: 51.5074, Lon: -0.1278},
		Attractions: []domain.Attraction{
			{Name: "Big Ben", Type: "Monument", Lat: 51.5007, Lon: -0.1246},
			{Name: "Tower Bridge", Type: "Bridge", Lat: 51.5055, Lon: -0.0754},
			{Name: "British Museum", Type: "Museum", Lat: 51.5194, Lon: -0.1270},
		},
	},
	"dubai": {
		Name:   "Dubai, UAE",
		Center: domain.Coordinates{Lat: 25.2048, Lon: 55.2708},
		Attractions: []domain.Attraction{
			{Name: "Burj Khalifa", Type: "Building", Lat: 25.1972, Lon: 55.2744},
			{Name: "Dubai Mall", Type: "Shopping", Lat: 25.1981, Lon: 55.2796},
			{Name: "Palm Jumeirah", Type: "Island", Lat: 25.1124, Lon: 55.1390},
		},
	},
	"sydney": {
		Name:   "Sydney, Australia",
		Center: domain.Coordinates{Lat: -33.8688, Lon: 151.2093},
		Attractions: []domain.Attraction{
			{Name: "Opera House", Type: "Building", Lat: -33.8568, Lon: 151.2153},
			{Name: "Harbour Bridge", Type: "Bridge", Lat: -33.8523, Lon: 151.2108},
			{Name: "Bondi Beach", Type: "Beach", Lat: -33.8908, Lon: 151.2743},
		},
	},
}

type PlacesService struct {
	geocoder port.Geocoder
}

func NewPlacesService(geocoder port.Geocoder) *PlacesService {
	return &PlacesService{geocoder: geocoder}
}

func (s *PlacesService) Geocode(ctx context.Context, query string) (domain.Coordinates, error) {
	return s.geocoder.Geocode(ctx, query)
}

// Attractions returns the curated destination matching the given city
// name, if there is one. Candidates are checked in alphabetical key order
// so a query touching several cities resolves the same way every time.
func (s *PlacesService) Attractions(city string) (domain.Destination, error) {
	key := strings.ToLower(strings.TrimSpace(city))
	if key == "" {
		return domain.Destination{}, domain.ErrCityNotCurated
	}

	names := make([]string, 0, len(curatedDestinations))
	for name := range curatedDestinations {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if strings.Contains(key, name) || strings.Contains(name, key) {
			return curatedDestinations[name], nil
		}
	}
	return domain.Destination{}, domain.ErrCityNotCurated
}

// CuratedCities lists the cities Attractions knows about.
func (s *PlacesService) CuratedCities() []string {
	cities := make([]string, 0, len(curatedDestinations))
	for _, dest := range curatedDestinations {
		cities = append(cities, dest.Name)
	}
	sort.Strings(cities)
	return cities
}
