package domain

import "errors"

var (
	ErrLocationNotFound = errors.New("location not found")
	ErrCityNotCurated   = errors.New("no curated attractions for city")
)

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type Attraction struct {
	Name string  `json:"name"`
	Type string  `json:"type"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

type Destination struct {
	Name        string       `json:"name"`
	Center      Coordinates  `json:"center"`
	Attractions []Attraction `json:"attractions"`
}
