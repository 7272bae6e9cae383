package domain

import "errors"

var ErrCountryLookupFailed = errors.New("country directory unavailable")

type Country struct {
	Name     string `json:"name"`
	Code     string `json:"code"`
	Capital  string `json:"capital,omitempty"`
	Region   string `json:"region,omitempty"`
	Currency string `json:"currency,omitempty"`
	Flag     string `json:"flag,omitempty"`
}
