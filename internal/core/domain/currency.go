package domain

import "errors"

var ErrConversionUnavailable = errors.New("currency conversion unavailable")

// Conversion is one successful quote from the exchange-rate provider.
type Conversion struct {
	Amount    float64 `json:"amount"`
	Converted float64 `json:"converted_amount"`
	Rate      float64 `json:"rate"`
	From      string  `json:"from"`
	To        string  `json:"to"`
	Date      string  `json:"date"`
	Timestamp string  `json:"timestamp"`
}

// SupportedCurrencies is the curated set offered by the dashboard.
var SupportedCurrencies = []string{
	"AED", "ARS", "AUD", "BDT", "BRL", "CAD", "CHF", "CLP", "CNY", "COP",
	"CZK", "DKK", "EGP", "EUR", "GBP", "HKD", "HUF", "IDR", "ILS", "INR",
	"JPY", "KRW", "MXN", "MYR", "NGN", "NOK", "NZD", "PHP", "PKR", "PLN",
	"RUB", "SAR", "SEK", "SGD", "THB", "TRY", "TWD", "USD", "VND", "ZAR",
}

var currencyNames = map[string]string{
	"USD": "US Dollar", "EUR": "Euro", "GBP": "British Pound", "JPY": "Japanese Yen",
	"AUD": "Australian Dollar", "CAD": "Canadian Dollar", "CHF": "Swiss Franc",
	"CNY": "Chinese Yuan", "SEK": "Swedish Krona", "NZD": "New Zealand Dollar",
	"MXN": "Mexican Peso", "SGD": "Singapore Dollar", "HKD": "Hong Kong Dollar",
	"NOK": "Norwegian Krone", "KRW": "South Korean Won", "TRY": "Turkish Lira",
	"RUB": "Russian Ruble", "INR": "Indian Rupee", "BRL": "Brazilian Real",
	"ZAR": "South African Rand", "DKK": "Danish Krone", "PLN": "Polish Zloty",
	"TWD": "Taiwan Dollar", "THB": "Thai Baht", "MYR": "Malaysian Ringgit",
	"IDR": "Indonesian Rupiah", "HUF": "Hungarian Forint", "CZK": "Czech Koruna",
	"ILS": "Israeli Shekel", "CLP": "Chilean Peso", "PHP": "Philippine Peso",
	"AED": "UAE Dirham", "SAR": "Saudi Riyal", "COP": "Colombian Peso",
	"ARS": "Argentine Peso", "PKR": "Pakistani Rupee", "BDT": "Bangladeshi Taka",
	"VND": "Vietnamese Dong", "EGP": "Egyptian Pound", "NGN": "Nigerian Naira",
}

// CurrencyName returns the display name for a code, or the code itself
// when it is not in the curated set.
func CurrencyName(code string) string {
	if name, ok := currencyNames[code]; ok {
		return name
	}
	return code
}

func IsSupportedCurrency(code string) bool {
	_, ok := currencyNames[code]
	return ok
}
