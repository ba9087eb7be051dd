package domain

import "time"

// Location is a geo-IP resolution for a visitor's network origin.
type Location struct {
	CountryCode string `json:"countryCode"`
	CountryName string `json:"countryName"`
	Currency    string `json:"currency"` // As reported by the provider; not authoritative
}

// DefaultLocation is used whenever the geo lookup fails. Pricing pages must
// never hard-fail for lack of geo data.
var DefaultLocation = Location{
	CountryCode: "US",
	CountryName: "United States",
	Currency:    "USD",
}

// CurrencyPreference is a user's persisted display-currency choice.
type CurrencyPreference struct {
	UserID            string    `json:"userID"`
	PreferredCurrency string    `json:"preferredCurrency"`
	CountryCode       string    `json:"countryCode,omitempty"`
	AutoDetect        bool      `json:"autoDetectCurrency"`
	UpdatedAt         time.Time `json:"updatedAt"`
}
