package dto

import "github.com/shopspring/decimal"

// ConvertRequest is the query shape for GET /pricing/convert.
type ConvertRequest struct {
	Amount decimal.Decimal `form:"amount" binding:"required"`
	From   string          `form:"from" binding:"required,len=3,uppercase"`
	To     string          `form:"to" binding:"required,len=3,uppercase"`
}

// ConvertResponse carries a converted amount and its display rendering.
type ConvertResponse struct {
	Amount        decimal.Decimal `json:"amount"`
	From          string          `json:"from"`
	To            string          `json:"to"`
	Converted     decimal.Decimal `json:"converted"`
	DisplayText   string          `json:"displayText"`
	FallbackRates bool            `json:"fallbackRates"` // true when served from the static table
}

// PreferredCurrencyResponse is the resolved display currency for the caller.
type PreferredCurrencyResponse struct {
	Currency    string `json:"currency"`
	CountryCode string `json:"countryCode,omitempty"`
	Source      string `json:"source"` // "preference", "geo" or "default"
}

// SetCurrencyPreferenceRequest pins a user's display currency and disables
// auto-detection.
type SetCurrencyPreferenceRequest struct {
	Currency string `json:"currency" binding:"required,len=3,uppercase"`
}
