package services

import (
	"context"

	"github.com/SwiftEdgeIT/swiftedge_portal/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ResolvedCurrency is the outcome of preferred-currency resolution.
type ResolvedCurrency struct {
	Currency    string
	CountryCode string
	Source      string // "preference", "geo" or "default"
}

// Currency resolution sources.
const (
	CurrencySourcePreference = "preference"
	CurrencySourceGeo        = "geo"
	CurrencySourceDefault    = "default"
)

// PricingReaderSvc defines the read-side pricing operations. None of these
// return errors: every failure degrades to a deterministic default, logged
// and counted, so a pricing page can never hard-fail.
type PricingReaderSvc interface {
	// DetectLocation resolves the caller's location from their network
	// origin, cached per origin. Failure yields the US/USD default.
	DetectLocation(ctx context.Context, ip string) domain.Location

	// FetchAllRates returns the current rate table as units per 1 USD.
	// The boolean reports whether the static fallback table is being served.
	FetchAllRates(ctx context.Context) (map[string]decimal.Decimal, bool)

	// GetRate returns the rate for a single currency. USD is always 1.
	GetRate(ctx context.Context, currency string) decimal.Decimal

	// Convert converts amount between two currencies, rounded to 2 decimal
	// places. Equal currencies return amount unchanged.
	Convert(ctx context.Context, amount decimal.Decimal, from, to string) decimal.Decimal

	// FormatAmount renders amount for display in the given currency.
	FormatAmount(amount decimal.Decimal, currency string) string

	// PreferredCurrency resolves the display currency for a caller. userID
	// may be empty for anonymous visitors.
	PreferredCurrency(ctx context.Context, userID, ip string) ResolvedCurrency

	// SupportedCurrencies lists the display currency set.
	SupportedCurrencies() []string
}

// PricingWriterSvc defines the write-side pricing operations.
type PricingWriterSvc interface {
	// SetPreferredCurrency pins the user's display currency and disables
	// auto-detection. Unlike the read side this validates and can fail.
	SetPreferredCurrency(ctx context.Context, userID, currency string) error
}

// PricingSvcFacade combines the pricing service interfaces.
type PricingSvcFacade interface {
	PricingReaderSvc
	PricingWriterSvc
}
