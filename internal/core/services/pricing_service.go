package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/SwiftEdgeIT/swiftedge_portal/internal/apperrors"
	"github.com/SwiftEdgeIT/swiftedge_portal/internal/core/domain"
	"github.com/SwiftEdgeIT/swiftedge_portal/internal/core/ports"
	portsrepo "github.com/SwiftEdgeIT/swiftedge_portal/internal/core/ports/repositories"
	portssvc "github.com/SwiftEdgeIT/swiftedge_portal/internal/core/ports/services"
	"github.com/SwiftEdgeIT/swiftedge_portal/internal/middleware"
	"github.com/SwiftEdgeIT/swiftedge_portal/internal/platform/currencydata"
	"github.com/SwiftEdgeIT/swiftedge_portal/internal/platform/snapshot"
	"github.com/SwiftEdgeIT/swiftedge_portal/internal/utils"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shopspring/decimal"
)

var (
	geoFallbackTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pricing_geoip_fallback_total",
		Help: "Geo-IP lookups that degraded to the US/USD default.",
	})
	ratesFallbackTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pricing_rates_fallback_total",
		Help: "Rate refreshes served from the static fallback table.",
	})
	unknownCurrencyTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pricing_unknown_currency_total",
		Help: "Conversions that hit a currency code absent from the rate table.",
	})
)

// rateSnapshot is one cached rate table plus its provenance.
type rateSnapshot struct {
	rates    map[string]decimal.Decimal
	fallback bool
}

// pricingService implements currency detection, conversion and formatting.
// The read side never returns errors: lookups degrade to deterministic
// defaults so a pricing page always renders.
type pricingService struct {
	geo      ports.GeoLocator
	source   ports.RateSource
	prefRepo portsrepo.PreferenceRepository
	tables   *currencydata.Tables

	locations *snapshot.KeyedCache[domain.Location]
	rateCache *snapshot.Cache[rateSnapshot]
	now       snapshot.Clock
}

// NewPricingService creates the pricing service. A nil clock means real time;
// tests inject a fake one to exercise cache expiry.
func NewPricingService(
	geo ports.GeoLocator,
	source ports.RateSource,
	prefRepo portsrepo.PreferenceRepository,
	tables *currencydata.Tables,
	locationTTL, ratesTTL time.Duration,
	now snapshot.Clock,
) portssvc.PricingSvcFacade {
	if now == nil {
		now = time.Now
	}
	return &pricingService{
		geo:       geo,
		source:    source,
		prefRepo:  prefRepo,
		tables:    tables,
		locations: snapshot.NewKeyedCache[domain.Location](locationTTL, now),
		rateCache: snapshot.NewCache[rateSnapshot](ratesTTL, now),
		now:       now,
	}
}

// DetectLocation resolves the caller's network origin, cached per origin.
// Lookup failure yields the US/USD default, cached for the full TTL so a
// failing provider is not hammered on every request.
func (s *pricingService) DetectLocation(ctx context.Context, ip string) domain.Location {
	if loc, ok := s.locations.Get(ip); ok {
		return loc
	}

	loc, err := s.geo.Locate(ctx, ip)
	if err != nil {
		geoFallbackTotal.Inc()
		middleware.GetLoggerFromCtx(ctx).Warn("geo lookup failed, using default location",
			slog.String("ip", ip),
			slog.String("error", err.Error()),
		)
		loc = domain.DefaultLocation
	}

	s.locations.Set(ip, loc)
	return loc
}

// FetchAllRates returns the current rate table as units per 1 USD. When the
// provider is unreachable the static fallback table is served and cached for
// the full TTL, so the provider is retried at most once per refresh window.
func (s *pricingService) FetchAllRates(ctx context.Context) (map[string]decimal.Decimal, bool) {
	if snap, ok := s.rateCache.Get(); ok {
		return cloneRates(snap.rates), snap.fallback
	}

	rates, err := s.source.FetchRates(ctx)
	if err != nil {
		ratesFallbackTotal.Inc()
		middleware.GetLoggerFromCtx(ctx).Warn("rate fetch failed, serving static fallback table",
			slog.String("error", err.Error()),
		)
		snap := rateSnapshot{rates: s.tables.FallbackRates(), fallback: true}
		s.rateCache.Set(snap)
		return cloneRates(snap.rates), true
	}

	// The base currency may be absent from provider payloads.
	if _, ok := rates["USD"]; !ok {
		rates["USD"] = decimal.NewFromInt(1)
	}
	s.rateCache.Set(rateSnapshot{rates: rates})
	return cloneRates(rates), false
}

// GetRate returns the units-per-USD rate for one currency. USD is always 1;
// a code the live payload lacks resolves to its static fallback entry, and to
// 1 (logged and counted) only when the static table lacks it too.
func (s *pricingService) GetRate(ctx context.Context, currency string) decimal.Decimal {
	if currency == "USD" {
		return decimal.NewFromInt(1)
	}
	rates, _ := s.FetchAllRates(ctx)
	return s.rateOrOne(ctx, rates, currency)
}

// Convert converts amount from one currency to another, rounded to 2 decimal
// places. Equal currencies return the amount unchanged.
func (s *pricingService) Convert(ctx context.Context, amount decimal.Decimal, from, to string) decimal.Decimal {
	if from == to {
		return amount
	}
	rates, _ := s.FetchAllRates(ctx)
	fromRate := s.rateOrOne(ctx, rates, from)
	toRate := s.rateOrOne(ctx, rates, to)
	return amount.Mul(toRate).Div(fromRate).Round(2)
}

func (s *pricingService) rateOrOne(ctx context.Context, rates map[string]decimal.Decimal, currency string) decimal.Decimal {
	if rate, ok := rates[currency]; ok && rate.IsPositive() {
		return rate
	}
	// Live payload lacks a usable rate for this code: substitute the static
	// table entry before degrading to 1:1.
	if rate, ok := s.tables.FallbackRate(currency); ok {
		middleware.GetLoggerFromCtx(ctx).Warn("currency missing from live rates, using static fallback entry",
			slog.String("currency", currency),
		)
		return rate
	}
	unknownCurrencyTotal.Inc()
	middleware.GetLoggerFromCtx(ctx).Warn("currency missing from rate table, treating as 1:1 with USD",
		slog.String("currency", currency),
	)
	return decimal.NewFromInt(1)
}

// FormatAmount renders amount for display in the given currency.
func (s *pricingService) FormatAmount(amount decimal.Decimal, currency string) string {
	return utils.FormatCurrency(amount, currency)
}

// PreferredCurrency resolves the display currency for a caller: a pinned
// preference wins, then the geo-detected country's currency, then USD.
func (s *pricingService) PreferredCurrency(ctx context.Context, userID, ip string) portssvc.ResolvedCurrency {
	var stored *domain.CurrencyPreference
	if userID != "" {
		pref, err := s.prefRepo.FindPreference(ctx, userID)
		switch {
		case err == nil && !pref.AutoDetect && pref.PreferredCurrency != "":
			return portssvc.ResolvedCurrency{
				Currency:    pref.PreferredCurrency,
				CountryCode: pref.CountryCode,
				Source:      portssvc.CurrencySourcePreference,
			}
		case err == nil:
			stored = pref
		case !errors.Is(err, apperrors.ErrNotFound):
			middleware.GetLoggerFromCtx(ctx).Warn("preference lookup failed, falling through to geo detection",
				slog.String("user_id", userID),
				slog.String("error", err.Error()),
			)
		}
	}

	// Server-initiated callers (invoicing) carry no request IP: there is
	// nothing to detect, and an earlier detection must not be overwritten.
	if ip == "" {
		if stored != nil && stored.PreferredCurrency != "" {
			return portssvc.ResolvedCurrency{
				Currency:    stored.PreferredCurrency,
				CountryCode: stored.CountryCode,
				Source:      portssvc.CurrencySourcePreference,
			}
		}
		return portssvc.ResolvedCurrency{
			Currency:    "USD",
			CountryCode: domain.DefaultLocation.CountryCode,
			Source:      portssvc.CurrencySourceDefault,
		}
	}

	loc := s.DetectLocation(ctx, ip)
	resolved := portssvc.ResolvedCurrency{
		CountryCode: loc.CountryCode,
		Source:      portssvc.CurrencySourceGeo,
	}
	if currency, ok := s.tables.CurrencyForCountry(loc.CountryCode); ok {
		resolved.Currency = currency
	} else if loc.Currency != "" {
		// country not in our table: trust the currency the provider reported
		resolved.Currency = loc.Currency
	} else {
		resolved.Currency = "USD"
		resolved.Source = portssvc.CurrencySourceDefault
	}

	if userID != "" {
		s.rememberDetected(ctx, userID, resolved.Currency, loc.CountryCode)
	}
	return resolved
}

// rememberDetected persists the geo-detected currency for a signed-in user so
// later requests resolve without a lookup. Best effort: the preference row is
// FK-bound to the user, and save errors are swallowed.
func (s *pricingService) rememberDetected(ctx context.Context, userID, currency, countryCode string) {
	pref := domain.CurrencyPreference{
		UserID:            userID,
		PreferredCurrency: currency,
		CountryCode:       countryCode,
		AutoDetect:        true,
		UpdatedAt:         s.now(),
	}
	if err := s.prefRepo.SavePreference(ctx, pref); err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("could not persist detected currency",
			slog.String("user_id", userID),
			slog.String("error", err.Error()),
		)
	}
}

// SupportedCurrencies lists the display currency set.
func (s *pricingService) SupportedCurrencies() []string {
	return currencydata.SupportedCurrencies()
}

// SetPreferredCurrency pins the user's display currency and disables
// auto-detection.
func (s *pricingService) SetPreferredCurrency(ctx context.Context, userID, currency string) error {
	if !isSupportedCurrency(currency) {
		return apperrors.ErrValidation
	}
	pref := domain.CurrencyPreference{
		UserID:            userID,
		PreferredCurrency: currency,
		AutoDetect:        false,
		UpdatedAt:         s.now(),
	}
	if existing, err := s.prefRepo.FindPreference(ctx, userID); err == nil {
		pref.CountryCode = existing.CountryCode
	}
	return s.prefRepo.SavePreference(ctx, pref)
}

func isSupportedCurrency(code string) bool {
	for _, c := range currencydata.SupportedCurrencies() {
		if c == code {
			return true
		}
	}
	return false
}

func cloneRates(rates map[string]decimal.Decimal) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(rates))
	for k, v := range rates {
		out[k] = v
	}
	return out
}
