// Package currencydata holds the static currency reference tables: the
// country→currency defaults used when resolving a visitor's display currency,
// the approximate USD rates used when the live rate source is unreachable,
// and the display formats for the supported currency set. The first two live
// in JSON files embedded at build time so they can be updated without
// touching code.
package currencydata

import (
	"embed"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

//go:embed country_currencies.json fallback_rates.json
var dataFS embed.FS

// DisplayFormat describes how a currency is rendered for display.
type DisplayFormat struct {
	Locale      string // BCP-47 tag used for digit grouping
	Symbol      string
	Decimals    int32
	SymbolAfter bool // true when the symbol trails the amount (e.g. "1 234 kr")
}

// displayFormats is the supported display set. Codes without an entry fall
// back to the USD format.
var displayFormats = map[string]DisplayFormat{
	"AED": {Locale: "ar-AE", Symbol: "د.إ", Decimals: 2},
	"AUD": {Locale: "en-AU", Symbol: "A$", Decimals: 2},
	"BRL": {Locale: "pt-BR", Symbol: "R$", Decimals: 2},
	"CAD": {Locale: "en-CA", Symbol: "C$", Decimals: 2},
	"CHF": {Locale: "de-CH", Symbol: "CHF ", Decimals: 2},
	"CNY": {Locale: "zh-CN", Symbol: "¥", Decimals: 2},
	"CZK": {Locale: "cs-CZ", Symbol: " Kč", Decimals: 2, SymbolAfter: true},
	"DKK": {Locale: "da-DK", Symbol: " kr", Decimals: 2, SymbolAfter: true},
	"EUR": {Locale: "de-DE", Symbol: "€", Decimals: 2},
	"GBP": {Locale: "en-GB", Symbol: "£", Decimals: 2},
	"HKD": {Locale: "zh-HK", Symbol: "HK$", Decimals: 2},
	"IDR": {Locale: "id-ID", Symbol: "Rp", Decimals: 0},
	"ILS": {Locale: "he-IL", Symbol: "₪", Decimals: 2},
	"INR": {Locale: "en-IN", Symbol: "₹", Decimals: 2},
	"JPY": {Locale: "ja-JP", Symbol: "¥", Decimals: 0},
	"KRW": {Locale: "ko-KR", Symbol: "₩", Decimals: 0},
	"MXN": {Locale: "es-MX", Symbol: "MX$", Decimals: 2},
	"MYR": {Locale: "ms-MY", Symbol: "RM", Decimals: 2},
	"NOK": {Locale: "nb-NO", Symbol: " kr", Decimals: 2, SymbolAfter: true},
	"NZD": {Locale: "en-NZ", Symbol: "NZ$", Decimals: 2},
	"PHP": {Locale: "fil-PH", Symbol: "₱", Decimals: 2},
	"PLN": {Locale: "pl-PL", Symbol: " zł", Decimals: 2, SymbolAfter: true},
	"SAR": {Locale: "ar-SA", Symbol: "﷼", Decimals: 2},
	"SEK": {Locale: "sv-SE", Symbol: " kr", Decimals: 2, SymbolAfter: true},
	"SGD": {Locale: "en-SG", Symbol: "S$", Decimals: 2},
	"THB": {Locale: "th-TH", Symbol: "฿", Decimals: 2},
	"TRY": {Locale: "tr-TR", Symbol: "₺", Decimals: 2},
	"USD": {Locale: "en-US", Symbol: "$", Decimals: 2},
	"VND": {Locale: "vi-VN", Symbol: "₫", Decimals: 0, SymbolAfter: true},
	"ZAR": {Locale: "en-ZA", Symbol: "R", Decimals: 2},
}

// Tables is the parsed, read-only reference data.
type Tables struct {
	countryCurrency map[string]string
	fallbackRates   map[string]decimal.Decimal
}

// Load parses the embedded JSON tables. It fails when a fallback rate is
// missing, zero or negative, since the whole point of the fallback table is
// to be safe to divide by.
func Load() (*Tables, error) {
	countryRaw, err := dataFS.ReadFile("country_currencies.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read country currency table: %w", err)
	}
	var countryCurrency map[string]string
	if err := json.Unmarshal(countryRaw, &countryCurrency); err != nil {
		return nil, fmt.Errorf("failed to parse country currency table: %w", err)
	}

	ratesRaw, err := dataFS.ReadFile("fallback_rates.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read fallback rate table: %w", err)
	}
	var rawRates map[string]decimal.Decimal
	if err := json.Unmarshal(ratesRaw, &rawRates); err != nil {
		return nil, fmt.Errorf("failed to parse fallback rate table: %w", err)
	}
	for code, rate := range rawRates {
		if rate.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("fallback rate for %s must be positive, got %s", code, rate)
		}
	}

	return &Tables{countryCurrency: countryCurrency, fallbackRates: rawRates}, nil
}

// CurrencyForCountry maps an ISO country code to this business's preferred
// currency for it. The table overrides whatever a geo-IP provider claims.
func (t *Tables) CurrencyForCountry(countryCode string) (string, bool) {
	code, ok := t.countryCurrency[countryCode]
	return code, ok
}

// FallbackRate returns the approximate units-per-USD rate for code.
func (t *Tables) FallbackRate(code string) (decimal.Decimal, bool) {
	rate, ok := t.fallbackRates[code]
	return rate, ok
}

// FallbackRates returns a copy of the whole fallback table.
func (t *Tables) FallbackRates() map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(t.fallbackRates))
	for code, rate := range t.fallbackRates {
		out[code] = rate
	}
	return out
}

// Format returns the display format for code, falling back to USD's format
// for codes outside the supported set.
func Format(code string) DisplayFormat {
	if f, ok := displayFormats[code]; ok {
		return f
	}
	return displayFormats["USD"]
}

// SupportedCurrencies lists the codes with a display format entry.
func SupportedCurrencies() []string {
	out := make([]string, 0, len(displayFormats))
	for code := range displayFormats {
		out = append(out, code)
	}
	return out
}
