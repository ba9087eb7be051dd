package currencydata

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_TablesParse(t *testing.T) {
	tables, err := Load()
	require.NoError(t, err)

	code, ok := tables.CurrencyForCountry("IN")
	require.True(t, ok)
	assert.Equal(t, "INR", code)

	code, ok = tables.CurrencyForCountry("DE")
	require.True(t, ok)
	assert.Equal(t, "EUR", code)

	_, ok = tables.CurrencyForCountry("XX")
	assert.False(t, ok)
}

func TestLoad_AllFallbackRatesPositive(t *testing.T) {
	tables, err := Load()
	require.NoError(t, err)

	for code, rate := range tables.FallbackRates() {
		assert.True(t, rate.GreaterThan(decimal.Zero), "rate for %s must be positive", code)
	}

	usd, ok := tables.FallbackRate("USD")
	require.True(t, ok)
	assert.True(t, usd.Equal(decimal.NewFromInt(1)))
}

func TestLoad_EveryMappedCurrencyHasFallbackRate(t *testing.T) {
	tables, err := Load()
	require.NoError(t, err)

	for country := range tables.countryCurrency {
		code, _ := tables.CurrencyForCountry(country)
		_, ok := tables.FallbackRate(code)
		assert.True(t, ok, "country %s maps to %s which has no fallback rate", country, code)
	}
}

func TestFallbackRates_ReturnsCopy(t *testing.T) {
	tables, err := Load()
	require.NoError(t, err)

	rates := tables.FallbackRates()
	rates["EUR"] = decimal.NewFromInt(-1)

	again, ok := tables.FallbackRate("EUR")
	require.True(t, ok)
	assert.True(t, again.GreaterThan(decimal.Zero), "mutating the copy must not affect the table")
}

func TestFormat_FallsBackToUSD(t *testing.T) {
	f := Format("XTS")
	assert.Equal(t, "$", f.Symbol)
	assert.Equal(t, int32(2), f.Decimals)

	jpy := Format("JPY")
	assert.Equal(t, int32(0), jpy.Decimals)
}
