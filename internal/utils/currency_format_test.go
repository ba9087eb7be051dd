package utils

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency_USDTwoDecimals(t *testing.T) {
	got := FormatCurrency(decimal.NewFromFloat(1234.5), "USD")
	assert.Equal(t, "$1,234.50", got)
}

func TestFormatCurrency_JPYZeroDecimals(t *testing.T) {
	got := FormatCurrency(decimal.NewFromFloat(1234.5), "JPY")
	assert.True(t, strings.HasPrefix(got, "¥"))
	assert.NotContains(t, got, ".", "JPY renders with no decimal places")
	assert.Contains(t, got, "1,235", "half rounds up to the nearest yen")
}

func TestFormatCurrency_KRWZeroDecimals(t *testing.T) {
	got := FormatCurrency(decimal.NewFromInt(98000), "KRW")
	assert.True(t, strings.HasPrefix(got, "₩"))
	assert.NotContains(t, got, ".")
}

func TestFormatCurrency_SymbolAfter(t *testing.T) {
	got := FormatCurrency(decimal.NewFromInt(100), "SEK")
	assert.True(t, strings.HasSuffix(got, "kr"), "SEK places the symbol after the amount, got %q", got)
}

func TestFormatCurrency_UnknownCodeUsesUSDFormat(t *testing.T) {
	got := FormatCurrency(decimal.NewFromFloat(9.9), "XTS")
	assert.Equal(t, "$9.90", got)
}

func TestFormatWithPrecision(t *testing.T) {
	assert.Equal(t, "12.35", FormatWithPrecision(decimal.NewFromFloat(12.3456), 2))
	assert.Equal(t, "12", FormatWithPrecision(decimal.NewFromFloat(12.3456), 0))
}
