package utils

import (
	"github.com/SwiftEdgeIT/swiftedge_portal/internal/platform/currencydata"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// FormatCurrency renders an amount for display in the given currency:
// locale digit grouping, the currency's decimal count and symbol placement.
// Codes outside the supported set use USD's format. This function never
// fails; if the locale tag cannot be parsed the amount falls back to a plain
// fixed-precision string with the symbol attached.
//
// Example: FormatCurrency(1234.5, "USD") -> "$1,234.50"
// Example: FormatCurrency(1234.5, "JPY") -> "¥1,235"
func FormatCurrency(amount decimal.Decimal, currencyCode string) string {
	f := currencydata.Format(currencyCode)
	rounded := amount.Round(f.Decimals)

	tag, err := language.Parse(f.Locale)
	if err != nil {
		return attachSymbol(rounded.StringFixed(f.Decimals), f)
	}

	v, exact := rounded.Float64()
	_ = exact // display only; float drift beyond the rounded precision is invisible here
	p := message.NewPrinter(tag)
	grouped := p.Sprint(number.Decimal(v,
		number.MinFractionDigits(int(f.Decimals)),
		number.MaxFractionDigits(int(f.Decimals)),
	))
	if grouped == "" {
		return attachSymbol(rounded.StringFixed(f.Decimals), f)
	}
	return attachSymbol(grouped, f)
}

func attachSymbol(num string, f currencydata.DisplayFormat) string {
	if f.SymbolAfter {
		return num + f.Symbol
	}
	return f.Symbol + num
}

// FormatWithPrecision formats an amount with the given number of decimal
// places and no locale decoration.
func FormatWithPrecision(amount decimal.Decimal, precision int32) string {
	return amount.Round(precision).String()
}
