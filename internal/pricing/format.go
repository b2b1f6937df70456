package pricing

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// currencyInfo describes how a known currency renders.
type currencyInfo struct {
	symbol string

	// zeroDecimal marks currencies conventionally shown without
	// fractional subunits, e.g. the Vietnamese Dong.
	zeroDecimal bool
}

var currencies = map[string]currencyInfo{
	"USD": {symbol: "$"},
	"EUR": {symbol: "€"},
	"GBP": {symbol: "£"},
	"AUD": {symbol: "A$"},
	"CAD": {symbol: "C$"},
	"VND": {symbol: "₫", zeroDecimal: true},
	"JPY": {symbol: "¥", zeroDecimal: true},
	"KRW": {symbol: "₩", zeroDecimal: true},
}

// printer renders grouped digits ("1,235") per locale rules.
var printer = message.NewPrinter(language.English)

// significantDigits is applied before whole-unit rounding of zero-decimal
// currencies, matching the precision the backend quotes rates at.
const significantDigits = 4

// FormatCurrency renders an amount for display in the given ISO 4217 code.
// Zero-decimal currencies round to 4 significant digits and then to a whole
// unit; standard currencies always show two decimals. Unknown codes render
// with the raw code as prefix instead of a symbol.
func FormatCurrency(amount decimal.Decimal, code string) string {
	code = strings.ToUpper(code)

	info, known := currencies[code]
	if !known {
		value, _ := amount.Round(2).Float64()
		return fmt.Sprintf("%s %s", code, printer.Sprintf("%.2f", value))
	}

	if info.zeroDecimal {
		whole := roundSignificant(amount, significantDigits).Round(0)
		return info.symbol + printer.Sprintf("%d", whole.IntPart())
	}

	value, _ := amount.Round(2).Float64()
	return info.symbol + printer.Sprintf("%.2f", value)
}

// KnownCurrencies returns the selectable display currency codes, sorted.
// The selector is derived from this table so the two cannot drift apart.
func KnownCurrencies() []string {
	codes := make([]string, 0, len(currencies))
	for code := range currencies {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// roundSignificant rounds d to the given number of significant digits,
// half away from zero.
func roundSignificant(d decimal.Decimal, digits int32) decimal.Decimal {
	if d.IsZero() {
		return d
	}
	value, _ := d.Abs().Float64()
	magnitude := int32(math.Floor(math.Log10(value)))
	return d.Round(digits - 1 - magnitude)
}
