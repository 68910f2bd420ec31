package costing

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	half    = decimal.NewFromFloat(0.5)
	printer = message.NewPrinter(language.Korean)
)

// roundHalfUp rounds toward +Inf on ties, at the given number of decimals.
func roundHalfUp(n float64, places int32) decimal.Decimal {
	return decimal.NewFromFloat(n).Shift(places).Add(half).Floor().Shift(-places)
}

// Won formats an amount as whole won with thousands separators, e.g. "12,000원".
func Won(n float64) string {
	return printer.Sprintf("%d", roundHalfUp(n, 0).IntPart()) + "원"
}

// Pct formats a percentage with one decimal, e.g. "43.5%".
func Pct(n float64) string {
	return roundHalfUp(n, 1).StringFixed(1) + "%"
}
