// Package util holds small formatting helpers shared by jobs, handlers and the CLI.
package util

import (
	"github.com/shopspring/decimal"
)

// PriceDecimals is the precision the feed publishes prices with.
const PriceDecimals = 3

// RoundTo rounds v half away from zero to the given number of decimal places.
func RoundTo(v float64, places int32) float64 {
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}

// PriceString renders a per-litre price with the feed's precision, e.g. "1.389".
func PriceString(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(PriceDecimals)
}

// FormatPrice is PriceString with the unit, e.g. "1.389 €/L".
func FormatPrice(v float64) string {
	return PriceString(v) + " €/L"
}
