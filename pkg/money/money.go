// Package money provides currency rounding for presentation values. The
// engine itself keeps full float64 precision; only outgoing DTOs are rounded.
package money

import "github.com/shopspring/decimal"

// Round2 rounds a monetary amount to 2 decimal places.
func Round2(amount float64) float64 {
	return decimal.NewFromFloat(amount).Round(2).InexactFloat64()
}
