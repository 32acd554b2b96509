// Package money holds the currency helpers shared by the wallet and the
// views. Amounts are plain float64 dollars kept at two decimal places.
package money

import (
	"fmt"
	"math"
)

// RoundCents rounds an amount to whole cents, half away from zero.
// User-supplied amounts with sub-cent precision are rounded before any
// validation so the validated and posted figures are the same value.
func RoundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// Format renders an amount as a dollar string, e.g. "$12.34".
func Format(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}
