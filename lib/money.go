package lib

import "math"

// RoundCents rounds a euro amount to two decimal places. Totals are computed
// once at order creation and stored, so rounding happens exactly here.
func RoundCents(amount float64) float64 {
	return math.Round(amount*100) / 100
}
