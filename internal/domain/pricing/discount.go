package pricing

import "math"

// DiscountRate is the flat loyalty discount applied to eligible accounts.
const DiscountRate = 0.20

// Quote is the priced view of a subtotal.
type Quote struct {
	Subtotal  int64
	Descuento int64
	Total     int64
}

// Discount computes the flat-rate reduction for a subtotal. Rounding is
// half-up to the nearest whole currency unit (math.Round), not banker's
// rounding. Ineligible accounts always get 0.
func Discount(subtotal int64, eligible bool) int64 {
	if !eligible || subtotal <= 0 {
		return 0
	}
	return int64(math.Round(float64(subtotal) * DiscountRate))
}

// NewQuote prices a subtotal. For any non-negative subtotal the discount
// never exceeds it and the total never goes negative.
func NewQuote(subtotal int64, eligible bool) Quote {
	d := Discount(subtotal, eligible)
	return Quote{
		Subtotal:  subtotal,
		Descuento: d,
		Total:     subtotal - d,
	}
}
