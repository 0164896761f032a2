// Package billing computes invoice totals for a cart. It is pure
// arithmetic: no store access, no rounding of stored values. Callers
// round for display only.
package billing

import "math"

// TaxRate is the flat GST rate applied to the discounted subtotal.
const TaxRate = 0.05

// Line is one priced cart entry. Quantity is assumed >= 1; the UI layer
// enforces that before a line reaches the calculator.
type Line struct {
	Price    float64
	Quantity int
}

// Totals holds the frozen amounts of one invoice.
// Total = (Subtotal - Discount) + Tax always holds.
type Totals struct {
	Subtotal float64
	Discount float64
	Tax      float64
	Total    float64
}

// Calculate derives invoice totals from cart lines and a discount
// percentage. discountPercent outside [0,100] is not rejected here;
// callers clamp. An empty cart yields all zeros.
func Calculate(lines []Line, discountPercent float64) Totals {
	subtotal := 0.0
	for _, l := range lines {
		subtotal += l.Price * float64(l.Quantity)
	}
	discount := subtotal * discountPercent / 100
	taxable := subtotal - discount
	tax := taxable * TaxRate
	return Totals{
		Subtotal: subtotal,
		Discount: discount,
		Tax:      tax,
		Total:    taxable + tax,
	}
}

// Round2 rounds to two decimal places for presentation. Stored totals
// keep full floating precision.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
