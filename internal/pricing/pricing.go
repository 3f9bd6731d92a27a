// Package pricing holds the pure quote arithmetic shared by the editor, the
// list view, and the print renderers. No function here has side effects.
package pricing

import (
	"fmt"
	"math"

	"shopquote/internal/domain"
)

// Finite clamps NaN and infinities to 0 so broken input can never leak a
// non-finite number into a stored quote or a rendered total.
func Finite(n float64) float64 {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0
	}
	return n
}

// LineTotal returns qty * unit for a single item.
func LineTotal(item domain.LineItem) float64 {
	return Finite(item.Qty) * Finite(item.Unit)
}

// Subtotal sums the line totals of all items.
func Subtotal(items []domain.LineItem) float64 {
	var sum float64
	for _, it := range items {
		sum += LineTotal(it)
	}
	return sum
}

// Tax returns subtotal * rate. A non-finite rate is treated as 0.
func Tax(subtotal, rate float64) float64 {
	return Finite(subtotal) * Finite(rate)
}

// Summary is the computed price breakdown of a set of items.
type Summary struct {
	Subtotal float64
	Tax      float64
	Total    float64
}

// Summarize computes subtotal, tax, and total in one pass.
func Summarize(items []domain.LineItem, taxRate float64) Summary {
	sub := Subtotal(items)
	tax := Tax(sub, taxRate)
	return Summary{Subtotal: sub, Tax: tax, Total: sub + tax}
}

// Money formats an amount as a two-decimal USD-style string.
func Money(n float64) string {
	return fmt.Sprintf("$%.2f", Finite(n))
}
