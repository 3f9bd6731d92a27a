package formatter

import (
	"fmt"
	"strings"

	"shopquote/internal/domain"
	"shopquote/internal/pricing"
)

// FormatSummary renders the plain-text quote summary used for copying into
// a text message or email. No styling: the output is meant to leave the
// terminal.
func FormatSummary(q domain.Quote) string {
	sum := pricing.Summarize(q.Items, q.TaxRate)

	lines := []string{
		"AUTO SHOP QUOTE",
		fmt.Sprintf("Title: %s", q.Title),
		fmt.Sprintf("Status: %s", q.Status),
		fmt.Sprintf("Customer: %s (%s / %s)", orDash(q.CustomerName), orDash(q.CustomerPhone), orDash(q.CustomerEmail)),
	}
	if notes := strings.TrimSpace(q.Notes); notes != "" {
		lines = append(lines, fmt.Sprintf("Notes: %s", notes))
	}

	lines = append(lines, "", "Items:")
	for _, it := range q.Items {
		name := strings.TrimSpace(it.Name)
		if name == "" {
			name = domain.FallbackItemName
		}
		qty := pricing.Finite(it.Qty)
		unit := pricing.Finite(it.Unit)
		lines = append(lines, fmt.Sprintf("- %s | qty %g | %s | %s",
			name, qty, pricing.Money(unit), pricing.Money(qty*unit)))
	}

	lines = append(lines, "",
		fmt.Sprintf("Subtotal: %s", pricing.Money(sum.Subtotal)),
		fmt.Sprintf("Tax (%.2f%%): %s", pricing.Finite(q.TaxRate)*100, pricing.Money(sum.Tax)),
		fmt.Sprintf("Total: %s", pricing.Money(sum.Total)),
	)
	return strings.Join(lines, "\n")
}
