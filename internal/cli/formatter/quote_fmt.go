package formatter

import (
	"fmt"
	"strings"
	"time"

	"shopquote/internal/domain"
	"shopquote/internal/pricing"
	"shopquote/internal/schedule"
)

// FormatQuoteList renders each quote as a card with items, totals, and
// follow-up dates.
func FormatQuoteList(quotes []domain.Quote) string {
	cards := make([]string, 0, len(quotes))
	for _, q := range quotes {
		cards = append(cards, FormatQuoteCard(q))
	}
	return strings.Join(cards, "\n\n")
}

// FormatQuoteCard renders a single quote.
func FormatQuoteCard(q domain.Quote) string {
	sum := pricing.Summarize(q.Items, q.TaxRate)

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s  %s\n", Bold(q.Title), StatusBadge(q.Status), Dim(q.DisplayID()))
	fmt.Fprintf(&b, "Customer: %s  %s\n", q.CustomerName, Dim(contact(q.CustomerPhone, q.CustomerEmail)))
	fmt.Fprintf(&b, "%s\n", Dim("Created: "+displayTime(q.CreatedAt)))
	if strings.TrimSpace(q.Notes) != "" {
		fmt.Fprintf(&b, "Notes: %s\n", strings.TrimSpace(q.Notes))
	}
	b.WriteString("\n")
	b.WriteString(formatItems(q.Items))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Subtotal %s  Tax %s  Total %s\n",
		pricing.Money(sum.Subtotal), pricing.Money(sum.Tax), Bold(pricing.Money(sum.Total)))
	b.WriteString(FormatFollowUps(q.CreatedAt))
	return b.String()
}

func formatItems(items []domain.LineItem) string {
	headers := []string{"Item", "Qty", "Unit", "Line"}
	rows := make([][]string, 0, len(items))
	for _, it := range items {
		name := it.Name
		if name == "" {
			name = domain.FallbackItemName
		}
		rows = append(rows, []string{
			name,
			fmt.Sprintf("%g", pricing.Finite(it.Qty)),
			pricing.Money(it.Unit),
			pricing.Money(pricing.LineTotal(it)),
		})
	}
	return RenderTable(headers, rows)
}

// FormatFollowUps renders the Day 1/3/7 reminder badges for a creation
// timestamp, or a dim note when the timestamp is unreadable.
func FormatFollowUps(createdAt string) string {
	fups, ok := schedule.FollowUpsFor(createdAt)
	if !ok {
		return Dim("Follow-ups unavailable (no creation date)") + "\n"
	}
	parts := make([]string, 0, len(fups))
	for _, f := range fups {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Label, f.Date.Format("Jan 2, 2006")))
	}
	return Dim(strings.Join(parts, "  |  ")) + "\n"
}

func contact(phone, email string) string {
	return fmt.Sprintf("%s / %s", orDash(phone), orDash(email))
}

func displayTime(iso string) string {
	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		return iso
	}
	return t.Local().Format("Jan 2, 2006 3:04 PM")
}
