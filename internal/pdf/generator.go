// Package pdf renders a saved quote as a printable A4 document.
package pdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"shopquote/internal/domain"
	"shopquote/internal/pricing"
)

// Generate renders the quote. It is a read-only projection: nothing about
// the quote is recomputed or persisted beyond the price breakdown.
func Generate(q domain.Quote) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Auto Shop Quote", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Auto Shop Quote")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("%s (%s)", q.Title, q.Status))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Created: %s", displayDate(q.CreatedAt)))
	pdf.Ln(6)

	if q.CustomerName != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Customer: %s", q.CustomerName))
		pdf.Ln(6)
	}
	contact := contactLine(q.CustomerPhone, q.CustomerEmail)
	if contact != "" {
		pdf.Cell(0, 6, contact)
		pdf.Ln(6)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(100, 7, "Item")
	pdf.Cell(20, 7, "Qty")
	pdf.Cell(30, 7, "Unit")
	pdf.Cell(30, 7, "Line")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 10)
	for _, it := range q.Items {
		pdf.Cell(100, 6, trim(it.Name, 55))
		pdf.Cell(20, 6, fmt.Sprintf("%g", pricing.Finite(it.Qty)))
		pdf.Cell(30, 6, pricing.Money(it.Unit))
		pdf.Cell(30, 6, pricing.Money(pricing.LineTotal(it)))
		pdf.Ln(6)
	}

	sum := pricing.Summarize(q.Items, q.TaxRate)
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Subtotal: %s", pricing.Money(sum.Subtotal)))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Tax (%.2f%%): %s", pricing.Finite(q.TaxRate)*100, pricing.Money(sum.Tax)))
	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, fmt.Sprintf("Total: %s", pricing.Money(sum.Total)))
	pdf.Ln(8)

	if q.Notes != "" {
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, fmt.Sprintf("Notes: %s", q.Notes), "", "L", false)
		pdf.Ln(4)
	}

	pdf.SetFont("Helvetica", "", 9)
	pdf.Cell(0, 5, fmt.Sprintf("Generated: %s", time.Now().Format(time.RFC3339)))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing quote pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// displayDate renders a stored ISO timestamp in a friendlier local form,
// passing unparsable values through untouched.
func displayDate(iso string) string {
	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		return iso
	}
	return t.Local().Format("Jan 2, 2006 3:04 PM")
}

func contactLine(phone, email string) string {
	switch {
	case phone != "" && email != "":
		return fmt.Sprintf("%s / %s", phone, email)
	case phone != "":
		return phone
	case email != "":
		return email
	}
	return ""
}

func trim(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "..."
}
