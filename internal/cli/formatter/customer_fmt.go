package formatter

import (
	"shopquote/internal/domain"
)

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// FormatCustomerList renders customers as an aligned table, newest first.
func FormatCustomerList(customers []domain.Customer) string {
	headers := []string{"ID", "Name", "Phone", "Email"}
	rows := make([][]string, 0, len(customers))
	for _, c := range customers {
		id := c.ID
		if len(id) > 8 {
			id = id[:8]
		}
		rows = append(rows, []string{
			Dim(id),
			Bold(c.Name),
			orDash(c.Phone),
			orDash(c.Email),
		})
	}
	return RenderTable(headers, rows)
}
