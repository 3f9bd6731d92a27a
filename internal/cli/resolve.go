package cli

import (
	"fmt"
	"strings"
)

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// resolveCustomerID accepts a full id, a unique id prefix, or an exact
// (case-insensitive) customer name.
func resolveCustomerID(app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("customer ID is required")
	}

	customers := app.Customers.List()

	for _, c := range customers {
		if c.ID == input {
			return c.ID, nil
		}
	}
	for _, c := range customers {
		if strings.EqualFold(c.Name, input) {
			return c.ID, nil
		}
	}

	var matches []string
	for _, c := range customers {
		if strings.HasPrefix(c.ID, input) {
			matches = append(matches, c.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("customer not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("customer ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

// resolveQuoteID accepts a full quote id or a unique id prefix.
func resolveQuoteID(app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("quote ID is required")
	}

	quotes := app.Quotes.List()

	for _, q := range quotes {
		if q.ID == input {
			return q.ID, nil
		}
	}

	var matches []string
	for _, q := range quotes {
		if strings.HasPrefix(q.ID, input) {
			matches = append(matches, q.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("quote not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("quote ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}
