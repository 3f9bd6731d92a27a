package testutil

import (
	"time"

	"github.com/google/uuid"

	"shopquote/internal/domain"
)

// NewTestCustomer returns a customer with a fresh id and plausible contact
// details.
func NewTestCustomer(name string) domain.Customer {
	return domain.Customer{
		ID:        uuid.New().String(),
		Name:      name,
		Phone:     "555-0100",
		Email:     "shop@example.com",
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
}

// NewTestQuote returns a saved quote with one labor line item.
func NewTestQuote(title, createdAt string) domain.Quote {
	return domain.Quote{
		ID:           uuid.New().String(),
		CreatedAt:    createdAt,
		Title:        title,
		Status:       domain.StatusDraft,
		CustomerName: "Jane Doe",
		TaxRate:      0.09,
		Items:        []domain.LineItem{{Name: "Labor", Qty: 1, Unit: 120}},
	}
}
