package service

import (
	"fmt"
	"strings"
	"time"

	"shopquote/internal/domain"
	"shopquote/internal/pricing"
	"shopquote/internal/repository"

	"github.com/google/uuid"
)

type quoteService struct {
	quotes    repository.QuoteRepo
	customers repository.CustomerRepo
}

// NewQuoteService creates a QuoteService over the given repositories.
func NewQuoteService(quotes repository.QuoteRepo, customers repository.CustomerRepo) QuoteService {
	return &quoteService{quotes: quotes, customers: customers}
}

func (s *quoteService) List() []domain.Quote {
	return s.quotes.List()
}

func (s *quoteService) FindByID(id string) (domain.Quote, bool) {
	return s.quotes.FindByID(id)
}

func (s *quoteService) Remove(id string) {
	s.quotes.Remove(id)
}

// guessTitle derives a title from the first named line item.
func guessTitle(items []domain.LineItem) string {
	for _, it := range items {
		if name := strings.TrimSpace(it.Name); name != "" {
			return fmt.Sprintf("%s quote", name)
		}
	}
	return domain.DefaultTitle
}

func (s *quoteService) Save(input QuoteInput, editingID string) (domain.Quote, error) {
	customer, found := s.customers.Find(input.CustomerID)
	if !found {
		if len(s.customers.List()) == 0 {
			return domain.Quote{}, domain.Invalid("add a customer first")
		}
		return domain.Quote{}, domain.Invalid("select a customer")
	}

	hasRealItem := false
	for _, it := range input.Items {
		if strings.TrimSpace(it.Name) != "" && pricing.Finite(it.Qty) > 0 {
			hasRealItem = true
			break
		}
	}
	if !hasRealItem {
		return domain.Quote{}, domain.Invalid("add at least one line item with a name and a quantity above zero")
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		title = guessTitle(input.Items)
	}

	items := make([]domain.LineItem, 0, len(input.Items))
	for _, it := range input.Items {
		name := strings.TrimSpace(it.Name)
		if name == "" {
			name = domain.FallbackItemName
		}
		items = append(items, domain.LineItem{
			Name: name,
			Qty:  pricing.Finite(it.Qty),
			Unit: pricing.Finite(it.Unit),
		})
	}

	q := domain.Quote{
		Title:         title,
		Status:        domain.SafeStatus(string(input.Status)),
		Notes:         input.Notes,
		CustomerName:  customer.Name,
		CustomerPhone: customer.Phone,
		CustomerEmail: customer.Email,
		TaxRate:       pricing.Finite(input.TaxRate),
		Items:         items,
	}

	if editingID != "" {
		if existing, ok := s.quotes.FindByID(editingID); ok {
			// Update in place: identity and creation time survive the
			// edit so the quote's follow-up dates stay stable.
			q.ID = existing.ID
			q.CreatedAt = existing.CreatedAt
			s.quotes.Update(q)
			return q, nil
		}
		// Stale edit id: fall through and save as a new quote.
	}

	q.ID = uuid.New().String()
	q.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	s.quotes.Insert(q)
	return q, nil
}
