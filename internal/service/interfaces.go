package service

import "shopquote/internal/domain"

// CustomerService manages the customer mini-CRM.
type CustomerService interface {
	Add(name, phone, email string) (domain.Customer, error)
	List() []domain.Customer
	Search(query string) []domain.Customer
	Find(id string) (domain.Customer, bool)
	Remove(id string)
}

// QuoteInput is the editor's view of a quote about to be saved. The customer
// is still a live id reference; Save resolves and snapshots it.
type QuoteInput struct {
	CustomerID string
	Title      string
	Status     domain.QuoteStatus
	Notes      string
	TaxRate    float64
	Items      []domain.LineItem
}

// QuoteService manages saved quotes.
type QuoteService interface {
	List() []domain.Quote
	FindByID(id string) (domain.Quote, bool)
	// Save persists the input as a new quote, or replaces the quote with
	// id editingID in place when one exists. The saved quote keeps its
	// identity and original creation time across edits.
	Save(input QuoteInput, editingID string) (domain.Quote, error)
	Remove(id string)
}

// AccessService gates every core command behind a shared access code.
type AccessService interface {
	Unlocked() bool
	Unlock(code string) error
	Lock()
}
