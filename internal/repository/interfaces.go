package repository

import "shopquote/internal/domain"

// CustomerRepo owns the customer collection and its redundant backup copy.
type CustomerRepo interface {
	List() []domain.Customer
	Search(query string) []domain.Customer
	Find(id string) (domain.Customer, bool)
	Add(c domain.Customer)
	Remove(id string)
}

// QuoteRepo owns the saved-quote collection. Insert prepends (newest first);
// Update replaces the record matching the quote's id in place.
type QuoteRepo interface {
	List() []domain.Quote
	FindByID(id string) (domain.Quote, bool)
	Insert(q domain.Quote)
	Update(q domain.Quote) bool
	Remove(id string)
}

// DraftRepo owns the single draft slot and the edit pointer.
type DraftRepo interface {
	Draft() (domain.Draft, bool)
	SaveDraft(d domain.Draft)
	ClearDraft()
	EditPointer() (string, bool)
	SetEditPointer(id string)
	ClearEditPointer()
}
