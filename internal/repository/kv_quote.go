package repository

import (
	"encoding/json"
	"sort"
	"strings"

	"shopquote/internal/domain"
	"shopquote/internal/store"
)

// KVQuoteRepo implements QuoteRepo over the key-value store.
type KVQuoteRepo struct {
	store store.Store
}

// NewKVQuoteRepo creates a new KVQuoteRepo.
func NewKVQuoteRepo(s store.Store) *KVQuoteRepo {
	return &KVQuoteRepo{store: s}
}

// quoteRecord mirrors the stored shape. Only id and createdAt are required;
// everything else normalizes to a usable default on read.
type quoteRecord struct {
	ID            *string      `json:"id"`
	CreatedAt     *string      `json:"createdAt"`
	Title         string       `json:"title"`
	Status        string       `json:"status"`
	Notes         string       `json:"notes"`
	CustomerName  string       `json:"customerName"`
	CustomerPhone string       `json:"customerPhone"`
	CustomerEmail string       `json:"customerEmail"`
	TaxRate       float64      `json:"taxRate"`
	Items         []itemRecord `json:"items"`
}

// load reads and normalizes the collection in storage order (newest first,
// since Insert prepends).
func (r *KVQuoteRepo) load() []domain.Quote {
	raw, ok := r.store.Get(quotesKey)
	if !ok {
		return nil
	}
	elems := decodeElements(raw)
	quotes := make([]domain.Quote, 0, len(elems))
	for _, elem := range elems {
		var rec quoteRecord
		if err := json.Unmarshal(elem, &rec); err != nil {
			continue
		}
		if rec.ID == nil || rec.CreatedAt == nil {
			continue
		}

		title := strings.TrimSpace(rec.Title)
		if title == "" {
			title = "Quote"
		}

		quotes = append(quotes, domain.Quote{
			ID:            *rec.ID,
			CreatedAt:     *rec.CreatedAt,
			Title:         title,
			Status:        domain.SafeStatus(rec.Status),
			Notes:         rec.Notes,
			CustomerName:  rec.CustomerName,
			CustomerPhone: rec.CustomerPhone,
			CustomerEmail: rec.CustomerEmail,
			TaxRate:       rec.TaxRate,
			Items:         decodeItems(rec.Items),
		})
	}
	return quotes
}

func (r *KVQuoteRepo) write(quotes []domain.Quote) {
	data, err := json.Marshal(quotes)
	if err != nil {
		return
	}
	r.store.Set(quotesKey, string(data))
}

// List returns all quotes sorted descending by creation time. Timestamps are
// ISO-8601 strings, so lexicographic comparison orders them correctly.
func (r *KVQuoteRepo) List() []domain.Quote {
	quotes := r.load()
	sort.SliceStable(quotes, func(i, j int) bool {
		return quotes[i].CreatedAt > quotes[j].CreatedAt
	})
	return quotes
}

// FindByID returns the quote with the given id.
func (r *KVQuoteRepo) FindByID(id string) (domain.Quote, bool) {
	for _, q := range r.load() {
		if q.ID == id {
			return q, true
		}
	}
	return domain.Quote{}, false
}

// Insert prepends the quote to the collection.
func (r *KVQuoteRepo) Insert(q domain.Quote) {
	r.write(append([]domain.Quote{q}, r.load()...))
}

// Update replaces the stored quote matching q.ID in place, keeping its
// position in the collection. Returns false when no record matches.
func (r *KVQuoteRepo) Update(q domain.Quote) bool {
	quotes := r.load()
	for i := range quotes {
		if quotes[i].ID == q.ID {
			quotes[i] = q
			r.write(quotes)
			return true
		}
	}
	return false
}

// Remove filters the quote out of the collection.
func (r *KVQuoteRepo) Remove(id string) {
	quotes := r.load()
	next := make([]domain.Quote, 0, len(quotes))
	for _, q := range quotes {
		if q.ID != id {
			next = append(next, q)
		}
	}
	r.write(next)
}
