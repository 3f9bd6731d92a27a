package repository

import (
	"encoding/json"
	"strings"

	"shopquote/internal/domain"
	"shopquote/internal/store"
)

// KVCustomerRepo implements CustomerRepo over the key-value store. Every
// successful write lands on both the primary key and a backup key, and List
// self-heals by restoring from the backup when the primary has been wiped.
type KVCustomerRepo struct {
	store store.Store
}

// NewKVCustomerRepo creates a new KVCustomerRepo.
func NewKVCustomerRepo(s store.Store) *KVCustomerRepo {
	return &KVCustomerRepo{store: s}
}

// customerRecord mirrors the stored shape with optional fields so records
// missing a required field can be dropped instead of half-read.
type customerRecord struct {
	ID        *string `json:"id"`
	Name      *string `json:"name"`
	Phone     *string `json:"phone"`
	Email     *string `json:"email"`
	CreatedAt *string `json:"createdAt"`
}

func (r *KVCustomerRepo) read(key string) []domain.Customer {
	raw, ok := r.store.Get(key)
	if !ok {
		return nil
	}
	elems := decodeElements(raw)
	customers := make([]domain.Customer, 0, len(elems))
	for _, elem := range elems {
		var rec customerRecord
		if err := json.Unmarshal(elem, &rec); err != nil {
			continue
		}
		if rec.ID == nil || rec.Name == nil || rec.Phone == nil || rec.Email == nil || rec.CreatedAt == nil {
			continue
		}
		customers = append(customers, domain.Customer{
			ID:        *rec.ID,
			Name:      *rec.Name,
			Phone:     *rec.Phone,
			Email:     *rec.Email,
			CreatedAt: *rec.CreatedAt,
		})
	}
	return customers
}

func (r *KVCustomerRepo) write(key string, customers []domain.Customer) {
	data, err := json.Marshal(customers)
	if err != nil {
		return
	}
	r.store.Set(key, string(data))
}

func (r *KVCustomerRepo) writeBoth(customers []domain.Customer) {
	r.write(customersKey, customers)
	r.write(customersBackupKey, customers)
}

// List returns all customers, newest first. If the primary key is empty but
// the backup still holds data, the primary is restored from the backup and
// both keys are rewritten in sync; once restored, later calls read the
// primary directly.
func (r *KVCustomerRepo) List() []domain.Customer {
	main := r.read(customersKey)
	if len(main) > 0 {
		// Keep the backup in sync with a healthy primary.
		r.write(customersBackupKey, main)
		return main
	}

	backup := r.read(customersBackupKey)
	if len(backup) > 0 {
		r.writeBoth(backup)
		return backup
	}
	return main
}

// Search filters customers by case-insensitive substring match against name,
// phone, or email. An empty query returns the full list unfiltered.
func (r *KVCustomerRepo) Search(query string) []domain.Customer {
	customers := r.List()
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return customers
	}
	matched := make([]domain.Customer, 0, len(customers))
	for _, c := range customers {
		if strings.Contains(strings.ToLower(c.Name), q) ||
			strings.Contains(strings.ToLower(c.Phone), q) ||
			strings.Contains(strings.ToLower(c.Email), q) {
			matched = append(matched, c)
		}
	}
	return matched
}

// Find returns the customer with the given id.
func (r *KVCustomerRepo) Find(id string) (domain.Customer, bool) {
	for _, c := range r.List() {
		if c.ID == id {
			return c, true
		}
	}
	return domain.Customer{}, false
}

// Add prepends the customer and writes both keys.
func (r *KVCustomerRepo) Add(c domain.Customer) {
	next := append([]domain.Customer{c}, r.List()...)
	r.writeBoth(next)
}

// Remove filters the id out of both the primary and the backup, so a
// deleted customer can never be resurrected by the restore path.
func (r *KVCustomerRepo) Remove(id string) {
	next := make([]domain.Customer, 0)
	for _, c := range r.List() {
		if c.ID != id {
			next = append(next, c)
		}
	}
	r.writeBoth(next)
}
