package repository

import (
	"encoding/json"

	"shopquote/internal/domain"
	"shopquote/internal/store"
)

// KVDraftRepo implements DraftRepo over the key-value store. There is a
// single draft slot and a single edit pointer; only the latest write to
// either matters.
type KVDraftRepo struct {
	store store.Store
}

// NewKVDraftRepo creates a new KVDraftRepo.
func NewKVDraftRepo(s store.Store) *KVDraftRepo {
	return &KVDraftRepo{store: s}
}

// draftRecord mirrors the stored draft with optional fields. Fields of the
// wrong type or missing entirely fall back to the editor defaults rather
// than failing the whole draft.
type draftRecord struct {
	CustomerID *string       `json:"customerId"`
	Title      *string       `json:"title"`
	Status     *string       `json:"status"`
	Notes      *string       `json:"notes"`
	TaxRate    *float64      `json:"taxRate"`
	Items      *[]itemRecord `json:"items"`
}

// Draft returns the persisted draft merged over the editor defaults. ok is
// false when no readable draft exists.
func (r *KVDraftRepo) Draft() (domain.Draft, bool) {
	raw, present := r.store.Get(quoteDraftKey)
	if !present {
		return domain.Draft{}, false
	}
	var rec draftRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return domain.Draft{}, false
	}

	d := domain.NewDraft()
	if rec.CustomerID != nil {
		d.CustomerID = *rec.CustomerID
	}
	if rec.Title != nil {
		d.Title = *rec.Title
	}
	if rec.Status != nil {
		d.Status = domain.SafeStatus(*rec.Status)
	}
	if rec.Notes != nil {
		d.Notes = *rec.Notes
	}
	if rec.TaxRate != nil {
		d.TaxRate = *rec.TaxRate
	}
	if rec.Items != nil {
		d.Items = decodeItems(*rec.Items)
	}
	return d, true
}

// SaveDraft overwrites the draft slot. Writes are idempotent; the latest
// write wins.
func (r *KVDraftRepo) SaveDraft(d domain.Draft) {
	data, err := json.Marshal(d)
	if err != nil {
		return
	}
	r.store.Set(quoteDraftKey, string(data))
}

// ClearDraft empties the draft slot.
func (r *KVDraftRepo) ClearDraft() {
	r.store.Remove(quoteDraftKey)
}

// EditPointer returns the id of the quote currently being edited, if any.
func (r *KVDraftRepo) EditPointer() (string, bool) {
	id, ok := r.store.Get(editPointerKey)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

// SetEditPointer marks the quote with the given id as being edited.
func (r *KVDraftRepo) SetEditPointer(id string) {
	r.store.Set(editPointerKey, id)
}

// ClearEditPointer consumes the pointer.
func (r *KVDraftRepo) ClearEditPointer() {
	r.store.Remove(editPointerKey)
}
