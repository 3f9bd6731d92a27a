package service

import (
	"shopquote/internal/domain"
	"shopquote/internal/pricing"
	"shopquote/internal/repository"

	"github.com/google/uuid"
)

// EditorState says which slot the editor is working against.
type EditorState int

const (
	// EditingDraft: no edit pointer is set; every change autosaves the
	// draft slot.
	EditingDraft EditorState = iota
	// EditingExisting: an edit pointer references a saved quote; the
	// draft slot is left untouched while it is edited.
	EditingExisting
)

// EditorItem is a line item with a transient id so rows can be addressed
// while editing. The id is discarded when the quote is saved.
type EditorItem struct {
	UID  string
	Name string
	Qty  float64
	Unit float64
}

func newEditorItem(it domain.LineItem) EditorItem {
	return EditorItem{UID: uuid.New().String(), Name: it.Name, Qty: it.Qty, Unit: it.Unit}
}

// Editor is the in-progress quote form. It hydrates from the edit pointer or
// the draft slot, autosaves drafts as fields change, and hands completed
// input to the QuoteService on save.
type Editor struct {
	customers repository.CustomerRepo
	quotes    QuoteService
	drafts    repository.DraftRepo

	state     EditorState
	editingID string

	customerID string
	title      string
	status     domain.QuoteStatus
	notes      string
	taxRate    float64
	items      []EditorItem
}

// NewEditor creates an editor. Call Open before using it.
func NewEditor(customers repository.CustomerRepo, quotes QuoteService, drafts repository.DraftRepo) *Editor {
	return &Editor{customers: customers, quotes: quotes, drafts: drafts}
}

// Open hydrates the editor. With an edit pointer set and resolvable, the
// referenced quote is expanded into the form and the draft slot is left
// alone; a stale pointer is cleared. Otherwise the editor loads the
// persisted draft, falling back to defaults.
func (e *Editor) Open() {
	if id, ok := e.drafts.EditPointer(); ok {
		if q, found := e.quotes.FindByID(id); found {
			e.hydrateFromQuote(q)
			return
		}
		e.drafts.ClearEditPointer()
	}

	e.state = EditingDraft
	e.editingID = ""
	d, ok := e.drafts.Draft()
	if !ok {
		d = domain.NewDraft()
		if list := e.customers.List(); len(list) > 0 {
			d.CustomerID = list[0].ID
		}
	}
	e.hydrateFromDraft(d)
}

func (e *Editor) hydrateFromQuote(q domain.Quote) {
	e.state = EditingExisting
	e.editingID = q.ID
	e.title = q.Title
	e.status = q.Status
	e.notes = q.Notes
	e.taxRate = q.TaxRate

	e.items = make([]EditorItem, 0, len(q.Items))
	for _, it := range q.Items {
		e.items = append(e.items, newEditorItem(it))
	}
	if len(e.items) == 0 {
		e.items = []EditorItem{newEditorItem(domain.NewDraft().Items[0])}
	}

	// Quotes store a name snapshot, not a live id, so remap best-effort:
	// first exact name match, else the first customer on file.
	list := e.customers.List()
	e.customerID = ""
	for _, c := range list {
		if c.Name == q.CustomerName {
			e.customerID = c.ID
			break
		}
	}
	if e.customerID == "" && len(list) > 0 {
		e.customerID = list[0].ID
	}
}

func (e *Editor) hydrateFromDraft(d domain.Draft) {
	e.customerID = d.CustomerID
	e.title = d.Title
	e.status = d.Status
	e.notes = d.Notes
	e.taxRate = d.TaxRate
	e.items = make([]EditorItem, 0, len(d.Items))
	for _, it := range d.Items {
		e.items = append(e.items, newEditorItem(it))
	}
	if len(e.items) == 0 {
		e.items = []EditorItem{newEditorItem(domain.NewDraft().Items[0])}
	}
}

// autosave persists the current form to the draft slot, but only while
// composing a fresh draft. Edits to an existing quote must not overwrite
// the draft.
func (e *Editor) autosave() {
	if e.state != EditingDraft {
		return
	}
	e.drafts.SaveDraft(e.snapshot())
}

func (e *Editor) snapshot() domain.Draft {
	return domain.Draft{
		CustomerID: e.customerID,
		Title:      e.title,
		Status:     e.status,
		Notes:      e.notes,
		TaxRate:    e.taxRate,
		Items:      e.LineItems(),
	}
}

// State returns the editor's current mode.
func (e *Editor) State() EditorState { return e.state }

// EditingID returns the id of the quote being edited, or "".
func (e *Editor) EditingID() string { return e.editingID }

func (e *Editor) CustomerID() string         { return e.customerID }
func (e *Editor) Title() string              { return e.title }
func (e *Editor) Status() domain.QuoteStatus { return e.status }
func (e *Editor) Notes() string              { return e.notes }
func (e *Editor) TaxRate() float64           { return e.taxRate }

// Customer resolves the currently selected customer.
func (e *Editor) Customer() (domain.Customer, bool) {
	return e.customers.Find(e.customerID)
}

func (e *Editor) SetCustomerID(id string) {
	e.customerID = id
	e.autosave()
}

func (e *Editor) SetTitle(title string) {
	e.title = title
	e.autosave()
}

func (e *Editor) SetStatus(status domain.QuoteStatus) {
	e.status = domain.SafeStatus(string(status))
	e.autosave()
}

func (e *Editor) SetNotes(notes string) {
	e.notes = notes
	e.autosave()
}

func (e *Editor) SetTaxRate(rate float64) {
	e.taxRate = pricing.Finite(rate)
	e.autosave()
}

// Items returns a copy of the editable rows.
func (e *Editor) Items() []EditorItem {
	out := make([]EditorItem, len(e.items))
	copy(out, e.items)
	return out
}

// AddItem appends a blank row (qty 1) and returns it.
func (e *Editor) AddItem() EditorItem {
	it := EditorItem{UID: uuid.New().String(), Qty: 1}
	e.items = append(e.items, it)
	e.autosave()
	return it
}

// UpdateItem replaces the row with the given transient id.
func (e *Editor) UpdateItem(uid, name string, qty, unit float64) bool {
	for i := range e.items {
		if e.items[i].UID == uid {
			e.items[i].Name = name
			e.items[i].Qty = pricing.Finite(qty)
			e.items[i].Unit = pricing.Finite(unit)
			e.autosave()
			return true
		}
	}
	return false
}

// RemoveItem deletes the row with the given transient id.
func (e *Editor) RemoveItem(uid string) bool {
	for i := range e.items {
		if e.items[i].UID == uid {
			e.items = append(e.items[:i], e.items[i+1:]...)
			e.autosave()
			return true
		}
	}
	return false
}

// LineItems strips the transient ids off the editable rows.
func (e *Editor) LineItems() []domain.LineItem {
	items := make([]domain.LineItem, 0, len(e.items))
	for _, it := range e.items {
		items = append(items, domain.LineItem{Name: it.Name, Qty: it.Qty, Unit: it.Unit})
	}
	return items
}

// Totals computes the live price breakdown of the form.
func (e *Editor) Totals() pricing.Summary {
	return pricing.Summarize(e.LineItems(), e.taxRate)
}

// Save persists the form through the QuoteService. On success both the
// draft slot and the edit pointer are cleared and the editor returns to
// draft mode.
func (e *Editor) Save() (domain.Quote, error) {
	q, err := e.quotes.Save(QuoteInput{
		CustomerID: e.customerID,
		Title:      e.title,
		Status:     e.status,
		Notes:      e.notes,
		TaxRate:    e.taxRate,
		Items:      e.LineItems(),
	}, e.editingID)
	if err != nil {
		return domain.Quote{}, err
	}

	e.drafts.ClearDraft()
	e.drafts.ClearEditPointer()
	e.state = EditingDraft
	e.editingID = ""
	return q, nil
}

// Clear drops the draft and the edit pointer and resets the form to
// defaults (the "Clear Draft" / "Stop Editing" action).
func (e *Editor) Clear() {
	e.drafts.ClearDraft()
	e.drafts.ClearEditPointer()
	e.state = EditingDraft
	e.editingID = ""

	d := domain.NewDraft()
	if list := e.customers.List(); len(list) > 0 {
		d.CustomerID = list[0].ID
	}
	e.hydrateFromDraft(d)
}
