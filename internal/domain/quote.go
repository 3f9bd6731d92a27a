package domain

// LineItem is one priced row of a quote. Items have no identity of their
// own; position within the parent quote is all that distinguishes them.
type LineItem struct {
	Name string  `json:"name"`
	Qty  float64 `json:"qty"`
	Unit float64 `json:"unit"`
}

// Quote is a persisted, priced estimate. The customer fields are a
// point-in-time snapshot taken at save time, so editing or deleting a
// customer later never rewrites quote history.
type Quote struct {
	ID        string      `json:"id"`
	CreatedAt string      `json:"createdAt"`
	Title     string      `json:"title"`
	Status    QuoteStatus `json:"status"`
	Notes     string      `json:"notes"`

	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`
	CustomerEmail string `json:"customerEmail"`

	TaxRate float64    `json:"taxRate"`
	Items   []LineItem `json:"items"`
}

// DisplayID returns a short identifier for terminal output.
func (q *Quote) DisplayID() string {
	if len(q.ID) >= 8 {
		return q.ID[:8]
	}
	return q.ID
}
