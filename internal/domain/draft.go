package domain

// Draft defaults. One hour of labor at the shop's default rate, 9% tax.
const (
	DefaultTitle     = "New quote"
	DefaultTaxRate   = 0.09
	DefaultItemName  = "Labor"
	DefaultItemQty   = 1
	DefaultItemUnit  = 120
	FallbackItemName = "Item"
)

// Draft is the single in-progress, unsaved quote. Unlike a saved Quote it
// references its customer by id: nothing has been snapshotted yet.
type Draft struct {
	CustomerID string      `json:"customerId"`
	Title      string      `json:"title"`
	Status     QuoteStatus `json:"status"`
	Notes      string      `json:"notes"`
	TaxRate    float64     `json:"taxRate"`
	Items      []LineItem  `json:"items"`
}

// NewDraft returns a draft populated with the defaults the editor starts
// from.
func NewDraft() Draft {
	return Draft{
		Title:   DefaultTitle,
		Status:  StatusDraft,
		TaxRate: DefaultTaxRate,
		Items:   []LineItem{{Name: DefaultItemName, Qty: DefaultItemQty, Unit: DefaultItemUnit}},
	}
}
