package repository

import (
	"encoding/json"

	"shopquote/internal/domain"
)

// Logical keys in the shared key-value store. The asqb_ prefix and version
// suffixes are part of the persisted data layout and must not change.
const (
	customersKey       = "asqb_customers_v1"
	customersBackupKey = "asqb_customers_backup_v1"
	quotesKey          = "asqb_quotes_v1"
	quoteDraftKey      = "asqb_quote_draft_v2"
	editPointerKey     = "asqb_edit_quote_id_v1"
)

// decodeElements splits a stored JSON array into its raw elements. Anything
// that is not an array reads as empty: malformed data is treated as absent,
// never as an error.
func decodeElements(raw string) []json.RawMessage {
	var elems []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &elems); err != nil {
		return nil
	}
	return elems
}

type itemRecord struct {
	Name string  `json:"name"`
	Qty  float64 `json:"qty"`
	Unit float64 `json:"unit"`
}

func decodeItems(recs []itemRecord) []domain.LineItem {
	items := make([]domain.LineItem, 0, len(recs))
	for _, r := range recs {
		items = append(items, domain.LineItem{Name: r.Name, Qty: r.Qty, Unit: r.Unit})
	}
	return items
}
