package domain

type QuoteStatus string

const (
	StatusDraft    QuoteStatus = "Draft"
	StatusSent     QuoteStatus = "Sent"
	StatusApproved QuoteStatus = "Approved"
	StatusPaid     QuoteStatus = "Paid"
)

// AllStatuses lists the statuses in their display order.
var AllStatuses = []QuoteStatus{StatusDraft, StatusSent, StatusApproved, StatusPaid}

// SafeStatus normalizes an arbitrary stored status string. Anything outside
// the known set reads back as Draft.
func SafeStatus(s string) QuoteStatus {
	switch QuoteStatus(s) {
	case StatusDraft, StatusSent, StatusApproved, StatusPaid:
		return QuoteStatus(s)
	default:
		return StatusDraft
	}
}
