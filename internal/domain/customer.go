package domain

// Customer is a saved contact. Customers are immutable once created; quotes
// copy the fields they need at save time instead of referencing the record.
type Customer struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt"`
}
