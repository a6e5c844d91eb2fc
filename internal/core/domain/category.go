package domain

// Category is a named classification that transactions reference. Its type is
// an immutable classification: only transactions of the same type may point at it.
type Category struct {
	CategoryID string          `json:"categoryID"`
	MosqueID   string          `json:"mosqueID"`
	Name       string          `json:"name"`
	Type       TransactionType `json:"type"`
	Color      string          `json:"color"`
	Icon       string          `json:"icon"`
	IsActive   bool            `json:"isActive"`
	AuditFields
}
