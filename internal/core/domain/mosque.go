package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Mosque is the single-tenant root aggregate. Exactly one active row exists
// per deployment; every financial computation is relative to its opening
// balance and opening date.
type Mosque struct {
	MosqueID       string          `json:"mosqueID"`
	Name           string          `json:"name"`
	Address        string          `json:"address"`
	Phone          string          `json:"phone"`
	Email          string          `json:"email"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	OpeningDate    time.Time       `json:"openingDate"`
	IsActive       bool            `json:"isActive"`
	AuditFields
}
