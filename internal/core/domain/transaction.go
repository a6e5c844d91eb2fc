package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether money moved into or out of the cash position.
type TransactionType string

const (
	Income  TransactionType = "INCOME"
	Expense TransactionType = "EXPENSE"
)

// Valid reports whether t is one of the two known transaction types.
func (t TransactionType) Valid() bool {
	return t == Income || t == Expense
}

// Transaction is one recorded money movement on a specific calendar date.
// Transactions are immutable after creation; they only disappear through the
// bulk reset operation. Amount is always positive, the type carries the sign.
type Transaction struct {
	TransactionID   string          `json:"transactionID"`
	MosqueID        string          `json:"mosqueID"`
	Type            TransactionType `json:"type"`
	Amount          decimal.Decimal `json:"amount"`
	TransactionDate time.Time       `json:"transactionDate"` // calendar date, distinct from CreatedAt
	Description     string          `json:"description"`
	CategoryID      string          `json:"categoryID"`
	AuditFields
}
