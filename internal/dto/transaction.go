package dto

import (
	"time"

	"github.com/DKMApps/masjid_kas_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to record a money movement.
type CreateTransactionRequest struct {
	Type            string          `json:"type" binding:"required,oneof=INCOME EXPENSE"`
	Amount          decimal.Decimal `json:"amount" binding:"required"`
	TransactionDate string          `json:"transactionDate" binding:"required,datetime=2006-01-02"`
	Description     string          `json:"description" binding:"required,min=3"`
	CategoryID      string          `json:"categoryID" binding:"required,uuid"`
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	From       string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To         string `form:"to" binding:"omitempty,datetime=2006-01-02"`
	Type       string `form:"type" binding:"omitempty,oneof=INCOME EXPENSE"`
	CategoryID string `form:"categoryID" binding:"omitempty,uuid"`
	Limit      int    `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	PageToken  string `form:"pageToken"`
}

// ResetTransactionsRequest carries the bulk reset parameters: every
// transaction is deleted and bookkeeping restarts from the given position.
type ResetTransactionsRequest struct {
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	OpeningDate    string          `json:"openingDate" binding:"required,datetime=2006-01-02"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID   string          `json:"transactionID"`
	Type            string          `json:"type"`
	Amount          decimal.Decimal `json:"amount"`
	TransactionDate string          `json:"transactionDate"`
	Description     string          `json:"description"`
	CategoryID      string          `json:"categoryID"`
	CreatedAt       time.Time       `json:"createdAt"`
	CreatedBy       string          `json:"createdBy,omitempty"`
}

// ListTransactionsResponse wraps a transaction page with its pagination token.
type ListTransactionsResponse struct {
	Transactions  []TransactionResponse `json:"transactions"`
	NextPageToken string                `json:"nextPageToken,omitempty"`
}

// ResetTransactionsResponse reports the outcome of a bulk reset.
type ResetTransactionsResponse struct {
	DeletedCount   int64           `json:"deletedCount"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	OpeningDate    string          `json:"openingDate"`
}

// ToTransactionResponse converts a domain.Transaction to its DTO.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:   t.TransactionID,
		Type:            string(t.Type),
		Amount:          t.Amount,
		TransactionDate: t.TransactionDate.Format("2006-01-02"),
		Description:     t.Description,
		CategoryID:      t.CategoryID,
		CreatedAt:       t.CreatedAt,
		CreatedBy:       t.CreatedBy,
	}
}

// ToListTransactionsResponse converts a transaction page to the list DTO.
func ToListTransactionsResponse(txns []domain.Transaction, nextToken string) ListTransactionsResponse {
	responses := make([]TransactionResponse, len(txns))
	for i := range txns {
		responses[i] = ToTransactionResponse(&txns[i])
	}
	return ListTransactionsResponse{Transactions: responses, NextPageToken: nextToken}
}
