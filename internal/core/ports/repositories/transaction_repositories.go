package repositories

import (
	"context"
	"time"

	"github.com/DKMApps/masjid_kas_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ListTransactionsFilter narrows a transaction listing. Nil fields are not applied.
type ListTransactionsFilter struct {
	From       *time.Time
	To         *time.Time
	Type       *domain.TransactionType
	CategoryID *string
	Limit      int
	PageToken  string
}

// TransactionRepository defines persistence operations for transactions.
type TransactionRepository interface {
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions returns one keyset page ordered by transaction date
	// descending, newest first, plus the token for the next page ("" when done).
	ListTransactions(ctx context.Context, mosqueID string, filter ListTransactionsFilter) ([]domain.Transaction, string, error)

	// ResetAll deletes every transaction of the mosque and rewrites its opening
	// balance and date inside a single database transaction, so a crash can
	// never leave the books half-reset. Returns the number of deleted rows.
	ResetAll(ctx context.Context, mosqueID string, openingBalance decimal.Decimal, openingDate time.Time, updatedBy string) (int64, error)
}
