package services

import (
	"context"

	"github.com/DKMApps/masjid_kas_app/internal/core/domain"
	"github.com/DKMApps/masjid_kas_app/internal/dto"
)

// TransactionSvcFacade defines operations on ledger transactions. There is no
// update or single delete: transactions are immutable once recorded and only
// disappear through the bulk reset.
type TransactionSvcFacade interface {
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, creatorUserID string) (*domain.Transaction, error)

	GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions returns one keyset page plus the next-page token.
	ListTransactions(ctx context.Context, params dto.ListTransactionsParams) ([]domain.Transaction, string, error)

	// ResetTransactions deletes every transaction and restarts bookkeeping
	// from the given opening position, atomically.
	ResetTransactions(ctx context.Context, req dto.ResetTransactionsRequest, actorUserID string) (int64, error)
}
