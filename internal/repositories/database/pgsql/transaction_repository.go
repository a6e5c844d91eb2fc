package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/DKMApps/masjid_kas_app/internal/apperrors"
	"github.com/DKMApps/masjid_kas_app/internal/core/domain"
	portsrepo "github.com/DKMApps/masjid_kas_app/internal/core/ports/repositories"
	"github.com/DKMApps/masjid_kas_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(db *pgxpool.Pool) portsrepo.TransactionRepository {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.TransactionRepository = (*PgxTransactionRepository)(nil)

const transactionColumns = `transaction_id, mosque_id, type, amount, transaction_date, description, category_id, created_at, created_by, last_updated_at, last_updated_by`

func scanTransaction(row pgx.Row) (domain.Transaction, error) {
	var t domain.Transaction
	var createdBy, lastUpdatedBy *string
	err := row.Scan(
		&t.TransactionID,
		&t.MosqueID,
		&t.Type,
		&t.Amount,
		&t.TransactionDate,
		&t.Description,
		&t.CategoryID,
		&t.CreatedAt,
		&createdBy,
		&t.LastUpdatedAt,
		&lastUpdatedBy,
	)
	// created_by goes NULL when the creating user is deleted; an empty string
	// in the domain means the same thing.
	if createdBy != nil {
		t.CreatedBy = *createdBy
	}
	if lastUpdatedBy != nil {
		t.LastUpdatedBy = *lastUpdatedBy
	}
	return t, err
}

func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	query := `
        INSERT INTO transactions (` + transactionColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
    `
	_, err := r.Pool.Exec(ctx, query,
		txn.TransactionID,
		txn.MosqueID,
		txn.Type,
		txn.Amount,
		txn.TransactionDate,
		txn.Description,
		txn.CategoryID,
		txn.CreatedAt,
		nullIfEmpty(txn.CreatedBy),
		txn.LastUpdatedAt,
		nullIfEmpty(txn.LastUpdatedBy),
	)
	if err != nil {
		return fmt.Errorf("failed to save transaction: %w", err)
	}
	return nil
}

func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1;`

	txn, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by ID %s: %w", transactionID, err)
	}
	return &txn, nil
}

func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, mosqueID string, filter portsrepo.ListTransactionsFilter) ([]domain.Transaction, string, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE mosque_id = $1`
	args := []any{mosqueID}

	if filter.From != nil {
		args = append(args, *filter.From)
		query += fmt.Sprintf(" AND transaction_date >= $%d", len(args))
	}
	if filter.To != nil {
		// The end date is inclusive regardless of any time-of-day component.
		args = append(args, filter.To.AddDate(0, 0, 1))
		query += fmt.Sprintf(" AND transaction_date < $%d", len(args))
	}
	if filter.Type != nil {
		args = append(args, *filter.Type)
		query += fmt.Sprintf(" AND type = $%d", len(args))
	}
	if filter.CategoryID != nil {
		args = append(args, *filter.CategoryID)
		query += fmt.Sprintf(" AND category_id = $%d", len(args))
	}

	if filter.PageToken != "" {
		tokenDate, tokenCreatedAt, err := pagination.DecodeToken(filter.PageToken)
		if err != nil {
			return nil, "", fmt.Errorf("%w: invalid page token", apperrors.ErrValidation)
		}
		args = append(args, tokenDate, tokenCreatedAt)
		query += fmt.Sprintf(" AND (transaction_date, created_at) < ($%d, $%d)", len(args)-1, len(args))
	}

	// Fetch one extra row to learn whether another page exists.
	args = append(args, limit+1)
	query += fmt.Sprintf(" ORDER BY transaction_date DESC, created_at DESC LIMIT $%d;", len(args))

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, "", fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	txns := []domain.Transaction{}
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, "", fmt.Errorf("failed to scan transaction row: %w", err)
		}
		txns = append(txns, txn)
	}
	if rows.Err() != nil {
		return nil, "", fmt.Errorf("error iterating transaction rows: %w", rows.Err())
	}

	nextToken := ""
	if len(txns) > limit {
		txns = txns[:limit]
		last := txns[len(txns)-1]
		nextToken = pagination.EncodeToken(last.TransactionDate, last.CreatedAt)
	}

	return txns, nextToken, nil
}

func (r *PgxTransactionRepository) ResetAll(ctx context.Context, mosqueID string, openingBalance decimal.Decimal, openingDate time.Time, updatedBy string) (int64, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	cmdTag, err := tx.Exec(ctx, `DELETE FROM transactions WHERE mosque_id = $1;`, mosqueID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete transactions during reset: %w", err)
	}
	deleted := cmdTag.RowsAffected()

	updTag, err := tx.Exec(ctx, `
        UPDATE mosques
        SET opening_balance = $1, opening_date = $2, last_updated_at = $3, last_updated_by = $4
        WHERE mosque_id = $5;
    `, openingBalance, openingDate, time.Now(), updatedBy, mosqueID)
	if err != nil {
		return 0, fmt.Errorf("failed to rewrite opening balance during reset: %w", err)
	}
	if updTag.RowsAffected() == 0 {
		return 0, fmt.Errorf("mosque not found during reset: %w", apperrors.ErrNotFound)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return 0, err
	}
	return deleted, nil
}
