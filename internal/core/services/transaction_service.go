package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/DKMApps/masjid_kas_app/internal/apperrors"
	"github.com/DKMApps/masjid_kas_app/internal/core/domain"
	portsrepo "github.com/DKMApps/masjid_kas_app/internal/core/ports/repositories"
	portssvc "github.com/DKMApps/masjid_kas_app/internal/core/ports/services"
	"github.com/DKMApps/masjid_kas_app/internal/dto"
	"github.com/google/uuid"
)

// transactionService manages the ledger. Transactions are immutable after
// creation; the only bulk mutation is the reset.
type transactionService struct {
	BaseService
	transactionRepo portsrepo.TransactionRepository
	categoryRepo    portsrepo.CategoryRepository
	mosqueReader    portssvc.MosqueReaderSvc
	audit           portssvc.AuditSvcFacade
}

// NewTransactionService creates a new transaction service.
func NewTransactionService(
	transactionRepo portsrepo.TransactionRepository,
	categoryRepo portsrepo.CategoryRepository,
	mosqueReader portssvc.MosqueReaderSvc,
	audit portssvc.AuditSvcFacade,
) portssvc.TransactionSvcFacade {
	return &transactionService{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		mosqueReader:    mosqueReader,
		audit:           audit,
	}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

func (s *transactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, creatorUserID string) (*domain.Transaction, error) {
	txType := domain.TransactionType(req.Type)
	if !txType.Valid() {
		return nil, fmt.Errorf("%w: unknown transaction type %q", apperrors.ErrValidation, req.Type)
	}
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be greater than zero", apperrors.ErrValidation)
	}

	transactionDate, err := time.Parse("2006-01-02", req.TransactionDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid transaction date format, expected YYYY-MM-DD", apperrors.ErrValidation)
	}

	mosque, err := s.mosqueReader.ActiveMosque(ctx)
	if err != nil {
		return nil, err
	}

	category, err := s.categoryRepo.FindCategoryByID(ctx, req.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to find category %s: %w", req.CategoryID, err)
	}
	if !category.IsActive {
		return nil, fmt.Errorf("%w: category %q is inactive", apperrors.ErrValidation, category.Name)
	}
	// An expense booked under an income category would corrupt every
	// per-category aggregate, so the types must agree.
	if category.Type != txType {
		return nil, fmt.Errorf("%w: transaction type %s does not match category type %s", apperrors.ErrValidation, txType, category.Type)
	}

	now := time.Now()
	txn := domain.Transaction{
		TransactionID:   uuid.NewString(),
		MosqueID:        mosque.MosqueID,
		Type:            txType,
		Amount:          req.Amount,
		TransactionDate: transactionDate,
		Description:     req.Description,
		CategoryID:      category.CategoryID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.transactionRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save transaction",
			slog.String("type", string(txType)),
			slog.String("category_id", category.CategoryID))
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	s.audit.Record(ctx, domain.EntityAction("CREATE", "TRANSACTION"), creatorUserID, "transaction", txn.TransactionID, nil, &txn)

	s.LogInfo(ctx, "Transaction recorded",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("type", string(txn.Type)),
		slog.String("amount", txn.Amount.String()))
	return &txn, nil
}

func (s *transactionService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	txn, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}
	return txn, nil
}

func (s *transactionService) ListTransactions(ctx context.Context, params dto.ListTransactionsParams) ([]domain.Transaction, string, error) {
	mosque, err := s.mosqueReader.ActiveMosque(ctx)
	if err != nil {
		return nil, "", err
	}

	filter := portsrepo.ListTransactionsFilter{
		Limit:     params.Limit,
		PageToken: params.PageToken,
	}
	if filter.Limit <= 0 {
		filter.Limit = 20
	}

	if params.From != "" {
		from, err := time.Parse("2006-01-02", params.From)
		if err != nil {
			return nil, "", fmt.Errorf("%w: invalid from date format, expected YYYY-MM-DD", apperrors.ErrValidation)
		}
		filter.From = &from
	}
	if params.To != "" {
		to, err := time.Parse("2006-01-02", params.To)
		if err != nil {
			return nil, "", fmt.Errorf("%w: invalid to date format, expected YYYY-MM-DD", apperrors.ErrValidation)
		}
		filter.To = &to
	}
	if filter.From != nil && filter.To != nil && filter.From.After(*filter.To) {
		return nil, "", fmt.Errorf("%w: from date is after to date", apperrors.ErrValidation)
	}
	if params.Type != "" {
		t := domain.TransactionType(params.Type)
		if !t.Valid() {
			return nil, "", fmt.Errorf("%w: unknown transaction type %q", apperrors.ErrValidation, params.Type)
		}
		filter.Type = &t
	}
	if params.CategoryID != "" {
		categoryID := params.CategoryID
		filter.CategoryID = &categoryID
	}

	txns, nextToken, err := s.transactionRepo.ListTransactions(ctx, mosque.MosqueID, filter)
	if err != nil {
		return nil, "", fmt.Errorf("failed to list transactions: %w", err)
	}
	return txns, nextToken, nil
}

func (s *transactionService) ResetTransactions(ctx context.Context, req dto.ResetTransactionsRequest, actorUserID string) (int64, error) {
	openingDate, err := time.Parse("2006-01-02", req.OpeningDate)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid opening date format, expected YYYY-MM-DD", apperrors.ErrValidation)
	}
	if req.OpeningBalance.IsNegative() {
		return 0, fmt.Errorf("%w: opening balance must not be negative", apperrors.ErrValidation)
	}

	mosque, err := s.mosqueReader.ActiveMosque(ctx)
	if err != nil {
		return 0, err
	}

	deleted, err := s.transactionRepo.ResetAll(ctx, mosque.MosqueID, req.OpeningBalance, openingDate, actorUserID)
	if err != nil {
		s.LogError(ctx, err, "Failed to reset transactions", slog.String("mosque_id", mosque.MosqueID))
		return 0, fmt.Errorf("failed to reset transactions: %w", err)
	}

	s.audit.Record(ctx, domain.AuditDataReset, actorUserID, "mosque", mosque.MosqueID,
		map[string]any{"deletedCount": deleted},
		map[string]any{"openingBalance": req.OpeningBalance, "openingDate": req.OpeningDate})

	s.LogInfo(ctx, "Transactions reset",
		slog.String("mosque_id", mosque.MosqueID),
		slog.Int64("deleted_count", deleted),
		slog.String("opening_balance", req.OpeningBalance.String()))
	return deleted, nil
}
