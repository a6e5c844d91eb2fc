package repositories

import (
	"context"

	"github.com/DKMApps/masjid_kas_app/internal/core/domain"
)

// CategoryRepository defines persistence operations for categories.
type CategoryRepository interface {
	SaveCategory(ctx context.Context, category domain.Category) error

	FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)

	// ListCategories returns the mosque's categories, optionally filtered by
	// type and including inactive ones.
	ListCategories(ctx context.Context, mosqueID string, txType *domain.TransactionType, includeInactive bool) ([]domain.Category, error)

	UpdateCategory(ctx context.Context, category domain.Category) error

	// DeleteCategory removes a category row. Callers must have verified no
	// transaction references it; the FK constraint is the backstop.
	DeleteCategory(ctx context.Context, categoryID string) error

	// CountTransactionsForCategory returns how many transactions reference the category.
	CountTransactionsForCategory(ctx context.Context, categoryID string) (int64, error)
}
