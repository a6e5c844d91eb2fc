package services

import (
	"context"

	"github.com/DKMApps/masjid_kas_app/internal/core/domain"
	"github.com/DKMApps/masjid_kas_app/internal/dto"
)

// CategorySvcFacade defines operations on transaction categories.
type CategorySvcFacade interface {
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest, creatorUserID string) (*domain.Category, error)

	GetCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)

	ListCategories(ctx context.Context, params dto.ListCategoriesParams) ([]domain.Category, error)

	UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest, updaterUserID string) (*domain.Category, error)

	// DeleteCategory removes a category. Returns apperrors.ErrConflict while
	// any transaction still references it; nothing is partially applied.
	DeleteCategory(ctx context.Context, categoryID string, deleterUserID string) error
}
