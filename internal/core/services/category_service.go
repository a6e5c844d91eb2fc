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

// categoryService manages transaction categories.
type categoryService struct {
	BaseService
	categoryRepo portsrepo.CategoryRepository
	mosqueReader portssvc.MosqueReaderSvc
	audit        portssvc.AuditSvcFacade
}

// NewCategoryService creates a new category service.
func NewCategoryService(categoryRepo portsrepo.CategoryRepository, mosqueReader portssvc.MosqueReaderSvc, audit portssvc.AuditSvcFacade) portssvc.CategorySvcFacade {
	return &categoryService{categoryRepo: categoryRepo, mosqueReader: mosqueReader, audit: audit}
}

var _ portssvc.CategorySvcFacade = (*categoryService)(nil)

func (s *categoryService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest, creatorUserID string) (*domain.Category, error) {
	txType := domain.TransactionType(req.Type)
	if !txType.Valid() {
		return nil, fmt.Errorf("%w: unknown category type %q", apperrors.ErrValidation, req.Type)
	}

	mosque, err := s.mosqueReader.ActiveMosque(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	category := domain.Category{
		CategoryID: uuid.NewString(),
		MosqueID:   mosque.MosqueID,
		Name:       req.Name,
		Type:       txType,
		Color:      req.Color,
		Icon:       req.Icon,
		IsActive:   true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		s.LogError(ctx, err, "Failed to save category", slog.String("name", req.Name))
		return nil, fmt.Errorf("failed to save category: %w", err)
	}

	s.audit.Record(ctx, domain.EntityAction("CREATE", "CATEGORY"), creatorUserID, "category", category.CategoryID, nil, &category)

	s.LogInfo(ctx, "Category created",
		slog.String("category_id", category.CategoryID),
		slog.String("type", string(category.Type)))
	return &category, nil
}

func (s *categoryService) GetCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to find category %s: %w", categoryID, err)
	}
	return category, nil
}

func (s *categoryService) ListCategories(ctx context.Context, params dto.ListCategoriesParams) ([]domain.Category, error) {
	mosque, err := s.mosqueReader.ActiveMosque(ctx)
	if err != nil {
		return nil, err
	}

	var txType *domain.TransactionType
	if params.Type != "" {
		t := domain.TransactionType(params.Type)
		if !t.Valid() {
			return nil, fmt.Errorf("%w: unknown category type %q", apperrors.ErrValidation, params.Type)
		}
		txType = &t
	}

	categories, err := s.categoryRepo.ListCategories(ctx, mosque.MosqueID, txType, params.IncludeInactive)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest, updaterUserID string) (*domain.Category, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to find category %s for update: %w", categoryID, err)
	}

	before := *category

	// The type stays fixed for life: historic aggregates keyed on it would
	// silently change meaning if it could flip.
	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Color != nil {
		category.Color = *req.Color
	}
	if req.Icon != nil {
		category.Icon = *req.Icon
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}
	category.LastUpdatedAt = time.Now()
	category.LastUpdatedBy = updaterUserID

	if err := s.categoryRepo.UpdateCategory(ctx, *category); err != nil {
		s.LogError(ctx, err, "Failed to update category", slog.String("category_id", categoryID))
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	s.audit.Record(ctx, domain.EntityAction("UPDATE", "CATEGORY"), updaterUserID, "category", categoryID, &before, category)

	return category, nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, categoryID string, deleterUserID string) error {
	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		return fmt.Errorf("failed to find category %s for deletion: %w", categoryID, err)
	}

	count, err := s.categoryRepo.CountTransactionsForCategory(ctx, categoryID)
	if err != nil {
		return fmt.Errorf("failed to count transactions for category %s: %w", categoryID, err)
	}
	if count > 0 {
		return fmt.Errorf("%w: category is referenced by %d transaction(s)", apperrors.ErrConflict, count)
	}

	if err := s.categoryRepo.DeleteCategory(ctx, categoryID); err != nil {
		s.LogError(ctx, err, "Failed to delete category", slog.String("category_id", categoryID))
		return fmt.Errorf("failed to delete category: %w", err)
	}

	s.audit.Record(ctx, domain.EntityAction("DELETE", "CATEGORY"), deleterUserID, "category", categoryID, category, nil)

	s.LogInfo(ctx, "Category deleted", slog.String("category_id", categoryID))
	return nil
}
