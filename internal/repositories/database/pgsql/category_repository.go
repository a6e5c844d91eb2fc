package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/DKMApps/masjid_kas_app/internal/apperrors"
	"github.com/DKMApps/masjid_kas_app/internal/core/domain"
	portsrepo "github.com/DKMApps/masjid_kas_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCategoryRepository struct {
	BaseRepository
}

func newPgxCategoryRepository(db *pgxpool.Pool) portsrepo.CategoryRepository {
	return &PgxCategoryRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.CategoryRepository = (*PgxCategoryRepository)(nil)

const categoryColumns = `category_id, mosque_id, name, type, color, icon, is_active, created_at, created_by, last_updated_at, last_updated_by`

func scanCategory(row pgx.Row) (domain.Category, error) {
	var c domain.Category
	err := row.Scan(
		&c.CategoryID,
		&c.MosqueID,
		&c.Name,
		&c.Type,
		&c.Color,
		&c.Icon,
		&c.IsActive,
		&c.CreatedAt,
		&c.CreatedBy,
		&c.LastUpdatedAt,
		&c.LastUpdatedBy,
	)
	return c, err
}

func (r *PgxCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	query := `
        INSERT INTO categories (` + categoryColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
    `
	_, err := r.Pool.Exec(ctx, query,
		category.CategoryID,
		category.MosqueID,
		category.Name,
		category.Type,
		category.Color,
		category.Icon,
		category.IsActive,
		category.CreatedAt,
		category.CreatedBy,
		category.LastUpdatedAt,
		category.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save category: %w", err)
	}
	return nil
}

func (r *PgxCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE category_id = $1;`

	category, err := scanCategory(r.Pool.QueryRow(ctx, query, categoryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find category by ID %s: %w", categoryID, err)
	}
	return &category, nil
}

func (r *PgxCategoryRepository) ListCategories(ctx context.Context, mosqueID string, txType *domain.TransactionType, includeInactive bool) ([]domain.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE mosque_id = $1`
	args := []any{mosqueID}

	if txType != nil {
		args = append(args, *txType)
		query += fmt.Sprintf(" AND type = $%d", len(args))
	}
	if !includeInactive {
		query += " AND is_active = TRUE"
	}
	query += " ORDER BY name ASC;"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category row: %w", err)
		}
		categories = append(categories, category)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating category rows: %w", rows.Err())
	}

	return categories, nil
}

func (r *PgxCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	query := `
        UPDATE categories
        SET name = $1, color = $2, icon = $3, is_active = $4, last_updated_at = $5, last_updated_by = $6
        WHERE category_id = $7;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		category.Name,
		category.Color,
		category.Icon,
		category.IsActive,
		category.LastUpdatedAt,
		category.LastUpdatedBy,
		category.CategoryID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update category query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("category not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxCategoryRepository) DeleteCategory(ctx context.Context, categoryID string) error {
	query := `DELETE FROM categories WHERE category_id = $1;`

	cmdTag, err := r.Pool.Exec(ctx, query, categoryID)
	if err != nil {
		// The RESTRICT foreign key fires when a racing insert slipped in
		// between the service's reference count and this delete.
		return fmt.Errorf("failed to delete category: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("category not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxCategoryRepository) CountTransactionsForCategory(ctx context.Context, categoryID string) (int64, error) {
	query := `SELECT COUNT(*) FROM transactions WHERE category_id = $1;`

	var count int64
	if err := r.Pool.QueryRow(ctx, query, categoryID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count transactions for category %s: %w", categoryID, err)
	}
	return count, nil
}
