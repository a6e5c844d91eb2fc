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

type PgxMosqueRepository struct {
	BaseRepository
}

func newPgxMosqueRepository(db *pgxpool.Pool) portsrepo.MosqueRepository {
	return &PgxMosqueRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.MosqueRepository = (*PgxMosqueRepository)(nil)

func (r *PgxMosqueRepository) SaveMosque(ctx context.Context, mosque domain.Mosque) error {
	query := `
        INSERT INTO mosques (mosque_id, name, address, phone, email, opening_balance, opening_date, is_active, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
        ON CONFLICT (mosque_id) DO UPDATE SET
            name = EXCLUDED.name,
            address = EXCLUDED.address,
            phone = EXCLUDED.phone,
            email = EXCLUDED.email,
            opening_balance = EXCLUDED.opening_balance,
            opening_date = EXCLUDED.opening_date,
            last_updated_at = EXCLUDED.last_updated_at,
            last_updated_by = EXCLUDED.last_updated_by;
    `
	_, err := r.Pool.Exec(ctx, query,
		mosque.MosqueID,
		mosque.Name,
		mosque.Address,
		mosque.Phone,
		mosque.Email,
		mosque.OpeningBalance,
		mosque.OpeningDate,
		mosque.IsActive,
		mosque.CreatedAt,
		mosque.CreatedBy,
		mosque.LastUpdatedAt,
		mosque.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save mosque: %w", err)
	}
	return nil
}

func (r *PgxMosqueRepository) FindActiveMosque(ctx context.Context) (*domain.Mosque, error) {
	query := `
		SELECT mosque_id, name, address, phone, email, opening_balance, opening_date, is_active, created_at, created_by, last_updated_at, last_updated_by
		FROM mosques
		WHERE is_active = TRUE
		LIMIT 1;
	`
	var mosque domain.Mosque
	err := r.Pool.QueryRow(ctx, query).Scan(
		&mosque.MosqueID,
		&mosque.Name,
		&mosque.Address,
		&mosque.Phone,
		&mosque.Email,
		&mosque.OpeningBalance,
		&mosque.OpeningDate,
		&mosque.IsActive,
		&mosque.CreatedAt,
		&mosque.CreatedBy,
		&mosque.LastUpdatedAt,
		&mosque.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find active mosque: %w", err)
	}
	return &mosque, nil
}
