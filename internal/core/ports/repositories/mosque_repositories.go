package repositories

import (
	"context"

	"github.com/DKMApps/masjid_kas_app/internal/core/domain"
)

// MosqueRepository defines persistence operations for the singleton mosque row.
type MosqueRepository interface {
	// SaveMosque inserts or updates the mosque row.
	SaveMosque(ctx context.Context, mosque domain.Mosque) error

	// FindActiveMosque returns the single active mosque row, or
	// apperrors.ErrNotFound when the system has not been configured yet.
	FindActiveMosque(ctx context.Context) (*domain.Mosque, error)
}
