package services

import (
	"context"

	"github.com/DKMApps/masjid_kas_app/internal/core/domain"
	"github.com/DKMApps/masjid_kas_app/internal/dto"
)

// MosqueReaderSvc is the narrow read interface other services depend on to
// resolve the configuration singleton.
type MosqueReaderSvc interface {
	// ActiveMosque returns the single active mosque, or
	// apperrors.ErrNotConfigured when the system has not been set up yet.
	ActiveMosque(ctx context.Context) (*domain.Mosque, error)
}

// MosqueSvcFacade defines operations on the mosque settings.
type MosqueSvcFacade interface {
	MosqueReaderSvc

	// UpdateMosque saves the settings form, creating the singleton row on the
	// first save.
	UpdateMosque(ctx context.Context, req dto.UpdateMosqueRequest, updaterUserID string) (*domain.Mosque, error)
}
