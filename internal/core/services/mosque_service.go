package services

import (
	"context"
	"errors"
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

// mosqueService manages the singleton mosque settings row.
type mosqueService struct {
	BaseService
	mosqueRepo portsrepo.MosqueRepository
	audit      portssvc.AuditSvcFacade
}

// NewMosqueService creates a new mosque settings service.
func NewMosqueService(mosqueRepo portsrepo.MosqueRepository, audit portssvc.AuditSvcFacade) portssvc.MosqueSvcFacade {
	return &mosqueService{mosqueRepo: mosqueRepo, audit: audit}
}

var _ portssvc.MosqueSvcFacade = (*mosqueService)(nil)

func (s *mosqueService) ActiveMosque(ctx context.Context) (*domain.Mosque, error) {
	mosque, err := s.mosqueRepo.FindActiveMosque(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotConfigured
		}
		return nil, fmt.Errorf("failed to find active mosque: %w", err)
	}
	return mosque, nil
}

func (s *mosqueService) UpdateMosque(ctx context.Context, req dto.UpdateMosqueRequest, updaterUserID string) (*domain.Mosque, error) {
	openingDate, err := time.Parse("2006-01-02", req.OpeningDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid opening date format, expected YYYY-MM-DD", apperrors.ErrValidation)
	}
	if req.OpeningBalance.IsNegative() {
		return nil, fmt.Errorf("%w: opening balance must not be negative", apperrors.ErrValidation)
	}

	now := time.Now()

	existing, err := s.mosqueRepo.FindActiveMosque(ctx)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to load mosque settings: %w", err)
	}

	var mosque domain.Mosque
	var before *domain.Mosque
	if existing != nil {
		copied := *existing
		before = &copied
		mosque = *existing
		mosque.LastUpdatedAt = now
		mosque.LastUpdatedBy = updaterUserID
	} else {
		// First save bootstraps the singleton row.
		mosque = domain.Mosque{
			MosqueID: uuid.NewString(),
			IsActive: true,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     updaterUserID,
				LastUpdatedAt: now,
				LastUpdatedBy: updaterUserID,
			},
		}
	}

	mosque.Name = req.Name
	mosque.Address = req.Address
	mosque.Phone = req.Phone
	mosque.Email = req.Email
	mosque.OpeningBalance = req.OpeningBalance
	mosque.OpeningDate = openingDate

	if err := s.mosqueRepo.SaveMosque(ctx, mosque); err != nil {
		s.LogError(ctx, err, "Failed to save mosque settings", slog.String("mosque_id", mosque.MosqueID))
		return nil, fmt.Errorf("failed to save mosque settings: %w", err)
	}

	verb := "UPDATE"
	if existing == nil {
		verb = "CREATE"
	}
	s.audit.Record(ctx, domain.EntityAction(verb, "MOSQUE"), updaterUserID, "mosque", mosque.MosqueID, before, &mosque)

	s.LogInfo(ctx, "Mosque settings saved", slog.String("mosque_id", mosque.MosqueID))
	return &mosque, nil
}
