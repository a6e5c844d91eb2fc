package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/DKMApps/masjid_kas_app/internal/core/domain"
	portsrepo "github.com/DKMApps/masjid_kas_app/internal/core/ports/repositories"
	portssvc "github.com/DKMApps/masjid_kas_app/internal/core/ports/services"
	"github.com/google/uuid"
)

// auditService implements the append-only audit trail.
type auditService struct {
	BaseService
	auditRepo portsrepo.AuditLogRepository
}

// NewAuditService creates a new audit service.
func NewAuditService(auditRepo portsrepo.AuditLogRepository) portssvc.AuditSvcFacade {
	return &auditService{auditRepo: auditRepo}
}

var _ portssvc.AuditSvcFacade = (*auditService)(nil)

// Record writes one audit entry. Recording is best effort: a failure here must
// never roll back or fail the business operation that triggered it, so errors
// are logged and swallowed.
func (s *auditService) Record(ctx context.Context, action domain.AuditAction, userID, entityType, entityID string, before, after any) {
	entry := domain.AuditLog{
		AuditLogID: uuid.NewString(),
		Action:     action,
		UserID:     userID,
		EntityType: entityType,
		EntityID:   entityID,
		CreatedAt:  time.Now(),
	}

	if before != nil {
		data, err := json.Marshal(before)
		if err != nil {
			s.LogError(ctx, err, "Failed to marshal audit before snapshot",
				slog.String("action", string(action)),
				slog.String("entity_id", entityID))
		} else {
			entry.Before = data
		}
	}
	if after != nil {
		data, err := json.Marshal(after)
		if err != nil {
			s.LogError(ctx, err, "Failed to marshal audit after snapshot",
				slog.String("action", string(action)),
				slog.String("entity_id", entityID))
		} else {
			entry.After = data
		}
	}

	if err := s.auditRepo.SaveAuditLog(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to save audit log entry",
			slog.String("action", string(action)),
			slog.String("user_id", userID),
			slog.String("entity_id", entityID))
	}
}

func (s *auditService) ListAuditLogs(ctx context.Context, limit, offset int) ([]domain.AuditLog, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	logs, err := s.auditRepo.FindAuditLogs(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit logs: %w", err)
	}
	return logs, nil
}
