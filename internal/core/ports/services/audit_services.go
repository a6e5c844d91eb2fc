package services

import (
	"context"

	"github.com/DKMApps/masjid_kas_app/internal/core/domain"
)

// AuditSvcFacade defines operations on the append-only audit trail.
type AuditSvcFacade interface {
	// Record writes one audit entry. Before/after snapshots are marshalled to
	// JSON; failures are logged but never fail the calling operation.
	Record(ctx context.Context, action domain.AuditAction, userID, entityType, entityID string, before, after any)

	ListAuditLogs(ctx context.Context, limit, offset int) ([]domain.AuditLog, error)
}
