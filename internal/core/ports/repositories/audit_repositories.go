package repositories

import (
	"context"

	"github.com/DKMApps/masjid_kas_app/internal/core/domain"
)

// AuditLogRepository defines persistence operations for the append-only audit
// trail. There is deliberately no update or delete.
type AuditLogRepository interface {
	SaveAuditLog(ctx context.Context, entry domain.AuditLog) error

	FindAuditLogs(ctx context.Context, limit int, offset int) ([]domain.AuditLog, error)
}
