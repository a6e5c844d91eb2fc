package pgsql

import (
	"context"
	"fmt"

	"github.com/DKMApps/masjid_kas_app/internal/core/domain"
	portsrepo "github.com/DKMApps/masjid_kas_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAuditLogRepository struct {
	BaseRepository
}

func newPgxAuditLogRepository(db *pgxpool.Pool) portsrepo.AuditLogRepository {
	return &PgxAuditLogRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.AuditLogRepository = (*PgxAuditLogRepository)(nil)

func (r *PgxAuditLogRepository) SaveAuditLog(ctx context.Context, entry domain.AuditLog) error {
	query := `
        INSERT INTO audit_logs (audit_log_id, action, user_id, entity_type, entity_id, before_data, after_data, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
    `
	_, err := r.Pool.Exec(ctx, query,
		entry.AuditLogID,
		entry.Action,
		nullIfEmpty(entry.UserID),
		entry.EntityType,
		entry.EntityID,
		entry.Before,
		entry.After,
		entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save audit log: %w", err)
	}
	return nil
}

func (r *PgxAuditLogRepository) FindAuditLogs(ctx context.Context, limit int, offset int) ([]domain.AuditLog, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	query := `
        SELECT audit_log_id, action, user_id, entity_type, entity_id, before_data, after_data, created_at
        FROM audit_logs
        ORDER BY created_at DESC
        LIMIT $1 OFFSET $2;
    `
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query audit logs: %w", err)
	}
	defer rows.Close()

	logs := []domain.AuditLog{}
	for rows.Next() {
		var entry domain.AuditLog
		var userID *string
		err := rows.Scan(
			&entry.AuditLogID,
			&entry.Action,
			&userID,
			&entry.EntityType,
			&entry.EntityID,
			&entry.Before,
			&entry.After,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan audit log row: %w", err)
		}
		// user_id goes NULL when the acting user is deleted; the entry itself
		// is kept forever.
		if userID != nil {
			entry.UserID = *userID
		}
		logs = append(logs, entry)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating audit log rows: %w", rows.Err())
	}

	return logs, nil
}
