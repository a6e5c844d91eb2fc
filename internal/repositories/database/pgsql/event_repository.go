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

type PgxEventRepository struct {
	BaseRepository
}

func newPgxEventRepository(db *pgxpool.Pool) portsrepo.EventRepository {
	return &PgxEventRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.EventRepository = (*PgxEventRepository)(nil)

const eventColumns = `event_id, mosque_id, title, description, location, start_date, end_date, category, is_published, image_url, created_at, created_by, last_updated_at, last_updated_by`

func scanEvent(row pgx.Row) (domain.Event, error) {
	var e domain.Event
	err := row.Scan(
		&e.EventID,
		&e.MosqueID,
		&e.Title,
		&e.Description,
		&e.Location,
		&e.StartDate,
		&e.EndDate,
		&e.Category,
		&e.IsPublished,
		&e.ImageURL,
		&e.CreatedAt,
		&e.CreatedBy,
		&e.LastUpdatedAt,
		&e.LastUpdatedBy,
	)
	return e, err
}

func (r *PgxEventRepository) SaveEvent(ctx context.Context, event domain.Event) error {
	query := `
        INSERT INTO events (` + eventColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
    `
	_, err := r.Pool.Exec(ctx, query,
		event.EventID,
		event.MosqueID,
		event.Title,
		event.Description,
		event.Location,
		event.StartDate,
		event.EndDate,
		event.Category,
		event.IsPublished,
		event.ImageURL,
		event.CreatedAt,
		event.CreatedBy,
		event.LastUpdatedAt,
		event.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save event: %w", err)
	}
	return nil
}

func (r *PgxEventRepository) FindEventByID(ctx context.Context, eventID string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE event_id = $1;`

	event, err := scanEvent(r.Pool.QueryRow(ctx, query, eventID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find event by ID %s: %w", eventID, err)
	}
	return &event, nil
}

func (r *PgxEventRepository) ListEvents(ctx context.Context, mosqueID string, filter portsrepo.ListEventsFilter) ([]domain.Event, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	query := `SELECT ` + eventColumns + ` FROM events WHERE mosque_id = $1`
	args := []any{mosqueID}

	if filter.Category != nil {
		args = append(args, *filter.Category)
		query += fmt.Sprintf(" AND category = $%d", len(args))
	}
	if filter.PublishedOnly {
		query += " AND is_published = TRUE"
	}
	if filter.StartingAfter != nil {
		// An event still running past the cutoff counts as upcoming.
		args = append(args, *filter.StartingAfter)
		query += fmt.Sprintf(" AND (start_date >= $%d OR end_date >= $%d)", len(args), len(args))
	}

	args = append(args, limit, offset)
	query += fmt.Sprintf(" ORDER BY start_date ASC LIMIT $%d OFFSET $%d;", len(args)-1, len(args))

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	events := []domain.Event{}
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event row: %w", err)
		}
		events = append(events, event)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating event rows: %w", rows.Err())
	}

	return events, nil
}

func (r *PgxEventRepository) UpdateEvent(ctx context.Context, event domain.Event) error {
	query := `
        UPDATE events
        SET title = $1, description = $2, location = $3, start_date = $4, end_date = $5,
            category = $6, is_published = $7, image_url = $8, last_updated_at = $9, last_updated_by = $10
        WHERE event_id = $11;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		event.Title,
		event.Description,
		event.Location,
		event.StartDate,
		event.EndDate,
		event.Category,
		event.IsPublished,
		event.ImageURL,
		event.LastUpdatedAt,
		event.LastUpdatedBy,
		event.EventID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update event query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("event not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxEventRepository) DeleteEvent(ctx context.Context, eventID string) error {
	query := `DELETE FROM events WHERE event_id = $1;`

	cmdTag, err := r.Pool.Exec(ctx, query, eventID)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("event not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
