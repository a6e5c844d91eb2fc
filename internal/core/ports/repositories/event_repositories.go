package repositories

import (
	"context"
	"time"

	"github.com/DKMApps/masjid_kas_app/internal/core/domain"
)

// ListEventsFilter narrows an event listing. Nil fields are not applied.
type ListEventsFilter struct {
	Category      *domain.EventCategory
	PublishedOnly bool
	StartingAfter *time.Time
	Limit         int
	Offset        int
}

// EventRepository defines persistence operations for calendar events.
type EventRepository interface {
	SaveEvent(ctx context.Context, event domain.Event) error

	FindEventByID(ctx context.Context, eventID string) (*domain.Event, error)

	ListEvents(ctx context.Context, mosqueID string, filter ListEventsFilter) ([]domain.Event, error)

	UpdateEvent(ctx context.Context, event domain.Event) error

	DeleteEvent(ctx context.Context, eventID string) error
}
