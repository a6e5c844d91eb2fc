package services

import (
	"context"

	"github.com/DKMApps/masjid_kas_app/internal/core/domain"
	"github.com/DKMApps/masjid_kas_app/internal/dto"
)

// EventSvcFacade defines operations on calendar events.
type EventSvcFacade interface {
	CreateEvent(ctx context.Context, req dto.CreateEventRequest, creatorUserID string) (*domain.Event, error)

	GetEventByID(ctx context.Context, eventID string) (*domain.Event, error)

	ListEvents(ctx context.Context, params dto.ListEventsParams) ([]domain.Event, error)

	// ListPublishedEvents returns upcoming published events for the public
	// landing page.
	ListPublishedEvents(ctx context.Context, params dto.ListEventsParams) ([]domain.Event, error)

	UpdateEvent(ctx context.Context, eventID string, req dto.UpdateEventRequest, updaterUserID string) (*domain.Event, error)

	DeleteEvent(ctx context.Context, eventID string, deleterUserID string) error
}
