package services

import (
	"context"
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

// eventService manages calendar events.
type eventService struct {
	BaseService
	eventRepo    portsrepo.EventRepository
	mosqueReader portssvc.MosqueReaderSvc
	audit        portssvc.AuditSvcFacade
}

// NewEventService creates a new event service.
func NewEventService(eventRepo portsrepo.EventRepository, mosqueReader portssvc.MosqueReaderSvc, audit portssvc.AuditSvcFacade) portssvc.EventSvcFacade {
	return &eventService{eventRepo: eventRepo, mosqueReader: mosqueReader, audit: audit}
}

var _ portssvc.EventSvcFacade = (*eventService)(nil)

func (s *eventService) CreateEvent(ctx context.Context, req dto.CreateEventRequest, creatorUserID string) (*domain.Event, error) {
	category := domain.EventCategory(req.Category)
	if !category.Valid() {
		return nil, fmt.Errorf("%w: unknown event category %q", apperrors.ErrValidation, req.Category)
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid start date format, expected YYYY-MM-DD", apperrors.ErrValidation)
	}

	var endDate *time.Time
	if req.EndDate != "" {
		parsed, err := time.Parse("2006-01-02", req.EndDate)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid end date format, expected YYYY-MM-DD", apperrors.ErrValidation)
		}
		if parsed.Before(startDate) {
			return nil, fmt.Errorf("%w: end date is before start date", apperrors.ErrValidation)
		}
		endDate = &parsed
	}

	mosque, err := s.mosqueReader.ActiveMosque(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	event := domain.Event{
		EventID:     uuid.NewString(),
		MosqueID:    mosque.MosqueID,
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		StartDate:   startDate,
		EndDate:     endDate,
		Category:    category,
		IsPublished: req.IsPublished,
		ImageURL:    req.ImageURL,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.eventRepo.SaveEvent(ctx, event); err != nil {
		s.LogError(ctx, err, "Failed to save event", slog.String("title", req.Title))
		return nil, fmt.Errorf("failed to save event: %w", err)
	}

	s.audit.Record(ctx, domain.EntityAction("CREATE", "EVENT"), creatorUserID, "event", event.EventID, nil, &event)

	s.LogInfo(ctx, "Event created",
		slog.String("event_id", event.EventID),
		slog.String("category", string(event.Category)))
	return &event, nil
}

func (s *eventService) GetEventByID(ctx context.Context, eventID string) (*domain.Event, error) {
	event, err := s.eventRepo.FindEventByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to find event %s: %w", eventID, err)
	}
	return event, nil
}

func (s *eventService) ListEvents(ctx context.Context, params dto.ListEventsParams) ([]domain.Event, error) {
	return s.listEvents(ctx, params, false)
}

func (s *eventService) ListPublishedEvents(ctx context.Context, params dto.ListEventsParams) ([]domain.Event, error) {
	return s.listEvents(ctx, params, true)
}

func (s *eventService) listEvents(ctx context.Context, params dto.ListEventsParams, publishedOnly bool) ([]domain.Event, error) {
	mosque, err := s.mosqueReader.ActiveMosque(ctx)
	if err != nil {
		return nil, err
	}

	filter := portsrepo.ListEventsFilter{
		PublishedOnly: publishedOnly,
		Limit:         params.Limit,
		Offset:        params.Offset,
	}
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if params.Category != "" {
		category := domain.EventCategory(params.Category)
		if !category.Valid() {
			return nil, fmt.Errorf("%w: unknown event category %q", apperrors.ErrValidation, params.Category)
		}
		filter.Category = &category
	}
	if publishedOnly {
		// The public page only shows upcoming entries.
		today := time.Now().Truncate(24 * time.Hour)
		filter.StartingAfter = &today
	}

	events, err := s.eventRepo.ListEvents(ctx, mosque.MosqueID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}

func (s *eventService) UpdateEvent(ctx context.Context, eventID string, req dto.UpdateEventRequest, updaterUserID string) (*domain.Event, error) {
	event, err := s.eventRepo.FindEventByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to find event %s for update: %w", eventID, err)
	}

	before := *event

	if req.Title != nil {
		event.Title = *req.Title
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.Location != nil {
		event.Location = *req.Location
	}
	if req.StartDate != nil {
		startDate, err := time.Parse("2006-01-02", *req.StartDate)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid start date format, expected YYYY-MM-DD", apperrors.ErrValidation)
		}
		event.StartDate = startDate
	}
	if req.EndDate != nil {
		if *req.EndDate == "" {
			event.EndDate = nil
		} else {
			endDate, err := time.Parse("2006-01-02", *req.EndDate)
			if err != nil {
				return nil, fmt.Errorf("%w: invalid end date format, expected YYYY-MM-DD", apperrors.ErrValidation)
			}
			event.EndDate = &endDate
		}
	}
	if req.Category != nil {
		category := domain.EventCategory(*req.Category)
		if !category.Valid() {
			return nil, fmt.Errorf("%w: unknown event category %q", apperrors.ErrValidation, *req.Category)
		}
		event.Category = category
	}
	if req.IsPublished != nil {
		event.IsPublished = *req.IsPublished
	}
	if req.ImageURL != nil {
		event.ImageURL = *req.ImageURL
	}
	if event.EndDate != nil && event.EndDate.Before(event.StartDate) {
		return nil, fmt.Errorf("%w: end date is before start date", apperrors.ErrValidation)
	}
	event.LastUpdatedAt = time.Now()
	event.LastUpdatedBy = updaterUserID

	if err := s.eventRepo.UpdateEvent(ctx, *event); err != nil {
		s.LogError(ctx, err, "Failed to update event", slog.String("event_id", eventID))
		return nil, fmt.Errorf("failed to update event: %w", err)
	}

	s.audit.Record(ctx, domain.EntityAction("UPDATE", "EVENT"), updaterUserID, "event", eventID, &before, event)

	return event, nil
}

func (s *eventService) DeleteEvent(ctx context.Context, eventID string, deleterUserID string) error {
	event, err := s.eventRepo.FindEventByID(ctx, eventID)
	if err != nil {
		return fmt.Errorf("failed to find event %s for deletion: %w", eventID, err)
	}

	if err := s.eventRepo.DeleteEvent(ctx, eventID); err != nil {
		s.LogError(ctx, err, "Failed to delete event", slog.String("event_id", eventID))
		return fmt.Errorf("failed to delete event: %w", err)
	}

	s.audit.Record(ctx, domain.EntityAction("DELETE", "EVENT"), deleterUserID, "event", eventID, event, nil)

	s.LogInfo(ctx, "Event deleted", slog.String("event_id", eventID))
	return nil
}
