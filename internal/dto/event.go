package dto

import (
	"github.com/DKMApps/masjid_kas_app/internal/core/domain"
)

// CreateEventRequest defines the data needed to create a calendar entry.
type CreateEventRequest struct {
	Title       string `json:"title" binding:"required,min=3"`
	Description string `json:"description"`
	Location    string `json:"location"`
	StartDate   string `json:"startDate" binding:"required,datetime=2006-01-02"`
	EndDate     string `json:"endDate" binding:"omitempty,datetime=2006-01-02"`
	Category    string `json:"category" binding:"required,oneof=KAJIAN SOSIAL PHBI LOMBA LAINNYA"`
	IsPublished bool   `json:"isPublished"`
	ImageURL    string `json:"imageUrl" binding:"omitempty,url"`
}

// UpdateEventRequest defines the updatable event fields.
type UpdateEventRequest struct {
	Title       *string `json:"title" binding:"omitempty,min=3"`
	Description *string `json:"description"`
	Location    *string `json:"location"`
	StartDate   *string `json:"startDate" binding:"omitempty,datetime=2006-01-02"`
	EndDate     *string `json:"endDate" binding:"omitempty,datetime=2006-01-02"`
	Category    *string `json:"category" binding:"omitempty,oneof=KAJIAN SOSIAL PHBI LOMBA LAINNYA"`
	IsPublished *bool   `json:"isPublished"`
	ImageURL    *string `json:"imageUrl" binding:"omitempty,url"`
}

// ListEventsParams defines query parameters for listing events.
type ListEventsParams struct {
	Category string `form:"category" binding:"omitempty,oneof=KAJIAN SOSIAL PHBI LOMBA LAINNYA"`
	Limit    int    `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	Offset   int    `form:"offset,default=0" binding:"omitempty,min=0"`
}

// EventResponse defines the data returned for an event.
type EventResponse struct {
	EventID     string `json:"eventID"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate,omitempty"`
	Category    string `json:"category"`
	IsPublished bool   `json:"isPublished"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

// ListEventsResponse wraps the list of events.
type ListEventsResponse struct {
	Events []EventResponse `json:"events"`
}

// ToEventResponse converts a domain.Event to its DTO.
func ToEventResponse(e *domain.Event) EventResponse {
	resp := EventResponse{
		EventID:     e.EventID,
		Title:       e.Title,
		Description: e.Description,
		Location:    e.Location,
		StartDate:   e.StartDate.Format("2006-01-02"),
		Category:    string(e.Category),
		IsPublished: e.IsPublished,
		ImageURL:    e.ImageURL,
	}
	if e.EndDate != nil {
		resp.EndDate = e.EndDate.Format("2006-01-02")
	}
	return resp
}

// ToListEventsResponse converts a slice of domain.Event to the list DTO.
func ToListEventsResponse(events []domain.Event) ListEventsResponse {
	responses := make([]EventResponse, len(events))
	for i := range events {
		responses[i] = ToEventResponse(&events[i])
	}
	return ListEventsResponse{Events: responses}
}
