package domain

import "time"

// EventCategory classifies a calendar entry.
type EventCategory string

const (
	EventKajian  EventCategory = "KAJIAN"
	EventSosial  EventCategory = "SOSIAL"
	EventPHBI    EventCategory = "PHBI"
	EventLomba   EventCategory = "LOMBA"
	EventLainnya EventCategory = "LAINNYA"
)

// Valid reports whether c is one of the known event categories.
func (c EventCategory) Valid() bool {
	switch c {
	case EventKajian, EventSosial, EventPHBI, EventLomba, EventLainnya:
		return true
	}
	return false
}

// Event is a calendar entry. IsPublished gates visibility on the public
// landing page.
type Event struct {
	EventID     string        `json:"eventID"`
	MosqueID    string        `json:"mosqueID"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Location    string        `json:"location"`
	StartDate   time.Time     `json:"startDate"`
	EndDate     *time.Time    `json:"endDate,omitempty"`
	Category    EventCategory `json:"category"`
	IsPublished bool          `json:"isPublished"`
	ImageURL    string        `json:"imageUrl,omitempty"`
	AuditFields
}
