package domain

import (
	"context"
	"errors"
)

// ErrNotFound is returned when an event id has no match in the catalog.
var ErrNotFound = errors.New("event not found")

// EventType is the kind of a college tech event.
type EventType string

const (
	EventTypeHackathon EventType = "hackathon"
	EventTypeTechTalk  EventType = "tech-talk"
	EventTypeWorkshop  EventType = "workshop"
)

// EventTypes lists every valid event type in display order.
var EventTypes = []EventType{EventTypeHackathon, EventTypeTechTalk, EventTypeWorkshop}

// Valid reports whether t is one of the known event types.
func (t EventType) Valid() bool {
	switch t {
	case EventTypeHackathon, EventTypeTechTalk, EventTypeWorkshop:
		return true
	}
	return false
}

// Label returns the human-readable name of t. Unknown types are returned as-is.
func (t EventType) Label() string {
	switch t {
	case EventTypeHackathon:
		return "Hackathon"
	case EventTypeTechTalk:
		return "Tech Talk"
	case EventTypeWorkshop:
		return "Workshop"
	default:
		return string(t)
	}
}

// Event is a single entry of the catalog.
// EventDate is an ISO 8601 calendar date (YYYY-MM-DD) kept as a string so that
// lexicographic order equals chronological order.
// swagger:model Event
type Event struct {
	ID          string    `json:"id" csv:"id"`
	EventName   string    `json:"eventName" csv:"event_name"`
	EventDate   string    `json:"eventDate" csv:"event_date"`
	EventType   EventType `json:"eventType" csv:"event_type"`
	College     string    `json:"college" csv:"college"`
	Location    string    `json:"location" csv:"location"`
	Link        string    `json:"link" csv:"link"`
	Description string    `json:"description" csv:"description"`
}

// EventRepository is a read-only source of the catalog. List returns events in
// catalog order; implementations must never hand out their internal slice.
type EventRepository interface {
	List(ctx context.Context) ([]Event, error)
	GetByID(ctx context.Context, id string) (*Event, error)
}

// CatalogFetcher loads a complete catalog from a remote source.
type CatalogFetcher interface {
	Fetch(ctx context.Context) ([]Event, error)
}

// EventDetail is a single event prepared for the detail view.
type EventDetail struct {
	Event       Event   `json:"event"`
	TypeLabel   string  `json:"typeLabel"`
	DisplayDate string  `json:"displayDate"`
	Upcoming    bool    `json:"upcoming"`
	Related     []Event `json:"related"`
}

// EventService defines the operations the presentation layer may call.
type EventService interface {
	ListEvents(ctx context.Context, criteria FilterCriteria) (*EventList, error)
	GetEvent(ctx context.Context, id string) (*EventDetail, error)
	FilterOptions(ctx context.Context) (*FilterOptions, error)
	SubmitEvent(ctx context.Context, raw RawSubmission) (*Submission, error)
}
