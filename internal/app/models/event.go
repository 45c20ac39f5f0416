package models

import "time"

// EventType classifies analytics events.
type EventType string

const (
	EventPageView      EventType = "page_view"
	EventCheckoutStart EventType = "checkout_start"
	EventCheckoutDone  EventType = "checkout_complete"
	EventLinkClick     EventType = "link_click"
)

// Event is a fire-and-forget analytics record based on the 'events' table.
type Event struct {
	ID        int64             `json:"id" db:"id"`
	Type      EventType         `json:"type" db:"event_type"`
	Path      string            `json:"path" db:"path"`
	SessionID string            `json:"sessionId" db:"session_id"`
	Metadata  map[string]string `json:"metadata,omitempty" db:"metadata"`
	CreatedAt time.Time         `json:"createdAt" db:"created_at"`
}
