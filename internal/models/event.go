// Package models defines the records persisted by themetoggle.
package models

import (
	"encoding/json"
	"errors"
	"strings"
	"time"
)

// EventType categorizes events in the system.
type EventType string

const (
	// Theme events
	EventTypeThemeChanged EventType = "theme.changed"

	// Session events
	EventTypeSessionStarted EventType = "session.started"
	EventTypeSessionEnded   EventType = "session.ended"
)

// EntityType identifies the type of entity an event relates to.
type EntityType string

const (
	EntityTypeTheme   EntityType = "theme"
	EntityTypeSession EntityType = "session"
)

// ErrInvalidEvent is returned by Validate.
var ErrInvalidEvent = errors.New("invalid event")

// Event represents an append-only log entry.
type Event struct {
	// ID is the unique identifier for the event.
	ID string `json:"id"`

	// Timestamp is when the event occurred.
	Timestamp time.Time `json:"timestamp"`

	// Type categorizes the event.
	Type EventType `json:"type"`

	// EntityType identifies what kind of entity this event relates to.
	EntityType EntityType `json:"entity_type"`

	// EntityID is the ID of the related entity.
	EntityID string `json:"entity_id"`

	// Payload contains event-specific data.
	Payload json.RawMessage `json:"payload,omitempty"`

	// Metadata contains additional context.
	Metadata map[string]string `json:"metadata,omitempty"`
}

// Validate checks if the event is valid.
func (e *Event) Validate() error {
	var missing []string
	if strings.TrimSpace(string(e.Type)) == "" {
		missing = append(missing, "type")
	}
	if strings.TrimSpace(string(e.EntityType)) == "" {
		missing = append(missing, "entity_type")
	}
	if strings.TrimSpace(e.EntityID) == "" {
		missing = append(missing, "entity_id")
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	return nil
}

// ValidationError lists the required fields an event is missing.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "invalid event: missing " + strings.Join(e.Fields, ", ")
}

// Unwrap lets errors.Is match ErrInvalidEvent.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidEvent
}

// ThemeChangedPayload is the payload for theme.changed events.
type ThemeChangedPayload struct {
	Seq      uint64 `json:"seq"`
	Previous string `json:"previous"`
	Current  string `json:"current"`
}

// SessionPayload is the payload for session events.
type SessionPayload struct {
	Mode string `json:"mode"`
}
