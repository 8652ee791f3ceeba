// Package events records theme activity in the event log.
package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/opencode-ai/themetoggle/internal/models"
	"github.com/opencode-ai/themetoggle/internal/theme"
)

// Repository is the minimal interface needed to write events.
// Append validates the event before storing it.
type Repository interface {
	Append(ctx context.Context, event *models.Event) error
}

// LogThemeChanged records a committed theme change for a session.
func LogThemeChanged(ctx context.Context, repo Repository, sessionID string, change theme.Change) error {
	if repo == nil {
		return fmt.Errorf("event repository is required")
	}
	if sessionID == "" {
		return fmt.Errorf("session id is required")
	}

	payload, err := json.Marshal(models.ThemeChangedPayload{
		Seq:      change.Seq,
		Previous: change.Previous.String(),
		Current:  change.Current.String(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal theme payload: %w", err)
	}

	event := &models.Event{
		Timestamp:  change.Timestamp,
		Type:       models.EventTypeThemeChanged,
		EntityType: models.EntityTypeTheme,
		EntityID:   sessionID,
		Payload:    payload,
	}

	return repo.Append(ctx, event)
}

// LogSession records a session boundary with the mode in effect at that point.
func LogSession(ctx context.Context, repo Repository, sessionID string, eventType models.EventType, mode theme.Mode) error {
	if repo == nil {
		return fmt.Errorf("event repository is required")
	}
	if sessionID == "" {
		return fmt.Errorf("session id is required")
	}
	if eventType != models.EventTypeSessionStarted && eventType != models.EventTypeSessionEnded {
		return fmt.Errorf("unsupported session event type %q", eventType)
	}

	payload, err := json.Marshal(models.SessionPayload{Mode: mode.String()})
	if err != nil {
		return fmt.Errorf("failed to marshal session payload: %w", err)
	}

	return repo.Append(ctx, &models.Event{
		Type:       eventType,
		EntityType: models.EntityTypeSession,
		EntityID:   sessionID,
		Payload:    payload,
	})
}
