package services

import (
	"context"
	"fmt"
	"time"

	"github.com/specularhq/specular/ent"
	"github.com/specularhq/specular/ent/auditevent"
)

// EventService provides catch-up reads over the durable event feed.
// Writes happen in pkg/events (same transaction as the NOTIFY).
type EventService struct {
	client *ent.Client
}

// NewEventService creates an EventService over the given ent client.
func NewEventService(client *ent.Client) *EventService {
	return &EventService{client: client}
}

// GetEventsSince retrieves a channel's events with id > sinceID, oldest
// first. Reconnecting consumers resume from the last db_event_id they saw.
func (s *EventService) GetEventsSince(ctx context.Context, channel string, sinceID int, limit int) ([]*ent.AuditEvent, error) {
	if limit <= 0 {
		limit = 100
	}

	events, err := s.client.AuditEvent.Query().
		Where(
			auditevent.ChannelEQ(channel),
			auditevent.IDGT(sinceID),
		).
		Order(ent.Asc(auditevent.FieldID)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}

	return events, nil
}

// CleanupOldEvents removes events older than the TTL. Durable events only
// need to outlive consumer reconnect windows, not the audit itself.
func (s *EventService) CleanupOldEvents(ctx context.Context, ttl time.Duration) (int, error) {
	if ttl <= 0 {
		return 0, NewValidationError("ttl", "must be positive")
	}

	cutoff := time.Now().Add(-ttl)

	writeCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.client.AuditEvent.Delete().
		Where(auditevent.CreatedAtLT(cutoff)).
		Exec(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup old events: %w", err)
	}

	return count, nil
}
