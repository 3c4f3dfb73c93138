package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"
)

// notifyPayloadCap is the largest body handed to pg_notify. Postgres rejects
// payloads at 8000 bytes; staying under leaves headroom.
const notifyPayloadCap = 7900

// Publisher publishes audit events to PostgreSQL channels.
// Status and completion events are stored in audit_events then broadcast via
// NOTIFY; progress ticks are broadcast only.
type Publisher struct {
	db *sql.DB
}

// NewPublisher creates a Publisher. The db parameter should be the *sql.DB
// from database.Client.DB().
func NewPublisher(db *sql.DB) *Publisher {
	return &Publisher{db: db}
}

// PublishStatus persists a status event to the audit channel and broadcasts
// a transient copy to the global audits channel. Both publishes are
// best-effort; the first error encountered is returned.
func (p *Publisher) PublishStatus(ctx context.Context, auditID string, payload StatusPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal StatusPayload: %w", err)
	}

	var firstErr error
	if err := p.publishDurable(ctx, auditID, AuditChannel(auditID), payloadJSON); err != nil {
		slog.Warn("Failed to publish status to audit channel",
			"audit_id", auditID, "status", payload.Status, "error", err)
		firstErr = err
	}

	// List views watch the global channel; a miss there is recoverable by
	// polling, so this copy is transient.
	if err := p.publishTransient(ctx, GlobalAuditsChannel, payloadJSON); err != nil {
		slog.Warn("Failed to publish status to global channel",
			"audit_id", auditID, "status", payload.Status, "error", err)
		if firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}

// PublishProgress broadcasts an audit.progress transient event (no DB
// persistence). High frequency; lost ticks are superseded by the next one.
func (p *Publisher) PublishProgress(ctx context.Context, auditID string, payload ProgressPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal ProgressPayload: %w", err)
	}
	return p.publishTransient(ctx, AuditChannel(auditID), payloadJSON)
}

// PublishDashboardReady persists and broadcasts the completion event.
func (p *Publisher) PublishDashboardReady(ctx context.Context, auditID string) error {
	payload := DashboardReadyPayload{
		AuditID:   auditID,
		Event:     EventTypeDashboardReady,
		Timestamp: NowRFC3339(),
	}
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal DashboardReadyPayload: %w", err)
	}
	return p.publishDurable(ctx, auditID, AuditChannel(auditID), payloadJSON)
}

// publishDurable writes the event to audit_events and fires NOTIFY in one
// transaction. pg_notify is transactional, so the broadcast is held until
// COMMIT and is never observed for a row that failed to land.
func (p *Publisher) publishDurable(ctx context.Context, auditID, channel string, payloadJSON []byte) error {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var eventID int64
	err = tx.QueryRowContext(ctx,
		`INSERT INTO audit_events (audit_id, channel, payload, created_at) VALUES ($1, $2, $3, $4) RETURNING id`,
		auditID, channel, payloadJSON, time.Now().UTC(),
	).Scan(&eventID)
	if err != nil {
		return fmt.Errorf("failed to persist event: %w", err)
	}

	// The row id rides along so consumers can catch up from audit_events
	// after a reconnect.
	body, err := notifyBody(payloadJSON, &eventID)
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, body); err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit event transaction: %w", err)
	}
	return nil
}

// publishTransient fires NOTIFY without touching audit_events.
func (p *Publisher) publishTransient(ctx context.Context, channel string, payloadJSON []byte) error {
	body, err := notifyBody(payloadJSON, nil)
	if err != nil {
		return err
	}
	if _, err := p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, body); err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}
	return nil
}

// notifyBody renders the wire body for pg_notify. A non-nil dbEventID is
// spliced into the JSON as db_event_id. Bodies over notifyPayloadCap collapse
// to a routing stub the consumer resolves against audit_events.
func notifyBody(payloadJSON []byte, dbEventID *int64) (string, error) {
	if dbEventID == nil && len(payloadJSON) <= notifyPayloadCap {
		return string(payloadJSON), nil
	}

	var fields map[string]any
	if err := json.Unmarshal(payloadJSON, &fields); err != nil {
		return "", fmt.Errorf("failed to decode event payload: %w", err)
	}
	if dbEventID != nil {
		fields["db_event_id"] = *dbEventID
	}

	body, err := json.Marshal(fields)
	if err != nil {
		return "", fmt.Errorf("failed to encode NOTIFY body: %w", err)
	}
	if len(body) <= notifyPayloadCap {
		return string(body), nil
	}
	return routingStub(fields)
}

// routingStub keeps just enough of an oversized event for a consumer to fetch
// the full row: the type key ("event" on the completion payload), the audit
// id, and the row id when present.
func routingStub(fields map[string]any) (string, error) {
	stub := map[string]any{"truncated": true}
	for _, key := range []string{"type", "event", "audit_id", "db_event_id"} {
		if v, ok := fields[key]; ok {
			stub[key] = v
		}
	}
	body, err := json.Marshal(stub)
	if err != nil {
		return "", fmt.Errorf("failed to encode routing stub: %w", err)
	}
	return string(body), nil
}
