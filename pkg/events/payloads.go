package events

import (
	"time"

	"github.com/specularhq/specular/ent/audit"
)

// NowRFC3339 formats the current UTC time the way every payload timestamp is
// encoded.
func NowRFC3339() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

// StatusPayload is the payload for audit.status events. Published on every
// audit lifecycle transition.
type StatusPayload struct {
	Type      string       `json:"type"`            // always EventTypeStatus
	AuditID   string       `json:"audit_id"`        // audit UUID
	Status    audit.Status `json:"status"`          // pending, processing, analyzing, ...
	Error     string       `json:"error,omitempty"` // set when status is failed
	Timestamp string       `json:"timestamp"`       // RFC3339Nano UTC
}

// ProgressPayload is the payload for audit.progress transient events.
// Consumers key on audit_id + phase + sequence; sequence is per-audit
// monotonic so stale ticks can be dropped.
type ProgressPayload struct {
	Type      string `json:"type"` // always EventTypeProgress
	AuditID   string `json:"audit_id"`
	Phase     string `json:"phase"` // query_generation, response_collection, analysis, scoring, population
	Completed int    `json:"completed"`
	Total     int    `json:"total"`
	Timestamp string `json:"timestamp"` // RFC3339Nano UTC
	Sequence  int    `json:"sequence"`
}

// DashboardReadyPayload is the payload for the completion event. The field
// is named "event" rather than "type" to match the published contract.
type DashboardReadyPayload struct {
	AuditID   string `json:"audit_id"`
	Event     string `json:"event"`     // always EventTypeDashboardReady
	Timestamp string `json:"timestamp"` // RFC3339Nano UTC
}
