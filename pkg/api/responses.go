package api

import (
	"github.com/specularhq/specular/pkg/database"
)

// HealthCheck is one component's state in the overall health response.
type HealthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthResponse is returned by GET /api/v1/health.
type HealthResponse struct {
	Status  string                 `json:"status"`
	Version string                 `json:"version"`
	Checks  map[string]HealthCheck `json:"checks"`
}

// DatabaseHealthResponse is returned by GET /api/v1/health/database.
type DatabaseHealthResponse struct {
	Database *database.HealthStatus `json:"database"`
	Error    string                 `json:"error,omitempty"`
}

// AuditEventRow is one persisted event in the catchup feed.
type AuditEventRow struct {
	ID        int                    `json:"id"`
	Payload   map[string]interface{} `json:"payload"`
	CreatedAt string                 `json:"created_at"`
}

// AuditEventsResponse is returned by GET /api/v1/audits/:id/events.
// LastID echoes since_id when the feed is empty so clients can always
// resume from the returned value.
type AuditEventsResponse struct {
	AuditID string          `json:"audit_id"`
	Events  []AuditEventRow `json:"events"`
	LastID  int             `json:"last_id"`
}
