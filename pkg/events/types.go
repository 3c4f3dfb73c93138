// Package events delivers audit progress over PostgreSQL NOTIFY/LISTEN.
//
// Two delivery tiers:
//
//   - Status and completion events are persisted to audit_events and
//     broadcast via NOTIFY in one transaction. Consumers that reconnect can
//     catch up from the table by row id (see services.EventService).
//   - Progress ticks are NOTIFY-only. They are high-frequency and ephemeral;
//     a missed tick is superseded by the next one.
//
// Channel fan-out across processes rides on PostgreSQL, so any replica (or an
// external API pod) can serve subscribers for audits processed elsewhere.
package events

// Event types carried in the "type" field of payloads.
const (
	// EventTypeStatus marks audit lifecycle transitions (persisted).
	EventTypeStatus = "audit.status"

	// EventTypeProgress marks per-phase progress ticks (transient).
	EventTypeProgress = "audit.progress"

	// EventTypeDashboardReady marks successful completion: the dashboard
	// record is readable (persisted).
	EventTypeDashboardReady = "dashboard_ready"
)

// Pipeline phases reported in progress events.
const (
	PhaseQueryGeneration    = "query_generation"
	PhaseResponseCollection = "response_collection"
	PhaseAnalysis           = "analysis"
	PhaseScoring            = "scoring"
	PhasePopulation         = "population"
)

// GlobalAuditsChannel carries status events for every audit. List views
// subscribe here instead of one channel per audit.
const GlobalAuditsChannel = "audits"

// AuditChannel returns the channel name for a specific audit's events.
// Format: "audit:{audit_id}"
func AuditChannel(auditID string) string {
	return "audit:" + auditID
}
