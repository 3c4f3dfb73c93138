package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuditChannel(t *testing.T) {
	assert.Equal(t, "audit:abc-123", AuditChannel("abc-123"))
	assert.Equal(t, "audit:550e8400-e29b-41d4-a716-446655440000",
		AuditChannel("550e8400-e29b-41d4-a716-446655440000"))
	assert.Equal(t, "audit:", AuditChannel(""))
}

// The wire values below are a published contract; SSE consumers switch on
// them, so a rename here is a breaking change.
func TestEventTypeWireValues(t *testing.T) {
	assert.Equal(t, "audit.status", EventTypeStatus)
	assert.Equal(t, "audit.progress", EventTypeProgress)
	assert.Equal(t, "dashboard_ready", EventTypeDashboardReady)
}

func TestPhaseWireValues(t *testing.T) {
	assert.Equal(t, "query_generation", PhaseQueryGeneration)
	assert.Equal(t, "response_collection", PhaseResponseCollection)
	assert.Equal(t, "analysis", PhaseAnalysis)
	assert.Equal(t, "scoring", PhaseScoring)
	assert.Equal(t, "population", PhasePopulation)
}

func TestGlobalAuditsChannel(t *testing.T) {
	assert.Equal(t, "audits", GlobalAuditsChannel)
}
