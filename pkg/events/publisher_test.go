package events

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/specularhq/specular/ent/audit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifyBody(t *testing.T) {
	t.Run("small transient payload passes through untouched", func(t *testing.T) {
		payload, _ := json.Marshal(StatusPayload{
			Type:      EventTypeStatus,
			AuditID:   "abc-123",
			Status:    audit.StatusProcessing,
			Timestamp: "2026-08-20T12:00:00Z",
		})

		body, err := notifyBody(payload, nil)
		require.NoError(t, err)
		assert.Equal(t, string(payload), body)
	})

	t.Run("durable payload gains db_event_id", func(t *testing.T) {
		payload, _ := json.Marshal(StatusPayload{
			Type:      EventTypeStatus,
			AuditID:   "aud-1",
			Status:    audit.StatusCompleted,
			Timestamp: "2026-08-20T12:00:00Z",
		})

		id := int64(42)
		body, err := notifyBody(payload, &id)
		require.NoError(t, err)
		assert.Contains(t, body, `"db_event_id":42`)
		assert.Contains(t, body, "aud-1")
	})

	t.Run("oversized payload collapses to a stub", func(t *testing.T) {
		payload, _ := json.Marshal(StatusPayload{
			Type:    EventTypeStatus,
			AuditID: "aud-789",
			Status:  audit.StatusFailed,
			Error:   strings.Repeat("x", 8000),
		})

		body, err := notifyBody(payload, nil)
		require.NoError(t, err)
		assert.Less(t, len(body), 8000)
		assert.Contains(t, body, `"truncated":true`)
		assert.Contains(t, body, EventTypeStatus)
		assert.Contains(t, body, "aud-789")
		assert.NotContains(t, body, "xxxx")
	})

	t.Run("oversized durable payload keeps db_event_id in the stub", func(t *testing.T) {
		payload, _ := json.Marshal(StatusPayload{
			Type:    EventTypeStatus,
			AuditID: "aud-789",
			Status:  audit.StatusFailed,
			Error:   strings.Repeat("x", 8000),
		})

		id := int64(42)
		body, err := notifyBody(payload, &id)
		require.NoError(t, err)
		assert.Contains(t, body, `"truncated":true`)
		assert.Contains(t, body, `"db_event_id":42`)
		assert.Contains(t, body, "aud-789")
	})

	t.Run("payload just under the cap is not stubbed", func(t *testing.T) {
		// Marshal an empty struct first to measure the fixed-field overhead;
		// the 20-byte margin keeps the test stable if fields are added later.
		base, _ := json.Marshal(StatusPayload{Type: "t"})
		errSize := notifyPayloadCap - len(base) - 20
		payload, _ := json.Marshal(StatusPayload{
			Type:  "t",
			Error: strings.Repeat("b", errSize),
		})
		require.LessOrEqual(t, len(payload), notifyPayloadCap, "test payload should be under the cap")

		body, err := notifyBody(payload, nil)
		require.NoError(t, err)
		assert.NotContains(t, body, "truncated")
	})

	t.Run("empty JSON object", func(t *testing.T) {
		body, err := notifyBody([]byte("{}"), nil)
		require.NoError(t, err)
		assert.Equal(t, "{}", body)
	})
}

func TestRoutingStub(t *testing.T) {
	t.Run("completion payload routes via its event key", func(t *testing.T) {
		stub, err := routingStub(map[string]any{
			"event":    EventTypeDashboardReady,
			"audit_id": "aud-3",
			"padding":  strings.Repeat("p", 100),
		})
		require.NoError(t, err)
		assert.Contains(t, stub, `"event":"dashboard_ready"`)
		assert.Contains(t, stub, `"audit_id":"aud-3"`)
		assert.NotContains(t, stub, "padding")
	})

	t.Run("absent routing keys are omitted rather than nulled", func(t *testing.T) {
		stub, err := routingStub(map[string]any{"audit_id": "aud-4"})
		require.NoError(t, err)
		assert.NotContains(t, stub, `"type"`)
		assert.NotContains(t, stub, "null")
	})
}

func TestNewPublisher(t *testing.T) {
	publisher := NewPublisher(nil)
	assert.NotNil(t, publisher)
	assert.Nil(t, publisher.db)
}

func TestStatusPayload_JSON(t *testing.T) {
	payload := StatusPayload{
		Type:      EventTypeStatus,
		AuditID:   "aud-123",
		Status:    audit.StatusAnalyzing,
		Timestamp: "2026-08-20T12:00:00Z",
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var decoded StatusPayload
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, EventTypeStatus, decoded.Type)
	assert.Equal(t, "aud-123", decoded.AuditID)
	assert.Equal(t, audit.StatusAnalyzing, decoded.Status)
	assert.Equal(t, "2026-08-20T12:00:00Z", decoded.Timestamp)

	// Error should be omitted from JSON when empty
	assert.NotContains(t, string(data), "error")
}

func TestStatusPayload_FailedCarriesError(t *testing.T) {
	payload := StatusPayload{
		Type:    EventTypeStatus,
		AuditID: "aud-123",
		Status:  audit.StatusFailed,
		Error:   "query generation returned 3 of 48",
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"error":"query generation returned 3 of 48"`)
}

func TestProgressPayload_JSON(t *testing.T) {
	payload := ProgressPayload{
		Type:      EventTypeProgress,
		AuditID:   "aud-100",
		Phase:     PhaseResponseCollection,
		Completed: 64,
		Total:     96,
		Timestamp: "2026-08-20T12:00:00Z",
		Sequence:  8,
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var decoded ProgressPayload
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, EventTypeProgress, decoded.Type)
	assert.Equal(t, "aud-100", decoded.AuditID)
	assert.Equal(t, PhaseResponseCollection, decoded.Phase)
	assert.Equal(t, 64, decoded.Completed)
	assert.Equal(t, 96, decoded.Total)
	assert.Equal(t, 8, decoded.Sequence)
}

func TestDashboardReadyPayload_JSON(t *testing.T) {
	payload := DashboardReadyPayload{
		AuditID:   "aud-200",
		Event:     EventTypeDashboardReady,
		Timestamp: "2026-08-20T12:00:00Z",
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	// The completion event uses "event" rather than "type" on the wire.
	assert.Contains(t, string(data), `"event":"dashboard_ready"`)
	assert.Contains(t, string(data), `"audit_id":"aud-200"`)
	assert.NotContains(t, string(data), `"type"`)
}
