package api

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specularhq/specular/ent/audit"
	"github.com/specularhq/specular/pkg/events"
	"github.com/specularhq/specular/pkg/services"
	testdb "github.com/specularhq/specular/test/database"
)

func TestAuditEventStream(t *testing.T) {
	client := testdb.NewTestClient(t)
	dispatcher := events.NewDispatcher()
	s := NewServer(client, nil, services.NewEventService(client.Client), dispatcher)
	ctx := context.Background()

	company, err := client.Company.Create().
		SetID(uuid.NewString()).
		SetName("Acme Analytics").
		SetDescription("Product analytics for mid-market teams.").
		Save(ctx)
	require.NoError(t, err)

	a, err := client.Audit.Create().
		SetID(uuid.NewString()).
		SetCompanyID(company.ID).
		SetStatus(audit.StatusProcessing).
		SetProviders([]string{"openai"}).
		SetQueryCount(10).
		SetUserID("test-user").
		Save(ctx)
	require.NoError(t, err)

	channel := events.AuditChannel(a.ID)
	row, err := client.AuditEvent.Create().
		SetAuditID(a.ID).
		SetChannel(channel).
		SetPayload(map[string]interface{}{
			"type":   events.EventTypeStatus,
			"status": "processing",
		}).
		Save(ctx)
	require.NoError(t, err)

	reqCtx, cancel := context.WithCancel(ctx)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/audits/"+a.ID+"/events/stream", nil).WithContext(reqCtx)
	w := httptest.NewRecorder()

	done := make(chan struct{})
	go func() {
		defer close(done)
		s.engine.ServeHTTP(w, req)
	}()

	require.Eventually(t, func() bool {
		return dispatcher.SubscriberCount(channel) == 1
	}, 2*time.Second, 10*time.Millisecond, "handler never subscribed")

	dispatcher.Broadcast(channel, []byte(`{"type":"audit.progress","phase":"analysis","completed":4,"total":12}`))

	// Let the handler drain the live frame before tearing the request down.
	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("stream handler did not exit after client disconnect")
	}

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/event-stream", w.Header().Get("Content-Type"))

	body := w.Body.String()
	assert.Contains(t, body, fmt.Sprintf("id: %d", row.ID), "catchup frame should carry the row id")
	assert.Contains(t, body, `"status":"processing"`)
	assert.Contains(t, body, `"completed":4`, "live frame should follow catchup")
	assert.Equal(t, 0, dispatcher.SubscriberCount(channel), "subscription should be released on disconnect")
}

func TestAuditEventStreamUnavailable(t *testing.T) {
	s := newTestServer(t, nil)

	w := serveRequest(s, http.MethodGet, "/api/v1/audits/"+uuid.NewString()+"/events/stream")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestAuditEventStreamBadCursor(t *testing.T) {
	client := testdb.NewTestClient(t)
	s := NewServer(client, nil, services.NewEventService(client.Client), events.NewDispatcher())

	w := serveRequest(s, http.MethodGet, "/api/v1/audits/"+uuid.NewString()+"/events/stream?since_id=later")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
