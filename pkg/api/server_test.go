package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specularhq/specular/ent"
	"github.com/specularhq/specular/ent/audit"
	"github.com/specularhq/specular/pkg/config"
	"github.com/specularhq/specular/pkg/events"
	"github.com/specularhq/specular/pkg/queue"
	"github.com/specularhq/specular/pkg/services"
	testdb "github.com/specularhq/specular/test/database"
)

// idleExecutor satisfies queue.AuditExecutor for tests that start a real
// pool. No pending audits are ever seeded, so it never actually runs.
type idleExecutor struct{}

func (idleExecutor) Execute(_ context.Context, _ *ent.Audit) *queue.ExecutionResult {
	return &queue.ExecutionResult{Status: audit.StatusCompleted}
}

func newTestServer(t *testing.T, pool *queue.WorkerPool) *Server {
	t.Helper()
	client := testdb.NewTestClient(t)
	return NewServer(client, pool, services.NewEventService(client.Client), nil)
}

func serveRequest(s *Server, method, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, nil)
	s.engine.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func TestHealthEndpoint(t *testing.T) {
	t.Run("healthy database without pool", func(t *testing.T) {
		s := newTestServer(t, nil)

		w := serveRequest(s, http.MethodGet, "/api/v1/health")
		require.Equal(t, http.StatusOK, w.Code)

		var resp HealthResponse
		decodeBody(t, w, &resp)
		assert.Equal(t, "healthy", resp.Status)
		assert.NotEmpty(t, resp.Version)
		require.Contains(t, resp.Checks, "database")
		assert.Equal(t, "healthy", resp.Checks["database"].Status)
		assert.NotContains(t, resp.Checks, "worker_pool")
	})

	t.Run("unstarted pool degrades overall status", func(t *testing.T) {
		client := testdb.NewTestClient(t)
		pool := queue.NewWorkerPool("api-test-replica", client.Client, config.DefaultPipelineConfig(), idleExecutor{}, nil)
		s := NewServer(client, pool, services.NewEventService(client.Client), nil)

		w := serveRequest(s, http.MethodGet, "/api/v1/health")
		require.Equal(t, http.StatusOK, w.Code)

		var resp HealthResponse
		decodeBody(t, w, &resp)
		assert.Equal(t, "degraded", resp.Status)
		assert.Equal(t, "healthy", resp.Checks["database"].Status)
		require.Contains(t, resp.Checks, "worker_pool")
		assert.Equal(t, "degraded", resp.Checks["worker_pool"].Status)
	})
}

func TestDatabaseHealthEndpoint(t *testing.T) {
	s := newTestServer(t, nil)

	w := serveRequest(s, http.MethodGet, "/api/v1/health/database")
	require.Equal(t, http.StatusOK, w.Code)

	var resp DatabaseHealthResponse
	decodeBody(t, w, &resp)
	require.NotNil(t, resp.Database)
	assert.Equal(t, "healthy", resp.Database.Status)
	assert.Greater(t, resp.Database.Pool.MaxOpen, 0)
	assert.Empty(t, resp.Error)
}

func TestQueueHealthEndpoint(t *testing.T) {
	t.Run("no pool wired", func(t *testing.T) {
		s := newTestServer(t, nil)

		w := serveRequest(s, http.MethodGet, "/api/v1/queue/health")
		require.Equal(t, http.StatusServiceUnavailable, w.Code)

		var resp map[string]string
		decodeBody(t, w, &resp)
		assert.Equal(t, "worker pool not running", resp["error"])
	})

	t.Run("running pool reports healthy", func(t *testing.T) {
		client := testdb.NewTestClient(t)

		cfg := config.DefaultPipelineConfig()
		cfg.WorkerCount = 1
		cfg.PollInterval = 50 * time.Millisecond
		cfg.PollIntervalJitter = 0
		cfg.StuckSweepInterval = time.Hour

		pool := queue.NewWorkerPool("api-test-replica", client.Client, cfg, idleExecutor{}, nil)
		require.NoError(t, pool.Start(context.Background()))
		defer pool.Stop()

		s := NewServer(client, pool, services.NewEventService(client.Client), nil)

		w := serveRequest(s, http.MethodGet, "/api/v1/queue/health")
		require.Equal(t, http.StatusOK, w.Code)

		var resp queue.PoolHealth
		decodeBody(t, w, &resp)
		assert.True(t, resp.IsHealthy)
		assert.True(t, resp.DBReachable)
		assert.Equal(t, "api-test-replica", resp.ReplicaID)
		assert.Equal(t, 1, resp.TotalWorkers)
		require.Len(t, resp.WorkerStats, 1)
		assert.Equal(t, "api-test-replica-worker-0", resp.WorkerStats[0].ID)
	})
}

func TestAuditEventsEndpoint(t *testing.T) {
	client := testdb.NewTestClient(t)
	s := NewServer(client, nil, services.NewEventService(client.Client), nil)
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
	var ids []int
	for i := 0; i < 3; i++ {
		row, err := client.AuditEvent.Create().
			SetAuditID(a.ID).
			SetChannel(channel).
			SetPayload(map[string]interface{}{
				"type":     events.EventTypeStatus,
				"audit_id": a.ID,
				"status":   "processing",
				"seq":      i,
			}).
			Save(ctx)
		require.NoError(t, err)
		ids = append(ids, row.ID)
	}

	t.Run("catchup from zero returns full feed", func(t *testing.T) {
		w := serveRequest(s, http.MethodGet, "/api/v1/audits/"+a.ID+"/events")
		require.Equal(t, http.StatusOK, w.Code)

		var resp AuditEventsResponse
		decodeBody(t, w, &resp)
		assert.Equal(t, a.ID, resp.AuditID)
		require.Len(t, resp.Events, 3)
		assert.Equal(t, ids[0], resp.Events[0].ID)
		assert.Equal(t, ids[2], resp.Events[2].ID)
		assert.Equal(t, ids[2], resp.LastID)
		assert.Equal(t, events.EventTypeStatus, resp.Events[0].Payload["type"])
	})

	t.Run("since_id filters already-seen rows", func(t *testing.T) {
		target := fmt.Sprintf("/api/v1/audits/%s/events?since_id=%d", a.ID, ids[0])
		w := serveRequest(s, http.MethodGet, target)
		require.Equal(t, http.StatusOK, w.Code)

		var resp AuditEventsResponse
		decodeBody(t, w, &resp)
		require.Len(t, resp.Events, 2)
		assert.Equal(t, ids[1], resp.Events[0].ID)
		assert.Equal(t, ids[2], resp.LastID)
	})

	t.Run("limit truncates the page", func(t *testing.T) {
		w := serveRequest(s, http.MethodGet, "/api/v1/audits/"+a.ID+"/events?limit=1")
		require.Equal(t, http.StatusOK, w.Code)

		var resp AuditEventsResponse
		decodeBody(t, w, &resp)
		require.Len(t, resp.Events, 1)
		assert.Equal(t, ids[0], resp.Events[0].ID)
		assert.Equal(t, ids[0], resp.LastID)
	})

	t.Run("unknown audit yields empty feed", func(t *testing.T) {
		w := serveRequest(s, http.MethodGet, "/api/v1/audits/"+uuid.NewString()+"/events?since_id=7")
		require.Equal(t, http.StatusOK, w.Code)

		var resp AuditEventsResponse
		decodeBody(t, w, &resp)
		assert.Empty(t, resp.Events)
		assert.Equal(t, 7, resp.LastID)
	})

	t.Run("malformed cursor is rejected", func(t *testing.T) {
		w := serveRequest(s, http.MethodGet, "/api/v1/audits/"+a.ID+"/events?since_id=abc")
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w = serveRequest(s, http.MethodGet, "/api/v1/audits/"+a.ID+"/events?limit=many")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t, nil)

	w := serveRequest(s, http.MethodGet, "/metrics")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "specular_queue_depth")
}

func TestSecurityHeaders(t *testing.T) {
	s := newTestServer(t, nil)

	w := serveRequest(s, http.MethodGet, "/api/v1/health")
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "strict-origin-when-cross-origin", w.Header().Get("Referrer-Policy"))
}
