package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/specularhq/specular/ent"
	"github.com/specularhq/specular/ent/audit"
	"github.com/specularhq/specular/ent/auditevent"
	"github.com/specularhq/specular/pkg/database"
	testdb "github.com/specularhq/specular/test/database"
	"github.com/specularhq/specular/test/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// egressTestEnv holds all wired-up components for an integration test.
type egressTestEnv struct {
	dbClient   *database.Client
	publisher  *Publisher
	dispatcher *Dispatcher
	listener   *NotifyListener
	auditID    string // Pre-created Audit (satisfies FK on audit_events)
	channel    string // audit:<auditID>
}

// setupEgressTest wires publisher, listener, and dispatcher together against
// a real PostgreSQL database (testcontainers locally, service container in CI).
func setupEgressTest(t *testing.T) *egressTestEnv {
	t.Helper()

	dbClient := testdb.NewTestClient(t)
	ctx := context.Background()

	// Create the Company and Audit required by the FK on audit_events
	companyID := uuid.New().String()
	_, err := dbClient.Company.Create().
		SetID(companyID).
		SetName("Acme Analytics").
		SetDescription("Analytics platform for mid-market retailers").
		Save(ctx)
	require.NoError(t, err)

	auditID := uuid.New().String()
	_, err = dbClient.Audit.Create().
		SetID(auditID).
		SetCompanyID(companyID).
		SetUserID("integration-test").
		SetProviders([]string{"openai"}).
		SetQueryCount(48).
		Save(ctx)
	require.NoError(t, err)

	publisher := NewPublisher(dbClient.DB())
	dispatcher := NewDispatcher()

	// NotifyListener needs the base connection string (no schema search_path)
	// because NOTIFY/LISTEN is database-level, not schema-level.
	baseConnStr := util.GetBaseConnectionString(t)
	listener := NewNotifyListener(baseConnStr, dispatcher)
	require.NoError(t, listener.Start(ctx))
	dispatcher.SetListener(listener)

	t.Cleanup(func() { listener.Stop(context.Background()) })

	return &egressTestEnv{
		dbClient:   dbClient,
		publisher:  publisher,
		dispatcher: dispatcher,
		listener:   listener,
		auditID:    auditID,
		channel:    AuditChannel(auditID),
	}
}

// subscribe opens a dispatcher subscription. LISTEN is synchronous inside
// Subscribe, so events published after it returns will be observed.
func (env *egressTestEnv) subscribe(t *testing.T, channel string) *Subscription {
	t.Helper()
	sub, err := env.dispatcher.Subscribe(context.Background(), channel)
	require.NoError(t, err)
	t.Cleanup(sub.Close)
	return sub
}

// readEventTimeout reads one JSON event from the subscription with a timeout.
func readEventTimeout(t *testing.T, sub *Subscription, timeout time.Duration) map[string]interface{} {
	t.Helper()
	select {
	case data, ok := <-sub.C:
		require.True(t, ok, "subscription closed unexpectedly")
		var msg map[string]interface{}
		require.NoError(t, json.Unmarshal(data, &msg))
		return msg
	case <-time.After(timeout):
		t.Fatal("timed out waiting for event")
		return nil
	}
}

// persistedEvents queries audit_events for the channel, oldest first.
func (env *egressTestEnv) persistedEvents(t *testing.T) []*ent.AuditEvent {
	t.Helper()
	rows, err := env.dbClient.AuditEvent.Query().
		Where(auditevent.ChannelEQ(env.channel)).
		Order(ent.Asc(auditevent.FieldID)).
		All(context.Background())
	require.NoError(t, err)
	return rows
}

// --- Tests ---

func TestIntegration_StatusPersistsAndNotifies(t *testing.T) {
	env := setupEgressTest(t)
	ctx := context.Background()

	auditSub := env.subscribe(t, env.channel)
	globalSub := env.subscribe(t, GlobalAuditsChannel)

	err := env.publisher.PublishStatus(ctx, env.auditID, StatusPayload{
		Type:      EventTypeStatus,
		AuditID:   env.auditID,
		Status:    audit.StatusProcessing,
		Timestamp: NowRFC3339(),
	})
	require.NoError(t, err)

	// Audit channel delivery carries db_event_id (added after the INSERT)
	msg := readEventTimeout(t, auditSub, 5*time.Second)
	assert.Equal(t, EventTypeStatus, msg["type"])
	assert.Equal(t, env.auditID, msg["audit_id"])
	assert.Equal(t, "processing", msg["status"])
	assert.NotNil(t, msg["db_event_id"])

	// Global channel copy is transient: no db_event_id
	globalMsg := readEventTimeout(t, globalSub, 5*time.Second)
	assert.Equal(t, EventTypeStatus, globalMsg["type"])
	assert.Equal(t, env.auditID, globalMsg["audit_id"])
	assert.Nil(t, globalMsg["db_event_id"])

	// Exactly one row persisted, on the audit channel
	rows := env.persistedEvents(t)
	require.Len(t, rows, 1)
	assert.Equal(t, env.auditID, rows[0].AuditID)
	assert.Equal(t, env.channel, rows[0].Channel)
	assert.Equal(t, EventTypeStatus, rows[0].Payload["type"])
	assert.Equal(t, "processing", rows[0].Payload["status"])
}

func TestIntegration_ProgressIsTransient(t *testing.T) {
	env := setupEgressTest(t)
	ctx := context.Background()

	sub := env.subscribe(t, env.channel)

	for seq := 1; seq <= 3; seq++ {
		err := env.publisher.PublishProgress(ctx, env.auditID, ProgressPayload{
			Type:      EventTypeProgress,
			AuditID:   env.auditID,
			Phase:     PhaseResponseCollection,
			Completed: seq * 8,
			Total:     96,
			Timestamp: NowRFC3339(),
			Sequence:  seq,
		})
		require.NoError(t, err)
	}

	// Ticks arrive in publish order; sequence lets consumers drop stale ones
	for seq := 1; seq <= 3; seq++ {
		msg := readEventTimeout(t, sub, 5*time.Second)
		assert.Equal(t, EventTypeProgress, msg["type"])
		assert.Equal(t, PhaseResponseCollection, msg["phase"])
		assert.Equal(t, float64(seq), msg["sequence"])
		assert.Equal(t, float64(seq*8), msg["completed"])
		assert.Equal(t, float64(96), msg["total"])
	}

	assert.Empty(t, env.persistedEvents(t), "progress ticks should not be persisted")
}

func TestIntegration_DashboardReadyPersistsAndNotifies(t *testing.T) {
	env := setupEgressTest(t)
	ctx := context.Background()

	sub := env.subscribe(t, env.channel)

	require.NoError(t, env.publisher.PublishDashboardReady(ctx, env.auditID))

	msg := readEventTimeout(t, sub, 5*time.Second)
	assert.Equal(t, EventTypeDashboardReady, msg["event"])
	assert.Equal(t, env.auditID, msg["audit_id"])
	assert.NotNil(t, msg["db_event_id"])

	rows := env.persistedEvents(t)
	require.Len(t, rows, 1)
	assert.Equal(t, EventTypeDashboardReady, rows[0].Payload["event"])
}

func TestIntegration_CatchupFromTable(t *testing.T) {
	env := setupEgressTest(t)
	ctx := context.Background()

	// Publish the full status progression with no subscriber attached
	statuses := []audit.Status{
		audit.StatusProcessing,
		audit.StatusAnalyzing,
		audit.StatusCompleted,
	}
	for _, s := range statuses {
		err := env.publisher.PublishStatus(ctx, env.auditID, StatusPayload{
			Type:      EventTypeStatus,
			AuditID:   env.auditID,
			Status:    s,
			Timestamp: NowRFC3339(),
		})
		require.NoError(t, err)
	}

	// A late consumer can reconstruct the progression from audit_events
	rows := env.persistedEvents(t)
	require.Len(t, rows, 3)
	for i, s := range statuses {
		assert.Equal(t, string(s), rows[i].Payload["status"])
	}
	assert.Greater(t, rows[1].ID, rows[0].ID)
	assert.Greater(t, rows[2].ID, rows[1].ID)
}

func TestIntegration_UnlistenAfterLastSubscriber(t *testing.T) {
	env := setupEgressTest(t)
	ctx := context.Background()

	sub := env.subscribe(t, env.channel)
	require.Equal(t, 1, env.dispatcher.SubscriberCount(env.channel))
	sub.Close()
	require.Equal(t, 0, env.dispatcher.SubscriberCount(env.channel))

	// Give the async UNLISTEN time to land so the resubscribe below has to
	// re-issue LISTEN rather than ride the old registration.
	time.Sleep(100 * time.Millisecond)

	// Resubscribing re-issues LISTEN and delivery resumes
	sub2 := env.subscribe(t, env.channel)
	err := env.publisher.PublishStatus(ctx, env.auditID, StatusPayload{
		Type:      EventTypeStatus,
		AuditID:   env.auditID,
		Status:    audit.StatusScoring,
		Timestamp: NowRFC3339(),
	})
	require.NoError(t, err)

	msg := readEventTimeout(t, sub2, 5*time.Second)
	assert.Equal(t, "scoring", msg["status"])
}
