package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/specularhq/specular/ent"
	"github.com/specularhq/specular/pkg/config"
	"github.com/specularhq/specular/pkg/database"
	"github.com/specularhq/specular/pkg/services"
	testdb "github.com/specularhq/specular/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testChannel = "audit:cleanup-test"

func seedAuditRow(t *testing.T, client *database.Client) *ent.Audit {
	t.Helper()
	ctx := context.Background()

	co, err := client.Company.Create().
		SetID(uuid.New().String()).
		SetName("Acme Analytics").
		SetDescription("Product analytics for mid-market teams").
		Save(ctx)
	require.NoError(t, err)

	a, err := client.Audit.Create().
		SetID(uuid.New().String()).
		SetCompanyID(co.ID).
		SetUserID("test-user").
		SetProviders([]string{"openai"}).
		SetQueryCount(10).
		Save(ctx)
	require.NoError(t, err)
	return a
}

func seedEvent(t *testing.T, client *database.Client, auditID string, age time.Duration) {
	t.Helper()
	_, err := client.AuditEvent.Create().
		SetAuditID(auditID).
		SetChannel(testChannel).
		SetPayload(map[string]any{"type": "audit.status"}).
		SetCreatedAt(time.Now().Add(-age)).
		Save(context.Background())
	require.NoError(t, err)
}

func TestService_DeletesExpiredEvents(t *testing.T) {
	client := testdb.NewTestClient(t)
	eventService := services.NewEventService(client.Client)
	ctx := context.Background()

	a := seedAuditRow(t, client)
	seedEvent(t, client, a.ID, 2*time.Hour)
	seedEvent(t, client, a.ID, 0)

	cfg := &config.RetentionConfig{
		EventTTL:        1 * time.Hour,
		CleanupInterval: 1 * time.Hour,
	}
	svc := NewService(cfg, eventService)
	svc.sweep(ctx)

	events, err := eventService.GetEventsSince(ctx, testChannel, 0, 0)
	require.NoError(t, err)
	assert.Len(t, events, 1, "expired event should be deleted, recent event preserved")
}

func TestService_StartRunsInitialSweep(t *testing.T) {
	client := testdb.NewTestClient(t)
	eventService := services.NewEventService(client.Client)
	ctx := context.Background()

	a := seedAuditRow(t, client)
	seedEvent(t, client, a.ID, 2*time.Hour)

	cfg := &config.RetentionConfig{
		EventTTL:        1 * time.Hour,
		CleanupInterval: 1 * time.Hour,
	}
	svc := NewService(cfg, eventService)
	svc.Start(ctx)
	defer svc.Stop()

	// The loop sweeps once on start, before the first tick.
	deadline := time.After(5 * time.Second)
	for {
		events, err := eventService.GetEventsSince(ctx, testChannel, 0, 0)
		require.NoError(t, err)
		if len(events) == 0 {
			return
		}
		select {
		case <-deadline:
			t.Fatalf("expired event not deleted by initial sweep, %d remaining", len(events))
		case <-time.After(50 * time.Millisecond):
		}
	}
}
