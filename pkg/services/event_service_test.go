package services

import (
	"context"
	"testing"
	"time"

	"github.com/specularhq/specular/ent"
	"github.com/specularhq/specular/pkg/database"
	testdb "github.com/specularhq/specular/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedEvent(t *testing.T, client *database.Client, auditID, channel, status string) *ent.AuditEvent {
	t.Helper()
	e, err := client.AuditEvent.Create().
		SetAuditID(auditID).
		SetChannel(channel).
		SetPayload(map[string]interface{}{"type": "status", "status": status}).
		Save(context.Background())
	require.NoError(t, err)
	return e
}

func TestEventService_GetEventsSince(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewEventService(client.Client)
	ctx := context.Background()
	co := seedCompany(t, client)
	a := seedAudit(t, client, co.ID)
	channel := "audit:" + a.ID

	e1 := seedEvent(t, client, a.ID, channel, "processing")
	e2 := seedEvent(t, client, a.ID, channel, "analyzing")
	e3 := seedEvent(t, client, a.ID, channel, "completed")
	seedEvent(t, client, a.ID, "audits", "completed") // other channel

	t.Run("returns full channel history from zero", func(t *testing.T) {
		events, err := service.GetEventsSince(ctx, channel, 0, 0)
		require.NoError(t, err)
		require.Len(t, events, 3)
		assert.Equal(t, e1.ID, events[0].ID)
		assert.Equal(t, e3.ID, events[2].ID)
		assert.Equal(t, "processing", events[0].Payload["status"])
	})

	t.Run("resumes after sinceID", func(t *testing.T) {
		events, err := service.GetEventsSince(ctx, channel, e1.ID, 0)
		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, e2.ID, events[0].ID)
	})

	t.Run("limit caps the page", func(t *testing.T) {
		events, err := service.GetEventsSince(ctx, channel, 0, 2)
		require.NoError(t, err)
		assert.Len(t, events, 2)
	})

	t.Run("unknown channel is empty", func(t *testing.T) {
		events, err := service.GetEventsSince(ctx, "audit:nope", 0, 0)
		require.NoError(t, err)
		assert.Empty(t, events)
	})
}

func TestEventService_CleanupOldEvents(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewEventService(client.Client)
	ctx := context.Background()
	co := seedCompany(t, client)
	a := seedAudit(t, client, co.ID)
	channel := "audit:" + a.ID

	old := seedEvent(t, client, a.ID, channel, "processing")
	require.NoError(t, client.AuditEvent.UpdateOneID(old.ID).
		SetCreatedAt(time.Now().Add(-48*time.Hour)).
		Exec(ctx))
	fresh := seedEvent(t, client, a.ID, channel, "completed")

	t.Run("deletes only expired events", func(t *testing.T) {
		deleted, err := service.CleanupOldEvents(ctx, 24*time.Hour)
		require.NoError(t, err)
		assert.Equal(t, 1, deleted)

		remaining, err := service.GetEventsSince(ctx, channel, 0, 0)
		require.NoError(t, err)
		require.Len(t, remaining, 1)
		assert.Equal(t, fresh.ID, remaining[0].ID)
	})

	t.Run("non-positive ttl rejected", func(t *testing.T) {
		_, err := service.CleanupOldEvents(ctx, 0)
		assert.True(t, IsValidationError(err))
	})
}
