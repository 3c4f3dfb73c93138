package e2e

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specularhq/specular/ent/audit"
	"github.com/specularhq/specular/ent/auditevent"
	"github.com/specularhq/specular/pkg/events"
	"github.com/specularhq/specular/pkg/models"
	testdb "github.com/specularhq/specular/test/database"
)

// TestTwoReplicasShareTheQueue runs two app instances against one schema.
// Every audit completes, each is claimed by exactly one worker, and NOTIFY
// frames reach a subscriber regardless of which replica did the work.
func TestTwoReplicasShareTheQueue(t *testing.T) {
	shared := testdb.NewSharedTestDB(t)

	appA := NewTestApp(t,
		WithDBClient(shared.NewClient(t)),
		WithListenConn(shared.BaseConnStr()),
		WithReplicaID("replica-a"))
	appB := NewTestApp(t,
		WithDBClient(shared.NewClient(t)),
		WithListenConn(shared.BaseConnStr()),
		WithReplicaID("replica-b"))

	company := appA.CreateCompany("Acme Analytics", []string{"Globex"}, nil)

	// Watch one audit's channel on replica A; replica B may well be the
	// one that processes it.
	watchedID := uuid.New().String()
	sub, err := appA.Dispatcher.Subscribe(context.Background(), events.AuditChannel(watchedID))
	require.NoError(t, err)
	defer sub.Close()
	frames := CollectFrames(sub)

	auditIDs := []string{watchedID, uuid.New().String(), uuid.New().String(), uuid.New().String()}
	for _, id := range auditIDs {
		_, err := appA.Audits.Submit(context.Background(), models.SubmitAuditRequest{
			AuditID:    id,
			CompanyID:  company.ID,
			UserID:     "e2e-user",
			Providers:  []string{"openai"},
			QueryCount: 12,
		})
		require.NoError(t, err)
	}

	for _, id := range auditIDs {
		appA.AwaitStatus(id, audit.StatusCompleted, 60*time.Second)
	}

	ctx := context.Background()
	claims := make(map[string]int)
	for _, id := range auditIDs {
		a, err := appA.EntClient.Audit.Get(ctx, id)
		require.NoError(t, err)
		require.NotNil(t, a.ClaimedBy)

		var replica string
		switch {
		case strings.HasPrefix(*a.ClaimedBy, "replica-a-worker-"):
			replica = "replica-a"
		case strings.HasPrefix(*a.ClaimedBy, "replica-b-worker-"):
			replica = "replica-b"
		default:
			t.Fatalf("audit %s claimed by unexpected worker %q", id, *a.ClaimedBy)
		}
		claims[replica]++

		// Exactly one claim ever happened: a second claimant would have
		// published a second processing event.
		rows, err := appA.EntClient.AuditEvent.Query().
			Where(auditevent.Channel(events.AuditChannel(id))).
			All(ctx)
		require.NoError(t, err)
		processing := 0
		for _, row := range rows {
			if row.Payload["status"] == "processing" {
				processing++
			}
		}
		assert.Equal(t, 1, processing, "audit %s", id)
	}
	total := 0
	for _, n := range claims {
		total += n
	}
	assert.Equal(t, len(auditIDs), total)
	t.Logf("claim split: %v", claims)

	// Postgres fans the watched audit's events out to replica A's
	// dispatcher even when replica B ran it.
	appA.Await(10*time.Second, "watched audit frames", func() bool {
		statuses := frames.Statuses()
		return len(statuses) > 0 && statuses[len(statuses)-1] == "completed"
	})
	assert.True(t, frames.SawDashboardReady())

	// Both pools report healthy over their own ops servers.
	for _, app := range []*TestApp{appA, appB} {
		var health struct {
			IsHealthy bool `json:"is_healthy"`
		}
		code := app.GetJSON("/api/v1/queue/health", &health)
		require.Equal(t, 200, code)
		assert.True(t, health.IsHealthy)
	}
}
