package e2e

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specularhq/specular/ent/audit"
	"github.com/specularhq/specular/ent/auditaggregate"
	"github.com/specularhq/specular/ent/auditanalysis"
	"github.com/specularhq/specular/ent/auditdashboard"
	"github.com/specularhq/specular/ent/auditresponse"
	"github.com/specularhq/specular/pkg/llm"
)

// TestCancelMidAnalysis cancels the in-process audit context while analysis
// is in flight. Analyses persisted before the cancel survive; in-flight rows
// are discarded, and nothing downstream of analysis runs.
func TestCancelMidAnalysis(t *testing.T) {
	const queryCount = 12

	p := NewScriptedProvider("openai")
	HappyScript(p, "Acme Analytics", "Globex", queryCount)

	// Competitor discovery is the first model call of each analysis. Let
	// four analyses through, then hold every later one until released.
	held := make(chan struct{})
	var releaseOnce sync.Once
	release := func() { releaseOnce.Do(func() { close(held) }) }
	defer release()
	respond := RespondJSON(map[string]any{"competitors": []string{"Globex"}})
	p.On(KindCompetitors, func(ctx context.Context, call int, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
		if call >= 4 {
			<-held
		}
		return respond(ctx, call, req)
	})

	app := NewTestApp(t, WithProviders(map[string]*ScriptedProvider{"openai": p}))
	company := app.CreateCompany("Acme Analytics", []string{"Globex"}, nil)
	a := app.SubmitAudit(company.ID, queryCount, []string{"openai"})

	ctx := context.Background()
	analysesCount := func() int {
		n, err := app.EntClient.AuditAnalysis.Query().
			Where(auditanalysis.AuditID(a.ID)).
			Count(ctx)
		require.NoError(t, err)
		return n
	}

	app.Await(20*time.Second, "first analysis wave to persist", func() bool {
		return analysesCount() >= 4
	})

	require.True(t, app.WorkerPool.CancelAudit(a.ID), "audit should be claimed by this pool")
	release()

	app.AwaitStatus(a.ID, audit.StatusCancelled, 15*time.Second)

	// The held analyses observe the cancelled context after their model
	// call returns and are dropped without persisting.
	assert.Equal(t, 4, analysesCount())

	aggExists, err := app.EntClient.AuditAggregate.Query().
		Where(auditaggregate.AuditID(a.ID)).
		Exist(ctx)
	require.NoError(t, err)
	assert.False(t, aggExists)

	dashExists, err := app.EntClient.AuditDashboard.Query().
		Where(auditdashboard.AuditID(a.ID)).
		Exist(ctx)
	require.NoError(t, err)
	assert.False(t, dashExists)

	var resp struct {
		Events []struct {
			Payload map[string]any `json:"payload"`
		} `json:"events"`
	}
	status := app.GetJSON("/api/v1/audits/"+a.ID+"/events", &resp)
	require.Equal(t, 200, status)
	var sequence []string
	for _, row := range resp.Events {
		if s, ok := row.Payload["status"].(string); ok {
			sequence = append(sequence, s)
		}
	}
	assert.Equal(t, []string{"processing", "analyzing", "cancelled"}, sequence)
}

// TestCancelRequestObservedAtPhaseBoundary sets the persisted cancel flag
// while response collection is running. Collection finishes its fan-out, the
// boundary check sees the flag, and the audit lands cancelled with every
// response kept but nothing analyzed.
func TestCancelRequestObservedAtPhaseBoundary(t *testing.T) {
	const queryCount = 12

	p := NewScriptedProvider("openai")
	HappyScript(p, "Acme Analytics", "Globex", queryCount)

	started := make(chan struct{})
	release := make(chan struct{})
	var startedOnce, releaseOnce sync.Once
	p.On(KindCollection, func(_ context.Context, _ int, _ llm.CompletionRequest) (*llm.CompletionResponse, error) {
		startedOnce.Do(func() { close(started) })
		<-release
		return Text("Acme Analytics is a strong choice for mid-market teams. Globex is the main alternative."), nil
	})
	defer releaseOnce.Do(func() { close(release) })

	app := NewTestApp(t, WithProviders(map[string]*ScriptedProvider{"openai": p}))
	company := app.CreateCompany("Acme Analytics", []string{"Globex"}, nil)
	a := app.SubmitAudit(company.ID, queryCount, []string{"openai"})

	select {
	case <-started:
	case <-time.After(15 * time.Second):
		t.Fatal("collection never started")
	}

	st, err := app.Audits.RequestCancel(context.Background(), a.ID)
	require.NoError(t, err)
	assert.Equal(t, audit.StatusCancelRequested, st)

	releaseOnce.Do(func() { close(release) })

	app.AwaitStatus(a.ID, audit.StatusCancelled, 15*time.Second)

	ctx := context.Background()
	responses, err := app.EntClient.AuditResponse.Query().
		Where(auditresponse.AuditID(a.ID)).
		All(ctx)
	require.NoError(t, err)
	assert.Len(t, responses, queryCount)

	analyses, err := app.EntClient.AuditAnalysis.Query().
		Where(auditanalysis.AuditID(a.ID)).
		Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, analyses)

	// The boundary check runs before the analyzing transition, so the
	// feed never shows analysis starting.
	var resp struct {
		Events []struct {
			Payload map[string]any `json:"payload"`
		} `json:"events"`
	}
	status := app.GetJSON("/api/v1/audits/"+a.ID+"/events", &resp)
	require.Equal(t, 200, status)
	var sequence []string
	for _, row := range resp.Events {
		if s, ok := row.Payload["status"].(string); ok {
			sequence = append(sequence, s)
		}
	}
	assert.Equal(t, []string{"processing", "cancelled"}, sequence)
}
