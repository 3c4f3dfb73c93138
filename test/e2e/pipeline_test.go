package e2e

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specularhq/specular/ent/audit"
	"github.com/specularhq/specular/ent/auditaggregate"
	"github.com/specularhq/specular/ent/auditanalysis"
	"github.com/specularhq/specular/ent/auditdashboard"
	"github.com/specularhq/specular/ent/auditquery"
	"github.com/specularhq/specular/ent/auditresponse"
	"github.com/specularhq/specular/pkg/events"
	"github.com/specularhq/specular/pkg/models"
)

// TestPipelineHappyPath drives one audit through every phase against four
// scripted providers and checks the persisted rows, the aggregate math, the
// dashboard, and both sides of the event feed.
func TestPipelineHappyPath(t *testing.T) {
	const queryCount = 48

	providerIDs := []string{"openai", "anthropic", "google", "perplexity"}
	scripted := make(map[string]*ScriptedProvider, len(providerIDs))
	for _, id := range providerIDs {
		p := NewScriptedProvider(id)
		HappyScript(p, "Acme Analytics", "Globex", queryCount)
		scripted[id] = p
	}

	app := NewTestApp(t, WithProviders(scripted))

	company := app.CreateCompany("Acme Analytics", []string{"Globex", "Initech"}, []string{"WidgetX"})

	// Subscribe before submitting so no NOTIFY frame is missed.
	auditID := uuid.New().String()
	sub, err := app.Dispatcher.Subscribe(context.Background(), events.AuditChannel(auditID))
	require.NoError(t, err)
	defer sub.Close()
	frames := CollectFrames(sub)

	_, err = app.Audits.Submit(context.Background(), models.SubmitAuditRequest{
		AuditID:    auditID,
		CompanyID:  company.ID,
		UserID:     "e2e-user",
		Providers:  providerIDs,
		QueryCount: queryCount,
	})
	require.NoError(t, err)

	done := app.AwaitStatus(auditID, audit.StatusCompleted, 60*time.Second)

	ctx := context.Background()

	t.Run("audit row", func(t *testing.T) {
		require.NotNil(t, done.StartedAt)
		require.NotNil(t, done.CompletedAt)
		require.NotNil(t, done.ProcessingTimeMs)
		require.NotNil(t, done.ClaimedBy)
		require.NotNil(t, done.OverallScore)
		require.NotNil(t, done.BrandMentionRate)
		assert.InDelta(t, 100.0, *done.BrandMentionRate, 0.01)
		assert.Nil(t, done.ErrorMessage)
	})

	t.Run("queries", func(t *testing.T) {
		queries, err := app.EntClient.AuditQuery.Query().
			Where(auditquery.AuditID(auditID)).
			All(ctx)
		require.NoError(t, err)
		require.Len(t, queries, queryCount)

		perCategory := make(map[string]int)
		for _, q := range queries {
			perCategory[string(q.Category)]++
		}
		assert.Len(t, perCategory, len(models.Categories))
		for category, n := range perCategory {
			assert.Equal(t, queryCount/len(models.Categories), n, "category %s", category)
		}
	})

	t.Run("responses", func(t *testing.T) {
		responses, err := app.EntClient.AuditResponse.Query().
			Where(auditresponse.AuditID(auditID)).
			All(ctx)
		require.NoError(t, err)
		require.Len(t, responses, len(providerIDs)*queryCount)

		perProvider := make(map[string]int)
		for _, r := range responses {
			assert.Nil(t, r.ErrorKind)
			assert.NotEmpty(t, r.Text)
			perProvider[r.Provider]++
		}
		for _, id := range providerIDs {
			assert.Equal(t, queryCount, perProvider[id], "provider %s", id)
		}
	})

	t.Run("analyses", func(t *testing.T) {
		analyses, err := app.EntClient.AuditAnalysis.Query().
			Where(auditanalysis.AuditID(auditID)).
			All(ctx)
		require.NoError(t, err)
		require.Len(t, analyses, len(providerIDs)*queryCount)

		for _, a := range analyses {
			assert.False(t, a.Errored)
			assert.True(t, a.BrandMentioned)
			require.NotNil(t, a.Sentiment)
			assert.Equal(t, auditanalysis.SentimentPositive, *a.Sentiment)
			assert.InDelta(t, 0.6, a.SentimentScore, 0.01)
			// Brand and known competitor each appear once, so share of
			// voice splits evenly.
			assert.InDelta(t, 50.0, a.SovScore, 0.01)
			assert.InDelta(t, 72.5, a.ContextCompleteness, 0.01)
			assert.InDelta(t, 64.0, a.RecommendationSignal, 0.01)
			require.Len(t, a.CompetitorsMentioned, 1)
			assert.Equal(t, "Globex", a.CompetitorsMentioned[0].Name)
			assert.True(t, a.CompetitorsMentioned[0].Known)
		}
	})

	t.Run("aggregate", func(t *testing.T) {
		agg, err := app.EntClient.AuditAggregate.Query().
			Where(auditaggregate.AuditID(auditID)).
			Only(ctx)
		require.NoError(t, err)

		total := len(providerIDs) * queryCount
		assert.Equal(t, total, agg.TotalResponses)
		assert.Equal(t, total, agg.AnalyzedResponses)
		assert.InDelta(t, 100.0, agg.VisibilityScore, 0.01)
		assert.InDelta(t, 50.0, agg.SovScore, 0.01)
		assert.InDelta(t, 80.0, agg.SentimentScore, 0.01) // 50*(0.6+1)
		assert.InDelta(t, 64.0, agg.RecommendationScore, 0.01)
		assert.InDelta(t, 72.5, agg.ContextCompleteness, 0.01)
		assert.Greater(t, agg.GeoScore, 0.0)

		// Overall is the weighted blend of the five components.
		wantOverall := 0.30*agg.GeoScore + 0.25*50 + 0.20*64 + 0.15*80 + 0.10*100
		assert.InDelta(t, wantOverall, agg.OverallScore, 0.1)

		// Only the competitor the responses actually name is counted; the
		// profile's other known competitor never comes up.
		assert.Equal(t, total, agg.CompetitorMentions["Globex"])
		assert.NotContains(t, agg.CompetitorMentions, "Initech")

		require.Len(t, agg.ProviderBreakdown, len(providerIDs))
		for _, id := range providerIDs {
			assert.Equal(t, queryCount, agg.ProviderBreakdown[id].Analyzed, "provider %s", id)
		}
		require.Len(t, agg.CategoryBreakdown, len(models.Categories))
		for category, b := range agg.CategoryBreakdown {
			assert.Equal(t, total/len(models.Categories), b.Analyzed, "category %s", category)
		}
	})

	t.Run("dashboard", func(t *testing.T) {
		dash, err := app.EntClient.AuditDashboard.Query().
			Where(auditdashboard.AuditID(auditID)).
			Only(ctx)
		require.NoError(t, err)

		assert.Contains(t, dash.ExecutiveSummary, "Acme Analytics")
		assert.InDelta(t, 100.0, dash.Scores.Visibility, 0.01)

		// Three distinct insight texts across all categories, deduplicated
		// and ranked by priority.
		require.Len(t, dash.Recommendations, 3)
		assert.Equal(t, "Ship a mid-market comparison page", dash.Recommendations[0].Text)
		assert.Equal(t, 8, dash.Recommendations[0].Priority)

		assert.Equal(t, len(providerIDs)*queryCount, dash.CompetitorLandscape.Counts["Globex"])
		assert.Len(t, dash.CategoryInsights, len(models.Categories))
	})

	t.Run("persisted event feed", func(t *testing.T) {
		var resp struct {
			AuditID string `json:"audit_id"`
			Events  []struct {
				ID      int            `json:"id"`
				Payload map[string]any `json:"payload"`
			} `json:"events"`
			LastID int `json:"last_id"`
		}
		status := app.GetJSON("/api/v1/audits/"+auditID+"/events", &resp)
		require.Equal(t, 200, status)
		require.Len(t, resp.Events, 6)

		var sequence []string
		for _, row := range resp.Events {
			if s, ok := row.Payload["status"].(string); ok {
				sequence = append(sequence, s)
			}
		}
		assert.Equal(t, []string{"processing", "analyzing", "scoring", "populating", "completed"}, sequence)
		last := resp.Events[len(resp.Events)-1].Payload
		assert.Equal(t, events.EventTypeDashboardReady, last["event"])
		assert.Equal(t, resp.Events[len(resp.Events)-1].ID, resp.LastID)
	})

	t.Run("live event frames", func(t *testing.T) {
		statuses := frames.Statuses()
		require.NotEmpty(t, statuses)
		assert.Equal(t, "processing", statuses[0])
		assert.Equal(t, "completed", statuses[len(statuses)-1])

		phases := frames.Phases()
		for _, phase := range []string{
			events.PhaseQueryGeneration,
			events.PhaseResponseCollection,
			events.PhaseAnalysis,
			events.PhaseScoring,
			events.PhasePopulation,
		} {
			assert.True(t, phases[phase], "missing progress phase %s", phase)
		}
		assert.True(t, frames.SawDashboardReady())
	})

	t.Run("provider call accounting", func(t *testing.T) {
		// One generation call on the analysis provider, no top-ups.
		assert.Equal(t, 1, scripted["openai"].Calls(KindGeneration))

		// Every provider answered its share of the query fan-out.
		for _, id := range providerIDs {
			assert.Equal(t, queryCount, scripted[id].Calls(KindCollection), "provider %s", id)
		}

		// Analysis subtasks all run on the analysis provider.
		total := len(providerIDs) * queryCount
		assert.Equal(t, total, scripted["openai"].Calls(KindSentiment))
		assert.Equal(t, total, scripted["openai"].Calls(KindCompetitors))
		assert.Equal(t, total, scripted["openai"].Calls(KindContext))
		assert.Equal(t, total, scripted["openai"].Calls(KindRecommendation))
		for _, id := range providerIDs[1:] {
			assert.Equal(t, 0, scripted[id].Calls(KindGeneration), "provider %s", id)
			assert.Equal(t, 0, scripted[id].Calls(KindSentiment), "provider %s", id)
		}

		// One insights call per buyer-journey category, one summary.
		assert.Equal(t, len(models.Categories), scripted["openai"].Calls(KindInsights))
		assert.Equal(t, 1, scripted["openai"].Calls(KindSummary))
	})
}
