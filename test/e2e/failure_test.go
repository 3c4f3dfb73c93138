package e2e

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specularhq/specular/ent/audit"
	"github.com/specularhq/specular/ent/auditaggregate"
	"github.com/specularhq/specular/ent/auditanalysis"
	"github.com/specularhq/specular/ent/auditdashboard"
	"github.com/specularhq/specular/ent/auditquery"
	"github.com/specularhq/specular/ent/auditresponse"
	"github.com/specularhq/specular/pkg/llm"
	"github.com/specularhq/specular/pkg/models"
)

// TestGenerationFarUnderTarget fails the audit when the first generation
// call yields under a quarter of the requested queries. Nothing downstream
// runs and no partial query set is persisted.
func TestGenerationFarUnderTarget(t *testing.T) {
	p := NewScriptedProvider("openai")
	HappyScript(p, "Acme Analytics", "Globex", 48)
	p.On(KindGeneration, func(_ context.Context, _ int, _ llm.CompletionRequest) (*llm.CompletionResponse, error) {
		return GenerationBatch(models.Categories, 5, 0), nil
	})

	app := NewTestApp(t, WithProviders(map[string]*ScriptedProvider{"openai": p}))
	company := app.CreateCompany("Acme Analytics", []string{"Globex"}, nil)
	a := app.SubmitAudit(company.ID, 48, []string{"openai"})

	failed := app.AwaitStatus(a.ID, audit.StatusFailed, 15*time.Second)
	require.NotNil(t, failed.ErrorMessage)
	assert.Contains(t, *failed.ErrorMessage, "insufficient queries generated")
	assert.Contains(t, *failed.ErrorMessage, "5 of 48")

	ctx := context.Background()
	queries, err := app.EntClient.AuditQuery.Query().
		Where(auditquery.AuditID(a.ID)).
		All(ctx)
	require.NoError(t, err)
	assert.Empty(t, queries)

	responses, err := app.EntClient.AuditResponse.Query().
		Where(auditresponse.AuditID(a.ID)).
		All(ctx)
	require.NoError(t, err)
	assert.Empty(t, responses)

	// Only the first call counts toward the threshold; no top-ups fire.
	assert.Equal(t, 1, p.Calls(KindGeneration))
	assert.Equal(t, 0, p.Calls(KindCollection))
}

// TestProviderOutageStillCompletes keeps the audit alive when one of four
// providers fails every call. The dead provider's cells persist as errored
// responses, analysis marks them errored without model work, and scoring
// averages only the healthy three quarters.
func TestProviderOutageStillCompletes(t *testing.T) {
	const queryCount = 48

	healthyIDs := []string{"openai", "anthropic", "google"}
	scripted := make(map[string]*ScriptedProvider, len(healthyIDs)+1)
	for _, id := range healthyIDs {
		p := NewScriptedProvider(id)
		HappyScript(p, "Acme Analytics", "Globex", queryCount)
		scripted[id] = p
	}
	perplexity := NewScriptedProvider("perplexity")
	perplexity.OnAll(RespondUnavailable("perplexity"))
	scripted["perplexity"] = perplexity

	app := NewTestApp(t, WithProviders(scripted))
	company := app.CreateCompany("Acme Analytics", []string{"Globex"}, nil)
	a := app.SubmitAudit(company.ID, queryCount, []string{"openai", "anthropic", "google", "perplexity"})

	app.AwaitStatus(a.ID, audit.StatusCompleted, 60*time.Second)

	ctx := context.Background()

	responses, err := app.EntClient.AuditResponse.Query().
		Where(auditresponse.AuditID(a.ID)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, responses, 4*queryCount)

	healthyPerProvider := make(map[string]int)
	erroredResponses := 0
	for _, r := range responses {
		if r.ErrorKind == nil {
			healthyPerProvider[r.Provider]++
			continue
		}
		erroredResponses++
		assert.Equal(t, "perplexity", r.Provider)
		assert.Equal(t, auditresponse.ErrorKindTransient, *r.ErrorKind)
		require.NotNil(t, r.ErrorMessage)
		assert.Contains(t, *r.ErrorMessage, "service unavailable")
	}
	assert.Equal(t, queryCount, erroredResponses)
	for _, id := range healthyIDs {
		assert.Equal(t, queryCount, healthyPerProvider[id], "provider %s", id)
	}

	analyses, err := app.EntClient.AuditAnalysis.Query().
		Where(auditanalysis.AuditID(a.ID)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, analyses, 4*queryCount)

	erroredAnalyses := 0
	for _, an := range analyses {
		if an.Errored {
			erroredAnalyses++
		}
	}
	assert.Equal(t, queryCount, erroredAnalyses)

	agg, err := app.EntClient.AuditAggregate.Query().
		Where(auditaggregate.AuditID(a.ID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4*queryCount, agg.TotalResponses)
	assert.Equal(t, 3*queryCount, agg.AnalyzedResponses)
	assert.InDelta(t, 100.0, agg.VisibilityScore, 0.01)

	// The dead provider has no analyzed rows, so it never earns a
	// breakdown entry.
	require.Len(t, agg.ProviderBreakdown, len(healthyIDs))
	assert.NotContains(t, agg.ProviderBreakdown, "perplexity")
	for _, id := range healthyIDs {
		assert.Equal(t, queryCount, agg.ProviderBreakdown[id].Analyzed, "provider %s", id)
	}

	exists, err := app.EntClient.AuditDashboard.Query().
		Where(auditdashboard.AuditID(a.ID)).
		Exist(ctx)
	require.NoError(t, err)
	assert.True(t, exists)

	// Each dead cell is attempted twice under the tight retry policy, and
	// analysis never sends errored responses to the model.
	assert.Equal(t, 2*queryCount, perplexity.Calls(KindCollection))
	assert.Equal(t, 3*queryCount, scripted["openai"].Calls(KindSentiment))
}

// TestGenerationTopUpKeepsPartialSet accepts a short query set once top-ups
// stop producing new uniques: a first call at exactly the quarter floor
// passes, and above it the pipeline runs to completion on what it has.
func TestGenerationTopUpKeepsPartialSet(t *testing.T) {
	p := NewScriptedProvider("openai")
	HappyScript(p, "Acme Analytics", "Globex", 48)
	p.On(KindGeneration, func(_ context.Context, call int, _ llm.CompletionRequest) (*llm.CompletionResponse, error) {
		switch call {
		case 0:
			return GenerationBatch(models.Categories, 12, 0), nil
		case 1:
			// Offset keeps the texts distinct from the first batch.
			return GenerationBatch(models.Categories, 8, 100), nil
		default:
			return GenerationBatch(models.Categories, 0, 0), nil
		}
	})

	app := NewTestApp(t, WithProviders(map[string]*ScriptedProvider{"openai": p}))
	company := app.CreateCompany("Acme Analytics", []string{"Globex"}, nil)
	a := app.SubmitAudit(company.ID, 48, []string{"openai"})

	app.AwaitStatus(a.ID, audit.StatusCompleted, 30*time.Second)

	ctx := context.Background()
	queries, err := app.EntClient.AuditQuery.Query().
		Where(auditquery.AuditID(a.ID)).
		All(ctx)
	require.NoError(t, err)
	assert.Len(t, queries, 20)

	responses, err := app.EntClient.AuditResponse.Query().
		Where(auditresponse.AuditID(a.ID)).
		All(ctx)
	require.NoError(t, err)
	assert.Len(t, responses, 20)

	agg, err := app.EntClient.AuditAggregate.Query().
		Where(auditaggregate.AuditID(a.ID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, 20, agg.TotalResponses)
	assert.Equal(t, 20, agg.AnalyzedResponses)

	// First call, one productive top-up, one empty top-up.
	assert.Equal(t, 3, p.Calls(KindGeneration))
}
