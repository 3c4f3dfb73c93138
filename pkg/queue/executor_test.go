package queue

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/specularhq/specular/ent"
	"github.com/specularhq/specular/ent/audit"
	"github.com/specularhq/specular/ent/auditanalysis"
	"github.com/specularhq/specular/ent/auditquery"
	"github.com/specularhq/specular/ent/auditresponse"
	"github.com/specularhq/specular/ent/schema"
	"github.com/specularhq/specular/pkg/analyzer"
	"github.com/specularhq/specular/pkg/events"
	"github.com/specularhq/specular/pkg/models"
	"github.com/specularhq/specular/pkg/orchestrator"
	"github.com/specularhq/specular/pkg/querygen"
	"github.com/specularhq/specular/pkg/services"
	testdb "github.com/specularhq/specular/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testFunnelCategories = []auditquery.Category{
	auditquery.CategoryProblemUnaware,
	auditquery.CategoryProblemAware,
	auditquery.CategorySolutionAware,
	auditquery.CategoryProductAware,
	auditquery.CategoryMostAware,
	auditquery.CategoryBrandDefense,
}

// fakeGenerator returns n synthetic queries cycling through the funnel
// categories.
type fakeGenerator struct {
	err error
}

func (g *fakeGenerator) Generate(_ context.Context, _ *ent.Company, n int) ([]models.GeneratedQuery, error) {
	if g.err != nil {
		return nil, g.err
	}
	queries := make([]models.GeneratedQuery, 0, n)
	for i := 0; i < n; i++ {
		queries = append(queries, models.GeneratedQuery{
			Text:     fmt.Sprintf("how do teams pick an analytics platform %d", i),
			Category: string(testFunnelCategories[i%len(testFunnelCategories)]),
			Priority: 0.5,
		})
	}
	return queries, nil
}

// fakeCollector persists one successful response per query x provider cell.
type fakeCollector struct {
	client *ent.Client
	err    error
}

func (c *fakeCollector) Collect(ctx context.Context, auditID string, queries []*ent.AuditQuery, providers []string, progress orchestrator.ProgressFunc) (*orchestrator.Result, error) {
	if c.err != nil {
		return nil, c.err
	}
	total := len(queries) * len(providers)
	done := 0
	for _, q := range queries {
		for _, p := range providers {
			_, err := c.client.AuditResponse.Create().
				SetID(uuid.New().String()).
				SetAuditID(auditID).
				SetQueryID(q.ID).
				SetProvider(p).
				SetText("Acme Analytics is a solid mid-market option.").
				Save(ctx)
			if err != nil {
				return nil, err
			}
			done++
			if progress != nil {
				progress(done, total)
			}
		}
	}
	return &orchestrator.Result{Total: total, Succeeded: total}, nil
}

// fakeAnalyzer persists one analysis per response. Relies on the eager-loaded
// query edge for the category.
type fakeAnalyzer struct {
	client *ent.Client
	err    error
}

func (a *fakeAnalyzer) Analyze(ctx context.Context, auditID string, _ *ent.Company, responses []*ent.AuditResponse, progress analyzer.ProgressFunc) (*analyzer.Result, error) {
	if a.err != nil {
		return nil, a.err
	}
	for i, r := range responses {
		_, err := a.client.AuditAnalysis.Create().
			SetID(uuid.New().String()).
			SetAuditID(auditID).
			SetResponseID(r.ID).
			SetProvider(r.Provider).
			SetCategory(auditanalysis.Category(r.Edges.Query.Category)).
			SetBrandMentioned(true).
			SetGeoScore(70).
			Save(ctx)
		if err != nil {
			return nil, err
		}
		if progress != nil {
			progress(i+1, len(responses))
		}
	}
	return &analyzer.Result{Total: len(responses), Analyzed: len(responses)}, nil
}

// fakeScorer persists a fixed aggregate through the real service.
type fakeScorer struct {
	aggregates *services.AggregateService
	err        error
}

func (s *fakeScorer) Score(ctx context.Context, auditID string, analyses []*ent.AuditAnalysis) (*models.AggregateRecord, error) {
	if s.err != nil {
		return nil, s.err
	}
	rec := models.AggregateRecord{
		AuditID:           auditID,
		Overall:           61.45,
		Visibility:        58.3,
		TotalResponses:    len(analyses),
		AnalyzedResponses: len(analyses),
	}
	if _, err := s.aggregates.SaveAggregate(ctx, rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// fakeExtractor returns a single ranked recommendation.
type fakeExtractor struct {
	err error
}

func (e *fakeExtractor) Extract(_ context.Context, _ *ent.Company, _ []*ent.AuditAnalysis) ([]schema.RankedRecommendation, error) {
	if e.err != nil {
		return nil, e.err
	}
	return []schema.RankedRecommendation{
		{
			Text:     "Publish a comparison page for mid-market analytics buyers",
			Kind:     "content",
			Category: string(auditquery.CategorySolutionAware),
			Priority: 1,
		},
	}, nil
}

// fakePopulator persists a dashboard through the real service.
type fakePopulator struct {
	dashboards *services.DashboardService
	err        error
}

func (p *fakePopulator) Populate(ctx context.Context, _ *ent.Company, agg *ent.AuditAggregate, _ []*ent.AuditQuery, recommendations []schema.RankedRecommendation) (*ent.AuditDashboard, error) {
	if p.err != nil {
		return nil, p.err
	}
	return p.dashboards.SaveDashboard(ctx, models.DashboardRecord{
		AuditID: agg.AuditID,
		Scores: schema.DashboardScores{
			Overall:    agg.OverallScore,
			Visibility: agg.VisibilityScore,
		},
		Recommendations:  recommendations,
		ExecutiveSummary: "Synthetic summary for pipeline tests.",
	})
}

// happyStages wires every stage to a persisting fake.
func happyStages(client *ent.Client) Stages {
	return Stages{
		Generator: &fakeGenerator{},
		Collector: &fakeCollector{client: client},
		Analyzer:  &fakeAnalyzer{client: client},
		Scorer:    &fakeScorer{aggregates: services.NewAggregateService(client)},
		Extractor: &fakeExtractor{},
		Populator: &fakePopulator{dashboards: services.NewDashboardService(client)},
	}
}

func newTestExecutor(client *ent.Client, stages Stages, pub EventPublisher) *PipelineExecutor {
	audits := services.NewAuditService(client, []string{"openai", "anthropic"}, 48)
	return NewPipelineExecutor(client, audits, stages, pub)
}

// createClaimedAudit creates an audit already claimed by a worker, in the
// given phase status. Execute assumes the claim happened.
func createClaimedAudit(ctx context.Context, t *testing.T, client *ent.Client, companyID string, status audit.Status) *ent.Audit {
	t.Helper()
	a, err := client.Audit.Create().
		SetID(uuid.New().String()).
		SetCompanyID(companyID).
		SetUserID("test-user").
		SetProviders([]string{"openai", "anthropic"}).
		SetQueryCount(6).
		SetStatus(status).
		SetClaimedBy("test-replica-worker-0").
		SetStartedAt(time.Now()).
		SetHeartbeatAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)
	return a
}

// TestPipelineExecutorHappyPath drives an audit through every phase and
// verifies the persisted artifacts and the event stream.
func TestPipelineExecutorHappyPath(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	company := createTestCompany(ctx, t, client)
	a := createClaimedAudit(ctx, t, client, company.ID, audit.StatusProcessing)

	pub := &capturingPublisher{}
	executor := newTestExecutor(client, happyStages(client), pub)

	result := executor.Execute(ctx, a)
	require.NotNil(t, result)
	require.NoError(t, result.Err)
	assert.Equal(t, audit.StatusCompleted, result.Status)

	// Every artifact row should exist: the query set, the full query x
	// provider response matrix, one analysis per response, the aggregate,
	// and the dashboard.
	queryCount, err := client.AuditQuery.Query().
		Where(auditquery.AuditIDEQ(a.ID)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, a.QueryCount, queryCount)

	responseCount, err := client.AuditResponse.Query().
		Where(auditresponse.AuditIDEQ(a.ID)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, a.QueryCount*len(a.Providers), responseCount)

	analysisCount, err := client.AuditAnalysis.Query().
		Where(auditanalysis.AuditIDEQ(a.ID)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, responseCount, analysisCount)

	agg, err := services.NewAggregateService(client).GetByAudit(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, responseCount, agg.TotalResponses)

	dash, err := services.NewDashboardService(client).GetByAudit(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, a.ID, dash.AuditID)

	// The terminal write belongs to the worker; Execute leaves the audit in
	// the last phase status.
	updated, err := client.Audit.Get(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, audit.StatusPopulating, updated.Status)

	// Phase transitions published in order.
	statuses := pub.statusesSeen()
	require.Len(t, statuses, 3)
	assert.Equal(t, audit.StatusAnalyzing, statuses[0].Status)
	assert.Equal(t, audit.StatusScoring, statuses[1].Status)
	assert.Equal(t, audit.StatusPopulating, statuses[2].Status)

	// Progress ticks cover every phase and sequence numbers strictly
	// increase in publish order.
	progress := pub.progressSeen()
	require.NotEmpty(t, progress)
	phaseTicks := make(map[string]int)
	lastSeq := 0
	for _, p := range progress {
		phaseTicks[p.Phase]++
		assert.Greater(t, p.Sequence, lastSeq, "progress sequence should strictly increase")
		lastSeq = p.Sequence
	}
	assert.Equal(t, 1, phaseTicks[events.PhaseQueryGeneration])
	assert.Equal(t, responseCount, phaseTicks[events.PhaseResponseCollection])
	assert.Equal(t, responseCount, phaseTicks[events.PhaseAnalysis])
	assert.Equal(t, 1, phaseTicks[events.PhaseScoring])
	assert.Equal(t, 1, phaseTicks[events.PhasePopulation])
}

// TestPipelineExecutorStageFailure tests that a failing stage maps to a
// failed result with the phase named in the error.
func TestPipelineExecutorStageFailure(t *testing.T) {
	t.Run("query generation failure", func(t *testing.T) {
		dbClient := testdb.NewTestClient(t)
		client := dbClient.Client
		ctx := context.Background()

		company := createTestCompany(ctx, t, client)
		a := createClaimedAudit(ctx, t, client, company.ID, audit.StatusProcessing)

		stages := happyStages(client)
		stages.Generator = &fakeGenerator{
			err: fmt.Errorf("%w: first call yielded 9 of 48", querygen.ErrInsufficientQueries),
		}

		pub := &capturingPublisher{}
		executor := newTestExecutor(client, stages, pub)

		result := executor.Execute(ctx, a)
		require.NotNil(t, result)
		assert.Equal(t, audit.StatusFailed, result.Status)
		require.Error(t, result.Err)
		assert.ErrorIs(t, result.Err, querygen.ErrInsufficientQueries)
		assert.Contains(t, result.Err.Error(), "query generation failed")

		// Executor never writes the terminal status; the audit stays in the
		// phase it failed in.
		updated, err := client.Audit.Get(ctx, a.ID)
		require.NoError(t, err)
		assert.Equal(t, audit.StatusProcessing, updated.Status)
		assert.Empty(t, pub.statusesSeen())
	})

	t.Run("response collection failure", func(t *testing.T) {
		dbClient := testdb.NewTestClient(t)
		client := dbClient.Client
		ctx := context.Background()

		company := createTestCompany(ctx, t, client)
		a := createClaimedAudit(ctx, t, client, company.ID, audit.StatusProcessing)

		stages := happyStages(client)
		stages.Collector = &fakeCollector{client: client, err: errors.New("all providers exhausted")}

		executor := newTestExecutor(client, stages, nil)

		result := executor.Execute(ctx, a)
		require.NotNil(t, result)
		assert.Equal(t, audit.StatusFailed, result.Status)
		require.Error(t, result.Err)
		assert.Contains(t, result.Err.Error(), "response collection failed")

		// Queries generated before the failure stay persisted.
		queryCount, err := client.AuditQuery.Query().
			Where(auditquery.AuditIDEQ(a.ID)).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, a.QueryCount, queryCount)

		updated, err := client.Audit.Get(ctx, a.ID)
		require.NoError(t, err)
		assert.Equal(t, audit.StatusProcessing, updated.Status)
	})
}

// TestPipelineExecutorCancellation tests both cancellation paths: the
// persisted cancel_requested flag at a phase boundary and the audit context
// mid-phase.
func TestPipelineExecutorCancellation(t *testing.T) {
	t.Run("cancel_requested flag observed at phase boundary", func(t *testing.T) {
		dbClient := testdb.NewTestClient(t)
		client := dbClient.Client
		ctx := context.Background()

		company := createTestCompany(ctx, t, client)
		a := createClaimedAudit(ctx, t, client, company.ID, audit.StatusCancelRequested)

		pub := &capturingPublisher{}
		executor := newTestExecutor(client, happyStages(client), pub)

		result := executor.Execute(ctx, a)
		require.NotNil(t, result)
		assert.Equal(t, audit.StatusCancelled, result.Status)
		assert.ErrorIs(t, result.Err, ErrAuditCancelled)

		// The in-flight phase ran to its boundary: queries and responses are
		// persisted, analysis never started.
		queryCount, err := client.AuditQuery.Query().
			Where(auditquery.AuditIDEQ(a.ID)).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, a.QueryCount, queryCount)

		responseCount, err := client.AuditResponse.Query().
			Where(auditresponse.AuditIDEQ(a.ID)).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, a.QueryCount*len(a.Providers), responseCount)

		analysisCount, err := client.AuditAnalysis.Query().
			Where(auditanalysis.AuditIDEQ(a.ID)).
			Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, analysisCount)

		// No phase transition happened, so no status events.
		assert.Empty(t, pub.statusesSeen())
	})

	t.Run("context cancellation mid-phase", func(t *testing.T) {
		dbClient := testdb.NewTestClient(t)
		client := dbClient.Client
		ctx := context.Background()

		company := createTestCompany(ctx, t, client)
		a := createClaimedAudit(ctx, t, client, company.ID, audit.StatusProcessing)

		collector := &blockingCollector{started: make(chan struct{})}
		stages := happyStages(client)
		stages.Collector = collector

		executor := newTestExecutor(client, stages, nil)

		runCtx, cancel := context.WithCancel(ctx)
		defer cancel()

		resultCh := make(chan *ExecutionResult, 1)
		go func() {
			resultCh <- executor.Execute(runCtx, a)
		}()

		// Cancel once collection is underway.
		<-collector.started
		cancel()

		select {
		case result := <-resultCh:
			require.NotNil(t, result)
			assert.Equal(t, audit.StatusCancelled, result.Status)
			assert.ErrorIs(t, result.Err, ErrAuditCancelled)
		case <-time.After(5 * time.Second):
			t.Fatal("executor did not return after cancellation")
		}
	})
}

// blockingCollector signals when collection starts and then blocks until the
// context is cancelled.
type blockingCollector struct {
	started chan struct{}
}

func (c *blockingCollector) Collect(ctx context.Context, _ string, _ []*ent.AuditQuery, _ []string, _ orchestrator.ProgressFunc) (*orchestrator.Result, error) {
	close(c.started)
	<-ctx.Done()
	return nil, fmt.Errorf("response collection cancelled: %w", ctx.Err())
}
