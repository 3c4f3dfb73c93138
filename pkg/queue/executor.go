package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/specularhq/specular/ent"
	"github.com/specularhq/specular/ent/audit"
	"github.com/specularhq/specular/ent/schema"
	"github.com/specularhq/specular/pkg/analyzer"
	"github.com/specularhq/specular/pkg/events"
	"github.com/specularhq/specular/pkg/metrics"
	"github.com/specularhq/specular/pkg/models"
	"github.com/specularhq/specular/pkg/orchestrator"
	"github.com/specularhq/specular/pkg/services"
)

// ────────────────────────────────────────────────────────────
// Stage interfaces
// ────────────────────────────────────────────────────────────

// QueryGenerator produces the audit's query set. Satisfied by *querygen.Generator.
type QueryGenerator interface {
	Generate(ctx context.Context, company *ent.Company, n int) ([]models.GeneratedQuery, error)
}

// ResponseCollector fans the query set out across providers. Satisfied by
// *orchestrator.Orchestrator.
type ResponseCollector interface {
	Collect(ctx context.Context, auditID string, queries []*ent.AuditQuery, providers []string, progress orchestrator.ProgressFunc) (*orchestrator.Result, error)
}

// ResponseAnalyzer extracts per-response visibility signals. Satisfied by
// *analyzer.Analyzer.
type ResponseAnalyzer interface {
	Analyze(ctx context.Context, auditID string, company *ent.Company, responses []*ent.AuditResponse, progress analyzer.ProgressFunc) (*analyzer.Result, error)
}

// AggregateScorer rolls analyses up into the audit aggregate. Satisfied by
// *scoring.Scorer.
type AggregateScorer interface {
	Score(ctx context.Context, auditID string, analyses []*ent.AuditAnalysis) (*models.AggregateRecord, error)
}

// InsightExtractor mines recommendations from the analyzed rows. Satisfied by
// *insights.Extractor.
type InsightExtractor interface {
	Extract(ctx context.Context, company *ent.Company, analyses []*ent.AuditAnalysis) ([]schema.RankedRecommendation, error)
}

// DashboardPopulator assembles the final dashboard record. Satisfied by
// *dashboard.Populator.
type DashboardPopulator interface {
	Populate(ctx context.Context, company *ent.Company, agg *ent.AuditAggregate, queries []*ent.AuditQuery, recommendations []schema.RankedRecommendation) (*ent.AuditDashboard, error)
}

// Stages bundles the pipeline stage implementations for the executor.
type Stages struct {
	Generator QueryGenerator
	Collector ResponseCollector
	Analyzer  ResponseAnalyzer
	Scorer    AggregateScorer
	Extractor InsightExtractor
	Populator DashboardPopulator
}

// ────────────────────────────────────────────────────────────
// PipelineExecutor
// ────────────────────────────────────────────────────────────

// PipelineExecutor implements AuditExecutor by driving a claimed audit
// through the phase sequence: query generation and response collection under
// processing, then analyzing, scoring, and populating. Cancellation is
// observed at every phase boundary, from both the audit context and the
// persisted cancel_requested flag.
type PipelineExecutor struct {
	stages     Stages
	audits     *services.AuditService
	companies  *services.CompanyService
	queries    *services.QueryService
	responses  *services.ResponseService
	analyses   *services.AnalysisService
	aggregates *services.AggregateService
	publisher  EventPublisher
}

// NewPipelineExecutor creates the audit executor.
// publisher may be nil (event delivery disabled).
func NewPipelineExecutor(client *ent.Client, audits *services.AuditService, stages Stages, publisher EventPublisher) *PipelineExecutor {
	return &PipelineExecutor{
		stages:     stages,
		audits:     audits,
		companies:  services.NewCompanyService(client),
		queries:    services.NewQueryService(client),
		responses:  services.NewResponseService(client),
		analyses:   services.NewAnalysisService(client),
		aggregates: services.NewAggregateService(client),
		publisher:  publisher,
	}
}

// auditRun carries per-audit state across phases.
type auditRun struct {
	audit   *ent.Audit
	company *ent.Company
	queries []*ent.AuditQuery
	log     *slog.Logger

	// seq numbers progress events; stages tick from concurrent goroutines.
	seq atomic.Int64
}

// Execute runs the audit through the pipeline phases. The audit arrives in
// processing status (set by the claim); Execute owns every transition up to,
// but not including, the terminal write.
func (e *PipelineExecutor) Execute(ctx context.Context, a *ent.Audit) *ExecutionResult {
	run := &auditRun{
		audit: a,
		log:   slog.With("audit_id", a.ID, "company_id", a.CompanyID),
	}
	run.log.Info("Pipeline executor: starting audit",
		"providers", a.Providers,
		"query_count", a.QueryCount)

	company, err := e.companies.GetCompany(ctx, a.CompanyID)
	if err != nil {
		return e.terminalFor(run, fmt.Errorf("failed to load company: %w", err))
	}
	run.company = company

	// Query generation + response collection both run under processing.
	if err := e.runProcessing(ctx, run); err != nil {
		return e.terminalFor(run, err)
	}

	if res := e.advance(ctx, run, audit.StatusAnalyzing); res != nil {
		return res
	}
	if err := e.runAnalyzing(ctx, run); err != nil {
		return e.terminalFor(run, err)
	}

	if res := e.advance(ctx, run, audit.StatusScoring); res != nil {
		return res
	}
	if err := e.runScoring(ctx, run); err != nil {
		return e.terminalFor(run, err)
	}

	if res := e.advance(ctx, run, audit.StatusPopulating); res != nil {
		return res
	}
	if err := e.runPopulating(ctx, run); err != nil {
		return e.terminalFor(run, err)
	}

	// A cancel that lands during population still wins over completion.
	if res := e.checkBoundary(ctx, run); res != nil {
		return res
	}

	run.log.Info("Pipeline executor: audit completed")
	return &ExecutionResult{Status: audit.StatusCompleted}
}

// ────────────────────────────────────────────────────────────
// Phases
// ────────────────────────────────────────────────────────────

// runProcessing generates the query set, persists it, and collects provider
// responses for the full query x provider matrix.
func (e *PipelineExecutor) runProcessing(ctx context.Context, run *auditRun) error {
	a := run.audit

	start := time.Now()
	generated, err := e.stages.Generator.Generate(ctx, run.company, a.QueryCount)
	if err != nil {
		return fmt.Errorf("query generation failed: %w", err)
	}
	saved, err := e.queries.SaveQueries(ctx, a.ID, generated)
	if err != nil {
		return fmt.Errorf("failed to persist queries: %w", err)
	}
	metrics.PhaseDuration.WithLabelValues(events.PhaseQueryGeneration).Observe(time.Since(start).Seconds())
	run.queries = saved
	run.log.Info("Query generation complete", "queries", len(saved))
	e.publishProgress(ctx, run, events.PhaseQueryGeneration, len(saved), a.QueryCount)

	start = time.Now()
	result, err := e.stages.Collector.Collect(ctx, a.ID, saved, a.Providers, func(completed, total int) {
		e.publishProgress(ctx, run, events.PhaseResponseCollection, completed, total)
	})
	if err != nil {
		return fmt.Errorf("response collection failed: %w", err)
	}
	metrics.PhaseDuration.WithLabelValues(events.PhaseResponseCollection).Observe(time.Since(start).Seconds())
	run.log.Info("Response collection complete",
		"total", result.Total,
		"succeeded", result.Succeeded,
		"failed", result.Failed)
	return nil
}

// runAnalyzing analyzes every collected response for brand visibility signals.
func (e *PipelineExecutor) runAnalyzing(ctx context.Context, run *auditRun) error {
	a := run.audit

	responses, err := e.responses.ListByAudit(ctx, a.ID)
	if err != nil {
		return fmt.Errorf("failed to load responses: %w", err)
	}

	start := time.Now()
	result, err := e.stages.Analyzer.Analyze(ctx, a.ID, run.company, responses, func(completed, total int) {
		e.publishProgress(ctx, run, events.PhaseAnalysis, completed, total)
	})
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}
	metrics.PhaseDuration.WithLabelValues(events.PhaseAnalysis).Observe(time.Since(start).Seconds())
	run.log.Info("Analysis complete",
		"total", result.Total,
		"analyzed", result.Analyzed,
		"errored", result.Errored)
	return nil
}

// runScoring rolls the analysis rows up into the audit aggregate. The scorer
// gets the full set, errored rows included, so totals reflect every cell.
func (e *PipelineExecutor) runScoring(ctx context.Context, run *auditRun) error {
	a := run.audit

	analyses, err := e.analyses.ListByAudit(ctx, a.ID)
	if err != nil {
		return fmt.Errorf("failed to load analyses: %w", err)
	}

	start := time.Now()
	rec, err := e.stages.Scorer.Score(ctx, a.ID, analyses)
	if err != nil {
		return fmt.Errorf("scoring failed: %w", err)
	}
	metrics.PhaseDuration.WithLabelValues(events.PhaseScoring).Observe(time.Since(start).Seconds())
	run.log.Info("Scoring complete",
		"overall", rec.Overall,
		"analyzed", rec.AnalyzedResponses,
		"total", rec.TotalResponses)
	e.publishProgress(ctx, run, events.PhaseScoring, 1, 1)
	return nil
}

// runPopulating extracts ranked recommendations and assembles the dashboard.
func (e *PipelineExecutor) runPopulating(ctx context.Context, run *auditRun) error {
	a := run.audit

	analyzed, err := e.analyses.ListAnalyzed(ctx, a.ID)
	if err != nil {
		return fmt.Errorf("failed to load analyzed rows: %w", err)
	}

	start := time.Now()
	recommendations, err := e.stages.Extractor.Extract(ctx, run.company, analyzed)
	if err != nil {
		return fmt.Errorf("insight extraction failed: %w", err)
	}

	agg, err := e.aggregates.GetByAudit(ctx, a.ID)
	if err != nil {
		return fmt.Errorf("failed to load aggregate: %w", err)
	}

	dash, err := e.stages.Populator.Populate(ctx, run.company, agg, run.queries, recommendations)
	if err != nil {
		return fmt.Errorf("dashboard population failed: %w", err)
	}
	metrics.PhaseDuration.WithLabelValues(events.PhasePopulation).Observe(time.Since(start).Seconds())
	run.log.Info("Population complete",
		"recommendations", len(recommendations),
		"dashboard_id", dash.ID)
	e.publishProgress(ctx, run, events.PhasePopulation, 1, 1)
	return nil
}

// ────────────────────────────────────────────────────────────
// Boundaries and terminal mapping
// ────────────────────────────────────────────────────────────

// advance observes the cancellation boundary, then moves the audit to the
// next status and publishes the transition. The status write itself is
// guarded against cancel_requested, closing the window between the boundary
// read and the write: a cancel committed in between surfaces here instead of
// being overwritten.
func (e *PipelineExecutor) advance(ctx context.Context, run *auditRun, next audit.Status) *ExecutionResult {
	if res := e.checkBoundary(ctx, run); res != nil {
		return res
	}
	if err := e.audits.UpdateStatus(ctx, run.audit.ID, next); err != nil {
		if errors.Is(err, services.ErrCancelRequested) {
			run.log.Info("Audit cancelled via cancel request")
			return &ExecutionResult{Status: audit.StatusCancelled, Err: ErrAuditCancelled}
		}
		return e.terminalFor(run, fmt.Errorf("failed to advance audit to %s: %w", next, err))
	}
	publishStatus(ctx, e.publisher, run.audit.ID, next, nil)
	return nil
}

// checkBoundary checks for cancellation between phases: the audit context
// first, then the persisted cancel_requested flag.
func (e *PipelineExecutor) checkBoundary(ctx context.Context, run *auditRun) *ExecutionResult {
	if ctx.Err() != nil {
		run.log.Info("Audit cancelled via context")
		return &ExecutionResult{Status: audit.StatusCancelled, Err: ErrAuditCancelled}
	}
	requested, err := e.audits.IsCancelRequested(ctx, run.audit.ID)
	if err != nil {
		return e.terminalFor(run, fmt.Errorf("failed to read cancellation flag: %w", err))
	}
	if requested {
		run.log.Info("Audit cancelled via cancel request")
		return &ExecutionResult{Status: audit.StatusCancelled, Err: ErrAuditCancelled}
	}
	return nil
}

// terminalFor maps a phase error to its terminal result. Cancellation maps
// to cancelled; everything else fails the audit with the wrapped cause.
func (e *PipelineExecutor) terminalFor(run *auditRun, err error) *ExecutionResult {
	if errors.Is(err, context.Canceled) || errors.Is(err, ErrAuditCancelled) {
		run.log.Info("Audit cancelled mid-phase")
		return &ExecutionResult{Status: audit.StatusCancelled, Err: ErrAuditCancelled}
	}
	run.log.Warn("Audit phase failed", "error", err)
	return &ExecutionResult{Status: audit.StatusFailed, Err: err}
}

// publishProgress publishes an audit.progress tick. Safe to call from stage
// goroutines; the per-run sequence keeps consumers ordered. Best-effort:
// errors are logged, never propagated.
func (e *PipelineExecutor) publishProgress(ctx context.Context, run *auditRun, phase string, completed, total int) {
	if e.publisher == nil {
		return
	}
	payload := events.ProgressPayload{
		Type:      events.EventTypeProgress,
		AuditID:   run.audit.ID,
		Phase:     phase,
		Completed: completed,
		Total:     total,
		Timestamp: events.NowRFC3339(),
		Sequence:  int(run.seq.Add(1)),
	}
	if err := e.publisher.PublishProgress(ctx, run.audit.ID, payload); err != nil {
		slog.Warn("Failed to publish audit progress",
			"audit_id", run.audit.ID, "phase", phase, "error", err)
	}
}
