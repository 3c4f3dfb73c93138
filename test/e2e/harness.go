package e2e

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/specularhq/specular/ent"
	"github.com/specularhq/specular/ent/audit"
	"github.com/specularhq/specular/pkg/analyzer"
	"github.com/specularhq/specular/pkg/analyzer/domainfetch"
	"github.com/specularhq/specular/pkg/api"
	"github.com/specularhq/specular/pkg/config"
	"github.com/specularhq/specular/pkg/dashboard"
	"github.com/specularhq/specular/pkg/database"
	"github.com/specularhq/specular/pkg/events"
	"github.com/specularhq/specular/pkg/insights"
	"github.com/specularhq/specular/pkg/llm"
	"github.com/specularhq/specular/pkg/llm/ratelimit"
	"github.com/specularhq/specular/pkg/models"
	"github.com/specularhq/specular/pkg/orchestrator"
	"github.com/specularhq/specular/pkg/querygen"
	"github.com/specularhq/specular/pkg/queue"
	"github.com/specularhq/specular/pkg/scoring"
	"github.com/specularhq/specular/pkg/services"
	testdb "github.com/specularhq/specular/test/database"
	"github.com/specularhq/specular/test/util"
)

// TestApp is a fully wired application instance backed by scripted LLM
// providers and a real Postgres schema. It mirrors the production wiring in
// cmd/specular: worker pool, pipeline executor, event publisher, NOTIFY
// listener, and the operational HTTP server on a random port.
type TestApp struct {
	Config     *config.Config
	DBClient   *database.Client
	EntClient  *ent.Client
	Providers  map[string]*ScriptedProvider
	Publisher  *events.Publisher
	Dispatcher *events.Dispatcher
	Listener   *events.NotifyListener
	WorkerPool *queue.WorkerPool
	Audits     *services.AuditService
	Events     *services.EventService
	Server     *api.Server
	BaseURL    string

	t *testing.T
}

// Option customizes a TestApp before wiring.
type Option func(*appOptions)

type appOptions struct {
	workerCount         int
	maxConcurrentAudits int
	providers           map[string]*ScriptedProvider
	analysisProvider    string
	dbClient            *database.Client
	listenConn          string
	replicaID           string
}

// WithWorkerCount sets the number of pool workers (default 1).
func WithWorkerCount(n int) Option {
	return func(o *appOptions) { o.workerCount = n }
}

// WithMaxConcurrentAudits caps concurrently claimed audits across replicas.
func WithMaxConcurrentAudits(n int) Option {
	return func(o *appOptions) { o.maxConcurrentAudits = n }
}

// WithProviders replaces the default single scripted "openai" provider.
func WithProviders(providers map[string]*ScriptedProvider) Option {
	return func(o *appOptions) { o.providers = providers }
}

// WithAnalysisProvider selects which provider id runs the pipeline's own
// calls (generation, analysis subtasks, insights, summary).
func WithAnalysisProvider(id string) Option {
	return func(o *appOptions) { o.analysisProvider = id }
}

// WithDBClient shares an existing database client instead of creating a
// fresh isolated schema. Used by multi-replica tests so both apps see the
// same tables.
func WithDBClient(client *database.Client) Option {
	return func(o *appOptions) { o.dbClient = client }
}

// WithListenConn overrides the LISTEN connection string. Multi-replica
// tests pass the shared schema's base connection here.
func WithListenConn(connStr string) Option {
	return func(o *appOptions) { o.listenConn = connStr }
}

// WithReplicaID overrides the replica identity recorded in claimed_by.
func WithReplicaID(id string) Option {
	return func(o *appOptions) { o.replicaID = id }
}

// NewTestApp wires a complete application against scripted providers and
// registers teardown in reverse order. Fails the test on any wiring error.
func NewTestApp(t *testing.T, opts ...Option) *TestApp {
	t.Helper()

	o := &appOptions{
		workerCount:         1,
		maxConcurrentAudits: 4,
		analysisProvider:    "openai",
		replicaID:           fmt.Sprintf("e2e-%s", uuid.New().String()[:8]),
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.providers == nil {
		p := NewScriptedProvider("openai")
		HappyScript(p, "Acme Analytics", "Globex", 12)
		o.providers = map[string]*ScriptedProvider{"openai": p}
	}

	dbClient := o.dbClient
	if dbClient == nil {
		dbClient = testdb.NewTestClient(t)
	}
	listenConn := o.listenConn
	if listenConn == "" {
		listenConn = util.GetBaseConnectionString(t)
	}

	providerConfigs := make(map[string]*config.ProviderConfig, len(o.providers))
	providerIDs := make([]string, 0, len(o.providers))
	llmProviders := make(map[string]llm.Provider, len(o.providers))
	for id, p := range o.providers {
		providerConfigs[id] = &config.ProviderConfig{
			Model:  "scripted-model",
			APIKey: "scripted",
		}
		providerIDs = append(providerIDs, id)
		llmProviders[id] = p
	}
	sort.Strings(providerIDs)

	cfg := &config.Config{
		Pipeline: &config.PipelineConfig{
			WorkerCount:             o.workerCount,
			MaxConcurrentAudits:     o.maxConcurrentAudits,
			OrchestratorConcurrency: 8,
			AnalyzerConcurrency:     4,
			DefaultQueryCount:       12,
			HeartbeatInterval:       1 * time.Second,
			StuckThreshold:          time.Minute,
			StuckSweepInterval:      time.Minute,
			DomainFetchTimeout:      500 * time.Millisecond,
			PollInterval:            50 * time.Millisecond,
			PollIntervalJitter:      25 * time.Millisecond,
			GracefulShutdownTimeout: 15 * time.Second,
		},
		Retention:        config.DefaultRetentionConfig(),
		Providers:        config.NewProviderRegistry(providerConfigs),
		AnalysisProvider: o.analysisProvider,
	}

	publisher := events.NewPublisher(dbClient.DB())
	eventService := services.NewEventService(dbClient.Client)
	auditService := services.NewAuditService(dbClient.Client, providerIDs, cfg.Pipeline.DefaultQueryCount)

	dispatcher := events.NewDispatcher()
	listener := events.NewNotifyListener(listenConn, dispatcher)
	require.NoError(t, listener.Start(context.Background()))
	dispatcher.SetListener(listener)

	// Tight retries keep failure-path tests fast; real deployments use
	// DefaultRetryPolicy.
	retry := ratelimit.RetryPolicy{
		MaxRetries:   1,
		BackoffBase:  time.Millisecond,
		BackoffCap:   5 * time.Millisecond,
		QuotaBackoff: 5 * time.Millisecond,
	}
	caller := ratelimit.NewCaller(llmProviders, ratelimit.NewRegistry(cfg.Providers.GetAll()), retry)

	analysisModel := "scripted-model"
	fetcher := domainfetch.NewFetcher(cfg.Pipeline.DomainFetchTimeout)
	stages := queue.Stages{
		Generator: querygen.NewGenerator(caller, cfg.AnalysisProvider, analysisModel),
		Collector: orchestrator.New(caller, services.NewResponseService(dbClient.Client), cfg.Providers, cfg.Pipeline.OrchestratorConcurrency),
		Analyzer:  analyzer.New(caller, services.NewAnalysisService(dbClient.Client), fetcher, cfg.AnalysisProvider, analysisModel, cfg.Pipeline.AnalyzerConcurrency),
		Scorer:    scoring.New(services.NewAggregateService(dbClient.Client)),
		Extractor: insights.New(caller, cfg.AnalysisProvider, analysisModel),
		Populator: dashboard.New(caller, services.NewDashboardService(dbClient.Client), cfg.AnalysisProvider, analysisModel),
	}

	executor := queue.NewPipelineExecutor(dbClient.Client, auditService, stages, publisher)
	pool := queue.NewWorkerPool(o.replicaID, dbClient.Client, cfg.Pipeline, executor, publisher)
	require.NoError(t, pool.Start(context.Background()))

	server := api.NewServer(dbClient, pool, eventService, dispatcher)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() {
		if serveErr := server.StartWithListener(ln); serveErr != nil && serveErr != http.ErrServerClosed {
			t.Errorf("ops server: %v", serveErr)
		}
	}()

	app := &TestApp{
		Config:     cfg,
		DBClient:   dbClient,
		EntClient:  dbClient.Client,
		Providers:  o.providers,
		Publisher:  publisher,
		Dispatcher: dispatcher,
		Listener:   listener,
		WorkerPool: pool,
		Audits:     auditService,
		Events:     eventService,
		Server:     server,
		BaseURL:    "http://" + ln.Addr().String(),
		t:          t,
	}

	t.Cleanup(func() {
		pool.Stop()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
		listener.Stop(shutdownCtx)
	})

	return app
}

// HappyScript installs deterministic success handlers for every request
// kind the pipeline issues. Generation always yields the same queryCount
// queries, so a full first call needs no top-up and a top-up call offers
// nothing new; competitor discovery returns only the already-known
// competitor, so no new names are discovered.
func HappyScript(p *ScriptedProvider, brand, competitor string, queryCount int) {
	p.On(KindGeneration, func(_ context.Context, _ int, _ llm.CompletionRequest) (*llm.CompletionResponse, error) {
		return GenerationBatch(models.Categories, queryCount, 0), nil
	})
	p.On(KindCollection, RespondText(fmt.Sprintf(
		"%s is a strong choice for mid-market teams. %s is the main alternative; most buyers shortlist both before deciding.",
		brand, competitor)))
	p.On(KindSentiment, RespondJSON(map[string]any{"sentiment": "positive", "score": 0.6}))
	p.On(KindCompetitors, RespondJSON(map[string]any{"competitors": []string{competitor}}))
	p.On(KindContext, RespondJSON(map[string]any{"score": 72.5}))
	p.On(KindRecommendation, RespondJSON(map[string]any{
		"score":           64,
		"recommendations": []string{"Add a comparison page for analytics buyers"},
	}))
	p.On(KindInsights, RespondJSON(map[string]any{
		"recommendations":       []map[string]any{{"text": "Ship a mid-market comparison page", "priority": 8}},
		"competitive_gaps":      []map[string]any{{"text": "Competitors dominate comparison queries", "priority": 6}},
		"content_opportunities": []map[string]any{{"text": "Publish transparent pricing documentation", "priority": 5}},
	}))
	p.On(KindSummary, RespondText(fmt.Sprintf(
		"%s holds strong visibility across buyer-journey queries, with %s as the main competitive pressure.",
		brand, competitor)))
}

// CreateCompany inserts a company with no domain, keeping GEO scoring
// offline during tests.
func (app *TestApp) CreateCompany(name string, competitors, products []string) *ent.Company {
	app.t.Helper()
	c, err := app.EntClient.Company.Create().
		SetID(uuid.New().String()).
		SetName(name).
		SetDescription(name + " builds a product analytics platform for mid-market teams.").
		SetCompetitors(competitors).
		SetProducts(products).
		Save(context.Background())
	require.NoError(app.t, err)
	return c
}

// SubmitAudit enqueues an audit and returns it in pending state.
func (app *TestApp) SubmitAudit(companyID string, queryCount int, providers []string) *ent.Audit {
	app.t.Helper()
	a, err := app.Audits.Submit(context.Background(), models.SubmitAuditRequest{
		CompanyID:  companyID,
		UserID:     "e2e-user",
		Providers:  providers,
		QueryCount: queryCount,
	})
	require.NoError(app.t, err)
	return a
}

// AwaitStatus polls until the audit reaches want, failing fast when it
// lands on a different terminal status.
func (app *TestApp) AwaitStatus(auditID string, want audit.Status, timeout time.Duration) *ent.Audit {
	app.t.Helper()
	deadline := time.Now().Add(timeout)
	for {
		a, err := app.EntClient.Audit.Get(context.Background(), auditID)
		require.NoError(app.t, err)
		if a.Status == want {
			return a
		}
		if isTerminal(a.Status) {
			msg := ""
			if a.ErrorMessage != nil {
				msg = *a.ErrorMessage
			}
			app.t.Fatalf("audit %s reached terminal status %q (want %q): %s", auditID, a.Status, want, msg)
		}
		if time.Now().After(deadline) {
			app.t.Fatalf("audit %s stuck in status %q after %v (want %q)", auditID, a.Status, timeout, want)
		}
		time.Sleep(25 * time.Millisecond)
	}
}

// Await polls cond until it returns true or the deadline passes.
func (app *TestApp) Await(timeout time.Duration, msg string, cond func() bool) {
	app.t.Helper()
	deadline := time.Now().Add(timeout)
	for !cond() {
		if time.Now().After(deadline) {
			app.t.Fatalf("timed out after %v waiting for %s", timeout, msg)
		}
		time.Sleep(25 * time.Millisecond)
	}
}

// GetJSON fetches path from the ops server and decodes the body into out.
// Returns the HTTP status code.
func (app *TestApp) GetJSON(path string, out any) int {
	app.t.Helper()
	resp, err := http.Get(app.BaseURL + path)
	require.NoError(app.t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(app.t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func isTerminal(s audit.Status) bool {
	switch s {
	case audit.StatusCompleted, audit.StatusFailed, audit.StatusCancelled:
		return true
	}
	return false
}

// FrameLog accumulates decoded NOTIFY frames from a dispatcher
// subscription. The drain goroutine exits when the subscription closes.
type FrameLog struct {
	mu     sync.Mutex
	frames []map[string]any
}

// CollectFrames drains sub into a FrameLog in the background.
func CollectFrames(sub *events.Subscription) *FrameLog {
	fl := &FrameLog{}
	go func() {
		for raw := range sub.C {
			var m map[string]any
			if err := json.Unmarshal(raw, &m); err != nil {
				continue
			}
			fl.mu.Lock()
			fl.frames = append(fl.frames, m)
			fl.mu.Unlock()
		}
	}()
	return fl
}

// Snapshot returns a copy of the frames received so far.
func (fl *FrameLog) Snapshot() []map[string]any {
	fl.mu.Lock()
	defer fl.mu.Unlock()
	return append([]map[string]any(nil), fl.frames...)
}

// Statuses returns the status values of audit.status frames, in arrival
// order.
func (fl *FrameLog) Statuses() []string {
	var out []string
	for _, f := range fl.Snapshot() {
		if f["type"] == events.EventTypeStatus {
			if s, ok := f["status"].(string); ok {
				out = append(out, s)
			}
		}
	}
	return out
}

// Phases returns the distinct phases seen in audit.progress frames.
func (fl *FrameLog) Phases() map[string]bool {
	out := make(map[string]bool)
	for _, f := range fl.Snapshot() {
		if f["type"] == events.EventTypeProgress {
			if p, ok := f["phase"].(string); ok {
				out[p] = true
			}
		}
	}
	return out
}

// SawDashboardReady reports whether a dashboard_ready frame arrived.
func (fl *FrameLog) SawDashboardReady() bool {
	for _, f := range fl.Snapshot() {
		if f["event"] == events.EventTypeDashboardReady {
			return true
		}
	}
	return false
}
