// Specular audit worker — claims pending brand-visibility audits, drives
// them through the pipeline phases, and serves the operational HTTP surface.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/specularhq/specular/pkg/analyzer"
	"github.com/specularhq/specular/pkg/analyzer/domainfetch"
	"github.com/specularhq/specular/pkg/api"
	"github.com/specularhq/specular/pkg/cleanup"
	"github.com/specularhq/specular/pkg/config"
	"github.com/specularhq/specular/pkg/dashboard"
	"github.com/specularhq/specular/pkg/database"
	"github.com/specularhq/specular/pkg/events"
	"github.com/specularhq/specular/pkg/insights"
	"github.com/specularhq/specular/pkg/llm"
	"github.com/specularhq/specular/pkg/llm/ratelimit"
	"github.com/specularhq/specular/pkg/orchestrator"
	"github.com/specularhq/specular/pkg/querygen"
	"github.com/specularhq/specular/pkg/queue"
	"github.com/specularhq/specular/pkg/scoring"
	"github.com/specularhq/specular/pkg/services"
	"github.com/specularhq/specular/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolveReplicaID determines the replica identifier for multi-replica
// coordination. Priority: POD_ID env > HOSTNAME env > "local"
func resolveReplicaID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	replicaID := resolveReplicaID()

	slog.Info("Starting specular",
		"version", version.Full(),
		"replica_id", replicaID,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}
	stats := cfg.Stats()
	slog.Info("Configuration loaded",
		"providers", stats.Providers,
		"keyed", stats.Keyed,
		"analysis_provider", cfg.AnalysisProvider)

	// 2. Initialize database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Event publishing (needed by orphan recovery and the queue)
	publisher := events.NewPublisher(dbClient.DB())

	// One-time startup recovery: audits this replica abandoned in a
	// previous life are marked failed before workers start claiming.
	if err := queue.RecoverStartupOrphans(ctx, dbClient.Client, replicaID, publisher); err != nil {
		slog.Error("Failed to recover startup orphans", "error", err)
		// Non-fatal — the stuck sweep picks up anything missed
	}

	// 4. LLM providers behind the shared rate limiter
	providers, err := llm.BuildProviders(cfg)
	if err != nil {
		slog.Error("Failed to build LLM providers", "error", err)
		os.Exit(1)
	}
	limits := ratelimit.NewRegistry(cfg.Providers.GetAll())
	caller := ratelimit.NewCaller(providers, limits, ratelimit.DefaultRetryPolicy())

	// The pipeline's own calls (query generation, analysis, summaries) all
	// ride the analysis provider; a missing key there means no audit can
	// get past its first phase, so fail fast.
	if !caller.Has(cfg.AnalysisProvider) {
		slog.Error("Analysis provider has no API key", "provider", cfg.AnalysisProvider)
		os.Exit(1)
	}
	analysisProviderCfg, err := cfg.GetProvider(cfg.AnalysisProvider)
	if err != nil {
		slog.Error("Unknown analysis provider", "provider", cfg.AnalysisProvider, "error", err)
		os.Exit(1)
	}
	analysisModel := analysisProviderCfg.Model

	// 5. Services
	auditService := services.NewAuditService(dbClient.Client, caller.Providers(), cfg.Pipeline.DefaultQueryCount)
	eventService := services.NewEventService(dbClient.Client)
	slog.Info("Services initialized", "available_providers", caller.Providers())

	// 5a. Live event delivery (dedicated pgx connection for LISTEN)
	dispatcher := events.NewDispatcher()
	notifyListener := events.NewNotifyListener(dbConfig.DSN(), dispatcher)
	if err := notifyListener.Start(ctx); err != nil {
		slog.Error("Failed to start NotifyListener", "error", err)
		os.Exit(1)
	}
	defer notifyListener.Stop(ctx)
	dispatcher.SetListener(notifyListener)

	// 6. Pipeline stages
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

	// 7. Start worker pool (before the HTTP server takes traffic)
	workerPool := queue.NewWorkerPool(replicaID, dbClient.Client, cfg.Pipeline, executor, publisher)
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// 7a. Event retention loop
	retention := cleanup.NewService(cfg.Retention, eventService)
	retention.Start(ctx)

	// 8. Operational HTTP server (non-blocking)
	opsServer := api.NewServer(dbClient, workerPool, eventService, dispatcher)
	errCh := make(chan error, 1)
	go func() {
		slog.Info("Ops server listening", "addr", cfg.OpsAddr)
		if err := opsServer.Start(cfg.OpsAddr); err != nil && err != http.ErrServerClosed {
			slog.Error("Ops server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Specular started successfully",
		"replica_id", replicaID,
		"workers", cfg.Pipeline.WorkerCount)

	// 9. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 10. Graceful shutdown
	retention.Stop()

	// Stop the worker pool (waits for active audits to complete)
	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Pipeline.GracefulShutdownTimeout)
	defer cancel()

	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-shutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded — incomplete audits will be orphan-recovered")
	}

	// Stop the HTTP server with its own timeout budget
	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := opsServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("Ops server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
