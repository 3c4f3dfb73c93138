package config

import "time"

// PipelineConfig contains worker pool and pipeline concurrency configuration.
// These values control how audits are polled, claimed, and processed.
type PipelineConfig struct {
	// WorkerCount is the number of worker goroutines per replica.
	// Each worker independently polls and processes audits.
	WorkerCount int `yaml:"worker_count"`

	// MaxConcurrentAudits is the global limit of audits being processed
	// at once, across all replicas. Workers back off when the claimed
	// count reaches it.
	MaxConcurrentAudits int `yaml:"max_concurrent_audits"`

	// OrchestratorConcurrency bounds in-flight (query, provider) cells
	// during response collection.
	OrchestratorConcurrency int `yaml:"orchestrator_concurrency"`

	// AnalyzerConcurrency bounds in-flight response analyses.
	AnalyzerConcurrency int `yaml:"analyzer_concurrency"`

	// DefaultQueryCount is the target query count when the audit does not
	// specify one.
	DefaultQueryCount int `yaml:"default_query_count"`

	// HeartbeatInterval is how often a worker refreshes the heartbeat on
	// its claimed audit.
	HeartbeatInterval time.Duration `yaml:"heartbeat_interval"`

	// StuckThreshold is how long an audit can go without a heartbeat
	// before the recovery sweep marks it failed.
	StuckThreshold time.Duration `yaml:"stuck_threshold"`

	// StuckSweepInterval is how often to scan for stuck audits.
	StuckSweepInterval time.Duration `yaml:"stuck_sweep_interval"`

	// DomainFetchTimeout caps a single brand-domain fetch during GEO
	// scoring.
	DomainFetchTimeout time.Duration `yaml:"domain_fetch_timeout"`

	// PollInterval is the base interval for checking pending audits.
	PollInterval time.Duration `yaml:"poll_interval"`

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration `yaml:"poll_interval_jitter"`

	// GracefulShutdownTimeout is the max time to wait for active audits
	// to complete during shutdown.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`
}

// DefaultPipelineConfig returns the built-in pipeline defaults.
func DefaultPipelineConfig() *PipelineConfig {
	return &PipelineConfig{
		WorkerCount:             2,
		MaxConcurrentAudits:     8,
		OrchestratorConcurrency: 16,
		AnalyzerConcurrency:     10,
		DefaultQueryCount:       48,
		HeartbeatInterval:       30 * time.Second,
		StuckThreshold:          5 * time.Minute,
		StuckSweepInterval:      1 * time.Minute,
		DomainFetchTimeout:      5 * time.Second,
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		GracefulShutdownTimeout: 10 * time.Minute,
	}
}
