package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// ProvidersYAMLConfig represents the optional providers.yaml file structure.
// Everything in it overlays the built-in provider defaults; environment
// variables override both.
type ProvidersYAMLConfig struct {
	Providers        map[string]ProviderConfig `yaml:"providers"`
	AnalysisProvider string                    `yaml:"analysis_provider"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Precedence, lowest to highest:
//  1. Built-in provider defaults
//  2. providers.yaml overlay from configDir (optional)
//  3. Environment variables
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	stats := cfg.Stats()
	log.Info("Configuration initialized successfully",
		"providers", stats.Providers,
		"providers_with_keys", stats.Keyed,
		"analysis_provider", cfg.AnalysisProvider,
		"workers", cfg.Pipeline.WorkerCount)

	return cfg, nil
}

func load(_ context.Context, configDir string) (*Config, error) {
	providers := builtinProviders()

	// Optional YAML overlay (user-defined overrides built-in)
	overlay, err := loadProvidersYAML(configDir)
	if err != nil {
		return nil, err
	}
	if overlay != nil {
		for id, user := range overlay.Providers {
			base, ok := providers[id]
			if !ok {
				cp := user
				providers[id] = &cp
				continue
			}
			// Merge user-provided config into defaults (non-zero values override)
			if err := mergo.Merge(base, user, mergo.WithOverride); err != nil {
				return nil, fmt.Errorf("failed to merge provider %q config: %w", id, err)
			}
		}
	}

	applyProviderEnv(providers)

	pipeline, err := pipelineFromEnv()
	if err != nil {
		return nil, err
	}
	retention := retentionFromEnv()

	analysisProvider := DefaultAnalysisProvider
	if overlay != nil && overlay.AnalysisProvider != "" {
		analysisProvider = overlay.AnalysisProvider
	}
	if v := os.Getenv("ANALYSIS_PROVIDER"); v != "" {
		analysisProvider = v
	}

	opsAddr := os.Getenv("OPS_ADDR")
	if opsAddr == "" {
		opsAddr = ":8080"
	}

	return &Config{
		configDir:        configDir,
		Pipeline:         pipeline,
		Retention:        retention,
		Providers:        NewProviderRegistry(providers),
		AnalysisProvider: analysisProvider,
		OpsAddr:          opsAddr,
	}, nil
}

func loadProvidersYAML(configDir string) (*ProvidersYAMLConfig, error) {
	path := filepath.Join(configDir, "providers.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var cfg ProvidersYAMLConfig
	cfg.Providers = make(map[string]ProviderConfig)
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}
	return &cfg, nil
}

// applyProviderEnv layers PROVIDER_<ID>_* environment variables over the
// merged provider set and resolves API keys.
func applyProviderEnv(providers map[string]*ProviderConfig) {
	for id, p := range providers {
		prefix := "PROVIDER_" + strings.ToUpper(id) + "_"

		if v := os.Getenv(prefix + "MODEL"); v != "" {
			p.Model = v
		}
		if v := os.Getenv(prefix + "BASE_URL"); v != "" {
			p.BaseURL = v
		}
		if v, ok := envInt(prefix + "RPM"); ok {
			p.RPM = v
		}
		if v, ok := envInt(prefix + "TPM"); ok {
			p.TPM = v
		}

		if p.APIKeyEnv == "" {
			p.APIKeyEnv = prefix + "API_KEY"
		}
		p.APIKey = os.Getenv(p.APIKeyEnv)
		if p.APIKey == "" {
			slog.Warn("Provider has no API key; audits requesting it will fail",
				"provider", id,
				"api_key_env", p.APIKeyEnv)
		}
	}
}

func pipelineFromEnv() (*PipelineConfig, error) {
	cfg := DefaultPipelineConfig()

	if v, ok := envInt("WORKER_COUNT"); ok {
		cfg.WorkerCount = v
	}
	if v, ok := envInt("MAX_CONCURRENT_AUDITS"); ok {
		cfg.MaxConcurrentAudits = v
	}
	if v, ok := envInt("C_ORCHESTRATOR"); ok {
		cfg.OrchestratorConcurrency = v
	}
	if v, ok := envInt("C_ANALYZER"); ok {
		cfg.AnalyzerConcurrency = v
	}
	if v, ok := envInt("DEFAULT_QUERY_COUNT"); ok {
		cfg.DefaultQueryCount = v
	}
	if v, ok := envSeconds("HEARTBEAT_INTERVAL_SECONDS"); ok {
		cfg.HeartbeatInterval = v
	}
	if v, ok := envSeconds("STUCK_AUDIT_SECONDS"); ok {
		cfg.StuckThreshold = v
	}
	if v, ok := envSeconds("DOMAIN_FETCH_TIMEOUT_SECONDS"); ok {
		cfg.DomainFetchTimeout = v
	}

	return cfg, nil
}

func retentionFromEnv() *RetentionConfig {
	cfg := DefaultRetentionConfig()

	if v, ok := envSeconds("EVENT_TTL_SECONDS"); ok {
		cfg.EventTTL = v
	}
	if v, ok := envSeconds("EVENT_CLEANUP_INTERVAL_SECONDS"); ok {
		cfg.CleanupInterval = v
	}

	return cfg
}

func validate(cfg *Config) error {
	p := cfg.Pipeline
	if p.WorkerCount < 1 {
		return NewValidationError("pipeline", "workers", "worker_count", ErrInvalidValue)
	}
	if p.MaxConcurrentAudits < 1 {
		return NewValidationError("pipeline", "workers", "max_concurrent_audits", ErrInvalidValue)
	}
	if p.OrchestratorConcurrency < 1 {
		return NewValidationError("pipeline", "orchestrator", "orchestrator_concurrency", ErrInvalidValue)
	}
	if p.AnalyzerConcurrency < 1 {
		return NewValidationError("pipeline", "analyzer", "analyzer_concurrency", ErrInvalidValue)
	}
	if p.DefaultQueryCount < 6 {
		return NewValidationError("pipeline", "querygen", "default_query_count", ErrInvalidValue)
	}
	if cfg.Retention.EventTTL <= 0 {
		return NewValidationError("retention", "events", "event_ttl", ErrInvalidValue)
	}
	if cfg.Retention.CleanupInterval <= 0 {
		return NewValidationError("retention", "events", "cleanup_interval", ErrInvalidValue)
	}
	for id, prov := range cfg.Providers.GetAll() {
		if prov.Model == "" {
			return NewValidationError("provider", id, "model", ErrInvalidValue)
		}
	}
	if !cfg.Providers.Has(cfg.AnalysisProvider) {
		return NewValidationError("pipeline", "analysis_provider", cfg.AnalysisProvider, ErrProviderNotFound)
	}
	return nil
}

func envInt(key string) (int, bool) {
	v := os.Getenv(key)
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("Ignoring non-integer environment value", "key", key, "value", v)
		return 0, false
	}
	return n, true
}

func envSeconds(key string) (time.Duration, bool) {
	n, ok := envInt(key)
	if !ok {
		return 0, false
	}
	return time.Duration(n) * time.Second, true
}
