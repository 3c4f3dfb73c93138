package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeDefaults(t *testing.T) {
	t.Setenv("PROVIDER_OPENAI_API_KEY", "test-key")

	ctx := context.Background()
	cfg, err := Initialize(ctx, t.TempDir())

	require.NoError(t, err)
	require.NotNil(t, cfg)

	// Built-in providers are registered
	assert.True(t, cfg.Providers.Has(ProviderOpenAI))
	assert.True(t, cfg.Providers.Has(ProviderAnthropic))
	assert.True(t, cfg.Providers.Has(ProviderGoogle))
	assert.True(t, cfg.Providers.Has(ProviderPerplexity))

	// Pipeline defaults
	assert.Equal(t, 2, cfg.Pipeline.WorkerCount)
	assert.Equal(t, 8, cfg.Pipeline.MaxConcurrentAudits)
	assert.Equal(t, 16, cfg.Pipeline.OrchestratorConcurrency)
	assert.Equal(t, 10, cfg.Pipeline.AnalyzerConcurrency)
	assert.Equal(t, 48, cfg.Pipeline.DefaultQueryCount)
	assert.Equal(t, 30*time.Second, cfg.Pipeline.HeartbeatInterval)
	assert.Equal(t, 5*time.Minute, cfg.Pipeline.StuckThreshold)
	assert.Equal(t, 5*time.Second, cfg.Pipeline.DomainFetchTimeout)

	// Retention defaults
	assert.Equal(t, 24*time.Hour, cfg.Retention.EventTTL)
	assert.Equal(t, 1*time.Hour, cfg.Retention.CleanupInterval)

	assert.Equal(t, DefaultAnalysisProvider, cfg.AnalysisProvider)

	stats := cfg.Stats()
	assert.Equal(t, 4, stats.Providers)
	assert.Equal(t, 1, stats.Keyed)
}

func TestInitializeEnvOverrides(t *testing.T) {
	t.Setenv("WORKER_COUNT", "4")
	t.Setenv("MAX_CONCURRENT_AUDITS", "3")
	t.Setenv("C_ORCHESTRATOR", "8")
	t.Setenv("C_ANALYZER", "3")
	t.Setenv("DEFAULT_QUERY_COUNT", "24")
	t.Setenv("HEARTBEAT_INTERVAL_SECONDS", "10")
	t.Setenv("STUCK_AUDIT_SECONDS", "120")
	t.Setenv("DOMAIN_FETCH_TIMEOUT_SECONDS", "2")
	t.Setenv("EVENT_TTL_SECONDS", "3600")
	t.Setenv("EVENT_CLEANUP_INTERVAL_SECONDS", "600")
	t.Setenv("PROVIDER_OPENAI_RPM", "100")
	t.Setenv("PROVIDER_OPENAI_TPM", "50000")
	t.Setenv("PROVIDER_OPENAI_MODEL", "gpt-4o")
	t.Setenv("ANALYSIS_PROVIDER", "anthropic")
	t.Setenv("OPS_ADDR", ":9090")

	cfg, err := Initialize(context.Background(), t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.Pipeline.WorkerCount)
	assert.Equal(t, 3, cfg.Pipeline.MaxConcurrentAudits)
	assert.Equal(t, 8, cfg.Pipeline.OrchestratorConcurrency)
	assert.Equal(t, 3, cfg.Pipeline.AnalyzerConcurrency)
	assert.Equal(t, 24, cfg.Pipeline.DefaultQueryCount)
	assert.Equal(t, 10*time.Second, cfg.Pipeline.HeartbeatInterval)
	assert.Equal(t, 2*time.Minute, cfg.Pipeline.StuckThreshold)
	assert.Equal(t, 2*time.Second, cfg.Pipeline.DomainFetchTimeout)
	assert.Equal(t, 1*time.Hour, cfg.Retention.EventTTL)
	assert.Equal(t, 10*time.Minute, cfg.Retention.CleanupInterval)

	openai, err := cfg.GetProvider(ProviderOpenAI)
	require.NoError(t, err)
	assert.Equal(t, 100, openai.RPM)
	assert.Equal(t, 50000, openai.TPM)
	assert.Equal(t, "gpt-4o", openai.Model)

	assert.Equal(t, "anthropic", cfg.AnalysisProvider)
	assert.Equal(t, ":9090", cfg.OpsAddr)
}

func TestInitializeYAMLOverlay(t *testing.T) {
	configDir := t.TempDir()
	yaml := `
providers:
  openai:
    model: gpt-4.1
    rpm: 42
  anthropic:
    model: claude-sonnet-4-0
analysis_provider: google
`
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "providers.yaml"), []byte(yaml), 0o644))

	cfg, err := Initialize(context.Background(), configDir)
	require.NoError(t, err)

	openai, err := cfg.GetProvider(ProviderOpenAI)
	require.NoError(t, err)
	assert.Equal(t, "gpt-4.1", openai.Model)
	assert.Equal(t, 42, openai.RPM)
	// Unset fields keep built-in defaults
	assert.Equal(t, 200_000, openai.TPM)

	anthropic, err := cfg.GetProvider(ProviderAnthropic)
	require.NoError(t, err)
	assert.Equal(t, "claude-sonnet-4-0", anthropic.Model)

	assert.Equal(t, "google", cfg.AnalysisProvider)
}

func TestInitializeEnvBeatsYAML(t *testing.T) {
	configDir := t.TempDir()
	yaml := `
providers:
  openai:
    model: from-yaml
`
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "providers.yaml"), []byte(yaml), 0o644))
	t.Setenv("PROVIDER_OPENAI_MODEL", "from-env")

	cfg, err := Initialize(context.Background(), configDir)
	require.NoError(t, err)

	openai, err := cfg.GetProvider(ProviderOpenAI)
	require.NoError(t, err)
	assert.Equal(t, "from-env", openai.Model)
}

func TestInitializeRejectsInvalidValues(t *testing.T) {
	t.Setenv("WORKER_COUNT", "0")

	_, err := Initialize(context.Background(), t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidationFailed)
}

func TestInitializeUnknownAnalysisProvider(t *testing.T) {
	t.Setenv("ANALYSIS_PROVIDER", "nonexistent")

	_, err := Initialize(context.Background(), t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidationFailed)
}

func TestInitializeBadYAML(t *testing.T) {
	configDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "providers.yaml"), []byte("providers: ["), 0o644))

	_, err := Initialize(context.Background(), configDir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidYAML)
}

func TestProviderRegistry(t *testing.T) {
	reg := NewProviderRegistry(map[string]*ProviderConfig{
		"openai": {Model: "gpt-4o-mini"},
	})

	assert.True(t, reg.Has("openai"))
	assert.False(t, reg.Has("google"))

	p, err := reg.Get("openai")
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o-mini", p.Model)

	_, err = reg.Get("google")
	assert.ErrorIs(t, err, ErrProviderNotFound)

	assert.ElementsMatch(t, []string{"openai"}, reg.IDs())
}

func TestEnvIntIgnoresGarbage(t *testing.T) {
	t.Setenv("WORKER_COUNT", "not-a-number")

	cfg, err := Initialize(context.Background(), t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Pipeline.WorkerCount)
}
