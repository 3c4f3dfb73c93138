package config

// Config is the umbrella configuration object returned by Initialize() and
// passed explicitly through constructors. No component outside this package
// reads the environment.
type Config struct {
	configDir string // Configuration directory path (for reference)

	// Pipeline and worker pool configuration
	Pipeline *PipelineConfig

	// Retention controls the audit_events cleanup loop
	Retention *RetentionConfig

	// Provider registry: every LLM backend the orchestrator may call
	Providers *ProviderRegistry

	// AnalysisProvider is the provider id used for the pipeline's own
	// calls (query generation, sentiment, extraction, summaries)
	AnalysisProvider string

	// OpsAddr is the listen address of the operational HTTP server
	OpsAddr string
}

// Initialize is defined in loader.go

// Stats contains statistics about loaded configuration
type Stats struct {
	Providers int
	Keyed     int
}

// Stats returns configuration statistics for logging/monitoring
func (c *Config) Stats() Stats {
	s := Stats{}
	if c.Providers != nil {
		all := c.Providers.GetAll()
		s.Providers = len(all)
		for _, p := range all {
			if p.APIKey != "" {
				s.Keyed++
			}
		}
	}
	return s
}

// ConfigDir returns the configuration directory path
func (c *Config) ConfigDir() string {
	return c.configDir
}

// GetProvider retrieves a provider configuration by id.
// This is a convenience method that wraps ProviderRegistry.Get().
func (c *Config) GetProvider(id string) (*ProviderConfig, error) {
	return c.Providers.Get(id)
}
