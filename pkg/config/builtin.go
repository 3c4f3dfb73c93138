package config

// Built-in provider defaults. YAML overlay and environment variables
// override these; ids match what persistence stores on response rows.

const (
	ProviderOpenAI     = "openai"
	ProviderAnthropic  = "anthropic"
	ProviderGoogle     = "google"
	ProviderPerplexity = "perplexity"
)

// DefaultAnalysisProvider answers the pipeline's internal calls (query
// generation, sentiment, extraction, summaries).
const DefaultAnalysisProvider = ProviderOpenAI

func builtinProviders() map[string]*ProviderConfig {
	return map[string]*ProviderConfig{
		ProviderOpenAI: {
			Model:           "gpt-4o-mini",
			APIKeyEnv:       "PROVIDER_OPENAI_API_KEY",
			RPM:             500,
			TPM:             200_000,
			InputCostPer1M:  0.15,
			OutputCostPer1M: 0.60,
		},
		ProviderAnthropic: {
			Model:           "claude-3-5-haiku-latest",
			APIKeyEnv:       "PROVIDER_ANTHROPIC_API_KEY",
			RPM:             300,
			TPM:             100_000,
			InputCostPer1M:  0.80,
			OutputCostPer1M: 4.00,
		},
		ProviderGoogle: {
			Model:           "gemini-2.0-flash",
			APIKeyEnv:       "PROVIDER_GOOGLE_API_KEY",
			RPM:             360,
			TPM:             120_000,
			InputCostPer1M:  0.10,
			OutputCostPer1M: 0.40,
		},
		ProviderPerplexity: {
			Model:           "sonar",
			APIKeyEnv:       "PROVIDER_PERPLEXITY_API_KEY",
			BaseURL:         "https://api.perplexity.ai",
			RPM:             60,
			TPM:             60_000,
			InputCostPer1M:  1.00,
			OutputCostPer1M: 1.00,
		},
	}
}
