package llm

import (
	"fmt"
	"log/slog"

	"github.com/specularhq/specular/pkg/config"
)

// BuildProviders constructs one adapter per registered provider id that has
// an API key. Unkeyed providers are skipped so audits naming them fail at
// submission instead of burning a full fan-out on auth errors. Ids without a
// dedicated wire client must carry a base URL and are treated as
// OpenAI-compatible.
func BuildProviders(cfg *config.Config) (map[string]Provider, error) {
	providers := make(map[string]Provider)
	for id, pc := range cfg.Providers.GetAll() {
		if pc.APIKey == "" {
			slog.Warn("Skipping provider with no API key", "provider", id)
			continue
		}
		switch id {
		case config.ProviderOpenAI, config.ProviderPerplexity:
			providers[id] = NewOpenAIClient(id, pc.APIKey, pc.BaseURL, pc.Model)
		case config.ProviderAnthropic:
			providers[id] = NewAnthropicClient(id, pc.APIKey, pc.BaseURL, pc.Model)
		case config.ProviderGoogle:
			providers[id] = NewGeminiClient(id, pc.APIKey, pc.BaseURL, pc.Model)
		default:
			if pc.BaseURL == "" {
				return nil, fmt.Errorf("provider %q has no wire client and no base_url", id)
			}
			providers[id] = NewOpenAIClient(id, pc.APIKey, pc.BaseURL, pc.Model)
		}
	}
	return providers, nil
}
