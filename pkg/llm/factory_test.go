package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specularhq/specular/pkg/config"
)

func registryFixture(providers map[string]*config.ProviderConfig) *config.Config {
	return &config.Config{Providers: config.NewProviderRegistry(providers)}
}

func TestBuildProviders(t *testing.T) {
	cfg := registryFixture(map[string]*config.ProviderConfig{
		config.ProviderOpenAI:     {Model: "gpt-4o-mini", APIKey: "sk-1"},
		config.ProviderAnthropic:  {Model: "claude-3-5-haiku-latest", APIKey: "sk-2"},
		config.ProviderGoogle:     {Model: "gemini-2.0-flash", APIKey: "sk-3"},
		config.ProviderPerplexity: {Model: "sonar", APIKey: "sk-4", BaseURL: "https://api.perplexity.ai"},
	})

	providers, err := BuildProviders(cfg)
	require.NoError(t, err)
	require.Len(t, providers, 4)
	for _, id := range []string{config.ProviderOpenAI, config.ProviderAnthropic, config.ProviderGoogle, config.ProviderPerplexity} {
		require.Contains(t, providers, id)
		assert.Equal(t, id, providers[id].ID())
	}
}

func TestBuildProvidersUnknownIDNeedsBaseURL(t *testing.T) {
	cfg := registryFixture(map[string]*config.ProviderConfig{
		"groq": {Model: "llama-3.1-8b", APIKey: "gk-1"},
	})
	_, err := BuildProviders(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "groq")

	cfg = registryFixture(map[string]*config.ProviderConfig{
		"groq": {Model: "llama-3.1-8b", APIKey: "gk-1", BaseURL: "https://api.groq.com/openai/v1"},
	})
	providers, err := BuildProviders(cfg)
	require.NoError(t, err)
	assert.Contains(t, providers, "groq")
}

func TestBuildProvidersSkipsUnkeyed(t *testing.T) {
	cfg := registryFixture(map[string]*config.ProviderConfig{
		config.ProviderOpenAI: {Model: "gpt-4o-mini", APIKey: "sk-1"},
		config.ProviderGoogle: {Model: "gemini-2.0-flash"},
	})

	providers, err := BuildProviders(cfg)
	require.NoError(t, err)
	assert.Contains(t, providers, config.ProviderOpenAI)
	assert.NotContains(t, providers, config.ProviderGoogle)
}
