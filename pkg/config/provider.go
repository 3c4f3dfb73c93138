package config

import (
	"fmt"
	"sync"
)

// ProviderConfig defines one LLM provider the orchestrator can fan out to.
type ProviderConfig struct {
	// Model is the default model requested from this provider (required).
	Model string `yaml:"model" validate:"required"`

	// APIKeyEnv is the environment variable holding the API key.
	APIKeyEnv string `yaml:"api_key_env,omitempty"`

	// APIKey is resolved from APIKeyEnv at load time; never set in YAML.
	APIKey string `yaml:"-"`

	// BaseURL overrides the provider's default endpoint.
	BaseURL string `yaml:"base_url,omitempty"`

	// RPM caps requests per minute across the whole process.
	RPM int `yaml:"rpm,omitempty"`

	// TPM caps tokens per minute across the whole process.
	TPM int `yaml:"tpm,omitempty"`

	// InputCostPer1M / OutputCostPer1M price tokens in USD for cost
	// estimates. Zero disables the estimate.
	InputCostPer1M  float64 `yaml:"input_cost_per_1m,omitempty"`
	OutputCostPer1M float64 `yaml:"output_cost_per_1m,omitempty"`
}

// ProviderRegistry stores provider configurations in memory with thread-safe access.
type ProviderRegistry struct {
	providers map[string]*ProviderConfig
	mu        sync.RWMutex
}

// NewProviderRegistry creates a new provider registry.
func NewProviderRegistry(providers map[string]*ProviderConfig) *ProviderRegistry {
	// Defensive copy to prevent external mutation
	copied := make(map[string]*ProviderConfig, len(providers))
	for k, v := range providers {
		copied[k] = v
	}
	return &ProviderRegistry{
		providers: copied,
	}
}

// Get retrieves a provider configuration by id (thread-safe).
func (r *ProviderRegistry) Get(id string) (*ProviderConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	provider, exists := r.providers[id]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrProviderNotFound, id)
	}
	return provider, nil
}

// GetAll returns all provider configurations (thread-safe, returns copy).
func (r *ProviderRegistry) GetAll() map[string]*ProviderConfig {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string]*ProviderConfig, len(r.providers))
	for k, v := range r.providers {
		result[k] = v
	}
	return result
}

// Has checks if a provider exists in the registry (thread-safe).
func (r *ProviderRegistry) Has(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.providers[id]
	return exists
}

// IDs returns the registered provider ids (thread-safe).
func (r *ProviderRegistry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.providers))
	for k := range r.providers {
		ids = append(ids, k)
	}
	return ids
}
