// Package ratelimit wraps LLM providers with process-wide request and token
// budgets plus bounded retries, so the fan-out stages can hammer the provider
// set without tripping upstream limits.
package ratelimit

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/time/rate"

	"github.com/specularhq/specular/pkg/config"
)

// bucket holds the two limiters for one provider: requests per minute and
// tokens per minute. A nil limiter means that dimension is uncapped.
type bucket struct {
	rpm *rate.Limiter
	tpm *rate.Limiter
}

// Registry owns one bucket per provider. A single Registry is shared by every
// worker in the process so the per-minute budgets hold across concurrent
// audits.
type Registry struct {
	buckets map[string]*bucket
	mu      sync.RWMutex
}

// NewRegistry builds buckets from provider configuration. RPM or TPM of zero
// leaves that dimension unlimited.
func NewRegistry(providers map[string]*config.ProviderConfig) *Registry {
	buckets := make(map[string]*bucket, len(providers))
	for id, pc := range providers {
		b := &bucket{}
		if pc.RPM > 0 {
			// Burst equals the full minute budget, refilled continuously.
			b.rpm = rate.NewLimiter(rate.Limit(float64(pc.RPM)/60.0), pc.RPM)
		}
		if pc.TPM > 0 {
			b.tpm = rate.NewLimiter(rate.Limit(float64(pc.TPM)/60.0), pc.TPM)
		}
		buckets[id] = b
	}
	return &Registry{buckets: buckets}
}

// Wait blocks until the provider's budgets admit one request costing
// approximately tokens tokens. Unregistered providers pass through unlimited.
// The wait honors context cancellation.
func (r *Registry) Wait(ctx context.Context, provider string, tokens int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.RLock()
	b, ok := r.buckets[provider]
	r.mu.RUnlock()
	if !ok {
		return nil
	}

	if b.rpm != nil {
		if err := b.rpm.Wait(ctx); err != nil {
			return fmt.Errorf("rate limit wait for %s: %w", provider, err)
		}
	}
	if b.tpm != nil {
		n := tokens
		if burst := b.tpm.Burst(); n > burst {
			// A single oversized request must still be admittable.
			n = burst
		}
		if n > 0 {
			if err := b.tpm.WaitN(ctx, n); err != nil {
				return fmt.Errorf("token limit wait for %s: %w", provider, err)
			}
		}
	}
	return nil
}
