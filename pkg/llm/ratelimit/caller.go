package ratelimit

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/specularhq/specular/pkg/llm"
	"github.com/specularhq/specular/pkg/metrics"
)

const (
	// DefaultRequestTimeout bounds a single provider call when the request
	// does not carry its own timeout.
	DefaultRequestTimeout = 2 * time.Minute

	// defaultOutputGuess stands in for the unknown output size when a
	// request carries no cap. Four characters per token is the usual rule
	// of thumb for the input side.
	defaultOutputGuess = 1024
)

// RetryPolicy controls the bounded retry loop around provider calls.
type RetryPolicy struct {
	// MaxRetries is the number of retries after the first attempt.
	MaxRetries int

	// BackoffBase seeds the exponential backoff ceiling (doubled per retry).
	BackoffBase time.Duration

	// BackoffCap bounds the backoff ceiling.
	BackoffCap time.Duration

	// QuotaBackoff is the fixed, longer wait applied to quota errors.
	QuotaBackoff time.Duration
}

// DefaultRetryPolicy returns the standard policy: three retries with
// full-jitter exponential backoff between 500ms and 10s, and a 20s pause
// for quota errors.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxRetries:   3,
		BackoffBase:  500 * time.Millisecond,
		BackoffCap:   10 * time.Second,
		QuotaBackoff: 20 * time.Second,
	}
}

// Caller routes completion requests to a provider through the shared rate
// limiter and retries transient and quota failures. Permanent, data, and
// fatal errors propagate immediately.
type Caller struct {
	providers map[string]llm.Provider
	limits    *Registry
	retry     RetryPolicy
	logger    *slog.Logger
}

// NewCaller wraps the given providers with the shared limiter registry.
func NewCaller(providers map[string]llm.Provider, limits *Registry, retry RetryPolicy) *Caller {
	return &Caller{
		providers: providers,
		limits:    limits,
		retry:     retry,
		logger:    slog.Default().With("component", "llm_caller"),
	}
}

// Has reports whether a provider id is routable.
func (c *Caller) Has(provider string) bool {
	_, ok := c.providers[provider]
	return ok
}

// Providers returns the routable provider ids, sorted.
func (c *Caller) Providers() []string {
	ids := make([]string, 0, len(c.providers))
	for id := range c.providers {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Complete executes one completion against the named provider. Each attempt
// waits on the provider's RPM and TPM buckets first. A capped call that comes
// back truncated and empty is retried with the cap dropped.
func (c *Caller) Complete(ctx context.Context, provider string, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
	p, ok := c.providers[provider]
	if !ok {
		return nil, &llm.ProviderError{
			Provider: provider,
			Kind:     llm.KindPermanent,
			Message:  "provider not configured",
		}
	}
	if req.Timeout <= 0 {
		req.Timeout = DefaultRequestTimeout
	}

	var lastErr error
	for attempt := 0; attempt <= c.retry.MaxRetries; attempt++ {
		if attempt > 0 {
			delay := c.backoff(attempt, lastErr)
			c.logger.Debug("Retrying provider call",
				"provider", provider,
				"attempt", attempt,
				"delay", delay,
				"error", lastErr)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}

		waitStart := time.Now()
		if err := c.limits.Wait(ctx, provider, estimateTokens(req)); err != nil {
			return nil, err
		}
		metrics.RateLimitWait.WithLabelValues(provider).Observe(time.Since(waitStart).Seconds())

		resp, err := p.Complete(ctx, req)
		if err == nil {
			metrics.ProviderCalls.WithLabelValues(provider, "ok").Inc()
			if req.MaxOutputTokens > 0 && resp.FinishReason == llm.FinishLength && resp.Text == "" {
				// The cap swallowed the whole answer (reasoning models can
				// burn the entire budget before emitting text). Drop it and
				// go again.
				req.MaxOutputTokens = 0
				lastErr = &llm.ProviderError{
					Provider: provider,
					Kind:     llm.KindTransient,
					Message:  "empty response at output token cap",
				}
				continue
			}
			return resp, nil
		}
		metrics.ProviderCalls.WithLabelValues(provider, string(llm.KindOf(err))).Inc()

		if ctx.Err() != nil {
			return nil, err
		}
		switch llm.KindOf(err) {
		case llm.KindTransient, llm.KindQuota:
			lastErr = err
		default:
			return nil, err
		}
	}
	return nil, lastErr
}

// backoff picks the wait before the given retry attempt (1-based). Transient
// errors get full jitter: uniform in [0, min(cap, base*2^(attempt-1))].
func (c *Caller) backoff(attempt int, lastErr error) time.Duration {
	if llm.KindOf(lastErr) == llm.KindQuota {
		return c.retry.QuotaBackoff
	}
	ceil := c.retry.BackoffBase << (attempt - 1)
	if ceil <= 0 || ceil > c.retry.BackoffCap {
		ceil = c.retry.BackoffCap
	}
	return time.Duration(rand.Int64N(int64(ceil) + 1))
}

// estimateTokens approximates the request's token cost for TPM accounting.
func estimateTokens(req llm.CompletionRequest) int {
	out := req.MaxOutputTokens
	if out <= 0 {
		out = defaultOutputGuess
	}
	return (len(req.Prompt)+len(req.System))/4 + out
}
