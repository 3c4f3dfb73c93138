package ratelimit

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specularhq/specular/pkg/config"
	"github.com/specularhq/specular/pkg/llm"
)

// stubProvider replays a scripted sequence of results and records the
// requests it saw.
type stubProvider struct {
	id      string
	results []stubResult
	mu      sync.Mutex
	calls   []llm.CompletionRequest
}

type stubResult struct {
	resp *llm.CompletionResponse
	err  error
}

func (s *stubProvider) ID() string { return s.id }

func (s *stubProvider) Complete(_ context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, req)
	i := len(s.calls) - 1
	if i >= len(s.results) {
		i = len(s.results) - 1
	}
	return s.results[i].resp, s.results[i].err
}

func (s *stubProvider) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

func fastPolicy() RetryPolicy {
	return RetryPolicy{
		MaxRetries:   3,
		BackoffBase:  time.Millisecond,
		BackoffCap:   5 * time.Millisecond,
		QuotaBackoff: 2 * time.Millisecond,
	}
}

func newTestCaller(p *stubProvider) *Caller {
	return NewCaller(
		map[string]llm.Provider{p.id: p},
		NewRegistry(nil),
		fastPolicy(),
	)
}

func ok(text string) stubResult {
	return stubResult{resp: &llm.CompletionResponse{Text: text, FinishReason: llm.FinishStop}}
}

func fail(kind llm.ErrorKind) stubResult {
	return stubResult{err: &llm.ProviderError{Provider: "stub", Kind: kind, Message: "boom"}}
}

func TestCallerRetriesTransientThenSucceeds(t *testing.T) {
	p := &stubProvider{id: "stub", results: []stubResult{
		fail(llm.KindTransient),
		fail(llm.KindTransient),
		ok("third time lucky"),
	}}
	caller := newTestCaller(p)

	resp, err := caller.Complete(context.Background(), "stub", llm.CompletionRequest{Prompt: "q"})

	require.NoError(t, err)
	assert.Equal(t, "third time lucky", resp.Text)
	assert.Equal(t, 3, p.callCount())
}

func TestCallerRetriesQuota(t *testing.T) {
	p := &stubProvider{id: "stub", results: []stubResult{
		fail(llm.KindQuota),
		ok("recovered"),
	}}
	caller := newTestCaller(p)

	resp, err := caller.Complete(context.Background(), "stub", llm.CompletionRequest{Prompt: "q"})

	require.NoError(t, err)
	assert.Equal(t, "recovered", resp.Text)
	assert.Equal(t, 2, p.callCount())
}

func TestCallerPermanentPropagatesImmediately(t *testing.T) {
	p := &stubProvider{id: "stub", results: []stubResult{fail(llm.KindPermanent)}}
	caller := newTestCaller(p)

	_, err := caller.Complete(context.Background(), "stub", llm.CompletionRequest{Prompt: "q"})

	require.Error(t, err)
	assert.Equal(t, llm.KindPermanent, llm.KindOf(err))
	assert.Equal(t, 1, p.callCount())
}

func TestCallerExhaustsRetries(t *testing.T) {
	p := &stubProvider{id: "stub", results: []stubResult{fail(llm.KindTransient)}}
	caller := newTestCaller(p)

	_, err := caller.Complete(context.Background(), "stub", llm.CompletionRequest{Prompt: "q"})

	require.Error(t, err)
	assert.Equal(t, llm.KindTransient, llm.KindOf(err))
	assert.Equal(t, 4, p.callCount(), "initial attempt plus three retries")
}

func TestCallerDropsCapAfterEmptyTruncation(t *testing.T) {
	p := &stubProvider{id: "stub", results: []stubResult{
		{resp: &llm.CompletionResponse{Text: "", FinishReason: llm.FinishLength, OutputTokens: 50}},
		ok("full answer"),
	}}
	caller := newTestCaller(p)

	resp, err := caller.Complete(context.Background(), "stub", llm.CompletionRequest{
		Prompt:          "q",
		MaxOutputTokens: 50,
	})

	require.NoError(t, err)
	assert.Equal(t, "full answer", resp.Text)
	require.Equal(t, 2, p.callCount())
	p.mu.Lock()
	defer p.mu.Unlock()
	assert.Equal(t, 50, p.calls[0].MaxOutputTokens)
	assert.Equal(t, 0, p.calls[1].MaxOutputTokens, "retry must drop the output cap")
}

func TestCallerKeepsTruncatedNonEmptyResponse(t *testing.T) {
	p := &stubProvider{id: "stub", results: []stubResult{
		{resp: &llm.CompletionResponse{Text: "partial", FinishReason: llm.FinishLength}},
	}}
	caller := newTestCaller(p)

	resp, err := caller.Complete(context.Background(), "stub", llm.CompletionRequest{
		Prompt:          "q",
		MaxOutputTokens: 50,
	})

	require.NoError(t, err)
	assert.Equal(t, "partial", resp.Text)
	assert.Equal(t, llm.FinishLength, resp.FinishReason)
	assert.Equal(t, 1, p.callCount())
}

func TestCallerUnknownProvider(t *testing.T) {
	caller := NewCaller(map[string]llm.Provider{}, NewRegistry(nil), fastPolicy())

	_, err := caller.Complete(context.Background(), "nope", llm.CompletionRequest{Prompt: "q"})

	var pe *llm.ProviderError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, llm.KindPermanent, pe.Kind)
	assert.Equal(t, "nope", pe.Provider)
}

func TestCallerHonorsCancellation(t *testing.T) {
	p := &stubProvider{id: "stub", results: []stubResult{fail(llm.KindTransient)}}
	caller := NewCaller(
		map[string]llm.Provider{p.id: p},
		NewRegistry(nil),
		RetryPolicy{MaxRetries: 3, BackoffBase: time.Minute, BackoffCap: time.Minute},
	)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := caller.Complete(ctx, "stub", llm.CompletionRequest{Prompt: "q"})
		done <- err
	}()

	// Let the first attempt fail, then cancel during backoff.
	require.Eventually(t, func() bool { return p.callCount() == 1 }, time.Second, time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("Complete did not return after cancellation")
	}
	assert.Equal(t, 1, p.callCount())
}

func TestCallerDefaultsRequestTimeout(t *testing.T) {
	p := &stubProvider{id: "stub", results: []stubResult{ok("hi")}}
	caller := newTestCaller(p)

	_, err := caller.Complete(context.Background(), "stub", llm.CompletionRequest{Prompt: "q"})

	require.NoError(t, err)
	p.mu.Lock()
	defer p.mu.Unlock()
	assert.Equal(t, DefaultRequestTimeout, p.calls[0].Timeout)
}

func TestCallerProviders(t *testing.T) {
	caller := NewCaller(map[string]llm.Provider{
		"openai":    &stubProvider{id: "openai"},
		"anthropic": &stubProvider{id: "anthropic"},
	}, NewRegistry(nil), fastPolicy())

	assert.Equal(t, []string{"anthropic", "openai"}, caller.Providers())
	assert.True(t, caller.Has("openai"))
	assert.False(t, caller.Has("google"))
}

func TestRegistryWait(t *testing.T) {
	t.Run("unregistered provider passes through", func(t *testing.T) {
		r := NewRegistry(nil)
		require.NoError(t, r.Wait(context.Background(), "anything", 1_000_000))
	})

	t.Run("zero limits disable both buckets", func(t *testing.T) {
		r := NewRegistry(map[string]*config.ProviderConfig{
			"p": {Model: "m"},
		})
		for range 50 {
			require.NoError(t, r.Wait(context.Background(), "p", 10_000))
		}
	})

	t.Run("exhausted rpm bucket blocks until deadline", func(t *testing.T) {
		r := NewRegistry(map[string]*config.ProviderConfig{
			"p": {Model: "m", RPM: 1},
		})
		require.NoError(t, r.Wait(context.Background(), "p", 1))

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()
		err := r.Wait(ctx, "p", 1)
		require.Error(t, err, "second request inside the same minute must not be admitted")
	})

	t.Run("oversized token request is clamped to burst", func(t *testing.T) {
		r := NewRegistry(map[string]*config.ProviderConfig{
			"p": {Model: "m", TPM: 100},
		})
		require.NoError(t, r.Wait(context.Background(), "p", 5_000))
	})

	t.Run("cancelled context returns immediately", func(t *testing.T) {
		r := NewRegistry(map[string]*config.ProviderConfig{
			"p": {Model: "m", RPM: 1},
		})
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		assert.ErrorIs(t, r.Wait(ctx, "p", 1), context.Canceled)
	})
}

func TestEstimateTokens(t *testing.T) {
	withCap := estimateTokens(llm.CompletionRequest{Prompt: "12345678", MaxOutputTokens: 100})
	assert.Equal(t, 102, withCap)

	noCap := estimateTokens(llm.CompletionRequest{Prompt: "12345678"})
	assert.Equal(t, 2+defaultOutputGuess, noCap)
}
