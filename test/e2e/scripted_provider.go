// Package e2e provides end-to-end test infrastructure for the audit
// pipeline: a scripted LLM provider and a harness that boots a complete
// specular instance against a test database.
package e2e

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/specularhq/specular/pkg/llm"
)

// RequestKind identifies which pipeline subtask issued a completion request.
type RequestKind string

const (
	KindGeneration     RequestKind = "generation"
	KindCollection     RequestKind = "collection"
	KindSentiment      RequestKind = "sentiment"
	KindCompetitors    RequestKind = "competitors"
	KindContext        RequestKind = "context"
	KindRecommendation RequestKind = "recommendation"
	KindInsights       RequestKind = "insights"
	KindSummary        RequestKind = "summary"
)

// ClassifyRequest maps a completion request onto the pipeline subtask that
// issued it, keyed on the stage prompts. Collection is the only caller that
// sends a bare consumer question without a system prompt, so it is the
// fallback.
func ClassifyRequest(req llm.CompletionRequest) RequestKind {
	switch {
	case strings.Contains(req.System, "market research assistant"):
		return KindGeneration
	case strings.Contains(req.System, "reviewing answers"):
		switch {
		case strings.HasPrefix(req.Prompt, "Assess the sentiment"):
			return KindSentiment
		case strings.HasPrefix(req.Prompt, "List the competitor"):
			return KindCompetitors
		case strings.HasPrefix(req.Prompt, "Grade how completely"):
			return KindContext
		default:
			return KindRecommendation
		}
	case strings.Contains(req.System, "strategist"):
		return KindInsights
	case strings.Contains(req.System, "executive"):
		return KindSummary
	default:
		return KindCollection
	}
}

// RespondFunc produces one scripted completion. call counts this kind's
// calls on this provider, starting at zero. Handlers run on orchestrator and
// analyzer goroutines, so they must be safe for concurrent use.
type RespondFunc func(ctx context.Context, call int, req llm.CompletionRequest) (*llm.CompletionResponse, error)

// ScriptedProvider implements llm.Provider with one handler per request
// kind. Kind routing replaces a sequential script because collection and
// analysis calls fan out concurrently, so arrival order is nondeterministic.
type ScriptedProvider struct {
	id string

	mu       sync.Mutex
	handlers map[RequestKind]RespondFunc
	counts   map[RequestKind]int
	prompts  map[RequestKind][]string
}

// NewScriptedProvider creates an empty provider. Unscripted kinds fail with
// a permanent error, so a missing handler surfaces as a failed cell or a
// failed audit instead of a hang.
func NewScriptedProvider(id string) *ScriptedProvider {
	return &ScriptedProvider{
		id:       id,
		handlers: make(map[RequestKind]RespondFunc),
		counts:   make(map[RequestKind]int),
		prompts:  make(map[RequestKind][]string),
	}
}

// ID implements llm.Provider.
func (p *ScriptedProvider) ID() string { return p.id }

// On registers the handler for one request kind, replacing any previous one.
// Returns the provider for chaining.
func (p *ScriptedProvider) On(kind RequestKind, fn RespondFunc) *ScriptedProvider {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.handlers[kind] = fn
	return p
}

// OnAll registers the same handler for every request kind.
func (p *ScriptedProvider) OnAll(fn RespondFunc) *ScriptedProvider {
	kinds := []RequestKind{
		KindGeneration, KindCollection, KindSentiment, KindCompetitors,
		KindContext, KindRecommendation, KindInsights, KindSummary,
	}
	for _, kind := range kinds {
		p.On(kind, fn)
	}
	return p
}

// Complete implements llm.Provider.
func (p *ScriptedProvider) Complete(ctx context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
	kind := ClassifyRequest(req)

	p.mu.Lock()
	fn, ok := p.handlers[kind]
	call := p.counts[kind]
	p.counts[kind] = call + 1
	p.prompts[kind] = append(p.prompts[kind], req.Prompt)
	p.mu.Unlock()

	if !ok {
		return nil, &llm.ProviderError{
			Provider: p.id,
			Kind:     llm.KindPermanent,
			Message:  fmt.Sprintf("no script for %s request", kind),
		}
	}
	return fn(ctx, call, req)
}

// Calls returns how many requests of the kind this provider has seen.
func (p *ScriptedProvider) Calls(kind RequestKind) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.counts[kind]
}

// Prompts returns a copy of the prompts received for the kind, in arrival
// order.
func (p *ScriptedProvider) Prompts(kind RequestKind) []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.prompts[kind]...)
}

// Text wraps canned completion text the way real adapters shape responses.
func Text(s string) *llm.CompletionResponse {
	return &llm.CompletionResponse{
		Text:         s,
		FinishReason: llm.FinishStop,
		Model:        "scripted",
		InputTokens:  40,
		OutputTokens: 120,
		LatencyMs:    3,
	}
}

// RespondText always returns the same completion text.
func RespondText(s string) RespondFunc {
	return func(context.Context, int, llm.CompletionRequest) (*llm.CompletionResponse, error) {
		return Text(s), nil
	}
}

// RespondJSON marshals v once and returns it as the completion text on
// every call.
func RespondJSON(v any) RespondFunc {
	payload, err := json.Marshal(v)
	if err != nil {
		panic(fmt.Sprintf("e2e: RespondJSON marshal: %v", err))
	}
	return RespondText(string(payload))
}

// RespondError always fails with err.
func RespondError(err error) RespondFunc {
	return func(context.Context, int, llm.CompletionRequest) (*llm.CompletionResponse, error) {
		return nil, err
	}
}

// RespondUnavailable fails every call the way a 503 from the wire does.
func RespondUnavailable(provider string) RespondFunc {
	return RespondError(&llm.ProviderError{
		Provider:   provider,
		Kind:       llm.KindTransient,
		StatusCode: 503,
		Message:    "service unavailable",
	})
}

// generationEnvelope mirrors the JSON contract of the generation prompts.
type generationEnvelope struct {
	Queries []generationItem `json:"queries"`
}

type generationItem struct {
	Text     string  `json:"text"`
	Category string  `json:"category"`
	Intent   string  `json:"intent"`
	Priority float64 `json:"priority"`
}

// GenerationBatch builds a well-formed generation reply with n unique
// queries cycling the six buyer-journey categories. offset shifts the query
// numbering so successive batches stay unique within one audit.
func GenerationBatch(categories []string, n, offset int) *llm.CompletionResponse {
	items := make([]generationItem, n)
	for i := 0; i < n; i++ {
		category := categories[i%len(categories)]
		items[i] = generationItem{
			Text:     fmt.Sprintf("what should a buyer at the %s stage know about analytics platforms (question %02d)", category, offset+i),
			Category: category,
			Intent:   "comparison",
			Priority: 0.6,
		}
	}
	payload, err := json.Marshal(generationEnvelope{Queries: items})
	if err != nil {
		panic(fmt.Sprintf("e2e: generation batch marshal: %v", err))
	}
	return Text(string(payload))
}
