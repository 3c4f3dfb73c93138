// Package querygen turns a company profile into a buyer-journey-balanced set
// of audit queries via LLM generation, with deduplication and per-category
// balancing applied to whatever the model returns.
package querygen

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/specularhq/specular/ent"
	"github.com/specularhq/specular/pkg/llm"
	"github.com/specularhq/specular/pkg/models"
)

// ErrInsufficientQueries is returned when the first generation call yields
// fewer than a quarter of the requested queries. That little coverage cannot
// produce a meaningful audit, so the failure is permanent.
var ErrInsufficientQueries = errors.New("insufficient queries generated")

// maxTopUps bounds the follow-up calls for the remaining count before the
// generator settles for the partial set.
const maxTopUps = 2

// Completer is the slice of the rate-limited caller the generator needs.
type Completer interface {
	Complete(ctx context.Context, provider string, req llm.CompletionRequest) (*llm.CompletionResponse, error)
}

// Generator produces unique, category-balanced queries from a company
// profile. Stateless across audits; safe for concurrent use.
type Generator struct {
	completer Completer
	provider  string
	model     string
}

// NewGenerator creates a Generator that runs its prompts against the given
// provider and model.
func NewGenerator(completer Completer, provider, model string) *Generator {
	return &Generator{
		completer: completer,
		provider:  provider,
		model:     model,
	}
}

// Generate returns up to n unique queries for the company. One call asks for
// the full batch; up to maxTopUps follow-ups chase the shortfall left after
// deduplication and category capping. A first call below 25% of n fails with
// ErrInsufficientQueries; exhausted top-ups return the partial set.
func (g *Generator) Generate(ctx context.Context, company *ent.Company, n int) ([]models.GeneratedQuery, error) {
	if n < 1 {
		return nil, fmt.Errorf("query count must be positive, got %d", n)
	}

	profileFacts := buildProfileFacts(company)
	categoryCap := (n+5)/6 + 1
	acc := newAccumulator(n, categoryCap)

	candidates, err := g.requestQueries(ctx, buildGenerationPrompt(profileFacts, n, categoryCap))
	if err != nil {
		return nil, fmt.Errorf("query generation failed: %w", err)
	}
	acc.addAll(candidates)

	if acc.len()*4 < n {
		return nil, fmt.Errorf("%w: first call yielded %d of %d", ErrInsufficientQueries, acc.len(), n)
	}

	for attempt := 1; attempt <= maxTopUps && acc.len() < n; attempt++ {
		remaining := n - acc.len()
		candidates, err := g.requestQueries(ctx, buildTopUpPrompt(profileFacts, remaining, acc.texts()))
		if err != nil {
			if ctx.Err() != nil {
				return nil, fmt.Errorf("query generation cancelled: %w", ctx.Err())
			}
			slog.Warn("query top-up failed, keeping partial set",
				"attempt", attempt,
				"have", acc.len(),
				"want", n,
				"error", err)
			break
		}
		before := acc.len()
		acc.addAll(candidates)
		if acc.len() == before {
			// Model has nothing new to offer; further calls would only
			// return rephrasings of what we already dropped.
			break
		}
	}

	queries := acc.queries()
	slog.Info("query generation complete",
		"company", company.Name,
		"requested", n,
		"generated", len(queries))
	return queries, nil
}

// generationReply is the JSON contract both prompts require.
type generationReply struct {
	Queries []candidate `json:"queries"`
}

type candidate struct {
	Text     string   `json:"text"`
	Category string   `json:"category"`
	Intent   string   `json:"intent"`
	Priority *float64 `json:"priority"`
}

// requestQueries performs one generation call. Schema mismatches in the
// reply get a single re-ask; any other failure propagates.
func (g *Generator) requestQueries(ctx context.Context, prompt string) ([]candidate, error) {
	req := llm.CompletionRequest{
		Prompt:         prompt,
		System:         generationSystemPrompt,
		Model:          g.model,
		ResponseFormat: llm.FormatJSONObject,
	}

	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		resp, err := g.completer.Complete(ctx, g.provider, req)
		if err != nil {
			return nil, err
		}

		var reply generationReply
		if err := llm.DecodeJSON(g.provider, resp.Text, &reply); err != nil {
			lastErr = err
			slog.Debug("query generation reply did not parse, re-asking",
				"provider", g.provider,
				"error", err)
			continue
		}
		return reply.Queries, nil
	}
	return nil, lastErr
}

// accumulator applies the acceptance rules in return order: unique on
// normalized text (first occurrence wins), per-category ceiling, total limit.
type accumulator struct {
	limit       int
	categoryCap int
	seen        map[string]bool
	perCategory map[string]int
	valid       map[string]bool
	accepted    []models.GeneratedQuery
}

func newAccumulator(limit, categoryCap int) *accumulator {
	valid := make(map[string]bool, len(models.Categories))
	for _, c := range models.Categories {
		valid[c] = true
	}
	return &accumulator{
		limit:       limit,
		categoryCap: categoryCap,
		seen:        make(map[string]bool),
		perCategory: make(map[string]int),
		valid:       valid,
		accepted:    make([]models.GeneratedQuery, 0, limit),
	}
}

func (a *accumulator) addAll(candidates []candidate) {
	for _, c := range candidates {
		a.add(c)
	}
}

func (a *accumulator) add(c candidate) {
	if len(a.accepted) >= a.limit {
		return
	}
	text := strings.TrimSpace(c.Text)
	if text == "" || !a.valid[c.Category] {
		return
	}
	key := models.NormalizeText(text)
	if a.seen[key] {
		return
	}
	if a.perCategory[c.Category] >= a.categoryCap {
		return
	}

	priority := 0.5
	if c.Priority != nil {
		priority = min(max(*c.Priority, 0), 1)
	}

	a.seen[key] = true
	a.perCategory[c.Category]++
	a.accepted = append(a.accepted, models.GeneratedQuery{
		Text:     text,
		Category: c.Category,
		Intent:   strings.TrimSpace(c.Intent),
		Priority: priority,
	})
}

func (a *accumulator) len() int {
	return len(a.accepted)
}

func (a *accumulator) texts() []string {
	texts := make([]string, len(a.accepted))
	for i, q := range a.accepted {
		texts[i] = q.Text
	}
	return texts
}

func (a *accumulator) queries() []models.GeneratedQuery {
	return a.accepted
}
