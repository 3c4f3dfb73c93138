// Package insights consolidates per-response audit findings into ranked,
// deduplicated recommendations — one LLM call per buyer-journey category,
// merged across categories.
package insights

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/specularhq/specular/ent"
	"github.com/specularhq/specular/ent/schema"
	"github.com/specularhq/specular/pkg/llm"
	"github.com/specularhq/specular/pkg/models"
)

// Kinds of ranked recommendation items.
const (
	KindRecommendation     = "recommendation"
	KindCompetitiveGap     = "competitive_gap"
	KindContentOpportunity = "content_opportunity"
)

const (
	minPriority     = 1
	maxPriority     = 10
	defaultPriority = 5
)

// Completer is the slice of the rate-limited caller the extractor needs.
type Completer interface {
	Complete(ctx context.Context, provider string, req llm.CompletionRequest) (*llm.CompletionResponse, error)
}

// Extractor consolidates one audit's analyzed findings into recommendations.
// Stateless across audits; safe for concurrent use.
type Extractor struct {
	completer Completer
	provider  string
	model     string
}

// New creates an Extractor that runs its prompts against the given provider
// and model.
func New(completer Completer, provider, model string) *Extractor {
	return &Extractor{
		completer: completer,
		provider:  provider,
		model:     model,
	}
}

// Extract runs one consolidation call per category present among the
// analyses and merges the results: deduplicated on normalized text keeping
// the higher priority, ordered by priority descending then text. A reply the
// extractor cannot decode degrades that category to no findings; provider
// failures and cancellation abort. An empty result is a valid outcome.
func (e *Extractor) Extract(ctx context.Context, company *ent.Company, analyses []*ent.AuditAnalysis) ([]schema.RankedRecommendation, error) {
	byCategory := make(map[string][]*ent.AuditAnalysis)
	for _, a := range analyses {
		if a.Errored {
			continue
		}
		key := string(a.Category)
		byCategory[key] = append(byCategory[key], a)
	}

	merger := newMerger()
	for _, category := range models.Categories {
		rows := byCategory[category]
		if len(rows) == 0 {
			continue
		}

		reply, err := e.extractCategory(ctx, company, category, rows)
		if err != nil {
			if llm.KindOf(err) == llm.KindData {
				slog.Warn("category insights degraded to empty",
					"category", category,
					"error", err)
				continue
			}
			return nil, fmt.Errorf("failed to extract %s insights: %w", category, err)
		}

		merger.addAll(category, KindRecommendation, reply.Recommendations)
		merger.addAll(category, KindCompetitiveGap, reply.CompetitiveGaps)
		merger.addAll(category, KindContentOpportunity, reply.ContentOpportunities)
	}

	return merger.ranked(), nil
}

type insightItem struct {
	Text     string `json:"text"`
	Priority int    `json:"priority"`
}

type categoryReply struct {
	Recommendations      []insightItem `json:"recommendations"`
	CompetitiveGaps      []insightItem `json:"competitive_gaps"`
	ContentOpportunities []insightItem `json:"content_opportunities"`
}

// extractCategory batches one category's findings into a single call. No
// output cap: consolidation length tracks however much the findings carry.
func (e *Extractor) extractCategory(ctx context.Context, company *ent.Company, category string, rows []*ent.AuditAnalysis) (*categoryReply, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	findings := make([]string, len(rows))
	for i, a := range rows {
		findings[i] = findingLine(a)
	}

	req := llm.CompletionRequest{
		Prompt:         buildCategoryPrompt(company, category, findings),
		System:         extractionSystemPrompt,
		Model:          e.model,
		ResponseFormat: llm.FormatJSONObject,
	}
	resp, err := e.completer.Complete(ctx, e.provider, req)
	if err != nil {
		return nil, err
	}

	var reply categoryReply
	if err := llm.DecodeJSON(e.provider, resp.Text, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// merger deduplicates items across categories on normalized text. The first
// occurrence fixes kind and category; a later duplicate only raises priority.
type merger struct {
	index map[string]int
	items []schema.RankedRecommendation
}

func newMerger() *merger {
	return &merger{index: make(map[string]int)}
}

func (m *merger) addAll(category, kind string, items []insightItem) {
	for _, item := range items {
		m.add(category, kind, item)
	}
}

func (m *merger) add(category, kind string, item insightItem) {
	text := strings.TrimSpace(item.Text)
	if text == "" {
		return
	}
	priority := item.Priority
	if priority == 0 {
		priority = defaultPriority
	}
	priority = min(max(priority, minPriority), maxPriority)

	key := models.NormalizeText(text)
	if i, ok := m.index[key]; ok {
		if priority > m.items[i].Priority {
			m.items[i].Priority = priority
		}
		return
	}
	m.index[key] = len(m.items)
	m.items = append(m.items, schema.RankedRecommendation{
		Text:     text,
		Kind:     kind,
		Category: category,
		Priority: priority,
	})
}

// ranked returns the merged items ordered by priority descending, ties
// broken by text so reruns produce identical output.
func (m *merger) ranked() []schema.RankedRecommendation {
	out := append([]schema.RankedRecommendation(nil), m.items...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Priority != out[j].Priority {
			return out[i].Priority > out[j].Priority
		}
		return out[i].Text < out[j].Text
	})
	return out
}
