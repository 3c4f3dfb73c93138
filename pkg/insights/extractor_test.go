package insights

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specularhq/specular/ent"
	"github.com/specularhq/specular/ent/auditanalysis"
	"github.com/specularhq/specular/ent/schema"
	"github.com/specularhq/specular/pkg/llm"
)

// fakeCompleter routes each category call by the quoted category name in its
// prompt. Unrouted categories get empty arrays.
type fakeCompleter struct {
	mu       sync.Mutex
	requests []llm.CompletionRequest
	replies  map[string]string
	errs     map[string]error
}

func (f *fakeCompleter) Complete(ctx context.Context, provider string, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
	f.mu.Lock()
	f.requests = append(f.requests, req)
	f.mu.Unlock()

	for category, err := range f.errs {
		if strings.Contains(req.Prompt, `"`+category+`"`) {
			return nil, err
		}
	}
	text := `{"recommendations": [], "competitive_gaps": [], "content_opportunities": []}`
	for category, reply := range f.replies {
		if strings.Contains(req.Prompt, `"`+category+`"`) {
			text = reply
			break
		}
	}
	return &llm.CompletionResponse{Text: text, Model: req.Model, FinishReason: llm.FinishStop}, nil
}

func (f *fakeCompleter) promptFor(category string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, req := range f.requests {
		if strings.Contains(req.Prompt, `"`+category+`"`) {
			return req.Prompt, true
		}
	}
	return "", false
}

func testCompany() *ent.Company {
	return &ent.Company{
		ID:          "company-1",
		Name:        "Acme Analytics",
		Description: "Retail inventory forecasting.",
	}
}

func analyzedRow(category auditanalysis.Category, recommendations ...string) *ent.AuditAnalysis {
	sentiment := auditanalysis.SentimentPositive
	return &ent.AuditAnalysis{
		Provider:             "openai",
		Category:             category,
		BrandMentioned:       true,
		Sentiment:            &sentiment,
		SovScore:             50,
		GeoScore:             40,
		CompetitorsMentioned: []schema.CompetitorMention{{Name: "RivalOne", Known: true}},
		Recommendations:      recommendations,
	}
}

func TestExtractor_Extract(t *testing.T) {
	t.Run("merges categories with dedupe and ranking", func(t *testing.T) {
		completer := &fakeCompleter{replies: map[string]string{
			"product_aware": `{
				"recommendations": [{"text": "Publish comparison pages", "priority": 8}],
				"competitive_gaps": [{"text": "Rivals cited more often", "priority": 6}],
				"content_opportunities": []
			}`,
			"most_aware": `{
				"recommendations": [{"text": "publish comparison pages", "priority": 9}],
				"competitive_gaps": [],
				"content_opportunities": [{"text": "Write an FAQ", "priority": 6}]
			}`,
		}}
		analyses := []*ent.AuditAnalysis{
			analyzedRow(auditanalysis.CategoryProductAware, "More review citations"),
			analyzedRow(auditanalysis.CategoryMostAware),
		}

		ranked, err := New(completer, "openai", "gpt-4o-mini").Extract(context.Background(), testCompany(), analyses)
		require.NoError(t, err)

		// The duplicate keeps its first kind/category/text but takes the
		// higher priority; the tie at 6 breaks alphabetically.
		require.Len(t, ranked, 3)
		assert.Equal(t, schema.RankedRecommendation{
			Text:     "Publish comparison pages",
			Kind:     KindRecommendation,
			Category: "product_aware",
			Priority: 9,
		}, ranked[0])
		assert.Equal(t, "Rivals cited more often", ranked[1].Text)
		assert.Equal(t, KindCompetitiveGap, ranked[1].Kind)
		assert.Equal(t, "Write an FAQ", ranked[2].Text)
		assert.Equal(t, KindContentOpportunity, ranked[2].Kind)
	})

	t.Run("prompts batch the category findings without an output cap", func(t *testing.T) {
		completer := &fakeCompleter{}
		analyses := []*ent.AuditAnalysis{
			analyzedRow(auditanalysis.CategoryProductAware, "More review citations"),
			analyzedRow(auditanalysis.CategoryProductAware),
		}

		_, err := New(completer, "openai", "gpt-4o-mini").Extract(context.Background(), testCompany(), analyses)
		require.NoError(t, err)
		require.Len(t, completer.requests, 1)

		req := completer.requests[0]
		assert.Equal(t, extractionSystemPrompt, req.System)
		assert.Equal(t, llm.FormatJSONObject, req.ResponseFormat)
		assert.Equal(t, "gpt-4o-mini", req.Model)
		assert.Zero(t, req.MaxOutputTokens)

		prompt, ok := completer.promptFor("product_aware")
		require.True(t, ok)
		assert.Contains(t, prompt, "2 answers were analyzed")
		assert.Contains(t, prompt, "brand=mentioned")
		assert.Contains(t, prompt, "sentiment=positive")
		assert.Contains(t, prompt, "competitors=RivalOne")
		assert.Contains(t, prompt, "notes: More review citations")
	})

	t.Run("undecodable reply degrades that category only", func(t *testing.T) {
		completer := &fakeCompleter{replies: map[string]string{
			"problem_aware": "not json at all",
			"product_aware": `{"recommendations": [{"text": "Add pricing page", "priority": 7}], "competitive_gaps": [], "content_opportunities": []}`,
		}}
		analyses := []*ent.AuditAnalysis{
			analyzedRow(auditanalysis.CategoryProblemAware),
			analyzedRow(auditanalysis.CategoryProductAware),
		}

		ranked, err := New(completer, "openai", "gpt-4o-mini").Extract(context.Background(), testCompany(), analyses)
		require.NoError(t, err)
		require.Len(t, ranked, 1)
		assert.Equal(t, "Add pricing page", ranked[0].Text)
	})

	t.Run("provider failure aborts", func(t *testing.T) {
		completer := &fakeCompleter{errs: map[string]error{
			"product_aware": &llm.ProviderError{Provider: "openai", Kind: llm.KindQuota, Message: "billing hard limit"},
		}}
		analyses := []*ent.AuditAnalysis{analyzedRow(auditanalysis.CategoryProductAware)}

		ranked, err := New(completer, "openai", "gpt-4o-mini").Extract(context.Background(), testCompany(), analyses)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to extract product_aware insights")
		assert.Nil(t, ranked)
	})

	t.Run("errored rows are excluded from batching", func(t *testing.T) {
		completer := &fakeCompleter{}
		analyses := []*ent.AuditAnalysis{
			{Provider: "openai", Category: auditanalysis.CategoryBrandDefense, Errored: true},
			analyzedRow(auditanalysis.CategoryProductAware),
		}

		_, err := New(completer, "openai", "gpt-4o-mini").Extract(context.Background(), testCompany(), analyses)
		require.NoError(t, err)

		require.Len(t, completer.requests, 1)
		_, ok := completer.promptFor("brand_defense")
		assert.False(t, ok)
	})

	t.Run("no analyses means no calls and no items", func(t *testing.T) {
		completer := &fakeCompleter{}

		ranked, err := New(completer, "openai", "gpt-4o-mini").Extract(context.Background(), testCompany(), nil)
		require.NoError(t, err)
		assert.Empty(t, ranked)
		assert.Empty(t, completer.requests)
	})

	t.Run("priorities are defaulted and clamped", func(t *testing.T) {
		completer := &fakeCompleter{replies: map[string]string{
			"product_aware": `{
				"recommendations": [
					{"text": "Missing priority"},
					{"text": "Too high", "priority": 99},
					{"text": "Too low", "priority": -3}
				],
				"competitive_gaps": [],
				"content_opportunities": []
			}`,
		}}
		analyses := []*ent.AuditAnalysis{analyzedRow(auditanalysis.CategoryProductAware)}

		ranked, err := New(completer, "openai", "gpt-4o-mini").Extract(context.Background(), testCompany(), analyses)
		require.NoError(t, err)
		require.Len(t, ranked, 3)

		priorities := map[string]int{}
		for _, r := range ranked {
			priorities[r.Text] = r.Priority
		}
		assert.Equal(t, defaultPriority, priorities["Missing priority"])
		assert.Equal(t, maxPriority, priorities["Too high"])
		assert.Equal(t, minPriority, priorities["Too low"])
	})

	t.Run("cancellation aborts before calling", func(t *testing.T) {
		completer := &fakeCompleter{}
		analyses := []*ent.AuditAnalysis{analyzedRow(auditanalysis.CategoryProductAware)}

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := New(completer, "openai", "gpt-4o-mini").Extract(ctx, testCompany(), analyses)
		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, completer.requests)
	})
}
