package querygen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/specularhq/specular/ent"
	"github.com/specularhq/specular/pkg/llm"
	"github.com/specularhq/specular/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedCompleter returns canned replies (or errors) in call order and
// records every request it sees.
type scriptedCompleter struct {
	replies []string
	errs    []error
	reqs    []llm.CompletionRequest
}

func (s *scriptedCompleter) Complete(_ context.Context, _ string, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
	idx := len(s.reqs)
	s.reqs = append(s.reqs, req)
	if idx < len(s.errs) && s.errs[idx] != nil {
		return nil, s.errs[idx]
	}
	if idx >= len(s.replies) {
		return nil, fmt.Errorf("unexpected call %d", idx)
	}
	return &llm.CompletionResponse{Text: s.replies[idx], FinishReason: llm.FinishStop}, nil
}

func testCompany() *ent.Company {
	return &ent.Company{
		Name:              "Acme Analytics",
		Domain:            "acme.io",
		Industry:          "retail analytics",
		Description:       "Analytics platform for mid-market retailers",
		ValuePropositions: []string{"real-time shelf insights"},
		TargetAudiences:   []string{"retail ops leads"},
		Competitors:       []string{"RivalOne", "MetricsPro"},
		PainPoints:        []string{"stockouts"},
	}
}

func item(text, category string) map[string]any {
	return map[string]any{"text": text, "category": category, "intent": "informational", "priority": 0.7}
}

func reply(items ...map[string]any) string {
	b, err := json.Marshal(map[string]any{"queries": items})
	if err != nil {
		panic(err)
	}
	return string(b)
}

func TestGenerator_Generate(t *testing.T) {
	ctx := context.Background()

	t.Run("single call covers the full count", func(t *testing.T) {
		completer := &scriptedCompleter{replies: []string{reply(
			item("why is my product never recommended by chatbots", "problem_unaware"),
			item("how do brands show up in ai answers", "problem_aware"),
			item("best tools to track brand visibility in llms", "solution_aware"),
			item("acme analytics vs rivalone", "product_aware"),
			item("acme analytics pricing", "most_aware"),
			item("is acme analytics trustworthy", "brand_defense"),
		)}}
		g := NewGenerator(completer, "openai", "gpt-4o")

		queries, err := g.Generate(ctx, testCompany(), 6)
		require.NoError(t, err)
		require.Len(t, queries, 6)
		assert.Len(t, completer.reqs, 1)

		assert.Equal(t, "why is my product never recommended by chatbots", queries[0].Text)
		assert.Equal(t, "problem_unaware", queries[0].Category)
		assert.Equal(t, "informational", queries[0].Intent)
		assert.InDelta(t, 0.7, queries[0].Priority, 0.001)
	})

	t.Run("requests are JSON mode with no output cap", func(t *testing.T) {
		completer := &scriptedCompleter{replies: []string{reply(
			item("a query", "problem_aware"),
			item("another query", "solution_aware"),
		)}}
		g := NewGenerator(completer, "openai", "gpt-4o")

		_, err := g.Generate(ctx, testCompany(), 2)
		require.NoError(t, err)
		require.Len(t, completer.reqs, 1)
		assert.Equal(t, llm.FormatJSONObject, completer.reqs[0].ResponseFormat)
		assert.Zero(t, completer.reqs[0].MaxOutputTokens)
		assert.Equal(t, "gpt-4o", completer.reqs[0].Model)
	})

	t.Run("prompt carries profile facts", func(t *testing.T) {
		completer := &scriptedCompleter{replies: []string{reply(
			item("a query", "problem_aware"),
		)}}
		g := NewGenerator(completer, "openai", "gpt-4o")

		_, err := g.Generate(ctx, testCompany(), 1)
		require.NoError(t, err)
		prompt := completer.reqs[0].Prompt
		assert.Contains(t, prompt, "Acme Analytics")
		assert.Contains(t, prompt, "RivalOne, MetricsPro")
		assert.Contains(t, prompt, "problem_unaware")
		assert.Contains(t, prompt, "brand_defense")
	})

	t.Run("duplicates collapse to the first occurrence", func(t *testing.T) {
		completer := &scriptedCompleter{replies: []string{reply(
			item("Best retail analytics tools", "solution_aware"),
			item("  best retail analytics TOOLS  ", "solution_aware"),
			item("acme analytics reviews", "brand_defense"),
			item("acme analytics reviews", "product_aware"),
		)}}
		g := NewGenerator(completer, "openai", "gpt-4o")

		queries, err := g.Generate(ctx, testCompany(), 4)
		require.NoError(t, err)
		require.Len(t, queries, 2)
		assert.Equal(t, "Best retail analytics tools", queries[0].Text)
		assert.Equal(t, "brand_defense", queries[1].Category)
	})

	t.Run("case-variant flood collapses to the unique set", func(t *testing.T) {
		// 40 unique texts spread round-robin over the six categories, plus
		// 20 upper-cased variants of the first 20. Ceiling for n=48 is 9,
		// so no category fills up.
		items := make([]map[string]any, 0, 60)
		for i := 0; i < 40; i++ {
			items = append(items, item(fmt.Sprintf("unique query %02d", i), models.Categories[i%6]))
		}
		for i := 0; i < 20; i++ {
			items = append(items, item(strings.ToUpper(fmt.Sprintf("unique query %02d", i)), models.Categories[i%6]))
		}
		completer := &scriptedCompleter{replies: []string{reply(items...), reply()}}
		g := NewGenerator(completer, "openai", "gpt-4o")

		queries, err := g.Generate(ctx, testCompany(), 48)
		require.NoError(t, err)
		require.Len(t, queries, 40)
		assert.Len(t, completer.reqs, 2) // one top-up, which added nothing

		counts := map[string]int{}
		for _, q := range queries {
			counts[q.Category]++
			// First occurrence wins, so the lowercase originals survive.
			assert.NotEqual(t, strings.ToUpper(q.Text), q.Text)
		}
		for _, c := range models.Categories {
			assert.LessOrEqual(t, counts[c], 9)
		}
	})

	t.Run("category ceiling drops excess in return order", func(t *testing.T) {
		// n=6 gives a ceiling of ceil(6/6)+1 = 2 per category.
		completer := &scriptedCompleter{replies: []string{reply(
			item("solution query one", "solution_aware"),
			item("solution query two", "solution_aware"),
			item("solution query three", "solution_aware"),
			item("solution query four", "solution_aware"),
			item("problem query one", "problem_aware"),
			item("problem query two", "problem_aware"),
		)}}
		g := NewGenerator(completer, "openai", "gpt-4o")

		queries, err := g.Generate(ctx, testCompany(), 6)
		require.NoError(t, err)

		counts := map[string]int{}
		for _, q := range queries {
			counts[q.Category]++
		}
		assert.Equal(t, 2, counts["solution_aware"])
		assert.Equal(t, 2, counts["problem_aware"])
		assert.NotContains(t, texts(queries), "solution query three")
	})

	t.Run("skips blank text and unknown categories", func(t *testing.T) {
		completer := &scriptedCompleter{replies: []string{reply(
			item("   ", "problem_aware"),
			item("valid query", "problem_aware"),
			item("mystery query", "decision_stage"),
		)}}
		g := NewGenerator(completer, "openai", "gpt-4o")

		queries, err := g.Generate(ctx, testCompany(), 3)
		require.NoError(t, err)
		require.Len(t, queries, 1)
		assert.Equal(t, "valid query", queries[0].Text)
	})

	t.Run("priority clamped and defaulted", func(t *testing.T) {
		completer := &scriptedCompleter{replies: []string{reply(
			map[string]any{"text": "hot query", "category": "most_aware", "priority": 3.5},
			map[string]any{"text": "cold query", "category": "most_aware", "priority": -1.0},
			map[string]any{"text": "plain query", "category": "problem_aware"},
		)}}
		g := NewGenerator(completer, "openai", "gpt-4o")

		queries, err := g.Generate(ctx, testCompany(), 3)
		require.NoError(t, err)
		require.Len(t, queries, 3)
		assert.Equal(t, 1.0, queries[0].Priority)
		assert.Equal(t, 0.0, queries[1].Priority)
		assert.Equal(t, 0.5, queries[2].Priority)
	})

	t.Run("markdown fenced reply tolerated", func(t *testing.T) {
		fenced := "```json\n" + reply(item("a query", "problem_aware")) + "\n```"
		completer := &scriptedCompleter{replies: []string{fenced}}
		g := NewGenerator(completer, "openai", "gpt-4o")

		queries, err := g.Generate(ctx, testCompany(), 1)
		require.NoError(t, err)
		assert.Len(t, queries, 1)
	})
}

func TestGenerator_Generate_TopUps(t *testing.T) {
	ctx := context.Background()

	t.Run("top-up fills the shortfall", func(t *testing.T) {
		completer := &scriptedCompleter{replies: []string{
			reply(
				item("query one", "problem_unaware"),
				item("query two", "problem_aware"),
				item("query one", "problem_unaware"), // duplicate eaten by dedupe
			),
			reply(
				item("query three", "solution_aware"),
				item("query four", "product_aware"),
			),
		}}
		g := NewGenerator(completer, "openai", "gpt-4o")

		queries, err := g.Generate(ctx, testCompany(), 4)
		require.NoError(t, err)
		require.Len(t, queries, 4)
		require.Len(t, completer.reqs, 2)

		topUp := completer.reqs[1].Prompt
		assert.Contains(t, topUp, "exactly 2 NEW queries")
		assert.Contains(t, topUp, "query one")
		assert.Contains(t, topUp, "query two")
	})

	t.Run("stops after two top-ups and keeps the partial set", func(t *testing.T) {
		completer := &scriptedCompleter{replies: []string{
			reply(item("query one", "problem_unaware"), item("query two", "problem_aware")),
			reply(item("query three", "solution_aware")),
			reply(item("query four", "most_aware")),
		}}
		g := NewGenerator(completer, "openai", "gpt-4o")

		queries, err := g.Generate(ctx, testCompany(), 8)
		require.NoError(t, err)
		assert.Len(t, queries, 4)
		assert.Len(t, completer.reqs, 3) // first call + two top-ups
	})

	t.Run("stops early when a top-up adds nothing", func(t *testing.T) {
		completer := &scriptedCompleter{replies: []string{
			reply(item("query one", "problem_unaware"), item("query two", "problem_aware")),
			reply(item("query one", "problem_unaware")), // all duplicates
		}}
		g := NewGenerator(completer, "openai", "gpt-4o")

		queries, err := g.Generate(ctx, testCompany(), 8)
		require.NoError(t, err)
		assert.Len(t, queries, 2)
		assert.Len(t, completer.reqs, 2)
	})

	t.Run("top-up failure keeps the partial set", func(t *testing.T) {
		completer := &scriptedCompleter{
			replies: []string{
				reply(item("query one", "problem_unaware"), item("query two", "problem_aware")),
				"",
			},
			errs: []error{nil, &llm.ProviderError{Provider: "openai", Kind: llm.KindTransient, Message: "boom"}},
		}
		g := NewGenerator(completer, "openai", "gpt-4o")

		queries, err := g.Generate(ctx, testCompany(), 6)
		require.NoError(t, err)
		assert.Len(t, queries, 2)
	})
}

func TestGenerator_Generate_Failures(t *testing.T) {
	ctx := context.Background()

	t.Run("first call below a quarter fails permanently", func(t *testing.T) {
		items := make([]map[string]any, 0, 11)
		for i := 0; i < 11; i++ {
			items = append(items, item(fmt.Sprintf("query %d", i), "problem_aware"))
		}
		// Ceiling for n=48 is 9 per category, so only 9 of the 11 survive.
		completer := &scriptedCompleter{replies: []string{reply(items...)}}
		g := NewGenerator(completer, "openai", "gpt-4o")

		_, err := g.Generate(ctx, testCompany(), 48)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInsufficientQueries))
	})

	t.Run("exactly a quarter passes", func(t *testing.T) {
		completer := &scriptedCompleter{replies: []string{
			reply(item("q1", "problem_unaware"), item("q2", "problem_aware")),
			reply(),
		}}
		g := NewGenerator(completer, "openai", "gpt-4o")

		queries, err := g.Generate(ctx, testCompany(), 8)
		require.NoError(t, err)
		assert.Len(t, queries, 2)
	})

	t.Run("first call provider error propagates", func(t *testing.T) {
		wantErr := &llm.ProviderError{Provider: "openai", Kind: llm.KindQuota, Message: "billing"}
		completer := &scriptedCompleter{replies: []string{""}, errs: []error{wantErr}}
		g := NewGenerator(completer, "openai", "gpt-4o")

		_, err := g.Generate(ctx, testCompany(), 48)
		require.Error(t, err)
		assert.Equal(t, llm.KindQuota, llm.KindOf(err))
	})

	t.Run("schema mismatch re-asked once then succeeds", func(t *testing.T) {
		completer := &scriptedCompleter{replies: []string{
			"this is not json",
			reply(item("a query", "problem_aware")),
		}}
		g := NewGenerator(completer, "openai", "gpt-4o")

		queries, err := g.Generate(ctx, testCompany(), 1)
		require.NoError(t, err)
		assert.Len(t, queries, 1)
		assert.Len(t, completer.reqs, 2)
	})

	t.Run("schema mismatch twice fails the call", func(t *testing.T) {
		completer := &scriptedCompleter{replies: []string{"nope", "still nope"}}
		g := NewGenerator(completer, "openai", "gpt-4o")

		_, err := g.Generate(ctx, testCompany(), 4)
		require.Error(t, err)
		assert.Equal(t, llm.KindData, llm.KindOf(err))
		assert.Len(t, completer.reqs, 2)
	})

	t.Run("non-positive count rejected", func(t *testing.T) {
		g := NewGenerator(&scriptedCompleter{}, "openai", "gpt-4o")
		_, err := g.Generate(ctx, testCompany(), 0)
		assert.Error(t, err)
	})
}

func texts(queries []models.GeneratedQuery) []string {
	out := make([]string, len(queries))
	for i, q := range queries {
		out[i] = q.Text
	}
	return out
}
