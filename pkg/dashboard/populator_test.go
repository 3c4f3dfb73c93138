package dashboard

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specularhq/specular/ent"
	"github.com/specularhq/specular/ent/auditquery"
	"github.com/specularhq/specular/ent/schema"
	"github.com/specularhq/specular/pkg/insights"
	"github.com/specularhq/specular/pkg/llm"
	"github.com/specularhq/specular/pkg/models"
)

type fakeCompleter struct {
	requests []llm.CompletionRequest
	reply    string
	err      error
}

func (f *fakeCompleter) Complete(ctx context.Context, provider string, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
	f.requests = append(f.requests, req)
	if f.err != nil {
		return nil, f.err
	}
	return &llm.CompletionResponse{Text: f.reply, Model: req.Model, FinishReason: llm.FinishStop}, nil
}

type fakeStore struct {
	saved   []models.DashboardRecord
	saveErr error
}

func (s *fakeStore) SaveDashboard(ctx context.Context, rec models.DashboardRecord) (*ent.AuditDashboard, error) {
	if s.saveErr != nil {
		return nil, s.saveErr
	}
	s.saved = append(s.saved, rec)
	return &ent.AuditDashboard{ID: "dash-1", AuditID: rec.AuditID}, nil
}

func testCompany() *ent.Company {
	return &ent.Company{
		ID:          "company-1",
		Name:        "Acme Analytics",
		Description: "Retail inventory forecasting.",
	}
}

func testAggregate() *ent.AuditAggregate {
	return &ent.AuditAggregate{
		ID:                  "agg-1",
		AuditID:             "audit-1",
		OverallScore:        61.45,
		GeoScore:            55.2,
		SovScore:            48.75,
		RecommendationScore: 70.1,
		SentimentScore:      62.5,
		VisibilityScore:     75.0,
		ContextCompleteness: 58.3,
		ProviderBreakdown: map[string]schema.ScoreBreakdown{
			"openai":    {Analyzed: 2, BrandMentions: 2},
			"anthropic": {Analyzed: 2, BrandMentions: 1},
		},
		CategoryBreakdown: map[string]schema.ScoreBreakdown{
			"product_aware": {Overall: 64.2, Visibility: 100, Analyzed: 2},
			"problem_aware": {Overall: 41.0, Visibility: 50, Analyzed: 2},
		},
		CompetitorMentions: map[string]int{"RivalOne": 2, "StockSense": 1},
		TotalResponses:     5,
		AnalyzedResponses:  4,
	}
}

func testQueries() []*ent.AuditQuery {
	return []*ent.AuditQuery{
		{ID: "q1", Category: auditquery.CategoryProductAware},
		{ID: "q2", Category: auditquery.CategoryProductAware},
		{ID: "q3", Category: auditquery.CategoryProblemAware},
	}
}

func testRecommendations() []schema.RankedRecommendation {
	return []schema.RankedRecommendation{
		{Text: "Publish comparison pages", Kind: insights.KindRecommendation, Category: "product_aware", Priority: 9},
		{Text: "Rivals cited more often", Kind: insights.KindCompetitiveGap, Category: "product_aware", Priority: 7},
		{Text: "Write an FAQ", Kind: insights.KindContentOpportunity, Category: "problem_aware", Priority: 6},
		{Text: "Add pricing page", Kind: insights.KindRecommendation, Category: "most_aware", Priority: 5},
	}
}

func TestPopulator_Populate(t *testing.T) {
	t.Run("assembles the full snapshot", func(t *testing.T) {
		completer := &fakeCompleter{reply: "  Acme Analytics shows up in three of four answers.  "}
		store := &fakeStore{}

		saved, err := New(completer, store, "openai", "gpt-4o-mini").Populate(context.Background(), testCompany(), testAggregate(), testQueries(), testRecommendations())
		require.NoError(t, err)
		require.NotNil(t, saved)
		require.Len(t, store.saved, 1)
		rec := store.saved[0]

		assert.Equal(t, "audit-1", rec.AuditID)
		assert.Equal(t, schema.DashboardScores{
			Overall:             61.45,
			Geo:                 55.2,
			Sov:                 48.75,
			Recommendation:      70.1,
			Sentiment:           62.5,
			Visibility:          75.0,
			ContextCompleteness: 58.3,
		}, rec.Scores)

		assert.Equal(t, testRecommendations(), rec.Recommendations)
		assert.Equal(t, "Acme Analytics shows up in three of four answers.", rec.ExecutiveSummary)

		// Landscape: 3 brand mentions from the provider breakdown, 3
		// competitor mentions, shares over the combined total of 6.
		assert.Equal(t, 3, rec.CompetitorLandscape.BrandMentions)
		assert.Equal(t, 6, rec.CompetitorLandscape.TotalMentions)
		require.Len(t, rec.CompetitorLandscape.Top, 2)
		assert.Equal(t, schema.CompetitorStanding{Name: "RivalOne", Mentions: 2, Share: 33.33}, rec.CompetitorLandscape.Top[0])
		assert.Equal(t, schema.CompetitorStanding{Name: "StockSense", Mentions: 1, Share: 16.67}, rec.CompetitorLandscape.Top[1])

		// One block per category that carried queries, canonical order.
		require.Len(t, rec.CategoryInsights, 2)
		problemAware := rec.CategoryInsights[0]
		assert.Equal(t, "problem_aware", problemAware.Category)
		assert.Equal(t, 1, problemAware.Queries)
		assert.Equal(t, 2, problemAware.Analyzed)
		assert.Equal(t, 41.0, problemAware.Score)
		assert.Equal(t, []string{"Write an FAQ"}, problemAware.Opportunities)
		assert.Empty(t, problemAware.Gaps)

		productAware := rec.CategoryInsights[1]
		assert.Equal(t, "product_aware", productAware.Category)
		assert.Equal(t, 2, productAware.Queries)
		assert.Equal(t, []string{"Rivals cited more often"}, productAware.Gaps)
		assert.Empty(t, productAware.Opportunities)
	})

	t.Run("summary prompt carries the scorecard and standings", func(t *testing.T) {
		completer := &fakeCompleter{reply: "Summary."}
		store := &fakeStore{}

		_, err := New(completer, store, "openai", "gpt-4o-mini").Populate(context.Background(), testCompany(), testAggregate(), testQueries(), testRecommendations())
		require.NoError(t, err)
		require.Len(t, completer.requests, 1)

		req := completer.requests[0]
		assert.Equal(t, summarySystemPrompt, req.System)
		assert.Equal(t, "gpt-4o-mini", req.Model)
		assert.Zero(t, req.MaxOutputTokens)
		assert.Empty(t, req.ResponseFormat)

		assert.Contains(t, req.Prompt, `"Acme Analytics"`)
		assert.Contains(t, req.Prompt, "Overall: 61.45")
		assert.Contains(t, req.Prompt, "mentioned in 3 of 4 analyzed answers")
		assert.Contains(t, req.Prompt, "RivalOne: mentioned 2 times (33.33% share)")
		assert.Contains(t, req.Prompt, "Publish comparison pages")
	})

	t.Run("caps recommendations and standings", func(t *testing.T) {
		completer := &fakeCompleter{reply: "Summary."}
		store := &fakeStore{}

		var ranked []schema.RankedRecommendation
		for i := 0; i < 14; i++ {
			ranked = append(ranked, schema.RankedRecommendation{
				Text:     fmt.Sprintf("Action %02d", i),
				Kind:     insights.KindRecommendation,
				Category: "product_aware",
				Priority: 10 - i/2,
			})
		}
		agg := testAggregate()
		agg.CompetitorMentions = map[string]int{
			"Alpha": 4, "Bravo": 4, "Charlie": 3, "Delta": 2, "Echo": 2, "Foxtrot": 1, "Golf": 1,
		}

		_, err := New(completer, store, "openai", "gpt-4o-mini").Populate(context.Background(), testCompany(), agg, testQueries(), ranked)
		require.NoError(t, err)
		rec := store.saved[0]

		assert.Len(t, rec.Recommendations, topRecommendations)
		assert.Equal(t, "Action 00", rec.Recommendations[0].Text)

		require.Len(t, rec.CompetitorLandscape.Top, topCompetitors)
		names := make([]string, topCompetitors)
		for i, s := range rec.CompetitorLandscape.Top {
			names[i] = s.Name
		}
		// Mentions descending, ties alphabetical.
		assert.Equal(t, []string{"Alpha", "Bravo", "Charlie", "Delta", "Echo"}, names)
	})

	t.Run("no competitors leaves an empty landscape", func(t *testing.T) {
		completer := &fakeCompleter{reply: "Summary."}
		store := &fakeStore{}
		agg := testAggregate()
		agg.CompetitorMentions = nil

		_, err := New(completer, store, "openai", "gpt-4o-mini").Populate(context.Background(), testCompany(), agg, testQueries(), nil)
		require.NoError(t, err)
		rec := store.saved[0]

		assert.Equal(t, 3, rec.CompetitorLandscape.BrandMentions)
		assert.Equal(t, 3, rec.CompetitorLandscape.TotalMentions)
		assert.Empty(t, rec.CompetitorLandscape.Top)
	})

	t.Run("empty summary reply is tolerated", func(t *testing.T) {
		completer := &fakeCompleter{reply: "   "}
		store := &fakeStore{}

		_, err := New(completer, store, "openai", "gpt-4o-mini").Populate(context.Background(), testCompany(), testAggregate(), testQueries(), nil)
		require.NoError(t, err)
		assert.Empty(t, store.saved[0].ExecutiveSummary)
	})

	t.Run("summary failure aborts before persisting", func(t *testing.T) {
		completer := &fakeCompleter{err: &llm.ProviderError{Provider: "openai", Kind: llm.KindTransient, Message: "overloaded"}}
		store := &fakeStore{}

		saved, err := New(completer, store, "openai", "gpt-4o-mini").Populate(context.Background(), testCompany(), testAggregate(), testQueries(), nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to write executive summary")
		assert.Nil(t, saved)
		assert.Empty(t, store.saved)
	})

	t.Run("save failure propagates", func(t *testing.T) {
		completer := &fakeCompleter{reply: "Summary."}
		store := &fakeStore{saveErr: errors.New("connection lost")}

		saved, err := New(completer, store, "openai", "gpt-4o-mini").Populate(context.Background(), testCompany(), testAggregate(), testQueries(), nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to save dashboard")
		assert.Nil(t, saved)
	})
}
