package scoring

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specularhq/specular/ent"
	"github.com/specularhq/specular/ent/auditanalysis"
	"github.com/specularhq/specular/ent/schema"
	"github.com/specularhq/specular/pkg/models"
)

type fakeStore struct {
	saved   []models.AggregateRecord
	saveErr error
}

func (s *fakeStore) SaveAggregate(ctx context.Context, rec models.AggregateRecord) (*ent.AuditAggregate, error) {
	if s.saveErr != nil {
		return nil, s.saveErr
	}
	s.saved = append(s.saved, rec)
	return &ent.AuditAggregate{ID: "agg-1", AuditID: rec.AuditID}, nil
}

func analysis(provider string, category auditanalysis.Category, mentioned bool, geo, sov, rec, sentiment, completeness float64, competitors ...string) *ent.AuditAnalysis {
	a := &ent.AuditAnalysis{
		Provider:             provider,
		Category:             category,
		BrandMentioned:       mentioned,
		GeoScore:             geo,
		SovScore:             sov,
		RecommendationSignal: rec,
		SentimentScore:       sentiment,
		ContextCompleteness:  completeness,
	}
	for _, name := range competitors {
		a.CompetitorsMentioned = append(a.CompetitorsMentioned, schema.CompetitorMention{Name: name, Known: true})
	}
	return a
}

func erroredAnalysis(provider string, category auditanalysis.Category) *ent.AuditAnalysis {
	return &ent.AuditAnalysis{Provider: provider, Category: category, Errored: true}
}

func TestScorer_Score(t *testing.T) {
	t.Run("weighted roll-up excludes errored rows from means", func(t *testing.T) {
		store := &fakeStore{}
		analyses := []*ent.AuditAnalysis{
			analysis("openai", auditanalysis.CategoryProductAware, true, 80, 60, 70, 0.5, 80, "RivalOne"),
			analysis("openai", auditanalysis.CategoryProblemAware, false, 40, 0, 20, -0.5, 30, "RivalOne", "StockSense"),
			analysis("anthropic", auditanalysis.CategoryProductAware, true, 60, 40, 50, 0.1, 55),
			erroredAnalysis("anthropic", auditanalysis.CategoryProductAware),
		}

		rec, err := New(store).Score(context.Background(), "audit-1", analyses)
		require.NoError(t, err)
		require.Len(t, store.saved, 1)
		assert.Equal(t, *rec, store.saved[0])

		assert.Equal(t, "audit-1", rec.AuditID)
		assert.Equal(t, 4, rec.TotalResponses)
		assert.Equal(t, 3, rec.AnalyzedResponses)

		// Means over the three analyzed rows: geo 60, sov 33.33, rec 46.67,
		// sentiment (0.0333 → 51.67), visibility 66.67, completeness 55.
		assert.InDelta(t, 60.0, rec.Geo, 0.005)
		assert.InDelta(t, 33.33, rec.Sov, 0.005)
		assert.InDelta(t, 46.67, rec.Recommendation, 0.005)
		assert.InDelta(t, 51.67, rec.Sentiment, 0.005)
		assert.InDelta(t, 66.67, rec.Visibility, 0.005)
		assert.InDelta(t, 55.0, rec.ContextCompleteness, 0.005)
		assert.InDelta(t, 50.08, rec.Overall, 0.005)

		assert.Equal(t, map[string]int{"RivalOne": 2, "StockSense": 1}, rec.CompetitorMentions)
	})

	t.Run("per-provider and per-category breakdowns", func(t *testing.T) {
		store := &fakeStore{}
		analyses := []*ent.AuditAnalysis{
			analysis("openai", auditanalysis.CategoryProductAware, true, 80, 60, 70, 0.5, 80),
			analysis("openai", auditanalysis.CategoryProblemAware, false, 40, 0, 20, -0.5, 30),
			analysis("anthropic", auditanalysis.CategoryProductAware, true, 60, 40, 50, 0.1, 55),
		}

		rec, err := New(store).Score(context.Background(), "audit-1", analyses)
		require.NoError(t, err)

		require.Contains(t, rec.ProviderBreakdown, "openai")
		openai := rec.ProviderBreakdown["openai"]
		assert.Equal(t, 2, openai.Analyzed)
		assert.Equal(t, 1, openai.BrandMentions)
		assert.InDelta(t, 60.0, openai.Geo, 0.005)
		assert.InDelta(t, 50.0, openai.Visibility, 0.005)
		assert.InDelta(t, 47.0, openai.Overall, 0.005)

		require.Contains(t, rec.ProviderBreakdown, "anthropic")
		assert.InDelta(t, 56.25, rec.ProviderBreakdown["anthropic"].Overall, 0.005)

		require.Contains(t, rec.CategoryBreakdown, "product_aware")
		productAware := rec.CategoryBreakdown["product_aware"]
		assert.Equal(t, 2, productAware.Analyzed)
		assert.InDelta(t, 100.0, productAware.Visibility, 0.005)
		assert.InDelta(t, 65.25, productAware.Overall, 0.005)

		require.Contains(t, rec.CategoryBreakdown, "problem_aware")
		assert.Equal(t, 1, rec.CategoryBreakdown["problem_aware"].Analyzed)
	})

	t.Run("all rows errored scores zero without failing", func(t *testing.T) {
		store := &fakeStore{}
		analyses := []*ent.AuditAnalysis{
			erroredAnalysis("openai", auditanalysis.CategoryProductAware),
			erroredAnalysis("anthropic", auditanalysis.CategoryMostAware),
		}

		rec, err := New(store).Score(context.Background(), "audit-1", analyses)
		require.NoError(t, err)
		require.Len(t, store.saved, 1)

		assert.Equal(t, 2, rec.TotalResponses)
		assert.Zero(t, rec.AnalyzedResponses)
		assert.Zero(t, rec.Overall)
		assert.Zero(t, rec.Sentiment)
		assert.Zero(t, rec.Visibility)
		assert.Nil(t, rec.ProviderBreakdown)
		assert.Nil(t, rec.CategoryBreakdown)
		assert.Nil(t, rec.CompetitorMentions)
	})

	t.Run("no analyses still writes a zero aggregate", func(t *testing.T) {
		store := &fakeStore{}

		rec, err := New(store).Score(context.Background(), "audit-1", nil)
		require.NoError(t, err)
		require.Len(t, store.saved, 1)
		assert.Zero(t, rec.TotalResponses)
		assert.Zero(t, rec.Overall)
	})

	t.Run("save failure propagates", func(t *testing.T) {
		store := &fakeStore{saveErr: errors.New("connection lost")}

		rec, err := New(store).Score(context.Background(), "audit-1", nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to save aggregate")
		assert.Nil(t, rec)
	})
}
