package services

import (
	"context"
	"testing"

	"github.com/specularhq/specular/ent/auditanalysis"
	"github.com/specularhq/specular/ent/auditquery"
	"github.com/specularhq/specular/ent/schema"
	"github.com/specularhq/specular/pkg/models"
	testdb "github.com/specularhq/specular/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalysisService_SaveAnalysis(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewAnalysisService(client.Client)
	ctx := context.Background()
	co := seedCompany(t, client)
	a := seedAudit(t, client, co.ID)
	q := seedQuery(t, client, a.ID, "best retail analytics tools", auditquery.CategorySolutionAware)

	t.Run("saves full analysis", func(t *testing.T) {
		resp := seedResponse(t, client, a.ID, q.ID, "openai", "Acme Analytics leads the pack.")
		pos := 0

		analysis, err := service.SaveAnalysis(ctx, models.AnalysisRecord{
			AuditID:        a.ID,
			ResponseID:     resp.ID,
			Provider:       "openai",
			Category:       "solution_aware",
			BrandMentioned: true,
			FirstPosition:  &pos,
			Sentiment:      "positive",
			SentimentScore: 0.7,
			Competitors: []schema.CompetitorMention{
				{Name: "RivalOne", Position: 42, Known: true},
			},
			GeoScore:             68.5,
			SovScore:             50,
			ContextCompleteness:  75,
			RecommendationSignal: 80,
			Recommendations:      []string{"Publish comparison content targeting RivalOne."},
		})
		require.NoError(t, err)
		assert.True(t, analysis.BrandMentioned)
		require.NotNil(t, analysis.FirstPosition)
		assert.Equal(t, 0, *analysis.FirstPosition)
		require.NotNil(t, analysis.Sentiment)
		assert.Equal(t, auditanalysis.SentimentPositive, *analysis.Sentiment)
		require.Len(t, analysis.CompetitorsMentioned, 1)
		assert.Equal(t, "RivalOne", analysis.CompetitorsMentioned[0].Name)
		assert.True(t, analysis.CompetitorsMentioned[0].Known)
		assert.False(t, analysis.Errored)
	})

	t.Run("saves errored analysis", func(t *testing.T) {
		resp := seedResponse(t, client, a.ID, q.ID, "anthropic", "some text")

		analysis, err := service.SaveAnalysis(ctx, models.AnalysisRecord{
			AuditID:      a.ID,
			ResponseID:   resp.ID,
			Provider:     "anthropic",
			Category:     "solution_aware",
			Errored:      true,
			ErrorMessage: "sentiment call failed after retries",
		})
		require.NoError(t, err)
		assert.True(t, analysis.Errored)
		require.NotNil(t, analysis.ErrorMessage)
		assert.Contains(t, *analysis.ErrorMessage, "sentiment call")
		assert.Nil(t, analysis.FirstPosition)
		assert.Nil(t, analysis.Sentiment)
	})

	t.Run("second analysis for same response returns ErrAlreadyExists", func(t *testing.T) {
		resp := seedResponse(t, client, a.ID, q.ID, "google", "text")

		rec := models.AnalysisRecord{
			AuditID:    a.ID,
			ResponseID: resp.ID,
			Provider:   "google",
			Category:   "solution_aware",
		}
		_, err := service.SaveAnalysis(ctx, rec)
		require.NoError(t, err)

		_, err = service.SaveAnalysis(ctx, rec)
		assert.Equal(t, ErrAlreadyExists, err)
	})

	t.Run("validation errors", func(t *testing.T) {
		testCases := []struct {
			name string
			rec  models.AnalysisRecord
		}{
			{"missing audit_id", models.AnalysisRecord{ResponseID: "r", Provider: "openai", Category: "most_aware"}},
			{"missing response_id", models.AnalysisRecord{AuditID: a.ID, Provider: "openai", Category: "most_aware"}},
			{"missing provider", models.AnalysisRecord{AuditID: a.ID, ResponseID: "r", Category: "most_aware"}},
			{"missing category", models.AnalysisRecord{AuditID: a.ID, ResponseID: "r", Provider: "openai"}},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := service.SaveAnalysis(ctx, tc.rec)
				assert.True(t, IsValidationError(err))
			})
		}
	})
}

func TestAnalysisService_ListAnalyzed(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewAnalysisService(client.Client)
	ctx := context.Background()
	co := seedCompany(t, client)
	a := seedAudit(t, client, co.ID)
	q := seedQuery(t, client, a.ID, "why do stockouts happen", auditquery.CategoryProblemUnaware)

	good := seedResponse(t, client, a.ID, q.ID, "openai", "good")
	bad := seedResponse(t, client, a.ID, q.ID, "anthropic", "bad")

	_, err := service.SaveAnalysis(ctx, models.AnalysisRecord{
		AuditID:    a.ID,
		ResponseID: good.ID,
		Provider:   "openai",
		Category:   "problem_unaware",
		GeoScore:   40,
	})
	require.NoError(t, err)
	_, err = service.SaveAnalysis(ctx, models.AnalysisRecord{
		AuditID:      a.ID,
		ResponseID:   bad.ID,
		Provider:     "anthropic",
		Category:     "problem_unaware",
		Errored:      true,
		ErrorMessage: "analysis provider unavailable",
	})
	require.NoError(t, err)

	t.Run("ListByAudit includes errored rows", func(t *testing.T) {
		all, err := service.ListByAudit(ctx, a.ID)
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})

	t.Run("ListAnalyzed excludes errored rows", func(t *testing.T) {
		analyzed, err := service.ListAnalyzed(ctx, a.ID)
		require.NoError(t, err)
		require.Len(t, analyzed, 1)
		assert.Equal(t, good.ID, analyzed[0].ResponseID)
	})
}
