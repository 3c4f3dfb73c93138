package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/specularhq/specular/ent/schema"
	"github.com/specularhq/specular/pkg/models"
	testdb "github.com/specularhq/specular/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardService_SaveDashboard(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewDashboardService(client.Client)
	ctx := context.Background()
	co := seedCompany(t, client)

	t.Run("creates dashboard snapshot", func(t *testing.T) {
		a := seedAudit(t, client, co.ID)

		d, err := service.SaveDashboard(ctx, models.DashboardRecord{
			AuditID: a.ID,
			Scores: schema.DashboardScores{
				Overall:    61.45,
				Geo:        68.2,
				Sov:        55,
				Visibility: 43.75,
			},
			Recommendations: []schema.RankedRecommendation{
				{Text: "Publish comparison pages against RivalOne.", Kind: "content", Category: "product_aware", Priority: 1},
			},
			CompetitorLandscape: schema.CompetitorLandscape{
				BrandMentions: 42,
				TotalMentions: 85,
				Counts:        map[string]int{"RivalOne": 31, "MetricsPro": 12},
				Top: []schema.CompetitorStanding{
					{Name: "RivalOne", Mentions: 31, Share: 36.47},
				},
			},
			CategoryInsights: []schema.CategoryInsight{
				{Category: "solution_aware", Queries: 9, Analyzed: 18, Visibility: 50, Score: 58},
			},
			ExecutiveSummary: "Acme Analytics appears in 44% of answers.",
		})
		require.NoError(t, err)
		assert.InDelta(t, 61.45, d.Scores.Overall, 0.001)
		require.Len(t, d.Recommendations, 1)
		assert.Equal(t, 1, d.Recommendations[0].Priority)
		assert.Equal(t, 31, d.CompetitorLandscape.Counts["RivalOne"])
		assert.Contains(t, d.ExecutiveSummary, "44%")
		assert.False(t, d.GeneratedAt.IsZero())
	})

	t.Run("rerun overwrites the previous snapshot", func(t *testing.T) {
		a := seedAudit(t, client, co.ID)

		first, err := service.SaveDashboard(ctx, models.DashboardRecord{
			AuditID:          a.ID,
			Scores:           schema.DashboardScores{Overall: 40},
			ExecutiveSummary: "first pass",
		})
		require.NoError(t, err)

		d, err := service.SaveDashboard(ctx, models.DashboardRecord{
			AuditID:          a.ID,
			Scores:           schema.DashboardScores{Overall: 62},
			ExecutiveSummary: "second pass",
		})
		require.NoError(t, err)
		assert.InDelta(t, 62.0, d.Scores.Overall, 0.001)
		assert.Equal(t, "second pass", d.ExecutiveSummary)

		// The row keeps its identity across reruns.
		assert.Equal(t, first.ID, d.ID)
		assert.True(t, d.GeneratedAt.Equal(first.GeneratedAt))

		count, err := client.AuditDashboard.Query().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, count) // one per audit across both subtests
	})

	t.Run("missing audit_id rejected", func(t *testing.T) {
		_, err := service.SaveDashboard(ctx, models.DashboardRecord{})
		assert.True(t, IsValidationError(err))
	})
}

func TestDashboardService_GetByAudit(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewDashboardService(client.Client)
	ctx := context.Background()

	_, err := service.GetByAudit(ctx, uuid.New().String())
	assert.Equal(t, ErrNotFound, err)
}
