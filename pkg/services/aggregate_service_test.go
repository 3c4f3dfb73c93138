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

func TestAggregateService_SaveAggregate(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewAggregateService(client.Client)
	ctx := context.Background()
	co := seedCompany(t, client)

	t.Run("creates aggregate and stamps audit scores", func(t *testing.T) {
		a := seedAudit(t, client, co.ID)

		agg, err := service.SaveAggregate(ctx, models.AggregateRecord{
			AuditID:             a.ID,
			Overall:             61.45,
			Geo:                 68.2,
			Sov:                 55,
			Recommendation:      60,
			Sentiment:           72.5,
			Visibility:          43.75,
			ContextCompleteness: 70,
			ProviderBreakdown: map[string]schema.ScoreBreakdown{
				"openai": {Overall: 65, Geo: 70, Analyzed: 48, BrandMentions: 22},
			},
			CategoryBreakdown: map[string]schema.ScoreBreakdown{
				"solution_aware": {Overall: 58, Analyzed: 18, BrandMentions: 9},
			},
			CompetitorMentions: map[string]int{"RivalOne": 31, "MetricsPro": 12},
			TotalResponses:     96,
			AnalyzedResponses:  93,
		})
		require.NoError(t, err)
		assert.InDelta(t, 61.45, agg.OverallScore, 0.001)
		assert.Equal(t, 96, agg.TotalResponses)
		assert.Equal(t, 93, agg.AnalyzedResponses)
		assert.Equal(t, 31, agg.CompetitorMentions["RivalOne"])
		assert.InDelta(t, 70.0, agg.ProviderBreakdown["openai"].Geo, 0.001)

		// Audit row carries the headline numbers from the same commit.
		got, err := client.Audit.Get(ctx, a.ID)
		require.NoError(t, err)
		require.NotNil(t, got.OverallScore)
		assert.InDelta(t, 61.45, *got.OverallScore, 0.001)
		require.NotNil(t, got.BrandMentionRate)
		assert.InDelta(t, 43.75, *got.BrandMentionRate, 0.001)
	})

	t.Run("second save updates in place", func(t *testing.T) {
		a := seedAudit(t, client, co.ID)

		_, err := service.SaveAggregate(ctx, models.AggregateRecord{
			AuditID:           a.ID,
			Overall:           40,
			Visibility:        30,
			TotalResponses:    96,
			AnalyzedResponses: 90,
		})
		require.NoError(t, err)

		agg, err := service.SaveAggregate(ctx, models.AggregateRecord{
			AuditID:           a.ID,
			Overall:           55.5,
			Visibility:        41,
			TotalResponses:    96,
			AnalyzedResponses: 96,
		})
		require.NoError(t, err)
		assert.InDelta(t, 55.5, agg.OverallScore, 0.001)
		assert.Equal(t, 96, agg.AnalyzedResponses)

		count, err := client.AuditAggregate.Query().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, count) // one per audit, not one per save

		got, err := client.Audit.Get(ctx, a.ID)
		require.NoError(t, err)
		require.NotNil(t, got.OverallScore)
		assert.InDelta(t, 55.5, *got.OverallScore, 0.001)
	})

	t.Run("missing audit_id rejected", func(t *testing.T) {
		_, err := service.SaveAggregate(ctx, models.AggregateRecord{})
		assert.True(t, IsValidationError(err))
	})
}

func TestAggregateService_GetByAudit(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewAggregateService(client.Client)
	ctx := context.Background()

	_, err := service.GetByAudit(ctx, uuid.New().String())
	assert.Equal(t, ErrNotFound, err)
}
