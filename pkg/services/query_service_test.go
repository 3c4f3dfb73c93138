package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/specularhq/specular/ent/auditquery"
	"github.com/specularhq/specular/pkg/models"
	testdb "github.com/specularhq/specular/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryService_SaveQueries(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewQueryService(client.Client)
	ctx := context.Background()
	co := seedCompany(t, client)

	t.Run("saves a batch with normalized text", func(t *testing.T) {
		a := seedAudit(t, client, co.ID)

		saved, err := service.SaveQueries(ctx, a.ID, []models.GeneratedQuery{
			{Text: "  Best shelf analytics tools?  ", Category: "solution_aware", Intent: "comparison", Priority: 0.8},
			{Text: "why do stockouts happen", Category: "problem_unaware", Priority: 0.5},
		})
		require.NoError(t, err)
		require.Len(t, saved, 2)

		assert.Equal(t, "  Best shelf analytics tools?  ", saved[0].Text)
		assert.Equal(t, "best shelf analytics tools?", saved[0].TextNormalized)
		assert.Equal(t, auditquery.CategorySolutionAware, saved[0].Category)
		require.NotNil(t, saved[0].Intent)
		assert.Equal(t, "comparison", *saved[0].Intent)
		assert.InDelta(t, 0.8, saved[0].Priority, 0.001)

		assert.Nil(t, saved[1].Intent)
	})

	t.Run("duplicate normalized text returns ErrAlreadyExists and rolls back", func(t *testing.T) {
		a := seedAudit(t, client, co.ID)

		_, err := service.SaveQueries(ctx, a.ID, []models.GeneratedQuery{
			{Text: "compare acme to rivalone", Category: "product_aware", Priority: 0.5},
		})
		require.NoError(t, err)

		_, err = service.SaveQueries(ctx, a.ID, []models.GeneratedQuery{
			{Text: "what is shelf intelligence", Category: "problem_aware", Priority: 0.5},
			{Text: "  COMPARE Acme TO RivalOne ", Category: "product_aware", Priority: 0.5},
		})
		assert.Equal(t, ErrAlreadyExists, err)

		// The whole second batch rolled back, including its clean first row.
		count, err := service.CountByAudit(ctx, a.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("same text allowed across audits", func(t *testing.T) {
		first := seedAudit(t, client, co.ID)
		second := seedAudit(t, client, co.ID)

		batch := []models.GeneratedQuery{{Text: "top retail analytics vendors", Category: "solution_aware", Priority: 0.5}}
		_, err := service.SaveQueries(ctx, first.ID, batch)
		require.NoError(t, err)
		_, err = service.SaveQueries(ctx, second.ID, batch)
		require.NoError(t, err)
	})

	t.Run("validation errors", func(t *testing.T) {
		_, err := service.SaveQueries(ctx, "", []models.GeneratedQuery{{Text: "x", Category: "most_aware"}})
		assert.True(t, IsValidationError(err))

		a := seedAudit(t, client, co.ID)
		_, err = service.SaveQueries(ctx, a.ID, nil)
		assert.True(t, IsValidationError(err))
	})
}

func TestQueryService_ListByAudit(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewQueryService(client.Client)
	ctx := context.Background()
	co := seedCompany(t, client)
	a := seedAudit(t, client, co.ID)

	saved, err := service.SaveQueries(ctx, a.ID, []models.GeneratedQuery{
		{Text: "query one", Category: "problem_unaware", Priority: 0.5},
		{Text: "query two", Category: "problem_aware", Priority: 0.5},
		{Text: "query three", Category: "brand_defense", Priority: 0.5},
	})
	require.NoError(t, err)

	t.Run("returns queries in save order", func(t *testing.T) {
		queries, err := service.ListByAudit(ctx, a.ID)
		require.NoError(t, err)
		require.Len(t, queries, 3)
		for i, q := range queries {
			assert.Equal(t, saved[i].Text, q.Text)
		}
	})

	t.Run("empty for unknown audit", func(t *testing.T) {
		queries, err := service.ListByAudit(ctx, uuid.New().String())
		require.NoError(t, err)
		assert.Empty(t, queries)
	})

	t.Run("count matches", func(t *testing.T) {
		count, err := service.CountByAudit(ctx, a.ID)
		require.NoError(t, err)
		assert.Equal(t, 3, count)
	})
}
