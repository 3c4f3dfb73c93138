package services

import (
	"context"
	"testing"

	"github.com/specularhq/specular/ent/auditquery"
	"github.com/specularhq/specular/ent/auditresponse"
	"github.com/specularhq/specular/pkg/models"
	testdb "github.com/specularhq/specular/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseService_SaveCell(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewResponseService(client.Client)
	ctx := context.Background()
	co := seedCompany(t, client)
	a := seedAudit(t, client, co.ID)
	q := seedQuery(t, client, a.ID, "best retail analytics tools", auditquery.CategorySolutionAware)

	t.Run("saves successful cell", func(t *testing.T) {
		cost := 0.0042
		resp, err := service.SaveCell(ctx, models.ResponseCell{
			AuditID:      a.ID,
			QueryID:      q.ID,
			Provider:     "openai",
			Model:        "gpt-4o",
			Text:         "Acme Analytics and RivalOne are the leading options.",
			LatencyMs:    840,
			InputTokens:  120,
			OutputTokens: 450,
			CostEstimate: &cost,
		})
		require.NoError(t, err)
		assert.Equal(t, "openai", resp.Provider)
		require.NotNil(t, resp.Model)
		assert.Equal(t, "gpt-4o", *resp.Model)
		assert.Equal(t, 840, resp.LatencyMs)
		require.NotNil(t, resp.CostEstimate)
		assert.InDelta(t, 0.0042, *resp.CostEstimate, 0.00001)
		assert.Nil(t, resp.ErrorKind)
	})

	t.Run("saves failed cell with error kind", func(t *testing.T) {
		resp, err := service.SaveCell(ctx, models.ResponseCell{
			AuditID:      a.ID,
			QueryID:      q.ID,
			Provider:     "anthropic",
			Text:         "",
			ErrorKind:    "quota",
			ErrorMessage: "rate limit exhausted after retries",
		})
		require.NoError(t, err)
		require.NotNil(t, resp.ErrorKind)
		assert.Equal(t, auditresponse.ErrorKindQuota, *resp.ErrorKind)
		require.NotNil(t, resp.ErrorMessage)
		assert.Contains(t, *resp.ErrorMessage, "rate limit")
		assert.Empty(t, resp.Text)
	})

	t.Run("duplicate cell returns ErrAlreadyExists", func(t *testing.T) {
		cell := models.ResponseCell{
			AuditID:  a.ID,
			QueryID:  q.ID,
			Provider: "google",
			Text:     "first write",
		}
		_, err := service.SaveCell(ctx, cell)
		require.NoError(t, err)

		cell.Text = "second write"
		_, err = service.SaveCell(ctx, cell)
		assert.Equal(t, ErrAlreadyExists, err)
	})

	t.Run("validation errors", func(t *testing.T) {
		testCases := []struct {
			name string
			cell models.ResponseCell
		}{
			{"missing audit_id", models.ResponseCell{QueryID: q.ID, Provider: "openai"}},
			{"missing query_id", models.ResponseCell{AuditID: a.ID, Provider: "openai"}},
			{"missing provider", models.ResponseCell{AuditID: a.ID, QueryID: q.ID}},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := service.SaveCell(ctx, tc.cell)
				assert.True(t, IsValidationError(err))
			})
		}
	})
}

func TestResponseService_ListByAudit(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewResponseService(client.Client)
	ctx := context.Background()
	co := seedCompany(t, client)
	a := seedAudit(t, client, co.ID)
	q1 := seedQuery(t, client, a.ID, "what causes stockouts", auditquery.CategoryProblemUnaware)
	q2 := seedQuery(t, client, a.ID, "acme analytics reviews", auditquery.CategoryProductAware)

	seedResponse(t, client, a.ID, q1.ID, "openai", "resp one")
	seedResponse(t, client, a.ID, q2.ID, "openai", "resp two")

	t.Run("loads query edge for roll-ups", func(t *testing.T) {
		responses, err := service.ListByAudit(ctx, a.ID)
		require.NoError(t, err)
		require.Len(t, responses, 2)

		for _, r := range responses {
			require.NotNil(t, r.Edges.Query)
		}
		assert.Equal(t, auditquery.CategoryProblemUnaware, responses[0].Edges.Query.Category)
		assert.Equal(t, auditquery.CategoryProductAware, responses[1].Edges.Query.Category)
	})
}

func TestResponseService_CountByAudit(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewResponseService(client.Client)
	ctx := context.Background()
	co := seedCompany(t, client)
	a := seedAudit(t, client, co.ID)
	q := seedQuery(t, client, a.ID, "top analytics platforms", auditquery.CategorySolutionAware)

	seedResponse(t, client, a.ID, q.ID, "openai", "fine")
	_, err := service.SaveCell(ctx, models.ResponseCell{
		AuditID:   a.ID,
		QueryID:   q.ID,
		Provider:  "anthropic",
		ErrorKind: "transient",
	})
	require.NoError(t, err)
	_, err = service.SaveCell(ctx, models.ResponseCell{
		AuditID:   a.ID,
		QueryID:   q.ID,
		Provider:  "perplexity",
		ErrorKind: "permanent",
	})
	require.NoError(t, err)

	total, failed, err := service.CountByAudit(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Equal(t, 2, failed)
}
