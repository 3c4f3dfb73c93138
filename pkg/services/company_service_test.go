package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/specularhq/specular/pkg/models"
	testdb "github.com/specularhq/specular/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompanyService_CreateCompany(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewCompanyService(client.Client)
	ctx := context.Background()

	t.Run("creates company with all fields", func(t *testing.T) {
		req := models.CreateCompanyRequest{
			Name:                "Acme Analytics",
			Domain:              "acme.io",
			Industry:            "retail analytics",
			SubIndustry:         "shelf intelligence",
			Description:         "Analytics platform for mid-market retailers",
			OriginalDescription: "We do retail analytics",
			ValuePropositions:   []string{"real-time shelf insights"},
			TargetAudiences:     []string{"retail ops leads"},
			Competitors:         []string{"RivalOne", "MetricsPro"},
			Products:            []string{"ShelfScan"},
			PainPoints:          []string{"stockouts"},
			Geographies:         []string{"US", "EU"},
			Metadata:            map[string]any{"source": "onboarding"},
		}

		c, err := service.CreateCompany(ctx, req)
		require.NoError(t, err)
		assert.NotEmpty(t, c.ID)
		assert.Equal(t, "Acme Analytics", c.Name)
		assert.Equal(t, "acme.io", c.Domain)
		assert.Equal(t, []string{"RivalOne", "MetricsPro"}, c.Competitors)
		require.NotNil(t, c.OriginalDescription)
		assert.Equal(t, "We do retail analytics", *c.OriginalDescription)
		assert.Nil(t, c.FinalDescription)
	})

	t.Run("creates company with minimal fields", func(t *testing.T) {
		c, err := service.CreateCompany(ctx, models.CreateCompanyRequest{
			Name:        "Minimal Co",
			Description: "A minimal company",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, c.ID)
		assert.Empty(t, c.Domain)
		assert.Nil(t, c.SubIndustry)
	})

	t.Run("honors caller-supplied ID", func(t *testing.T) {
		id := uuid.New().String()
		c, err := service.CreateCompany(ctx, models.CreateCompanyRequest{
			CompanyID:   id,
			Name:        "Pinned ID Co",
			Description: "Caller picked the ID",
		})
		require.NoError(t, err)
		assert.Equal(t, id, c.ID)
	})

	t.Run("duplicate ID returns ErrAlreadyExists", func(t *testing.T) {
		id := uuid.New().String()
		_, err := service.CreateCompany(ctx, models.CreateCompanyRequest{
			CompanyID:   id,
			Name:        "First",
			Description: "first insert",
		})
		require.NoError(t, err)

		_, err = service.CreateCompany(ctx, models.CreateCompanyRequest{
			CompanyID:   id,
			Name:        "Second",
			Description: "second insert",
		})
		assert.Equal(t, ErrAlreadyExists, err)
	})

	t.Run("validation errors", func(t *testing.T) {
		testCases := []struct {
			name  string
			req   models.CreateCompanyRequest
			field string
		}{
			{
				name:  "missing name",
				req:   models.CreateCompanyRequest{Description: "desc only"},
				field: "name",
			},
			{
				name:  "missing description",
				req:   models.CreateCompanyRequest{Name: "name only"},
				field: "description",
			},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := service.CreateCompany(ctx, tc.req)
				require.Error(t, err)
				assert.True(t, IsValidationError(err))
				assert.Contains(t, err.Error(), tc.field)
			})
		}
	})
}

func TestCompanyService_GetCompany(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewCompanyService(client.Client)
	ctx := context.Background()

	t.Run("returns existing company", func(t *testing.T) {
		seeded := seedCompany(t, client)

		c, err := service.GetCompany(ctx, seeded.ID)
		require.NoError(t, err)
		assert.Equal(t, seeded.ID, c.ID)
		assert.Equal(t, "Acme Analytics", c.Name)
	})

	t.Run("unknown ID returns ErrNotFound", func(t *testing.T) {
		_, err := service.GetCompany(ctx, uuid.New().String())
		assert.Equal(t, ErrNotFound, err)
	})
}

func TestCompanyService_SetFinalDescription(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewCompanyService(client.Client)
	ctx := context.Background()

	t.Run("stores enriched description", func(t *testing.T) {
		seeded := seedCompany(t, client)

		err := service.SetFinalDescription(ctx, seeded.ID, "Enriched: shelf analytics for grocers")
		require.NoError(t, err)

		c, err := service.GetCompany(ctx, seeded.ID)
		require.NoError(t, err)
		require.NotNil(t, c.FinalDescription)
		assert.Equal(t, "Enriched: shelf analytics for grocers", *c.FinalDescription)

		// The pipeline reads the enriched text once it exists.
		assert.Equal(t, "Enriched: shelf analytics for grocers", models.EffectiveDescription(c))
	})

	t.Run("empty description rejected", func(t *testing.T) {
		seeded := seedCompany(t, client)

		err := service.SetFinalDescription(ctx, seeded.ID, "")
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("unknown company returns ErrNotFound", func(t *testing.T) {
		err := service.SetFinalDescription(ctx, uuid.New().String(), "text")
		assert.Equal(t, ErrNotFound, err)
	})
}

func TestCompanyService_ListCompanies(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewCompanyService(client.Client)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := service.CreateCompany(ctx, models.CreateCompanyRequest{
			Name:        fmt.Sprintf("Company %d", i),
			Description: "listing fixture",
		})
		require.NoError(t, err)
	}

	t.Run("respects limit and offset", func(t *testing.T) {
		page, err := service.ListCompanies(ctx, 2, 0)
		require.NoError(t, err)
		assert.Len(t, page, 2)

		rest, err := service.ListCompanies(ctx, 10, 2)
		require.NoError(t, err)
		assert.Len(t, rest, 3)
	})

	t.Run("defaults applied for zero limit", func(t *testing.T) {
		all, err := service.ListCompanies(ctx, 0, 0)
		require.NoError(t, err)
		assert.Len(t, all, 5)
	})
}
