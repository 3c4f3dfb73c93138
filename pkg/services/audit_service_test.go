package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/specularhq/specular/ent/audit"
	"github.com/specularhq/specular/pkg/models"
	testdb "github.com/specularhq/specular/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditService_Submit(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := newTestAuditService(client)
	ctx := context.Background()
	co := seedCompany(t, client)

	t.Run("creates pending audit", func(t *testing.T) {
		a, err := service.Submit(ctx, models.SubmitAuditRequest{
			CompanyID: co.ID,
			UserID:    "user-1",
			Providers: []string{"openai", "anthropic"},
		})
		require.NoError(t, err)
		assert.Equal(t, audit.StatusPending, a.Status)
		assert.Equal(t, []string{"openai", "anthropic"}, a.Providers)
		assert.Equal(t, 48, a.QueryCount)
		assert.Nil(t, a.CompletedAt)
	})

	t.Run("dedupes providers preserving order", func(t *testing.T) {
		a, err := service.Submit(ctx, models.SubmitAuditRequest{
			CompanyID: co.ID,
			UserID:    "user-1",
			Providers: []string{"google", "openai", "google", "openai"},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"google", "openai"}, a.Providers)
	})

	t.Run("honors explicit query count", func(t *testing.T) {
		a, err := service.Submit(ctx, models.SubmitAuditRequest{
			CompanyID:  co.ID,
			UserID:     "user-1",
			Providers:  []string{"openai"},
			QueryCount: 12,
		})
		require.NoError(t, err)
		assert.Equal(t, 12, a.QueryCount)
	})

	t.Run("honors caller-supplied audit ID", func(t *testing.T) {
		id := uuid.New().String()
		a, err := service.Submit(ctx, models.SubmitAuditRequest{
			AuditID:   id,
			CompanyID: co.ID,
			UserID:    "user-1",
			Providers: []string{"openai"},
		})
		require.NoError(t, err)
		assert.Equal(t, id, a.ID)
	})

	t.Run("duplicate audit ID returns ErrAlreadyExists", func(t *testing.T) {
		id := uuid.New().String()
		_, err := service.Submit(ctx, models.SubmitAuditRequest{
			AuditID:   id,
			CompanyID: co.ID,
			UserID:    "user-1",
			Providers: []string{"openai"},
		})
		require.NoError(t, err)

		_, err = service.Submit(ctx, models.SubmitAuditRequest{
			AuditID:   id,
			CompanyID: co.ID,
			UserID:    "user-1",
			Providers: []string{"openai"},
		})
		assert.Equal(t, ErrAlreadyExists, err)
	})

	t.Run("validation errors", func(t *testing.T) {
		testCases := []struct {
			name  string
			req   models.SubmitAuditRequest
			field string
		}{
			{
				name:  "missing company_id",
				req:   models.SubmitAuditRequest{UserID: "u", Providers: []string{"openai"}},
				field: "company_id",
			},
			{
				name:  "missing user_id",
				req:   models.SubmitAuditRequest{CompanyID: co.ID, Providers: []string{"openai"}},
				field: "user_id",
			},
			{
				name:  "no providers",
				req:   models.SubmitAuditRequest{CompanyID: co.ID, UserID: "u"},
				field: "providers",
			},
			{
				name: "unknown provider",
				req: models.SubmitAuditRequest{
					CompanyID: co.ID,
					UserID:    "u",
					Providers: []string{"openai", "llamafarm"},
				},
				field: "providers",
			},
			{
				name: "negative query count",
				req: models.SubmitAuditRequest{
					CompanyID:  co.ID,
					UserID:     "u",
					Providers:  []string{"openai"},
					QueryCount: -3,
				},
				field: "query_count",
			},
			{
				name: "company not found",
				req: models.SubmitAuditRequest{
					CompanyID: uuid.New().String(),
					UserID:    "u",
					Providers: []string{"openai"},
				},
				field: "company_id",
			},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := service.Submit(ctx, tc.req)
				require.Error(t, err)
				assert.True(t, IsValidationError(err))
				assert.Contains(t, err.Error(), tc.field)
			})
		}
	})
}

func TestAuditService_Get(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := newTestAuditService(client)
	ctx := context.Background()
	co := seedCompany(t, client)
	seeded := seedAudit(t, client, co.ID)

	t.Run("without edges", func(t *testing.T) {
		a, err := service.Get(ctx, seeded.ID, false)
		require.NoError(t, err)
		assert.Equal(t, seeded.ID, a.ID)
		assert.Nil(t, a.Edges.Company)
	})

	t.Run("with edges", func(t *testing.T) {
		a, err := service.Get(ctx, seeded.ID, true)
		require.NoError(t, err)
		require.NotNil(t, a.Edges.Company)
		assert.Equal(t, co.ID, a.Edges.Company.ID)
		// No aggregate or dashboard yet; edges stay nil without error.
		assert.Nil(t, a.Edges.Aggregate)
		assert.Nil(t, a.Edges.Dashboard)
	})

	t.Run("unknown ID returns ErrNotFound", func(t *testing.T) {
		_, err := service.Get(ctx, uuid.New().String(), false)
		assert.Equal(t, ErrNotFound, err)
	})
}

func TestAuditService_List(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := newTestAuditService(client)
	ctx := context.Background()
	co := seedCompany(t, client)

	for i := 0; i < 3; i++ {
		seedAudit(t, client, co.ID)
	}
	other := seedAudit(t, client, co.ID)
	err := client.Audit.UpdateOneID(other.ID).
		SetStatus(audit.StatusCompleted).
		SetUserID("other-user").
		Exec(ctx)
	require.NoError(t, err)

	t.Run("no filters returns everything", func(t *testing.T) {
		resp, err := service.List(ctx, models.AuditFilters{})
		require.NoError(t, err)
		assert.Equal(t, 4, resp.TotalCount)
		assert.Len(t, resp.Audits, 4)
	})

	t.Run("filters by status", func(t *testing.T) {
		resp, err := service.List(ctx, models.AuditFilters{Status: "completed"})
		require.NoError(t, err)
		assert.Equal(t, 1, resp.TotalCount)
		assert.Equal(t, other.ID, resp.Audits[0].ID)
	})

	t.Run("filters by user", func(t *testing.T) {
		resp, err := service.List(ctx, models.AuditFilters{UserID: "other-user"})
		require.NoError(t, err)
		assert.Equal(t, 1, resp.TotalCount)
	})

	t.Run("pagination caps results but counts all", func(t *testing.T) {
		resp, err := service.List(ctx, models.AuditFilters{Limit: 2})
		require.NoError(t, err)
		assert.Equal(t, 4, resp.TotalCount)
		assert.Len(t, resp.Audits, 2)
		assert.Equal(t, 2, resp.Limit)
	})
}

func TestAuditService_RequestCancel(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := newTestAuditService(client)
	ctx := context.Background()
	co := seedCompany(t, client)

	t.Run("pending goes straight to cancelled", func(t *testing.T) {
		a := seedAudit(t, client, co.ID)

		status, err := service.RequestCancel(ctx, a.ID)
		require.NoError(t, err)
		assert.Equal(t, audit.StatusCancelled, status)

		got, err := service.Get(ctx, a.ID, false)
		require.NoError(t, err)
		assert.Equal(t, audit.StatusCancelled, got.Status)
		assert.NotNil(t, got.CompletedAt)
	})

	t.Run("running audit gets cancel_requested", func(t *testing.T) {
		for _, running := range []audit.Status{
			audit.StatusProcessing,
			audit.StatusAnalyzing,
			audit.StatusScoring,
			audit.StatusPopulating,
		} {
			t.Run(string(running), func(t *testing.T) {
				a := seedAudit(t, client, co.ID)
				require.NoError(t, client.Audit.UpdateOneID(a.ID).SetStatus(running).Exec(ctx))

				status, err := service.RequestCancel(ctx, a.ID)
				require.NoError(t, err)
				assert.Equal(t, audit.StatusCancelRequested, status)
			})
		}
	})

	t.Run("second request is idempotent", func(t *testing.T) {
		a := seedAudit(t, client, co.ID)
		require.NoError(t, client.Audit.UpdateOneID(a.ID).SetStatus(audit.StatusProcessing).Exec(ctx))

		_, err := service.RequestCancel(ctx, a.ID)
		require.NoError(t, err)

		status, err := service.RequestCancel(ctx, a.ID)
		require.NoError(t, err)
		assert.Equal(t, audit.StatusCancelRequested, status)
	})

	t.Run("terminal status returns ErrTerminalStatus", func(t *testing.T) {
		for _, terminal := range []audit.Status{
			audit.StatusCompleted,
			audit.StatusFailed,
			audit.StatusCancelled,
		} {
			t.Run(string(terminal), func(t *testing.T) {
				a := seedAudit(t, client, co.ID)
				require.NoError(t, client.Audit.UpdateOneID(a.ID).SetStatus(terminal).Exec(ctx))

				status, err := service.RequestCancel(ctx, a.ID)
				assert.Equal(t, ErrTerminalStatus, err)
				assert.Equal(t, terminal, status)
			})
		}
	})

	t.Run("unknown audit returns ErrNotFound", func(t *testing.T) {
		_, err := service.RequestCancel(ctx, uuid.New().String())
		assert.Equal(t, ErrNotFound, err)
	})
}

func TestAuditService_IsCancelRequested(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := newTestAuditService(client)
	ctx := context.Background()
	co := seedCompany(t, client)

	t.Run("false until requested", func(t *testing.T) {
		a := seedAudit(t, client, co.ID)
		require.NoError(t, client.Audit.UpdateOneID(a.ID).SetStatus(audit.StatusProcessing).Exec(ctx))

		requested, err := service.IsCancelRequested(ctx, a.ID)
		require.NoError(t, err)
		assert.False(t, requested)

		_, err = service.RequestCancel(ctx, a.ID)
		require.NoError(t, err)

		requested, err = service.IsCancelRequested(ctx, a.ID)
		require.NoError(t, err)
		assert.True(t, requested)
	})

	t.Run("unknown audit returns ErrNotFound", func(t *testing.T) {
		_, err := service.IsCancelRequested(ctx, uuid.New().String())
		assert.Equal(t, ErrNotFound, err)
	})
}

func TestAuditService_StatusTransitions(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := newTestAuditService(client)
	ctx := context.Background()
	co := seedCompany(t, client)

	t.Run("non-terminal status leaves completed_at unset", func(t *testing.T) {
		a := seedAudit(t, client, co.ID)

		require.NoError(t, service.UpdateStatus(ctx, a.ID, audit.StatusAnalyzing))

		got, err := service.Get(ctx, a.ID, false)
		require.NoError(t, err)
		assert.Equal(t, audit.StatusAnalyzing, got.Status)
		assert.Nil(t, got.CompletedAt)
	})

	t.Run("terminal status sets completed_at", func(t *testing.T) {
		a := seedAudit(t, client, co.ID)

		require.NoError(t, service.UpdateStatus(ctx, a.ID, audit.StatusCancelled))

		got, err := service.Get(ctx, a.ID, false)
		require.NoError(t, err)
		assert.NotNil(t, got.CompletedAt)
	})

	t.Run("MarkFailed records message", func(t *testing.T) {
		a := seedAudit(t, client, co.ID)

		require.NoError(t, service.MarkFailed(ctx, a.ID, "query generation returned too few queries"))

		got, err := service.Get(ctx, a.ID, false)
		require.NoError(t, err)
		assert.Equal(t, audit.StatusFailed, got.Status)
		require.NotNil(t, got.ErrorMessage)
		assert.Contains(t, *got.ErrorMessage, "too few queries")
		assert.NotNil(t, got.CompletedAt)
	})

	t.Run("MarkCompleted records processing time", func(t *testing.T) {
		a := seedAudit(t, client, co.ID)

		require.NoError(t, service.MarkCompleted(ctx, a.ID, 95*time.Second))

		got, err := service.Get(ctx, a.ID, false)
		require.NoError(t, err)
		assert.Equal(t, audit.StatusCompleted, got.Status)
		require.NotNil(t, got.ProcessingTimeMs)
		assert.Equal(t, 95000, *got.ProcessingTimeMs)
	})

	t.Run("unknown audit returns ErrNotFound", func(t *testing.T) {
		assert.Equal(t, ErrNotFound, service.UpdateStatus(ctx, uuid.New().String(), audit.StatusFailed))
		assert.Equal(t, ErrNotFound, service.MarkFailed(ctx, uuid.New().String(), "x"))
		assert.Equal(t, ErrNotFound, service.MarkCompleted(ctx, uuid.New().String(), time.Second))
	})

	// A cancel that commits between a worker's boundary check and its status
	// write must not be overwritten back to a running status; the write
	// reports the cancel instead.
	t.Run("cancel_requested is never overwritten", func(t *testing.T) {
		a := seedAudit(t, client, co.ID)
		require.NoError(t, service.UpdateStatus(ctx, a.ID, audit.StatusProcessing))

		status, err := service.RequestCancel(ctx, a.ID)
		require.NoError(t, err)
		require.Equal(t, audit.StatusCancelRequested, status)

		err = service.UpdateStatus(ctx, a.ID, audit.StatusAnalyzing)
		assert.ErrorIs(t, err, ErrCancelRequested)

		got, err := service.Get(ctx, a.ID, false)
		require.NoError(t, err)
		assert.Equal(t, audit.StatusCancelRequested, got.Status)

		// The same guard covers the completed write.
		err = service.UpdateStatus(ctx, a.ID, audit.StatusCompleted)
		assert.ErrorIs(t, err, ErrCancelRequested)

		got, err = service.Get(ctx, a.ID, false)
		require.NoError(t, err)
		assert.Equal(t, audit.StatusCancelRequested, got.Status)
		assert.Nil(t, got.CompletedAt)
	})
}
