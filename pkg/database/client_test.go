package database_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specularhq/specular/ent"
	"github.com/specularhq/specular/pkg/database"
	testdb "github.com/specularhq/specular/test/database"
)

func seedCompanyAndAudit(t *testing.T, client *database.Client) (*ent.Company, *ent.Audit) {
	t.Helper()
	ctx := context.Background()

	company, err := client.Company.Create().
		SetID(uuid.NewString()).
		SetName("Acme Analytics").
		SetDescription("Self-serve product analytics for B2B SaaS teams").
		Save(ctx)
	require.NoError(t, err)

	audit, err := client.Audit.Create().
		SetID(uuid.NewString()).
		SetCompanyID(company.ID).
		SetUserID("user-1").
		SetProviders([]string{"openai", "anthropic"}).
		SetQueryCount(48).
		Save(ctx)
	require.NoError(t, err)

	return company, audit
}

func TestClientConnectionPool(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	require.NoError(t, client.DB().PingContext(ctx))

	health, err := client.Health(ctx)
	require.NoError(t, err)
	assert.Equal(t, "healthy", health.Status)
	assert.Greater(t, health.Pool.MaxOpen, 0)
}

func TestQueryUniquenessPerAudit(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	_, audit := seedCompanyAndAudit(t, client)

	_, err := client.AuditQuery.Create().
		SetID(uuid.NewString()).
		SetAuditID(audit.ID).
		SetText("Best product analytics tools?").
		SetTextNormalized("best product analytics tools?").
		SetCategory("solution_aware").
		Save(ctx)
	require.NoError(t, err)

	// Same normalized text in the same audit must be rejected.
	_, err = client.AuditQuery.Create().
		SetID(uuid.NewString()).
		SetAuditID(audit.ID).
		SetText("BEST Product Analytics Tools?").
		SetTextNormalized("best product analytics tools?").
		SetCategory("solution_aware").
		Save(ctx)
	require.Error(t, err)
	assert.True(t, ent.IsConstraintError(err))

	// The same text in a different audit is fine.
	_, other := seedCompanyAndAudit(t, client)
	_, err = client.AuditQuery.Create().
		SetID(uuid.NewString()).
		SetAuditID(other.ID).
		SetText("Best product analytics tools?").
		SetTextNormalized("best product analytics tools?").
		SetCategory("solution_aware").
		Save(ctx)
	require.NoError(t, err)
}

func TestResponseCellUniqueness(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	_, audit := seedCompanyAndAudit(t, client)

	query, err := client.AuditQuery.Create().
		SetID(uuid.NewString()).
		SetAuditID(audit.ID).
		SetText("how do teams track feature adoption").
		SetTextNormalized("how do teams track feature adoption").
		SetCategory("problem_aware").
		Save(ctx)
	require.NoError(t, err)

	_, err = client.AuditResponse.Create().
		SetID(uuid.NewString()).
		SetAuditID(audit.ID).
		SetQueryID(query.ID).
		SetProvider("openai").
		SetText("Teams usually instrument events...").
		Save(ctx)
	require.NoError(t, err)

	_, err = client.AuditResponse.Create().
		SetID(uuid.NewString()).
		SetAuditID(audit.ID).
		SetQueryID(query.ID).
		SetProvider("openai").
		SetText("duplicate cell").
		Save(ctx)
	require.Error(t, err)
	assert.True(t, ent.IsConstraintError(err))
}

func TestAuditDeleteCascades(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	_, audit := seedCompanyAndAudit(t, client)

	query, err := client.AuditQuery.Create().
		SetID(uuid.NewString()).
		SetAuditID(audit.ID).
		SetText("why do dashboards drift from reality").
		SetTextNormalized("why do dashboards drift from reality").
		SetCategory("problem_unaware").
		Save(ctx)
	require.NoError(t, err)

	_, err = client.AuditResponse.Create().
		SetID(uuid.NewString()).
		SetAuditID(audit.ID).
		SetQueryID(query.ID).
		SetProvider("anthropic").
		Save(ctx)
	require.NoError(t, err)

	require.NoError(t, client.Audit.DeleteOneID(audit.ID).Exec(ctx))

	queries, err := client.AuditQuery.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, queries)
	responses, err := client.AuditResponse.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, responses)
}

func TestHealthStatusJSONMilliseconds(t *testing.T) {
	client := testdb.NewTestClient(t)

	health, err := client.Health(context.Background())
	require.NoError(t, err)
	require.NotNil(t, health)
	assert.GreaterOrEqual(t, health.ResponseTime, int64(0))
	assert.Less(t, health.ResponseTime, int64(1000), "local ping should be fast")

	jsonBytes, err := json.Marshal(health)
	require.NoError(t, err)

	var jsonData map[string]interface{}
	require.NoError(t, json.Unmarshal(jsonBytes, &jsonData))

	// If these were nanoseconds they would exceed 1,000,000.
	responseTime, ok := jsonData["response_time_ms"].(float64)
	require.True(t, ok, "response_time_ms should be a number")
	assert.Less(t, responseTime, float64(1_000_000))
}
