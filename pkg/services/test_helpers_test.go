package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/specularhq/specular/ent"
	"github.com/specularhq/specular/ent/audit"
	"github.com/specularhq/specular/ent/auditquery"
	"github.com/specularhq/specular/pkg/database"
	"github.com/specularhq/specular/pkg/models"
	"github.com/stretchr/testify/require"
)

// testProviders is the provider set audits may name in service tests.
var testProviders = []string{"openai", "anthropic", "google", "perplexity"}

// newTestAuditService creates an AuditService with the standard test
// provider set and default query count.
func newTestAuditService(client *database.Client) *AuditService {
	return NewAuditService(client.Client, testProviders, 48)
}

// seedCompany inserts a company profile for tests to audit against.
func seedCompany(t *testing.T, client *database.Client) *ent.Company {
	t.Helper()
	c, err := client.Company.Create().
		SetID(uuid.New().String()).
		SetName("Acme Analytics").
		SetDomain("acme.io").
		SetIndustry("retail analytics").
		SetDescription("Analytics platform for mid-market retailers").
		SetValuePropositions([]string{"real-time shelf insights", "no-code dashboards"}).
		SetTargetAudiences([]string{"retail ops leads"}).
		SetCompetitors([]string{"RivalOne", "MetricsPro"}).
		Save(context.Background())
	require.NoError(t, err)
	return c
}

// seedAudit inserts a pending audit for the company.
func seedAudit(t *testing.T, client *database.Client, companyID string) *ent.Audit {
	t.Helper()
	a, err := client.Audit.Create().
		SetID(uuid.New().String()).
		SetCompanyID(companyID).
		SetUserID("svc-test").
		SetProviders([]string{"openai", "anthropic"}).
		SetQueryCount(48).
		SetStatus(audit.StatusPending).
		Save(context.Background())
	require.NoError(t, err)
	return a
}

// seedQuery inserts one generated query row.
func seedQuery(t *testing.T, client *database.Client, auditID, text string, category auditquery.Category) *ent.AuditQuery {
	t.Helper()
	q, err := client.AuditQuery.Create().
		SetID(uuid.New().String()).
		SetAuditID(auditID).
		SetText(text).
		SetTextNormalized(models.NormalizeText(text)).
		SetCategory(category).
		Save(context.Background())
	require.NoError(t, err)
	return q
}

// seedResponse inserts one successful response cell.
func seedResponse(t *testing.T, client *database.Client, auditID, queryID, provider, text string) *ent.AuditResponse {
	t.Helper()
	r, err := client.AuditResponse.Create().
		SetID(uuid.New().String()).
		SetAuditID(auditID).
		SetQueryID(queryID).
		SetProvider(provider).
		SetText(text).
		SetLatencyMs(120).
		SetInputTokens(50).
		SetOutputTokens(200).
		Save(context.Background())
	require.NoError(t, err)
	return r
}
