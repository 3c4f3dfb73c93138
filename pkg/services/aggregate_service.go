package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/specularhq/specular/ent"
	"github.com/specularhq/specular/ent/auditaggregate"
	"github.com/specularhq/specular/pkg/models"
)

// AggregateService manages the per-audit score roll-up
type AggregateService struct {
	client *ent.Client
}

// NewAggregateService creates a new AggregateService
func NewAggregateService(client *ent.Client) *AggregateService {
	return &AggregateService{client: client}
}

// SaveAggregate upserts the aggregate row and stamps the audit row's
// overall_score and brand_mention_rate in the same transaction, so readers
// never see the two disagree.
func (s *AggregateService) SaveAggregate(httpCtx context.Context, rec models.AggregateRecord) (*ent.AuditAggregate, error) {
	if rec.AuditID == "" {
		return nil, NewValidationError("audit_id", "required")
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	builder := tx.AuditAggregate.Create().
		SetID(uuid.New().String()).
		SetAuditID(rec.AuditID).
		SetOverallScore(rec.Overall).
		SetGeoScore(rec.Geo).
		SetSovScore(rec.Sov).
		SetRecommendationScore(rec.Recommendation).
		SetSentimentScore(rec.Sentiment).
		SetVisibilityScore(rec.Visibility).
		SetContextCompleteness(rec.ContextCompleteness).
		SetTotalResponses(rec.TotalResponses).
		SetAnalyzedResponses(rec.AnalyzedResponses).
		SetCreatedAt(time.Now())

	if rec.ProviderBreakdown != nil {
		builder.SetProviderBreakdown(rec.ProviderBreakdown)
	}
	if rec.CategoryBreakdown != nil {
		builder.SetCategoryBreakdown(rec.CategoryBreakdown)
	}
	if rec.CompetitorMentions != nil {
		builder.SetCompetitorMentions(rec.CompetitorMentions)
	}

	err = builder.
		OnConflictColumns(auditaggregate.FieldAuditID).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert aggregate: %w", err)
	}

	err = tx.Audit.UpdateOneID(rec.AuditID).
		SetOverallScore(rec.Overall).
		SetBrandMentionRate(rec.Visibility).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to stamp audit scores: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit aggregate: %w", err)
	}

	return s.GetByAudit(ctx, rec.AuditID)
}

// GetByAudit returns the aggregate row for an audit
func (s *AggregateService) GetByAudit(ctx context.Context, auditID string) (*ent.AuditAggregate, error) {
	agg, err := s.client.AuditAggregate.Query().
		Where(auditaggregate.AuditIDEQ(auditID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get aggregate: %w", err)
	}

	return agg, nil
}
