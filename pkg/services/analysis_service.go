package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/specularhq/specular/ent"
	"github.com/specularhq/specular/ent/auditanalysis"
	"github.com/specularhq/specular/pkg/models"
)

// AnalysisService manages per-response analysis rows
type AnalysisService struct {
	client *ent.Client
}

// NewAnalysisService creates a new AnalysisService
func NewAnalysisService(client *ent.Client) *AnalysisService {
	return &AnalysisService{client: client}
}

// SaveAnalysis persists one response's analysis. Errored analyses are rows
// too; the scorer excludes them from means but counts them in totals.
func (s *AnalysisService) SaveAnalysis(httpCtx context.Context, rec models.AnalysisRecord) (*ent.AuditAnalysis, error) {
	if rec.AuditID == "" {
		return nil, NewValidationError("audit_id", "required")
	}
	if rec.ResponseID == "" {
		return nil, NewValidationError("response_id", "required")
	}
	if rec.Provider == "" {
		return nil, NewValidationError("provider", "required")
	}
	if rec.Category == "" {
		return nil, NewValidationError("category", "required")
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	builder := s.client.AuditAnalysis.Create().
		SetID(uuid.New().String()).
		SetAuditID(rec.AuditID).
		SetResponseID(rec.ResponseID).
		SetProvider(rec.Provider).
		SetCategory(auditanalysis.Category(rec.Category)).
		SetBrandMentioned(rec.BrandMentioned).
		SetSentimentScore(rec.SentimentScore).
		SetGeoScore(rec.GeoScore).
		SetSovScore(rec.SovScore).
		SetContextCompleteness(rec.ContextCompleteness).
		SetRecommendationSignal(rec.RecommendationSignal).
		SetErrored(rec.Errored).
		SetCreatedAt(time.Now())

	if rec.FirstPosition != nil {
		builder.SetFirstPosition(*rec.FirstPosition)
	}
	if rec.Sentiment != "" {
		builder.SetSentiment(auditanalysis.Sentiment(rec.Sentiment))
	}
	if rec.Competitors != nil {
		builder.SetCompetitorsMentioned(rec.Competitors)
	}
	if rec.Recommendations != nil {
		builder.SetRecommendations(rec.Recommendations)
	}
	if rec.ErrorMessage != "" {
		builder.SetErrorMessage(rec.ErrorMessage)
	}

	analysis, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to save analysis: %w", err)
	}

	return analysis, nil
}

// ListByAudit returns all analyses for an audit
func (s *AnalysisService) ListByAudit(ctx context.Context, auditID string) ([]*ent.AuditAnalysis, error) {
	analyses, err := s.client.AuditAnalysis.Query().
		Where(auditanalysis.AuditIDEQ(auditID)).
		Order(ent.Asc(auditanalysis.FieldCreatedAt), ent.Asc(auditanalysis.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}

	return analyses, nil
}

// ListAnalyzed returns the non-errored analyses for an audit, the set the
// insight extractor works from. The scorer takes the full list instead so
// totals count errored rows.
func (s *AnalysisService) ListAnalyzed(ctx context.Context, auditID string) ([]*ent.AuditAnalysis, error) {
	analyses, err := s.client.AuditAnalysis.Query().
		Where(
			auditanalysis.AuditIDEQ(auditID),
			auditanalysis.ErroredEQ(false),
		).
		Order(ent.Asc(auditanalysis.FieldCreatedAt), ent.Asc(auditanalysis.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyzed responses: %w", err)
	}

	return analyses, nil
}
