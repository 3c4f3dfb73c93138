package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/specularhq/specular/ent"
	"github.com/specularhq/specular/ent/auditdashboard"
	"github.com/specularhq/specular/pkg/models"
)

// DashboardService manages the UI-ready dashboard snapshot
type DashboardService struct {
	client *ent.Client
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(client *ent.Client) *DashboardService {
	return &DashboardService{client: client}
}

// SaveDashboard upserts the dashboard row keyed by audit_id. Re-running the
// populator for the same audit overwrites the previous snapshot; generated_at
// is immutable, so a rerun keeps the timestamp of the first generation.
func (s *DashboardService) SaveDashboard(httpCtx context.Context, rec models.DashboardRecord) (*ent.AuditDashboard, error) {
	if rec.AuditID == "" {
		return nil, NewValidationError("audit_id", "required")
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	builder := s.client.AuditDashboard.Create().
		SetID(uuid.New().String()).
		SetAuditID(rec.AuditID).
		SetScores(rec.Scores).
		SetCompetitorLandscape(rec.CompetitorLandscape).
		SetExecutiveSummary(rec.ExecutiveSummary).
		SetGeneratedAt(time.Now())

	if rec.Recommendations != nil {
		builder.SetRecommendations(rec.Recommendations)
	}
	if rec.CategoryInsights != nil {
		builder.SetCategoryInsights(rec.CategoryInsights)
	}

	err := builder.
		OnConflictColumns(auditdashboard.FieldAuditID).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert dashboard: %w", err)
	}

	return s.GetByAudit(ctx, rec.AuditID)
}

// GetByAudit returns the dashboard row for an audit
func (s *DashboardService) GetByAudit(ctx context.Context, auditID string) (*ent.AuditDashboard, error) {
	d, err := s.client.AuditDashboard.Query().
		Where(auditdashboard.AuditIDEQ(auditID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get dashboard: %w", err)
	}

	return d, nil
}
