package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/specularhq/specular/ent"
	"github.com/specularhq/specular/ent/auditquery"
	"github.com/specularhq/specular/pkg/models"
)

// QueryService manages generated audit queries
type QueryService struct {
	client *ent.Client
}

// NewQueryService creates a new QueryService
func NewQueryService(client *ent.Client) *QueryService {
	return &QueryService{client: client}
}

// SaveQueries persists a generated query batch in one transaction. The
// generator has already deduplicated; the (audit_id, text_normalized)
// uniqueness constraint backstops it.
func (s *QueryService) SaveQueries(httpCtx context.Context, auditID string, queries []models.GeneratedQuery) ([]*ent.AuditQuery, error) {
	if auditID == "" {
		return nil, NewValidationError("audit_id", "required")
	}
	if len(queries) == 0 {
		return nil, NewValidationError("queries", "at least one query required")
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	saved := make([]*ent.AuditQuery, 0, len(queries))
	for _, q := range queries {
		builder := tx.AuditQuery.Create().
			SetID(uuid.New().String()).
			SetAuditID(auditID).
			SetText(q.Text).
			SetTextNormalized(models.NormalizeText(q.Text)).
			SetCategory(auditquery.Category(q.Category)).
			SetPriority(q.Priority).
			SetCreatedAt(time.Now())

		if q.Intent != "" {
			builder.SetIntent(q.Intent)
		}
		if q.Metadata != nil {
			builder.SetMetadata(q.Metadata)
		}

		created, err := builder.Save(ctx)
		if err != nil {
			if ent.IsConstraintError(err) {
				return nil, ErrAlreadyExists
			}
			return nil, fmt.Errorf("failed to save query: %w", err)
		}
		saved = append(saved, created)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit queries: %w", err)
	}

	return saved, nil
}

// ListByAudit returns an audit's queries in creation order
func (s *QueryService) ListByAudit(ctx context.Context, auditID string) ([]*ent.AuditQuery, error) {
	queries, err := s.client.AuditQuery.Query().
		Where(auditquery.AuditIDEQ(auditID)).
		Order(ent.Asc(auditquery.FieldCreatedAt), ent.Asc(auditquery.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list queries: %w", err)
	}

	return queries, nil
}

// CountByAudit returns the number of queries generated for an audit
func (s *QueryService) CountByAudit(ctx context.Context, auditID string) (int, error) {
	count, err := s.client.AuditQuery.Query().
		Where(auditquery.AuditIDEQ(auditID)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count queries: %w", err)
	}

	return count, nil
}
