package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/specularhq/specular/ent"
	"github.com/specularhq/specular/ent/auditresponse"
	"github.com/specularhq/specular/pkg/models"
)

// ResponseService manages raw provider responses. Every fan-out cell persists
// a row, success or failure, so reruns and analysis see the full grid.
type ResponseService struct {
	client *ent.Client
}

// NewResponseService creates a new ResponseService
func NewResponseService(client *ent.Client) *ResponseService {
	return &ResponseService{client: client}
}

// SaveCell persists one (query, provider) cell result
func (s *ResponseService) SaveCell(httpCtx context.Context, cell models.ResponseCell) (*ent.AuditResponse, error) {
	if cell.AuditID == "" {
		return nil, NewValidationError("audit_id", "required")
	}
	if cell.QueryID == "" {
		return nil, NewValidationError("query_id", "required")
	}
	if cell.Provider == "" {
		return nil, NewValidationError("provider", "required")
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	builder := s.client.AuditResponse.Create().
		SetID(uuid.New().String()).
		SetAuditID(cell.AuditID).
		SetQueryID(cell.QueryID).
		SetProvider(cell.Provider).
		SetText(cell.Text).
		SetLatencyMs(cell.LatencyMs).
		SetInputTokens(cell.InputTokens).
		SetOutputTokens(cell.OutputTokens).
		SetCreatedAt(time.Now())

	if cell.Model != "" {
		builder.SetModel(cell.Model)
	}
	if cell.CostEstimate != nil {
		builder.SetCostEstimate(*cell.CostEstimate)
	}
	if cell.ErrorKind != "" {
		builder.SetErrorKind(auditresponse.ErrorKind(cell.ErrorKind))
		builder.SetErrorMessage(cell.ErrorMessage)
	}

	resp, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to save response cell: %w", err)
	}

	return resp, nil
}

// ListByAudit returns all response cells for an audit, with the query edge
// loaded for category roll-ups
func (s *ResponseService) ListByAudit(ctx context.Context, auditID string) ([]*ent.AuditResponse, error) {
	responses, err := s.client.AuditResponse.Query().
		Where(auditresponse.AuditIDEQ(auditID)).
		WithQuery().
		Order(ent.Asc(auditresponse.FieldCreatedAt), ent.Asc(auditresponse.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list responses: %w", err)
	}

	return responses, nil
}

// CountByAudit returns total and failed cell counts for an audit
func (s *ResponseService) CountByAudit(ctx context.Context, auditID string) (total int, failed int, err error) {
	total, err = s.client.AuditResponse.Query().
		Where(auditresponse.AuditIDEQ(auditID)).
		Count(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to count responses: %w", err)
	}

	failed, err = s.client.AuditResponse.Query().
		Where(
			auditresponse.AuditIDEQ(auditID),
			auditresponse.ErrorKindNotNil(),
		).
		Count(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to count failed responses: %w", err)
	}

	return total, failed, nil
}
