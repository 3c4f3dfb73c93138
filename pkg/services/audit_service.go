package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/specularhq/specular/ent"
	"github.com/specularhq/specular/ent/audit"
	"github.com/specularhq/specular/ent/company"
	"github.com/specularhq/specular/pkg/models"
)

// AuditService manages audit lifecycle: submission, status transitions,
// cancellation, and stuck-audit detection.
type AuditService struct {
	client             *ent.Client
	availableProviders map[string]bool
	defaultQueryCount  int
}

// NewAuditService creates a new AuditService. availableProviders is the set
// of configured provider ids; submissions naming anything else are rejected
// up front rather than burning a full fan-out on auth errors.
func NewAuditService(client *ent.Client, availableProviders []string, defaultQueryCount int) *AuditService {
	available := make(map[string]bool, len(availableProviders))
	for _, id := range availableProviders {
		available[id] = true
	}
	return &AuditService{
		client:             client,
		availableProviders: available,
		defaultQueryCount:  defaultQueryCount,
	}
}

// Submit validates and persists a pending audit. The API collaborator and
// tests share this entry point; workers pick the row up from the queue.
func (s *AuditService) Submit(httpCtx context.Context, req models.SubmitAuditRequest) (*ent.Audit, error) {
	if req.CompanyID == "" {
		return nil, NewValidationError("company_id", "required")
	}
	if req.UserID == "" {
		return nil, NewValidationError("user_id", "required")
	}
	if len(req.Providers) == 0 {
		return nil, NewValidationError("providers", "at least one provider required")
	}

	// Dedupe preserving order; duplicate ids would collide on the
	// (audit_id, query_id, provider) uniqueness during fan-out.
	seen := make(map[string]bool, len(req.Providers))
	providers := make([]string, 0, len(req.Providers))
	for _, id := range req.Providers {
		if seen[id] {
			continue
		}
		seen[id] = true
		if !s.availableProviders[id] {
			return nil, NewValidationError("providers", fmt.Sprintf("unknown provider %q", id))
		}
		providers = append(providers, id)
	}

	queryCount := req.QueryCount
	if queryCount == 0 {
		queryCount = s.defaultQueryCount
	}
	if queryCount < 1 {
		return nil, NewValidationError("query_count", "must be positive")
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	exists, err := s.client.Company.Query().
		Where(company.IDEQ(req.CompanyID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check company: %w", err)
	}
	if !exists {
		return nil, NewValidationError("company_id", "company not found")
	}

	auditID := req.AuditID
	if auditID == "" {
		auditID = uuid.New().String()
	}

	a, err := s.client.Audit.Create().
		SetID(auditID).
		SetCompanyID(req.CompanyID).
		SetUserID(req.UserID).
		SetProviders(providers).
		SetQueryCount(queryCount).
		SetStatus(audit.StatusPending).
		SetCreatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create audit: %w", err)
	}

	return a, nil
}

// Get retrieves an audit by ID with optional edge loading
func (s *AuditService) Get(ctx context.Context, auditID string, withEdges bool) (*ent.Audit, error) {
	query := s.client.Audit.Query().Where(audit.IDEQ(auditID))

	if withEdges {
		query = query.
			WithCompany().
			WithAggregate().
			WithDashboard()
	}

	a, err := query.Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get audit: %w", err)
	}

	return a, nil
}

// List lists audits with filtering and pagination
func (s *AuditService) List(ctx context.Context, filters models.AuditFilters) (*models.AuditListResponse, error) {
	query := s.client.Audit.Query()

	if filters.Status != "" {
		query = query.Where(audit.StatusEQ(audit.Status(filters.Status)))
	}
	if filters.CompanyID != "" {
		query = query.Where(audit.CompanyIDEQ(filters.CompanyID))
	}
	if filters.UserID != "" {
		query = query.Where(audit.UserIDEQ(filters.UserID))
	}
	if filters.CreatedAfter != nil {
		query = query.Where(audit.CreatedAtGTE(*filters.CreatedAfter))
	}
	if filters.CreatedBefore != nil {
		query = query.Where(audit.CreatedAtLT(*filters.CreatedBefore))
	}

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count audits: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	audits, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Desc(audit.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list audits: %w", err)
	}

	return &models.AuditListResponse{
		Audits:     audits,
		TotalCount: totalCount,
		Limit:      limit,
		Offset:     offset,
	}, nil
}

// RequestCancel asks for an audit to stop. A pending audit has no worker
// holding it, so it goes straight to cancelled; a running audit gets
// cancel_requested, which the worker observes at the next phase boundary.
// Returns the status the audit ended up in.
func (s *AuditService) RequestCancel(ctx context.Context, auditID string) (audit.Status, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := s.client.Tx(writeCtx)
	if err != nil {
		return "", fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	a, err := tx.Audit.Query().
		Where(audit.IDEQ(auditID)).
		ForUpdate().
		Only(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to lock audit: %w", err)
	}

	var target audit.Status
	switch a.Status {
	case audit.StatusPending:
		target = audit.StatusCancelled
	case audit.StatusProcessing, audit.StatusAnalyzing, audit.StatusScoring, audit.StatusPopulating:
		target = audit.StatusCancelRequested
	case audit.StatusCancelRequested:
		// Already requested; idempotent
		if err := tx.Commit(); err != nil {
			return "", fmt.Errorf("failed to commit cancel: %w", err)
		}
		return audit.StatusCancelRequested, nil
	default:
		return a.Status, ErrTerminalStatus
	}

	update := tx.Audit.UpdateOneID(auditID).SetStatus(target)
	if target == audit.StatusCancelled {
		update = update.SetCompletedAt(time.Now())
	}
	if err := update.Exec(writeCtx); err != nil {
		return "", fmt.Errorf("failed to update audit status: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit cancel: %w", err)
	}

	return target, nil
}

// IsCancelRequested reports whether cancellation has been requested.
// Workers poll this at phase boundaries.
func (s *AuditService) IsCancelRequested(ctx context.Context, auditID string) (bool, error) {
	a, err := s.client.Audit.Query().
		Where(audit.IDEQ(auditID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return false, ErrNotFound
		}
		return false, fmt.Errorf("failed to read audit status: %w", err)
	}
	return a.Status == audit.StatusCancelRequested, nil
}

// UpdateStatus transitions an audit to the given status. Terminal statuses
// get completed_at set.
//
// The write is guarded: a concurrent RequestCancel that committed
// cancel_requested after the caller's last boundary check must not be
// overwritten back to a running status, or the cancel would never be seen
// again. When the guard trips, ErrCancelRequested is returned and the row is
// left untouched for the caller to finalize as cancelled.
func (s *AuditService) UpdateStatus(ctx context.Context, auditID string, status audit.Status) error {
	// Use background context with timeout for critical write
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.Audit.Update().
		Where(
			audit.IDEQ(auditID),
			audit.StatusNEQ(audit.StatusCancelRequested),
		).
		SetStatus(status)

	if status == audit.StatusCompleted ||
		status == audit.StatusFailed ||
		status == audit.StatusCancelled {
		update = update.SetCompletedAt(time.Now())
	}

	n, err := update.Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to update audit status: %w", err)
	}
	if n == 0 {
		a, err := s.client.Audit.Query().
			Where(audit.IDEQ(auditID)).
			Only(writeCtx)
		if err != nil {
			if ent.IsNotFound(err) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to read audit status: %w", err)
		}
		if a.Status == audit.StatusCancelRequested || a.Status == audit.StatusCancelled {
			return ErrCancelRequested
		}
		return ErrTerminalStatus
	}

	return nil
}

// MarkFailed sets the audit failed with an error message
func (s *AuditService) MarkFailed(ctx context.Context, auditID, message string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.Audit.UpdateOneID(auditID).
		SetStatus(audit.StatusFailed).
		SetErrorMessage(message).
		SetCompletedAt(time.Now()).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to mark audit failed: %w", err)
	}

	return nil
}

// MarkCompleted sets the audit completed and records the wall-clock
// processing time.
func (s *AuditService) MarkCompleted(ctx context.Context, auditID string, processingTime time.Duration) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.Audit.UpdateOneID(auditID).
		SetStatus(audit.StatusCompleted).
		SetCompletedAt(time.Now()).
		SetProcessingTimeMs(int(processingTime.Milliseconds())).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to mark audit completed: %w", err)
	}

	return nil
}
