package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/specularhq/specular/ent"
	"github.com/specularhq/specular/ent/company"
	"github.com/specularhq/specular/pkg/models"
)

// CompanyService manages company profiles. Profiles are immutable input to
// audits; nothing in the pipeline updates them after creation.
type CompanyService struct {
	client *ent.Client
}

// NewCompanyService creates a new CompanyService
func NewCompanyService(client *ent.Client) *CompanyService {
	return &CompanyService{client: client}
}

// CreateCompany registers a company profile
func (s *CompanyService) CreateCompany(httpCtx context.Context, req models.CreateCompanyRequest) (*ent.Company, error) {
	if req.Name == "" {
		return nil, NewValidationError("name", "required")
	}
	if req.Description == "" {
		return nil, NewValidationError("description", "required")
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	companyID := req.CompanyID
	if companyID == "" {
		companyID = uuid.New().String()
	}

	builder := s.client.Company.Create().
		SetID(companyID).
		SetName(req.Name).
		SetDescription(req.Description).
		SetCreatedAt(time.Now())

	if req.Domain != "" {
		builder.SetDomain(req.Domain)
	}
	if req.Industry != "" {
		builder.SetIndustry(req.Industry)
	}
	if req.SubIndustry != "" {
		builder.SetSubIndustry(req.SubIndustry)
	}
	if req.OriginalDescription != "" {
		builder.SetOriginalDescription(req.OriginalDescription)
	}
	if req.ValuePropositions != nil {
		builder.SetValuePropositions(req.ValuePropositions)
	}
	if req.TargetAudiences != nil {
		builder.SetTargetAudiences(req.TargetAudiences)
	}
	if req.Competitors != nil {
		builder.SetCompetitors(req.Competitors)
	}
	if req.Products != nil {
		builder.SetProducts(req.Products)
	}
	if req.PainPoints != nil {
		builder.SetPainPoints(req.PainPoints)
	}
	if req.Geographies != nil {
		builder.SetGeographies(req.Geographies)
	}
	if req.Metadata != nil {
		builder.SetMetadata(req.Metadata)
	}

	c, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create company: %w", err)
	}

	return c, nil
}

// GetCompany retrieves a company by ID
func (s *CompanyService) GetCompany(ctx context.Context, companyID string) (*ent.Company, error) {
	c, err := s.client.Company.Query().
		Where(company.IDEQ(companyID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}

	return c, nil
}

// SetFinalDescription stores the post-enrichment description. Written by the
// enrichment collaborator before audits run; the pipeline only reads it.
func (s *CompanyService) SetFinalDescription(ctx context.Context, companyID, description string) error {
	if description == "" {
		return NewValidationError("final_description", "required")
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.Company.UpdateOneID(companyID).
		SetFinalDescription(description).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to set final description: %w", err)
	}

	return nil
}

// ListCompanies lists companies ordered by creation time, newest first
func (s *CompanyService) ListCompanies(ctx context.Context, limit, offset int) ([]*ent.Company, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	companies, err := s.client.Company.Query().
		Limit(limit).
		Offset(offset).
		Order(ent.Desc(company.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}

	return companies, nil
}
