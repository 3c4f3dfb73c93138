package models

import (
	"time"

	"github.com/specularhq/specular/ent"
)

// SubmitAuditRequest contains fields for submitting a new audit
type SubmitAuditRequest struct {
	AuditID    string         `json:"audit_id,omitempty"` // Generated when empty
	CompanyID  string         `json:"company_id"`
	UserID     string         `json:"user_id"`
	Providers  []string       `json:"providers"`
	QueryCount int            `json:"query_count,omitempty"` // Defaulted from config when 0
	Options    map[string]any `json:"options,omitempty"`     // Forwarded by the API collaborator; opaque to the pipeline
}

// AuditFilters contains filtering options for listing audits
type AuditFilters struct {
	Status        string     `json:"status,omitempty"`
	CompanyID     string     `json:"company_id,omitempty"`
	UserID        string     `json:"user_id,omitempty"`
	CreatedAfter  *time.Time `json:"created_after,omitempty"`
	CreatedBefore *time.Time `json:"created_before,omitempty"`
	Limit         int        `json:"limit,omitempty"`
	Offset        int        `json:"offset,omitempty"`
}

// AuditResponse wraps an Audit with optional loaded edges
type AuditResponse struct {
	*ent.Audit
	// Edges can be accessed via Audit.Edges when loaded
}

// AuditListResponse contains paginated audit list
type AuditListResponse struct {
	Audits     []*ent.Audit `json:"audits"`
	TotalCount int          `json:"total_count"`
	Limit      int          `json:"limit"`
	Offset     int          `json:"offset"`
}
