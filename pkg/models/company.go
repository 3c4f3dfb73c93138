package models

import "github.com/specularhq/specular/ent"

// CreateCompanyRequest contains fields for registering a company profile
type CreateCompanyRequest struct {
	CompanyID           string         `json:"company_id,omitempty"` // Generated when empty
	Name                string         `json:"name"`
	Domain              string         `json:"domain,omitempty"`
	Industry            string         `json:"industry,omitempty"`
	SubIndustry         string         `json:"sub_industry,omitempty"`
	Description         string         `json:"description"`
	OriginalDescription string         `json:"original_description,omitempty"`
	ValuePropositions   []string       `json:"value_propositions,omitempty"`
	TargetAudiences     []string       `json:"target_audiences,omitempty"`
	Competitors         []string       `json:"competitors,omitempty"`
	Products            []string       `json:"products,omitempty"`
	PainPoints          []string       `json:"pain_points,omitempty"`
	Geographies         []string       `json:"geographies,omitempty"`
	Metadata            map[string]any `json:"metadata,omitempty"`
}

// CompanyResponse wraps a Company
type CompanyResponse struct {
	*ent.Company
}

// EffectiveDescription returns the description variant the pipeline consumes:
// final_description when enrichment produced one, otherwise the user-authored
// original_description, otherwise the baseline description.
func EffectiveDescription(c *ent.Company) string {
	if c.FinalDescription != nil && *c.FinalDescription != "" {
		return *c.FinalDescription
	}
	if c.OriginalDescription != nil && *c.OriginalDescription != "" {
		return *c.OriginalDescription
	}
	return c.Description
}
