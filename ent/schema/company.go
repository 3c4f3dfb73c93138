package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Company holds the schema definition for the Company entity.
// The profile is immutable input to audits; the pipeline never mutates it.
type Company struct {
	ent.Schema
}

// Fields of the Company.
func (Company) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("company_id").
			Unique().
			Immutable(),
		field.String("name").
			NotEmpty(),
		field.String("domain").
			Optional().
			Comment("Primary web domain, e.g. 'acme.com'"),
		field.String("industry").
			Optional(),
		field.String("sub_industry").
			Optional().
			Nillable(),
		field.Text("description").
			NotEmpty().
			Comment("Baseline description; always present"),
		field.Text("original_description").
			Optional().
			Nillable().
			Comment("User-authored description, preferred over enrichment"),
		field.Text("final_description").
			Optional().
			Nillable().
			Comment("Post-enrichment description, preferred when present"),
		field.JSON("value_propositions", []string{}).
			Optional().
			Comment("Ordered unique value propositions"),
		field.JSON("target_audiences", []string{}).
			Optional(),
		field.JSON("competitors", []string{}).
			Optional().
			Comment("Known competitor names"),
		field.JSON("products", []string{}).
			Optional(),
		field.JSON("pain_points", []string{}).
			Optional(),
		field.JSON("geographies", []string{}).
			Optional(),
		field.JSON("metadata", map[string]interface{}{}).
			Optional().
			Comment("Tech stack, pricing model, size, founding year, etc."),
		field.Time("created_at").
			Default(time.Now),
	}
}

// Edges of the Company.
func (Company) Edges() []ent.Edge {
	return []ent.Edge{
		// Audits reference the company; they are not owned by it.
		edge.To("audits", Audit.Type),
	}
}

// Indexes of the Company.
func (Company) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name"),
		index.Fields("domain"),
	}
}
