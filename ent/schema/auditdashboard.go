package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// AuditDashboard holds the schema definition for the AuditDashboard entity:
// the UI-ready denormalized snapshot, rewritten idempotently per audit.
type AuditDashboard struct {
	ent.Schema
}

// Fields of the AuditDashboard.
func (AuditDashboard) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("dashboard_id").
			Unique().
			Immutable(),
		field.String("audit_id").
			Unique().
			Immutable(),
		field.JSON("scores", DashboardScores{}),
		field.JSON("recommendations", []RankedRecommendation{}).
			Optional().
			Comment("Merged, deduped, priority-ranked"),
		field.JSON("competitor_landscape", CompetitorLandscape{}).
			Optional(),
		field.JSON("category_insights", []CategoryInsight{}).
			Optional(),
		field.Text("executive_summary").
			Optional().
			Default(""),
		field.Time("generated_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the AuditDashboard.
func (AuditDashboard) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("audit", Audit.Type).
			Ref("dashboard").
			Field("audit_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Annotations of the AuditDashboard.
func (AuditDashboard) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "audit_dashboard"},
	}
}
