package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// AuditAggregate holds the schema definition for the AuditAggregate entity:
// the per-audit score roll-up, written once by the scorer.
type AuditAggregate struct {
	ent.Schema
}

// Fields of the AuditAggregate.
func (AuditAggregate) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("aggregate_id").
			Unique().
			Immutable(),
		field.String("audit_id").
			Unique().
			Immutable(),
		field.Float("overall_score").
			Default(0).
			SchemaType(map[string]string{dialect.Postgres: "numeric(5,2)"}),
		field.Float("geo_score").
			Default(0).
			SchemaType(map[string]string{dialect.Postgres: "numeric(5,2)"}),
		field.Float("sov_score").
			Default(0).
			SchemaType(map[string]string{dialect.Postgres: "numeric(5,2)"}),
		field.Float("recommendation_score").
			Default(0).
			SchemaType(map[string]string{dialect.Postgres: "numeric(5,2)"}),
		field.Float("sentiment_score").
			Default(0).
			SchemaType(map[string]string{dialect.Postgres: "numeric(5,2)"}).
			Comment("Mean sentiment rescaled to 0..100"),
		field.Float("visibility_score").
			Default(0).
			SchemaType(map[string]string{dialect.Postgres: "numeric(5,2)"}).
			Comment("Share of analyzed responses mentioning the brand"),
		field.Float("context_completeness").
			Default(0).
			SchemaType(map[string]string{dialect.Postgres: "numeric(5,2)"}),
		field.JSON("provider_breakdown", map[string]ScoreBreakdown{}).
			Optional(),
		field.JSON("category_breakdown", map[string]ScoreBreakdown{}).
			Optional(),
		field.JSON("competitor_mentions", map[string]int{}).
			Optional(),
		field.Int("total_responses").
			Default(0),
		field.Int("analyzed_responses").
			Default(0).
			Comment("Non-errored analyses included in means"),
		field.Time("created_at").
			Default(time.Now),
	}
}

// Edges of the AuditAggregate.
func (AuditAggregate) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("audit", Audit.Type).
			Ref("aggregate").
			Field("audit_id").
			Unique().
			Required().
			Immutable(),
	}
}
