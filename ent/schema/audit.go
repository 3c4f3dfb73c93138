package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Audit holds the schema definition for the Audit entity: one end-to-end
// visibility run over a company profile.
type Audit struct {
	ent.Schema
}

// Fields of the Audit.
func (Audit) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("audit_id").
			Unique().
			Immutable(),
		field.String("company_id").
			Immutable(),
		field.String("user_id").
			Comment("Submitting user; opaque to the pipeline"),
		field.Enum("status").
			Values("pending", "processing", "analyzing", "scoring", "populating",
				"completed", "failed", "cancelled", "cancel_requested").
			Default("pending"),
		field.JSON("providers", []string{}).
			Comment("Provider ids this audit fans out to"),
		field.Int("query_count").
			Comment("Target number of generated queries"),
		field.Float("overall_score").
			Optional().
			Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(5,2)"}),
		field.Float("brand_mention_rate").
			Optional().
			Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(5,2)"}),
		field.Text("error_message").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Comment("When the audit was submitted"),
		field.Time("started_at").
			Optional().
			Nillable().
			Comment("When a worker claimed the audit"),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Int("processing_time_ms").
			Optional().
			Nillable(),
		field.Time("heartbeat_at").
			Optional().
			Nillable().
			Comment("For stuck-audit detection"),
		field.String("claimed_by").
			Optional().
			Nillable().
			Comment("Worker identity, for multi-replica coordination"),
	}
}

// Edges of the Audit.
func (Audit) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("company", Company.Type).
			Ref("audits").
			Field("company_id").
			Unique().
			Required().
			Immutable(),
		edge.To("queries", AuditQuery.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("responses", AuditResponse.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("analyses", AuditAnalysis.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("aggregate", AuditAggregate.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("dashboard", AuditDashboard.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("events", AuditEvent.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Audit.
func (Audit) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("user_id"),
		index.Fields("company_id"),

		// Claim ordering and stuck-audit sweeps
		index.Fields("status", "created_at"),
		index.Fields("status", "heartbeat_at"),
	}
}
