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

// AuditResponse holds the schema definition for the AuditResponse entity:
// one provider's reply to one query. Failed cells persist a row too, with
// empty text and the error kind.
type AuditResponse struct {
	ent.Schema
}

// Fields of the AuditResponse.
func (AuditResponse) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("response_id").
			Unique().
			Immutable(),
		field.String("audit_id").
			Immutable(),
		field.String("query_id").
			Immutable(),
		field.String("provider").
			NotEmpty().
			Comment("Provider id: openai, anthropic, google, perplexity"),
		field.String("model").
			Optional().
			Nillable().
			Comment("Concrete model the provider answered with"),
		field.Text("text").
			Optional().
			Default("").
			Comment("Raw completion; empty on failure"),
		field.Int("latency_ms").
			Default(0),
		field.Int("input_tokens").
			Default(0),
		field.Int("output_tokens").
			Default(0),
		field.Float("cost_estimate").
			Optional().
			Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(10,6)"}).
			Comment("USD estimate from token counts"),
		field.Enum("error_kind").
			Values("transient", "permanent", "quota", "data", "fatal").
			Optional().
			Nillable(),
		field.Text("error_message").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now),
	}
}

// Edges of the AuditResponse.
func (AuditResponse) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("audit", Audit.Type).
			Ref("responses").
			Field("audit_id").
			Unique().
			Required().
			Immutable(),
		edge.From("query", AuditQuery.Type).
			Ref("responses").
			Field("query_id").
			Unique().
			Required().
			Immutable(),
		edge.To("analysis", AuditAnalysis.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the AuditResponse.
func (AuditResponse) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("audit_id", "query_id", "provider").
			Unique(),
		index.Fields("audit_id", "provider"),
	}
}
