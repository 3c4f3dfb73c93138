package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AuditAnalysis holds the schema definition for the AuditAnalysis entity:
// per-response NLP results, one-to-one with AuditResponse.
type AuditAnalysis struct {
	ent.Schema
}

// Fields of the AuditAnalysis.
func (AuditAnalysis) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("analysis_id").
			Unique().
			Immutable(),
		field.String("audit_id").
			Immutable(),
		field.String("response_id").
			Unique().
			Immutable(),
		field.String("provider").
			NotEmpty().
			Comment("Denormalized from the response for roll-ups"),
		field.Enum("category").
			Values("problem_unaware", "problem_aware", "solution_aware",
				"product_aware", "most_aware", "brand_defense").
			Comment("Denormalized from the query for roll-ups"),
		field.Bool("brand_mentioned").
			Default(false),
		field.Int("first_position").
			Optional().
			Nillable().
			Comment("Character offset of the first brand hit"),
		field.Enum("sentiment").
			Values("positive", "neutral", "negative").
			Optional().
			Nillable(),
		field.Float("sentiment_score").
			Default(0).
			SchemaType(map[string]string{dialect.Postgres: "numeric(3,2)"}).
			Comment("-1..1"),
		field.JSON("competitors_mentioned", []CompetitorMention{}).
			Optional(),
		field.Float("geo_score").
			Default(0).
			SchemaType(map[string]string{dialect.Postgres: "numeric(5,2)"}),
		field.Float("sov_score").
			Default(0).
			SchemaType(map[string]string{dialect.Postgres: "numeric(5,2)"}),
		field.Float("context_completeness").
			Default(0).
			SchemaType(map[string]string{dialect.Postgres: "numeric(5,2)"}),
		field.Float("recommendation_signal").
			Default(0).
			SchemaType(map[string]string{dialect.Postgres: "numeric(5,2)"}),
		field.JSON("recommendations", []string{}).
			Optional().
			Comment("Short per-response recommendation strings"),
		field.Bool("errored").
			Default(false).
			Comment("Analysis failed; excluded from aggregate means"),
		field.Text("error_message").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now),
	}
}

// Edges of the AuditAnalysis.
func (AuditAnalysis) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("audit", Audit.Type).
			Ref("analyses").
			Field("audit_id").
			Unique().
			Required().
			Immutable(),
		edge.From("response", AuditResponse.Type).
			Ref("analysis").
			Field("response_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the AuditAnalysis.
func (AuditAnalysis) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("audit_id", "provider"),
		index.Fields("audit_id", "category"),
		index.Fields("audit_id", "errored"),
	}
}

// Annotations of the AuditAnalysis.
func (AuditAnalysis) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "audit_analyses"},
	}
}
