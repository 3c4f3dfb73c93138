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

// AuditQuery holds the schema definition for the AuditQuery entity:
// one generated buyer-journey prompt.
type AuditQuery struct {
	ent.Schema
}

// Fields of the AuditQuery.
func (AuditQuery) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("query_id").
			Unique().
			Immutable(),
		field.String("audit_id").
			Immutable(),
		field.Text("text").
			NotEmpty(),
		field.String("text_normalized").
			NotEmpty().
			Comment("lower(trim(text)); backs the per-audit uniqueness constraint"),
		field.Enum("category").
			Values("problem_unaware", "problem_aware", "solution_aware",
				"product_aware", "most_aware", "brand_defense"),
		field.String("intent").
			Optional().
			Nillable().
			Comment("Free-form intent subtype from the generator"),
		field.Float("priority").
			Default(0.5).
			SchemaType(map[string]string{dialect.Postgres: "numeric(3,2)"}).
			Comment("0..1, higher runs first in presentation"),
		field.JSON("metadata", map[string]interface{}{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now),
	}
}

// Edges of the AuditQuery.
func (AuditQuery) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("audit", Audit.Type).
			Ref("queries").
			Field("audit_id").
			Unique().
			Required().
			Immutable(),
		edge.To("responses", AuditResponse.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the AuditQuery.
func (AuditQuery) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("audit_id", "text_normalized").
			Unique(),
		index.Fields("audit_id", "category"),
	}
}
