// Code generated by ent, DO NOT EDIT.

package auditdashboard

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/specularhq/specular/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.AuditDashboard {
	return predicate.AuditDashboard(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.AuditDashboard {
	return predicate.AuditDashboard(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.AuditDashboard {
	return predicate.AuditDashboard(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.AuditDashboard {
	return predicate.AuditDashboard(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.AuditDashboard {
	return predicate.AuditDashboard(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.AuditDashboard {
	return predicate.AuditDashboard(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.AuditDashboard {
	return predicate.AuditDashboard(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.AuditDashboard {
	return predicate.AuditDashboard(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.AuditDashboard {
	return predicate.AuditDashboard(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.AuditDashboard {
	return predicate.AuditDashboard(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.AuditDashboard {
	return predicate.AuditDashboard(sql.FieldContainsFold(FieldID, id))
}

// AuditID applies equality check predicate on the "audit_id" field. It's identical to AuditIDEQ.
func AuditID(v string) predicate.AuditDashboard {
	return predicate.AuditDashboard(sql.FieldEQ(FieldAuditID, v))
}

// ExecutiveSummary applies equality check predicate on the "executive_summary" field. It's identical to ExecutiveSummaryEQ.
func ExecutiveSummary(v string) predicate.AuditDashboard {
	return predicate.AuditDashboard(sql.FieldEQ(FieldExecutiveSummary, v))
}

// GeneratedAt applies equality check predicate on the "generated_at" field. It's identical to GeneratedAtEQ.
func GeneratedAt(v time.Time) predicate.AuditDashboard {
	return predicate.AuditDashboard(sql.FieldEQ(FieldGeneratedAt, v))
}

// AuditIDEQ applies the EQ predicate on the "audit_id" field.
func AuditIDEQ(v string) predicate.AuditDashboard {
	return predicate.AuditDashboard(sql.FieldEQ(FieldAuditID, v))
}

// AuditIDNEQ applies the NEQ predicate on the "audit_id" field.
func AuditIDNEQ(v string) predicate.AuditDashboard {
	return predicate.AuditDashboard(sql.FieldNEQ(FieldAuditID, v))
}

// AuditIDIn applies the In predicate on the "audit_id" field.
func AuditIDIn(vs ...string) predicate.AuditDashboard {
	return predicate.AuditDashboard(sql.FieldIn(FieldAuditID, vs...))
}

// AuditIDNotIn applies the NotIn predicate on the "audit_id" field.
func AuditIDNotIn(vs ...string) predicate.AuditDashboard {
	return predicate.AuditDashboard(sql.FieldNotIn(FieldAuditID, vs...))
}

// AuditIDGT applies the GT predicate on the "audit_id" field.
func AuditIDGT(v string) predicate.AuditDashboard {
	return predicate.AuditDashboard(sql.FieldGT(FieldAuditID, v))
}

// AuditIDGTE applies the GTE predicate on the "audit_id" field.
func AuditIDGTE(v string) predicate.AuditDashboard {
	return predicate.AuditDashboard(sql.FieldGTE(FieldAuditID, v))
}

// AuditIDLT applies the LT predicate on the "audit_id" field.
func AuditIDLT(v string) predicate.AuditDashboard {
	return predicate.AuditDashboard(sql.FieldLT(FieldAuditID, v))
}

// AuditIDLTE applies the LTE predicate on the "audit_id" field.
func AuditIDLTE(v string) predicate.AuditDashboard {
	return predicate.AuditDashboard(sql.FieldLTE(FieldAuditID, v))
}

// AuditIDContains applies the Contains predicate on the "audit_id" field.
func AuditIDContains(v string) predicate.AuditDashboard {
	return predicate.AuditDashboard(sql.FieldContains(FieldAuditID, v))
}

// AuditIDHasPrefix applies the HasPrefix predicate on the "audit_id" field.
func AuditIDHasPrefix(v string) predicate.AuditDashboard {
	return predicate.AuditDashboard(sql.FieldHasPrefix(FieldAuditID, v))
}

// AuditIDHasSuffix applies the HasSuffix predicate on the "audit_id" field.
func AuditIDHasSuffix(v string) predicate.AuditDashboard {
	return predicate.AuditDashboard(sql.FieldHasSuffix(FieldAuditID, v))
}

// AuditIDEqualFold applies the EqualFold predicate on the "audit_id" field.
func AuditIDEqualFold(v string) predicate.AuditDashboard {
	return predicate.AuditDashboard(sql.FieldEqualFold(FieldAuditID, v))
}

// AuditIDContainsFold applies the ContainsFold predicate on the "audit_id" field.
func AuditIDContainsFold(v string) predicate.AuditDashboard {
	return predicate.AuditDashboard(sql.FieldContainsFold(FieldAuditID, v))
}

// RecommendationsIsNil applies the IsNil predicate on the "recommendations" field.
func RecommendationsIsNil() predicate.AuditDashboard {
	return predicate.AuditDashboard(sql.FieldIsNull(FieldRecommendations))
}

// RecommendationsNotNil applies the NotNil predicate on the "recommendations" field.
func RecommendationsNotNil() predicate.AuditDashboard {
	return predicate.AuditDashboard(sql.FieldNotNull(FieldRecommendations))
}

// CompetitorLandscapeIsNil applies the IsNil predicate on the "competitor_landscape" field.
func CompetitorLandscapeIsNil() predicate.AuditDashboard {
	return predicate.AuditDashboard(sql.FieldIsNull(FieldCompetitorLandscape))
}

// CompetitorLandscapeNotNil applies the NotNil predicate on the "competitor_landscape" field.
func CompetitorLandscapeNotNil() predicate.AuditDashboard {
	return predicate.AuditDashboard(sql.FieldNotNull(FieldCompetitorLandscape))
}

// CategoryInsightsIsNil applies the IsNil predicate on the "category_insights" field.
func CategoryInsightsIsNil() predicate.AuditDashboard {
	return predicate.AuditDashboard(sql.FieldIsNull(FieldCategoryInsights))
}

// CategoryInsightsNotNil applies the NotNil predicate on the "category_insights" field.
func CategoryInsightsNotNil() predicate.AuditDashboard {
	return predicate.AuditDashboard(sql.FieldNotNull(FieldCategoryInsights))
}

// ExecutiveSummaryEQ applies the EQ predicate on the "executive_summary" field.
func ExecutiveSummaryEQ(v string) predicate.AuditDashboard {
	return predicate.AuditDashboard(sql.FieldEQ(FieldExecutiveSummary, v))
}

// ExecutiveSummaryNEQ applies the NEQ predicate on the "executive_summary" field.
func ExecutiveSummaryNEQ(v string) predicate.AuditDashboard {
	return predicate.AuditDashboard(sql.FieldNEQ(FieldExecutiveSummary, v))
}

// ExecutiveSummaryIn applies the In predicate on the "executive_summary" field.
func ExecutiveSummaryIn(vs ...string) predicate.AuditDashboard {
	return predicate.AuditDashboard(sql.FieldIn(FieldExecutiveSummary, vs...))
}

// ExecutiveSummaryNotIn applies the NotIn predicate on the "executive_summary" field.
func ExecutiveSummaryNotIn(vs ...string) predicate.AuditDashboard {
	return predicate.AuditDashboard(sql.FieldNotIn(FieldExecutiveSummary, vs...))
}

// ExecutiveSummaryGT applies the GT predicate on the "executive_summary" field.
func ExecutiveSummaryGT(v string) predicate.AuditDashboard {
	return predicate.AuditDashboard(sql.FieldGT(FieldExecutiveSummary, v))
}

// ExecutiveSummaryGTE applies the GTE predicate on the "executive_summary" field.
func ExecutiveSummaryGTE(v string) predicate.AuditDashboard {
	return predicate.AuditDashboard(sql.FieldGTE(FieldExecutiveSummary, v))
}

// ExecutiveSummaryLT applies the LT predicate on the "executive_summary" field.
func ExecutiveSummaryLT(v string) predicate.AuditDashboard {
	return predicate.AuditDashboard(sql.FieldLT(FieldExecutiveSummary, v))
}

// ExecutiveSummaryLTE applies the LTE predicate on the "executive_summary" field.
func ExecutiveSummaryLTE(v string) predicate.AuditDashboard {
	return predicate.AuditDashboard(sql.FieldLTE(FieldExecutiveSummary, v))
}

// ExecutiveSummaryContains applies the Contains predicate on the "executive_summary" field.
func ExecutiveSummaryContains(v string) predicate.AuditDashboard {
	return predicate.AuditDashboard(sql.FieldContains(FieldExecutiveSummary, v))
}

// ExecutiveSummaryHasPrefix applies the HasPrefix predicate on the "executive_summary" field.
func ExecutiveSummaryHasPrefix(v string) predicate.AuditDashboard {
	return predicate.AuditDashboard(sql.FieldHasPrefix(FieldExecutiveSummary, v))
}

// ExecutiveSummaryHasSuffix applies the HasSuffix predicate on the "executive_summary" field.
func ExecutiveSummaryHasSuffix(v string) predicate.AuditDashboard {
	return predicate.AuditDashboard(sql.FieldHasSuffix(FieldExecutiveSummary, v))
}

// ExecutiveSummaryIsNil applies the IsNil predicate on the "executive_summary" field.
func ExecutiveSummaryIsNil() predicate.AuditDashboard {
	return predicate.AuditDashboard(sql.FieldIsNull(FieldExecutiveSummary))
}

// ExecutiveSummaryNotNil applies the NotNil predicate on the "executive_summary" field.
func ExecutiveSummaryNotNil() predicate.AuditDashboard {
	return predicate.AuditDashboard(sql.FieldNotNull(FieldExecutiveSummary))
}

// ExecutiveSummaryEqualFold applies the EqualFold predicate on the "executive_summary" field.
func ExecutiveSummaryEqualFold(v string) predicate.AuditDashboard {
	return predicate.AuditDashboard(sql.FieldEqualFold(FieldExecutiveSummary, v))
}

// ExecutiveSummaryContainsFold applies the ContainsFold predicate on the "executive_summary" field.
func ExecutiveSummaryContainsFold(v string) predicate.AuditDashboard {
	return predicate.AuditDashboard(sql.FieldContainsFold(FieldExecutiveSummary, v))
}

// GeneratedAtEQ applies the EQ predicate on the "generated_at" field.
func GeneratedAtEQ(v time.Time) predicate.AuditDashboard {
	return predicate.AuditDashboard(sql.FieldEQ(FieldGeneratedAt, v))
}

// GeneratedAtNEQ applies the NEQ predicate on the "generated_at" field.
func GeneratedAtNEQ(v time.Time) predicate.AuditDashboard {
	return predicate.AuditDashboard(sql.FieldNEQ(FieldGeneratedAt, v))
}

// GeneratedAtIn applies the In predicate on the "generated_at" field.
func GeneratedAtIn(vs ...time.Time) predicate.AuditDashboard {
	return predicate.AuditDashboard(sql.FieldIn(FieldGeneratedAt, vs...))
}

// GeneratedAtNotIn applies the NotIn predicate on the "generated_at" field.
func GeneratedAtNotIn(vs ...time.Time) predicate.AuditDashboard {
	return predicate.AuditDashboard(sql.FieldNotIn(FieldGeneratedAt, vs...))
}

// GeneratedAtGT applies the GT predicate on the "generated_at" field.
func GeneratedAtGT(v time.Time) predicate.AuditDashboard {
	return predicate.AuditDashboard(sql.FieldGT(FieldGeneratedAt, v))
}

// GeneratedAtGTE applies the GTE predicate on the "generated_at" field.
func GeneratedAtGTE(v time.Time) predicate.AuditDashboard {
	return predicate.AuditDashboard(sql.FieldGTE(FieldGeneratedAt, v))
}

// GeneratedAtLT applies the LT predicate on the "generated_at" field.
func GeneratedAtLT(v time.Time) predicate.AuditDashboard {
	return predicate.AuditDashboard(sql.FieldLT(FieldGeneratedAt, v))
}

// GeneratedAtLTE applies the LTE predicate on the "generated_at" field.
func GeneratedAtLTE(v time.Time) predicate.AuditDashboard {
	return predicate.AuditDashboard(sql.FieldLTE(FieldGeneratedAt, v))
}

// HasAudit applies the HasEdge predicate on the "audit" edge.
func HasAudit() predicate.AuditDashboard {
	return predicate.AuditDashboard(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, AuditTable, AuditColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAuditWith applies the HasEdge predicate on the "audit" edge with a given conditions (other predicates).
func HasAuditWith(preds ...predicate.Audit) predicate.AuditDashboard {
	return predicate.AuditDashboard(func(s *sql.Selector) {
		step := newAuditStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AuditDashboard) predicate.AuditDashboard {
	return predicate.AuditDashboard(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AuditDashboard) predicate.AuditDashboard {
	return predicate.AuditDashboard(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AuditDashboard) predicate.AuditDashboard {
	return predicate.AuditDashboard(sql.NotPredicates(p))
}
