// Code generated by ent, DO NOT EDIT.

package auditdashboard

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the auditdashboard type in the database.
	Label = "audit_dashboard"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "dashboard_id"
	// FieldAuditID holds the string denoting the audit_id field in the database.
	FieldAuditID = "audit_id"
	// FieldScores holds the string denoting the scores field in the database.
	FieldScores = "scores"
	// FieldRecommendations holds the string denoting the recommendations field in the database.
	FieldRecommendations = "recommendations"
	// FieldCompetitorLandscape holds the string denoting the competitor_landscape field in the database.
	FieldCompetitorLandscape = "competitor_landscape"
	// FieldCategoryInsights holds the string denoting the category_insights field in the database.
	FieldCategoryInsights = "category_insights"
	// FieldExecutiveSummary holds the string denoting the executive_summary field in the database.
	FieldExecutiveSummary = "executive_summary"
	// FieldGeneratedAt holds the string denoting the generated_at field in the database.
	FieldGeneratedAt = "generated_at"
	// EdgeAudit holds the string denoting the audit edge name in mutations.
	EdgeAudit = "audit"
	// AuditFieldID holds the string denoting the ID field of the Audit.
	AuditFieldID = "audit_id"
	// Table holds the table name of the auditdashboard in the database.
	Table = "audit_dashboard"
	// AuditTable is the table that holds the audit relation/edge.
	AuditTable = "audit_dashboard"
	// AuditInverseTable is the table name for the Audit entity.
	// It exists in this package in order to avoid circular dependency with the "audit" package.
	AuditInverseTable = "audits"
	// AuditColumn is the table column denoting the audit relation/edge.
	AuditColumn = "audit_id"
)

// Columns holds all SQL columns for auditdashboard fields.
var Columns = []string{
	FieldID,
	FieldAuditID,
	FieldScores,
	FieldRecommendations,
	FieldCompetitorLandscape,
	FieldCategoryInsights,
	FieldExecutiveSummary,
	FieldGeneratedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultExecutiveSummary holds the default value on creation for the "executive_summary" field.
	DefaultExecutiveSummary string
	// DefaultGeneratedAt holds the default value on creation for the "generated_at" field.
	DefaultGeneratedAt func() time.Time
)

// OrderOption defines the ordering options for the AuditDashboard queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAuditID orders the results by the audit_id field.
func ByAuditID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAuditID, opts...).ToFunc()
}

// ByExecutiveSummary orders the results by the executive_summary field.
func ByExecutiveSummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExecutiveSummary, opts...).ToFunc()
}

// ByGeneratedAt orders the results by the generated_at field.
func ByGeneratedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGeneratedAt, opts...).ToFunc()
}

// ByAuditField orders the results by audit field.
func ByAuditField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAuditStep(), sql.OrderByField(field, opts...))
	}
}
func newAuditStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AuditInverseTable, AuditFieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, AuditTable, AuditColumn),
	)
}
