// Code generated by ent, DO NOT EDIT.

package auditaggregate

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the auditaggregate type in the database.
	Label = "audit_aggregate"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "aggregate_id"
	// FieldAuditID holds the string denoting the audit_id field in the database.
	FieldAuditID = "audit_id"
	// FieldOverallScore holds the string denoting the overall_score field in the database.
	FieldOverallScore = "overall_score"
	// FieldGeoScore holds the string denoting the geo_score field in the database.
	FieldGeoScore = "geo_score"
	// FieldSovScore holds the string denoting the sov_score field in the database.
	FieldSovScore = "sov_score"
	// FieldRecommendationScore holds the string denoting the recommendation_score field in the database.
	FieldRecommendationScore = "recommendation_score"
	// FieldSentimentScore holds the string denoting the sentiment_score field in the database.
	FieldSentimentScore = "sentiment_score"
	// FieldVisibilityScore holds the string denoting the visibility_score field in the database.
	FieldVisibilityScore = "visibility_score"
	// FieldContextCompleteness holds the string denoting the context_completeness field in the database.
	FieldContextCompleteness = "context_completeness"
	// FieldProviderBreakdown holds the string denoting the provider_breakdown field in the database.
	FieldProviderBreakdown = "provider_breakdown"
	// FieldCategoryBreakdown holds the string denoting the category_breakdown field in the database.
	FieldCategoryBreakdown = "category_breakdown"
	// FieldCompetitorMentions holds the string denoting the competitor_mentions field in the database.
	FieldCompetitorMentions = "competitor_mentions"
	// FieldTotalResponses holds the string denoting the total_responses field in the database.
	FieldTotalResponses = "total_responses"
	// FieldAnalyzedResponses holds the string denoting the analyzed_responses field in the database.
	FieldAnalyzedResponses = "analyzed_responses"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeAudit holds the string denoting the audit edge name in mutations.
	EdgeAudit = "audit"
	// AuditFieldID holds the string denoting the ID field of the Audit.
	AuditFieldID = "audit_id"
	// Table holds the table name of the auditaggregate in the database.
	Table = "audit_aggregates"
	// AuditTable is the table that holds the audit relation/edge.
	AuditTable = "audit_aggregates"
	// AuditInverseTable is the table name for the Audit entity.
	// It exists in this package in order to avoid circular dependency with the "audit" package.
	AuditInverseTable = "audits"
	// AuditColumn is the table column denoting the audit relation/edge.
	AuditColumn = "audit_id"
)

// Columns holds all SQL columns for auditaggregate fields.
var Columns = []string{
	FieldID,
	FieldAuditID,
	FieldOverallScore,
	FieldGeoScore,
	FieldSovScore,
	FieldRecommendationScore,
	FieldSentimentScore,
	FieldVisibilityScore,
	FieldContextCompleteness,
	FieldProviderBreakdown,
	FieldCategoryBreakdown,
	FieldCompetitorMentions,
	FieldTotalResponses,
	FieldAnalyzedResponses,
	FieldCreatedAt,
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
	// DefaultOverallScore holds the default value on creation for the "overall_score" field.
	DefaultOverallScore float64
	// DefaultGeoScore holds the default value on creation for the "geo_score" field.
	DefaultGeoScore float64
	// DefaultSovScore holds the default value on creation for the "sov_score" field.
	DefaultSovScore float64
	// DefaultRecommendationScore holds the default value on creation for the "recommendation_score" field.
	DefaultRecommendationScore float64
	// DefaultSentimentScore holds the default value on creation for the "sentiment_score" field.
	DefaultSentimentScore float64
	// DefaultVisibilityScore holds the default value on creation for the "visibility_score" field.
	DefaultVisibilityScore float64
	// DefaultContextCompleteness holds the default value on creation for the "context_completeness" field.
	DefaultContextCompleteness float64
	// DefaultTotalResponses holds the default value on creation for the "total_responses" field.
	DefaultTotalResponses int
	// DefaultAnalyzedResponses holds the default value on creation for the "analyzed_responses" field.
	DefaultAnalyzedResponses int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the AuditAggregate queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAuditID orders the results by the audit_id field.
func ByAuditID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAuditID, opts...).ToFunc()
}

// ByOverallScore orders the results by the overall_score field.
func ByOverallScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOverallScore, opts...).ToFunc()
}

// ByGeoScore orders the results by the geo_score field.
func ByGeoScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGeoScore, opts...).ToFunc()
}

// BySovScore orders the results by the sov_score field.
func BySovScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSovScore, opts...).ToFunc()
}

// ByRecommendationScore orders the results by the recommendation_score field.
func ByRecommendationScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecommendationScore, opts...).ToFunc()
}

// BySentimentScore orders the results by the sentiment_score field.
func BySentimentScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSentimentScore, opts...).ToFunc()
}

// ByVisibilityScore orders the results by the visibility_score field.
func ByVisibilityScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVisibilityScore, opts...).ToFunc()
}

// ByContextCompleteness orders the results by the context_completeness field.
func ByContextCompleteness(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContextCompleteness, opts...).ToFunc()
}

// ByTotalResponses orders the results by the total_responses field.
func ByTotalResponses(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalResponses, opts...).ToFunc()
}

// ByAnalyzedResponses orders the results by the analyzed_responses field.
func ByAnalyzedResponses(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnalyzedResponses, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
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
