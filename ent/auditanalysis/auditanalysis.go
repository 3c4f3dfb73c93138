// Code generated by ent, DO NOT EDIT.

package auditanalysis

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the auditanalysis type in the database.
	Label = "audit_analysis"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "analysis_id"
	// FieldAuditID holds the string denoting the audit_id field in the database.
	FieldAuditID = "audit_id"
	// FieldResponseID holds the string denoting the response_id field in the database.
	FieldResponseID = "response_id"
	// FieldProvider holds the string denoting the provider field in the database.
	FieldProvider = "provider"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldBrandMentioned holds the string denoting the brand_mentioned field in the database.
	FieldBrandMentioned = "brand_mentioned"
	// FieldFirstPosition holds the string denoting the first_position field in the database.
	FieldFirstPosition = "first_position"
	// FieldSentiment holds the string denoting the sentiment field in the database.
	FieldSentiment = "sentiment"
	// FieldSentimentScore holds the string denoting the sentiment_score field in the database.
	FieldSentimentScore = "sentiment_score"
	// FieldCompetitorsMentioned holds the string denoting the competitors_mentioned field in the database.
	FieldCompetitorsMentioned = "competitors_mentioned"
	// FieldGeoScore holds the string denoting the geo_score field in the database.
	FieldGeoScore = "geo_score"
	// FieldSovScore holds the string denoting the sov_score field in the database.
	FieldSovScore = "sov_score"
	// FieldContextCompleteness holds the string denoting the context_completeness field in the database.
	FieldContextCompleteness = "context_completeness"
	// FieldRecommendationSignal holds the string denoting the recommendation_signal field in the database.
	FieldRecommendationSignal = "recommendation_signal"
	// FieldRecommendations holds the string denoting the recommendations field in the database.
	FieldRecommendations = "recommendations"
	// FieldErrored holds the string denoting the errored field in the database.
	FieldErrored = "errored"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeAudit holds the string denoting the audit edge name in mutations.
	EdgeAudit = "audit"
	// EdgeResponse holds the string denoting the response edge name in mutations.
	EdgeResponse = "response"
	// AuditFieldID holds the string denoting the ID field of the Audit.
	AuditFieldID = "audit_id"
	// AuditResponseFieldID holds the string denoting the ID field of the AuditResponse.
	AuditResponseFieldID = "response_id"
	// Table holds the table name of the auditanalysis in the database.
	Table = "audit_analyses"
	// AuditTable is the table that holds the audit relation/edge.
	AuditTable = "audit_analyses"
	// AuditInverseTable is the table name for the Audit entity.
	// It exists in this package in order to avoid circular dependency with the "audit" package.
	AuditInverseTable = "audits"
	// AuditColumn is the table column denoting the audit relation/edge.
	AuditColumn = "audit_id"
	// ResponseTable is the table that holds the response relation/edge.
	ResponseTable = "audit_analyses"
	// ResponseInverseTable is the table name for the AuditResponse entity.
	// It exists in this package in order to avoid circular dependency with the "auditresponse" package.
	ResponseInverseTable = "audit_responses"
	// ResponseColumn is the table column denoting the response relation/edge.
	ResponseColumn = "response_id"
)

// Columns holds all SQL columns for auditanalysis fields.
var Columns = []string{
	FieldID,
	FieldAuditID,
	FieldResponseID,
	FieldProvider,
	FieldCategory,
	FieldBrandMentioned,
	FieldFirstPosition,
	FieldSentiment,
	FieldSentimentScore,
	FieldCompetitorsMentioned,
	FieldGeoScore,
	FieldSovScore,
	FieldContextCompleteness,
	FieldRecommendationSignal,
	FieldRecommendations,
	FieldErrored,
	FieldErrorMessage,
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
	// ProviderValidator is a validator for the "provider" field. It is called by the builders before save.
	ProviderValidator func(string) error
	// DefaultBrandMentioned holds the default value on creation for the "brand_mentioned" field.
	DefaultBrandMentioned bool
	// DefaultSentimentScore holds the default value on creation for the "sentiment_score" field.
	DefaultSentimentScore float64
	// DefaultGeoScore holds the default value on creation for the "geo_score" field.
	DefaultGeoScore float64
	// DefaultSovScore holds the default value on creation for the "sov_score" field.
	DefaultSovScore float64
	// DefaultContextCompleteness holds the default value on creation for the "context_completeness" field.
	DefaultContextCompleteness float64
	// DefaultRecommendationSignal holds the default value on creation for the "recommendation_signal" field.
	DefaultRecommendationSignal float64
	// DefaultErrored holds the default value on creation for the "errored" field.
	DefaultErrored bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Category defines the type for the "category" enum field.
type Category string

// Category values.
const (
	CategoryProblemUnaware Category = "problem_unaware"
	CategoryProblemAware   Category = "problem_aware"
	CategorySolutionAware  Category = "solution_aware"
	CategoryProductAware   Category = "product_aware"
	CategoryMostAware      Category = "most_aware"
	CategoryBrandDefense   Category = "brand_defense"
)

func (c Category) String() string {
	return string(c)
}

// CategoryValidator is a validator for the "category" field enum values. It is called by the builders before save.
func CategoryValidator(c Category) error {
	switch c {
	case CategoryProblemUnaware, CategoryProblemAware, CategorySolutionAware, CategoryProductAware, CategoryMostAware, CategoryBrandDefense:
		return nil
	default:
		return fmt.Errorf("auditanalysis: invalid enum value for category field: %q", c)
	}
}

// Sentiment defines the type for the "sentiment" enum field.
type Sentiment string

// Sentiment values.
const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

func (s Sentiment) String() string {
	return string(s)
}

// SentimentValidator is a validator for the "sentiment" field enum values. It is called by the builders before save.
func SentimentValidator(s Sentiment) error {
	switch s {
	case SentimentPositive, SentimentNeutral, SentimentNegative:
		return nil
	default:
		return fmt.Errorf("auditanalysis: invalid enum value for sentiment field: %q", s)
	}
}

// OrderOption defines the ordering options for the AuditAnalysis queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAuditID orders the results by the audit_id field.
func ByAuditID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAuditID, opts...).ToFunc()
}

// ByResponseID orders the results by the response_id field.
func ByResponseID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResponseID, opts...).ToFunc()
}

// ByProvider orders the results by the provider field.
func ByProvider(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProvider, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// ByBrandMentioned orders the results by the brand_mentioned field.
func ByBrandMentioned(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBrandMentioned, opts...).ToFunc()
}

// ByFirstPosition orders the results by the first_position field.
func ByFirstPosition(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFirstPosition, opts...).ToFunc()
}

// BySentiment orders the results by the sentiment field.
func BySentiment(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSentiment, opts...).ToFunc()
}

// BySentimentScore orders the results by the sentiment_score field.
func BySentimentScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSentimentScore, opts...).ToFunc()
}

// ByGeoScore orders the results by the geo_score field.
func ByGeoScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGeoScore, opts...).ToFunc()
}

// BySovScore orders the results by the sov_score field.
func BySovScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSovScore, opts...).ToFunc()
}

// ByContextCompleteness orders the results by the context_completeness field.
func ByContextCompleteness(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContextCompleteness, opts...).ToFunc()
}

// ByRecommendationSignal orders the results by the recommendation_signal field.
func ByRecommendationSignal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecommendationSignal, opts...).ToFunc()
}

// ByErrored orders the results by the errored field.
func ByErrored(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrored, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
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

// ByResponseField orders the results by response field.
func ByResponseField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newResponseStep(), sql.OrderByField(field, opts...))
	}
}
func newAuditStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AuditInverseTable, AuditFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, AuditTable, AuditColumn),
	)
}
func newResponseStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ResponseInverseTable, AuditResponseFieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, ResponseTable, ResponseColumn),
	)
}
