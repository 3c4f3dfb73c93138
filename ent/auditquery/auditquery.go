// Code generated by ent, DO NOT EDIT.

package auditquery

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the auditquery type in the database.
	Label = "audit_query"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "query_id"
	// FieldAuditID holds the string denoting the audit_id field in the database.
	FieldAuditID = "audit_id"
	// FieldText holds the string denoting the text field in the database.
	FieldText = "text"
	// FieldTextNormalized holds the string denoting the text_normalized field in the database.
	FieldTextNormalized = "text_normalized"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldIntent holds the string denoting the intent field in the database.
	FieldIntent = "intent"
	// FieldPriority holds the string denoting the priority field in the database.
	FieldPriority = "priority"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeAudit holds the string denoting the audit edge name in mutations.
	EdgeAudit = "audit"
	// EdgeResponses holds the string denoting the responses edge name in mutations.
	EdgeResponses = "responses"
	// AuditFieldID holds the string denoting the ID field of the Audit.
	AuditFieldID = "audit_id"
	// AuditResponseFieldID holds the string denoting the ID field of the AuditResponse.
	AuditResponseFieldID = "response_id"
	// Table holds the table name of the auditquery in the database.
	Table = "audit_queries"
	// AuditTable is the table that holds the audit relation/edge.
	AuditTable = "audit_queries"
	// AuditInverseTable is the table name for the Audit entity.
	// It exists in this package in order to avoid circular dependency with the "audit" package.
	AuditInverseTable = "audits"
	// AuditColumn is the table column denoting the audit relation/edge.
	AuditColumn = "audit_id"
	// ResponsesTable is the table that holds the responses relation/edge.
	ResponsesTable = "audit_responses"
	// ResponsesInverseTable is the table name for the AuditResponse entity.
	// It exists in this package in order to avoid circular dependency with the "auditresponse" package.
	ResponsesInverseTable = "audit_responses"
	// ResponsesColumn is the table column denoting the responses relation/edge.
	ResponsesColumn = "query_id"
)

// Columns holds all SQL columns for auditquery fields.
var Columns = []string{
	FieldID,
	FieldAuditID,
	FieldText,
	FieldTextNormalized,
	FieldCategory,
	FieldIntent,
	FieldPriority,
	FieldMetadata,
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
	// TextValidator is a validator for the "text" field. It is called by the builders before save.
	TextValidator func(string) error
	// TextNormalizedValidator is a validator for the "text_normalized" field. It is called by the builders before save.
	TextNormalizedValidator func(string) error
	// DefaultPriority holds the default value on creation for the "priority" field.
	DefaultPriority float64
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
		return fmt.Errorf("auditquery: invalid enum value for category field: %q", c)
	}
}

// OrderOption defines the ordering options for the AuditQuery queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAuditID orders the results by the audit_id field.
func ByAuditID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAuditID, opts...).ToFunc()
}

// ByText orders the results by the text field.
func ByText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldText, opts...).ToFunc()
}

// ByTextNormalized orders the results by the text_normalized field.
func ByTextNormalized(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTextNormalized, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// ByIntent orders the results by the intent field.
func ByIntent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIntent, opts...).ToFunc()
}

// ByPriority orders the results by the priority field.
func ByPriority(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriority, opts...).ToFunc()
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

// ByResponsesCount orders the results by responses count.
func ByResponsesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newResponsesStep(), opts...)
	}
}

// ByResponses orders the results by responses terms.
func ByResponses(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newResponsesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newAuditStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AuditInverseTable, AuditFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, AuditTable, AuditColumn),
	)
}
func newResponsesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ResponsesInverseTable, AuditResponseFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ResponsesTable, ResponsesColumn),
	)
}
