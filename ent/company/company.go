// Code generated by ent, DO NOT EDIT.

package company

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the company type in the database.
	Label = "company"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "company_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldDomain holds the string denoting the domain field in the database.
	FieldDomain = "domain"
	// FieldIndustry holds the string denoting the industry field in the database.
	FieldIndustry = "industry"
	// FieldSubIndustry holds the string denoting the sub_industry field in the database.
	FieldSubIndustry = "sub_industry"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldOriginalDescription holds the string denoting the original_description field in the database.
	FieldOriginalDescription = "original_description"
	// FieldFinalDescription holds the string denoting the final_description field in the database.
	FieldFinalDescription = "final_description"
	// FieldValuePropositions holds the string denoting the value_propositions field in the database.
	FieldValuePropositions = "value_propositions"
	// FieldTargetAudiences holds the string denoting the target_audiences field in the database.
	FieldTargetAudiences = "target_audiences"
	// FieldCompetitors holds the string denoting the competitors field in the database.
	FieldCompetitors = "competitors"
	// FieldProducts holds the string denoting the products field in the database.
	FieldProducts = "products"
	// FieldPainPoints holds the string denoting the pain_points field in the database.
	FieldPainPoints = "pain_points"
	// FieldGeographies holds the string denoting the geographies field in the database.
	FieldGeographies = "geographies"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeAudits holds the string denoting the audits edge name in mutations.
	EdgeAudits = "audits"
	// AuditFieldID holds the string denoting the ID field of the Audit.
	AuditFieldID = "audit_id"
	// Table holds the table name of the company in the database.
	Table = "companies"
	// AuditsTable is the table that holds the audits relation/edge.
	AuditsTable = "audits"
	// AuditsInverseTable is the table name for the Audit entity.
	// It exists in this package in order to avoid circular dependency with the "audit" package.
	AuditsInverseTable = "audits"
	// AuditsColumn is the table column denoting the audits relation/edge.
	AuditsColumn = "company_id"
)

// Columns holds all SQL columns for company fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldDomain,
	FieldIndustry,
	FieldSubIndustry,
	FieldDescription,
	FieldOriginalDescription,
	FieldFinalDescription,
	FieldValuePropositions,
	FieldTargetAudiences,
	FieldCompetitors,
	FieldProducts,
	FieldPainPoints,
	FieldGeographies,
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
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	DescriptionValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the Company queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByDomain orders the results by the domain field.
func ByDomain(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDomain, opts...).ToFunc()
}

// ByIndustry orders the results by the industry field.
func ByIndustry(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIndustry, opts...).ToFunc()
}

// BySubIndustry orders the results by the sub_industry field.
func BySubIndustry(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubIndustry, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByOriginalDescription orders the results by the original_description field.
func ByOriginalDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOriginalDescription, opts...).ToFunc()
}

// ByFinalDescription orders the results by the final_description field.
func ByFinalDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinalDescription, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByAuditsCount orders the results by audits count.
func ByAuditsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAuditsStep(), opts...)
	}
}

// ByAudits orders the results by audits terms.
func ByAudits(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAuditsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newAuditsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AuditsInverseTable, AuditFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AuditsTable, AuditsColumn),
	)
}
