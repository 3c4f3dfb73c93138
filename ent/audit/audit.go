// Code generated by ent, DO NOT EDIT.

package audit

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the audit type in the database.
	Label = "audit"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "audit_id"
	// FieldCompanyID holds the string denoting the company_id field in the database.
	FieldCompanyID = "company_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldProviders holds the string denoting the providers field in the database.
	FieldProviders = "providers"
	// FieldQueryCount holds the string denoting the query_count field in the database.
	FieldQueryCount = "query_count"
	// FieldOverallScore holds the string denoting the overall_score field in the database.
	FieldOverallScore = "overall_score"
	// FieldBrandMentionRate holds the string denoting the brand_mention_rate field in the database.
	FieldBrandMentionRate = "brand_mention_rate"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldProcessingTimeMs holds the string denoting the processing_time_ms field in the database.
	FieldProcessingTimeMs = "processing_time_ms"
	// FieldHeartbeatAt holds the string denoting the heartbeat_at field in the database.
	FieldHeartbeatAt = "heartbeat_at"
	// FieldClaimedBy holds the string denoting the claimed_by field in the database.
	FieldClaimedBy = "claimed_by"
	// EdgeCompany holds the string denoting the company edge name in mutations.
	EdgeCompany = "company"
	// EdgeQueries holds the string denoting the queries edge name in mutations.
	EdgeQueries = "queries"
	// EdgeResponses holds the string denoting the responses edge name in mutations.
	EdgeResponses = "responses"
	// EdgeAnalyses holds the string denoting the analyses edge name in mutations.
	EdgeAnalyses = "analyses"
	// EdgeAggregate holds the string denoting the aggregate edge name in mutations.
	EdgeAggregate = "aggregate"
	// EdgeDashboard holds the string denoting the dashboard edge name in mutations.
	EdgeDashboard = "dashboard"
	// EdgeEvents holds the string denoting the events edge name in mutations.
	EdgeEvents = "events"
	// CompanyFieldID holds the string denoting the ID field of the Company.
	CompanyFieldID = "company_id"
	// AuditQueryFieldID holds the string denoting the ID field of the AuditQuery.
	AuditQueryFieldID = "query_id"
	// AuditResponseFieldID holds the string denoting the ID field of the AuditResponse.
	AuditResponseFieldID = "response_id"
	// AuditAnalysisFieldID holds the string denoting the ID field of the AuditAnalysis.
	AuditAnalysisFieldID = "analysis_id"
	// AuditAggregateFieldID holds the string denoting the ID field of the AuditAggregate.
	AuditAggregateFieldID = "aggregate_id"
	// AuditDashboardFieldID holds the string denoting the ID field of the AuditDashboard.
	AuditDashboardFieldID = "dashboard_id"
	// AuditEventFieldID holds the string denoting the ID field of the AuditEvent.
	AuditEventFieldID = "id"
	// Table holds the table name of the audit in the database.
	Table = "audits"
	// CompanyTable is the table that holds the company relation/edge.
	CompanyTable = "audits"
	// CompanyInverseTable is the table name for the Company entity.
	// It exists in this package in order to avoid circular dependency with the "company" package.
	CompanyInverseTable = "companies"
	// CompanyColumn is the table column denoting the company relation/edge.
	CompanyColumn = "company_id"
	// QueriesTable is the table that holds the queries relation/edge.
	QueriesTable = "audit_queries"
	// QueriesInverseTable is the table name for the AuditQuery entity.
	// It exists in this package in order to avoid circular dependency with the "auditquery" package.
	QueriesInverseTable = "audit_queries"
	// QueriesColumn is the table column denoting the queries relation/edge.
	QueriesColumn = "audit_id"
	// ResponsesTable is the table that holds the responses relation/edge.
	ResponsesTable = "audit_responses"
	// ResponsesInverseTable is the table name for the AuditResponse entity.
	// It exists in this package in order to avoid circular dependency with the "auditresponse" package.
	ResponsesInverseTable = "audit_responses"
	// ResponsesColumn is the table column denoting the responses relation/edge.
	ResponsesColumn = "audit_id"
	// AnalysesTable is the table that holds the analyses relation/edge.
	AnalysesTable = "audit_analyses"
	// AnalysesInverseTable is the table name for the AuditAnalysis entity.
	// It exists in this package in order to avoid circular dependency with the "auditanalysis" package.
	AnalysesInverseTable = "audit_analyses"
	// AnalysesColumn is the table column denoting the analyses relation/edge.
	AnalysesColumn = "audit_id"
	// AggregateTable is the table that holds the aggregate relation/edge.
	AggregateTable = "audit_aggregates"
	// AggregateInverseTable is the table name for the AuditAggregate entity.
	// It exists in this package in order to avoid circular dependency with the "auditaggregate" package.
	AggregateInverseTable = "audit_aggregates"
	// AggregateColumn is the table column denoting the aggregate relation/edge.
	AggregateColumn = "audit_id"
	// DashboardTable is the table that holds the dashboard relation/edge.
	DashboardTable = "audit_dashboard"
	// DashboardInverseTable is the table name for the AuditDashboard entity.
	// It exists in this package in order to avoid circular dependency with the "auditdashboard" package.
	DashboardInverseTable = "audit_dashboard"
	// DashboardColumn is the table column denoting the dashboard relation/edge.
	DashboardColumn = "audit_id"
	// EventsTable is the table that holds the events relation/edge.
	EventsTable = "audit_events"
	// EventsInverseTable is the table name for the AuditEvent entity.
	// It exists in this package in order to avoid circular dependency with the "auditevent" package.
	EventsInverseTable = "audit_events"
	// EventsColumn is the table column denoting the events relation/edge.
	EventsColumn = "audit_id"
)

// Columns holds all SQL columns for audit fields.
var Columns = []string{
	FieldID,
	FieldCompanyID,
	FieldUserID,
	FieldStatus,
	FieldProviders,
	FieldQueryCount,
	FieldOverallScore,
	FieldBrandMentionRate,
	FieldErrorMessage,
	FieldCreatedAt,
	FieldStartedAt,
	FieldCompletedAt,
	FieldProcessingTimeMs,
	FieldHeartbeatAt,
	FieldClaimedBy,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending         Status = "pending"
	StatusProcessing      Status = "processing"
	StatusAnalyzing       Status = "analyzing"
	StatusScoring         Status = "scoring"
	StatusPopulating      Status = "populating"
	StatusCompleted       Status = "completed"
	StatusFailed          Status = "failed"
	StatusCancelled       Status = "cancelled"
	StatusCancelRequested Status = "cancel_requested"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusProcessing, StatusAnalyzing, StatusScoring, StatusPopulating, StatusCompleted, StatusFailed, StatusCancelled, StatusCancelRequested:
		return nil
	default:
		return fmt.Errorf("audit: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Audit queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCompanyID orders the results by the company_id field.
func ByCompanyID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompanyID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByQueryCount orders the results by the query_count field.
func ByQueryCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQueryCount, opts...).ToFunc()
}

// ByOverallScore orders the results by the overall_score field.
func ByOverallScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOverallScore, opts...).ToFunc()
}

// ByBrandMentionRate orders the results by the brand_mention_rate field.
func ByBrandMentionRate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBrandMentionRate, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByProcessingTimeMs orders the results by the processing_time_ms field.
func ByProcessingTimeMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessingTimeMs, opts...).ToFunc()
}

// ByHeartbeatAt orders the results by the heartbeat_at field.
func ByHeartbeatAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHeartbeatAt, opts...).ToFunc()
}

// ByClaimedBy orders the results by the claimed_by field.
func ByClaimedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClaimedBy, opts...).ToFunc()
}

// ByCompanyField orders the results by company field.
func ByCompanyField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCompanyStep(), sql.OrderByField(field, opts...))
	}
}

// ByQueriesCount orders the results by queries count.
func ByQueriesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newQueriesStep(), opts...)
	}
}

// ByQueries orders the results by queries terms.
func ByQueries(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newQueriesStep(), append([]sql.OrderTerm{term}, terms...)...)
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

// ByAnalysesCount orders the results by analyses count.
func ByAnalysesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAnalysesStep(), opts...)
	}
}

// ByAnalyses orders the results by analyses terms.
func ByAnalyses(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAnalysesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByAggregateField orders the results by aggregate field.
func ByAggregateField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAggregateStep(), sql.OrderByField(field, opts...))
	}
}

// ByDashboardField orders the results by dashboard field.
func ByDashboardField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDashboardStep(), sql.OrderByField(field, opts...))
	}
}

// ByEventsCount orders the results by events count.
func ByEventsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newEventsStep(), opts...)
	}
}

// ByEvents orders the results by events terms.
func ByEvents(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEventsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newCompanyStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CompanyInverseTable, CompanyFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, CompanyTable, CompanyColumn),
	)
}
func newQueriesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(QueriesInverseTable, AuditQueryFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, QueriesTable, QueriesColumn),
	)
}
func newResponsesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ResponsesInverseTable, AuditResponseFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ResponsesTable, ResponsesColumn),
	)
}
func newAnalysesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AnalysesInverseTable, AuditAnalysisFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AnalysesTable, AnalysesColumn),
	)
}
func newAggregateStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AggregateInverseTable, AuditAggregateFieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, AggregateTable, AggregateColumn),
	)
}
func newDashboardStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DashboardInverseTable, AuditDashboardFieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, DashboardTable, DashboardColumn),
	)
}
func newEventsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EventsInverseTable, AuditEventFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
	)
}
