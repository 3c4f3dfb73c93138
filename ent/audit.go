// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/specularhq/specular/ent/audit"
	"github.com/specularhq/specular/ent/auditaggregate"
	"github.com/specularhq/specular/ent/auditdashboard"
	"github.com/specularhq/specular/ent/company"
)

// Audit is the model entity for the Audit schema.
type Audit struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CompanyID holds the value of the "company_id" field.
	CompanyID string `json:"company_id,omitempty"`
	// Submitting user; opaque to the pipeline
	UserID string `json:"user_id,omitempty"`
	// Status holds the value of the "status" field.
	Status audit.Status `json:"status,omitempty"`
	// Provider ids this audit fans out to
	Providers []string `json:"providers,omitempty"`
	// Target number of generated queries
	QueryCount int `json:"query_count,omitempty"`
	// OverallScore holds the value of the "overall_score" field.
	OverallScore *float64 `json:"overall_score,omitempty"`
	// BrandMentionRate holds the value of the "brand_mention_rate" field.
	BrandMentionRate *float64 `json:"brand_mention_rate,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// When the audit was submitted
	CreatedAt time.Time `json:"created_at,omitempty"`
	// When a worker claimed the audit
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// ProcessingTimeMs holds the value of the "processing_time_ms" field.
	ProcessingTimeMs *int `json:"processing_time_ms,omitempty"`
	// For stuck-audit detection
	HeartbeatAt *time.Time `json:"heartbeat_at,omitempty"`
	// Worker identity, for multi-replica coordination
	ClaimedBy *string `json:"claimed_by,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AuditQuery when eager-loading is set.
	Edges        AuditEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AuditEdges holds the relations/edges for other nodes in the graph.
type AuditEdges struct {
	// Company holds the value of the company edge.
	Company *Company `json:"company,omitempty"`
	// Queries holds the value of the queries edge.
	Queries []*AuditQuery `json:"queries,omitempty"`
	// Responses holds the value of the responses edge.
	Responses []*AuditResponse `json:"responses,omitempty"`
	// Analyses holds the value of the analyses edge.
	Analyses []*AuditAnalysis `json:"analyses,omitempty"`
	// Aggregate holds the value of the aggregate edge.
	Aggregate *AuditAggregate `json:"aggregate,omitempty"`
	// Dashboard holds the value of the dashboard edge.
	Dashboard *AuditDashboard `json:"dashboard,omitempty"`
	// Events holds the value of the events edge.
	Events []*AuditEvent `json:"events,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [7]bool
}

// CompanyOrErr returns the Company value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AuditEdges) CompanyOrErr() (*Company, error) {
	if e.Company != nil {
		return e.Company, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: company.Label}
	}
	return nil, &NotLoadedError{edge: "company"}
}

// QueriesOrErr returns the Queries value or an error if the edge
// was not loaded in eager-loading.
func (e AuditEdges) QueriesOrErr() ([]*AuditQuery, error) {
	if e.loadedTypes[1] {
		return e.Queries, nil
	}
	return nil, &NotLoadedError{edge: "queries"}
}

// ResponsesOrErr returns the Responses value or an error if the edge
// was not loaded in eager-loading.
func (e AuditEdges) ResponsesOrErr() ([]*AuditResponse, error) {
	if e.loadedTypes[2] {
		return e.Responses, nil
	}
	return nil, &NotLoadedError{edge: "responses"}
}

// AnalysesOrErr returns the Analyses value or an error if the edge
// was not loaded in eager-loading.
func (e AuditEdges) AnalysesOrErr() ([]*AuditAnalysis, error) {
	if e.loadedTypes[3] {
		return e.Analyses, nil
	}
	return nil, &NotLoadedError{edge: "analyses"}
}

// AggregateOrErr returns the Aggregate value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AuditEdges) AggregateOrErr() (*AuditAggregate, error) {
	if e.Aggregate != nil {
		return e.Aggregate, nil
	} else if e.loadedTypes[4] {
		return nil, &NotFoundError{label: auditaggregate.Label}
	}
	return nil, &NotLoadedError{edge: "aggregate"}
}

// DashboardOrErr returns the Dashboard value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AuditEdges) DashboardOrErr() (*AuditDashboard, error) {
	if e.Dashboard != nil {
		return e.Dashboard, nil
	} else if e.loadedTypes[5] {
		return nil, &NotFoundError{label: auditdashboard.Label}
	}
	return nil, &NotLoadedError{edge: "dashboard"}
}

// EventsOrErr returns the Events value or an error if the edge
// was not loaded in eager-loading.
func (e AuditEdges) EventsOrErr() ([]*AuditEvent, error) {
	if e.loadedTypes[6] {
		return e.Events, nil
	}
	return nil, &NotLoadedError{edge: "events"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Audit) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case audit.FieldProviders:
			values[i] = new([]byte)
		case audit.FieldOverallScore, audit.FieldBrandMentionRate:
			values[i] = new(sql.NullFloat64)
		case audit.FieldQueryCount, audit.FieldProcessingTimeMs:
			values[i] = new(sql.NullInt64)
		case audit.FieldID, audit.FieldCompanyID, audit.FieldUserID, audit.FieldStatus, audit.FieldErrorMessage, audit.FieldClaimedBy:
			values[i] = new(sql.NullString)
		case audit.FieldCreatedAt, audit.FieldStartedAt, audit.FieldCompletedAt, audit.FieldHeartbeatAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Audit fields.
func (_m *Audit) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case audit.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case audit.FieldCompanyID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field company_id", values[i])
			} else if value.Valid {
				_m.CompanyID = value.String
			}
		case audit.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case audit.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = audit.Status(value.String)
			}
		case audit.FieldProviders:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field providers", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Providers); err != nil {
					return fmt.Errorf("unmarshal field providers: %w", err)
				}
			}
		case audit.FieldQueryCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field query_count", values[i])
			} else if value.Valid {
				_m.QueryCount = int(value.Int64)
			}
		case audit.FieldOverallScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field overall_score", values[i])
			} else if value.Valid {
				_m.OverallScore = new(float64)
				*_m.OverallScore = value.Float64
			}
		case audit.FieldBrandMentionRate:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field brand_mention_rate", values[i])
			} else if value.Valid {
				_m.BrandMentionRate = new(float64)
				*_m.BrandMentionRate = value.Float64
			}
		case audit.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case audit.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case audit.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case audit.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case audit.FieldProcessingTimeMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field processing_time_ms", values[i])
			} else if value.Valid {
				_m.ProcessingTimeMs = new(int)
				*_m.ProcessingTimeMs = int(value.Int64)
			}
		case audit.FieldHeartbeatAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field heartbeat_at", values[i])
			} else if value.Valid {
				_m.HeartbeatAt = new(time.Time)
				*_m.HeartbeatAt = value.Time
			}
		case audit.FieldClaimedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field claimed_by", values[i])
			} else if value.Valid {
				_m.ClaimedBy = new(string)
				*_m.ClaimedBy = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Audit.
// This includes values selected through modifiers, order, etc.
func (_m *Audit) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCompany queries the "company" edge of the Audit entity.
func (_m *Audit) QueryCompany() *CompanyQuery {
	return NewAuditClient(_m.config).QueryCompany(_m)
}

// QueryQueries queries the "queries" edge of the Audit entity.
func (_m *Audit) QueryQueries() *AuditQueryQuery {
	return NewAuditClient(_m.config).QueryQueries(_m)
}

// QueryResponses queries the "responses" edge of the Audit entity.
func (_m *Audit) QueryResponses() *AuditResponseQuery {
	return NewAuditClient(_m.config).QueryResponses(_m)
}

// QueryAnalyses queries the "analyses" edge of the Audit entity.
func (_m *Audit) QueryAnalyses() *AuditAnalysisQuery {
	return NewAuditClient(_m.config).QueryAnalyses(_m)
}

// QueryAggregate queries the "aggregate" edge of the Audit entity.
func (_m *Audit) QueryAggregate() *AuditAggregateQuery {
	return NewAuditClient(_m.config).QueryAggregate(_m)
}

// QueryDashboard queries the "dashboard" edge of the Audit entity.
func (_m *Audit) QueryDashboard() *AuditDashboardQuery {
	return NewAuditClient(_m.config).QueryDashboard(_m)
}

// QueryEvents queries the "events" edge of the Audit entity.
func (_m *Audit) QueryEvents() *AuditEventQuery {
	return NewAuditClient(_m.config).QueryEvents(_m)
}

// Update returns a builder for updating this Audit.
// Note that you need to call Audit.Unwrap() before calling this method if this Audit
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Audit) Update() *AuditUpdateOne {
	return NewAuditClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Audit entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Audit) Unwrap() *Audit {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Audit is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Audit) String() string {
	var builder strings.Builder
	builder.WriteString("Audit(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("company_id=")
	builder.WriteString(_m.CompanyID)
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("providers=")
	builder.WriteString(fmt.Sprintf("%v", _m.Providers))
	builder.WriteString(", ")
	builder.WriteString("query_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.QueryCount))
	builder.WriteString(", ")
	if v := _m.OverallScore; v != nil {
		builder.WriteString("overall_score=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.BrandMentionRate; v != nil {
		builder.WriteString("brand_mention_rate=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ProcessingTimeMs; v != nil {
		builder.WriteString("processing_time_ms=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.HeartbeatAt; v != nil {
		builder.WriteString("heartbeat_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ClaimedBy; v != nil {
		builder.WriteString("claimed_by=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// Audits is a parsable slice of Audit.
type Audits []*Audit
