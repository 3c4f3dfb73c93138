// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/specularhq/specular/ent/audit"
	"github.com/specularhq/specular/ent/auditanalysis"
	"github.com/specularhq/specular/ent/auditquery"
	"github.com/specularhq/specular/ent/auditresponse"
)

// AuditResponse is the model entity for the AuditResponse schema.
type AuditResponse struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// AuditID holds the value of the "audit_id" field.
	AuditID string `json:"audit_id,omitempty"`
	// QueryID holds the value of the "query_id" field.
	QueryID string `json:"query_id,omitempty"`
	// Provider id: openai, anthropic, google, perplexity
	Provider string `json:"provider,omitempty"`
	// Concrete model the provider answered with
	Model *string `json:"model,omitempty"`
	// Raw completion; empty on failure
	Text string `json:"text,omitempty"`
	// LatencyMs holds the value of the "latency_ms" field.
	LatencyMs int `json:"latency_ms,omitempty"`
	// InputTokens holds the value of the "input_tokens" field.
	InputTokens int `json:"input_tokens,omitempty"`
	// OutputTokens holds the value of the "output_tokens" field.
	OutputTokens int `json:"output_tokens,omitempty"`
	// USD estimate from token counts
	CostEstimate *float64 `json:"cost_estimate,omitempty"`
	// ErrorKind holds the value of the "error_kind" field.
	ErrorKind *auditresponse.ErrorKind `json:"error_kind,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AuditResponseQuery when eager-loading is set.
	Edges        AuditResponseEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AuditResponseEdges holds the relations/edges for other nodes in the graph.
type AuditResponseEdges struct {
	// Audit holds the value of the audit edge.
	Audit *Audit `json:"audit,omitempty"`
	// Query holds the value of the query edge.
	Query *AuditQuery `json:"query,omitempty"`
	// Analysis holds the value of the analysis edge.
	Analysis *AuditAnalysis `json:"analysis,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// AuditOrErr returns the Audit value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AuditResponseEdges) AuditOrErr() (*Audit, error) {
	if e.Audit != nil {
		return e.Audit, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: audit.Label}
	}
	return nil, &NotLoadedError{edge: "audit"}
}

// QueryOrErr returns the Query value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AuditResponseEdges) QueryOrErr() (*AuditQuery, error) {
	if e.Query != nil {
		return e.Query, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: auditquery.Label}
	}
	return nil, &NotLoadedError{edge: "query"}
}

// AnalysisOrErr returns the Analysis value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AuditResponseEdges) AnalysisOrErr() (*AuditAnalysis, error) {
	if e.Analysis != nil {
		return e.Analysis, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: auditanalysis.Label}
	}
	return nil, &NotLoadedError{edge: "analysis"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AuditResponse) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case auditresponse.FieldCostEstimate:
			values[i] = new(sql.NullFloat64)
		case auditresponse.FieldLatencyMs, auditresponse.FieldInputTokens, auditresponse.FieldOutputTokens:
			values[i] = new(sql.NullInt64)
		case auditresponse.FieldID, auditresponse.FieldAuditID, auditresponse.FieldQueryID, auditresponse.FieldProvider, auditresponse.FieldModel, auditresponse.FieldText, auditresponse.FieldErrorKind, auditresponse.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case auditresponse.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AuditResponse fields.
func (_m *AuditResponse) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case auditresponse.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case auditresponse.FieldAuditID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field audit_id", values[i])
			} else if value.Valid {
				_m.AuditID = value.String
			}
		case auditresponse.FieldQueryID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field query_id", values[i])
			} else if value.Valid {
				_m.QueryID = value.String
			}
		case auditresponse.FieldProvider:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field provider", values[i])
			} else if value.Valid {
				_m.Provider = value.String
			}
		case auditresponse.FieldModel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model", values[i])
			} else if value.Valid {
				_m.Model = new(string)
				*_m.Model = value.String
			}
		case auditresponse.FieldText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field text", values[i])
			} else if value.Valid {
				_m.Text = value.String
			}
		case auditresponse.FieldLatencyMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field latency_ms", values[i])
			} else if value.Valid {
				_m.LatencyMs = int(value.Int64)
			}
		case auditresponse.FieldInputTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field input_tokens", values[i])
			} else if value.Valid {
				_m.InputTokens = int(value.Int64)
			}
		case auditresponse.FieldOutputTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field output_tokens", values[i])
			} else if value.Valid {
				_m.OutputTokens = int(value.Int64)
			}
		case auditresponse.FieldCostEstimate:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field cost_estimate", values[i])
			} else if value.Valid {
				_m.CostEstimate = new(float64)
				*_m.CostEstimate = value.Float64
			}
		case auditresponse.FieldErrorKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_kind", values[i])
			} else if value.Valid {
				_m.ErrorKind = new(auditresponse.ErrorKind)
				*_m.ErrorKind = auditresponse.ErrorKind(value.String)
			}
		case auditresponse.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case auditresponse.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AuditResponse.
// This includes values selected through modifiers, order, etc.
func (_m *AuditResponse) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAudit queries the "audit" edge of the AuditResponse entity.
func (_m *AuditResponse) QueryAudit() *AuditQueryBuilder {
	return NewAuditResponseClient(_m.config).QueryAudit(_m)
}

// QueryQuery queries the "query" edge of the AuditResponse entity.
func (_m *AuditResponse) QueryQuery() *AuditQueryQuery {
	return NewAuditResponseClient(_m.config).QueryQuery(_m)
}

// QueryAnalysis queries the "analysis" edge of the AuditResponse entity.
func (_m *AuditResponse) QueryAnalysis() *AuditAnalysisQuery {
	return NewAuditResponseClient(_m.config).QueryAnalysis(_m)
}

// Update returns a builder for updating this AuditResponse.
// Note that you need to call AuditResponse.Unwrap() before calling this method if this AuditResponse
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AuditResponse) Update() *AuditResponseUpdateOne {
	return NewAuditResponseClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AuditResponse entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AuditResponse) Unwrap() *AuditResponse {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AuditResponse is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AuditResponse) String() string {
	var builder strings.Builder
	builder.WriteString("AuditResponse(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("audit_id=")
	builder.WriteString(_m.AuditID)
	builder.WriteString(", ")
	builder.WriteString("query_id=")
	builder.WriteString(_m.QueryID)
	builder.WriteString(", ")
	builder.WriteString("provider=")
	builder.WriteString(_m.Provider)
	builder.WriteString(", ")
	if v := _m.Model; v != nil {
		builder.WriteString("model=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("text=")
	builder.WriteString(_m.Text)
	builder.WriteString(", ")
	builder.WriteString("latency_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.LatencyMs))
	builder.WriteString(", ")
	builder.WriteString("input_tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.InputTokens))
	builder.WriteString(", ")
	builder.WriteString("output_tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.OutputTokens))
	builder.WriteString(", ")
	if v := _m.CostEstimate; v != nil {
		builder.WriteString("cost_estimate=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ErrorKind; v != nil {
		builder.WriteString("error_kind=")
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
	builder.WriteByte(')')
	return builder.String()
}

// AuditResponses is a parsable slice of AuditResponse.
type AuditResponses []*AuditResponse
