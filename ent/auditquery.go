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
	"github.com/specularhq/specular/ent/auditquery"
)

// AuditQuery is the model entity for the AuditQuery schema.
type AuditQuery struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// AuditID holds the value of the "audit_id" field.
	AuditID string `json:"audit_id,omitempty"`
	// Text holds the value of the "text" field.
	Text string `json:"text,omitempty"`
	// lower(trim(text)); backs the per-audit uniqueness constraint
	TextNormalized string `json:"text_normalized,omitempty"`
	// Category holds the value of the "category" field.
	Category auditquery.Category `json:"category,omitempty"`
	// Free-form intent subtype from the generator
	Intent *string `json:"intent,omitempty"`
	// 0..1, higher runs first in presentation
	Priority float64 `json:"priority,omitempty"`
	// Metadata holds the value of the "metadata" field.
	Metadata map[string]interface{} `json:"metadata,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AuditQueryQuery when eager-loading is set.
	Edges        AuditQueryEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AuditQueryEdges holds the relations/edges for other nodes in the graph.
type AuditQueryEdges struct {
	// Audit holds the value of the audit edge.
	Audit *Audit `json:"audit,omitempty"`
	// Responses holds the value of the responses edge.
	Responses []*AuditResponse `json:"responses,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// AuditOrErr returns the Audit value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AuditQueryEdges) AuditOrErr() (*Audit, error) {
	if e.Audit != nil {
		return e.Audit, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: audit.Label}
	}
	return nil, &NotLoadedError{edge: "audit"}
}

// ResponsesOrErr returns the Responses value or an error if the edge
// was not loaded in eager-loading.
func (e AuditQueryEdges) ResponsesOrErr() ([]*AuditResponse, error) {
	if e.loadedTypes[1] {
		return e.Responses, nil
	}
	return nil, &NotLoadedError{edge: "responses"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AuditQuery) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case auditquery.FieldMetadata:
			values[i] = new([]byte)
		case auditquery.FieldPriority:
			values[i] = new(sql.NullFloat64)
		case auditquery.FieldID, auditquery.FieldAuditID, auditquery.FieldText, auditquery.FieldTextNormalized, auditquery.FieldCategory, auditquery.FieldIntent:
			values[i] = new(sql.NullString)
		case auditquery.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AuditQuery fields.
func (_m *AuditQuery) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case auditquery.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case auditquery.FieldAuditID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field audit_id", values[i])
			} else if value.Valid {
				_m.AuditID = value.String
			}
		case auditquery.FieldText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field text", values[i])
			} else if value.Valid {
				_m.Text = value.String
			}
		case auditquery.FieldTextNormalized:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field text_normalized", values[i])
			} else if value.Valid {
				_m.TextNormalized = value.String
			}
		case auditquery.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = auditquery.Category(value.String)
			}
		case auditquery.FieldIntent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field intent", values[i])
			} else if value.Valid {
				_m.Intent = new(string)
				*_m.Intent = value.String
			}
		case auditquery.FieldPriority:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field priority", values[i])
			} else if value.Valid {
				_m.Priority = value.Float64
			}
		case auditquery.FieldMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Metadata); err != nil {
					return fmt.Errorf("unmarshal field metadata: %w", err)
				}
			}
		case auditquery.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the AuditQuery.
// This includes values selected through modifiers, order, etc.
func (_m *AuditQuery) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAudit queries the "audit" edge of the AuditQuery entity.
func (_m *AuditQuery) QueryAudit() *AuditQueryBuilder {
	return NewAuditQueryClient(_m.config).QueryAudit(_m)
}

// QueryResponses queries the "responses" edge of the AuditQuery entity.
func (_m *AuditQuery) QueryResponses() *AuditResponseQuery {
	return NewAuditQueryClient(_m.config).QueryResponses(_m)
}

// Update returns a builder for updating this AuditQuery.
// Note that you need to call AuditQuery.Unwrap() before calling this method if this AuditQuery
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AuditQuery) Update() *AuditQueryUpdateOne {
	return NewAuditQueryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AuditQuery entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AuditQuery) Unwrap() *AuditQuery {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AuditQuery is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AuditQuery) String() string {
	var builder strings.Builder
	builder.WriteString("AuditQuery(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("audit_id=")
	builder.WriteString(_m.AuditID)
	builder.WriteString(", ")
	builder.WriteString("text=")
	builder.WriteString(_m.Text)
	builder.WriteString(", ")
	builder.WriteString("text_normalized=")
	builder.WriteString(_m.TextNormalized)
	builder.WriteString(", ")
	builder.WriteString("category=")
	builder.WriteString(fmt.Sprintf("%v", _m.Category))
	builder.WriteString(", ")
	if v := _m.Intent; v != nil {
		builder.WriteString("intent=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("priority=")
	builder.WriteString(fmt.Sprintf("%v", _m.Priority))
	builder.WriteString(", ")
	builder.WriteString("metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.Metadata))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AuditQueries is a parsable slice of AuditQuery.
type AuditQueries []*AuditQuery
