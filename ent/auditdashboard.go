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
	"github.com/specularhq/specular/ent/auditdashboard"
	"github.com/specularhq/specular/ent/schema"
)

// AuditDashboard is the model entity for the AuditDashboard schema.
type AuditDashboard struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// AuditID holds the value of the "audit_id" field.
	AuditID string `json:"audit_id,omitempty"`
	// Scores holds the value of the "scores" field.
	Scores schema.DashboardScores `json:"scores,omitempty"`
	// Merged, deduped, priority-ranked
	Recommendations []schema.RankedRecommendation `json:"recommendations,omitempty"`
	// CompetitorLandscape holds the value of the "competitor_landscape" field.
	CompetitorLandscape schema.CompetitorLandscape `json:"competitor_landscape,omitempty"`
	// CategoryInsights holds the value of the "category_insights" field.
	CategoryInsights []schema.CategoryInsight `json:"category_insights,omitempty"`
	// ExecutiveSummary holds the value of the "executive_summary" field.
	ExecutiveSummary string `json:"executive_summary,omitempty"`
	// GeneratedAt holds the value of the "generated_at" field.
	GeneratedAt time.Time `json:"generated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AuditDashboardQuery when eager-loading is set.
	Edges        AuditDashboardEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AuditDashboardEdges holds the relations/edges for other nodes in the graph.
type AuditDashboardEdges struct {
	// Audit holds the value of the audit edge.
	Audit *Audit `json:"audit,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// AuditOrErr returns the Audit value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AuditDashboardEdges) AuditOrErr() (*Audit, error) {
	if e.Audit != nil {
		return e.Audit, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: audit.Label}
	}
	return nil, &NotLoadedError{edge: "audit"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AuditDashboard) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case auditdashboard.FieldScores, auditdashboard.FieldRecommendations, auditdashboard.FieldCompetitorLandscape, auditdashboard.FieldCategoryInsights:
			values[i] = new([]byte)
		case auditdashboard.FieldID, auditdashboard.FieldAuditID, auditdashboard.FieldExecutiveSummary:
			values[i] = new(sql.NullString)
		case auditdashboard.FieldGeneratedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AuditDashboard fields.
func (_m *AuditDashboard) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case auditdashboard.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case auditdashboard.FieldAuditID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field audit_id", values[i])
			} else if value.Valid {
				_m.AuditID = value.String
			}
		case auditdashboard.FieldScores:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field scores", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Scores); err != nil {
					return fmt.Errorf("unmarshal field scores: %w", err)
				}
			}
		case auditdashboard.FieldRecommendations:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field recommendations", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Recommendations); err != nil {
					return fmt.Errorf("unmarshal field recommendations: %w", err)
				}
			}
		case auditdashboard.FieldCompetitorLandscape:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field competitor_landscape", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CompetitorLandscape); err != nil {
					return fmt.Errorf("unmarshal field competitor_landscape: %w", err)
				}
			}
		case auditdashboard.FieldCategoryInsights:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field category_insights", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CategoryInsights); err != nil {
					return fmt.Errorf("unmarshal field category_insights: %w", err)
				}
			}
		case auditdashboard.FieldExecutiveSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field executive_summary", values[i])
			} else if value.Valid {
				_m.ExecutiveSummary = value.String
			}
		case auditdashboard.FieldGeneratedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field generated_at", values[i])
			} else if value.Valid {
				_m.GeneratedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AuditDashboard.
// This includes values selected through modifiers, order, etc.
func (_m *AuditDashboard) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAudit queries the "audit" edge of the AuditDashboard entity.
func (_m *AuditDashboard) QueryAudit() *AuditQueryBuilder {
	return NewAuditDashboardClient(_m.config).QueryAudit(_m)
}

// Update returns a builder for updating this AuditDashboard.
// Note that you need to call AuditDashboard.Unwrap() before calling this method if this AuditDashboard
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AuditDashboard) Update() *AuditDashboardUpdateOne {
	return NewAuditDashboardClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AuditDashboard entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AuditDashboard) Unwrap() *AuditDashboard {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AuditDashboard is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AuditDashboard) String() string {
	var builder strings.Builder
	builder.WriteString("AuditDashboard(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("audit_id=")
	builder.WriteString(_m.AuditID)
	builder.WriteString(", ")
	builder.WriteString("scores=")
	builder.WriteString(fmt.Sprintf("%v", _m.Scores))
	builder.WriteString(", ")
	builder.WriteString("recommendations=")
	builder.WriteString(fmt.Sprintf("%v", _m.Recommendations))
	builder.WriteString(", ")
	builder.WriteString("competitor_landscape=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompetitorLandscape))
	builder.WriteString(", ")
	builder.WriteString("category_insights=")
	builder.WriteString(fmt.Sprintf("%v", _m.CategoryInsights))
	builder.WriteString(", ")
	builder.WriteString("executive_summary=")
	builder.WriteString(_m.ExecutiveSummary)
	builder.WriteString(", ")
	builder.WriteString("generated_at=")
	builder.WriteString(_m.GeneratedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AuditDashboards is a parsable slice of AuditDashboard.
type AuditDashboards []*AuditDashboard
