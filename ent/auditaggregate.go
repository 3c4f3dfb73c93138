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
	"github.com/specularhq/specular/ent/schema"
)

// AuditAggregate is the model entity for the AuditAggregate schema.
type AuditAggregate struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// AuditID holds the value of the "audit_id" field.
	AuditID string `json:"audit_id,omitempty"`
	// OverallScore holds the value of the "overall_score" field.
	OverallScore float64 `json:"overall_score,omitempty"`
	// GeoScore holds the value of the "geo_score" field.
	GeoScore float64 `json:"geo_score,omitempty"`
	// SovScore holds the value of the "sov_score" field.
	SovScore float64 `json:"sov_score,omitempty"`
	// RecommendationScore holds the value of the "recommendation_score" field.
	RecommendationScore float64 `json:"recommendation_score,omitempty"`
	// Mean sentiment rescaled to 0..100
	SentimentScore float64 `json:"sentiment_score,omitempty"`
	// Share of analyzed responses mentioning the brand
	VisibilityScore float64 `json:"visibility_score,omitempty"`
	// ContextCompleteness holds the value of the "context_completeness" field.
	ContextCompleteness float64 `json:"context_completeness,omitempty"`
	// ProviderBreakdown holds the value of the "provider_breakdown" field.
	ProviderBreakdown map[string]schema.ScoreBreakdown `json:"provider_breakdown,omitempty"`
	// CategoryBreakdown holds the value of the "category_breakdown" field.
	CategoryBreakdown map[string]schema.ScoreBreakdown `json:"category_breakdown,omitempty"`
	// CompetitorMentions holds the value of the "competitor_mentions" field.
	CompetitorMentions map[string]int `json:"competitor_mentions,omitempty"`
	// TotalResponses holds the value of the "total_responses" field.
	TotalResponses int `json:"total_responses,omitempty"`
	// Non-errored analyses included in means
	AnalyzedResponses int `json:"analyzed_responses,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AuditAggregateQuery when eager-loading is set.
	Edges        AuditAggregateEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AuditAggregateEdges holds the relations/edges for other nodes in the graph.
type AuditAggregateEdges struct {
	// Audit holds the value of the audit edge.
	Audit *Audit `json:"audit,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// AuditOrErr returns the Audit value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AuditAggregateEdges) AuditOrErr() (*Audit, error) {
	if e.Audit != nil {
		return e.Audit, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: audit.Label}
	}
	return nil, &NotLoadedError{edge: "audit"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AuditAggregate) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case auditaggregate.FieldProviderBreakdown, auditaggregate.FieldCategoryBreakdown, auditaggregate.FieldCompetitorMentions:
			values[i] = new([]byte)
		case auditaggregate.FieldOverallScore, auditaggregate.FieldGeoScore, auditaggregate.FieldSovScore, auditaggregate.FieldRecommendationScore, auditaggregate.FieldSentimentScore, auditaggregate.FieldVisibilityScore, auditaggregate.FieldContextCompleteness:
			values[i] = new(sql.NullFloat64)
		case auditaggregate.FieldTotalResponses, auditaggregate.FieldAnalyzedResponses:
			values[i] = new(sql.NullInt64)
		case auditaggregate.FieldID, auditaggregate.FieldAuditID:
			values[i] = new(sql.NullString)
		case auditaggregate.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AuditAggregate fields.
func (_m *AuditAggregate) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case auditaggregate.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case auditaggregate.FieldAuditID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field audit_id", values[i])
			} else if value.Valid {
				_m.AuditID = value.String
			}
		case auditaggregate.FieldOverallScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field overall_score", values[i])
			} else if value.Valid {
				_m.OverallScore = value.Float64
			}
		case auditaggregate.FieldGeoScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field geo_score", values[i])
			} else if value.Valid {
				_m.GeoScore = value.Float64
			}
		case auditaggregate.FieldSovScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field sov_score", values[i])
			} else if value.Valid {
				_m.SovScore = value.Float64
			}
		case auditaggregate.FieldRecommendationScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field recommendation_score", values[i])
			} else if value.Valid {
				_m.RecommendationScore = value.Float64
			}
		case auditaggregate.FieldSentimentScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field sentiment_score", values[i])
			} else if value.Valid {
				_m.SentimentScore = value.Float64
			}
		case auditaggregate.FieldVisibilityScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field visibility_score", values[i])
			} else if value.Valid {
				_m.VisibilityScore = value.Float64
			}
		case auditaggregate.FieldContextCompleteness:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field context_completeness", values[i])
			} else if value.Valid {
				_m.ContextCompleteness = value.Float64
			}
		case auditaggregate.FieldProviderBreakdown:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field provider_breakdown", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ProviderBreakdown); err != nil {
					return fmt.Errorf("unmarshal field provider_breakdown: %w", err)
				}
			}
		case auditaggregate.FieldCategoryBreakdown:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field category_breakdown", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CategoryBreakdown); err != nil {
					return fmt.Errorf("unmarshal field category_breakdown: %w", err)
				}
			}
		case auditaggregate.FieldCompetitorMentions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field competitor_mentions", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CompetitorMentions); err != nil {
					return fmt.Errorf("unmarshal field competitor_mentions: %w", err)
				}
			}
		case auditaggregate.FieldTotalResponses:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_responses", values[i])
			} else if value.Valid {
				_m.TotalResponses = int(value.Int64)
			}
		case auditaggregate.FieldAnalyzedResponses:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field analyzed_responses", values[i])
			} else if value.Valid {
				_m.AnalyzedResponses = int(value.Int64)
			}
		case auditaggregate.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the AuditAggregate.
// This includes values selected through modifiers, order, etc.
func (_m *AuditAggregate) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAudit queries the "audit" edge of the AuditAggregate entity.
func (_m *AuditAggregate) QueryAudit() *AuditQueryBuilder {
	return NewAuditAggregateClient(_m.config).QueryAudit(_m)
}

// Update returns a builder for updating this AuditAggregate.
// Note that you need to call AuditAggregate.Unwrap() before calling this method if this AuditAggregate
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AuditAggregate) Update() *AuditAggregateUpdateOne {
	return NewAuditAggregateClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AuditAggregate entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AuditAggregate) Unwrap() *AuditAggregate {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AuditAggregate is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AuditAggregate) String() string {
	var builder strings.Builder
	builder.WriteString("AuditAggregate(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("audit_id=")
	builder.WriteString(_m.AuditID)
	builder.WriteString(", ")
	builder.WriteString("overall_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.OverallScore))
	builder.WriteString(", ")
	builder.WriteString("geo_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.GeoScore))
	builder.WriteString(", ")
	builder.WriteString("sov_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.SovScore))
	builder.WriteString(", ")
	builder.WriteString("recommendation_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.RecommendationScore))
	builder.WriteString(", ")
	builder.WriteString("sentiment_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.SentimentScore))
	builder.WriteString(", ")
	builder.WriteString("visibility_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.VisibilityScore))
	builder.WriteString(", ")
	builder.WriteString("context_completeness=")
	builder.WriteString(fmt.Sprintf("%v", _m.ContextCompleteness))
	builder.WriteString(", ")
	builder.WriteString("provider_breakdown=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProviderBreakdown))
	builder.WriteString(", ")
	builder.WriteString("category_breakdown=")
	builder.WriteString(fmt.Sprintf("%v", _m.CategoryBreakdown))
	builder.WriteString(", ")
	builder.WriteString("competitor_mentions=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompetitorMentions))
	builder.WriteString(", ")
	builder.WriteString("total_responses=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalResponses))
	builder.WriteString(", ")
	builder.WriteString("analyzed_responses=")
	builder.WriteString(fmt.Sprintf("%v", _m.AnalyzedResponses))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AuditAggregates is a parsable slice of AuditAggregate.
type AuditAggregates []*AuditAggregate
