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
	"github.com/specularhq/specular/ent/auditanalysis"
	"github.com/specularhq/specular/ent/auditresponse"
	"github.com/specularhq/specular/ent/schema"
)

// AuditAnalysis is the model entity for the AuditAnalysis schema.
type AuditAnalysis struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// AuditID holds the value of the "audit_id" field.
	AuditID string `json:"audit_id,omitempty"`
	// ResponseID holds the value of the "response_id" field.
	ResponseID string `json:"response_id,omitempty"`
	// Denormalized from the response for roll-ups
	Provider string `json:"provider,omitempty"`
	// Denormalized from the query for roll-ups
	Category auditanalysis.Category `json:"category,omitempty"`
	// BrandMentioned holds the value of the "brand_mentioned" field.
	BrandMentioned bool `json:"brand_mentioned,omitempty"`
	// Character offset of the first brand hit
	FirstPosition *int `json:"first_position,omitempty"`
	// Sentiment holds the value of the "sentiment" field.
	Sentiment *auditanalysis.Sentiment `json:"sentiment,omitempty"`
	// -1..1
	SentimentScore float64 `json:"sentiment_score,omitempty"`
	// CompetitorsMentioned holds the value of the "competitors_mentioned" field.
	CompetitorsMentioned []schema.CompetitorMention `json:"competitors_mentioned,omitempty"`
	// GeoScore holds the value of the "geo_score" field.
	GeoScore float64 `json:"geo_score,omitempty"`
	// SovScore holds the value of the "sov_score" field.
	SovScore float64 `json:"sov_score,omitempty"`
	// ContextCompleteness holds the value of the "context_completeness" field.
	ContextCompleteness float64 `json:"context_completeness,omitempty"`
	// RecommendationSignal holds the value of the "recommendation_signal" field.
	RecommendationSignal float64 `json:"recommendation_signal,omitempty"`
	// Short per-response recommendation strings
	Recommendations []string `json:"recommendations,omitempty"`
	// Analysis failed; excluded from aggregate means
	Errored bool `json:"errored,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AuditAnalysisQuery when eager-loading is set.
	Edges        AuditAnalysisEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AuditAnalysisEdges holds the relations/edges for other nodes in the graph.
type AuditAnalysisEdges struct {
	// Audit holds the value of the audit edge.
	Audit *Audit `json:"audit,omitempty"`
	// Response holds the value of the response edge.
	Response *AuditResponse `json:"response,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// AuditOrErr returns the Audit value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AuditAnalysisEdges) AuditOrErr() (*Audit, error) {
	if e.Audit != nil {
		return e.Audit, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: audit.Label}
	}
	return nil, &NotLoadedError{edge: "audit"}
}

// ResponseOrErr returns the Response value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AuditAnalysisEdges) ResponseOrErr() (*AuditResponse, error) {
	if e.Response != nil {
		return e.Response, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: auditresponse.Label}
	}
	return nil, &NotLoadedError{edge: "response"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AuditAnalysis) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case auditanalysis.FieldCompetitorsMentioned, auditanalysis.FieldRecommendations:
			values[i] = new([]byte)
		case auditanalysis.FieldBrandMentioned, auditanalysis.FieldErrored:
			values[i] = new(sql.NullBool)
		case auditanalysis.FieldSentimentScore, auditanalysis.FieldGeoScore, auditanalysis.FieldSovScore, auditanalysis.FieldContextCompleteness, auditanalysis.FieldRecommendationSignal:
			values[i] = new(sql.NullFloat64)
		case auditanalysis.FieldFirstPosition:
			values[i] = new(sql.NullInt64)
		case auditanalysis.FieldID, auditanalysis.FieldAuditID, auditanalysis.FieldResponseID, auditanalysis.FieldProvider, auditanalysis.FieldCategory, auditanalysis.FieldSentiment, auditanalysis.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case auditanalysis.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AuditAnalysis fields.
func (_m *AuditAnalysis) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case auditanalysis.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case auditanalysis.FieldAuditID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field audit_id", values[i])
			} else if value.Valid {
				_m.AuditID = value.String
			}
		case auditanalysis.FieldResponseID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field response_id", values[i])
			} else if value.Valid {
				_m.ResponseID = value.String
			}
		case auditanalysis.FieldProvider:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field provider", values[i])
			} else if value.Valid {
				_m.Provider = value.String
			}
		case auditanalysis.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = auditanalysis.Category(value.String)
			}
		case auditanalysis.FieldBrandMentioned:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field brand_mentioned", values[i])
			} else if value.Valid {
				_m.BrandMentioned = value.Bool
			}
		case auditanalysis.FieldFirstPosition:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field first_position", values[i])
			} else if value.Valid {
				_m.FirstPosition = new(int)
				*_m.FirstPosition = int(value.Int64)
			}
		case auditanalysis.FieldSentiment:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sentiment", values[i])
			} else if value.Valid {
				_m.Sentiment = new(auditanalysis.Sentiment)
				*_m.Sentiment = auditanalysis.Sentiment(value.String)
			}
		case auditanalysis.FieldSentimentScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field sentiment_score", values[i])
			} else if value.Valid {
				_m.SentimentScore = value.Float64
			}
		case auditanalysis.FieldCompetitorsMentioned:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field competitors_mentioned", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CompetitorsMentioned); err != nil {
					return fmt.Errorf("unmarshal field competitors_mentioned: %w", err)
				}
			}
		case auditanalysis.FieldGeoScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field geo_score", values[i])
			} else if value.Valid {
				_m.GeoScore = value.Float64
			}
		case auditanalysis.FieldSovScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field sov_score", values[i])
			} else if value.Valid {
				_m.SovScore = value.Float64
			}
		case auditanalysis.FieldContextCompleteness:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field context_completeness", values[i])
			} else if value.Valid {
				_m.ContextCompleteness = value.Float64
			}
		case auditanalysis.FieldRecommendationSignal:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field recommendation_signal", values[i])
			} else if value.Valid {
				_m.RecommendationSignal = value.Float64
			}
		case auditanalysis.FieldRecommendations:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field recommendations", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Recommendations); err != nil {
					return fmt.Errorf("unmarshal field recommendations: %w", err)
				}
			}
		case auditanalysis.FieldErrored:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field errored", values[i])
			} else if value.Valid {
				_m.Errored = value.Bool
			}
		case auditanalysis.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case auditanalysis.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the AuditAnalysis.
// This includes values selected through modifiers, order, etc.
func (_m *AuditAnalysis) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAudit queries the "audit" edge of the AuditAnalysis entity.
func (_m *AuditAnalysis) QueryAudit() *AuditQueryBuilder {
	return NewAuditAnalysisClient(_m.config).QueryAudit(_m)
}

// QueryResponse queries the "response" edge of the AuditAnalysis entity.
func (_m *AuditAnalysis) QueryResponse() *AuditResponseQuery {
	return NewAuditAnalysisClient(_m.config).QueryResponse(_m)
}

// Update returns a builder for updating this AuditAnalysis.
// Note that you need to call AuditAnalysis.Unwrap() before calling this method if this AuditAnalysis
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AuditAnalysis) Update() *AuditAnalysisUpdateOne {
	return NewAuditAnalysisClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AuditAnalysis entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AuditAnalysis) Unwrap() *AuditAnalysis {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AuditAnalysis is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AuditAnalysis) String() string {
	var builder strings.Builder
	builder.WriteString("AuditAnalysis(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("audit_id=")
	builder.WriteString(_m.AuditID)
	builder.WriteString(", ")
	builder.WriteString("response_id=")
	builder.WriteString(_m.ResponseID)
	builder.WriteString(", ")
	builder.WriteString("provider=")
	builder.WriteString(_m.Provider)
	builder.WriteString(", ")
	builder.WriteString("category=")
	builder.WriteString(fmt.Sprintf("%v", _m.Category))
	builder.WriteString(", ")
	builder.WriteString("brand_mentioned=")
	builder.WriteString(fmt.Sprintf("%v", _m.BrandMentioned))
	builder.WriteString(", ")
	if v := _m.FirstPosition; v != nil {
		builder.WriteString("first_position=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Sentiment; v != nil {
		builder.WriteString("sentiment=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("sentiment_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.SentimentScore))
	builder.WriteString(", ")
	builder.WriteString("competitors_mentioned=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompetitorsMentioned))
	builder.WriteString(", ")
	builder.WriteString("geo_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.GeoScore))
	builder.WriteString(", ")
	builder.WriteString("sov_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.SovScore))
	builder.WriteString(", ")
	builder.WriteString("context_completeness=")
	builder.WriteString(fmt.Sprintf("%v", _m.ContextCompleteness))
	builder.WriteString(", ")
	builder.WriteString("recommendation_signal=")
	builder.WriteString(fmt.Sprintf("%v", _m.RecommendationSignal))
	builder.WriteString(", ")
	builder.WriteString("recommendations=")
	builder.WriteString(fmt.Sprintf("%v", _m.Recommendations))
	builder.WriteString(", ")
	builder.WriteString("errored=")
	builder.WriteString(fmt.Sprintf("%v", _m.Errored))
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

// AuditAnalyses is a parsable slice of AuditAnalysis.
type AuditAnalyses []*AuditAnalysis
