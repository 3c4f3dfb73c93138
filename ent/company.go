// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/specularhq/specular/ent/company"
)

// Company is the model entity for the Company schema.
type Company struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Primary web domain, e.g. 'acme.com'
	Domain string `json:"domain,omitempty"`
	// Industry holds the value of the "industry" field.
	Industry string `json:"industry,omitempty"`
	// SubIndustry holds the value of the "sub_industry" field.
	SubIndustry *string `json:"sub_industry,omitempty"`
	// Baseline description; always present
	Description string `json:"description,omitempty"`
	// User-authored description, preferred over enrichment
	OriginalDescription *string `json:"original_description,omitempty"`
	// Post-enrichment description, preferred when present
	FinalDescription *string `json:"final_description,omitempty"`
	// Ordered unique value propositions
	ValuePropositions []string `json:"value_propositions,omitempty"`
	// TargetAudiences holds the value of the "target_audiences" field.
	TargetAudiences []string `json:"target_audiences,omitempty"`
	// Known competitor names
	Competitors []string `json:"competitors,omitempty"`
	// Products holds the value of the "products" field.
	Products []string `json:"products,omitempty"`
	// PainPoints holds the value of the "pain_points" field.
	PainPoints []string `json:"pain_points,omitempty"`
	// Geographies holds the value of the "geographies" field.
	Geographies []string `json:"geographies,omitempty"`
	// Tech stack, pricing model, size, founding year, etc.
	Metadata map[string]interface{} `json:"metadata,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CompanyQuery when eager-loading is set.
	Edges        CompanyEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CompanyEdges holds the relations/edges for other nodes in the graph.
type CompanyEdges struct {
	// Audits holds the value of the audits edge.
	Audits []*Audit `json:"audits,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// AuditsOrErr returns the Audits value or an error if the edge
// was not loaded in eager-loading.
func (e CompanyEdges) AuditsOrErr() ([]*Audit, error) {
	if e.loadedTypes[0] {
		return e.Audits, nil
	}
	return nil, &NotLoadedError{edge: "audits"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Company) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case company.FieldValuePropositions, company.FieldTargetAudiences, company.FieldCompetitors, company.FieldProducts, company.FieldPainPoints, company.FieldGeographies, company.FieldMetadata:
			values[i] = new([]byte)
		case company.FieldID, company.FieldName, company.FieldDomain, company.FieldIndustry, company.FieldSubIndustry, company.FieldDescription, company.FieldOriginalDescription, company.FieldFinalDescription:
			values[i] = new(sql.NullString)
		case company.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Company fields.
func (_m *Company) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case company.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case company.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case company.FieldDomain:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field domain", values[i])
			} else if value.Valid {
				_m.Domain = value.String
			}
		case company.FieldIndustry:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field industry", values[i])
			} else if value.Valid {
				_m.Industry = value.String
			}
		case company.FieldSubIndustry:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sub_industry", values[i])
			} else if value.Valid {
				_m.SubIndustry = new(string)
				*_m.SubIndustry = value.String
			}
		case company.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case company.FieldOriginalDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field original_description", values[i])
			} else if value.Valid {
				_m.OriginalDescription = new(string)
				*_m.OriginalDescription = value.String
			}
		case company.FieldFinalDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field final_description", values[i])
			} else if value.Valid {
				_m.FinalDescription = new(string)
				*_m.FinalDescription = value.String
			}
		case company.FieldValuePropositions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field value_propositions", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ValuePropositions); err != nil {
					return fmt.Errorf("unmarshal field value_propositions: %w", err)
				}
			}
		case company.FieldTargetAudiences:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field target_audiences", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.TargetAudiences); err != nil {
					return fmt.Errorf("unmarshal field target_audiences: %w", err)
				}
			}
		case company.FieldCompetitors:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field competitors", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Competitors); err != nil {
					return fmt.Errorf("unmarshal field competitors: %w", err)
				}
			}
		case company.FieldProducts:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field products", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Products); err != nil {
					return fmt.Errorf("unmarshal field products: %w", err)
				}
			}
		case company.FieldPainPoints:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field pain_points", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.PainPoints); err != nil {
					return fmt.Errorf("unmarshal field pain_points: %w", err)
				}
			}
		case company.FieldGeographies:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field geographies", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Geographies); err != nil {
					return fmt.Errorf("unmarshal field geographies: %w", err)
				}
			}
		case company.FieldMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Metadata); err != nil {
					return fmt.Errorf("unmarshal field metadata: %w", err)
				}
			}
		case company.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Company.
// This includes values selected through modifiers, order, etc.
func (_m *Company) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAudits queries the "audits" edge of the Company entity.
func (_m *Company) QueryAudits() *AuditQueryBuilder {
	return NewCompanyClient(_m.config).QueryAudits(_m)
}

// Update returns a builder for updating this Company.
// Note that you need to call Company.Unwrap() before calling this method if this Company
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Company) Update() *CompanyUpdateOne {
	return NewCompanyClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Company entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Company) Unwrap() *Company {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Company is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Company) String() string {
	var builder strings.Builder
	builder.WriteString("Company(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("domain=")
	builder.WriteString(_m.Domain)
	builder.WriteString(", ")
	builder.WriteString("industry=")
	builder.WriteString(_m.Industry)
	builder.WriteString(", ")
	if v := _m.SubIndustry; v != nil {
		builder.WriteString("sub_industry=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	if v := _m.OriginalDescription; v != nil {
		builder.WriteString("original_description=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.FinalDescription; v != nil {
		builder.WriteString("final_description=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("value_propositions=")
	builder.WriteString(fmt.Sprintf("%v", _m.ValuePropositions))
	builder.WriteString(", ")
	builder.WriteString("target_audiences=")
	builder.WriteString(fmt.Sprintf("%v", _m.TargetAudiences))
	builder.WriteString(", ")
	builder.WriteString("competitors=")
	builder.WriteString(fmt.Sprintf("%v", _m.Competitors))
	builder.WriteString(", ")
	builder.WriteString("products=")
	builder.WriteString(fmt.Sprintf("%v", _m.Products))
	builder.WriteString(", ")
	builder.WriteString("pain_points=")
	builder.WriteString(fmt.Sprintf("%v", _m.PainPoints))
	builder.WriteString(", ")
	builder.WriteString("geographies=")
	builder.WriteString(fmt.Sprintf("%v", _m.Geographies))
	builder.WriteString(", ")
	builder.WriteString("metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.Metadata))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Companies is a parsable slice of Company.
type Companies []*Company
