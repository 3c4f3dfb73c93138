// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/specularhq/specular/ent/audit"
	"github.com/specularhq/specular/ent/company"
	"github.com/specularhq/specular/ent/predicate"
)

// CompanyUpdate is the builder for updating Company entities.
type CompanyUpdate struct {
	config
	hooks    []Hook
	mutation *CompanyMutation
}

// Where appends a list predicates to the CompanyUpdate builder.
func (_u *CompanyUpdate) Where(ps ...predicate.Company) *CompanyUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *CompanyUpdate) SetName(v string) *CompanyUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *CompanyUpdate) SetNillableName(v *string) *CompanyUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDomain sets the "domain" field.
func (_u *CompanyUpdate) SetDomain(v string) *CompanyUpdate {
	_u.mutation.SetDomain(v)
	return _u
}

// SetNillableDomain sets the "domain" field if the given value is not nil.
func (_u *CompanyUpdate) SetNillableDomain(v *string) *CompanyUpdate {
	if v != nil {
		_u.SetDomain(*v)
	}
	return _u
}

// ClearDomain clears the value of the "domain" field.
func (_u *CompanyUpdate) ClearDomain() *CompanyUpdate {
	_u.mutation.ClearDomain()
	return _u
}

// SetIndustry sets the "industry" field.
func (_u *CompanyUpdate) SetIndustry(v string) *CompanyUpdate {
	_u.mutation.SetIndustry(v)
	return _u
}

// SetNillableIndustry sets the "industry" field if the given value is not nil.
func (_u *CompanyUpdate) SetNillableIndustry(v *string) *CompanyUpdate {
	if v != nil {
		_u.SetIndustry(*v)
	}
	return _u
}

// ClearIndustry clears the value of the "industry" field.
func (_u *CompanyUpdate) ClearIndustry() *CompanyUpdate {
	_u.mutation.ClearIndustry()
	return _u
}

// SetSubIndustry sets the "sub_industry" field.
func (_u *CompanyUpdate) SetSubIndustry(v string) *CompanyUpdate {
	_u.mutation.SetSubIndustry(v)
	return _u
}

// SetNillableSubIndustry sets the "sub_industry" field if the given value is not nil.
func (_u *CompanyUpdate) SetNillableSubIndustry(v *string) *CompanyUpdate {
	if v != nil {
		_u.SetSubIndustry(*v)
	}
	return _u
}

// ClearSubIndustry clears the value of the "sub_industry" field.
func (_u *CompanyUpdate) ClearSubIndustry() *CompanyUpdate {
	_u.mutation.ClearSubIndustry()
	return _u
}

// SetDescription sets the "description" field.
func (_u *CompanyUpdate) SetDescription(v string) *CompanyUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *CompanyUpdate) SetNillableDescription(v *string) *CompanyUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetOriginalDescription sets the "original_description" field.
func (_u *CompanyUpdate) SetOriginalDescription(v string) *CompanyUpdate {
	_u.mutation.SetOriginalDescription(v)
	return _u
}

// SetNillableOriginalDescription sets the "original_description" field if the given value is not nil.
func (_u *CompanyUpdate) SetNillableOriginalDescription(v *string) *CompanyUpdate {
	if v != nil {
		_u.SetOriginalDescription(*v)
	}
	return _u
}

// ClearOriginalDescription clears the value of the "original_description" field.
func (_u *CompanyUpdate) ClearOriginalDescription() *CompanyUpdate {
	_u.mutation.ClearOriginalDescription()
	return _u
}

// SetFinalDescription sets the "final_description" field.
func (_u *CompanyUpdate) SetFinalDescription(v string) *CompanyUpdate {
	_u.mutation.SetFinalDescription(v)
	return _u
}

// SetNillableFinalDescription sets the "final_description" field if the given value is not nil.
func (_u *CompanyUpdate) SetNillableFinalDescription(v *string) *CompanyUpdate {
	if v != nil {
		_u.SetFinalDescription(*v)
	}
	return _u
}

// ClearFinalDescription clears the value of the "final_description" field.
func (_u *CompanyUpdate) ClearFinalDescription() *CompanyUpdate {
	_u.mutation.ClearFinalDescription()
	return _u
}

// SetValuePropositions sets the "value_propositions" field.
func (_u *CompanyUpdate) SetValuePropositions(v []string) *CompanyUpdate {
	_u.mutation.SetValuePropositions(v)
	return _u
}

// AppendValuePropositions appends value to the "value_propositions" field.
func (_u *CompanyUpdate) AppendValuePropositions(v []string) *CompanyUpdate {
	_u.mutation.AppendValuePropositions(v)
	return _u
}

// ClearValuePropositions clears the value of the "value_propositions" field.
func (_u *CompanyUpdate) ClearValuePropositions() *CompanyUpdate {
	_u.mutation.ClearValuePropositions()
	return _u
}

// SetTargetAudiences sets the "target_audiences" field.
func (_u *CompanyUpdate) SetTargetAudiences(v []string) *CompanyUpdate {
	_u.mutation.SetTargetAudiences(v)
	return _u
}

// AppendTargetAudiences appends value to the "target_audiences" field.
func (_u *CompanyUpdate) AppendTargetAudiences(v []string) *CompanyUpdate {
	_u.mutation.AppendTargetAudiences(v)
	return _u
}

// ClearTargetAudiences clears the value of the "target_audiences" field.
func (_u *CompanyUpdate) ClearTargetAudiences() *CompanyUpdate {
	_u.mutation.ClearTargetAudiences()
	return _u
}

// SetCompetitors sets the "competitors" field.
func (_u *CompanyUpdate) SetCompetitors(v []string) *CompanyUpdate {
	_u.mutation.SetCompetitors(v)
	return _u
}

// AppendCompetitors appends value to the "competitors" field.
func (_u *CompanyUpdate) AppendCompetitors(v []string) *CompanyUpdate {
	_u.mutation.AppendCompetitors(v)
	return _u
}

// ClearCompetitors clears the value of the "competitors" field.
func (_u *CompanyUpdate) ClearCompetitors() *CompanyUpdate {
	_u.mutation.ClearCompetitors()
	return _u
}

// SetProducts sets the "products" field.
func (_u *CompanyUpdate) SetProducts(v []string) *CompanyUpdate {
	_u.mutation.SetProducts(v)
	return _u
}

// AppendProducts appends value to the "products" field.
func (_u *CompanyUpdate) AppendProducts(v []string) *CompanyUpdate {
	_u.mutation.AppendProducts(v)
	return _u
}

// ClearProducts clears the value of the "products" field.
func (_u *CompanyUpdate) ClearProducts() *CompanyUpdate {
	_u.mutation.ClearProducts()
	return _u
}

// SetPainPoints sets the "pain_points" field.
func (_u *CompanyUpdate) SetPainPoints(v []string) *CompanyUpdate {
	_u.mutation.SetPainPoints(v)
	return _u
}

// AppendPainPoints appends value to the "pain_points" field.
func (_u *CompanyUpdate) AppendPainPoints(v []string) *CompanyUpdate {
	_u.mutation.AppendPainPoints(v)
	return _u
}

// ClearPainPoints clears the value of the "pain_points" field.
func (_u *CompanyUpdate) ClearPainPoints() *CompanyUpdate {
	_u.mutation.ClearPainPoints()
	return _u
}

// SetGeographies sets the "geographies" field.
func (_u *CompanyUpdate) SetGeographies(v []string) *CompanyUpdate {
	_u.mutation.SetGeographies(v)
	return _u
}

// AppendGeographies appends value to the "geographies" field.
func (_u *CompanyUpdate) AppendGeographies(v []string) *CompanyUpdate {
	_u.mutation.AppendGeographies(v)
	return _u
}

// ClearGeographies clears the value of the "geographies" field.
func (_u *CompanyUpdate) ClearGeographies() *CompanyUpdate {
	_u.mutation.ClearGeographies()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *CompanyUpdate) SetMetadata(v map[string]interface{}) *CompanyUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *CompanyUpdate) ClearMetadata() *CompanyUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *CompanyUpdate) SetCreatedAt(v time.Time) *CompanyUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *CompanyUpdate) SetNillableCreatedAt(v *time.Time) *CompanyUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// AddAuditIDs adds the "audits" edge to the Audit entity by IDs.
func (_u *CompanyUpdate) AddAuditIDs(ids ...string) *CompanyUpdate {
	_u.mutation.AddAuditIDs(ids...)
	return _u
}

// AddAudits adds the "audits" edges to the Audit entity.
func (_u *CompanyUpdate) AddAudits(v ...*Audit) *CompanyUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAuditIDs(ids...)
}

// Mutation returns the CompanyMutation object of the builder.
func (_u *CompanyUpdate) Mutation() *CompanyMutation {
	return _u.mutation
}

// ClearAudits clears all "audits" edges to the Audit entity.
func (_u *CompanyUpdate) ClearAudits() *CompanyUpdate {
	_u.mutation.ClearAudits()
	return _u
}

// RemoveAuditIDs removes the "audits" edge to Audit entities by IDs.
func (_u *CompanyUpdate) RemoveAuditIDs(ids ...string) *CompanyUpdate {
	_u.mutation.RemoveAuditIDs(ids...)
	return _u
}

// RemoveAudits removes "audits" edges to Audit entities.
func (_u *CompanyUpdate) RemoveAudits(v ...*Audit) *CompanyUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAuditIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CompanyUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CompanyUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CompanyUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CompanyUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CompanyUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := company.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Company.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Description(); ok {
		if err := company.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "Company.description": %w`, err)}
		}
	}
	return nil
}

func (_u *CompanyUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(company.Table, company.Columns, sqlgraph.NewFieldSpec(company.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(company.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Domain(); ok {
		_spec.SetField(company.FieldDomain, field.TypeString, value)
	}
	if _u.mutation.DomainCleared() {
		_spec.ClearField(company.FieldDomain, field.TypeString)
	}
	if value, ok := _u.mutation.Industry(); ok {
		_spec.SetField(company.FieldIndustry, field.TypeString, value)
	}
	if _u.mutation.IndustryCleared() {
		_spec.ClearField(company.FieldIndustry, field.TypeString)
	}
	if value, ok := _u.mutation.SubIndustry(); ok {
		_spec.SetField(company.FieldSubIndustry, field.TypeString, value)
	}
	if _u.mutation.SubIndustryCleared() {
		_spec.ClearField(company.FieldSubIndustry, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(company.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.OriginalDescription(); ok {
		_spec.SetField(company.FieldOriginalDescription, field.TypeString, value)
	}
	if _u.mutation.OriginalDescriptionCleared() {
		_spec.ClearField(company.FieldOriginalDescription, field.TypeString)
	}
	if value, ok := _u.mutation.FinalDescription(); ok {
		_spec.SetField(company.FieldFinalDescription, field.TypeString, value)
	}
	if _u.mutation.FinalDescriptionCleared() {
		_spec.ClearField(company.FieldFinalDescription, field.TypeString)
	}
	if value, ok := _u.mutation.ValuePropositions(); ok {
		_spec.SetField(company.FieldValuePropositions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedValuePropositions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, company.FieldValuePropositions, value)
		})
	}
	if _u.mutation.ValuePropositionsCleared() {
		_spec.ClearField(company.FieldValuePropositions, field.TypeJSON)
	}
	if value, ok := _u.mutation.TargetAudiences(); ok {
		_spec.SetField(company.FieldTargetAudiences, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTargetAudiences(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, company.FieldTargetAudiences, value)
		})
	}
	if _u.mutation.TargetAudiencesCleared() {
		_spec.ClearField(company.FieldTargetAudiences, field.TypeJSON)
	}
	if value, ok := _u.mutation.Competitors(); ok {
		_spec.SetField(company.FieldCompetitors, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCompetitors(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, company.FieldCompetitors, value)
		})
	}
	if _u.mutation.CompetitorsCleared() {
		_spec.ClearField(company.FieldCompetitors, field.TypeJSON)
	}
	if value, ok := _u.mutation.Products(); ok {
		_spec.SetField(company.FieldProducts, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedProducts(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, company.FieldProducts, value)
		})
	}
	if _u.mutation.ProductsCleared() {
		_spec.ClearField(company.FieldProducts, field.TypeJSON)
	}
	if value, ok := _u.mutation.PainPoints(); ok {
		_spec.SetField(company.FieldPainPoints, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPainPoints(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, company.FieldPainPoints, value)
		})
	}
	if _u.mutation.PainPointsCleared() {
		_spec.ClearField(company.FieldPainPoints, field.TypeJSON)
	}
	if value, ok := _u.mutation.Geographies(); ok {
		_spec.SetField(company.FieldGeographies, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedGeographies(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, company.FieldGeographies, value)
		})
	}
	if _u.mutation.GeographiesCleared() {
		_spec.ClearField(company.FieldGeographies, field.TypeJSON)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(company.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(company.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(company.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.AuditsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   company.AuditsTable,
			Columns: []string{company.AuditsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(audit.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAuditsIDs(); len(nodes) > 0 && !_u.mutation.AuditsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   company.AuditsTable,
			Columns: []string{company.AuditsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(audit.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AuditsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   company.AuditsTable,
			Columns: []string{company.AuditsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(audit.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{company.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CompanyUpdateOne is the builder for updating a single Company entity.
type CompanyUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CompanyMutation
}

// SetName sets the "name" field.
func (_u *CompanyUpdateOne) SetName(v string) *CompanyUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *CompanyUpdateOne) SetNillableName(v *string) *CompanyUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDomain sets the "domain" field.
func (_u *CompanyUpdateOne) SetDomain(v string) *CompanyUpdateOne {
	_u.mutation.SetDomain(v)
	return _u
}

// SetNillableDomain sets the "domain" field if the given value is not nil.
func (_u *CompanyUpdateOne) SetNillableDomain(v *string) *CompanyUpdateOne {
	if v != nil {
		_u.SetDomain(*v)
	}
	return _u
}

// ClearDomain clears the value of the "domain" field.
func (_u *CompanyUpdateOne) ClearDomain() *CompanyUpdateOne {
	_u.mutation.ClearDomain()
	return _u
}

// SetIndustry sets the "industry" field.
func (_u *CompanyUpdateOne) SetIndustry(v string) *CompanyUpdateOne {
	_u.mutation.SetIndustry(v)
	return _u
}

// SetNillableIndustry sets the "industry" field if the given value is not nil.
func (_u *CompanyUpdateOne) SetNillableIndustry(v *string) *CompanyUpdateOne {
	if v != nil {
		_u.SetIndustry(*v)
	}
	return _u
}

// ClearIndustry clears the value of the "industry" field.
func (_u *CompanyUpdateOne) ClearIndustry() *CompanyUpdateOne {
	_u.mutation.ClearIndustry()
	return _u
}

// SetSubIndustry sets the "sub_industry" field.
func (_u *CompanyUpdateOne) SetSubIndustry(v string) *CompanyUpdateOne {
	_u.mutation.SetSubIndustry(v)
	return _u
}

// SetNillableSubIndustry sets the "sub_industry" field if the given value is not nil.
func (_u *CompanyUpdateOne) SetNillableSubIndustry(v *string) *CompanyUpdateOne {
	if v != nil {
		_u.SetSubIndustry(*v)
	}
	return _u
}

// ClearSubIndustry clears the value of the "sub_industry" field.
func (_u *CompanyUpdateOne) ClearSubIndustry() *CompanyUpdateOne {
	_u.mutation.ClearSubIndustry()
	return _u
}

// SetDescription sets the "description" field.
func (_u *CompanyUpdateOne) SetDescription(v string) *CompanyUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *CompanyUpdateOne) SetNillableDescription(v *string) *CompanyUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetOriginalDescription sets the "original_description" field.
func (_u *CompanyUpdateOne) SetOriginalDescription(v string) *CompanyUpdateOne {
	_u.mutation.SetOriginalDescription(v)
	return _u
}

// SetNillableOriginalDescription sets the "original_description" field if the given value is not nil.
func (_u *CompanyUpdateOne) SetNillableOriginalDescription(v *string) *CompanyUpdateOne {
	if v != nil {
		_u.SetOriginalDescription(*v)
	}
	return _u
}

// ClearOriginalDescription clears the value of the "original_description" field.
func (_u *CompanyUpdateOne) ClearOriginalDescription() *CompanyUpdateOne {
	_u.mutation.ClearOriginalDescription()
	return _u
}

// SetFinalDescription sets the "final_description" field.
func (_u *CompanyUpdateOne) SetFinalDescription(v string) *CompanyUpdateOne {
	_u.mutation.SetFinalDescription(v)
	return _u
}

// SetNillableFinalDescription sets the "final_description" field if the given value is not nil.
func (_u *CompanyUpdateOne) SetNillableFinalDescription(v *string) *CompanyUpdateOne {
	if v != nil {
		_u.SetFinalDescription(*v)
	}
	return _u
}

// ClearFinalDescription clears the value of the "final_description" field.
func (_u *CompanyUpdateOne) ClearFinalDescription() *CompanyUpdateOne {
	_u.mutation.ClearFinalDescription()
	return _u
}

// SetValuePropositions sets the "value_propositions" field.
func (_u *CompanyUpdateOne) SetValuePropositions(v []string) *CompanyUpdateOne {
	_u.mutation.SetValuePropositions(v)
	return _u
}

// AppendValuePropositions appends value to the "value_propositions" field.
func (_u *CompanyUpdateOne) AppendValuePropositions(v []string) *CompanyUpdateOne {
	_u.mutation.AppendValuePropositions(v)
	return _u
}

// ClearValuePropositions clears the value of the "value_propositions" field.
func (_u *CompanyUpdateOne) ClearValuePropositions() *CompanyUpdateOne {
	_u.mutation.ClearValuePropositions()
	return _u
}

// SetTargetAudiences sets the "target_audiences" field.
func (_u *CompanyUpdateOne) SetTargetAudiences(v []string) *CompanyUpdateOne {
	_u.mutation.SetTargetAudiences(v)
	return _u
}

// AppendTargetAudiences appends value to the "target_audiences" field.
func (_u *CompanyUpdateOne) AppendTargetAudiences(v []string) *CompanyUpdateOne {
	_u.mutation.AppendTargetAudiences(v)
	return _u
}

// ClearTargetAudiences clears the value of the "target_audiences" field.
func (_u *CompanyUpdateOne) ClearTargetAudiences() *CompanyUpdateOne {
	_u.mutation.ClearTargetAudiences()
	return _u
}

// SetCompetitors sets the "competitors" field.
func (_u *CompanyUpdateOne) SetCompetitors(v []string) *CompanyUpdateOne {
	_u.mutation.SetCompetitors(v)
	return _u
}

// AppendCompetitors appends value to the "competitors" field.
func (_u *CompanyUpdateOne) AppendCompetitors(v []string) *CompanyUpdateOne {
	_u.mutation.AppendCompetitors(v)
	return _u
}

// ClearCompetitors clears the value of the "competitors" field.
func (_u *CompanyUpdateOne) ClearCompetitors() *CompanyUpdateOne {
	_u.mutation.ClearCompetitors()
	return _u
}

// SetProducts sets the "products" field.
func (_u *CompanyUpdateOne) SetProducts(v []string) *CompanyUpdateOne {
	_u.mutation.SetProducts(v)
	return _u
}

// AppendProducts appends value to the "products" field.
func (_u *CompanyUpdateOne) AppendProducts(v []string) *CompanyUpdateOne {
	_u.mutation.AppendProducts(v)
	return _u
}

// ClearProducts clears the value of the "products" field.
func (_u *CompanyUpdateOne) ClearProducts() *CompanyUpdateOne {
	_u.mutation.ClearProducts()
	return _u
}

// SetPainPoints sets the "pain_points" field.
func (_u *CompanyUpdateOne) SetPainPoints(v []string) *CompanyUpdateOne {
	_u.mutation.SetPainPoints(v)
	return _u
}

// AppendPainPoints appends value to the "pain_points" field.
func (_u *CompanyUpdateOne) AppendPainPoints(v []string) *CompanyUpdateOne {
	_u.mutation.AppendPainPoints(v)
	return _u
}

// ClearPainPoints clears the value of the "pain_points" field.
func (_u *CompanyUpdateOne) ClearPainPoints() *CompanyUpdateOne {
	_u.mutation.ClearPainPoints()
	return _u
}

// SetGeographies sets the "geographies" field.
func (_u *CompanyUpdateOne) SetGeographies(v []string) *CompanyUpdateOne {
	_u.mutation.SetGeographies(v)
	return _u
}

// AppendGeographies appends value to the "geographies" field.
func (_u *CompanyUpdateOne) AppendGeographies(v []string) *CompanyUpdateOne {
	_u.mutation.AppendGeographies(v)
	return _u
}

// ClearGeographies clears the value of the "geographies" field.
func (_u *CompanyUpdateOne) ClearGeographies() *CompanyUpdateOne {
	_u.mutation.ClearGeographies()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *CompanyUpdateOne) SetMetadata(v map[string]interface{}) *CompanyUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *CompanyUpdateOne) ClearMetadata() *CompanyUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *CompanyUpdateOne) SetCreatedAt(v time.Time) *CompanyUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *CompanyUpdateOne) SetNillableCreatedAt(v *time.Time) *CompanyUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// AddAuditIDs adds the "audits" edge to the Audit entity by IDs.
func (_u *CompanyUpdateOne) AddAuditIDs(ids ...string) *CompanyUpdateOne {
	_u.mutation.AddAuditIDs(ids...)
	return _u
}

// AddAudits adds the "audits" edges to the Audit entity.
func (_u *CompanyUpdateOne) AddAudits(v ...*Audit) *CompanyUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAuditIDs(ids...)
}

// Mutation returns the CompanyMutation object of the builder.
func (_u *CompanyUpdateOne) Mutation() *CompanyMutation {
	return _u.mutation
}

// ClearAudits clears all "audits" edges to the Audit entity.
func (_u *CompanyUpdateOne) ClearAudits() *CompanyUpdateOne {
	_u.mutation.ClearAudits()
	return _u
}

// RemoveAuditIDs removes the "audits" edge to Audit entities by IDs.
func (_u *CompanyUpdateOne) RemoveAuditIDs(ids ...string) *CompanyUpdateOne {
	_u.mutation.RemoveAuditIDs(ids...)
	return _u
}

// RemoveAudits removes "audits" edges to Audit entities.
func (_u *CompanyUpdateOne) RemoveAudits(v ...*Audit) *CompanyUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAuditIDs(ids...)
}

// Where appends a list predicates to the CompanyUpdate builder.
func (_u *CompanyUpdateOne) Where(ps ...predicate.Company) *CompanyUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CompanyUpdateOne) Select(field string, fields ...string) *CompanyUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Company entity.
func (_u *CompanyUpdateOne) Save(ctx context.Context) (*Company, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CompanyUpdateOne) SaveX(ctx context.Context) *Company {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CompanyUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CompanyUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CompanyUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := company.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Company.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Description(); ok {
		if err := company.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "Company.description": %w`, err)}
		}
	}
	return nil
}

func (_u *CompanyUpdateOne) sqlSave(ctx context.Context) (_node *Company, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(company.Table, company.Columns, sqlgraph.NewFieldSpec(company.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Company.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, company.FieldID)
		for _, f := range fields {
			if !company.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != company.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(company.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Domain(); ok {
		_spec.SetField(company.FieldDomain, field.TypeString, value)
	}
	if _u.mutation.DomainCleared() {
		_spec.ClearField(company.FieldDomain, field.TypeString)
	}
	if value, ok := _u.mutation.Industry(); ok {
		_spec.SetField(company.FieldIndustry, field.TypeString, value)
	}
	if _u.mutation.IndustryCleared() {
		_spec.ClearField(company.FieldIndustry, field.TypeString)
	}
	if value, ok := _u.mutation.SubIndustry(); ok {
		_spec.SetField(company.FieldSubIndustry, field.TypeString, value)
	}
	if _u.mutation.SubIndustryCleared() {
		_spec.ClearField(company.FieldSubIndustry, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(company.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.OriginalDescription(); ok {
		_spec.SetField(company.FieldOriginalDescription, field.TypeString, value)
	}
	if _u.mutation.OriginalDescriptionCleared() {
		_spec.ClearField(company.FieldOriginalDescription, field.TypeString)
	}
	if value, ok := _u.mutation.FinalDescription(); ok {
		_spec.SetField(company.FieldFinalDescription, field.TypeString, value)
	}
	if _u.mutation.FinalDescriptionCleared() {
		_spec.ClearField(company.FieldFinalDescription, field.TypeString)
	}
	if value, ok := _u.mutation.ValuePropositions(); ok {
		_spec.SetField(company.FieldValuePropositions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedValuePropositions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, company.FieldValuePropositions, value)
		})
	}
	if _u.mutation.ValuePropositionsCleared() {
		_spec.ClearField(company.FieldValuePropositions, field.TypeJSON)
	}
	if value, ok := _u.mutation.TargetAudiences(); ok {
		_spec.SetField(company.FieldTargetAudiences, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTargetAudiences(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, company.FieldTargetAudiences, value)
		})
	}
	if _u.mutation.TargetAudiencesCleared() {
		_spec.ClearField(company.FieldTargetAudiences, field.TypeJSON)
	}
	if value, ok := _u.mutation.Competitors(); ok {
		_spec.SetField(company.FieldCompetitors, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCompetitors(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, company.FieldCompetitors, value)
		})
	}
	if _u.mutation.CompetitorsCleared() {
		_spec.ClearField(company.FieldCompetitors, field.TypeJSON)
	}
	if value, ok := _u.mutation.Products(); ok {
		_spec.SetField(company.FieldProducts, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedProducts(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, company.FieldProducts, value)
		})
	}
	if _u.mutation.ProductsCleared() {
		_spec.ClearField(company.FieldProducts, field.TypeJSON)
	}
	if value, ok := _u.mutation.PainPoints(); ok {
		_spec.SetField(company.FieldPainPoints, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPainPoints(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, company.FieldPainPoints, value)
		})
	}
	if _u.mutation.PainPointsCleared() {
		_spec.ClearField(company.FieldPainPoints, field.TypeJSON)
	}
	if value, ok := _u.mutation.Geographies(); ok {
		_spec.SetField(company.FieldGeographies, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedGeographies(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, company.FieldGeographies, value)
		})
	}
	if _u.mutation.GeographiesCleared() {
		_spec.ClearField(company.FieldGeographies, field.TypeJSON)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(company.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(company.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(company.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.AuditsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   company.AuditsTable,
			Columns: []string{company.AuditsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(audit.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAuditsIDs(); len(nodes) > 0 && !_u.mutation.AuditsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   company.AuditsTable,
			Columns: []string{company.AuditsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(audit.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AuditsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   company.AuditsTable,
			Columns: []string{company.AuditsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(audit.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Company{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{company.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
