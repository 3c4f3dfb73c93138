// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/specularhq/specular/ent/audit"
	"github.com/specularhq/specular/ent/company"
)

// CompanyCreate is the builder for creating a Company entity.
type CompanyCreate struct {
	config
	mutation *CompanyMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetName sets the "name" field.
func (_c *CompanyCreate) SetName(v string) *CompanyCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDomain sets the "domain" field.
func (_c *CompanyCreate) SetDomain(v string) *CompanyCreate {
	_c.mutation.SetDomain(v)
	return _c
}

// SetNillableDomain sets the "domain" field if the given value is not nil.
func (_c *CompanyCreate) SetNillableDomain(v *string) *CompanyCreate {
	if v != nil {
		_c.SetDomain(*v)
	}
	return _c
}

// SetIndustry sets the "industry" field.
func (_c *CompanyCreate) SetIndustry(v string) *CompanyCreate {
	_c.mutation.SetIndustry(v)
	return _c
}

// SetNillableIndustry sets the "industry" field if the given value is not nil.
func (_c *CompanyCreate) SetNillableIndustry(v *string) *CompanyCreate {
	if v != nil {
		_c.SetIndustry(*v)
	}
	return _c
}

// SetSubIndustry sets the "sub_industry" field.
func (_c *CompanyCreate) SetSubIndustry(v string) *CompanyCreate {
	_c.mutation.SetSubIndustry(v)
	return _c
}

// SetNillableSubIndustry sets the "sub_industry" field if the given value is not nil.
func (_c *CompanyCreate) SetNillableSubIndustry(v *string) *CompanyCreate {
	if v != nil {
		_c.SetSubIndustry(*v)
	}
	return _c
}

// SetDescription sets the "description" field.
func (_c *CompanyCreate) SetDescription(v string) *CompanyCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetOriginalDescription sets the "original_description" field.
func (_c *CompanyCreate) SetOriginalDescription(v string) *CompanyCreate {
	_c.mutation.SetOriginalDescription(v)
	return _c
}

// SetNillableOriginalDescription sets the "original_description" field if the given value is not nil.
func (_c *CompanyCreate) SetNillableOriginalDescription(v *string) *CompanyCreate {
	if v != nil {
		_c.SetOriginalDescription(*v)
	}
	return _c
}

// SetFinalDescription sets the "final_description" field.
func (_c *CompanyCreate) SetFinalDescription(v string) *CompanyCreate {
	_c.mutation.SetFinalDescription(v)
	return _c
}

// SetNillableFinalDescription sets the "final_description" field if the given value is not nil.
func (_c *CompanyCreate) SetNillableFinalDescription(v *string) *CompanyCreate {
	if v != nil {
		_c.SetFinalDescription(*v)
	}
	return _c
}

// SetValuePropositions sets the "value_propositions" field.
func (_c *CompanyCreate) SetValuePropositions(v []string) *CompanyCreate {
	_c.mutation.SetValuePropositions(v)
	return _c
}

// SetTargetAudiences sets the "target_audiences" field.
func (_c *CompanyCreate) SetTargetAudiences(v []string) *CompanyCreate {
	_c.mutation.SetTargetAudiences(v)
	return _c
}

// SetCompetitors sets the "competitors" field.
func (_c *CompanyCreate) SetCompetitors(v []string) *CompanyCreate {
	_c.mutation.SetCompetitors(v)
	return _c
}

// SetProducts sets the "products" field.
func (_c *CompanyCreate) SetProducts(v []string) *CompanyCreate {
	_c.mutation.SetProducts(v)
	return _c
}

// SetPainPoints sets the "pain_points" field.
func (_c *CompanyCreate) SetPainPoints(v []string) *CompanyCreate {
	_c.mutation.SetPainPoints(v)
	return _c
}

// SetGeographies sets the "geographies" field.
func (_c *CompanyCreate) SetGeographies(v []string) *CompanyCreate {
	_c.mutation.SetGeographies(v)
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *CompanyCreate) SetMetadata(v map[string]interface{}) *CompanyCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CompanyCreate) SetCreatedAt(v time.Time) *CompanyCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CompanyCreate) SetNillableCreatedAt(v *time.Time) *CompanyCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CompanyCreate) SetID(v string) *CompanyCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddAuditIDs adds the "audits" edge to the Audit entity by IDs.
func (_c *CompanyCreate) AddAuditIDs(ids ...string) *CompanyCreate {
	_c.mutation.AddAuditIDs(ids...)
	return _c
}

// AddAudits adds the "audits" edges to the Audit entity.
func (_c *CompanyCreate) AddAudits(v ...*Audit) *CompanyCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAuditIDs(ids...)
}

// Mutation returns the CompanyMutation object of the builder.
func (_c *CompanyCreate) Mutation() *CompanyMutation {
	return _c.mutation
}

// Save creates the Company in the database.
func (_c *CompanyCreate) Save(ctx context.Context) (*Company, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CompanyCreate) SaveX(ctx context.Context) *Company {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CompanyCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CompanyCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CompanyCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := company.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CompanyCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Company.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := company.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Company.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "Company.description"`)}
	}
	if v, ok := _c.mutation.Description(); ok {
		if err := company.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "Company.description": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Company.created_at"`)}
	}
	return nil
}

func (_c *CompanyCreate) sqlSave(ctx context.Context) (*Company, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Company.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CompanyCreate) createSpec() (*Company, *sqlgraph.CreateSpec) {
	var (
		_node = &Company{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(company.Table, sqlgraph.NewFieldSpec(company.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(company.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Domain(); ok {
		_spec.SetField(company.FieldDomain, field.TypeString, value)
		_node.Domain = value
	}
	if value, ok := _c.mutation.Industry(); ok {
		_spec.SetField(company.FieldIndustry, field.TypeString, value)
		_node.Industry = value
	}
	if value, ok := _c.mutation.SubIndustry(); ok {
		_spec.SetField(company.FieldSubIndustry, field.TypeString, value)
		_node.SubIndustry = &value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(company.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.OriginalDescription(); ok {
		_spec.SetField(company.FieldOriginalDescription, field.TypeString, value)
		_node.OriginalDescription = &value
	}
	if value, ok := _c.mutation.FinalDescription(); ok {
		_spec.SetField(company.FieldFinalDescription, field.TypeString, value)
		_node.FinalDescription = &value
	}
	if value, ok := _c.mutation.ValuePropositions(); ok {
		_spec.SetField(company.FieldValuePropositions, field.TypeJSON, value)
		_node.ValuePropositions = value
	}
	if value, ok := _c.mutation.TargetAudiences(); ok {
		_spec.SetField(company.FieldTargetAudiences, field.TypeJSON, value)
		_node.TargetAudiences = value
	}
	if value, ok := _c.mutation.Competitors(); ok {
		_spec.SetField(company.FieldCompetitors, field.TypeJSON, value)
		_node.Competitors = value
	}
	if value, ok := _c.mutation.Products(); ok {
		_spec.SetField(company.FieldProducts, field.TypeJSON, value)
		_node.Products = value
	}
	if value, ok := _c.mutation.PainPoints(); ok {
		_spec.SetField(company.FieldPainPoints, field.TypeJSON, value)
		_node.PainPoints = value
	}
	if value, ok := _c.mutation.Geographies(); ok {
		_spec.SetField(company.FieldGeographies, field.TypeJSON, value)
		_node.Geographies = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(company.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(company.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.AuditsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Company.Create().
//		SetName(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CompanyUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *CompanyCreate) OnConflict(opts ...sql.ConflictOption) *CompanyUpsertOne {
	_c.conflict = opts
	return &CompanyUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Company.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CompanyCreate) OnConflictColumns(columns ...string) *CompanyUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CompanyUpsertOne{
		create: _c,
	}
}

type (
	// CompanyUpsertOne is the builder for "upsert"-ing
	//  one Company node.
	CompanyUpsertOne struct {
		create *CompanyCreate
	}

	// CompanyUpsert is the "OnConflict" setter.
	CompanyUpsert struct {
		*sql.UpdateSet
	}
)

// SetName sets the "name" field.
func (u *CompanyUpsert) SetName(v string) *CompanyUpsert {
	u.Set(company.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *CompanyUpsert) UpdateName() *CompanyUpsert {
	u.SetExcluded(company.FieldName)
	return u
}

// SetDomain sets the "domain" field.
func (u *CompanyUpsert) SetDomain(v string) *CompanyUpsert {
	u.Set(company.FieldDomain, v)
	return u
}

// UpdateDomain sets the "domain" field to the value that was provided on create.
func (u *CompanyUpsert) UpdateDomain() *CompanyUpsert {
	u.SetExcluded(company.FieldDomain)
	return u
}

// ClearDomain clears the value of the "domain" field.
func (u *CompanyUpsert) ClearDomain() *CompanyUpsert {
	u.SetNull(company.FieldDomain)
	return u
}

// SetIndustry sets the "industry" field.
func (u *CompanyUpsert) SetIndustry(v string) *CompanyUpsert {
	u.Set(company.FieldIndustry, v)
	return u
}

// UpdateIndustry sets the "industry" field to the value that was provided on create.
func (u *CompanyUpsert) UpdateIndustry() *CompanyUpsert {
	u.SetExcluded(company.FieldIndustry)
	return u
}

// ClearIndustry clears the value of the "industry" field.
func (u *CompanyUpsert) ClearIndustry() *CompanyUpsert {
	u.SetNull(company.FieldIndustry)
	return u
}

// SetSubIndustry sets the "sub_industry" field.
func (u *CompanyUpsert) SetSubIndustry(v string) *CompanyUpsert {
	u.Set(company.FieldSubIndustry, v)
	return u
}

// UpdateSubIndustry sets the "sub_industry" field to the value that was provided on create.
func (u *CompanyUpsert) UpdateSubIndustry() *CompanyUpsert {
	u.SetExcluded(company.FieldSubIndustry)
	return u
}

// ClearSubIndustry clears the value of the "sub_industry" field.
func (u *CompanyUpsert) ClearSubIndustry() *CompanyUpsert {
	u.SetNull(company.FieldSubIndustry)
	return u
}

// SetDescription sets the "description" field.
func (u *CompanyUpsert) SetDescription(v string) *CompanyUpsert {
	u.Set(company.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *CompanyUpsert) UpdateDescription() *CompanyUpsert {
	u.SetExcluded(company.FieldDescription)
	return u
}

// SetOriginalDescription sets the "original_description" field.
func (u *CompanyUpsert) SetOriginalDescription(v string) *CompanyUpsert {
	u.Set(company.FieldOriginalDescription, v)
	return u
}

// UpdateOriginalDescription sets the "original_description" field to the value that was provided on create.
func (u *CompanyUpsert) UpdateOriginalDescription() *CompanyUpsert {
	u.SetExcluded(company.FieldOriginalDescription)
	return u
}

// ClearOriginalDescription clears the value of the "original_description" field.
func (u *CompanyUpsert) ClearOriginalDescription() *CompanyUpsert {
	u.SetNull(company.FieldOriginalDescription)
	return u
}

// SetFinalDescription sets the "final_description" field.
func (u *CompanyUpsert) SetFinalDescription(v string) *CompanyUpsert {
	u.Set(company.FieldFinalDescription, v)
	return u
}

// UpdateFinalDescription sets the "final_description" field to the value that was provided on create.
func (u *CompanyUpsert) UpdateFinalDescription() *CompanyUpsert {
	u.SetExcluded(company.FieldFinalDescription)
	return u
}

// ClearFinalDescription clears the value of the "final_description" field.
func (u *CompanyUpsert) ClearFinalDescription() *CompanyUpsert {
	u.SetNull(company.FieldFinalDescription)
	return u
}

// SetValuePropositions sets the "value_propositions" field.
func (u *CompanyUpsert) SetValuePropositions(v []string) *CompanyUpsert {
	u.Set(company.FieldValuePropositions, v)
	return u
}

// UpdateValuePropositions sets the "value_propositions" field to the value that was provided on create.
func (u *CompanyUpsert) UpdateValuePropositions() *CompanyUpsert {
	u.SetExcluded(company.FieldValuePropositions)
	return u
}

// ClearValuePropositions clears the value of the "value_propositions" field.
func (u *CompanyUpsert) ClearValuePropositions() *CompanyUpsert {
	u.SetNull(company.FieldValuePropositions)
	return u
}

// SetTargetAudiences sets the "target_audiences" field.
func (u *CompanyUpsert) SetTargetAudiences(v []string) *CompanyUpsert {
	u.Set(company.FieldTargetAudiences, v)
	return u
}

// UpdateTargetAudiences sets the "target_audiences" field to the value that was provided on create.
func (u *CompanyUpsert) UpdateTargetAudiences() *CompanyUpsert {
	u.SetExcluded(company.FieldTargetAudiences)
	return u
}

// ClearTargetAudiences clears the value of the "target_audiences" field.
func (u *CompanyUpsert) ClearTargetAudiences() *CompanyUpsert {
	u.SetNull(company.FieldTargetAudiences)
	return u
}

// SetCompetitors sets the "competitors" field.
func (u *CompanyUpsert) SetCompetitors(v []string) *CompanyUpsert {
	u.Set(company.FieldCompetitors, v)
	return u
}

// UpdateCompetitors sets the "competitors" field to the value that was provided on create.
func (u *CompanyUpsert) UpdateCompetitors() *CompanyUpsert {
	u.SetExcluded(company.FieldCompetitors)
	return u
}

// ClearCompetitors clears the value of the "competitors" field.
func (u *CompanyUpsert) ClearCompetitors() *CompanyUpsert {
	u.SetNull(company.FieldCompetitors)
	return u
}

// SetProducts sets the "products" field.
func (u *CompanyUpsert) SetProducts(v []string) *CompanyUpsert {
	u.Set(company.FieldProducts, v)
	return u
}

// UpdateProducts sets the "products" field to the value that was provided on create.
func (u *CompanyUpsert) UpdateProducts() *CompanyUpsert {
	u.SetExcluded(company.FieldProducts)
	return u
}

// ClearProducts clears the value of the "products" field.
func (u *CompanyUpsert) ClearProducts() *CompanyUpsert {
	u.SetNull(company.FieldProducts)
	return u
}

// SetPainPoints sets the "pain_points" field.
func (u *CompanyUpsert) SetPainPoints(v []string) *CompanyUpsert {
	u.Set(company.FieldPainPoints, v)
	return u
}

// UpdatePainPoints sets the "pain_points" field to the value that was provided on create.
func (u *CompanyUpsert) UpdatePainPoints() *CompanyUpsert {
	u.SetExcluded(company.FieldPainPoints)
	return u
}

// ClearPainPoints clears the value of the "pain_points" field.
func (u *CompanyUpsert) ClearPainPoints() *CompanyUpsert {
	u.SetNull(company.FieldPainPoints)
	return u
}

// SetGeographies sets the "geographies" field.
func (u *CompanyUpsert) SetGeographies(v []string) *CompanyUpsert {
	u.Set(company.FieldGeographies, v)
	return u
}

// UpdateGeographies sets the "geographies" field to the value that was provided on create.
func (u *CompanyUpsert) UpdateGeographies() *CompanyUpsert {
	u.SetExcluded(company.FieldGeographies)
	return u
}

// ClearGeographies clears the value of the "geographies" field.
func (u *CompanyUpsert) ClearGeographies() *CompanyUpsert {
	u.SetNull(company.FieldGeographies)
	return u
}

// SetMetadata sets the "metadata" field.
func (u *CompanyUpsert) SetMetadata(v map[string]interface{}) *CompanyUpsert {
	u.Set(company.FieldMetadata, v)
	return u
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *CompanyUpsert) UpdateMetadata() *CompanyUpsert {
	u.SetExcluded(company.FieldMetadata)
	return u
}

// ClearMetadata clears the value of the "metadata" field.
func (u *CompanyUpsert) ClearMetadata() *CompanyUpsert {
	u.SetNull(company.FieldMetadata)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *CompanyUpsert) SetCreatedAt(v time.Time) *CompanyUpsert {
	u.Set(company.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *CompanyUpsert) UpdateCreatedAt() *CompanyUpsert {
	u.SetExcluded(company.FieldCreatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Company.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(company.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CompanyUpsertOne) UpdateNewValues() *CompanyUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(company.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Company.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *CompanyUpsertOne) Ignore() *CompanyUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CompanyUpsertOne) DoNothing() *CompanyUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CompanyCreate.OnConflict
// documentation for more info.
func (u *CompanyUpsertOne) Update(set func(*CompanyUpsert)) *CompanyUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CompanyUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *CompanyUpsertOne) SetName(v string) *CompanyUpsertOne {
	return u.Update(func(s *CompanyUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *CompanyUpsertOne) UpdateName() *CompanyUpsertOne {
	return u.Update(func(s *CompanyUpsert) {
		s.UpdateName()
	})
}

// SetDomain sets the "domain" field.
func (u *CompanyUpsertOne) SetDomain(v string) *CompanyUpsertOne {
	return u.Update(func(s *CompanyUpsert) {
		s.SetDomain(v)
	})
}

// UpdateDomain sets the "domain" field to the value that was provided on create.
func (u *CompanyUpsertOne) UpdateDomain() *CompanyUpsertOne {
	return u.Update(func(s *CompanyUpsert) {
		s.UpdateDomain()
	})
}

// ClearDomain clears the value of the "domain" field.
func (u *CompanyUpsertOne) ClearDomain() *CompanyUpsertOne {
	return u.Update(func(s *CompanyUpsert) {
		s.ClearDomain()
	})
}

// SetIndustry sets the "industry" field.
func (u *CompanyUpsertOne) SetIndustry(v string) *CompanyUpsertOne {
	return u.Update(func(s *CompanyUpsert) {
		s.SetIndustry(v)
	})
}

// UpdateIndustry sets the "industry" field to the value that was provided on create.
func (u *CompanyUpsertOne) UpdateIndustry() *CompanyUpsertOne {
	return u.Update(func(s *CompanyUpsert) {
		s.UpdateIndustry()
	})
}

// ClearIndustry clears the value of the "industry" field.
func (u *CompanyUpsertOne) ClearIndustry() *CompanyUpsertOne {
	return u.Update(func(s *CompanyUpsert) {
		s.ClearIndustry()
	})
}

// SetSubIndustry sets the "sub_industry" field.
func (u *CompanyUpsertOne) SetSubIndustry(v string) *CompanyUpsertOne {
	return u.Update(func(s *CompanyUpsert) {
		s.SetSubIndustry(v)
	})
}

// UpdateSubIndustry sets the "sub_industry" field to the value that was provided on create.
func (u *CompanyUpsertOne) UpdateSubIndustry() *CompanyUpsertOne {
	return u.Update(func(s *CompanyUpsert) {
		s.UpdateSubIndustry()
	})
}

// ClearSubIndustry clears the value of the "sub_industry" field.
func (u *CompanyUpsertOne) ClearSubIndustry() *CompanyUpsertOne {
	return u.Update(func(s *CompanyUpsert) {
		s.ClearSubIndustry()
	})
}

// SetDescription sets the "description" field.
func (u *CompanyUpsertOne) SetDescription(v string) *CompanyUpsertOne {
	return u.Update(func(s *CompanyUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *CompanyUpsertOne) UpdateDescription() *CompanyUpsertOne {
	return u.Update(func(s *CompanyUpsert) {
		s.UpdateDescription()
	})
}

// SetOriginalDescription sets the "original_description" field.
func (u *CompanyUpsertOne) SetOriginalDescription(v string) *CompanyUpsertOne {
	return u.Update(func(s *CompanyUpsert) {
		s.SetOriginalDescription(v)
	})
}

// UpdateOriginalDescription sets the "original_description" field to the value that was provided on create.
func (u *CompanyUpsertOne) UpdateOriginalDescription() *CompanyUpsertOne {
	return u.Update(func(s *CompanyUpsert) {
		s.UpdateOriginalDescription()
	})
}

// ClearOriginalDescription clears the value of the "original_description" field.
func (u *CompanyUpsertOne) ClearOriginalDescription() *CompanyUpsertOne {
	return u.Update(func(s *CompanyUpsert) {
		s.ClearOriginalDescription()
	})
}

// SetFinalDescription sets the "final_description" field.
func (u *CompanyUpsertOne) SetFinalDescription(v string) *CompanyUpsertOne {
	return u.Update(func(s *CompanyUpsert) {
		s.SetFinalDescription(v)
	})
}

// UpdateFinalDescription sets the "final_description" field to the value that was provided on create.
func (u *CompanyUpsertOne) UpdateFinalDescription() *CompanyUpsertOne {
	return u.Update(func(s *CompanyUpsert) {
		s.UpdateFinalDescription()
	})
}

// ClearFinalDescription clears the value of the "final_description" field.
func (u *CompanyUpsertOne) ClearFinalDescription() *CompanyUpsertOne {
	return u.Update(func(s *CompanyUpsert) {
		s.ClearFinalDescription()
	})
}

// SetValuePropositions sets the "value_propositions" field.
func (u *CompanyUpsertOne) SetValuePropositions(v []string) *CompanyUpsertOne {
	return u.Update(func(s *CompanyUpsert) {
		s.SetValuePropositions(v)
	})
}

// UpdateValuePropositions sets the "value_propositions" field to the value that was provided on create.
func (u *CompanyUpsertOne) UpdateValuePropositions() *CompanyUpsertOne {
	return u.Update(func(s *CompanyUpsert) {
		s.UpdateValuePropositions()
	})
}

// ClearValuePropositions clears the value of the "value_propositions" field.
func (u *CompanyUpsertOne) ClearValuePropositions() *CompanyUpsertOne {
	return u.Update(func(s *CompanyUpsert) {
		s.ClearValuePropositions()
	})
}

// SetTargetAudiences sets the "target_audiences" field.
func (u *CompanyUpsertOne) SetTargetAudiences(v []string) *CompanyUpsertOne {
	return u.Update(func(s *CompanyUpsert) {
		s.SetTargetAudiences(v)
	})
}

// UpdateTargetAudiences sets the "target_audiences" field to the value that was provided on create.
func (u *CompanyUpsertOne) UpdateTargetAudiences() *CompanyUpsertOne {
	return u.Update(func(s *CompanyUpsert) {
		s.UpdateTargetAudiences()
	})
}

// ClearTargetAudiences clears the value of the "target_audiences" field.
func (u *CompanyUpsertOne) ClearTargetAudiences() *CompanyUpsertOne {
	return u.Update(func(s *CompanyUpsert) {
		s.ClearTargetAudiences()
	})
}

// SetCompetitors sets the "competitors" field.
func (u *CompanyUpsertOne) SetCompetitors(v []string) *CompanyUpsertOne {
	return u.Update(func(s *CompanyUpsert) {
		s.SetCompetitors(v)
	})
}

// UpdateCompetitors sets the "competitors" field to the value that was provided on create.
func (u *CompanyUpsertOne) UpdateCompetitors() *CompanyUpsertOne {
	return u.Update(func(s *CompanyUpsert) {
		s.UpdateCompetitors()
	})
}

// ClearCompetitors clears the value of the "competitors" field.
func (u *CompanyUpsertOne) ClearCompetitors() *CompanyUpsertOne {
	return u.Update(func(s *CompanyUpsert) {
		s.ClearCompetitors()
	})
}

// SetProducts sets the "products" field.
func (u *CompanyUpsertOne) SetProducts(v []string) *CompanyUpsertOne {
	return u.Update(func(s *CompanyUpsert) {
		s.SetProducts(v)
	})
}

// UpdateProducts sets the "products" field to the value that was provided on create.
func (u *CompanyUpsertOne) UpdateProducts() *CompanyUpsertOne {
	return u.Update(func(s *CompanyUpsert) {
		s.UpdateProducts()
	})
}

// ClearProducts clears the value of the "products" field.
func (u *CompanyUpsertOne) ClearProducts() *CompanyUpsertOne {
	return u.Update(func(s *CompanyUpsert) {
		s.ClearProducts()
	})
}

// SetPainPoints sets the "pain_points" field.
func (u *CompanyUpsertOne) SetPainPoints(v []string) *CompanyUpsertOne {
	return u.Update(func(s *CompanyUpsert) {
		s.SetPainPoints(v)
	})
}

// UpdatePainPoints sets the "pain_points" field to the value that was provided on create.
func (u *CompanyUpsertOne) UpdatePainPoints() *CompanyUpsertOne {
	return u.Update(func(s *CompanyUpsert) {
		s.UpdatePainPoints()
	})
}

// ClearPainPoints clears the value of the "pain_points" field.
func (u *CompanyUpsertOne) ClearPainPoints() *CompanyUpsertOne {
	return u.Update(func(s *CompanyUpsert) {
		s.ClearPainPoints()
	})
}

// SetGeographies sets the "geographies" field.
func (u *CompanyUpsertOne) SetGeographies(v []string) *CompanyUpsertOne {
	return u.Update(func(s *CompanyUpsert) {
		s.SetGeographies(v)
	})
}

// UpdateGeographies sets the "geographies" field to the value that was provided on create.
func (u *CompanyUpsertOne) UpdateGeographies() *CompanyUpsertOne {
	return u.Update(func(s *CompanyUpsert) {
		s.UpdateGeographies()
	})
}

// ClearGeographies clears the value of the "geographies" field.
func (u *CompanyUpsertOne) ClearGeographies() *CompanyUpsertOne {
	return u.Update(func(s *CompanyUpsert) {
		s.ClearGeographies()
	})
}

// SetMetadata sets the "metadata" field.
func (u *CompanyUpsertOne) SetMetadata(v map[string]interface{}) *CompanyUpsertOne {
	return u.Update(func(s *CompanyUpsert) {
		s.SetMetadata(v)
	})
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *CompanyUpsertOne) UpdateMetadata() *CompanyUpsertOne {
	return u.Update(func(s *CompanyUpsert) {
		s.UpdateMetadata()
	})
}

// ClearMetadata clears the value of the "metadata" field.
func (u *CompanyUpsertOne) ClearMetadata() *CompanyUpsertOne {
	return u.Update(func(s *CompanyUpsert) {
		s.ClearMetadata()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *CompanyUpsertOne) SetCreatedAt(v time.Time) *CompanyUpsertOne {
	return u.Update(func(s *CompanyUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *CompanyUpsertOne) UpdateCreatedAt() *CompanyUpsertOne {
	return u.Update(func(s *CompanyUpsert) {
		s.UpdateCreatedAt()
	})
}

// Exec executes the query.
func (u *CompanyUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CompanyCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CompanyUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *CompanyUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: CompanyUpsertOne.ID is not supported by MySQL driver. Use CompanyUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *CompanyUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CompanyCreateBulk is the builder for creating many Company entities in bulk.
type CompanyCreateBulk struct {
	config
	err      error
	builders []*CompanyCreate
	conflict []sql.ConflictOption
}

// Save creates the Company entities in the database.
func (_c *CompanyCreateBulk) Save(ctx context.Context) ([]*Company, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Company, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CompanyMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *CompanyCreateBulk) SaveX(ctx context.Context) []*Company {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CompanyCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CompanyCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Company.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CompanyUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *CompanyCreateBulk) OnConflict(opts ...sql.ConflictOption) *CompanyUpsertBulk {
	_c.conflict = opts
	return &CompanyUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Company.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CompanyCreateBulk) OnConflictColumns(columns ...string) *CompanyUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CompanyUpsertBulk{
		create: _c,
	}
}

// CompanyUpsertBulk is the builder for "upsert"-ing
// a bulk of Company nodes.
type CompanyUpsertBulk struct {
	create *CompanyCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Company.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(company.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CompanyUpsertBulk) UpdateNewValues() *CompanyUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(company.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Company.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *CompanyUpsertBulk) Ignore() *CompanyUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CompanyUpsertBulk) DoNothing() *CompanyUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CompanyCreateBulk.OnConflict
// documentation for more info.
func (u *CompanyUpsertBulk) Update(set func(*CompanyUpsert)) *CompanyUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CompanyUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *CompanyUpsertBulk) SetName(v string) *CompanyUpsertBulk {
	return u.Update(func(s *CompanyUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *CompanyUpsertBulk) UpdateName() *CompanyUpsertBulk {
	return u.Update(func(s *CompanyUpsert) {
		s.UpdateName()
	})
}

// SetDomain sets the "domain" field.
func (u *CompanyUpsertBulk) SetDomain(v string) *CompanyUpsertBulk {
	return u.Update(func(s *CompanyUpsert) {
		s.SetDomain(v)
	})
}

// UpdateDomain sets the "domain" field to the value that was provided on create.
func (u *CompanyUpsertBulk) UpdateDomain() *CompanyUpsertBulk {
	return u.Update(func(s *CompanyUpsert) {
		s.UpdateDomain()
	})
}

// ClearDomain clears the value of the "domain" field.
func (u *CompanyUpsertBulk) ClearDomain() *CompanyUpsertBulk {
	return u.Update(func(s *CompanyUpsert) {
		s.ClearDomain()
	})
}

// SetIndustry sets the "industry" field.
func (u *CompanyUpsertBulk) SetIndustry(v string) *CompanyUpsertBulk {
	return u.Update(func(s *CompanyUpsert) {
		s.SetIndustry(v)
	})
}

// UpdateIndustry sets the "industry" field to the value that was provided on create.
func (u *CompanyUpsertBulk) UpdateIndustry() *CompanyUpsertBulk {
	return u.Update(func(s *CompanyUpsert) {
		s.UpdateIndustry()
	})
}

// ClearIndustry clears the value of the "industry" field.
func (u *CompanyUpsertBulk) ClearIndustry() *CompanyUpsertBulk {
	return u.Update(func(s *CompanyUpsert) {
		s.ClearIndustry()
	})
}

// SetSubIndustry sets the "sub_industry" field.
func (u *CompanyUpsertBulk) SetSubIndustry(v string) *CompanyUpsertBulk {
	return u.Update(func(s *CompanyUpsert) {
		s.SetSubIndustry(v)
	})
}

// UpdateSubIndustry sets the "sub_industry" field to the value that was provided on create.
func (u *CompanyUpsertBulk) UpdateSubIndustry() *CompanyUpsertBulk {
	return u.Update(func(s *CompanyUpsert) {
		s.UpdateSubIndustry()
	})
}

// ClearSubIndustry clears the value of the "sub_industry" field.
func (u *CompanyUpsertBulk) ClearSubIndustry() *CompanyUpsertBulk {
	return u.Update(func(s *CompanyUpsert) {
		s.ClearSubIndustry()
	})
}

// SetDescription sets the "description" field.
func (u *CompanyUpsertBulk) SetDescription(v string) *CompanyUpsertBulk {
	return u.Update(func(s *CompanyUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *CompanyUpsertBulk) UpdateDescription() *CompanyUpsertBulk {
	return u.Update(func(s *CompanyUpsert) {
		s.UpdateDescription()
	})
}

// SetOriginalDescription sets the "original_description" field.
func (u *CompanyUpsertBulk) SetOriginalDescription(v string) *CompanyUpsertBulk {
	return u.Update(func(s *CompanyUpsert) {
		s.SetOriginalDescription(v)
	})
}

// UpdateOriginalDescription sets the "original_description" field to the value that was provided on create.
func (u *CompanyUpsertBulk) UpdateOriginalDescription() *CompanyUpsertBulk {
	return u.Update(func(s *CompanyUpsert) {
		s.UpdateOriginalDescription()
	})
}

// ClearOriginalDescription clears the value of the "original_description" field.
func (u *CompanyUpsertBulk) ClearOriginalDescription() *CompanyUpsertBulk {
	return u.Update(func(s *CompanyUpsert) {
		s.ClearOriginalDescription()
	})
}

// SetFinalDescription sets the "final_description" field.
func (u *CompanyUpsertBulk) SetFinalDescription(v string) *CompanyUpsertBulk {
	return u.Update(func(s *CompanyUpsert) {
		s.SetFinalDescription(v)
	})
}

// UpdateFinalDescription sets the "final_description" field to the value that was provided on create.
func (u *CompanyUpsertBulk) UpdateFinalDescription() *CompanyUpsertBulk {
	return u.Update(func(s *CompanyUpsert) {
		s.UpdateFinalDescription()
	})
}

// ClearFinalDescription clears the value of the "final_description" field.
func (u *CompanyUpsertBulk) ClearFinalDescription() *CompanyUpsertBulk {
	return u.Update(func(s *CompanyUpsert) {
		s.ClearFinalDescription()
	})
}

// SetValuePropositions sets the "value_propositions" field.
func (u *CompanyUpsertBulk) SetValuePropositions(v []string) *CompanyUpsertBulk {
	return u.Update(func(s *CompanyUpsert) {
		s.SetValuePropositions(v)
	})
}

// UpdateValuePropositions sets the "value_propositions" field to the value that was provided on create.
func (u *CompanyUpsertBulk) UpdateValuePropositions() *CompanyUpsertBulk {
	return u.Update(func(s *CompanyUpsert) {
		s.UpdateValuePropositions()
	})
}

// ClearValuePropositions clears the value of the "value_propositions" field.
func (u *CompanyUpsertBulk) ClearValuePropositions() *CompanyUpsertBulk {
	return u.Update(func(s *CompanyUpsert) {
		s.ClearValuePropositions()
	})
}

// SetTargetAudiences sets the "target_audiences" field.
func (u *CompanyUpsertBulk) SetTargetAudiences(v []string) *CompanyUpsertBulk {
	return u.Update(func(s *CompanyUpsert) {
		s.SetTargetAudiences(v)
	})
}

// UpdateTargetAudiences sets the "target_audiences" field to the value that was provided on create.
func (u *CompanyUpsertBulk) UpdateTargetAudiences() *CompanyUpsertBulk {
	return u.Update(func(s *CompanyUpsert) {
		s.UpdateTargetAudiences()
	})
}

// ClearTargetAudiences clears the value of the "target_audiences" field.
func (u *CompanyUpsertBulk) ClearTargetAudiences() *CompanyUpsertBulk {
	return u.Update(func(s *CompanyUpsert) {
		s.ClearTargetAudiences()
	})
}

// SetCompetitors sets the "competitors" field.
func (u *CompanyUpsertBulk) SetCompetitors(v []string) *CompanyUpsertBulk {
	return u.Update(func(s *CompanyUpsert) {
		s.SetCompetitors(v)
	})
}

// UpdateCompetitors sets the "competitors" field to the value that was provided on create.
func (u *CompanyUpsertBulk) UpdateCompetitors() *CompanyUpsertBulk {
	return u.Update(func(s *CompanyUpsert) {
		s.UpdateCompetitors()
	})
}

// ClearCompetitors clears the value of the "competitors" field.
func (u *CompanyUpsertBulk) ClearCompetitors() *CompanyUpsertBulk {
	return u.Update(func(s *CompanyUpsert) {
		s.ClearCompetitors()
	})
}

// SetProducts sets the "products" field.
func (u *CompanyUpsertBulk) SetProducts(v []string) *CompanyUpsertBulk {
	return u.Update(func(s *CompanyUpsert) {
		s.SetProducts(v)
	})
}

// UpdateProducts sets the "products" field to the value that was provided on create.
func (u *CompanyUpsertBulk) UpdateProducts() *CompanyUpsertBulk {
	return u.Update(func(s *CompanyUpsert) {
		s.UpdateProducts()
	})
}

// ClearProducts clears the value of the "products" field.
func (u *CompanyUpsertBulk) ClearProducts() *CompanyUpsertBulk {
	return u.Update(func(s *CompanyUpsert) {
		s.ClearProducts()
	})
}

// SetPainPoints sets the "pain_points" field.
func (u *CompanyUpsertBulk) SetPainPoints(v []string) *CompanyUpsertBulk {
	return u.Update(func(s *CompanyUpsert) {
		s.SetPainPoints(v)
	})
}

// UpdatePainPoints sets the "pain_points" field to the value that was provided on create.
func (u *CompanyUpsertBulk) UpdatePainPoints() *CompanyUpsertBulk {
	return u.Update(func(s *CompanyUpsert) {
		s.UpdatePainPoints()
	})
}

// ClearPainPoints clears the value of the "pain_points" field.
func (u *CompanyUpsertBulk) ClearPainPoints() *CompanyUpsertBulk {
	return u.Update(func(s *CompanyUpsert) {
		s.ClearPainPoints()
	})
}

// SetGeographies sets the "geographies" field.
func (u *CompanyUpsertBulk) SetGeographies(v []string) *CompanyUpsertBulk {
	return u.Update(func(s *CompanyUpsert) {
		s.SetGeographies(v)
	})
}

// UpdateGeographies sets the "geographies" field to the value that was provided on create.
func (u *CompanyUpsertBulk) UpdateGeographies() *CompanyUpsertBulk {
	return u.Update(func(s *CompanyUpsert) {
		s.UpdateGeographies()
	})
}

// ClearGeographies clears the value of the "geographies" field.
func (u *CompanyUpsertBulk) ClearGeographies() *CompanyUpsertBulk {
	return u.Update(func(s *CompanyUpsert) {
		s.ClearGeographies()
	})
}

// SetMetadata sets the "metadata" field.
func (u *CompanyUpsertBulk) SetMetadata(v map[string]interface{}) *CompanyUpsertBulk {
	return u.Update(func(s *CompanyUpsert) {
		s.SetMetadata(v)
	})
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *CompanyUpsertBulk) UpdateMetadata() *CompanyUpsertBulk {
	return u.Update(func(s *CompanyUpsert) {
		s.UpdateMetadata()
	})
}

// ClearMetadata clears the value of the "metadata" field.
func (u *CompanyUpsertBulk) ClearMetadata() *CompanyUpsertBulk {
	return u.Update(func(s *CompanyUpsert) {
		s.ClearMetadata()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *CompanyUpsertBulk) SetCreatedAt(v time.Time) *CompanyUpsertBulk {
	return u.Update(func(s *CompanyUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *CompanyUpsertBulk) UpdateCreatedAt() *CompanyUpsertBulk {
	return u.Update(func(s *CompanyUpsert) {
		s.UpdateCreatedAt()
	})
}

// Exec executes the query.
func (u *CompanyUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the CompanyCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CompanyCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CompanyUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
