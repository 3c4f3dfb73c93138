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
	"github.com/specularhq/specular/ent/auditdashboard"
	"github.com/specularhq/specular/ent/schema"
)

// AuditDashboardCreate is the builder for creating a AuditDashboard entity.
type AuditDashboardCreate struct {
	config
	mutation *AuditDashboardMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetAuditID sets the "audit_id" field.
func (_c *AuditDashboardCreate) SetAuditID(v string) *AuditDashboardCreate {
	_c.mutation.SetAuditID(v)
	return _c
}

// SetScores sets the "scores" field.
func (_c *AuditDashboardCreate) SetScores(v schema.DashboardScores) *AuditDashboardCreate {
	_c.mutation.SetScores(v)
	return _c
}

// SetRecommendations sets the "recommendations" field.
func (_c *AuditDashboardCreate) SetRecommendations(v []schema.RankedRecommendation) *AuditDashboardCreate {
	_c.mutation.SetRecommendations(v)
	return _c
}

// SetCompetitorLandscape sets the "competitor_landscape" field.
func (_c *AuditDashboardCreate) SetCompetitorLandscape(v schema.CompetitorLandscape) *AuditDashboardCreate {
	_c.mutation.SetCompetitorLandscape(v)
	return _c
}

// SetNillableCompetitorLandscape sets the "competitor_landscape" field if the given value is not nil.
func (_c *AuditDashboardCreate) SetNillableCompetitorLandscape(v *schema.CompetitorLandscape) *AuditDashboardCreate {
	if v != nil {
		_c.SetCompetitorLandscape(*v)
	}
	return _c
}

// SetCategoryInsights sets the "category_insights" field.
func (_c *AuditDashboardCreate) SetCategoryInsights(v []schema.CategoryInsight) *AuditDashboardCreate {
	_c.mutation.SetCategoryInsights(v)
	return _c
}

// SetExecutiveSummary sets the "executive_summary" field.
func (_c *AuditDashboardCreate) SetExecutiveSummary(v string) *AuditDashboardCreate {
	_c.mutation.SetExecutiveSummary(v)
	return _c
}

// SetNillableExecutiveSummary sets the "executive_summary" field if the given value is not nil.
func (_c *AuditDashboardCreate) SetNillableExecutiveSummary(v *string) *AuditDashboardCreate {
	if v != nil {
		_c.SetExecutiveSummary(*v)
	}
	return _c
}

// SetGeneratedAt sets the "generated_at" field.
func (_c *AuditDashboardCreate) SetGeneratedAt(v time.Time) *AuditDashboardCreate {
	_c.mutation.SetGeneratedAt(v)
	return _c
}

// SetNillableGeneratedAt sets the "generated_at" field if the given value is not nil.
func (_c *AuditDashboardCreate) SetNillableGeneratedAt(v *time.Time) *AuditDashboardCreate {
	if v != nil {
		_c.SetGeneratedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AuditDashboardCreate) SetID(v string) *AuditDashboardCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetAudit sets the "audit" edge to the Audit entity.
func (_c *AuditDashboardCreate) SetAudit(v *Audit) *AuditDashboardCreate {
	return _c.SetAuditID(v.ID)
}

// Mutation returns the AuditDashboardMutation object of the builder.
func (_c *AuditDashboardCreate) Mutation() *AuditDashboardMutation {
	return _c.mutation
}

// Save creates the AuditDashboard in the database.
func (_c *AuditDashboardCreate) Save(ctx context.Context) (*AuditDashboard, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AuditDashboardCreate) SaveX(ctx context.Context) *AuditDashboard {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AuditDashboardCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AuditDashboardCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AuditDashboardCreate) defaults() {
	if _, ok := _c.mutation.ExecutiveSummary(); !ok {
		v := auditdashboard.DefaultExecutiveSummary
		_c.mutation.SetExecutiveSummary(v)
	}
	if _, ok := _c.mutation.GeneratedAt(); !ok {
		v := auditdashboard.DefaultGeneratedAt()
		_c.mutation.SetGeneratedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AuditDashboardCreate) check() error {
	if _, ok := _c.mutation.AuditID(); !ok {
		return &ValidationError{Name: "audit_id", err: errors.New(`ent: missing required field "AuditDashboard.audit_id"`)}
	}
	if _, ok := _c.mutation.Scores(); !ok {
		return &ValidationError{Name: "scores", err: errors.New(`ent: missing required field "AuditDashboard.scores"`)}
	}
	if _, ok := _c.mutation.GeneratedAt(); !ok {
		return &ValidationError{Name: "generated_at", err: errors.New(`ent: missing required field "AuditDashboard.generated_at"`)}
	}
	if len(_c.mutation.AuditIDs()) == 0 {
		return &ValidationError{Name: "audit", err: errors.New(`ent: missing required edge "AuditDashboard.audit"`)}
	}
	return nil
}

func (_c *AuditDashboardCreate) sqlSave(ctx context.Context) (*AuditDashboard, error) {
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
			return nil, fmt.Errorf("unexpected AuditDashboard.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AuditDashboardCreate) createSpec() (*AuditDashboard, *sqlgraph.CreateSpec) {
	var (
		_node = &AuditDashboard{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(auditdashboard.Table, sqlgraph.NewFieldSpec(auditdashboard.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Scores(); ok {
		_spec.SetField(auditdashboard.FieldScores, field.TypeJSON, value)
		_node.Scores = value
	}
	if value, ok := _c.mutation.Recommendations(); ok {
		_spec.SetField(auditdashboard.FieldRecommendations, field.TypeJSON, value)
		_node.Recommendations = value
	}
	if value, ok := _c.mutation.CompetitorLandscape(); ok {
		_spec.SetField(auditdashboard.FieldCompetitorLandscape, field.TypeJSON, value)
		_node.CompetitorLandscape = value
	}
	if value, ok := _c.mutation.CategoryInsights(); ok {
		_spec.SetField(auditdashboard.FieldCategoryInsights, field.TypeJSON, value)
		_node.CategoryInsights = value
	}
	if value, ok := _c.mutation.ExecutiveSummary(); ok {
		_spec.SetField(auditdashboard.FieldExecutiveSummary, field.TypeString, value)
		_node.ExecutiveSummary = value
	}
	if value, ok := _c.mutation.GeneratedAt(); ok {
		_spec.SetField(auditdashboard.FieldGeneratedAt, field.TypeTime, value)
		_node.GeneratedAt = value
	}
	if nodes := _c.mutation.AuditIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   auditdashboard.AuditTable,
			Columns: []string{auditdashboard.AuditColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(audit.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.AuditID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AuditDashboard.Create().
//		SetAuditID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AuditDashboardUpsert) {
//			SetAuditID(v+v).
//		}).
//		Exec(ctx)
func (_c *AuditDashboardCreate) OnConflict(opts ...sql.ConflictOption) *AuditDashboardUpsertOne {
	_c.conflict = opts
	return &AuditDashboardUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AuditDashboard.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AuditDashboardCreate) OnConflictColumns(columns ...string) *AuditDashboardUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AuditDashboardUpsertOne{
		create: _c,
	}
}

type (
	// AuditDashboardUpsertOne is the builder for "upsert"-ing
	//  one AuditDashboard node.
	AuditDashboardUpsertOne struct {
		create *AuditDashboardCreate
	}

	// AuditDashboardUpsert is the "OnConflict" setter.
	AuditDashboardUpsert struct {
		*sql.UpdateSet
	}
)

// SetScores sets the "scores" field.
func (u *AuditDashboardUpsert) SetScores(v schema.DashboardScores) *AuditDashboardUpsert {
	u.Set(auditdashboard.FieldScores, v)
	return u
}

// UpdateScores sets the "scores" field to the value that was provided on create.
func (u *AuditDashboardUpsert) UpdateScores() *AuditDashboardUpsert {
	u.SetExcluded(auditdashboard.FieldScores)
	return u
}

// SetRecommendations sets the "recommendations" field.
func (u *AuditDashboardUpsert) SetRecommendations(v []schema.RankedRecommendation) *AuditDashboardUpsert {
	u.Set(auditdashboard.FieldRecommendations, v)
	return u
}

// UpdateRecommendations sets the "recommendations" field to the value that was provided on create.
func (u *AuditDashboardUpsert) UpdateRecommendations() *AuditDashboardUpsert {
	u.SetExcluded(auditdashboard.FieldRecommendations)
	return u
}

// ClearRecommendations clears the value of the "recommendations" field.
func (u *AuditDashboardUpsert) ClearRecommendations() *AuditDashboardUpsert {
	u.SetNull(auditdashboard.FieldRecommendations)
	return u
}

// SetCompetitorLandscape sets the "competitor_landscape" field.
func (u *AuditDashboardUpsert) SetCompetitorLandscape(v schema.CompetitorLandscape) *AuditDashboardUpsert {
	u.Set(auditdashboard.FieldCompetitorLandscape, v)
	return u
}

// UpdateCompetitorLandscape sets the "competitor_landscape" field to the value that was provided on create.
func (u *AuditDashboardUpsert) UpdateCompetitorLandscape() *AuditDashboardUpsert {
	u.SetExcluded(auditdashboard.FieldCompetitorLandscape)
	return u
}

// ClearCompetitorLandscape clears the value of the "competitor_landscape" field.
func (u *AuditDashboardUpsert) ClearCompetitorLandscape() *AuditDashboardUpsert {
	u.SetNull(auditdashboard.FieldCompetitorLandscape)
	return u
}

// SetCategoryInsights sets the "category_insights" field.
func (u *AuditDashboardUpsert) SetCategoryInsights(v []schema.CategoryInsight) *AuditDashboardUpsert {
	u.Set(auditdashboard.FieldCategoryInsights, v)
	return u
}

// UpdateCategoryInsights sets the "category_insights" field to the value that was provided on create.
func (u *AuditDashboardUpsert) UpdateCategoryInsights() *AuditDashboardUpsert {
	u.SetExcluded(auditdashboard.FieldCategoryInsights)
	return u
}

// ClearCategoryInsights clears the value of the "category_insights" field.
func (u *AuditDashboardUpsert) ClearCategoryInsights() *AuditDashboardUpsert {
	u.SetNull(auditdashboard.FieldCategoryInsights)
	return u
}

// SetExecutiveSummary sets the "executive_summary" field.
func (u *AuditDashboardUpsert) SetExecutiveSummary(v string) *AuditDashboardUpsert {
	u.Set(auditdashboard.FieldExecutiveSummary, v)
	return u
}

// UpdateExecutiveSummary sets the "executive_summary" field to the value that was provided on create.
func (u *AuditDashboardUpsert) UpdateExecutiveSummary() *AuditDashboardUpsert {
	u.SetExcluded(auditdashboard.FieldExecutiveSummary)
	return u
}

// ClearExecutiveSummary clears the value of the "executive_summary" field.
func (u *AuditDashboardUpsert) ClearExecutiveSummary() *AuditDashboardUpsert {
	u.SetNull(auditdashboard.FieldExecutiveSummary)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.AuditDashboard.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(auditdashboard.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AuditDashboardUpsertOne) UpdateNewValues() *AuditDashboardUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(auditdashboard.FieldID)
		}
		if _, exists := u.create.mutation.AuditID(); exists {
			s.SetIgnore(auditdashboard.FieldAuditID)
		}
		if _, exists := u.create.mutation.GeneratedAt(); exists {
			s.SetIgnore(auditdashboard.FieldGeneratedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AuditDashboard.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AuditDashboardUpsertOne) Ignore() *AuditDashboardUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AuditDashboardUpsertOne) DoNothing() *AuditDashboardUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AuditDashboardCreate.OnConflict
// documentation for more info.
func (u *AuditDashboardUpsertOne) Update(set func(*AuditDashboardUpsert)) *AuditDashboardUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AuditDashboardUpsert{UpdateSet: update})
	}))
	return u
}

// SetScores sets the "scores" field.
func (u *AuditDashboardUpsertOne) SetScores(v schema.DashboardScores) *AuditDashboardUpsertOne {
	return u.Update(func(s *AuditDashboardUpsert) {
		s.SetScores(v)
	})
}

// UpdateScores sets the "scores" field to the value that was provided on create.
func (u *AuditDashboardUpsertOne) UpdateScores() *AuditDashboardUpsertOne {
	return u.Update(func(s *AuditDashboardUpsert) {
		s.UpdateScores()
	})
}

// SetRecommendations sets the "recommendations" field.
func (u *AuditDashboardUpsertOne) SetRecommendations(v []schema.RankedRecommendation) *AuditDashboardUpsertOne {
	return u.Update(func(s *AuditDashboardUpsert) {
		s.SetRecommendations(v)
	})
}

// UpdateRecommendations sets the "recommendations" field to the value that was provided on create.
func (u *AuditDashboardUpsertOne) UpdateRecommendations() *AuditDashboardUpsertOne {
	return u.Update(func(s *AuditDashboardUpsert) {
		s.UpdateRecommendations()
	})
}

// ClearRecommendations clears the value of the "recommendations" field.
func (u *AuditDashboardUpsertOne) ClearRecommendations() *AuditDashboardUpsertOne {
	return u.Update(func(s *AuditDashboardUpsert) {
		s.ClearRecommendations()
	})
}

// SetCompetitorLandscape sets the "competitor_landscape" field.
func (u *AuditDashboardUpsertOne) SetCompetitorLandscape(v schema.CompetitorLandscape) *AuditDashboardUpsertOne {
	return u.Update(func(s *AuditDashboardUpsert) {
		s.SetCompetitorLandscape(v)
	})
}

// UpdateCompetitorLandscape sets the "competitor_landscape" field to the value that was provided on create.
func (u *AuditDashboardUpsertOne) UpdateCompetitorLandscape() *AuditDashboardUpsertOne {
	return u.Update(func(s *AuditDashboardUpsert) {
		s.UpdateCompetitorLandscape()
	})
}

// ClearCompetitorLandscape clears the value of the "competitor_landscape" field.
func (u *AuditDashboardUpsertOne) ClearCompetitorLandscape() *AuditDashboardUpsertOne {
	return u.Update(func(s *AuditDashboardUpsert) {
		s.ClearCompetitorLandscape()
	})
}

// SetCategoryInsights sets the "category_insights" field.
func (u *AuditDashboardUpsertOne) SetCategoryInsights(v []schema.CategoryInsight) *AuditDashboardUpsertOne {
	return u.Update(func(s *AuditDashboardUpsert) {
		s.SetCategoryInsights(v)
	})
}

// UpdateCategoryInsights sets the "category_insights" field to the value that was provided on create.
func (u *AuditDashboardUpsertOne) UpdateCategoryInsights() *AuditDashboardUpsertOne {
	return u.Update(func(s *AuditDashboardUpsert) {
		s.UpdateCategoryInsights()
	})
}

// ClearCategoryInsights clears the value of the "category_insights" field.
func (u *AuditDashboardUpsertOne) ClearCategoryInsights() *AuditDashboardUpsertOne {
	return u.Update(func(s *AuditDashboardUpsert) {
		s.ClearCategoryInsights()
	})
}

// SetExecutiveSummary sets the "executive_summary" field.
func (u *AuditDashboardUpsertOne) SetExecutiveSummary(v string) *AuditDashboardUpsertOne {
	return u.Update(func(s *AuditDashboardUpsert) {
		s.SetExecutiveSummary(v)
	})
}

// UpdateExecutiveSummary sets the "executive_summary" field to the value that was provided on create.
func (u *AuditDashboardUpsertOne) UpdateExecutiveSummary() *AuditDashboardUpsertOne {
	return u.Update(func(s *AuditDashboardUpsert) {
		s.UpdateExecutiveSummary()
	})
}

// ClearExecutiveSummary clears the value of the "executive_summary" field.
func (u *AuditDashboardUpsertOne) ClearExecutiveSummary() *AuditDashboardUpsertOne {
	return u.Update(func(s *AuditDashboardUpsert) {
		s.ClearExecutiveSummary()
	})
}

// Exec executes the query.
func (u *AuditDashboardUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AuditDashboardCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AuditDashboardUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AuditDashboardUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: AuditDashboardUpsertOne.ID is not supported by MySQL driver. Use AuditDashboardUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AuditDashboardUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AuditDashboardCreateBulk is the builder for creating many AuditDashboard entities in bulk.
type AuditDashboardCreateBulk struct {
	config
	err      error
	builders []*AuditDashboardCreate
	conflict []sql.ConflictOption
}

// Save creates the AuditDashboard entities in the database.
func (_c *AuditDashboardCreateBulk) Save(ctx context.Context) ([]*AuditDashboard, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AuditDashboard, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AuditDashboardMutation)
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
func (_c *AuditDashboardCreateBulk) SaveX(ctx context.Context) []*AuditDashboard {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AuditDashboardCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AuditDashboardCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AuditDashboard.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AuditDashboardUpsert) {
//			SetAuditID(v+v).
//		}).
//		Exec(ctx)
func (_c *AuditDashboardCreateBulk) OnConflict(opts ...sql.ConflictOption) *AuditDashboardUpsertBulk {
	_c.conflict = opts
	return &AuditDashboardUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AuditDashboard.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AuditDashboardCreateBulk) OnConflictColumns(columns ...string) *AuditDashboardUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AuditDashboardUpsertBulk{
		create: _c,
	}
}

// AuditDashboardUpsertBulk is the builder for "upsert"-ing
// a bulk of AuditDashboard nodes.
type AuditDashboardUpsertBulk struct {
	create *AuditDashboardCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.AuditDashboard.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(auditdashboard.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AuditDashboardUpsertBulk) UpdateNewValues() *AuditDashboardUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(auditdashboard.FieldID)
			}
			if _, exists := b.mutation.AuditID(); exists {
				s.SetIgnore(auditdashboard.FieldAuditID)
			}
			if _, exists := b.mutation.GeneratedAt(); exists {
				s.SetIgnore(auditdashboard.FieldGeneratedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AuditDashboard.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AuditDashboardUpsertBulk) Ignore() *AuditDashboardUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AuditDashboardUpsertBulk) DoNothing() *AuditDashboardUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AuditDashboardCreateBulk.OnConflict
// documentation for more info.
func (u *AuditDashboardUpsertBulk) Update(set func(*AuditDashboardUpsert)) *AuditDashboardUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AuditDashboardUpsert{UpdateSet: update})
	}))
	return u
}

// SetScores sets the "scores" field.
func (u *AuditDashboardUpsertBulk) SetScores(v schema.DashboardScores) *AuditDashboardUpsertBulk {
	return u.Update(func(s *AuditDashboardUpsert) {
		s.SetScores(v)
	})
}

// UpdateScores sets the "scores" field to the value that was provided on create.
func (u *AuditDashboardUpsertBulk) UpdateScores() *AuditDashboardUpsertBulk {
	return u.Update(func(s *AuditDashboardUpsert) {
		s.UpdateScores()
	})
}

// SetRecommendations sets the "recommendations" field.
func (u *AuditDashboardUpsertBulk) SetRecommendations(v []schema.RankedRecommendation) *AuditDashboardUpsertBulk {
	return u.Update(func(s *AuditDashboardUpsert) {
		s.SetRecommendations(v)
	})
}

// UpdateRecommendations sets the "recommendations" field to the value that was provided on create.
func (u *AuditDashboardUpsertBulk) UpdateRecommendations() *AuditDashboardUpsertBulk {
	return u.Update(func(s *AuditDashboardUpsert) {
		s.UpdateRecommendations()
	})
}

// ClearRecommendations clears the value of the "recommendations" field.
func (u *AuditDashboardUpsertBulk) ClearRecommendations() *AuditDashboardUpsertBulk {
	return u.Update(func(s *AuditDashboardUpsert) {
		s.ClearRecommendations()
	})
}

// SetCompetitorLandscape sets the "competitor_landscape" field.
func (u *AuditDashboardUpsertBulk) SetCompetitorLandscape(v schema.CompetitorLandscape) *AuditDashboardUpsertBulk {
	return u.Update(func(s *AuditDashboardUpsert) {
		s.SetCompetitorLandscape(v)
	})
}

// UpdateCompetitorLandscape sets the "competitor_landscape" field to the value that was provided on create.
func (u *AuditDashboardUpsertBulk) UpdateCompetitorLandscape() *AuditDashboardUpsertBulk {
	return u.Update(func(s *AuditDashboardUpsert) {
		s.UpdateCompetitorLandscape()
	})
}

// ClearCompetitorLandscape clears the value of the "competitor_landscape" field.
func (u *AuditDashboardUpsertBulk) ClearCompetitorLandscape() *AuditDashboardUpsertBulk {
	return u.Update(func(s *AuditDashboardUpsert) {
		s.ClearCompetitorLandscape()
	})
}

// SetCategoryInsights sets the "category_insights" field.
func (u *AuditDashboardUpsertBulk) SetCategoryInsights(v []schema.CategoryInsight) *AuditDashboardUpsertBulk {
	return u.Update(func(s *AuditDashboardUpsert) {
		s.SetCategoryInsights(v)
	})
}

// UpdateCategoryInsights sets the "category_insights" field to the value that was provided on create.
func (u *AuditDashboardUpsertBulk) UpdateCategoryInsights() *AuditDashboardUpsertBulk {
	return u.Update(func(s *AuditDashboardUpsert) {
		s.UpdateCategoryInsights()
	})
}

// ClearCategoryInsights clears the value of the "category_insights" field.
func (u *AuditDashboardUpsertBulk) ClearCategoryInsights() *AuditDashboardUpsertBulk {
	return u.Update(func(s *AuditDashboardUpsert) {
		s.ClearCategoryInsights()
	})
}

// SetExecutiveSummary sets the "executive_summary" field.
func (u *AuditDashboardUpsertBulk) SetExecutiveSummary(v string) *AuditDashboardUpsertBulk {
	return u.Update(func(s *AuditDashboardUpsert) {
		s.SetExecutiveSummary(v)
	})
}

// UpdateExecutiveSummary sets the "executive_summary" field to the value that was provided on create.
func (u *AuditDashboardUpsertBulk) UpdateExecutiveSummary() *AuditDashboardUpsertBulk {
	return u.Update(func(s *AuditDashboardUpsert) {
		s.UpdateExecutiveSummary()
	})
}

// ClearExecutiveSummary clears the value of the "executive_summary" field.
func (u *AuditDashboardUpsertBulk) ClearExecutiveSummary() *AuditDashboardUpsertBulk {
	return u.Update(func(s *AuditDashboardUpsert) {
		s.ClearExecutiveSummary()
	})
}

// Exec executes the query.
func (u *AuditDashboardUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AuditDashboardCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AuditDashboardCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AuditDashboardUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
