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
	"github.com/specularhq/specular/ent/auditquery"
	"github.com/specularhq/specular/ent/auditresponse"
)

// AuditQueryCreate is the builder for creating a AuditQuery entity.
type AuditQueryCreate struct {
	config
	mutation *AuditQueryMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetAuditID sets the "audit_id" field.
func (_c *AuditQueryCreate) SetAuditID(v string) *AuditQueryCreate {
	_c.mutation.SetAuditID(v)
	return _c
}

// SetText sets the "text" field.
func (_c *AuditQueryCreate) SetText(v string) *AuditQueryCreate {
	_c.mutation.SetText(v)
	return _c
}

// SetTextNormalized sets the "text_normalized" field.
func (_c *AuditQueryCreate) SetTextNormalized(v string) *AuditQueryCreate {
	_c.mutation.SetTextNormalized(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *AuditQueryCreate) SetCategory(v auditquery.Category) *AuditQueryCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetIntent sets the "intent" field.
func (_c *AuditQueryCreate) SetIntent(v string) *AuditQueryCreate {
	_c.mutation.SetIntent(v)
	return _c
}

// SetNillableIntent sets the "intent" field if the given value is not nil.
func (_c *AuditQueryCreate) SetNillableIntent(v *string) *AuditQueryCreate {
	if v != nil {
		_c.SetIntent(*v)
	}
	return _c
}

// SetPriority sets the "priority" field.
func (_c *AuditQueryCreate) SetPriority(v float64) *AuditQueryCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *AuditQueryCreate) SetNillablePriority(v *float64) *AuditQueryCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *AuditQueryCreate) SetMetadata(v map[string]interface{}) *AuditQueryCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AuditQueryCreate) SetCreatedAt(v time.Time) *AuditQueryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AuditQueryCreate) SetNillableCreatedAt(v *time.Time) *AuditQueryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AuditQueryCreate) SetID(v string) *AuditQueryCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetAudit sets the "audit" edge to the Audit entity.
func (_c *AuditQueryCreate) SetAudit(v *Audit) *AuditQueryCreate {
	return _c.SetAuditID(v.ID)
}

// AddResponseIDs adds the "responses" edge to the AuditResponse entity by IDs.
func (_c *AuditQueryCreate) AddResponseIDs(ids ...string) *AuditQueryCreate {
	_c.mutation.AddResponseIDs(ids...)
	return _c
}

// AddResponses adds the "responses" edges to the AuditResponse entity.
func (_c *AuditQueryCreate) AddResponses(v ...*AuditResponse) *AuditQueryCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddResponseIDs(ids...)
}

// Mutation returns the AuditQueryMutation object of the builder.
func (_c *AuditQueryCreate) Mutation() *AuditQueryMutation {
	return _c.mutation
}

// Save creates the AuditQuery in the database.
func (_c *AuditQueryCreate) Save(ctx context.Context) (*AuditQuery, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AuditQueryCreate) SaveX(ctx context.Context) *AuditQuery {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AuditQueryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AuditQueryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AuditQueryCreate) defaults() {
	if _, ok := _c.mutation.Priority(); !ok {
		v := auditquery.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := auditquery.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AuditQueryCreate) check() error {
	if _, ok := _c.mutation.AuditID(); !ok {
		return &ValidationError{Name: "audit_id", err: errors.New(`ent: missing required field "AuditQuery.audit_id"`)}
	}
	if _, ok := _c.mutation.Text(); !ok {
		return &ValidationError{Name: "text", err: errors.New(`ent: missing required field "AuditQuery.text"`)}
	}
	if v, ok := _c.mutation.Text(); ok {
		if err := auditquery.TextValidator(v); err != nil {
			return &ValidationError{Name: "text", err: fmt.Errorf(`ent: validator failed for field "AuditQuery.text": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TextNormalized(); !ok {
		return &ValidationError{Name: "text_normalized", err: errors.New(`ent: missing required field "AuditQuery.text_normalized"`)}
	}
	if v, ok := _c.mutation.TextNormalized(); ok {
		if err := auditquery.TextNormalizedValidator(v); err != nil {
			return &ValidationError{Name: "text_normalized", err: fmt.Errorf(`ent: validator failed for field "AuditQuery.text_normalized": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "AuditQuery.category"`)}
	}
	if v, ok := _c.mutation.Category(); ok {
		if err := auditquery.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "AuditQuery.category": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "AuditQuery.priority"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AuditQuery.created_at"`)}
	}
	if len(_c.mutation.AuditIDs()) == 0 {
		return &ValidationError{Name: "audit", err: errors.New(`ent: missing required edge "AuditQuery.audit"`)}
	}
	return nil
}

func (_c *AuditQueryCreate) sqlSave(ctx context.Context) (*AuditQuery, error) {
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
			return nil, fmt.Errorf("unexpected AuditQuery.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AuditQueryCreate) createSpec() (*AuditQuery, *sqlgraph.CreateSpec) {
	var (
		_node = &AuditQuery{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(auditquery.Table, sqlgraph.NewFieldSpec(auditquery.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Text(); ok {
		_spec.SetField(auditquery.FieldText, field.TypeString, value)
		_node.Text = value
	}
	if value, ok := _c.mutation.TextNormalized(); ok {
		_spec.SetField(auditquery.FieldTextNormalized, field.TypeString, value)
		_node.TextNormalized = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(auditquery.FieldCategory, field.TypeEnum, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.Intent(); ok {
		_spec.SetField(auditquery.FieldIntent, field.TypeString, value)
		_node.Intent = &value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(auditquery.FieldPriority, field.TypeFloat64, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(auditquery.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(auditquery.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.AuditIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   auditquery.AuditTable,
			Columns: []string{auditquery.AuditColumn},
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
	if nodes := _c.mutation.ResponsesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   auditquery.ResponsesTable,
			Columns: []string{auditquery.ResponsesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(auditresponse.FieldID, field.TypeString),
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
//	client.AuditQuery.Create().
//		SetAuditID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AuditQueryUpsert) {
//			SetAuditID(v+v).
//		}).
//		Exec(ctx)
func (_c *AuditQueryCreate) OnConflict(opts ...sql.ConflictOption) *AuditQueryUpsertOne {
	_c.conflict = opts
	return &AuditQueryUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AuditQuery.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AuditQueryCreate) OnConflictColumns(columns ...string) *AuditQueryUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AuditQueryUpsertOne{
		create: _c,
	}
}

type (
	// AuditQueryUpsertOne is the builder for "upsert"-ing
	//  one AuditQuery node.
	AuditQueryUpsertOne struct {
		create *AuditQueryCreate
	}

	// AuditQueryUpsert is the "OnConflict" setter.
	AuditQueryUpsert struct {
		*sql.UpdateSet
	}
)

// SetText sets the "text" field.
func (u *AuditQueryUpsert) SetText(v string) *AuditQueryUpsert {
	u.Set(auditquery.FieldText, v)
	return u
}

// UpdateText sets the "text" field to the value that was provided on create.
func (u *AuditQueryUpsert) UpdateText() *AuditQueryUpsert {
	u.SetExcluded(auditquery.FieldText)
	return u
}

// SetTextNormalized sets the "text_normalized" field.
func (u *AuditQueryUpsert) SetTextNormalized(v string) *AuditQueryUpsert {
	u.Set(auditquery.FieldTextNormalized, v)
	return u
}

// UpdateTextNormalized sets the "text_normalized" field to the value that was provided on create.
func (u *AuditQueryUpsert) UpdateTextNormalized() *AuditQueryUpsert {
	u.SetExcluded(auditquery.FieldTextNormalized)
	return u
}

// SetCategory sets the "category" field.
func (u *AuditQueryUpsert) SetCategory(v auditquery.Category) *AuditQueryUpsert {
	u.Set(auditquery.FieldCategory, v)
	return u
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *AuditQueryUpsert) UpdateCategory() *AuditQueryUpsert {
	u.SetExcluded(auditquery.FieldCategory)
	return u
}

// SetIntent sets the "intent" field.
func (u *AuditQueryUpsert) SetIntent(v string) *AuditQueryUpsert {
	u.Set(auditquery.FieldIntent, v)
	return u
}

// UpdateIntent sets the "intent" field to the value that was provided on create.
func (u *AuditQueryUpsert) UpdateIntent() *AuditQueryUpsert {
	u.SetExcluded(auditquery.FieldIntent)
	return u
}

// ClearIntent clears the value of the "intent" field.
func (u *AuditQueryUpsert) ClearIntent() *AuditQueryUpsert {
	u.SetNull(auditquery.FieldIntent)
	return u
}

// SetPriority sets the "priority" field.
func (u *AuditQueryUpsert) SetPriority(v float64) *AuditQueryUpsert {
	u.Set(auditquery.FieldPriority, v)
	return u
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *AuditQueryUpsert) UpdatePriority() *AuditQueryUpsert {
	u.SetExcluded(auditquery.FieldPriority)
	return u
}

// AddPriority adds v to the "priority" field.
func (u *AuditQueryUpsert) AddPriority(v float64) *AuditQueryUpsert {
	u.Add(auditquery.FieldPriority, v)
	return u
}

// SetMetadata sets the "metadata" field.
func (u *AuditQueryUpsert) SetMetadata(v map[string]interface{}) *AuditQueryUpsert {
	u.Set(auditquery.FieldMetadata, v)
	return u
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *AuditQueryUpsert) UpdateMetadata() *AuditQueryUpsert {
	u.SetExcluded(auditquery.FieldMetadata)
	return u
}

// ClearMetadata clears the value of the "metadata" field.
func (u *AuditQueryUpsert) ClearMetadata() *AuditQueryUpsert {
	u.SetNull(auditquery.FieldMetadata)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *AuditQueryUpsert) SetCreatedAt(v time.Time) *AuditQueryUpsert {
	u.Set(auditquery.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *AuditQueryUpsert) UpdateCreatedAt() *AuditQueryUpsert {
	u.SetExcluded(auditquery.FieldCreatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.AuditQuery.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(auditquery.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AuditQueryUpsertOne) UpdateNewValues() *AuditQueryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(auditquery.FieldID)
		}
		if _, exists := u.create.mutation.AuditID(); exists {
			s.SetIgnore(auditquery.FieldAuditID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AuditQuery.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AuditQueryUpsertOne) Ignore() *AuditQueryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AuditQueryUpsertOne) DoNothing() *AuditQueryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AuditQueryCreate.OnConflict
// documentation for more info.
func (u *AuditQueryUpsertOne) Update(set func(*AuditQueryUpsert)) *AuditQueryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AuditQueryUpsert{UpdateSet: update})
	}))
	return u
}

// SetText sets the "text" field.
func (u *AuditQueryUpsertOne) SetText(v string) *AuditQueryUpsertOne {
	return u.Update(func(s *AuditQueryUpsert) {
		s.SetText(v)
	})
}

// UpdateText sets the "text" field to the value that was provided on create.
func (u *AuditQueryUpsertOne) UpdateText() *AuditQueryUpsertOne {
	return u.Update(func(s *AuditQueryUpsert) {
		s.UpdateText()
	})
}

// SetTextNormalized sets the "text_normalized" field.
func (u *AuditQueryUpsertOne) SetTextNormalized(v string) *AuditQueryUpsertOne {
	return u.Update(func(s *AuditQueryUpsert) {
		s.SetTextNormalized(v)
	})
}

// UpdateTextNormalized sets the "text_normalized" field to the value that was provided on create.
func (u *AuditQueryUpsertOne) UpdateTextNormalized() *AuditQueryUpsertOne {
	return u.Update(func(s *AuditQueryUpsert) {
		s.UpdateTextNormalized()
	})
}

// SetCategory sets the "category" field.
func (u *AuditQueryUpsertOne) SetCategory(v auditquery.Category) *AuditQueryUpsertOne {
	return u.Update(func(s *AuditQueryUpsert) {
		s.SetCategory(v)
	})
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *AuditQueryUpsertOne) UpdateCategory() *AuditQueryUpsertOne {
	return u.Update(func(s *AuditQueryUpsert) {
		s.UpdateCategory()
	})
}

// SetIntent sets the "intent" field.
func (u *AuditQueryUpsertOne) SetIntent(v string) *AuditQueryUpsertOne {
	return u.Update(func(s *AuditQueryUpsert) {
		s.SetIntent(v)
	})
}

// UpdateIntent sets the "intent" field to the value that was provided on create.
func (u *AuditQueryUpsertOne) UpdateIntent() *AuditQueryUpsertOne {
	return u.Update(func(s *AuditQueryUpsert) {
		s.UpdateIntent()
	})
}

// ClearIntent clears the value of the "intent" field.
func (u *AuditQueryUpsertOne) ClearIntent() *AuditQueryUpsertOne {
	return u.Update(func(s *AuditQueryUpsert) {
		s.ClearIntent()
	})
}

// SetPriority sets the "priority" field.
func (u *AuditQueryUpsertOne) SetPriority(v float64) *AuditQueryUpsertOne {
	return u.Update(func(s *AuditQueryUpsert) {
		s.SetPriority(v)
	})
}

// AddPriority adds v to the "priority" field.
func (u *AuditQueryUpsertOne) AddPriority(v float64) *AuditQueryUpsertOne {
	return u.Update(func(s *AuditQueryUpsert) {
		s.AddPriority(v)
	})
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *AuditQueryUpsertOne) UpdatePriority() *AuditQueryUpsertOne {
	return u.Update(func(s *AuditQueryUpsert) {
		s.UpdatePriority()
	})
}

// SetMetadata sets the "metadata" field.
func (u *AuditQueryUpsertOne) SetMetadata(v map[string]interface{}) *AuditQueryUpsertOne {
	return u.Update(func(s *AuditQueryUpsert) {
		s.SetMetadata(v)
	})
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *AuditQueryUpsertOne) UpdateMetadata() *AuditQueryUpsertOne {
	return u.Update(func(s *AuditQueryUpsert) {
		s.UpdateMetadata()
	})
}

// ClearMetadata clears the value of the "metadata" field.
func (u *AuditQueryUpsertOne) ClearMetadata() *AuditQueryUpsertOne {
	return u.Update(func(s *AuditQueryUpsert) {
		s.ClearMetadata()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *AuditQueryUpsertOne) SetCreatedAt(v time.Time) *AuditQueryUpsertOne {
	return u.Update(func(s *AuditQueryUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *AuditQueryUpsertOne) UpdateCreatedAt() *AuditQueryUpsertOne {
	return u.Update(func(s *AuditQueryUpsert) {
		s.UpdateCreatedAt()
	})
}

// Exec executes the query.
func (u *AuditQueryUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AuditQueryCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AuditQueryUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AuditQueryUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: AuditQueryUpsertOne.ID is not supported by MySQL driver. Use AuditQueryUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AuditQueryUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AuditQueryCreateBulk is the builder for creating many AuditQuery entities in bulk.
type AuditQueryCreateBulk struct {
	config
	err      error
	builders []*AuditQueryCreate
	conflict []sql.ConflictOption
}

// Save creates the AuditQuery entities in the database.
func (_c *AuditQueryCreateBulk) Save(ctx context.Context) ([]*AuditQuery, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AuditQuery, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AuditQueryMutation)
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
func (_c *AuditQueryCreateBulk) SaveX(ctx context.Context) []*AuditQuery {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AuditQueryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AuditQueryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AuditQuery.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AuditQueryUpsert) {
//			SetAuditID(v+v).
//		}).
//		Exec(ctx)
func (_c *AuditQueryCreateBulk) OnConflict(opts ...sql.ConflictOption) *AuditQueryUpsertBulk {
	_c.conflict = opts
	return &AuditQueryUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AuditQuery.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AuditQueryCreateBulk) OnConflictColumns(columns ...string) *AuditQueryUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AuditQueryUpsertBulk{
		create: _c,
	}
}

// AuditQueryUpsertBulk is the builder for "upsert"-ing
// a bulk of AuditQuery nodes.
type AuditQueryUpsertBulk struct {
	create *AuditQueryCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.AuditQuery.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(auditquery.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AuditQueryUpsertBulk) UpdateNewValues() *AuditQueryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(auditquery.FieldID)
			}
			if _, exists := b.mutation.AuditID(); exists {
				s.SetIgnore(auditquery.FieldAuditID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AuditQuery.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AuditQueryUpsertBulk) Ignore() *AuditQueryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AuditQueryUpsertBulk) DoNothing() *AuditQueryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AuditQueryCreateBulk.OnConflict
// documentation for more info.
func (u *AuditQueryUpsertBulk) Update(set func(*AuditQueryUpsert)) *AuditQueryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AuditQueryUpsert{UpdateSet: update})
	}))
	return u
}

// SetText sets the "text" field.
func (u *AuditQueryUpsertBulk) SetText(v string) *AuditQueryUpsertBulk {
	return u.Update(func(s *AuditQueryUpsert) {
		s.SetText(v)
	})
}

// UpdateText sets the "text" field to the value that was provided on create.
func (u *AuditQueryUpsertBulk) UpdateText() *AuditQueryUpsertBulk {
	return u.Update(func(s *AuditQueryUpsert) {
		s.UpdateText()
	})
}

// SetTextNormalized sets the "text_normalized" field.
func (u *AuditQueryUpsertBulk) SetTextNormalized(v string) *AuditQueryUpsertBulk {
	return u.Update(func(s *AuditQueryUpsert) {
		s.SetTextNormalized(v)
	})
}

// UpdateTextNormalized sets the "text_normalized" field to the value that was provided on create.
func (u *AuditQueryUpsertBulk) UpdateTextNormalized() *AuditQueryUpsertBulk {
	return u.Update(func(s *AuditQueryUpsert) {
		s.UpdateTextNormalized()
	})
}

// SetCategory sets the "category" field.
func (u *AuditQueryUpsertBulk) SetCategory(v auditquery.Category) *AuditQueryUpsertBulk {
	return u.Update(func(s *AuditQueryUpsert) {
		s.SetCategory(v)
	})
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *AuditQueryUpsertBulk) UpdateCategory() *AuditQueryUpsertBulk {
	return u.Update(func(s *AuditQueryUpsert) {
		s.UpdateCategory()
	})
}

// SetIntent sets the "intent" field.
func (u *AuditQueryUpsertBulk) SetIntent(v string) *AuditQueryUpsertBulk {
	return u.Update(func(s *AuditQueryUpsert) {
		s.SetIntent(v)
	})
}

// UpdateIntent sets the "intent" field to the value that was provided on create.
func (u *AuditQueryUpsertBulk) UpdateIntent() *AuditQueryUpsertBulk {
	return u.Update(func(s *AuditQueryUpsert) {
		s.UpdateIntent()
	})
}

// ClearIntent clears the value of the "intent" field.
func (u *AuditQueryUpsertBulk) ClearIntent() *AuditQueryUpsertBulk {
	return u.Update(func(s *AuditQueryUpsert) {
		s.ClearIntent()
	})
}

// SetPriority sets the "priority" field.
func (u *AuditQueryUpsertBulk) SetPriority(v float64) *AuditQueryUpsertBulk {
	return u.Update(func(s *AuditQueryUpsert) {
		s.SetPriority(v)
	})
}

// AddPriority adds v to the "priority" field.
func (u *AuditQueryUpsertBulk) AddPriority(v float64) *AuditQueryUpsertBulk {
	return u.Update(func(s *AuditQueryUpsert) {
		s.AddPriority(v)
	})
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *AuditQueryUpsertBulk) UpdatePriority() *AuditQueryUpsertBulk {
	return u.Update(func(s *AuditQueryUpsert) {
		s.UpdatePriority()
	})
}

// SetMetadata sets the "metadata" field.
func (u *AuditQueryUpsertBulk) SetMetadata(v map[string]interface{}) *AuditQueryUpsertBulk {
	return u.Update(func(s *AuditQueryUpsert) {
		s.SetMetadata(v)
	})
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *AuditQueryUpsertBulk) UpdateMetadata() *AuditQueryUpsertBulk {
	return u.Update(func(s *AuditQueryUpsert) {
		s.UpdateMetadata()
	})
}

// ClearMetadata clears the value of the "metadata" field.
func (u *AuditQueryUpsertBulk) ClearMetadata() *AuditQueryUpsertBulk {
	return u.Update(func(s *AuditQueryUpsert) {
		s.ClearMetadata()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *AuditQueryUpsertBulk) SetCreatedAt(v time.Time) *AuditQueryUpsertBulk {
	return u.Update(func(s *AuditQueryUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *AuditQueryUpsertBulk) UpdateCreatedAt() *AuditQueryUpsertBulk {
	return u.Update(func(s *AuditQueryUpsert) {
		s.UpdateCreatedAt()
	})
}

// Exec executes the query.
func (u *AuditQueryUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AuditQueryCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AuditQueryCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AuditQueryUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
