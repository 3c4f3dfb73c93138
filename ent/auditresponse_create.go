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
	"github.com/specularhq/specular/ent/auditanalysis"
	"github.com/specularhq/specular/ent/auditquery"
	"github.com/specularhq/specular/ent/auditresponse"
)

// AuditResponseCreate is the builder for creating a AuditResponse entity.
type AuditResponseCreate struct {
	config
	mutation *AuditResponseMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetAuditID sets the "audit_id" field.
func (_c *AuditResponseCreate) SetAuditID(v string) *AuditResponseCreate {
	_c.mutation.SetAuditID(v)
	return _c
}

// SetQueryID sets the "query_id" field.
func (_c *AuditResponseCreate) SetQueryID(v string) *AuditResponseCreate {
	_c.mutation.SetQueryID(v)
	return _c
}

// SetProvider sets the "provider" field.
func (_c *AuditResponseCreate) SetProvider(v string) *AuditResponseCreate {
	_c.mutation.SetProvider(v)
	return _c
}

// SetModel sets the "model" field.
func (_c *AuditResponseCreate) SetModel(v string) *AuditResponseCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_c *AuditResponseCreate) SetNillableModel(v *string) *AuditResponseCreate {
	if v != nil {
		_c.SetModel(*v)
	}
	return _c
}

// SetText sets the "text" field.
func (_c *AuditResponseCreate) SetText(v string) *AuditResponseCreate {
	_c.mutation.SetText(v)
	return _c
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_c *AuditResponseCreate) SetNillableText(v *string) *AuditResponseCreate {
	if v != nil {
		_c.SetText(*v)
	}
	return _c
}

// SetLatencyMs sets the "latency_ms" field.
func (_c *AuditResponseCreate) SetLatencyMs(v int) *AuditResponseCreate {
	_c.mutation.SetLatencyMs(v)
	return _c
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_c *AuditResponseCreate) SetNillableLatencyMs(v *int) *AuditResponseCreate {
	if v != nil {
		_c.SetLatencyMs(*v)
	}
	return _c
}

// SetInputTokens sets the "input_tokens" field.
func (_c *AuditResponseCreate) SetInputTokens(v int) *AuditResponseCreate {
	_c.mutation.SetInputTokens(v)
	return _c
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_c *AuditResponseCreate) SetNillableInputTokens(v *int) *AuditResponseCreate {
	if v != nil {
		_c.SetInputTokens(*v)
	}
	return _c
}

// SetOutputTokens sets the "output_tokens" field.
func (_c *AuditResponseCreate) SetOutputTokens(v int) *AuditResponseCreate {
	_c.mutation.SetOutputTokens(v)
	return _c
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_c *AuditResponseCreate) SetNillableOutputTokens(v *int) *AuditResponseCreate {
	if v != nil {
		_c.SetOutputTokens(*v)
	}
	return _c
}

// SetCostEstimate sets the "cost_estimate" field.
func (_c *AuditResponseCreate) SetCostEstimate(v float64) *AuditResponseCreate {
	_c.mutation.SetCostEstimate(v)
	return _c
}

// SetNillableCostEstimate sets the "cost_estimate" field if the given value is not nil.
func (_c *AuditResponseCreate) SetNillableCostEstimate(v *float64) *AuditResponseCreate {
	if v != nil {
		_c.SetCostEstimate(*v)
	}
	return _c
}

// SetErrorKind sets the "error_kind" field.
func (_c *AuditResponseCreate) SetErrorKind(v auditresponse.ErrorKind) *AuditResponseCreate {
	_c.mutation.SetErrorKind(v)
	return _c
}

// SetNillableErrorKind sets the "error_kind" field if the given value is not nil.
func (_c *AuditResponseCreate) SetNillableErrorKind(v *auditresponse.ErrorKind) *AuditResponseCreate {
	if v != nil {
		_c.SetErrorKind(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *AuditResponseCreate) SetErrorMessage(v string) *AuditResponseCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *AuditResponseCreate) SetNillableErrorMessage(v *string) *AuditResponseCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AuditResponseCreate) SetCreatedAt(v time.Time) *AuditResponseCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AuditResponseCreate) SetNillableCreatedAt(v *time.Time) *AuditResponseCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AuditResponseCreate) SetID(v string) *AuditResponseCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetAudit sets the "audit" edge to the Audit entity.
func (_c *AuditResponseCreate) SetAudit(v *Audit) *AuditResponseCreate {
	return _c.SetAuditID(v.ID)
}

// SetQuery sets the "query" edge to the AuditQuery entity.
func (_c *AuditResponseCreate) SetQuery(v *AuditQuery) *AuditResponseCreate {
	return _c.SetQueryID(v.ID)
}

// SetAnalysisID sets the "analysis" edge to the AuditAnalysis entity by ID.
func (_c *AuditResponseCreate) SetAnalysisID(id string) *AuditResponseCreate {
	_c.mutation.SetAnalysisID(id)
	return _c
}

// SetNillableAnalysisID sets the "analysis" edge to the AuditAnalysis entity by ID if the given value is not nil.
func (_c *AuditResponseCreate) SetNillableAnalysisID(id *string) *AuditResponseCreate {
	if id != nil {
		_c = _c.SetAnalysisID(*id)
	}
	return _c
}

// SetAnalysis sets the "analysis" edge to the AuditAnalysis entity.
func (_c *AuditResponseCreate) SetAnalysis(v *AuditAnalysis) *AuditResponseCreate {
	return _c.SetAnalysisID(v.ID)
}

// Mutation returns the AuditResponseMutation object of the builder.
func (_c *AuditResponseCreate) Mutation() *AuditResponseMutation {
	return _c.mutation
}

// Save creates the AuditResponse in the database.
func (_c *AuditResponseCreate) Save(ctx context.Context) (*AuditResponse, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AuditResponseCreate) SaveX(ctx context.Context) *AuditResponse {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AuditResponseCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AuditResponseCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AuditResponseCreate) defaults() {
	if _, ok := _c.mutation.Text(); !ok {
		v := auditresponse.DefaultText
		_c.mutation.SetText(v)
	}
	if _, ok := _c.mutation.LatencyMs(); !ok {
		v := auditresponse.DefaultLatencyMs
		_c.mutation.SetLatencyMs(v)
	}
	if _, ok := _c.mutation.InputTokens(); !ok {
		v := auditresponse.DefaultInputTokens
		_c.mutation.SetInputTokens(v)
	}
	if _, ok := _c.mutation.OutputTokens(); !ok {
		v := auditresponse.DefaultOutputTokens
		_c.mutation.SetOutputTokens(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := auditresponse.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AuditResponseCreate) check() error {
	if _, ok := _c.mutation.AuditID(); !ok {
		return &ValidationError{Name: "audit_id", err: errors.New(`ent: missing required field "AuditResponse.audit_id"`)}
	}
	if _, ok := _c.mutation.QueryID(); !ok {
		return &ValidationError{Name: "query_id", err: errors.New(`ent: missing required field "AuditResponse.query_id"`)}
	}
	if _, ok := _c.mutation.Provider(); !ok {
		return &ValidationError{Name: "provider", err: errors.New(`ent: missing required field "AuditResponse.provider"`)}
	}
	if v, ok := _c.mutation.Provider(); ok {
		if err := auditresponse.ProviderValidator(v); err != nil {
			return &ValidationError{Name: "provider", err: fmt.Errorf(`ent: validator failed for field "AuditResponse.provider": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LatencyMs(); !ok {
		return &ValidationError{Name: "latency_ms", err: errors.New(`ent: missing required field "AuditResponse.latency_ms"`)}
	}
	if _, ok := _c.mutation.InputTokens(); !ok {
		return &ValidationError{Name: "input_tokens", err: errors.New(`ent: missing required field "AuditResponse.input_tokens"`)}
	}
	if _, ok := _c.mutation.OutputTokens(); !ok {
		return &ValidationError{Name: "output_tokens", err: errors.New(`ent: missing required field "AuditResponse.output_tokens"`)}
	}
	if v, ok := _c.mutation.ErrorKind(); ok {
		if err := auditresponse.ErrorKindValidator(v); err != nil {
			return &ValidationError{Name: "error_kind", err: fmt.Errorf(`ent: validator failed for field "AuditResponse.error_kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AuditResponse.created_at"`)}
	}
	if len(_c.mutation.AuditIDs()) == 0 {
		return &ValidationError{Name: "audit", err: errors.New(`ent: missing required edge "AuditResponse.audit"`)}
	}
	if len(_c.mutation.QueryIDs()) == 0 {
		return &ValidationError{Name: "query", err: errors.New(`ent: missing required edge "AuditResponse.query"`)}
	}
	return nil
}

func (_c *AuditResponseCreate) sqlSave(ctx context.Context) (*AuditResponse, error) {
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
			return nil, fmt.Errorf("unexpected AuditResponse.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AuditResponseCreate) createSpec() (*AuditResponse, *sqlgraph.CreateSpec) {
	var (
		_node = &AuditResponse{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(auditresponse.Table, sqlgraph.NewFieldSpec(auditresponse.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Provider(); ok {
		_spec.SetField(auditresponse.FieldProvider, field.TypeString, value)
		_node.Provider = value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(auditresponse.FieldModel, field.TypeString, value)
		_node.Model = &value
	}
	if value, ok := _c.mutation.Text(); ok {
		_spec.SetField(auditresponse.FieldText, field.TypeString, value)
		_node.Text = value
	}
	if value, ok := _c.mutation.LatencyMs(); ok {
		_spec.SetField(auditresponse.FieldLatencyMs, field.TypeInt, value)
		_node.LatencyMs = value
	}
	if value, ok := _c.mutation.InputTokens(); ok {
		_spec.SetField(auditresponse.FieldInputTokens, field.TypeInt, value)
		_node.InputTokens = value
	}
	if value, ok := _c.mutation.OutputTokens(); ok {
		_spec.SetField(auditresponse.FieldOutputTokens, field.TypeInt, value)
		_node.OutputTokens = value
	}
	if value, ok := _c.mutation.CostEstimate(); ok {
		_spec.SetField(auditresponse.FieldCostEstimate, field.TypeFloat64, value)
		_node.CostEstimate = &value
	}
	if value, ok := _c.mutation.ErrorKind(); ok {
		_spec.SetField(auditresponse.FieldErrorKind, field.TypeEnum, value)
		_node.ErrorKind = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(auditresponse.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(auditresponse.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.AuditIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   auditresponse.AuditTable,
			Columns: []string{auditresponse.AuditColumn},
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
	if nodes := _c.mutation.QueryIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   auditresponse.QueryTable,
			Columns: []string{auditresponse.QueryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(auditquery.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.QueryID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AnalysisIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   auditresponse.AnalysisTable,
			Columns: []string{auditresponse.AnalysisColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(auditanalysis.FieldID, field.TypeString),
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
//	client.AuditResponse.Create().
//		SetAuditID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AuditResponseUpsert) {
//			SetAuditID(v+v).
//		}).
//		Exec(ctx)
func (_c *AuditResponseCreate) OnConflict(opts ...sql.ConflictOption) *AuditResponseUpsertOne {
	_c.conflict = opts
	return &AuditResponseUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AuditResponse.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AuditResponseCreate) OnConflictColumns(columns ...string) *AuditResponseUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AuditResponseUpsertOne{
		create: _c,
	}
}

type (
	// AuditResponseUpsertOne is the builder for "upsert"-ing
	//  one AuditResponse node.
	AuditResponseUpsertOne struct {
		create *AuditResponseCreate
	}

	// AuditResponseUpsert is the "OnConflict" setter.
	AuditResponseUpsert struct {
		*sql.UpdateSet
	}
)

// SetProvider sets the "provider" field.
func (u *AuditResponseUpsert) SetProvider(v string) *AuditResponseUpsert {
	u.Set(auditresponse.FieldProvider, v)
	return u
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *AuditResponseUpsert) UpdateProvider() *AuditResponseUpsert {
	u.SetExcluded(auditresponse.FieldProvider)
	return u
}

// SetModel sets the "model" field.
func (u *AuditResponseUpsert) SetModel(v string) *AuditResponseUpsert {
	u.Set(auditresponse.FieldModel, v)
	return u
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *AuditResponseUpsert) UpdateModel() *AuditResponseUpsert {
	u.SetExcluded(auditresponse.FieldModel)
	return u
}

// ClearModel clears the value of the "model" field.
func (u *AuditResponseUpsert) ClearModel() *AuditResponseUpsert {
	u.SetNull(auditresponse.FieldModel)
	return u
}

// SetText sets the "text" field.
func (u *AuditResponseUpsert) SetText(v string) *AuditResponseUpsert {
	u.Set(auditresponse.FieldText, v)
	return u
}

// UpdateText sets the "text" field to the value that was provided on create.
func (u *AuditResponseUpsert) UpdateText() *AuditResponseUpsert {
	u.SetExcluded(auditresponse.FieldText)
	return u
}

// ClearText clears the value of the "text" field.
func (u *AuditResponseUpsert) ClearText() *AuditResponseUpsert {
	u.SetNull(auditresponse.FieldText)
	return u
}

// SetLatencyMs sets the "latency_ms" field.
func (u *AuditResponseUpsert) SetLatencyMs(v int) *AuditResponseUpsert {
	u.Set(auditresponse.FieldLatencyMs, v)
	return u
}

// UpdateLatencyMs sets the "latency_ms" field to the value that was provided on create.
func (u *AuditResponseUpsert) UpdateLatencyMs() *AuditResponseUpsert {
	u.SetExcluded(auditresponse.FieldLatencyMs)
	return u
}

// AddLatencyMs adds v to the "latency_ms" field.
func (u *AuditResponseUpsert) AddLatencyMs(v int) *AuditResponseUpsert {
	u.Add(auditresponse.FieldLatencyMs, v)
	return u
}

// SetInputTokens sets the "input_tokens" field.
func (u *AuditResponseUpsert) SetInputTokens(v int) *AuditResponseUpsert {
	u.Set(auditresponse.FieldInputTokens, v)
	return u
}

// UpdateInputTokens sets the "input_tokens" field to the value that was provided on create.
func (u *AuditResponseUpsert) UpdateInputTokens() *AuditResponseUpsert {
	u.SetExcluded(auditresponse.FieldInputTokens)
	return u
}

// AddInputTokens adds v to the "input_tokens" field.
func (u *AuditResponseUpsert) AddInputTokens(v int) *AuditResponseUpsert {
	u.Add(auditresponse.FieldInputTokens, v)
	return u
}

// SetOutputTokens sets the "output_tokens" field.
func (u *AuditResponseUpsert) SetOutputTokens(v int) *AuditResponseUpsert {
	u.Set(auditresponse.FieldOutputTokens, v)
	return u
}

// UpdateOutputTokens sets the "output_tokens" field to the value that was provided on create.
func (u *AuditResponseUpsert) UpdateOutputTokens() *AuditResponseUpsert {
	u.SetExcluded(auditresponse.FieldOutputTokens)
	return u
}

// AddOutputTokens adds v to the "output_tokens" field.
func (u *AuditResponseUpsert) AddOutputTokens(v int) *AuditResponseUpsert {
	u.Add(auditresponse.FieldOutputTokens, v)
	return u
}

// SetCostEstimate sets the "cost_estimate" field.
func (u *AuditResponseUpsert) SetCostEstimate(v float64) *AuditResponseUpsert {
	u.Set(auditresponse.FieldCostEstimate, v)
	return u
}

// UpdateCostEstimate sets the "cost_estimate" field to the value that was provided on create.
func (u *AuditResponseUpsert) UpdateCostEstimate() *AuditResponseUpsert {
	u.SetExcluded(auditresponse.FieldCostEstimate)
	return u
}

// AddCostEstimate adds v to the "cost_estimate" field.
func (u *AuditResponseUpsert) AddCostEstimate(v float64) *AuditResponseUpsert {
	u.Add(auditresponse.FieldCostEstimate, v)
	return u
}

// ClearCostEstimate clears the value of the "cost_estimate" field.
func (u *AuditResponseUpsert) ClearCostEstimate() *AuditResponseUpsert {
	u.SetNull(auditresponse.FieldCostEstimate)
	return u
}

// SetErrorKind sets the "error_kind" field.
func (u *AuditResponseUpsert) SetErrorKind(v auditresponse.ErrorKind) *AuditResponseUpsert {
	u.Set(auditresponse.FieldErrorKind, v)
	return u
}

// UpdateErrorKind sets the "error_kind" field to the value that was provided on create.
func (u *AuditResponseUpsert) UpdateErrorKind() *AuditResponseUpsert {
	u.SetExcluded(auditresponse.FieldErrorKind)
	return u
}

// ClearErrorKind clears the value of the "error_kind" field.
func (u *AuditResponseUpsert) ClearErrorKind() *AuditResponseUpsert {
	u.SetNull(auditresponse.FieldErrorKind)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *AuditResponseUpsert) SetErrorMessage(v string) *AuditResponseUpsert {
	u.Set(auditresponse.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *AuditResponseUpsert) UpdateErrorMessage() *AuditResponseUpsert {
	u.SetExcluded(auditresponse.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *AuditResponseUpsert) ClearErrorMessage() *AuditResponseUpsert {
	u.SetNull(auditresponse.FieldErrorMessage)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *AuditResponseUpsert) SetCreatedAt(v time.Time) *AuditResponseUpsert {
	u.Set(auditresponse.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *AuditResponseUpsert) UpdateCreatedAt() *AuditResponseUpsert {
	u.SetExcluded(auditresponse.FieldCreatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.AuditResponse.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(auditresponse.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AuditResponseUpsertOne) UpdateNewValues() *AuditResponseUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(auditresponse.FieldID)
		}
		if _, exists := u.create.mutation.AuditID(); exists {
			s.SetIgnore(auditresponse.FieldAuditID)
		}
		if _, exists := u.create.mutation.QueryID(); exists {
			s.SetIgnore(auditresponse.FieldQueryID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AuditResponse.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AuditResponseUpsertOne) Ignore() *AuditResponseUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AuditResponseUpsertOne) DoNothing() *AuditResponseUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AuditResponseCreate.OnConflict
// documentation for more info.
func (u *AuditResponseUpsertOne) Update(set func(*AuditResponseUpsert)) *AuditResponseUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AuditResponseUpsert{UpdateSet: update})
	}))
	return u
}

// SetProvider sets the "provider" field.
func (u *AuditResponseUpsertOne) SetProvider(v string) *AuditResponseUpsertOne {
	return u.Update(func(s *AuditResponseUpsert) {
		s.SetProvider(v)
	})
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *AuditResponseUpsertOne) UpdateProvider() *AuditResponseUpsertOne {
	return u.Update(func(s *AuditResponseUpsert) {
		s.UpdateProvider()
	})
}

// SetModel sets the "model" field.
func (u *AuditResponseUpsertOne) SetModel(v string) *AuditResponseUpsertOne {
	return u.Update(func(s *AuditResponseUpsert) {
		s.SetModel(v)
	})
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *AuditResponseUpsertOne) UpdateModel() *AuditResponseUpsertOne {
	return u.Update(func(s *AuditResponseUpsert) {
		s.UpdateModel()
	})
}

// ClearModel clears the value of the "model" field.
func (u *AuditResponseUpsertOne) ClearModel() *AuditResponseUpsertOne {
	return u.Update(func(s *AuditResponseUpsert) {
		s.ClearModel()
	})
}

// SetText sets the "text" field.
func (u *AuditResponseUpsertOne) SetText(v string) *AuditResponseUpsertOne {
	return u.Update(func(s *AuditResponseUpsert) {
		s.SetText(v)
	})
}

// UpdateText sets the "text" field to the value that was provided on create.
func (u *AuditResponseUpsertOne) UpdateText() *AuditResponseUpsertOne {
	return u.Update(func(s *AuditResponseUpsert) {
		s.UpdateText()
	})
}

// ClearText clears the value of the "text" field.
func (u *AuditResponseUpsertOne) ClearText() *AuditResponseUpsertOne {
	return u.Update(func(s *AuditResponseUpsert) {
		s.ClearText()
	})
}

// SetLatencyMs sets the "latency_ms" field.
func (u *AuditResponseUpsertOne) SetLatencyMs(v int) *AuditResponseUpsertOne {
	return u.Update(func(s *AuditResponseUpsert) {
		s.SetLatencyMs(v)
	})
}

// AddLatencyMs adds v to the "latency_ms" field.
func (u *AuditResponseUpsertOne) AddLatencyMs(v int) *AuditResponseUpsertOne {
	return u.Update(func(s *AuditResponseUpsert) {
		s.AddLatencyMs(v)
	})
}

// UpdateLatencyMs sets the "latency_ms" field to the value that was provided on create.
func (u *AuditResponseUpsertOne) UpdateLatencyMs() *AuditResponseUpsertOne {
	return u.Update(func(s *AuditResponseUpsert) {
		s.UpdateLatencyMs()
	})
}

// SetInputTokens sets the "input_tokens" field.
func (u *AuditResponseUpsertOne) SetInputTokens(v int) *AuditResponseUpsertOne {
	return u.Update(func(s *AuditResponseUpsert) {
		s.SetInputTokens(v)
	})
}

// AddInputTokens adds v to the "input_tokens" field.
func (u *AuditResponseUpsertOne) AddInputTokens(v int) *AuditResponseUpsertOne {
	return u.Update(func(s *AuditResponseUpsert) {
		s.AddInputTokens(v)
	})
}

// UpdateInputTokens sets the "input_tokens" field to the value that was provided on create.
func (u *AuditResponseUpsertOne) UpdateInputTokens() *AuditResponseUpsertOne {
	return u.Update(func(s *AuditResponseUpsert) {
		s.UpdateInputTokens()
	})
}

// SetOutputTokens sets the "output_tokens" field.
func (u *AuditResponseUpsertOne) SetOutputTokens(v int) *AuditResponseUpsertOne {
	return u.Update(func(s *AuditResponseUpsert) {
		s.SetOutputTokens(v)
	})
}

// AddOutputTokens adds v to the "output_tokens" field.
func (u *AuditResponseUpsertOne) AddOutputTokens(v int) *AuditResponseUpsertOne {
	return u.Update(func(s *AuditResponseUpsert) {
		s.AddOutputTokens(v)
	})
}

// UpdateOutputTokens sets the "output_tokens" field to the value that was provided on create.
func (u *AuditResponseUpsertOne) UpdateOutputTokens() *AuditResponseUpsertOne {
	return u.Update(func(s *AuditResponseUpsert) {
		s.UpdateOutputTokens()
	})
}

// SetCostEstimate sets the "cost_estimate" field.
func (u *AuditResponseUpsertOne) SetCostEstimate(v float64) *AuditResponseUpsertOne {
	return u.Update(func(s *AuditResponseUpsert) {
		s.SetCostEstimate(v)
	})
}

// AddCostEstimate adds v to the "cost_estimate" field.
func (u *AuditResponseUpsertOne) AddCostEstimate(v float64) *AuditResponseUpsertOne {
	return u.Update(func(s *AuditResponseUpsert) {
		s.AddCostEstimate(v)
	})
}

// UpdateCostEstimate sets the "cost_estimate" field to the value that was provided on create.
func (u *AuditResponseUpsertOne) UpdateCostEstimate() *AuditResponseUpsertOne {
	return u.Update(func(s *AuditResponseUpsert) {
		s.UpdateCostEstimate()
	})
}

// ClearCostEstimate clears the value of the "cost_estimate" field.
func (u *AuditResponseUpsertOne) ClearCostEstimate() *AuditResponseUpsertOne {
	return u.Update(func(s *AuditResponseUpsert) {
		s.ClearCostEstimate()
	})
}

// SetErrorKind sets the "error_kind" field.
func (u *AuditResponseUpsertOne) SetErrorKind(v auditresponse.ErrorKind) *AuditResponseUpsertOne {
	return u.Update(func(s *AuditResponseUpsert) {
		s.SetErrorKind(v)
	})
}

// UpdateErrorKind sets the "error_kind" field to the value that was provided on create.
func (u *AuditResponseUpsertOne) UpdateErrorKind() *AuditResponseUpsertOne {
	return u.Update(func(s *AuditResponseUpsert) {
		s.UpdateErrorKind()
	})
}

// ClearErrorKind clears the value of the "error_kind" field.
func (u *AuditResponseUpsertOne) ClearErrorKind() *AuditResponseUpsertOne {
	return u.Update(func(s *AuditResponseUpsert) {
		s.ClearErrorKind()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *AuditResponseUpsertOne) SetErrorMessage(v string) *AuditResponseUpsertOne {
	return u.Update(func(s *AuditResponseUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *AuditResponseUpsertOne) UpdateErrorMessage() *AuditResponseUpsertOne {
	return u.Update(func(s *AuditResponseUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *AuditResponseUpsertOne) ClearErrorMessage() *AuditResponseUpsertOne {
	return u.Update(func(s *AuditResponseUpsert) {
		s.ClearErrorMessage()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *AuditResponseUpsertOne) SetCreatedAt(v time.Time) *AuditResponseUpsertOne {
	return u.Update(func(s *AuditResponseUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *AuditResponseUpsertOne) UpdateCreatedAt() *AuditResponseUpsertOne {
	return u.Update(func(s *AuditResponseUpsert) {
		s.UpdateCreatedAt()
	})
}

// Exec executes the query.
func (u *AuditResponseUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AuditResponseCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AuditResponseUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AuditResponseUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: AuditResponseUpsertOne.ID is not supported by MySQL driver. Use AuditResponseUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AuditResponseUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AuditResponseCreateBulk is the builder for creating many AuditResponse entities in bulk.
type AuditResponseCreateBulk struct {
	config
	err      error
	builders []*AuditResponseCreate
	conflict []sql.ConflictOption
}

// Save creates the AuditResponse entities in the database.
func (_c *AuditResponseCreateBulk) Save(ctx context.Context) ([]*AuditResponse, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AuditResponse, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AuditResponseMutation)
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
func (_c *AuditResponseCreateBulk) SaveX(ctx context.Context) []*AuditResponse {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AuditResponseCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AuditResponseCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AuditResponse.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AuditResponseUpsert) {
//			SetAuditID(v+v).
//		}).
//		Exec(ctx)
func (_c *AuditResponseCreateBulk) OnConflict(opts ...sql.ConflictOption) *AuditResponseUpsertBulk {
	_c.conflict = opts
	return &AuditResponseUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AuditResponse.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AuditResponseCreateBulk) OnConflictColumns(columns ...string) *AuditResponseUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AuditResponseUpsertBulk{
		create: _c,
	}
}

// AuditResponseUpsertBulk is the builder for "upsert"-ing
// a bulk of AuditResponse nodes.
type AuditResponseUpsertBulk struct {
	create *AuditResponseCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.AuditResponse.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(auditresponse.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AuditResponseUpsertBulk) UpdateNewValues() *AuditResponseUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(auditresponse.FieldID)
			}
			if _, exists := b.mutation.AuditID(); exists {
				s.SetIgnore(auditresponse.FieldAuditID)
			}
			if _, exists := b.mutation.QueryID(); exists {
				s.SetIgnore(auditresponse.FieldQueryID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AuditResponse.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AuditResponseUpsertBulk) Ignore() *AuditResponseUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AuditResponseUpsertBulk) DoNothing() *AuditResponseUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AuditResponseCreateBulk.OnConflict
// documentation for more info.
func (u *AuditResponseUpsertBulk) Update(set func(*AuditResponseUpsert)) *AuditResponseUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AuditResponseUpsert{UpdateSet: update})
	}))
	return u
}

// SetProvider sets the "provider" field.
func (u *AuditResponseUpsertBulk) SetProvider(v string) *AuditResponseUpsertBulk {
	return u.Update(func(s *AuditResponseUpsert) {
		s.SetProvider(v)
	})
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *AuditResponseUpsertBulk) UpdateProvider() *AuditResponseUpsertBulk {
	return u.Update(func(s *AuditResponseUpsert) {
		s.UpdateProvider()
	})
}

// SetModel sets the "model" field.
func (u *AuditResponseUpsertBulk) SetModel(v string) *AuditResponseUpsertBulk {
	return u.Update(func(s *AuditResponseUpsert) {
		s.SetModel(v)
	})
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *AuditResponseUpsertBulk) UpdateModel() *AuditResponseUpsertBulk {
	return u.Update(func(s *AuditResponseUpsert) {
		s.UpdateModel()
	})
}

// ClearModel clears the value of the "model" field.
func (u *AuditResponseUpsertBulk) ClearModel() *AuditResponseUpsertBulk {
	return u.Update(func(s *AuditResponseUpsert) {
		s.ClearModel()
	})
}

// SetText sets the "text" field.
func (u *AuditResponseUpsertBulk) SetText(v string) *AuditResponseUpsertBulk {
	return u.Update(func(s *AuditResponseUpsert) {
		s.SetText(v)
	})
}

// UpdateText sets the "text" field to the value that was provided on create.
func (u *AuditResponseUpsertBulk) UpdateText() *AuditResponseUpsertBulk {
	return u.Update(func(s *AuditResponseUpsert) {
		s.UpdateText()
	})
}

// ClearText clears the value of the "text" field.
func (u *AuditResponseUpsertBulk) ClearText() *AuditResponseUpsertBulk {
	return u.Update(func(s *AuditResponseUpsert) {
		s.ClearText()
	})
}

// SetLatencyMs sets the "latency_ms" field.
func (u *AuditResponseUpsertBulk) SetLatencyMs(v int) *AuditResponseUpsertBulk {
	return u.Update(func(s *AuditResponseUpsert) {
		s.SetLatencyMs(v)
	})
}

// AddLatencyMs adds v to the "latency_ms" field.
func (u *AuditResponseUpsertBulk) AddLatencyMs(v int) *AuditResponseUpsertBulk {
	return u.Update(func(s *AuditResponseUpsert) {
		s.AddLatencyMs(v)
	})
}

// UpdateLatencyMs sets the "latency_ms" field to the value that was provided on create.
func (u *AuditResponseUpsertBulk) UpdateLatencyMs() *AuditResponseUpsertBulk {
	return u.Update(func(s *AuditResponseUpsert) {
		s.UpdateLatencyMs()
	})
}

// SetInputTokens sets the "input_tokens" field.
func (u *AuditResponseUpsertBulk) SetInputTokens(v int) *AuditResponseUpsertBulk {
	return u.Update(func(s *AuditResponseUpsert) {
		s.SetInputTokens(v)
	})
}

// AddInputTokens adds v to the "input_tokens" field.
func (u *AuditResponseUpsertBulk) AddInputTokens(v int) *AuditResponseUpsertBulk {
	return u.Update(func(s *AuditResponseUpsert) {
		s.AddInputTokens(v)
	})
}

// UpdateInputTokens sets the "input_tokens" field to the value that was provided on create.
func (u *AuditResponseUpsertBulk) UpdateInputTokens() *AuditResponseUpsertBulk {
	return u.Update(func(s *AuditResponseUpsert) {
		s.UpdateInputTokens()
	})
}

// SetOutputTokens sets the "output_tokens" field.
func (u *AuditResponseUpsertBulk) SetOutputTokens(v int) *AuditResponseUpsertBulk {
	return u.Update(func(s *AuditResponseUpsert) {
		s.SetOutputTokens(v)
	})
}

// AddOutputTokens adds v to the "output_tokens" field.
func (u *AuditResponseUpsertBulk) AddOutputTokens(v int) *AuditResponseUpsertBulk {
	return u.Update(func(s *AuditResponseUpsert) {
		s.AddOutputTokens(v)
	})
}

// UpdateOutputTokens sets the "output_tokens" field to the value that was provided on create.
func (u *AuditResponseUpsertBulk) UpdateOutputTokens() *AuditResponseUpsertBulk {
	return u.Update(func(s *AuditResponseUpsert) {
		s.UpdateOutputTokens()
	})
}

// SetCostEstimate sets the "cost_estimate" field.
func (u *AuditResponseUpsertBulk) SetCostEstimate(v float64) *AuditResponseUpsertBulk {
	return u.Update(func(s *AuditResponseUpsert) {
		s.SetCostEstimate(v)
	})
}

// AddCostEstimate adds v to the "cost_estimate" field.
func (u *AuditResponseUpsertBulk) AddCostEstimate(v float64) *AuditResponseUpsertBulk {
	return u.Update(func(s *AuditResponseUpsert) {
		s.AddCostEstimate(v)
	})
}

// UpdateCostEstimate sets the "cost_estimate" field to the value that was provided on create.
func (u *AuditResponseUpsertBulk) UpdateCostEstimate() *AuditResponseUpsertBulk {
	return u.Update(func(s *AuditResponseUpsert) {
		s.UpdateCostEstimate()
	})
}

// ClearCostEstimate clears the value of the "cost_estimate" field.
func (u *AuditResponseUpsertBulk) ClearCostEstimate() *AuditResponseUpsertBulk {
	return u.Update(func(s *AuditResponseUpsert) {
		s.ClearCostEstimate()
	})
}

// SetErrorKind sets the "error_kind" field.
func (u *AuditResponseUpsertBulk) SetErrorKind(v auditresponse.ErrorKind) *AuditResponseUpsertBulk {
	return u.Update(func(s *AuditResponseUpsert) {
		s.SetErrorKind(v)
	})
}

// UpdateErrorKind sets the "error_kind" field to the value that was provided on create.
func (u *AuditResponseUpsertBulk) UpdateErrorKind() *AuditResponseUpsertBulk {
	return u.Update(func(s *AuditResponseUpsert) {
		s.UpdateErrorKind()
	})
}

// ClearErrorKind clears the value of the "error_kind" field.
func (u *AuditResponseUpsertBulk) ClearErrorKind() *AuditResponseUpsertBulk {
	return u.Update(func(s *AuditResponseUpsert) {
		s.ClearErrorKind()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *AuditResponseUpsertBulk) SetErrorMessage(v string) *AuditResponseUpsertBulk {
	return u.Update(func(s *AuditResponseUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *AuditResponseUpsertBulk) UpdateErrorMessage() *AuditResponseUpsertBulk {
	return u.Update(func(s *AuditResponseUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *AuditResponseUpsertBulk) ClearErrorMessage() *AuditResponseUpsertBulk {
	return u.Update(func(s *AuditResponseUpsert) {
		s.ClearErrorMessage()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *AuditResponseUpsertBulk) SetCreatedAt(v time.Time) *AuditResponseUpsertBulk {
	return u.Update(func(s *AuditResponseUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *AuditResponseUpsertBulk) UpdateCreatedAt() *AuditResponseUpsertBulk {
	return u.Update(func(s *AuditResponseUpsert) {
		s.UpdateCreatedAt()
	})
}

// Exec executes the query.
func (u *AuditResponseUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AuditResponseCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AuditResponseCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AuditResponseUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
