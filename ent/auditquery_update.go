// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/specularhq/specular/ent/auditquery"
	"github.com/specularhq/specular/ent/auditresponse"
	"github.com/specularhq/specular/ent/predicate"
)

// AuditQueryUpdate is the builder for updating AuditQuery entities.
type AuditQueryUpdate struct {
	config
	hooks    []Hook
	mutation *AuditQueryMutation
}

// Where appends a list predicates to the AuditQueryUpdate builder.
func (_u *AuditQueryUpdate) Where(ps ...predicate.AuditQuery) *AuditQueryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetText sets the "text" field.
func (_u *AuditQueryUpdate) SetText(v string) *AuditQueryUpdate {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *AuditQueryUpdate) SetNillableText(v *string) *AuditQueryUpdate {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetTextNormalized sets the "text_normalized" field.
func (_u *AuditQueryUpdate) SetTextNormalized(v string) *AuditQueryUpdate {
	_u.mutation.SetTextNormalized(v)
	return _u
}

// SetNillableTextNormalized sets the "text_normalized" field if the given value is not nil.
func (_u *AuditQueryUpdate) SetNillableTextNormalized(v *string) *AuditQueryUpdate {
	if v != nil {
		_u.SetTextNormalized(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *AuditQueryUpdate) SetCategory(v auditquery.Category) *AuditQueryUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *AuditQueryUpdate) SetNillableCategory(v *auditquery.Category) *AuditQueryUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetIntent sets the "intent" field.
func (_u *AuditQueryUpdate) SetIntent(v string) *AuditQueryUpdate {
	_u.mutation.SetIntent(v)
	return _u
}

// SetNillableIntent sets the "intent" field if the given value is not nil.
func (_u *AuditQueryUpdate) SetNillableIntent(v *string) *AuditQueryUpdate {
	if v != nil {
		_u.SetIntent(*v)
	}
	return _u
}

// ClearIntent clears the value of the "intent" field.
func (_u *AuditQueryUpdate) ClearIntent() *AuditQueryUpdate {
	_u.mutation.ClearIntent()
	return _u
}

// SetPriority sets the "priority" field.
func (_u *AuditQueryUpdate) SetPriority(v float64) *AuditQueryUpdate {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *AuditQueryUpdate) SetNillablePriority(v *float64) *AuditQueryUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *AuditQueryUpdate) AddPriority(v float64) *AuditQueryUpdate {
	_u.mutation.AddPriority(v)
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *AuditQueryUpdate) SetMetadata(v map[string]interface{}) *AuditQueryUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *AuditQueryUpdate) ClearMetadata() *AuditQueryUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *AuditQueryUpdate) SetCreatedAt(v time.Time) *AuditQueryUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *AuditQueryUpdate) SetNillableCreatedAt(v *time.Time) *AuditQueryUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// AddResponseIDs adds the "responses" edge to the AuditResponse entity by IDs.
func (_u *AuditQueryUpdate) AddResponseIDs(ids ...string) *AuditQueryUpdate {
	_u.mutation.AddResponseIDs(ids...)
	return _u
}

// AddResponses adds the "responses" edges to the AuditResponse entity.
func (_u *AuditQueryUpdate) AddResponses(v ...*AuditResponse) *AuditQueryUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddResponseIDs(ids...)
}

// Mutation returns the AuditQueryMutation object of the builder.
func (_u *AuditQueryUpdate) Mutation() *AuditQueryMutation {
	return _u.mutation
}

// ClearResponses clears all "responses" edges to the AuditResponse entity.
func (_u *AuditQueryUpdate) ClearResponses() *AuditQueryUpdate {
	_u.mutation.ClearResponses()
	return _u
}

// RemoveResponseIDs removes the "responses" edge to AuditResponse entities by IDs.
func (_u *AuditQueryUpdate) RemoveResponseIDs(ids ...string) *AuditQueryUpdate {
	_u.mutation.RemoveResponseIDs(ids...)
	return _u
}

// RemoveResponses removes "responses" edges to AuditResponse entities.
func (_u *AuditQueryUpdate) RemoveResponses(v ...*AuditResponse) *AuditQueryUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveResponseIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AuditQueryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AuditQueryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AuditQueryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AuditQueryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AuditQueryUpdate) check() error {
	if v, ok := _u.mutation.Text(); ok {
		if err := auditquery.TextValidator(v); err != nil {
			return &ValidationError{Name: "text", err: fmt.Errorf(`ent: validator failed for field "AuditQuery.text": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TextNormalized(); ok {
		if err := auditquery.TextNormalizedValidator(v); err != nil {
			return &ValidationError{Name: "text_normalized", err: fmt.Errorf(`ent: validator failed for field "AuditQuery.text_normalized": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := auditquery.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "AuditQuery.category": %w`, err)}
		}
	}
	if _u.mutation.AuditCleared() && len(_u.mutation.AuditIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AuditQuery.audit"`)
	}
	return nil
}

func (_u *AuditQueryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(auditquery.Table, auditquery.Columns, sqlgraph.NewFieldSpec(auditquery.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(auditquery.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.TextNormalized(); ok {
		_spec.SetField(auditquery.FieldTextNormalized, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(auditquery.FieldCategory, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Intent(); ok {
		_spec.SetField(auditquery.FieldIntent, field.TypeString, value)
	}
	if _u.mutation.IntentCleared() {
		_spec.ClearField(auditquery.FieldIntent, field.TypeString)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(auditquery.FieldPriority, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(auditquery.FieldPriority, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(auditquery.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(auditquery.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(auditquery.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.ResponsesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedResponsesIDs(); len(nodes) > 0 && !_u.mutation.ResponsesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ResponsesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{auditquery.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AuditQueryUpdateOne is the builder for updating a single AuditQuery entity.
type AuditQueryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AuditQueryMutation
}

// SetText sets the "text" field.
func (_u *AuditQueryUpdateOne) SetText(v string) *AuditQueryUpdateOne {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *AuditQueryUpdateOne) SetNillableText(v *string) *AuditQueryUpdateOne {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetTextNormalized sets the "text_normalized" field.
func (_u *AuditQueryUpdateOne) SetTextNormalized(v string) *AuditQueryUpdateOne {
	_u.mutation.SetTextNormalized(v)
	return _u
}

// SetNillableTextNormalized sets the "text_normalized" field if the given value is not nil.
func (_u *AuditQueryUpdateOne) SetNillableTextNormalized(v *string) *AuditQueryUpdateOne {
	if v != nil {
		_u.SetTextNormalized(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *AuditQueryUpdateOne) SetCategory(v auditquery.Category) *AuditQueryUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *AuditQueryUpdateOne) SetNillableCategory(v *auditquery.Category) *AuditQueryUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetIntent sets the "intent" field.
func (_u *AuditQueryUpdateOne) SetIntent(v string) *AuditQueryUpdateOne {
	_u.mutation.SetIntent(v)
	return _u
}

// SetNillableIntent sets the "intent" field if the given value is not nil.
func (_u *AuditQueryUpdateOne) SetNillableIntent(v *string) *AuditQueryUpdateOne {
	if v != nil {
		_u.SetIntent(*v)
	}
	return _u
}

// ClearIntent clears the value of the "intent" field.
func (_u *AuditQueryUpdateOne) ClearIntent() *AuditQueryUpdateOne {
	_u.mutation.ClearIntent()
	return _u
}

// SetPriority sets the "priority" field.
func (_u *AuditQueryUpdateOne) SetPriority(v float64) *AuditQueryUpdateOne {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *AuditQueryUpdateOne) SetNillablePriority(v *float64) *AuditQueryUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *AuditQueryUpdateOne) AddPriority(v float64) *AuditQueryUpdateOne {
	_u.mutation.AddPriority(v)
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *AuditQueryUpdateOne) SetMetadata(v map[string]interface{}) *AuditQueryUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *AuditQueryUpdateOne) ClearMetadata() *AuditQueryUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *AuditQueryUpdateOne) SetCreatedAt(v time.Time) *AuditQueryUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *AuditQueryUpdateOne) SetNillableCreatedAt(v *time.Time) *AuditQueryUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// AddResponseIDs adds the "responses" edge to the AuditResponse entity by IDs.
func (_u *AuditQueryUpdateOne) AddResponseIDs(ids ...string) *AuditQueryUpdateOne {
	_u.mutation.AddResponseIDs(ids...)
	return _u
}

// AddResponses adds the "responses" edges to the AuditResponse entity.
func (_u *AuditQueryUpdateOne) AddResponses(v ...*AuditResponse) *AuditQueryUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddResponseIDs(ids...)
}

// Mutation returns the AuditQueryMutation object of the builder.
func (_u *AuditQueryUpdateOne) Mutation() *AuditQueryMutation {
	return _u.mutation
}

// ClearResponses clears all "responses" edges to the AuditResponse entity.
func (_u *AuditQueryUpdateOne) ClearResponses() *AuditQueryUpdateOne {
	_u.mutation.ClearResponses()
	return _u
}

// RemoveResponseIDs removes the "responses" edge to AuditResponse entities by IDs.
func (_u *AuditQueryUpdateOne) RemoveResponseIDs(ids ...string) *AuditQueryUpdateOne {
	_u.mutation.RemoveResponseIDs(ids...)
	return _u
}

// RemoveResponses removes "responses" edges to AuditResponse entities.
func (_u *AuditQueryUpdateOne) RemoveResponses(v ...*AuditResponse) *AuditQueryUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveResponseIDs(ids...)
}

// Where appends a list predicates to the AuditQueryUpdate builder.
func (_u *AuditQueryUpdateOne) Where(ps ...predicate.AuditQuery) *AuditQueryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AuditQueryUpdateOne) Select(field string, fields ...string) *AuditQueryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AuditQuery entity.
func (_u *AuditQueryUpdateOne) Save(ctx context.Context) (*AuditQuery, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AuditQueryUpdateOne) SaveX(ctx context.Context) *AuditQuery {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AuditQueryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AuditQueryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AuditQueryUpdateOne) check() error {
	if v, ok := _u.mutation.Text(); ok {
		if err := auditquery.TextValidator(v); err != nil {
			return &ValidationError{Name: "text", err: fmt.Errorf(`ent: validator failed for field "AuditQuery.text": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TextNormalized(); ok {
		if err := auditquery.TextNormalizedValidator(v); err != nil {
			return &ValidationError{Name: "text_normalized", err: fmt.Errorf(`ent: validator failed for field "AuditQuery.text_normalized": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := auditquery.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "AuditQuery.category": %w`, err)}
		}
	}
	if _u.mutation.AuditCleared() && len(_u.mutation.AuditIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AuditQuery.audit"`)
	}
	return nil
}

func (_u *AuditQueryUpdateOne) sqlSave(ctx context.Context) (_node *AuditQuery, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(auditquery.Table, auditquery.Columns, sqlgraph.NewFieldSpec(auditquery.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AuditQuery.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, auditquery.FieldID)
		for _, f := range fields {
			if !auditquery.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != auditquery.FieldID {
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
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(auditquery.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.TextNormalized(); ok {
		_spec.SetField(auditquery.FieldTextNormalized, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(auditquery.FieldCategory, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Intent(); ok {
		_spec.SetField(auditquery.FieldIntent, field.TypeString, value)
	}
	if _u.mutation.IntentCleared() {
		_spec.ClearField(auditquery.FieldIntent, field.TypeString)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(auditquery.FieldPriority, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(auditquery.FieldPriority, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(auditquery.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(auditquery.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(auditquery.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.ResponsesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedResponsesIDs(); len(nodes) > 0 && !_u.mutation.ResponsesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ResponsesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &AuditQuery{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{auditquery.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
