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
	"github.com/specularhq/specular/ent/auditanalysis"
	"github.com/specularhq/specular/ent/auditresponse"
	"github.com/specularhq/specular/ent/predicate"
)

// AuditResponseUpdate is the builder for updating AuditResponse entities.
type AuditResponseUpdate struct {
	config
	hooks    []Hook
	mutation *AuditResponseMutation
}

// Where appends a list predicates to the AuditResponseUpdate builder.
func (_u *AuditResponseUpdate) Where(ps ...predicate.AuditResponse) *AuditResponseUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProvider sets the "provider" field.
func (_u *AuditResponseUpdate) SetProvider(v string) *AuditResponseUpdate {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *AuditResponseUpdate) SetNillableProvider(v *string) *AuditResponseUpdate {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *AuditResponseUpdate) SetModel(v string) *AuditResponseUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *AuditResponseUpdate) SetNillableModel(v *string) *AuditResponseUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// ClearModel clears the value of the "model" field.
func (_u *AuditResponseUpdate) ClearModel() *AuditResponseUpdate {
	_u.mutation.ClearModel()
	return _u
}

// SetText sets the "text" field.
func (_u *AuditResponseUpdate) SetText(v string) *AuditResponseUpdate {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *AuditResponseUpdate) SetNillableText(v *string) *AuditResponseUpdate {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// ClearText clears the value of the "text" field.
func (_u *AuditResponseUpdate) ClearText() *AuditResponseUpdate {
	_u.mutation.ClearText()
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *AuditResponseUpdate) SetLatencyMs(v int) *AuditResponseUpdate {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *AuditResponseUpdate) SetNillableLatencyMs(v *int) *AuditResponseUpdate {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *AuditResponseUpdate) AddLatencyMs(v int) *AuditResponseUpdate {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// SetInputTokens sets the "input_tokens" field.
func (_u *AuditResponseUpdate) SetInputTokens(v int) *AuditResponseUpdate {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *AuditResponseUpdate) SetNillableInputTokens(v *int) *AuditResponseUpdate {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *AuditResponseUpdate) AddInputTokens(v int) *AuditResponseUpdate {
	_u.mutation.AddInputTokens(v)
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *AuditResponseUpdate) SetOutputTokens(v int) *AuditResponseUpdate {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *AuditResponseUpdate) SetNillableOutputTokens(v *int) *AuditResponseUpdate {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *AuditResponseUpdate) AddOutputTokens(v int) *AuditResponseUpdate {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// SetCostEstimate sets the "cost_estimate" field.
func (_u *AuditResponseUpdate) SetCostEstimate(v float64) *AuditResponseUpdate {
	_u.mutation.ResetCostEstimate()
	_u.mutation.SetCostEstimate(v)
	return _u
}

// SetNillableCostEstimate sets the "cost_estimate" field if the given value is not nil.
func (_u *AuditResponseUpdate) SetNillableCostEstimate(v *float64) *AuditResponseUpdate {
	if v != nil {
		_u.SetCostEstimate(*v)
	}
	return _u
}

// AddCostEstimate adds value to the "cost_estimate" field.
func (_u *AuditResponseUpdate) AddCostEstimate(v float64) *AuditResponseUpdate {
	_u.mutation.AddCostEstimate(v)
	return _u
}

// ClearCostEstimate clears the value of the "cost_estimate" field.
func (_u *AuditResponseUpdate) ClearCostEstimate() *AuditResponseUpdate {
	_u.mutation.ClearCostEstimate()
	return _u
}

// SetErrorKind sets the "error_kind" field.
func (_u *AuditResponseUpdate) SetErrorKind(v auditresponse.ErrorKind) *AuditResponseUpdate {
	_u.mutation.SetErrorKind(v)
	return _u
}

// SetNillableErrorKind sets the "error_kind" field if the given value is not nil.
func (_u *AuditResponseUpdate) SetNillableErrorKind(v *auditresponse.ErrorKind) *AuditResponseUpdate {
	if v != nil {
		_u.SetErrorKind(*v)
	}
	return _u
}

// ClearErrorKind clears the value of the "error_kind" field.
func (_u *AuditResponseUpdate) ClearErrorKind() *AuditResponseUpdate {
	_u.mutation.ClearErrorKind()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *AuditResponseUpdate) SetErrorMessage(v string) *AuditResponseUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *AuditResponseUpdate) SetNillableErrorMessage(v *string) *AuditResponseUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *AuditResponseUpdate) ClearErrorMessage() *AuditResponseUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *AuditResponseUpdate) SetCreatedAt(v time.Time) *AuditResponseUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *AuditResponseUpdate) SetNillableCreatedAt(v *time.Time) *AuditResponseUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetAnalysisID sets the "analysis" edge to the AuditAnalysis entity by ID.
func (_u *AuditResponseUpdate) SetAnalysisID(id string) *AuditResponseUpdate {
	_u.mutation.SetAnalysisID(id)
	return _u
}

// SetNillableAnalysisID sets the "analysis" edge to the AuditAnalysis entity by ID if the given value is not nil.
func (_u *AuditResponseUpdate) SetNillableAnalysisID(id *string) *AuditResponseUpdate {
	if id != nil {
		_u = _u.SetAnalysisID(*id)
	}
	return _u
}

// SetAnalysis sets the "analysis" edge to the AuditAnalysis entity.
func (_u *AuditResponseUpdate) SetAnalysis(v *AuditAnalysis) *AuditResponseUpdate {
	return _u.SetAnalysisID(v.ID)
}

// Mutation returns the AuditResponseMutation object of the builder.
func (_u *AuditResponseUpdate) Mutation() *AuditResponseMutation {
	return _u.mutation
}

// ClearAnalysis clears the "analysis" edge to the AuditAnalysis entity.
func (_u *AuditResponseUpdate) ClearAnalysis() *AuditResponseUpdate {
	_u.mutation.ClearAnalysis()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AuditResponseUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AuditResponseUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AuditResponseUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AuditResponseUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AuditResponseUpdate) check() error {
	if v, ok := _u.mutation.Provider(); ok {
		if err := auditresponse.ProviderValidator(v); err != nil {
			return &ValidationError{Name: "provider", err: fmt.Errorf(`ent: validator failed for field "AuditResponse.provider": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ErrorKind(); ok {
		if err := auditresponse.ErrorKindValidator(v); err != nil {
			return &ValidationError{Name: "error_kind", err: fmt.Errorf(`ent: validator failed for field "AuditResponse.error_kind": %w`, err)}
		}
	}
	if _u.mutation.AuditCleared() && len(_u.mutation.AuditIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AuditResponse.audit"`)
	}
	if _u.mutation.QueryCleared() && len(_u.mutation.QueryIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AuditResponse.query"`)
	}
	return nil
}

func (_u *AuditResponseUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(auditresponse.Table, auditresponse.Columns, sqlgraph.NewFieldSpec(auditresponse.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(auditresponse.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(auditresponse.FieldModel, field.TypeString, value)
	}
	if _u.mutation.ModelCleared() {
		_spec.ClearField(auditresponse.FieldModel, field.TypeString)
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(auditresponse.FieldText, field.TypeString, value)
	}
	if _u.mutation.TextCleared() {
		_spec.ClearField(auditresponse.FieldText, field.TypeString)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(auditresponse.FieldLatencyMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(auditresponse.FieldLatencyMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(auditresponse.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(auditresponse.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(auditresponse.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(auditresponse.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CostEstimate(); ok {
		_spec.SetField(auditresponse.FieldCostEstimate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCostEstimate(); ok {
		_spec.AddField(auditresponse.FieldCostEstimate, field.TypeFloat64, value)
	}
	if _u.mutation.CostEstimateCleared() {
		_spec.ClearField(auditresponse.FieldCostEstimate, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ErrorKind(); ok {
		_spec.SetField(auditresponse.FieldErrorKind, field.TypeEnum, value)
	}
	if _u.mutation.ErrorKindCleared() {
		_spec.ClearField(auditresponse.FieldErrorKind, field.TypeEnum)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(auditresponse.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(auditresponse.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(auditresponse.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.AnalysisCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AnalysisIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{auditresponse.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AuditResponseUpdateOne is the builder for updating a single AuditResponse entity.
type AuditResponseUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AuditResponseMutation
}

// SetProvider sets the "provider" field.
func (_u *AuditResponseUpdateOne) SetProvider(v string) *AuditResponseUpdateOne {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *AuditResponseUpdateOne) SetNillableProvider(v *string) *AuditResponseUpdateOne {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *AuditResponseUpdateOne) SetModel(v string) *AuditResponseUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *AuditResponseUpdateOne) SetNillableModel(v *string) *AuditResponseUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// ClearModel clears the value of the "model" field.
func (_u *AuditResponseUpdateOne) ClearModel() *AuditResponseUpdateOne {
	_u.mutation.ClearModel()
	return _u
}

// SetText sets the "text" field.
func (_u *AuditResponseUpdateOne) SetText(v string) *AuditResponseUpdateOne {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *AuditResponseUpdateOne) SetNillableText(v *string) *AuditResponseUpdateOne {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// ClearText clears the value of the "text" field.
func (_u *AuditResponseUpdateOne) ClearText() *AuditResponseUpdateOne {
	_u.mutation.ClearText()
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *AuditResponseUpdateOne) SetLatencyMs(v int) *AuditResponseUpdateOne {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *AuditResponseUpdateOne) SetNillableLatencyMs(v *int) *AuditResponseUpdateOne {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *AuditResponseUpdateOne) AddLatencyMs(v int) *AuditResponseUpdateOne {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// SetInputTokens sets the "input_tokens" field.
func (_u *AuditResponseUpdateOne) SetInputTokens(v int) *AuditResponseUpdateOne {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *AuditResponseUpdateOne) SetNillableInputTokens(v *int) *AuditResponseUpdateOne {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *AuditResponseUpdateOne) AddInputTokens(v int) *AuditResponseUpdateOne {
	_u.mutation.AddInputTokens(v)
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *AuditResponseUpdateOne) SetOutputTokens(v int) *AuditResponseUpdateOne {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *AuditResponseUpdateOne) SetNillableOutputTokens(v *int) *AuditResponseUpdateOne {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *AuditResponseUpdateOne) AddOutputTokens(v int) *AuditResponseUpdateOne {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// SetCostEstimate sets the "cost_estimate" field.
func (_u *AuditResponseUpdateOne) SetCostEstimate(v float64) *AuditResponseUpdateOne {
	_u.mutation.ResetCostEstimate()
	_u.mutation.SetCostEstimate(v)
	return _u
}

// SetNillableCostEstimate sets the "cost_estimate" field if the given value is not nil.
func (_u *AuditResponseUpdateOne) SetNillableCostEstimate(v *float64) *AuditResponseUpdateOne {
	if v != nil {
		_u.SetCostEstimate(*v)
	}
	return _u
}

// AddCostEstimate adds value to the "cost_estimate" field.
func (_u *AuditResponseUpdateOne) AddCostEstimate(v float64) *AuditResponseUpdateOne {
	_u.mutation.AddCostEstimate(v)
	return _u
}

// ClearCostEstimate clears the value of the "cost_estimate" field.
func (_u *AuditResponseUpdateOne) ClearCostEstimate() *AuditResponseUpdateOne {
	_u.mutation.ClearCostEstimate()
	return _u
}

// SetErrorKind sets the "error_kind" field.
func (_u *AuditResponseUpdateOne) SetErrorKind(v auditresponse.ErrorKind) *AuditResponseUpdateOne {
	_u.mutation.SetErrorKind(v)
	return _u
}

// SetNillableErrorKind sets the "error_kind" field if the given value is not nil.
func (_u *AuditResponseUpdateOne) SetNillableErrorKind(v *auditresponse.ErrorKind) *AuditResponseUpdateOne {
	if v != nil {
		_u.SetErrorKind(*v)
	}
	return _u
}

// ClearErrorKind clears the value of the "error_kind" field.
func (_u *AuditResponseUpdateOne) ClearErrorKind() *AuditResponseUpdateOne {
	_u.mutation.ClearErrorKind()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *AuditResponseUpdateOne) SetErrorMessage(v string) *AuditResponseUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *AuditResponseUpdateOne) SetNillableErrorMessage(v *string) *AuditResponseUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *AuditResponseUpdateOne) ClearErrorMessage() *AuditResponseUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *AuditResponseUpdateOne) SetCreatedAt(v time.Time) *AuditResponseUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *AuditResponseUpdateOne) SetNillableCreatedAt(v *time.Time) *AuditResponseUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetAnalysisID sets the "analysis" edge to the AuditAnalysis entity by ID.
func (_u *AuditResponseUpdateOne) SetAnalysisID(id string) *AuditResponseUpdateOne {
	_u.mutation.SetAnalysisID(id)
	return _u
}

// SetNillableAnalysisID sets the "analysis" edge to the AuditAnalysis entity by ID if the given value is not nil.
func (_u *AuditResponseUpdateOne) SetNillableAnalysisID(id *string) *AuditResponseUpdateOne {
	if id != nil {
		_u = _u.SetAnalysisID(*id)
	}
	return _u
}

// SetAnalysis sets the "analysis" edge to the AuditAnalysis entity.
func (_u *AuditResponseUpdateOne) SetAnalysis(v *AuditAnalysis) *AuditResponseUpdateOne {
	return _u.SetAnalysisID(v.ID)
}

// Mutation returns the AuditResponseMutation object of the builder.
func (_u *AuditResponseUpdateOne) Mutation() *AuditResponseMutation {
	return _u.mutation
}

// ClearAnalysis clears the "analysis" edge to the AuditAnalysis entity.
func (_u *AuditResponseUpdateOne) ClearAnalysis() *AuditResponseUpdateOne {
	_u.mutation.ClearAnalysis()
	return _u
}

// Where appends a list predicates to the AuditResponseUpdate builder.
func (_u *AuditResponseUpdateOne) Where(ps ...predicate.AuditResponse) *AuditResponseUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AuditResponseUpdateOne) Select(field string, fields ...string) *AuditResponseUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AuditResponse entity.
func (_u *AuditResponseUpdateOne) Save(ctx context.Context) (*AuditResponse, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AuditResponseUpdateOne) SaveX(ctx context.Context) *AuditResponse {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AuditResponseUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AuditResponseUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AuditResponseUpdateOne) check() error {
	if v, ok := _u.mutation.Provider(); ok {
		if err := auditresponse.ProviderValidator(v); err != nil {
			return &ValidationError{Name: "provider", err: fmt.Errorf(`ent: validator failed for field "AuditResponse.provider": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ErrorKind(); ok {
		if err := auditresponse.ErrorKindValidator(v); err != nil {
			return &ValidationError{Name: "error_kind", err: fmt.Errorf(`ent: validator failed for field "AuditResponse.error_kind": %w`, err)}
		}
	}
	if _u.mutation.AuditCleared() && len(_u.mutation.AuditIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AuditResponse.audit"`)
	}
	if _u.mutation.QueryCleared() && len(_u.mutation.QueryIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AuditResponse.query"`)
	}
	return nil
}

func (_u *AuditResponseUpdateOne) sqlSave(ctx context.Context) (_node *AuditResponse, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(auditresponse.Table, auditresponse.Columns, sqlgraph.NewFieldSpec(auditresponse.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AuditResponse.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, auditresponse.FieldID)
		for _, f := range fields {
			if !auditresponse.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != auditresponse.FieldID {
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
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(auditresponse.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(auditresponse.FieldModel, field.TypeString, value)
	}
	if _u.mutation.ModelCleared() {
		_spec.ClearField(auditresponse.FieldModel, field.TypeString)
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(auditresponse.FieldText, field.TypeString, value)
	}
	if _u.mutation.TextCleared() {
		_spec.ClearField(auditresponse.FieldText, field.TypeString)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(auditresponse.FieldLatencyMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(auditresponse.FieldLatencyMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(auditresponse.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(auditresponse.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(auditresponse.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(auditresponse.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CostEstimate(); ok {
		_spec.SetField(auditresponse.FieldCostEstimate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCostEstimate(); ok {
		_spec.AddField(auditresponse.FieldCostEstimate, field.TypeFloat64, value)
	}
	if _u.mutation.CostEstimateCleared() {
		_spec.ClearField(auditresponse.FieldCostEstimate, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ErrorKind(); ok {
		_spec.SetField(auditresponse.FieldErrorKind, field.TypeEnum, value)
	}
	if _u.mutation.ErrorKindCleared() {
		_spec.ClearField(auditresponse.FieldErrorKind, field.TypeEnum)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(auditresponse.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(auditresponse.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(auditresponse.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.AnalysisCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AnalysisIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &AuditResponse{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{auditresponse.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
