// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/specularhq/specular/ent/auditdashboard"
	"github.com/specularhq/specular/ent/predicate"
	"github.com/specularhq/specular/ent/schema"
)

// AuditDashboardUpdate is the builder for updating AuditDashboard entities.
type AuditDashboardUpdate struct {
	config
	hooks    []Hook
	mutation *AuditDashboardMutation
}

// Where appends a list predicates to the AuditDashboardUpdate builder.
func (_u *AuditDashboardUpdate) Where(ps ...predicate.AuditDashboard) *AuditDashboardUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetScores sets the "scores" field.
func (_u *AuditDashboardUpdate) SetScores(v schema.DashboardScores) *AuditDashboardUpdate {
	_u.mutation.SetScores(v)
	return _u
}

// SetNillableScores sets the "scores" field if the given value is not nil.
func (_u *AuditDashboardUpdate) SetNillableScores(v *schema.DashboardScores) *AuditDashboardUpdate {
	if v != nil {
		_u.SetScores(*v)
	}
	return _u
}

// SetRecommendations sets the "recommendations" field.
func (_u *AuditDashboardUpdate) SetRecommendations(v []schema.RankedRecommendation) *AuditDashboardUpdate {
	_u.mutation.SetRecommendations(v)
	return _u
}

// AppendRecommendations appends value to the "recommendations" field.
func (_u *AuditDashboardUpdate) AppendRecommendations(v []schema.RankedRecommendation) *AuditDashboardUpdate {
	_u.mutation.AppendRecommendations(v)
	return _u
}

// ClearRecommendations clears the value of the "recommendations" field.
func (_u *AuditDashboardUpdate) ClearRecommendations() *AuditDashboardUpdate {
	_u.mutation.ClearRecommendations()
	return _u
}

// SetCompetitorLandscape sets the "competitor_landscape" field.
func (_u *AuditDashboardUpdate) SetCompetitorLandscape(v schema.CompetitorLandscape) *AuditDashboardUpdate {
	_u.mutation.SetCompetitorLandscape(v)
	return _u
}

// SetNillableCompetitorLandscape sets the "competitor_landscape" field if the given value is not nil.
func (_u *AuditDashboardUpdate) SetNillableCompetitorLandscape(v *schema.CompetitorLandscape) *AuditDashboardUpdate {
	if v != nil {
		_u.SetCompetitorLandscape(*v)
	}
	return _u
}

// ClearCompetitorLandscape clears the value of the "competitor_landscape" field.
func (_u *AuditDashboardUpdate) ClearCompetitorLandscape() *AuditDashboardUpdate {
	_u.mutation.ClearCompetitorLandscape()
	return _u
}

// SetCategoryInsights sets the "category_insights" field.
func (_u *AuditDashboardUpdate) SetCategoryInsights(v []schema.CategoryInsight) *AuditDashboardUpdate {
	_u.mutation.SetCategoryInsights(v)
	return _u
}

// AppendCategoryInsights appends value to the "category_insights" field.
func (_u *AuditDashboardUpdate) AppendCategoryInsights(v []schema.CategoryInsight) *AuditDashboardUpdate {
	_u.mutation.AppendCategoryInsights(v)
	return _u
}

// ClearCategoryInsights clears the value of the "category_insights" field.
func (_u *AuditDashboardUpdate) ClearCategoryInsights() *AuditDashboardUpdate {
	_u.mutation.ClearCategoryInsights()
	return _u
}

// SetExecutiveSummary sets the "executive_summary" field.
func (_u *AuditDashboardUpdate) SetExecutiveSummary(v string) *AuditDashboardUpdate {
	_u.mutation.SetExecutiveSummary(v)
	return _u
}

// SetNillableExecutiveSummary sets the "executive_summary" field if the given value is not nil.
func (_u *AuditDashboardUpdate) SetNillableExecutiveSummary(v *string) *AuditDashboardUpdate {
	if v != nil {
		_u.SetExecutiveSummary(*v)
	}
	return _u
}

// ClearExecutiveSummary clears the value of the "executive_summary" field.
func (_u *AuditDashboardUpdate) ClearExecutiveSummary() *AuditDashboardUpdate {
	_u.mutation.ClearExecutiveSummary()
	return _u
}

// Mutation returns the AuditDashboardMutation object of the builder.
func (_u *AuditDashboardUpdate) Mutation() *AuditDashboardMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AuditDashboardUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AuditDashboardUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AuditDashboardUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AuditDashboardUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AuditDashboardUpdate) check() error {
	if _u.mutation.AuditCleared() && len(_u.mutation.AuditIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AuditDashboard.audit"`)
	}
	return nil
}

func (_u *AuditDashboardUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(auditdashboard.Table, auditdashboard.Columns, sqlgraph.NewFieldSpec(auditdashboard.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Scores(); ok {
		_spec.SetField(auditdashboard.FieldScores, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Recommendations(); ok {
		_spec.SetField(auditdashboard.FieldRecommendations, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRecommendations(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, auditdashboard.FieldRecommendations, value)
		})
	}
	if _u.mutation.RecommendationsCleared() {
		_spec.ClearField(auditdashboard.FieldRecommendations, field.TypeJSON)
	}
	if value, ok := _u.mutation.CompetitorLandscape(); ok {
		_spec.SetField(auditdashboard.FieldCompetitorLandscape, field.TypeJSON, value)
	}
	if _u.mutation.CompetitorLandscapeCleared() {
		_spec.ClearField(auditdashboard.FieldCompetitorLandscape, field.TypeJSON)
	}
	if value, ok := _u.mutation.CategoryInsights(); ok {
		_spec.SetField(auditdashboard.FieldCategoryInsights, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCategoryInsights(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, auditdashboard.FieldCategoryInsights, value)
		})
	}
	if _u.mutation.CategoryInsightsCleared() {
		_spec.ClearField(auditdashboard.FieldCategoryInsights, field.TypeJSON)
	}
	if value, ok := _u.mutation.ExecutiveSummary(); ok {
		_spec.SetField(auditdashboard.FieldExecutiveSummary, field.TypeString, value)
	}
	if _u.mutation.ExecutiveSummaryCleared() {
		_spec.ClearField(auditdashboard.FieldExecutiveSummary, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{auditdashboard.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AuditDashboardUpdateOne is the builder for updating a single AuditDashboard entity.
type AuditDashboardUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AuditDashboardMutation
}

// SetScores sets the "scores" field.
func (_u *AuditDashboardUpdateOne) SetScores(v schema.DashboardScores) *AuditDashboardUpdateOne {
	_u.mutation.SetScores(v)
	return _u
}

// SetNillableScores sets the "scores" field if the given value is not nil.
func (_u *AuditDashboardUpdateOne) SetNillableScores(v *schema.DashboardScores) *AuditDashboardUpdateOne {
	if v != nil {
		_u.SetScores(*v)
	}
	return _u
}

// SetRecommendations sets the "recommendations" field.
func (_u *AuditDashboardUpdateOne) SetRecommendations(v []schema.RankedRecommendation) *AuditDashboardUpdateOne {
	_u.mutation.SetRecommendations(v)
	return _u
}

// AppendRecommendations appends value to the "recommendations" field.
func (_u *AuditDashboardUpdateOne) AppendRecommendations(v []schema.RankedRecommendation) *AuditDashboardUpdateOne {
	_u.mutation.AppendRecommendations(v)
	return _u
}

// ClearRecommendations clears the value of the "recommendations" field.
func (_u *AuditDashboardUpdateOne) ClearRecommendations() *AuditDashboardUpdateOne {
	_u.mutation.ClearRecommendations()
	return _u
}

// SetCompetitorLandscape sets the "competitor_landscape" field.
func (_u *AuditDashboardUpdateOne) SetCompetitorLandscape(v schema.CompetitorLandscape) *AuditDashboardUpdateOne {
	_u.mutation.SetCompetitorLandscape(v)
	return _u
}

// SetNillableCompetitorLandscape sets the "competitor_landscape" field if the given value is not nil.
func (_u *AuditDashboardUpdateOne) SetNillableCompetitorLandscape(v *schema.CompetitorLandscape) *AuditDashboardUpdateOne {
	if v != nil {
		_u.SetCompetitorLandscape(*v)
	}
	return _u
}

// ClearCompetitorLandscape clears the value of the "competitor_landscape" field.
func (_u *AuditDashboardUpdateOne) ClearCompetitorLandscape() *AuditDashboardUpdateOne {
	_u.mutation.ClearCompetitorLandscape()
	return _u
}

// SetCategoryInsights sets the "category_insights" field.
func (_u *AuditDashboardUpdateOne) SetCategoryInsights(v []schema.CategoryInsight) *AuditDashboardUpdateOne {
	_u.mutation.SetCategoryInsights(v)
	return _u
}

// AppendCategoryInsights appends value to the "category_insights" field.
func (_u *AuditDashboardUpdateOne) AppendCategoryInsights(v []schema.CategoryInsight) *AuditDashboardUpdateOne {
	_u.mutation.AppendCategoryInsights(v)
	return _u
}

// ClearCategoryInsights clears the value of the "category_insights" field.
func (_u *AuditDashboardUpdateOne) ClearCategoryInsights() *AuditDashboardUpdateOne {
	_u.mutation.ClearCategoryInsights()
	return _u
}

// SetExecutiveSummary sets the "executive_summary" field.
func (_u *AuditDashboardUpdateOne) SetExecutiveSummary(v string) *AuditDashboardUpdateOne {
	_u.mutation.SetExecutiveSummary(v)
	return _u
}

// SetNillableExecutiveSummary sets the "executive_summary" field if the given value is not nil.
func (_u *AuditDashboardUpdateOne) SetNillableExecutiveSummary(v *string) *AuditDashboardUpdateOne {
	if v != nil {
		_u.SetExecutiveSummary(*v)
	}
	return _u
}

// ClearExecutiveSummary clears the value of the "executive_summary" field.
func (_u *AuditDashboardUpdateOne) ClearExecutiveSummary() *AuditDashboardUpdateOne {
	_u.mutation.ClearExecutiveSummary()
	return _u
}

// Mutation returns the AuditDashboardMutation object of the builder.
func (_u *AuditDashboardUpdateOne) Mutation() *AuditDashboardMutation {
	return _u.mutation
}

// Where appends a list predicates to the AuditDashboardUpdate builder.
func (_u *AuditDashboardUpdateOne) Where(ps ...predicate.AuditDashboard) *AuditDashboardUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AuditDashboardUpdateOne) Select(field string, fields ...string) *AuditDashboardUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AuditDashboard entity.
func (_u *AuditDashboardUpdateOne) Save(ctx context.Context) (*AuditDashboard, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AuditDashboardUpdateOne) SaveX(ctx context.Context) *AuditDashboard {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AuditDashboardUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AuditDashboardUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AuditDashboardUpdateOne) check() error {
	if _u.mutation.AuditCleared() && len(_u.mutation.AuditIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AuditDashboard.audit"`)
	}
	return nil
}

func (_u *AuditDashboardUpdateOne) sqlSave(ctx context.Context) (_node *AuditDashboard, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(auditdashboard.Table, auditdashboard.Columns, sqlgraph.NewFieldSpec(auditdashboard.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AuditDashboard.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, auditdashboard.FieldID)
		for _, f := range fields {
			if !auditdashboard.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != auditdashboard.FieldID {
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
	if value, ok := _u.mutation.Scores(); ok {
		_spec.SetField(auditdashboard.FieldScores, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Recommendations(); ok {
		_spec.SetField(auditdashboard.FieldRecommendations, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRecommendations(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, auditdashboard.FieldRecommendations, value)
		})
	}
	if _u.mutation.RecommendationsCleared() {
		_spec.ClearField(auditdashboard.FieldRecommendations, field.TypeJSON)
	}
	if value, ok := _u.mutation.CompetitorLandscape(); ok {
		_spec.SetField(auditdashboard.FieldCompetitorLandscape, field.TypeJSON, value)
	}
	if _u.mutation.CompetitorLandscapeCleared() {
		_spec.ClearField(auditdashboard.FieldCompetitorLandscape, field.TypeJSON)
	}
	if value, ok := _u.mutation.CategoryInsights(); ok {
		_spec.SetField(auditdashboard.FieldCategoryInsights, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCategoryInsights(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, auditdashboard.FieldCategoryInsights, value)
		})
	}
	if _u.mutation.CategoryInsightsCleared() {
		_spec.ClearField(auditdashboard.FieldCategoryInsights, field.TypeJSON)
	}
	if value, ok := _u.mutation.ExecutiveSummary(); ok {
		_spec.SetField(auditdashboard.FieldExecutiveSummary, field.TypeString, value)
	}
	if _u.mutation.ExecutiveSummaryCleared() {
		_spec.ClearField(auditdashboard.FieldExecutiveSummary, field.TypeString)
	}
	_node = &AuditDashboard{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{auditdashboard.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
