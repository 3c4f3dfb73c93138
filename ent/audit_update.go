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
	"github.com/specularhq/specular/ent/auditaggregate"
	"github.com/specularhq/specular/ent/auditanalysis"
	"github.com/specularhq/specular/ent/auditdashboard"
	"github.com/specularhq/specular/ent/auditevent"
	"github.com/specularhq/specular/ent/auditquery"
	"github.com/specularhq/specular/ent/auditresponse"
	"github.com/specularhq/specular/ent/predicate"
)

// AuditUpdate is the builder for updating Audit entities.
type AuditUpdate struct {
	config
	hooks    []Hook
	mutation *AuditMutation
}

// Where appends a list predicates to the AuditUpdate builder.
func (_u *AuditUpdate) Where(ps ...predicate.Audit) *AuditUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *AuditUpdate) SetUserID(v string) *AuditUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *AuditUpdate) SetNillableUserID(v *string) *AuditUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AuditUpdate) SetStatus(v audit.Status) *AuditUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AuditUpdate) SetNillableStatus(v *audit.Status) *AuditUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetProviders sets the "providers" field.
func (_u *AuditUpdate) SetProviders(v []string) *AuditUpdate {
	_u.mutation.SetProviders(v)
	return _u
}

// AppendProviders appends value to the "providers" field.
func (_u *AuditUpdate) AppendProviders(v []string) *AuditUpdate {
	_u.mutation.AppendProviders(v)
	return _u
}

// SetQueryCount sets the "query_count" field.
func (_u *AuditUpdate) SetQueryCount(v int) *AuditUpdate {
	_u.mutation.ResetQueryCount()
	_u.mutation.SetQueryCount(v)
	return _u
}

// SetNillableQueryCount sets the "query_count" field if the given value is not nil.
func (_u *AuditUpdate) SetNillableQueryCount(v *int) *AuditUpdate {
	if v != nil {
		_u.SetQueryCount(*v)
	}
	return _u
}

// AddQueryCount adds value to the "query_count" field.
func (_u *AuditUpdate) AddQueryCount(v int) *AuditUpdate {
	_u.mutation.AddQueryCount(v)
	return _u
}

// SetOverallScore sets the "overall_score" field.
func (_u *AuditUpdate) SetOverallScore(v float64) *AuditUpdate {
	_u.mutation.ResetOverallScore()
	_u.mutation.SetOverallScore(v)
	return _u
}

// SetNillableOverallScore sets the "overall_score" field if the given value is not nil.
func (_u *AuditUpdate) SetNillableOverallScore(v *float64) *AuditUpdate {
	if v != nil {
		_u.SetOverallScore(*v)
	}
	return _u
}

// AddOverallScore adds value to the "overall_score" field.
func (_u *AuditUpdate) AddOverallScore(v float64) *AuditUpdate {
	_u.mutation.AddOverallScore(v)
	return _u
}

// ClearOverallScore clears the value of the "overall_score" field.
func (_u *AuditUpdate) ClearOverallScore() *AuditUpdate {
	_u.mutation.ClearOverallScore()
	return _u
}

// SetBrandMentionRate sets the "brand_mention_rate" field.
func (_u *AuditUpdate) SetBrandMentionRate(v float64) *AuditUpdate {
	_u.mutation.ResetBrandMentionRate()
	_u.mutation.SetBrandMentionRate(v)
	return _u
}

// SetNillableBrandMentionRate sets the "brand_mention_rate" field if the given value is not nil.
func (_u *AuditUpdate) SetNillableBrandMentionRate(v *float64) *AuditUpdate {
	if v != nil {
		_u.SetBrandMentionRate(*v)
	}
	return _u
}

// AddBrandMentionRate adds value to the "brand_mention_rate" field.
func (_u *AuditUpdate) AddBrandMentionRate(v float64) *AuditUpdate {
	_u.mutation.AddBrandMentionRate(v)
	return _u
}

// ClearBrandMentionRate clears the value of the "brand_mention_rate" field.
func (_u *AuditUpdate) ClearBrandMentionRate() *AuditUpdate {
	_u.mutation.ClearBrandMentionRate()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *AuditUpdate) SetErrorMessage(v string) *AuditUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *AuditUpdate) SetNillableErrorMessage(v *string) *AuditUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *AuditUpdate) ClearErrorMessage() *AuditUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *AuditUpdate) SetCreatedAt(v time.Time) *AuditUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *AuditUpdate) SetNillableCreatedAt(v *time.Time) *AuditUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *AuditUpdate) SetStartedAt(v time.Time) *AuditUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *AuditUpdate) SetNillableStartedAt(v *time.Time) *AuditUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *AuditUpdate) ClearStartedAt() *AuditUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *AuditUpdate) SetCompletedAt(v time.Time) *AuditUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *AuditUpdate) SetNillableCompletedAt(v *time.Time) *AuditUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *AuditUpdate) ClearCompletedAt() *AuditUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetProcessingTimeMs sets the "processing_time_ms" field.
func (_u *AuditUpdate) SetProcessingTimeMs(v int) *AuditUpdate {
	_u.mutation.ResetProcessingTimeMs()
	_u.mutation.SetProcessingTimeMs(v)
	return _u
}

// SetNillableProcessingTimeMs sets the "processing_time_ms" field if the given value is not nil.
func (_u *AuditUpdate) SetNillableProcessingTimeMs(v *int) *AuditUpdate {
	if v != nil {
		_u.SetProcessingTimeMs(*v)
	}
	return _u
}

// AddProcessingTimeMs adds value to the "processing_time_ms" field.
func (_u *AuditUpdate) AddProcessingTimeMs(v int) *AuditUpdate {
	_u.mutation.AddProcessingTimeMs(v)
	return _u
}

// ClearProcessingTimeMs clears the value of the "processing_time_ms" field.
func (_u *AuditUpdate) ClearProcessingTimeMs() *AuditUpdate {
	_u.mutation.ClearProcessingTimeMs()
	return _u
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (_u *AuditUpdate) SetHeartbeatAt(v time.Time) *AuditUpdate {
	_u.mutation.SetHeartbeatAt(v)
	return _u
}

// SetNillableHeartbeatAt sets the "heartbeat_at" field if the given value is not nil.
func (_u *AuditUpdate) SetNillableHeartbeatAt(v *time.Time) *AuditUpdate {
	if v != nil {
		_u.SetHeartbeatAt(*v)
	}
	return _u
}

// ClearHeartbeatAt clears the value of the "heartbeat_at" field.
func (_u *AuditUpdate) ClearHeartbeatAt() *AuditUpdate {
	_u.mutation.ClearHeartbeatAt()
	return _u
}

// SetClaimedBy sets the "claimed_by" field.
func (_u *AuditUpdate) SetClaimedBy(v string) *AuditUpdate {
	_u.mutation.SetClaimedBy(v)
	return _u
}

// SetNillableClaimedBy sets the "claimed_by" field if the given value is not nil.
func (_u *AuditUpdate) SetNillableClaimedBy(v *string) *AuditUpdate {
	if v != nil {
		_u.SetClaimedBy(*v)
	}
	return _u
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (_u *AuditUpdate) ClearClaimedBy() *AuditUpdate {
	_u.mutation.ClearClaimedBy()
	return _u
}

// AddQueryIDs adds the "queries" edge to the AuditQuery entity by IDs.
func (_u *AuditUpdate) AddQueryIDs(ids ...string) *AuditUpdate {
	_u.mutation.AddQueryIDs(ids...)
	return _u
}

// AddQueries adds the "queries" edges to the AuditQuery entity.
func (_u *AuditUpdate) AddQueries(v ...*AuditQuery) *AuditUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddQueryIDs(ids...)
}

// AddResponseIDs adds the "responses" edge to the AuditResponse entity by IDs.
func (_u *AuditUpdate) AddResponseIDs(ids ...string) *AuditUpdate {
	_u.mutation.AddResponseIDs(ids...)
	return _u
}

// AddResponses adds the "responses" edges to the AuditResponse entity.
func (_u *AuditUpdate) AddResponses(v ...*AuditResponse) *AuditUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddResponseIDs(ids...)
}

// AddAnalysisIDs adds the "analyses" edge to the AuditAnalysis entity by IDs.
func (_u *AuditUpdate) AddAnalysisIDs(ids ...string) *AuditUpdate {
	_u.mutation.AddAnalysisIDs(ids...)
	return _u
}

// AddAnalyses adds the "analyses" edges to the AuditAnalysis entity.
func (_u *AuditUpdate) AddAnalyses(v ...*AuditAnalysis) *AuditUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAnalysisIDs(ids...)
}

// SetAggregateID sets the "aggregate" edge to the AuditAggregate entity by ID.
func (_u *AuditUpdate) SetAggregateID(id string) *AuditUpdate {
	_u.mutation.SetAggregateID(id)
	return _u
}

// SetNillableAggregateID sets the "aggregate" edge to the AuditAggregate entity by ID if the given value is not nil.
func (_u *AuditUpdate) SetNillableAggregateID(id *string) *AuditUpdate {
	if id != nil {
		_u = _u.SetAggregateID(*id)
	}
	return _u
}

// SetAggregate sets the "aggregate" edge to the AuditAggregate entity.
func (_u *AuditUpdate) SetAggregate(v *AuditAggregate) *AuditUpdate {
	return _u.SetAggregateID(v.ID)
}

// SetDashboardID sets the "dashboard" edge to the AuditDashboard entity by ID.
func (_u *AuditUpdate) SetDashboardID(id string) *AuditUpdate {
	_u.mutation.SetDashboardID(id)
	return _u
}

// SetNillableDashboardID sets the "dashboard" edge to the AuditDashboard entity by ID if the given value is not nil.
func (_u *AuditUpdate) SetNillableDashboardID(id *string) *AuditUpdate {
	if id != nil {
		_u = _u.SetDashboardID(*id)
	}
	return _u
}

// SetDashboard sets the "dashboard" edge to the AuditDashboard entity.
func (_u *AuditUpdate) SetDashboard(v *AuditDashboard) *AuditUpdate {
	return _u.SetDashboardID(v.ID)
}

// AddEventIDs adds the "events" edge to the AuditEvent entity by IDs.
func (_u *AuditUpdate) AddEventIDs(ids ...int) *AuditUpdate {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the AuditEvent entity.
func (_u *AuditUpdate) AddEvents(v ...*AuditEvent) *AuditUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// Mutation returns the AuditMutation object of the builder.
func (_u *AuditUpdate) Mutation() *AuditMutation {
	return _u.mutation
}

// ClearQueries clears all "queries" edges to the AuditQuery entity.
func (_u *AuditUpdate) ClearQueries() *AuditUpdate {
	_u.mutation.ClearQueries()
	return _u
}

// RemoveQueryIDs removes the "queries" edge to AuditQuery entities by IDs.
func (_u *AuditUpdate) RemoveQueryIDs(ids ...string) *AuditUpdate {
	_u.mutation.RemoveQueryIDs(ids...)
	return _u
}

// RemoveQueries removes "queries" edges to AuditQuery entities.
func (_u *AuditUpdate) RemoveQueries(v ...*AuditQuery) *AuditUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveQueryIDs(ids...)
}

// ClearResponses clears all "responses" edges to the AuditResponse entity.
func (_u *AuditUpdate) ClearResponses() *AuditUpdate {
	_u.mutation.ClearResponses()
	return _u
}

// RemoveResponseIDs removes the "responses" edge to AuditResponse entities by IDs.
func (_u *AuditUpdate) RemoveResponseIDs(ids ...string) *AuditUpdate {
	_u.mutation.RemoveResponseIDs(ids...)
	return _u
}

// RemoveResponses removes "responses" edges to AuditResponse entities.
func (_u *AuditUpdate) RemoveResponses(v ...*AuditResponse) *AuditUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveResponseIDs(ids...)
}

// ClearAnalyses clears all "analyses" edges to the AuditAnalysis entity.
func (_u *AuditUpdate) ClearAnalyses() *AuditUpdate {
	_u.mutation.ClearAnalyses()
	return _u
}

// RemoveAnalysisIDs removes the "analyses" edge to AuditAnalysis entities by IDs.
func (_u *AuditUpdate) RemoveAnalysisIDs(ids ...string) *AuditUpdate {
	_u.mutation.RemoveAnalysisIDs(ids...)
	return _u
}

// RemoveAnalyses removes "analyses" edges to AuditAnalysis entities.
func (_u *AuditUpdate) RemoveAnalyses(v ...*AuditAnalysis) *AuditUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAnalysisIDs(ids...)
}

// ClearAggregate clears the "aggregate" edge to the AuditAggregate entity.
func (_u *AuditUpdate) ClearAggregate() *AuditUpdate {
	_u.mutation.ClearAggregate()
	return _u
}

// ClearDashboard clears the "dashboard" edge to the AuditDashboard entity.
func (_u *AuditUpdate) ClearDashboard() *AuditUpdate {
	_u.mutation.ClearDashboard()
	return _u
}

// ClearEvents clears all "events" edges to the AuditEvent entity.
func (_u *AuditUpdate) ClearEvents() *AuditUpdate {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to AuditEvent entities by IDs.
func (_u *AuditUpdate) RemoveEventIDs(ids ...int) *AuditUpdate {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to AuditEvent entities.
func (_u *AuditUpdate) RemoveEvents(v ...*AuditEvent) *AuditUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AuditUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AuditUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AuditUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AuditUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AuditUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := audit.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Audit.status": %w`, err)}
		}
	}
	if _u.mutation.CompanyCleared() && len(_u.mutation.CompanyIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Audit.company"`)
	}
	return nil
}

func (_u *AuditUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(audit.Table, audit.Columns, sqlgraph.NewFieldSpec(audit.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(audit.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(audit.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Providers(); ok {
		_spec.SetField(audit.FieldProviders, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedProviders(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, audit.FieldProviders, value)
		})
	}
	if value, ok := _u.mutation.QueryCount(); ok {
		_spec.SetField(audit.FieldQueryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQueryCount(); ok {
		_spec.AddField(audit.FieldQueryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OverallScore(); ok {
		_spec.SetField(audit.FieldOverallScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOverallScore(); ok {
		_spec.AddField(audit.FieldOverallScore, field.TypeFloat64, value)
	}
	if _u.mutation.OverallScoreCleared() {
		_spec.ClearField(audit.FieldOverallScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.BrandMentionRate(); ok {
		_spec.SetField(audit.FieldBrandMentionRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBrandMentionRate(); ok {
		_spec.AddField(audit.FieldBrandMentionRate, field.TypeFloat64, value)
	}
	if _u.mutation.BrandMentionRateCleared() {
		_spec.ClearField(audit.FieldBrandMentionRate, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(audit.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(audit.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(audit.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(audit.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(audit.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(audit.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(audit.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ProcessingTimeMs(); ok {
		_spec.SetField(audit.FieldProcessingTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProcessingTimeMs(); ok {
		_spec.AddField(audit.FieldProcessingTimeMs, field.TypeInt, value)
	}
	if _u.mutation.ProcessingTimeMsCleared() {
		_spec.ClearField(audit.FieldProcessingTimeMs, field.TypeInt)
	}
	if value, ok := _u.mutation.HeartbeatAt(); ok {
		_spec.SetField(audit.FieldHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.HeartbeatAtCleared() {
		_spec.ClearField(audit.FieldHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ClaimedBy(); ok {
		_spec.SetField(audit.FieldClaimedBy, field.TypeString, value)
	}
	if _u.mutation.ClaimedByCleared() {
		_spec.ClearField(audit.FieldClaimedBy, field.TypeString)
	}
	if _u.mutation.QueriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   audit.QueriesTable,
			Columns: []string{audit.QueriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(auditquery.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedQueriesIDs(); len(nodes) > 0 && !_u.mutation.QueriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   audit.QueriesTable,
			Columns: []string{audit.QueriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(auditquery.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QueriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   audit.QueriesTable,
			Columns: []string{audit.QueriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(auditquery.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ResponsesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   audit.ResponsesTable,
			Columns: []string{audit.ResponsesColumn},
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
			Table:   audit.ResponsesTable,
			Columns: []string{audit.ResponsesColumn},
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
			Table:   audit.ResponsesTable,
			Columns: []string{audit.ResponsesColumn},
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
	if _u.mutation.AnalysesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   audit.AnalysesTable,
			Columns: []string{audit.AnalysesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(auditanalysis.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAnalysesIDs(); len(nodes) > 0 && !_u.mutation.AnalysesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   audit.AnalysesTable,
			Columns: []string{audit.AnalysesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(auditanalysis.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AnalysesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   audit.AnalysesTable,
			Columns: []string{audit.AnalysesColumn},
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
	if _u.mutation.AggregateCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   audit.AggregateTable,
			Columns: []string{audit.AggregateColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(auditaggregate.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AggregateIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   audit.AggregateTable,
			Columns: []string{audit.AggregateColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(auditaggregate.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DashboardCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   audit.DashboardTable,
			Columns: []string{audit.DashboardColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(auditdashboard.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DashboardIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   audit.DashboardTable,
			Columns: []string{audit.DashboardColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(auditdashboard.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   audit.EventsTable,
			Columns: []string{audit.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(auditevent.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   audit.EventsTable,
			Columns: []string{audit.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(auditevent.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   audit.EventsTable,
			Columns: []string{audit.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(auditevent.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{audit.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AuditUpdateOne is the builder for updating a single Audit entity.
type AuditUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AuditMutation
}

// SetUserID sets the "user_id" field.
func (_u *AuditUpdateOne) SetUserID(v string) *AuditUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *AuditUpdateOne) SetNillableUserID(v *string) *AuditUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AuditUpdateOne) SetStatus(v audit.Status) *AuditUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AuditUpdateOne) SetNillableStatus(v *audit.Status) *AuditUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetProviders sets the "providers" field.
func (_u *AuditUpdateOne) SetProviders(v []string) *AuditUpdateOne {
	_u.mutation.SetProviders(v)
	return _u
}

// AppendProviders appends value to the "providers" field.
func (_u *AuditUpdateOne) AppendProviders(v []string) *AuditUpdateOne {
	_u.mutation.AppendProviders(v)
	return _u
}

// SetQueryCount sets the "query_count" field.
func (_u *AuditUpdateOne) SetQueryCount(v int) *AuditUpdateOne {
	_u.mutation.ResetQueryCount()
	_u.mutation.SetQueryCount(v)
	return _u
}

// SetNillableQueryCount sets the "query_count" field if the given value is not nil.
func (_u *AuditUpdateOne) SetNillableQueryCount(v *int) *AuditUpdateOne {
	if v != nil {
		_u.SetQueryCount(*v)
	}
	return _u
}

// AddQueryCount adds value to the "query_count" field.
func (_u *AuditUpdateOne) AddQueryCount(v int) *AuditUpdateOne {
	_u.mutation.AddQueryCount(v)
	return _u
}

// SetOverallScore sets the "overall_score" field.
func (_u *AuditUpdateOne) SetOverallScore(v float64) *AuditUpdateOne {
	_u.mutation.ResetOverallScore()
	_u.mutation.SetOverallScore(v)
	return _u
}

// SetNillableOverallScore sets the "overall_score" field if the given value is not nil.
func (_u *AuditUpdateOne) SetNillableOverallScore(v *float64) *AuditUpdateOne {
	if v != nil {
		_u.SetOverallScore(*v)
	}
	return _u
}

// AddOverallScore adds value to the "overall_score" field.
func (_u *AuditUpdateOne) AddOverallScore(v float64) *AuditUpdateOne {
	_u.mutation.AddOverallScore(v)
	return _u
}

// ClearOverallScore clears the value of the "overall_score" field.
func (_u *AuditUpdateOne) ClearOverallScore() *AuditUpdateOne {
	_u.mutation.ClearOverallScore()
	return _u
}

// SetBrandMentionRate sets the "brand_mention_rate" field.
func (_u *AuditUpdateOne) SetBrandMentionRate(v float64) *AuditUpdateOne {
	_u.mutation.ResetBrandMentionRate()
	_u.mutation.SetBrandMentionRate(v)
	return _u
}

// SetNillableBrandMentionRate sets the "brand_mention_rate" field if the given value is not nil.
func (_u *AuditUpdateOne) SetNillableBrandMentionRate(v *float64) *AuditUpdateOne {
	if v != nil {
		_u.SetBrandMentionRate(*v)
	}
	return _u
}

// AddBrandMentionRate adds value to the "brand_mention_rate" field.
func (_u *AuditUpdateOne) AddBrandMentionRate(v float64) *AuditUpdateOne {
	_u.mutation.AddBrandMentionRate(v)
	return _u
}

// ClearBrandMentionRate clears the value of the "brand_mention_rate" field.
func (_u *AuditUpdateOne) ClearBrandMentionRate() *AuditUpdateOne {
	_u.mutation.ClearBrandMentionRate()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *AuditUpdateOne) SetErrorMessage(v string) *AuditUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *AuditUpdateOne) SetNillableErrorMessage(v *string) *AuditUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *AuditUpdateOne) ClearErrorMessage() *AuditUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *AuditUpdateOne) SetCreatedAt(v time.Time) *AuditUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *AuditUpdateOne) SetNillableCreatedAt(v *time.Time) *AuditUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *AuditUpdateOne) SetStartedAt(v time.Time) *AuditUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *AuditUpdateOne) SetNillableStartedAt(v *time.Time) *AuditUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *AuditUpdateOne) ClearStartedAt() *AuditUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *AuditUpdateOne) SetCompletedAt(v time.Time) *AuditUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *AuditUpdateOne) SetNillableCompletedAt(v *time.Time) *AuditUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *AuditUpdateOne) ClearCompletedAt() *AuditUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetProcessingTimeMs sets the "processing_time_ms" field.
func (_u *AuditUpdateOne) SetProcessingTimeMs(v int) *AuditUpdateOne {
	_u.mutation.ResetProcessingTimeMs()
	_u.mutation.SetProcessingTimeMs(v)
	return _u
}

// SetNillableProcessingTimeMs sets the "processing_time_ms" field if the given value is not nil.
func (_u *AuditUpdateOne) SetNillableProcessingTimeMs(v *int) *AuditUpdateOne {
	if v != nil {
		_u.SetProcessingTimeMs(*v)
	}
	return _u
}

// AddProcessingTimeMs adds value to the "processing_time_ms" field.
func (_u *AuditUpdateOne) AddProcessingTimeMs(v int) *AuditUpdateOne {
	_u.mutation.AddProcessingTimeMs(v)
	return _u
}

// ClearProcessingTimeMs clears the value of the "processing_time_ms" field.
func (_u *AuditUpdateOne) ClearProcessingTimeMs() *AuditUpdateOne {
	_u.mutation.ClearProcessingTimeMs()
	return _u
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (_u *AuditUpdateOne) SetHeartbeatAt(v time.Time) *AuditUpdateOne {
	_u.mutation.SetHeartbeatAt(v)
	return _u
}

// SetNillableHeartbeatAt sets the "heartbeat_at" field if the given value is not nil.
func (_u *AuditUpdateOne) SetNillableHeartbeatAt(v *time.Time) *AuditUpdateOne {
	if v != nil {
		_u.SetHeartbeatAt(*v)
	}
	return _u
}

// ClearHeartbeatAt clears the value of the "heartbeat_at" field.
func (_u *AuditUpdateOne) ClearHeartbeatAt() *AuditUpdateOne {
	_u.mutation.ClearHeartbeatAt()
	return _u
}

// SetClaimedBy sets the "claimed_by" field.
func (_u *AuditUpdateOne) SetClaimedBy(v string) *AuditUpdateOne {
	_u.mutation.SetClaimedBy(v)
	return _u
}

// SetNillableClaimedBy sets the "claimed_by" field if the given value is not nil.
func (_u *AuditUpdateOne) SetNillableClaimedBy(v *string) *AuditUpdateOne {
	if v != nil {
		_u.SetClaimedBy(*v)
	}
	return _u
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (_u *AuditUpdateOne) ClearClaimedBy() *AuditUpdateOne {
	_u.mutation.ClearClaimedBy()
	return _u
}

// AddQueryIDs adds the "queries" edge to the AuditQuery entity by IDs.
func (_u *AuditUpdateOne) AddQueryIDs(ids ...string) *AuditUpdateOne {
	_u.mutation.AddQueryIDs(ids...)
	return _u
}

// AddQueries adds the "queries" edges to the AuditQuery entity.
func (_u *AuditUpdateOne) AddQueries(v ...*AuditQuery) *AuditUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddQueryIDs(ids...)
}

// AddResponseIDs adds the "responses" edge to the AuditResponse entity by IDs.
func (_u *AuditUpdateOne) AddResponseIDs(ids ...string) *AuditUpdateOne {
	_u.mutation.AddResponseIDs(ids...)
	return _u
}

// AddResponses adds the "responses" edges to the AuditResponse entity.
func (_u *AuditUpdateOne) AddResponses(v ...*AuditResponse) *AuditUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddResponseIDs(ids...)
}

// AddAnalysisIDs adds the "analyses" edge to the AuditAnalysis entity by IDs.
func (_u *AuditUpdateOne) AddAnalysisIDs(ids ...string) *AuditUpdateOne {
	_u.mutation.AddAnalysisIDs(ids...)
	return _u
}

// AddAnalyses adds the "analyses" edges to the AuditAnalysis entity.
func (_u *AuditUpdateOne) AddAnalyses(v ...*AuditAnalysis) *AuditUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAnalysisIDs(ids...)
}

// SetAggregateID sets the "aggregate" edge to the AuditAggregate entity by ID.
func (_u *AuditUpdateOne) SetAggregateID(id string) *AuditUpdateOne {
	_u.mutation.SetAggregateID(id)
	return _u
}

// SetNillableAggregateID sets the "aggregate" edge to the AuditAggregate entity by ID if the given value is not nil.
func (_u *AuditUpdateOne) SetNillableAggregateID(id *string) *AuditUpdateOne {
	if id != nil {
		_u = _u.SetAggregateID(*id)
	}
	return _u
}

// SetAggregate sets the "aggregate" edge to the AuditAggregate entity.
func (_u *AuditUpdateOne) SetAggregate(v *AuditAggregate) *AuditUpdateOne {
	return _u.SetAggregateID(v.ID)
}

// SetDashboardID sets the "dashboard" edge to the AuditDashboard entity by ID.
func (_u *AuditUpdateOne) SetDashboardID(id string) *AuditUpdateOne {
	_u.mutation.SetDashboardID(id)
	return _u
}

// SetNillableDashboardID sets the "dashboard" edge to the AuditDashboard entity by ID if the given value is not nil.
func (_u *AuditUpdateOne) SetNillableDashboardID(id *string) *AuditUpdateOne {
	if id != nil {
		_u = _u.SetDashboardID(*id)
	}
	return _u
}

// SetDashboard sets the "dashboard" edge to the AuditDashboard entity.
func (_u *AuditUpdateOne) SetDashboard(v *AuditDashboard) *AuditUpdateOne {
	return _u.SetDashboardID(v.ID)
}

// AddEventIDs adds the "events" edge to the AuditEvent entity by IDs.
func (_u *AuditUpdateOne) AddEventIDs(ids ...int) *AuditUpdateOne {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the AuditEvent entity.
func (_u *AuditUpdateOne) AddEvents(v ...*AuditEvent) *AuditUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// Mutation returns the AuditMutation object of the builder.
func (_u *AuditUpdateOne) Mutation() *AuditMutation {
	return _u.mutation
}

// ClearQueries clears all "queries" edges to the AuditQuery entity.
func (_u *AuditUpdateOne) ClearQueries() *AuditUpdateOne {
	_u.mutation.ClearQueries()
	return _u
}

// RemoveQueryIDs removes the "queries" edge to AuditQuery entities by IDs.
func (_u *AuditUpdateOne) RemoveQueryIDs(ids ...string) *AuditUpdateOne {
	_u.mutation.RemoveQueryIDs(ids...)
	return _u
}

// RemoveQueries removes "queries" edges to AuditQuery entities.
func (_u *AuditUpdateOne) RemoveQueries(v ...*AuditQuery) *AuditUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveQueryIDs(ids...)
}

// ClearResponses clears all "responses" edges to the AuditResponse entity.
func (_u *AuditUpdateOne) ClearResponses() *AuditUpdateOne {
	_u.mutation.ClearResponses()
	return _u
}

// RemoveResponseIDs removes the "responses" edge to AuditResponse entities by IDs.
func (_u *AuditUpdateOne) RemoveResponseIDs(ids ...string) *AuditUpdateOne {
	_u.mutation.RemoveResponseIDs(ids...)
	return _u
}

// RemoveResponses removes "responses" edges to AuditResponse entities.
func (_u *AuditUpdateOne) RemoveResponses(v ...*AuditResponse) *AuditUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveResponseIDs(ids...)
}

// ClearAnalyses clears all "analyses" edges to the AuditAnalysis entity.
func (_u *AuditUpdateOne) ClearAnalyses() *AuditUpdateOne {
	_u.mutation.ClearAnalyses()
	return _u
}

// RemoveAnalysisIDs removes the "analyses" edge to AuditAnalysis entities by IDs.
func (_u *AuditUpdateOne) RemoveAnalysisIDs(ids ...string) *AuditUpdateOne {
	_u.mutation.RemoveAnalysisIDs(ids...)
	return _u
}

// RemoveAnalyses removes "analyses" edges to AuditAnalysis entities.
func (_u *AuditUpdateOne) RemoveAnalyses(v ...*AuditAnalysis) *AuditUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAnalysisIDs(ids...)
}

// ClearAggregate clears the "aggregate" edge to the AuditAggregate entity.
func (_u *AuditUpdateOne) ClearAggregate() *AuditUpdateOne {
	_u.mutation.ClearAggregate()
	return _u
}

// ClearDashboard clears the "dashboard" edge to the AuditDashboard entity.
func (_u *AuditUpdateOne) ClearDashboard() *AuditUpdateOne {
	_u.mutation.ClearDashboard()
	return _u
}

// ClearEvents clears all "events" edges to the AuditEvent entity.
func (_u *AuditUpdateOne) ClearEvents() *AuditUpdateOne {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to AuditEvent entities by IDs.
func (_u *AuditUpdateOne) RemoveEventIDs(ids ...int) *AuditUpdateOne {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to AuditEvent entities.
func (_u *AuditUpdateOne) RemoveEvents(v ...*AuditEvent) *AuditUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// Where appends a list predicates to the AuditUpdate builder.
func (_u *AuditUpdateOne) Where(ps ...predicate.Audit) *AuditUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AuditUpdateOne) Select(field string, fields ...string) *AuditUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Audit entity.
func (_u *AuditUpdateOne) Save(ctx context.Context) (*Audit, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AuditUpdateOne) SaveX(ctx context.Context) *Audit {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AuditUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AuditUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AuditUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := audit.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Audit.status": %w`, err)}
		}
	}
	if _u.mutation.CompanyCleared() && len(_u.mutation.CompanyIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Audit.company"`)
	}
	return nil
}

func (_u *AuditUpdateOne) sqlSave(ctx context.Context) (_node *Audit, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(audit.Table, audit.Columns, sqlgraph.NewFieldSpec(audit.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Audit.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, audit.FieldID)
		for _, f := range fields {
			if !audit.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != audit.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(audit.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(audit.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Providers(); ok {
		_spec.SetField(audit.FieldProviders, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedProviders(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, audit.FieldProviders, value)
		})
	}
	if value, ok := _u.mutation.QueryCount(); ok {
		_spec.SetField(audit.FieldQueryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQueryCount(); ok {
		_spec.AddField(audit.FieldQueryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OverallScore(); ok {
		_spec.SetField(audit.FieldOverallScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOverallScore(); ok {
		_spec.AddField(audit.FieldOverallScore, field.TypeFloat64, value)
	}
	if _u.mutation.OverallScoreCleared() {
		_spec.ClearField(audit.FieldOverallScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.BrandMentionRate(); ok {
		_spec.SetField(audit.FieldBrandMentionRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBrandMentionRate(); ok {
		_spec.AddField(audit.FieldBrandMentionRate, field.TypeFloat64, value)
	}
	if _u.mutation.BrandMentionRateCleared() {
		_spec.ClearField(audit.FieldBrandMentionRate, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(audit.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(audit.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(audit.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(audit.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(audit.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(audit.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(audit.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ProcessingTimeMs(); ok {
		_spec.SetField(audit.FieldProcessingTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProcessingTimeMs(); ok {
		_spec.AddField(audit.FieldProcessingTimeMs, field.TypeInt, value)
	}
	if _u.mutation.ProcessingTimeMsCleared() {
		_spec.ClearField(audit.FieldProcessingTimeMs, field.TypeInt)
	}
	if value, ok := _u.mutation.HeartbeatAt(); ok {
		_spec.SetField(audit.FieldHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.HeartbeatAtCleared() {
		_spec.ClearField(audit.FieldHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ClaimedBy(); ok {
		_spec.SetField(audit.FieldClaimedBy, field.TypeString, value)
	}
	if _u.mutation.ClaimedByCleared() {
		_spec.ClearField(audit.FieldClaimedBy, field.TypeString)
	}
	if _u.mutation.QueriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   audit.QueriesTable,
			Columns: []string{audit.QueriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(auditquery.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedQueriesIDs(); len(nodes) > 0 && !_u.mutation.QueriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   audit.QueriesTable,
			Columns: []string{audit.QueriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(auditquery.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QueriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   audit.QueriesTable,
			Columns: []string{audit.QueriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(auditquery.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ResponsesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   audit.ResponsesTable,
			Columns: []string{audit.ResponsesColumn},
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
			Table:   audit.ResponsesTable,
			Columns: []string{audit.ResponsesColumn},
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
			Table:   audit.ResponsesTable,
			Columns: []string{audit.ResponsesColumn},
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
	if _u.mutation.AnalysesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   audit.AnalysesTable,
			Columns: []string{audit.AnalysesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(auditanalysis.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAnalysesIDs(); len(nodes) > 0 && !_u.mutation.AnalysesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   audit.AnalysesTable,
			Columns: []string{audit.AnalysesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(auditanalysis.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AnalysesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   audit.AnalysesTable,
			Columns: []string{audit.AnalysesColumn},
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
	if _u.mutation.AggregateCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   audit.AggregateTable,
			Columns: []string{audit.AggregateColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(auditaggregate.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AggregateIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   audit.AggregateTable,
			Columns: []string{audit.AggregateColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(auditaggregate.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DashboardCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   audit.DashboardTable,
			Columns: []string{audit.DashboardColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(auditdashboard.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DashboardIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   audit.DashboardTable,
			Columns: []string{audit.DashboardColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(auditdashboard.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   audit.EventsTable,
			Columns: []string{audit.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(auditevent.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   audit.EventsTable,
			Columns: []string{audit.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(auditevent.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   audit.EventsTable,
			Columns: []string{audit.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(auditevent.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Audit{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{audit.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
