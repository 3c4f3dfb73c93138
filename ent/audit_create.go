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
	"github.com/specularhq/specular/ent/auditaggregate"
	"github.com/specularhq/specular/ent/auditanalysis"
	"github.com/specularhq/specular/ent/auditdashboard"
	"github.com/specularhq/specular/ent/auditevent"
	"github.com/specularhq/specular/ent/auditquery"
	"github.com/specularhq/specular/ent/auditresponse"
	"github.com/specularhq/specular/ent/company"
)

// AuditCreate is the builder for creating a Audit entity.
type AuditCreate struct {
	config
	mutation *AuditMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCompanyID sets the "company_id" field.
func (_c *AuditCreate) SetCompanyID(v string) *AuditCreate {
	_c.mutation.SetCompanyID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *AuditCreate) SetUserID(v string) *AuditCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *AuditCreate) SetStatus(v audit.Status) *AuditCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *AuditCreate) SetNillableStatus(v *audit.Status) *AuditCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetProviders sets the "providers" field.
func (_c *AuditCreate) SetProviders(v []string) *AuditCreate {
	_c.mutation.SetProviders(v)
	return _c
}

// SetQueryCount sets the "query_count" field.
func (_c *AuditCreate) SetQueryCount(v int) *AuditCreate {
	_c.mutation.SetQueryCount(v)
	return _c
}

// SetOverallScore sets the "overall_score" field.
func (_c *AuditCreate) SetOverallScore(v float64) *AuditCreate {
	_c.mutation.SetOverallScore(v)
	return _c
}

// SetNillableOverallScore sets the "overall_score" field if the given value is not nil.
func (_c *AuditCreate) SetNillableOverallScore(v *float64) *AuditCreate {
	if v != nil {
		_c.SetOverallScore(*v)
	}
	return _c
}

// SetBrandMentionRate sets the "brand_mention_rate" field.
func (_c *AuditCreate) SetBrandMentionRate(v float64) *AuditCreate {
	_c.mutation.SetBrandMentionRate(v)
	return _c
}

// SetNillableBrandMentionRate sets the "brand_mention_rate" field if the given value is not nil.
func (_c *AuditCreate) SetNillableBrandMentionRate(v *float64) *AuditCreate {
	if v != nil {
		_c.SetBrandMentionRate(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *AuditCreate) SetErrorMessage(v string) *AuditCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *AuditCreate) SetNillableErrorMessage(v *string) *AuditCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AuditCreate) SetCreatedAt(v time.Time) *AuditCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AuditCreate) SetNillableCreatedAt(v *time.Time) *AuditCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *AuditCreate) SetStartedAt(v time.Time) *AuditCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *AuditCreate) SetNillableStartedAt(v *time.Time) *AuditCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *AuditCreate) SetCompletedAt(v time.Time) *AuditCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *AuditCreate) SetNillableCompletedAt(v *time.Time) *AuditCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetProcessingTimeMs sets the "processing_time_ms" field.
func (_c *AuditCreate) SetProcessingTimeMs(v int) *AuditCreate {
	_c.mutation.SetProcessingTimeMs(v)
	return _c
}

// SetNillableProcessingTimeMs sets the "processing_time_ms" field if the given value is not nil.
func (_c *AuditCreate) SetNillableProcessingTimeMs(v *int) *AuditCreate {
	if v != nil {
		_c.SetProcessingTimeMs(*v)
	}
	return _c
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (_c *AuditCreate) SetHeartbeatAt(v time.Time) *AuditCreate {
	_c.mutation.SetHeartbeatAt(v)
	return _c
}

// SetNillableHeartbeatAt sets the "heartbeat_at" field if the given value is not nil.
func (_c *AuditCreate) SetNillableHeartbeatAt(v *time.Time) *AuditCreate {
	if v != nil {
		_c.SetHeartbeatAt(*v)
	}
	return _c
}

// SetClaimedBy sets the "claimed_by" field.
func (_c *AuditCreate) SetClaimedBy(v string) *AuditCreate {
	_c.mutation.SetClaimedBy(v)
	return _c
}

// SetNillableClaimedBy sets the "claimed_by" field if the given value is not nil.
func (_c *AuditCreate) SetNillableClaimedBy(v *string) *AuditCreate {
	if v != nil {
		_c.SetClaimedBy(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AuditCreate) SetID(v string) *AuditCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetCompany sets the "company" edge to the Company entity.
func (_c *AuditCreate) SetCompany(v *Company) *AuditCreate {
	return _c.SetCompanyID(v.ID)
}

// AddQueryIDs adds the "queries" edge to the AuditQuery entity by IDs.
func (_c *AuditCreate) AddQueryIDs(ids ...string) *AuditCreate {
	_c.mutation.AddQueryIDs(ids...)
	return _c
}

// AddQueries adds the "queries" edges to the AuditQuery entity.
func (_c *AuditCreate) AddQueries(v ...*AuditQuery) *AuditCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddQueryIDs(ids...)
}

// AddResponseIDs adds the "responses" edge to the AuditResponse entity by IDs.
func (_c *AuditCreate) AddResponseIDs(ids ...string) *AuditCreate {
	_c.mutation.AddResponseIDs(ids...)
	return _c
}

// AddResponses adds the "responses" edges to the AuditResponse entity.
func (_c *AuditCreate) AddResponses(v ...*AuditResponse) *AuditCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddResponseIDs(ids...)
}

// AddAnalysisIDs adds the "analyses" edge to the AuditAnalysis entity by IDs.
func (_c *AuditCreate) AddAnalysisIDs(ids ...string) *AuditCreate {
	_c.mutation.AddAnalysisIDs(ids...)
	return _c
}

// AddAnalyses adds the "analyses" edges to the AuditAnalysis entity.
func (_c *AuditCreate) AddAnalyses(v ...*AuditAnalysis) *AuditCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAnalysisIDs(ids...)
}

// SetAggregateID sets the "aggregate" edge to the AuditAggregate entity by ID.
func (_c *AuditCreate) SetAggregateID(id string) *AuditCreate {
	_c.mutation.SetAggregateID(id)
	return _c
}

// SetNillableAggregateID sets the "aggregate" edge to the AuditAggregate entity by ID if the given value is not nil.
func (_c *AuditCreate) SetNillableAggregateID(id *string) *AuditCreate {
	if id != nil {
		_c = _c.SetAggregateID(*id)
	}
	return _c
}

// SetAggregate sets the "aggregate" edge to the AuditAggregate entity.
func (_c *AuditCreate) SetAggregate(v *AuditAggregate) *AuditCreate {
	return _c.SetAggregateID(v.ID)
}

// SetDashboardID sets the "dashboard" edge to the AuditDashboard entity by ID.
func (_c *AuditCreate) SetDashboardID(id string) *AuditCreate {
	_c.mutation.SetDashboardID(id)
	return _c
}

// SetNillableDashboardID sets the "dashboard" edge to the AuditDashboard entity by ID if the given value is not nil.
func (_c *AuditCreate) SetNillableDashboardID(id *string) *AuditCreate {
	if id != nil {
		_c = _c.SetDashboardID(*id)
	}
	return _c
}

// SetDashboard sets the "dashboard" edge to the AuditDashboard entity.
func (_c *AuditCreate) SetDashboard(v *AuditDashboard) *AuditCreate {
	return _c.SetDashboardID(v.ID)
}

// AddEventIDs adds the "events" edge to the AuditEvent entity by IDs.
func (_c *AuditCreate) AddEventIDs(ids ...int) *AuditCreate {
	_c.mutation.AddEventIDs(ids...)
	return _c
}

// AddEvents adds the "events" edges to the AuditEvent entity.
func (_c *AuditCreate) AddEvents(v ...*AuditEvent) *AuditCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEventIDs(ids...)
}

// Mutation returns the AuditMutation object of the builder.
func (_c *AuditCreate) Mutation() *AuditMutation {
	return _c.mutation
}

// Save creates the Audit in the database.
func (_c *AuditCreate) Save(ctx context.Context) (*Audit, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AuditCreate) SaveX(ctx context.Context) *Audit {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AuditCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AuditCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AuditCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := audit.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := audit.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AuditCreate) check() error {
	if _, ok := _c.mutation.CompanyID(); !ok {
		return &ValidationError{Name: "company_id", err: errors.New(`ent: missing required field "Audit.company_id"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Audit.user_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Audit.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := audit.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Audit.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Providers(); !ok {
		return &ValidationError{Name: "providers", err: errors.New(`ent: missing required field "Audit.providers"`)}
	}
	if _, ok := _c.mutation.QueryCount(); !ok {
		return &ValidationError{Name: "query_count", err: errors.New(`ent: missing required field "Audit.query_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Audit.created_at"`)}
	}
	if len(_c.mutation.CompanyIDs()) == 0 {
		return &ValidationError{Name: "company", err: errors.New(`ent: missing required edge "Audit.company"`)}
	}
	return nil
}

func (_c *AuditCreate) sqlSave(ctx context.Context) (*Audit, error) {
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
			return nil, fmt.Errorf("unexpected Audit.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AuditCreate) createSpec() (*Audit, *sqlgraph.CreateSpec) {
	var (
		_node = &Audit{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(audit.Table, sqlgraph.NewFieldSpec(audit.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(audit.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(audit.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Providers(); ok {
		_spec.SetField(audit.FieldProviders, field.TypeJSON, value)
		_node.Providers = value
	}
	if value, ok := _c.mutation.QueryCount(); ok {
		_spec.SetField(audit.FieldQueryCount, field.TypeInt, value)
		_node.QueryCount = value
	}
	if value, ok := _c.mutation.OverallScore(); ok {
		_spec.SetField(audit.FieldOverallScore, field.TypeFloat64, value)
		_node.OverallScore = &value
	}
	if value, ok := _c.mutation.BrandMentionRate(); ok {
		_spec.SetField(audit.FieldBrandMentionRate, field.TypeFloat64, value)
		_node.BrandMentionRate = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(audit.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(audit.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(audit.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(audit.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.ProcessingTimeMs(); ok {
		_spec.SetField(audit.FieldProcessingTimeMs, field.TypeInt, value)
		_node.ProcessingTimeMs = &value
	}
	if value, ok := _c.mutation.HeartbeatAt(); ok {
		_spec.SetField(audit.FieldHeartbeatAt, field.TypeTime, value)
		_node.HeartbeatAt = &value
	}
	if value, ok := _c.mutation.ClaimedBy(); ok {
		_spec.SetField(audit.FieldClaimedBy, field.TypeString, value)
		_node.ClaimedBy = &value
	}
	if nodes := _c.mutation.CompanyIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   audit.CompanyTable,
			Columns: []string{audit.CompanyColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(company.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.CompanyID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.QueriesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ResponsesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AnalysesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AggregateIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.DashboardIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EventsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Audit.Create().
//		SetCompanyID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AuditUpsert) {
//			SetCompanyID(v+v).
//		}).
//		Exec(ctx)
func (_c *AuditCreate) OnConflict(opts ...sql.ConflictOption) *AuditUpsertOne {
	_c.conflict = opts
	return &AuditUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Audit.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AuditCreate) OnConflictColumns(columns ...string) *AuditUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AuditUpsertOne{
		create: _c,
	}
}

type (
	// AuditUpsertOne is the builder for "upsert"-ing
	//  one Audit node.
	AuditUpsertOne struct {
		create *AuditCreate
	}

	// AuditUpsert is the "OnConflict" setter.
	AuditUpsert struct {
		*sql.UpdateSet
	}
)

// SetUserID sets the "user_id" field.
func (u *AuditUpsert) SetUserID(v string) *AuditUpsert {
	u.Set(audit.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *AuditUpsert) UpdateUserID() *AuditUpsert {
	u.SetExcluded(audit.FieldUserID)
	return u
}

// SetStatus sets the "status" field.
func (u *AuditUpsert) SetStatus(v audit.Status) *AuditUpsert {
	u.Set(audit.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *AuditUpsert) UpdateStatus() *AuditUpsert {
	u.SetExcluded(audit.FieldStatus)
	return u
}

// SetProviders sets the "providers" field.
func (u *AuditUpsert) SetProviders(v []string) *AuditUpsert {
	u.Set(audit.FieldProviders, v)
	return u
}

// UpdateProviders sets the "providers" field to the value that was provided on create.
func (u *AuditUpsert) UpdateProviders() *AuditUpsert {
	u.SetExcluded(audit.FieldProviders)
	return u
}

// SetQueryCount sets the "query_count" field.
func (u *AuditUpsert) SetQueryCount(v int) *AuditUpsert {
	u.Set(audit.FieldQueryCount, v)
	return u
}

// UpdateQueryCount sets the "query_count" field to the value that was provided on create.
func (u *AuditUpsert) UpdateQueryCount() *AuditUpsert {
	u.SetExcluded(audit.FieldQueryCount)
	return u
}

// AddQueryCount adds v to the "query_count" field.
func (u *AuditUpsert) AddQueryCount(v int) *AuditUpsert {
	u.Add(audit.FieldQueryCount, v)
	return u
}

// SetOverallScore sets the "overall_score" field.
func (u *AuditUpsert) SetOverallScore(v float64) *AuditUpsert {
	u.Set(audit.FieldOverallScore, v)
	return u
}

// UpdateOverallScore sets the "overall_score" field to the value that was provided on create.
func (u *AuditUpsert) UpdateOverallScore() *AuditUpsert {
	u.SetExcluded(audit.FieldOverallScore)
	return u
}

// AddOverallScore adds v to the "overall_score" field.
func (u *AuditUpsert) AddOverallScore(v float64) *AuditUpsert {
	u.Add(audit.FieldOverallScore, v)
	return u
}

// ClearOverallScore clears the value of the "overall_score" field.
func (u *AuditUpsert) ClearOverallScore() *AuditUpsert {
	u.SetNull(audit.FieldOverallScore)
	return u
}

// SetBrandMentionRate sets the "brand_mention_rate" field.
func (u *AuditUpsert) SetBrandMentionRate(v float64) *AuditUpsert {
	u.Set(audit.FieldBrandMentionRate, v)
	return u
}

// UpdateBrandMentionRate sets the "brand_mention_rate" field to the value that was provided on create.
func (u *AuditUpsert) UpdateBrandMentionRate() *AuditUpsert {
	u.SetExcluded(audit.FieldBrandMentionRate)
	return u
}

// AddBrandMentionRate adds v to the "brand_mention_rate" field.
func (u *AuditUpsert) AddBrandMentionRate(v float64) *AuditUpsert {
	u.Add(audit.FieldBrandMentionRate, v)
	return u
}

// ClearBrandMentionRate clears the value of the "brand_mention_rate" field.
func (u *AuditUpsert) ClearBrandMentionRate() *AuditUpsert {
	u.SetNull(audit.FieldBrandMentionRate)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *AuditUpsert) SetErrorMessage(v string) *AuditUpsert {
	u.Set(audit.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *AuditUpsert) UpdateErrorMessage() *AuditUpsert {
	u.SetExcluded(audit.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *AuditUpsert) ClearErrorMessage() *AuditUpsert {
	u.SetNull(audit.FieldErrorMessage)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *AuditUpsert) SetCreatedAt(v time.Time) *AuditUpsert {
	u.Set(audit.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *AuditUpsert) UpdateCreatedAt() *AuditUpsert {
	u.SetExcluded(audit.FieldCreatedAt)
	return u
}

// SetStartedAt sets the "started_at" field.
func (u *AuditUpsert) SetStartedAt(v time.Time) *AuditUpsert {
	u.Set(audit.FieldStartedAt, v)
	return u
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *AuditUpsert) UpdateStartedAt() *AuditUpsert {
	u.SetExcluded(audit.FieldStartedAt)
	return u
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *AuditUpsert) ClearStartedAt() *AuditUpsert {
	u.SetNull(audit.FieldStartedAt)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *AuditUpsert) SetCompletedAt(v time.Time) *AuditUpsert {
	u.Set(audit.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *AuditUpsert) UpdateCompletedAt() *AuditUpsert {
	u.SetExcluded(audit.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *AuditUpsert) ClearCompletedAt() *AuditUpsert {
	u.SetNull(audit.FieldCompletedAt)
	return u
}

// SetProcessingTimeMs sets the "processing_time_ms" field.
func (u *AuditUpsert) SetProcessingTimeMs(v int) *AuditUpsert {
	u.Set(audit.FieldProcessingTimeMs, v)
	return u
}

// UpdateProcessingTimeMs sets the "processing_time_ms" field to the value that was provided on create.
func (u *AuditUpsert) UpdateProcessingTimeMs() *AuditUpsert {
	u.SetExcluded(audit.FieldProcessingTimeMs)
	return u
}

// AddProcessingTimeMs adds v to the "processing_time_ms" field.
func (u *AuditUpsert) AddProcessingTimeMs(v int) *AuditUpsert {
	u.Add(audit.FieldProcessingTimeMs, v)
	return u
}

// ClearProcessingTimeMs clears the value of the "processing_time_ms" field.
func (u *AuditUpsert) ClearProcessingTimeMs() *AuditUpsert {
	u.SetNull(audit.FieldProcessingTimeMs)
	return u
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (u *AuditUpsert) SetHeartbeatAt(v time.Time) *AuditUpsert {
	u.Set(audit.FieldHeartbeatAt, v)
	return u
}

// UpdateHeartbeatAt sets the "heartbeat_at" field to the value that was provided on create.
func (u *AuditUpsert) UpdateHeartbeatAt() *AuditUpsert {
	u.SetExcluded(audit.FieldHeartbeatAt)
	return u
}

// ClearHeartbeatAt clears the value of the "heartbeat_at" field.
func (u *AuditUpsert) ClearHeartbeatAt() *AuditUpsert {
	u.SetNull(audit.FieldHeartbeatAt)
	return u
}

// SetClaimedBy sets the "claimed_by" field.
func (u *AuditUpsert) SetClaimedBy(v string) *AuditUpsert {
	u.Set(audit.FieldClaimedBy, v)
	return u
}

// UpdateClaimedBy sets the "claimed_by" field to the value that was provided on create.
func (u *AuditUpsert) UpdateClaimedBy() *AuditUpsert {
	u.SetExcluded(audit.FieldClaimedBy)
	return u
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (u *AuditUpsert) ClearClaimedBy() *AuditUpsert {
	u.SetNull(audit.FieldClaimedBy)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Audit.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(audit.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AuditUpsertOne) UpdateNewValues() *AuditUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(audit.FieldID)
		}
		if _, exists := u.create.mutation.CompanyID(); exists {
			s.SetIgnore(audit.FieldCompanyID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Audit.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AuditUpsertOne) Ignore() *AuditUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AuditUpsertOne) DoNothing() *AuditUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AuditCreate.OnConflict
// documentation for more info.
func (u *AuditUpsertOne) Update(set func(*AuditUpsert)) *AuditUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AuditUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *AuditUpsertOne) SetUserID(v string) *AuditUpsertOne {
	return u.Update(func(s *AuditUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *AuditUpsertOne) UpdateUserID() *AuditUpsertOne {
	return u.Update(func(s *AuditUpsert) {
		s.UpdateUserID()
	})
}

// SetStatus sets the "status" field.
func (u *AuditUpsertOne) SetStatus(v audit.Status) *AuditUpsertOne {
	return u.Update(func(s *AuditUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *AuditUpsertOne) UpdateStatus() *AuditUpsertOne {
	return u.Update(func(s *AuditUpsert) {
		s.UpdateStatus()
	})
}

// SetProviders sets the "providers" field.
func (u *AuditUpsertOne) SetProviders(v []string) *AuditUpsertOne {
	return u.Update(func(s *AuditUpsert) {
		s.SetProviders(v)
	})
}

// UpdateProviders sets the "providers" field to the value that was provided on create.
func (u *AuditUpsertOne) UpdateProviders() *AuditUpsertOne {
	return u.Update(func(s *AuditUpsert) {
		s.UpdateProviders()
	})
}

// SetQueryCount sets the "query_count" field.
func (u *AuditUpsertOne) SetQueryCount(v int) *AuditUpsertOne {
	return u.Update(func(s *AuditUpsert) {
		s.SetQueryCount(v)
	})
}

// AddQueryCount adds v to the "query_count" field.
func (u *AuditUpsertOne) AddQueryCount(v int) *AuditUpsertOne {
	return u.Update(func(s *AuditUpsert) {
		s.AddQueryCount(v)
	})
}

// UpdateQueryCount sets the "query_count" field to the value that was provided on create.
func (u *AuditUpsertOne) UpdateQueryCount() *AuditUpsertOne {
	return u.Update(func(s *AuditUpsert) {
		s.UpdateQueryCount()
	})
}

// SetOverallScore sets the "overall_score" field.
func (u *AuditUpsertOne) SetOverallScore(v float64) *AuditUpsertOne {
	return u.Update(func(s *AuditUpsert) {
		s.SetOverallScore(v)
	})
}

// AddOverallScore adds v to the "overall_score" field.
func (u *AuditUpsertOne) AddOverallScore(v float64) *AuditUpsertOne {
	return u.Update(func(s *AuditUpsert) {
		s.AddOverallScore(v)
	})
}

// UpdateOverallScore sets the "overall_score" field to the value that was provided on create.
func (u *AuditUpsertOne) UpdateOverallScore() *AuditUpsertOne {
	return u.Update(func(s *AuditUpsert) {
		s.UpdateOverallScore()
	})
}

// ClearOverallScore clears the value of the "overall_score" field.
func (u *AuditUpsertOne) ClearOverallScore() *AuditUpsertOne {
	return u.Update(func(s *AuditUpsert) {
		s.ClearOverallScore()
	})
}

// SetBrandMentionRate sets the "brand_mention_rate" field.
func (u *AuditUpsertOne) SetBrandMentionRate(v float64) *AuditUpsertOne {
	return u.Update(func(s *AuditUpsert) {
		s.SetBrandMentionRate(v)
	})
}

// AddBrandMentionRate adds v to the "brand_mention_rate" field.
func (u *AuditUpsertOne) AddBrandMentionRate(v float64) *AuditUpsertOne {
	return u.Update(func(s *AuditUpsert) {
		s.AddBrandMentionRate(v)
	})
}

// UpdateBrandMentionRate sets the "brand_mention_rate" field to the value that was provided on create.
func (u *AuditUpsertOne) UpdateBrandMentionRate() *AuditUpsertOne {
	return u.Update(func(s *AuditUpsert) {
		s.UpdateBrandMentionRate()
	})
}

// ClearBrandMentionRate clears the value of the "brand_mention_rate" field.
func (u *AuditUpsertOne) ClearBrandMentionRate() *AuditUpsertOne {
	return u.Update(func(s *AuditUpsert) {
		s.ClearBrandMentionRate()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *AuditUpsertOne) SetErrorMessage(v string) *AuditUpsertOne {
	return u.Update(func(s *AuditUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *AuditUpsertOne) UpdateErrorMessage() *AuditUpsertOne {
	return u.Update(func(s *AuditUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *AuditUpsertOne) ClearErrorMessage() *AuditUpsertOne {
	return u.Update(func(s *AuditUpsert) {
		s.ClearErrorMessage()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *AuditUpsertOne) SetCreatedAt(v time.Time) *AuditUpsertOne {
	return u.Update(func(s *AuditUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *AuditUpsertOne) UpdateCreatedAt() *AuditUpsertOne {
	return u.Update(func(s *AuditUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *AuditUpsertOne) SetStartedAt(v time.Time) *AuditUpsertOne {
	return u.Update(func(s *AuditUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *AuditUpsertOne) UpdateStartedAt() *AuditUpsertOne {
	return u.Update(func(s *AuditUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *AuditUpsertOne) ClearStartedAt() *AuditUpsertOne {
	return u.Update(func(s *AuditUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *AuditUpsertOne) SetCompletedAt(v time.Time) *AuditUpsertOne {
	return u.Update(func(s *AuditUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *AuditUpsertOne) UpdateCompletedAt() *AuditUpsertOne {
	return u.Update(func(s *AuditUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *AuditUpsertOne) ClearCompletedAt() *AuditUpsertOne {
	return u.Update(func(s *AuditUpsert) {
		s.ClearCompletedAt()
	})
}

// SetProcessingTimeMs sets the "processing_time_ms" field.
func (u *AuditUpsertOne) SetProcessingTimeMs(v int) *AuditUpsertOne {
	return u.Update(func(s *AuditUpsert) {
		s.SetProcessingTimeMs(v)
	})
}

// AddProcessingTimeMs adds v to the "processing_time_ms" field.
func (u *AuditUpsertOne) AddProcessingTimeMs(v int) *AuditUpsertOne {
	return u.Update(func(s *AuditUpsert) {
		s.AddProcessingTimeMs(v)
	})
}

// UpdateProcessingTimeMs sets the "processing_time_ms" field to the value that was provided on create.
func (u *AuditUpsertOne) UpdateProcessingTimeMs() *AuditUpsertOne {
	return u.Update(func(s *AuditUpsert) {
		s.UpdateProcessingTimeMs()
	})
}

// ClearProcessingTimeMs clears the value of the "processing_time_ms" field.
func (u *AuditUpsertOne) ClearProcessingTimeMs() *AuditUpsertOne {
	return u.Update(func(s *AuditUpsert) {
		s.ClearProcessingTimeMs()
	})
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (u *AuditUpsertOne) SetHeartbeatAt(v time.Time) *AuditUpsertOne {
	return u.Update(func(s *AuditUpsert) {
		s.SetHeartbeatAt(v)
	})
}

// UpdateHeartbeatAt sets the "heartbeat_at" field to the value that was provided on create.
func (u *AuditUpsertOne) UpdateHeartbeatAt() *AuditUpsertOne {
	return u.Update(func(s *AuditUpsert) {
		s.UpdateHeartbeatAt()
	})
}

// ClearHeartbeatAt clears the value of the "heartbeat_at" field.
func (u *AuditUpsertOne) ClearHeartbeatAt() *AuditUpsertOne {
	return u.Update(func(s *AuditUpsert) {
		s.ClearHeartbeatAt()
	})
}

// SetClaimedBy sets the "claimed_by" field.
func (u *AuditUpsertOne) SetClaimedBy(v string) *AuditUpsertOne {
	return u.Update(func(s *AuditUpsert) {
		s.SetClaimedBy(v)
	})
}

// UpdateClaimedBy sets the "claimed_by" field to the value that was provided on create.
func (u *AuditUpsertOne) UpdateClaimedBy() *AuditUpsertOne {
	return u.Update(func(s *AuditUpsert) {
		s.UpdateClaimedBy()
	})
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (u *AuditUpsertOne) ClearClaimedBy() *AuditUpsertOne {
	return u.Update(func(s *AuditUpsert) {
		s.ClearClaimedBy()
	})
}

// Exec executes the query.
func (u *AuditUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AuditCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AuditUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AuditUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: AuditUpsertOne.ID is not supported by MySQL driver. Use AuditUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AuditUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AuditCreateBulk is the builder for creating many Audit entities in bulk.
type AuditCreateBulk struct {
	config
	err      error
	builders []*AuditCreate
	conflict []sql.ConflictOption
}

// Save creates the Audit entities in the database.
func (_c *AuditCreateBulk) Save(ctx context.Context) ([]*Audit, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Audit, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AuditMutation)
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
func (_c *AuditCreateBulk) SaveX(ctx context.Context) []*Audit {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AuditCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AuditCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Audit.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AuditUpsert) {
//			SetCompanyID(v+v).
//		}).
//		Exec(ctx)
func (_c *AuditCreateBulk) OnConflict(opts ...sql.ConflictOption) *AuditUpsertBulk {
	_c.conflict = opts
	return &AuditUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Audit.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AuditCreateBulk) OnConflictColumns(columns ...string) *AuditUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AuditUpsertBulk{
		create: _c,
	}
}

// AuditUpsertBulk is the builder for "upsert"-ing
// a bulk of Audit nodes.
type AuditUpsertBulk struct {
	create *AuditCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Audit.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(audit.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AuditUpsertBulk) UpdateNewValues() *AuditUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(audit.FieldID)
			}
			if _, exists := b.mutation.CompanyID(); exists {
				s.SetIgnore(audit.FieldCompanyID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Audit.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AuditUpsertBulk) Ignore() *AuditUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AuditUpsertBulk) DoNothing() *AuditUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AuditCreateBulk.OnConflict
// documentation for more info.
func (u *AuditUpsertBulk) Update(set func(*AuditUpsert)) *AuditUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AuditUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *AuditUpsertBulk) SetUserID(v string) *AuditUpsertBulk {
	return u.Update(func(s *AuditUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *AuditUpsertBulk) UpdateUserID() *AuditUpsertBulk {
	return u.Update(func(s *AuditUpsert) {
		s.UpdateUserID()
	})
}

// SetStatus sets the "status" field.
func (u *AuditUpsertBulk) SetStatus(v audit.Status) *AuditUpsertBulk {
	return u.Update(func(s *AuditUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *AuditUpsertBulk) UpdateStatus() *AuditUpsertBulk {
	return u.Update(func(s *AuditUpsert) {
		s.UpdateStatus()
	})
}

// SetProviders sets the "providers" field.
func (u *AuditUpsertBulk) SetProviders(v []string) *AuditUpsertBulk {
	return u.Update(func(s *AuditUpsert) {
		s.SetProviders(v)
	})
}

// UpdateProviders sets the "providers" field to the value that was provided on create.
func (u *AuditUpsertBulk) UpdateProviders() *AuditUpsertBulk {
	return u.Update(func(s *AuditUpsert) {
		s.UpdateProviders()
	})
}

// SetQueryCount sets the "query_count" field.
func (u *AuditUpsertBulk) SetQueryCount(v int) *AuditUpsertBulk {
	return u.Update(func(s *AuditUpsert) {
		s.SetQueryCount(v)
	})
}

// AddQueryCount adds v to the "query_count" field.
func (u *AuditUpsertBulk) AddQueryCount(v int) *AuditUpsertBulk {
	return u.Update(func(s *AuditUpsert) {
		s.AddQueryCount(v)
	})
}

// UpdateQueryCount sets the "query_count" field to the value that was provided on create.
func (u *AuditUpsertBulk) UpdateQueryCount() *AuditUpsertBulk {
	return u.Update(func(s *AuditUpsert) {
		s.UpdateQueryCount()
	})
}

// SetOverallScore sets the "overall_score" field.
func (u *AuditUpsertBulk) SetOverallScore(v float64) *AuditUpsertBulk {
	return u.Update(func(s *AuditUpsert) {
		s.SetOverallScore(v)
	})
}

// AddOverallScore adds v to the "overall_score" field.
func (u *AuditUpsertBulk) AddOverallScore(v float64) *AuditUpsertBulk {
	return u.Update(func(s *AuditUpsert) {
		s.AddOverallScore(v)
	})
}

// UpdateOverallScore sets the "overall_score" field to the value that was provided on create.
func (u *AuditUpsertBulk) UpdateOverallScore() *AuditUpsertBulk {
	return u.Update(func(s *AuditUpsert) {
		s.UpdateOverallScore()
	})
}

// ClearOverallScore clears the value of the "overall_score" field.
func (u *AuditUpsertBulk) ClearOverallScore() *AuditUpsertBulk {
	return u.Update(func(s *AuditUpsert) {
		s.ClearOverallScore()
	})
}

// SetBrandMentionRate sets the "brand_mention_rate" field.
func (u *AuditUpsertBulk) SetBrandMentionRate(v float64) *AuditUpsertBulk {
	return u.Update(func(s *AuditUpsert) {
		s.SetBrandMentionRate(v)
	})
}

// AddBrandMentionRate adds v to the "brand_mention_rate" field.
func (u *AuditUpsertBulk) AddBrandMentionRate(v float64) *AuditUpsertBulk {
	return u.Update(func(s *AuditUpsert) {
		s.AddBrandMentionRate(v)
	})
}

// UpdateBrandMentionRate sets the "brand_mention_rate" field to the value that was provided on create.
func (u *AuditUpsertBulk) UpdateBrandMentionRate() *AuditUpsertBulk {
	return u.Update(func(s *AuditUpsert) {
		s.UpdateBrandMentionRate()
	})
}

// ClearBrandMentionRate clears the value of the "brand_mention_rate" field.
func (u *AuditUpsertBulk) ClearBrandMentionRate() *AuditUpsertBulk {
	return u.Update(func(s *AuditUpsert) {
		s.ClearBrandMentionRate()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *AuditUpsertBulk) SetErrorMessage(v string) *AuditUpsertBulk {
	return u.Update(func(s *AuditUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *AuditUpsertBulk) UpdateErrorMessage() *AuditUpsertBulk {
	return u.Update(func(s *AuditUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *AuditUpsertBulk) ClearErrorMessage() *AuditUpsertBulk {
	return u.Update(func(s *AuditUpsert) {
		s.ClearErrorMessage()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *AuditUpsertBulk) SetCreatedAt(v time.Time) *AuditUpsertBulk {
	return u.Update(func(s *AuditUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *AuditUpsertBulk) UpdateCreatedAt() *AuditUpsertBulk {
	return u.Update(func(s *AuditUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *AuditUpsertBulk) SetStartedAt(v time.Time) *AuditUpsertBulk {
	return u.Update(func(s *AuditUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *AuditUpsertBulk) UpdateStartedAt() *AuditUpsertBulk {
	return u.Update(func(s *AuditUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *AuditUpsertBulk) ClearStartedAt() *AuditUpsertBulk {
	return u.Update(func(s *AuditUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *AuditUpsertBulk) SetCompletedAt(v time.Time) *AuditUpsertBulk {
	return u.Update(func(s *AuditUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *AuditUpsertBulk) UpdateCompletedAt() *AuditUpsertBulk {
	return u.Update(func(s *AuditUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *AuditUpsertBulk) ClearCompletedAt() *AuditUpsertBulk {
	return u.Update(func(s *AuditUpsert) {
		s.ClearCompletedAt()
	})
}

// SetProcessingTimeMs sets the "processing_time_ms" field.
func (u *AuditUpsertBulk) SetProcessingTimeMs(v int) *AuditUpsertBulk {
	return u.Update(func(s *AuditUpsert) {
		s.SetProcessingTimeMs(v)
	})
}

// AddProcessingTimeMs adds v to the "processing_time_ms" field.
func (u *AuditUpsertBulk) AddProcessingTimeMs(v int) *AuditUpsertBulk {
	return u.Update(func(s *AuditUpsert) {
		s.AddProcessingTimeMs(v)
	})
}

// UpdateProcessingTimeMs sets the "processing_time_ms" field to the value that was provided on create.
func (u *AuditUpsertBulk) UpdateProcessingTimeMs() *AuditUpsertBulk {
	return u.Update(func(s *AuditUpsert) {
		s.UpdateProcessingTimeMs()
	})
}

// ClearProcessingTimeMs clears the value of the "processing_time_ms" field.
func (u *AuditUpsertBulk) ClearProcessingTimeMs() *AuditUpsertBulk {
	return u.Update(func(s *AuditUpsert) {
		s.ClearProcessingTimeMs()
	})
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (u *AuditUpsertBulk) SetHeartbeatAt(v time.Time) *AuditUpsertBulk {
	return u.Update(func(s *AuditUpsert) {
		s.SetHeartbeatAt(v)
	})
}

// UpdateHeartbeatAt sets the "heartbeat_at" field to the value that was provided on create.
func (u *AuditUpsertBulk) UpdateHeartbeatAt() *AuditUpsertBulk {
	return u.Update(func(s *AuditUpsert) {
		s.UpdateHeartbeatAt()
	})
}

// ClearHeartbeatAt clears the value of the "heartbeat_at" field.
func (u *AuditUpsertBulk) ClearHeartbeatAt() *AuditUpsertBulk {
	return u.Update(func(s *AuditUpsert) {
		s.ClearHeartbeatAt()
	})
}

// SetClaimedBy sets the "claimed_by" field.
func (u *AuditUpsertBulk) SetClaimedBy(v string) *AuditUpsertBulk {
	return u.Update(func(s *AuditUpsert) {
		s.SetClaimedBy(v)
	})
}

// UpdateClaimedBy sets the "claimed_by" field to the value that was provided on create.
func (u *AuditUpsertBulk) UpdateClaimedBy() *AuditUpsertBulk {
	return u.Update(func(s *AuditUpsert) {
		s.UpdateClaimedBy()
	})
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (u *AuditUpsertBulk) ClearClaimedBy() *AuditUpsertBulk {
	return u.Update(func(s *AuditUpsert) {
		s.ClearClaimedBy()
	})
}

// Exec executes the query.
func (u *AuditUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AuditCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AuditCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AuditUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
