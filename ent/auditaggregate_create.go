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
	"github.com/specularhq/specular/ent/schema"
)

// AuditAggregateCreate is the builder for creating a AuditAggregate entity.
type AuditAggregateCreate struct {
	config
	mutation *AuditAggregateMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetAuditID sets the "audit_id" field.
func (_c *AuditAggregateCreate) SetAuditID(v string) *AuditAggregateCreate {
	_c.mutation.SetAuditID(v)
	return _c
}

// SetOverallScore sets the "overall_score" field.
func (_c *AuditAggregateCreate) SetOverallScore(v float64) *AuditAggregateCreate {
	_c.mutation.SetOverallScore(v)
	return _c
}

// SetNillableOverallScore sets the "overall_score" field if the given value is not nil.
func (_c *AuditAggregateCreate) SetNillableOverallScore(v *float64) *AuditAggregateCreate {
	if v != nil {
		_c.SetOverallScore(*v)
	}
	return _c
}

// SetGeoScore sets the "geo_score" field.
func (_c *AuditAggregateCreate) SetGeoScore(v float64) *AuditAggregateCreate {
	_c.mutation.SetGeoScore(v)
	return _c
}

// SetNillableGeoScore sets the "geo_score" field if the given value is not nil.
func (_c *AuditAggregateCreate) SetNillableGeoScore(v *float64) *AuditAggregateCreate {
	if v != nil {
		_c.SetGeoScore(*v)
	}
	return _c
}

// SetSovScore sets the "sov_score" field.
func (_c *AuditAggregateCreate) SetSovScore(v float64) *AuditAggregateCreate {
	_c.mutation.SetSovScore(v)
	return _c
}

// SetNillableSovScore sets the "sov_score" field if the given value is not nil.
func (_c *AuditAggregateCreate) SetNillableSovScore(v *float64) *AuditAggregateCreate {
	if v != nil {
		_c.SetSovScore(*v)
	}
	return _c
}

// SetRecommendationScore sets the "recommendation_score" field.
func (_c *AuditAggregateCreate) SetRecommendationScore(v float64) *AuditAggregateCreate {
	_c.mutation.SetRecommendationScore(v)
	return _c
}

// SetNillableRecommendationScore sets the "recommendation_score" field if the given value is not nil.
func (_c *AuditAggregateCreate) SetNillableRecommendationScore(v *float64) *AuditAggregateCreate {
	if v != nil {
		_c.SetRecommendationScore(*v)
	}
	return _c
}

// SetSentimentScore sets the "sentiment_score" field.
func (_c *AuditAggregateCreate) SetSentimentScore(v float64) *AuditAggregateCreate {
	_c.mutation.SetSentimentScore(v)
	return _c
}

// SetNillableSentimentScore sets the "sentiment_score" field if the given value is not nil.
func (_c *AuditAggregateCreate) SetNillableSentimentScore(v *float64) *AuditAggregateCreate {
	if v != nil {
		_c.SetSentimentScore(*v)
	}
	return _c
}

// SetVisibilityScore sets the "visibility_score" field.
func (_c *AuditAggregateCreate) SetVisibilityScore(v float64) *AuditAggregateCreate {
	_c.mutation.SetVisibilityScore(v)
	return _c
}

// SetNillableVisibilityScore sets the "visibility_score" field if the given value is not nil.
func (_c *AuditAggregateCreate) SetNillableVisibilityScore(v *float64) *AuditAggregateCreate {
	if v != nil {
		_c.SetVisibilityScore(*v)
	}
	return _c
}

// SetContextCompleteness sets the "context_completeness" field.
func (_c *AuditAggregateCreate) SetContextCompleteness(v float64) *AuditAggregateCreate {
	_c.mutation.SetContextCompleteness(v)
	return _c
}

// SetNillableContextCompleteness sets the "context_completeness" field if the given value is not nil.
func (_c *AuditAggregateCreate) SetNillableContextCompleteness(v *float64) *AuditAggregateCreate {
	if v != nil {
		_c.SetContextCompleteness(*v)
	}
	return _c
}

// SetProviderBreakdown sets the "provider_breakdown" field.
func (_c *AuditAggregateCreate) SetProviderBreakdown(v map[string]schema.ScoreBreakdown) *AuditAggregateCreate {
	_c.mutation.SetProviderBreakdown(v)
	return _c
}

// SetCategoryBreakdown sets the "category_breakdown" field.
func (_c *AuditAggregateCreate) SetCategoryBreakdown(v map[string]schema.ScoreBreakdown) *AuditAggregateCreate {
	_c.mutation.SetCategoryBreakdown(v)
	return _c
}

// SetCompetitorMentions sets the "competitor_mentions" field.
func (_c *AuditAggregateCreate) SetCompetitorMentions(v map[string]int) *AuditAggregateCreate {
	_c.mutation.SetCompetitorMentions(v)
	return _c
}

// SetTotalResponses sets the "total_responses" field.
func (_c *AuditAggregateCreate) SetTotalResponses(v int) *AuditAggregateCreate {
	_c.mutation.SetTotalResponses(v)
	return _c
}

// SetNillableTotalResponses sets the "total_responses" field if the given value is not nil.
func (_c *AuditAggregateCreate) SetNillableTotalResponses(v *int) *AuditAggregateCreate {
	if v != nil {
		_c.SetTotalResponses(*v)
	}
	return _c
}

// SetAnalyzedResponses sets the "analyzed_responses" field.
func (_c *AuditAggregateCreate) SetAnalyzedResponses(v int) *AuditAggregateCreate {
	_c.mutation.SetAnalyzedResponses(v)
	return _c
}

// SetNillableAnalyzedResponses sets the "analyzed_responses" field if the given value is not nil.
func (_c *AuditAggregateCreate) SetNillableAnalyzedResponses(v *int) *AuditAggregateCreate {
	if v != nil {
		_c.SetAnalyzedResponses(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AuditAggregateCreate) SetCreatedAt(v time.Time) *AuditAggregateCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AuditAggregateCreate) SetNillableCreatedAt(v *time.Time) *AuditAggregateCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AuditAggregateCreate) SetID(v string) *AuditAggregateCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetAudit sets the "audit" edge to the Audit entity.
func (_c *AuditAggregateCreate) SetAudit(v *Audit) *AuditAggregateCreate {
	return _c.SetAuditID(v.ID)
}

// Mutation returns the AuditAggregateMutation object of the builder.
func (_c *AuditAggregateCreate) Mutation() *AuditAggregateMutation {
	return _c.mutation
}

// Save creates the AuditAggregate in the database.
func (_c *AuditAggregateCreate) Save(ctx context.Context) (*AuditAggregate, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AuditAggregateCreate) SaveX(ctx context.Context) *AuditAggregate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AuditAggregateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AuditAggregateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AuditAggregateCreate) defaults() {
	if _, ok := _c.mutation.OverallScore(); !ok {
		v := auditaggregate.DefaultOverallScore
		_c.mutation.SetOverallScore(v)
	}
	if _, ok := _c.mutation.GeoScore(); !ok {
		v := auditaggregate.DefaultGeoScore
		_c.mutation.SetGeoScore(v)
	}
	if _, ok := _c.mutation.SovScore(); !ok {
		v := auditaggregate.DefaultSovScore
		_c.mutation.SetSovScore(v)
	}
	if _, ok := _c.mutation.RecommendationScore(); !ok {
		v := auditaggregate.DefaultRecommendationScore
		_c.mutation.SetRecommendationScore(v)
	}
	if _, ok := _c.mutation.SentimentScore(); !ok {
		v := auditaggregate.DefaultSentimentScore
		_c.mutation.SetSentimentScore(v)
	}
	if _, ok := _c.mutation.VisibilityScore(); !ok {
		v := auditaggregate.DefaultVisibilityScore
		_c.mutation.SetVisibilityScore(v)
	}
	if _, ok := _c.mutation.ContextCompleteness(); !ok {
		v := auditaggregate.DefaultContextCompleteness
		_c.mutation.SetContextCompleteness(v)
	}
	if _, ok := _c.mutation.TotalResponses(); !ok {
		v := auditaggregate.DefaultTotalResponses
		_c.mutation.SetTotalResponses(v)
	}
	if _, ok := _c.mutation.AnalyzedResponses(); !ok {
		v := auditaggregate.DefaultAnalyzedResponses
		_c.mutation.SetAnalyzedResponses(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := auditaggregate.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AuditAggregateCreate) check() error {
	if _, ok := _c.mutation.AuditID(); !ok {
		return &ValidationError{Name: "audit_id", err: errors.New(`ent: missing required field "AuditAggregate.audit_id"`)}
	}
	if _, ok := _c.mutation.OverallScore(); !ok {
		return &ValidationError{Name: "overall_score", err: errors.New(`ent: missing required field "AuditAggregate.overall_score"`)}
	}
	if _, ok := _c.mutation.GeoScore(); !ok {
		return &ValidationError{Name: "geo_score", err: errors.New(`ent: missing required field "AuditAggregate.geo_score"`)}
	}
	if _, ok := _c.mutation.SovScore(); !ok {
		return &ValidationError{Name: "sov_score", err: errors.New(`ent: missing required field "AuditAggregate.sov_score"`)}
	}
	if _, ok := _c.mutation.RecommendationScore(); !ok {
		return &ValidationError{Name: "recommendation_score", err: errors.New(`ent: missing required field "AuditAggregate.recommendation_score"`)}
	}
	if _, ok := _c.mutation.SentimentScore(); !ok {
		return &ValidationError{Name: "sentiment_score", err: errors.New(`ent: missing required field "AuditAggregate.sentiment_score"`)}
	}
	if _, ok := _c.mutation.VisibilityScore(); !ok {
		return &ValidationError{Name: "visibility_score", err: errors.New(`ent: missing required field "AuditAggregate.visibility_score"`)}
	}
	if _, ok := _c.mutation.ContextCompleteness(); !ok {
		return &ValidationError{Name: "context_completeness", err: errors.New(`ent: missing required field "AuditAggregate.context_completeness"`)}
	}
	if _, ok := _c.mutation.TotalResponses(); !ok {
		return &ValidationError{Name: "total_responses", err: errors.New(`ent: missing required field "AuditAggregate.total_responses"`)}
	}
	if _, ok := _c.mutation.AnalyzedResponses(); !ok {
		return &ValidationError{Name: "analyzed_responses", err: errors.New(`ent: missing required field "AuditAggregate.analyzed_responses"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AuditAggregate.created_at"`)}
	}
	if len(_c.mutation.AuditIDs()) == 0 {
		return &ValidationError{Name: "audit", err: errors.New(`ent: missing required edge "AuditAggregate.audit"`)}
	}
	return nil
}

func (_c *AuditAggregateCreate) sqlSave(ctx context.Context) (*AuditAggregate, error) {
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
			return nil, fmt.Errorf("unexpected AuditAggregate.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AuditAggregateCreate) createSpec() (*AuditAggregate, *sqlgraph.CreateSpec) {
	var (
		_node = &AuditAggregate{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(auditaggregate.Table, sqlgraph.NewFieldSpec(auditaggregate.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.OverallScore(); ok {
		_spec.SetField(auditaggregate.FieldOverallScore, field.TypeFloat64, value)
		_node.OverallScore = value
	}
	if value, ok := _c.mutation.GeoScore(); ok {
		_spec.SetField(auditaggregate.FieldGeoScore, field.TypeFloat64, value)
		_node.GeoScore = value
	}
	if value, ok := _c.mutation.SovScore(); ok {
		_spec.SetField(auditaggregate.FieldSovScore, field.TypeFloat64, value)
		_node.SovScore = value
	}
	if value, ok := _c.mutation.RecommendationScore(); ok {
		_spec.SetField(auditaggregate.FieldRecommendationScore, field.TypeFloat64, value)
		_node.RecommendationScore = value
	}
	if value, ok := _c.mutation.SentimentScore(); ok {
		_spec.SetField(auditaggregate.FieldSentimentScore, field.TypeFloat64, value)
		_node.SentimentScore = value
	}
	if value, ok := _c.mutation.VisibilityScore(); ok {
		_spec.SetField(auditaggregate.FieldVisibilityScore, field.TypeFloat64, value)
		_node.VisibilityScore = value
	}
	if value, ok := _c.mutation.ContextCompleteness(); ok {
		_spec.SetField(auditaggregate.FieldContextCompleteness, field.TypeFloat64, value)
		_node.ContextCompleteness = value
	}
	if value, ok := _c.mutation.ProviderBreakdown(); ok {
		_spec.SetField(auditaggregate.FieldProviderBreakdown, field.TypeJSON, value)
		_node.ProviderBreakdown = value
	}
	if value, ok := _c.mutation.CategoryBreakdown(); ok {
		_spec.SetField(auditaggregate.FieldCategoryBreakdown, field.TypeJSON, value)
		_node.CategoryBreakdown = value
	}
	if value, ok := _c.mutation.CompetitorMentions(); ok {
		_spec.SetField(auditaggregate.FieldCompetitorMentions, field.TypeJSON, value)
		_node.CompetitorMentions = value
	}
	if value, ok := _c.mutation.TotalResponses(); ok {
		_spec.SetField(auditaggregate.FieldTotalResponses, field.TypeInt, value)
		_node.TotalResponses = value
	}
	if value, ok := _c.mutation.AnalyzedResponses(); ok {
		_spec.SetField(auditaggregate.FieldAnalyzedResponses, field.TypeInt, value)
		_node.AnalyzedResponses = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(auditaggregate.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.AuditIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   auditaggregate.AuditTable,
			Columns: []string{auditaggregate.AuditColumn},
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
//	client.AuditAggregate.Create().
//		SetAuditID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AuditAggregateUpsert) {
//			SetAuditID(v+v).
//		}).
//		Exec(ctx)
func (_c *AuditAggregateCreate) OnConflict(opts ...sql.ConflictOption) *AuditAggregateUpsertOne {
	_c.conflict = opts
	return &AuditAggregateUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AuditAggregate.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AuditAggregateCreate) OnConflictColumns(columns ...string) *AuditAggregateUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AuditAggregateUpsertOne{
		create: _c,
	}
}

type (
	// AuditAggregateUpsertOne is the builder for "upsert"-ing
	//  one AuditAggregate node.
	AuditAggregateUpsertOne struct {
		create *AuditAggregateCreate
	}

	// AuditAggregateUpsert is the "OnConflict" setter.
	AuditAggregateUpsert struct {
		*sql.UpdateSet
	}
)

// SetOverallScore sets the "overall_score" field.
func (u *AuditAggregateUpsert) SetOverallScore(v float64) *AuditAggregateUpsert {
	u.Set(auditaggregate.FieldOverallScore, v)
	return u
}

// UpdateOverallScore sets the "overall_score" field to the value that was provided on create.
func (u *AuditAggregateUpsert) UpdateOverallScore() *AuditAggregateUpsert {
	u.SetExcluded(auditaggregate.FieldOverallScore)
	return u
}

// AddOverallScore adds v to the "overall_score" field.
func (u *AuditAggregateUpsert) AddOverallScore(v float64) *AuditAggregateUpsert {
	u.Add(auditaggregate.FieldOverallScore, v)
	return u
}

// SetGeoScore sets the "geo_score" field.
func (u *AuditAggregateUpsert) SetGeoScore(v float64) *AuditAggregateUpsert {
	u.Set(auditaggregate.FieldGeoScore, v)
	return u
}

// UpdateGeoScore sets the "geo_score" field to the value that was provided on create.
func (u *AuditAggregateUpsert) UpdateGeoScore() *AuditAggregateUpsert {
	u.SetExcluded(auditaggregate.FieldGeoScore)
	return u
}

// AddGeoScore adds v to the "geo_score" field.
func (u *AuditAggregateUpsert) AddGeoScore(v float64) *AuditAggregateUpsert {
	u.Add(auditaggregate.FieldGeoScore, v)
	return u
}

// SetSovScore sets the "sov_score" field.
func (u *AuditAggregateUpsert) SetSovScore(v float64) *AuditAggregateUpsert {
	u.Set(auditaggregate.FieldSovScore, v)
	return u
}

// UpdateSovScore sets the "sov_score" field to the value that was provided on create.
func (u *AuditAggregateUpsert) UpdateSovScore() *AuditAggregateUpsert {
	u.SetExcluded(auditaggregate.FieldSovScore)
	return u
}

// AddSovScore adds v to the "sov_score" field.
func (u *AuditAggregateUpsert) AddSovScore(v float64) *AuditAggregateUpsert {
	u.Add(auditaggregate.FieldSovScore, v)
	return u
}

// SetRecommendationScore sets the "recommendation_score" field.
func (u *AuditAggregateUpsert) SetRecommendationScore(v float64) *AuditAggregateUpsert {
	u.Set(auditaggregate.FieldRecommendationScore, v)
	return u
}

// UpdateRecommendationScore sets the "recommendation_score" field to the value that was provided on create.
func (u *AuditAggregateUpsert) UpdateRecommendationScore() *AuditAggregateUpsert {
	u.SetExcluded(auditaggregate.FieldRecommendationScore)
	return u
}

// AddRecommendationScore adds v to the "recommendation_score" field.
func (u *AuditAggregateUpsert) AddRecommendationScore(v float64) *AuditAggregateUpsert {
	u.Add(auditaggregate.FieldRecommendationScore, v)
	return u
}

// SetSentimentScore sets the "sentiment_score" field.
func (u *AuditAggregateUpsert) SetSentimentScore(v float64) *AuditAggregateUpsert {
	u.Set(auditaggregate.FieldSentimentScore, v)
	return u
}

// UpdateSentimentScore sets the "sentiment_score" field to the value that was provided on create.
func (u *AuditAggregateUpsert) UpdateSentimentScore() *AuditAggregateUpsert {
	u.SetExcluded(auditaggregate.FieldSentimentScore)
	return u
}

// AddSentimentScore adds v to the "sentiment_score" field.
func (u *AuditAggregateUpsert) AddSentimentScore(v float64) *AuditAggregateUpsert {
	u.Add(auditaggregate.FieldSentimentScore, v)
	return u
}

// SetVisibilityScore sets the "visibility_score" field.
func (u *AuditAggregateUpsert) SetVisibilityScore(v float64) *AuditAggregateUpsert {
	u.Set(auditaggregate.FieldVisibilityScore, v)
	return u
}

// UpdateVisibilityScore sets the "visibility_score" field to the value that was provided on create.
func (u *AuditAggregateUpsert) UpdateVisibilityScore() *AuditAggregateUpsert {
	u.SetExcluded(auditaggregate.FieldVisibilityScore)
	return u
}

// AddVisibilityScore adds v to the "visibility_score" field.
func (u *AuditAggregateUpsert) AddVisibilityScore(v float64) *AuditAggregateUpsert {
	u.Add(auditaggregate.FieldVisibilityScore, v)
	return u
}

// SetContextCompleteness sets the "context_completeness" field.
func (u *AuditAggregateUpsert) SetContextCompleteness(v float64) *AuditAggregateUpsert {
	u.Set(auditaggregate.FieldContextCompleteness, v)
	return u
}

// UpdateContextCompleteness sets the "context_completeness" field to the value that was provided on create.
func (u *AuditAggregateUpsert) UpdateContextCompleteness() *AuditAggregateUpsert {
	u.SetExcluded(auditaggregate.FieldContextCompleteness)
	return u
}

// AddContextCompleteness adds v to the "context_completeness" field.
func (u *AuditAggregateUpsert) AddContextCompleteness(v float64) *AuditAggregateUpsert {
	u.Add(auditaggregate.FieldContextCompleteness, v)
	return u
}

// SetProviderBreakdown sets the "provider_breakdown" field.
func (u *AuditAggregateUpsert) SetProviderBreakdown(v map[string]schema.ScoreBreakdown) *AuditAggregateUpsert {
	u.Set(auditaggregate.FieldProviderBreakdown, v)
	return u
}

// UpdateProviderBreakdown sets the "provider_breakdown" field to the value that was provided on create.
func (u *AuditAggregateUpsert) UpdateProviderBreakdown() *AuditAggregateUpsert {
	u.SetExcluded(auditaggregate.FieldProviderBreakdown)
	return u
}

// ClearProviderBreakdown clears the value of the "provider_breakdown" field.
func (u *AuditAggregateUpsert) ClearProviderBreakdown() *AuditAggregateUpsert {
	u.SetNull(auditaggregate.FieldProviderBreakdown)
	return u
}

// SetCategoryBreakdown sets the "category_breakdown" field.
func (u *AuditAggregateUpsert) SetCategoryBreakdown(v map[string]schema.ScoreBreakdown) *AuditAggregateUpsert {
	u.Set(auditaggregate.FieldCategoryBreakdown, v)
	return u
}

// UpdateCategoryBreakdown sets the "category_breakdown" field to the value that was provided on create.
func (u *AuditAggregateUpsert) UpdateCategoryBreakdown() *AuditAggregateUpsert {
	u.SetExcluded(auditaggregate.FieldCategoryBreakdown)
	return u
}

// ClearCategoryBreakdown clears the value of the "category_breakdown" field.
func (u *AuditAggregateUpsert) ClearCategoryBreakdown() *AuditAggregateUpsert {
	u.SetNull(auditaggregate.FieldCategoryBreakdown)
	return u
}

// SetCompetitorMentions sets the "competitor_mentions" field.
func (u *AuditAggregateUpsert) SetCompetitorMentions(v map[string]int) *AuditAggregateUpsert {
	u.Set(auditaggregate.FieldCompetitorMentions, v)
	return u
}

// UpdateCompetitorMentions sets the "competitor_mentions" field to the value that was provided on create.
func (u *AuditAggregateUpsert) UpdateCompetitorMentions() *AuditAggregateUpsert {
	u.SetExcluded(auditaggregate.FieldCompetitorMentions)
	return u
}

// ClearCompetitorMentions clears the value of the "competitor_mentions" field.
func (u *AuditAggregateUpsert) ClearCompetitorMentions() *AuditAggregateUpsert {
	u.SetNull(auditaggregate.FieldCompetitorMentions)
	return u
}

// SetTotalResponses sets the "total_responses" field.
func (u *AuditAggregateUpsert) SetTotalResponses(v int) *AuditAggregateUpsert {
	u.Set(auditaggregate.FieldTotalResponses, v)
	return u
}

// UpdateTotalResponses sets the "total_responses" field to the value that was provided on create.
func (u *AuditAggregateUpsert) UpdateTotalResponses() *AuditAggregateUpsert {
	u.SetExcluded(auditaggregate.FieldTotalResponses)
	return u
}

// AddTotalResponses adds v to the "total_responses" field.
func (u *AuditAggregateUpsert) AddTotalResponses(v int) *AuditAggregateUpsert {
	u.Add(auditaggregate.FieldTotalResponses, v)
	return u
}

// SetAnalyzedResponses sets the "analyzed_responses" field.
func (u *AuditAggregateUpsert) SetAnalyzedResponses(v int) *AuditAggregateUpsert {
	u.Set(auditaggregate.FieldAnalyzedResponses, v)
	return u
}

// UpdateAnalyzedResponses sets the "analyzed_responses" field to the value that was provided on create.
func (u *AuditAggregateUpsert) UpdateAnalyzedResponses() *AuditAggregateUpsert {
	u.SetExcluded(auditaggregate.FieldAnalyzedResponses)
	return u
}

// AddAnalyzedResponses adds v to the "analyzed_responses" field.
func (u *AuditAggregateUpsert) AddAnalyzedResponses(v int) *AuditAggregateUpsert {
	u.Add(auditaggregate.FieldAnalyzedResponses, v)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *AuditAggregateUpsert) SetCreatedAt(v time.Time) *AuditAggregateUpsert {
	u.Set(auditaggregate.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *AuditAggregateUpsert) UpdateCreatedAt() *AuditAggregateUpsert {
	u.SetExcluded(auditaggregate.FieldCreatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.AuditAggregate.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(auditaggregate.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AuditAggregateUpsertOne) UpdateNewValues() *AuditAggregateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(auditaggregate.FieldID)
		}
		if _, exists := u.create.mutation.AuditID(); exists {
			s.SetIgnore(auditaggregate.FieldAuditID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AuditAggregate.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AuditAggregateUpsertOne) Ignore() *AuditAggregateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AuditAggregateUpsertOne) DoNothing() *AuditAggregateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AuditAggregateCreate.OnConflict
// documentation for more info.
func (u *AuditAggregateUpsertOne) Update(set func(*AuditAggregateUpsert)) *AuditAggregateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AuditAggregateUpsert{UpdateSet: update})
	}))
	return u
}

// SetOverallScore sets the "overall_score" field.
func (u *AuditAggregateUpsertOne) SetOverallScore(v float64) *AuditAggregateUpsertOne {
	return u.Update(func(s *AuditAggregateUpsert) {
		s.SetOverallScore(v)
	})
}

// AddOverallScore adds v to the "overall_score" field.
func (u *AuditAggregateUpsertOne) AddOverallScore(v float64) *AuditAggregateUpsertOne {
	return u.Update(func(s *AuditAggregateUpsert) {
		s.AddOverallScore(v)
	})
}

// UpdateOverallScore sets the "overall_score" field to the value that was provided on create.
func (u *AuditAggregateUpsertOne) UpdateOverallScore() *AuditAggregateUpsertOne {
	return u.Update(func(s *AuditAggregateUpsert) {
		s.UpdateOverallScore()
	})
}

// SetGeoScore sets the "geo_score" field.
func (u *AuditAggregateUpsertOne) SetGeoScore(v float64) *AuditAggregateUpsertOne {
	return u.Update(func(s *AuditAggregateUpsert) {
		s.SetGeoScore(v)
	})
}

// AddGeoScore adds v to the "geo_score" field.
func (u *AuditAggregateUpsertOne) AddGeoScore(v float64) *AuditAggregateUpsertOne {
	return u.Update(func(s *AuditAggregateUpsert) {
		s.AddGeoScore(v)
	})
}

// UpdateGeoScore sets the "geo_score" field to the value that was provided on create.
func (u *AuditAggregateUpsertOne) UpdateGeoScore() *AuditAggregateUpsertOne {
	return u.Update(func(s *AuditAggregateUpsert) {
		s.UpdateGeoScore()
	})
}

// SetSovScore sets the "sov_score" field.
func (u *AuditAggregateUpsertOne) SetSovScore(v float64) *AuditAggregateUpsertOne {
	return u.Update(func(s *AuditAggregateUpsert) {
		s.SetSovScore(v)
	})
}

// AddSovScore adds v to the "sov_score" field.
func (u *AuditAggregateUpsertOne) AddSovScore(v float64) *AuditAggregateUpsertOne {
	return u.Update(func(s *AuditAggregateUpsert) {
		s.AddSovScore(v)
	})
}

// UpdateSovScore sets the "sov_score" field to the value that was provided on create.
func (u *AuditAggregateUpsertOne) UpdateSovScore() *AuditAggregateUpsertOne {
	return u.Update(func(s *AuditAggregateUpsert) {
		s.UpdateSovScore()
	})
}

// SetRecommendationScore sets the "recommendation_score" field.
func (u *AuditAggregateUpsertOne) SetRecommendationScore(v float64) *AuditAggregateUpsertOne {
	return u.Update(func(s *AuditAggregateUpsert) {
		s.SetRecommendationScore(v)
	})
}

// AddRecommendationScore adds v to the "recommendation_score" field.
func (u *AuditAggregateUpsertOne) AddRecommendationScore(v float64) *AuditAggregateUpsertOne {
	return u.Update(func(s *AuditAggregateUpsert) {
		s.AddRecommendationScore(v)
	})
}

// UpdateRecommendationScore sets the "recommendation_score" field to the value that was provided on create.
func (u *AuditAggregateUpsertOne) UpdateRecommendationScore() *AuditAggregateUpsertOne {
	return u.Update(func(s *AuditAggregateUpsert) {
		s.UpdateRecommendationScore()
	})
}

// SetSentimentScore sets the "sentiment_score" field.
func (u *AuditAggregateUpsertOne) SetSentimentScore(v float64) *AuditAggregateUpsertOne {
	return u.Update(func(s *AuditAggregateUpsert) {
		s.SetSentimentScore(v)
	})
}

// AddSentimentScore adds v to the "sentiment_score" field.
func (u *AuditAggregateUpsertOne) AddSentimentScore(v float64) *AuditAggregateUpsertOne {
	return u.Update(func(s *AuditAggregateUpsert) {
		s.AddSentimentScore(v)
	})
}

// UpdateSentimentScore sets the "sentiment_score" field to the value that was provided on create.
func (u *AuditAggregateUpsertOne) UpdateSentimentScore() *AuditAggregateUpsertOne {
	return u.Update(func(s *AuditAggregateUpsert) {
		s.UpdateSentimentScore()
	})
}

// SetVisibilityScore sets the "visibility_score" field.
func (u *AuditAggregateUpsertOne) SetVisibilityScore(v float64) *AuditAggregateUpsertOne {
	return u.Update(func(s *AuditAggregateUpsert) {
		s.SetVisibilityScore(v)
	})
}

// AddVisibilityScore adds v to the "visibility_score" field.
func (u *AuditAggregateUpsertOne) AddVisibilityScore(v float64) *AuditAggregateUpsertOne {
	return u.Update(func(s *AuditAggregateUpsert) {
		s.AddVisibilityScore(v)
	})
}

// UpdateVisibilityScore sets the "visibility_score" field to the value that was provided on create.
func (u *AuditAggregateUpsertOne) UpdateVisibilityScore() *AuditAggregateUpsertOne {
	return u.Update(func(s *AuditAggregateUpsert) {
		s.UpdateVisibilityScore()
	})
}

// SetContextCompleteness sets the "context_completeness" field.
func (u *AuditAggregateUpsertOne) SetContextCompleteness(v float64) *AuditAggregateUpsertOne {
	return u.Update(func(s *AuditAggregateUpsert) {
		s.SetContextCompleteness(v)
	})
}

// AddContextCompleteness adds v to the "context_completeness" field.
func (u *AuditAggregateUpsertOne) AddContextCompleteness(v float64) *AuditAggregateUpsertOne {
	return u.Update(func(s *AuditAggregateUpsert) {
		s.AddContextCompleteness(v)
	})
}

// UpdateContextCompleteness sets the "context_completeness" field to the value that was provided on create.
func (u *AuditAggregateUpsertOne) UpdateContextCompleteness() *AuditAggregateUpsertOne {
	return u.Update(func(s *AuditAggregateUpsert) {
		s.UpdateContextCompleteness()
	})
}

// SetProviderBreakdown sets the "provider_breakdown" field.
func (u *AuditAggregateUpsertOne) SetProviderBreakdown(v map[string]schema.ScoreBreakdown) *AuditAggregateUpsertOne {
	return u.Update(func(s *AuditAggregateUpsert) {
		s.SetProviderBreakdown(v)
	})
}

// UpdateProviderBreakdown sets the "provider_breakdown" field to the value that was provided on create.
func (u *AuditAggregateUpsertOne) UpdateProviderBreakdown() *AuditAggregateUpsertOne {
	return u.Update(func(s *AuditAggregateUpsert) {
		s.UpdateProviderBreakdown()
	})
}

// ClearProviderBreakdown clears the value of the "provider_breakdown" field.
func (u *AuditAggregateUpsertOne) ClearProviderBreakdown() *AuditAggregateUpsertOne {
	return u.Update(func(s *AuditAggregateUpsert) {
		s.ClearProviderBreakdown()
	})
}

// SetCategoryBreakdown sets the "category_breakdown" field.
func (u *AuditAggregateUpsertOne) SetCategoryBreakdown(v map[string]schema.ScoreBreakdown) *AuditAggregateUpsertOne {
	return u.Update(func(s *AuditAggregateUpsert) {
		s.SetCategoryBreakdown(v)
	})
}

// UpdateCategoryBreakdown sets the "category_breakdown" field to the value that was provided on create.
func (u *AuditAggregateUpsertOne) UpdateCategoryBreakdown() *AuditAggregateUpsertOne {
	return u.Update(func(s *AuditAggregateUpsert) {
		s.UpdateCategoryBreakdown()
	})
}

// ClearCategoryBreakdown clears the value of the "category_breakdown" field.
func (u *AuditAggregateUpsertOne) ClearCategoryBreakdown() *AuditAggregateUpsertOne {
	return u.Update(func(s *AuditAggregateUpsert) {
		s.ClearCategoryBreakdown()
	})
}

// SetCompetitorMentions sets the "competitor_mentions" field.
func (u *AuditAggregateUpsertOne) SetCompetitorMentions(v map[string]int) *AuditAggregateUpsertOne {
	return u.Update(func(s *AuditAggregateUpsert) {
		s.SetCompetitorMentions(v)
	})
}

// UpdateCompetitorMentions sets the "competitor_mentions" field to the value that was provided on create.
func (u *AuditAggregateUpsertOne) UpdateCompetitorMentions() *AuditAggregateUpsertOne {
	return u.Update(func(s *AuditAggregateUpsert) {
		s.UpdateCompetitorMentions()
	})
}

// ClearCompetitorMentions clears the value of the "competitor_mentions" field.
func (u *AuditAggregateUpsertOne) ClearCompetitorMentions() *AuditAggregateUpsertOne {
	return u.Update(func(s *AuditAggregateUpsert) {
		s.ClearCompetitorMentions()
	})
}

// SetTotalResponses sets the "total_responses" field.
func (u *AuditAggregateUpsertOne) SetTotalResponses(v int) *AuditAggregateUpsertOne {
	return u.Update(func(s *AuditAggregateUpsert) {
		s.SetTotalResponses(v)
	})
}

// AddTotalResponses adds v to the "total_responses" field.
func (u *AuditAggregateUpsertOne) AddTotalResponses(v int) *AuditAggregateUpsertOne {
	return u.Update(func(s *AuditAggregateUpsert) {
		s.AddTotalResponses(v)
	})
}

// UpdateTotalResponses sets the "total_responses" field to the value that was provided on create.
func (u *AuditAggregateUpsertOne) UpdateTotalResponses() *AuditAggregateUpsertOne {
	return u.Update(func(s *AuditAggregateUpsert) {
		s.UpdateTotalResponses()
	})
}

// SetAnalyzedResponses sets the "analyzed_responses" field.
func (u *AuditAggregateUpsertOne) SetAnalyzedResponses(v int) *AuditAggregateUpsertOne {
	return u.Update(func(s *AuditAggregateUpsert) {
		s.SetAnalyzedResponses(v)
	})
}

// AddAnalyzedResponses adds v to the "analyzed_responses" field.
func (u *AuditAggregateUpsertOne) AddAnalyzedResponses(v int) *AuditAggregateUpsertOne {
	return u.Update(func(s *AuditAggregateUpsert) {
		s.AddAnalyzedResponses(v)
	})
}

// UpdateAnalyzedResponses sets the "analyzed_responses" field to the value that was provided on create.
func (u *AuditAggregateUpsertOne) UpdateAnalyzedResponses() *AuditAggregateUpsertOne {
	return u.Update(func(s *AuditAggregateUpsert) {
		s.UpdateAnalyzedResponses()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *AuditAggregateUpsertOne) SetCreatedAt(v time.Time) *AuditAggregateUpsertOne {
	return u.Update(func(s *AuditAggregateUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *AuditAggregateUpsertOne) UpdateCreatedAt() *AuditAggregateUpsertOne {
	return u.Update(func(s *AuditAggregateUpsert) {
		s.UpdateCreatedAt()
	})
}

// Exec executes the query.
func (u *AuditAggregateUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AuditAggregateCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AuditAggregateUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AuditAggregateUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: AuditAggregateUpsertOne.ID is not supported by MySQL driver. Use AuditAggregateUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AuditAggregateUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AuditAggregateCreateBulk is the builder for creating many AuditAggregate entities in bulk.
type AuditAggregateCreateBulk struct {
	config
	err      error
	builders []*AuditAggregateCreate
	conflict []sql.ConflictOption
}

// Save creates the AuditAggregate entities in the database.
func (_c *AuditAggregateCreateBulk) Save(ctx context.Context) ([]*AuditAggregate, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AuditAggregate, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AuditAggregateMutation)
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
func (_c *AuditAggregateCreateBulk) SaveX(ctx context.Context) []*AuditAggregate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AuditAggregateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AuditAggregateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AuditAggregate.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AuditAggregateUpsert) {
//			SetAuditID(v+v).
//		}).
//		Exec(ctx)
func (_c *AuditAggregateCreateBulk) OnConflict(opts ...sql.ConflictOption) *AuditAggregateUpsertBulk {
	_c.conflict = opts
	return &AuditAggregateUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AuditAggregate.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AuditAggregateCreateBulk) OnConflictColumns(columns ...string) *AuditAggregateUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AuditAggregateUpsertBulk{
		create: _c,
	}
}

// AuditAggregateUpsertBulk is the builder for "upsert"-ing
// a bulk of AuditAggregate nodes.
type AuditAggregateUpsertBulk struct {
	create *AuditAggregateCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.AuditAggregate.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(auditaggregate.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AuditAggregateUpsertBulk) UpdateNewValues() *AuditAggregateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(auditaggregate.FieldID)
			}
			if _, exists := b.mutation.AuditID(); exists {
				s.SetIgnore(auditaggregate.FieldAuditID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AuditAggregate.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AuditAggregateUpsertBulk) Ignore() *AuditAggregateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AuditAggregateUpsertBulk) DoNothing() *AuditAggregateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AuditAggregateCreateBulk.OnConflict
// documentation for more info.
func (u *AuditAggregateUpsertBulk) Update(set func(*AuditAggregateUpsert)) *AuditAggregateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AuditAggregateUpsert{UpdateSet: update})
	}))
	return u
}

// SetOverallScore sets the "overall_score" field.
func (u *AuditAggregateUpsertBulk) SetOverallScore(v float64) *AuditAggregateUpsertBulk {
	return u.Update(func(s *AuditAggregateUpsert) {
		s.SetOverallScore(v)
	})
}

// AddOverallScore adds v to the "overall_score" field.
func (u *AuditAggregateUpsertBulk) AddOverallScore(v float64) *AuditAggregateUpsertBulk {
	return u.Update(func(s *AuditAggregateUpsert) {
		s.AddOverallScore(v)
	})
}

// UpdateOverallScore sets the "overall_score" field to the value that was provided on create.
func (u *AuditAggregateUpsertBulk) UpdateOverallScore() *AuditAggregateUpsertBulk {
	return u.Update(func(s *AuditAggregateUpsert) {
		s.UpdateOverallScore()
	})
}

// SetGeoScore sets the "geo_score" field.
func (u *AuditAggregateUpsertBulk) SetGeoScore(v float64) *AuditAggregateUpsertBulk {
	return u.Update(func(s *AuditAggregateUpsert) {
		s.SetGeoScore(v)
	})
}

// AddGeoScore adds v to the "geo_score" field.
func (u *AuditAggregateUpsertBulk) AddGeoScore(v float64) *AuditAggregateUpsertBulk {
	return u.Update(func(s *AuditAggregateUpsert) {
		s.AddGeoScore(v)
	})
}

// UpdateGeoScore sets the "geo_score" field to the value that was provided on create.
func (u *AuditAggregateUpsertBulk) UpdateGeoScore() *AuditAggregateUpsertBulk {
	return u.Update(func(s *AuditAggregateUpsert) {
		s.UpdateGeoScore()
	})
}

// SetSovScore sets the "sov_score" field.
func (u *AuditAggregateUpsertBulk) SetSovScore(v float64) *AuditAggregateUpsertBulk {
	return u.Update(func(s *AuditAggregateUpsert) {
		s.SetSovScore(v)
	})
}

// AddSovScore adds v to the "sov_score" field.
func (u *AuditAggregateUpsertBulk) AddSovScore(v float64) *AuditAggregateUpsertBulk {
	return u.Update(func(s *AuditAggregateUpsert) {
		s.AddSovScore(v)
	})
}

// UpdateSovScore sets the "sov_score" field to the value that was provided on create.
func (u *AuditAggregateUpsertBulk) UpdateSovScore() *AuditAggregateUpsertBulk {
	return u.Update(func(s *AuditAggregateUpsert) {
		s.UpdateSovScore()
	})
}

// SetRecommendationScore sets the "recommendation_score" field.
func (u *AuditAggregateUpsertBulk) SetRecommendationScore(v float64) *AuditAggregateUpsertBulk {
	return u.Update(func(s *AuditAggregateUpsert) {
		s.SetRecommendationScore(v)
	})
}

// AddRecommendationScore adds v to the "recommendation_score" field.
func (u *AuditAggregateUpsertBulk) AddRecommendationScore(v float64) *AuditAggregateUpsertBulk {
	return u.Update(func(s *AuditAggregateUpsert) {
		s.AddRecommendationScore(v)
	})
}

// UpdateRecommendationScore sets the "recommendation_score" field to the value that was provided on create.
func (u *AuditAggregateUpsertBulk) UpdateRecommendationScore() *AuditAggregateUpsertBulk {
	return u.Update(func(s *AuditAggregateUpsert) {
		s.UpdateRecommendationScore()
	})
}

// SetSentimentScore sets the "sentiment_score" field.
func (u *AuditAggregateUpsertBulk) SetSentimentScore(v float64) *AuditAggregateUpsertBulk {
	return u.Update(func(s *AuditAggregateUpsert) {
		s.SetSentimentScore(v)
	})
}

// AddSentimentScore adds v to the "sentiment_score" field.
func (u *AuditAggregateUpsertBulk) AddSentimentScore(v float64) *AuditAggregateUpsertBulk {
	return u.Update(func(s *AuditAggregateUpsert) {
		s.AddSentimentScore(v)
	})
}

// UpdateSentimentScore sets the "sentiment_score" field to the value that was provided on create.
func (u *AuditAggregateUpsertBulk) UpdateSentimentScore() *AuditAggregateUpsertBulk {
	return u.Update(func(s *AuditAggregateUpsert) {
		s.UpdateSentimentScore()
	})
}

// SetVisibilityScore sets the "visibility_score" field.
func (u *AuditAggregateUpsertBulk) SetVisibilityScore(v float64) *AuditAggregateUpsertBulk {
	return u.Update(func(s *AuditAggregateUpsert) {
		s.SetVisibilityScore(v)
	})
}

// AddVisibilityScore adds v to the "visibility_score" field.
func (u *AuditAggregateUpsertBulk) AddVisibilityScore(v float64) *AuditAggregateUpsertBulk {
	return u.Update(func(s *AuditAggregateUpsert) {
		s.AddVisibilityScore(v)
	})
}

// UpdateVisibilityScore sets the "visibility_score" field to the value that was provided on create.
func (u *AuditAggregateUpsertBulk) UpdateVisibilityScore() *AuditAggregateUpsertBulk {
	return u.Update(func(s *AuditAggregateUpsert) {
		s.UpdateVisibilityScore()
	})
}

// SetContextCompleteness sets the "context_completeness" field.
func (u *AuditAggregateUpsertBulk) SetContextCompleteness(v float64) *AuditAggregateUpsertBulk {
	return u.Update(func(s *AuditAggregateUpsert) {
		s.SetContextCompleteness(v)
	})
}

// AddContextCompleteness adds v to the "context_completeness" field.
func (u *AuditAggregateUpsertBulk) AddContextCompleteness(v float64) *AuditAggregateUpsertBulk {
	return u.Update(func(s *AuditAggregateUpsert) {
		s.AddContextCompleteness(v)
	})
}

// UpdateContextCompleteness sets the "context_completeness" field to the value that was provided on create.
func (u *AuditAggregateUpsertBulk) UpdateContextCompleteness() *AuditAggregateUpsertBulk {
	return u.Update(func(s *AuditAggregateUpsert) {
		s.UpdateContextCompleteness()
	})
}

// SetProviderBreakdown sets the "provider_breakdown" field.
func (u *AuditAggregateUpsertBulk) SetProviderBreakdown(v map[string]schema.ScoreBreakdown) *AuditAggregateUpsertBulk {
	return u.Update(func(s *AuditAggregateUpsert) {
		s.SetProviderBreakdown(v)
	})
}

// UpdateProviderBreakdown sets the "provider_breakdown" field to the value that was provided on create.
func (u *AuditAggregateUpsertBulk) UpdateProviderBreakdown() *AuditAggregateUpsertBulk {
	return u.Update(func(s *AuditAggregateUpsert) {
		s.UpdateProviderBreakdown()
	})
}

// ClearProviderBreakdown clears the value of the "provider_breakdown" field.
func (u *AuditAggregateUpsertBulk) ClearProviderBreakdown() *AuditAggregateUpsertBulk {
	return u.Update(func(s *AuditAggregateUpsert) {
		s.ClearProviderBreakdown()
	})
}

// SetCategoryBreakdown sets the "category_breakdown" field.
func (u *AuditAggregateUpsertBulk) SetCategoryBreakdown(v map[string]schema.ScoreBreakdown) *AuditAggregateUpsertBulk {
	return u.Update(func(s *AuditAggregateUpsert) {
		s.SetCategoryBreakdown(v)
	})
}

// UpdateCategoryBreakdown sets the "category_breakdown" field to the value that was provided on create.
func (u *AuditAggregateUpsertBulk) UpdateCategoryBreakdown() *AuditAggregateUpsertBulk {
	return u.Update(func(s *AuditAggregateUpsert) {
		s.UpdateCategoryBreakdown()
	})
}

// ClearCategoryBreakdown clears the value of the "category_breakdown" field.
func (u *AuditAggregateUpsertBulk) ClearCategoryBreakdown() *AuditAggregateUpsertBulk {
	return u.Update(func(s *AuditAggregateUpsert) {
		s.ClearCategoryBreakdown()
	})
}

// SetCompetitorMentions sets the "competitor_mentions" field.
func (u *AuditAggregateUpsertBulk) SetCompetitorMentions(v map[string]int) *AuditAggregateUpsertBulk {
	return u.Update(func(s *AuditAggregateUpsert) {
		s.SetCompetitorMentions(v)
	})
}

// UpdateCompetitorMentions sets the "competitor_mentions" field to the value that was provided on create.
func (u *AuditAggregateUpsertBulk) UpdateCompetitorMentions() *AuditAggregateUpsertBulk {
	return u.Update(func(s *AuditAggregateUpsert) {
		s.UpdateCompetitorMentions()
	})
}

// ClearCompetitorMentions clears the value of the "competitor_mentions" field.
func (u *AuditAggregateUpsertBulk) ClearCompetitorMentions() *AuditAggregateUpsertBulk {
	return u.Update(func(s *AuditAggregateUpsert) {
		s.ClearCompetitorMentions()
	})
}

// SetTotalResponses sets the "total_responses" field.
func (u *AuditAggregateUpsertBulk) SetTotalResponses(v int) *AuditAggregateUpsertBulk {
	return u.Update(func(s *AuditAggregateUpsert) {
		s.SetTotalResponses(v)
	})
}

// AddTotalResponses adds v to the "total_responses" field.
func (u *AuditAggregateUpsertBulk) AddTotalResponses(v int) *AuditAggregateUpsertBulk {
	return u.Update(func(s *AuditAggregateUpsert) {
		s.AddTotalResponses(v)
	})
}

// UpdateTotalResponses sets the "total_responses" field to the value that was provided on create.
func (u *AuditAggregateUpsertBulk) UpdateTotalResponses() *AuditAggregateUpsertBulk {
	return u.Update(func(s *AuditAggregateUpsert) {
		s.UpdateTotalResponses()
	})
}

// SetAnalyzedResponses sets the "analyzed_responses" field.
func (u *AuditAggregateUpsertBulk) SetAnalyzedResponses(v int) *AuditAggregateUpsertBulk {
	return u.Update(func(s *AuditAggregateUpsert) {
		s.SetAnalyzedResponses(v)
	})
}

// AddAnalyzedResponses adds v to the "analyzed_responses" field.
func (u *AuditAggregateUpsertBulk) AddAnalyzedResponses(v int) *AuditAggregateUpsertBulk {
	return u.Update(func(s *AuditAggregateUpsert) {
		s.AddAnalyzedResponses(v)
	})
}

// UpdateAnalyzedResponses sets the "analyzed_responses" field to the value that was provided on create.
func (u *AuditAggregateUpsertBulk) UpdateAnalyzedResponses() *AuditAggregateUpsertBulk {
	return u.Update(func(s *AuditAggregateUpsert) {
		s.UpdateAnalyzedResponses()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *AuditAggregateUpsertBulk) SetCreatedAt(v time.Time) *AuditAggregateUpsertBulk {
	return u.Update(func(s *AuditAggregateUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *AuditAggregateUpsertBulk) UpdateCreatedAt() *AuditAggregateUpsertBulk {
	return u.Update(func(s *AuditAggregateUpsert) {
		s.UpdateCreatedAt()
	})
}

// Exec executes the query.
func (u *AuditAggregateUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AuditAggregateCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AuditAggregateCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AuditAggregateUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
