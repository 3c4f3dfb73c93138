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
	"github.com/specularhq/specular/ent/auditaggregate"
	"github.com/specularhq/specular/ent/predicate"
	"github.com/specularhq/specular/ent/schema"
)

// AuditAggregateUpdate is the builder for updating AuditAggregate entities.
type AuditAggregateUpdate struct {
	config
	hooks    []Hook
	mutation *AuditAggregateMutation
}

// Where appends a list predicates to the AuditAggregateUpdate builder.
func (_u *AuditAggregateUpdate) Where(ps ...predicate.AuditAggregate) *AuditAggregateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOverallScore sets the "overall_score" field.
func (_u *AuditAggregateUpdate) SetOverallScore(v float64) *AuditAggregateUpdate {
	_u.mutation.ResetOverallScore()
	_u.mutation.SetOverallScore(v)
	return _u
}

// SetNillableOverallScore sets the "overall_score" field if the given value is not nil.
func (_u *AuditAggregateUpdate) SetNillableOverallScore(v *float64) *AuditAggregateUpdate {
	if v != nil {
		_u.SetOverallScore(*v)
	}
	return _u
}

// AddOverallScore adds value to the "overall_score" field.
func (_u *AuditAggregateUpdate) AddOverallScore(v float64) *AuditAggregateUpdate {
	_u.mutation.AddOverallScore(v)
	return _u
}

// SetGeoScore sets the "geo_score" field.
func (_u *AuditAggregateUpdate) SetGeoScore(v float64) *AuditAggregateUpdate {
	_u.mutation.ResetGeoScore()
	_u.mutation.SetGeoScore(v)
	return _u
}

// SetNillableGeoScore sets the "geo_score" field if the given value is not nil.
func (_u *AuditAggregateUpdate) SetNillableGeoScore(v *float64) *AuditAggregateUpdate {
	if v != nil {
		_u.SetGeoScore(*v)
	}
	return _u
}

// AddGeoScore adds value to the "geo_score" field.
func (_u *AuditAggregateUpdate) AddGeoScore(v float64) *AuditAggregateUpdate {
	_u.mutation.AddGeoScore(v)
	return _u
}

// SetSovScore sets the "sov_score" field.
func (_u *AuditAggregateUpdate) SetSovScore(v float64) *AuditAggregateUpdate {
	_u.mutation.ResetSovScore()
	_u.mutation.SetSovScore(v)
	return _u
}

// SetNillableSovScore sets the "sov_score" field if the given value is not nil.
func (_u *AuditAggregateUpdate) SetNillableSovScore(v *float64) *AuditAggregateUpdate {
	if v != nil {
		_u.SetSovScore(*v)
	}
	return _u
}

// AddSovScore adds value to the "sov_score" field.
func (_u *AuditAggregateUpdate) AddSovScore(v float64) *AuditAggregateUpdate {
	_u.mutation.AddSovScore(v)
	return _u
}

// SetRecommendationScore sets the "recommendation_score" field.
func (_u *AuditAggregateUpdate) SetRecommendationScore(v float64) *AuditAggregateUpdate {
	_u.mutation.ResetRecommendationScore()
	_u.mutation.SetRecommendationScore(v)
	return _u
}

// SetNillableRecommendationScore sets the "recommendation_score" field if the given value is not nil.
func (_u *AuditAggregateUpdate) SetNillableRecommendationScore(v *float64) *AuditAggregateUpdate {
	if v != nil {
		_u.SetRecommendationScore(*v)
	}
	return _u
}

// AddRecommendationScore adds value to the "recommendation_score" field.
func (_u *AuditAggregateUpdate) AddRecommendationScore(v float64) *AuditAggregateUpdate {
	_u.mutation.AddRecommendationScore(v)
	return _u
}

// SetSentimentScore sets the "sentiment_score" field.
func (_u *AuditAggregateUpdate) SetSentimentScore(v float64) *AuditAggregateUpdate {
	_u.mutation.ResetSentimentScore()
	_u.mutation.SetSentimentScore(v)
	return _u
}

// SetNillableSentimentScore sets the "sentiment_score" field if the given value is not nil.
func (_u *AuditAggregateUpdate) SetNillableSentimentScore(v *float64) *AuditAggregateUpdate {
	if v != nil {
		_u.SetSentimentScore(*v)
	}
	return _u
}

// AddSentimentScore adds value to the "sentiment_score" field.
func (_u *AuditAggregateUpdate) AddSentimentScore(v float64) *AuditAggregateUpdate {
	_u.mutation.AddSentimentScore(v)
	return _u
}

// SetVisibilityScore sets the "visibility_score" field.
func (_u *AuditAggregateUpdate) SetVisibilityScore(v float64) *AuditAggregateUpdate {
	_u.mutation.ResetVisibilityScore()
	_u.mutation.SetVisibilityScore(v)
	return _u
}

// SetNillableVisibilityScore sets the "visibility_score" field if the given value is not nil.
func (_u *AuditAggregateUpdate) SetNillableVisibilityScore(v *float64) *AuditAggregateUpdate {
	if v != nil {
		_u.SetVisibilityScore(*v)
	}
	return _u
}

// AddVisibilityScore adds value to the "visibility_score" field.
func (_u *AuditAggregateUpdate) AddVisibilityScore(v float64) *AuditAggregateUpdate {
	_u.mutation.AddVisibilityScore(v)
	return _u
}

// SetContextCompleteness sets the "context_completeness" field.
func (_u *AuditAggregateUpdate) SetContextCompleteness(v float64) *AuditAggregateUpdate {
	_u.mutation.ResetContextCompleteness()
	_u.mutation.SetContextCompleteness(v)
	return _u
}

// SetNillableContextCompleteness sets the "context_completeness" field if the given value is not nil.
func (_u *AuditAggregateUpdate) SetNillableContextCompleteness(v *float64) *AuditAggregateUpdate {
	if v != nil {
		_u.SetContextCompleteness(*v)
	}
	return _u
}

// AddContextCompleteness adds value to the "context_completeness" field.
func (_u *AuditAggregateUpdate) AddContextCompleteness(v float64) *AuditAggregateUpdate {
	_u.mutation.AddContextCompleteness(v)
	return _u
}

// SetProviderBreakdown sets the "provider_breakdown" field.
func (_u *AuditAggregateUpdate) SetProviderBreakdown(v map[string]schema.ScoreBreakdown) *AuditAggregateUpdate {
	_u.mutation.SetProviderBreakdown(v)
	return _u
}

// ClearProviderBreakdown clears the value of the "provider_breakdown" field.
func (_u *AuditAggregateUpdate) ClearProviderBreakdown() *AuditAggregateUpdate {
	_u.mutation.ClearProviderBreakdown()
	return _u
}

// SetCategoryBreakdown sets the "category_breakdown" field.
func (_u *AuditAggregateUpdate) SetCategoryBreakdown(v map[string]schema.ScoreBreakdown) *AuditAggregateUpdate {
	_u.mutation.SetCategoryBreakdown(v)
	return _u
}

// ClearCategoryBreakdown clears the value of the "category_breakdown" field.
func (_u *AuditAggregateUpdate) ClearCategoryBreakdown() *AuditAggregateUpdate {
	_u.mutation.ClearCategoryBreakdown()
	return _u
}

// SetCompetitorMentions sets the "competitor_mentions" field.
func (_u *AuditAggregateUpdate) SetCompetitorMentions(v map[string]int) *AuditAggregateUpdate {
	_u.mutation.SetCompetitorMentions(v)
	return _u
}

// ClearCompetitorMentions clears the value of the "competitor_mentions" field.
func (_u *AuditAggregateUpdate) ClearCompetitorMentions() *AuditAggregateUpdate {
	_u.mutation.ClearCompetitorMentions()
	return _u
}

// SetTotalResponses sets the "total_responses" field.
func (_u *AuditAggregateUpdate) SetTotalResponses(v int) *AuditAggregateUpdate {
	_u.mutation.ResetTotalResponses()
	_u.mutation.SetTotalResponses(v)
	return _u
}

// SetNillableTotalResponses sets the "total_responses" field if the given value is not nil.
func (_u *AuditAggregateUpdate) SetNillableTotalResponses(v *int) *AuditAggregateUpdate {
	if v != nil {
		_u.SetTotalResponses(*v)
	}
	return _u
}

// AddTotalResponses adds value to the "total_responses" field.
func (_u *AuditAggregateUpdate) AddTotalResponses(v int) *AuditAggregateUpdate {
	_u.mutation.AddTotalResponses(v)
	return _u
}

// SetAnalyzedResponses sets the "analyzed_responses" field.
func (_u *AuditAggregateUpdate) SetAnalyzedResponses(v int) *AuditAggregateUpdate {
	_u.mutation.ResetAnalyzedResponses()
	_u.mutation.SetAnalyzedResponses(v)
	return _u
}

// SetNillableAnalyzedResponses sets the "analyzed_responses" field if the given value is not nil.
func (_u *AuditAggregateUpdate) SetNillableAnalyzedResponses(v *int) *AuditAggregateUpdate {
	if v != nil {
		_u.SetAnalyzedResponses(*v)
	}
	return _u
}

// AddAnalyzedResponses adds value to the "analyzed_responses" field.
func (_u *AuditAggregateUpdate) AddAnalyzedResponses(v int) *AuditAggregateUpdate {
	_u.mutation.AddAnalyzedResponses(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *AuditAggregateUpdate) SetCreatedAt(v time.Time) *AuditAggregateUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *AuditAggregateUpdate) SetNillableCreatedAt(v *time.Time) *AuditAggregateUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the AuditAggregateMutation object of the builder.
func (_u *AuditAggregateUpdate) Mutation() *AuditAggregateMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AuditAggregateUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AuditAggregateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AuditAggregateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AuditAggregateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AuditAggregateUpdate) check() error {
	if _u.mutation.AuditCleared() && len(_u.mutation.AuditIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AuditAggregate.audit"`)
	}
	return nil
}

func (_u *AuditAggregateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(auditaggregate.Table, auditaggregate.Columns, sqlgraph.NewFieldSpec(auditaggregate.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OverallScore(); ok {
		_spec.SetField(auditaggregate.FieldOverallScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOverallScore(); ok {
		_spec.AddField(auditaggregate.FieldOverallScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.GeoScore(); ok {
		_spec.SetField(auditaggregate.FieldGeoScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedGeoScore(); ok {
		_spec.AddField(auditaggregate.FieldGeoScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SovScore(); ok {
		_spec.SetField(auditaggregate.FieldSovScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSovScore(); ok {
		_spec.AddField(auditaggregate.FieldSovScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RecommendationScore(); ok {
		_spec.SetField(auditaggregate.FieldRecommendationScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRecommendationScore(); ok {
		_spec.AddField(auditaggregate.FieldRecommendationScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SentimentScore(); ok {
		_spec.SetField(auditaggregate.FieldSentimentScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSentimentScore(); ok {
		_spec.AddField(auditaggregate.FieldSentimentScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.VisibilityScore(); ok {
		_spec.SetField(auditaggregate.FieldVisibilityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedVisibilityScore(); ok {
		_spec.AddField(auditaggregate.FieldVisibilityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ContextCompleteness(); ok {
		_spec.SetField(auditaggregate.FieldContextCompleteness, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedContextCompleteness(); ok {
		_spec.AddField(auditaggregate.FieldContextCompleteness, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ProviderBreakdown(); ok {
		_spec.SetField(auditaggregate.FieldProviderBreakdown, field.TypeJSON, value)
	}
	if _u.mutation.ProviderBreakdownCleared() {
		_spec.ClearField(auditaggregate.FieldProviderBreakdown, field.TypeJSON)
	}
	if value, ok := _u.mutation.CategoryBreakdown(); ok {
		_spec.SetField(auditaggregate.FieldCategoryBreakdown, field.TypeJSON, value)
	}
	if _u.mutation.CategoryBreakdownCleared() {
		_spec.ClearField(auditaggregate.FieldCategoryBreakdown, field.TypeJSON)
	}
	if value, ok := _u.mutation.CompetitorMentions(); ok {
		_spec.SetField(auditaggregate.FieldCompetitorMentions, field.TypeJSON, value)
	}
	if _u.mutation.CompetitorMentionsCleared() {
		_spec.ClearField(auditaggregate.FieldCompetitorMentions, field.TypeJSON)
	}
	if value, ok := _u.mutation.TotalResponses(); ok {
		_spec.SetField(auditaggregate.FieldTotalResponses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalResponses(); ok {
		_spec.AddField(auditaggregate.FieldTotalResponses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AnalyzedResponses(); ok {
		_spec.SetField(auditaggregate.FieldAnalyzedResponses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAnalyzedResponses(); ok {
		_spec.AddField(auditaggregate.FieldAnalyzedResponses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(auditaggregate.FieldCreatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{auditaggregate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AuditAggregateUpdateOne is the builder for updating a single AuditAggregate entity.
type AuditAggregateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AuditAggregateMutation
}

// SetOverallScore sets the "overall_score" field.
func (_u *AuditAggregateUpdateOne) SetOverallScore(v float64) *AuditAggregateUpdateOne {
	_u.mutation.ResetOverallScore()
	_u.mutation.SetOverallScore(v)
	return _u
}

// SetNillableOverallScore sets the "overall_score" field if the given value is not nil.
func (_u *AuditAggregateUpdateOne) SetNillableOverallScore(v *float64) *AuditAggregateUpdateOne {
	if v != nil {
		_u.SetOverallScore(*v)
	}
	return _u
}

// AddOverallScore adds value to the "overall_score" field.
func (_u *AuditAggregateUpdateOne) AddOverallScore(v float64) *AuditAggregateUpdateOne {
	_u.mutation.AddOverallScore(v)
	return _u
}

// SetGeoScore sets the "geo_score" field.
func (_u *AuditAggregateUpdateOne) SetGeoScore(v float64) *AuditAggregateUpdateOne {
	_u.mutation.ResetGeoScore()
	_u.mutation.SetGeoScore(v)
	return _u
}

// SetNillableGeoScore sets the "geo_score" field if the given value is not nil.
func (_u *AuditAggregateUpdateOne) SetNillableGeoScore(v *float64) *AuditAggregateUpdateOne {
	if v != nil {
		_u.SetGeoScore(*v)
	}
	return _u
}

// AddGeoScore adds value to the "geo_score" field.
func (_u *AuditAggregateUpdateOne) AddGeoScore(v float64) *AuditAggregateUpdateOne {
	_u.mutation.AddGeoScore(v)
	return _u
}

// SetSovScore sets the "sov_score" field.
func (_u *AuditAggregateUpdateOne) SetSovScore(v float64) *AuditAggregateUpdateOne {
	_u.mutation.ResetSovScore()
	_u.mutation.SetSovScore(v)
	return _u
}

// SetNillableSovScore sets the "sov_score" field if the given value is not nil.
func (_u *AuditAggregateUpdateOne) SetNillableSovScore(v *float64) *AuditAggregateUpdateOne {
	if v != nil {
		_u.SetSovScore(*v)
	}
	return _u
}

// AddSovScore adds value to the "sov_score" field.
func (_u *AuditAggregateUpdateOne) AddSovScore(v float64) *AuditAggregateUpdateOne {
	_u.mutation.AddSovScore(v)
	return _u
}

// SetRecommendationScore sets the "recommendation_score" field.
func (_u *AuditAggregateUpdateOne) SetRecommendationScore(v float64) *AuditAggregateUpdateOne {
	_u.mutation.ResetRecommendationScore()
	_u.mutation.SetRecommendationScore(v)
	return _u
}

// SetNillableRecommendationScore sets the "recommendation_score" field if the given value is not nil.
func (_u *AuditAggregateUpdateOne) SetNillableRecommendationScore(v *float64) *AuditAggregateUpdateOne {
	if v != nil {
		_u.SetRecommendationScore(*v)
	}
	return _u
}

// AddRecommendationScore adds value to the "recommendation_score" field.
func (_u *AuditAggregateUpdateOne) AddRecommendationScore(v float64) *AuditAggregateUpdateOne {
	_u.mutation.AddRecommendationScore(v)
	return _u
}

// SetSentimentScore sets the "sentiment_score" field.
func (_u *AuditAggregateUpdateOne) SetSentimentScore(v float64) *AuditAggregateUpdateOne {
	_u.mutation.ResetSentimentScore()
	_u.mutation.SetSentimentScore(v)
	return _u
}

// SetNillableSentimentScore sets the "sentiment_score" field if the given value is not nil.
func (_u *AuditAggregateUpdateOne) SetNillableSentimentScore(v *float64) *AuditAggregateUpdateOne {
	if v != nil {
		_u.SetSentimentScore(*v)
	}
	return _u
}

// AddSentimentScore adds value to the "sentiment_score" field.
func (_u *AuditAggregateUpdateOne) AddSentimentScore(v float64) *AuditAggregateUpdateOne {
	_u.mutation.AddSentimentScore(v)
	return _u
}

// SetVisibilityScore sets the "visibility_score" field.
func (_u *AuditAggregateUpdateOne) SetVisibilityScore(v float64) *AuditAggregateUpdateOne {
	_u.mutation.ResetVisibilityScore()
	_u.mutation.SetVisibilityScore(v)
	return _u
}

// SetNillableVisibilityScore sets the "visibility_score" field if the given value is not nil.
func (_u *AuditAggregateUpdateOne) SetNillableVisibilityScore(v *float64) *AuditAggregateUpdateOne {
	if v != nil {
		_u.SetVisibilityScore(*v)
	}
	return _u
}

// AddVisibilityScore adds value to the "visibility_score" field.
func (_u *AuditAggregateUpdateOne) AddVisibilityScore(v float64) *AuditAggregateUpdateOne {
	_u.mutation.AddVisibilityScore(v)
	return _u
}

// SetContextCompleteness sets the "context_completeness" field.
func (_u *AuditAggregateUpdateOne) SetContextCompleteness(v float64) *AuditAggregateUpdateOne {
	_u.mutation.ResetContextCompleteness()
	_u.mutation.SetContextCompleteness(v)
	return _u
}

// SetNillableContextCompleteness sets the "context_completeness" field if the given value is not nil.
func (_u *AuditAggregateUpdateOne) SetNillableContextCompleteness(v *float64) *AuditAggregateUpdateOne {
	if v != nil {
		_u.SetContextCompleteness(*v)
	}
	return _u
}

// AddContextCompleteness adds value to the "context_completeness" field.
func (_u *AuditAggregateUpdateOne) AddContextCompleteness(v float64) *AuditAggregateUpdateOne {
	_u.mutation.AddContextCompleteness(v)
	return _u
}

// SetProviderBreakdown sets the "provider_breakdown" field.
func (_u *AuditAggregateUpdateOne) SetProviderBreakdown(v map[string]schema.ScoreBreakdown) *AuditAggregateUpdateOne {
	_u.mutation.SetProviderBreakdown(v)
	return _u
}

// ClearProviderBreakdown clears the value of the "provider_breakdown" field.
func (_u *AuditAggregateUpdateOne) ClearProviderBreakdown() *AuditAggregateUpdateOne {
	_u.mutation.ClearProviderBreakdown()
	return _u
}

// SetCategoryBreakdown sets the "category_breakdown" field.
func (_u *AuditAggregateUpdateOne) SetCategoryBreakdown(v map[string]schema.ScoreBreakdown) *AuditAggregateUpdateOne {
	_u.mutation.SetCategoryBreakdown(v)
	return _u
}

// ClearCategoryBreakdown clears the value of the "category_breakdown" field.
func (_u *AuditAggregateUpdateOne) ClearCategoryBreakdown() *AuditAggregateUpdateOne {
	_u.mutation.ClearCategoryBreakdown()
	return _u
}

// SetCompetitorMentions sets the "competitor_mentions" field.
func (_u *AuditAggregateUpdateOne) SetCompetitorMentions(v map[string]int) *AuditAggregateUpdateOne {
	_u.mutation.SetCompetitorMentions(v)
	return _u
}

// ClearCompetitorMentions clears the value of the "competitor_mentions" field.
func (_u *AuditAggregateUpdateOne) ClearCompetitorMentions() *AuditAggregateUpdateOne {
	_u.mutation.ClearCompetitorMentions()
	return _u
}

// SetTotalResponses sets the "total_responses" field.
func (_u *AuditAggregateUpdateOne) SetTotalResponses(v int) *AuditAggregateUpdateOne {
	_u.mutation.ResetTotalResponses()
	_u.mutation.SetTotalResponses(v)
	return _u
}

// SetNillableTotalResponses sets the "total_responses" field if the given value is not nil.
func (_u *AuditAggregateUpdateOne) SetNillableTotalResponses(v *int) *AuditAggregateUpdateOne {
	if v != nil {
		_u.SetTotalResponses(*v)
	}
	return _u
}

// AddTotalResponses adds value to the "total_responses" field.
func (_u *AuditAggregateUpdateOne) AddTotalResponses(v int) *AuditAggregateUpdateOne {
	_u.mutation.AddTotalResponses(v)
	return _u
}

// SetAnalyzedResponses sets the "analyzed_responses" field.
func (_u *AuditAggregateUpdateOne) SetAnalyzedResponses(v int) *AuditAggregateUpdateOne {
	_u.mutation.ResetAnalyzedResponses()
	_u.mutation.SetAnalyzedResponses(v)
	return _u
}

// SetNillableAnalyzedResponses sets the "analyzed_responses" field if the given value is not nil.
func (_u *AuditAggregateUpdateOne) SetNillableAnalyzedResponses(v *int) *AuditAggregateUpdateOne {
	if v != nil {
		_u.SetAnalyzedResponses(*v)
	}
	return _u
}

// AddAnalyzedResponses adds value to the "analyzed_responses" field.
func (_u *AuditAggregateUpdateOne) AddAnalyzedResponses(v int) *AuditAggregateUpdateOne {
	_u.mutation.AddAnalyzedResponses(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *AuditAggregateUpdateOne) SetCreatedAt(v time.Time) *AuditAggregateUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *AuditAggregateUpdateOne) SetNillableCreatedAt(v *time.Time) *AuditAggregateUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the AuditAggregateMutation object of the builder.
func (_u *AuditAggregateUpdateOne) Mutation() *AuditAggregateMutation {
	return _u.mutation
}

// Where appends a list predicates to the AuditAggregateUpdate builder.
func (_u *AuditAggregateUpdateOne) Where(ps ...predicate.AuditAggregate) *AuditAggregateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AuditAggregateUpdateOne) Select(field string, fields ...string) *AuditAggregateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AuditAggregate entity.
func (_u *AuditAggregateUpdateOne) Save(ctx context.Context) (*AuditAggregate, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AuditAggregateUpdateOne) SaveX(ctx context.Context) *AuditAggregate {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AuditAggregateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AuditAggregateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AuditAggregateUpdateOne) check() error {
	if _u.mutation.AuditCleared() && len(_u.mutation.AuditIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AuditAggregate.audit"`)
	}
	return nil
}

func (_u *AuditAggregateUpdateOne) sqlSave(ctx context.Context) (_node *AuditAggregate, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(auditaggregate.Table, auditaggregate.Columns, sqlgraph.NewFieldSpec(auditaggregate.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AuditAggregate.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, auditaggregate.FieldID)
		for _, f := range fields {
			if !auditaggregate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != auditaggregate.FieldID {
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
	if value, ok := _u.mutation.OverallScore(); ok {
		_spec.SetField(auditaggregate.FieldOverallScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOverallScore(); ok {
		_spec.AddField(auditaggregate.FieldOverallScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.GeoScore(); ok {
		_spec.SetField(auditaggregate.FieldGeoScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedGeoScore(); ok {
		_spec.AddField(auditaggregate.FieldGeoScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SovScore(); ok {
		_spec.SetField(auditaggregate.FieldSovScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSovScore(); ok {
		_spec.AddField(auditaggregate.FieldSovScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RecommendationScore(); ok {
		_spec.SetField(auditaggregate.FieldRecommendationScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRecommendationScore(); ok {
		_spec.AddField(auditaggregate.FieldRecommendationScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SentimentScore(); ok {
		_spec.SetField(auditaggregate.FieldSentimentScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSentimentScore(); ok {
		_spec.AddField(auditaggregate.FieldSentimentScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.VisibilityScore(); ok {
		_spec.SetField(auditaggregate.FieldVisibilityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedVisibilityScore(); ok {
		_spec.AddField(auditaggregate.FieldVisibilityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ContextCompleteness(); ok {
		_spec.SetField(auditaggregate.FieldContextCompleteness, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedContextCompleteness(); ok {
		_spec.AddField(auditaggregate.FieldContextCompleteness, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ProviderBreakdown(); ok {
		_spec.SetField(auditaggregate.FieldProviderBreakdown, field.TypeJSON, value)
	}
	if _u.mutation.ProviderBreakdownCleared() {
		_spec.ClearField(auditaggregate.FieldProviderBreakdown, field.TypeJSON)
	}
	if value, ok := _u.mutation.CategoryBreakdown(); ok {
		_spec.SetField(auditaggregate.FieldCategoryBreakdown, field.TypeJSON, value)
	}
	if _u.mutation.CategoryBreakdownCleared() {
		_spec.ClearField(auditaggregate.FieldCategoryBreakdown, field.TypeJSON)
	}
	if value, ok := _u.mutation.CompetitorMentions(); ok {
		_spec.SetField(auditaggregate.FieldCompetitorMentions, field.TypeJSON, value)
	}
	if _u.mutation.CompetitorMentionsCleared() {
		_spec.ClearField(auditaggregate.FieldCompetitorMentions, field.TypeJSON)
	}
	if value, ok := _u.mutation.TotalResponses(); ok {
		_spec.SetField(auditaggregate.FieldTotalResponses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalResponses(); ok {
		_spec.AddField(auditaggregate.FieldTotalResponses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AnalyzedResponses(); ok {
		_spec.SetField(auditaggregate.FieldAnalyzedResponses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAnalyzedResponses(); ok {
		_spec.AddField(auditaggregate.FieldAnalyzedResponses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(auditaggregate.FieldCreatedAt, field.TypeTime, value)
	}
	_node = &AuditAggregate{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{auditaggregate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
