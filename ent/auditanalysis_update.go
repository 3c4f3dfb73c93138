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
	"github.com/specularhq/specular/ent/auditanalysis"
	"github.com/specularhq/specular/ent/predicate"
	"github.com/specularhq/specular/ent/schema"
)

// AuditAnalysisUpdate is the builder for updating AuditAnalysis entities.
type AuditAnalysisUpdate struct {
	config
	hooks    []Hook
	mutation *AuditAnalysisMutation
}

// Where appends a list predicates to the AuditAnalysisUpdate builder.
func (_u *AuditAnalysisUpdate) Where(ps ...predicate.AuditAnalysis) *AuditAnalysisUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProvider sets the "provider" field.
func (_u *AuditAnalysisUpdate) SetProvider(v string) *AuditAnalysisUpdate {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *AuditAnalysisUpdate) SetNillableProvider(v *string) *AuditAnalysisUpdate {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *AuditAnalysisUpdate) SetCategory(v auditanalysis.Category) *AuditAnalysisUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *AuditAnalysisUpdate) SetNillableCategory(v *auditanalysis.Category) *AuditAnalysisUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetBrandMentioned sets the "brand_mentioned" field.
func (_u *AuditAnalysisUpdate) SetBrandMentioned(v bool) *AuditAnalysisUpdate {
	_u.mutation.SetBrandMentioned(v)
	return _u
}

// SetNillableBrandMentioned sets the "brand_mentioned" field if the given value is not nil.
func (_u *AuditAnalysisUpdate) SetNillableBrandMentioned(v *bool) *AuditAnalysisUpdate {
	if v != nil {
		_u.SetBrandMentioned(*v)
	}
	return _u
}

// SetFirstPosition sets the "first_position" field.
func (_u *AuditAnalysisUpdate) SetFirstPosition(v int) *AuditAnalysisUpdate {
	_u.mutation.ResetFirstPosition()
	_u.mutation.SetFirstPosition(v)
	return _u
}

// SetNillableFirstPosition sets the "first_position" field if the given value is not nil.
func (_u *AuditAnalysisUpdate) SetNillableFirstPosition(v *int) *AuditAnalysisUpdate {
	if v != nil {
		_u.SetFirstPosition(*v)
	}
	return _u
}

// AddFirstPosition adds value to the "first_position" field.
func (_u *AuditAnalysisUpdate) AddFirstPosition(v int) *AuditAnalysisUpdate {
	_u.mutation.AddFirstPosition(v)
	return _u
}

// ClearFirstPosition clears the value of the "first_position" field.
func (_u *AuditAnalysisUpdate) ClearFirstPosition() *AuditAnalysisUpdate {
	_u.mutation.ClearFirstPosition()
	return _u
}

// SetSentiment sets the "sentiment" field.
func (_u *AuditAnalysisUpdate) SetSentiment(v auditanalysis.Sentiment) *AuditAnalysisUpdate {
	_u.mutation.SetSentiment(v)
	return _u
}

// SetNillableSentiment sets the "sentiment" field if the given value is not nil.
func (_u *AuditAnalysisUpdate) SetNillableSentiment(v *auditanalysis.Sentiment) *AuditAnalysisUpdate {
	if v != nil {
		_u.SetSentiment(*v)
	}
	return _u
}

// ClearSentiment clears the value of the "sentiment" field.
func (_u *AuditAnalysisUpdate) ClearSentiment() *AuditAnalysisUpdate {
	_u.mutation.ClearSentiment()
	return _u
}

// SetSentimentScore sets the "sentiment_score" field.
func (_u *AuditAnalysisUpdate) SetSentimentScore(v float64) *AuditAnalysisUpdate {
	_u.mutation.ResetSentimentScore()
	_u.mutation.SetSentimentScore(v)
	return _u
}

// SetNillableSentimentScore sets the "sentiment_score" field if the given value is not nil.
func (_u *AuditAnalysisUpdate) SetNillableSentimentScore(v *float64) *AuditAnalysisUpdate {
	if v != nil {
		_u.SetSentimentScore(*v)
	}
	return _u
}

// AddSentimentScore adds value to the "sentiment_score" field.
func (_u *AuditAnalysisUpdate) AddSentimentScore(v float64) *AuditAnalysisUpdate {
	_u.mutation.AddSentimentScore(v)
	return _u
}

// SetCompetitorsMentioned sets the "competitors_mentioned" field.
func (_u *AuditAnalysisUpdate) SetCompetitorsMentioned(v []schema.CompetitorMention) *AuditAnalysisUpdate {
	_u.mutation.SetCompetitorsMentioned(v)
	return _u
}

// AppendCompetitorsMentioned appends value to the "competitors_mentioned" field.
func (_u *AuditAnalysisUpdate) AppendCompetitorsMentioned(v []schema.CompetitorMention) *AuditAnalysisUpdate {
	_u.mutation.AppendCompetitorsMentioned(v)
	return _u
}

// ClearCompetitorsMentioned clears the value of the "competitors_mentioned" field.
func (_u *AuditAnalysisUpdate) ClearCompetitorsMentioned() *AuditAnalysisUpdate {
	_u.mutation.ClearCompetitorsMentioned()
	return _u
}

// SetGeoScore sets the "geo_score" field.
func (_u *AuditAnalysisUpdate) SetGeoScore(v float64) *AuditAnalysisUpdate {
	_u.mutation.ResetGeoScore()
	_u.mutation.SetGeoScore(v)
	return _u
}

// SetNillableGeoScore sets the "geo_score" field if the given value is not nil.
func (_u *AuditAnalysisUpdate) SetNillableGeoScore(v *float64) *AuditAnalysisUpdate {
	if v != nil {
		_u.SetGeoScore(*v)
	}
	return _u
}

// AddGeoScore adds value to the "geo_score" field.
func (_u *AuditAnalysisUpdate) AddGeoScore(v float64) *AuditAnalysisUpdate {
	_u.mutation.AddGeoScore(v)
	return _u
}

// SetSovScore sets the "sov_score" field.
func (_u *AuditAnalysisUpdate) SetSovScore(v float64) *AuditAnalysisUpdate {
	_u.mutation.ResetSovScore()
	_u.mutation.SetSovScore(v)
	return _u
}

// SetNillableSovScore sets the "sov_score" field if the given value is not nil.
func (_u *AuditAnalysisUpdate) SetNillableSovScore(v *float64) *AuditAnalysisUpdate {
	if v != nil {
		_u.SetSovScore(*v)
	}
	return _u
}

// AddSovScore adds value to the "sov_score" field.
func (_u *AuditAnalysisUpdate) AddSovScore(v float64) *AuditAnalysisUpdate {
	_u.mutation.AddSovScore(v)
	return _u
}

// SetContextCompleteness sets the "context_completeness" field.
func (_u *AuditAnalysisUpdate) SetContextCompleteness(v float64) *AuditAnalysisUpdate {
	_u.mutation.ResetContextCompleteness()
	_u.mutation.SetContextCompleteness(v)
	return _u
}

// SetNillableContextCompleteness sets the "context_completeness" field if the given value is not nil.
func (_u *AuditAnalysisUpdate) SetNillableContextCompleteness(v *float64) *AuditAnalysisUpdate {
	if v != nil {
		_u.SetContextCompleteness(*v)
	}
	return _u
}

// AddContextCompleteness adds value to the "context_completeness" field.
func (_u *AuditAnalysisUpdate) AddContextCompleteness(v float64) *AuditAnalysisUpdate {
	_u.mutation.AddContextCompleteness(v)
	return _u
}

// SetRecommendationSignal sets the "recommendation_signal" field.
func (_u *AuditAnalysisUpdate) SetRecommendationSignal(v float64) *AuditAnalysisUpdate {
	_u.mutation.ResetRecommendationSignal()
	_u.mutation.SetRecommendationSignal(v)
	return _u
}

// SetNillableRecommendationSignal sets the "recommendation_signal" field if the given value is not nil.
func (_u *AuditAnalysisUpdate) SetNillableRecommendationSignal(v *float64) *AuditAnalysisUpdate {
	if v != nil {
		_u.SetRecommendationSignal(*v)
	}
	return _u
}

// AddRecommendationSignal adds value to the "recommendation_signal" field.
func (_u *AuditAnalysisUpdate) AddRecommendationSignal(v float64) *AuditAnalysisUpdate {
	_u.mutation.AddRecommendationSignal(v)
	return _u
}

// SetRecommendations sets the "recommendations" field.
func (_u *AuditAnalysisUpdate) SetRecommendations(v []string) *AuditAnalysisUpdate {
	_u.mutation.SetRecommendations(v)
	return _u
}

// AppendRecommendations appends value to the "recommendations" field.
func (_u *AuditAnalysisUpdate) AppendRecommendations(v []string) *AuditAnalysisUpdate {
	_u.mutation.AppendRecommendations(v)
	return _u
}

// ClearRecommendations clears the value of the "recommendations" field.
func (_u *AuditAnalysisUpdate) ClearRecommendations() *AuditAnalysisUpdate {
	_u.mutation.ClearRecommendations()
	return _u
}

// SetErrored sets the "errored" field.
func (_u *AuditAnalysisUpdate) SetErrored(v bool) *AuditAnalysisUpdate {
	_u.mutation.SetErrored(v)
	return _u
}

// SetNillableErrored sets the "errored" field if the given value is not nil.
func (_u *AuditAnalysisUpdate) SetNillableErrored(v *bool) *AuditAnalysisUpdate {
	if v != nil {
		_u.SetErrored(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *AuditAnalysisUpdate) SetErrorMessage(v string) *AuditAnalysisUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *AuditAnalysisUpdate) SetNillableErrorMessage(v *string) *AuditAnalysisUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *AuditAnalysisUpdate) ClearErrorMessage() *AuditAnalysisUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *AuditAnalysisUpdate) SetCreatedAt(v time.Time) *AuditAnalysisUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *AuditAnalysisUpdate) SetNillableCreatedAt(v *time.Time) *AuditAnalysisUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the AuditAnalysisMutation object of the builder.
func (_u *AuditAnalysisUpdate) Mutation() *AuditAnalysisMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AuditAnalysisUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AuditAnalysisUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AuditAnalysisUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AuditAnalysisUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AuditAnalysisUpdate) check() error {
	if v, ok := _u.mutation.Provider(); ok {
		if err := auditanalysis.ProviderValidator(v); err != nil {
			return &ValidationError{Name: "provider", err: fmt.Errorf(`ent: validator failed for field "AuditAnalysis.provider": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := auditanalysis.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "AuditAnalysis.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Sentiment(); ok {
		if err := auditanalysis.SentimentValidator(v); err != nil {
			return &ValidationError{Name: "sentiment", err: fmt.Errorf(`ent: validator failed for field "AuditAnalysis.sentiment": %w`, err)}
		}
	}
	if _u.mutation.AuditCleared() && len(_u.mutation.AuditIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AuditAnalysis.audit"`)
	}
	if _u.mutation.ResponseCleared() && len(_u.mutation.ResponseIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AuditAnalysis.response"`)
	}
	return nil
}

func (_u *AuditAnalysisUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(auditanalysis.Table, auditanalysis.Columns, sqlgraph.NewFieldSpec(auditanalysis.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(auditanalysis.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(auditanalysis.FieldCategory, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.BrandMentioned(); ok {
		_spec.SetField(auditanalysis.FieldBrandMentioned, field.TypeBool, value)
	}
	if value, ok := _u.mutation.FirstPosition(); ok {
		_spec.SetField(auditanalysis.FieldFirstPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFirstPosition(); ok {
		_spec.AddField(auditanalysis.FieldFirstPosition, field.TypeInt, value)
	}
	if _u.mutation.FirstPositionCleared() {
		_spec.ClearField(auditanalysis.FieldFirstPosition, field.TypeInt)
	}
	if value, ok := _u.mutation.Sentiment(); ok {
		_spec.SetField(auditanalysis.FieldSentiment, field.TypeEnum, value)
	}
	if _u.mutation.SentimentCleared() {
		_spec.ClearField(auditanalysis.FieldSentiment, field.TypeEnum)
	}
	if value, ok := _u.mutation.SentimentScore(); ok {
		_spec.SetField(auditanalysis.FieldSentimentScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSentimentScore(); ok {
		_spec.AddField(auditanalysis.FieldSentimentScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CompetitorsMentioned(); ok {
		_spec.SetField(auditanalysis.FieldCompetitorsMentioned, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCompetitorsMentioned(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, auditanalysis.FieldCompetitorsMentioned, value)
		})
	}
	if _u.mutation.CompetitorsMentionedCleared() {
		_spec.ClearField(auditanalysis.FieldCompetitorsMentioned, field.TypeJSON)
	}
	if value, ok := _u.mutation.GeoScore(); ok {
		_spec.SetField(auditanalysis.FieldGeoScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedGeoScore(); ok {
		_spec.AddField(auditanalysis.FieldGeoScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SovScore(); ok {
		_spec.SetField(auditanalysis.FieldSovScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSovScore(); ok {
		_spec.AddField(auditanalysis.FieldSovScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ContextCompleteness(); ok {
		_spec.SetField(auditanalysis.FieldContextCompleteness, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedContextCompleteness(); ok {
		_spec.AddField(auditanalysis.FieldContextCompleteness, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RecommendationSignal(); ok {
		_spec.SetField(auditanalysis.FieldRecommendationSignal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRecommendationSignal(); ok {
		_spec.AddField(auditanalysis.FieldRecommendationSignal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Recommendations(); ok {
		_spec.SetField(auditanalysis.FieldRecommendations, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRecommendations(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, auditanalysis.FieldRecommendations, value)
		})
	}
	if _u.mutation.RecommendationsCleared() {
		_spec.ClearField(auditanalysis.FieldRecommendations, field.TypeJSON)
	}
	if value, ok := _u.mutation.Errored(); ok {
		_spec.SetField(auditanalysis.FieldErrored, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(auditanalysis.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(auditanalysis.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(auditanalysis.FieldCreatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{auditanalysis.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AuditAnalysisUpdateOne is the builder for updating a single AuditAnalysis entity.
type AuditAnalysisUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AuditAnalysisMutation
}

// SetProvider sets the "provider" field.
func (_u *AuditAnalysisUpdateOne) SetProvider(v string) *AuditAnalysisUpdateOne {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *AuditAnalysisUpdateOne) SetNillableProvider(v *string) *AuditAnalysisUpdateOne {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *AuditAnalysisUpdateOne) SetCategory(v auditanalysis.Category) *AuditAnalysisUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *AuditAnalysisUpdateOne) SetNillableCategory(v *auditanalysis.Category) *AuditAnalysisUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetBrandMentioned sets the "brand_mentioned" field.
func (_u *AuditAnalysisUpdateOne) SetBrandMentioned(v bool) *AuditAnalysisUpdateOne {
	_u.mutation.SetBrandMentioned(v)
	return _u
}

// SetNillableBrandMentioned sets the "brand_mentioned" field if the given value is not nil.
func (_u *AuditAnalysisUpdateOne) SetNillableBrandMentioned(v *bool) *AuditAnalysisUpdateOne {
	if v != nil {
		_u.SetBrandMentioned(*v)
	}
	return _u
}

// SetFirstPosition sets the "first_position" field.
func (_u *AuditAnalysisUpdateOne) SetFirstPosition(v int) *AuditAnalysisUpdateOne {
	_u.mutation.ResetFirstPosition()
	_u.mutation.SetFirstPosition(v)
	return _u
}

// SetNillableFirstPosition sets the "first_position" field if the given value is not nil.
func (_u *AuditAnalysisUpdateOne) SetNillableFirstPosition(v *int) *AuditAnalysisUpdateOne {
	if v != nil {
		_u.SetFirstPosition(*v)
	}
	return _u
}

// AddFirstPosition adds value to the "first_position" field.
func (_u *AuditAnalysisUpdateOne) AddFirstPosition(v int) *AuditAnalysisUpdateOne {
	_u.mutation.AddFirstPosition(v)
	return _u
}

// ClearFirstPosition clears the value of the "first_position" field.
func (_u *AuditAnalysisUpdateOne) ClearFirstPosition() *AuditAnalysisUpdateOne {
	_u.mutation.ClearFirstPosition()
	return _u
}

// SetSentiment sets the "sentiment" field.
func (_u *AuditAnalysisUpdateOne) SetSentiment(v auditanalysis.Sentiment) *AuditAnalysisUpdateOne {
	_u.mutation.SetSentiment(v)
	return _u
}

// SetNillableSentiment sets the "sentiment" field if the given value is not nil.
func (_u *AuditAnalysisUpdateOne) SetNillableSentiment(v *auditanalysis.Sentiment) *AuditAnalysisUpdateOne {
	if v != nil {
		_u.SetSentiment(*v)
	}
	return _u
}

// ClearSentiment clears the value of the "sentiment" field.
func (_u *AuditAnalysisUpdateOne) ClearSentiment() *AuditAnalysisUpdateOne {
	_u.mutation.ClearSentiment()
	return _u
}

// SetSentimentScore sets the "sentiment_score" field.
func (_u *AuditAnalysisUpdateOne) SetSentimentScore(v float64) *AuditAnalysisUpdateOne {
	_u.mutation.ResetSentimentScore()
	_u.mutation.SetSentimentScore(v)
	return _u
}

// SetNillableSentimentScore sets the "sentiment_score" field if the given value is not nil.
func (_u *AuditAnalysisUpdateOne) SetNillableSentimentScore(v *float64) *AuditAnalysisUpdateOne {
	if v != nil {
		_u.SetSentimentScore(*v)
	}
	return _u
}

// AddSentimentScore adds value to the "sentiment_score" field.
func (_u *AuditAnalysisUpdateOne) AddSentimentScore(v float64) *AuditAnalysisUpdateOne {
	_u.mutation.AddSentimentScore(v)
	return _u
}

// SetCompetitorsMentioned sets the "competitors_mentioned" field.
func (_u *AuditAnalysisUpdateOne) SetCompetitorsMentioned(v []schema.CompetitorMention) *AuditAnalysisUpdateOne {
	_u.mutation.SetCompetitorsMentioned(v)
	return _u
}

// AppendCompetitorsMentioned appends value to the "competitors_mentioned" field.
func (_u *AuditAnalysisUpdateOne) AppendCompetitorsMentioned(v []schema.CompetitorMention) *AuditAnalysisUpdateOne {
	_u.mutation.AppendCompetitorsMentioned(v)
	return _u
}

// ClearCompetitorsMentioned clears the value of the "competitors_mentioned" field.
func (_u *AuditAnalysisUpdateOne) ClearCompetitorsMentioned() *AuditAnalysisUpdateOne {
	_u.mutation.ClearCompetitorsMentioned()
	return _u
}

// SetGeoScore sets the "geo_score" field.
func (_u *AuditAnalysisUpdateOne) SetGeoScore(v float64) *AuditAnalysisUpdateOne {
	_u.mutation.ResetGeoScore()
	_u.mutation.SetGeoScore(v)
	return _u
}

// SetNillableGeoScore sets the "geo_score" field if the given value is not nil.
func (_u *AuditAnalysisUpdateOne) SetNillableGeoScore(v *float64) *AuditAnalysisUpdateOne {
	if v != nil {
		_u.SetGeoScore(*v)
	}
	return _u
}

// AddGeoScore adds value to the "geo_score" field.
func (_u *AuditAnalysisUpdateOne) AddGeoScore(v float64) *AuditAnalysisUpdateOne {
	_u.mutation.AddGeoScore(v)
	return _u
}

// SetSovScore sets the "sov_score" field.
func (_u *AuditAnalysisUpdateOne) SetSovScore(v float64) *AuditAnalysisUpdateOne {
	_u.mutation.ResetSovScore()
	_u.mutation.SetSovScore(v)
	return _u
}

// SetNillableSovScore sets the "sov_score" field if the given value is not nil.
func (_u *AuditAnalysisUpdateOne) SetNillableSovScore(v *float64) *AuditAnalysisUpdateOne {
	if v != nil {
		_u.SetSovScore(*v)
	}
	return _u
}

// AddSovScore adds value to the "sov_score" field.
func (_u *AuditAnalysisUpdateOne) AddSovScore(v float64) *AuditAnalysisUpdateOne {
	_u.mutation.AddSovScore(v)
	return _u
}

// SetContextCompleteness sets the "context_completeness" field.
func (_u *AuditAnalysisUpdateOne) SetContextCompleteness(v float64) *AuditAnalysisUpdateOne {
	_u.mutation.ResetContextCompleteness()
	_u.mutation.SetContextCompleteness(v)
	return _u
}

// SetNillableContextCompleteness sets the "context_completeness" field if the given value is not nil.
func (_u *AuditAnalysisUpdateOne) SetNillableContextCompleteness(v *float64) *AuditAnalysisUpdateOne {
	if v != nil {
		_u.SetContextCompleteness(*v)
	}
	return _u
}

// AddContextCompleteness adds value to the "context_completeness" field.
func (_u *AuditAnalysisUpdateOne) AddContextCompleteness(v float64) *AuditAnalysisUpdateOne {
	_u.mutation.AddContextCompleteness(v)
	return _u
}

// SetRecommendationSignal sets the "recommendation_signal" field.
func (_u *AuditAnalysisUpdateOne) SetRecommendationSignal(v float64) *AuditAnalysisUpdateOne {
	_u.mutation.ResetRecommendationSignal()
	_u.mutation.SetRecommendationSignal(v)
	return _u
}

// SetNillableRecommendationSignal sets the "recommendation_signal" field if the given value is not nil.
func (_u *AuditAnalysisUpdateOne) SetNillableRecommendationSignal(v *float64) *AuditAnalysisUpdateOne {
	if v != nil {
		_u.SetRecommendationSignal(*v)
	}
	return _u
}

// AddRecommendationSignal adds value to the "recommendation_signal" field.
func (_u *AuditAnalysisUpdateOne) AddRecommendationSignal(v float64) *AuditAnalysisUpdateOne {
	_u.mutation.AddRecommendationSignal(v)
	return _u
}

// SetRecommendations sets the "recommendations" field.
func (_u *AuditAnalysisUpdateOne) SetRecommendations(v []string) *AuditAnalysisUpdateOne {
	_u.mutation.SetRecommendations(v)
	return _u
}

// AppendRecommendations appends value to the "recommendations" field.
func (_u *AuditAnalysisUpdateOne) AppendRecommendations(v []string) *AuditAnalysisUpdateOne {
	_u.mutation.AppendRecommendations(v)
	return _u
}

// ClearRecommendations clears the value of the "recommendations" field.
func (_u *AuditAnalysisUpdateOne) ClearRecommendations() *AuditAnalysisUpdateOne {
	_u.mutation.ClearRecommendations()
	return _u
}

// SetErrored sets the "errored" field.
func (_u *AuditAnalysisUpdateOne) SetErrored(v bool) *AuditAnalysisUpdateOne {
	_u.mutation.SetErrored(v)
	return _u
}

// SetNillableErrored sets the "errored" field if the given value is not nil.
func (_u *AuditAnalysisUpdateOne) SetNillableErrored(v *bool) *AuditAnalysisUpdateOne {
	if v != nil {
		_u.SetErrored(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *AuditAnalysisUpdateOne) SetErrorMessage(v string) *AuditAnalysisUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *AuditAnalysisUpdateOne) SetNillableErrorMessage(v *string) *AuditAnalysisUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *AuditAnalysisUpdateOne) ClearErrorMessage() *AuditAnalysisUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *AuditAnalysisUpdateOne) SetCreatedAt(v time.Time) *AuditAnalysisUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *AuditAnalysisUpdateOne) SetNillableCreatedAt(v *time.Time) *AuditAnalysisUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the AuditAnalysisMutation object of the builder.
func (_u *AuditAnalysisUpdateOne) Mutation() *AuditAnalysisMutation {
	return _u.mutation
}

// Where appends a list predicates to the AuditAnalysisUpdate builder.
func (_u *AuditAnalysisUpdateOne) Where(ps ...predicate.AuditAnalysis) *AuditAnalysisUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AuditAnalysisUpdateOne) Select(field string, fields ...string) *AuditAnalysisUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AuditAnalysis entity.
func (_u *AuditAnalysisUpdateOne) Save(ctx context.Context) (*AuditAnalysis, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AuditAnalysisUpdateOne) SaveX(ctx context.Context) *AuditAnalysis {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AuditAnalysisUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AuditAnalysisUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AuditAnalysisUpdateOne) check() error {
	if v, ok := _u.mutation.Provider(); ok {
		if err := auditanalysis.ProviderValidator(v); err != nil {
			return &ValidationError{Name: "provider", err: fmt.Errorf(`ent: validator failed for field "AuditAnalysis.provider": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := auditanalysis.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "AuditAnalysis.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Sentiment(); ok {
		if err := auditanalysis.SentimentValidator(v); err != nil {
			return &ValidationError{Name: "sentiment", err: fmt.Errorf(`ent: validator failed for field "AuditAnalysis.sentiment": %w`, err)}
		}
	}
	if _u.mutation.AuditCleared() && len(_u.mutation.AuditIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AuditAnalysis.audit"`)
	}
	if _u.mutation.ResponseCleared() && len(_u.mutation.ResponseIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AuditAnalysis.response"`)
	}
	return nil
}

func (_u *AuditAnalysisUpdateOne) sqlSave(ctx context.Context) (_node *AuditAnalysis, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(auditanalysis.Table, auditanalysis.Columns, sqlgraph.NewFieldSpec(auditanalysis.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AuditAnalysis.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, auditanalysis.FieldID)
		for _, f := range fields {
			if !auditanalysis.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != auditanalysis.FieldID {
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
		_spec.SetField(auditanalysis.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(auditanalysis.FieldCategory, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.BrandMentioned(); ok {
		_spec.SetField(auditanalysis.FieldBrandMentioned, field.TypeBool, value)
	}
	if value, ok := _u.mutation.FirstPosition(); ok {
		_spec.SetField(auditanalysis.FieldFirstPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFirstPosition(); ok {
		_spec.AddField(auditanalysis.FieldFirstPosition, field.TypeInt, value)
	}
	if _u.mutation.FirstPositionCleared() {
		_spec.ClearField(auditanalysis.FieldFirstPosition, field.TypeInt)
	}
	if value, ok := _u.mutation.Sentiment(); ok {
		_spec.SetField(auditanalysis.FieldSentiment, field.TypeEnum, value)
	}
	if _u.mutation.SentimentCleared() {
		_spec.ClearField(auditanalysis.FieldSentiment, field.TypeEnum)
	}
	if value, ok := _u.mutation.SentimentScore(); ok {
		_spec.SetField(auditanalysis.FieldSentimentScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSentimentScore(); ok {
		_spec.AddField(auditanalysis.FieldSentimentScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CompetitorsMentioned(); ok {
		_spec.SetField(auditanalysis.FieldCompetitorsMentioned, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCompetitorsMentioned(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, auditanalysis.FieldCompetitorsMentioned, value)
		})
	}
	if _u.mutation.CompetitorsMentionedCleared() {
		_spec.ClearField(auditanalysis.FieldCompetitorsMentioned, field.TypeJSON)
	}
	if value, ok := _u.mutation.GeoScore(); ok {
		_spec.SetField(auditanalysis.FieldGeoScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedGeoScore(); ok {
		_spec.AddField(auditanalysis.FieldGeoScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SovScore(); ok {
		_spec.SetField(auditanalysis.FieldSovScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSovScore(); ok {
		_spec.AddField(auditanalysis.FieldSovScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ContextCompleteness(); ok {
		_spec.SetField(auditanalysis.FieldContextCompleteness, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedContextCompleteness(); ok {
		_spec.AddField(auditanalysis.FieldContextCompleteness, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RecommendationSignal(); ok {
		_spec.SetField(auditanalysis.FieldRecommendationSignal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRecommendationSignal(); ok {
		_spec.AddField(auditanalysis.FieldRecommendationSignal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Recommendations(); ok {
		_spec.SetField(auditanalysis.FieldRecommendations, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRecommendations(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, auditanalysis.FieldRecommendations, value)
		})
	}
	if _u.mutation.RecommendationsCleared() {
		_spec.ClearField(auditanalysis.FieldRecommendations, field.TypeJSON)
	}
	if value, ok := _u.mutation.Errored(); ok {
		_spec.SetField(auditanalysis.FieldErrored, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(auditanalysis.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(auditanalysis.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(auditanalysis.FieldCreatedAt, field.TypeTime, value)
	}
	_node = &AuditAnalysis{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{auditanalysis.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
