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
	"github.com/specularhq/specular/ent/auditresponse"
	"github.com/specularhq/specular/ent/schema"
)

// AuditAnalysisCreate is the builder for creating a AuditAnalysis entity.
type AuditAnalysisCreate struct {
	config
	mutation *AuditAnalysisMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetAuditID sets the "audit_id" field.
func (_c *AuditAnalysisCreate) SetAuditID(v string) *AuditAnalysisCreate {
	_c.mutation.SetAuditID(v)
	return _c
}

// SetResponseID sets the "response_id" field.
func (_c *AuditAnalysisCreate) SetResponseID(v string) *AuditAnalysisCreate {
	_c.mutation.SetResponseID(v)
	return _c
}

// SetProvider sets the "provider" field.
func (_c *AuditAnalysisCreate) SetProvider(v string) *AuditAnalysisCreate {
	_c.mutation.SetProvider(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *AuditAnalysisCreate) SetCategory(v auditanalysis.Category) *AuditAnalysisCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetBrandMentioned sets the "brand_mentioned" field.
func (_c *AuditAnalysisCreate) SetBrandMentioned(v bool) *AuditAnalysisCreate {
	_c.mutation.SetBrandMentioned(v)
	return _c
}

// SetNillableBrandMentioned sets the "brand_mentioned" field if the given value is not nil.
func (_c *AuditAnalysisCreate) SetNillableBrandMentioned(v *bool) *AuditAnalysisCreate {
	if v != nil {
		_c.SetBrandMentioned(*v)
	}
	return _c
}

// SetFirstPosition sets the "first_position" field.
func (_c *AuditAnalysisCreate) SetFirstPosition(v int) *AuditAnalysisCreate {
	_c.mutation.SetFirstPosition(v)
	return _c
}

// SetNillableFirstPosition sets the "first_position" field if the given value is not nil.
func (_c *AuditAnalysisCreate) SetNillableFirstPosition(v *int) *AuditAnalysisCreate {
	if v != nil {
		_c.SetFirstPosition(*v)
	}
	return _c
}

// SetSentiment sets the "sentiment" field.
func (_c *AuditAnalysisCreate) SetSentiment(v auditanalysis.Sentiment) *AuditAnalysisCreate {
	_c.mutation.SetSentiment(v)
	return _c
}

// SetNillableSentiment sets the "sentiment" field if the given value is not nil.
func (_c *AuditAnalysisCreate) SetNillableSentiment(v *auditanalysis.Sentiment) *AuditAnalysisCreate {
	if v != nil {
		_c.SetSentiment(*v)
	}
	return _c
}

// SetSentimentScore sets the "sentiment_score" field.
func (_c *AuditAnalysisCreate) SetSentimentScore(v float64) *AuditAnalysisCreate {
	_c.mutation.SetSentimentScore(v)
	return _c
}

// SetNillableSentimentScore sets the "sentiment_score" field if the given value is not nil.
func (_c *AuditAnalysisCreate) SetNillableSentimentScore(v *float64) *AuditAnalysisCreate {
	if v != nil {
		_c.SetSentimentScore(*v)
	}
	return _c
}

// SetCompetitorsMentioned sets the "competitors_mentioned" field.
func (_c *AuditAnalysisCreate) SetCompetitorsMentioned(v []schema.CompetitorMention) *AuditAnalysisCreate {
	_c.mutation.SetCompetitorsMentioned(v)
	return _c
}

// SetGeoScore sets the "geo_score" field.
func (_c *AuditAnalysisCreate) SetGeoScore(v float64) *AuditAnalysisCreate {
	_c.mutation.SetGeoScore(v)
	return _c
}

// SetNillableGeoScore sets the "geo_score" field if the given value is not nil.
func (_c *AuditAnalysisCreate) SetNillableGeoScore(v *float64) *AuditAnalysisCreate {
	if v != nil {
		_c.SetGeoScore(*v)
	}
	return _c
}

// SetSovScore sets the "sov_score" field.
func (_c *AuditAnalysisCreate) SetSovScore(v float64) *AuditAnalysisCreate {
	_c.mutation.SetSovScore(v)
	return _c
}

// SetNillableSovScore sets the "sov_score" field if the given value is not nil.
func (_c *AuditAnalysisCreate) SetNillableSovScore(v *float64) *AuditAnalysisCreate {
	if v != nil {
		_c.SetSovScore(*v)
	}
	return _c
}

// SetContextCompleteness sets the "context_completeness" field.
func (_c *AuditAnalysisCreate) SetContextCompleteness(v float64) *AuditAnalysisCreate {
	_c.mutation.SetContextCompleteness(v)
	return _c
}

// SetNillableContextCompleteness sets the "context_completeness" field if the given value is not nil.
func (_c *AuditAnalysisCreate) SetNillableContextCompleteness(v *float64) *AuditAnalysisCreate {
	if v != nil {
		_c.SetContextCompleteness(*v)
	}
	return _c
}

// SetRecommendationSignal sets the "recommendation_signal" field.
func (_c *AuditAnalysisCreate) SetRecommendationSignal(v float64) *AuditAnalysisCreate {
	_c.mutation.SetRecommendationSignal(v)
	return _c
}

// SetNillableRecommendationSignal sets the "recommendation_signal" field if the given value is not nil.
func (_c *AuditAnalysisCreate) SetNillableRecommendationSignal(v *float64) *AuditAnalysisCreate {
	if v != nil {
		_c.SetRecommendationSignal(*v)
	}
	return _c
}

// SetRecommendations sets the "recommendations" field.
func (_c *AuditAnalysisCreate) SetRecommendations(v []string) *AuditAnalysisCreate {
	_c.mutation.SetRecommendations(v)
	return _c
}

// SetErrored sets the "errored" field.
func (_c *AuditAnalysisCreate) SetErrored(v bool) *AuditAnalysisCreate {
	_c.mutation.SetErrored(v)
	return _c
}

// SetNillableErrored sets the "errored" field if the given value is not nil.
func (_c *AuditAnalysisCreate) SetNillableErrored(v *bool) *AuditAnalysisCreate {
	if v != nil {
		_c.SetErrored(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *AuditAnalysisCreate) SetErrorMessage(v string) *AuditAnalysisCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *AuditAnalysisCreate) SetNillableErrorMessage(v *string) *AuditAnalysisCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AuditAnalysisCreate) SetCreatedAt(v time.Time) *AuditAnalysisCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AuditAnalysisCreate) SetNillableCreatedAt(v *time.Time) *AuditAnalysisCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AuditAnalysisCreate) SetID(v string) *AuditAnalysisCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetAudit sets the "audit" edge to the Audit entity.
func (_c *AuditAnalysisCreate) SetAudit(v *Audit) *AuditAnalysisCreate {
	return _c.SetAuditID(v.ID)
}

// SetResponse sets the "response" edge to the AuditResponse entity.
func (_c *AuditAnalysisCreate) SetResponse(v *AuditResponse) *AuditAnalysisCreate {
	return _c.SetResponseID(v.ID)
}

// Mutation returns the AuditAnalysisMutation object of the builder.
func (_c *AuditAnalysisCreate) Mutation() *AuditAnalysisMutation {
	return _c.mutation
}

// Save creates the AuditAnalysis in the database.
func (_c *AuditAnalysisCreate) Save(ctx context.Context) (*AuditAnalysis, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AuditAnalysisCreate) SaveX(ctx context.Context) *AuditAnalysis {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AuditAnalysisCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AuditAnalysisCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AuditAnalysisCreate) defaults() {
	if _, ok := _c.mutation.BrandMentioned(); !ok {
		v := auditanalysis.DefaultBrandMentioned
		_c.mutation.SetBrandMentioned(v)
	}
	if _, ok := _c.mutation.SentimentScore(); !ok {
		v := auditanalysis.DefaultSentimentScore
		_c.mutation.SetSentimentScore(v)
	}
	if _, ok := _c.mutation.GeoScore(); !ok {
		v := auditanalysis.DefaultGeoScore
		_c.mutation.SetGeoScore(v)
	}
	if _, ok := _c.mutation.SovScore(); !ok {
		v := auditanalysis.DefaultSovScore
		_c.mutation.SetSovScore(v)
	}
	if _, ok := _c.mutation.ContextCompleteness(); !ok {
		v := auditanalysis.DefaultContextCompleteness
		_c.mutation.SetContextCompleteness(v)
	}
	if _, ok := _c.mutation.RecommendationSignal(); !ok {
		v := auditanalysis.DefaultRecommendationSignal
		_c.mutation.SetRecommendationSignal(v)
	}
	if _, ok := _c.mutation.Errored(); !ok {
		v := auditanalysis.DefaultErrored
		_c.mutation.SetErrored(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := auditanalysis.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AuditAnalysisCreate) check() error {
	if _, ok := _c.mutation.AuditID(); !ok {
		return &ValidationError{Name: "audit_id", err: errors.New(`ent: missing required field "AuditAnalysis.audit_id"`)}
	}
	if _, ok := _c.mutation.ResponseID(); !ok {
		return &ValidationError{Name: "response_id", err: errors.New(`ent: missing required field "AuditAnalysis.response_id"`)}
	}
	if _, ok := _c.mutation.Provider(); !ok {
		return &ValidationError{Name: "provider", err: errors.New(`ent: missing required field "AuditAnalysis.provider"`)}
	}
	if v, ok := _c.mutation.Provider(); ok {
		if err := auditanalysis.ProviderValidator(v); err != nil {
			return &ValidationError{Name: "provider", err: fmt.Errorf(`ent: validator failed for field "AuditAnalysis.provider": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "AuditAnalysis.category"`)}
	}
	if v, ok := _c.mutation.Category(); ok {
		if err := auditanalysis.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "AuditAnalysis.category": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BrandMentioned(); !ok {
		return &ValidationError{Name: "brand_mentioned", err: errors.New(`ent: missing required field "AuditAnalysis.brand_mentioned"`)}
	}
	if v, ok := _c.mutation.Sentiment(); ok {
		if err := auditanalysis.SentimentValidator(v); err != nil {
			return &ValidationError{Name: "sentiment", err: fmt.Errorf(`ent: validator failed for field "AuditAnalysis.sentiment": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SentimentScore(); !ok {
		return &ValidationError{Name: "sentiment_score", err: errors.New(`ent: missing required field "AuditAnalysis.sentiment_score"`)}
	}
	if _, ok := _c.mutation.GeoScore(); !ok {
		return &ValidationError{Name: "geo_score", err: errors.New(`ent: missing required field "AuditAnalysis.geo_score"`)}
	}
	if _, ok := _c.mutation.SovScore(); !ok {
		return &ValidationError{Name: "sov_score", err: errors.New(`ent: missing required field "AuditAnalysis.sov_score"`)}
	}
	if _, ok := _c.mutation.ContextCompleteness(); !ok {
		return &ValidationError{Name: "context_completeness", err: errors.New(`ent: missing required field "AuditAnalysis.context_completeness"`)}
	}
	if _, ok := _c.mutation.RecommendationSignal(); !ok {
		return &ValidationError{Name: "recommendation_signal", err: errors.New(`ent: missing required field "AuditAnalysis.recommendation_signal"`)}
	}
	if _, ok := _c.mutation.Errored(); !ok {
		return &ValidationError{Name: "errored", err: errors.New(`ent: missing required field "AuditAnalysis.errored"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AuditAnalysis.created_at"`)}
	}
	if len(_c.mutation.AuditIDs()) == 0 {
		return &ValidationError{Name: "audit", err: errors.New(`ent: missing required edge "AuditAnalysis.audit"`)}
	}
	if len(_c.mutation.ResponseIDs()) == 0 {
		return &ValidationError{Name: "response", err: errors.New(`ent: missing required edge "AuditAnalysis.response"`)}
	}
	return nil
}

func (_c *AuditAnalysisCreate) sqlSave(ctx context.Context) (*AuditAnalysis, error) {
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
			return nil, fmt.Errorf("unexpected AuditAnalysis.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AuditAnalysisCreate) createSpec() (*AuditAnalysis, *sqlgraph.CreateSpec) {
	var (
		_node = &AuditAnalysis{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(auditanalysis.Table, sqlgraph.NewFieldSpec(auditanalysis.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Provider(); ok {
		_spec.SetField(auditanalysis.FieldProvider, field.TypeString, value)
		_node.Provider = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(auditanalysis.FieldCategory, field.TypeEnum, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.BrandMentioned(); ok {
		_spec.SetField(auditanalysis.FieldBrandMentioned, field.TypeBool, value)
		_node.BrandMentioned = value
	}
	if value, ok := _c.mutation.FirstPosition(); ok {
		_spec.SetField(auditanalysis.FieldFirstPosition, field.TypeInt, value)
		_node.FirstPosition = &value
	}
	if value, ok := _c.mutation.Sentiment(); ok {
		_spec.SetField(auditanalysis.FieldSentiment, field.TypeEnum, value)
		_node.Sentiment = &value
	}
	if value, ok := _c.mutation.SentimentScore(); ok {
		_spec.SetField(auditanalysis.FieldSentimentScore, field.TypeFloat64, value)
		_node.SentimentScore = value
	}
	if value, ok := _c.mutation.CompetitorsMentioned(); ok {
		_spec.SetField(auditanalysis.FieldCompetitorsMentioned, field.TypeJSON, value)
		_node.CompetitorsMentioned = value
	}
	if value, ok := _c.mutation.GeoScore(); ok {
		_spec.SetField(auditanalysis.FieldGeoScore, field.TypeFloat64, value)
		_node.GeoScore = value
	}
	if value, ok := _c.mutation.SovScore(); ok {
		_spec.SetField(auditanalysis.FieldSovScore, field.TypeFloat64, value)
		_node.SovScore = value
	}
	if value, ok := _c.mutation.ContextCompleteness(); ok {
		_spec.SetField(auditanalysis.FieldContextCompleteness, field.TypeFloat64, value)
		_node.ContextCompleteness = value
	}
	if value, ok := _c.mutation.RecommendationSignal(); ok {
		_spec.SetField(auditanalysis.FieldRecommendationSignal, field.TypeFloat64, value)
		_node.RecommendationSignal = value
	}
	if value, ok := _c.mutation.Recommendations(); ok {
		_spec.SetField(auditanalysis.FieldRecommendations, field.TypeJSON, value)
		_node.Recommendations = value
	}
	if value, ok := _c.mutation.Errored(); ok {
		_spec.SetField(auditanalysis.FieldErrored, field.TypeBool, value)
		_node.Errored = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(auditanalysis.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(auditanalysis.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.AuditIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   auditanalysis.AuditTable,
			Columns: []string{auditanalysis.AuditColumn},
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
	if nodes := _c.mutation.ResponseIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   auditanalysis.ResponseTable,
			Columns: []string{auditanalysis.ResponseColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(auditresponse.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ResponseID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AuditAnalysis.Create().
//		SetAuditID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AuditAnalysisUpsert) {
//			SetAuditID(v+v).
//		}).
//		Exec(ctx)
func (_c *AuditAnalysisCreate) OnConflict(opts ...sql.ConflictOption) *AuditAnalysisUpsertOne {
	_c.conflict = opts
	return &AuditAnalysisUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AuditAnalysis.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AuditAnalysisCreate) OnConflictColumns(columns ...string) *AuditAnalysisUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AuditAnalysisUpsertOne{
		create: _c,
	}
}

type (
	// AuditAnalysisUpsertOne is the builder for "upsert"-ing
	//  one AuditAnalysis node.
	AuditAnalysisUpsertOne struct {
		create *AuditAnalysisCreate
	}

	// AuditAnalysisUpsert is the "OnConflict" setter.
	AuditAnalysisUpsert struct {
		*sql.UpdateSet
	}
)

// SetProvider sets the "provider" field.
func (u *AuditAnalysisUpsert) SetProvider(v string) *AuditAnalysisUpsert {
	u.Set(auditanalysis.FieldProvider, v)
	return u
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *AuditAnalysisUpsert) UpdateProvider() *AuditAnalysisUpsert {
	u.SetExcluded(auditanalysis.FieldProvider)
	return u
}

// SetCategory sets the "category" field.
func (u *AuditAnalysisUpsert) SetCategory(v auditanalysis.Category) *AuditAnalysisUpsert {
	u.Set(auditanalysis.FieldCategory, v)
	return u
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *AuditAnalysisUpsert) UpdateCategory() *AuditAnalysisUpsert {
	u.SetExcluded(auditanalysis.FieldCategory)
	return u
}

// SetBrandMentioned sets the "brand_mentioned" field.
func (u *AuditAnalysisUpsert) SetBrandMentioned(v bool) *AuditAnalysisUpsert {
	u.Set(auditanalysis.FieldBrandMentioned, v)
	return u
}

// UpdateBrandMentioned sets the "brand_mentioned" field to the value that was provided on create.
func (u *AuditAnalysisUpsert) UpdateBrandMentioned() *AuditAnalysisUpsert {
	u.SetExcluded(auditanalysis.FieldBrandMentioned)
	return u
}

// SetFirstPosition sets the "first_position" field.
func (u *AuditAnalysisUpsert) SetFirstPosition(v int) *AuditAnalysisUpsert {
	u.Set(auditanalysis.FieldFirstPosition, v)
	return u
}

// UpdateFirstPosition sets the "first_position" field to the value that was provided on create.
func (u *AuditAnalysisUpsert) UpdateFirstPosition() *AuditAnalysisUpsert {
	u.SetExcluded(auditanalysis.FieldFirstPosition)
	return u
}

// AddFirstPosition adds v to the "first_position" field.
func (u *AuditAnalysisUpsert) AddFirstPosition(v int) *AuditAnalysisUpsert {
	u.Add(auditanalysis.FieldFirstPosition, v)
	return u
}

// ClearFirstPosition clears the value of the "first_position" field.
func (u *AuditAnalysisUpsert) ClearFirstPosition() *AuditAnalysisUpsert {
	u.SetNull(auditanalysis.FieldFirstPosition)
	return u
}

// SetSentiment sets the "sentiment" field.
func (u *AuditAnalysisUpsert) SetSentiment(v auditanalysis.Sentiment) *AuditAnalysisUpsert {
	u.Set(auditanalysis.FieldSentiment, v)
	return u
}

// UpdateSentiment sets the "sentiment" field to the value that was provided on create.
func (u *AuditAnalysisUpsert) UpdateSentiment() *AuditAnalysisUpsert {
	u.SetExcluded(auditanalysis.FieldSentiment)
	return u
}

// ClearSentiment clears the value of the "sentiment" field.
func (u *AuditAnalysisUpsert) ClearSentiment() *AuditAnalysisUpsert {
	u.SetNull(auditanalysis.FieldSentiment)
	return u
}

// SetSentimentScore sets the "sentiment_score" field.
func (u *AuditAnalysisUpsert) SetSentimentScore(v float64) *AuditAnalysisUpsert {
	u.Set(auditanalysis.FieldSentimentScore, v)
	return u
}

// UpdateSentimentScore sets the "sentiment_score" field to the value that was provided on create.
func (u *AuditAnalysisUpsert) UpdateSentimentScore() *AuditAnalysisUpsert {
	u.SetExcluded(auditanalysis.FieldSentimentScore)
	return u
}

// AddSentimentScore adds v to the "sentiment_score" field.
func (u *AuditAnalysisUpsert) AddSentimentScore(v float64) *AuditAnalysisUpsert {
	u.Add(auditanalysis.FieldSentimentScore, v)
	return u
}

// SetCompetitorsMentioned sets the "competitors_mentioned" field.
func (u *AuditAnalysisUpsert) SetCompetitorsMentioned(v []schema.CompetitorMention) *AuditAnalysisUpsert {
	u.Set(auditanalysis.FieldCompetitorsMentioned, v)
	return u
}

// UpdateCompetitorsMentioned sets the "competitors_mentioned" field to the value that was provided on create.
func (u *AuditAnalysisUpsert) UpdateCompetitorsMentioned() *AuditAnalysisUpsert {
	u.SetExcluded(auditanalysis.FieldCompetitorsMentioned)
	return u
}

// ClearCompetitorsMentioned clears the value of the "competitors_mentioned" field.
func (u *AuditAnalysisUpsert) ClearCompetitorsMentioned() *AuditAnalysisUpsert {
	u.SetNull(auditanalysis.FieldCompetitorsMentioned)
	return u
}

// SetGeoScore sets the "geo_score" field.
func (u *AuditAnalysisUpsert) SetGeoScore(v float64) *AuditAnalysisUpsert {
	u.Set(auditanalysis.FieldGeoScore, v)
	return u
}

// UpdateGeoScore sets the "geo_score" field to the value that was provided on create.
func (u *AuditAnalysisUpsert) UpdateGeoScore() *AuditAnalysisUpsert {
	u.SetExcluded(auditanalysis.FieldGeoScore)
	return u
}

// AddGeoScore adds v to the "geo_score" field.
func (u *AuditAnalysisUpsert) AddGeoScore(v float64) *AuditAnalysisUpsert {
	u.Add(auditanalysis.FieldGeoScore, v)
	return u
}

// SetSovScore sets the "sov_score" field.
func (u *AuditAnalysisUpsert) SetSovScore(v float64) *AuditAnalysisUpsert {
	u.Set(auditanalysis.FieldSovScore, v)
	return u
}

// UpdateSovScore sets the "sov_score" field to the value that was provided on create.
func (u *AuditAnalysisUpsert) UpdateSovScore() *AuditAnalysisUpsert {
	u.SetExcluded(auditanalysis.FieldSovScore)
	return u
}

// AddSovScore adds v to the "sov_score" field.
func (u *AuditAnalysisUpsert) AddSovScore(v float64) *AuditAnalysisUpsert {
	u.Add(auditanalysis.FieldSovScore, v)
	return u
}

// SetContextCompleteness sets the "context_completeness" field.
func (u *AuditAnalysisUpsert) SetContextCompleteness(v float64) *AuditAnalysisUpsert {
	u.Set(auditanalysis.FieldContextCompleteness, v)
	return u
}

// UpdateContextCompleteness sets the "context_completeness" field to the value that was provided on create.
func (u *AuditAnalysisUpsert) UpdateContextCompleteness() *AuditAnalysisUpsert {
	u.SetExcluded(auditanalysis.FieldContextCompleteness)
	return u
}

// AddContextCompleteness adds v to the "context_completeness" field.
func (u *AuditAnalysisUpsert) AddContextCompleteness(v float64) *AuditAnalysisUpsert {
	u.Add(auditanalysis.FieldContextCompleteness, v)
	return u
}

// SetRecommendationSignal sets the "recommendation_signal" field.
func (u *AuditAnalysisUpsert) SetRecommendationSignal(v float64) *AuditAnalysisUpsert {
	u.Set(auditanalysis.FieldRecommendationSignal, v)
	return u
}

// UpdateRecommendationSignal sets the "recommendation_signal" field to the value that was provided on create.
func (u *AuditAnalysisUpsert) UpdateRecommendationSignal() *AuditAnalysisUpsert {
	u.SetExcluded(auditanalysis.FieldRecommendationSignal)
	return u
}

// AddRecommendationSignal adds v to the "recommendation_signal" field.
func (u *AuditAnalysisUpsert) AddRecommendationSignal(v float64) *AuditAnalysisUpsert {
	u.Add(auditanalysis.FieldRecommendationSignal, v)
	return u
}

// SetRecommendations sets the "recommendations" field.
func (u *AuditAnalysisUpsert) SetRecommendations(v []string) *AuditAnalysisUpsert {
	u.Set(auditanalysis.FieldRecommendations, v)
	return u
}

// UpdateRecommendations sets the "recommendations" field to the value that was provided on create.
func (u *AuditAnalysisUpsert) UpdateRecommendations() *AuditAnalysisUpsert {
	u.SetExcluded(auditanalysis.FieldRecommendations)
	return u
}

// ClearRecommendations clears the value of the "recommendations" field.
func (u *AuditAnalysisUpsert) ClearRecommendations() *AuditAnalysisUpsert {
	u.SetNull(auditanalysis.FieldRecommendations)
	return u
}

// SetErrored sets the "errored" field.
func (u *AuditAnalysisUpsert) SetErrored(v bool) *AuditAnalysisUpsert {
	u.Set(auditanalysis.FieldErrored, v)
	return u
}

// UpdateErrored sets the "errored" field to the value that was provided on create.
func (u *AuditAnalysisUpsert) UpdateErrored() *AuditAnalysisUpsert {
	u.SetExcluded(auditanalysis.FieldErrored)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *AuditAnalysisUpsert) SetErrorMessage(v string) *AuditAnalysisUpsert {
	u.Set(auditanalysis.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *AuditAnalysisUpsert) UpdateErrorMessage() *AuditAnalysisUpsert {
	u.SetExcluded(auditanalysis.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *AuditAnalysisUpsert) ClearErrorMessage() *AuditAnalysisUpsert {
	u.SetNull(auditanalysis.FieldErrorMessage)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *AuditAnalysisUpsert) SetCreatedAt(v time.Time) *AuditAnalysisUpsert {
	u.Set(auditanalysis.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *AuditAnalysisUpsert) UpdateCreatedAt() *AuditAnalysisUpsert {
	u.SetExcluded(auditanalysis.FieldCreatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.AuditAnalysis.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(auditanalysis.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AuditAnalysisUpsertOne) UpdateNewValues() *AuditAnalysisUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(auditanalysis.FieldID)
		}
		if _, exists := u.create.mutation.AuditID(); exists {
			s.SetIgnore(auditanalysis.FieldAuditID)
		}
		if _, exists := u.create.mutation.ResponseID(); exists {
			s.SetIgnore(auditanalysis.FieldResponseID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AuditAnalysis.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AuditAnalysisUpsertOne) Ignore() *AuditAnalysisUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AuditAnalysisUpsertOne) DoNothing() *AuditAnalysisUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AuditAnalysisCreate.OnConflict
// documentation for more info.
func (u *AuditAnalysisUpsertOne) Update(set func(*AuditAnalysisUpsert)) *AuditAnalysisUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AuditAnalysisUpsert{UpdateSet: update})
	}))
	return u
}

// SetProvider sets the "provider" field.
func (u *AuditAnalysisUpsertOne) SetProvider(v string) *AuditAnalysisUpsertOne {
	return u.Update(func(s *AuditAnalysisUpsert) {
		s.SetProvider(v)
	})
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *AuditAnalysisUpsertOne) UpdateProvider() *AuditAnalysisUpsertOne {
	return u.Update(func(s *AuditAnalysisUpsert) {
		s.UpdateProvider()
	})
}

// SetCategory sets the "category" field.
func (u *AuditAnalysisUpsertOne) SetCategory(v auditanalysis.Category) *AuditAnalysisUpsertOne {
	return u.Update(func(s *AuditAnalysisUpsert) {
		s.SetCategory(v)
	})
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *AuditAnalysisUpsertOne) UpdateCategory() *AuditAnalysisUpsertOne {
	return u.Update(func(s *AuditAnalysisUpsert) {
		s.UpdateCategory()
	})
}

// SetBrandMentioned sets the "brand_mentioned" field.
func (u *AuditAnalysisUpsertOne) SetBrandMentioned(v bool) *AuditAnalysisUpsertOne {
	return u.Update(func(s *AuditAnalysisUpsert) {
		s.SetBrandMentioned(v)
	})
}

// UpdateBrandMentioned sets the "brand_mentioned" field to the value that was provided on create.
func (u *AuditAnalysisUpsertOne) UpdateBrandMentioned() *AuditAnalysisUpsertOne {
	return u.Update(func(s *AuditAnalysisUpsert) {
		s.UpdateBrandMentioned()
	})
}

// SetFirstPosition sets the "first_position" field.
func (u *AuditAnalysisUpsertOne) SetFirstPosition(v int) *AuditAnalysisUpsertOne {
	return u.Update(func(s *AuditAnalysisUpsert) {
		s.SetFirstPosition(v)
	})
}

// AddFirstPosition adds v to the "first_position" field.
func (u *AuditAnalysisUpsertOne) AddFirstPosition(v int) *AuditAnalysisUpsertOne {
	return u.Update(func(s *AuditAnalysisUpsert) {
		s.AddFirstPosition(v)
	})
}

// UpdateFirstPosition sets the "first_position" field to the value that was provided on create.
func (u *AuditAnalysisUpsertOne) UpdateFirstPosition() *AuditAnalysisUpsertOne {
	return u.Update(func(s *AuditAnalysisUpsert) {
		s.UpdateFirstPosition()
	})
}

// ClearFirstPosition clears the value of the "first_position" field.
func (u *AuditAnalysisUpsertOne) ClearFirstPosition() *AuditAnalysisUpsertOne {
	return u.Update(func(s *AuditAnalysisUpsert) {
		s.ClearFirstPosition()
	})
}

// SetSentiment sets the "sentiment" field.
func (u *AuditAnalysisUpsertOne) SetSentiment(v auditanalysis.Sentiment) *AuditAnalysisUpsertOne {
	return u.Update(func(s *AuditAnalysisUpsert) {
		s.SetSentiment(v)
	})
}

// UpdateSentiment sets the "sentiment" field to the value that was provided on create.
func (u *AuditAnalysisUpsertOne) UpdateSentiment() *AuditAnalysisUpsertOne {
	return u.Update(func(s *AuditAnalysisUpsert) {
		s.UpdateSentiment()
	})
}

// ClearSentiment clears the value of the "sentiment" field.
func (u *AuditAnalysisUpsertOne) ClearSentiment() *AuditAnalysisUpsertOne {
	return u.Update(func(s *AuditAnalysisUpsert) {
		s.ClearSentiment()
	})
}

// SetSentimentScore sets the "sentiment_score" field.
func (u *AuditAnalysisUpsertOne) SetSentimentScore(v float64) *AuditAnalysisUpsertOne {
	return u.Update(func(s *AuditAnalysisUpsert) {
		s.SetSentimentScore(v)
	})
}

// AddSentimentScore adds v to the "sentiment_score" field.
func (u *AuditAnalysisUpsertOne) AddSentimentScore(v float64) *AuditAnalysisUpsertOne {
	return u.Update(func(s *AuditAnalysisUpsert) {
		s.AddSentimentScore(v)
	})
}

// UpdateSentimentScore sets the "sentiment_score" field to the value that was provided on create.
func (u *AuditAnalysisUpsertOne) UpdateSentimentScore() *AuditAnalysisUpsertOne {
	return u.Update(func(s *AuditAnalysisUpsert) {
		s.UpdateSentimentScore()
	})
}

// SetCompetitorsMentioned sets the "competitors_mentioned" field.
func (u *AuditAnalysisUpsertOne) SetCompetitorsMentioned(v []schema.CompetitorMention) *AuditAnalysisUpsertOne {
	return u.Update(func(s *AuditAnalysisUpsert) {
		s.SetCompetitorsMentioned(v)
	})
}

// UpdateCompetitorsMentioned sets the "competitors_mentioned" field to the value that was provided on create.
func (u *AuditAnalysisUpsertOne) UpdateCompetitorsMentioned() *AuditAnalysisUpsertOne {
	return u.Update(func(s *AuditAnalysisUpsert) {
		s.UpdateCompetitorsMentioned()
	})
}

// ClearCompetitorsMentioned clears the value of the "competitors_mentioned" field.
func (u *AuditAnalysisUpsertOne) ClearCompetitorsMentioned() *AuditAnalysisUpsertOne {
	return u.Update(func(s *AuditAnalysisUpsert) {
		s.ClearCompetitorsMentioned()
	})
}

// SetGeoScore sets the "geo_score" field.
func (u *AuditAnalysisUpsertOne) SetGeoScore(v float64) *AuditAnalysisUpsertOne {
	return u.Update(func(s *AuditAnalysisUpsert) {
		s.SetGeoScore(v)
	})
}

// AddGeoScore adds v to the "geo_score" field.
func (u *AuditAnalysisUpsertOne) AddGeoScore(v float64) *AuditAnalysisUpsertOne {
	return u.Update(func(s *AuditAnalysisUpsert) {
		s.AddGeoScore(v)
	})
}

// UpdateGeoScore sets the "geo_score" field to the value that was provided on create.
func (u *AuditAnalysisUpsertOne) UpdateGeoScore() *AuditAnalysisUpsertOne {
	return u.Update(func(s *AuditAnalysisUpsert) {
		s.UpdateGeoScore()
	})
}

// SetSovScore sets the "sov_score" field.
func (u *AuditAnalysisUpsertOne) SetSovScore(v float64) *AuditAnalysisUpsertOne {
	return u.Update(func(s *AuditAnalysisUpsert) {
		s.SetSovScore(v)
	})
}

// AddSovScore adds v to the "sov_score" field.
func (u *AuditAnalysisUpsertOne) AddSovScore(v float64) *AuditAnalysisUpsertOne {
	return u.Update(func(s *AuditAnalysisUpsert) {
		s.AddSovScore(v)
	})
}

// UpdateSovScore sets the "sov_score" field to the value that was provided on create.
func (u *AuditAnalysisUpsertOne) UpdateSovScore() *AuditAnalysisUpsertOne {
	return u.Update(func(s *AuditAnalysisUpsert) {
		s.UpdateSovScore()
	})
}

// SetContextCompleteness sets the "context_completeness" field.
func (u *AuditAnalysisUpsertOne) SetContextCompleteness(v float64) *AuditAnalysisUpsertOne {
	return u.Update(func(s *AuditAnalysisUpsert) {
		s.SetContextCompleteness(v)
	})
}

// AddContextCompleteness adds v to the "context_completeness" field.
func (u *AuditAnalysisUpsertOne) AddContextCompleteness(v float64) *AuditAnalysisUpsertOne {
	return u.Update(func(s *AuditAnalysisUpsert) {
		s.AddContextCompleteness(v)
	})
}

// UpdateContextCompleteness sets the "context_completeness" field to the value that was provided on create.
func (u *AuditAnalysisUpsertOne) UpdateContextCompleteness() *AuditAnalysisUpsertOne {
	return u.Update(func(s *AuditAnalysisUpsert) {
		s.UpdateContextCompleteness()
	})
}

// SetRecommendationSignal sets the "recommendation_signal" field.
func (u *AuditAnalysisUpsertOne) SetRecommendationSignal(v float64) *AuditAnalysisUpsertOne {
	return u.Update(func(s *AuditAnalysisUpsert) {
		s.SetRecommendationSignal(v)
	})
}

// AddRecommendationSignal adds v to the "recommendation_signal" field.
func (u *AuditAnalysisUpsertOne) AddRecommendationSignal(v float64) *AuditAnalysisUpsertOne {
	return u.Update(func(s *AuditAnalysisUpsert) {
		s.AddRecommendationSignal(v)
	})
}

// UpdateRecommendationSignal sets the "recommendation_signal" field to the value that was provided on create.
func (u *AuditAnalysisUpsertOne) UpdateRecommendationSignal() *AuditAnalysisUpsertOne {
	return u.Update(func(s *AuditAnalysisUpsert) {
		s.UpdateRecommendationSignal()
	})
}

// SetRecommendations sets the "recommendations" field.
func (u *AuditAnalysisUpsertOne) SetRecommendations(v []string) *AuditAnalysisUpsertOne {
	return u.Update(func(s *AuditAnalysisUpsert) {
		s.SetRecommendations(v)
	})
}

// UpdateRecommendations sets the "recommendations" field to the value that was provided on create.
func (u *AuditAnalysisUpsertOne) UpdateRecommendations() *AuditAnalysisUpsertOne {
	return u.Update(func(s *AuditAnalysisUpsert) {
		s.UpdateRecommendations()
	})
}

// ClearRecommendations clears the value of the "recommendations" field.
func (u *AuditAnalysisUpsertOne) ClearRecommendations() *AuditAnalysisUpsertOne {
	return u.Update(func(s *AuditAnalysisUpsert) {
		s.ClearRecommendations()
	})
}

// SetErrored sets the "errored" field.
func (u *AuditAnalysisUpsertOne) SetErrored(v bool) *AuditAnalysisUpsertOne {
	return u.Update(func(s *AuditAnalysisUpsert) {
		s.SetErrored(v)
	})
}

// UpdateErrored sets the "errored" field to the value that was provided on create.
func (u *AuditAnalysisUpsertOne) UpdateErrored() *AuditAnalysisUpsertOne {
	return u.Update(func(s *AuditAnalysisUpsert) {
		s.UpdateErrored()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *AuditAnalysisUpsertOne) SetErrorMessage(v string) *AuditAnalysisUpsertOne {
	return u.Update(func(s *AuditAnalysisUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *AuditAnalysisUpsertOne) UpdateErrorMessage() *AuditAnalysisUpsertOne {
	return u.Update(func(s *AuditAnalysisUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *AuditAnalysisUpsertOne) ClearErrorMessage() *AuditAnalysisUpsertOne {
	return u.Update(func(s *AuditAnalysisUpsert) {
		s.ClearErrorMessage()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *AuditAnalysisUpsertOne) SetCreatedAt(v time.Time) *AuditAnalysisUpsertOne {
	return u.Update(func(s *AuditAnalysisUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *AuditAnalysisUpsertOne) UpdateCreatedAt() *AuditAnalysisUpsertOne {
	return u.Update(func(s *AuditAnalysisUpsert) {
		s.UpdateCreatedAt()
	})
}

// Exec executes the query.
func (u *AuditAnalysisUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AuditAnalysisCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AuditAnalysisUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AuditAnalysisUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: AuditAnalysisUpsertOne.ID is not supported by MySQL driver. Use AuditAnalysisUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AuditAnalysisUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AuditAnalysisCreateBulk is the builder for creating many AuditAnalysis entities in bulk.
type AuditAnalysisCreateBulk struct {
	config
	err      error
	builders []*AuditAnalysisCreate
	conflict []sql.ConflictOption
}

// Save creates the AuditAnalysis entities in the database.
func (_c *AuditAnalysisCreateBulk) Save(ctx context.Context) ([]*AuditAnalysis, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AuditAnalysis, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AuditAnalysisMutation)
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
func (_c *AuditAnalysisCreateBulk) SaveX(ctx context.Context) []*AuditAnalysis {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AuditAnalysisCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AuditAnalysisCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AuditAnalysis.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AuditAnalysisUpsert) {
//			SetAuditID(v+v).
//		}).
//		Exec(ctx)
func (_c *AuditAnalysisCreateBulk) OnConflict(opts ...sql.ConflictOption) *AuditAnalysisUpsertBulk {
	_c.conflict = opts
	return &AuditAnalysisUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AuditAnalysis.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AuditAnalysisCreateBulk) OnConflictColumns(columns ...string) *AuditAnalysisUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AuditAnalysisUpsertBulk{
		create: _c,
	}
}

// AuditAnalysisUpsertBulk is the builder for "upsert"-ing
// a bulk of AuditAnalysis nodes.
type AuditAnalysisUpsertBulk struct {
	create *AuditAnalysisCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.AuditAnalysis.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(auditanalysis.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AuditAnalysisUpsertBulk) UpdateNewValues() *AuditAnalysisUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(auditanalysis.FieldID)
			}
			if _, exists := b.mutation.AuditID(); exists {
				s.SetIgnore(auditanalysis.FieldAuditID)
			}
			if _, exists := b.mutation.ResponseID(); exists {
				s.SetIgnore(auditanalysis.FieldResponseID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AuditAnalysis.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AuditAnalysisUpsertBulk) Ignore() *AuditAnalysisUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AuditAnalysisUpsertBulk) DoNothing() *AuditAnalysisUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AuditAnalysisCreateBulk.OnConflict
// documentation for more info.
func (u *AuditAnalysisUpsertBulk) Update(set func(*AuditAnalysisUpsert)) *AuditAnalysisUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AuditAnalysisUpsert{UpdateSet: update})
	}))
	return u
}

// SetProvider sets the "provider" field.
func (u *AuditAnalysisUpsertBulk) SetProvider(v string) *AuditAnalysisUpsertBulk {
	return u.Update(func(s *AuditAnalysisUpsert) {
		s.SetProvider(v)
	})
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *AuditAnalysisUpsertBulk) UpdateProvider() *AuditAnalysisUpsertBulk {
	return u.Update(func(s *AuditAnalysisUpsert) {
		s.UpdateProvider()
	})
}

// SetCategory sets the "category" field.
func (u *AuditAnalysisUpsertBulk) SetCategory(v auditanalysis.Category) *AuditAnalysisUpsertBulk {
	return u.Update(func(s *AuditAnalysisUpsert) {
		s.SetCategory(v)
	})
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *AuditAnalysisUpsertBulk) UpdateCategory() *AuditAnalysisUpsertBulk {
	return u.Update(func(s *AuditAnalysisUpsert) {
		s.UpdateCategory()
	})
}

// SetBrandMentioned sets the "brand_mentioned" field.
func (u *AuditAnalysisUpsertBulk) SetBrandMentioned(v bool) *AuditAnalysisUpsertBulk {
	return u.Update(func(s *AuditAnalysisUpsert) {
		s.SetBrandMentioned(v)
	})
}

// UpdateBrandMentioned sets the "brand_mentioned" field to the value that was provided on create.
func (u *AuditAnalysisUpsertBulk) UpdateBrandMentioned() *AuditAnalysisUpsertBulk {
	return u.Update(func(s *AuditAnalysisUpsert) {
		s.UpdateBrandMentioned()
	})
}

// SetFirstPosition sets the "first_position" field.
func (u *AuditAnalysisUpsertBulk) SetFirstPosition(v int) *AuditAnalysisUpsertBulk {
	return u.Update(func(s *AuditAnalysisUpsert) {
		s.SetFirstPosition(v)
	})
}

// AddFirstPosition adds v to the "first_position" field.
func (u *AuditAnalysisUpsertBulk) AddFirstPosition(v int) *AuditAnalysisUpsertBulk {
	return u.Update(func(s *AuditAnalysisUpsert) {
		s.AddFirstPosition(v)
	})
}

// UpdateFirstPosition sets the "first_position" field to the value that was provided on create.
func (u *AuditAnalysisUpsertBulk) UpdateFirstPosition() *AuditAnalysisUpsertBulk {
	return u.Update(func(s *AuditAnalysisUpsert) {
		s.UpdateFirstPosition()
	})
}

// ClearFirstPosition clears the value of the "first_position" field.
func (u *AuditAnalysisUpsertBulk) ClearFirstPosition() *AuditAnalysisUpsertBulk {
	return u.Update(func(s *AuditAnalysisUpsert) {
		s.ClearFirstPosition()
	})
}

// SetSentiment sets the "sentiment" field.
func (u *AuditAnalysisUpsertBulk) SetSentiment(v auditanalysis.Sentiment) *AuditAnalysisUpsertBulk {
	return u.Update(func(s *AuditAnalysisUpsert) {
		s.SetSentiment(v)
	})
}

// UpdateSentiment sets the "sentiment" field to the value that was provided on create.
func (u *AuditAnalysisUpsertBulk) UpdateSentiment() *AuditAnalysisUpsertBulk {
	return u.Update(func(s *AuditAnalysisUpsert) {
		s.UpdateSentiment()
	})
}

// ClearSentiment clears the value of the "sentiment" field.
func (u *AuditAnalysisUpsertBulk) ClearSentiment() *AuditAnalysisUpsertBulk {
	return u.Update(func(s *AuditAnalysisUpsert) {
		s.ClearSentiment()
	})
}

// SetSentimentScore sets the "sentiment_score" field.
func (u *AuditAnalysisUpsertBulk) SetSentimentScore(v float64) *AuditAnalysisUpsertBulk {
	return u.Update(func(s *AuditAnalysisUpsert) {
		s.SetSentimentScore(v)
	})
}

// AddSentimentScore adds v to the "sentiment_score" field.
func (u *AuditAnalysisUpsertBulk) AddSentimentScore(v float64) *AuditAnalysisUpsertBulk {
	return u.Update(func(s *AuditAnalysisUpsert) {
		s.AddSentimentScore(v)
	})
}

// UpdateSentimentScore sets the "sentiment_score" field to the value that was provided on create.
func (u *AuditAnalysisUpsertBulk) UpdateSentimentScore() *AuditAnalysisUpsertBulk {
	return u.Update(func(s *AuditAnalysisUpsert) {
		s.UpdateSentimentScore()
	})
}

// SetCompetitorsMentioned sets the "competitors_mentioned" field.
func (u *AuditAnalysisUpsertBulk) SetCompetitorsMentioned(v []schema.CompetitorMention) *AuditAnalysisUpsertBulk {
	return u.Update(func(s *AuditAnalysisUpsert) {
		s.SetCompetitorsMentioned(v)
	})
}

// UpdateCompetitorsMentioned sets the "competitors_mentioned" field to the value that was provided on create.
func (u *AuditAnalysisUpsertBulk) UpdateCompetitorsMentioned() *AuditAnalysisUpsertBulk {
	return u.Update(func(s *AuditAnalysisUpsert) {
		s.UpdateCompetitorsMentioned()
	})
}

// ClearCompetitorsMentioned clears the value of the "competitors_mentioned" field.
func (u *AuditAnalysisUpsertBulk) ClearCompetitorsMentioned() *AuditAnalysisUpsertBulk {
	return u.Update(func(s *AuditAnalysisUpsert) {
		s.ClearCompetitorsMentioned()
	})
}

// SetGeoScore sets the "geo_score" field.
func (u *AuditAnalysisUpsertBulk) SetGeoScore(v float64) *AuditAnalysisUpsertBulk {
	return u.Update(func(s *AuditAnalysisUpsert) {
		s.SetGeoScore(v)
	})
}

// AddGeoScore adds v to the "geo_score" field.
func (u *AuditAnalysisUpsertBulk) AddGeoScore(v float64) *AuditAnalysisUpsertBulk {
	return u.Update(func(s *AuditAnalysisUpsert) {
		s.AddGeoScore(v)
	})
}

// UpdateGeoScore sets the "geo_score" field to the value that was provided on create.
func (u *AuditAnalysisUpsertBulk) UpdateGeoScore() *AuditAnalysisUpsertBulk {
	return u.Update(func(s *AuditAnalysisUpsert) {
		s.UpdateGeoScore()
	})
}

// SetSovScore sets the "sov_score" field.
func (u *AuditAnalysisUpsertBulk) SetSovScore(v float64) *AuditAnalysisUpsertBulk {
	return u.Update(func(s *AuditAnalysisUpsert) {
		s.SetSovScore(v)
	})
}

// AddSovScore adds v to the "sov_score" field.
func (u *AuditAnalysisUpsertBulk) AddSovScore(v float64) *AuditAnalysisUpsertBulk {
	return u.Update(func(s *AuditAnalysisUpsert) {
		s.AddSovScore(v)
	})
}

// UpdateSovScore sets the "sov_score" field to the value that was provided on create.
func (u *AuditAnalysisUpsertBulk) UpdateSovScore() *AuditAnalysisUpsertBulk {
	return u.Update(func(s *AuditAnalysisUpsert) {
		s.UpdateSovScore()
	})
}

// SetContextCompleteness sets the "context_completeness" field.
func (u *AuditAnalysisUpsertBulk) SetContextCompleteness(v float64) *AuditAnalysisUpsertBulk {
	return u.Update(func(s *AuditAnalysisUpsert) {
		s.SetContextCompleteness(v)
	})
}

// AddContextCompleteness adds v to the "context_completeness" field.
func (u *AuditAnalysisUpsertBulk) AddContextCompleteness(v float64) *AuditAnalysisUpsertBulk {
	return u.Update(func(s *AuditAnalysisUpsert) {
		s.AddContextCompleteness(v)
	})
}

// UpdateContextCompleteness sets the "context_completeness" field to the value that was provided on create.
func (u *AuditAnalysisUpsertBulk) UpdateContextCompleteness() *AuditAnalysisUpsertBulk {
	return u.Update(func(s *AuditAnalysisUpsert) {
		s.UpdateContextCompleteness()
	})
}

// SetRecommendationSignal sets the "recommendation_signal" field.
func (u *AuditAnalysisUpsertBulk) SetRecommendationSignal(v float64) *AuditAnalysisUpsertBulk {
	return u.Update(func(s *AuditAnalysisUpsert) {
		s.SetRecommendationSignal(v)
	})
}

// AddRecommendationSignal adds v to the "recommendation_signal" field.
func (u *AuditAnalysisUpsertBulk) AddRecommendationSignal(v float64) *AuditAnalysisUpsertBulk {
	return u.Update(func(s *AuditAnalysisUpsert) {
		s.AddRecommendationSignal(v)
	})
}

// UpdateRecommendationSignal sets the "recommendation_signal" field to the value that was provided on create.
func (u *AuditAnalysisUpsertBulk) UpdateRecommendationSignal() *AuditAnalysisUpsertBulk {
	return u.Update(func(s *AuditAnalysisUpsert) {
		s.UpdateRecommendationSignal()
	})
}

// SetRecommendations sets the "recommendations" field.
func (u *AuditAnalysisUpsertBulk) SetRecommendations(v []string) *AuditAnalysisUpsertBulk {
	return u.Update(func(s *AuditAnalysisUpsert) {
		s.SetRecommendations(v)
	})
}

// UpdateRecommendations sets the "recommendations" field to the value that was provided on create.
func (u *AuditAnalysisUpsertBulk) UpdateRecommendations() *AuditAnalysisUpsertBulk {
	return u.Update(func(s *AuditAnalysisUpsert) {
		s.UpdateRecommendations()
	})
}

// ClearRecommendations clears the value of the "recommendations" field.
func (u *AuditAnalysisUpsertBulk) ClearRecommendations() *AuditAnalysisUpsertBulk {
	return u.Update(func(s *AuditAnalysisUpsert) {
		s.ClearRecommendations()
	})
}

// SetErrored sets the "errored" field.
func (u *AuditAnalysisUpsertBulk) SetErrored(v bool) *AuditAnalysisUpsertBulk {
	return u.Update(func(s *AuditAnalysisUpsert) {
		s.SetErrored(v)
	})
}

// UpdateErrored sets the "errored" field to the value that was provided on create.
func (u *AuditAnalysisUpsertBulk) UpdateErrored() *AuditAnalysisUpsertBulk {
	return u.Update(func(s *AuditAnalysisUpsert) {
		s.UpdateErrored()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *AuditAnalysisUpsertBulk) SetErrorMessage(v string) *AuditAnalysisUpsertBulk {
	return u.Update(func(s *AuditAnalysisUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *AuditAnalysisUpsertBulk) UpdateErrorMessage() *AuditAnalysisUpsertBulk {
	return u.Update(func(s *AuditAnalysisUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *AuditAnalysisUpsertBulk) ClearErrorMessage() *AuditAnalysisUpsertBulk {
	return u.Update(func(s *AuditAnalysisUpsert) {
		s.ClearErrorMessage()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *AuditAnalysisUpsertBulk) SetCreatedAt(v time.Time) *AuditAnalysisUpsertBulk {
	return u.Update(func(s *AuditAnalysisUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *AuditAnalysisUpsertBulk) UpdateCreatedAt() *AuditAnalysisUpsertBulk {
	return u.Update(func(s *AuditAnalysisUpsert) {
		s.UpdateCreatedAt()
	})
}

// Exec executes the query.
func (u *AuditAnalysisUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AuditAnalysisCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AuditAnalysisCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AuditAnalysisUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
