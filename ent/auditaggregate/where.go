// Code generated by ent, DO NOT EDIT.

package auditaggregate

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/specularhq/specular/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldContainsFold(FieldID, id))
}

// AuditID applies equality check predicate on the "audit_id" field. It's identical to AuditIDEQ.
func AuditID(v string) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldEQ(FieldAuditID, v))
}

// OverallScore applies equality check predicate on the "overall_score" field. It's identical to OverallScoreEQ.
func OverallScore(v float64) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldEQ(FieldOverallScore, v))
}

// GeoScore applies equality check predicate on the "geo_score" field. It's identical to GeoScoreEQ.
func GeoScore(v float64) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldEQ(FieldGeoScore, v))
}

// SovScore applies equality check predicate on the "sov_score" field. It's identical to SovScoreEQ.
func SovScore(v float64) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldEQ(FieldSovScore, v))
}

// RecommendationScore applies equality check predicate on the "recommendation_score" field. It's identical to RecommendationScoreEQ.
func RecommendationScore(v float64) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldEQ(FieldRecommendationScore, v))
}

// SentimentScore applies equality check predicate on the "sentiment_score" field. It's identical to SentimentScoreEQ.
func SentimentScore(v float64) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldEQ(FieldSentimentScore, v))
}

// VisibilityScore applies equality check predicate on the "visibility_score" field. It's identical to VisibilityScoreEQ.
func VisibilityScore(v float64) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldEQ(FieldVisibilityScore, v))
}

// ContextCompleteness applies equality check predicate on the "context_completeness" field. It's identical to ContextCompletenessEQ.
func ContextCompleteness(v float64) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldEQ(FieldContextCompleteness, v))
}

// TotalResponses applies equality check predicate on the "total_responses" field. It's identical to TotalResponsesEQ.
func TotalResponses(v int) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldEQ(FieldTotalResponses, v))
}

// AnalyzedResponses applies equality check predicate on the "analyzed_responses" field. It's identical to AnalyzedResponsesEQ.
func AnalyzedResponses(v int) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldEQ(FieldAnalyzedResponses, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldEQ(FieldCreatedAt, v))
}

// AuditIDEQ applies the EQ predicate on the "audit_id" field.
func AuditIDEQ(v string) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldEQ(FieldAuditID, v))
}

// AuditIDNEQ applies the NEQ predicate on the "audit_id" field.
func AuditIDNEQ(v string) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldNEQ(FieldAuditID, v))
}

// AuditIDIn applies the In predicate on the "audit_id" field.
func AuditIDIn(vs ...string) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldIn(FieldAuditID, vs...))
}

// AuditIDNotIn applies the NotIn predicate on the "audit_id" field.
func AuditIDNotIn(vs ...string) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldNotIn(FieldAuditID, vs...))
}

// AuditIDGT applies the GT predicate on the "audit_id" field.
func AuditIDGT(v string) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldGT(FieldAuditID, v))
}

// AuditIDGTE applies the GTE predicate on the "audit_id" field.
func AuditIDGTE(v string) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldGTE(FieldAuditID, v))
}

// AuditIDLT applies the LT predicate on the "audit_id" field.
func AuditIDLT(v string) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldLT(FieldAuditID, v))
}

// AuditIDLTE applies the LTE predicate on the "audit_id" field.
func AuditIDLTE(v string) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldLTE(FieldAuditID, v))
}

// AuditIDContains applies the Contains predicate on the "audit_id" field.
func AuditIDContains(v string) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldContains(FieldAuditID, v))
}

// AuditIDHasPrefix applies the HasPrefix predicate on the "audit_id" field.
func AuditIDHasPrefix(v string) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldHasPrefix(FieldAuditID, v))
}

// AuditIDHasSuffix applies the HasSuffix predicate on the "audit_id" field.
func AuditIDHasSuffix(v string) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldHasSuffix(FieldAuditID, v))
}

// AuditIDEqualFold applies the EqualFold predicate on the "audit_id" field.
func AuditIDEqualFold(v string) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldEqualFold(FieldAuditID, v))
}

// AuditIDContainsFold applies the ContainsFold predicate on the "audit_id" field.
func AuditIDContainsFold(v string) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldContainsFold(FieldAuditID, v))
}

// OverallScoreEQ applies the EQ predicate on the "overall_score" field.
func OverallScoreEQ(v float64) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldEQ(FieldOverallScore, v))
}

// OverallScoreNEQ applies the NEQ predicate on the "overall_score" field.
func OverallScoreNEQ(v float64) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldNEQ(FieldOverallScore, v))
}

// OverallScoreIn applies the In predicate on the "overall_score" field.
func OverallScoreIn(vs ...float64) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldIn(FieldOverallScore, vs...))
}

// OverallScoreNotIn applies the NotIn predicate on the "overall_score" field.
func OverallScoreNotIn(vs ...float64) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldNotIn(FieldOverallScore, vs...))
}

// OverallScoreGT applies the GT predicate on the "overall_score" field.
func OverallScoreGT(v float64) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldGT(FieldOverallScore, v))
}

// OverallScoreGTE applies the GTE predicate on the "overall_score" field.
func OverallScoreGTE(v float64) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldGTE(FieldOverallScore, v))
}

// OverallScoreLT applies the LT predicate on the "overall_score" field.
func OverallScoreLT(v float64) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldLT(FieldOverallScore, v))
}

// OverallScoreLTE applies the LTE predicate on the "overall_score" field.
func OverallScoreLTE(v float64) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldLTE(FieldOverallScore, v))
}

// GeoScoreEQ applies the EQ predicate on the "geo_score" field.
func GeoScoreEQ(v float64) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldEQ(FieldGeoScore, v))
}

// GeoScoreNEQ applies the NEQ predicate on the "geo_score" field.
func GeoScoreNEQ(v float64) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldNEQ(FieldGeoScore, v))
}

// GeoScoreIn applies the In predicate on the "geo_score" field.
func GeoScoreIn(vs ...float64) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldIn(FieldGeoScore, vs...))
}

// GeoScoreNotIn applies the NotIn predicate on the "geo_score" field.
func GeoScoreNotIn(vs ...float64) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldNotIn(FieldGeoScore, vs...))
}

// GeoScoreGT applies the GT predicate on the "geo_score" field.
func GeoScoreGT(v float64) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldGT(FieldGeoScore, v))
}

// GeoScoreGTE applies the GTE predicate on the "geo_score" field.
func GeoScoreGTE(v float64) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldGTE(FieldGeoScore, v))
}

// GeoScoreLT applies the LT predicate on the "geo_score" field.
func GeoScoreLT(v float64) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldLT(FieldGeoScore, v))
}

// GeoScoreLTE applies the LTE predicate on the "geo_score" field.
func GeoScoreLTE(v float64) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldLTE(FieldGeoScore, v))
}

// SovScoreEQ applies the EQ predicate on the "sov_score" field.
func SovScoreEQ(v float64) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldEQ(FieldSovScore, v))
}

// SovScoreNEQ applies the NEQ predicate on the "sov_score" field.
func SovScoreNEQ(v float64) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldNEQ(FieldSovScore, v))
}

// SovScoreIn applies the In predicate on the "sov_score" field.
func SovScoreIn(vs ...float64) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldIn(FieldSovScore, vs...))
}

// SovScoreNotIn applies the NotIn predicate on the "sov_score" field.
func SovScoreNotIn(vs ...float64) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldNotIn(FieldSovScore, vs...))
}

// SovScoreGT applies the GT predicate on the "sov_score" field.
func SovScoreGT(v float64) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldGT(FieldSovScore, v))
}

// SovScoreGTE applies the GTE predicate on the "sov_score" field.
func SovScoreGTE(v float64) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldGTE(FieldSovScore, v))
}

// SovScoreLT applies the LT predicate on the "sov_score" field.
func SovScoreLT(v float64) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldLT(FieldSovScore, v))
}

// SovScoreLTE applies the LTE predicate on the "sov_score" field.
func SovScoreLTE(v float64) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldLTE(FieldSovScore, v))
}

// RecommendationScoreEQ applies the EQ predicate on the "recommendation_score" field.
func RecommendationScoreEQ(v float64) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldEQ(FieldRecommendationScore, v))
}

// RecommendationScoreNEQ applies the NEQ predicate on the "recommendation_score" field.
func RecommendationScoreNEQ(v float64) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldNEQ(FieldRecommendationScore, v))
}

// RecommendationScoreIn applies the In predicate on the "recommendation_score" field.
func RecommendationScoreIn(vs ...float64) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldIn(FieldRecommendationScore, vs...))
}

// RecommendationScoreNotIn applies the NotIn predicate on the "recommendation_score" field.
func RecommendationScoreNotIn(vs ...float64) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldNotIn(FieldRecommendationScore, vs...))
}

// RecommendationScoreGT applies the GT predicate on the "recommendation_score" field.
func RecommendationScoreGT(v float64) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldGT(FieldRecommendationScore, v))
}

// RecommendationScoreGTE applies the GTE predicate on the "recommendation_score" field.
func RecommendationScoreGTE(v float64) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldGTE(FieldRecommendationScore, v))
}

// RecommendationScoreLT applies the LT predicate on the "recommendation_score" field.
func RecommendationScoreLT(v float64) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldLT(FieldRecommendationScore, v))
}

// RecommendationScoreLTE applies the LTE predicate on the "recommendation_score" field.
func RecommendationScoreLTE(v float64) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldLTE(FieldRecommendationScore, v))
}

// SentimentScoreEQ applies the EQ predicate on the "sentiment_score" field.
func SentimentScoreEQ(v float64) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldEQ(FieldSentimentScore, v))
}

// SentimentScoreNEQ applies the NEQ predicate on the "sentiment_score" field.
func SentimentScoreNEQ(v float64) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldNEQ(FieldSentimentScore, v))
}

// SentimentScoreIn applies the In predicate on the "sentiment_score" field.
func SentimentScoreIn(vs ...float64) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldIn(FieldSentimentScore, vs...))
}

// SentimentScoreNotIn applies the NotIn predicate on the "sentiment_score" field.
func SentimentScoreNotIn(vs ...float64) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldNotIn(FieldSentimentScore, vs...))
}

// SentimentScoreGT applies the GT predicate on the "sentiment_score" field.
func SentimentScoreGT(v float64) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldGT(FieldSentimentScore, v))
}

// SentimentScoreGTE applies the GTE predicate on the "sentiment_score" field.
func SentimentScoreGTE(v float64) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldGTE(FieldSentimentScore, v))
}

// SentimentScoreLT applies the LT predicate on the "sentiment_score" field.
func SentimentScoreLT(v float64) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldLT(FieldSentimentScore, v))
}

// SentimentScoreLTE applies the LTE predicate on the "sentiment_score" field.
func SentimentScoreLTE(v float64) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldLTE(FieldSentimentScore, v))
}

// VisibilityScoreEQ applies the EQ predicate on the "visibility_score" field.
func VisibilityScoreEQ(v float64) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldEQ(FieldVisibilityScore, v))
}

// VisibilityScoreNEQ applies the NEQ predicate on the "visibility_score" field.
func VisibilityScoreNEQ(v float64) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldNEQ(FieldVisibilityScore, v))
}

// VisibilityScoreIn applies the In predicate on the "visibility_score" field.
func VisibilityScoreIn(vs ...float64) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldIn(FieldVisibilityScore, vs...))
}

// VisibilityScoreNotIn applies the NotIn predicate on the "visibility_score" field.
func VisibilityScoreNotIn(vs ...float64) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldNotIn(FieldVisibilityScore, vs...))
}

// VisibilityScoreGT applies the GT predicate on the "visibility_score" field.
func VisibilityScoreGT(v float64) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldGT(FieldVisibilityScore, v))
}

// VisibilityScoreGTE applies the GTE predicate on the "visibility_score" field.
func VisibilityScoreGTE(v float64) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldGTE(FieldVisibilityScore, v))
}

// VisibilityScoreLT applies the LT predicate on the "visibility_score" field.
func VisibilityScoreLT(v float64) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldLT(FieldVisibilityScore, v))
}

// VisibilityScoreLTE applies the LTE predicate on the "visibility_score" field.
func VisibilityScoreLTE(v float64) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldLTE(FieldVisibilityScore, v))
}

// ContextCompletenessEQ applies the EQ predicate on the "context_completeness" field.
func ContextCompletenessEQ(v float64) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldEQ(FieldContextCompleteness, v))
}

// ContextCompletenessNEQ applies the NEQ predicate on the "context_completeness" field.
func ContextCompletenessNEQ(v float64) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldNEQ(FieldContextCompleteness, v))
}

// ContextCompletenessIn applies the In predicate on the "context_completeness" field.
func ContextCompletenessIn(vs ...float64) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldIn(FieldContextCompleteness, vs...))
}

// ContextCompletenessNotIn applies the NotIn predicate on the "context_completeness" field.
func ContextCompletenessNotIn(vs ...float64) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldNotIn(FieldContextCompleteness, vs...))
}

// ContextCompletenessGT applies the GT predicate on the "context_completeness" field.
func ContextCompletenessGT(v float64) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldGT(FieldContextCompleteness, v))
}

// ContextCompletenessGTE applies the GTE predicate on the "context_completeness" field.
func ContextCompletenessGTE(v float64) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldGTE(FieldContextCompleteness, v))
}

// ContextCompletenessLT applies the LT predicate on the "context_completeness" field.
func ContextCompletenessLT(v float64) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldLT(FieldContextCompleteness, v))
}

// ContextCompletenessLTE applies the LTE predicate on the "context_completeness" field.
func ContextCompletenessLTE(v float64) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldLTE(FieldContextCompleteness, v))
}

// ProviderBreakdownIsNil applies the IsNil predicate on the "provider_breakdown" field.
func ProviderBreakdownIsNil() predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldIsNull(FieldProviderBreakdown))
}

// ProviderBreakdownNotNil applies the NotNil predicate on the "provider_breakdown" field.
func ProviderBreakdownNotNil() predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldNotNull(FieldProviderBreakdown))
}

// CategoryBreakdownIsNil applies the IsNil predicate on the "category_breakdown" field.
func CategoryBreakdownIsNil() predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldIsNull(FieldCategoryBreakdown))
}

// CategoryBreakdownNotNil applies the NotNil predicate on the "category_breakdown" field.
func CategoryBreakdownNotNil() predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldNotNull(FieldCategoryBreakdown))
}

// CompetitorMentionsIsNil applies the IsNil predicate on the "competitor_mentions" field.
func CompetitorMentionsIsNil() predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldIsNull(FieldCompetitorMentions))
}

// CompetitorMentionsNotNil applies the NotNil predicate on the "competitor_mentions" field.
func CompetitorMentionsNotNil() predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldNotNull(FieldCompetitorMentions))
}

// TotalResponsesEQ applies the EQ predicate on the "total_responses" field.
func TotalResponsesEQ(v int) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldEQ(FieldTotalResponses, v))
}

// TotalResponsesNEQ applies the NEQ predicate on the "total_responses" field.
func TotalResponsesNEQ(v int) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldNEQ(FieldTotalResponses, v))
}

// TotalResponsesIn applies the In predicate on the "total_responses" field.
func TotalResponsesIn(vs ...int) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldIn(FieldTotalResponses, vs...))
}

// TotalResponsesNotIn applies the NotIn predicate on the "total_responses" field.
func TotalResponsesNotIn(vs ...int) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldNotIn(FieldTotalResponses, vs...))
}

// TotalResponsesGT applies the GT predicate on the "total_responses" field.
func TotalResponsesGT(v int) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldGT(FieldTotalResponses, v))
}

// TotalResponsesGTE applies the GTE predicate on the "total_responses" field.
func TotalResponsesGTE(v int) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldGTE(FieldTotalResponses, v))
}

// TotalResponsesLT applies the LT predicate on the "total_responses" field.
func TotalResponsesLT(v int) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldLT(FieldTotalResponses, v))
}

// TotalResponsesLTE applies the LTE predicate on the "total_responses" field.
func TotalResponsesLTE(v int) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldLTE(FieldTotalResponses, v))
}

// AnalyzedResponsesEQ applies the EQ predicate on the "analyzed_responses" field.
func AnalyzedResponsesEQ(v int) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldEQ(FieldAnalyzedResponses, v))
}

// AnalyzedResponsesNEQ applies the NEQ predicate on the "analyzed_responses" field.
func AnalyzedResponsesNEQ(v int) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldNEQ(FieldAnalyzedResponses, v))
}

// AnalyzedResponsesIn applies the In predicate on the "analyzed_responses" field.
func AnalyzedResponsesIn(vs ...int) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldIn(FieldAnalyzedResponses, vs...))
}

// AnalyzedResponsesNotIn applies the NotIn predicate on the "analyzed_responses" field.
func AnalyzedResponsesNotIn(vs ...int) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldNotIn(FieldAnalyzedResponses, vs...))
}

// AnalyzedResponsesGT applies the GT predicate on the "analyzed_responses" field.
func AnalyzedResponsesGT(v int) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldGT(FieldAnalyzedResponses, v))
}

// AnalyzedResponsesGTE applies the GTE predicate on the "analyzed_responses" field.
func AnalyzedResponsesGTE(v int) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldGTE(FieldAnalyzedResponses, v))
}

// AnalyzedResponsesLT applies the LT predicate on the "analyzed_responses" field.
func AnalyzedResponsesLT(v int) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldLT(FieldAnalyzedResponses, v))
}

// AnalyzedResponsesLTE applies the LTE predicate on the "analyzed_responses" field.
func AnalyzedResponsesLTE(v int) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldLTE(FieldAnalyzedResponses, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.FieldLTE(FieldCreatedAt, v))
}

// HasAudit applies the HasEdge predicate on the "audit" edge.
func HasAudit() predicate.AuditAggregate {
	return predicate.AuditAggregate(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, AuditTable, AuditColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAuditWith applies the HasEdge predicate on the "audit" edge with a given conditions (other predicates).
func HasAuditWith(preds ...predicate.Audit) predicate.AuditAggregate {
	return predicate.AuditAggregate(func(s *sql.Selector) {
		step := newAuditStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AuditAggregate) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AuditAggregate) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AuditAggregate) predicate.AuditAggregate {
	return predicate.AuditAggregate(sql.NotPredicates(p))
}
