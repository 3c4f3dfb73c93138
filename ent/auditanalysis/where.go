// Code generated by ent, DO NOT EDIT.

package auditanalysis

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/specularhq/specular/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldContainsFold(FieldID, id))
}

// AuditID applies equality check predicate on the "audit_id" field. It's identical to AuditIDEQ.
func AuditID(v string) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldEQ(FieldAuditID, v))
}

// ResponseID applies equality check predicate on the "response_id" field. It's identical to ResponseIDEQ.
func ResponseID(v string) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldEQ(FieldResponseID, v))
}

// Provider applies equality check predicate on the "provider" field. It's identical to ProviderEQ.
func Provider(v string) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldEQ(FieldProvider, v))
}

// BrandMentioned applies equality check predicate on the "brand_mentioned" field. It's identical to BrandMentionedEQ.
func BrandMentioned(v bool) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldEQ(FieldBrandMentioned, v))
}

// FirstPosition applies equality check predicate on the "first_position" field. It's identical to FirstPositionEQ.
func FirstPosition(v int) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldEQ(FieldFirstPosition, v))
}

// SentimentScore applies equality check predicate on the "sentiment_score" field. It's identical to SentimentScoreEQ.
func SentimentScore(v float64) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldEQ(FieldSentimentScore, v))
}

// GeoScore applies equality check predicate on the "geo_score" field. It's identical to GeoScoreEQ.
func GeoScore(v float64) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldEQ(FieldGeoScore, v))
}

// SovScore applies equality check predicate on the "sov_score" field. It's identical to SovScoreEQ.
func SovScore(v float64) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldEQ(FieldSovScore, v))
}

// ContextCompleteness applies equality check predicate on the "context_completeness" field. It's identical to ContextCompletenessEQ.
func ContextCompleteness(v float64) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldEQ(FieldContextCompleteness, v))
}

// RecommendationSignal applies equality check predicate on the "recommendation_signal" field. It's identical to RecommendationSignalEQ.
func RecommendationSignal(v float64) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldEQ(FieldRecommendationSignal, v))
}

// Errored applies equality check predicate on the "errored" field. It's identical to ErroredEQ.
func Errored(v bool) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldEQ(FieldErrored, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldEQ(FieldErrorMessage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldEQ(FieldCreatedAt, v))
}

// AuditIDEQ applies the EQ predicate on the "audit_id" field.
func AuditIDEQ(v string) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldEQ(FieldAuditID, v))
}

// AuditIDNEQ applies the NEQ predicate on the "audit_id" field.
func AuditIDNEQ(v string) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldNEQ(FieldAuditID, v))
}

// AuditIDIn applies the In predicate on the "audit_id" field.
func AuditIDIn(vs ...string) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldIn(FieldAuditID, vs...))
}

// AuditIDNotIn applies the NotIn predicate on the "audit_id" field.
func AuditIDNotIn(vs ...string) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldNotIn(FieldAuditID, vs...))
}

// AuditIDGT applies the GT predicate on the "audit_id" field.
func AuditIDGT(v string) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldGT(FieldAuditID, v))
}

// AuditIDGTE applies the GTE predicate on the "audit_id" field.
func AuditIDGTE(v string) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldGTE(FieldAuditID, v))
}

// AuditIDLT applies the LT predicate on the "audit_id" field.
func AuditIDLT(v string) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldLT(FieldAuditID, v))
}

// AuditIDLTE applies the LTE predicate on the "audit_id" field.
func AuditIDLTE(v string) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldLTE(FieldAuditID, v))
}

// AuditIDContains applies the Contains predicate on the "audit_id" field.
func AuditIDContains(v string) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldContains(FieldAuditID, v))
}

// AuditIDHasPrefix applies the HasPrefix predicate on the "audit_id" field.
func AuditIDHasPrefix(v string) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldHasPrefix(FieldAuditID, v))
}

// AuditIDHasSuffix applies the HasSuffix predicate on the "audit_id" field.
func AuditIDHasSuffix(v string) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldHasSuffix(FieldAuditID, v))
}

// AuditIDEqualFold applies the EqualFold predicate on the "audit_id" field.
func AuditIDEqualFold(v string) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldEqualFold(FieldAuditID, v))
}

// AuditIDContainsFold applies the ContainsFold predicate on the "audit_id" field.
func AuditIDContainsFold(v string) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldContainsFold(FieldAuditID, v))
}

// ResponseIDEQ applies the EQ predicate on the "response_id" field.
func ResponseIDEQ(v string) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldEQ(FieldResponseID, v))
}

// ResponseIDNEQ applies the NEQ predicate on the "response_id" field.
func ResponseIDNEQ(v string) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldNEQ(FieldResponseID, v))
}

// ResponseIDIn applies the In predicate on the "response_id" field.
func ResponseIDIn(vs ...string) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldIn(FieldResponseID, vs...))
}

// ResponseIDNotIn applies the NotIn predicate on the "response_id" field.
func ResponseIDNotIn(vs ...string) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldNotIn(FieldResponseID, vs...))
}

// ResponseIDGT applies the GT predicate on the "response_id" field.
func ResponseIDGT(v string) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldGT(FieldResponseID, v))
}

// ResponseIDGTE applies the GTE predicate on the "response_id" field.
func ResponseIDGTE(v string) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldGTE(FieldResponseID, v))
}

// ResponseIDLT applies the LT predicate on the "response_id" field.
func ResponseIDLT(v string) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldLT(FieldResponseID, v))
}

// ResponseIDLTE applies the LTE predicate on the "response_id" field.
func ResponseIDLTE(v string) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldLTE(FieldResponseID, v))
}

// ResponseIDContains applies the Contains predicate on the "response_id" field.
func ResponseIDContains(v string) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldContains(FieldResponseID, v))
}

// ResponseIDHasPrefix applies the HasPrefix predicate on the "response_id" field.
func ResponseIDHasPrefix(v string) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldHasPrefix(FieldResponseID, v))
}

// ResponseIDHasSuffix applies the HasSuffix predicate on the "response_id" field.
func ResponseIDHasSuffix(v string) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldHasSuffix(FieldResponseID, v))
}

// ResponseIDEqualFold applies the EqualFold predicate on the "response_id" field.
func ResponseIDEqualFold(v string) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldEqualFold(FieldResponseID, v))
}

// ResponseIDContainsFold applies the ContainsFold predicate on the "response_id" field.
func ResponseIDContainsFold(v string) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldContainsFold(FieldResponseID, v))
}

// ProviderEQ applies the EQ predicate on the "provider" field.
func ProviderEQ(v string) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldEQ(FieldProvider, v))
}

// ProviderNEQ applies the NEQ predicate on the "provider" field.
func ProviderNEQ(v string) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldNEQ(FieldProvider, v))
}

// ProviderIn applies the In predicate on the "provider" field.
func ProviderIn(vs ...string) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldIn(FieldProvider, vs...))
}

// ProviderNotIn applies the NotIn predicate on the "provider" field.
func ProviderNotIn(vs ...string) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldNotIn(FieldProvider, vs...))
}

// ProviderGT applies the GT predicate on the "provider" field.
func ProviderGT(v string) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldGT(FieldProvider, v))
}

// ProviderGTE applies the GTE predicate on the "provider" field.
func ProviderGTE(v string) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldGTE(FieldProvider, v))
}

// ProviderLT applies the LT predicate on the "provider" field.
func ProviderLT(v string) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldLT(FieldProvider, v))
}

// ProviderLTE applies the LTE predicate on the "provider" field.
func ProviderLTE(v string) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldLTE(FieldProvider, v))
}

// ProviderContains applies the Contains predicate on the "provider" field.
func ProviderContains(v string) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldContains(FieldProvider, v))
}

// ProviderHasPrefix applies the HasPrefix predicate on the "provider" field.
func ProviderHasPrefix(v string) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldHasPrefix(FieldProvider, v))
}

// ProviderHasSuffix applies the HasSuffix predicate on the "provider" field.
func ProviderHasSuffix(v string) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldHasSuffix(FieldProvider, v))
}

// ProviderEqualFold applies the EqualFold predicate on the "provider" field.
func ProviderEqualFold(v string) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldEqualFold(FieldProvider, v))
}

// ProviderContainsFold applies the ContainsFold predicate on the "provider" field.
func ProviderContainsFold(v string) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldContainsFold(FieldProvider, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v Category) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v Category) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...Category) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...Category) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldNotIn(FieldCategory, vs...))
}

// BrandMentionedEQ applies the EQ predicate on the "brand_mentioned" field.
func BrandMentionedEQ(v bool) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldEQ(FieldBrandMentioned, v))
}

// BrandMentionedNEQ applies the NEQ predicate on the "brand_mentioned" field.
func BrandMentionedNEQ(v bool) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldNEQ(FieldBrandMentioned, v))
}

// FirstPositionEQ applies the EQ predicate on the "first_position" field.
func FirstPositionEQ(v int) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldEQ(FieldFirstPosition, v))
}

// FirstPositionNEQ applies the NEQ predicate on the "first_position" field.
func FirstPositionNEQ(v int) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldNEQ(FieldFirstPosition, v))
}

// FirstPositionIn applies the In predicate on the "first_position" field.
func FirstPositionIn(vs ...int) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldIn(FieldFirstPosition, vs...))
}

// FirstPositionNotIn applies the NotIn predicate on the "first_position" field.
func FirstPositionNotIn(vs ...int) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldNotIn(FieldFirstPosition, vs...))
}

// FirstPositionGT applies the GT predicate on the "first_position" field.
func FirstPositionGT(v int) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldGT(FieldFirstPosition, v))
}

// FirstPositionGTE applies the GTE predicate on the "first_position" field.
func FirstPositionGTE(v int) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldGTE(FieldFirstPosition, v))
}

// FirstPositionLT applies the LT predicate on the "first_position" field.
func FirstPositionLT(v int) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldLT(FieldFirstPosition, v))
}

// FirstPositionLTE applies the LTE predicate on the "first_position" field.
func FirstPositionLTE(v int) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldLTE(FieldFirstPosition, v))
}

// FirstPositionIsNil applies the IsNil predicate on the "first_position" field.
func FirstPositionIsNil() predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldIsNull(FieldFirstPosition))
}

// FirstPositionNotNil applies the NotNil predicate on the "first_position" field.
func FirstPositionNotNil() predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldNotNull(FieldFirstPosition))
}

// SentimentEQ applies the EQ predicate on the "sentiment" field.
func SentimentEQ(v Sentiment) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldEQ(FieldSentiment, v))
}

// SentimentNEQ applies the NEQ predicate on the "sentiment" field.
func SentimentNEQ(v Sentiment) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldNEQ(FieldSentiment, v))
}

// SentimentIn applies the In predicate on the "sentiment" field.
func SentimentIn(vs ...Sentiment) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldIn(FieldSentiment, vs...))
}

// SentimentNotIn applies the NotIn predicate on the "sentiment" field.
func SentimentNotIn(vs ...Sentiment) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldNotIn(FieldSentiment, vs...))
}

// SentimentIsNil applies the IsNil predicate on the "sentiment" field.
func SentimentIsNil() predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldIsNull(FieldSentiment))
}

// SentimentNotNil applies the NotNil predicate on the "sentiment" field.
func SentimentNotNil() predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldNotNull(FieldSentiment))
}

// SentimentScoreEQ applies the EQ predicate on the "sentiment_score" field.
func SentimentScoreEQ(v float64) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldEQ(FieldSentimentScore, v))
}

// SentimentScoreNEQ applies the NEQ predicate on the "sentiment_score" field.
func SentimentScoreNEQ(v float64) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldNEQ(FieldSentimentScore, v))
}

// SentimentScoreIn applies the In predicate on the "sentiment_score" field.
func SentimentScoreIn(vs ...float64) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldIn(FieldSentimentScore, vs...))
}

// SentimentScoreNotIn applies the NotIn predicate on the "sentiment_score" field.
func SentimentScoreNotIn(vs ...float64) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldNotIn(FieldSentimentScore, vs...))
}

// SentimentScoreGT applies the GT predicate on the "sentiment_score" field.
func SentimentScoreGT(v float64) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldGT(FieldSentimentScore, v))
}

// SentimentScoreGTE applies the GTE predicate on the "sentiment_score" field.
func SentimentScoreGTE(v float64) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldGTE(FieldSentimentScore, v))
}

// SentimentScoreLT applies the LT predicate on the "sentiment_score" field.
func SentimentScoreLT(v float64) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldLT(FieldSentimentScore, v))
}

// SentimentScoreLTE applies the LTE predicate on the "sentiment_score" field.
func SentimentScoreLTE(v float64) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldLTE(FieldSentimentScore, v))
}

// CompetitorsMentionedIsNil applies the IsNil predicate on the "competitors_mentioned" field.
func CompetitorsMentionedIsNil() predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldIsNull(FieldCompetitorsMentioned))
}

// CompetitorsMentionedNotNil applies the NotNil predicate on the "competitors_mentioned" field.
func CompetitorsMentionedNotNil() predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldNotNull(FieldCompetitorsMentioned))
}

// GeoScoreEQ applies the EQ predicate on the "geo_score" field.
func GeoScoreEQ(v float64) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldEQ(FieldGeoScore, v))
}

// GeoScoreNEQ applies the NEQ predicate on the "geo_score" field.
func GeoScoreNEQ(v float64) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldNEQ(FieldGeoScore, v))
}

// GeoScoreIn applies the In predicate on the "geo_score" field.
func GeoScoreIn(vs ...float64) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldIn(FieldGeoScore, vs...))
}

// GeoScoreNotIn applies the NotIn predicate on the "geo_score" field.
func GeoScoreNotIn(vs ...float64) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldNotIn(FieldGeoScore, vs...))
}

// GeoScoreGT applies the GT predicate on the "geo_score" field.
func GeoScoreGT(v float64) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldGT(FieldGeoScore, v))
}

// GeoScoreGTE applies the GTE predicate on the "geo_score" field.
func GeoScoreGTE(v float64) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldGTE(FieldGeoScore, v))
}

// GeoScoreLT applies the LT predicate on the "geo_score" field.
func GeoScoreLT(v float64) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldLT(FieldGeoScore, v))
}

// GeoScoreLTE applies the LTE predicate on the "geo_score" field.
func GeoScoreLTE(v float64) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldLTE(FieldGeoScore, v))
}

// SovScoreEQ applies the EQ predicate on the "sov_score" field.
func SovScoreEQ(v float64) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldEQ(FieldSovScore, v))
}

// SovScoreNEQ applies the NEQ predicate on the "sov_score" field.
func SovScoreNEQ(v float64) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldNEQ(FieldSovScore, v))
}

// SovScoreIn applies the In predicate on the "sov_score" field.
func SovScoreIn(vs ...float64) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldIn(FieldSovScore, vs...))
}

// SovScoreNotIn applies the NotIn predicate on the "sov_score" field.
func SovScoreNotIn(vs ...float64) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldNotIn(FieldSovScore, vs...))
}

// SovScoreGT applies the GT predicate on the "sov_score" field.
func SovScoreGT(v float64) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldGT(FieldSovScore, v))
}

// SovScoreGTE applies the GTE predicate on the "sov_score" field.
func SovScoreGTE(v float64) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldGTE(FieldSovScore, v))
}

// SovScoreLT applies the LT predicate on the "sov_score" field.
func SovScoreLT(v float64) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldLT(FieldSovScore, v))
}

// SovScoreLTE applies the LTE predicate on the "sov_score" field.
func SovScoreLTE(v float64) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldLTE(FieldSovScore, v))
}

// ContextCompletenessEQ applies the EQ predicate on the "context_completeness" field.
func ContextCompletenessEQ(v float64) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldEQ(FieldContextCompleteness, v))
}

// ContextCompletenessNEQ applies the NEQ predicate on the "context_completeness" field.
func ContextCompletenessNEQ(v float64) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldNEQ(FieldContextCompleteness, v))
}

// ContextCompletenessIn applies the In predicate on the "context_completeness" field.
func ContextCompletenessIn(vs ...float64) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldIn(FieldContextCompleteness, vs...))
}

// ContextCompletenessNotIn applies the NotIn predicate on the "context_completeness" field.
func ContextCompletenessNotIn(vs ...float64) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldNotIn(FieldContextCompleteness, vs...))
}

// ContextCompletenessGT applies the GT predicate on the "context_completeness" field.
func ContextCompletenessGT(v float64) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldGT(FieldContextCompleteness, v))
}

// ContextCompletenessGTE applies the GTE predicate on the "context_completeness" field.
func ContextCompletenessGTE(v float64) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldGTE(FieldContextCompleteness, v))
}

// ContextCompletenessLT applies the LT predicate on the "context_completeness" field.
func ContextCompletenessLT(v float64) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldLT(FieldContextCompleteness, v))
}

// ContextCompletenessLTE applies the LTE predicate on the "context_completeness" field.
func ContextCompletenessLTE(v float64) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldLTE(FieldContextCompleteness, v))
}

// RecommendationSignalEQ applies the EQ predicate on the "recommendation_signal" field.
func RecommendationSignalEQ(v float64) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldEQ(FieldRecommendationSignal, v))
}

// RecommendationSignalNEQ applies the NEQ predicate on the "recommendation_signal" field.
func RecommendationSignalNEQ(v float64) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldNEQ(FieldRecommendationSignal, v))
}

// RecommendationSignalIn applies the In predicate on the "recommendation_signal" field.
func RecommendationSignalIn(vs ...float64) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldIn(FieldRecommendationSignal, vs...))
}

// RecommendationSignalNotIn applies the NotIn predicate on the "recommendation_signal" field.
func RecommendationSignalNotIn(vs ...float64) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldNotIn(FieldRecommendationSignal, vs...))
}

// RecommendationSignalGT applies the GT predicate on the "recommendation_signal" field.
func RecommendationSignalGT(v float64) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldGT(FieldRecommendationSignal, v))
}

// RecommendationSignalGTE applies the GTE predicate on the "recommendation_signal" field.
func RecommendationSignalGTE(v float64) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldGTE(FieldRecommendationSignal, v))
}

// RecommendationSignalLT applies the LT predicate on the "recommendation_signal" field.
func RecommendationSignalLT(v float64) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldLT(FieldRecommendationSignal, v))
}

// RecommendationSignalLTE applies the LTE predicate on the "recommendation_signal" field.
func RecommendationSignalLTE(v float64) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldLTE(FieldRecommendationSignal, v))
}

// RecommendationsIsNil applies the IsNil predicate on the "recommendations" field.
func RecommendationsIsNil() predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldIsNull(FieldRecommendations))
}

// RecommendationsNotNil applies the NotNil predicate on the "recommendations" field.
func RecommendationsNotNil() predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldNotNull(FieldRecommendations))
}

// ErroredEQ applies the EQ predicate on the "errored" field.
func ErroredEQ(v bool) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldEQ(FieldErrored, v))
}

// ErroredNEQ applies the NEQ predicate on the "errored" field.
func ErroredNEQ(v bool) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldNEQ(FieldErrored, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldContainsFold(FieldErrorMessage, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.FieldLTE(FieldCreatedAt, v))
}

// HasAudit applies the HasEdge predicate on the "audit" edge.
func HasAudit() predicate.AuditAnalysis {
	return predicate.AuditAnalysis(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AuditTable, AuditColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAuditWith applies the HasEdge predicate on the "audit" edge with a given conditions (other predicates).
func HasAuditWith(preds ...predicate.Audit) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(func(s *sql.Selector) {
		step := newAuditStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasResponse applies the HasEdge predicate on the "response" edge.
func HasResponse() predicate.AuditAnalysis {
	return predicate.AuditAnalysis(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, ResponseTable, ResponseColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasResponseWith applies the HasEdge predicate on the "response" edge with a given conditions (other predicates).
func HasResponseWith(preds ...predicate.AuditResponse) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(func(s *sql.Selector) {
		step := newResponseStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AuditAnalysis) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AuditAnalysis) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AuditAnalysis) predicate.AuditAnalysis {
	return predicate.AuditAnalysis(sql.NotPredicates(p))
}
