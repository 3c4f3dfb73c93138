// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/specularhq/specular/ent/audit"
	"github.com/specularhq/specular/ent/auditaggregate"
	"github.com/specularhq/specular/ent/auditanalysis"
	"github.com/specularhq/specular/ent/auditdashboard"
	"github.com/specularhq/specular/ent/auditevent"
	"github.com/specularhq/specular/ent/auditquery"
	"github.com/specularhq/specular/ent/auditresponse"
	"github.com/specularhq/specular/ent/company"
	"github.com/specularhq/specular/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	auditFields := schema.Audit{}.Fields()
	_ = auditFields
	// auditDescCreatedAt is the schema descriptor for created_at field.
	auditDescCreatedAt := auditFields[9].Descriptor()
	// audit.DefaultCreatedAt holds the default value on creation for the created_at field.
	audit.DefaultCreatedAt = auditDescCreatedAt.Default.(func() time.Time)
	auditaggregateFields := schema.AuditAggregate{}.Fields()
	_ = auditaggregateFields
	// auditaggregateDescOverallScore is the schema descriptor for overall_score field.
	auditaggregateDescOverallScore := auditaggregateFields[2].Descriptor()
	// auditaggregate.DefaultOverallScore holds the default value on creation for the overall_score field.
	auditaggregate.DefaultOverallScore = auditaggregateDescOverallScore.Default.(float64)
	// auditaggregateDescGeoScore is the schema descriptor for geo_score field.
	auditaggregateDescGeoScore := auditaggregateFields[3].Descriptor()
	// auditaggregate.DefaultGeoScore holds the default value on creation for the geo_score field.
	auditaggregate.DefaultGeoScore = auditaggregateDescGeoScore.Default.(float64)
	// auditaggregateDescSovScore is the schema descriptor for sov_score field.
	auditaggregateDescSovScore := auditaggregateFields[4].Descriptor()
	// auditaggregate.DefaultSovScore holds the default value on creation for the sov_score field.
	auditaggregate.DefaultSovScore = auditaggregateDescSovScore.Default.(float64)
	// auditaggregateDescRecommendationScore is the schema descriptor for recommendation_score field.
	auditaggregateDescRecommendationScore := auditaggregateFields[5].Descriptor()
	// auditaggregate.DefaultRecommendationScore holds the default value on creation for the recommendation_score field.
	auditaggregate.DefaultRecommendationScore = auditaggregateDescRecommendationScore.Default.(float64)
	// auditaggregateDescSentimentScore is the schema descriptor for sentiment_score field.
	auditaggregateDescSentimentScore := auditaggregateFields[6].Descriptor()
	// auditaggregate.DefaultSentimentScore holds the default value on creation for the sentiment_score field.
	auditaggregate.DefaultSentimentScore = auditaggregateDescSentimentScore.Default.(float64)
	// auditaggregateDescVisibilityScore is the schema descriptor for visibility_score field.
	auditaggregateDescVisibilityScore := auditaggregateFields[7].Descriptor()
	// auditaggregate.DefaultVisibilityScore holds the default value on creation for the visibility_score field.
	auditaggregate.DefaultVisibilityScore = auditaggregateDescVisibilityScore.Default.(float64)
	// auditaggregateDescContextCompleteness is the schema descriptor for context_completeness field.
	auditaggregateDescContextCompleteness := auditaggregateFields[8].Descriptor()
	// auditaggregate.DefaultContextCompleteness holds the default value on creation for the context_completeness field.
	auditaggregate.DefaultContextCompleteness = auditaggregateDescContextCompleteness.Default.(float64)
	// auditaggregateDescTotalResponses is the schema descriptor for total_responses field.
	auditaggregateDescTotalResponses := auditaggregateFields[12].Descriptor()
	// auditaggregate.DefaultTotalResponses holds the default value on creation for the total_responses field.
	auditaggregate.DefaultTotalResponses = auditaggregateDescTotalResponses.Default.(int)
	// auditaggregateDescAnalyzedResponses is the schema descriptor for analyzed_responses field.
	auditaggregateDescAnalyzedResponses := auditaggregateFields[13].Descriptor()
	// auditaggregate.DefaultAnalyzedResponses holds the default value on creation for the analyzed_responses field.
	auditaggregate.DefaultAnalyzedResponses = auditaggregateDescAnalyzedResponses.Default.(int)
	// auditaggregateDescCreatedAt is the schema descriptor for created_at field.
	auditaggregateDescCreatedAt := auditaggregateFields[14].Descriptor()
	// auditaggregate.DefaultCreatedAt holds the default value on creation for the created_at field.
	auditaggregate.DefaultCreatedAt = auditaggregateDescCreatedAt.Default.(func() time.Time)
	auditanalysisFields := schema.AuditAnalysis{}.Fields()
	_ = auditanalysisFields
	// auditanalysisDescProvider is the schema descriptor for provider field.
	auditanalysisDescProvider := auditanalysisFields[3].Descriptor()
	// auditanalysis.ProviderValidator is a validator for the "provider" field. It is called by the builders before save.
	auditanalysis.ProviderValidator = auditanalysisDescProvider.Validators[0].(func(string) error)
	// auditanalysisDescBrandMentioned is the schema descriptor for brand_mentioned field.
	auditanalysisDescBrandMentioned := auditanalysisFields[5].Descriptor()
	// auditanalysis.DefaultBrandMentioned holds the default value on creation for the brand_mentioned field.
	auditanalysis.DefaultBrandMentioned = auditanalysisDescBrandMentioned.Default.(bool)
	// auditanalysisDescSentimentScore is the schema descriptor for sentiment_score field.
	auditanalysisDescSentimentScore := auditanalysisFields[8].Descriptor()
	// auditanalysis.DefaultSentimentScore holds the default value on creation for the sentiment_score field.
	auditanalysis.DefaultSentimentScore = auditanalysisDescSentimentScore.Default.(float64)
	// auditanalysisDescGeoScore is the schema descriptor for geo_score field.
	auditanalysisDescGeoScore := auditanalysisFields[10].Descriptor()
	// auditanalysis.DefaultGeoScore holds the default value on creation for the geo_score field.
	auditanalysis.DefaultGeoScore = auditanalysisDescGeoScore.Default.(float64)
	// auditanalysisDescSovScore is the schema descriptor for sov_score field.
	auditanalysisDescSovScore := auditanalysisFields[11].Descriptor()
	// auditanalysis.DefaultSovScore holds the default value on creation for the sov_score field.
	auditanalysis.DefaultSovScore = auditanalysisDescSovScore.Default.(float64)
	// auditanalysisDescContextCompleteness is the schema descriptor for context_completeness field.
	auditanalysisDescContextCompleteness := auditanalysisFields[12].Descriptor()
	// auditanalysis.DefaultContextCompleteness holds the default value on creation for the context_completeness field.
	auditanalysis.DefaultContextCompleteness = auditanalysisDescContextCompleteness.Default.(float64)
	// auditanalysisDescRecommendationSignal is the schema descriptor for recommendation_signal field.
	auditanalysisDescRecommendationSignal := auditanalysisFields[13].Descriptor()
	// auditanalysis.DefaultRecommendationSignal holds the default value on creation for the recommendation_signal field.
	auditanalysis.DefaultRecommendationSignal = auditanalysisDescRecommendationSignal.Default.(float64)
	// auditanalysisDescErrored is the schema descriptor for errored field.
	auditanalysisDescErrored := auditanalysisFields[15].Descriptor()
	// auditanalysis.DefaultErrored holds the default value on creation for the errored field.
	auditanalysis.DefaultErrored = auditanalysisDescErrored.Default.(bool)
	// auditanalysisDescCreatedAt is the schema descriptor for created_at field.
	auditanalysisDescCreatedAt := auditanalysisFields[17].Descriptor()
	// auditanalysis.DefaultCreatedAt holds the default value on creation for the created_at field.
	auditanalysis.DefaultCreatedAt = auditanalysisDescCreatedAt.Default.(func() time.Time)
	auditdashboardFields := schema.AuditDashboard{}.Fields()
	_ = auditdashboardFields
	// auditdashboardDescExecutiveSummary is the schema descriptor for executive_summary field.
	auditdashboardDescExecutiveSummary := auditdashboardFields[6].Descriptor()
	// auditdashboard.DefaultExecutiveSummary holds the default value on creation for the executive_summary field.
	auditdashboard.DefaultExecutiveSummary = auditdashboardDescExecutiveSummary.Default.(string)
	// auditdashboardDescGeneratedAt is the schema descriptor for generated_at field.
	auditdashboardDescGeneratedAt := auditdashboardFields[7].Descriptor()
	// auditdashboard.DefaultGeneratedAt holds the default value on creation for the generated_at field.
	auditdashboard.DefaultGeneratedAt = auditdashboardDescGeneratedAt.Default.(func() time.Time)
	auditeventFields := schema.AuditEvent{}.Fields()
	_ = auditeventFields
	// auditeventDescChannel is the schema descriptor for channel field.
	auditeventDescChannel := auditeventFields[1].Descriptor()
	// auditevent.ChannelValidator is a validator for the "channel" field. It is called by the builders before save.
	auditevent.ChannelValidator = auditeventDescChannel.Validators[0].(func(string) error)
	// auditeventDescCreatedAt is the schema descriptor for created_at field.
	auditeventDescCreatedAt := auditeventFields[3].Descriptor()
	// auditevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	auditevent.DefaultCreatedAt = auditeventDescCreatedAt.Default.(func() time.Time)
	auditqueryFields := schema.AuditQuery{}.Fields()
	_ = auditqueryFields
	// auditqueryDescText is the schema descriptor for text field.
	auditqueryDescText := auditqueryFields[2].Descriptor()
	// auditquery.TextValidator is a validator for the "text" field. It is called by the builders before save.
	auditquery.TextValidator = auditqueryDescText.Validators[0].(func(string) error)
	// auditqueryDescTextNormalized is the schema descriptor for text_normalized field.
	auditqueryDescTextNormalized := auditqueryFields[3].Descriptor()
	// auditquery.TextNormalizedValidator is a validator for the "text_normalized" field. It is called by the builders before save.
	auditquery.TextNormalizedValidator = auditqueryDescTextNormalized.Validators[0].(func(string) error)
	// auditqueryDescPriority is the schema descriptor for priority field.
	auditqueryDescPriority := auditqueryFields[6].Descriptor()
	// auditquery.DefaultPriority holds the default value on creation for the priority field.
	auditquery.DefaultPriority = auditqueryDescPriority.Default.(float64)
	// auditqueryDescCreatedAt is the schema descriptor for created_at field.
	auditqueryDescCreatedAt := auditqueryFields[8].Descriptor()
	// auditquery.DefaultCreatedAt holds the default value on creation for the created_at field.
	auditquery.DefaultCreatedAt = auditqueryDescCreatedAt.Default.(func() time.Time)
	auditresponseFields := schema.AuditResponse{}.Fields()
	_ = auditresponseFields
	// auditresponseDescProvider is the schema descriptor for provider field.
	auditresponseDescProvider := auditresponseFields[3].Descriptor()
	// auditresponse.ProviderValidator is a validator for the "provider" field. It is called by the builders before save.
	auditresponse.ProviderValidator = auditresponseDescProvider.Validators[0].(func(string) error)
	// auditresponseDescText is the schema descriptor for text field.
	auditresponseDescText := auditresponseFields[5].Descriptor()
	// auditresponse.DefaultText holds the default value on creation for the text field.
	auditresponse.DefaultText = auditresponseDescText.Default.(string)
	// auditresponseDescLatencyMs is the schema descriptor for latency_ms field.
	auditresponseDescLatencyMs := auditresponseFields[6].Descriptor()
	// auditresponse.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	auditresponse.DefaultLatencyMs = auditresponseDescLatencyMs.Default.(int)
	// auditresponseDescInputTokens is the schema descriptor for input_tokens field.
	auditresponseDescInputTokens := auditresponseFields[7].Descriptor()
	// auditresponse.DefaultInputTokens holds the default value on creation for the input_tokens field.
	auditresponse.DefaultInputTokens = auditresponseDescInputTokens.Default.(int)
	// auditresponseDescOutputTokens is the schema descriptor for output_tokens field.
	auditresponseDescOutputTokens := auditresponseFields[8].Descriptor()
	// auditresponse.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	auditresponse.DefaultOutputTokens = auditresponseDescOutputTokens.Default.(int)
	// auditresponseDescCreatedAt is the schema descriptor for created_at field.
	auditresponseDescCreatedAt := auditresponseFields[12].Descriptor()
	// auditresponse.DefaultCreatedAt holds the default value on creation for the created_at field.
	auditresponse.DefaultCreatedAt = auditresponseDescCreatedAt.Default.(func() time.Time)
	companyFields := schema.Company{}.Fields()
	_ = companyFields
	// companyDescName is the schema descriptor for name field.
	companyDescName := companyFields[1].Descriptor()
	// company.NameValidator is a validator for the "name" field. It is called by the builders before save.
	company.NameValidator = companyDescName.Validators[0].(func(string) error)
	// companyDescDescription is the schema descriptor for description field.
	companyDescDescription := companyFields[5].Descriptor()
	// company.DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	company.DescriptionValidator = companyDescDescription.Validators[0].(func(string) error)
	// companyDescCreatedAt is the schema descriptor for created_at field.
	companyDescCreatedAt := companyFields[15].Descriptor()
	// company.DefaultCreatedAt holds the default value on creation for the created_at field.
	company.DefaultCreatedAt = companyDescCreatedAt.Default.(func() time.Time)
}
