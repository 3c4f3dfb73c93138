package models

import (
	"math"
	"strings"

	"github.com/specularhq/specular/ent/schema"
)

// Categories is the closed buyer-journey set: queries are balanced across it
// and insights are grouped by it.
var Categories = []string{
	"problem_unaware",
	"problem_aware",
	"solution_aware",
	"product_aware",
	"most_aware",
	"brand_defense",
}

// NormalizeText is the canonical lowercased-trimmed form used as a dedupe
// key: per-audit query uniqueness and recommendation merging both key on it.
func NormalizeText(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

// Round2 rounds to two decimal places, the precision every persisted score
// carries.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// GeneratedQuery is one query produced by the generator, bound for an
// audit_queries row.
type GeneratedQuery struct {
	Text     string         `json:"text"`
	Category string         `json:"category"` // one of the six funnel categories
	Intent   string         `json:"intent,omitempty"`
	Priority float64        `json:"priority"` // 0..1
	Metadata map[string]any `json:"metadata,omitempty"`
}

// ResponseCell is one provider's reply (or failure) for one query.
// Failed cells carry an error kind and empty text.
type ResponseCell struct {
	AuditID      string   `json:"audit_id"`
	QueryID      string   `json:"query_id"`
	Provider     string   `json:"provider"`
	Model        string   `json:"model,omitempty"`
	Text         string   `json:"text"`
	LatencyMs    int      `json:"latency_ms"`
	InputTokens  int      `json:"input_tokens"`
	OutputTokens int      `json:"output_tokens"`
	CostEstimate *float64 `json:"cost_estimate,omitempty"`
	ErrorKind    string   `json:"error_kind,omitempty"` // transient, permanent, quota, data, fatal
	ErrorMessage string   `json:"error_message,omitempty"`
}

// AnalysisRecord is the per-response analysis result bound for an
// audit_analyses row.
type AnalysisRecord struct {
	AuditID              string                     `json:"audit_id"`
	ResponseID           string                     `json:"response_id"`
	Provider             string                     `json:"provider"`
	Category             string                     `json:"category"`
	BrandMentioned       bool                       `json:"brand_mentioned"`
	FirstPosition        *int                       `json:"first_position,omitempty"`
	Sentiment            string                     `json:"sentiment,omitempty"` // positive, neutral, negative
	SentimentScore       float64                    `json:"sentiment_score"`     // -1..1
	Competitors          []schema.CompetitorMention `json:"competitors,omitempty"`
	GeoScore             float64                    `json:"geo_score"`
	SovScore             float64                    `json:"sov_score"`
	ContextCompleteness  float64                    `json:"context_completeness"`
	RecommendationSignal float64                    `json:"recommendation_signal"`
	Recommendations      []string                   `json:"recommendations,omitempty"`
	Errored              bool                       `json:"errored"`
	ErrorMessage         string                     `json:"error_message,omitempty"`
}

// AggregateRecord is the audit-level score roll-up bound for the
// audit_aggregates row.
type AggregateRecord struct {
	AuditID             string                            `json:"audit_id"`
	Overall             float64                           `json:"overall"`
	Geo                 float64                           `json:"geo"`
	Sov                 float64                           `json:"sov"`
	Recommendation      float64                           `json:"recommendation"`
	Sentiment           float64                           `json:"sentiment"` // mean sentiment rescaled to 0..100
	Visibility          float64                           `json:"visibility"`
	ContextCompleteness float64                           `json:"context_completeness"`
	ProviderBreakdown   map[string]schema.ScoreBreakdown  `json:"provider_breakdown,omitempty"`
	CategoryBreakdown   map[string]schema.ScoreBreakdown  `json:"category_breakdown,omitempty"`
	CompetitorMentions  map[string]int                    `json:"competitor_mentions,omitempty"`
	TotalResponses      int                               `json:"total_responses"`
	AnalyzedResponses   int                               `json:"analyzed_responses"`
}

// DashboardRecord is the UI-ready snapshot bound for the audit_dashboard row.
type DashboardRecord struct {
	AuditID             string                        `json:"audit_id"`
	Scores              schema.DashboardScores        `json:"scores"`
	Recommendations     []schema.RankedRecommendation `json:"recommendations,omitempty"`
	CompetitorLandscape schema.CompetitorLandscape    `json:"competitor_landscape"`
	CategoryInsights    []schema.CategoryInsight      `json:"category_insights,omitempty"`
	ExecutiveSummary    string                        `json:"executive_summary"`
}
