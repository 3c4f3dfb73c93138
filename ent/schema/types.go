package schema

// Shared JSON column types. Kept here (not pkg/models) so generated ent code
// does not import packages that import ent back.

// CompetitorMention records one competitor found in a response text.
type CompetitorMention struct {
	Name     string `json:"name"`
	Position int    `json:"position"`
	Known    bool   `json:"known"`
}

// ScoreBreakdown is a per-provider or per-category score roll-up.
type ScoreBreakdown struct {
	Overall             float64 `json:"overall"`
	Geo                 float64 `json:"geo"`
	Sov                 float64 `json:"sov"`
	Recommendation      float64 `json:"recommendation"`
	Sentiment           float64 `json:"sentiment"`
	Visibility          float64 `json:"visibility"`
	ContextCompleteness float64 `json:"context_completeness"`
	Analyzed            int     `json:"analyzed"`
	BrandMentions       int     `json:"brand_mentions"`
}

// DashboardScores is the denormalized score block on the dashboard record.
type DashboardScores struct {
	Overall             float64 `json:"overall"`
	Geo                 float64 `json:"geo"`
	Sov                 float64 `json:"sov"`
	Recommendation      float64 `json:"recommendation"`
	Sentiment           float64 `json:"sentiment"`
	Visibility          float64 `json:"visibility"`
	ContextCompleteness float64 `json:"context_completeness"`
}

// RankedRecommendation is one deduplicated, priority-ranked insight item.
type RankedRecommendation struct {
	Text     string `json:"text"`
	Kind     string `json:"kind"`
	Category string `json:"category"`
	Priority int    `json:"priority"`
}

// CompetitorStanding is one competitor's share of voice across an audit.
type CompetitorStanding struct {
	Name     string  `json:"name"`
	Mentions int     `json:"mentions"`
	Share    float64 `json:"share"`
}

// CompetitorLandscape summarizes competitive presence for the dashboard.
type CompetitorLandscape struct {
	BrandMentions int                  `json:"brand_mentions"`
	TotalMentions int                  `json:"total_mentions"`
	Counts        map[string]int       `json:"counts"`
	Top           []CompetitorStanding `json:"top"`
}

// CategoryInsight is the per-buyer-journey-category dashboard block.
type CategoryInsight struct {
	Category      string   `json:"category"`
	Queries       int      `json:"queries"`
	Analyzed      int      `json:"analyzed"`
	Visibility    float64  `json:"visibility"`
	Score         float64  `json:"score"`
	Gaps          []string `json:"gaps"`
	Opportunities []string `json:"opportunities"`
}
