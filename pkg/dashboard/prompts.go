package dashboard

import (
	"fmt"
	"strings"

	"github.com/specularhq/specular/ent"
	"github.com/specularhq/specular/ent/schema"
)

// summarySystemPrompt keeps the executive summary short and factual.
const summarySystemPrompt = `You are a brand-visibility analyst writing for an executive. Reply with 3-5 plain sentences and nothing else — no headings, no lists, no markdown.`

// summaryUserTemplate is the one free-text call of the pipeline.
// %s = brand name, %s = scorecard block, %s = competitor block, %s = top actions.
const summaryUserTemplate = `Summarize this AI-visibility audit for the leadership of "%s".

Scorecard (0-100):
%s

Competitor picture:
%s

Top actions already identified:
%s

Cover how visible the brand is in AI assistant answers, where it stands against competitors, and what matters most to fix. Do not invent numbers that are not listed above.`

func buildSummaryPrompt(company *ent.Company, agg *ent.AuditAggregate, landscape schema.CompetitorLandscape, top []schema.RankedRecommendation) string {
	var scores strings.Builder
	fmt.Fprintf(&scores, "  - Overall: %.2f\n", agg.OverallScore)
	fmt.Fprintf(&scores, "  - Generative engine optimization: %.2f\n", agg.GeoScore)
	fmt.Fprintf(&scores, "  - Share of voice: %.2f\n", agg.SovScore)
	fmt.Fprintf(&scores, "  - Recommendation strength: %.2f\n", agg.RecommendationScore)
	fmt.Fprintf(&scores, "  - Sentiment: %.2f\n", agg.SentimentScore)
	fmt.Fprintf(&scores, "  - Visibility: %.2f (mentioned in %d of %d analyzed answers)", agg.VisibilityScore, landscape.BrandMentions, agg.AnalyzedResponses)

	competitors := "  - no competitors surfaced"
	if len(landscape.Top) > 0 {
		var sb strings.Builder
		for i, c := range landscape.Top {
			if i > 0 {
				sb.WriteString("\n")
			}
			fmt.Fprintf(&sb, "  - %s: mentioned %d times (%.2f%% share)", c.Name, c.Mentions, c.Share)
		}
		competitors = sb.String()
	}

	actions := "  - none identified"
	if len(top) > 0 {
		var sb strings.Builder
		for i, r := range top {
			if i == 3 {
				break
			}
			if i > 0 {
				sb.WriteString("\n")
			}
			sb.WriteString("  - ")
			sb.WriteString(r.Text)
		}
		actions = sb.String()
	}

	return fmt.Sprintf(summaryUserTemplate, company.Name, scores.String(), competitors, actions)
}
