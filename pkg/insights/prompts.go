package insights

import (
	"fmt"
	"strings"

	"github.com/specularhq/specular/ent"
)

// extractionSystemPrompt constrains the model to strict JSON output.
const extractionSystemPrompt = `You are a brand-visibility strategist turning audit findings into actions. You always reply with a single JSON object and nothing else — no prose, no markdown fences.`

// categoryUserTemplate consolidates one buyer-journey category's findings.
// %s = brand name, %s = category, %d = analyzed count, %s = findings block.
const categoryUserTemplate = `The brand "%s" was audited on how AI assistants answer "%s" stage buyer questions. %d answers were analyzed:

%s

From these findings, produce:
- "recommendations": actions the brand should take to be represented better at this stage
- "competitive_gaps": places where competitors outshine the brand in these answers
- "content_opportunities": content the brand could publish to fill the holes

Reply with exactly this JSON shape:
{"recommendations": [{"text": "...", "priority": 8}], "competitive_gaps": [{"text": "...", "priority": 5}], "content_opportunities": [{"text": "...", "priority": 6}]}

"priority" is 1 (minor) to 10 (critical). Keep each "text" to one concrete sentence. Empty arrays are fine when the findings do not support an item.`

func buildCategoryPrompt(company *ent.Company, category string, findings []string) string {
	block := strings.Join(findings, "\n")
	return fmt.Sprintf(categoryUserTemplate, company.Name, category, len(findings), block)
}

// findingLine digests one analyzed response into a single prompt line.
func findingLine(a *ent.AuditAnalysis) string {
	var sb strings.Builder
	sb.WriteString("- provider=")
	sb.WriteString(a.Provider)
	if a.BrandMentioned {
		sb.WriteString(" brand=mentioned")
	} else {
		sb.WriteString(" brand=absent")
	}
	if a.Sentiment != nil {
		sb.WriteString(" sentiment=")
		sb.WriteString(string(*a.Sentiment))
	}
	fmt.Fprintf(&sb, " sov=%.0f geo=%.0f", a.SovScore, a.GeoScore)
	if len(a.CompetitorsMentioned) > 0 {
		names := make([]string, len(a.CompetitorsMentioned))
		for i, cm := range a.CompetitorsMentioned {
			names[i] = cm.Name
		}
		sb.WriteString(" competitors=")
		sb.WriteString(strings.Join(names, ","))
	}
	if len(a.Recommendations) > 0 {
		sb.WriteString(" notes: ")
		sb.WriteString(strings.Join(a.Recommendations, "; "))
	}
	return sb.String()
}
