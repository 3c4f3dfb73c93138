package analyzer

import (
	"fmt"
	"strings"

	"github.com/specularhq/specular/ent"
	"github.com/specularhq/specular/pkg/models"
)

// analysisSystemPrompt constrains the model to strict JSON output.
const analysisSystemPrompt = `You are a brand-visibility analyst reviewing answers written by AI assistants. You always reply with a single JSON object and nothing else — no prose, no markdown fences.`

// sentimentUserTemplate classifies how the answer portrays the brand.
// %s = brand name, %s = response text.
const sentimentUserTemplate = `Assess the sentiment toward the brand "%s" in the following AI assistant answer. If the brand is not mentioned, assess the overall tone of the answer toward products in its space.

Answer:
"""
%s
"""

Reply with exactly this JSON shape:
{"sentiment": "positive", "score": 0.6}

"sentiment" must be one of: positive, neutral, negative. "score" is -1.0 (hostile) to 1.0 (glowing), consistent with the class.`

// competitorUserTemplate surfaces competitor names beyond the known list.
// %s = brand name, %s = known competitor list, %s = response text.
const competitorUserTemplate = `List the competitor products or companies named in the following AI assistant answer, other than the brand "%s" itself.

Already known (do not repeat): %s

Answer:
"""
%s
"""

Reply with exactly this JSON shape:
{"competitors": ["..."]}

Only include names that appear verbatim in the answer. Return an empty list if there are none.`

// contextUserTemplate grades how faithfully the answer reflects the
// company's positioning.
// %s = brand name, %s = positioning facts, %s = response text.
const contextUserTemplate = `Grade how completely the following AI assistant answer reflects what "%s" actually offers.

Positioning:
%s

Answer:
"""
%s
"""

Reply with exactly this JSON shape:
{"score": 60}

"score" is 0-100: 0 when the answer says nothing relevant about the brand's positioning, 100 when it covers the offerings, strengths, and audience accurately.`

// recommendationUserTemplate measures whether the answer steers the reader
// toward the brand, and collects concrete visibility fixes.
// %s = brand name, %s = response text.
const recommendationUserTemplate = `Judge whether the following AI assistant answer steers a buyer toward the brand "%s".

Answer:
"""
%s
"""

Reply with exactly this JSON shape:
{"score": 70, "recommendations": ["..."]}

"score" is 0-100: 0 when the answer ignores or argues against the brand, 100 when it is the top recommendation. "recommendations" is up to 3 short, concrete actions the brand could take to be represented better in answers like this one; empty if none apply.`

func buildSentimentPrompt(brand, text string) string {
	return fmt.Sprintf(sentimentUserTemplate, brand, text)
}

func buildCompetitorPrompt(brand string, known []string, text string) string {
	knownList := "none"
	if len(known) > 0 {
		knownList = strings.Join(known, ", ")
	}
	return fmt.Sprintf(competitorUserTemplate, brand, knownList, text)
}

func buildContextPrompt(c *ent.Company, text string) string {
	return fmt.Sprintf(contextUserTemplate, c.Name, buildPositioningFacts(c), text)
}

func buildRecommendationPrompt(brand, text string) string {
	return fmt.Sprintf(recommendationUserTemplate, brand, text)
}

// buildPositioningFacts flattens the profile attributes the completeness
// rubric grades against.
func buildPositioningFacts(c *ent.Company) string {
	var sb strings.Builder

	sb.WriteString("  - Description: ")
	sb.WriteString(models.EffectiveDescription(c))
	sb.WriteString("\n")
	writePositioningList(&sb, "Products and services", c.Products)
	writePositioningList(&sb, "Value propositions", c.ValuePropositions)
	writePositioningList(&sb, "Target audiences", c.TargetAudiences)
	writePositioningList(&sb, "Pain points solved", c.PainPoints)

	return strings.TrimRight(sb.String(), "\n")
}

func writePositioningList(sb *strings.Builder, label string, items []string) {
	if len(items) == 0 {
		return
	}
	sb.WriteString("  - ")
	sb.WriteString(label)
	sb.WriteString(": ")
	sb.WriteString(strings.Join(items, ", "))
	sb.WriteString("\n")
}
