package querygen

import (
	"fmt"
	"strings"

	"github.com/specularhq/specular/ent"
	"github.com/specularhq/specular/pkg/models"
)

// generationSystemPrompt constrains the model to strict JSON output.
const generationSystemPrompt = `You are a market research assistant that writes the natural-language questions real buyers type into AI assistants. You always reply with a single JSON object and nothing else — no prose, no markdown fences.`

// generationUserTemplate is the first-call prompt.
// %s = profile facts, %d = query count, %s = category guide, %d = per-category ceiling.
const generationUserTemplate = `Generate search-style questions a potential buyer might ask an AI assistant, based on this company profile:

%s

Requirements:
- Produce exactly %d queries.
- Spread them evenly across these buyer-journey categories:
%s
- No category may carry more than %d queries.
- Write the way real users type: conversational, specific, no marketing copy.
- Mention the company or its competitors by name only where the category calls for it.
- Every query must be unique.

Reply with exactly this JSON shape:
{"queries": [{"text": "...", "category": "problem_aware", "intent": "comparison", "priority": 0.8}]}

"category" must be one of the listed identifiers. "intent" is a one-word subtype (informational, comparison, transactional, navigational). "priority" is 0.0-1.0, higher for queries a serious buyer is more likely to ask.`

// topUpUserTemplate asks for the shortfall after deduplication.
// %s = profile facts, %d = remaining count, %s = category guide, %s = texts to avoid.
const topUpUserTemplate = `Generate additional buyer questions for this company profile:

%s

Requirements:
- Produce exactly %d NEW queries.
- Use only these buyer-journey categories:
%s
- Do NOT repeat or rephrase any of these existing queries:
%s

Reply with exactly this JSON shape:
{"queries": [{"text": "...", "category": "problem_aware", "intent": "comparison", "priority": 0.8}]}`

// categoryGuide enumerates the six funnel stages with the definitions the
// model picks categories from.
const categoryGuide = `  - problem_unaware: the buyer does not yet realize they have the problem this company solves
  - problem_aware: the buyer feels the pain but does not know solutions exist
  - solution_aware: the buyer compares solution approaches and product classes
  - product_aware: the buyer evaluates specific products, including this company and its competitors
  - most_aware: the buyer knows this company and asks purchase-ready questions about it
  - brand_defense: the buyer questions this company's reputation, trustworthiness, or drawbacks`

func buildGenerationPrompt(profileFacts string, n, categoryCap int) string {
	return fmt.Sprintf(generationUserTemplate, profileFacts, n, categoryGuide, categoryCap)
}

func buildTopUpPrompt(profileFacts string, remaining int, existing []string) string {
	var avoid strings.Builder
	for _, text := range existing {
		avoid.WriteString("  - ")
		avoid.WriteString(text)
		avoid.WriteString("\n")
	}
	return fmt.Sprintf(topUpUserTemplate, profileFacts, remaining, categoryGuide, strings.TrimRight(avoid.String(), "\n"))
}

// buildProfileFacts flattens the salient profile attributes into the fact
// block both prompts embed.
func buildProfileFacts(c *ent.Company) string {
	var sb strings.Builder

	sb.WriteString("Company: ")
	sb.WriteString(c.Name)
	sb.WriteString("\n")
	if c.Domain != "" {
		sb.WriteString("Domain: ")
		sb.WriteString(c.Domain)
		sb.WriteString("\n")
	}
	if c.Industry != "" {
		sb.WriteString("Industry: ")
		sb.WriteString(c.Industry)
		if c.SubIndustry != nil && *c.SubIndustry != "" {
			sb.WriteString(" / ")
			sb.WriteString(*c.SubIndustry)
		}
		sb.WriteString("\n")
	}
	sb.WriteString("Description: ")
	sb.WriteString(models.EffectiveDescription(c))
	sb.WriteString("\n")

	writeFactList(&sb, "Products and services", c.Products)
	writeFactList(&sb, "Value propositions", c.ValuePropositions)
	writeFactList(&sb, "Target audiences", c.TargetAudiences)
	writeFactList(&sb, "Known competitors", c.Competitors)
	writeFactList(&sb, "Pain points solved", c.PainPoints)
	writeFactList(&sb, "Geographies", c.Geographies)

	return strings.TrimRight(sb.String(), "\n")
}

func writeFactList(sb *strings.Builder, label string, items []string) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(label)
	sb.WriteString(": ")
	sb.WriteString(strings.Join(items, ", "))
	sb.WriteString("\n")
}
