// Package dashboard assembles the UI-ready snapshot for a finished audit:
// the denormalized scores, top recommendations, competitor landscape,
// per-category insights, and a one-call executive summary.
package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/specularhq/specular/ent"
	"github.com/specularhq/specular/ent/schema"
	"github.com/specularhq/specular/pkg/insights"
	"github.com/specularhq/specular/pkg/llm"
	"github.com/specularhq/specular/pkg/models"
)

// topRecommendations caps the ranked list carried on the snapshot.
const topRecommendations = 10

// topCompetitors caps the landscape standings.
const topCompetitors = 5

// categoryListCap bounds the gap/opportunity lists per category block.
const categoryListCap = 3

// Completer is the slice of the rate-limited caller the populator needs.
type Completer interface {
	Complete(ctx context.Context, provider string, req llm.CompletionRequest) (*llm.CompletionResponse, error)
}

// DashboardStore persists the snapshot. Implemented by services.DashboardService.
type DashboardStore interface {
	SaveDashboard(ctx context.Context, rec models.DashboardRecord) (*ent.AuditDashboard, error)
}

// Populator builds and persists one audit's dashboard snapshot.
type Populator struct {
	completer Completer
	store     DashboardStore
	provider  string
	model     string
}

// New creates a Populator that writes its executive summary with the given
// provider and model.
func New(completer Completer, store DashboardStore, provider, model string) *Populator {
	return &Populator{
		completer: completer,
		store:     store,
		provider:  provider,
		model:     model,
	}
}

// Populate assembles the snapshot from the aggregate, the audit's queries,
// and the ranked recommendations, then persists it keyed by audit_id. Reruns
// overwrite: everything except the summary derives deterministically from
// the inputs. Any failure here is a populate failure the caller escalates.
func (p *Populator) Populate(ctx context.Context, company *ent.Company, agg *ent.AuditAggregate, queries []*ent.AuditQuery, recommendations []schema.RankedRecommendation) (*ent.AuditDashboard, error) {
	landscape := buildLandscape(agg)
	top := recommendations
	if len(top) > topRecommendations {
		top = top[:topRecommendations]
	}

	summary, err := p.writeSummary(ctx, company, agg, landscape, top)
	if err != nil {
		return nil, fmt.Errorf("failed to write executive summary: %w", err)
	}

	rec := models.DashboardRecord{
		AuditID: agg.AuditID,
		Scores: schema.DashboardScores{
			Overall:             agg.OverallScore,
			Geo:                 agg.GeoScore,
			Sov:                 agg.SovScore,
			Recommendation:      agg.RecommendationScore,
			Sentiment:           agg.SentimentScore,
			Visibility:          agg.VisibilityScore,
			ContextCompleteness: agg.ContextCompleteness,
		},
		Recommendations:     top,
		CompetitorLandscape: landscape,
		CategoryInsights:    buildCategoryInsights(agg, queries, recommendations),
		ExecutiveSummary:    summary,
	}

	saved, err := p.store.SaveDashboard(ctx, rec)
	if err != nil {
		return nil, fmt.Errorf("failed to save dashboard: %w", err)
	}

	slog.Info("dashboard populated",
		"audit_id", agg.AuditID,
		"recommendations", len(top),
		"competitors", len(landscape.Top))
	return saved, nil
}

// writeSummary runs the one free-text call of the pipeline. An empty reply
// degrades to an empty summary rather than failing the audit.
func (p *Populator) writeSummary(ctx context.Context, company *ent.Company, agg *ent.AuditAggregate, landscape schema.CompetitorLandscape, top []schema.RankedRecommendation) (string, error) {
	req := llm.CompletionRequest{
		Prompt: buildSummaryPrompt(company, agg, landscape, top),
		System: summarySystemPrompt,
		Model:  p.model,
	}
	resp, err := p.completer.Complete(ctx, p.provider, req)
	if err != nil {
		return "", err
	}
	summary := strings.TrimSpace(resp.Text)
	if summary == "" {
		slog.Warn("empty executive summary", "audit_id", agg.AuditID)
	}
	return summary, nil
}

// buildLandscape derives the competitor standings from the aggregate. Brand
// mentions come from the per-provider breakdown, which carries exact counts.
func buildLandscape(agg *ent.AuditAggregate) schema.CompetitorLandscape {
	brandMentions := 0
	for _, b := range agg.ProviderBreakdown {
		brandMentions += b.BrandMentions
	}

	total := brandMentions
	for _, count := range agg.CompetitorMentions {
		total += count
	}

	landscape := schema.CompetitorLandscape{
		BrandMentions: brandMentions,
		TotalMentions: total,
		Counts:        agg.CompetitorMentions,
	}
	if total == 0 || len(agg.CompetitorMentions) == 0 {
		return landscape
	}

	standings := make([]schema.CompetitorStanding, 0, len(agg.CompetitorMentions))
	for name, count := range agg.CompetitorMentions {
		standings = append(standings, schema.CompetitorStanding{
			Name:     name,
			Mentions: count,
			Share:    models.Round2(100 * float64(count) / float64(total)),
		})
	}
	sort.Slice(standings, func(i, j int) bool {
		if standings[i].Mentions != standings[j].Mentions {
			return standings[i].Mentions > standings[j].Mentions
		}
		return standings[i].Name < standings[j].Name
	})
	if len(standings) > topCompetitors {
		standings = standings[:topCompetitors]
	}
	landscape.Top = standings
	return landscape
}

// buildCategoryInsights assembles one block per category that carried
// queries, in the canonical category order.
func buildCategoryInsights(agg *ent.AuditAggregate, queries []*ent.AuditQuery, recommendations []schema.RankedRecommendation) []schema.CategoryInsight {
	queryCounts := make(map[string]int)
	for _, q := range queries {
		queryCounts[string(q.Category)]++
	}

	var out []schema.CategoryInsight
	for _, category := range models.Categories {
		if queryCounts[category] == 0 {
			continue
		}
		insight := schema.CategoryInsight{
			Category:      category,
			Queries:       queryCounts[category],
			Gaps:          textsFor(recommendations, category, insights.KindCompetitiveGap),
			Opportunities: textsFor(recommendations, category, insights.KindContentOpportunity),
		}
		if b, ok := agg.CategoryBreakdown[category]; ok {
			insight.Analyzed = b.Analyzed
			insight.Visibility = b.Visibility
			insight.Score = b.Overall
		}
		out = append(out, insight)
	}
	return out
}

// textsFor pulls a category's items of one kind, keeping the ranked order.
func textsFor(recommendations []schema.RankedRecommendation, category, kind string) []string {
	var out []string
	for _, r := range recommendations {
		if r.Category != category || r.Kind != kind {
			continue
		}
		out = append(out, r.Text)
		if len(out) == categoryListCap {
			break
		}
	}
	return out
}
