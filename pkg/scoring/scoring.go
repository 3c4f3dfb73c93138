// Package scoring rolls per-response analyses up into the audit-level
// aggregate: the weighted overall score, component means, per-provider and
// per-category breakdowns, and competitor mention counts.
package scoring

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/specularhq/specular/ent"
	"github.com/specularhq/specular/ent/schema"
	"github.com/specularhq/specular/pkg/models"
)

// Component weights of the overall score.
const (
	geoWeight        = 0.30
	sovWeight        = 0.25
	recWeight        = 0.20
	sentimentWeight  = 0.15
	visibilityWeight = 0.10
)

// AggregateStore persists the roll-up. Implemented by services.AggregateService,
// whose upsert also stamps the audit row in the same transaction.
type AggregateStore interface {
	SaveAggregate(ctx context.Context, rec models.AggregateRecord) (*ent.AuditAggregate, error)
}

// Scorer computes and persists one audit's aggregate.
type Scorer struct {
	store AggregateStore
}

func New(store AggregateStore) *Scorer {
	return &Scorer{store: store}
}

// Score rolls up every analysis row of an audit and persists the aggregate
// in a single write. Errored analyses count toward totals but are excluded
// from every mean; an audit with nothing analyzed scores zero across the
// board rather than failing.
func (s *Scorer) Score(ctx context.Context, auditID string, analyses []*ent.AuditAnalysis) (*models.AggregateRecord, error) {
	overall := &bucket{}
	providers := make(map[string]*bucket)
	categories := make(map[string]*bucket)
	competitorCounts := make(map[string]int)

	for _, a := range analyses {
		if a.Errored {
			continue
		}
		overall.add(a)
		bucketFor(providers, a.Provider).add(a)
		bucketFor(categories, string(a.Category)).add(a)
		for _, cm := range a.CompetitorsMentioned {
			competitorCounts[cm.Name]++
		}
	}

	top := overall.breakdown()
	rec := models.AggregateRecord{
		AuditID:             auditID,
		Overall:             top.Overall,
		Geo:                 top.Geo,
		Sov:                 top.Sov,
		Recommendation:      top.Recommendation,
		Sentiment:           top.Sentiment,
		Visibility:          top.Visibility,
		ContextCompleteness: top.ContextCompleteness,
		ProviderBreakdown:   breakdowns(providers),
		CategoryBreakdown:   breakdowns(categories),
		TotalResponses:      len(analyses),
		AnalyzedResponses:   overall.analyzed,
	}
	if len(competitorCounts) > 0 {
		rec.CompetitorMentions = competitorCounts
	}

	if _, err := s.store.SaveAggregate(ctx, rec); err != nil {
		return nil, fmt.Errorf("failed to save aggregate: %w", err)
	}

	slog.Info("audit scored",
		"audit_id", auditID,
		"overall", rec.Overall,
		"analyzed", rec.AnalyzedResponses,
		"total", rec.TotalResponses)
	return &rec, nil
}

// bucket accumulates component sums over the analyses it has seen.
type bucket struct {
	analyzed      int
	brandMentions int
	geo           float64
	sov           float64
	rec           float64
	sentiment     float64
	completeness  float64
}

func (b *bucket) add(a *ent.AuditAnalysis) {
	b.analyzed++
	if a.BrandMentioned {
		b.brandMentions++
	}
	b.geo += a.GeoScore
	b.sov += a.SovScore
	b.rec += a.RecommendationSignal
	b.sentiment += a.SentimentScore
	b.completeness += a.ContextCompleteness
}

// breakdown turns the sums into rounded means and the weighted overall.
// Sentiment is rescaled from [-1,1] to 0-100; visibility is the brand
// mention rate. An empty bucket is all zeros.
func (b *bucket) breakdown() schema.ScoreBreakdown {
	if b.analyzed == 0 {
		return schema.ScoreBreakdown{}
	}
	n := float64(b.analyzed)
	geo := b.geo / n
	sov := b.sov / n
	rec := b.rec / n
	sentiment := 50 * (b.sentiment/n + 1)
	visibility := 100 * float64(b.brandMentions) / n
	completeness := b.completeness / n

	overall := geoWeight*geo +
		sovWeight*sov +
		recWeight*rec +
		sentimentWeight*sentiment +
		visibilityWeight*visibility

	return schema.ScoreBreakdown{
		Overall:             models.Round2(overall),
		Geo:                 models.Round2(geo),
		Sov:                 models.Round2(sov),
		Recommendation:      models.Round2(rec),
		Sentiment:           models.Round2(sentiment),
		Visibility:          models.Round2(visibility),
		ContextCompleteness: models.Round2(completeness),
		Analyzed:            b.analyzed,
		BrandMentions:       b.brandMentions,
	}
}

func bucketFor(m map[string]*bucket, key string) *bucket {
	b, ok := m[key]
	if !ok {
		b = &bucket{}
		m[key] = b
	}
	return b
}

func breakdowns(m map[string]*bucket) map[string]schema.ScoreBreakdown {
	if len(m) == 0 {
		return nil
	}
	out := make(map[string]schema.ScoreBreakdown, len(m))
	for key, b := range m {
		out[key] = b.breakdown()
	}
	return out
}
