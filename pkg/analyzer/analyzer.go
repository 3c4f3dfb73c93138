// Package analyzer turns raw provider responses into per-response analysis
// rows: brand presence, competitor mentions, sentiment, and the component
// scores the aggregate phase rolls up.
package analyzer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/semaphore"

	"github.com/specularhq/specular/ent"
	"github.com/specularhq/specular/ent/schema"
	"github.com/specularhq/specular/pkg/analyzer/domainfetch"
	"github.com/specularhq/specular/pkg/llm"
	"github.com/specularhq/specular/pkg/models"
	"github.com/specularhq/specular/pkg/services"
)

// DefaultConcurrency bounds in-flight response analyses when no width is
// configured. Each analysis issues several model calls, so this sits below
// the collection fan-out width.
const DefaultConcurrency = 10

// progressEvery is how many completed analyses separate progress ticks.
const progressEvery = 5

// Completer is the slice of the rate-limited caller the analyzer needs.
type Completer interface {
	Complete(ctx context.Context, provider string, req llm.CompletionRequest) (*llm.CompletionResponse, error)
}

// AnalysisStore persists analysis rows. Implemented by services.AnalysisService.
type AnalysisStore interface {
	SaveAnalysis(ctx context.Context, rec models.AnalysisRecord) (*ent.AuditAnalysis, error)
}

// ProgressFunc receives completion ticks as analyses finish. Called from
// analysis goroutines, so implementations must be safe for concurrent use.
type ProgressFunc func(completed, total int)

// Result summarizes a completed analysis phase.
type Result struct {
	Total    int
	Analyzed int
	Errored  int
}

// Analyzer runs per-response analysis for one audit at a time. Stateless
// across audits; safe for concurrent use by multiple workers.
type Analyzer struct {
	completer   Completer
	store       AnalysisStore
	fetcher     *domainfetch.Fetcher
	provider    string
	model       string
	concurrency int64
}

// New creates an Analyzer that runs its model subtasks on the given provider,
// gated at the given concurrency.
func New(completer Completer, store AnalysisStore, fetcher *domainfetch.Fetcher, provider, model string, concurrency int) *Analyzer {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	return &Analyzer{
		completer:   completer,
		store:       store,
		fetcher:     fetcher,
		provider:    provider,
		model:       model,
		concurrency: int64(concurrency),
	}
}

// Analyze launches one task per response, bounded by the semaphore. Every
// response persists a row: failed or empty cells become errored analyses
// without any model work, and an analysis subtask failure persists an errored
// row with whatever was computed before it. Per-response failures never abort
// siblings; only a persistence failure aborts the phase.
//
// Responses must arrive with their query edge loaded. Cancellation is
// observed between task starts and between a task's model subtasks; in-flight
// calls run to completion on a severed context but cancelled tasks are
// discarded unpersisted.
func (a *Analyzer) Analyze(ctx context.Context, auditID string, company *ent.Company, responses []*ent.AuditResponse, progress ProgressFunc) (*Result, error) {
	total := len(responses)
	result := &Result{Total: total}
	if total == 0 {
		return result, nil
	}

	profile := newBrandProfile(company)
	if profile.domain != "" {
		// Warm the domain cache off the worker slots so the first citation
		// score does not wait on the fetch.
		a.fetcher.Warm(ctx, profile.domain)
	}

	sem := semaphore.NewWeighted(a.concurrency)
	var wg sync.WaitGroup
	var completed, analyzed atomic.Int64
	var saveErrOnce sync.Once
	var saveErr error

	launched := 0
	for _, resp := range responses {
		if err := sem.Acquire(ctx, 1); err != nil {
			wg.Wait()
			slog.Info("analysis cancelled",
				"audit_id", auditID,
				"launched", launched,
				"total", total)
			return nil, fmt.Errorf("analysis cancelled: %w", err)
		}
		launched++

		wg.Add(1)
		go func(resp *ent.AuditResponse) {
			defer wg.Done()
			defer sem.Release(1)

			ok, err := a.analyzeOne(ctx, profile, resp)
			if err != nil {
				saveErrOnce.Do(func() { saveErr = err })
				return
			}
			if ok {
				analyzed.Add(1)
			}
			done := completed.Add(1)
			if progress != nil && (done%progressEvery == 0 || done == int64(total)) {
				progress(int(done), total)
			}
		}(resp)
	}

	wg.Wait()

	if saveErr != nil {
		return nil, fmt.Errorf("failed to persist analyses: %w", saveErr)
	}
	if ctx.Err() != nil {
		return nil, fmt.Errorf("analysis cancelled: %w", ctx.Err())
	}

	result.Analyzed = int(analyzed.Load())
	result.Errored = total - result.Analyzed
	return result, nil
}

// analyzeOne analyzes a single response and persists the outcome. The bool
// reports a clean analysis; the error is reserved for persistence failures.
func (a *Analyzer) analyzeOne(ctx context.Context, profile *brandProfile, resp *ent.AuditResponse) (bool, error) {
	q := resp.Edges.Query
	if q == nil {
		return false, fmt.Errorf("response %s missing query edge", resp.ID)
	}
	rec := models.AnalysisRecord{
		AuditID:    resp.AuditID,
		ResponseID: resp.ID,
		Provider:   resp.Provider,
		Category:   string(q.Category),
	}

	// Failed cells get errored rows without any model work; the roll-up
	// counts every cell either way.
	if resp.ErrorKind != nil {
		rec.Errored = true
		rec.ErrorMessage = fmt.Sprintf("provider call failed: %s", *resp.ErrorKind)
		return false, a.save(rec)
	}
	if strings.TrimSpace(resp.Text) == "" {
		rec.Errored = true
		rec.ErrorMessage = "empty response text"
		return false, a.save(rec)
	}

	err := a.fill(ctx, profile, resp.Text, &rec)
	if ctx.Err() != nil {
		// Audit cancelled while this analysis was in flight; discard.
		return false, nil
	}
	if err != nil {
		rec.Errored = true
		rec.ErrorMessage = err.Error()
		slog.Debug("analysis errored",
			"audit_id", rec.AuditID,
			"response_id", rec.ResponseID,
			"kind", llm.KindOf(err))
		return false, a.save(rec)
	}
	return true, a.save(rec)
}

// fill computes every analysis field in place. On error the record keeps
// whatever was computed before the failing subtask.
func (a *Analyzer) fill(ctx context.Context, profile *brandProfile, text string, rec *models.AnalysisRecord) error {
	mentioned, first := profile.brand.Match(text)
	rec.BrandMentioned = mentioned
	if mentioned {
		rec.FirstPosition = &first
	}

	brandCount := profile.brand.Count(text)
	competitorCount := 0
	for _, kc := range profile.known {
		if ok, pos := kc.matcher.Match(text); ok {
			rec.Competitors = append(rec.Competitors, schema.CompetitorMention{Name: kc.name, Position: pos, Known: true})
			competitorCount += kc.matcher.Count(text)
		}
	}

	rec.GeoScore = models.Round2(a.geoScore(ctx, text, profile))

	discovered, err := a.discoverCompetitors(ctx, profile, text)
	if err != nil {
		return err
	}
	for _, d := range discovered {
		rec.Competitors = append(rec.Competitors, schema.CompetitorMention{Name: d.name, Position: d.position, Known: false})
		competitorCount += d.count
	}
	if denom := brandCount + competitorCount; denom > 0 {
		rec.SovScore = models.Round2(100 * float64(brandCount) / float64(denom))
	}

	class, score, err := a.classifySentiment(ctx, profile.company.Name, text)
	if err != nil {
		return err
	}
	rec.Sentiment = class
	rec.SentimentScore = score

	completeness, err := a.gradeContext(ctx, profile.company, text)
	if err != nil {
		return err
	}
	rec.ContextCompleteness = completeness

	signal, recommendations, err := a.judgeRecommendation(ctx, profile.company.Name, text)
	if err != nil {
		return err
	}
	rec.RecommendationSignal = signal
	rec.Recommendations = recommendations
	return nil
}

type sentimentReply struct {
	Sentiment string  `json:"sentiment"`
	Score     float64 `json:"score"`
}

func (a *Analyzer) classifySentiment(ctx context.Context, brand, text string) (string, float64, error) {
	var reply sentimentReply
	if err := a.complete(ctx, buildSentimentPrompt(brand, text), "sentiment", sentimentSchema, &reply); err != nil {
		return "", 0, err
	}
	class := strings.ToLower(strings.TrimSpace(reply.Sentiment))
	switch class {
	case "positive", "neutral", "negative":
	default:
		return "", 0, &llm.ProviderError{
			Provider: a.provider,
			Kind:     llm.KindData,
			Message:  fmt.Sprintf("unknown sentiment class %q", reply.Sentiment),
		}
	}
	return class, min(max(reply.Score, -1), 1), nil
}

type competitorReply struct {
	Competitors []string `json:"competitors"`
}

type discoveredCompetitor struct {
	name     string
	position int
	count    int
}

// discoverCompetitors asks the model for competitor names beyond the known
// list, then keeps only names that actually occur in the text and are not the
// brand or an already-counted known competitor.
func (a *Analyzer) discoverCompetitors(ctx context.Context, profile *brandProfile, text string) ([]discoveredCompetitor, error) {
	var reply competitorReply
	if err := a.complete(ctx, buildCompetitorPrompt(profile.company.Name, profile.knownNames(), text), "competitors", competitorSchema, &reply); err != nil {
		return nil, err
	}

	var out []discoveredCompetitor
	seen := make(map[string]struct{})
	for _, name := range reply.Competitors {
		name = strings.TrimSpace(name)
		if name == "" || profile.covers(name) {
			continue
		}
		key := models.NormalizeText(name)
		if _, dup := seen[key]; dup {
			continue
		}
		m := NewMatcher(name)
		ok, pos := m.Match(text)
		if !ok {
			// Invented or paraphrased; only verbatim names count.
			continue
		}
		seen[key] = struct{}{}
		out = append(out, discoveredCompetitor{name: name, position: pos, count: m.Count(text)})
	}
	return out, nil
}

type contextReply struct {
	Score float64 `json:"score"`
}

func (a *Analyzer) gradeContext(ctx context.Context, company *ent.Company, text string) (float64, error) {
	var reply contextReply
	if err := a.complete(ctx, buildContextPrompt(company, text), "context_grade", contextSchema, &reply); err != nil {
		return 0, err
	}
	return models.Round2(min(max(reply.Score, 0), 100)), nil
}

type recommendationReply struct {
	Score           float64  `json:"score"`
	Recommendations []string `json:"recommendations"`
}

func (a *Analyzer) judgeRecommendation(ctx context.Context, brand, text string) (float64, []string, error) {
	var reply recommendationReply
	if err := a.complete(ctx, buildRecommendationPrompt(brand, text), "recommendation", recommendationSchema, &reply); err != nil {
		return 0, nil, err
	}
	var recommendations []string
	for _, r := range reply.Recommendations {
		if r = strings.TrimSpace(r); r != "" {
			recommendations = append(recommendations, r)
		}
	}
	return models.Round2(min(max(reply.Score, 0), 100)), recommendations, nil
}

// Reflected schemas for the subtask replies. Schema-capable backends enforce
// them on the wire; the rest get them as a system instruction.
var (
	sentimentSchema      = llm.GenerateSchema[sentimentReply]()
	competitorSchema     = llm.GenerateSchema[competitorReply]()
	contextSchema        = llm.GenerateSchema[contextReply]()
	recommendationSchema = llm.GenerateSchema[recommendationReply]()
)

// complete runs one analysis subtask constrained to the given reply schema.
// ctx gates the start; the call itself runs on a severed context so
// cancellation never cuts off paid work.
func (a *Analyzer) complete(ctx context.Context, prompt, schemaName string, schema, target any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	req := llm.CompletionRequest{
		Prompt:         prompt,
		System:         analysisSystemPrompt,
		Model:          a.model,
		ResponseFormat: llm.FormatJSONObject,
		Schema:         schema,
		SchemaName:     schemaName,
	}
	resp, err := a.completer.Complete(context.WithoutCancel(ctx), a.provider, req)
	if err != nil {
		return err
	}
	return llm.DecodeJSON(a.provider, resp.Text, target)
}

// save persists a record, tolerating replays: a previous run of this audit
// may already have written the row.
func (a *Analyzer) save(rec models.AnalysisRecord) error {
	_, err := a.store.SaveAnalysis(context.Background(), rec)
	if errors.Is(err, services.ErrAlreadyExists) {
		slog.Debug("analysis already persisted, skipping",
			"audit_id", rec.AuditID,
			"response_id", rec.ResponseID)
		return nil
	}
	return err
}

// brandProfile is the per-audit compiled view of the company: matchers for
// the brand and its known competitors, and the entity set the completeness
// heuristic checks.
type brandProfile struct {
	company  *ent.Company
	domain   string
	brand    *Matcher
	known    []knownCompetitor
	entities []*Matcher
}

type knownCompetitor struct {
	name    string
	matcher *Matcher
}

func newBrandProfile(c *ent.Company) *brandProfile {
	p := &brandProfile{
		company: c,
		domain:  c.Domain,
		brand:   NewMatcher(append([]string{c.Name}, brandAliases(c.Metadata)...)...),
	}
	for _, name := range c.Competitors {
		if strings.TrimSpace(name) == "" {
			continue
		}
		p.known = append(p.known, knownCompetitor{name: name, matcher: NewMatcher(name)})
	}
	for _, e := range append([]string{c.Name}, c.Products...) {
		if strings.TrimSpace(e) != "" {
			p.entities = append(p.entities, NewMatcher(e))
		}
	}
	return p
}

func (p *brandProfile) knownNames() []string {
	names := make([]string, len(p.known))
	for i, kc := range p.known {
		names[i] = kc.name
	}
	return names
}

// covers reports whether a discovered name is really the brand itself or a
// known competitor under a slightly different spelling.
func (p *brandProfile) covers(name string) bool {
	if ok, _ := p.brand.Match(name); ok {
		return true
	}
	for _, kc := range p.known {
		if ok, _ := kc.matcher.Match(name); ok {
			return true
		}
	}
	return false
}

// brandAliases reads the optional "aliases" list from company metadata.
func brandAliases(metadata map[string]interface{}) []string {
	raw, ok := metadata["aliases"]
	if !ok {
		return nil
	}
	switch v := raw.(type) {
	case []string:
		return v
	case []interface{}:
		aliases := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				aliases = append(aliases, s)
			}
		}
		return aliases
	}
	return nil
}
