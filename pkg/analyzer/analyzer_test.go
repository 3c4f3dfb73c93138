package analyzer

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specularhq/specular/ent"
	"github.com/specularhq/specular/ent/auditquery"
	"github.com/specularhq/specular/ent/auditresponse"
	"github.com/specularhq/specular/pkg/analyzer/domainfetch"
	"github.com/specularhq/specular/pkg/llm"
	"github.com/specularhq/specular/pkg/models"
	"github.com/specularhq/specular/pkg/services"
)

// fakeCompleter routes each analysis subtask by its prompt text. Empty reply
// fields fall back to neutral defaults.
type fakeCompleter struct {
	mu       sync.Mutex
	requests []llm.CompletionRequest

	sentimentReply   string
	competitorsReply string
	contextReply     string
	recReply         string

	errOn string // prompt substring that fails
	err   error

	started chan struct{} // closed when the first call arrives
	release chan struct{} // blocks calls until closed
}

func (f *fakeCompleter) Complete(ctx context.Context, provider string, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
	f.mu.Lock()
	f.requests = append(f.requests, req)
	first := len(f.requests) == 1
	f.mu.Unlock()

	if f.started != nil && first {
		close(f.started)
	}
	if f.release != nil {
		<-f.release
	}
	if f.errOn != "" && strings.Contains(req.Prompt, f.errOn) {
		return nil, f.err
	}

	var text string
	switch {
	case strings.Contains(req.Prompt, "List the competitor products"):
		text = orDefault(f.competitorsReply, `{"competitors": []}`)
	case strings.Contains(req.Prompt, "Assess the sentiment"):
		text = orDefault(f.sentimentReply, `{"sentiment": "neutral", "score": 0}`)
	case strings.Contains(req.Prompt, "Grade how completely"):
		text = orDefault(f.contextReply, `{"score": 50}`)
	case strings.Contains(req.Prompt, "steers a buyer"):
		text = orDefault(f.recReply, `{"score": 0, "recommendations": []}`)
	default:
		return nil, fmt.Errorf("unexpected prompt: %s", req.Prompt)
	}
	return &llm.CompletionResponse{Text: text, Model: req.Model, FinishReason: llm.FinishStop}, nil
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func (f *fakeCompleter) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

type fakeStore struct {
	mu      sync.Mutex
	records []models.AnalysisRecord
	saveErr error
}

func (s *fakeStore) SaveAnalysis(ctx context.Context, rec models.AnalysisRecord) (*ent.AuditAnalysis, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveErr != nil {
		return nil, s.saveErr
	}
	s.records = append(s.records, rec)
	return &ent.AuditAnalysis{ID: fmt.Sprintf("analysis-%d", len(s.records))}, nil
}

func (s *fakeStore) byResponse(responseID string) (models.AnalysisRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rec := range s.records {
		if rec.ResponseID == responseID {
			return rec, true
		}
	}
	return models.AnalysisRecord{}, false
}

func (s *fakeStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

func testCompany() *ent.Company {
	return &ent.Company{
		ID:          "company-1",
		Name:        "Acme Analytics",
		Description: "Retail inventory forecasting for mid-market brands.",
		Competitors: []string{"RivalOne", "MetricsPro"},
		Metadata:    map[string]interface{}{"aliases": []interface{}{"AcmeA"}},
	}
}

func testResponse(id, text string) *ent.AuditResponse {
	return &ent.AuditResponse{
		ID:       id,
		AuditID:  "audit-1",
		QueryID:  "query-1",
		Provider: "openai",
		Text:     text,
		Edges: ent.AuditResponseEdges{
			Query: &ent.AuditQuery{ID: "query-1", Category: auditquery.CategoryProductAware},
		},
	}
}

func newTestAnalyzer(completer Completer, store AnalysisStore, concurrency int) *Analyzer {
	return New(completer, store, domainfetch.NewFetcher(0), "openai", "gpt-4o-mini", concurrency)
}

func TestAnalyzer_Analyze(t *testing.T) {
	t.Run("analyzes a clean response end to end", func(t *testing.T) {
		text := "Acme Analytics leads the category. RivalOne is cheaper, but Acme Analytics has better forecasts. StockSense is a newer option."
		completer := &fakeCompleter{
			sentimentReply:   `{"sentiment": "Positive", "score": 0.6}`,
			competitorsReply: `{"competitors": ["StockSense", "AcmeA", "MetricsPro", "Phantom Corp"]}`,
			contextReply:     `{"score": 80}`,
			recReply:         `{"score": 70, "recommendations": ["Publish comparison pages", "  ", ""]}`,
		}
		store := &fakeStore{}

		result, err := newTestAnalyzer(completer, store, 0).Analyze(context.Background(), "audit-1", testCompany(), []*ent.AuditResponse{testResponse("resp-1", text)}, nil)
		require.NoError(t, err)
		assert.Equal(t, &Result{Total: 1, Analyzed: 1, Errored: 0}, result)

		rec, ok := store.byResponse("resp-1")
		require.True(t, ok)
		assert.Equal(t, "audit-1", rec.AuditID)
		assert.Equal(t, "openai", rec.Provider)
		assert.Equal(t, "product_aware", rec.Category)
		assert.False(t, rec.Errored)

		assert.True(t, rec.BrandMentioned)
		require.NotNil(t, rec.FirstPosition)
		assert.Equal(t, 0, *rec.FirstPosition)

		// RivalOne from the known list, StockSense discovered; the alias,
		// the absent known, and the invented name are all dropped.
		require.Len(t, rec.Competitors, 2)
		assert.Equal(t, "RivalOne", rec.Competitors[0].Name)
		assert.Equal(t, strings.Index(text, "RivalOne"), rec.Competitors[0].Position)
		assert.True(t, rec.Competitors[0].Known)
		assert.Equal(t, "StockSense", rec.Competitors[1].Name)
		assert.Equal(t, strings.Index(text, "StockSense"), rec.Competitors[1].Position)
		assert.False(t, rec.Competitors[1].Known)

		// Two brand occurrences against one of each competitor.
		assert.InDelta(t, 50.0, rec.SovScore, 0.001)

		assert.Equal(t, "positive", rec.Sentiment)
		assert.InDelta(t, 0.6, rec.SentimentScore, 0.001)
		assert.InDelta(t, 80.0, rec.ContextCompleteness, 0.001)
		assert.InDelta(t, 70.0, rec.RecommendationSignal, 0.001)
		assert.Equal(t, []string{"Publish comparison pages"}, rec.Recommendations)

		// Prose-only answer mentioning the brand, no domain configured.
		assert.InDelta(t, 42.0, rec.GeoScore, 0.001)

		// One call per subtask, all schema-constrained on the audit model.
		require.Equal(t, 4, completer.callCount())
		names := make([]string, 0, 4)
		for _, req := range completer.requests {
			assert.Equal(t, analysisSystemPrompt, req.System)
			assert.Equal(t, llm.FormatJSONObject, req.ResponseFormat)
			assert.Equal(t, "gpt-4o-mini", req.Model)
			assert.NotNil(t, req.Schema)
			names = append(names, req.SchemaName)
		}
		sort.Strings(names)
		assert.Equal(t, []string{"competitors", "context_grade", "recommendation", "sentiment"}, names)
	})

	t.Run("failed cell becomes errored row without model work", func(t *testing.T) {
		completer := &fakeCompleter{}
		store := &fakeStore{}
		resp := testResponse("resp-1", "")
		kind := auditresponse.ErrorKindQuota
		resp.ErrorKind = &kind

		result, err := newTestAnalyzer(completer, store, 0).Analyze(context.Background(), "audit-1", testCompany(), []*ent.AuditResponse{resp}, nil)
		require.NoError(t, err)
		assert.Equal(t, &Result{Total: 1, Analyzed: 0, Errored: 1}, result)

		rec, ok := store.byResponse("resp-1")
		require.True(t, ok)
		assert.True(t, rec.Errored)
		assert.Equal(t, "provider call failed: quota", rec.ErrorMessage)
		assert.Equal(t, "product_aware", rec.Category)
		assert.Zero(t, completer.callCount())
	})

	t.Run("empty text becomes errored row without model work", func(t *testing.T) {
		completer := &fakeCompleter{}
		store := &fakeStore{}

		result, err := newTestAnalyzer(completer, store, 0).Analyze(context.Background(), "audit-1", testCompany(), []*ent.AuditResponse{testResponse("resp-1", "   \n")}, nil)
		require.NoError(t, err)
		assert.Equal(t, &Result{Total: 1, Analyzed: 0, Errored: 1}, result)

		rec, _ := store.byResponse("resp-1")
		assert.True(t, rec.Errored)
		assert.Equal(t, "empty response text", rec.ErrorMessage)
		assert.Zero(t, completer.callCount())
	})

	t.Run("subtask failure keeps partial fields and continues with siblings", func(t *testing.T) {
		completer := &fakeCompleter{
			errOn: "Assess the sentiment",
			err: &llm.ProviderError{
				Provider:   "openai",
				Kind:       llm.KindTransient,
				StatusCode: 503,
				Message:    "overloaded",
			},
		}
		store := &fakeStore{}
		responses := []*ent.AuditResponse{
			testResponse("resp-1", "Acme Analytics versus RivalOne."),
			testResponse("resp-2", "Acme Analytics is fine."),
		}

		// Sentiment fails everywhere, so both rows error but keep the
		// matcher-derived fields computed before the failing subtask.
		result, err := newTestAnalyzer(completer, store, 0).Analyze(context.Background(), "audit-1", testCompany(), responses, nil)
		require.NoError(t, err)
		assert.Equal(t, &Result{Total: 2, Analyzed: 0, Errored: 2}, result)

		rec, ok := store.byResponse("resp-1")
		require.True(t, ok)
		assert.True(t, rec.Errored)
		assert.Contains(t, rec.ErrorMessage, "overloaded")
		assert.True(t, rec.BrandMentioned)
		assert.InDelta(t, 50.0, rec.SovScore, 0.001)
		assert.Empty(t, rec.Sentiment)
	})

	t.Run("unparseable subtask reply errors that analysis only", func(t *testing.T) {
		completer := &fakeCompleter{competitorsReply: "not json at all"}
		store := &fakeStore{}
		responses := []*ent.AuditResponse{
			testResponse("resp-1", "Acme Analytics wins."),
		}

		result, err := newTestAnalyzer(completer, store, 0).Analyze(context.Background(), "audit-1", testCompany(), responses, nil)
		require.NoError(t, err)
		assert.Equal(t, &Result{Total: 1, Analyzed: 0, Errored: 1}, result)

		rec, _ := store.byResponse("resp-1")
		assert.True(t, rec.Errored)
		assert.NotEmpty(t, rec.ErrorMessage)
	})

	t.Run("unknown sentiment class is a data error", func(t *testing.T) {
		completer := &fakeCompleter{sentimentReply: `{"sentiment": "mixed", "score": 0.2}`}
		store := &fakeStore{}

		result, err := newTestAnalyzer(completer, store, 0).Analyze(context.Background(), "audit-1", testCompany(), []*ent.AuditResponse{testResponse("resp-1", "Acme Analytics wins.")}, nil)
		require.NoError(t, err)
		assert.Equal(t, 1, result.Errored)

		rec, _ := store.byResponse("resp-1")
		assert.True(t, rec.Errored)
		assert.Contains(t, rec.ErrorMessage, "unknown sentiment class")
	})

	t.Run("already persisted analysis counts as analyzed", func(t *testing.T) {
		completer := &fakeCompleter{}
		store := &fakeStore{saveErr: services.ErrAlreadyExists}

		result, err := newTestAnalyzer(completer, store, 0).Analyze(context.Background(), "audit-1", testCompany(), []*ent.AuditResponse{testResponse("resp-1", "Acme Analytics wins.")}, nil)
		require.NoError(t, err)
		assert.Equal(t, &Result{Total: 1, Analyzed: 1, Errored: 0}, result)
	})

	t.Run("persistence failure aborts the phase", func(t *testing.T) {
		completer := &fakeCompleter{}
		store := &fakeStore{saveErr: errors.New("connection lost")}

		result, err := newTestAnalyzer(completer, store, 0).Analyze(context.Background(), "audit-1", testCompany(), []*ent.AuditResponse{testResponse("resp-1", "Acme Analytics wins.")}, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to persist analyses")
		assert.Nil(t, result)
	})

	t.Run("missing query edge aborts the phase", func(t *testing.T) {
		completer := &fakeCompleter{}
		store := &fakeStore{}
		resp := testResponse("resp-1", "Acme Analytics wins.")
		resp.Edges.Query = nil

		_, err := newTestAnalyzer(completer, store, 0).Analyze(context.Background(), "audit-1", testCompany(), []*ent.AuditResponse{resp}, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing query edge")
	})

	t.Run("empty response set is a no-op", func(t *testing.T) {
		store := &fakeStore{}
		result, err := newTestAnalyzer(&fakeCompleter{}, store, 0).Analyze(context.Background(), "audit-1", testCompany(), nil, nil)
		require.NoError(t, err)
		assert.Equal(t, &Result{}, result)
		assert.Zero(t, store.count())
	})
}

func TestAnalyzer_Analyze_Progress(t *testing.T) {
	// Seven failed cells complete without model calls, ticking at the
	// five-boundary and at the end.
	completer := &fakeCompleter{}
	store := &fakeStore{}
	kind := auditresponse.ErrorKindTransient

	responses := make([]*ent.AuditResponse, 7)
	for i := range responses {
		resp := testResponse(fmt.Sprintf("resp-%d", i), "")
		resp.ErrorKind = &kind
		responses[i] = resp
	}

	var mu sync.Mutex
	var ticks []int
	progress := func(completed, total int) {
		mu.Lock()
		defer mu.Unlock()
		ticks = append(ticks, completed)
		assert.Equal(t, 7, total)
	}

	result, err := newTestAnalyzer(completer, store, 0).Analyze(context.Background(), "audit-1", testCompany(), responses, progress)
	require.NoError(t, err)
	assert.Equal(t, 7, result.Errored)

	mu.Lock()
	defer mu.Unlock()
	sort.Ints(ticks)
	assert.Equal(t, []int{5, 7}, ticks)
}

func TestAnalyzer_Analyze_Cancellation(t *testing.T) {
	completer := &fakeCompleter{
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	store := &fakeStore{}
	responses := []*ent.AuditResponse{
		testResponse("resp-1", "Acme Analytics wins."),
		testResponse("resp-2", "RivalOne wins."),
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	var result *Result
	var err error
	go func() {
		defer close(done)
		result, err = newTestAnalyzer(completer, store, 1).Analyze(ctx, "audit-1", testCompany(), responses, nil)
	}()

	// Cancel while the first subtask call is in flight, then let it finish.
	<-completer.started
	cancel()
	close(completer.release)

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Analyze did not return after cancellation")
	}

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, result)

	// The in-flight call completed but its analysis was discarded, and the
	// second response never started.
	assert.Equal(t, 1, completer.callCount())
	assert.Zero(t, store.count())
}
