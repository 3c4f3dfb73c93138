package orchestrator

import (
	"context"
	"errors"
	"sort"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/specularhq/specular/ent"
	"github.com/specularhq/specular/pkg/config"
	"github.com/specularhq/specular/pkg/llm"
	"github.com/specularhq/specular/pkg/models"
	"github.com/specularhq/specular/pkg/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCompleter answers per-provider with a canned response or error and
// tracks in-flight concurrency.
type fakeCompleter struct {
	mu       sync.Mutex
	errs     map[string]error // provider -> error
	delay    time.Duration
	release  chan struct{} // when set, calls block until closed
	started  chan struct{} // when set, receives one signal per call start
	inFlight atomic.Int64
	maxSeen  atomic.Int64
	calls    atomic.Int64
}

func (f *fakeCompleter) Complete(_ context.Context, provider string, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
	f.calls.Add(1)
	cur := f.inFlight.Add(1)
	defer f.inFlight.Add(-1)
	for {
		prev := f.maxSeen.Load()
		if cur <= prev || f.maxSeen.CompareAndSwap(prev, cur) {
			break
		}
	}

	if f.started != nil {
		f.started <- struct{}{}
	}
	if f.release != nil {
		<-f.release
	}
	if f.delay > 0 {
		time.Sleep(f.delay)
	}

	f.mu.Lock()
	err := f.errs[provider]
	f.mu.Unlock()
	if err != nil {
		return nil, err
	}

	return &llm.CompletionResponse{
		Text:         "answer to: " + req.Prompt,
		FinishReason: llm.FinishStop,
		Model:        req.Model,
		InputTokens:  100,
		OutputTokens: 200,
		LatencyMs:    42,
	}, nil
}

// fakeStore records cells and can inject save errors.
type fakeStore struct {
	mu      sync.Mutex
	cells   []models.ResponseCell
	saveErr error
}

func (f *fakeStore) SaveCell(_ context.Context, cell models.ResponseCell) (*ent.AuditResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	f.cells = append(f.cells, cell)
	return &ent.AuditResponse{ID: "resp-" + cell.QueryID + "-" + cell.Provider}, nil
}

func (f *fakeStore) byProvider(provider string) []models.ResponseCell {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.ResponseCell
	for _, c := range f.cells {
		if c.Provider == provider {
			out = append(out, c)
		}
	}
	return out
}

func (f *fakeStore) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.cells)
}

func testRegistry() *config.ProviderRegistry {
	return config.NewProviderRegistry(map[string]*config.ProviderConfig{
		"openai":    {Model: "gpt-4o", InputCostPer1M: 1.0, OutputCostPer1M: 2.0},
		"anthropic": {Model: "claude-sonnet"},
	})
}

func testQueries(texts ...string) []*ent.AuditQuery {
	queries := make([]*ent.AuditQuery, len(texts))
	for i, text := range texts {
		queries[i] = &ent.AuditQuery{ID: "q" + string(rune('1'+i)), Text: text}
	}
	return queries
}

func TestOrchestrator_Collect(t *testing.T) {
	ctx := context.Background()

	t.Run("persists one row per cell with metrics", func(t *testing.T) {
		completer := &fakeCompleter{}
		store := &fakeStore{}
		o := New(completer, store, testRegistry(), 4)

		result, err := o.Collect(ctx, "audit-1", testQueries("first query", "second query"), []string{"openai", "anthropic"}, nil)
		require.NoError(t, err)
		assert.Equal(t, &Result{Total: 4, Succeeded: 4, Failed: 0}, result)
		require.Equal(t, 4, store.count())

		openaiCells := store.byProvider("openai")
		require.Len(t, openaiCells, 2)
		cell := openaiCells[0]
		assert.Equal(t, "audit-1", cell.AuditID)
		assert.Equal(t, "gpt-4o", cell.Model)
		assert.Contains(t, cell.Text, "answer to:")
		assert.Equal(t, 42, cell.LatencyMs)
		assert.Equal(t, 100, cell.InputTokens)
		assert.Equal(t, 200, cell.OutputTokens)
		require.NotNil(t, cell.CostEstimate)
		assert.InDelta(t, (100*1.0+200*2.0)/1e6, *cell.CostEstimate, 1e-9)
	})

	t.Run("no cost estimate without configured pricing", func(t *testing.T) {
		completer := &fakeCompleter{}
		store := &fakeStore{}
		o := New(completer, store, testRegistry(), 4)

		_, err := o.Collect(ctx, "audit-1", testQueries("a query"), []string{"anthropic"}, nil)
		require.NoError(t, err)
		cells := store.byProvider("anthropic")
		require.Len(t, cells, 1)
		assert.Nil(t, cells[0].CostEstimate)
	})

	t.Run("failed cells persist with error kind and never abort siblings", func(t *testing.T) {
		completer := &fakeCompleter{errs: map[string]error{
			"anthropic": &llm.ProviderError{Provider: "anthropic", Kind: llm.KindTransient, Message: "upstream 503"},
		}}
		store := &fakeStore{}
		o := New(completer, store, testRegistry(), 4)

		result, err := o.Collect(ctx, "audit-1", testQueries("first query", "second query"), []string{"openai", "anthropic"}, nil)
		require.NoError(t, err)
		assert.Equal(t, 2, result.Succeeded)
		assert.Equal(t, 2, result.Failed)

		failedCells := store.byProvider("anthropic")
		require.Len(t, failedCells, 2)
		for _, cell := range failedCells {
			assert.Empty(t, cell.Text)
			assert.Equal(t, "transient", cell.ErrorKind)
			assert.Contains(t, cell.ErrorMessage, "upstream 503")
		}
	})

	t.Run("unconfigured provider persists a permanent failure row", func(t *testing.T) {
		completer := &fakeCompleter{}
		store := &fakeStore{}
		o := New(completer, store, testRegistry(), 4)

		result, err := o.Collect(ctx, "audit-1", testQueries("a query"), []string{"perplexity"}, nil)
		require.NoError(t, err)
		assert.Equal(t, 1, result.Failed)

		cells := store.byProvider("perplexity")
		require.Len(t, cells, 1)
		assert.Equal(t, "permanent", cells[0].ErrorKind)
		assert.Zero(t, completer.calls.Load())
	})

	t.Run("duplicate rows from a previous run are benign", func(t *testing.T) {
		completer := &fakeCompleter{}
		store := &fakeStore{saveErr: services.ErrAlreadyExists}
		o := New(completer, store, testRegistry(), 4)

		result, err := o.Collect(ctx, "audit-1", testQueries("a query"), []string{"openai"}, nil)
		require.NoError(t, err)
		assert.Equal(t, 1, result.Succeeded)
	})

	t.Run("persistence failure aborts the phase", func(t *testing.T) {
		completer := &fakeCompleter{}
		store := &fakeStore{saveErr: errors.New("connection refused")}
		o := New(completer, store, testRegistry(), 4)

		_, err := o.Collect(ctx, "audit-1", testQueries("a query"), []string{"openai"}, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to persist response cells")
	})

	t.Run("empty grid is a no-op", func(t *testing.T) {
		completer := &fakeCompleter{}
		store := &fakeStore{}
		o := New(completer, store, testRegistry(), 4)

		result, err := o.Collect(ctx, "audit-1", nil, []string{"openai"}, nil)
		require.NoError(t, err)
		assert.Equal(t, &Result{}, result)
		assert.Zero(t, completer.calls.Load())
	})
}

func TestOrchestrator_Collect_Progress(t *testing.T) {
	ctx := context.Background()

	var mu sync.Mutex
	var ticks []int
	progress := func(completed, total int) {
		mu.Lock()
		defer mu.Unlock()
		ticks = append(ticks, completed)
		assert.Equal(t, 10, total)
	}

	completer := &fakeCompleter{}
	store := &fakeStore{}
	o := New(completer, store, testRegistry(), 4)

	queries := testQueries("one", "two", "three", "four", "five")
	_, err := o.Collect(ctx, "audit-1", queries, []string{"openai", "anthropic"}, progress)
	require.NoError(t, err)

	mu.Lock()
	defer mu.Unlock()
	sort.Ints(ticks)
	assert.Equal(t, []int{8, 10}, ticks)
}

func TestOrchestrator_Collect_ConcurrencyBound(t *testing.T) {
	ctx := context.Background()

	completer := &fakeCompleter{delay: 20 * time.Millisecond}
	store := &fakeStore{}
	o := New(completer, store, testRegistry(), 2)

	queries := testQueries("one", "two", "three")
	_, err := o.Collect(ctx, "audit-1", queries, []string{"openai", "anthropic"}, nil)
	require.NoError(t, err)
	assert.LessOrEqual(t, completer.maxSeen.Load(), int64(2))
	assert.Equal(t, int64(6), completer.calls.Load())
}

func TestOrchestrator_Collect_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	completer := &fakeCompleter{
		started: make(chan struct{}, 4),
		release: make(chan struct{}),
	}
	store := &fakeStore{}
	o := New(completer, store, testRegistry(), 1)

	done := make(chan error, 1)
	go func() {
		_, err := o.Collect(ctx, "audit-1", testQueries("one", "two"), []string{"openai"}, nil)
		done <- err
	}()

	// First cell is in flight; cancel, then let it finish.
	<-completer.started
	cancel()
	close(completer.release)

	err := <-done
	require.ErrorIs(t, err, context.Canceled)

	// In-flight call ran to completion but its result was discarded, and no
	// further cell launched.
	assert.Equal(t, int64(1), completer.calls.Load())
	assert.Zero(t, store.count())
}
