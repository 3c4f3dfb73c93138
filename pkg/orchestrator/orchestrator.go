// Package orchestrator fans audit queries out across LLM providers and
// persists one response row per (query, provider) cell, success or failure.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/semaphore"

	"github.com/specularhq/specular/ent"
	"github.com/specularhq/specular/pkg/config"
	"github.com/specularhq/specular/pkg/llm"
	"github.com/specularhq/specular/pkg/models"
	"github.com/specularhq/specular/pkg/services"
)

// DefaultConcurrency bounds in-flight cells when no width is configured.
const DefaultConcurrency = 16

// progressEvery is how many completed cells separate progress ticks.
const progressEvery = 8

// Completer is the slice of the rate-limited caller the orchestrator needs.
type Completer interface {
	Complete(ctx context.Context, provider string, req llm.CompletionRequest) (*llm.CompletionResponse, error)
}

// CellStore persists fan-out cells. Implemented by services.ResponseService.
type CellStore interface {
	SaveCell(ctx context.Context, cell models.ResponseCell) (*ent.AuditResponse, error)
}

// ProgressFunc receives completion ticks as cells finish. Called from cell
// goroutines, so implementations must be safe for concurrent use.
type ProgressFunc func(completed, total int)

// Result summarizes a completed fan-out.
type Result struct {
	Total     int
	Succeeded int
	Failed    int
}

// Orchestrator runs the (query × provider) fan-out for one audit at a time.
// Stateless across audits; safe for concurrent use by multiple workers.
type Orchestrator struct {
	completer   Completer
	store       CellStore
	registry    *config.ProviderRegistry
	concurrency int64
}

// New creates an Orchestrator gated at the given concurrency.
func New(completer Completer, store CellStore, registry *config.ProviderRegistry, concurrency int) *Orchestrator {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	return &Orchestrator{
		completer:   completer,
		store:       store,
		registry:    registry,
		concurrency: int64(concurrency),
	}
}

// Collect launches one task per (query, provider) cell, bounded by the
// semaphore. Every cell persists a row: successes with text and metrics,
// terminal failures with empty text and the error kind. Cell failures never
// abort siblings; only a persistence failure aborts the phase.
//
// Cancellation is observed between task starts. In-flight provider calls run
// to completion on a severed context (the spend has already happened) but
// their results are discarded once ctx is cancelled.
func (o *Orchestrator) Collect(ctx context.Context, auditID string, queries []*ent.AuditQuery, providers []string, progress ProgressFunc) (*Result, error) {
	total := len(queries) * len(providers)
	result := &Result{Total: total}
	if total == 0 {
		return result, nil
	}

	sem := semaphore.NewWeighted(o.concurrency)
	var wg sync.WaitGroup
	var completed, succeeded atomic.Int64
	var saveErrOnce sync.Once
	var saveErr error

	launched := 0
	for _, q := range queries {
		for _, providerID := range providers {
			if err := sem.Acquire(ctx, 1); err != nil {
				wg.Wait()
				slog.Info("response collection cancelled",
					"audit_id", auditID,
					"launched", launched,
					"total", total)
				return nil, fmt.Errorf("response collection cancelled: %w", err)
			}
			launched++

			wg.Add(1)
			go func(q *ent.AuditQuery, providerID string) {
				defer wg.Done()
				defer sem.Release(1)

				ok, err := o.runCell(ctx, auditID, q, providerID)
				if err != nil {
					saveErrOnce.Do(func() { saveErr = err })
					return
				}
				if ok {
					succeeded.Add(1)
				}
				done := completed.Add(1)
				if progress != nil && (done%progressEvery == 0 || done == int64(total)) {
					progress(int(done), total)
				}
			}(q, providerID)
		}
	}

	wg.Wait()

	if saveErr != nil {
		return nil, fmt.Errorf("failed to persist response cells: %w", saveErr)
	}
	if ctx.Err() != nil {
		return nil, fmt.Errorf("response collection cancelled: %w", ctx.Err())
	}

	result.Succeeded = int(succeeded.Load())
	result.Failed = total - result.Succeeded
	return result, nil
}

// runCell calls one provider for one query and persists the outcome. The
// bool reports cell success; the error is reserved for persistence failures.
func (o *Orchestrator) runCell(ctx context.Context, auditID string, q *ent.AuditQuery, providerID string) (bool, error) {
	cell := models.ResponseCell{
		AuditID:  auditID,
		QueryID:  q.ID,
		Provider: providerID,
	}

	pc, err := o.registry.Get(providerID)
	if err != nil {
		cell.ErrorKind = string(llm.KindPermanent)
		cell.ErrorMessage = err.Error()
		return false, o.saveCell(cell)
	}

	// The fan-out asks the raw user question: no system prompt, no format
	// constraint, no output cap. The organic answer is what gets analyzed.
	req := llm.CompletionRequest{
		Prompt: q.Text,
		Model:  pc.Model,
	}

	// Sever cancellation so an in-flight call runs to completion; the
	// caller's per-request timeout still bounds it.
	resp, err := o.completer.Complete(context.WithoutCancel(ctx), providerID, req)

	if ctx.Err() != nil {
		// Audit cancelled while this cell was in flight; discard.
		return false, nil
	}

	if err != nil {
		cell.ErrorKind = string(llm.KindOf(err))
		cell.ErrorMessage = err.Error()
		slog.Debug("cell failed",
			"audit_id", auditID,
			"query_id", q.ID,
			"provider", providerID,
			"kind", cell.ErrorKind)
		return false, o.saveCell(cell)
	}

	cell.Model = resp.Model
	cell.Text = resp.Text
	cell.LatencyMs = int(resp.LatencyMs)
	cell.InputTokens = resp.InputTokens
	cell.OutputTokens = resp.OutputTokens
	cell.CostEstimate = estimateCost(pc, resp.InputTokens, resp.OutputTokens)

	if err := o.saveCell(cell); err != nil {
		return false, err
	}
	return true, nil
}

// saveCell persists a cell, tolerating replays: a previous run of this audit
// may already have written the row.
func (o *Orchestrator) saveCell(cell models.ResponseCell) error {
	_, err := o.store.SaveCell(context.Background(), cell)
	if errors.Is(err, services.ErrAlreadyExists) {
		slog.Debug("cell already persisted, skipping",
			"audit_id", cell.AuditID,
			"query_id", cell.QueryID,
			"provider", cell.Provider)
		return nil
	}
	return err
}

// estimateCost prices a completion from the provider's per-million-token
// rates. Returns nil when pricing is not configured.
func estimateCost(pc *config.ProviderConfig, inputTokens, outputTokens int) *float64 {
	if pc.InputCostPer1M == 0 && pc.OutputCostPer1M == 0 {
		return nil
	}
	cost := float64(inputTokens)*pc.InputCostPer1M/1e6 + float64(outputTokens)*pc.OutputCostPer1M/1e6
	return &cost
}
