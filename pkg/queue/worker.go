package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/specularhq/specular/ent"
	"github.com/specularhq/specular/ent/audit"
	"github.com/specularhq/specular/pkg/config"
	"github.com/specularhq/specular/pkg/events"
	"github.com/specularhq/specular/pkg/metrics"
)

// WorkerStatus is a worker's coarse activity state.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// runningStatuses are the non-terminal statuses a claimed audit can hold
// while a worker drives it through the pipeline.
var runningStatuses = []audit.Status{
	audit.StatusProcessing,
	audit.StatusAnalyzing,
	audit.StatusScoring,
	audit.StatusPopulating,
	audit.StatusCancelRequested,
}

// EventPublisher is the subset of events.Publisher the queue publishes
// through. A nil publisher disables event delivery.
type EventPublisher interface {
	PublishStatus(ctx context.Context, auditID string, payload events.StatusPayload) error
	PublishProgress(ctx context.Context, auditID string, payload events.ProgressPayload) error
	PublishDashboardReady(ctx context.Context, auditID string) error
}

// AuditRegistry is the subset of WorkerPool used by Worker for cancel registration.
type AuditRegistry interface {
	RegisterAudit(auditID string, cancel context.CancelFunc)
	UnregisterAudit(auditID string)
}

// Worker is a single queue worker that polls for and processes audits.
type Worker struct {
	id        string
	replicaID string
	client    *ent.Client
	config    *config.PipelineConfig
	executor  AuditExecutor
	publisher EventPublisher
	pool      AuditRegistry
	stopCh    chan struct{}
	stopOnce  sync.Once
	wg        sync.WaitGroup

	// Health tracking
	mu              sync.RWMutex
	status          WorkerStatus
	currentAuditID  string
	auditsProcessed int
	lastActivity    time.Time
}

// NewWorker builds a queue worker.
// publisher may be nil (event delivery disabled).
func NewWorker(id, replicaID string, client *ent.Client, cfg *config.PipelineConfig, executor AuditExecutor, pool AuditRegistry, publisher EventPublisher) *Worker {
	return &Worker{
		id:           id,
		replicaID:    replicaID,
		client:       client,
		config:       cfg,
		executor:     executor,
		publisher:    publisher,
		pool:         pool,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start launches the polling loop.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the polling loop and blocks until it exits. Calling it
// again is a no-op.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health reports a snapshot of the worker's activity.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:              w.id,
		Status:          string(w.status),
		CurrentAuditID:  w.currentAuditID,
		AuditsProcessed: w.auditsProcessed,
		LastActivity:    w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "replica_id", w.replicaID)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoAuditsAvailable) || errors.Is(err, ErrAtCapacity) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing audit", "error", err)
				w.sleep(time.Second) // Brief backoff on error
			}
		}
	}
}

// sleep pauses for d, returning early on stop.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess checks capacity, claims an audit, and processes it.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	// The capacity check is best-effort: concurrent workers race it, but the
	// overshoot is bounded by WorkerCount and poll jitter spreads them out.
	activeCount, err := w.client.Audit.Query().
		Where(audit.StatusIn(runningStatuses...)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("checking active audits: %w", err)
	}
	if activeCount >= w.config.MaxConcurrentAudits {
		return ErrAtCapacity
	}

	a, err := w.claimNextAudit(ctx)
	if err != nil {
		return err
	}

	log := slog.With("audit_id", a.ID, "worker_id", w.id)
	log.Info("Audit claimed",
		"company_id", a.CompanyID,
		"providers", a.Providers,
		"query_count", a.QueryCount)

	// Publish "processing" to both audit and global channels
	publishStatus(ctx, w.publisher, a.ID, audit.StatusProcessing, nil)

	w.setStatus(WorkerStatusWorking, a.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	// No deadline on the audit context; stuck detection covers hangs.
	auditCtx, cancelAudit := context.WithCancel(ctx)
	defer cancelAudit()

	// Registering the cancel func is what lets the API abort this audit
	// mid-flight.
	w.pool.RegisterAudit(a.ID, cancelAudit)
	defer w.pool.UnregisterAudit(a.ID)

	heartbeatCtx, cancelHeartbeat := context.WithCancel(auditCtx)
	defer cancelHeartbeat()
	go w.runHeartbeat(heartbeatCtx, a.ID)

	result := w.executor.Execute(auditCtx, a)

	// A nil result from the executor is a bug; substitute a terminal one so
	// the audit never wedges in a running status.
	if result == nil {
		if auditCtx.Err() != nil {
			result = &ExecutionResult{Status: audit.StatusCancelled, Err: ErrAuditCancelled}
		} else {
			result = &ExecutionResult{Status: audit.StatusFailed, Err: fmt.Errorf("executor returned nil result")}
		}
	}

	cancelHeartbeat()

	// Terminal writes go through a background context; the audit context may
	// already be cancelled.
	if err := w.finalizeAudit(context.Background(), a, result); err != nil {
		log.Error("Failed to write terminal audit status", "error", err)
		return err
	}
	metrics.AuditsProcessed.WithLabelValues(string(result.Status)).Inc()

	var cause error
	if result.Status == audit.StatusFailed {
		cause = result.Err
	}
	publishStatus(context.Background(), w.publisher, a.ID, result.Status, cause)

	if result.Status == audit.StatusCompleted {
		w.publishDashboardReady(context.Background(), a.ID)
	}

	w.mu.Lock()
	w.auditsProcessed++
	w.mu.Unlock()

	log.Info("Audit processing complete", "status", result.Status)
	return nil
}

// claimNextAudit atomically claims the next pending audit using FOR UPDATE SKIP LOCKED.
func (w *Worker) claimNextAudit(ctx context.Context) (*ent.Audit, error) {
	tx, err := w.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// Oldest pending first; SKIP LOCKED keeps concurrent claimers on
	// disjoint rows.
	a, err := tx.Audit.Query().
		Where(audit.StatusEQ(audit.StatusPending)).
		Order(ent.Asc(audit.FieldCreatedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoAuditsAvailable
		}
		return nil, fmt.Errorf("failed to query pending audit: %w", err)
	}

	// Claiming flips the row to processing and stamps ownership.
	now := time.Now()
	a, err = a.Update().
		SetStatus(audit.StatusProcessing).
		SetClaimedBy(w.id).
		SetStartedAt(now).
		SetHeartbeatAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim audit: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}

	return a, nil
}

// runHeartbeat periodically updates heartbeat_at for stuck-audit detection.
func (w *Worker) runHeartbeat(ctx context.Context, auditID string) {
	ticker := time.NewTicker(w.config.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.client.Audit.UpdateOneID(auditID).
				SetHeartbeatAt(time.Now()).
				Exec(ctx); err != nil {
				slog.Warn("Heartbeat update failed", "audit_id", auditID, "error", err)
			}
		}
	}
}

// finalizeAudit writes the terminal audit status. Completed audits record
// the wall-clock processing time measured from the claim.
//
// The completed write is guarded against cancel_requested: a cancel that
// commits after the executor's last boundary check wins, and result is
// rewritten to cancelled so the published outcome matches the row. Failed
// and cancelled writes are unconditional.
func (w *Worker) finalizeAudit(ctx context.Context, a *ent.Audit, result *ExecutionResult) error {
	if result.Status == audit.StatusCompleted {
		update := w.client.Audit.Update().
			Where(
				audit.IDEQ(a.ID),
				audit.StatusNEQ(audit.StatusCancelRequested),
			).
			SetStatus(audit.StatusCompleted).
			SetCompletedAt(time.Now())
		if a.StartedAt != nil {
			update = update.SetProcessingTimeMs(int(time.Since(*a.StartedAt).Milliseconds()))
		}
		n, err := update.Save(ctx)
		if err != nil {
			return err
		}
		if n > 0 {
			return nil
		}
		result.Status = audit.StatusCancelled
		result.Err = ErrAuditCancelled
	}

	update := w.client.Audit.UpdateOneID(a.ID).
		SetStatus(result.Status).
		SetCompletedAt(time.Now())
	if result.Err != nil {
		update = update.SetErrorMessage(result.Err.Error())
	}

	return update.Exec(ctx)
}

// publishDashboardReady announces that the dashboard record is readable.
func (w *Worker) publishDashboardReady(ctx context.Context, auditID string) {
	if w.publisher == nil {
		return
	}
	if err := w.publisher.PublishDashboardReady(ctx, auditID); err != nil {
		slog.Warn("Failed to publish dashboard ready event",
			"audit_id", auditID, "error", err)
	}
}

// publishStatus publishes an audit status event to both the audit-specific
// and global channels. Non-blocking: errors are logged. Safe with a nil publisher.
func publishStatus(ctx context.Context, publisher EventPublisher, auditID string, status audit.Status, cause error) {
	if publisher == nil {
		return
	}
	payload := events.StatusPayload{
		Type:      events.EventTypeStatus,
		AuditID:   auditID,
		Status:    status,
		Timestamp: events.NowRFC3339(),
	}
	if cause != nil {
		payload.Error = cause.Error()
	}
	if err := publisher.PublishStatus(ctx, auditID, payload); err != nil {
		slog.Warn("Failed to publish audit status",
			"audit_id", auditID, "status", status, "error", err)
	}
}

// pollInterval jitters the configured poll period.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Uniform over [base-jitter, base+jitter].
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus records a health-tracking transition.
func (w *Worker) setStatus(status WorkerStatus, auditID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentAuditID = auditID
	w.lastActivity = time.Now()
}
