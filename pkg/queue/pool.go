package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/specularhq/specular/ent"
	"github.com/specularhq/specular/ent/audit"
	"github.com/specularhq/specular/pkg/config"
	"github.com/specularhq/specular/pkg/metrics"
)

// WorkerPool runs this replica's queue workers plus the stuck-audit sweep.
type WorkerPool struct {
	replicaID string
	client    *ent.Client
	config    *config.PipelineConfig
	executor  AuditExecutor
	publisher EventPublisher
	workers   []*Worker
	stopCh    chan struct{}
	stopOnce  sync.Once
	wg        sync.WaitGroup

	// Audit cancel registry: audit_id → cancel function
	activeAudits map[string]context.CancelFunc
	mu           sync.RWMutex
	started      bool

	// Stuck-audit sweep state
	sweeps sweepState
}

// NewWorkerPool builds a pool; Start spawns the workers.
// publisher may be nil (event delivery disabled).
func NewWorkerPool(replicaID string, client *ent.Client, cfg *config.PipelineConfig, executor AuditExecutor, publisher EventPublisher) *WorkerPool {
	return &WorkerPool{
		replicaID:    replicaID,
		client:       client,
		config:       cfg,
		executor:     executor,
		publisher:    publisher,
		workers:      make([]*Worker, 0, cfg.WorkerCount),
		stopCh:       make(chan struct{}),
		activeAudits: make(map[string]context.CancelFunc),
	}
}

// Start spawns the worker goroutines and the stuck-audit sweep. Duplicate
// calls are ignored.
func (p *WorkerPool) Start(ctx context.Context) error {
	if p.started {
		slog.Warn("Worker pool already started, ignoring duplicate Start call", "replica_id", p.replicaID)
		return nil
	}
	p.started = true

	slog.Info("Starting worker pool", "replica_id", p.replicaID, "worker_count", p.config.WorkerCount)

	for i := 0; i < p.config.WorkerCount; i++ {
		workerID := fmt.Sprintf("%s-worker-%d", p.replicaID, i)
		worker := NewWorker(workerID, p.replicaID, p.client, p.config, p.executor, p, p.publisher)
		p.workers = append(p.workers, worker)
		worker.Start(ctx)
	}

	// The sweep shares the pool's lifetime.
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.runStuckSweep(ctx)
	}()

	slog.Info("Worker pool started")
	return nil
}

// Stop drains the pool: each worker finishes its current audit before
// exiting, then the sweep is shut down.
func (p *WorkerPool) Stop() {
	slog.Info("Draining worker pool")

	active := p.getActiveAuditIDs()
	if len(active) > 0 {
		slog.Info("Waiting for active audits to complete",
			"count", len(active),
			"audit_ids", active)
	}

	for _, worker := range p.workers {
		worker.Stop()
	}

	p.stopOnce.Do(func() { close(p.stopCh) })
	p.wg.Wait()

	slog.Info("Worker pool drained")
}

// RegisterAudit stores a cancel function for manual cancellation.
func (p *WorkerPool) RegisterAudit(auditID string, cancel context.CancelFunc) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.activeAudits[auditID] = cancel
}

// UnregisterAudit removes the cancel function when processing ends.
func (p *WorkerPool) UnregisterAudit(auditID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.activeAudits, auditID)
}

// CancelAudit triggers context cancellation for an audit on this replica.
// Returns true if the audit was found and cancelled on this replica. Audits
// running elsewhere pick up the persisted cancel_requested flag at their
// next phase boundary instead.
func (p *WorkerPool) CancelAudit(auditID string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if cancel, ok := p.activeAudits[auditID]; ok {
		cancel()
		return true
	}
	return false
}

// Health assembles the pool's health report, refreshing the queue depth
// gauge as a side effect.
func (p *WorkerPool) Health() *PoolHealth {
	ctx := context.Background()

	queueDepth, errQ := p.client.Audit.Query().
		Where(audit.StatusEQ(audit.StatusPending)).
		Count(ctx)
	if errQ != nil {
		slog.Error("Failed to query queue depth for health check",
			"replica_id", p.replicaID,
			"error", errQ)
	} else {
		metrics.QueueDepth.Set(float64(queueDepth))
	}

	activeAudits, errA := p.client.Audit.Query().
		Where(
			audit.StatusIn(runningStatuses...),
			audit.ClaimedByHasPrefix(p.replicaID+"-worker-"),
		).
		Count(ctx)
	if errA != nil {
		slog.Error("Failed to query active audits for health check",
			"replica_id", p.replicaID,
			"error", errA)
	}

	workerStats := make([]WorkerHealth, len(p.workers))
	activeWorkers := 0
	for i, worker := range p.workers {
		stats := worker.Health()
		workerStats[i] = stats
		if stats.Status == string(WorkerStatusWorking) {
			activeWorkers++
		}
	}

	// An unreachable database makes the whole pool unhealthy.
	dbHealthy := errQ == nil && errA == nil
	isHealthy := len(p.workers) > 0 && activeAudits <= p.config.MaxConcurrentAudits && dbHealthy

	p.sweeps.mu.Lock()
	lastStuckSweep := p.sweeps.lastSweep
	stuckRecovered := p.sweeps.recovered
	p.sweeps.mu.Unlock()

	var dbError string
	if !dbHealthy {
		if errQ != nil {
			dbError = fmt.Sprintf("queue depth query failed: %v", errQ)
		} else if errA != nil {
			dbError = fmt.Sprintf("active audits query failed: %v", errA)
		}
	}

	return &PoolHealth{
		IsHealthy:      isHealthy,
		DBReachable:    dbHealthy,
		DBError:        dbError,
		ReplicaID:      p.replicaID,
		ActiveWorkers:  activeWorkers,
		TotalWorkers:   len(p.workers),
		ActiveAudits:   activeAudits,
		MaxConcurrent:  p.config.MaxConcurrentAudits,
		QueueDepth:     queueDepth,
		WorkerStats:    workerStats,
		LastStuckSweep: lastStuckSweep,
		StuckRecovered: stuckRecovered,
	}
}

// getActiveAuditIDs returns IDs of currently processing audits (for logging).
func (p *WorkerPool) getActiveAuditIDs() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	audits := make([]string, 0, len(p.activeAudits))
	for id := range p.activeAudits {
		audits = append(audits, id)
	}
	return audits
}
