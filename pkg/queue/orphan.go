package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/specularhq/specular/ent"
	"github.com/specularhq/specular/ent/audit"
	"github.com/specularhq/specular/pkg/metrics"
)

// sweepState tracks stuck-audit sweep metrics (thread-safe).
type sweepState struct {
	mu        sync.Mutex
	lastSweep time.Time
	recovered int
}

// runStuckSweep periodically scans for stuck audits.
// All replicas run this independently — operations are idempotent.
func (p *WorkerPool) runStuckSweep(ctx context.Context) {
	ticker := time.NewTicker(p.config.StuckSweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.recoverStuckAudits(ctx); err != nil {
				slog.Error("Stuck audit sweep failed", "error", err)
			}
		}
	}
}

// recoverStuckAudits finds running audits with stale heartbeats and marks
// them failed. The sweep also refreshes the queue depth gauge.
func (p *WorkerPool) recoverStuckAudits(ctx context.Context) error {
	if pending, err := p.client.Audit.Query().
		Where(audit.StatusEQ(audit.StatusPending)).
		Count(ctx); err == nil {
		metrics.QueueDepth.Set(float64(pending))
	}

	threshold := time.Now().Add(-p.config.StuckThreshold)

	stuck, err := p.client.Audit.Query().
		Where(
			audit.StatusIn(runningStatuses...),
			audit.HeartbeatAtNotNil(),
			audit.HeartbeatAtLT(threshold),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query stuck audits: %w", err)
	}

	if len(stuck) == 0 {
		p.sweeps.mu.Lock()
		p.sweeps.lastSweep = time.Now()
		p.sweeps.mu.Unlock()
		return nil
	}

	slog.Warn("Detected stuck audits", "count", len(stuck))

	recovered := 0
	for _, a := range stuck {
		if err := recoverStuckAudit(ctx, a, p.publisher); err != nil {
			slog.Error("Failed to recover stuck audit",
				"audit_id", a.ID,
				"error", err)
			continue
		}
		recovered++
		metrics.StuckAuditsRecovered.Inc()
	}

	p.sweeps.mu.Lock()
	p.sweeps.lastSweep = time.Now()
	p.sweeps.recovered += recovered
	p.sweeps.mu.Unlock()

	return nil
}

// recoverStuckAudit marks a single stuck audit as failed (terminal — no resume)
// and publishes the terminal status event.
func recoverStuckAudit(ctx context.Context, a *ent.Audit, publisher EventPublisher) error {
	log := slog.With("audit_id", a.ID)

	lastHeartbeat := "unknown"
	if a.HeartbeatAt != nil {
		lastHeartbeat = a.HeartbeatAt.Format(time.RFC3339)
	}

	claimedBy := "unknown"
	if a.ClaimedBy != nil {
		claimedBy = *a.ClaimedBy
	}

	cause := fmt.Errorf("stuck audit recovered: no heartbeat from %s since %s", claimedBy, lastHeartbeat)
	err := a.Update().
		SetStatus(audit.StatusFailed).
		SetCompletedAt(time.Now()).
		SetErrorMessage(cause.Error()).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark audit as failed: %w", err)
	}

	publishStatus(ctx, publisher, a.ID, audit.StatusFailed, cause)

	log.Warn("Stuck audit marked as failed",
		"claimed_by", claimedBy,
		"last_heartbeat", lastHeartbeat)
	return nil
}

// RecoverStartupOrphans performs a one-time cleanup of audits claimed by this
// replica's workers that were running when the replica previously crashed.
// They fail rather than re-queue: re-running query generation would produce a
// different query set on top of the rows already persisted.
// Called once during startup, before the worker pool begins processing.
func RecoverStartupOrphans(ctx context.Context, client *ent.Client, replicaID string, publisher EventPublisher) error {
	orphans, err := client.Audit.Query().
		Where(
			audit.StatusIn(runningStatuses...),
			audit.ClaimedByHasPrefix(replicaID+"-worker-"),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query startup orphans: %w", err)
	}

	if len(orphans) == 0 {
		return nil
	}

	slog.Warn("Found startup orphans from previous run",
		"replica_id", replicaID,
		"count", len(orphans))

	now := time.Now()
	for _, a := range orphans {
		cause := fmt.Errorf("stuck audit recovered: replica %s restarted mid-run", replicaID)
		err := a.Update().
			SetStatus(audit.StatusFailed).
			SetCompletedAt(now).
			SetErrorMessage(cause.Error()).
			Exec(ctx)
		if err != nil {
			slog.Error("Failed to mark startup orphan",
				"audit_id", a.ID,
				"error", err)
			continue
		}
		metrics.StuckAuditsRecovered.Inc()

		publishStatus(ctx, publisher, a.ID, audit.StatusFailed, cause)

		slog.Info("Startup orphan recovered", "audit_id", a.ID)
	}

	return nil
}
