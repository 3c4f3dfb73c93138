// Package queue implements the audit job processor: a pool of workers that
// claim pending audits with FOR UPDATE SKIP LOCKED, drive them through the
// pipeline phases, and recover audits orphaned by crashed replicas.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/specularhq/specular/ent"
	"github.com/specularhq/specular/ent/audit"
)

// Sentinel errors for queue operations.
var (
	// ErrNoAuditsAvailable indicates no pending audits are ready to claim.
	ErrNoAuditsAvailable = errors.New("no audits available")

	// ErrAtCapacity indicates the global concurrent-audit limit has been
	// reached.
	ErrAtCapacity = errors.New("at capacity")

	// ErrAuditCancelled indicates cancellation was observed at a phase
	// boundary.
	ErrAuditCancelled = errors.New("audit cancelled")
)

// AuditExecutor processes a claimed audit through the pipeline phases.
//
// The executor owns the phase state machine internally: it advances the
// audit row through the non-terminal statuses and persists every phase
// artifact (queries, responses, analyses, aggregate, dashboard) as it goes.
// The worker only handles claiming, heartbeat, the terminal status write,
// and terminal event publishing.
type AuditExecutor interface {
	// Execute runs the audit to a terminal outcome. Implementations should
	// return a non-nil result; the worker synthesizes one if they don't.
	Execute(ctx context.Context, a *ent.Audit) *ExecutionResult
}

// ExecutionResult is lightweight, just the terminal state. All intermediate
// state was already written to the database by the executor.
type ExecutionResult struct {
	// Status is the terminal status to persist: completed, failed, or
	// cancelled.
	Status audit.Status

	// Err carries the failure or cancellation cause. Stored as the audit's
	// error_message when set.
	Err error
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy      bool           `json:"is_healthy"`
	DBReachable    bool           `json:"db_reachable"`
	DBError        string         `json:"db_error,omitempty"`
	ReplicaID      string         `json:"replica_id"`
	ActiveWorkers  int            `json:"active_workers"`
	TotalWorkers   int            `json:"total_workers"`
	ActiveAudits   int            `json:"active_audits"`
	MaxConcurrent  int            `json:"max_concurrent"`
	QueueDepth     int            `json:"queue_depth"`
	WorkerStats    []WorkerHealth `json:"worker_stats"`
	LastStuckSweep time.Time      `json:"last_stuck_sweep"`
	StuckRecovered int            `json:"stuck_recovered"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID              string    `json:"id"`
	Status          string    `json:"status"` // "idle" or "working"
	CurrentAuditID  string    `json:"current_audit_id,omitempty"`
	AuditsProcessed int       `json:"audits_processed"`
	LastActivity    time.Time `json:"last_activity"`
}
