package queue

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/specularhq/specular/ent"
	"github.com/specularhq/specular/ent/audit"
	"github.com/specularhq/specular/pkg/config"
	testdb "github.com/specularhq/specular/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createTestCompany creates a company profile for audit fixtures.
func createTestCompany(ctx context.Context, t *testing.T, client *ent.Client) *ent.Company {
	t.Helper()
	company, err := client.Company.Create().
		SetID(uuid.New().String()).
		SetName("Acme Analytics").
		SetDomain("acmeanalytics.io").
		SetDescription("Product analytics for mid-market SaaS teams").
		Save(ctx)
	require.NoError(t, err)
	return company
}

// createTestAudit creates an audit in pending status.
func createTestAudit(ctx context.Context, t *testing.T, client *ent.Client, companyID string) *ent.Audit {
	t.Helper()
	a, err := client.Audit.Create().
		SetID(uuid.New().String()).
		SetCompanyID(companyID).
		SetUserID("test-user").
		SetProviders([]string{"openai", "anthropic"}).
		SetQueryCount(10).
		SetStatus(audit.StatusPending).
		Save(ctx)
	require.NoError(t, err)
	return a
}

// intTestPipelineConfig returns a pipeline config suitable for integration tests.
func intTestPipelineConfig() *config.PipelineConfig {
	return &config.PipelineConfig{
		WorkerCount:             2,
		MaxConcurrentAudits:     10,
		PollInterval:            100 * time.Millisecond,
		PollIntervalJitter:      0,
		HeartbeatInterval:       30 * time.Second,
		StuckThreshold:          2 * time.Second,
		StuckSweepInterval:      1 * time.Second,
		GracefulShutdownTimeout: 10 * time.Second,
	}
}

// auditStatusIs builds an Eventually condition on an audit's persisted status.
// Lookup errors count as "not there yet" since the condition runs on a
// goroutine where require would be unsafe.
func auditStatusIs(ctx context.Context, client *ent.Client, auditID string, want audit.Status) func() bool {
	return func() bool {
		got, err := client.Audit.Get(ctx, auditID)
		return err == nil && got.Status == want
	}
}

func TestClaimNextAudit(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	company := createTestCompany(ctx, t, client)
	a := createTestAudit(ctx, t, client, company.ID)

	cfg := intTestPipelineConfig()
	w := NewWorker("test-worker-0", "test-replica", client, cfg, nil, nil, nil)

	claimed, err := w.claimNextAudit(ctx)
	require.NoError(t, err)
	require.NotNil(t, claimed, "worker should claim the pending audit")
	assert.Equal(t, a.ID, claimed.ID)
	assert.Equal(t, audit.StatusProcessing, claimed.Status)
	require.NotNil(t, claimed.ClaimedBy)
	assert.Equal(t, "test-worker-0", *claimed.ClaimedBy)
	assert.NotNil(t, claimed.StartedAt)
	assert.NotNil(t, claimed.HeartbeatAt)

	// The queue is now empty.
	claimed2, err := w.claimNextAudit(ctx)
	assert.ErrorIs(t, err, ErrNoAuditsAvailable)
	assert.Nil(t, claimed2)
}

func TestConcurrentClaimsAreDisjoint(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	company := createTestCompany(ctx, t, client)

	auditIDs := make(map[string]struct{})
	for i := 0; i < 5; i++ {
		a := createTestAudit(ctx, t, client, company.ID)
		auditIDs[a.ID] = struct{}{}
	}

	// Five workers race for five audits; SKIP LOCKED should hand each worker
	// its own row with no retries needed.
	cfg := intTestPipelineConfig()
	var mu sync.Mutex
	claimed := make([]string, 0, 5)
	errCh := make(chan error, 5)
	var wg sync.WaitGroup

	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			w := NewWorker(fmt.Sprintf("worker-%d", workerID), "test-replica", client, cfg, nil, nil, nil)
			a, err := w.claimNextAudit(ctx)
			if err != nil {
				errCh <- fmt.Errorf("worker-%d claim failed: %w", workerID, err)
				return
			}
			if a != nil {
				mu.Lock()
				claimed = append(claimed, a.ID)
				mu.Unlock()
			} else {
				errCh <- fmt.Errorf("worker-%d got nil audit without error", workerID)
			}
		}(i)
	}
	wg.Wait()
	close(errCh)

	for err := range errCh {
		require.NoError(t, err)
	}

	assert.Len(t, claimed, 5, "all 5 audits should be claimed")

	seen := make(map[string]struct{})
	for _, id := range claimed {
		_, dup := seen[id]
		assert.False(t, dup, "audit %s claimed by multiple workers", id)
		seen[id] = struct{}{}

		_, ok := auditIDs[id]
		assert.True(t, ok, "claimed audit %s was not in original set", id)
	}
}

func TestStuckAuditRecovery(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	company := createTestCompany(ctx, t, client)

	// Simulate a crash: analyzing with a heartbeat way past the threshold.
	staleBeat := time.Now().Add(-10 * time.Minute)
	a, err := client.Audit.Create().
		SetID(uuid.New().String()).
		SetCompanyID(company.ID).
		SetUserID("test-user").
		SetProviders([]string{"openai"}).
		SetQueryCount(10).
		SetStatus(audit.StatusAnalyzing).
		SetClaimedBy("crashed-replica-worker-0").
		SetStartedAt(staleBeat).
		SetHeartbeatAt(staleBeat).
		Save(ctx)
	require.NoError(t, err)

	cfg := intTestPipelineConfig()
	cfg.StuckThreshold = 1 * time.Second

	pub := &capturingPublisher{}
	pool := &WorkerPool{
		replicaID: "test-replica",
		client:    client,
		config:    cfg,
		publisher: pub,
	}

	require.NoError(t, pool.recoverStuckAudits(ctx))

	updated, err := client.Audit.Get(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, audit.StatusFailed, updated.Status)
	assert.NotNil(t, updated.CompletedAt)
	require.NotNil(t, updated.ErrorMessage)
	assert.Contains(t, *updated.ErrorMessage, "stuck audit recovered")
	assert.Contains(t, *updated.ErrorMessage, "crashed-replica-worker-0")

	// The failed status event names the cause.
	statuses := pub.statusesSeen()
	require.Len(t, statuses, 1)
	assert.Equal(t, audit.StatusFailed, statuses[0].Status)
	assert.Contains(t, statuses[0].Error, "stuck audit recovered")

	pool.sweeps.mu.Lock()
	assert.Equal(t, 1, pool.sweeps.recovered)
	pool.sweeps.mu.Unlock()
}

func TestStartupOrphanRecovery(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	company := createTestCompany(ctx, t, client)
	replicaID := "startup-test-replica"

	// Three audits owned by this replica's workers, mid-run.
	phases := []audit.Status{audit.StatusProcessing, audit.StatusAnalyzing, audit.StatusScoring}
	for i, phase := range phases {
		_, err := client.Audit.Create().
			SetID(uuid.New().String()).
			SetCompanyID(company.ID).
			SetUserID("test-user").
			SetProviders([]string{"openai"}).
			SetQueryCount(10).
			SetStatus(phase).
			SetClaimedBy(fmt.Sprintf("%s-worker-%d", replicaID, i)).
			SetStartedAt(time.Now()).
			SetHeartbeatAt(time.Now()).
			Save(ctx)
		require.NoError(t, err)
	}

	// A fourth owned by another replica must survive the recovery untouched.
	otherAudit, err := client.Audit.Create().
		SetID(uuid.New().String()).
		SetCompanyID(company.ID).
		SetUserID("test-user").
		SetProviders([]string{"openai"}).
		SetQueryCount(10).
		SetStatus(audit.StatusProcessing).
		SetClaimedBy("other-replica-worker-0").
		SetStartedAt(time.Now()).
		SetHeartbeatAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	require.NoError(t, RecoverStartupOrphans(ctx, client, replicaID, nil))

	audits, err := client.Audit.Query().
		Where(audit.ClaimedByHasPrefix(replicaID + "-worker-")).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, audits, 3)
	for _, a := range audits {
		assert.Equal(t, audit.StatusFailed, a.Status, "audit %s should be failed", a.ID)
		require.NotNil(t, a.ErrorMessage)
		assert.Contains(t, *a.ErrorMessage, "restarted mid-run")
	}

	other, err := client.Audit.Get(ctx, otherAudit.ID)
	require.NoError(t, err)
	assert.Equal(t, audit.StatusProcessing, other.Status, "other replica's audit should be untouched")
}

// fakeExecutor counts executions and remembers which audits it saw. When gate
// is non-nil, every execution blocks until the gate closes, which pins audits
// in flight for capacity and heartbeat tests.
type fakeExecutor struct {
	processed atomic.Int64
	audits    sync.Map // string → struct{}
	inFlight  atomic.Int64
	gate      chan struct{}
}

func (m *fakeExecutor) Execute(ctx context.Context, a *ent.Audit) *ExecutionResult {
	m.processed.Add(1)
	if a != nil {
		m.audits.Store(a.ID, struct{}{})
	}

	m.inFlight.Add(1)
	defer m.inFlight.Add(-1)

	if m.gate != nil {
		select {
		case <-m.gate:
		case <-ctx.Done():
			return &ExecutionResult{Status: audit.StatusCancelled, Err: ErrAuditCancelled}
		}
	} else {
		select {
		case <-time.After(50 * time.Millisecond):
		case <-ctx.Done():
			return &ExecutionResult{Status: audit.StatusCancelled, Err: ErrAuditCancelled}
		}
	}

	return &ExecutionResult{Status: audit.StatusCompleted}
}

func TestPoolDrivesAuditsToCompletion(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	company := createTestCompany(ctx, t, client)
	for i := 0; i < 3; i++ {
		createTestAudit(ctx, t, client, company.ID)
	}

	cfg := intTestPipelineConfig()
	cfg.WorkerCount = 2
	cfg.PollInterval = 50 * time.Millisecond

	executor := &fakeExecutor{}
	pub := &capturingPublisher{}
	pool := NewWorkerPool("test-replica", client, cfg, executor, pub)

	require.NoError(t, pool.Start(ctx))

	require.Eventually(t, func() bool { return executor.processed.Load() >= 3 },
		10*time.Second, 100*time.Millisecond, "audits were not all processed")

	pool.Stop()

	audits, err := client.Audit.Query().
		Where(audit.StatusEQ(audit.StatusCompleted)).
		All(ctx)
	require.NoError(t, err)
	assert.Len(t, audits, 3, "all 3 audits should be completed")
	for _, a := range audits {
		assert.NotNil(t, a.CompletedAt, "audit %s should have completed_at", a.ID)
		assert.NotNil(t, a.ProcessingTimeMs, "audit %s should have processing_time_ms", a.ID)
	}

	// Each audit gets a processing and a completed status event, plus the
	// dashboard ready announcement.
	statusCounts := make(map[audit.Status]int)
	for _, payload := range pub.statusesSeen() {
		statusCounts[payload.Status]++
	}
	assert.Equal(t, 3, statusCounts[audit.StatusProcessing])
	assert.Equal(t, 3, statusCounts[audit.StatusCompleted])
	assert.Len(t, pub.dashboardSeen(), 3)

	health := pool.Health()
	assert.Equal(t, 2, health.TotalWorkers)
}

func TestMaxConcurrentAuditsEnforced(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	company := createTestCompany(ctx, t, client)
	for i := 0; i < 5; i++ {
		createTestAudit(ctx, t, client, company.ID)
	}

	// WorkerCount equals the cap so the best-effort capacity check cannot
	// overshoot; the sweep is parked out of the way.
	cfg := intTestPipelineConfig()
	cfg.WorkerCount = 2
	cfg.MaxConcurrentAudits = 2
	cfg.PollInterval = 50 * time.Millisecond
	cfg.StuckSweepInterval = 1 * time.Hour

	gate := make(chan struct{})
	executor := &fakeExecutor{gate: gate}
	pool := NewWorkerPool("test-replica", client, cfg, executor, nil)

	require.NoError(t, pool.Start(ctx))

	require.Eventually(t, func() bool { return executor.inFlight.Load() == int64(cfg.MaxConcurrentAudits) },
		5*time.Second, 10*time.Millisecond, "expected the cap's worth of audits in flight")

	// Hold a beat to let any over-claim surface before checking.
	time.Sleep(100 * time.Millisecond)

	assert.Equal(t, int64(cfg.MaxConcurrentAudits), executor.inFlight.Load(),
		"in-flight audits should sit exactly at the cap")

	dbProcessing, err := client.Audit.Query().
		Where(audit.StatusEQ(audit.StatusProcessing)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, cfg.MaxConcurrentAudits, dbProcessing, "DB should show the cap's worth processing")

	// Open the gate; the held audits finish and the rest get claimed.
	close(gate)

	require.Eventually(t, func() bool { return executor.inFlight.Load() == 0 },
		5*time.Second, 10*time.Millisecond, "held audits did not finish")

	require.Eventually(t, func() bool { return executor.processed.Load() >= 5 },
		5*time.Second, 50*time.Millisecond, "remaining audits were not claimed")

	pool.Stop()

	completedCount, err := client.Audit.Query().
		Where(audit.StatusEQ(audit.StatusCompleted)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, completedCount, "all 5 audits should complete")
}

func TestHeartbeatAdvancesWhileRunning(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	company := createTestCompany(ctx, t, client)
	a := createTestAudit(ctx, t, client, company.ID)

	cfg := intTestPipelineConfig()
	cfg.WorkerCount = 1
	cfg.PollInterval = 50 * time.Millisecond
	cfg.HeartbeatInterval = 100 * time.Millisecond

	// The gated executor keeps the audit in flight while heartbeats tick.
	gate := make(chan struct{})
	executor := &fakeExecutor{gate: gate}
	pool := NewWorkerPool("test-replica", client, cfg, executor, nil)

	require.NoError(t, pool.Start(ctx))

	require.Eventually(t, auditStatusIs(ctx, client, a.ID, audit.StatusProcessing),
		5*time.Second, 10*time.Millisecond, "audit was not claimed")

	a1, err := client.Audit.Get(ctx, a.ID)
	require.NoError(t, err)
	require.NotNil(t, a1.HeartbeatAt)
	initialBeat := *a1.HeartbeatAt

	// Two and a half heartbeat intervals is plenty for at least one tick.
	time.Sleep(250 * time.Millisecond)

	a2, err := client.Audit.Get(ctx, a.ID)
	require.NoError(t, err)
	require.Equal(t, audit.StatusProcessing, a2.Status, "audit should still be processing")
	require.NotNil(t, a2.HeartbeatAt)
	assert.True(t, a2.HeartbeatAt.After(initialBeat), "heartbeat_at should advance while the audit runs")

	close(gate)
	pool.Stop()
}

// nilResultExecutor returns a nil *ExecutionResult, the contract violation the
// worker's guard has to absorb.
type nilResultExecutor struct {
	waitForCancel bool
	processed     atomic.Int64
}

func (e *nilResultExecutor) Execute(ctx context.Context, _ *ent.Audit) *ExecutionResult {
	e.processed.Add(1)
	if e.waitForCancel {
		<-ctx.Done()
	}
	return nil
}

func TestNilExecutorResult(t *testing.T) {
	t.Run("without context error the audit fails", func(t *testing.T) {
		dbClient := testdb.NewTestClient(t)
		client := dbClient.Client
		ctx := context.Background()

		company := createTestCompany(ctx, t, client)
		a := createTestAudit(ctx, t, client, company.ID)

		cfg := intTestPipelineConfig()
		cfg.WorkerCount = 1
		cfg.PollInterval = 50 * time.Millisecond
		cfg.StuckSweepInterval = 1 * time.Hour

		executor := &nilResultExecutor{}
		pool := NewWorkerPool("test-replica", client, cfg, executor, nil)

		require.NoError(t, pool.Start(ctx))

		require.Eventually(t, auditStatusIs(ctx, client, a.ID, audit.StatusFailed),
			5*time.Second, 50*time.Millisecond, "audit never reached a terminal status")

		pool.Stop()

		updated, err := client.Audit.Get(ctx, a.ID)
		require.NoError(t, err)
		assert.Equal(t, audit.StatusFailed, updated.Status)
		require.NotNil(t, updated.ErrorMessage)
		assert.Contains(t, *updated.ErrorMessage, "executor returned nil result")
	})

	t.Run("under cancellation the audit is cancelled", func(t *testing.T) {
		dbClient := testdb.NewTestClient(t)
		client := dbClient.Client
		ctx := context.Background()

		company := createTestCompany(ctx, t, client)
		a := createTestAudit(ctx, t, client, company.ID)

		cfg := intTestPipelineConfig()
		cfg.WorkerCount = 1
		cfg.PollInterval = 50 * time.Millisecond
		cfg.StuckSweepInterval = 1 * time.Hour

		executor := &nilResultExecutor{waitForCancel: true}
		pool := NewWorkerPool("test-replica", client, cfg, executor, nil)

		require.NoError(t, pool.Start(ctx))

		require.Eventually(t, auditStatusIs(ctx, client, a.ID, audit.StatusProcessing),
			5*time.Second, 10*time.Millisecond, "audit was not claimed")

		// Cancel through the pool, the same path the API takes.
		cancelled := pool.CancelAudit(a.ID)
		require.True(t, cancelled, "CancelAudit should find the active audit")

		require.Eventually(t, auditStatusIs(ctx, client, a.ID, audit.StatusCancelled),
			5*time.Second, 50*time.Millisecond, "audit never reached a terminal status")

		pool.Stop()

		updated, err := client.Audit.Get(ctx, a.ID)
		require.NoError(t, err)
		assert.Equal(t, audit.StatusCancelled, updated.Status)
	})
}

// lateCancelExecutor persists the cancel flag itself before reporting
// success, reproducing a RequestCancel that commits after the executor's
// last boundary check.
type lateCancelExecutor struct {
	client *ent.Client
}

func (e *lateCancelExecutor) Execute(ctx context.Context, a *ent.Audit) *ExecutionResult {
	if err := e.client.Audit.UpdateOneID(a.ID).
		SetStatus(audit.StatusCancelRequested).
		Exec(ctx); err != nil {
		return &ExecutionResult{Status: audit.StatusFailed, Err: err}
	}
	return &ExecutionResult{Status: audit.StatusCompleted}
}

func TestLateCancelWinsOverCompletion(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	company := createTestCompany(ctx, t, client)
	a := createTestAudit(ctx, t, client, company.ID)

	cfg := intTestPipelineConfig()
	cfg.WorkerCount = 1
	cfg.PollInterval = 50 * time.Millisecond

	pub := &capturingPublisher{}
	pool := NewWorkerPool("test-replica", client, cfg, &lateCancelExecutor{client: client}, pub)
	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	require.Eventually(t, auditStatusIs(ctx, client, a.ID, audit.StatusCancelled),
		5*time.Second, 10*time.Millisecond, "late cancel was overwritten by completion")

	got, err := client.Audit.Get(ctx, a.ID)
	require.NoError(t, err)
	assert.NotNil(t, got.CompletedAt)
	assert.Nil(t, got.ProcessingTimeMs, "a cancelled audit records no processing time")
	assert.Empty(t, pub.dashboardSeen(), "no dashboard_ready for a cancelled audit")
}
