package queue

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/specularhq/specular/ent/audit"
	"github.com/specularhq/specular/pkg/config"
	"github.com/specularhq/specular/pkg/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPipelineConfig() *config.PipelineConfig {
	return &config.PipelineConfig{
		WorkerCount:             5,
		MaxConcurrentAudits:     5,
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		HeartbeatInterval:       30 * time.Second,
		StuckThreshold:          5 * time.Minute,
		StuckSweepInterval:      1 * time.Minute,
		GracefulShutdownTimeout: 15 * time.Minute,
	}
}

func TestWorkerPollInterval(t *testing.T) {
	cfg := testPipelineConfig()
	w := NewWorker("test-worker", "test-replica", nil, cfg, nil, nil, nil)

	// Poll interval should be within [base - jitter, base + jitter]
	for i := 0; i < 100; i++ {
		d := w.pollInterval()
		assert.GreaterOrEqual(t, d, 500*time.Millisecond, "poll interval below minimum")
		assert.LessOrEqual(t, d, 1500*time.Millisecond, "poll interval above maximum")
	}
}

func TestWorkerPollIntervalNoJitter(t *testing.T) {
	cfg := testPipelineConfig()
	cfg.PollIntervalJitter = 0
	w := NewWorker("test-worker", "test-replica", nil, cfg, nil, nil, nil)

	for i := 0; i < 10; i++ {
		d := w.pollInterval()
		assert.Equal(t, 1*time.Second, d, "poll interval should equal base when jitter is 0")
	}
}

func TestWorkerHealth(t *testing.T) {
	cfg := testPipelineConfig()
	w := NewWorker("worker-1", "replica-1", nil, cfg, nil, nil, nil)

	h := w.Health()
	assert.Equal(t, "worker-1", h.ID)
	assert.Equal(t, "idle", h.Status)
	assert.Equal(t, "", h.CurrentAuditID)
	assert.Equal(t, 0, h.AuditsProcessed)

	// Simulate working state
	w.setStatus(WorkerStatusWorking, "audit-abc")
	h = w.Health()
	assert.Equal(t, "working", h.Status)
	assert.Equal(t, "audit-abc", h.CurrentAuditID)

	// Back to idle
	w.setStatus(WorkerStatusIdle, "")
	h = w.Health()
	assert.Equal(t, "idle", h.Status)
	assert.Equal(t, "", h.CurrentAuditID)
}

// capturingPublisher records published payloads for assertions.
// Safe for concurrent use; progress ticks arrive from stage goroutines.
type capturingPublisher struct {
	mu        sync.Mutex
	statuses  []events.StatusPayload
	progress  []events.ProgressPayload
	dashboard []string
}

func (p *capturingPublisher) PublishStatus(_ context.Context, _ string, payload events.StatusPayload) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.statuses = append(p.statuses, payload)
	return nil
}

func (p *capturingPublisher) PublishProgress(_ context.Context, _ string, payload events.ProgressPayload) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.progress = append(p.progress, payload)
	return nil
}

func (p *capturingPublisher) PublishDashboardReady(_ context.Context, auditID string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.dashboard = append(p.dashboard, auditID)
	return nil
}

func (p *capturingPublisher) statusesSeen() []events.StatusPayload {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]events.StatusPayload, len(p.statuses))
	copy(out, p.statuses)
	return out
}

func (p *capturingPublisher) progressSeen() []events.ProgressPayload {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]events.ProgressPayload, len(p.progress))
	copy(out, p.progress)
	return out
}

func (p *capturingPublisher) dashboardSeen() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.dashboard))
	copy(out, p.dashboard)
	return out
}

func TestPublishStatusNilPublisher(t *testing.T) {
	assert.NotPanics(t, func() {
		publishStatus(context.Background(), nil, "audit-1", audit.StatusProcessing, nil)
	})
}

func TestPublishStatusErrorField(t *testing.T) {
	pub := &capturingPublisher{}

	publishStatus(context.Background(), pub, "audit-1", audit.StatusProcessing, nil)
	publishStatus(context.Background(), pub, "audit-1", audit.StatusFailed, errors.New("scoring failed: boom"))

	statuses := pub.statusesSeen()
	require.Len(t, statuses, 2)

	assert.Equal(t, events.EventTypeStatus, statuses[0].Type)
	assert.Equal(t, "audit-1", statuses[0].AuditID)
	assert.Equal(t, audit.StatusProcessing, statuses[0].Status)
	assert.Empty(t, statuses[0].Error, "non-failure statuses carry no error")
	assert.NotEmpty(t, statuses[0].Timestamp)

	assert.Equal(t, audit.StatusFailed, statuses[1].Status)
	assert.Equal(t, "scoring failed: boom", statuses[1].Error)
}
