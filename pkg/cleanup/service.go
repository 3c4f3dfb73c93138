// Package cleanup ages out the durable audit_events feed.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/specularhq/specular/pkg/config"
	"github.com/specularhq/specular/pkg/services"
)

// Service deletes audit_events rows past their TTL on a fixed interval. The
// feed exists only for reconnect catchup, so expired rows are dead weight.
// Deletes are idempotent; extra replicas just race to the same result.
type Service struct {
	ttl      time.Duration
	interval time.Duration
	events   *services.EventService

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a retention service over the event feed.
func NewService(cfg *config.RetentionConfig, events *services.EventService) *Service {
	return &Service{
		ttl:      cfg.EventTTL,
		interval: cfg.CleanupInterval,
		events:   events,
	}
}

// Start launches the retention loop: one sweep immediately, then one per
// interval. Calling Start twice is a no-op.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go func() {
		defer close(s.done)
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			s.sweep(ctx)
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()

	slog.Info("Retention loop started", "event_ttl", s.ttl, "interval", s.interval)
}

// Stop ends the loop, cancelling any in-flight sweep, and waits for it to
// exit.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Retention loop stopped")
}

func (s *Service) sweep(ctx context.Context) {
	count, err := s.events.CleanupOldEvents(ctx, s.ttl)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		slog.Error("Event retention sweep failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Deleted expired audit events", "count", count)
	}
}
