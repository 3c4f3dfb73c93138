package database

import (
	"context"
	"time"
)

// PoolStats is a point-in-time snapshot of the sql.DB connection pool.
type PoolStats struct {
	Open      int   `json:"open_connections"`
	InUse     int   `json:"in_use"`
	Idle      int   `json:"idle"`
	WaitCount int64 `json:"wait_count"`
	WaitMs    int64 `json:"wait_duration_ms"`
	MaxOpen   int   `json:"max_open_conns"`
}

// HealthStatus reports database reachability plus the pool snapshot.
type HealthStatus struct {
	Status       string    `json:"status"`
	ResponseTime int64     `json:"response_time_ms"`
	Pool         PoolStats `json:"pool"`
}

// Health pings the database, timing the round trip, and snapshots the
// connection pool. The error is returned alongside the status so callers
// can render both.
func (c *Client) Health(ctx context.Context) (*HealthStatus, error) {
	start := time.Now()
	err := c.db.PingContext(ctx)
	h := &HealthStatus{
		Status:       "healthy",
		ResponseTime: time.Since(start).Milliseconds(),
	}
	if err != nil {
		h.Status = "unhealthy"
		return h, err
	}

	s := c.db.Stats()
	h.Pool = PoolStats{
		Open:      s.OpenConnections,
		InUse:     s.InUse,
		Idle:      s.Idle,
		WaitCount: s.WaitCount,
		WaitMs:    s.WaitDuration.Milliseconds(),
		MaxOpen:   s.MaxOpenConnections,
	}
	return h, nil
}
