package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/specularhq/specular/pkg/version"
)

const (
	healthStatusHealthy   = "healthy"
	healthStatusDegraded  = "degraded"
	healthStatusUnhealthy = "unhealthy"
)

// healthHandler handles GET /api/v1/health.
// Only specular's own components (database, worker pool) are checked, so an
// orchestrator never restarts the process over an unhealthy external
// dependency. An unreachable database is unhealthy (503); a degraded worker
// pool keeps the probe green.
func (s *Server) healthHandler(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	checks := map[string]HealthCheck{"database": s.checkDatabase(reqCtx)}
	if s.pool != nil {
		checks["worker_pool"] = s.checkPool()
	}

	status := healthStatusHealthy
	if checks["worker_pool"].Status == healthStatusDegraded {
		status = healthStatusDegraded
	}
	httpStatus := http.StatusOK
	if checks["database"].Status == healthStatusUnhealthy {
		status = healthStatusUnhealthy
		httpStatus = http.StatusServiceUnavailable
	}

	c.JSON(httpStatus, &HealthResponse{
		Status:  status,
		Version: version.GitCommit,
		Checks:  checks,
	})
}

func (s *Server) checkDatabase(ctx context.Context) HealthCheck {
	if _, err := s.db.Health(ctx); err != nil {
		return HealthCheck{Status: healthStatusUnhealthy, Message: err.Error()}
	}
	return HealthCheck{Status: healthStatusHealthy}
}

// checkPool maps pool trouble to degraded, never unhealthy; the pool polls
// its way back once the underlying cause clears.
func (s *Server) checkPool() HealthCheck {
	poolHealth := s.pool.Health()
	if poolHealth == nil || poolHealth.IsHealthy {
		return HealthCheck{Status: healthStatusHealthy}
	}
	msg := poolHealth.DBError
	if msg == "" {
		msg = healthStatusUnhealthy
	}
	return HealthCheck{Status: healthStatusDegraded, Message: msg}
}

// databaseHealthHandler handles GET /api/v1/health/database with full
// connection pool statistics.
func (s *Server) databaseHealthHandler(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	health, err := s.db.Health(reqCtx)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, &DatabaseHealthResponse{
			Database: health,
			Error:    err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, &DatabaseHealthResponse{Database: health})
}

// queueHealthHandler handles GET /api/v1/queue/health with the worker pool
// snapshot: worker states, active and pending audit counts, sweep stats.
func (s *Server) queueHealthHandler(c *gin.Context) {
	if s.pool == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "worker pool not running"})
		return
	}

	poolHealth := s.pool.Health()
	httpStatus := http.StatusOK
	if !poolHealth.IsHealthy {
		httpStatus = http.StatusServiceUnavailable
	}
	c.JSON(httpStatus, poolHealth)
}
