// Package api serves the operational HTTP surface: health probes, queue
// introspection, Prometheus metrics, and the audit event catchup feed.
// The product-facing audit API (submit, list, cancel) lives in the serving
// app that shares this database; this server is for operators and probes.
package api

import (
	"context"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/specularhq/specular/pkg/database"
	"github.com/specularhq/specular/pkg/events"
	"github.com/specularhq/specular/pkg/queue"
	"github.com/specularhq/specular/pkg/services"
)

// Server is the operational HTTP server.
type Server struct {
	db         *database.Client
	pool       *queue.WorkerPool
	events     *services.EventService
	dispatcher *events.Dispatcher
	engine     *gin.Engine

	mu      sync.Mutex
	httpSrv *http.Server
}

// NewServer creates the server and registers its routes. pool may be nil
// when the process runs without workers (one-off tooling); the queue
// endpoints then report unavailable. dispatcher may be nil; the live event
// stream then reports unavailable while the catchup feed keeps working.
func NewServer(db *database.Client, pool *queue.WorkerPool, eventService *services.EventService, dispatcher *events.Dispatcher) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery(), requestLogger(), securityHeaders())

	s := &Server{
		db:         db,
		pool:       pool,
		events:     eventService,
		dispatcher: dispatcher,
		engine:     engine,
	}

	v1 := engine.Group("/api/v1")
	v1.GET("/health", s.healthHandler)
	v1.GET("/health/database", s.databaseHealthHandler)
	v1.GET("/queue/health", s.queueHealthHandler)
	v1.GET("/audits/:id/events", s.auditEventsHandler)
	v1.GET("/audits/:id/events/stream", s.auditEventStreamHandler)

	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return s
}

// Start begins serving on addr. Blocks until the listener closes.
func (s *Server) Start(addr string) error {
	s.mu.Lock()
	s.httpSrv = &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	srv := s.httpSrv
	s.mu.Unlock()

	return srv.ListenAndServe()
}

// StartWithListener serves on an existing listener. Tests use it to bind a
// random port.
func (s *Server) StartWithListener(ln net.Listener) error {
	s.mu.Lock()
	s.httpSrv = &http.Server{
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	srv := s.httpSrv
	s.mu.Unlock()

	return srv.Serve(ln)
}

// Shutdown drains in-flight requests and stops the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	srv := s.httpSrv
	s.mu.Unlock()

	if srv == nil {
		return nil
	}
	return srv.Shutdown(ctx)
}
