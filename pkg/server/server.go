package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jakechorley/term-timetable/internal/config"
	"github.com/jakechorley/term-timetable/pkg/db"
)

const shutdownTimeout = 10 * time.Second

// Server is the HTTP API
type Server struct {
	engine  *gin.Engine
	metrics *Metrics
	logger  *zap.Logger
}

// New builds the router. store and cfg may be nil, in which case only
// POST /api/v1/schedules can generate schedules.
func New(cfg *config.Config, store db.CurriculumStore, logger *zap.Logger) *Server {
	metrics := NewMetrics()

	engine := gin.New()
	engine.Use(gin.Recovery(), requestLogger(logger), metricsMiddleware(metrics))

	schedules := &ScheduleHandler{cfg: cfg, store: store, metrics: metrics, logger: logger}

	engine.GET("/healthz", health)
	engine.GET("/metrics", gin.WrapH(metrics.Handler()))

	v1 := engine.Group("/api/v1")
	v1.POST("/schedules", schedules.Generate)
	v1.GET("/schedules/current", schedules.Current)

	return &Server{engine: engine, metrics: metrics, logger: logger}
}

func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		s.logger.Info("Server starting", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
		close(errChan)
	}()

	select {
	case err := <-errChan:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("Server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	return nil
}
