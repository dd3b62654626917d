package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	apisetup "loyalty-server/internal/api"
	"loyalty-server/internal/bootstrap"
	"loyalty-server/internal/config"
	"loyalty-server/internal/jobs/scheduler"
	schedulerJobs "loyalty-server/internal/jobs/scheduler/jobs"
	"loyalty-server/internal/observability"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Server encapsulates the HTTP server and its dependencies
type Server struct {
	httpServer *http.Server
	router     *gin.Engine
	deps       *bootstrap.Dependencies
	config     *config.Config
	logger     *observability.Logger

	scheduler     *scheduler.Scheduler
	stopScheduler context.CancelFunc
	schedulerDone chan struct{}
}

// New creates a new Server instance
func New(cfg *config.Config, deps *bootstrap.Dependencies, logger *observability.Logger) *Server {
	return &Server{
		config: cfg,
		deps:   deps,
		logger: logger,
	}
}

// Setup configures the HTTP router with middleware and routes
func (s *Server) Setup() {
	s.router = gin.New()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", "Idempotency-Key", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.AllowAllOrigins = true

	s.router.Use(cors.New(corsConfig))
	s.router.Use(observability.Middleware(s.logger))

	api := apisetup.New(s.router.Group("/"), s.deps.Handlers)
	api.RegisterRoutes()

	if s.config.Scheduler.PromotionInterval > 0 {
		s.scheduler = scheduler.New(s.logger)
		s.scheduler.Register(schedulerJobs.NewPromotionJob(s.deps.Campaigns, s.logger, s.config.Scheduler.PromotionInterval))
	}
}

// Handler exposes the router for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start begins listening for HTTP requests and starts the promotion scheduler
func (s *Server) Start(ctx context.Context) error {
	if s.scheduler != nil {
		schedCtx, cancel := context.WithCancel(context.Background())
		s.stopScheduler = cancel
		s.schedulerDone = make(chan struct{})
		go func() {
			defer close(s.schedulerDone)
			s.scheduler.Start(schedCtx)
		}()
	}

	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", s.config.Server.Port),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		s.logger.Info(ctx, fmt.Sprintf("Server starting on port %d", s.config.Server.Port))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error(ctx, "server failed to start", err)
			os.Exit(1)
		}
	}()

	return nil
}

// WaitForShutdown blocks until SIGINT or SIGTERM, then shuts down gracefully
func (s *Server) WaitForShutdown(ctx context.Context) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	s.logger.Info(ctx, "Shutting down server...")

	if s.stopScheduler != nil {
		s.stopScheduler()
		<-s.schedulerDone
	}

	// in-flight requests get 5 seconds to finish
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	s.deps.Cleanup()

	s.logger.Info(ctx, "Server exited gracefully")
	return nil
}
