// Package server exposes the REST API consumed by the dashboard: sites,
// feeds, schedules, jobs and bulk operations.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/pressflow/pressflow/pkg/bulk"
	"github.com/pressflow/pressflow/pkg/db"
)

//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store
//go:generate moq -out mocks/scheduler.go -pkg mocks -skip-ensure -fmt goimports . Scheduler
//go:generate moq -out mocks/queue.go -pkg mocks -skip-ensure -fmt goimports . Queue
//go:generate moq -out mocks/bulk_engine.go -pkg mocks -skip-ensure -fmt goimports . BulkEngine
//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider

// Store is the persistence surface for manual actions and listings
type Store interface {
	CreateSite(ctx context.Context, site *db.Site) error
	GetSites(ctx context.Context) ([]db.Site, error)
	DeleteSite(ctx context.Context, id int64) error

	CreateFeed(ctx context.Context, feed *db.Feed) error
	GetFeeds(ctx context.Context, siteID int64) ([]db.Feed, error)
	DeleteFeed(ctx context.Context, id int64) error

	CreateSchedule(ctx context.Context, s *db.Schedule) error
	GetSchedule(ctx context.Context, id int64) (*db.Schedule, error)
	GetSchedules(ctx context.Context, siteID int64) ([]db.Schedule, error)
	SetScheduleEnabled(ctx context.Context, id int64, enabled bool) error
	DeleteSchedule(ctx context.Context, id int64) error

	CreateJob(ctx context.Context, job *db.Job) error
	GetJob(ctx context.Context, id int64) (*db.Job, error)
	GetJobs(ctx context.Context, siteID int64, limit, offset int) ([]db.Job, error)
	RetryJob(ctx context.Context, id int64) error
	DeleteJob(ctx context.Context, id int64) error

	GetBulkOperations(ctx context.Context, siteID int64, limit, offset int) ([]db.BulkOperation, error)
}

// Scheduler is the registry surface for schedule lifecycle actions
type Scheduler interface {
	Register(ctx context.Context, s *db.Schedule) error
	Unregister(scheduleID int64)
	FireNow(ctx context.Context, scheduleID int64)
}

// Queue is the job worker surface for manual publish
type Queue interface {
	PublishJob(ctx context.Context, jobID int64) error
}

// BulkEngine accepts bulk submissions and reports status
type BulkEngine interface {
	Submit(ctx context.Context, siteID int64, action db.BulkAction, targetIDs []int64, meta *bulk.MetadataUpdate) (string, error)
	GetStatus(ctx context.Context, id string) (*db.BulkOperation, error)
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
}

// Server represents the HTTP server instance
type Server struct {
	config    ConfigProvider
	store     Store
	scheduler Scheduler
	queue     Queue
	bulk      BulkEngine
	version   string
	debug     bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// New initializes a new server instance
func New(cfg ConfigProvider, store Store, scheduler Scheduler, queue Queue, bulkEngine BulkEngine, version string, debug bool) *Server {
	s := &Server{
		config:    cfg,
		store:     store,
		scheduler: scheduler,
		queue:     queue,
		bulk:      bulkEngine,
		version:   version,
		debug:     debug,
		router:    routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	log.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:         listen,
		Handler:      s.router,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("pressflow", "pressflow", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)

		r.HandleFunc("POST /sites", s.createSiteHandler)
		r.HandleFunc("GET /sites", s.listSitesHandler)
		r.HandleFunc("DELETE /sites/{id}", s.deleteSiteHandler)

		r.HandleFunc("POST /feeds", s.createFeedHandler)
		r.HandleFunc("GET /sites/{id}/feeds", s.listFeedsHandler)
		r.HandleFunc("DELETE /feeds/{id}", s.deleteFeedHandler)

		r.HandleFunc("POST /schedules", s.createScheduleHandler)
		r.HandleFunc("GET /sites/{id}/schedules", s.listSchedulesHandler)
		r.HandleFunc("GET /schedules/{id}", s.getScheduleHandler)
		r.HandleFunc("POST /schedules/{id}/pause", s.pauseScheduleHandler)
		r.HandleFunc("POST /schedules/{id}/resume", s.resumeScheduleHandler)
		r.HandleFunc("POST /schedules/{id}/run", s.runScheduleHandler)
		r.HandleFunc("DELETE /schedules/{id}", s.deleteScheduleHandler)

		r.HandleFunc("POST /jobs", s.createTopicJobHandler)
		r.HandleFunc("GET /sites/{id}/jobs", s.listJobsHandler)
		r.HandleFunc("GET /jobs/{id}", s.getJobHandler)
		r.HandleFunc("POST /jobs/{id}/retry", s.retryJobHandler)
		r.HandleFunc("POST /jobs/{id}/publish", s.publishJobHandler)
		r.HandleFunc("DELETE /jobs/{id}", s.deleteJobHandler)

		r.HandleFunc("POST /bulk", s.submitBulkHandler)
		r.HandleFunc("GET /bulk/{id}", s.getBulkHandler)
		r.HandleFunc("GET /sites/{id}/bulk", s.listBulkHandler)
	})
}
