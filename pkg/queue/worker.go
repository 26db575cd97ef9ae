// Package queue runs the single-flight polling loop that drives pending jobs
// through the generation pipeline and the publish adapter.
package queue

import (
	"context"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pressflow/pressflow/pkg/db"
	"github.com/pressflow/pressflow/pkg/pipeline"
)

//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store
//go:generate moq -out mocks/processor.go -pkg mocks -skip-ensure -fmt goimports . Processor
//go:generate moq -out mocks/publisher_factory.go -pkg mocks -skip-ensure -fmt goimports . PublisherFactory

// Store is the persistence surface the worker needs
type Store interface {
	GetOldestPendingJob(ctx context.Context) (*db.Job, error)
	GetJob(ctx context.Context, id int64) (*db.Job, error)
	GetSite(ctx context.Context, id int64) (*db.Site, error)
	UpdateJobStatus(ctx context.Context, id int64, status db.JobStatus, errMsg string) error
	UpdateJobGenerated(ctx context.Context, job *db.Job) error
	UpdateJobPublished(ctx context.Context, id, wpPostID int64) error
}

// Processor runs the generation pipeline stages for one job
type Processor interface {
	Generate(ctx context.Context, job *db.Job) error
	Publish(ctx context.Context, job *db.Job, pub pipeline.Publisher) (int64, error)
}

// PublisherFactory builds a publish adapter for a site
type PublisherFactory interface {
	PublisherFor(site *db.Site) pipeline.Publisher
}

// Worker is the job queue worker: one process-wide slot, oldest PENDING job
// first, every state transition persisted
type Worker struct {
	store      Store
	processor  Processor
	publishers PublisherFactory
	interval   time.Duration

	tasks      chan struct{} // single slot, replaces a busy-poll boolean
	inProgress atomic.Bool
	procMu     sync.Mutex // serializes queue processing and manual publish
	wg         sync.WaitGroup
	cancel     context.CancelFunc
}

// NewWorker creates a queue worker polling at the given interval
func NewWorker(store Store, processor Processor, publishers PublisherFactory, interval time.Duration) *Worker {
	if interval == 0 {
		interval = 5 * time.Second
	}
	return &Worker{
		store:      store,
		processor:  processor,
		publishers: publishers,
		interval:   interval,
		tasks:      make(chan struct{}, 1),
	}
}

// Start begins the polling loop and the processing goroutine
func (w *Worker) Start(ctx context.Context) {
	ctx, w.cancel = context.WithCancel(ctx)

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				close(w.tasks)
				return
			case <-ticker.C:
				select {
				case w.tasks <- struct{}{}:
				default: // already processing, skip this tick
				}
			}
		}
	}()

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		for range w.tasks {
			w.processNext(ctx)
		}
	}()

	log.Printf("[INFO] job queue worker started, poll interval %v", w.interval)
}

// Stop gracefully stops the worker, letting an in-flight job finish
func (w *Worker) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	w.wg.Wait()
	log.Printf("[INFO] job queue worker stopped")
}

// InProgress reports whether a job is currently being processed
func (w *Worker) InProgress() bool {
	return w.inProgress.Load()
}

// processNext dequeues the oldest pending job and processes it to completion.
// One job's failure never blocks the queue.
func (w *Worker) processNext(ctx context.Context) {
	w.procMu.Lock()
	defer w.procMu.Unlock()

	job, err := w.store.GetOldestPendingJob(ctx)
	if err != nil {
		log.Printf("[ERROR] failed to poll job queue: %v", err)
		return
	}
	if job == nil {
		return
	}

	w.inProgress.Store(true)
	defer w.inProgress.Store(false)

	w.processJob(ctx, job)
}

func (w *Worker) processJob(ctx context.Context, job *db.Job) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[ERROR] panic processing job %d: %v", job.ID, r)
			w.fail(ctx, job.ID, fmt.Sprintf("panic: %v", r))
		}
	}()

	log.Printf("[INFO] processing job %d (%s)", job.ID, job.SourceKind)

	if err := w.store.UpdateJobStatus(ctx, job.ID, db.JobStatusGenerating, ""); err != nil {
		log.Printf("[ERROR] failed to mark job %d generating: %v", job.ID, err)
		return
	}

	if err := w.processor.Generate(ctx, job); err != nil {
		log.Printf("[WARN] job %d generation failed: %v", job.ID, err)
		w.fail(ctx, job.ID, err.Error())
		return
	}

	if err := w.store.UpdateJobGenerated(ctx, job); err != nil {
		log.Printf("[ERROR] failed to persist job %d output: %v", job.ID, err)
		w.fail(ctx, job.ID, err.Error())
		return
	}

	// GENERATED is terminal unless auto-publish is on
	if !job.AutoPublish {
		log.Printf("[INFO] job %d generated", job.ID)
		return
	}

	if err := w.publish(ctx, job); err != nil {
		log.Printf("[WARN] job %d publish failed: %v", job.ID, err)
		w.fail(ctx, job.ID, err.Error())
		return
	}
	log.Printf("[INFO] job %d published", job.ID)
}

func (w *Worker) publish(ctx context.Context, job *db.Job) error {
	if err := w.store.UpdateJobStatus(ctx, job.ID, db.JobStatusPublishing, ""); err != nil {
		return fmt.Errorf("mark publishing: %w", err)
	}

	site, err := w.store.GetSite(ctx, job.SiteID)
	if err != nil {
		return fmt.Errorf("get site: %w", err)
	}

	postID, err := w.processor.Publish(ctx, job, w.publishers.PublisherFor(site))
	if err != nil {
		return err
	}

	if err := w.store.UpdateJobPublished(ctx, job.ID, postID); err != nil {
		return fmt.Errorf("persist published state: %w", err)
	}
	return nil
}

// PublishJob publishes a GENERATED job on explicit user request
func (w *Worker) PublishJob(ctx context.Context, jobID int64) error {
	w.procMu.Lock()
	defer w.procMu.Unlock()

	job, err := w.store.GetJob(ctx, jobID)
	if err != nil {
		return err
	}
	if job.Status != db.JobStatusGenerated {
		return fmt.Errorf("job %d is %s, only GENERATED jobs can be published", jobID, job.Status)
	}

	w.inProgress.Store(true)
	defer w.inProgress.Store(false)

	if err := w.publish(ctx, job); err != nil {
		w.fail(ctx, jobID, err.Error())
		return err
	}
	return nil
}

func (w *Worker) fail(ctx context.Context, jobID int64, msg string) {
	if err := w.store.UpdateJobStatus(ctx, jobID, db.JobStatusFailed, msg); err != nil {
		log.Printf("[ERROR] failed to mark job %d failed: %v", jobID, err)
	}
}
