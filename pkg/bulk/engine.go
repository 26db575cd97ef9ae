// Package bulk applies one action to many remote resources sequentially,
// tracking per-item success and failure with persisted progress.
package bulk

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pressflow/pressflow/pkg/db"
)

//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store
//go:generate moq -out mocks/remote.go -pkg mocks -skip-ensure -fmt goimports . Remote
//go:generate moq -out mocks/remote_factory.go -pkg mocks -skip-ensure -fmt goimports . RemoteFactory

// Store is the persistence surface the engine needs
type Store interface {
	CreateBulkOperation(ctx context.Context, op *db.BulkOperation) error
	GetBulkOperation(ctx context.Context, id string) (*db.BulkOperation, error)
	StartBulkOperation(ctx context.Context, id string) error
	UpdateBulkProgress(ctx context.Context, op *db.BulkOperation) error
	FinishBulkOperation(ctx context.Context, id string, status db.BulkStatus, errMsg string) error
	GetSite(ctx context.Context, id int64) (*db.Site, error)
}

// Remote executes one call per target against a site
type Remote interface {
	UpdatePostStatus(ctx context.Context, postID int64, status string) error
	UpdatePostMetadata(ctx context.Context, postID int64, update MetadataUpdate) error
	DeletePost(ctx context.Context, postID int64) error
}

// RemoteFactory builds a remote client for a site
type RemoteFactory interface {
	RemoteFor(site *db.Site) Remote
}

// Engine processes bulk operations with a single worker in strict submission
// order, one target at a time with a fixed inter-item delay
type Engine struct {
	store   Store
	remotes RemoteFactory
	delay   time.Duration

	queue  chan string
	wg     sync.WaitGroup
	cancel context.CancelFunc
}

// NewEngine creates a bulk operation engine
func NewEngine(store Store, remotes RemoteFactory, delay time.Duration, queueSize int) *Engine {
	if queueSize == 0 {
		queueSize = 64
	}
	return &Engine{
		store:   store,
		remotes: remotes,
		delay:   delay,
		queue:   make(chan string, queueSize),
	}
}

// Start begins the single worker goroutine
func (e *Engine) Start(ctx context.Context) {
	ctx, e.cancel = context.WithCancel(ctx)

	e.wg.Add(1)
	go func() {
		defer e.wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case id := <-e.queue:
				e.process(ctx, id)
			}
		}
	}()

	log.Printf("[INFO] bulk operation engine started, inter-item delay %v", e.delay)
}

// Stop gracefully stops the engine, letting an in-flight operation item finish
func (e *Engine) Stop() {
	if e.cancel != nil {
		e.cancel()
	}
	e.wg.Wait()
	log.Printf("[INFO] bulk operation engine stopped")
}

// Submit records a new bulk operation and returns its id immediately.
// The metadata argument is required for UPDATE_METADATA and ignored otherwise.
func (e *Engine) Submit(ctx context.Context, siteID int64, action db.BulkAction, targetIDs []int64, meta *MetadataUpdate) (string, error) {
	if len(targetIDs) == 0 {
		return "", fmt.Errorf("no target ids")
	}

	payload, err := payloadFor(action, meta)
	if err != nil {
		return "", err
	}
	encoded, err := payload.encode()
	if err != nil {
		return "", err
	}

	op := &db.BulkOperation{
		ID:           uuid.New().String(),
		SiteID:       siteID,
		ResourceKind: "post",
		Action:       action,
		TargetIDs:    targetIDs,
		Payload:      encoded,
		Status:       db.BulkStatusPending,
	}
	if err := e.store.CreateBulkOperation(ctx, op); err != nil {
		return "", err
	}

	select {
	case e.queue <- op.ID:
	default:
		// queue full is an operation-level failure, not a silent drop
		if ferr := e.store.FinishBulkOperation(ctx, op.ID, db.BulkStatusFailed, "bulk queue full"); ferr != nil {
			log.Printf("[ERROR] failed to mark overflowed operation %s: %v", op.ID, ferr)
		}
		return "", fmt.Errorf("bulk queue full")
	}

	return op.ID, nil
}

// GetStatus returns the current state of a bulk operation
func (e *Engine) GetStatus(ctx context.Context, id string) (*db.BulkOperation, error) {
	return e.store.GetBulkOperation(ctx, id)
}

// process runs one operation to completion. Per-item failures are isolated;
// only an operation-level error flips the operation to failed.
func (e *Engine) process(ctx context.Context, id string) {
	op, err := e.store.GetBulkOperation(ctx, id)
	if err != nil {
		log.Printf("[ERROR] bulk operation %s: %v", id, err)
		return
	}

	if err := e.store.StartBulkOperation(ctx, id); err != nil {
		log.Printf("[ERROR] failed to start bulk operation %s: %v", id, err)
		return
	}

	if err := e.run(ctx, op); err != nil {
		log.Printf("[ERROR] bulk operation %s failed: %v", id, err)
		if ferr := e.store.FinishBulkOperation(ctx, id, db.BulkStatusFailed, err.Error()); ferr != nil {
			log.Printf("[ERROR] failed to finish bulk operation %s: %v", id, ferr)
		}
		return
	}

	if err := e.store.FinishBulkOperation(ctx, id, db.BulkStatusCompleted, ""); err != nil {
		log.Printf("[ERROR] failed to finish bulk operation %s: %v", id, err)
		return
	}
	log.Printf("[INFO] bulk operation %s completed: %d ok, %d failed of %d",
		id, op.SuccessCount, op.FailureCount, op.TotalItems)
}

func (e *Engine) run(ctx context.Context, op *db.BulkOperation) error {
	payload, err := decodePayload(op.Payload)
	if err != nil {
		return err
	}

	site, err := e.store.GetSite(ctx, op.SiteID)
	if err != nil {
		return fmt.Errorf("get site: %w", err)
	}
	remote := e.remotes.RemoteFor(site)

	for i, target := range op.TargetIDs {
		if i > 0 && e.delay > 0 {
			// fixed inter-item delay to respect remote rate limits
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(e.delay):
			}
		}

		if err := e.applyItem(ctx, remote, payload, target); err != nil {
			op.FailureCount++
			op.Errors = append(op.Errors, db.ItemError{ID: target, Error: err.Error()})
			log.Printf("[WARN] bulk operation %s, target %d: %v", op.ID, target, err)
		} else {
			op.SuccessCount++
		}
		op.ProcessedItems++

		// persist after every single item so a crash leaves accurate progress
		if err := e.store.UpdateBulkProgress(ctx, op); err != nil {
			return fmt.Errorf("persist progress: %w", err)
		}
	}

	return nil
}

func (e *Engine) applyItem(ctx context.Context, remote Remote, payload Payload, target int64) error {
	switch {
	case payload.StatusChange != nil:
		return remote.UpdatePostStatus(ctx, target, payload.StatusChange.Status)
	case payload.Delete != nil:
		return remote.DeletePost(ctx, target)
	case payload.MetadataUpdate != nil:
		return remote.UpdatePostMetadata(ctx, target, *payload.MetadataUpdate)
	default:
		return fmt.Errorf("payload has no action arm")
	}
}
