// Package scheduler owns schedule timers: it computes next-fire times and
// seeds the job queue by reading feeds and diffing against seen items.
package scheduler

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/pressflow/pressflow/pkg/db"
	"github.com/pressflow/pressflow/pkg/feed"
)

//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store
//go:generate moq -out mocks/feed_reader.go -pkg mocks -skip-ensure -fmt goimports . FeedReader

// Store is the persistence surface the registry needs
type Store interface {
	GetSchedule(ctx context.Context, id int64) (*db.Schedule, error)
	GetEnabledSchedules(ctx context.Context) ([]db.Schedule, error)
	IncrementScheduleRuns(ctx context.Context, id int64, success bool, nextRun sql.NullTime) error
	GetFeed(ctx context.Context, id int64) (*db.Feed, error)
	JobExists(ctx context.Context, feedID int64, sourceURL string) (bool, error)
	CreateJob(ctx context.Context, job *db.Job) error
}

// FeedReader fetches and normalizes a syndication feed
type FeedReader interface {
	Fetch(ctx context.Context, feedURL string) ([]feed.Item, error)
}

// Registry owns the live timers for all registered schedules. It is an
// explicit instance created by the composition root, not a global.
type Registry struct {
	store  Store
	reader FeedReader

	// NowFn returns the current time, replaceable in tests
	NowFn func() time.Time

	mu      sync.Mutex
	entries map[int64]*entry
}

// entry is one armed schedule. The firing mutex guarantees at most one
// in-flight firing per schedule.
type entry struct {
	timer  *time.Timer
	firing sync.Mutex
}

// NewRegistry creates a scheduler registry
func NewRegistry(store Store, reader FeedReader) *Registry {
	return &Registry{
		store:   store,
		reader:  reader,
		NowFn:   time.Now,
		entries: make(map[int64]*entry),
	}
}

// InitializeAll re-arms every enabled schedule, called once at process start
func (r *Registry) InitializeAll(ctx context.Context) error {
	schedules, err := r.store.GetEnabledSchedules(ctx)
	if err != nil {
		return fmt.Errorf("load enabled schedules: %w", err)
	}

	for i := range schedules {
		if err := r.Register(ctx, &schedules[i]); err != nil {
			log.Printf("[ERROR] failed to register schedule %d: %v", schedules[i].ID, err)
		}
	}

	log.Printf("[INFO] scheduler registry initialized with %d schedules", len(schedules))
	return nil
}

// Register arms a schedule's timer. A one-shot schedule whose instant has
// already elapsed fires immediately instead of being armed.
func (r *Registry) Register(ctx context.Context, s *db.Schedule) error {
	now := r.NowFn()

	next, ok, err := NextFire(s, now)
	if err != nil {
		return err
	}

	if !ok {
		// elapsed one-shot: fire right away
		r.ensureEntry(s.ID)
		r.Fire(ctx, s.ID)
		return nil
	}

	e := r.ensureEntry(s.ID)

	r.mu.Lock()
	defer r.mu.Unlock()
	if e.timer != nil {
		e.timer.Stop()
	}
	id := s.ID
	e.timer = time.AfterFunc(next.Sub(now), func() {
		r.Fire(context.Background(), id)
	})

	log.Printf("[INFO] schedule %d armed, next fire at %s", s.ID, next.Format(time.RFC3339))
	return nil
}

// Unregister tears down a schedule's timer. An in-flight firing is allowed
// to finish.
func (r *Registry) Unregister(scheduleID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e, ok := r.entries[scheduleID]; ok {
		if e.timer != nil {
			e.timer.Stop()
		}
		delete(r.entries, scheduleID)
		log.Printf("[INFO] schedule %d unregistered", scheduleID)
	}
}

// FireNow triggers a firing outside the timer, e.g. from a run-now action
func (r *Registry) FireNow(ctx context.Context, scheduleID int64) {
	r.ensureEntry(scheduleID)
	r.Fire(ctx, scheduleID)
}

// Registered reports whether a schedule currently has an entry
func (r *Registry) Registered(scheduleID int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.entries[scheduleID]
	return ok
}

func (r *Registry) ensureEntry(id int64) *entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[id]
	if !ok {
		e = &entry{}
		r.entries[id] = e
	}
	return e
}

// Fire executes one firing of a schedule: read the feed, enqueue new jobs,
// update counters and re-arm the timer. Firings of the same schedule never
// overlap; a second Fire while one is in flight is a no-op.
func (r *Registry) Fire(ctx context.Context, scheduleID int64) {
	e := r.ensureEntry(scheduleID)

	if !e.firing.TryLock() {
		log.Printf("[WARN] schedule %d firing already in flight, skipped", scheduleID)
		return
	}
	defer e.firing.Unlock()

	s, err := r.store.GetSchedule(ctx, scheduleID)
	if err != nil {
		log.Printf("[ERROR] firing schedule %d: %v", scheduleID, err)
		return
	}
	if !s.Enabled {
		return
	}

	enqueued, fireErr := r.runFiring(ctx, s)
	if fireErr != nil {
		log.Printf("[ERROR] schedule %d firing failed: %v", scheduleID, fireErr)
	} else {
		log.Printf("[INFO] schedule %d fired, %d jobs enqueued", scheduleID, enqueued)
	}

	// a firing that enqueues zero new items is still a successful run;
	// only erroring firings count as failed
	now := r.NowFn()
	next, ok, err := NextFire(s, now)
	var nextRun sql.NullTime
	if err == nil && ok && s.TriggerKind != db.TriggerOnce {
		nextRun = sql.NullTime{Time: next, Valid: true}
	}

	if err := r.store.IncrementScheduleRuns(ctx, scheduleID, fireErr == nil, nextRun); err != nil {
		log.Printf("[ERROR] failed to update schedule %d counters: %v", scheduleID, err)
	}

	// re-arm recurring schedules; one-shots are done after a single firing.
	// skip if the schedule was unregistered mid-firing, otherwise the new
	// timer would outlive the entry
	if nextRun.Valid {
		r.mu.Lock()
		if r.entries[scheduleID] == e {
			if e.timer != nil {
				e.timer.Stop()
			}
			e.timer = time.AfterFunc(next.Sub(now), func() {
				r.Fire(context.Background(), scheduleID)
			})
		}
		r.mu.Unlock()
	}
}

// runFiring seeds the queue from the schedule's feed. It does not generate
// content, only creates PENDING jobs.
func (r *Registry) runFiring(ctx context.Context, s *db.Schedule) (enqueued int, err error) {
	if !s.FeedID.Valid {
		return 0, nil // nothing to seed from
	}

	f, err := r.store.GetFeed(ctx, s.FeedID.Int64)
	if err != nil {
		return 0, fmt.Errorf("get feed: %w", err)
	}

	items, err := r.reader.Fetch(ctx, f.URL)
	if err != nil {
		return 0, fmt.Errorf("fetch feed: %w", err)
	}

	maxArticles := s.MaxArticles
	if maxArticles <= 0 {
		maxArticles = 20
	}
	if len(items) > maxArticles {
		items = items[:maxArticles]
	}

	for _, item := range items {
		// dedup by (feed, source URL) regardless of job status
		exists, err := r.store.JobExists(ctx, f.ID, item.Link)
		if err != nil {
			return enqueued, fmt.Errorf("check job exists: %w", err)
		}
		if exists {
			continue
		}

		job := &db.Job{
			SiteID:        s.SiteID,
			SourceKind:    db.SourceFeed,
			FeedID:        sql.NullInt64{Int64: f.ID, Valid: true},
			SourceURL:     item.Link,
			SourceTitle:   item.Title,
			Status:        db.JobStatusPending,
			AutoPublish:   s.AutoPublish,
			PublishStatus: s.PublishStatus,
		}
		if err := r.store.CreateJob(ctx, job); err != nil {
			if errors.Is(err, db.ErrDuplicateJob) {
				continue // raced with another firing, same idempotent outcome
			}
			return enqueued, fmt.Errorf("create job: %w", err)
		}
		enqueued++
	}

	return enqueued, nil
}
