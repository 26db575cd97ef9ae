package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
)

// ErrDuplicateJob is returned when a feed-sourced job already exists
// for the same (feed, source URL) pair
var ErrDuplicateJob = errors.New("job already exists for this source")

// CreateJob creates a new job. For feed-sourced jobs the (feed_id, source_url)
// pair is unique; a duplicate insert returns ErrDuplicateJob.
func (db *DB) CreateJob(ctx context.Context, job *Job) error {
	if job.Status == "" {
		job.Status = JobStatusPending
	}
	query := `
		INSERT INTO jobs (site_id, source_kind, feed_id, source_url, source_title, topic,
		                  status, auto_publish, publish_status, categories, tags, seo_keywords)
		VALUES (:site_id, :source_kind, :feed_id, :source_url, :source_title, :topic,
		        :status, :auto_publish, :publish_status, :categories, :tags, :seo_keywords)
	`
	result, err := db.conn.NamedExecContext(ctx, query, job)
	if err != nil {
		if isUniqueError(err) {
			return ErrDuplicateJob
		}
		return fmt.Errorf("insert job: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}

	job.ID = id
	return nil
}

// GetJob retrieves a job by ID
func (db *DB) GetJob(ctx context.Context, id int64) (*Job, error) {
	var job Job
	query := `SELECT * FROM jobs WHERE id = ?`
	err := db.conn.GetContext(ctx, &job, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("job not found")
		}
		return nil, fmt.Errorf("get job: %w", err)
	}
	return &job, nil
}

// GetJobs retrieves jobs for a site, newest first
func (db *DB) GetJobs(ctx context.Context, siteID int64, limit, offset int) ([]Job, error) {
	var jobs []Job
	query := `SELECT * FROM jobs WHERE site_id = ? ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?`
	err := db.conn.SelectContext(ctx, &jobs, query, siteID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("get jobs: %w", err)
	}
	return jobs, nil
}

// JobExists checks whether a feed-sourced job exists for the (feed, source URL)
// pair, regardless of its status
func (db *DB) JobExists(ctx context.Context, feedID int64, sourceURL string) (bool, error) {
	var count int
	query := `SELECT COUNT(*) FROM jobs WHERE feed_id = ? AND source_url = ?`
	err := db.conn.GetContext(ctx, &count, query, feedID, sourceURL)
	if err != nil {
		return false, fmt.Errorf("check job exists: %w", err)
	}
	return count > 0, nil
}

// GetOldestPendingJob returns the oldest PENDING job, FIFO by creation time,
// or nil when the queue is empty
func (db *DB) GetOldestPendingJob(ctx context.Context) (*Job, error) {
	var job Job
	query := `SELECT * FROM jobs WHERE status = ? ORDER BY created_at, id LIMIT 1`
	err := db.conn.GetContext(ctx, &job, query, JobStatusPending)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get oldest pending job: %w", err)
	}
	return &job, nil
}

// UpdateJobStatus transitions a job to a new status, recording the error text
// for FAILED transitions
func (db *DB) UpdateJobStatus(ctx context.Context, id int64, status JobStatus, errMsg string) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		query := `UPDATE jobs SET status = ?, error = ?, updated_at = datetime('now') WHERE id = ?`
		_, err := db.conn.ExecContext(ctx, query, status, errMsg, id)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("update job status: %w", err)}
		}
		return nil
	})
}

// UpdateJobGenerated persists pipeline output and transitions the job to GENERATED
func (db *DB) UpdateJobGenerated(ctx context.Context, job *Job) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	job.Status = JobStatusGenerated
	job.UpdatedAt = time.Now()

	return retrier.Do(ctx, func() error {
		query := `
			UPDATE jobs
			SET status = :status,
			    gen_title = :gen_title,
			    gen_content = :gen_content,
			    gen_excerpt = :gen_excerpt,
			    categories = :categories,
			    tags = :tags,
			    seo_description = :seo_description,
			    seo_keywords = :seo_keywords,
			    degraded = :degraded,
			    featured_image_url = :featured_image_url,
			    tokens_used = :tokens_used,
			    cost = :cost,
			    error = '',
			    updated_at = :updated_at
			WHERE id = :id
		`
		_, err := db.conn.NamedExecContext(ctx, query, job)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("update job generated: %w", err)}
		}
		return nil
	})
}

// UpdateJobPublished records the remote post id and transitions the job to PUBLISHED
func (db *DB) UpdateJobPublished(ctx context.Context, id, wpPostID int64) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		query := `
			UPDATE jobs
			SET status = ?, wp_post_id = ?, published_at = datetime('now'), updated_at = datetime('now')
			WHERE id = ?
		`
		_, err := db.conn.ExecContext(ctx, query, JobStatusPublished, wpPostID, id)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("update job published: %w", err)}
		}
		return nil
	})
}

// RetryJob resets a FAILED job back to PENDING, clearing its error.
// Explicit user action; there is no automatic retry.
func (db *DB) RetryJob(ctx context.Context, id int64) error {
	result, err := db.conn.ExecContext(ctx,
		`UPDATE jobs SET status = ?, error = '', updated_at = datetime('now') WHERE id = ? AND status = ?`,
		JobStatusPending, id, JobStatusFailed)
	if err != nil {
		return fmt.Errorf("retry job: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("job %d is not in FAILED state", id)
	}
	return nil
}

// DeleteJob removes a job. User action only, jobs are never deleted automatically.
func (db *DB) DeleteJob(ctx context.Context, id int64) error {
	_, err := db.conn.ExecContext(ctx, `DELETE FROM jobs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete job: %w", err)
	}
	return nil
}
