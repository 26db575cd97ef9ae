package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
)

// CreateSchedule creates a new schedule
func (db *DB) CreateSchedule(ctx context.Context, s *Schedule) error {
	query := `
		INSERT INTO schedules (site_id, feed_id, name, trigger_kind, cron_expr, run_at, timezone,
		                       auto_publish, publish_status, max_articles, enabled, next_run_at)
		VALUES (:site_id, :feed_id, :name, :trigger_kind, :cron_expr, :run_at, :timezone,
		        :auto_publish, :publish_status, :max_articles, :enabled, :next_run_at)
	`
	result, err := db.conn.NamedExecContext(ctx, query, s)
	if err != nil {
		return fmt.Errorf("insert schedule: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}

	s.ID = id
	return nil
}

// GetSchedule retrieves a schedule by ID
func (db *DB) GetSchedule(ctx context.Context, id int64) (*Schedule, error) {
	var s Schedule
	query := `SELECT * FROM schedules WHERE id = ?`
	err := db.conn.GetContext(ctx, &s, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("schedule not found")
		}
		return nil, fmt.Errorf("get schedule: %w", err)
	}
	return &s, nil
}

// GetSchedules retrieves all schedules for a site
func (db *DB) GetSchedules(ctx context.Context, siteID int64) ([]Schedule, error) {
	var schedules []Schedule
	query := `SELECT * FROM schedules WHERE site_id = ? ORDER BY created_at DESC`
	err := db.conn.SelectContext(ctx, &schedules, query, siteID)
	if err != nil {
		return nil, fmt.Errorf("get schedules: %w", err)
	}
	return schedules, nil
}

// GetEnabledSchedules retrieves all enabled schedules across all sites,
// used to re-arm timers at process start
func (db *DB) GetEnabledSchedules(ctx context.Context) ([]Schedule, error) {
	var schedules []Schedule
	query := `SELECT * FROM schedules WHERE enabled = 1 ORDER BY id`
	err := db.conn.SelectContext(ctx, &schedules, query)
	if err != nil {
		return nil, fmt.Errorf("get enabled schedules: %w", err)
	}
	return schedules, nil
}

// UpdateSchedule updates mutable schedule fields
func (db *DB) UpdateSchedule(ctx context.Context, s *Schedule) error {
	s.UpdatedAt = time.Now()
	query := `
		UPDATE schedules
		SET feed_id = :feed_id,
		    name = :name,
		    trigger_kind = :trigger_kind,
		    cron_expr = :cron_expr,
		    run_at = :run_at,
		    timezone = :timezone,
		    auto_publish = :auto_publish,
		    publish_status = :publish_status,
		    max_articles = :max_articles,
		    enabled = :enabled,
		    next_run_at = :next_run_at,
		    updated_at = :updated_at
		WHERE id = :id
	`
	_, err := db.conn.NamedExecContext(ctx, query, s)
	if err != nil {
		return fmt.Errorf("update schedule: %w", err)
	}
	return nil
}

// SetScheduleEnabled pauses or resumes a schedule
func (db *DB) SetScheduleEnabled(ctx context.Context, id int64, enabled bool) error {
	_, err := db.conn.ExecContext(ctx,
		`UPDATE schedules SET enabled = ?, updated_at = datetime('now') WHERE id = ?`, enabled, id)
	if err != nil {
		return fmt.Errorf("set schedule enabled: %w", err)
	}
	return nil
}

// IncrementScheduleRuns atomically updates run counters and fire times after a firing.
// Retried on lock errors since the dispatcher and queue worker share the store.
func (db *DB) IncrementScheduleRuns(ctx context.Context, id int64, success bool, nextRun sql.NullTime) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		query := `
			UPDATE schedules
			SET total_runs = total_runs + 1,
			    successful_runs = successful_runs + CASE WHEN ? THEN 1 ELSE 0 END,
			    failed_runs = failed_runs + CASE WHEN ? THEN 0 ELSE 1 END,
			    last_run_at = datetime('now'),
			    next_run_at = ?,
			    updated_at = datetime('now')
			WHERE id = ?
		`
		_, err := db.conn.ExecContext(ctx, query, success, success, nextRun, id)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("increment schedule runs: %w", err)}
		}
		return nil
	})
}

// DeleteSchedule removes a schedule
func (db *DB) DeleteSchedule(ctx context.Context, id int64) error {
	_, err := db.conn.ExecContext(ctx, `DELETE FROM schedules WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete schedule: %w", err)
	}
	return nil
}
