package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
)

// CreateBulkOperation creates a new bulk operation record
func (db *DB) CreateBulkOperation(ctx context.Context, op *BulkOperation) error {
	if op.Status == "" {
		op.Status = BulkStatusPending
	}
	op.TotalItems = len(op.TargetIDs)
	query := `
		INSERT INTO bulk_operations (id, site_id, resource_kind, action, target_ids, payload,
		                             status, total_items)
		VALUES (:id, :site_id, :resource_kind, :action, :target_ids, :payload,
		        :status, :total_items)
	`
	_, err := db.conn.NamedExecContext(ctx, query, op)
	if err != nil {
		return fmt.Errorf("insert bulk operation: %w", err)
	}
	return nil
}

// GetBulkOperation retrieves a bulk operation by ID
func (db *DB) GetBulkOperation(ctx context.Context, id string) (*BulkOperation, error) {
	var op BulkOperation
	query := `SELECT * FROM bulk_operations WHERE id = ?`
	err := db.conn.GetContext(ctx, &op, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("bulk operation not found")
		}
		return nil, fmt.Errorf("get bulk operation: %w", err)
	}
	return &op, nil
}

// GetBulkOperations retrieves bulk operations for a site, newest first
func (db *DB) GetBulkOperations(ctx context.Context, siteID int64, limit, offset int) ([]BulkOperation, error) {
	var ops []BulkOperation
	query := `SELECT * FROM bulk_operations WHERE site_id = ? ORDER BY created_at DESC LIMIT ? OFFSET ?`
	err := db.conn.SelectContext(ctx, &ops, query, siteID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("get bulk operations: %w", err)
	}
	return ops, nil
}

// StartBulkOperation marks an operation as processing
func (db *DB) StartBulkOperation(ctx context.Context, id string) error {
	_, err := db.conn.ExecContext(ctx,
		`UPDATE bulk_operations SET status = ?, started_at = datetime('now'), updated_at = datetime('now') WHERE id = ?`,
		BulkStatusProcessing, id)
	if err != nil {
		return fmt.Errorf("start bulk operation: %w", err)
	}
	return nil
}

// UpdateBulkProgress persists per-item progress. Called after every single
// item so a crash mid-operation leaves an accurate partial result.
func (db *DB) UpdateBulkProgress(ctx context.Context, op *BulkOperation) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	op.UpdatedAt = time.Now()

	return retrier.Do(ctx, func() error {
		query := `
			UPDATE bulk_operations
			SET processed_items = :processed_items,
			    success_count = :success_count,
			    failure_count = :failure_count,
			    errors = :errors,
			    updated_at = :updated_at
			WHERE id = :id
		`
		_, err := db.conn.NamedExecContext(ctx, query, op)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("update bulk progress: %w", err)}
		}
		return nil
	})
}

// FinishBulkOperation transitions an operation to its terminal state.
// The record is immutable afterwards.
func (db *DB) FinishBulkOperation(ctx context.Context, id string, status BulkStatus, errMsg string) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		query := `
			UPDATE bulk_operations
			SET status = ?, error = ?, completed_at = datetime('now'), updated_at = datetime('now')
			WHERE id = ?
		`
		_, err := db.conn.ExecContext(ctx, query, status, errMsg, id)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("finish bulk operation: %w", err)}
		}
		return nil
	})
}
