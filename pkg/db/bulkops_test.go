package db

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeBulkOp(t *testing.T, db *DB, siteID int64, targets []int64) *BulkOperation {
	t.Helper()
	op := &BulkOperation{
		ID:           uuid.New().String(),
		SiteID:       siteID,
		ResourceKind: "post",
		Action:       BulkActionPublish,
		TargetIDs:    targets,
		Payload:      `{"status_change":{"status":"publish"}}`,
	}
	require.NoError(t, db.CreateBulkOperation(context.Background(), op))
	return op
}

func TestDB_BulkOperationLifecycle(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	site := makeTestSite(t, db)
	op := makeBulkOp(t, db, site.ID, []int64{10, 11, 12})

	t.Run("created pending with counts", func(t *testing.T) {
		got, err := db.GetBulkOperation(ctx, op.ID)
		require.NoError(t, err)
		assert.Equal(t, BulkStatusPending, got.Status)
		assert.Equal(t, 3, got.TotalItems)
		assert.Equal(t, Int64List{10, 11, 12}, got.TargetIDs)
		assert.Zero(t, got.ProcessedItems)
		assert.False(t, got.StartedAt.Valid)
	})

	t.Run("start", func(t *testing.T) {
		require.NoError(t, db.StartBulkOperation(ctx, op.ID))
		got, err := db.GetBulkOperation(ctx, op.ID)
		require.NoError(t, err)
		assert.Equal(t, BulkStatusProcessing, got.Status)
		assert.True(t, got.StartedAt.Valid)
	})

	t.Run("per item progress", func(t *testing.T) {
		op.ProcessedItems = 2
		op.SuccessCount = 1
		op.FailureCount = 1
		op.Errors = ItemErrorList{{ID: 11, Error: "post not found"}}
		require.NoError(t, db.UpdateBulkProgress(ctx, op))

		got, err := db.GetBulkOperation(ctx, op.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, got.ProcessedItems)
		assert.Equal(t, 1, got.SuccessCount)
		assert.Equal(t, 1, got.FailureCount)
		require.Len(t, got.Errors, 1)
		assert.Equal(t, int64(11), got.Errors[0].ID)
		assert.Equal(t, "post not found", got.Errors[0].Error)
	})

	t.Run("finish", func(t *testing.T) {
		require.NoError(t, db.FinishBulkOperation(ctx, op.ID, BulkStatusCompleted, ""))
		got, err := db.GetBulkOperation(ctx, op.ID)
		require.NoError(t, err)
		assert.Equal(t, BulkStatusCompleted, got.Status)
		assert.True(t, got.CompletedAt.Valid)
		assert.Empty(t, got.Error)
	})

	t.Run("finish failed keeps error", func(t *testing.T) {
		failed := makeBulkOp(t, db, site.ID, []int64{1})
		require.NoError(t, db.FinishBulkOperation(ctx, failed.ID, BulkStatusFailed, "site unreachable"))
		got, err := db.GetBulkOperation(ctx, failed.ID)
		require.NoError(t, err)
		assert.Equal(t, BulkStatusFailed, got.Status)
		assert.Equal(t, "site unreachable", got.Error)
	})

	t.Run("get missing", func(t *testing.T) {
		_, err := db.GetBulkOperation(ctx, uuid.New().String())
		assert.ErrorContains(t, err, "bulk operation not found")
	})
}

func TestDB_GetBulkOperations(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	site := makeTestSite(t, db)
	other := makeTestSite2(t, db, "Other", "https://other.example.com")

	makeBulkOp(t, db, site.ID, []int64{1})
	makeBulkOp(t, db, site.ID, []int64{2})
	makeBulkOp(t, db, other.ID, []int64{3})

	ops, err := db.GetBulkOperations(ctx, site.ID, 10, 0)
	require.NoError(t, err)
	assert.Len(t, ops, 2)

	ops, err = db.GetBulkOperations(ctx, site.ID, 1, 0)
	require.NoError(t, err)
	assert.Len(t, ops, 1)
}
