package db

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeTestSchedule(t *testing.T, db *DB, siteID int64, feedID sql.NullInt64) *Schedule {
	t.Helper()
	s := &Schedule{
		SiteID:        siteID,
		FeedID:        feedID,
		Name:          "hourly import",
		TriggerKind:   TriggerHourly,
		CronExpr:      "0 * * * *",
		Timezone:      "UTC",
		PublishStatus: "draft",
		MaxArticles:   10,
		Enabled:       true,
	}
	require.NoError(t, db.CreateSchedule(context.Background(), s))
	require.NotZero(t, s.ID)
	return s
}

func TestDB_ScheduleCRUD(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	site := makeTestSite(t, db)
	feed := makeTestFeed(t, db, site.ID)
	s := makeTestSchedule(t, db, site.ID, sql.NullInt64{Int64: feed.ID, Valid: true})

	t.Run("get", func(t *testing.T) {
		got, err := db.GetSchedule(ctx, s.ID)
		require.NoError(t, err)
		assert.Equal(t, TriggerHourly, got.TriggerKind)
		assert.Equal(t, "0 * * * *", got.CronExpr)
		assert.Equal(t, "UTC", got.Timezone)
		assert.Equal(t, 10, got.MaxArticles)
		assert.True(t, got.Enabled)
		assert.True(t, got.FeedID.Valid)
		assert.Equal(t, feed.ID, got.FeedID.Int64)
		assert.Zero(t, got.TotalRuns)
	})

	t.Run("get missing", func(t *testing.T) {
		_, err := db.GetSchedule(ctx, 9999)
		assert.ErrorContains(t, err, "schedule not found")
	})

	t.Run("update", func(t *testing.T) {
		got, err := db.GetSchedule(ctx, s.ID)
		require.NoError(t, err)

		got.Name = "daily import"
		got.TriggerKind = TriggerDaily
		got.CronExpr = "0 8 * * *"
		got.Timezone = "America/New_York"
		got.AutoPublish = true
		got.PublishStatus = "publish"
		require.NoError(t, db.UpdateSchedule(ctx, got))

		updated, err := db.GetSchedule(ctx, s.ID)
		require.NoError(t, err)
		assert.Equal(t, "daily import", updated.Name)
		assert.Equal(t, TriggerDaily, updated.TriggerKind)
		assert.Equal(t, "America/New_York", updated.Timezone)
		assert.True(t, updated.AutoPublish)
		assert.Equal(t, "publish", updated.PublishStatus)
	})

	t.Run("pause and resume", func(t *testing.T) {
		require.NoError(t, db.SetScheduleEnabled(ctx, s.ID, false))
		got, err := db.GetSchedule(ctx, s.ID)
		require.NoError(t, err)
		assert.False(t, got.Enabled)

		require.NoError(t, db.SetScheduleEnabled(ctx, s.ID, true))
		got, err = db.GetSchedule(ctx, s.ID)
		require.NoError(t, err)
		assert.True(t, got.Enabled)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, db.DeleteSchedule(ctx, s.ID))
		_, err := db.GetSchedule(ctx, s.ID)
		assert.Error(t, err)
	})
}

func TestDB_GetEnabledSchedules(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	site := makeTestSite(t, db)

	enabled := makeTestSchedule(t, db, site.ID, sql.NullInt64{})
	paused := makeTestSchedule(t, db, site.ID, sql.NullInt64{})
	require.NoError(t, db.SetScheduleEnabled(ctx, paused.ID, false))

	schedules, err := db.GetEnabledSchedules(ctx)
	require.NoError(t, err)
	require.Len(t, schedules, 1)
	assert.Equal(t, enabled.ID, schedules[0].ID)
}

func TestDB_IncrementScheduleRuns(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	site := makeTestSite(t, db)
	s := makeTestSchedule(t, db, site.ID, sql.NullInt64{})

	next := time.Now().Add(time.Hour).UTC().Truncate(time.Second)

	require.NoError(t, db.IncrementScheduleRuns(ctx, s.ID, true, sql.NullTime{Time: next, Valid: true}))
	require.NoError(t, db.IncrementScheduleRuns(ctx, s.ID, true, sql.NullTime{Time: next, Valid: true}))
	require.NoError(t, db.IncrementScheduleRuns(ctx, s.ID, false, sql.NullTime{}))

	got, err := db.GetSchedule(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.TotalRuns)
	assert.Equal(t, 2, got.SuccessfulRuns)
	assert.Equal(t, 1, got.FailedRuns)
	assert.True(t, got.LastRunAt.Valid)
	assert.False(t, got.NextRunAt.Valid, "failed one-shot run clears next_run_at")
}
