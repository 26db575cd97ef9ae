package db

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeFeedJob(t *testing.T, db *DB, siteID, feedID int64, sourceURL string) *Job {
	t.Helper()
	job := &Job{
		SiteID:      siteID,
		SourceKind:  SourceFeed,
		FeedID:      sql.NullInt64{Int64: feedID, Valid: true},
		SourceURL:   sourceURL,
		SourceTitle: "Some Article",
	}
	require.NoError(t, db.CreateJob(context.Background(), job))
	require.NotZero(t, job.ID)
	return job
}

func TestDB_CreateJob(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	site := makeTestSite(t, db)
	feed := makeTestFeed(t, db, site.ID)

	t.Run("defaults to pending", func(t *testing.T) {
		job := makeFeedJob(t, db, site.ID, feed.ID, "https://news.example.com/a1")
		got, err := db.GetJob(ctx, job.ID)
		require.NoError(t, err)
		assert.Equal(t, JobStatusPending, got.Status)
		assert.Equal(t, SourceFeed, got.SourceKind)
		assert.Empty(t, got.Error)
	})

	t.Run("duplicate source rejected", func(t *testing.T) {
		dup := &Job{
			SiteID:     site.ID,
			SourceKind: SourceFeed,
			FeedID:     sql.NullInt64{Int64: feed.ID, Valid: true},
			SourceURL:  "https://news.example.com/a1",
		}
		err := db.CreateJob(ctx, dup)
		assert.ErrorIs(t, err, ErrDuplicateJob)
	})

	t.Run("duplicate survives failure", func(t *testing.T) {
		// a FAILED job still blocks re-enqueue of the same source
		job := makeFeedJob(t, db, site.ID, feed.ID, "https://news.example.com/a2")
		require.NoError(t, db.UpdateJobStatus(ctx, job.ID, JobStatusFailed, "llm error"))

		dup := &Job{
			SiteID:     site.ID,
			SourceKind: SourceFeed,
			FeedID:     sql.NullInt64{Int64: feed.ID, Valid: true},
			SourceURL:  "https://news.example.com/a2",
		}
		assert.ErrorIs(t, db.CreateJob(ctx, dup), ErrDuplicateJob)
	})

	t.Run("topic jobs are never deduplicated", func(t *testing.T) {
		for range 2 {
			job := &Job{SiteID: site.ID, SourceKind: SourceTopic, Topic: "home automation trends"}
			assert.NoError(t, db.CreateJob(ctx, job))
		}
	})
}

func TestDB_JobExists(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	site := makeTestSite(t, db)
	feed := makeTestFeed(t, db, site.ID)
	makeFeedJob(t, db, site.ID, feed.ID, "https://news.example.com/a1")

	exists, err := db.JobExists(ctx, feed.ID, "https://news.example.com/a1")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = db.JobExists(ctx, feed.ID, "https://news.example.com/other")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestDB_GetOldestPendingJob(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	site := makeTestSite(t, db)
	feed := makeTestFeed(t, db, site.ID)

	t.Run("empty queue returns nil", func(t *testing.T) {
		job, err := db.GetOldestPendingJob(ctx)
		require.NoError(t, err)
		assert.Nil(t, job)
	})

	t.Run("fifo order", func(t *testing.T) {
		first := makeFeedJob(t, db, site.ID, feed.ID, "https://news.example.com/a1")
		second := makeFeedJob(t, db, site.ID, feed.ID, "https://news.example.com/a2")

		job, err := db.GetOldestPendingJob(ctx)
		require.NoError(t, err)
		require.NotNil(t, job)
		assert.Equal(t, first.ID, job.ID)

		// non-pending jobs are skipped
		require.NoError(t, db.UpdateJobStatus(ctx, first.ID, JobStatusGenerating, ""))
		job, err = db.GetOldestPendingJob(ctx)
		require.NoError(t, err)
		require.NotNil(t, job)
		assert.Equal(t, second.ID, job.ID)
	})
}

func TestDB_UpdateJobGenerated(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	site := makeTestSite(t, db)
	feed := makeTestFeed(t, db, site.ID)
	job := makeFeedJob(t, db, site.ID, feed.ID, "https://news.example.com/a1")

	job.GenTitle = "Generated Title"
	job.GenContent = "<p>body</p>"
	job.GenExcerpt = "summary"
	job.Categories = StringList{"Tech", "News"}
	job.Tags = StringList{"go", "sqlite"}
	job.SEODescription = "meta description"
	job.SEOKeywords = StringList{"tech news"}
	job.Degraded = true
	job.FeaturedImageURL = "https://images.example.com/1.jpg"
	job.TokensUsed = 1234
	job.Cost = 0.05

	require.NoError(t, db.UpdateJobGenerated(ctx, job))

	got, err := db.GetJob(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, JobStatusGenerated, got.Status)
	assert.Equal(t, "Generated Title", got.GenTitle)
	assert.Equal(t, StringList{"Tech", "News"}, got.Categories)
	assert.Equal(t, StringList{"go", "sqlite"}, got.Tags)
	assert.Equal(t, StringList{"tech news"}, got.SEOKeywords)
	assert.True(t, got.Degraded)
	assert.Equal(t, "https://images.example.com/1.jpg", got.FeaturedImageURL)
	assert.Equal(t, 1234, got.TokensUsed)
	assert.InDelta(t, 0.05, got.Cost, 0.0001)
	assert.Empty(t, got.Error)
}

func TestDB_UpdateJobPublished(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	site := makeTestSite(t, db)
	feed := makeTestFeed(t, db, site.ID)
	job := makeFeedJob(t, db, site.ID, feed.ID, "https://news.example.com/a1")

	require.NoError(t, db.UpdateJobPublished(ctx, job.ID, 42))

	got, err := db.GetJob(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, JobStatusPublished, got.Status)
	require.True(t, got.WPPostID.Valid)
	assert.Equal(t, int64(42), got.WPPostID.Int64)
	assert.True(t, got.PublishedAt.Valid)
}

func TestDB_RetryJob(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	site := makeTestSite(t, db)
	feed := makeTestFeed(t, db, site.ID)
	job := makeFeedJob(t, db, site.ID, feed.ID, "https://news.example.com/a1")

	t.Run("only failed jobs retry", func(t *testing.T) {
		err := db.RetryJob(ctx, job.ID)
		assert.ErrorContains(t, err, "not in FAILED state")
	})

	t.Run("failed back to pending", func(t *testing.T) {
		require.NoError(t, db.UpdateJobStatus(ctx, job.ID, JobStatusFailed, "generation failed"))
		require.NoError(t, db.RetryJob(ctx, job.ID))

		got, err := db.GetJob(ctx, job.ID)
		require.NoError(t, err)
		assert.Equal(t, JobStatusPending, got.Status)
		assert.Empty(t, got.Error, "retry clears the error")
	})
}

func TestDB_GetJobsAndDelete(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	site := makeTestSite(t, db)
	feed := makeTestFeed(t, db, site.ID)

	for i := range 3 {
		makeFeedJob(t, db, site.ID, feed.ID, "https://news.example.com/a"+string(rune('1'+i)))
	}

	jobs, err := db.GetJobs(ctx, site.ID, 2, 0)
	require.NoError(t, err)
	assert.Len(t, jobs, 2)

	jobs, err = db.GetJobs(ctx, site.ID, 10, 2)
	require.NoError(t, err)
	require.Len(t, jobs, 1)

	require.NoError(t, db.DeleteJob(ctx, jobs[0].ID))
	remaining, err := db.GetJobs(ctx, site.ID, 10, 0)
	require.NoError(t, err)
	assert.Len(t, remaining, 2)
}
