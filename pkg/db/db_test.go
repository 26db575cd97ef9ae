package db

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) (db *DB, cleanup func()) {
	t.Helper()

	// create temp file for test database
	tmpFile, err := os.CreateTemp("", "test-*.db")
	require.NoError(t, err)
	tmpFile.Close()

	cfg := Config{
		DSN: "file:" + tmpFile.Name() + "?mode=rwc",
	}

	db, err = New(cfg)
	require.NoError(t, err)

	cleanup = func() {
		db.Close()
		os.Remove(tmpFile.Name())
	}

	return db, cleanup
}

// makeTestSite inserts a site and returns it, shared by most suites
func makeTestSite(t *testing.T, db *DB) *Site {
	t.Helper()
	site := &Site{
		Name:        "Test Site",
		BaseURL:     "https://blog.example.com",
		Username:    "admin",
		AppPassword: "xxxx yyyy zzzz",
	}
	require.NoError(t, db.CreateSite(context.Background(), site))
	require.NotZero(t, site.ID)
	return site
}

func makeTestFeed(t *testing.T, db *DB, siteID int64) *Feed {
	t.Helper()
	feed := &Feed{
		SiteID:  siteID,
		URL:     "https://news.example.com/rss",
		Title:   "Example News",
		Enabled: true,
	}
	require.NoError(t, db.CreateFeed(context.Background(), feed))
	require.NotZero(t, feed.ID)
	return feed
}

func TestDB_InitSchema(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	// schema should already be initialized by New()
	var count int
	err := db.conn.Get(&count, `
		SELECT COUNT(*) FROM sqlite_master
		WHERE type='table' AND name IN ('sites', 'feeds', 'schedules', 'jobs', 'bulk_operations')
	`)
	require.NoError(t, err)
	assert.Equal(t, 5, count)
}

func TestDB_InitSchemaIdempotent(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	// running the schema twice must not fail
	err := db.InitSchema(context.Background())
	assert.NoError(t, err)
}

func TestDB_NewWithConnectionSettings(t *testing.T) {
	tmpFile, err := os.CreateTemp("", "test-conn-*.db")
	require.NoError(t, err)
	tmpFile.Close()
	defer os.Remove(tmpFile.Name())

	cfg := Config{
		DSN:             "file:" + tmpFile.Name() + "?mode=rwc",
		MaxOpenConns:    5,
		MaxIdleConns:    2,
		ConnMaxLifetime: time.Hour,
	}

	db, err := New(cfg)
	require.NoError(t, err)
	defer db.Close()

	assert.NoError(t, db.Ping(context.Background()))
}

func TestDB_InTransaction(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	t.Run("commit", func(t *testing.T) {
		err := db.InTransaction(ctx, func(tx *sqlx.Tx) error {
			_, err := tx.Exec(`INSERT INTO sites (name, base_url, username, app_password) VALUES ('tx', 'https://tx.example.com', 'u', 'p')`)
			return err
		})
		require.NoError(t, err)

		sites, err := db.GetSites(ctx)
		require.NoError(t, err)
		assert.Len(t, sites, 1)
	})

	t.Run("rollback on error", func(t *testing.T) {
		err := db.InTransaction(ctx, func(tx *sqlx.Tx) error {
			if _, err := tx.Exec(`INSERT INTO sites (name, base_url, username, app_password) VALUES ('tx2', 'https://tx2.example.com', 'u', 'p')`); err != nil {
				return err
			}
			return assert.AnError
		})
		require.Error(t, err)

		sites, err := db.GetSites(ctx)
		require.NoError(t, err)
		assert.Len(t, sites, 1, "rolled back insert should not be visible")
	})
}
