package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// CreateSite creates a new site
func (db *DB) CreateSite(ctx context.Context, site *Site) error {
	query := `
		INSERT INTO sites (name, base_url, username, app_password)
		VALUES (:name, :base_url, :username, :app_password)
	`
	result, err := db.conn.NamedExecContext(ctx, query, site)
	if err != nil {
		return fmt.Errorf("insert site: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}

	site.ID = id
	return nil
}

// GetSite retrieves a site by ID
func (db *DB) GetSite(ctx context.Context, id int64) (*Site, error) {
	var site Site
	query := `SELECT * FROM sites WHERE id = ?`
	err := db.conn.GetContext(ctx, &site, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("site not found")
		}
		return nil, fmt.Errorf("get site: %w", err)
	}
	return &site, nil
}

// GetSites retrieves all sites
func (db *DB) GetSites(ctx context.Context) ([]Site, error) {
	var sites []Site
	query := `SELECT * FROM sites ORDER BY name`
	err := db.conn.SelectContext(ctx, &sites, query)
	if err != nil {
		return nil, fmt.Errorf("get sites: %w", err)
	}
	return sites, nil
}

// DeleteSite removes a site and all dependent records
func (db *DB) DeleteSite(ctx context.Context, id int64) error {
	_, err := db.conn.ExecContext(ctx, `DELETE FROM sites WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete site: %w", err)
	}
	return nil
}

// CreateFeed creates a new feed
func (db *DB) CreateFeed(ctx context.Context, feed *Feed) error {
	query := `
		INSERT INTO feeds (site_id, url, title, enabled)
		VALUES (:site_id, :url, :title, :enabled)
	`
	result, err := db.conn.NamedExecContext(ctx, query, feed)
	if err != nil {
		return fmt.Errorf("insert feed: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}

	feed.ID = id
	return nil
}

// GetFeed retrieves a feed by ID
func (db *DB) GetFeed(ctx context.Context, id int64) (*Feed, error) {
	var feed Feed
	query := `SELECT * FROM feeds WHERE id = ?`
	err := db.conn.GetContext(ctx, &feed, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("feed not found")
		}
		return nil, fmt.Errorf("get feed: %w", err)
	}
	return &feed, nil
}

// GetFeeds retrieves all feeds for a site
func (db *DB) GetFeeds(ctx context.Context, siteID int64) ([]Feed, error) {
	var feeds []Feed
	query := `SELECT * FROM feeds WHERE site_id = ? ORDER BY title`
	err := db.conn.SelectContext(ctx, &feeds, query, siteID)
	if err != nil {
		return nil, fmt.Errorf("get feeds: %w", err)
	}
	return feeds, nil
}

// DeleteFeed removes a feed
func (db *DB) DeleteFeed(ctx context.Context, id int64) error {
	_, err := db.conn.ExecContext(ctx, `DELETE FROM feeds WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete feed: %w", err)
	}
	return nil
}
