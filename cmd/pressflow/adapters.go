package main

import (
	"context"

	"github.com/pressflow/pressflow/pkg/bulk"
	"github.com/pressflow/pressflow/pkg/config"
	"github.com/pressflow/pressflow/pkg/db"
	"github.com/pressflow/pressflow/pkg/pipeline"
	"github.com/pressflow/pressflow/pkg/wordpress"
)

// wpFactory builds per-site WordPress clients for the queue worker and the
// bulk engine
type wpFactory struct {
	cfg config.WordPressConfig
}

func (f *wpFactory) clientFor(site *db.Site) *wordpress.Client {
	return wordpress.NewClient(site.BaseURL, site.Username, site.AppPassword, f.cfg.Timeout, f.cfg.UploadTimeout)
}

// PublisherFor implements queue.PublisherFactory
func (f *wpFactory) PublisherFor(site *db.Site) pipeline.Publisher {
	return &publisherAdapter{client: f.clientFor(site)}
}

// RemoteFor implements bulk.RemoteFactory
func (f *wpFactory) RemoteFor(site *db.Site) bulk.Remote {
	return &remoteAdapter{client: f.clientFor(site)}
}

// publisherAdapter maps the pipeline's publish surface onto the WordPress client
type publisherAdapter struct {
	client *wordpress.Client
}

func (a *publisherAdapter) ResolveCategories(ctx context.Context, names []string) ([]int64, error) {
	return a.client.ResolveCategories(ctx, names)
}

func (a *publisherAdapter) ResolveTags(ctx context.Context, names []string) ([]int64, error) {
	return a.client.ResolveTags(ctx, names)
}

func (a *publisherAdapter) SideloadMedia(ctx context.Context, srcURL string) (int64, error) {
	return a.client.SideloadMedia(ctx, srcURL)
}

func (a *publisherAdapter) CreatePost(ctx context.Context, post pipeline.Post) (int64, error) {
	meta := map[string]any{}
	if post.SEO.Description != "" {
		meta["seo_description"] = post.SEO.Description
	}
	if len(post.SEO.Keywords) > 0 {
		meta["seo_keywords"] = post.SEO.Keywords
	}
	return a.client.CreatePost(ctx, wordpress.Post{
		Title:         post.Title,
		Content:       post.Content,
		Excerpt:       post.Excerpt,
		Status:        post.Status,
		Categories:    post.Categories,
		Tags:          post.Tags,
		FeaturedMedia: post.FeaturedMedia,
		Meta:          meta,
	})
}

// remoteAdapter maps the bulk engine's remote surface onto the WordPress client
type remoteAdapter struct {
	client *wordpress.Client
}

func (a *remoteAdapter) UpdatePostStatus(ctx context.Context, postID int64, status string) error {
	return a.client.UpdatePostStatus(ctx, postID, status)
}

func (a *remoteAdapter) UpdatePostMetadata(ctx context.Context, postID int64, update bulk.MetadataUpdate) error {
	return a.client.UpdatePostMetadata(ctx, postID, wordpress.MetadataUpdate{
		Title:      update.Title,
		Excerpt:    update.Excerpt,
		Categories: update.Categories,
		Tags:       update.Tags,
	})
}

func (a *remoteAdapter) DeletePost(ctx context.Context, postID int64) error {
	return a.client.DeletePost(ctx, postID)
}
