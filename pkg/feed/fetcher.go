// Package feed reads external syndication feeds and normalizes them
// into an ordered sequence of items.
package feed

import (
	"context"
	"fmt"
	"time"

	"github.com/mmcdole/gofeed"
)

// Item is one normalized feed entry, in feed order
type Item struct {
	Title       string
	Link        string
	Description string
	Content     string
	Published   time.Time
}

// HTTPFetcher fetches RSS/Atom feeds via HTTP
type HTTPFetcher struct {
	parser  *gofeed.Parser
	timeout time.Duration
}

// NewHTTPFetcher creates a new feed fetcher
func NewHTTPFetcher(timeout time.Duration, userAgent string) *HTTPFetcher {
	parser := gofeed.NewParser()
	if userAgent != "" {
		parser.UserAgent = userAgent
	}
	return &HTTPFetcher{
		parser:  parser,
		timeout: timeout,
	}
}

// Fetch retrieves and parses a feed from the given URL
func (f *HTTPFetcher) Fetch(ctx context.Context, feedURL string) ([]Item, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	parsed, err := f.parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("parse feed %s: %w", feedURL, err)
	}

	items := make([]Item, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		entry := Item{
			Title:       item.Title,
			Link:        item.Link,
			Description: item.Description,
			Content:     item.Content,
		}

		// parse publish time
		if item.PublishedParsed != nil {
			entry.Published = *item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			entry.Published = *item.UpdatedParsed
		}

		items = append(items, entry)
	}

	return items, nil
}
