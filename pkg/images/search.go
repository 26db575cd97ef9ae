package images

import (
	"context"
	"fmt"
	"log"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Search fans out phrases to all enabled providers in parallel
type Search struct {
	providers   []Provider
	perPhrase   int
	maxPhrases  int
	orientation string
}

// NewSearch creates a search over the given providers
func NewSearch(providers []Provider, perPhrase, maxPhrases int, orientation string) *Search {
	if perPhrase == 0 {
		perPhrase = 5
	}
	if maxPhrases == 0 {
		maxPhrases = 3
	}
	return &Search{
		providers:   providers,
		perPhrase:   perPhrase,
		maxPhrases:  maxPhrases,
		orientation: orientation,
	}
}

// Enabled reports whether any provider is configured
func (s *Search) Enabled() bool { return len(s.providers) > 0 }

// Find queries every provider for up to maxPhrases phrases and collects all
// candidates. A single provider's failure does not fail the batch; only
// all-providers-failed is an error.
func (s *Search) Find(ctx context.Context, phrases []string) ([]Image, error) {
	if len(s.providers) == 0 {
		return nil, fmt.Errorf("no image providers enabled")
	}
	if len(phrases) > s.maxPhrases {
		phrases = phrases[:s.maxPhrases]
	}

	var mu sync.Mutex
	var collected []Image
	failures := 0
	calls := 0

	g, ctx := errgroup.WithContext(ctx)
	for _, provider := range s.providers {
		for _, phrase := range phrases {
			calls++
			g.Go(func() error {
				results, err := provider.Search(ctx, Query{
					Phrase:      phrase,
					PerPage:     s.perPhrase,
					Orientation: s.orientation,
				})
				mu.Lock()
				defer mu.Unlock()
				if err != nil {
					log.Printf("[WARN] image search failed, provider %s, phrase %q: %v", provider.Name(), phrase, err)
					failures++
					return nil // isolated, keep other providers going
				}
				collected = append(collected, results...)
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("image search: %w", err)
	}

	if len(collected) == 0 && failures == calls {
		return nil, fmt.Errorf("all image providers failed")
	}
	return collected, nil
}
