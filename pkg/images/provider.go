// Package images queries stock photo providers and places results into
// generated article bodies.
package images

import "context"

// Image is one search result candidate
type Image struct {
	URL          string
	ThumbnailURL string
	Width        int
	Height       int
	Photographer string
	License      string
	Provider     string
}

// Query describes one provider search
type Query struct {
	Phrase      string
	Page        int
	PerPage     int
	Orientation string // landscape, portrait or empty
}

// Provider is a single image-search backend
type Provider interface {
	Name() string
	Search(ctx context.Context, q Query) ([]Image, error)
}
