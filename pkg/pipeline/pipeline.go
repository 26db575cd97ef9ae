// Package pipeline turns one job into a finished article: content generation,
// metadata extraction, image search, image placement and optional publish.
package pipeline

import (
	"context"
	"fmt"
	"log"

	"github.com/microcosm-cc/bluemonday"

	"github.com/pressflow/pressflow/pkg/db"
	"github.com/pressflow/pressflow/pkg/images"
	"github.com/pressflow/pressflow/pkg/llm"
)

//go:generate moq -out mocks/generator.go -pkg mocks -skip-ensure -fmt goimports . Generator
//go:generate moq -out mocks/extractor.go -pkg mocks -skip-ensure -fmt goimports . Extractor
//go:generate moq -out mocks/image_search.go -pkg mocks -skip-ensure -fmt goimports . ImageSearch
//go:generate moq -out mocks/publisher.go -pkg mocks -skip-ensure -fmt goimports . Publisher

// Generator is the text-generation collaborator
type Generator interface {
	GenerateArticle(ctx context.Context, req llm.ArticleRequest) (*llm.Article, llm.Usage, error)
	GenerateMetadata(ctx context.Context, title, content string) (meta llm.Metadata, degraded bool, usage llm.Usage, err error)
	GenerateImagePhrases(ctx context.Context, title, content string) (phrases []string, degraded bool, usage llm.Usage, err error)
}

// Extractor pulls research text from a source URL
type Extractor interface {
	Extract(ctx context.Context, url string) (string, error)
}

// ImageSearch finds image candidates for search phrases
type ImageSearch interface {
	Enabled() bool
	Find(ctx context.Context, phrases []string) ([]images.Image, error)
}

// Publisher is the remote publish adapter for one site
type Publisher interface {
	ResolveCategories(ctx context.Context, names []string) ([]int64, error)
	ResolveTags(ctx context.Context, names []string) ([]int64, error)
	SideloadMedia(ctx context.Context, srcURL string) (int64, error)
	CreatePost(ctx context.Context, post Post) (int64, error)
}

// Post mirrors the publish adapter's post payload without importing it,
// so the pipeline stays decoupled from the HTTP client
type Post struct {
	Title         string
	Content       string
	Excerpt       string
	Status        string
	Categories    []int64
	Tags          []int64
	FeaturedMedia int64
	SEO           SEOFields
}

// SEOFields carries search metadata attached to a post
type SEOFields struct {
	Description string
	Keywords    []string
}

// Pipeline orchestrates the generation stages for one job
type Pipeline struct {
	generator Generator
	extractor Extractor
	imgSearch ImageSearch
	maxInline int
	sanitizer *bluemonday.Policy
}

// New creates a pipeline. The extractor may be nil, in which case feed-sourced
// jobs are generated from the source title alone.
func New(generator Generator, extractor Extractor, imgSearch ImageSearch, maxInline int) *Pipeline {
	if maxInline == 0 {
		maxInline = 4
	}
	policy := bluemonday.UGCPolicy()
	policy.AllowElements("figure", "figcaption")
	policy.AllowAttrs("loading").OnElements("img")
	return &Pipeline{
		generator: generator,
		extractor: extractor,
		imgSearch: imgSearch,
		maxInline: maxInline,
		sanitizer: policy,
	}
}

// Generate runs the content, metadata, image search and placement stages,
// filling in the job's generated fields. Any stage error aborts the pipeline;
// degraded metadata/phrase responses fall back to defaults instead.
func (p *Pipeline) Generate(ctx context.Context, job *db.Job) error {
	// stage 1: content
	req := llm.ArticleRequest{Topic: job.Topic, SourceTitle: job.SourceTitle}
	if job.SourceKind == db.SourceFeed && job.SourceURL != "" && p.extractor != nil {
		research, err := p.extractor.Extract(ctx, job.SourceURL)
		if err != nil {
			// research is best effort, the source title is enough to generate
			log.Printf("[WARN] source extraction failed for job %d: %v", job.ID, err)
		} else {
			req.Research = research
		}
	}

	article, usage, err := p.generator.GenerateArticle(ctx, req)
	if err != nil {
		return fmt.Errorf("content stage: %w", err)
	}
	job.TokensUsed += usage.TokensUsed
	job.Cost += usage.Cost

	job.GenTitle = article.Title
	job.GenContent = p.sanitizer.Sanitize(article.Content)
	job.GenExcerpt = article.Excerpt

	// stage 2: metadata, with safe-default fallback on malformed responses
	meta, degraded, usage, err := p.generator.GenerateMetadata(ctx, job.GenTitle, job.GenContent)
	if err != nil {
		return fmt.Errorf("metadata stage: %w", err)
	}
	job.TokensUsed += usage.TokensUsed
	job.Cost += usage.Cost
	job.Degraded = job.Degraded || degraded

	job.Categories = meta.Categories
	job.Tags = meta.Tags
	if job.Tags == nil {
		job.Tags = db.StringList{}
	}
	job.SEODescription = meta.SEODescription
	job.SEOKeywords = meta.SEOKeywords
	if job.SEOKeywords == nil {
		job.SEOKeywords = db.StringList{}
	}

	// stages 3-5: image phrases, acquisition, placement
	if p.imgSearch != nil && p.imgSearch.Enabled() {
		if err := p.placeImages(ctx, job); err != nil {
			return err
		}
	}

	return nil
}

func (p *Pipeline) placeImages(ctx context.Context, job *db.Job) error {
	phrases, degraded, usage, err := p.generator.GenerateImagePhrases(ctx, job.GenTitle, job.GenContent)
	if err != nil {
		return fmt.Errorf("image phrases stage: %w", err)
	}
	job.TokensUsed += usage.TokensUsed
	job.Cost += usage.Cost
	job.Degraded = job.Degraded || degraded

	candidates, err := p.imgSearch.Find(ctx, phrases)
	if err != nil {
		return fmt.Errorf("image acquisition stage: %w", err)
	}

	placement, ok := images.Place(candidates, p.maxInline)
	if !ok {
		return nil // nothing to place
	}

	job.FeaturedImageURL = placement.Featured.URL
	job.GenContent = images.Interleave(job.GenContent, placement.Inline)
	return nil
}

// Publish resolves terms, uploads the featured image and creates the remote
// post, returning the remote post id
func (p *Pipeline) Publish(ctx context.Context, job *db.Job, pub Publisher) (int64, error) {
	categories, err := pub.ResolveCategories(ctx, job.Categories)
	if err != nil {
		return 0, fmt.Errorf("resolve categories: %w", err)
	}

	tags, err := pub.ResolveTags(ctx, job.Tags)
	if err != nil {
		return 0, fmt.Errorf("resolve tags: %w", err)
	}

	var mediaID int64
	if job.FeaturedImageURL != "" {
		mediaID, err = pub.SideloadMedia(ctx, job.FeaturedImageURL)
		if err != nil {
			return 0, fmt.Errorf("upload featured image: %w", err)
		}
	}

	status := job.PublishStatus
	if status == "" {
		status = "draft"
	}

	postID, err := pub.CreatePost(ctx, Post{
		Title:         job.GenTitle,
		Content:       job.GenContent,
		Excerpt:       job.GenExcerpt,
		Status:        status,
		Categories:    categories,
		Tags:          tags,
		FeaturedMedia: mediaID,
		SEO: SEOFields{
			Description: job.SEODescription,
			Keywords:    job.SEOKeywords,
		},
	})
	if err != nil {
		return 0, fmt.Errorf("create post: %w", err)
	}
	return postID, nil
}
