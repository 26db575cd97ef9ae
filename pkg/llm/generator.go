// Package llm drives the text-generation collaborator for article content,
// metadata and image search phrases.
package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/sashabaranov/go-openai"

	"github.com/pressflow/pressflow/pkg/config"
)

// Generator produces article content via an OpenAI-compatible API
type Generator struct {
	client *openai.Client
	config config.LLMConfig
}

// NewGenerator creates a new text generator
func NewGenerator(cfg config.LLMConfig) *Generator {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.Endpoint != "" {
		clientConfig.BaseURL = cfg.Endpoint
	}

	return &Generator{
		client: openai.NewClientWithConfig(clientConfig),
		config: cfg,
	}
}

// Usage accumulates token and cost accounting across calls
type Usage struct {
	TokensUsed int
	Cost       float64
}

// Add accumulates another usage record
func (u *Usage) Add(other Usage) {
	u.TokensUsed += other.TokensUsed
	u.Cost += other.Cost
}

// Article is the generated content for one job
type Article struct {
	Title   string
	Content string // HTML body
	Excerpt string
}

// ArticleRequest describes the source for article generation.
// Either Topic is set, or SourceTitle (optionally with Research text
// extracted from the source URL) for feed-sourced jobs.
type ArticleRequest struct {
	Topic       string
	SourceTitle string
	Research    string
}

// Metadata holds categories, tags and SEO fields derived from content
type Metadata struct {
	Categories     []string `json:"categories"`
	Tags           []string `json:"tags"`
	SEODescription string   `json:"seo_description"`
	SEOKeywords    []string `json:"seo_keywords"`
}

const articleSystemPrompt = `You are a professional content writer producing publication-ready blog articles.
Write clean HTML using only <p>, <h2>, <h3>, <ul>, <ol>, <li>, <strong> and <em> tags.
Do not include a top-level title tag in the body. Write factual, well-structured prose.`

// GenerateArticle produces a finished article through multi-step generation:
// outline, draft, title candidates, excerpt
func (g *Generator) GenerateArticle(ctx context.Context, req ArticleRequest) (*Article, Usage, error) {
	var usage Usage

	subject := req.Topic
	if subject == "" {
		subject = req.SourceTitle
	}
	if subject == "" {
		return nil, usage, fmt.Errorf("article request has neither topic nor source title")
	}

	// step 1: outline
	outlinePrompt := fmt.Sprintf("Create a concise outline (5-7 sections) for an article about: %s", subject)
	if req.Research != "" {
		outlinePrompt += "\n\nBase the outline on this source material:\n" + truncate(req.Research, 6000)
	}
	outline, u, err := g.chat(ctx, articleSystemPrompt, outlinePrompt, false)
	if err != nil {
		return nil, usage, fmt.Errorf("generate outline: %w", err)
	}
	usage.Add(u)

	// step 2: draft
	draftPrompt := fmt.Sprintf("Write the full article in HTML following this outline:\n\n%s", outline)
	if req.Research != "" {
		draftPrompt += "\n\nSource material for reference:\n" + truncate(req.Research, 6000)
	}
	body, u, err := g.chat(ctx, articleSystemPrompt, draftPrompt, false)
	if err != nil {
		return nil, usage, fmt.Errorf("generate draft: %w", err)
	}
	usage.Add(u)

	// step 3: title candidates, first one wins
	titlePrompt := fmt.Sprintf("Suggest 3 compelling titles for this article, one per line, no numbering:\n\n%s",
		truncate(body, 3000))
	titles, u, err := g.chat(ctx, articleSystemPrompt, titlePrompt, false)
	if err != nil {
		return nil, usage, fmt.Errorf("generate titles: %w", err)
	}
	usage.Add(u)

	title := subject
	for _, line := range strings.Split(titles, "\n") {
		if line = strings.Trim(strings.TrimSpace(line), `"`); line != "" {
			title = line
			break
		}
	}

	// step 4: excerpt
	excerptPrompt := fmt.Sprintf("Write a 1-2 sentence excerpt (max 160 characters) for this article:\n\n%s",
		truncate(body, 3000))
	excerpt, u, err := g.chat(ctx, articleSystemPrompt, excerptPrompt, false)
	if err != nil {
		return nil, usage, fmt.Errorf("generate excerpt: %w", err)
	}
	usage.Add(u)

	return &Article{
		Title:   title,
		Content: strings.TrimSpace(body),
		Excerpt: strings.Trim(strings.TrimSpace(excerpt), `"`),
	}, usage, nil
}

const metadataSystemPrompt = `You derive publishing metadata from article content.
Respond with a JSON object: {"categories": [1-2 category names], "tags": [3-7 tag names],
"seo_description": "max 155 chars", "seo_keywords": [3-5 keywords]}. JSON only, no commentary.`

// GenerateMetadata derives categories, tags and SEO fields from generated
// content. On a malformed response it falls back to safe defaults and reports
// degraded=true instead of failing the job.
func (g *Generator) GenerateMetadata(ctx context.Context, title, content string) (meta Metadata, degraded bool, usage Usage, err error) {
	prompt := fmt.Sprintf("Title: %s\n\nContent:\n%s", title, truncate(content, 4000))

	resp, u, err := g.chat(ctx, metadataSystemPrompt, prompt, g.config.UseJSONMode)
	if err != nil {
		return Metadata{}, false, usage, fmt.Errorf("metadata request: %w", err)
	}
	usage.Add(u)

	if jsonErr := json.Unmarshal([]byte(extractJSONObject(resp)), &meta); jsonErr != nil || len(meta.Categories) == 0 {
		// malformed response, use safe defaults rather than failing
		return Metadata{
			Categories:     []string{"Uncategorized"},
			Tags:           []string{},
			SEODescription: truncate(title, 155),
			SEOKeywords:    []string{},
		}, true, usage, nil
	}

	if meta.SEODescription == "" {
		meta.SEODescription = truncate(title, 155)
	}
	return meta, false, usage, nil
}

const phrasesSystemPrompt = `You create image search phrases for stock photo services.
Given an article, respond with a JSON array of 3-5 highly specific search phrases.
Each phrase must combine a named entity or concrete subject with an action or setting,
e.g. "surgeon operating robotic arm" not "medicine". JSON array only.`

// fallback phrases when the collaborator returns something unparseable
var genericPhrases = []string{"business meeting office", "technology abstract background", "city skyline evening"}

// GenerateImagePhrases derives search phrases from title and content. On a
// malformed response it falls back to a fixed generic phrase set with
// degraded=true.
func (g *Generator) GenerateImagePhrases(ctx context.Context, title, content string) (phrases []string, degraded bool, usage Usage, err error) {
	prompt := fmt.Sprintf("Title: %s\n\nContent:\n%s", title, truncate(content, 3000))

	resp, u, err := g.chat(ctx, phrasesSystemPrompt, prompt, false)
	if err != nil {
		return nil, false, usage, fmt.Errorf("image phrases request: %w", err)
	}
	usage.Add(u)

	if jsonErr := json.Unmarshal([]byte(extractJSONArray(resp)), &phrases); jsonErr != nil || len(phrases) == 0 {
		return append([]string(nil), genericPhrases...), true, usage, nil
	}

	if len(phrases) > 5 {
		phrases = phrases[:5]
	}
	return phrases, false, usage, nil
}

// chat performs a single chat completion call
func (g *Generator) chat(ctx context.Context, system, user string, jsonMode bool) (string, Usage, error) {
	ctx, cancel := context.WithTimeout(ctx, g.config.Timeout)
	defer cancel()

	req := openai.ChatCompletionRequest{
		Model:       g.config.Model,
		Temperature: float32(g.config.Temperature),
		MaxTokens:   g.config.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
	}
	if jsonMode {
		req.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	resp, err := g.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", Usage{}, fmt.Errorf("llm request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", Usage{}, fmt.Errorf("no response from llm")
	}

	usage := Usage{
		TokensUsed: resp.Usage.TotalTokens,
		Cost:       float64(resp.Usage.TotalTokens) / 1000 * g.config.CostPer1K,
	}
	return resp.Choices[0].Message.Content, usage, nil
}

// extractJSONObject pulls the first {...} block out of a response that may
// wrap JSON in prose or code fences
func extractJSONObject(s string) string {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || start >= end {
		return s
	}
	return s[start : end+1]
}

// extractJSONArray pulls the first [...] block out of a response
func extractJSONArray(s string) string {
	start := strings.Index(s, "[")
	end := strings.LastIndex(s, "]")
	if start == -1 || end == -1 || start >= end {
		return s
	}
	return s[start : end+1]
}

// truncate cuts s to at most n bytes without splitting a UTF-8 rune
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	cut := s[:n]
	for !utf8.ValidString(cut) {
		cut = cut[:len(cut)-1]
	}
	return cut
}
