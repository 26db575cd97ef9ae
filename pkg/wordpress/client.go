// Package wordpress is the publish adapter: it translates finished articles
// and bulk actions into WordPress REST API calls.
package wordpress

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"strings"
	"time"
)

// Client talks to one WordPress site over its REST API with basic auth
// (application passwords)
type Client struct {
	baseURL      string
	username     string
	appPassword  string
	client       *http.Client
	uploadClient *http.Client // longer timeout for media
}

// NewClient creates a client for one site
func NewClient(baseURL, username, appPassword string, timeout, uploadTimeout time.Duration) *Client {
	return &Client{
		baseURL:      strings.TrimRight(baseURL, "/"),
		username:     username,
		appPassword:  appPassword,
		client:       &http.Client{Timeout: timeout},
		uploadClient: &http.Client{Timeout: uploadTimeout},
	}
}

// Term is a WordPress category or tag
type Term struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Post is the payload for creating a remote post
type Post struct {
	Title         string         `json:"title"`
	Content       string         `json:"content"`
	Excerpt       string         `json:"excerpt,omitempty"`
	Status        string         `json:"status"`
	Categories    []int64        `json:"categories,omitempty"`
	Tags          []int64        `json:"tags,omitempty"`
	FeaturedMedia int64          `json:"featured_media,omitempty"`
	Meta          map[string]any `json:"meta,omitempty"`
}

// MetadataUpdate is a partial update applied to an existing post
type MetadataUpdate struct {
	Title      string  `json:"title,omitempty"`
	Excerpt    string  `json:"excerpt,omitempty"`
	Categories []int64 `json:"categories,omitempty"`
	Tags       []int64 `json:"tags,omitempty"`
}

func (c *Client) endpoint(parts ...string) string {
	return c.baseURL + "/wp-json/wp/v2/" + path.Join(parts...)
}

func (c *Client) do(ctx context.Context, client *http.Client, method, urlStr string, body io.Reader, contentType string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, urlStr, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.SetBasicAuth(c.username, c.appPassword)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, urlStr, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%s %s: unexpected status %d: %s", method, urlStr, resp.StatusCode, strings.TrimSpace(string(data)))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

func (c *Client) postJSON(ctx context.Context, urlStr string, payload, out any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}
	return c.do(ctx, c.client, http.MethodPost, urlStr, bytes.NewReader(data), "application/json", out)
}

// ListCategories returns all categories of the site
func (c *Client) ListCategories(ctx context.Context) ([]Term, error) {
	var terms []Term
	if err := c.do(ctx, c.client, http.MethodGet, c.endpoint("categories")+"?per_page=100", http.NoBody, "", &terms); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return terms, nil
}

// ListTags returns all tags of the site
func (c *Client) ListTags(ctx context.Context) ([]Term, error) {
	var terms []Term
	if err := c.do(ctx, c.client, http.MethodGet, c.endpoint("tags")+"?per_page=100", http.NoBody, "", &terms); err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	return terms, nil
}

// CreateTag creates a new tag and returns it
func (c *Client) CreateTag(ctx context.Context, name string) (*Term, error) {
	var term Term
	if err := c.postJSON(ctx, c.endpoint("tags"), map[string]string{"name": name}, &term); err != nil {
		return nil, fmt.Errorf("create tag %q: %w", name, err)
	}
	return &term, nil
}

// ResolveCategories maps category names to remote IDs: exact case-insensitive
// match first, then substring match, falling back to the "uncategorized"
// category. Categories are matched, never auto-created.
func (c *Client) ResolveCategories(ctx context.Context, names []string) ([]int64, error) {
	terms, err := c.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	defaultID := int64(1) // WordPress default "Uncategorized"
	for _, t := range terms {
		if t.Slug == "uncategorized" {
			defaultID = t.ID
			break
		}
	}

	var ids []int64
	for _, name := range names {
		if id, ok := matchTerm(terms, name); ok {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		ids = []int64{defaultID}
	}
	return dedupe(ids), nil
}

// ResolveTags maps tag names to remote IDs, creating tags that have no match
func (c *Client) ResolveTags(ctx context.Context, names []string) ([]int64, error) {
	terms, err := c.ListTags(ctx)
	if err != nil {
		return nil, err
	}

	var ids []int64
	for _, name := range names {
		if id, ok := matchTerm(terms, name); ok {
			ids = append(ids, id)
			continue
		}
		created, err := c.CreateTag(ctx, name)
		if err != nil {
			return nil, err
		}
		ids = append(ids, created.ID)
	}
	return dedupe(ids), nil
}

// matchTerm finds a term by exact case-insensitive name, then by substring
func matchTerm(terms []Term, name string) (int64, bool) {
	lower := strings.ToLower(strings.TrimSpace(name))
	for _, t := range terms {
		if strings.ToLower(t.Name) == lower {
			return t.ID, true
		}
	}
	for _, t := range terms {
		tl := strings.ToLower(t.Name)
		if strings.Contains(tl, lower) || strings.Contains(lower, tl) {
			return t.ID, true
		}
	}
	return 0, false
}

func dedupe(ids []int64) []int64 {
	seen := make(map[int64]bool, len(ids))
	out := ids[:0]
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

// SideloadMedia downloads an image from srcURL and uploads it as remote media,
// returning the media ID
func (c *Client) SideloadMedia(ctx context.Context, srcURL string) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srcURL, http.NoBody)
	if err != nil {
		return 0, fmt.Errorf("create download request: %w", err)
	}
	resp, err := c.uploadClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("download image: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("download image: unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, 32<<20)) // 32MB cap
	if err != nil {
		return 0, fmt.Errorf("read image: %w", err)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	filename := mediaFilename(srcURL, contentType)

	upReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint("media"), bytes.NewReader(data))
	if err != nil {
		return 0, fmt.Errorf("create upload request: %w", err)
	}
	upReq.SetBasicAuth(c.username, c.appPassword)
	upReq.Header.Set("Content-Type", contentType)
	upReq.Header.Set("Content-Disposition", fmt.Sprintf(`attachment; filename=%q`, filename))

	upResp, err := c.uploadClient.Do(upReq)
	if err != nil {
		return 0, fmt.Errorf("upload media: %w", err)
	}
	defer upResp.Body.Close()
	if upResp.StatusCode < 200 || upResp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(upResp.Body, 512))
		return 0, fmt.Errorf("upload media: unexpected status %d: %s", upResp.StatusCode, strings.TrimSpace(string(body)))
	}

	var media struct {
		ID int64 `json:"id"`
	}
	if err := json.NewDecoder(upResp.Body).Decode(&media); err != nil {
		return 0, fmt.Errorf("decode media response: %w", err)
	}
	return media.ID, nil
}

func mediaFilename(srcURL, contentType string) string {
	name := "image"
	if u, err := url.Parse(srcURL); err == nil {
		if base := path.Base(u.Path); base != "." && base != "/" && base != "" {
			name = base
		}
	}
	if !strings.Contains(name, ".") {
		switch contentType {
		case "image/png":
			name += ".png"
		case "image/webp":
			name += ".webp"
		default:
			name += ".jpg"
		}
	}
	return name
}

// CreatePost creates a remote post and returns its ID
func (c *Client) CreatePost(ctx context.Context, post Post) (int64, error) {
	var created struct {
		ID int64 `json:"id"`
	}
	if err := c.postJSON(ctx, c.endpoint("posts"), post, &created); err != nil {
		return 0, fmt.Errorf("create post: %w", err)
	}
	return created.ID, nil
}

// UpdatePostStatus changes the publish status of an existing post
func (c *Client) UpdatePostStatus(ctx context.Context, postID int64, status string) error {
	urlStr := c.endpoint("posts", strconv.FormatInt(postID, 10))
	if err := c.postJSON(ctx, urlStr, map[string]string{"status": status}, nil); err != nil {
		return fmt.Errorf("update post %d status: %w", postID, err)
	}
	return nil
}

// UpdatePostMetadata applies a partial update to an existing post
func (c *Client) UpdatePostMetadata(ctx context.Context, postID int64, update MetadataUpdate) error {
	urlStr := c.endpoint("posts", strconv.FormatInt(postID, 10))
	if err := c.postJSON(ctx, urlStr, update, nil); err != nil {
		return fmt.Errorf("update post %d metadata: %w", postID, err)
	}
	return nil
}

// DeletePost deletes an existing post
func (c *Client) DeletePost(ctx context.Context, postID int64) error {
	urlStr := c.endpoint("posts", strconv.FormatInt(postID, 10)) + "?force=true"
	if err := c.do(ctx, c.client, http.MethodDelete, urlStr, http.NoBody, "", nil); err != nil {
		return fmt.Errorf("delete post %d: %w", postID, err)
	}
	return nil
}
