package images

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const unsplashBaseURL = "https://api.unsplash.com"

// UnsplashProvider searches the Unsplash stock photo API
type UnsplashProvider struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewUnsplashProvider creates an Unsplash provider
func NewUnsplashProvider(apiKey string, timeout time.Duration) *UnsplashProvider {
	return &UnsplashProvider{
		apiKey:  apiKey,
		baseURL: unsplashBaseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// Name returns the provider identifier
func (p *UnsplashProvider) Name() string { return "unsplash" }

// Search queries Unsplash for photos matching the phrase
func (p *UnsplashProvider) Search(ctx context.Context, q Query) ([]Image, error) {
	params := url.Values{}
	params.Set("query", q.Phrase)
	params.Set("per_page", strconv.Itoa(q.PerPage))
	if q.Page > 0 {
		params.Set("page", strconv.Itoa(q.Page))
	}
	if q.Orientation == "landscape" || q.Orientation == "portrait" {
		params.Set("orientation", q.Orientation)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		p.baseURL+"/search/photos?"+params.Encode(), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Client-ID "+p.apiKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("unsplash search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unsplash unexpected status code: %d", resp.StatusCode)
	}

	var body struct {
		Results []struct {
			Width  int `json:"width"`
			Height int `json:"height"`
			URLs   struct {
				Regular string `json:"regular"`
				Small   string `json:"small"`
			} `json:"urls"`
			User struct {
				Name string `json:"name"`
			} `json:"user"`
		} `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode unsplash response: %w", err)
	}

	images := make([]Image, 0, len(body.Results))
	for _, result := range body.Results {
		images = append(images, Image{
			URL:          result.URLs.Regular,
			ThumbnailURL: result.URLs.Small,
			Width:        result.Width,
			Height:       result.Height,
			Photographer: result.User.Name,
			License:      "Unsplash License",
			Provider:     p.Name(),
		})
	}
	return images, nil
}
