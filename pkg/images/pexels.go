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

const pexelsBaseURL = "https://api.pexels.com/v1"

// PexelsProvider searches the Pexels stock photo API
type PexelsProvider struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewPexelsProvider creates a Pexels provider
func NewPexelsProvider(apiKey string, timeout time.Duration) *PexelsProvider {
	return &PexelsProvider{
		apiKey:  apiKey,
		baseURL: pexelsBaseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// Name returns the provider identifier
func (p *PexelsProvider) Name() string { return "pexels" }

// Search queries Pexels for photos matching the phrase
func (p *PexelsProvider) Search(ctx context.Context, q Query) ([]Image, error) {
	params := url.Values{}
	params.Set("query", q.Phrase)
	params.Set("per_page", strconv.Itoa(q.PerPage))
	if q.Page > 0 {
		params.Set("page", strconv.Itoa(q.Page))
	}
	if q.Orientation != "" {
		params.Set("orientation", q.Orientation)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		p.baseURL+"/search?"+params.Encode(), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", p.apiKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("pexels search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("pexels unexpected status code: %d", resp.StatusCode)
	}

	var body struct {
		Photos []struct {
			Width        int    `json:"width"`
			Height       int    `json:"height"`
			Photographer string `json:"photographer"`
			Src          struct {
				Large  string `json:"large"`
				Medium string `json:"medium"`
			} `json:"src"`
		} `json:"photos"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode pexels response: %w", err)
	}

	images := make([]Image, 0, len(body.Photos))
	for _, photo := range body.Photos {
		images = append(images, Image{
			URL:          photo.Src.Large,
			ThumbnailURL: photo.Src.Medium,
			Width:        photo.Width,
			Height:       photo.Height,
			Photographer: photo.Photographer,
			License:      "Pexels License",
			Provider:     p.Name(),
		})
	}
	return images, nil
}
