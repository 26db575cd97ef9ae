package images

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPexelsProvider_Search(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "px-key", r.Header.Get("Authorization"))
		assert.Equal(t, "smart home kitchen", r.URL.Query().Get("query"))
		assert.Equal(t, "5", r.URL.Query().Get("per_page"))
		assert.Equal(t, "landscape", r.URL.Query().Get("orientation"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"photos":[
			{"width":1920,"height":1080,"photographer":"Jane Doe",
			 "src":{"large":"https://images.pexels.com/1/large.jpg","medium":"https://images.pexels.com/1/medium.jpg"}}
		]}`)) //nolint:errcheck // test server
	}))
	defer server.Close()

	p := NewPexelsProvider("px-key", 5*time.Second)
	p.baseURL = server.URL

	results, err := p.Search(context.Background(), Query{Phrase: "smart home kitchen", PerPage: 5, Orientation: "landscape"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "https://images.pexels.com/1/large.jpg", results[0].URL)
	assert.Equal(t, "https://images.pexels.com/1/medium.jpg", results[0].ThumbnailURL)
	assert.Equal(t, 1920, results[0].Width)
	assert.Equal(t, "Jane Doe", results[0].Photographer)
	assert.Equal(t, "pexels", results[0].Provider)
}

func TestPexelsProvider_SearchErrors(t *testing.T) {
	t.Run("rate limited", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer server.Close()

		p := NewPexelsProvider("px-key", time.Second)
		p.baseURL = server.URL
		_, err := p.Search(context.Background(), Query{Phrase: "x", PerPage: 1})
		assert.ErrorContains(t, err, "unexpected status code: 429")
	})

	t.Run("bad json", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte("{")) //nolint:errcheck // test server
		}))
		defer server.Close()

		p := NewPexelsProvider("px-key", time.Second)
		p.baseURL = server.URL
		_, err := p.Search(context.Background(), Query{Phrase: "x", PerPage: 1})
		assert.ErrorContains(t, err, "decode pexels response")
	})
}

func TestUnsplashProvider_Search(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/photos", r.URL.Path)
		assert.Equal(t, "Client-ID un-key", r.Header.Get("Authorization"))
		assert.Equal(t, "city skyline evening", r.URL.Query().Get("query"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results":[
			{"width":1600,"height":900,
			 "urls":{"regular":"https://images.unsplash.com/1?w=1080","small":"https://images.unsplash.com/1?w=400"},
			 "user":{"name":"John Smith"}}
		]}`)) //nolint:errcheck // test server
	}))
	defer server.Close()

	p := NewUnsplashProvider("un-key", 5*time.Second)
	p.baseURL = server.URL

	results, err := p.Search(context.Background(), Query{Phrase: "city skyline evening", PerPage: 3})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "https://images.unsplash.com/1?w=1080", results[0].URL)
	assert.Equal(t, "John Smith", results[0].Photographer)
	assert.Equal(t, "unsplash", results[0].Provider)
}

func TestUnsplashProvider_OrientationFiltered(t *testing.T) {
	// unsplash rejects unknown orientation values, so "square" etc. are dropped
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.Query().Get("orientation"))
		w.Write([]byte(`{"results":[]}`)) //nolint:errcheck // test server
	}))
	defer server.Close()

	p := NewUnsplashProvider("un-key", time.Second)
	p.baseURL = server.URL
	_, err := p.Search(context.Background(), Query{Phrase: "x", PerPage: 1, Orientation: "square"})
	require.NoError(t, err)
}
