package wordpress

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(serverURL string) *Client {
	return NewClient(serverURL, "admin", "app-password", 5*time.Second, 10*time.Second)
}

func TestClient_ResolveCategories(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/wp-json/wp/v2/categories", r.URL.Path)
		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "admin", user)
		assert.Equal(t, "app-password", pass)
		assert.Equal(t, "100", r.URL.Query().Get("per_page"))

		terms := []Term{
			{ID: 1, Name: "Uncategorized", Slug: "uncategorized"},
			{ID: 5, Name: "Technology", Slug: "technology"},
			{ID: 7, Name: "Home & Garden", Slug: "home-garden"},
		}
		require.NoError(t, json.NewEncoder(w).Encode(terms))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	ctx := context.Background()

	t.Run("exact case-insensitive match", func(t *testing.T) {
		ids, err := client.ResolveCategories(ctx, []string{"technology"})
		require.NoError(t, err)
		assert.Equal(t, []int64{5}, ids)
	})

	t.Run("substring match", func(t *testing.T) {
		ids, err := client.ResolveCategories(ctx, []string{"Garden"})
		require.NoError(t, err)
		assert.Equal(t, []int64{7}, ids)
	})

	t.Run("no match falls back to uncategorized", func(t *testing.T) {
		ids, err := client.ResolveCategories(ctx, []string{"Quantum Physics"})
		require.NoError(t, err)
		assert.Equal(t, []int64{1}, ids, "categories are never created")
	})

	t.Run("duplicates collapsed", func(t *testing.T) {
		ids, err := client.ResolveCategories(ctx, []string{"Technology", "technology"})
		require.NoError(t, err)
		assert.Equal(t, []int64{5}, ids)
	})
}

func TestClient_ResolveTags(t *testing.T) {
	var createdNames []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/wp-json/wp/v2/tags", r.URL.Path)

		if r.Method == http.MethodPost {
			var payload map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			createdNames = append(createdNames, payload["name"])
			w.WriteHeader(http.StatusCreated)
			require.NoError(t, json.NewEncoder(w).Encode(Term{ID: int64(100 + len(createdNames)), Name: payload["name"]}))
			return
		}

		terms := []Term{{ID: 11, Name: "golang", Slug: "golang"}}
		require.NoError(t, json.NewEncoder(w).Encode(terms))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	ids, err := client.ResolveTags(context.Background(), []string{"Golang", "sqlite"})
	require.NoError(t, err)

	assert.Equal(t, []int64{11, 101}, ids, "existing tag matched, missing tag created")
	assert.Equal(t, []string{"sqlite"}, createdNames)
}

func TestClient_CreatePost(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/wp-json/wp/v2/posts", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var post Post
		require.NoError(t, json.NewDecoder(r.Body).Decode(&post))
		assert.Equal(t, "Generated Title", post.Title)
		assert.Equal(t, "draft", post.Status)
		assert.Equal(t, []int64{5}, post.Categories)
		assert.Equal(t, int64(33), post.FeaturedMedia)
		assert.Equal(t, "meta description", post.Meta["seo_description"])

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id": 42}`)) //nolint:errcheck // test server
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	id, err := client.CreatePost(context.Background(), Post{
		Title:         "Generated Title",
		Content:       "<p>body</p>",
		Status:        "draft",
		Categories:    []int64{5},
		FeaturedMedia: 33,
		Meta:          map[string]any{"seo_description": "meta description"},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
}

func TestClient_UpdateAndDeletePost(t *testing.T) {
	type recorded struct {
		method string
		path   string
		query  string
		body   map[string]any
	}
	var calls []recorded

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := recorded{method: r.Method, path: r.URL.Path, query: r.URL.RawQuery}
		if r.Body != nil {
			json.NewDecoder(r.Body).Decode(&rec.body) //nolint:errcheck // body optional
		}
		calls = append(calls, rec)
		w.Write([]byte(`{"id": 7}`)) //nolint:errcheck // test server
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	ctx := context.Background()

	require.NoError(t, client.UpdatePostStatus(ctx, 7, "publish"))
	require.NoError(t, client.UpdatePostMetadata(ctx, 7, MetadataUpdate{Title: "New Title", Categories: []int64{5}}))
	require.NoError(t, client.DeletePost(ctx, 7))

	require.Len(t, calls, 3)
	assert.Equal(t, "/wp-json/wp/v2/posts/7", calls[0].path)
	assert.Equal(t, "publish", calls[0].body["status"])
	assert.Equal(t, "New Title", calls[1].body["title"])
	assert.Equal(t, http.MethodDelete, calls[2].method)
	assert.Equal(t, "force=true", calls[2].query)
}

func TestClient_SideloadMedia(t *testing.T) {
	imageData := []byte{0xff, 0xd8, 0xff, 0xe0, 0x00, 0x10, 'J', 'F', 'I', 'F'}

	imageServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "image/jpeg")
		w.Write(imageData) //nolint:errcheck // test server
	}))
	defer imageServer.Close()

	var gotDisposition, gotContentType string
	wpServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/wp-json/wp/v2/media", r.URL.Path)
		gotDisposition = r.Header.Get("Content-Disposition")
		gotContentType = r.Header.Get("Content-Type")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id": 99}`)) //nolint:errcheck // test server
	}))
	defer wpServer.Close()

	client := newTestClient(wpServer.URL)
	id, err := client.SideloadMedia(context.Background(), imageServer.URL+"/photos/sunset.jpg")
	require.NoError(t, err)

	assert.Equal(t, int64(99), id)
	assert.Equal(t, "image/jpeg", gotContentType)
	assert.Contains(t, gotDisposition, `filename="sunset.jpg"`)
}

func TestClient_SideloadMediaErrors(t *testing.T) {
	t.Run("download failure", func(t *testing.T) {
		broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer broken.Close()

		client := newTestClient("http://127.0.0.1:1")
		_, err := client.SideloadMedia(context.Background(), broken.URL+"/missing.jpg")
		assert.ErrorContains(t, err, "unexpected status 404")
	})
}

func TestClient_ErrorBodyIncluded(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"code":"rest_cannot_create"}`)) //nolint:errcheck // test server
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.CreatePost(context.Background(), Post{Title: "x", Status: "draft"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
	assert.Contains(t, err.Error(), "rest_cannot_create")
}

func TestMediaFilename(t *testing.T) {
	tests := []struct {
		url         string
		contentType string
		want        string
	}{
		{"https://images.example.com/photos/sunset.jpg", "image/jpeg", "sunset.jpg"},
		{"https://images.example.com/photo?id=5", "image/png", "photo.png"},
		{"https://images.example.com/", "image/webp", "image.webp"},
		{"https://images.example.com/raw", "application/octet-stream", "raw.jpg"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, mediaFilename(tt.url, tt.contentType), tt.url)
	}
}
