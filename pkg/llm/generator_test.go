package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pressflow/pressflow/pkg/config"
)

// chatServer returns an OpenAI-compatible test server answering each chat
// completion call with the next canned response
func chatServer(t *testing.T, responses ...string) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		n := int(calls.Add(1)) - 1
		require.Less(t, n, len(responses), "unexpected extra llm call")

		resp := map[string]any{
			"id":      fmt.Sprintf("chatcmpl-%d", n),
			"object":  "chat.completion",
			"model":   "gpt-4o",
			"choices": []map[string]any{{"index": 0, "message": map[string]any{"role": "assistant", "content": responses[n]}, "finish_reason": "stop"}},
			"usage":   map[string]any{"prompt_tokens": 50, "completion_tokens": 50, "total_tokens": 100},
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	return server, &calls
}

func testGenerator(endpoint string) *Generator {
	return NewGenerator(config.LLMConfig{
		Endpoint:    endpoint,
		APIKey:      "test-key",
		Model:       "gpt-4o",
		Temperature: 0.7,
		MaxTokens:   1000,
		Timeout:     5 * time.Second,
		CostPer1K:   0.01,
	})
}

func TestGenerator_GenerateArticle(t *testing.T) {
	server, calls := chatServer(t,
		"1. Intro\n2. Body\n3. Conclusion",
		"<p>Generated article body.</p>",
		"\"Smart Homes Arrive\"\nAnother Title\nThird Title",
		"\"A short excerpt about smart homes.\"",
	)
	defer server.Close()

	gen := testGenerator(server.URL)
	article, usage, err := gen.GenerateArticle(context.Background(), ArticleRequest{Topic: "smart homes"})
	require.NoError(t, err)

	assert.Equal(t, "Smart Homes Arrive", article.Title, "first title line wins, quotes stripped")
	assert.Equal(t, "<p>Generated article body.</p>", article.Content)
	assert.Equal(t, "A short excerpt about smart homes.", article.Excerpt)
	assert.Equal(t, int32(4), calls.Load(), "outline, draft, titles, excerpt")
	assert.Equal(t, 400, usage.TokensUsed)
	assert.InDelta(t, 0.004, usage.Cost, 0.0001)
}

func TestGenerator_GenerateArticle_SourceTitleFallback(t *testing.T) {
	server, _ := chatServer(t, "outline", "<p>body</p>", "", "excerpt")
	defer server.Close()

	gen := testGenerator(server.URL)
	article, _, err := gen.GenerateArticle(context.Background(), ArticleRequest{SourceTitle: "Feed Item Title"})
	require.NoError(t, err)
	assert.Equal(t, "Feed Item Title", article.Title, "empty title response falls back to the subject")
}

func TestGenerator_GenerateArticle_NoSubject(t *testing.T) {
	gen := testGenerator("http://127.0.0.1:1")
	_, _, err := gen.GenerateArticle(context.Background(), ArticleRequest{})
	assert.ErrorContains(t, err, "neither topic nor source title")
}

func TestGenerator_GenerateMetadata(t *testing.T) {
	t.Run("well-formed response", func(t *testing.T) {
		server, _ := chatServer(t,
			`{"categories":["Technology"],"tags":["iot","smart home"],"seo_description":"All about smart homes.","seo_keywords":["smart home"]}`)
		defer server.Close()

		gen := testGenerator(server.URL)
		meta, degraded, usage, err := gen.GenerateMetadata(context.Background(), "Title", "<p>content</p>")
		require.NoError(t, err)
		assert.False(t, degraded)
		assert.Equal(t, []string{"Technology"}, meta.Categories)
		assert.Equal(t, []string{"iot", "smart home"}, meta.Tags)
		assert.Equal(t, "All about smart homes.", meta.SEODescription)
		assert.Equal(t, 100, usage.TokensUsed)
	})

	t.Run("json wrapped in prose", func(t *testing.T) {
		server, _ := chatServer(t,
			"Here is the metadata you asked for:\n```json\n{\"categories\":[\"News\"],\"tags\":[\"daily\"]}\n```")
		defer server.Close()

		gen := testGenerator(server.URL)
		meta, degraded, _, err := gen.GenerateMetadata(context.Background(), "Title", "content")
		require.NoError(t, err)
		assert.False(t, degraded)
		assert.Equal(t, []string{"News"}, meta.Categories)
		assert.Equal(t, "Title", meta.SEODescription, "missing description filled from title")
	})

	t.Run("malformed response falls back", func(t *testing.T) {
		server, _ := chatServer(t, "sorry, I cannot help with that")
		defer server.Close()

		gen := testGenerator(server.URL)
		meta, degraded, _, err := gen.GenerateMetadata(context.Background(), "Some Long Title", "content")
		require.NoError(t, err, "malformed metadata must not fail the job")
		assert.True(t, degraded)
		assert.Equal(t, []string{"Uncategorized"}, meta.Categories)
		assert.Empty(t, meta.Tags)
		assert.Equal(t, "Some Long Title", meta.SEODescription)
	})

	t.Run("empty categories falls back", func(t *testing.T) {
		server, _ := chatServer(t, `{"categories":[],"tags":["a"]}`)
		defer server.Close()

		gen := testGenerator(server.URL)
		meta, degraded, _, err := gen.GenerateMetadata(context.Background(), "Title", "content")
		require.NoError(t, err)
		assert.True(t, degraded)
		assert.Equal(t, []string{"Uncategorized"}, meta.Categories)
	})

	t.Run("transport error is a real error", func(t *testing.T) {
		gen := testGenerator("http://127.0.0.1:1")
		_, degraded, _, err := gen.GenerateMetadata(context.Background(), "Title", "content")
		assert.Error(t, err)
		assert.False(t, degraded)
	})
}

func TestGenerator_GenerateImagePhrases(t *testing.T) {
	t.Run("well-formed response", func(t *testing.T) {
		server, _ := chatServer(t, `["engineer testing smart thermostat","family using voice assistant kitchen"]`)
		defer server.Close()

		gen := testGenerator(server.URL)
		phrases, degraded, _, err := gen.GenerateImagePhrases(context.Background(), "Title", "content")
		require.NoError(t, err)
		assert.False(t, degraded)
		assert.Equal(t, []string{"engineer testing smart thermostat", "family using voice assistant kitchen"}, phrases)
	})

	t.Run("caps at five phrases", func(t *testing.T) {
		server, _ := chatServer(t, `["a","b","c","d","e","f","g"]`)
		defer server.Close()

		gen := testGenerator(server.URL)
		phrases, _, _, err := gen.GenerateImagePhrases(context.Background(), "Title", "content")
		require.NoError(t, err)
		assert.Len(t, phrases, 5)
	})

	t.Run("malformed response falls back to generic set", func(t *testing.T) {
		server, _ := chatServer(t, "no phrases today")
		defer server.Close()

		gen := testGenerator(server.URL)
		phrases, degraded, _, err := gen.GenerateImagePhrases(context.Background(), "Title", "content")
		require.NoError(t, err)
		assert.True(t, degraded)
		assert.Equal(t, genericPhrases, phrases)
	})
}

func TestUsage_Add(t *testing.T) {
	u := Usage{TokensUsed: 100, Cost: 0.001}
	u.Add(Usage{TokensUsed: 50, Cost: 0.0005})
	assert.Equal(t, 150, u.TokensUsed)
	assert.InDelta(t, 0.0015, u.Cost, 1e-9)
}

func TestExtractJSONHelpers(t *testing.T) {
	assert.Equal(t, `{"a":1}`, extractJSONObject("prefix {\"a\":1} suffix"))
	assert.Equal(t, "no braces", extractJSONObject("no braces"))
	assert.Equal(t, `[1,2]`, extractJSONArray("text [1,2] more"))
	assert.Equal(t, "plain", extractJSONArray("plain"))
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		n    int
		want string
	}{
		{name: "shorter than limit", in: "short", n: 10, want: "short"},
		{name: "exact limit", in: "exact", n: 5, want: "exact"},
		{name: "ascii cut", in: "abcdef", n: 3, want: "abc"},
		{name: "cut lands on rune boundary", in: "caférestaurant", n: 5, want: "café"},
		{name: "cut inside two-byte rune", in: "café", n: 4, want: "caf"},
		{name: "cut inside four-byte rune", in: "ab\U0001F600cd", n: 4, want: "ab"},
		{name: "cyrillic title", in: "Новости дня", n: 9, want: "Ново"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncate(tt.in, tt.n)
			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(got))
			assert.LessOrEqual(t, len(got), tt.n)
		})
	}
}
