package images

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlace(t *testing.T) {
	t.Run("no candidates", func(t *testing.T) {
		_, ok := Place(nil, 4)
		assert.False(t, ok)
	})

	t.Run("single candidate is featured only", func(t *testing.T) {
		p, ok := Place([]Image{{URL: "a"}}, 4)
		require.True(t, ok)
		assert.Equal(t, "a", p.Featured.URL)
		assert.Empty(t, p.Inline)
	})

	t.Run("inline capped at max", func(t *testing.T) {
		candidates := make([]Image, 10)
		for i := range candidates {
			candidates[i] = Image{URL: fmt.Sprintf("img-%d", i)}
		}
		p, ok := Place(candidates, 4)
		require.True(t, ok)
		assert.Equal(t, "img-0", p.Featured.URL)
		require.Len(t, p.Inline, 4)
		assert.Equal(t, "img-1", p.Inline[0].URL)
	})
}

func TestInterleave(t *testing.T) {
	paragraphs := func(n int) string {
		var sb strings.Builder
		for i := 1; i <= n; i++ {
			fmt.Fprintf(&sb, "<p>paragraph %d</p>", i)
		}
		return sb.String()
	}

	t.Run("no inline images leaves body untouched", func(t *testing.T) {
		body := paragraphs(3)
		assert.Equal(t, body, Interleave(body, nil))
	})

	t.Run("even interval", func(t *testing.T) {
		// 9 paragraphs, 2 images: interval 9/3 = 3
		body := paragraphs(9)
		out := Interleave(body, []Image{{URL: "img-a"}, {URL: "img-b"}})

		assert.Equal(t, 2, strings.Count(out, "<figure>"))
		assert.Less(t, strings.Index(out, "img-a"), strings.Index(out, "img-b"))
		// first figure right after the third paragraph
		assert.Contains(t, out, `<p>paragraph 3</p>`+"\n"+`<figure><img src="img-a" alt="" loading="lazy"/></figure>`)
		assert.Contains(t, out, `<p>paragraph 6</p>`+"\n"+`<figure><img src="img-b"`)
	})

	t.Run("minimum interval of two", func(t *testing.T) {
		// 3 paragraphs, 4 images: computed interval would be 0, floor is 2
		body := paragraphs(3)
		out := Interleave(body, []Image{{URL: "a"}, {URL: "b"}, {URL: "c"}, {URL: "d"}})

		assert.Equal(t, 4, strings.Count(out, "<figure>"), "leftovers are appended at the end")
		assert.Contains(t, out, `<p>paragraph 2</p>`+"\n"+`<figure><img src="a"`)
		assert.True(t, strings.HasSuffix(out, `<figure><img src="d" alt="" loading="lazy"/></figure>`))
	})

	t.Run("no paragraph structure appends all", func(t *testing.T) {
		out := Interleave("plain text, no markup", []Image{{URL: "a"}})
		assert.True(t, strings.HasPrefix(out, "plain text, no markup"))
		assert.Contains(t, out, `<img src="a"`)
	})

	t.Run("photographer credited in caption", func(t *testing.T) {
		out := Interleave(paragraphs(2), []Image{{URL: "a", Photographer: "Jane Doe"}})
		assert.Contains(t, out, "<figcaption>Photo: Jane Doe</figcaption>")
	})
}
