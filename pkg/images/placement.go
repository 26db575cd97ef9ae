package images

import (
	"fmt"
	"strings"
)

// Placement is the chosen featured image plus inline images for a body
type Placement struct {
	Featured Image
	Inline   []Image
}

// Place picks the featured image (first candidate) and up to maxInline more
// for inline placement. Returns false when there are no candidates.
func Place(candidates []Image, maxInline int) (Placement, bool) {
	if len(candidates) == 0 {
		return Placement{}, false
	}
	p := Placement{Featured: candidates[0]}
	rest := candidates[1:]
	if len(rest) > maxInline {
		rest = rest[:maxInline]
	}
	p.Inline = rest
	return p, true
}

// Interleave inserts inline images into an HTML body at an interval of
// max(2, paragraphs/(images+1)) paragraphs, appending any leftovers at the end.
func Interleave(body string, inline []Image) string {
	if len(inline) == 0 {
		return body
	}

	paragraphs := strings.SplitAfter(body, "</p>")
	// last element is any trailing content without a closing tag
	count := 0
	for _, p := range paragraphs {
		if strings.Contains(p, "</p>") {
			count++
		}
	}
	if count == 0 {
		// no paragraph structure, append everything
		var sb strings.Builder
		sb.WriteString(body)
		for _, img := range inline {
			sb.WriteString("\n")
			sb.WriteString(figure(img))
		}
		return sb.String()
	}

	interval := count / (len(inline) + 1)
	if interval < 2 {
		interval = 2
	}

	var sb strings.Builder
	placed := 0
	seen := 0
	for _, p := range paragraphs {
		sb.WriteString(p)
		if strings.Contains(p, "</p>") {
			seen++
			if placed < len(inline) && seen%interval == 0 {
				sb.WriteString("\n")
				sb.WriteString(figure(inline[placed]))
				placed++
			}
		}
	}

	// leftovers go at the end
	for ; placed < len(inline); placed++ {
		sb.WriteString("\n")
		sb.WriteString(figure(inline[placed]))
	}

	return sb.String()
}

func figure(img Image) string {
	caption := ""
	if img.Photographer != "" {
		caption = fmt.Sprintf("<figcaption>Photo: %s</figcaption>", img.Photographer)
	}
	return fmt.Sprintf(`<figure><img src=%q alt="" loading="lazy"/>%s</figure>`, img.URL, caption)
}
