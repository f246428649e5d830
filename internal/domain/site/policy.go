package site

import (
	"strconv"
	"strings"
)

// RobotsRules are the per-page crawler directives rendered into
// <meta name="robots"> and <meta name="googlebot">.
type RobotsRules struct {
	NoIndex  bool
	NoFollow bool

	// Google extensions; -1 means unlimited.
	MaxVideoPreview int
	MaxImagePreview string
	MaxSnippet      int
}

// DefaultRobots lets crawlers index everything with full previews.
func DefaultRobots() RobotsRules {
	return RobotsRules{
		MaxVideoPreview: -1,
		MaxImagePreview: "large",
		MaxSnippet:      -1,
	}
}

// Meta renders the generic robots directive, e.g. "index, follow".
func (r RobotsRules) Meta() string {
	index, follow := "index", "follow"
	if r.NoIndex {
		index = "noindex"
	}
	if r.NoFollow {
		follow = "nofollow"
	}
	return index + ", " + follow
}

// GoogleBot renders the directive with Google's preview extensions.
func (r RobotsRules) GoogleBot() string {
	parts := []string{r.Meta()}
	if r.MaxVideoPreview != 0 {
		parts = append(parts, "max-video-preview:"+strconv.Itoa(r.MaxVideoPreview))
	}
	if r.MaxImagePreview != "" {
		parts = append(parts, "max-image-preview:"+r.MaxImagePreview)
	}
	if r.MaxSnippet != 0 {
		parts = append(parts, "max-snippet:"+strconv.Itoa(r.MaxSnippet))
	}
	return strings.Join(parts, ", ")
}
