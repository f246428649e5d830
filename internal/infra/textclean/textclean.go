package textclean

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// StrictPolicy is safe for concurrent use once built.
var strict = bluemonday.StrictPolicy()

// Plain strips every tag from s and collapses whitespace, returning text
// fit for meta descriptions and JSON-LD string values.
func Plain(s string) string {
	cleaned := html.UnescapeString(strict.Sanitize(s))
	return strings.Join(strings.Fields(cleaned), " ")
}

// Truncate shortens s to at most n runes on a word boundary, adding an
// ellipsis when anything was cut.
func Truncate(s string, n int) string {
	r := []rune(s)
	if n <= 0 || len(r) <= n {
		return s
	}
	cut := string(r[:n])
	if i := strings.LastIndex(cut, " "); i > 0 {
		cut = cut[:i]
	}
	return strings.TrimRight(cut, " ,.;:") + "…"
}
