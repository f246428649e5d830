package site

import (
	"net/url"
	"regexp"
	"strings"
)

/*
	Site / slug helpers
	-------------------
	- Responsible ONLY for:
	  • generating and checking slugs
	  • building public URLs from the configured site URL
	- No rendering, no catalog logic here
*/

var (
	nonSlug   = regexp.MustCompile(`[^a-z0-9\-]+`)
	multiDash = regexp.MustCompile(`-+`)
	validSlug = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
	scheme    = regexp.MustCompile(`^https?://`)
)

// MakeSlug generates a URL-safe slug from a title.
// Example: "144: A New Dawn" -> "144-a-new-dawn"
func MakeSlug(title string) string {
	base := strings.ToLower(strings.TrimSpace(title))
	base = strings.ReplaceAll(base, " ", "-")
	base = nonSlug.ReplaceAllString(base, "")
	base = multiDash.ReplaceAllString(base, "-")
	base = strings.Trim(base, "-")

	if base == "" {
		base = "work"
	}
	return base
}

// IsSlug reports whether s is already in MakeSlug's output form.
func IsSlug(s string) bool {
	return validSlug.MatchString(s)
}

// NormalizeURL trims whitespace and any trailing slash from a site URL.
func NormalizeURL(siteURL string) string {
	return strings.TrimRight(strings.TrimSpace(siteURL), "/")
}

// BuildPublicURL joins an absolute path onto the site URL.
// Example: ("https://camrynjackson.com", "/about") -> "https://camrynjackson.com/about"
func BuildPublicURL(siteURL, path string) string {
	base := NormalizeURL(siteURL)
	if path == "" || path == "/" {
		return base
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return base + path
}

// AssetURL is BuildPublicURL for file paths that may contain spaces.
// Example: "/images/a b.jpg" -> "https://x.com/images/a%20b.jpg"
func AssetURL(siteURL, path string) string {
	return BuildPublicURL(siteURL, (&url.URL{Path: path}).EscapedPath())
}

// DisplayURL strips the scheme for link text: "https://x.com/a" -> "x.com/a".
func DisplayURL(u string) string {
	return scheme.ReplaceAllString(u, "")
}
