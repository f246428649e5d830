package seo

import (
	"strings"

	"entity-hub/internal/domain/site"
)

// BuildRobots allows every crawler and points it at the sitemap.
func BuildRobots(siteURL string) string {
	var b strings.Builder
	b.WriteString("User-agent: *\n")
	b.WriteString("Allow: /\n\n")
	b.WriteString("Sitemap: " + site.BuildPublicURL(siteURL, "/sitemap.xml") + "\n")
	return b.String()
}
