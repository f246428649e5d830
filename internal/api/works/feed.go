package works

import (
	"encoding/json"
	"net/http"

	"entity-hub/content"
	"entity-hub/internal/app/http/view"
	dw "entity-hub/internal/domain/works"
	"entity-hub/internal/infra/etag"

	"github.com/gin-gonic/gin"
)

const feedCacheControl = "public, max-age=3600, s-maxage=3600"

// BuildIndex lists every released work in catalog order.
func BuildIndex(catalog *dw.Catalog, siteURL string) []IndexEntry {
	released := catalog.Released()
	out := make([]IndexEntry, 0, len(released))
	for _, w := range released {
		e := IndexEntry{
			Type:  w.Type.Label(),
			Title: w.Title,
			URL:   w.URL(siteURL),
		}
		if w.DatePublished != "" {
			d := w.DatePublished
			e.DatePublished = &d
		}
		out = append(out, e)
	}
	return out
}

// EncodeIndex renders the feed body served at /works-index.json.
func EncodeIndex(catalog *dw.Catalog, siteURL string) ([]byte, error) {
	return json.Marshal(BuildIndex(catalog, siteURL))
}

// GET /works-index.json
func GetWorksIndex(c *gin.Context) {
	body, err := EncodeIndex(content.Catalog, content.SiteURL)
	if err != nil {
		view.Error(c, err)
		return
	}

	tag := etag.Strong(body)
	c.Header("Cache-Control", feedCacheControl)
	c.Header("ETag", tag)

	if etag.Matches(c.GetHeader("If-None-Match"), tag) {
		c.Status(http.StatusNotModified)
		return
	}
	c.Data(http.StatusOK, "application/json", body)
}
