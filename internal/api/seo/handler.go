package seo

import (
	"net/http"
	"time"

	"entity-hub/content"
	"entity-hub/internal/app/http/view"

	"github.com/gin-gonic/gin"
)

// GET /sitemap.xml
func GetSitemap(c *gin.Context) {
	body, err := EncodeSitemap(BuildSitemap(content.Catalog, content.SiteURL, time.Now()))
	if err != nil {
		view.Error(c, err)
		return
	}
	c.Data(http.StatusOK, "application/xml; charset=utf-8", body)
}

// GET /robots.txt
func GetRobots(c *gin.Context) {
	c.String(http.StatusOK, BuildRobots(content.SiteURL))
}
