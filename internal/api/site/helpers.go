package siteapi

import (
	"net/http"

	"entity-hub/internal/app/http/view"

	"github.com/gin-gonic/gin"
)

// render attaches the page-specific schemas and writes the page. An
// encoding failure goes to the error view instead of a half-built page.
func render(c *gin.Context, name string, page *view.Page, schemas ...any) {
	if err := page.AddJSONLD(schemas...); err != nil {
		view.Error(c, err)
		return
	}
	c.HTML(http.StatusOK, name, page)
}
