package view

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// NotFound renders the not-found view. Unknown slugs and routes both
// land here instead of surfacing an error.
func NotFound(c *gin.Context) {
	if wantsJSON(c) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}
	page := NewPage("Not Found", "The page you're looking for doesn't exist.", c.Request.URL.Path)
	page.Robots.NoIndex = true
	c.HTML(http.StatusNotFound, PageNotFound, page)
}

type errorData struct {
	Message string
	Retry   string
}

// Error is the top-level error boundary view with a retry action.
func Error(c *gin.Context, err error) {
	log.Error().
		Err(err).
		Str("request_id", c.GetString("request_id")).
		Str("path", c.Request.URL.Path).
		Msg("Render failed")

	if wantsJSON(c) {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	page := NewPage("Something went wrong", "An unexpected error occurred.", c.Request.URL.Path)
	page.Robots.NoIndex = true
	page.Data = errorData{
		Message: "An unexpected error occurred",
		Retry:   c.Request.URL.RequestURI(),
	}
	c.HTML(http.StatusInternalServerError, PageError, page)
	c.Abort()
}

// Machine endpoints answer in JSON even when things go wrong.
func wantsJSON(c *gin.Context) bool {
	p := c.Request.URL.Path
	return strings.HasSuffix(p, ".json") || strings.HasSuffix(p, ".xml") || strings.HasSuffix(p, ".txt")
}
