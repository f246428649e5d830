package works

import (
	"net/http"

	"entity-hub/content"
	"entity-hub/internal/app/http/view"
	"entity-hub/internal/domain/site"
	dw "entity-hub/internal/domain/works"

	"github.com/gin-gonic/gin"
)

// GET /books, /music, /apps
func ListWorks(t dw.WorkType) gin.HandlerFunc {
	l, _ := listingFor(t)
	return func(c *gin.Context) {
		released, inProgress := splitByStatus(content.Catalog.ByType(t))

		page := view.NewPage(l.Heading, l.Description, l.Path)
		wp := content.Projector.WebPage(l.Path)
		wp.Name = l.Heading
		if err := page.AddJSONLD(wp); err != nil {
			view.Error(c, err)
			return
		}

		c.HTML(http.StatusOK, view.PageWorksList, page.WithData(ListingDTO{
			Heading:    l.Heading,
			Released:   ToWorkCards(released),
			InProgress: ToWorkCards(inProgress),
			Empty:      l.Empty,
		}))
	}
}

// GET /books/:slug, /albums/:slug, /apps/:slug
//
// A slug that exists under another type is treated as missing so each
// work has exactly one canonical URL.
func GetWork(t dw.WorkType) gin.HandlerFunc {
	return func(c *gin.Context) {
		w, ok := content.Catalog.BySlug(c.Param("slug"))
		if !ok || w.Type != t {
			view.NotFound(c)
			return
		}

		page := view.NewPage(w.Title, w.ShortDescription, w.Path())
		if w.CoverImage != "" {
			page.OGImage = site.AssetURL(content.SiteURL, w.CoverImage)
		}
		if schema, ok := content.Projector.ForWork(w); ok {
			if err := page.AddJSONLD(schema); err != nil {
				view.Error(c, err)
				return
			}
		}

		c.HTML(http.StatusOK, view.PageWorkDetail, page.WithData(toWorkDetail(w)))
	}
}

// GET /music/:slug redirects to the canonical album route.
func RedirectAlbum(c *gin.Context) {
	c.Redirect(http.StatusMovedPermanently, "/"+dw.TypeAlbum.Plural()+"/"+c.Param("slug"))
}
