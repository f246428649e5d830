package routes

import (
	"net/http"
	"time"

	"entity-hub/config"
	"entity-hub/internal/api/seo"
	siteapi "entity-hub/internal/api/site"
	worksapi "entity-hub/internal/api/works"
	"entity-hub/internal/app/http/middleware"
	"entity-hub/internal/app/http/view"
	"entity-hub/internal/domain/works"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter builds the engine with templates, middleware and routes.
// content.Init must have run first.
func NewRouter() (*gin.Engine, error) {
	renderer, err := view.NewRenderer()
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.HTMLRender = renderer
	r.Use(
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Recovery(),
		middleware.Metrics(),
	)

	RegisterRoutes(r)
	return r, nil
}

func RegisterRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.StaticFS("/static", http.FS(view.Static()))
	if config.STATIC_DIR != "" {
		r.Static("/images", config.STATIC_DIR)
	}

	// Pages
	r.GET("/", siteapi.Home)
	r.GET("/about", siteapi.About)
	r.GET("/press", siteapi.Press)
	r.GET("/photos", siteapi.Photos)
	r.GET("/acting", siteapi.Acting)
	r.GET("/ai", siteapi.AI)
	r.GET("/disambiguation", siteapi.Disambiguation)
	r.GET("/contact", siteapi.Contact)

	r.GET("/books", worksapi.ListWorks(works.TypeBook))
	r.GET("/music", worksapi.ListWorks(works.TypeAlbum))
	r.GET("/apps", worksapi.ListWorks(works.TypeApp))

	r.GET("/books/:slug", worksapi.GetWork(works.TypeBook))
	r.GET("/albums/:slug", worksapi.GetWork(works.TypeAlbum))
	r.GET("/apps/:slug", worksapi.GetWork(works.TypeApp))
	r.GET("/music/:slug", worksapi.RedirectAlbum)

	// Machine-readable endpoints, readable cross-origin
	machine := r.Group("/")
	machine.Use(cors.New(corsConfig(config.CORS_ORIGIN)))
	machineRoutes := map[string]gin.HandlerFunc{
		"/works-index.json": worksapi.GetWorksIndex,
		"/sitemap.xml":      seo.GetSitemap,
		"/robots.txt":       seo.GetRobots,
	}
	for path, h := range machineRoutes {
		machine.GET(path, h)
		machine.HEAD(path, h)
		// Preflight requests are answered by the cors middleware.
		machine.OPTIONS(path, func(c *gin.Context) { c.Status(http.StatusNoContent) })
	}

	r.NoRoute(view.NotFound)
}

func corsConfig(origin string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "If-None-Match"},
		ExposeHeaders: []string{"Content-Length", "ETag"},
		MaxAge:        12 * time.Hour,
	}
	if origin == "" || origin == "*" {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = []string{origin}
	}
	return cfg
}
