package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"entity-hub/content"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSite = "https://example.com"

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, content.Init(testSite))

	r, err := NewRouter()
	require.NoError(t, err)
	return r
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestPagesRender(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		path   string
		title  string
		schema string
	}{
		{"/", "Camryn Jackson | Campaigne - Official Entity Hub", `"@type":"Organization"`},
		{"/about", "About | Campaigne", `"@type":"AboutPage"`},
		{"/books", "Books | Campaigne", `"@type":"WebPage"`},
		{"/music", "Music | Campaigne", `"@type":"WebPage"`},
		{"/apps", "Apps | Campaigne", `"@type":"WebPage"`},
		{"/books/tales-of-time", "Tales of Time | Campaigne", `"@type":"Book"`},
		{"/albums/pneuma", "PNEUMA | Campaigne", `"@type":"MusicAlbum"`},
		{"/apps/origen", "ORIGEN | Campaigne", `"@type":"SoftwareApplication"`},
		{"/press", "Press | Campaigne", `"@type":"ProfilePage"`},
		{"/photos", "Photos | Campaigne", `"@type":"ImageObject"`},
		{"/acting", "Acting &amp; Film | Campaigne", `"@type":"Movie"`},
		{"/ai", "AI &amp; Data Reference | Campaigne", `"@type":"Dataset"`},
		{"/disambiguation", "Identity Clarification | Campaigne", `"@type":"WebPage"`},
		{"/contact", "Contact | Campaigne", `"@type":"Person"`},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := get(r, tt.path)
			require.Equal(t, http.StatusOK, w.Code)

			body := w.Body.String()
			assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
			assert.Contains(t, body, "<title>"+tt.title+"</title>")
			assert.Contains(t, body, `<script type="application/ld+json">`)
			assert.Contains(t, body, `"@type":"Person"`)
			assert.Contains(t, body, `"@type":"WebSite"`)
			assert.Contains(t, body, tt.schema)

			canonical := testSite + tt.path
			if tt.path == "/" {
				canonical = testSite
			}
			assert.Contains(t, body, `<link rel="canonical" href="`+canonical+`">`)
		})
	}
}

func TestHomeListsFeaturedWorks(t *testing.T) {
	body := get(newTestRouter(t), "/").Body.String()
	assert.Contains(t, body, "Featured Works")
	assert.Contains(t, body, `href="/albums/pneuma"`)
	assert.Contains(t, body, `href="/apps/origen"`)
}

func TestPressHasCopyButtons(t *testing.T) {
	body := get(newTestRouter(t), "/press").Body.String()
	assert.Equal(t, 4, strings.Count(body, "data-copy="))
	assert.Contains(t, body, "mailto:camryncjackson@gmail.com")
}

func TestNotFound(t *testing.T) {
	r := newTestRouter(t)

	for _, path := range []string{
		"/books/nonexistent",
		"/books/origen", // exists, but is an app
		"/apps/tales-of-time",
		"/no/such/page",
	} {
		t.Run(path, func(t *testing.T) {
			w := get(r, path)
			assert.Equal(t, http.StatusNotFound, w.Code)
			body := w.Body.String()
			assert.Contains(t, body, "404")
			assert.Contains(t, body, "Return Home")
			assert.Contains(t, body, `content="noindex, follow"`)
		})
	}

	w := get(r, "/missing.json")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Not found"}`, w.Body.String())
}

func TestMusicRedirectsToAlbum(t *testing.T) {
	w := get(newTestRouter(t), "/music/pneuma")
	assert.Equal(t, http.StatusMovedPermanently, w.Code)
	assert.Equal(t, "/albums/pneuma", w.Header().Get("Location"))
}

func TestMachineEndpoints(t *testing.T) {
	r := newTestRouter(t)

	feed := get(r, "/works-index.json")
	require.Equal(t, http.StatusOK, feed.Code)
	assert.Contains(t, feed.Body.String(), `"url":"https://example.com/books/tales-of-time"`)
	assert.Contains(t, feed.Body.String(), `"type":"Book"`)

	sitemap := get(r, "/sitemap.xml")
	require.Equal(t, http.StatusOK, sitemap.Code)
	assert.Contains(t, sitemap.Body.String(), "<loc>https://example.com/albums/144-a-new-dawn</loc>")

	robots := get(r, "/robots.txt")
	require.Equal(t, http.StatusOK, robots.Code)
	assert.Contains(t, robots.Body.String(), "Sitemap: https://example.com/sitemap.xml")
}

func TestFeedAllowsCrossOrigin(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/works-index.json", nil)
	req.Header.Set("Origin", "https://consumer.example")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestOperationalEndpoints(t *testing.T) {
	r := newTestRouter(t)

	health := get(r, "/health")
	assert.Equal(t, http.StatusOK, health.Code)
	assert.JSONEq(t, `{"status":"ok"}`, health.Body.String())

	get(r, "/about")
	metrics := get(r, "/metrics")
	assert.Equal(t, http.StatusOK, metrics.Code)
	assert.Contains(t, metrics.Body.String(), "entity_hub_http_requests_total")

	static := get(r, "/static/copy.js")
	assert.Equal(t, http.StatusOK, static.Code)
	assert.Contains(t, static.Body.String(), "Copied!")
}

func TestRequestIDIsEchoed(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))

	assert.NotEmpty(t, get(r, "/health").Header().Get("X-Request-ID"))
}
