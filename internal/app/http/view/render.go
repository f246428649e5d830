package view

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"strings"
	"time"

	"entity-hub/internal/domain/site"

	"github.com/gin-gonic/gin/render"
)

//go:embed templates
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// layoutName is both the file and the template executed for every page;
// ParseFS names templates after file basenames.
const layoutName = "layout.html"

// Page templates, each rendered inside layout.html.
const (
	PageHome           = "home"
	PageAbout          = "about"
	PageWorksList      = "works_list"
	PageWorkDetail     = "work_detail"
	PagePress          = "press"
	PagePhotos         = "photos"
	PageActing         = "acting"
	PageAI             = "ai"
	PageDisambiguation = "disambiguation"
	PageContact        = "contact"
	PageNotFound       = "not_found"
	PageError          = "error"
)

var pages = []string{
	PageHome, PageAbout, PageWorksList, PageWorkDetail, PagePress, PagePhotos,
	PageActing, PageAI, PageDisambiguation, PageContact, PageNotFound, PageError,
}

// Renderer is a gin HTMLRender holding one template set per page.
// Each set shares the layout and partials but owns its "content" block.
type Renderer struct {
	templates map[string]*template.Template
}

var funcs = template.FuncMap{
	"display":    site.DisplayURL,
	"paragraphs": site.Paragraphs,
	"join":       strings.Join,
	"longDate":   longDate,
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	r := &Renderer{templates: make(map[string]*template.Template, len(pages))}
	for _, name := range pages {
		t, err := template.New(layoutName).Funcs(funcs).ParseFS(templateFS,
			"templates/layout.html",
			"templates/partials/*.html",
			"templates/pages/"+name+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		r.templates[name] = t
	}
	return r, nil
}

// Instance implements render.HTMLRender.
func (r *Renderer) Instance(name string, data any) render.Render {
	t, ok := r.templates[name]
	if !ok {
		t = r.templates[PageError]
	}
	return render.HTML{Template: t, Name: layoutName, Data: data}
}

// Static returns the embedded stylesheet and scripts rooted at "/".
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// longDate renders an ISO date as "January 15, 2024". Anything else is
// returned unchanged.
func longDate(iso string) string {
	t, err := time.Parse(time.DateOnly, iso)
	if err != nil {
		return iso
	}
	return t.Format("January 2, 2006")
}
