package view

import (
	"html/template"
	"time"

	"entity-hub/config"
	"entity-hub/content"
	"entity-hub/internal/domain/jsonld"
	"entity-hub/internal/domain/site"
	"entity-hub/internal/infra/textclean"
)

const (
	siteName     = "Campaigne"
	defaultTitle = "Camryn Jackson | Campaigne - Official Entity Hub"
	defaultDesc  = "Official source for releases, images, bios, and links from Camryn Jackson (Campaigne). Books, music, apps, and more."
	ogImagePath  = "/images/og-default.jpg"

	maxDescription = 160
)

var defaultKeywords = []string{"Camryn Jackson", "Campaigne", "author", "musician", "app developer", "filmmaker"}

type NavItem struct {
	Label  string
	Path   string
	Active bool
}

var navigation = []NavItem{
	{Label: "Home", Path: "/"},
	{Label: "About", Path: "/about"},
	{Label: "Books", Path: "/books"},
	{Label: "Music", Path: "/music"},
	{Label: "Apps", Path: "/apps"},
	{Label: "Acting", Path: "/acting"},
	{Label: "Press", Path: "/press"},
	{Label: "Photos", Path: "/photos"},
	{Label: "Contact", Path: "/contact"},
}

// Page is everything the layout needs plus the page body in Data.
type Page struct {
	Title       string
	Description string
	Keywords    []string
	Canonical   string
	OGImage     string
	Robots      site.RobotsRules
	Lang        string
	OGLocale    string
	SiteName    string
	Path        string

	// JSONLD holds pre-encoded schema objects; the layout always
	// starts with Person and WebSite.
	JSONLD []template.JS

	Nav    []NavItem
	Social []site.SocialLink
	Year   int

	Data any
}

// NewPage builds page metadata for path. An empty title uses the site
// default; otherwise "%s | Campaigne".
func NewPage(title, description, path string) *Page {
	full := defaultTitle
	if title != "" {
		full = title + " | " + siteName
	}
	if description == "" {
		description = defaultDesc
	}

	nav := make([]NavItem, len(navigation))
	copy(nav, navigation)
	for i := range nav {
		nav[i].Active = nav[i].Path == path
	}

	p := &Page{
		Title:       full,
		Description: textclean.Truncate(textclean.Plain(description), maxDescription),
		Keywords:    defaultKeywords,
		Canonical:   site.BuildPublicURL(content.SiteURL, path),
		OGImage:     site.BuildPublicURL(content.SiteURL, ogImagePath),
		Robots:      site.DefaultRobots(),
		Lang:        config.Lang(),
		OGLocale:    config.OGLocale(),
		SiteName:    siteName,
		Path:        path,
		Nav:         nav,
		Social:      site.SortedSocialLinks(),
		Year:        time.Now().Year(),
	}
	// Person and WebSite are plain structs; encoding cannot fail.
	_ = p.AddJSONLD(content.Projector.Person(), content.Projector.WebSite())
	return p
}

// AddJSONLD encodes objs and appends them as ld+json script bodies.
func (p *Page) AddJSONLD(objs ...any) error {
	for _, o := range objs {
		b, err := jsonld.Marshal(o)
		if err != nil {
			return err
		}
		p.JSONLD = append(p.JSONLD, template.JS(b))
	}
	return nil
}

func (p *Page) WithData(data any) *Page {
	p.Data = data
	return p
}
