// Package jsonld projects the entity and catalog into schema.org objects.
//
// Every object carries @context and @type. References to the entity are
// always {"@id": ...} so each page repeats the pointer, never the person.
// Optional fields are left empty and dropped by omitempty.
package jsonld

import (
	"entity-hub/internal/domain/site"
	"entity-hub/internal/domain/works"
)

const (
	websiteName    = "Campaigne - Camryn Jackson Official Entity Hub"
	datasetLicense = "https://creativecommons.org/licenses/by/4.0/"
	inStock        = "https://schema.org/InStock"
)

// Projector maps site content to schema.org objects for one site URL.
// It is stateless after construction and safe for concurrent use.
type Projector struct {
	SiteURL string
	Entity  site.Entity
	Orgs    site.Organizations

	// Text cleans free-form descriptions before they are emitted.
	// nil leaves text unchanged.
	Text func(string) string
}

func New(siteURL string) *Projector {
	base := site.NormalizeURL(siteURL)
	return &Projector{
		SiteURL: base,
		Entity:  site.NewEntity(base),
		Orgs:    site.NewOrganizations(base),
	}
}

func (p *Projector) entityRef() Ref {
	return Ref{ID: p.Entity.ID}
}

func (p *Projector) websiteID() string {
	return p.SiteURL + "#website"
}

func (p *Projector) text(s string) string {
	if p.Text == nil {
		return s
	}
	return p.Text(s)
}

func (p *Projector) image(path string) string {
	if path == "" {
		return ""
	}
	return site.AssetURL(p.SiteURL, path)
}

func (p *Projector) Person() Person {
	e := p.Entity
	pubs := make([]Organization, 0, len(e.Publishers))
	for _, o := range e.Publishers {
		pubs = append(pubs, Organization{Type: "Organization", ID: o.ID, Name: o.Name})
	}
	return Person{
		Context:       Context,
		Type:          "Person",
		ID:            e.ID,
		Name:          e.Name,
		AlternateName: e.AlternateName,
		URL:           e.URL,
		Image:         e.Image,
		JobTitle:      e.JobTitles,
		SameAs:        e.SameAs,
		WorksFor:      &Organization{Type: "Organization", ID: e.WorksFor.ID, Name: e.WorksFor.Name},
		Publisher:     pubs,
		Description:   p.text(e.Description),
	}
}

// Organization describes the record label, founded by the entity.
func (p *Projector) Organization() Organization {
	ref := p.entityRef()
	return Organization{
		Context: Context,
		Type:    "Organization",
		ID:      p.Orgs.IAMRecords.ID,
		Name:    p.Orgs.IAMRecords.Name,
		Founder: &ref,
	}
}

func (p *Projector) WebSite() WebSite {
	return WebSite{
		Context:       Context,
		Type:          "WebSite",
		ID:            p.websiteID(),
		Name:          websiteName,
		AlternateName: p.Entity.AlternateName,
		URL:           p.SiteURL,
		Publisher:     p.entityRef(),
		PotentialAction: &SearchAction{
			Type: "SearchAction",
			Target: EntryPoint{
				Type:        "EntryPoint",
				URLTemplate: p.SiteURL + "/?q={search_term_string}",
			},
			QueryInput: "required name=search_term_string",
		},
	}
}

func (p *Projector) Book(w works.Work) Book {
	b := Book{
		Context:       Context,
		Type:          "Book",
		Name:          w.Title,
		Description:   p.text(w.LongDescription),
		URL:           w.URL(p.SiteURL),
		Author:        p.entityRef(),
		DatePublished: w.DatePublished,
		Image:         p.image(w.CoverImage),
	}
	if pub, ok := p.Entity.Publisher(p.Orgs.ScribesPublishing.Name); ok {
		b.Publisher = &Ref{ID: pub.ID}
	}
	if w.Identifiers.ISBN != "" {
		b.Identifier = &PropertyValue{Type: "PropertyValue", PropertyID: "ISBN", Value: w.Identifiers.ISBN}
	}
	if w.PrimaryCTA != nil && w.PrimaryCTA.URL != "" {
		b.Offers = &Offer{Type: "Offer", URL: w.PrimaryCTA.URL, Availability: inStock}
	}
	return b
}

func (p *Projector) MusicAlbum(w works.Work) MusicAlbum {
	a := MusicAlbum{
		Context:       Context,
		Type:          "MusicAlbum",
		Name:          w.Title,
		Description:   p.text(w.LongDescription),
		URL:           w.URL(p.SiteURL),
		ByArtist:      p.entityRef(),
		Publisher:     &Ref{ID: p.Orgs.IAMRecords.ID},
		DatePublished: w.DatePublished,
		Image:         p.image(w.CoverImage),
	}
	if w.Identifiers.SpotifyID != "" {
		a.Identifier = &PropertyValue{Type: "PropertyValue", PropertyID: "Spotify", Value: w.Identifiers.SpotifyID}
	}
	return a
}

func (p *Projector) SoftwareApplication(w works.Work) SoftwareApplication {
	app := SoftwareApplication{
		Context:             Context,
		Type:                "SoftwareApplication",
		Name:                w.Title,
		Description:         p.text(w.LongDescription),
		URL:                 w.URL(p.SiteURL),
		Creator:             p.entityRef(),
		DatePublished:       w.DatePublished,
		Image:               p.image(w.CoverImage),
		ApplicationCategory: "iOS",
		OperatingSystem:     "iOS",
	}
	if w.PrimaryCTA != nil && w.PrimaryCTA.URL != "" {
		app.Offers = &Offer{Type: "Offer", URL: w.PrimaryCTA.URL, Price: "0", PriceCurrency: "USD"}
	}
	return app
}

// ForWork picks the schema for w's type. Films and other works have no
// catalog schema and report false.
func (p *Projector) ForWork(w works.Work) (any, bool) {
	switch w.Type {
	case works.TypeBook:
		return p.Book(w), true
	case works.TypeAlbum:
		return p.MusicAlbum(w), true
	case works.TypeApp:
		return p.SoftwareApplication(w), true
	default:
		return nil, false
	}
}

func (p *Projector) ProfilePage(featured []works.Work) ProfilePage {
	parts := make([]any, 0, len(featured))
	for _, w := range featured {
		if v, ok := p.ForWork(w); ok {
			parts = append(parts, v)
		}
	}
	return ProfilePage{
		Context:    Context,
		Type:       "ProfilePage",
		URL:        site.BuildPublicURL(p.SiteURL, "/press"),
		MainEntity: p.entityRef(),
		HasPart:    parts,
	}
}

func (p *Projector) ImageObject(src, caption string) ImageObject {
	return ImageObject{
		Context:    Context,
		Type:       "ImageObject",
		ContentURL: p.image(src),
		Caption:    caption,
	}
}

func (p *Projector) Movie(c works.Credit) Movie {
	m := Movie{
		Context:       Context,
		Type:          "Movie",
		Name:          c.Name,
		DatePublished: c.DatePublished,
		URL:           c.WatchURL,
		Actor:         p.entityRef(),
	}
	if c.IMDbURL != "" {
		m.SameAs = []string{c.IMDbURL}
	}
	return m
}

func (p *Projector) AboutPage() AboutPage {
	return AboutPage{
		Context:    Context,
		Type:       "AboutPage",
		URL:        site.BuildPublicURL(p.SiteURL, "/about"),
		MainEntity: p.entityRef(),
	}
}

// WebPage is the generic page-about-the-entity schema.
func (p *Projector) WebPage(path string) WebPage {
	wp := WebPage{
		Context: Context,
		Type:    "WebPage",
		About:   p.entityRef(),
	}
	if path != "" {
		wp.URL = site.BuildPublicURL(p.SiteURL, path)
	}
	return wp
}

func (p *Projector) DisambiguationPage() WebPage {
	wp := p.WebPage("/disambiguation")
	wp.Name = "Identity Clarification – " + p.Entity.Name + " (" + p.Entity.AlternateName + ")"
	wp.Description = "Identity clarification page to distinguish this individual from others with similar names."
	wp.IsPartOf = &WebSiteRef{Type: "WebSite", ID: p.websiteID(), URL: p.SiteURL}
	return wp
}

// Dataset advertises the works index feed to data consumers.
func (p *Projector) Dataset() Dataset {
	ref := p.entityRef()
	return Dataset{
		Context:     Context,
		Type:        "Dataset",
		Name:        "Campaigne Entity Reference Data",
		Description: "Canonical reference information for " + p.Entity.Name + " (" + p.Entity.AlternateName + ") including identity, works, and organizational relationships.",
		URL:         site.BuildPublicURL(p.SiteURL, "/ai"),
		License:     datasetLicense,
		Creator:     ref,
		About:       ref,
		Distribution: []DataDownload{{
			Type:           "DataDownload",
			EncodingFormat: "application/json",
			ContentURL:     site.BuildPublicURL(p.SiteURL, "/works-index.json"),
		}},
	}
}
