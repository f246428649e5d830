package seo

import (
	"encoding/xml"
	"time"

	"entity-hub/internal/domain/site"
	"entity-hub/internal/domain/works"
)

const sitemapNS = "http://www.sitemaps.org/schemas/sitemap/0.9"

type ChangeFreq string

const (
	Weekly  ChangeFreq = "weekly"
	Monthly ChangeFreq = "monthly"
	Yearly  ChangeFreq = "yearly"
)

type URL struct {
	Loc        string     `xml:"loc"`
	LastMod    string     `xml:"lastmod"`
	ChangeFreq ChangeFreq `xml:"changefreq"`
	Priority   string     `xml:"priority"`
}

type URLSet struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	URLs    []URL    `xml:"url"`
}

type staticRoute struct {
	Path       string
	ChangeFreq ChangeFreq
	Priority   string
}

var staticRoutes = []staticRoute{
	{"/", Weekly, "1.0"},
	{"/about", Monthly, "0.8"},
	{"/books", Weekly, "0.9"},
	{"/music", Weekly, "0.9"},
	{"/apps", Weekly, "0.9"},
	{"/press", Monthly, "0.7"},
	{"/ai", Monthly, "0.8"},
	{"/disambiguation", Yearly, "0.7"},
	{"/photos", Monthly, "0.7"},
	{"/acting", Monthly, "0.7"},
	{"/contact", Yearly, "0.5"},
}

// BuildSitemap lists the static routes followed by every catalog work.
// Static routes and undated works carry now as lastmod.
func BuildSitemap(catalog *works.Catalog, siteURL string, now time.Time) URLSet {
	today := now.UTC().Format(time.DateOnly)
	all := catalog.All()

	set := URLSet{Xmlns: sitemapNS, URLs: make([]URL, 0, len(staticRoutes)+len(all))}
	for _, r := range staticRoutes {
		set.URLs = append(set.URLs, URL{
			Loc:        site.BuildPublicURL(siteURL, r.Path),
			LastMod:    today,
			ChangeFreq: r.ChangeFreq,
			Priority:   r.Priority,
		})
	}
	for _, w := range all {
		lastMod := today
		if _, ok := w.PublishedAt(); ok {
			lastMod = w.DatePublished
		}
		set.URLs = append(set.URLs, URL{
			Loc:        w.URL(siteURL),
			LastMod:    lastMod,
			ChangeFreq: Monthly,
			Priority:   "0.8",
		})
	}
	return set
}

// EncodeSitemap renders set as an indented XML document.
func EncodeSitemap(set URLSet) ([]byte, error) {
	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), body...), nil
}
