package siteapi

import (
	"entity-hub/content"
	"entity-hub/internal/domain/site"
	"entity-hub/internal/domain/works"
)

// releasedNewestFirst is every released work, newest first.
func releasedNewestFirst() []works.Work {
	out := content.Catalog.Released()
	works.SortNewestFirst(out)
	return out
}

func referenceWorks() []ReferenceWorkDTO {
	released := content.Catalog.Released()
	out := make([]ReferenceWorkDTO, 0, len(released))
	for _, w := range released {
		out = append(out, ReferenceWorkDTO{
			Title:         w.Title,
			URL:           w.URL(content.SiteURL),
			TypeLabel:     w.Type.Label(),
			DatePublished: w.DatePublished,
		})
	}
	return out
}

func organizations() []OrganizationDTO {
	orgs := content.Projector.Orgs
	return []OrganizationDTO{
		{Role: "Label", Name: orgs.IAMRecords.Name, ID: orgs.IAMRecords.ID},
		{Role: "Publisher", Name: orgs.ScribesPublishing.Name, ID: orgs.ScribesPublishing.ID},
	}
}

func reference() ReferenceDTO {
	return ReferenceDTO{
		Facts:         content.Facts,
		Entity:        content.Entity,
		ImagePath:     site.EntityImagePath,
		Works:         referenceWorks(),
		Organizations: organizations(),
		FeedURL:       site.BuildPublicURL(content.SiteURL, "/works-index.json"),
		SitemapURL:    site.BuildPublicURL(content.SiteURL, "/sitemap.xml"),
	}
}
