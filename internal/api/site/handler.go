package siteapi

import (
	"entity-hub/config"
	"entity-hub/content"
	worksapi "entity-hub/internal/api/works"
	"entity-hub/internal/app/http/view"
	"entity-hub/internal/domain/media"
	"entity-hub/internal/domain/site"
	"entity-hub/internal/domain/works"

	"github.com/gin-gonic/gin"
)

const (
	featuredCount      = 4
	pressLatestCount   = 3
	profileFeatured    = 6
	homeDescription    = "Campaigne - Official entity hub for Camryn Jackson (Campaigne). Discover books, music, apps, and creative works. Search for Campaigne music, Campaigne albums, Campaigne books."
	aboutDescription   = "Learn about Camryn Jackson (Campaigne) - artist, author, filmmaker, and app developer creating works that transcend boundaries."
	pressDescription   = "Official media kit and verified resources for Campaigne (Camryn Jackson). Press photos, bios, and contact information."
	photosDescription  = "Official photos and images of Camryn Jackson (Campaigne) and creative works."
	actingDescription  = "Screen appearances and film work by Camryn Jackson (professionally known as Campaigne)."
	aiDescription      = "Canonical reference information for AI systems, search engines, and knowledge graphs about Camryn Jackson (Campaigne)."
	disambigDesc       = "Identity clarification to distinguish Camryn Jackson (Campaigne) from others with similar names."
	contactDescription = "Get in touch with Camryn Jackson (Campaigne)."
)

var homeKeywords = []string{
	"Campaigne", "Campaigne music", "Campaigne artist", "Campaigne albums", "Campaigne books",
	"Camryn Jackson", "PNEUMA", "Tales of Time", "ORIGEN",
}

// GET /
func Home(c *gin.Context) {
	page := view.NewPage("", homeDescription, "/")
	page.Keywords = homeKeywords
	page.WithData(HomeDTO{
		Featured: worksapi.ToWorkCards(content.Catalog.Latest(featuredCount)),
		Releases: worksapi.ToWorkCards(releasedNewestFirst()),
		Social:   site.SortedSocialLinks(),
	})
	render(c, view.PageHome, page, content.Projector.Organization())
}

// GET /about
func About(c *gin.Context) {
	page := view.NewPage("About", aboutDescription, "/about")
	page.WithData(AboutDTO{
		Bio:    site.GetBio(),
		Social: site.SortedSocialLinks(),
	})
	render(c, view.PageAbout, page, content.Projector.AboutPage())
}

// GET /press
func Press(c *gin.Context) {
	page := view.NewPage("Press", pressDescription, "/press")
	page.WithData(PressDTO{
		Facts:       content.Facts,
		Bio:         site.GetBio(),
		Latest:      worksapi.ToWorkCards(content.Catalog.Latest(pressLatestCount)),
		Social:      site.SortedSocialLinks(),
		LinktreeURL: site.LinktreeURL,
		PressEmail:  config.PRESS_EMAIL,
	})
	render(c, view.PagePress, page, content.Projector.ProfilePage(content.Catalog.Latest(profileFeatured)))
}

// GET /photos
func Photos(c *gin.Context) {
	photos := media.Photos()
	schemas := make([]any, 0, len(photos))
	for _, p := range photos {
		schemas = append(schemas, content.Projector.ImageObject(p.Src, p.Caption))
	}

	page := view.NewPage("Photos", photosDescription, "/photos")
	page.WithData(PhotosDTO{Photos: photos})
	render(c, view.PagePhotos, page, schemas...)
}

// GET /acting
func Acting(c *gin.Context) {
	credits := works.Credits()
	schemas := []any{content.Projector.WebPage("/acting")}
	for _, cr := range credits {
		schemas = append(schemas, content.Projector.Movie(cr))
	}

	page := view.NewPage("Acting & Film", actingDescription, "/acting")
	page.WithData(ActingDTO{Credits: credits, IMDbURL: works.IMDbProfileURL})
	render(c, view.PageActing, page, schemas...)
}

// GET /ai
func AI(c *gin.Context) {
	page := view.NewPage("AI & Data Reference", aiDescription, "/ai")
	page.WithData(reference())
	render(c, view.PageAI, page, content.Projector.Dataset())
}

// GET /disambiguation
func Disambiguation(c *gin.Context) {
	page := view.NewPage("Identity Clarification", disambigDesc, "/disambiguation")
	page.WithData(reference())
	render(c, view.PageDisambiguation, page, content.Projector.DisambiguationPage())
}

// GET /contact
func Contact(c *gin.Context) {
	page := view.NewPage("Contact", contactDescription, "/contact")
	page.WithData(ContactDTO{
		Email: config.PRESS_EMAIL,
		Sections: []ContactSection{
			{Heading: "General Inquiries", Text: "For general inquiries, collaborations, or questions:"},
			{Heading: "Press Inquiries", Text: "For press, media, and interview requests:"},
			{Heading: "Business & Licensing", Text: "For business inquiries, licensing, and partnerships:"},
		},
	})
	render(c, view.PageContact, page)
}
