package site

// Organization is a label or publisher the entity works with.
type Organization struct {
	ID   string
	Name string
}

// Entity is the one person every page and schema describes.
// Build it with NewEntity; all fields are read-only afterwards.
type Entity struct {
	ID            string
	Name          string
	AlternateName string
	URL           string
	Image         string
	SameAs        []string
	JobTitles     []string
	Description   string

	WorksFor   Organization
	Publishers []Organization
}

const (
	EntityName          = "Camryn Jackson"
	EntityAlternateName = "Campaigne"
	EntityImagePath     = "/images/photos/Campaigne - Headshot.JPG"
)

// Organizations keyed by role, all rooted at the same site URL.
type Organizations struct {
	IAMRecords        Organization
	ScribesPublishing Organization
}

func NewOrganizations(siteURL string) Organizations {
	base := NormalizeURL(siteURL)
	return Organizations{
		IAMRecords:        Organization{ID: base + "#org-iam-records", Name: "IAM Records"},
		ScribesPublishing: Organization{ID: base + "#org-scribes-publishing", Name: "The Scribes Publishing"},
	}
}

// EntityID is the canonical @id every structured-data object points at.
func EntityID(siteURL string) string {
	return NormalizeURL(siteURL) + "#campaigne"
}

func NewEntity(siteURL string) Entity {
	base := NormalizeURL(siteURL)
	orgs := NewOrganizations(base)

	links := SortedSocialLinks()
	sameAs := make([]string, 0, len(links)+1)
	for _, l := range links {
		sameAs = append(sameAs, l.URL)
	}
	sameAs = append(sameAs, LinktreeURL)

	return Entity{
		ID:            EntityID(base),
		Name:          EntityName,
		AlternateName: EntityAlternateName,
		URL:           base,
		Image:         AssetURL(base, EntityImagePath),
		SameAs:        sameAs,
		JobTitles:     []string{"Artist", "Author", "Musician", "Filmmaker", "App Developer"},
		Description:   "Camryn Jackson, professionally known as Campaigne, is a multidisciplinary creator working across music, literature, film, and software.",
		WorksFor:      orgs.IAMRecords,
		Publishers:    []Organization{orgs.IAMRecords, orgs.ScribesPublishing},
	}
}

// Publisher looks up one of the entity's publishers by name.
func (e Entity) Publisher(name string) (Organization, bool) {
	for _, p := range e.Publishers {
		if p.Name == name {
			return p, true
		}
	}
	return Organization{}, false
}
