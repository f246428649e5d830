package site

// Facts is the neutral record third parties can cite. No adjectives,
// no marketing copy; the bio lives in bio.go.
type Facts struct {
	LegalName        string   `json:"legal_name"`
	ProfessionalName string   `json:"professional_name"`
	Occupations      []string `json:"occupations"`
	Nationality      string   `json:"nationality"`
	ActiveYears      string   `json:"active_years"`
	PrimaryLanguage  string   `json:"primary_language"`
	OfficialWebsite  string   `json:"official_website"`
	KnownFor         []string `json:"known_for"`
}

func NewFacts(siteURL string) Facts {
	return Facts{
		LegalName:        EntityName,
		ProfessionalName: EntityAlternateName,
		Occupations:      []string{"Musician", "Artist", "Author", "Filmmaker", "Software Developer"},
		Nationality:      "American",
		ActiveYears:      "2012–present",
		PrimaryLanguage:  "English",
		OfficialWebsite:  NormalizeURL(siteURL),
		KnownFor: []string{
			"PNEUMA",
			"144: A New Dawn",
			"PNEUMA: Echoes of Breath",
			"Tales of Time",
			"ORIGEN",
		},
	}
}
