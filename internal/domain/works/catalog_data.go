package works

const (
	creatorName   = "Camryn Jackson"
	alternateName = "Campaigne"
	linktreeURL   = "https://tr.ee/V7UH3N3M74"
	bandcampURL   = "https://campaigne.bandcamp.com"
)

var (
	purpleTheme = Theme{Bg: "#6B46C1", Fg: "#FFFFFF", Accent: "#D4AF37", Accent2: "#8B5CF6"}
	blackTheme  = Theme{Bg: "#000000", Fg: "#FFFFFF", Accent: "#D4AF37", Accent2: "#1A1A1A"}
	dawnTheme   = Theme{Bg: "#1A1A1A", Fg: "#FFFFFF", Accent: "#D4AF37", Accent2: "#6B46C1"}
)

func albumLinks(appleMusic, amazonMusic string) []Link {
	return []Link{
		{Label: "Apple Music", URL: appleMusic},
		{Label: "Amazon Music", URL: amazonMusic},
		{Label: "Bandcamp", URL: bandcampURL},
		{Label: "All Links", URL: linktreeURL},
	}
}

var builtin = []Work{
	{
		ID:               "tales-of-time",
		Slug:             "tales-of-time",
		Title:            "Tales of Time",
		Type:             TypeBook,
		Status:           StatusReleased,
		ShortDescription: "A collection of stories exploring themes of time, destiny, and human experience.",
		LongDescription:  "Tales of Time is a book containing narratives set across different time periods. The work explores themes of destiny, choice, and interconnectedness.",
		Theme:            purpleTheme,
		CoverImage:       "/images/photos/Tales of Times by Camryn Jackson - Square image.JPG",
		PrimaryCTA: &Link{
			Label: "Get on Amazon",
			URL:   "https://www.amazon.com/Tales-Time-Visionary-Collection-Spiritual/dp/B0G5DCBKZS",
		},
		SecondaryLinks: []Link{},
		CreatorName:    creatorName,
		AlternateName:  alternateName,
		DatePublished:  "2024-01-15",
		Identifiers:    Identifiers{ISBN: "978-0000000000"},
	},
	{
		ID:               "pneuma",
		Slug:             "pneuma",
		Title:            "PNEUMA",
		Type:             TypeAlbum,
		Status:           StatusReleased,
		ShortDescription: "A house music album blending electronic rhythms with melodic elements.",
		LongDescription:  "PNEUMA is a house music album. The work combines electronic rhythms with melodic elements.",
		Theme:            blackTheme,
		CoverImage:       "/images/photos/Campaigne - PNEUMA - album cover.JPG",
		PrimaryCTA: &Link{
			Label: "Listen on Spotify",
			URL:   "https://open.spotify.com/album/2NBbSnmZzWMsULUqYx2uyh",
		},
		SecondaryLinks: albumLinks(
			"https://music.apple.com/album/pneuma/1851510192",
			"https://music.amazon.com/tracks/B0G1CS12NW",
		),
		CreatorName:   creatorName,
		AlternateName: alternateName,
		DatePublished: "2025-01-01",
		Identifiers:   Identifiers{AppleMusicID: "1851510192", SpotifyID: "2NBbSnmZzWMsULUqYx2uyh"},
	},
	{
		ID:               "pneuma-echoes",
		Slug:             "pneuma-echoes-of-breath",
		Title:            "PNEUMA: Echoes of Breath",
		Type:             TypeAlbum,
		Status:           StatusReleased,
		ShortDescription: "A remix album featuring reworked tracks from PNEUMA.",
		LongDescription:  "PNEUMA: Echoes of Breath is a remix album containing 9 remixed tracks from the original PNEUMA album. The collection includes tracks such as 'Vibin High' - Remix, 'Alive - Remix', and 'Intentional - Remix'.",
		Theme:            Theme{Bg: "#6B46C1", Fg: "#FFFFFF", Accent: "#000000", Accent2: "#8B5CF6"},
		CoverImage:       "/images/photos/Campaigne - PNEUMA Alt version - Album Cover.JPG",
		PrimaryCTA: &Link{
			Label: "Listen on Spotify",
			URL:   "https://open.spotify.com/album/2qoKWw2h2SaP3OJy1fW6YX",
		},
		SecondaryLinks: albumLinks(
			"https://music.apple.com/album/pneuma-echoes-of-breath/id1851510192",
			"https://music.amazon.com/albums/B0G1CR6D4G",
		),
		CreatorName:   creatorName,
		AlternateName: alternateName,
		DatePublished: "2025-01-01",
		Identifiers:   Identifiers{AppleMusicID: "1851510192", SpotifyID: "2qoKWw2h2SaP3OJy1fW6YX"},
	},
	{
		ID:               "144-new-dawn",
		Slug:             "144-a-new-dawn",
		Title:            "144: A New Dawn",
		Type:             TypeAlbum,
		Status:           StatusReleased,
		ShortDescription: "A 19-track album featuring collaborations with S.K.I.T, Kyduh, and P N E U M A.",
		LongDescription:  "144: A New Dawn is a 19-track album. The work includes tracks such as 'A New Dawn', 'Free Spirit', 'Feels Good to Be Alive', 'Peace of Mind', and 'I'm Set Free'. The album features collaborations with S.K.I.T, Kyduh, and P N E U M A.",
		Theme:            dawnTheme,
		CoverImage:       "/images/photos/Campaigne - 144 A New Dawn - Album Cover.JPG",
		PrimaryCTA: &Link{
			Label: "Listen on Spotify",
			URL:   "https://open.spotify.com/album/1f7AryDjygTpSmGna3UXOC",
		},
		SecondaryLinks: albumLinks(
			"https://music.apple.com/album/144-a-new-dawn/id1851510192",
			"https://music.amazon.com/albums/B0FHTG1NLL",
		),
		CreatorName:   creatorName,
		AlternateName: alternateName,
		DatePublished: "2025-01-01",
		Identifiers:   Identifiers{AppleMusicID: "1851510192", SpotifyID: "1f7AryDjygTpSmGna3UXOC"},
	},
	{
		ID:               "origen",
		Slug:             "origen",
		Title:            "ORIGEN",
		Type:             TypeApp,
		Status:           StatusReleased,
		ShortDescription: "An iOS application for mobile devices.",
		LongDescription:  "ORIGEN is a mobile application for iOS devices. The app is available through the Apple App Store.",
		Theme:            dawnTheme,
		CoverImage:       "/images/photos/ORIGEN app icon by Camryn Jackson.PNG",
		PrimaryCTA: &Link{
			Label: "Download on App Store",
			URL:   "https://apps.apple.com/us/app/origen/id6756326466",
		},
		SecondaryLinks: []Link{},
		CreatorName:    creatorName,
		AlternateName:  alternateName,
		DatePublished:  "2024-12-22",
		Identifiers:    Identifiers{AppStoreURL: "https://apps.apple.com/us/app/origen/id6756326466"},
	},
}

var defaultCatalog = MustCatalog(builtin)

// Default returns the site's built-in catalog.
func Default() *Catalog {
	return defaultCatalog
}

func GetWorkBySlug(slug string) (Work, bool) { return defaultCatalog.BySlug(slug) }

func GetWorksByType(t WorkType) []Work { return defaultCatalog.ByType(t) }

func GetReleasedWorks() []Work { return defaultCatalog.Released() }

func GetLatestWorks(limit int) []Work { return defaultCatalog.Latest(limit) }
