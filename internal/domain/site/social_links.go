package site

import "sort"

type SocialLink struct {
	Label string `json:"label"`
	URL   string `json:"url"`
	Order int    `json:"order"`
}

const LinktreeURL = "https://tr.ee/V7UH3N3M74"

var socialLinks = []SocialLink{
	{Label: "TikTok", URL: "https://www.tiktok.com/@thecamrynshow", Order: 1},
	{Label: "Bandcamp", URL: "https://campaigne.bandcamp.com", Order: 2},
	{Label: "Instagram", URL: "https://www.instagram.com/campaigneee", Order: 3},
	{Label: "Spotify", URL: "https://open.spotify.com/artist/45jy2IFhNPcvvV7MVpNuKQ", Order: 4},
	{Label: "YouTube", URL: "https://www.youtube.com/channel/UCwBKwhp-ZdOyzpbQj7El7fw", Order: 5},
	{Label: "Apple Music", URL: "https://music.apple.com/artist/campaigne", Order: 6},
	{Label: "TIDAL", URL: "https://tidal.com/artist/campaigne", Order: 7},
}

// SortedSocialLinks returns the registry ordered by Order. Links sharing an
// order value keep their registry position.
func SortedSocialLinks() []SocialLink {
	return SortSocialLinks(socialLinks)
}

// SortSocialLinks returns a sorted copy of links.
func SortSocialLinks(links []SocialLink) []SocialLink {
	out := make([]SocialLink, len(links))
	copy(out, links)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}
