package works

import (
	dw "entity-hub/internal/domain/works"
)

type WorkCardDTO struct {
	Slug          string   `json:"slug"`
	Title         string   `json:"title"`
	Path          string   `json:"path"`
	Cover         string   `json:"cover,omitempty"`
	TypeLabel     string   `json:"typeLabel"`
	DatePublished string   `json:"datePublished,omitempty"`
	Summary       string   `json:"summary"`
	Theme         dw.Theme `json:"theme"`
}

type IdentifierDTO struct {
	Label string `json:"label"`
	Value string `json:"value"`
	URL   string `json:"url,omitempty"`
}

type WorkDetailDTO struct {
	WorkCardDTO

	StatusLabel    string          `json:"statusLabel"`
	Description    string          `json:"description"`
	CreatorName    string          `json:"creatorName"`
	AlternateName  string          `json:"alternateName"`
	PrimaryCTA     *dw.Link        `json:"primaryCta,omitempty"`
	SecondaryLinks []dw.Link       `json:"secondaryLinks"`
	Identifiers    []IdentifierDTO `json:"identifiers"`

	BackPath  string `json:"backPath"`
	BackLabel string `json:"backLabel"`
}

// ListingDTO is one type's listing page split by status.
type ListingDTO struct {
	Heading    string        `json:"heading"`
	Released   []WorkCardDTO `json:"released"`
	InProgress []WorkCardDTO `json:"inProgress"`
	Empty      string        `json:"empty"`
}

func ToWorkCard(w dw.Work) WorkCardDTO {
	return WorkCardDTO{
		Slug:          w.Slug,
		Title:         w.Title,
		Path:          w.Path(),
		Cover:         w.CoverImage,
		TypeLabel:     w.Type.Title(),
		DatePublished: w.DatePublished,
		Summary:       w.ShortDescription,
		Theme:         w.Theme,
	}
}

func ToWorkCards(ws []dw.Work) []WorkCardDTO {
	out := make([]WorkCardDTO, 0, len(ws))
	for _, w := range ws {
		out = append(out, ToWorkCard(w))
	}
	return out
}

func toWorkDetail(w dw.Work) WorkDetailDTO {
	l, _ := listingFor(w.Type)
	links := w.SecondaryLinks
	if links == nil {
		links = []dw.Link{}
	}
	return WorkDetailDTO{
		WorkCardDTO:    ToWorkCard(w),
		StatusLabel:    statusLabel(w.Status),
		Description:    w.LongDescription,
		CreatorName:    w.CreatorName,
		AlternateName:  w.AlternateName,
		PrimaryCTA:     w.PrimaryCTA,
		SecondaryLinks: links,
		Identifiers:    toIdentifiers(w.Identifiers),
		BackPath:       l.Path,
		BackLabel:      l.Heading,
	}
}

func statusLabel(s dw.WorkStatus) string {
	switch s {
	case dw.StatusReleased:
		return "Released"
	case dw.StatusInProgress:
		return "In Progress"
	default:
		return string(s)
	}
}

func toIdentifiers(ids dw.Identifiers) []IdentifierDTO {
	out := []IdentifierDTO{}
	if ids.ISBN != "" {
		out = append(out, IdentifierDTO{Label: "ISBN", Value: ids.ISBN})
	}
	if ids.SpotifyID != "" {
		out = append(out, IdentifierDTO{
			Label: "Spotify",
			Value: ids.SpotifyID,
			URL:   "https://open.spotify.com/album/" + ids.SpotifyID,
		})
	}
	if ids.AppleMusicID != "" {
		out = append(out, IdentifierDTO{Label: "Apple Music", Value: ids.AppleMusicID})
	}
	if ids.AppStoreURL != "" {
		out = append(out, IdentifierDTO{Label: "App Store", Value: "View on the App Store", URL: ids.AppStoreURL})
	}
	return out
}
