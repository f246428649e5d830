package works

import (
	"strings"
	"time"
)

type WorkType string

const (
	TypeBook  WorkType = "book"
	TypeAlbum WorkType = "album"
	TypeApp   WorkType = "app"
	TypeFilm  WorkType = "film"
	TypeOther WorkType = "other"
)

// Types lists every work type in display order.
var Types = []WorkType{TypeBook, TypeAlbum, TypeApp, TypeFilm, TypeOther}

// Label returns the schema.org type name used in machine-readable output.
// Unknown types map to themselves.
func (t WorkType) Label() string {
	switch t {
	case TypeBook:
		return "Book"
	case TypeAlbum:
		return "MusicAlbum"
	case TypeApp:
		return "SoftwareApplication"
	case TypeFilm:
		return "Movie"
	default:
		return string(t)
	}
}

// Plural is the first path segment of a work URL: "/books/tales-of-time".
func (t WorkType) Plural() string {
	return string(t) + "s"
}

// Title is the human label, e.g. "Book" or "App".
func (t WorkType) Title() string {
	s := string(t)
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

type WorkStatus string

const (
	StatusReleased   WorkStatus = "released"
	StatusInProgress WorkStatus = "in-progress"
)

// Theme holds the four colors a work page is painted with.
type Theme struct {
	Bg      string `json:"bg"`
	Fg      string `json:"fg"`
	Accent  string `json:"accent"`
	Accent2 string `json:"accent2"`
}

type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Identifiers are type specific: ISBN only makes sense for books,
// streaming IDs for albums, store URLs for apps.
type Identifiers struct {
	ISBN         string `json:"isbn,omitempty"`
	AppleMusicID string `json:"apple_music_id,omitempty"`
	SpotifyID    string `json:"spotify_id,omitempty"`
	AppStoreURL  string `json:"app_store_url,omitempty"`
}

type Work struct {
	ID               string      `json:"id"`
	Slug             string      `json:"slug"`
	Title            string      `json:"title"`
	Type             WorkType    `json:"type"`
	Status           WorkStatus  `json:"status"`
	ShortDescription string      `json:"short_description"`
	LongDescription  string      `json:"long_description"`
	Theme            Theme       `json:"theme"`
	CoverImage       string      `json:"cover_image"`
	PrimaryCTA       *Link       `json:"primary_cta,omitempty"`
	SecondaryLinks   []Link      `json:"secondary_links"`
	CreatorName      string      `json:"creator_name"`
	AlternateName    string      `json:"alternate_name"`
	DatePublished    string      `json:"date_published,omitempty"` // YYYY-MM-DD
	Identifiers      Identifiers `json:"identifiers"`
}

func (w Work) Released() bool {
	return w.Status == StatusReleased
}

// Path is the canonical route of the work, "/{type}s/{slug}".
func (w Work) Path() string {
	return "/" + w.Type.Plural() + "/" + w.Slug
}

// URL joins the canonical path onto siteURL.
func (w Work) URL(siteURL string) string {
	return strings.TrimRight(siteURL, "/") + w.Path()
}

// PublishedAt parses DatePublished. ok is false for undated works or
// malformed dates.
func (w Work) PublishedAt() (t time.Time, ok bool) {
	if w.DatePublished == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.DateOnly, w.DatePublished)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
