package siteapi

import (
	worksapi "entity-hub/internal/api/works"
	"entity-hub/internal/domain/media"
	"entity-hub/internal/domain/site"
	"entity-hub/internal/domain/works"
)

type HomeDTO struct {
	Featured []worksapi.WorkCardDTO `json:"featured"`
	Releases []worksapi.WorkCardDTO `json:"releases"`
	Social   []site.SocialLink      `json:"social"`
}

type AboutDTO struct {
	Bio    site.Bio          `json:"bio"`
	Social []site.SocialLink `json:"social"`
}

type PressDTO struct {
	Facts       site.Facts             `json:"facts"`
	Bio         site.Bio               `json:"bio"`
	Latest      []worksapi.WorkCardDTO `json:"latest"`
	Social      []site.SocialLink      `json:"social"`
	LinktreeURL string                 `json:"linktreeUrl"`
	PressEmail  string                 `json:"pressEmail"`
}

type PhotosDTO struct {
	Photos []media.Photo `json:"photos"`
}

type ActingDTO struct {
	Credits []works.Credit `json:"credits"`
	IMDbURL string         `json:"imdbUrl"`
}

// ReferenceWorkDTO is a released work as listed on the reference pages,
// labelled with its schema.org type.
type ReferenceWorkDTO struct {
	Title         string `json:"title"`
	URL           string `json:"url"`
	TypeLabel     string `json:"typeLabel"`
	DatePublished string `json:"datePublished,omitempty"`
}

type OrganizationDTO struct {
	Role string `json:"role"`
	Name string `json:"name"`
	ID   string `json:"id"`
}

type ReferenceDTO struct {
	Facts         site.Facts         `json:"facts"`
	Entity        site.Entity        `json:"entity"`
	ImagePath     string             `json:"imagePath"`
	Works         []ReferenceWorkDTO `json:"works"`
	Organizations []OrganizationDTO  `json:"organizations"`
	FeedURL       string             `json:"feedUrl"`
	SitemapURL    string             `json:"sitemapUrl"`
}

type ContactSection struct {
	Heading string `json:"heading"`
	Text    string `json:"text"`
}

type ContactDTO struct {
	Email    string           `json:"email"`
	Sections []ContactSection `json:"sections"`
}
