package jsonld

// Context is the @context of every object this package produces.
const Context = "https://schema.org"

// Ref points at an object described elsewhere, usually the entity.
type Ref struct {
	ID string `json:"@id"`
}

type Organization struct {
	Context string `json:"@context,omitempty"`
	Type    string `json:"@type"`
	ID      string `json:"@id,omitempty"`
	Name    string `json:"name"`
	Founder *Ref   `json:"founder,omitempty"`
}

type Person struct {
	Context       string         `json:"@context"`
	Type          string         `json:"@type"`
	ID            string         `json:"@id"`
	Name          string         `json:"name"`
	AlternateName string         `json:"alternateName,omitempty"`
	URL           string         `json:"url"`
	Image         string         `json:"image,omitempty"`
	JobTitle      []string       `json:"jobTitle,omitempty"`
	SameAs        []string       `json:"sameAs,omitempty"`
	WorksFor      *Organization  `json:"worksFor,omitempty"`
	Publisher     []Organization `json:"publisher,omitempty"`
	Description   string         `json:"description,omitempty"`
}

type EntryPoint struct {
	Type        string `json:"@type"`
	URLTemplate string `json:"urlTemplate"`
}

type SearchAction struct {
	Type       string     `json:"@type"`
	Target     EntryPoint `json:"target"`
	QueryInput string     `json:"query-input"`
}

type WebSite struct {
	Context         string        `json:"@context"`
	Type            string        `json:"@type"`
	ID              string        `json:"@id"`
	Name            string        `json:"name"`
	AlternateName   string        `json:"alternateName,omitempty"`
	URL             string        `json:"url"`
	Publisher       Ref           `json:"publisher"`
	PotentialAction *SearchAction `json:"potentialAction,omitempty"`
}

// WebSiteRef is the inline form used by isPartOf.
type WebSiteRef struct {
	Type string `json:"@type"`
	ID   string `json:"@id,omitempty"`
	URL  string `json:"url"`
}

type PropertyValue struct {
	Type       string `json:"@type"`
	PropertyID string `json:"propertyID"`
	Value      string `json:"value"`
}

type Offer struct {
	Type          string `json:"@type"`
	URL           string `json:"url"`
	Price         string `json:"price,omitempty"`
	PriceCurrency string `json:"priceCurrency,omitempty"`
	Availability  string `json:"availability,omitempty"`
}

type Book struct {
	Context       string         `json:"@context"`
	Type          string         `json:"@type"`
	Name          string         `json:"name"`
	Description   string         `json:"description,omitempty"`
	URL           string         `json:"url"`
	Author        Ref            `json:"author"`
	Publisher     *Ref           `json:"publisher,omitempty"`
	DatePublished string         `json:"datePublished,omitempty"`
	Image         string         `json:"image,omitempty"`
	Identifier    *PropertyValue `json:"identifier,omitempty"`
	Offers        *Offer         `json:"offers,omitempty"`
}

type MusicAlbum struct {
	Context       string         `json:"@context"`
	Type          string         `json:"@type"`
	Name          string         `json:"name"`
	Description   string         `json:"description,omitempty"`
	URL           string         `json:"url"`
	ByArtist      Ref            `json:"byArtist"`
	Publisher     *Ref           `json:"publisher,omitempty"`
	DatePublished string         `json:"datePublished,omitempty"`
	Image         string         `json:"image,omitempty"`
	Identifier    *PropertyValue `json:"identifier,omitempty"`
}

type SoftwareApplication struct {
	Context             string `json:"@context"`
	Type                string `json:"@type"`
	Name                string `json:"name"`
	Description         string `json:"description,omitempty"`
	URL                 string `json:"url"`
	Creator             Ref    `json:"creator"`
	DatePublished       string `json:"datePublished,omitempty"`
	Image               string `json:"image,omitempty"`
	ApplicationCategory string `json:"applicationCategory,omitempty"`
	OperatingSystem     string `json:"operatingSystem,omitempty"`
	Offers              *Offer `json:"offers,omitempty"`
}

type Movie struct {
	Context       string   `json:"@context"`
	Type          string   `json:"@type"`
	Name          string   `json:"name"`
	DatePublished string   `json:"datePublished,omitempty"`
	URL           string   `json:"url,omitempty"`
	Actor         Ref      `json:"actor"`
	SameAs        []string `json:"sameAs,omitempty"`
}

type ImageObject struct {
	Context    string `json:"@context"`
	Type       string `json:"@type"`
	ContentURL string `json:"contentUrl"`
	Caption    string `json:"caption,omitempty"`
}

type AboutPage struct {
	Context    string `json:"@context"`
	Type       string `json:"@type"`
	URL        string `json:"url,omitempty"`
	MainEntity Ref    `json:"mainEntity"`
}

type WebPage struct {
	Context     string      `json:"@context"`
	Type        string      `json:"@type"`
	Name        string      `json:"name,omitempty"`
	Description string      `json:"description,omitempty"`
	URL         string      `json:"url,omitempty"`
	About       Ref         `json:"about"`
	IsPartOf    *WebSiteRef `json:"isPartOf,omitempty"`
}

// ProfilePage.HasPart holds Book, MusicAlbum and SoftwareApplication values.
type ProfilePage struct {
	Context    string `json:"@context"`
	Type       string `json:"@type"`
	URL        string `json:"url,omitempty"`
	MainEntity Ref    `json:"mainEntity"`
	HasPart    []any  `json:"hasPart"`
}

type DataDownload struct {
	Type           string `json:"@type"`
	EncodingFormat string `json:"encodingFormat"`
	ContentURL     string `json:"contentUrl"`
}

type Dataset struct {
	Context      string         `json:"@context"`
	Type         string         `json:"@type"`
	Name         string         `json:"name"`
	Description  string         `json:"description"`
	URL          string         `json:"url"`
	License      string         `json:"license,omitempty"`
	Creator      Ref            `json:"creator"`
	About        Ref            `json:"about"`
	Distribution []DataDownload `json:"distribution,omitempty"`
}
