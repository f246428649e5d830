package site

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeSlug(t *testing.T) {
	tests := map[string]string{
		"144: A New Dawn":          "144-a-new-dawn",
		"PNEUMA: Echoes of Breath": "pneuma-echoes-of-breath",
		"  Tales   of Time  ":      "tales-of-time",
		"???":                      "work",
	}
	for in, want := range tests {
		got := MakeSlug(in)
		assert.Equal(t, want, got, in)
		assert.True(t, IsSlug(got), got)
	}
}

func TestIsSlug(t *testing.T) {
	assert.True(t, IsSlug("origen"))
	assert.False(t, IsSlug(""))
	assert.False(t, IsSlug("-lead"))
	assert.False(t, IsSlug("double--dash"))
	assert.False(t, IsSlug("Upper"))
}

func TestBuildPublicURL(t *testing.T) {
	assert.Equal(t, "https://x.com", BuildPublicURL("https://x.com/", "/"))
	assert.Equal(t, "https://x.com/about", BuildPublicURL("https://x.com", "about"))
	assert.Equal(t, "https://x.com/images/a%20b.jpg", AssetURL("https://x.com", "/images/a b.jpg"))
	assert.Equal(t, "x.com/a", DisplayURL("https://x.com/a"))
}

func TestRobotsDirectives(t *testing.T) {
	r := DefaultRobots()
	assert.Equal(t, "index, follow", r.Meta())
	assert.Equal(t, "index, follow, max-video-preview:-1, max-image-preview:large, max-snippet:-1", r.GoogleBot())

	r.NoIndex = true
	assert.Equal(t, "noindex, follow", r.Meta())
}

func TestSortSocialLinks(t *testing.T) {
	links := []SocialLink{
		{Label: "c", Order: 3},
		{Label: "a", Order: 1},
		{Label: "b1", Order: 2},
		{Label: "b2", Order: 2},
	}
	got := SortSocialLinks(links)

	labels := make([]string, 0, len(got))
	for _, l := range got {
		labels = append(labels, l.Label)
	}
	assert.Equal(t, []string{"a", "b1", "b2", "c"}, labels)
	assert.Equal(t, "c", links[0].Label, "input must not be reordered")

	sorted := SortedSocialLinks()
	require.NotEmpty(t, sorted)
	assert.Equal(t, "TikTok", sorted[0].Label)
}

func TestNewEntity(t *testing.T) {
	e := NewEntity("https://x.com/")

	assert.Equal(t, "https://x.com#campaigne", e.ID)
	assert.Equal(t, EntityID("https://x.com"), e.ID)
	assert.Equal(t, "https://x.com", e.URL)
	assert.Equal(t, LinktreeURL, e.SameAs[len(e.SameAs)-1])
	assert.Len(t, e.SameAs, len(SortedSocialLinks())+1)
	assert.NotContains(t, e.Image, " ")
	assert.True(t, strings.HasPrefix(e.Image, "https://x.com/images/"))

	pub, ok := e.Publisher("The Scribes Publishing")
	require.True(t, ok)
	assert.Equal(t, "https://x.com#org-scribes-publishing", pub.ID)

	_, ok = e.Publisher("Nobody")
	assert.False(t, ok)
}

func TestNewFacts(t *testing.T) {
	f := NewFacts("https://x.com/")
	assert.Equal(t, "https://x.com", f.OfficialWebsite)
	assert.Equal(t, EntityName, f.LegalName)
	assert.Equal(t, EntityAlternateName, f.ProfessionalName)
}

func TestBioParagraphs(t *testing.T) {
	b := GetBio()
	assert.Len(t, Paragraphs(b.Short), 1)
	assert.Len(t, Paragraphs(b.Medium), 2)
	assert.Len(t, Paragraphs(b.Long), 5)
}
