package jsonld

import (
	"encoding/json"
	"strings"
	"testing"

	"entity-hub/internal/domain/works"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSite = "https://example.com"

func decode(t *testing.T, v any) map[string]any {
	t.Helper()
	b, err := Marshal(v)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	return m
}

func refID(t *testing.T, v any) string {
	t.Helper()
	m, ok := v.(map[string]any)
	require.True(t, ok, "expected a reference object, got %T", v)
	require.Len(t, m, 1, "reference must only carry @id")
	return m["@id"].(string)
}

func sampleWorks() []works.Work {
	return []works.Work{
		{Slug: "tales-of-time", Title: "Tales of Time", Type: works.TypeBook, Status: works.StatusReleased, DatePublished: "2024-01-15", Identifiers: works.Identifiers{ISBN: "978-0000000000"}},
		{Slug: "pneuma", Title: "PNEUMA", Type: works.TypeAlbum, Status: works.StatusReleased},
		{Slug: "origen", Title: "ORIGEN", Type: works.TypeApp, Status: works.StatusReleased, PrimaryCTA: &works.Link{Label: "Get", URL: "https://apps.apple.com/x"}},
		{Slug: "bonus-trip", Title: "Bonus Trip", Type: works.TypeFilm, Status: works.StatusReleased},
	}
}

func TestEveryObjectHasContextAndType(t *testing.T) {
	p := New(testSite)
	ws := sampleWorks()
	objs := []any{
		p.Person(), p.Organization(), p.WebSite(),
		p.Book(ws[0]), p.MusicAlbum(ws[1]), p.SoftwareApplication(ws[2]),
		p.ProfilePage(ws), p.ImageObject("/images/a b.jpg", "A"),
		p.Movie(works.Credits()[0]), p.AboutPage(), p.WebPage("/acting"),
		p.DisambiguationPage(), p.Dataset(),
	}
	for _, o := range objs {
		m := decode(t, o)
		assert.Equal(t, Context, m["@context"], "%T", o)
		assert.NotEmpty(t, m["@type"], "%T", o)
	}
}

func TestEntityReferencesUseEntityID(t *testing.T) {
	p := New(testSite + "/")
	id := testSite + "#campaigne"
	ws := sampleWorks()

	assert.Equal(t, id, decode(t, p.Person())["@id"])
	assert.Equal(t, id, refID(t, decode(t, p.Organization())["founder"]))
	assert.Equal(t, id, refID(t, decode(t, p.WebSite())["publisher"]))
	assert.Equal(t, id, refID(t, decode(t, p.Book(ws[0]))["author"]))
	assert.Equal(t, id, refID(t, decode(t, p.MusicAlbum(ws[1]))["byArtist"]))
	assert.Equal(t, id, refID(t, decode(t, p.SoftwareApplication(ws[2]))["creator"]))
	assert.Equal(t, id, refID(t, decode(t, p.ProfilePage(ws))["mainEntity"]))
	assert.Equal(t, id, refID(t, decode(t, p.Movie(works.Credits()[0]))["actor"]))
	assert.Equal(t, id, refID(t, decode(t, p.AboutPage())["mainEntity"]))
	assert.Equal(t, id, refID(t, decode(t, p.WebPage(""))["about"]))
	assert.Equal(t, id, refID(t, decode(t, p.Dataset())["creator"]))
}

func TestBook(t *testing.T) {
	p := New(testSite)
	m := decode(t, p.Book(sampleWorks()[0]))

	assert.Equal(t, "Book", m["@type"])
	assert.Equal(t, testSite+"/books/tales-of-time", m["url"])
	assert.Equal(t, "2024-01-15", m["datePublished"])
	assert.Equal(t, testSite+"#org-scribes-publishing", refID(t, m["publisher"]))

	ident := m["identifier"].(map[string]any)
	assert.Equal(t, "ISBN", ident["propertyID"])
	assert.Equal(t, "978-0000000000", ident["value"])
}

func TestOptionalFieldsAreOmitted(t *testing.T) {
	p := New(testSite)
	bare := works.Work{Slug: "bare", Title: "Bare", Type: works.TypeBook}

	b, err := Marshal(p.Book(bare))
	require.NoError(t, err)
	assert.NotContains(t, string(b), "null")

	m := decode(t, p.Book(bare))
	for _, key := range []string{"identifier", "offers", "datePublished", "image"} {
		assert.NotContains(t, m, key)
	}

	app := decode(t, p.SoftwareApplication(works.Work{Slug: "a", Type: works.TypeApp}))
	assert.NotContains(t, app, "offers")
}

func TestSoftwareApplicationOffer(t *testing.T) {
	m := decode(t, New(testSite).SoftwareApplication(sampleWorks()[2]))
	offer := m["offers"].(map[string]any)
	assert.Equal(t, "0", offer["price"])
	assert.Equal(t, "USD", offer["priceCurrency"])
	assert.Equal(t, "iOS", m["operatingSystem"])
}

func TestProfilePageSkipsUnschematizedTypes(t *testing.T) {
	p := New(testSite)
	m := decode(t, p.ProfilePage(sampleWorks()))

	parts := m["hasPart"].([]any)
	require.Len(t, parts, 3)
	types := make([]string, 0, len(parts))
	for _, part := range parts {
		types = append(types, part.(map[string]any)["@type"].(string))
	}
	assert.Equal(t, []string{"Book", "MusicAlbum", "SoftwareApplication"}, types)
	assert.Equal(t, testSite+"/press", m["url"])

	_, ok := p.ForWork(sampleWorks()[3])
	assert.False(t, ok)
}

func TestProjectionIsDeterministic(t *testing.T) {
	p := New(testSite)
	ws := sampleWorks()
	for _, build := range []func() any{
		func() any { return p.Person() },
		func() any { return p.WebSite() },
		func() any { return p.ProfilePage(ws) },
		func() any { return p.Dataset() },
	} {
		first, err := Marshal(build())
		require.NoError(t, err)
		second, err := Marshal(build())
		require.NoError(t, err)
		assert.Equal(t, first, second)
	}
}

func TestMarshalEscapesScriptBreakout(t *testing.T) {
	p := New(testSite)
	w := works.Work{Slug: "x", Type: works.TypeBook, LongDescription: "</script><b>bold</b>"}

	b, err := Marshal(p.Book(w))
	require.NoError(t, err)
	assert.NotContains(t, string(b), "</script>")

	p.Text = func(s string) string { return strings.ToUpper(s) }
	assert.Equal(t, "</SCRIPT><B>BOLD</B>", p.Book(w).Description)
}

func TestImageObjectEscapesPath(t *testing.T) {
	img := New(testSite).ImageObject("/images/photos/Campaigne - Headshot.JPG", "Headshot")
	assert.Equal(t, testSite+"/images/photos/Campaigne%20-%20Headshot.JPG", img.ContentURL)
	assert.Equal(t, "Headshot", img.Caption)
}

func TestDisambiguationPage(t *testing.T) {
	m := decode(t, New(testSite).DisambiguationPage())
	assert.Equal(t, "WebPage", m["@type"])
	assert.Equal(t, testSite+"/disambiguation", m["url"])
	part := m["isPartOf"].(map[string]any)
	assert.Equal(t, "WebSite", part["@type"])
	assert.Equal(t, testSite, part["url"])
}
