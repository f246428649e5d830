package content

import (
	"fmt"

	"entity-hub/internal/domain/jsonld"
	"entity-hub/internal/domain/site"
	"entity-hub/internal/domain/works"
	"entity-hub/internal/infra/textclean"

	"github.com/rs/zerolog/log"
)

// Process-wide read-only content, set once by Init before serving.
var (
	SiteURL   string
	Catalog   *works.Catalog
	Projector *jsonld.Projector
	Entity    site.Entity
	Facts     site.Facts
)

func Init(siteURL string) error {
	return InitWith(siteURL, works.Default())
}

// InitWith is Init with a caller-supplied catalog.
func InitWith(siteURL string, catalog *works.Catalog) error {
	if catalog == nil {
		return fmt.Errorf("catalog is nil")
	}
	base := site.NormalizeURL(siteURL)
	if base == "" {
		return fmt.Errorf("site URL is empty")
	}

	p := jsonld.New(base)
	p.Text = textclean.Plain

	SiteURL = base
	Catalog = catalog
	Projector = p
	Entity = p.Entity
	Facts = site.NewFacts(base)

	log.Info().
		Str("site_url", base).
		Int("works", catalog.Len()).
		Int("released", len(catalog.Released())).
		Msg("Content loaded")
	return nil
}
