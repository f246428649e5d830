package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"entity-hub/content"
	"entity-hub/internal/api/seo"
	worksapi "entity-hub/internal/api/works"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newExportCommand() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write works-index.json, sitemap.xml and robots.txt to a directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			return Export(out, time.Now())
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "public", "Output directory")
	return cmd
}

// Export writes the machine-readable files for static hosting.
func Export(dir string, now time.Time) error {
	index, err := worksapi.EncodeIndex(content.Catalog, content.SiteURL)
	if err != nil {
		return fmt.Errorf("encode works index: %w", err)
	}
	sitemap, err := seo.EncodeSitemap(seo.BuildSitemap(content.Catalog, content.SiteURL, now))
	if err != nil {
		return fmt.Errorf("encode sitemap: %w", err)
	}

	files := []struct {
		name string
		body []byte
	}{
		{"works-index.json", index},
		{"sitemap.xml", sitemap},
		{"robots.txt", []byte(seo.BuildRobots(content.SiteURL))},
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for _, f := range files {
		path := filepath.Join(dir, f.name)
		if err := os.WriteFile(path, f.body, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		log.Info().Str("file", path).Int("bytes", len(f.body)).Msg("Exported")
	}
	return nil
}
