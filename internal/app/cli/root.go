// Package cli wires the entity-hub commands.
package cli

import (
	"entity-hub/config"
	"entity-hub/content"
	"entity-hub/internal/infra/logger"

	"github.com/spf13/cobra"
)

// NewRootCommand returns the entity-hub command tree. Running it without
// a subcommand serves the site.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "entity-hub",
		Short: "Official entity hub for Camryn Jackson (Campaigne)",
		Long: `entity-hub serves the canonical site for Camryn Jackson (Campaigne):
server-rendered pages with schema.org structured data, a works index
feed, a sitemap and robots.txt.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config.LoadEnv()
			logger.Init(config.APP_ENV, config.LOG_LEVEL)
			return content.Init(config.SITE_URL)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context())
		},
	}

	root.AddCommand(newServeCommand(), newExportCommand())
	return root
}
