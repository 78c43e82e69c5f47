// Package cli implements the stencil command-line interface.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stencil-labs/stencil-cli/internal/adapters/driven/catalog/csvdir"
	"github.com/stencil-labs/stencil-cli/internal/adapters/driven/catalog/embedded"
	"github.com/stencil-labs/stencil-cli/internal/adapters/driven/catalog/sqlite"
	"github.com/stencil-labs/stencil-cli/internal/adapters/driven/config/file"
	"github.com/stencil-labs/stencil-cli/internal/core/ports/driven"
	"github.com/stencil-labs/stencil-cli/internal/core/ports/driving"
	"github.com/stencil-labs/stencil-cli/internal/core/services"
	"github.com/stencil-labs/stencil-cli/internal/logger"
)

var (
	version = "dev"

	verboseFlag bool
	configFlag  string

	cfg file.Config

	// searchService is concrete so the watcher can Reload it.
	searchService *services.SearchService
	designService driving.DesignSystemService

	// snippetSource feeds library rebuilds.
	snippetSource driven.SnippetSource

	// watchDir is the directory the --watch flag observes, empty for
	// the embedded catalog.
	watchDir string
)

var rootCmd = &cobra.Command{
	Use:   "stencil",
	Short: "Keyword search over a curated UI/UX design snippet library",
	Long: `Stencil serves a curated library of UI/UX design snippets: styles,
color palettes, typography pairings, chart patterns, UX guidelines,
layouts and framework-specific advice, searchable by keyword and
exposed to AI assistants over MCP.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		logger.SetVerbose(verboseFlag)
		return initServices(cmd.Context())
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "verbose logging to stderr")
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "config file (default ~/.stencil/config.toml)")
}

// Execute runs the root command.
func Execute(v string) error {
	version = v
	return rootCmd.Execute()
}

// initServices loads configuration and builds the library and
// services. Tests inject their own services and skip this.
func initServices(ctx context.Context) error {
	if searchService != nil {
		return nil
	}

	path := configFlag
	if path == "" {
		var err error
		path, err = file.DefaultPath()
		if err != nil {
			return err
		}
	}

	var err error
	cfg, err = file.Load(path)
	if err != nil {
		return err
	}

	snippetSource, watchDir, err = openSource(cfg)
	if err != nil {
		return err
	}

	lib, err := services.BuildLibrary(ctx, snippetSource)
	if err != nil {
		return fmt.Errorf("building snippet library: %w", err)
	}

	searchService = services.NewSearchService(lib, cfg.ResolveRanking(), cfg.ResolveBoost())
	designService = services.NewDesignSystemService(searchService, cfg.ResolveBoost())
	return nil
}

// openSource constructs the configured snippet source and the
// directory to watch for changes, if any.
func openSource(cfg file.Config) (driven.SnippetSource, string, error) {
	kind, err := cfg.CatalogSource()
	if err != nil {
		return nil, "", err
	}

	switch kind {
	case file.SourceCSV:
		return csvdir.NewSource(cfg.Catalog.Dir), cfg.Catalog.Dir, nil
	case file.SourceSQLite:
		src, err := sqlite.NewSource(cfg.Catalog.Database)
		if err != nil {
			return nil, "", err
		}
		return src, "", nil
	default:
		return embedded.NewSource(), "", nil
	}
}
