package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stencil-labs/stencil-cli/internal/adapters/driven/catalog/sqlite"
)

var importDatabase string

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import the current catalog into a SQLite database",
	Long: `Copies every record of the configured catalog source into a SQLite
database, replacing its contents. Point catalog.source at "sqlite" in
the config afterwards to serve from it.`,
	Args: cobra.NoArgs,
	RunE: runImport,
}

func init() {
	importCmd.Flags().StringVar(&importDatabase, "database", "", "destination database path (required)")
	importCmd.MarkFlagRequired("database") //nolint:errcheck
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, _ []string) error {
	dst, err := sqlite.NewSource(importDatabase)
	if err != nil {
		return err
	}
	defer dst.Close()

	n, err := dst.ImportFrom(cmd.Context(), snippetSource)
	if err != nil {
		return fmt.Errorf("importing catalog: %w", err)
	}

	cmd.Printf("Imported %d snippets into %s\n", n, importDatabase)
	return nil
}
