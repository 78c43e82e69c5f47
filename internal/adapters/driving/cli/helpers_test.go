package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stencil-labs/stencil-cli/internal/adapters/driven/catalog/embedded"
	"github.com/stencil-labs/stencil-cli/internal/core/domain"
	"github.com/stencil-labs/stencil-cli/internal/core/services"
)

// setupTestServices wires the services from the embedded catalog so
// commands can execute without touching the user's config.
func setupTestServices(t *testing.T) {
	t.Helper()

	source := embedded.NewSource()
	lib, err := services.BuildLibrary(context.Background(), source)
	require.NoError(t, err)

	searchService = services.NewSearchService(lib, domain.DefaultRankingConfig(), domain.DefaultBoostConfig())
	designService = services.NewDesignSystemService(searchService, domain.DefaultBoostConfig())
	snippetSource = source

	t.Cleanup(func() {
		searchService = nil
		designService = nil
		snippetSource = nil
	})
}

// execute runs the root command with args and captures its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return buf.String(), err
}
