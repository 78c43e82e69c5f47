// Package embedded serves the snippet catalog compiled into the
// binary, so `stencil` works out of the box with no data directory.
package embedded

import (
	"context"
	"embed"
	"io/fs"

	"github.com/stencil-labs/stencil-cli/internal/adapters/driven/catalog/csvdir"
	"github.com/stencil-labs/stencil-cli/internal/core/domain"
	"github.com/stencil-labs/stencil-cli/internal/core/ports/driven"
)

//go:embed data/*.csv
var dataFS embed.FS

// Ensure Source implements the interface.
var _ driven.SnippetSource = (*Source)(nil)

// Source is the built-in snippet catalog.
type Source struct {
	fsys fs.FS
}

// NewSource creates a source over the embedded catalog.
func NewSource() *Source {
	sub, err := fs.Sub(dataFS, "data")
	if err != nil {
		// The data directory is compiled in; Sub can only fail on a bad
		// path literal.
		panic(err)
	}
	return &Source{fsys: sub}
}

// Load reads the embedded per-domain CSV files.
func (s *Source) Load(ctx context.Context) ([]domain.Snippet, error) {
	return csvdir.LoadFS(ctx, s.fsys)
}
