package driven

import (
	"context"

	"github.com/stencil-labs/stencil-cli/internal/core/domain"
)

// SnippetSource supplies the raw snippet records the library is built
// from. Sources are read once at library construction; there is no
// incremental update path.
type SnippetSource interface {
	// Load yields every snippet record, each tagged with its domain.
	// An empty result is not an error at this level; the library
	// construction decides whether it can serve.
	Load(ctx context.Context) ([]domain.Snippet, error)
}
