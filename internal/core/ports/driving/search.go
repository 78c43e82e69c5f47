package driving

import (
	"context"

	"github.com/stencil-labs/stencil-cli/internal/core/domain"
)

// SearchService provides keyword search over the snippet library to
// external actors.
type SearchService interface {
	// SearchAll searches the unified index across every domain,
	// reranking results according to the detected domains.
	SearchAll(ctx context.Context, query string, maxResults int) ([]domain.SearchResult, error)

	// SearchDomain searches one domain's index.
	SearchDomain(ctx context.Context, d domain.Domain, query string, maxResults int) ([]domain.SearchResult, error)

	// SearchStack searches the guideline index of one framework stack.
	// Unknown stack names fail with an error enumerating the valid set.
	SearchStack(ctx context.Context, stack, query string, maxResults int) ([]domain.SearchResult, error)

	// SearchPlatform searches one platform guideline set. Unknown
	// platform names fail with an error enumerating the valid set.
	SearchPlatform(ctx context.Context, platform, query string, maxResults int) ([]domain.SearchResult, error)

	// DetectDomains exposes the domain classifier.
	DetectDomains(query string) []domain.DomainMatch

	// DetectPlatform exposes the platform classifier.
	DetectPlatform(query string) domain.PlatformIntent

	// ClassifyPageIntent exposes the page-intent classifier.
	ClassifyPageIntent(query string) domain.PageIntent

	// DomainCounts reports the number of indexed documents per domain.
	DomainCounts() map[domain.Domain]int

	// Snippet returns one indexed document by domain and ID.
	Snippet(d domain.Domain, id string) (domain.Document, error)
}

// DesignSystemService composes a full design-system bundle for a query.
type DesignSystemService interface {
	// Build runs the per-domain searches and assembles the bundle.
	Build(ctx context.Context, req domain.DesignSystemRequest) (domain.DesignSystem, error)
}
