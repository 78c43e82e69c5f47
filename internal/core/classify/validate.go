package classify

import (
	"fmt"
	"strings"

	"github.com/stencil-labs/stencil-cli/internal/core/domain"
)

// ValidateQuery is the validation boundary between untyped caller
// input and the ranking core. It rejects empty, oversized or
// out-of-range input and on success returns the original query (for
// display), the expanded query (for scoring) and the clamped result
// count. A maxResults of 0 means "not specified" and defaults.
func ValidateQuery(query string, maxResults int) (domain.SearchRequest, error) {
	if strings.TrimSpace(query) == "" {
		return domain.SearchRequest{}, fmt.Errorf("%w: query must not be empty", domain.ErrInvalidInput)
	}
	if len(query) > domain.MaxQueryLength {
		return domain.SearchRequest{}, fmt.Errorf("%w: query exceeds %d characters", domain.ErrInvalidInput, domain.MaxQueryLength)
	}

	if maxResults == 0 {
		maxResults = domain.DefaultSearchResults
	}
	if maxResults < 1 {
		return domain.SearchRequest{}, fmt.Errorf("%w: maxResults must be at least 1", domain.ErrInvalidInput)
	}
	if maxResults > domain.MaxSearchResults {
		return domain.SearchRequest{}, fmt.Errorf("%w: maxResults must not exceed %d", domain.ErrInvalidInput, domain.MaxSearchResults)
	}

	return domain.SearchRequest{
		Query:         query,
		ExpandedQuery: ExpandQuery(query),
		MaxResults:    maxResults,
	}, nil
}
