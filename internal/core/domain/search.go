package domain

// Search input limits. Queries and result counts outside these bounds
// are rejected at the validation boundary before reaching the ranker.
const (
	// MaxQueryLength is the longest accepted query, in bytes.
	MaxQueryLength = 500

	// MaxSearchResults is the largest accepted maxResults value.
	MaxSearchResults = 50

	// DefaultSearchResults is used when the caller does not ask
	// for a specific result count.
	DefaultSearchResults = 3
)

// SearchRequest is a validated, expanded search query. It is produced
// by the validation boundary; untyped caller input never reaches the
// ranking core directly.
type SearchRequest struct {
	// Query is the original query, preserved for display.
	Query string

	// ExpandedQuery is the query with domain-synonym expansion text
	// appended. It is what actually gets scored.
	ExpandedQuery string

	// MaxResults is the clamped result count.
	MaxResults int
}

// SearchResult represents a single search hit.
type SearchResult struct {
	// Document is the matched snippet document.
	Document Document

	// Score is the relevance score. After platform boosting it is the
	// adjusted score, not the raw BM25 value.
	Score float64

	// DetectedDomain is the top classified domain for the query, if any.
	// Attached for transparency to the caller.
	DetectedDomain string

	// DetectedStack is the framework inferred from the query, if any.
	DetectedStack string
}
