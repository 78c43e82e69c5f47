package rank

import (
	"math"
	"sort"

	"github.com/stencil-labs/stencil-cli/internal/core/domain"
)

// BM25 tuning constants. Standard values; fixed, not configurable per
// call.
const (
	// k1 controls term frequency saturation.
	k1 = 1.5

	// b controls document length normalisation.
	b = 0.75
)

// indexedDoc caches the tokenized representation of one document.
type indexedDoc struct {
	doc domain.Document

	// tf maps each term to its frequency within the document.
	tf map[string]int

	// length is the token count of the document content.
	length int
}

// Index is an in-memory BM25 index over a fixed document collection.
// All derived state (document frequencies, average document length,
// per-document token caches) is computed once at construction and never
// mutated. Safe for concurrent reads.
type Index struct {
	docs []indexedDoc

	// df maps each term to the number of documents containing it at
	// least once (document frequency, not term frequency).
	df map[string]int

	// avgDocLen is the mean token count, floored to 1 to avoid
	// division by zero.
	avgDocLen float64
}

// Hit is one scored document returned by Search.
type Hit struct {
	Document domain.Document
	Score    float64
}

// NewIndex builds an index over docs in a single pass. A zero-document
// collection has no index representation: NewIndex returns nil, and
// every caller must check for absence before searching.
func NewIndex(docs []domain.Document) *Index {
	if len(docs) == 0 {
		return nil
	}

	idx := &Index{
		docs: make([]indexedDoc, 0, len(docs)),
		df:   make(map[string]int),
	}

	totalLen := 0
	for _, doc := range docs {
		tokens := Tokenize(doc.Content)
		tf := make(map[string]int, len(tokens))
		for _, t := range tokens {
			tf[t]++
		}
		for term := range tf {
			idx.df[term]++
		}
		idx.docs = append(idx.docs, indexedDoc{doc: doc, tf: tf, length: len(tokens)})
		totalLen += len(tokens)
	}

	idx.avgDocLen = float64(totalLen) / float64(len(docs))
	if idx.avgDocLen == 0 {
		idx.avgDocLen = 1
	}

	return idx
}

// Len returns the number of indexed documents.
func (idx *Index) Len() int {
	return len(idx.docs)
}

// Documents returns the indexed documents in input order.
func (idx *Index) Documents() []domain.Document {
	out := make([]domain.Document, len(idx.docs))
	for i := range idx.docs {
		out[i] = idx.docs[i].doc
	}
	return out
}

// idf computes the inverse document frequency for a term:
// ln((N - df + 0.5) / (df + 0.5) + 1). The trailing +1 inside the log
// keeps the value non-negative for terms present in most documents.
func (idx *Index) idf(term string) float64 {
	n := float64(len(idx.docs))
	df := float64(idx.df[term])
	return math.Log((n-df+0.5)/(df+0.5) + 1)
}

// score computes the BM25 score of one document against the query
// terms. Terms absent from the document contribute 0; they are never
// penalised negatively.
func (idx *Index) score(queryTerms []string, d indexedDoc) float64 {
	var score float64
	lengthNorm := k1 * (1 - b + b*float64(d.length)/idx.avgDocLen)

	for _, term := range queryTerms {
		tf := float64(d.tf[term])
		if tf == 0 {
			continue
		}
		score += idx.idf(term) * (tf * (k1 + 1)) / (tf + lengthNorm)
	}

	return score
}

// Search scores query against every document and returns hits with a
// positive score, sorted by score descending with ties broken by input
// order, truncated to maxResults. A maxResults <= 0 means unlimited;
// the validation boundary never passes it, but internal callers may.
// An empty or unscorable query returns an empty slice; no error is
// raised for empty results.
func (idx *Index) Search(query string, maxResults int) []Hit {
	queryTerms := Tokenize(query)
	if len(queryTerms) == 0 {
		return nil
	}

	hits := make([]Hit, 0, len(idx.docs))
	for _, d := range idx.docs {
		if s := idx.score(queryTerms, d); s > 0 {
			hits = append(hits, Hit{Document: d.doc, Score: s})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Score > hits[j].Score
	})

	if maxResults > 0 && len(hits) > maxResults {
		hits = hits[:maxResults]
	}

	return hits
}
