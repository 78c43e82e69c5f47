// Package rank implements the keyword relevance core: a tokenizer and
// an in-memory BM25 index. Indexes are built once from a fixed document
// collection and are immutable afterwards; rebuilding means
// constructing a new index.
package rank
