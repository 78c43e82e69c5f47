// Package classify implements the query-understanding layer: weighted
// keyword classifiers for domain, platform and page intent, plus query
// expansion and input validation.
//
// All classifier output is produced fresh per query from static
// signature tables; nothing here reads or mutates index state.
package classify
