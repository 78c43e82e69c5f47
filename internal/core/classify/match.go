package classify

import (
	"regexp"
	"strings"
)

// signature is one weighted keyword or phrase in a classifier table.
// Weights live in [0,1].
type signature struct {
	keyword string
	weight  float64
}

// wordPatterns holds precompiled word-boundary patterns for every
// single-word keyword in the static tables. Built once in init and
// read-only afterwards.
var wordPatterns = map[string]*regexp.Regexp{}

func init() {
	register := func(keyword string) {
		if strings.Contains(keyword, " ") {
			return // phrases match by substring, no pattern needed
		}
		if _, ok := wordPatterns[keyword]; !ok {
			wordPatterns[keyword] = boundaryPattern(keyword)
		}
	}

	for _, entry := range domainTable {
		for _, sig := range entry.signatures {
			register(sig.keyword)
		}
	}
	for _, entry := range platformTable {
		for _, sig := range entry.signatures {
			register(sig.keyword)
		}
	}
	for _, sig := range intentWords {
		register(sig.keyword)
	}
	for _, fw := range frameworkSignatures {
		register(fw.keyword)
	}
}

// boundaryPattern compiles a word-boundary pattern for a single-word
// keyword. Special characters in the keyword are escaped first.
func boundaryPattern(keyword string) *regexp.Regexp {
	return regexp.MustCompile(`\b` + regexp.QuoteMeta(keyword) + `\b`)
}

// matchKeyword reports whether a keyword matches the lowercased query.
// Multi-word phrases match as substrings; single words must match at a
// word boundary so that e.g. "bar" never matches inside "sidebar".
func matchKeyword(queryLower, keyword string) bool {
	if strings.Contains(keyword, " ") {
		return strings.Contains(queryLower, keyword)
	}
	pattern, ok := wordPatterns[keyword]
	if !ok {
		pattern = boundaryPattern(keyword)
	}
	return pattern.MatchString(queryLower)
}
