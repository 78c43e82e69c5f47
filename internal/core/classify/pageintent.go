package classify

import (
	"math"
	"strings"

	"github.com/stencil-labs/stencil-cli/internal/core/domain"
)

// intentSignature is one weighted keyword or phrase mapped to a page
// intent.
type intentSignature struct {
	keyword string
	intent  string
	weight  float64
}

// intentPhrases are scanned first; a phrase match always beats any
// single-word match. "landing page dashboard" therefore classifies as
// landing, not dashboard.
var intentPhrases = []intentSignature{
	{"landing page", domain.IntentLanding, 0.9},
	{"analytics dashboard", domain.IntentDashboard, 0.9},
	{"admin dashboard", domain.IntentDashboard, 0.9},
	{"home page", domain.IntentLanding, 0.85},
	{"hero section", domain.IntentLanding, 0.85},
	{"admin panel", domain.IntentDashboard, 0.85},
	{"marketing page", domain.IntentLanding, 0.8},
	{"control panel", domain.IntentDashboard, 0.8},
	{"settings page", domain.IntentPage, 0.75},
	{"profile page", domain.IntentPage, 0.7},
	{"detail page", domain.IntentPage, 0.7},
	{"data table", domain.IntentDashboard, 0.6},
}

// intentWords are only consulted when no phrase matched, scanned
// left-to-right by token position.
var intentWords = []intentSignature{
	{"dashboard", domain.IntentDashboard, 0.9},
	{"landing", domain.IntentLanding, 0.85},
	{"homepage", domain.IntentLanding, 0.8},
	{"hero", domain.IntentLanding, 0.7},
	{"admin", domain.IntentDashboard, 0.7},
	{"analytics", domain.IntentDashboard, 0.65},
	{"metrics", domain.IntentDashboard, 0.6},
	{"page", domain.IntentPage, 0.3},
	{"screen", domain.IntentPage, 0.3},
}

// Positional penalty shape: matches further into the query lose up to
// maxPositionPenalty, and the resulting confidence never drops below
// minIntentConfidence.
const (
	positionPenaltyStep = 0.05
	maxPositionPenalty  = 0.3
	minIntentConfidence = 0.3
)

// PageIntentClassifier detects whether a query asks for a landing
// page, a dashboard or a generic page.
type PageIntentClassifier struct{}

// NewPageIntentClassifier creates a page-intent classifier.
func NewPageIntentClassifier() *PageIntentClassifier {
	return &PageIntentClassifier{}
}

// Classify runs the two-phase intent scan. Phase 1 considers only
// multi-word phrases; the earliest-position match wins, ties broken by
// higher weight. Phase 2 runs only when no phrase matched and scans
// single words left-to-right by token position. When nothing matches
// the intent is unknown with confidence 0 and a warning note.
func (c *PageIntentClassifier) Classify(query string) domain.PageIntent {
	queryLower := strings.ToLower(query)

	if intent, ok := c.matchPhrases(queryLower); ok {
		return intent
	}
	if intent, ok := c.matchWords(queryLower); ok {
		return intent
	}

	return domain.PageIntent{
		Intent:     domain.IntentUnknown,
		Confidence: 0,
		Note:       "no page-intent keywords matched; defaulting layout selection to generic",
	}
}

// matchPhrases finds the best phrase match by position.
func (c *PageIntentClassifier) matchPhrases(queryLower string) (domain.PageIntent, bool) {
	best := domain.PageIntent{Position: -1}
	var bestWeight float64

	for _, sig := range intentPhrases {
		idx := strings.Index(queryLower, sig.keyword)
		if idx < 0 {
			continue
		}
		pos := wordPosition(queryLower, idx)

		if best.Position < 0 || pos < best.Position ||
			(pos == best.Position && sig.weight > bestWeight) {
			best = domain.PageIntent{
				Intent:         sig.intent,
				MatchedKeyword: sig.keyword,
				Position:       pos,
			}
			bestWeight = sig.weight
		}
	}

	if best.Position < 0 {
		return domain.PageIntent{}, false
	}
	best.Confidence = positionAdjusted(bestWeight, best.Position)
	return best, true
}

// matchWords scans query tokens left-to-right for single-word intent
// keywords.
func (c *PageIntentClassifier) matchWords(queryLower string) (domain.PageIntent, bool) {
	tokens := strings.Fields(queryLower)

	for pos, token := range tokens {
		token = strings.Trim(token, ".,;:!?()[]\"'")
		for _, sig := range intentWords {
			if token != sig.keyword {
				continue
			}
			return domain.PageIntent{
				Intent:         sig.intent,
				Confidence:     positionAdjusted(sig.weight, pos),
				MatchedKeyword: sig.keyword,
				Position:       pos,
			}, true
		}
	}

	return domain.PageIntent{}, false
}

// positionAdjusted subtracts the positional penalty
// min(maxPositionPenalty, position*positionPenaltyStep) from the
// weight, floors the result at minIntentConfidence and rounds to two
// decimals.
func positionAdjusted(weight float64, position int) float64 {
	penalty := float64(position) * positionPenaltyStep
	if penalty > maxPositionPenalty {
		penalty = maxPositionPenalty
	}
	confidence := weight - penalty
	if confidence < minIntentConfidence {
		confidence = minIntentConfidence
	}
	return math.Round(confidence*100) / 100
}

// wordPosition counts the whitespace-separated words before the byte
// offset idx.
func wordPosition(s string, idx int) int {
	return len(strings.Fields(s[:idx]))
}
