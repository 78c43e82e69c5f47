package classify

import (
	"sort"
	"strings"

	"github.com/stencil-labs/stencil-cli/internal/core/domain"
)

// domainEntry associates one snippet domain with its keyword
// signatures. Table order is the deterministic tie-break for equal
// confidence.
type domainEntry struct {
	domain     domain.Domain
	signatures []signature
}

// domainTable is the static signature table of the domain classifier.
var domainTable = []domainEntry{
	{domain.DomainStyles, []signature{
		{"glassmorphism", 0.95},
		{"neumorphism", 0.95},
		{"brutalism", 0.9},
		{"skeuomorphism", 0.9},
		{"claymorphism", 0.9},
		{"design style", 0.85},
		{"visual style", 0.8},
		{"minimalist", 0.75},
		{"minimalism", 0.75},
		{"retro", 0.6},
		{"futuristic", 0.6},
		{"aesthetic", 0.6},
		{"gradient", 0.5},
		{"elegant", 0.5},
		{"playful", 0.5},
	}},
	{domain.DomainColors, []signature{
		{"color palette", 0.95},
		{"color scheme", 0.9},
		{"palette", 0.9},
		{"color", 0.8},
		{"colors", 0.8},
		{"hue", 0.7},
		{"monochrome", 0.7},
		{"pastel", 0.7},
		{"saturation", 0.6},
		{"vibrant", 0.6},
		{"dark mode", 0.5},
		{"contrast", 0.5},
	}},
	{domain.DomainCharts, []signature{
		{"data visualization", 0.95},
		{"chart", 0.9},
		{"charts", 0.9},
		{"graph", 0.85},
		{"heatmap", 0.85},
		{"scatter", 0.8},
		{"sparkline", 0.8},
		{"pie", 0.7},
		{"bar", 0.6},
		{"axis", 0.5},
	}},
	{domain.DomainLanding, []signature{
		{"landing page", 0.95},
		{"above the fold", 0.9},
		{"call to action", 0.85},
		{"hero", 0.8},
		{"cta", 0.8},
		{"conversion", 0.7},
		{"testimonial", 0.7},
		{"homepage", 0.7},
		{"pricing", 0.6},
	}},
	{domain.DomainProducts, []signature{
		{"product page", 0.9},
		{"ecommerce", 0.85},
		{"e-commerce", 0.85},
		{"checkout", 0.8},
		{"pricing table", 0.8},
		{"storefront", 0.8},
		{"cart", 0.75},
		{"saas", 0.7},
		{"catalog", 0.6},
		{"listing", 0.6},
	}},
	{domain.DomainPrompts, []signature{
		{"ai prompt", 0.95},
		{"prompt template", 0.95},
		{"system prompt", 0.9},
		{"prompt", 0.9},
		{"prompts", 0.9},
		{"llm", 0.7},
		{"chatbot", 0.6},
	}},
	{domain.DomainUX, []signature{
		{"user experience", 0.95},
		{"ux", 0.9},
		{"usability", 0.9},
		{"wcag", 0.9},
		{"accessibility", 0.85},
		{"empty state", 0.8},
		{"error state", 0.8},
		{"affordance", 0.8},
		{"onboarding", 0.7},
		{"heuristic", 0.7},
		{"interaction", 0.6},
		{"navigation", 0.5},
	}},
	{domain.DomainTypography, []signature{
		{"typography", 0.95},
		{"font pairing", 0.95},
		{"typeface", 0.9},
		{"font", 0.9},
		{"fonts", 0.9},
		{"sans serif", 0.85},
		{"kerning", 0.85},
		{"serif", 0.8},
		{"line height", 0.8},
		{"heading", 0.6},
		{"readability", 0.6},
	}},
	{domain.DomainIcons, []signature{
		{"icon set", 0.95},
		{"icon", 0.95},
		{"icons", 0.95},
		{"icon pack", 0.9},
		{"glyph", 0.8},
		{"pictogram", 0.8},
		{"emoji", 0.5},
	}},
	{domain.DomainPlatforms, []signature{
		{"human interface guidelines", 0.95},
		{"platform guidelines", 0.95},
		{"material design", 0.9},
		{"hig", 0.8},
		{"cupertino", 0.7},
		{"ios", 0.7},
		{"android", 0.7},
		{"apple", 0.5},
	}},
}

// DomainClassifier detects which snippet domains a query is about.
type DomainClassifier struct {
	cfg domain.RankingConfig
}

// NewDomainClassifier creates a domain classifier with the given
// tuning. Zero-value configs should not be passed; use
// domain.DefaultRankingConfig.
func NewDomainClassifier(cfg domain.RankingConfig) *DomainClassifier {
	return &DomainClassifier{cfg: cfg}
}

// Detect scans the signature table against the query and returns the
// matched domains sorted by confidence descending. A category's raw
// score is the maximum weight among its matched keywords; two or more
// matches add min(cap, (n-1)*step), capped at 1.0 total. Categories
// scoring below the floor are discarded.
func (c *DomainClassifier) Detect(query string) []domain.DomainMatch {
	queryLower := strings.ToLower(query)

	var matches []domain.DomainMatch
	for _, entry := range domainTable {
		var matched []string
		var maxWeight float64

		for _, sig := range entry.signatures {
			if matchKeyword(queryLower, sig.keyword) {
				matched = append(matched, sig.keyword)
				if sig.weight > maxWeight {
					maxWeight = sig.weight
				}
			}
		}

		if len(matched) == 0 {
			continue
		}

		confidence := maxWeight
		if len(matched) >= 2 {
			confidence += multiMatchBoost(len(matched), c.cfg.DomainMultiBoostStep, c.cfg.DomainMultiBoostCap)
		}
		if confidence > 1.0 {
			confidence = 1.0
		}
		if confidence < c.cfg.DomainFloor {
			continue
		}

		matches = append(matches, domain.DomainMatch{
			Domain:          entry.domain,
			Confidence:      confidence,
			MatchedKeywords: matched,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Confidence > matches[j].Confidence
	})

	return matches
}

// multiMatchBoost rewards categories matched by several keywords:
// min(cap, (matchCount-1)*step).
func multiMatchBoost(matchCount int, step, cap float64) float64 {
	boost := float64(matchCount-1) * step
	if boost > cap {
		return cap
	}
	return boost
}
