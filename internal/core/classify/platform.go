package classify

import (
	"sort"
	"strings"

	"github.com/stencil-labs/stencil-cli/internal/core/domain"
)

// platformEntry associates one platform intent with its keyword
// signatures.
type platformEntry struct {
	platform   string
	signatures []signature
}

// platformTable is the static signature table of the platform
// classifier.
var platformTable = []platformEntry{
	{domain.PlatformWeb, []signature{
		{"web app", 0.8},
		{"website", 0.7},
		{"browser", 0.7},
		{"desktop", 0.6},
		{"responsive", 0.6},
		{"web", 0.5},
		{"css", 0.5},
		{"html", 0.5},
	}},
	{domain.PlatformIOS, []signature{
		{"swiftui", 0.95},
		{"ios", 0.9},
		{"iphone", 0.9},
		{"apple design", 0.85},
		{"ipad", 0.8},
		{"cupertino", 0.8},
		{"human interface", 0.8},
		{"swift", 0.7},
	}},
	{domain.PlatformAndroid, []signature{
		{"jetpack compose", 0.95},
		{"android", 0.9},
		{"material design", 0.85},
		{"kotlin", 0.7},
		{"material", 0.6},
	}},
	{domain.PlatformMobile, []signature{
		{"mobile app", 0.85},
		{"smartphone", 0.8},
		{"mobile", 0.75},
		{"touch screen", 0.7},
		{"tablet", 0.6},
		{"touch", 0.5},
		{"app", 0.35},
	}},
	{domain.PlatformCross, []signature{
		{"react native", 0.95},
		{"flutter", 0.95},
		{"cross platform", 0.9},
		{"cross-platform", 0.9},
		{"multiplatform", 0.8},
		{"hybrid", 0.6},
	}},
}

// frameworkSignatures map explicit framework mentions to stack names.
// Checked in order; more specific entries come first so that e.g.
// "react native" wins over "react".
var frameworkSignatures = []struct {
	keyword   string
	framework string
}{
	{"react native", "react-native"},
	{"react-native", "react-native"},
	{"jetpack compose", "jetpack-compose"},
	{"flutter", "flutter"},
	{"swiftui", "swiftui"},
	{"next.js", "nextjs"},
	{"nextjs", "nextjs"},
	{"nuxt", "nuxt"},
	{"svelte", "svelte"},
	{"angular", "angular"},
	{"vue", "vue"},
	{"react", "react"},
	{"tailwind", "tailwind"},
}

// defaultFrameworks is the assumed framework per platform when the
// query names none explicitly.
var defaultFrameworks = map[string]string{
	domain.PlatformWeb:     "react",
	domain.PlatformIOS:     "swiftui",
	domain.PlatformAndroid: "jetpack-compose",
	domain.PlatformMobile:  "react-native",
	domain.PlatformCross:   "flutter",
}

// PlatformClassifier detects the target platform/device of a query and
// infers an associated framework name.
type PlatformClassifier struct {
	cfg domain.RankingConfig
}

// NewPlatformClassifier creates a platform classifier with the given
// tuning.
func NewPlatformClassifier(cfg domain.RankingConfig) *PlatformClassifier {
	return &PlatformClassifier{cfg: cfg}
}

// Detect returns the most likely platform intent for the query. Unlike
// the domain classifier there is no confidence floor; when literally
// nothing matches, web is the default assumption for ambiguous queries.
func (c *PlatformClassifier) Detect(query string) domain.PlatformIntent {
	results := c.DetectAll(query)
	if len(results) == 0 {
		return domain.PlatformIntent{
			Platform:   domain.PlatformWeb,
			Confidence: c.cfg.DefaultPlatformConfidence,
			Framework:  c.inferFramework(strings.ToLower(query), domain.PlatformWeb),
		}
	}
	return results[0]
}

// DetectAll returns every matched platform sorted by confidence
// descending.
func (c *PlatformClassifier) DetectAll(query string) []domain.PlatformIntent {
	queryLower := strings.ToLower(query)

	var results []domain.PlatformIntent
	for _, entry := range platformTable {
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
			confidence += multiMatchBoost(len(matched), c.cfg.PlatformMultiBoostStep, c.cfg.PlatformMultiBoostCap)
		}
		if confidence > 1.0 {
			confidence = 1.0
		}

		results = append(results, domain.PlatformIntent{
			Platform:        entry.platform,
			Confidence:      confidence,
			Framework:       c.inferFramework(queryLower, entry.platform),
			MatchedKeywords: matched,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Confidence > results[j].Confidence
	})

	return results
}

// inferFramework picks the framework named in the query, or the
// platform's default assumption when none is.
func (c *PlatformClassifier) inferFramework(queryLower, platform string) string {
	for _, fw := range frameworkSignatures {
		if matchKeyword(queryLower, fw.keyword) {
			return fw.framework
		}
	}
	return defaultFrameworks[platform]
}
