package services

import (
	"sort"

	"github.com/stencil-labs/stencil-cli/internal/core/domain"
)

// ApplyPlatformBoost reranks results toward the detected platform by
// multiplying each score with a support-dependent factor, then
// re-sorting. Runs before truncation so a boosted document can climb
// into the window.
func ApplyPlatformBoost(results []domain.SearchResult, platform string, cfg domain.BoostConfig) []domain.SearchResult {
	if len(results) == 0 {
		return results
	}

	out := make([]domain.SearchResult, len(results))
	copy(out, results)

	for i := range out {
		out[i].Score *= boostFactor(out[i].Document.PlatformSupport(), platform, cfg)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})

	return out
}

// boostFactor maps a document's platform support against the query's
// platform intent. Cross-platform intent never penalises; everything
// else splits into match and mismatch.
func boostFactor(support, platform string, cfg domain.BoostConfig) float64 {
	if platform == domain.PlatformCross {
		switch support {
		case domain.SupportBoth:
			return cfg.CrossBoth
		case domain.SupportMobile:
			return cfg.CrossMobile
		default:
			return 1.0
		}
	}

	if supportsPlatform(support, platform) {
		return cfg.PlatformMatch
	}
	return cfg.PlatformMismatch
}

// supportsPlatform reports whether a support tag satisfies a platform
// intent. "both" satisfies everything; "mobile" covers the iOS and
// Android intents as well as generic mobile.
func supportsPlatform(support, platform string) bool {
	if support == domain.SupportBoth {
		return true
	}
	switch platform {
	case domain.PlatformIOS, domain.PlatformAndroid, domain.PlatformMobile:
		return support == domain.SupportMobile
	default:
		return support == domain.SupportWeb
	}
}
