package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stencil-labs/stencil-cli/internal/core/domain"
)

func resultWithSupport(id, support string, score float64) domain.SearchResult {
	return domain.SearchResult{
		Document: domain.Document{
			ID:   id,
			Data: map[string]string{"Platform_Support": support},
		},
		Score: score,
	}
}

func TestApplyPlatformBoostMobileOrdering(t *testing.T) {
	// Equal base scores; detected platform mobile-ios must place
	// both/mobile-tagged results above web-tagged ones.
	results := []domain.SearchResult{
		resultWithSupport("a", "web", 1.0),
		resultWithSupport("b", "mobile", 1.0),
		resultWithSupport("c", "both", 1.0),
	}

	boosted := ApplyPlatformBoost(results, domain.PlatformIOS, domain.DefaultBoostConfig())
	require.Len(t, boosted, 3)

	assert.Equal(t, "b", boosted[0].Document.ID)
	assert.Equal(t, "c", boosted[1].Document.ID)
	assert.Equal(t, "a", boosted[2].Document.ID)

	assert.InDelta(t, 1.5, boosted[0].Score, 1e-9)
	assert.InDelta(t, 0.5, boosted[2].Score, 1e-9)
}

func TestApplyPlatformBoostWeb(t *testing.T) {
	results := []domain.SearchResult{
		resultWithSupport("m", "mobile", 2.0),
		resultWithSupport("w", "web", 1.0),
	}

	boosted := ApplyPlatformBoost(results, domain.PlatformWeb, domain.DefaultBoostConfig())

	// web 1.0*1.5 beats mobile 2.0*0.5.
	assert.Equal(t, "w", boosted[0].Document.ID)
	assert.InDelta(t, 1.5, boosted[0].Score, 1e-9)
	assert.InDelta(t, 1.0, boosted[1].Score, 1e-9)
}

func TestApplyPlatformBoostCrossPlatform(t *testing.T) {
	results := []domain.SearchResult{
		resultWithSupport("w", "web", 1.0),
		resultWithSupport("m", "mobile", 1.0),
		resultWithSupport("b", "both", 1.0),
	}

	boosted := ApplyPlatformBoost(results, domain.PlatformCross, domain.DefaultBoostConfig())

	assert.Equal(t, "b", boosted[0].Document.ID)
	assert.InDelta(t, 1.5, boosted[0].Score, 1e-9)
	assert.Equal(t, "m", boosted[1].Document.ID)
	assert.InDelta(t, 1.2, boosted[1].Score, 1e-9)
	assert.Equal(t, "w", boosted[2].Document.ID)
	assert.InDelta(t, 1.0, boosted[2].Score, 1e-9)
}

func TestApplyPlatformBoostDefaultsLegacyToWeb(t *testing.T) {
	results := []domain.SearchResult{
		{Document: domain.Document{ID: "legacy", Data: map[string]string{}}, Score: 1.0},
	}

	boosted := ApplyPlatformBoost(results, domain.PlatformWeb, domain.DefaultBoostConfig())
	assert.InDelta(t, 1.5, boosted[0].Score, 1e-9)
}

func TestApplyPlatformBoostDoesNotMutateInput(t *testing.T) {
	results := []domain.SearchResult{resultWithSupport("a", "web", 1.0)}
	_ = ApplyPlatformBoost(results, domain.PlatformIOS, domain.DefaultBoostConfig())
	assert.InDelta(t, 1.0, results[0].Score, 1e-9)
}
