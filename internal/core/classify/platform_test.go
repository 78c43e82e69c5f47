package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stencil-labs/stencil-cli/internal/core/domain"
)

func newPlatformClassifier() *PlatformClassifier {
	return NewPlatformClassifier(domain.DefaultRankingConfig())
}

func TestPlatformClassifier_Detect(t *testing.T) {
	c := newPlatformClassifier()

	t.Run("detects ios", func(t *testing.T) {
		intent := c.Detect("ios settings screen with swiftui")
		assert.Equal(t, domain.PlatformIOS, intent.Platform)
		assert.Equal(t, "swiftui", intent.Framework)
	})

	t.Run("detects android", func(t *testing.T) {
		intent := c.Detect("android material design list")
		assert.Equal(t, domain.PlatformAndroid, intent.Platform)
		assert.Equal(t, "jetpack-compose", intent.Framework)
	})

	t.Run("detects cross-platform", func(t *testing.T) {
		intent := c.Detect("flutter onboarding flow")
		assert.Equal(t, domain.PlatformCross, intent.Platform)
		assert.Equal(t, "flutter", intent.Framework)
	})

	t.Run("react native wins over react", func(t *testing.T) {
		intent := c.Detect("react native navigation bar")
		assert.Equal(t, "react-native", intent.Framework)
	})

	t.Run("defaults to web for ambiguous queries", func(t *testing.T) {
		intent := c.Detect("pretty gradient button")
		assert.Equal(t, domain.PlatformWeb, intent.Platform)
		assert.InDelta(t, 0.3, intent.Confidence, 1e-9)
		assert.Equal(t, "react", intent.Framework)
	})

	t.Run("explicit framework overrides the platform default", func(t *testing.T) {
		intent := c.Detect("vue website header")
		assert.Equal(t, domain.PlatformWeb, intent.Platform)
		assert.Equal(t, "vue", intent.Framework)
	})

	t.Run("capitalized framework still wins on the fallback path", func(t *testing.T) {
		// "Svelte landing hero" matches no platform keyword, so Detect
		// takes the web fallback; the framework inference must still see
		// the lowercased query.
		intent := c.Detect("Svelte landing hero")
		assert.Equal(t, domain.PlatformWeb, intent.Platform)
		assert.Equal(t, "svelte", intent.Framework)
	})

	t.Run("multi-keyword boost stays within bounds", func(t *testing.T) {
		results := c.DetectAll("ios iphone ipad swiftui cupertino app")
		require.NotEmpty(t, results)
		assert.Equal(t, domain.PlatformIOS, results[0].Platform)
		assert.LessOrEqual(t, results[0].Confidence, 1.0)
		for _, r := range results {
			assert.GreaterOrEqual(t, r.Confidence, 0.0)
			assert.LessOrEqual(t, r.Confidence, 1.0)
		}
	})
}
