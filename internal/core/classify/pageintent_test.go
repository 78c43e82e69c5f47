package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stencil-labs/stencil-cli/internal/core/domain"
)

func TestPageIntentClassifier_Classify(t *testing.T) {
	c := NewPageIntentClassifier()

	t.Run("phrase match beats single words", func(t *testing.T) {
		// "landing page" is found in phase 1, so the single word
		// "dashboard" is never considered.
		intent := c.Classify("landing page dashboard")
		assert.Equal(t, domain.IntentLanding, intent.Intent)
		assert.Equal(t, "landing page", intent.MatchedKeyword)
	})

	t.Run("earliest phrase wins", func(t *testing.T) {
		intent := c.Classify("admin panel with a hero section")
		assert.Equal(t, domain.IntentDashboard, intent.Intent)
		assert.Equal(t, "admin panel", intent.MatchedKeyword)
		assert.Equal(t, 0, intent.Position)
	})

	t.Run("single words scanned left to right", func(t *testing.T) {
		intent := c.Classify("clean dashboard for metrics")
		assert.Equal(t, domain.IntentDashboard, intent.Intent)
		assert.Equal(t, "dashboard", intent.MatchedKeyword)
		assert.Equal(t, 1, intent.Position)
	})

	t.Run("positional penalty applies", func(t *testing.T) {
		first := c.Classify("dashboard with charts")
		later := c.Classify("charts and widgets dashboard")
		assert.Equal(t, domain.IntentDashboard, first.Intent)
		assert.Equal(t, domain.IntentDashboard, later.Intent)
		assert.Greater(t, first.Confidence, later.Confidence)
	})

	t.Run("confidence floored and rounded", func(t *testing.T) {
		// "page" at position 7: weight 0.3 - min(0.3, 0.35) = 0.0,
		// floored back up to 0.3.
		intent := c.Classify("one two three four five six seven page")
		assert.Equal(t, domain.IntentPage, intent.Intent)
		assert.InDelta(t, 0.3, intent.Confidence, 1e-9)
	})

	t.Run("unknown intent carries a note", func(t *testing.T) {
		intent := c.Classify("glassmorphism color palette")
		assert.Equal(t, domain.IntentUnknown, intent.Intent)
		assert.Zero(t, intent.Confidence)
		assert.NotEmpty(t, intent.Note)
	})

	t.Run("confidence within bounds", func(t *testing.T) {
		for _, q := range []string{
			"landing page", "dashboard", "profile page detail",
			"hero section above the fold", "a b c d e f g landing",
		} {
			intent := c.Classify(q)
			assert.GreaterOrEqual(t, intent.Confidence, 0.0, "query %q", q)
			assert.LessOrEqual(t, intent.Confidence, 1.0, "query %q", q)
		}
	})
}
