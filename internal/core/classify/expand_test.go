package classify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stencil-labs/stencil-cli/internal/core/domain"
)

func TestExpandQuery(t *testing.T) {
	t.Run("appends expansion for a trigger", func(t *testing.T) {
		expanded := ExpandQuery("glassmorphism card")
		assert.True(t, strings.HasPrefix(expanded, "glassmorphism card"))
		assert.Contains(t, expanded, "frosted")
		assert.Contains(t, expanded, "backdrop")
	})

	t.Run("multiple triggers all append", func(t *testing.T) {
		expanded := ExpandQuery("glassmorphism dark mode")
		assert.Contains(t, expanded, "frosted")
		assert.Contains(t, expanded, "night")
	})

	t.Run("no trigger leaves the query untouched", func(t *testing.T) {
		assert.Equal(t, "brutalist poster", ExpandQuery("brutalist poster"))
	})

	t.Run("longer triggers are checked before their substrings", func(t *testing.T) {
		for i := 1; i < len(expansionTriggers); i++ {
			assert.GreaterOrEqual(t, len(expansionTriggers[i-1]), len(expansionTriggers[i]))
		}
	})

	t.Run("case insensitive trigger detection", func(t *testing.T) {
		assert.Contains(t, ExpandQuery("Dark Mode palette"), "night")
	})
}

func TestValidateQuery(t *testing.T) {
	t.Run("valid input", func(t *testing.T) {
		req, err := ValidateQuery("dashboard charts", 5)
		require.NoError(t, err)
		assert.Equal(t, "dashboard charts", req.Query)
		assert.Equal(t, 5, req.MaxResults)
		// The expanded query is for scoring; the original is preserved.
		assert.Contains(t, req.ExpandedQuery, "widgets")
	})

	t.Run("defaults maxResults", func(t *testing.T) {
		req, err := ValidateQuery("icons", 0)
		require.NoError(t, err)
		assert.Equal(t, domain.DefaultSearchResults, req.MaxResults)
	})

	tests := []struct {
		name       string
		query      string
		maxResults int
	}{
		{"empty query", "", 3},
		{"whitespace query", "   \t ", 3},
		{"oversized query", strings.Repeat("x", domain.MaxQueryLength+1), 3},
		{"negative maxResults", "icons", -1},
		{"maxResults too large", "icons", domain.MaxSearchResults + 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateQuery(tt.query, tt.maxResults)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}
