package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stencil-labs/stencil-cli/internal/core/domain"
)

func newTestSearchService(t *testing.T) *SearchService {
	t.Helper()
	lib := buildTestLibrary(t)
	return NewSearchService(lib, domain.DefaultRankingConfig(), domain.DefaultBoostConfig())
}

func TestSearchAllHighConfidenceDomain(t *testing.T) {
	svc := newTestSearchService(t)

	results, err := svc.SearchAll(context.Background(), "glassmorphism style", 3)
	require.NoError(t, err)
	require.NotEmpty(t, results)

	assert.Equal(t, string(domain.DomainStyles), results[0].DetectedDomain)
	assert.Equal(t, domain.DomainStyles, results[0].Document.Type)
	assert.Positive(t, results[0].Score)
}

func TestSearchAllNoDomainDetected(t *testing.T) {
	svc := newTestSearchService(t)

	results, err := svc.SearchAll(context.Background(), "inter", 5)
	require.NoError(t, err)

	assert.LessOrEqual(t, len(results), 5)
	for _, r := range results {
		assert.Positive(t, r.Score)
	}
}

func TestSearchAllValidation(t *testing.T) {
	svc := newTestSearchService(t)

	_, err := svc.SearchAll(context.Background(), "", 3)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.SearchAll(context.Background(), "card", 51)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSearchAllMaxResultsBound(t *testing.T) {
	svc := newTestSearchService(t)

	results, err := svc.SearchAll(context.Background(), "dark", 1)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(results), 1)
}

func TestSearchDomain(t *testing.T) {
	svc := newTestSearchService(t)

	results, err := svc.SearchDomain(context.Background(), domain.DomainStyles, "glassmorphism card", 3)
	require.NoError(t, err)
	require.NotEmpty(t, results)
	assert.Equal(t, "styles/glassmorphism-card", results[0].Document.ID)
	assert.Equal(t, string(domain.DomainStyles), results[0].DetectedDomain)
}

func TestSearchDomainUnavailableIndex(t *testing.T) {
	svc := newTestSearchService(t)

	_, err := svc.SearchDomain(context.Background(), domain.DomainIcons, "arrow", 3)
	assert.ErrorIs(t, err, domain.ErrIndexUnavailable)
}

func TestSearchStack(t *testing.T) {
	svc := newTestSearchService(t)

	results, err := svc.SearchStack(context.Background(), "react", "hooks state", 3)
	require.NoError(t, err)
	require.NotEmpty(t, results)
	assert.Equal(t, "react", results[0].DetectedStack)
}

func TestSearchStackRejectsUnknown(t *testing.T) {
	svc := newTestSearchService(t)

	_, err := svc.SearchStack(context.Background(), "not-a-real-framework", "anything", 3)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownStack)
	// The error must enumerate the valid stack names.
	assert.Contains(t, err.Error(), "react")
	assert.Contains(t, err.Error(), "flutter")
}

func TestSearchStackNoGuidelines(t *testing.T) {
	svc := newTestSearchService(t)

	// vue is a valid stack name but the test catalog has no vue records.
	_, err := svc.SearchStack(context.Background(), "vue", "composition api", 3)
	assert.ErrorIs(t, err, domain.ErrIndexUnavailable)
}

func TestSearchPlatform(t *testing.T) {
	svc := newTestSearchService(t)

	results, err := svc.SearchPlatform(context.Background(), "ios", "navigation", 3)
	require.NoError(t, err)
	require.NotEmpty(t, results)

	_, err = svc.SearchPlatform(context.Background(), "windows-phone", "navigation", 3)
	assert.ErrorIs(t, err, domain.ErrUnknownPlatform)
}

func TestReloadSwapsLibrary(t *testing.T) {
	svc := newTestSearchService(t)

	replacement, err := BuildLibrary(context.Background(), &stubSource{snippets: []domain.Snippet{
		snippet(domain.DomainStyles, map[string]string{"Name": "Solo", "Keywords": "solo"}),
	}})
	require.NoError(t, err)

	svc.Reload(replacement)
	counts := svc.DomainCounts()
	assert.Equal(t, map[domain.Domain]int{domain.DomainStyles: 1}, counts)
}

func TestSingleDomainFillQuota(t *testing.T) {
	svc := newTestSearchService(t)

	mk := func(id string, d domain.Domain, score float64) domain.SearchResult {
		return domain.SearchResult{
			Document: domain.Document{ID: id, Type: d},
			Score:    score,
		}
	}

	results := []domain.SearchResult{
		mk("s1", domain.DomainStyles, 5),
		mk("c1", domain.DomainColors, 4),
		mk("s2", domain.DomainStyles, 3),
		mk("c2", domain.DomainColors, 2),
		mk("s3", domain.DomainStyles, 1),
	}

	// share 0.8 of 5 slots reserves 4 for styles; only 3 exist, so one
	// extra color result fills in plus the remaining slot.
	out := svc.singleDomainFill(results, domain.DomainStyles, 5, 0.8)
	require.Len(t, out, 5)
	assert.Equal(t, "s1", out[0].Document.ID)
	assert.Equal(t, "s2", out[1].Document.ID)
	assert.Equal(t, "s3", out[2].Document.ID)

	// With 2 slots the quota ceil(0.8*2)=2 goes entirely to styles.
	out = svc.singleDomainFill(results, domain.DomainStyles, 2, 0.8)
	require.Len(t, out, 2)
	assert.Equal(t, "s1", out[0].Document.ID)
	assert.Equal(t, "s2", out[1].Document.ID)
}

func TestMultiDomainFillMergesByScore(t *testing.T) {
	svc := newTestSearchService(t)

	mk := func(id string, d domain.Domain, score float64) domain.SearchResult {
		return domain.SearchResult{
			Document: domain.Document{ID: id, Type: d},
			Score:    score,
		}
	}

	results := []domain.SearchResult{
		mk("s1", domain.DomainStyles, 5),
		mk("c1", domain.DomainColors, 4),
		mk("s2", domain.DomainStyles, 3),
		mk("c2", domain.DomainColors, 2),
	}
	strong := []domain.DomainMatch{
		{Domain: domain.DomainStyles, Confidence: 0.9},
		{Domain: domain.DomainColors, Confidence: 0.6},
	}

	out := svc.multiDomainFill(results, strong, 4)
	require.Len(t, out, 4)

	// Final merge is re-sorted by raw score.
	for i := 1; i < len(out); i++ {
		assert.GreaterOrEqual(t, out[i-1].Score, out[i].Score)
	}
	assert.Equal(t, "s1", out[0].Document.ID)
}

func TestClassifierPassthroughs(t *testing.T) {
	svc := newTestSearchService(t)

	matches := svc.DetectDomains("glassmorphism card")
	require.NotEmpty(t, matches)
	assert.Equal(t, domain.DomainStyles, matches[0].Domain)

	platform := svc.DetectPlatform("swiftui settings screen")
	assert.Equal(t, domain.PlatformIOS, platform.Platform)

	intent := svc.ClassifyPageIntent("landing page dashboard")
	assert.Equal(t, domain.IntentLanding, intent.Intent)
}
