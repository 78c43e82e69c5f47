package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stencil-labs/stencil-cli/internal/core/domain"
)

func newTestDesignSystemService(t *testing.T) *DesignSystemService {
	t.Helper()
	search := newTestSearchService(t)
	return NewDesignSystemService(search, domain.DefaultBoostConfig())
}

func TestBuildDesignSystem(t *testing.T) {
	svc := newTestDesignSystemService(t)

	ds, err := svc.Build(context.Background(), domain.DesignSystemRequest{
		Query: "dark glassmorphism saas landing",
	})
	require.NoError(t, err)

	require.NotNil(t, ds.Style)
	assert.Equal(t, "Glassmorphism Card", ds.Style.Name())
	require.NotNil(t, ds.Palette)
	assert.Equal(t, "Midnight Palette", ds.Palette.Name())
	require.NotNil(t, ds.Product)
	require.NotNil(t, ds.Layout)

	assert.Equal(t, domain.IntentLanding, ds.PageIntent.Intent)
	assert.Equal(t, "Hero Split", ds.Layout.Name())

	assert.Contains(t, ds.CSSVariables, "--color-primary")
	assert.Contains(t, ds.Guide, "# Design System:")
	// Dark background palette wants light text.
	assert.Equal(t, "#ffffff", ds.ContrastText)
}

func TestBuildDesignSystemDashboardIntent(t *testing.T) {
	svc := newTestDesignSystemService(t)

	ds, err := svc.Build(context.Background(), domain.DesignSystemRequest{
		Query: "admin dashboard metrics",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.IntentDashboard, ds.PageIntent.Intent)
	require.NotNil(t, ds.Layout)
	assert.Equal(t, "Admin Grid", ds.Layout.Name())
}

func TestBuildDesignSystemDarkMode(t *testing.T) {
	svc := newTestDesignSystemService(t)

	ds, err := svc.Build(context.Background(), domain.DesignSystemRequest{
		Query: "midnight navy palette",
		Mode:  domain.ModeDark,
	})
	require.NoError(t, err)

	require.NotNil(t, ds.Palette)
	require.NotNil(t, ds.DarkPalette)
	assert.Equal(t, "#0d0d17", ds.DarkPalette["Primary"])
	// Dark overrides win; unlisted fields keep the light values.
	assert.Contains(t, ds.CSSVariables, "--color-primary: #0d0d17;")
	assert.Contains(t, ds.CSSVariables, "--color-accent: #e94560;")
}

func TestBuildDesignSystemDarkModeFallback(t *testing.T) {
	snippets := testCatalog()
	// Replace the palette record's dark blob with garbage.
	for i := range snippets {
		if snippets[i].Fields["Name"] == "Midnight Palette" {
			snippets[i].Fields["Dark_Mode"] = "not structured at all"
		}
	}
	lib, err := BuildLibrary(context.Background(), &stubSource{snippets: snippets})
	require.NoError(t, err)
	search := NewSearchService(lib, domain.DefaultRankingConfig(), domain.DefaultBoostConfig())
	svc := NewDesignSystemService(search, domain.DefaultBoostConfig())

	ds, err := svc.Build(context.Background(), domain.DesignSystemRequest{
		Query: "midnight navy palette",
		Mode:  domain.ModeDark,
	})
	require.NoError(t, err)

	// Silent fallback to the light palette.
	assert.Nil(t, ds.DarkPalette)
	assert.Contains(t, ds.CSSVariables, "--color-primary: #1a1a2e;")
}

func TestBuildDesignSystemPlatformOverride(t *testing.T) {
	svc := newTestDesignSystemService(t)

	ds, err := svc.Build(context.Background(), domain.DesignSystemRequest{
		Query:    "dashboard overview",
		Platform: domain.PlatformIOS,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.PlatformIOS, ds.Platform.Platform)
	assert.InDelta(t, 1.0, ds.Platform.Confidence, 1e-9)
}

func TestBuildDesignSystemInvalidInput(t *testing.T) {
	svc := newTestDesignSystemService(t)

	_, err := svc.Build(context.Background(), domain.DesignSystemRequest{Query: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.Build(context.Background(), domain.DesignSystemRequest{
		Query: "fine", Mode: "sepia",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.Build(context.Background(), domain.DesignSystemRequest{
		Query: "fine", Platform: "windows-phone",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestBuildDesignSystemStyleBias(t *testing.T) {
	svc := newTestDesignSystemService(t)

	ds, err := svc.Build(context.Background(), domain.DesignSystemRequest{
		Query: "hero section",
		Style: "brutalism",
	})
	require.NoError(t, err)
	require.NotNil(t, ds.Style)
	assert.Equal(t, "Brutalist Hero", ds.Style.Name())
}
