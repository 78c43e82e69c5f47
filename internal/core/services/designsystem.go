package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/stencil-labs/stencil-cli/internal/core/classify"
	"github.com/stencil-labs/stencil-cli/internal/core/domain"
	"github.com/stencil-labs/stencil-cli/internal/core/ports/driving"
	"github.com/stencil-labs/stencil-cli/internal/core/rank"
	"github.com/stencil-labs/stencil-cli/internal/logger"
)

var _ driving.DesignSystemService = (*DesignSystemService)(nil)

// DesignSystemService composes a design-system bundle out of several
// per-domain searches. It is a consumer of the search core, not part
// of it.
type DesignSystemService struct {
	search *SearchService
	boost  domain.BoostConfig
}

// NewDesignSystemService creates the composer over a search service.
func NewDesignSystemService(search *SearchService, boost domain.BoostConfig) *DesignSystemService {
	return &DesignSystemService{search: search, boost: boost}
}

// Build runs the product, style, color, typography and layout searches
// for one query and assembles the bundle with its derived fields.
func (s *DesignSystemService) Build(ctx context.Context, req domain.DesignSystemRequest) (domain.DesignSystem, error) {
	if req.MaxResults == 0 {
		req.MaxResults = 1
	}
	if _, err := classify.ValidateQuery(req.Query, req.MaxResults); err != nil {
		return domain.DesignSystem{}, err
	}

	mode, err := parseMode(req.Mode)
	if err != nil {
		return domain.DesignSystem{}, err
	}

	platform, err := s.resolvePlatform(req)
	if err != nil {
		return domain.DesignSystem{}, err
	}
	intent := s.search.ClassifyPageIntent(req.Query)

	logger.Section("Design System")
	logger.Debug("Query: %q, mode: %s, intent: %s, platform: %s",
		req.Query, mode, intent.Intent, platform.Platform)

	lib := s.search.library()

	ds := domain.DesignSystem{
		Query:      req.Query,
		PageIntent: intent,
		Platform:   platform,
	}

	ds.Product = s.topHit(lib.Index(domain.DomainProducts), req.Query)
	ds.Style = s.topHit(lib.Index(domain.DomainStyles), styleQuery(req))
	ds.Palette = s.topHit(lib.Index(domain.DomainColors), req.Query)
	ds.Typography = s.topHit(lib.Index(domain.DomainTypography), req.Query)
	ds.Layout = s.layoutHit(lib, req.Query, intent, platform)

	palette, dark := effectivePalette(ds.Palette, mode)
	ds.DarkPalette = dark
	ds.CSSVariables = CSSVariables(palette)
	if bg := palette["Background"]; bg != "" {
		ds.ContrastText = ContrastText(bg)
	}
	ds.Guide = buildGuide(ds, mode)

	return ds, nil
}

// resolvePlatform honors an explicit platform parameter, falling back
// to keyword auto-detection.
func (s *DesignSystemService) resolvePlatform(req domain.DesignSystemRequest) (domain.PlatformIntent, error) {
	if req.Platform == "" {
		return s.search.DetectPlatform(req.Query), nil
	}

	switch req.Platform {
	case domain.PlatformWeb, domain.PlatformIOS, domain.PlatformAndroid,
		domain.PlatformMobile, domain.PlatformCross:
		return domain.PlatformIntent{Platform: req.Platform, Confidence: 1.0}, nil
	default:
		return domain.PlatformIntent{}, fmt.Errorf("%w: unknown platform %q (valid: %s, %s, %s, %s, %s)",
			domain.ErrInvalidInput, req.Platform,
			domain.PlatformWeb, domain.PlatformIOS, domain.PlatformAndroid,
			domain.PlatformMobile, domain.PlatformCross)
	}
}

// parseMode validates the palette mode, defaulting to light.
func parseMode(mode string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", domain.ModeLight:
		return domain.ModeLight, nil
	case domain.ModeDark:
		return domain.ModeDark, nil
	default:
		return "", fmt.Errorf("%w: unknown mode %q (valid: %s, %s)",
			domain.ErrInvalidInput, mode, domain.ModeLight, domain.ModeDark)
	}
}

// styleQuery prepends an explicit style name so it dominates the style
// search without replacing the original query terms.
func styleQuery(req domain.DesignSystemRequest) string {
	if req.Style == "" {
		return req.Query
	}
	return req.Style + " " + req.Query
}

// topHit returns the best-scoring document of one index, nil when the
// index is absent or nothing matched.
func (s *DesignSystemService) topHit(idx *rank.Index, query string) *domain.Document {
	if idx == nil {
		return nil
	}
	expanded := classify.ExpandQuery(query)
	hits := idx.Search(expanded, 1)
	if len(hits) == 0 {
		return nil
	}
	doc := hits[0].Document
	return &doc
}

// layoutHit searches the intent-matched layout subset and picks the
// hit preferred by platform boosting.
func (s *DesignSystemService) layoutHit(lib *Library, query string, intent domain.PageIntent, platform domain.PlatformIntent) *domain.Document {
	idx := lib.LayoutIndex(intent.Intent)
	if idx == nil {
		return nil
	}

	expanded := classify.ExpandQuery(query)
	hits := idx.Search(expanded, domain.DefaultSearchResults)
	if len(hits) == 0 {
		return nil
	}

	results := make([]domain.SearchResult, len(hits))
	for i, h := range hits {
		results[i] = domain.SearchResult{Document: h.Document, Score: h.Score}
	}
	results = ApplyPlatformBoost(results, platform.Platform, s.boost)

	doc := results[0].Document
	return &doc
}

// buildGuide assembles the markdown usage guide from the chosen parts.
func buildGuide(ds domain.DesignSystem, mode string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Design System: %s\n\n", ds.Query)
	fmt.Fprintf(&b, "Mode: %s | Platform: %s | Page intent: %s\n\n",
		mode, ds.Platform.Platform, ds.PageIntent.Intent)

	section := func(title string, doc *domain.Document) {
		if doc == nil {
			return
		}
		fmt.Fprintf(&b, "## %s: %s\n", title, doc.Name())
		if desc := doc.Data["Description"]; desc != "" {
			fmt.Fprintf(&b, "%s\n", desc)
		}
		b.WriteString("\n")
	}

	section("Product Pattern", ds.Product)
	section("Style", ds.Style)
	section("Color Palette", ds.Palette)
	section("Typography", ds.Typography)
	section("Layout", ds.Layout)

	if ds.CSSVariables != "" {
		fmt.Fprintf(&b, "## CSS Variables\n```css\n%s\n```\n\n", ds.CSSVariables)
	}
	if ds.ContrastText != "" {
		fmt.Fprintf(&b, "Recommended text color on background: `%s`\n", ds.ContrastText)
	}

	return strings.TrimRight(b.String(), "\n") + "\n"
}
