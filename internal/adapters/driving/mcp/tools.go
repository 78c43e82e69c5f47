package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/stencil-labs/stencil-cli/internal/core/domain"
)

// SearchInput is the input schema for the unified search tool.
type SearchInput struct {
	Query      string `json:"query" jsonschema:"the search query describing the desired design"`
	MaxResults int    `json:"max_results,omitempty" jsonschema:"maximum number of results to return (default 3, max 50)"`
}

// DomainSearchInput is the input schema for the single-domain search tool.
type DomainSearchInput struct {
	Domain     string `json:"domain" jsonschema:"the design domain to search (styles, colors, typography, charts, ux, icons, landing, products, prompts)"`
	Query      string `json:"query" jsonschema:"the search query"`
	MaxResults int    `json:"max_results,omitempty" jsonschema:"maximum number of results to return (default 3, max 50)"`
}

// StackSearchInput is the input schema for the stack-guideline search tool.
type StackSearchInput struct {
	Stack      string `json:"stack" jsonschema:"the framework stack (react, nextjs, vue, nuxt, svelte, angular, swiftui, jetpack-compose, react-native, flutter, tailwind)"`
	Query      string `json:"query" jsonschema:"the search query"`
	MaxResults int    `json:"max_results,omitempty" jsonschema:"maximum number of results to return (default 3, max 50)"`
}

// PlatformSearchInput is the input schema for the platform-guideline search tool.
type PlatformSearchInput struct {
	Platform   string `json:"platform" jsonschema:"the platform guideline set (ios, android, web)"`
	Query      string `json:"query" jsonschema:"the search query"`
	MaxResults int    `json:"max_results,omitempty" jsonschema:"maximum number of results to return (default 3, max 50)"`
}

// DesignSystemInput is the input schema for the design-system tool.
type DesignSystemInput struct {
	Query      string `json:"query" jsonschema:"what to build, e.g. 'minimal saas landing page'"`
	Style      string `json:"style,omitempty" jsonschema:"optional style name to bias the style search"`
	Mode       string `json:"mode,omitempty" jsonschema:"color mode, light or dark (default light)"`
	Platform   string `json:"platform,omitempty" jsonschema:"optional platform override (web, mobile-ios, mobile-android, mobile, cross-platform)"`
	MaxResults int    `json:"max_results,omitempty" jsonschema:"per-domain result count (default 1)"`
}

// ListDomainsInput is the (empty) input schema for the domain listing tool.
type ListDomainsInput struct{}

// SnippetOutput is one search hit as returned by every search tool.
type SnippetOutput struct {
	ID     string            `json:"id"`
	Name   string            `json:"name"`
	Domain string            `json:"domain"`
	Score  float64           `json:"score"`
	Data   map[string]string `json:"data"`
}

// SearchOutput is the output schema shared by the search tools. Error
// carries validation and lookup failures as regular tool output so the
// calling assistant can render them instead of aborting the request.
type SearchOutput struct {
	Results        []SnippetOutput `json:"results"`
	Count          int             `json:"count"`
	DetectedDomain string          `json:"detected_domain,omitempty"`
	DetectedStack  string          `json:"detected_stack,omitempty"`
	Error          string          `json:"error,omitempty"`
}

// DomainInfo is one entry of the domain listing.
type DomainInfo struct {
	Domain string `json:"domain"`
	Count  int    `json:"count"`
}

// ListDomainsOutput is the output schema for the domain listing tool.
type ListDomainsOutput struct {
	Domains []DomainInfo `json:"domains"`
	Total   int          `json:"total"`
}

// DesignSystemOutput is the output schema for the design-system tool.
type DesignSystemOutput struct {
	Query        string            `json:"query"`
	Style        *SnippetOutput    `json:"style,omitempty"`
	Product      *SnippetOutput    `json:"product,omitempty"`
	Palette      *SnippetOutput    `json:"palette,omitempty"`
	Typography   *SnippetOutput    `json:"typography,omitempty"`
	Layout       *SnippetOutput    `json:"layout,omitempty"`
	PageIntent   string            `json:"page_intent"`
	Platform     string            `json:"platform"`
	CSSVariables string            `json:"css_variables,omitempty"`
	ContrastText string            `json:"contrast_text,omitempty"`
	DarkPalette  map[string]string `json:"dark_palette,omitempty"`
	Guide        string            `json:"guide,omitempty"`
	Error        string            `json:"error,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_snippets",
		Description: "Search the full design snippet library across all domains",
	}, s.handleSearchSnippets)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_domain",
		Description: "Search one design domain (styles, colors, typography, charts, ux, icons, landing, products, prompts)",
	}, s.handleSearchDomain)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_stack",
		Description: "Search framework-specific implementation guidelines",
	}, s.handleSearchStack)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_platforms",
		Description: "Search platform-specific design guidelines (ios, android, web)",
	}, s.handleSearchPlatforms)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_domains",
		Description: "List all design domains and their snippet counts",
	}, s.handleListDomains)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "create_design_system",
		Description: "Compose a full design system (style, palette, typography, layout, product pattern) for a query",
	}, s.handleCreateDesignSystem)
}

// handleSearchSnippets handles the unified search tool invocation.
func (s *Server) handleSearchSnippets(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	results, err := s.ports.Search.SearchAll(ctx, input.Query, input.MaxResults)
	return nil, toSearchOutput(results, err), nil
}

// handleSearchDomain handles the single-domain search tool invocation.
func (s *Server) handleSearchDomain(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input DomainSearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	d, err := domain.ParseDomain(input.Domain)
	if err != nil {
		return nil, SearchOutput{Error: err.Error()}, nil
	}

	results, err := s.ports.Search.SearchDomain(ctx, d, input.Query, input.MaxResults)
	return nil, toSearchOutput(results, err), nil
}

// handleSearchStack handles the stack-guideline search tool invocation.
func (s *Server) handleSearchStack(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input StackSearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	results, err := s.ports.Search.SearchStack(ctx, input.Stack, input.Query, input.MaxResults)
	return nil, toSearchOutput(results, err), nil
}

// handleSearchPlatforms handles the platform-guideline search tool invocation.
func (s *Server) handleSearchPlatforms(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input PlatformSearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	results, err := s.ports.Search.SearchPlatform(ctx, input.Platform, input.Query, input.MaxResults)
	return nil, toSearchOutput(results, err), nil
}

// handleListDomains handles the domain listing tool invocation.
func (s *Server) handleListDomains(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ ListDomainsInput,
) (*mcp.CallToolResult, ListDomainsOutput, error) {
	counts := s.ports.Search.DomainCounts()

	output := ListDomainsOutput{
		Domains: make([]DomainInfo, 0, len(counts)),
	}
	for _, d := range domain.AllDomains() {
		n, ok := counts[d]
		if !ok {
			continue
		}
		output.Domains = append(output.Domains, DomainInfo{Domain: string(d), Count: n})
		output.Total += n
	}

	return nil, output, nil
}

// handleCreateDesignSystem handles the design-system tool invocation.
func (s *Server) handleCreateDesignSystem(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input DesignSystemInput,
) (*mcp.CallToolResult, DesignSystemOutput, error) {
	ds, err := s.ports.DesignSystem.Build(ctx, domain.DesignSystemRequest{
		Query:      input.Query,
		Style:      input.Style,
		Mode:       input.Mode,
		Platform:   input.Platform,
		MaxResults: input.MaxResults,
	})
	if err != nil {
		return nil, DesignSystemOutput{Error: err.Error()}, nil
	}

	return nil, DesignSystemOutput{
		Query:        ds.Query,
		Style:        toSnippetRef(ds.Style),
		Product:      toSnippetRef(ds.Product),
		Palette:      toSnippetRef(ds.Palette),
		Typography:   toSnippetRef(ds.Typography),
		Layout:       toSnippetRef(ds.Layout),
		PageIntent:   ds.PageIntent.Intent,
		Platform:     ds.Platform.Platform,
		CSSVariables: ds.CSSVariables,
		ContrastText: ds.ContrastText,
		DarkPalette:  ds.DarkPalette,
		Guide:        ds.Guide,
	}, nil
}

// toSearchOutput converts service results to the shared output schema,
// folding errors into the Error field.
func toSearchOutput(results []domain.SearchResult, err error) SearchOutput {
	if err != nil {
		return SearchOutput{Error: err.Error()}
	}

	output := SearchOutput{
		Results: make([]SnippetOutput, len(results)),
		Count:   len(results),
	}
	for i := range results {
		output.Results[i] = toSnippetOutput(results[i])
		if output.DetectedDomain == "" {
			output.DetectedDomain = results[i].DetectedDomain
		}
		if output.DetectedStack == "" {
			output.DetectedStack = results[i].DetectedStack
		}
	}
	return output
}

func toSnippetOutput(r domain.SearchResult) SnippetOutput {
	return SnippetOutput{
		ID:     r.Document.ID,
		Name:   r.Document.Name(),
		Domain: string(r.Document.Type),
		Score:  r.Score,
		Data:   r.Document.Data,
	}
}

// toSnippetRef converts an optional composed document, keeping nil.
func toSnippetRef(doc *domain.Document) *SnippetOutput {
	if doc == nil {
		return nil
	}
	return &SnippetOutput{
		ID:     doc.ID,
		Name:   doc.Name(),
		Domain: string(doc.Type),
		Data:   doc.Data,
	}
}
