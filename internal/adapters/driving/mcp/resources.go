package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/stencil-labs/stencil-cli/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for Stencil resources.
	uriScheme = "stencil://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for listing domains.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "domains",
		Name:        "domains",
		Description: "List of all design domains with snippet counts",
		MIMEType:    "application/json",
	}, s.handleDomainsResource)

	// Template for individual snippets.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "snippets/{domain}/{snippetId}",
		Name:        "snippet-content",
		Description: "Full record of a specific design snippet",
		MIMEType:    "application/json",
	}, s.handleSnippetResource)
}

// handleDomainsResource returns the domain listing.
func (s *Server) handleDomainsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	counts := s.ports.Search.DomainCounts()

	infos := make([]DomainInfo, 0, len(counts))
	for _, d := range domain.AllDomains() {
		if n, ok := counts[d]; ok {
			infos = append(infos, DomainInfo{Domain: string(d), Count: n})
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling domains: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleSnippetResource returns one snippet record.
func (s *Server) handleSnippetResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	d, id, ok := extractSnippetRef(req.Params.URI)
	if !ok {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	doc, err := s.ports.Search.Snippet(d, id)
	if err != nil {
		// Slugged IDs are domain-prefixed; allow the bare slug too.
		doc, err = s.ports.Search.Snippet(d, string(d)+"/"+id)
		if err != nil {
			return nil, mcp.ResourceNotFoundError(req.Params.URI)
		}
	}

	data, err := json.MarshalIndent(doc.Data, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling snippet: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractSnippetRef parses a URI like stencil://snippets/{domain}/{snippetId}.
func extractSnippetRef(uri string) (domain.Domain, string, bool) {
	const prefix = uriScheme + "snippets/"

	if !strings.HasPrefix(uri, prefix) {
		return "", "", false
	}

	rest := strings.TrimPrefix(uri, prefix)
	name, id, found := strings.Cut(rest, "/")
	if !found || id == "" {
		return "", "", false
	}

	d, err := domain.ParseDomain(name)
	if err != nil {
		return "", "", false
	}

	return d, id, true
}
