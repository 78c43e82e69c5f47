package mcp

import (
	"github.com/stencil-labs/stencil-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Search provides snippet search and classification.
	Search driving.SearchService

	// DesignSystem composes design-system bundles.
	DesignSystem driving.DesignSystemService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Search == nil {
		return ErrMissingSearchService
	}
	if p.DesignSystem == nil {
		return ErrMissingDesignSystemService
	}
	return nil
}
