// Package mcp provides an MCP (Model Context Protocol) server adapter for
// Stencil. It exposes the snippet library's search tools and resources to
// AI assistants.
package mcp

import "errors"

// ErrMissingSearchService is returned when the search service is not provided.
var ErrMissingSearchService = errors.New("mcp: search service is required")

// ErrMissingDesignSystemService is returned when the design-system service is not provided.
var ErrMissingDesignSystemService = errors.New("mcp: design system service is required")
