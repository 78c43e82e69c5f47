// Package domain defines the core business entities for Stencil.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Snippet: A raw catalog record tagged with its domain
//   - Document: An indexed, immutable projection of a snippet
//   - DomainMatch / PlatformIntent / PageIntent: classifier value objects
//   - RankingConfig / BoostConfig: tunable heuristic constants
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
