// Package file loads stencil's TOML configuration from the local
// filesystem. Every heuristic ranking constant is exposed here as an
// overridable setting with the built-in defaults.
package file
