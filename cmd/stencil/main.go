// Command stencil serves a curated UI/UX design snippet library over
// the CLI and MCP.
package main

import (
	"fmt"
	"os"

	"github.com/stencil-labs/stencil-cli/internal/adapters/driving/cli"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := cli.Execute(version); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
