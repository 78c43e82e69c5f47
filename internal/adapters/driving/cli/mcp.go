package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stencil-labs/stencil-cli/internal/adapters/driving/mcp"
	"github.com/stencil-labs/stencil-cli/internal/core/services"
	"github.com/stencil-labs/stencil-cli/internal/logger"
	"github.com/stencil-labs/stencil-cli/internal/watcher"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server for AI assistant integration.

By default, the server communicates over stdio using JSON-RPC and can be
used with Claude Desktop and other MCP-compatible AI assistants.

Use --port to start an HTTP server instead, which enables:
  - Testing with MCP Inspector web UI
  - Remote access via HTTP

Examples:
  # Stdio mode (default, for Claude Desktop)
  stencil mcp serve

  # HTTP mode (for MCP Inspector, remote access)
  stencil mcp serve --port 8080

  # Rebuild the library when catalog CSV files change
  stencil mcp serve --watch

Claude Desktop configuration (claude_desktop_config.json):
  {
    "mcpServers": {
      "stencil": {
        "command": "/path/to/stencil",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpServeCmd.Flags().Bool("watch", false, "rebuild the library when the catalog directory changes")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}
	watch, err := cmd.Flags().GetBool("watch")
	if err != nil {
		return fmt.Errorf("getting watch flag: %w", err)
	}

	ports := &mcp.Ports{
		Search:       searchService,
		DesignSystem: designService,
	}

	server, err := mcp.NewServer(ports)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	if watch {
		if watchDir == "" {
			return fmt.Errorf("--watch requires the csv catalog source (catalog.dir in config)")
		}
		w := watcher.New(watchDir, rebuildLibrary)
		go func() {
			if err := w.Run(ctx); err != nil && ctx.Err() == nil {
				logger.Warn("Watcher stopped: %v", err)
			}
		}()
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(ctx, addr)
	}

	return server.Run(ctx)
}

// rebuildLibrary reloads the catalog and swaps the indexes in place.
// A failed rebuild keeps the previous library serving.
func rebuildLibrary(ctx context.Context) {
	lib, err := services.BuildLibrary(ctx, snippetSource)
	if err != nil {
		logger.Warn("Library rebuild failed, keeping previous indexes: %v", err)
		return
	}
	searchService.Reload(lib)
	logger.Info("Library rebuilt")
}
