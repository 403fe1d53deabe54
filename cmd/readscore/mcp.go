package main

import (
	"fmt"

	"github.com/mama165/sdk-go/logs"
	"github.com/nvandessel/readscore/internal/mcp"
	"github.com/nvandessel/readscore/internal/scoring"
	"github.com/spf13/cobra"
)

func newMCPServerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp-server",
		Short: "Run readscore as an MCP (Model Context Protocol) server",
		Long: `Start an MCP server that exposes readscore over stdio.

Tools:

  • readscore_analyze  - Score a text and optionally save the report
  • readscore_history  - List saved reports

The server communicates via JSON-RPC 2.0 over stdin/stdout.

Example client configuration:

  {
    "mcpServers": {
      "readscore": {
        "command": "readscore",
        "args": ["mcp-server"],
        "cwd": "${workspaceFolder}"
      }
    }
  }
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, _ := cmd.Flags().GetString("root")
			settings, err := loadSettings(cmd)
			if err != nil {
				return err
			}

			server, err := mcp.NewServer(&mcp.Config{
				Name:        "readscore",
				Version:     version,
				Root:        root,
				NegativeAge: scoring.NegativeAgePolicy(settings.NegativeAgePolicy),
				Logger:      logs.GetLoggerFromString(settings.LogLevel),
			})
			if err != nil {
				return fmt.Errorf("failed to create MCP server: %w", err)
			}
			defer server.Close()

			// Run blocks until the client disconnects or the command context is cancelled
			if err := server.Run(cmd.Context()); err != nil {
				return fmt.Errorf("MCP server error: %w", err)
			}
			return nil
		},
	}

	return cmd
}
