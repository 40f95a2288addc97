// ABOUTME: MCP subcommand for running the dreamdecoder MCP server
// ABOUTME: Handles stdio transport initialization and server lifecycle
package cli

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/harper/dreamdecoder/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the dreamdecoder MCP server",
	Long:  `Start the Model Context Protocol server for AI assistants to interact with the dream journal over stdio.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		server := mcp.NewServer(mcp.Deps{
			Journal:  a.journal,
			Guide:    a.guide,
			Insights: a.insights,
			Logger:   a.log,
		})

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return server.Run(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
