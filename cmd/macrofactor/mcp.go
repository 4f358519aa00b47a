// ABOUTME: CLI command for starting the MCP server.
// ABOUTME: Runs a stdio-based MCP server over the authenticated session.
package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/harperreed/macrofactor/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

The server communicates via stdin/stdout and requires a logged-in session.

CLAUDE DESKTOP CONFIGURATION:

  {
    "mcpServers": {
      "macrofactor": {
        "command": "macrofactor",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  get_goals          Calorie/macro targets and TDEE
  get_nutrition      Daily nutrition summaries
  get_food_log       Food entries for one day
  get_weight         Weight entries
  search_food        Search the food database
  log_food           Quick-add a food entry
  log_searched_food  Log a cached search result by index
  log_weight         Record a weight entry`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, client, err := session()
		if err != nil {
			return err
		}

		server, err := mcp.NewServer(cfg, client)
		if err != nil {
			return err
		}

		ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
