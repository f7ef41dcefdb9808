// ABOUTME: CLI command for starting MCP server.
// ABOUTME: Runs stdio-based MCP server for Claude integration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/harperreed/garmin/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

MCP allows AI assistants like Claude to query your Garmin Connect data
through a standardized protocol. The server communicates via stdin/stdout;
logs go to stderr.

CLAUDE DESKTOP CONFIGURATION:

  Add this to your Claude Desktop config (claude_desktop_config.json):

  {
    "mcpServers": {
      "garmin": {
        "command": "garmin",
        "args": ["mcp"],
        "env": {
          "GARMIN_USERNAME": "you@example.com",
          "GARMIN_PASSWORD": "..."
        }
      }
    }
  }

AVAILABLE TOOLS:

  user_summary           Daily activity summary for a date
  user_steps             Step total and goal for a date
  user_heart_rate        Heart rate summary and time series
  user_sleep             Sleep stages and timestamps
  user_sleep_score       Sleep quality score and qualifier
  user_weight            Weight and body composition for a range
  user_activities        Activity list for a range
  user_activity_details  Full record for one activity

AVAILABLE RESOURCES:

  garmin://summary/today       Today's daily summary
  garmin://activities/recent   Last 10 activities`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(client)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		logger.Info("starting MCP server on stdio")
		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
