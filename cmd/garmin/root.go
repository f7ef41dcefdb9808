// ABOUTME: Root Cobra command for garmin CLI.
// ABOUTME: Builds the provider client once via PersistentPreRunE.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/harperreed/garmin/internal/config"
	"github.com/harperreed/garmin/internal/garmin"
	"github.com/spf13/cobra"
)

var (
	client garmin.API
	logger *log.Logger
)

var rootCmd = &cobra.Command{
	Use:   "garmin",
	Short: "Read-only bridge to your Garmin Connect account",
	Long: `Garmin is a read-only CLI and MCP bridge for Garmin Connect.

It authenticates once with your account credentials and exposes your
health and activity data to the terminal or to an AI assistant. Nothing
is ever written back to your account, and nothing is stored locally.

CONFIGURATION:

  Set these environment variables before running any command:

    GARMIN_USERNAME   account email
    GARMIN_PASSWORD   account password
    GARMIN_DOMAIN     optional, garmin.com (default) or garmin.cn

QUICK START:

  $ garmin steps                    # Today's step count and goal
  $ garmin steps 2025-07-19         # Steps for a specific date
  $ garmin summary 2025-07-19       # Full daily summary
  $ garmin sleep 2025-07-19         # Sleep stages for a night
  $ garmin sleepscore 2025-07-19    # Sleep quality score
  $ garmin heartrate 2025-07-19     # Daily heart rate series
  $ garmin weight 2025-07-01 2025-07-31
  $ garmin activities --limit 20    # Recent activities
  $ garmin activity 123456789       # One activity in full

MCP INTEGRATION:

  Run 'garmin mcp' to start the Model Context Protocol server for use with
  Claude Desktop or other MCP-compatible AI assistants. Add to your Claude
  config:

  {
    "mcpServers": {
      "garmin": { "command": "garmin", "args": ["mcp"] }
    }
  }`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Credential-free commands still work without configuration.
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "garmin"})
		if verbose {
			logger.SetLevel(log.DebugLevel)
		}

		cfg, err := config.Load()
		if err != nil {
			return err
		}

		client, err = garmin.NewClient(garmin.Credentials{
			Username: cfg.Username,
			Password: cfg.Password,
		}, cfg.Domain, logger)
		if err != nil {
			return fmt.Errorf("failed to initialize garmin client: %w", err)
		}
		return nil
	},
}

var verbose bool

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}
