// ABOUTME: CLI commands for sleep data and sleep score queries.
// ABOUTME: Prints stage durations and the nightly quality score.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/garmin/internal/models"
	"github.com/spf13/cobra"
)

var sleepCmd = &cobra.Command{
	Use:   "sleep [date]",
	Short: "Show sleep data for a date",
	Long: `Show sleep stage durations and timestamps for a calendar date.

The date is ISO format (YYYY-MM-DD) and defaults to today.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := client.Sleep(cmd.Context(), dateArg(args))
		if err != nil {
			return err
		}

		bold := color.New(color.Bold)
		bold.Printf("Sleep for %s\n", s.Date)
		fmt.Printf("  window  %s - %s\n",
			s.SleepStart.Format("15:04"), s.SleepEnd.Format("15:04"))
		fmt.Printf("  total   %s\n", models.FormatDuration(s.TotalSleepSeconds))
		fmt.Printf("  deep    %s\n", models.FormatDuration(s.DeepSeconds))
		fmt.Printf("  light   %s\n", models.FormatDuration(s.LightSeconds))
		fmt.Printf("  rem     %s\n", models.FormatDuration(s.RemSeconds))
		fmt.Printf("  awake   %s\n", models.FormatDuration(s.AwakeSeconds))
		return nil
	},
}

var sleepScoreCmd = &cobra.Command{
	Use:   "sleepscore [date]",
	Short: "Show the sleep score for a date",
	Long: `Show the sleep quality score and qualifier for a calendar date.

The date is ISO format (YYYY-MM-DD) and defaults to today.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		score, err := client.SleepScore(cmd.Context(), dateArg(args))
		if err != nil {
			return err
		}

		fmt.Printf("%s  %d (%s)\n", score.Date, score.Score, score.Qualifier)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sleepCmd)
	rootCmd.AddCommand(sleepScoreCmd)
}
