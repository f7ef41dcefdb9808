// ABOUTME: CLI command for the daily summary query.
// ABOUTME: Prints steps, calories, distance, heart rate, and stress.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/garmin/internal/models"
	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary [date]",
	Short: "Show the daily summary for a date",
	Long: `Show the daily activity summary for a calendar date.

The date is ISO format (YYYY-MM-DD) and defaults to today.

EXAMPLES:

  garmin summary               # Today
  garmin summary 2025-07-19    # A specific day`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := client.UserSummary(cmd.Context(), dateArg(args))
		if err != nil {
			return err
		}

		bold := color.New(color.Bold)
		bold.Printf("Summary for %s\n", s.Date)
		fmt.Printf("  steps      %d / %d\n", s.TotalSteps, s.StepGoal)
		fmt.Printf("  calories   %.0f kcal (%.0f active)\n", s.TotalKilocalories, s.ActiveKilocalories)
		fmt.Printf("  distance   %.2f km\n", float64(s.TotalDistanceMeters)/1000)
		fmt.Printf("  floors     %.0f\n", s.FloorsAscended)
		fmt.Printf("  heart rate %d resting (%d-%d)\n", s.RestingHeartRate, s.MinHeartRate, s.MaxHeartRate)
		fmt.Printf("  stress     %d avg\n", s.AverageStressLevel)
		if s.SleepSeconds > 0 {
			fmt.Printf("  sleep      %s\n", models.FormatDuration(s.SleepSeconds))
		}
		return nil
	},
}

// dateArg returns the optional positional date argument.
func dateArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}
